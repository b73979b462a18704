package random

import (
	"math/rand"
)

// Source adapts math/rand to the domain Rand port. One Source carries the
// entire draw stream of a run; it is not safe for concurrent use, which is
// fine because generation is strictly sequential.
type Source struct {
	r *rand.Rand
}

// NewSource creates a deterministic source from a seed
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0.0, 1.0)
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a uniform int in [0, n)
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Perm returns a random permutation of [0, n)
func (s *Source) Perm(n int) []int {
	return s.r.Perm(n)
}
