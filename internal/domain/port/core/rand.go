package core

// Rand is the single deterministic source of randomness for a generation
// run. Every draw in the pipeline goes through one Rand instance so that a
// fixed seed reproduces the dataset byte for byte. Implementations are not
// required to be safe for concurrent use.
type Rand interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Perm returns a random permutation of [0, n).
	Perm(n int) []int
}
