package core

import (
	"time"
)

// TimeProvider abstracts wall-clock access for the domain. Generation
// itself never reads the clock (record timestamps come from Rand); the
// provider exists so run metadata and log timing stay testable.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
