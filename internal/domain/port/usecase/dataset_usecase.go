package usecase

import (
	"time"
)

// CorruptionStats counts corruption activity across a run. Trials counts
// every field offered to the corruptor; the remaining counters only move
// when a field actually came back different.
type CorruptionStats struct {
	Trials    int
	Corrupted int
	Nullified int
	Typos     int
	TypeFlips int
	Extremes  int
}

// MutationOutcome classifies what happened to one record selected for
// mutation
type MutationOutcome int

const (
	// OutcomeMutated means the record was changed
	OutcomeMutated MutationOutcome = iota
	// OutcomeSkippedUnresolvable means the record could not be identified:
	// its transaction ID or account no longer resolves to anything known
	OutcomeSkippedUnresolvable
	// OutcomeSkippedUnparsable means the record was identified but its
	// stored amount could not be read back as a number
	OutcomeSkippedUnparsable
)

// String renders the outcome for logs and summaries
func (o MutationOutcome) String() string {
	switch o {
	case OutcomeMutated:
		return "mutated"
	case OutcomeSkippedUnresolvable:
		return "skipped_unresolvable"
	case OutcomeSkippedUnparsable:
		return "skipped_unparsable"
	default:
		return "unknown"
	}
}

// MutationResult records the fate of one record selected for mutation
type MutationResult struct {
	// Index is the record's position in the snapshot
	Index int
	// TransactionID is the resolved ID, or the raw stored text when
	// resolution failed
	TransactionID string
	// Field names what was rewritten: status, amount or timestamp.
	// Empty when the record was skipped before a field was chosen.
	Field string
	// Outcome classifies the result
	Outcome MutationOutcome
	// Reason carries the skip cause; nil when the record was mutated
	Reason error
}

// MutationTally counts mutation outcomes for one delta phase
type MutationTally struct {
	Selected            int
	Mutated             int
	SkippedUnresolvable int
	SkippedUnparsable   int
	StatusFlips         int
	AmountAdjustments   int
	TimestampShifts     int
	Results             []MutationResult
}

// FileReport describes one emitted snapshot
type FileReport struct {
	Seq        int
	Path       string
	Records    int
	NewRecords int
	Mutations  MutationTally
}

// RunSummary aggregates what one generation run produced
type RunSummary struct {
	RunID          string
	Seed           int64
	StartedAt      time.Time
	Duration       time.Duration
	TotalRecords   int
	CustomerCount  int
	AccountCount   int
	ActiveAccounts int
	Files          []FileReport
	Corruption     CorruptionStats
}

// DatasetUseCase defines the dataset generation operations exposed to the
// composition root
type DatasetUseCase interface {
	// Run executes the whole generation pipeline: it synthesizes the
	// initial snapshot, applies the configured number of delta phases, and
	// writes every snapshot through the record sink. The first write that
	// fails aborts the run.
	Run() (*RunSummary, error)
}
