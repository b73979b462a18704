package sink

import (
	"txnsynth/internal/domain/entity"
)

// RecordSink persists finished dataset snapshots. Each call receives the
// complete record set of one phase, already ordered; the sink must write
// records exactly in that order and must not reorder or drop rows.
type RecordSink interface {
	// WriteSnapshot writes one full snapshot identified by its sequence
	// number (0 for the first emitted file) and returns the destination
	// it wrote to, for logging and the run summary.
	//
	// Possible errors:
	// - ErrSnapshotWrite: if the destination cannot be created or written
	WriteSnapshot(seq int, records []entity.Record) (string, error)
}
