package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"txnsynth/internal/domain/entity"
	errs "txnsynth/internal/domain/error"
	tport "txnsynth/internal/domain/port/core"
)

// Writer emits dataset snapshots as CSV files in a single directory. Files
// are named <prefix>_<seq>.csv, so a rerun of the same seed overwrites the
// previous run's files instead of accumulating new ones.
type Writer struct {
	dir    string
	prefix string
	logger tport.Logger
}

// NewWriter creates the output directory if needed and returns a writer
func NewWriter(dir, prefix string, logger tport.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &Writer{
		dir:    dir,
		prefix: prefix,
		logger: logger,
	}, nil
}

// WriteSnapshot writes one snapshot: a header row followed by every record
// in order, absent fields rendered as empty cells.
//
// Possible errors:
// - ErrSnapshotWrite: if the file cannot be created or written
func (w *Writer) WriteSnapshot(seq int, records []entity.Record) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%03d.csv", w.prefix, seq))

	file, err := os.Create(path)
	if err != nil {
		return "", errs.NewSnapshotError(seq, path, err)
	}

	cw := csv.NewWriter(file)
	if err := cw.Write(entity.Columns()); err != nil {
		file.Close()
		return "", errs.NewSnapshotError(seq, path, err)
	}
	for i := range records {
		if err := cw.Write(records[i].Row()); err != nil {
			file.Close()
			return "", errs.NewSnapshotError(seq, path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		file.Close()
		return "", errs.NewSnapshotError(seq, path, err)
	}
	if err := file.Close(); err != nil {
		return "", errs.NewSnapshotError(seq, path, err)
	}

	w.logger.Debug("Snapshot file written", map[string]any{
		"path":    path,
		"records": len(records),
	})
	return path, nil
}
