package dataset

import (
	"fmt"
	"regexp"
	"time"

	"txnsynth/internal/domain/entity"
)

var cleanTransactionID = regexp.MustCompile(`^TXN\d{8}$`)

// AuditReport lists structural violations found in an emitted dataset
type AuditReport struct {
	Phases     int
	Records    []int
	Violations []string
}

// Clean reports whether the audit found nothing wrong
func (r AuditReport) Clean() bool {
	return len(r.Violations) == 0
}

func (r *AuditReport) flag(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

// AuditDataset checks the structural invariants of a finished run over its
// emitted snapshots: phase sizes, positional transaction IDs, ID stability
// across deltas, and timestamp bounds. Corrupted field values are skipped,
// never treated as violations; corruption is part of the dataset's
// contract, reordering or losing records is not.
func AuditDataset(snapshots [][]entity.Record, params Params) AuditReport {
	report := AuditReport{}

	var phases [][]entity.Record
	if params.SplitInitial {
		if len(snapshots) != params.DeltaFiles+2 {
			report.flag("expected %d snapshots, got %d", params.DeltaFiles+2, len(snapshots))
			return report
		}
		initial := make([]entity.Record, 0, len(snapshots[0])+len(snapshots[1]))
		initial = append(initial, snapshots[0]...)
		initial = append(initial, snapshots[1]...)
		phases = append(phases, initial)
		phases = append(phases, snapshots[2:]...)
	} else {
		if len(snapshots) != params.DeltaFiles+1 {
			report.flag("expected %d snapshots, got %d", params.DeltaFiles+1, len(snapshots))
			return report
		}
		phases = snapshots
	}
	report.Phases = len(phases)

	for k, phase := range phases {
		report.Records = append(report.Records, len(phase))
		expected := params.BaseRecords + k*params.RecordsPerDelta
		if len(phase) != expected {
			report.flag("phase %d: expected %d records, got %d", k, expected, len(phase))
		}
		auditIDs(&report, k, phase)
		auditTimestamps(&report, k, phase, params)
	}
	for k := 1; k < len(phases); k++ {
		auditStability(&report, k, phases[k-1], phases[k])
	}
	return report
}

// auditIDs checks that every uncorrupted transaction ID sits exactly where
// the issue order put it and appears only once
func auditIDs(report *AuditReport, phase int, records []entity.Record) {
	seen := make(map[string]int)
	for i, rec := range records {
		text, ok := rec.TransactionID.Text()
		if !ok || !cleanTransactionID.MatchString(text) {
			continue
		}
		if expected := entity.FormatTransactionID(i + 1); text != expected {
			report.flag("phase %d: record %d carries ID %s, expected %s", phase, i, text, expected)
		}
		if prev, dup := seen[text]; dup {
			report.flag("phase %d: ID %s appears at records %d and %d", phase, text, prev, i)
		}
		seen[text] = i
	}
}

// auditTimestamps checks that every parseable timestamp falls inside the
// run's overall date range
func auditTimestamps(report *AuditReport, phase int, records []entity.Record, params Params) {
	earliest := params.InitialWindowStart
	latest := params.InitialWindowEnd
	if params.DeltaFiles > 0 {
		latest = params.DeltaWindow(params.DeltaFiles).End
	}
	for i, rec := range records {
		text, ok := rec.Timestamp.Text()
		if !ok {
			continue
		}
		t, err := time.Parse(entity.TimestampLayout, text)
		if err != nil {
			// Corrupted timestamps do not parse; that is expected
			continue
		}
		if t.Before(earliest) || !t.Before(latest) {
			report.flag("phase %d: record %d timestamp %s outside [%s, %s)",
				phase, i, text,
				earliest.Format(entity.TimestampLayout),
				latest.Format(entity.TimestampLayout))
		}
	}
}

// auditStability checks that a delta preserved every prior record's
// position and transaction ID and only appended at the end
func auditStability(report *AuditReport, phase int, prev, curr []entity.Record) {
	if len(curr) < len(prev) {
		report.flag("phase %d: shrank from %d to %d records", phase, len(prev), len(curr))
		return
	}
	for i := range prev {
		if curr[i].TransactionID != prev[i].TransactionID {
			report.flag("phase %d: record %d changed ID from %q to %q",
				phase, i, prev[i].TransactionID.Render(), curr[i].TransactionID.Render())
		}
	}
}
