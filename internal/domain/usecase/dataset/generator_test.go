package dataset

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"txnsynth/internal/domain/entity"
	errs "txnsynth/internal/domain/error"
	"txnsynth/internal/infrastructure/adapter/logger"
	"txnsynth/internal/infrastructure/adapter/random"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// memorySink collects snapshots in memory. failAt makes the write of that
// sequence number fail, to exercise the abort path.
type memorySink struct {
	snapshots [][]entity.Record
	failAt    int
}

func newMemorySink() *memorySink {
	return &memorySink{failAt: -1}
}

func (s *memorySink) WriteSnapshot(seq int, records []entity.Record) (string, error) {
	if seq == s.failAt {
		return "", errs.NewSnapshotError(seq, "memory", errors.New("sink full"))
	}
	stored := make([]entity.Record, len(records))
	copy(stored, records)
	s.snapshots = append(s.snapshots, stored)
	return fmt.Sprintf("memory/%d", seq), nil
}

// fixedClock pins Now and reports a constant elapsed duration
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Since(time.Time) time.Duration {
	return 5 * time.Second
}

func testParams() Params {
	return Params{
		Seed:                42,
		BaseRecords:         120,
		RecordsPerDelta:     40,
		DeltaFiles:          2,
		MutatePercent:       30,
		ErrorRate:           0.05,
		OptionalFieldFactor: 1.5,
		CustomerCount:       20,
		SplitInitial:        true,
		InitialWindowStart:  date(2023, 1, 1),
		InitialWindowEnd:    date(2023, 12, 31),
		DeltaWindowStart:    date(2024, 1, 1),
		DeltaWindowEnd:      date(2024, 1, 15),
		DeltaWindowStep:     15 * 24 * time.Hour,
	}
}

func newTestGenerator(params Params) (*Generator, *memorySink) {
	recordSink := newMemorySink()
	gen := NewGenerator(
		random.NewSource(params.Seed),
		&fixedClock{now: date(2024, 3, 1)},
		logger.NewNoopLogger(),
		recordSink,
		params,
	)
	return gen, recordSink
}

func TestDeltaWindowGrows(t *testing.T) {
	params := testParams()

	first := params.DeltaWindow(1)
	assert.Equal(t, date(2024, 1, 1), first.Start)
	assert.Equal(t, date(2024, 1, 30), first.End)

	second := params.DeltaWindow(2)
	assert.Equal(t, date(2024, 1, 1), second.Start)
	assert.Equal(t, date(2024, 2, 14), second.End)
}

func TestRunProducesExpectedSnapshots(t *testing.T) {
	gen, recordSink := newTestGenerator(testParams())
	summary, err := gen.Run()
	require.NoError(t, err)
	require.NotNil(t, summary)

	// Split initial halves, then one growing snapshot per delta
	require.Len(t, recordSink.snapshots, 4)
	assert.Len(t, recordSink.snapshots[0], 60)
	assert.Len(t, recordSink.snapshots[1], 60)
	assert.Len(t, recordSink.snapshots[2], 160)
	assert.Len(t, recordSink.snapshots[3], 200)

	_, err = uuid.Parse(summary.RunID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), summary.Seed)
	assert.Equal(t, date(2024, 3, 1), summary.StartedAt)
	assert.Equal(t, 5*time.Second, summary.Duration)
	assert.Equal(t, 200, summary.TotalRecords)
	assert.Equal(t, 20, summary.CustomerCount)
	assert.GreaterOrEqual(t, summary.AccountCount, 20)
	assert.LessOrEqual(t, summary.AccountCount, 60)
	assert.Greater(t, summary.ActiveAccounts, 0)
	assert.LessOrEqual(t, summary.ActiveAccounts, summary.AccountCount)

	require.Len(t, summary.Files, 4)
	for i, file := range summary.Files {
		assert.Equal(t, i, file.Seq)
		assert.Equal(t, fmt.Sprintf("memory/%d", i), file.Path)
		assert.Equal(t, len(recordSink.snapshots[i]), file.Records)
	}
	assert.Equal(t, 60, summary.Files[0].NewRecords)
	assert.Equal(t, 60, summary.Files[1].NewRecords)
	assert.Equal(t, 40, summary.Files[2].NewRecords)
	assert.Equal(t, 40, summary.Files[3].NewRecords)

	// 30% of the records present before each delta
	assert.Equal(t, 0, summary.Files[0].Mutations.Selected)
	assert.Equal(t, 36, summary.Files[2].Mutations.Selected)
	assert.Equal(t, 48, summary.Files[3].Mutations.Selected)

	// Every field of every synthesized record passes through the corruptor
	assert.GreaterOrEqual(t, summary.Corruption.Trials, 200*12)
	assert.Greater(t, summary.Corruption.Corrupted, 0)
}

func TestRunWithoutSplit(t *testing.T) {
	params := testParams()
	params.SplitInitial = false
	gen, recordSink := newTestGenerator(params)

	summary, err := gen.Run()
	require.NoError(t, err)

	require.Len(t, recordSink.snapshots, 3)
	assert.Len(t, recordSink.snapshots[0], 120)
	assert.Len(t, recordSink.snapshots[1], 160)
	assert.Len(t, recordSink.snapshots[2], 200)
	assert.Equal(t, 120, summary.Files[0].NewRecords)
}

func TestRunIsDeterministic(t *testing.T) {
	genA, sinkA := newTestGenerator(testParams())
	genB, sinkB := newTestGenerator(testParams())

	summaryA, err := genA.Run()
	require.NoError(t, err)
	summaryB, err := genB.Run()
	require.NoError(t, err)

	assert.Equal(t, sinkA.snapshots, sinkB.snapshots)
	assert.Equal(t, summaryA.TotalRecords, summaryB.TotalRecords)
	assert.Equal(t, summaryA.ActiveAccounts, summaryB.ActiveAccounts)
	assert.Equal(t, summaryA.Corruption, summaryB.Corruption)
}

func TestRunSeedsDiverge(t *testing.T) {
	paramsA := testParams()
	paramsA.Seed = 1
	paramsB := testParams()
	paramsB.Seed = 2

	genA, sinkA := newTestGenerator(paramsA)
	genB, sinkB := newTestGenerator(paramsB)

	_, err := genA.Run()
	require.NoError(t, err)
	_, err = genB.Run()
	require.NoError(t, err)

	assert.NotEqual(t, sinkA.snapshots, sinkB.snapshots)
}

func TestRunAbortsWhenSinkFails(t *testing.T) {
	gen, recordSink := newTestGenerator(testParams())
	recordSink.failAt = 2

	summary, err := gen.Run()
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errs.IsSnapshotWriteError(err))

	var snapErr *errs.SnapshotError
	require.True(t, errors.As(err, &snapErr))
	assert.Equal(t, 2, snapErr.Seq)

	// The two initial halves landed before the failing delta
	assert.Len(t, recordSink.snapshots, 2)
}

func TestRunCleanDatasetPassesAudit(t *testing.T) {
	params := testParams()
	params.ErrorRate = 0
	params.SplitInitial = false
	gen, recordSink := newTestGenerator(params)

	_, err := gen.Run()
	require.NoError(t, err)

	report := AuditDataset(recordSink.snapshots, params)
	assert.True(t, report.Clean(), "violations: %v", report.Violations)
	assert.Equal(t, 3, report.Phases)
	assert.Equal(t, []int{120, 160, 200}, report.Records)
}

func TestRunCorruptedDatasetPassesAudit(t *testing.T) {
	// Corruption damages field values but never the snapshot shape the
	// auditor checks: positions, clean IDs, parseable timestamp ranges.
	gen, recordSink := newTestGenerator(testParams())

	_, err := gen.Run()
	require.NoError(t, err)

	report := AuditDataset(recordSink.snapshots, testParams())
	assert.True(t, report.Clean(), "violations: %v", report.Violations)
	assert.Equal(t, 3, report.Phases)
	assert.Equal(t, []int{120, 160, 200}, report.Records)
}

func TestRunBalancesChainPerAccount(t *testing.T) {
	params := testParams()
	params.ErrorRate = 0
	params.SplitInitial = false
	params.DeltaFiles = 0
	params.BaseRecords = 150
	gen, recordSink := newTestGenerator(params)

	_, err := gen.Run()
	require.NoError(t, err)
	require.Len(t, recordSink.snapshots, 1)

	// Within one account, each stated balance extends the previous one by
	// the record's amount, up to cent rounding of the running balance.
	lastSeen := map[string]float64{}
	for _, rec := range recordSink.snapshots[0] {
		account, ok := rec.AccountNumber.Text()
		require.True(t, ok)
		amount, ok := rec.Amount.Number()
		require.True(t, ok)
		stated, ok := rec.BalanceAfter.Number()
		require.True(t, ok)

		if prev, seen := lastSeen[account]; seen {
			assert.InDelta(t, prev+amount, stated, 0.011)
		}
		lastSeen[account] = stated
	}
}
