package dataset

import (
	"time"

	"github.com/google/uuid"

	"txnsynth/internal/domain/entity"
	tport "txnsynth/internal/domain/port/core"
	"txnsynth/internal/domain/port/sink"
	"txnsynth/internal/domain/port/usecase"
	"txnsynth/internal/domain/usecase/corrupt"
)

// Params fixes the shape of one generation run
type Params struct {
	// Seed is echoed into the run summary; the Rand handed to the
	// generator must already be seeded with it
	Seed int64
	// BaseRecords is the size of the initial snapshot
	BaseRecords int
	// RecordsPerDelta is how many new records each delta appends
	RecordsPerDelta int
	// DeltaFiles is how many delta snapshots follow the initial data
	DeltaFiles int
	// MutatePercent is the share of prior records each delta mutates
	MutatePercent int
	// ErrorRate is the per-field corruption probability
	ErrorRate float64
	// OptionalFieldFactor scales ErrorRate for merchant/category/location
	OptionalFieldFactor float64
	// CustomerCount sizes the customer population
	CustomerCount int
	// SplitInitial emits the initial snapshot as two half files
	SplitInitial bool
	// InitialWindowStart/End bound initial-phase timestamps
	InitialWindowStart time.Time
	InitialWindowEnd   time.Time
	// DeltaWindowStart is where every delta window opens
	DeltaWindowStart time.Time
	// DeltaWindowEnd plus k*DeltaWindowStep closes the kth delta window
	DeltaWindowEnd  time.Time
	DeltaWindowStep time.Duration
}

// DeltaWindow returns the timestamp window of the kth delta, 1-based.
// Each delta reaches DeltaWindowStep further into the future.
func (p Params) DeltaWindow(k int) Window {
	return Window{
		Start: p.DeltaWindowStart,
		End:   p.DeltaWindowEnd.Add(time.Duration(k) * p.DeltaWindowStep),
	}
}

// Generator orchestrates one full dataset run: it builds the entity
// universe, synthesizes the initial snapshot, then alternates mutation and
// append phases, writing every snapshot through the sink. All randomness
// flows from the single injected Rand, so a seed fixes the entire output.
type Generator struct {
	rand         tport.Rand
	timeProvider tport.TimeProvider
	logger       tport.Logger
	recordSink   sink.RecordSink
	params       Params
}

// NewGenerator creates a generator
func NewGenerator(
	rand tport.Rand,
	timeProvider tport.TimeProvider,
	logger tport.Logger,
	recordSink sink.RecordSink,
	params Params,
) *Generator {
	return &Generator{
		rand:         rand,
		timeProvider: timeProvider,
		logger:       logger,
		recordSink:   recordSink,
		params:       params,
	}
}

// Run executes the whole generation pipeline and returns the run summary.
// The first snapshot write that fails aborts the run.
func (g *Generator) Run() (*usecase.RunSummary, error) {
	started := g.timeProvider.Now()
	summary := &usecase.RunSummary{
		RunID:     uuid.NewString(),
		Seed:      g.params.Seed,
		StartedAt: started,
	}

	g.logger.Info("Starting dataset generation", map[string]any{
		"runId":       summary.RunID,
		"seed":        g.params.Seed,
		"baseRecords": g.params.BaseRecords,
		"deltaFiles":  g.params.DeltaFiles,
	})

	corruptor := corrupt.NewCorruptor(g.rand)
	universe := BuildUniverse(g.rand, g.params.CustomerCount)
	ledger := entity.NewLedger()
	ids := NewIDRegistry()
	synthesizer := NewSynthesizer(
		g.rand, corruptor, universe, ledger, ids,
		g.params.ErrorRate, g.params.OptionalFieldFactor,
	)
	mutator := NewMutator(g.rand, corruptor, ledger, ids, g.logger, g.params.ErrorRate)

	summary.CustomerCount = universe.CustomerCount()
	summary.AccountCount = universe.AccountCount()

	initialWindow := Window{Start: g.params.InitialWindowStart, End: g.params.InitialWindowEnd}
	records := make([]entity.Record, 0, g.params.BaseRecords)
	for i := 0; i < g.params.BaseRecords; i++ {
		records = append(records, synthesizer.Synthesize(initialWindow))
	}

	seq := 0
	write := func(snapshot []entity.Record, newRecords int, tally usecase.MutationTally) error {
		path, err := g.recordSink.WriteSnapshot(seq, snapshot)
		if err != nil {
			g.logger.Error("Failed to write snapshot", map[string]any{
				"seq":   seq,
				"error": err.Error(),
			})
			return err
		}
		summary.Files = append(summary.Files, usecase.FileReport{
			Seq:        seq,
			Path:       path,
			Records:    len(snapshot),
			NewRecords: newRecords,
			Mutations:  tally,
		})
		g.logger.Info("Snapshot written", map[string]any{
			"seq":     seq,
			"path":    path,
			"records": len(snapshot),
		})
		seq++
		return nil
	}

	if g.params.SplitInitial {
		half := len(records) / 2
		if err := write(records[:half], half, usecase.MutationTally{}); err != nil {
			return nil, err
		}
		if err := write(records[half:], len(records)-half, usecase.MutationTally{}); err != nil {
			return nil, err
		}
	} else {
		if err := write(records, len(records), usecase.MutationTally{}); err != nil {
			return nil, err
		}
	}

	for delta := 1; delta <= g.params.DeltaFiles; delta++ {
		window := g.params.DeltaWindow(delta)

		next := make([]entity.Record, len(records), len(records)+g.params.RecordsPerDelta)
		copy(next, records)

		tally := mutator.MutateRecords(next, g.params.MutatePercent, window)
		for i := 0; i < g.params.RecordsPerDelta; i++ {
			next = append(next, synthesizer.Synthesize(window))
		}

		g.logger.Info("Delta phase finished", map[string]any{
			"delta":               delta,
			"selected":            tally.Selected,
			"mutated":             tally.Mutated,
			"skippedUnresolvable": tally.SkippedUnresolvable,
			"skippedUnparsable":   tally.SkippedUnparsable,
			"appended":            g.params.RecordsPerDelta,
		})

		if err := write(next, g.params.RecordsPerDelta, tally); err != nil {
			return nil, err
		}
		records = next
	}

	summary.TotalRecords = len(records)
	summary.ActiveAccounts = ledger.Len()
	summary.Corruption = corruptor.Stats()
	summary.Duration = g.timeProvider.Since(started)

	g.logger.Info("Dataset generation finished", map[string]any{
		"runId":        summary.RunID,
		"totalRecords": summary.TotalRecords,
		"files":        len(summary.Files),
		"corrupted":    summary.Corruption.Corrupted,
		"durationMs":   summary.Duration.Milliseconds(),
	})
	return summary, nil
}
