package main

import (
	"log"
	"os"
	"strings"

	"txnsynth/internal/domain/entity"
	"txnsynth/internal/domain/port/core"
	"txnsynth/internal/domain/port/sink"
	"txnsynth/internal/domain/port/usecase"
	"txnsynth/internal/domain/usecase/dataset"

	"txnsynth/internal/infrastructure/adapter/csvfile"
	"txnsynth/internal/infrastructure/adapter/logger"
	"txnsynth/internal/infrastructure/adapter/random"
	timeProvider "txnsynth/internal/infrastructure/adapter/time"
	"txnsynth/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logLevelFromConfig(cfg.Logger.Level))

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Single seeded randomness source for the whole run
	rng := random.NewSource(cfg.Generation.Seed)

	// Snapshot writer
	writer, err := csvfile.NewWriter(cfg.Output.Directory, cfg.Output.FilePrefix, appLogger)
	if err != nil {
		appLogger.Error("Failed to prepare output directory", map[string]any{
			"directory": cfg.Output.Directory,
			"error":     err.Error(),
		})
		flushAndExit(appLogger)
	}

	// Keep an in-memory copy of every snapshot for the post-run audit
	recSink := &recordingSink{next: writer}

	params, err := buildParams(cfg)
	if err != nil {
		appLogger.Error("Failed to build generation parameters", map[string]any{
			"error": err.Error(),
		})
		flushAndExit(appLogger)
	}

	appLogger.Info("Writing dataset", map[string]any{
		"directory":    cfg.Output.Directory,
		"filePrefix":   cfg.Output.FilePrefix,
		"splitInitial": cfg.Output.SplitInitial,
		"env":          cfg.Environment,
	})

	// Initialize use case
	var generator usecase.DatasetUseCase = dataset.NewGenerator(rng, tp, appLogger, recSink, params)

	summary, err := generator.Run()
	if err != nil {
		appLogger.Error("Dataset generation failed", map[string]any{
			"error": err.Error(),
		})
		flushAndExit(appLogger)
	}

	appLogger.Info("Run complete", map[string]any{
		"runId":           summary.RunID,
		"seed":            summary.Seed,
		"files":           len(summary.Files),
		"totalRecords":    summary.TotalRecords,
		"activeAccounts":  summary.ActiveAccounts,
		"corruptedValues": summary.Corruption.Corrupted,
		"duration":        summary.Duration.String(),
	})

	// Audit the emitted snapshots against the generator's own promises
	report := dataset.AuditDataset(recSink.snapshots, params)
	if !report.Clean() {
		appLogger.Error("Dataset audit failed", map[string]any{
			"violations": report.Violations,
		})
		flushAndExit(appLogger)
	}

	appLogger.Info("Dataset audit passed", map[string]any{
		"phases":  report.Phases,
		"records": report.Records,
	})

	_ = appLogger.Flush()
}

// recordingSink forwards snapshots to the real writer while keeping a copy
// of each for the post-run audit.
type recordingSink struct {
	next      sink.RecordSink
	snapshots [][]entity.Record
}

func (s *recordingSink) WriteSnapshot(seq int, records []entity.Record) (string, error) {
	kept := make([]entity.Record, len(records))
	copy(kept, records)
	s.snapshots = append(s.snapshots, kept)
	return s.next.WriteSnapshot(seq, records)
}

// buildParams converts the loaded configuration into generation parameters
func buildParams(cfg *config.Config) (dataset.Params, error) {
	initialStart, initialEnd, err := cfg.Windows.InitialWindow()
	if err != nil {
		return dataset.Params{}, err
	}

	deltaStart, deltaEnd, err := cfg.Windows.DeltaWindow()
	if err != nil {
		return dataset.Params{}, err
	}

	return dataset.Params{
		Seed:                cfg.Generation.Seed,
		BaseRecords:         cfg.Generation.BaseRecords,
		RecordsPerDelta:     cfg.Generation.RecordsPerDelta,
		DeltaFiles:          cfg.Generation.DeltaFiles,
		MutatePercent:       cfg.Generation.MutatePercent,
		ErrorRate:           cfg.Generation.ErrorRate,
		OptionalFieldFactor: cfg.Generation.OptionalFieldFactor,
		CustomerCount:       cfg.Generation.CustomerCount,
		SplitInitial:        cfg.Output.SplitInitial,
		InitialWindowStart:  initialStart,
		InitialWindowEnd:    initialEnd,
		DeltaWindowStart:    deltaStart,
		DeltaWindowEnd:      deltaEnd,
		DeltaWindowStep:     cfg.Windows.Step(),
	}, nil
}

// logLevelFromConfig maps the configured level name to a logger level
func logLevelFromConfig(level string) core.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return core.LogLevelDebug
	case "warn":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func flushAndExit(appLogger core.Logger) {
	_ = appLogger.Flush()
	os.Exit(1)
}
