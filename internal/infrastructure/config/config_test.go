package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "txnsynth/internal/domain/error"
)

func defaultConfig() *Config {
	return &Config{
		Environment: Test,
		Logger:      LoggerConfig{Level: "info"},
		Output: OutputConfig{
			Directory:    "data",
			FilePrefix:   "financial_transactions",
			SplitInitial: true,
		},
		Generation: GenerationConfig{
			Seed:                42,
			BaseRecords:         1000,
			RecordsPerDelta:     250,
			DeltaFiles:          2,
			MutatePercent:       30,
			ErrorRate:           0.05,
			OptionalFieldFactor: 1.5,
			CustomerCount:       200,
		},
		Windows: WindowsConfig{
			InitialStart:  "2023-01-01",
			InitialEnd:    "2023-12-31",
			DeltaStart:    "2024-01-01",
			DeltaEnd:      "2024-01-15",
			DeltaStepDays: 15,
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TS_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)

	assert.Equal(t, "data", cfg.Output.Directory)
	assert.Equal(t, "financial_transactions", cfg.Output.FilePrefix)
	assert.True(t, cfg.Output.SplitInitial)

	assert.Equal(t, int64(42), cfg.Generation.Seed)
	assert.Equal(t, 1000, cfg.Generation.BaseRecords)
	assert.Equal(t, 250, cfg.Generation.RecordsPerDelta)
	assert.Equal(t, 2, cfg.Generation.DeltaFiles)
	assert.Equal(t, 30, cfg.Generation.MutatePercent)
	assert.Equal(t, 0.05, cfg.Generation.ErrorRate)
	assert.Equal(t, 1.5, cfg.Generation.OptionalFieldFactor)
	assert.Equal(t, 200, cfg.Generation.CustomerCount)

	assert.Equal(t, "2023-01-01", cfg.Windows.InitialStart)
	assert.Equal(t, "2023-12-31", cfg.Windows.InitialEnd)
	assert.Equal(t, "2024-01-01", cfg.Windows.DeltaStart)
	assert.Equal(t, "2024-01-15", cfg.Windows.DeltaEnd)
	assert.Equal(t, 15, cfg.Windows.DeltaStepDays)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TS_ENV", "test")
	t.Setenv("TS_OUTPUT_DIR", "/tmp/datasets")
	t.Setenv("TS_OUTPUT_PREFIX", "txn_sample")
	t.Setenv("TS_SPLIT_INITIAL", "false")
	t.Setenv("TS_SEED", "7")
	t.Setenv("TS_BASE_RECORDS", "50")
	t.Setenv("TS_RECORDS_PER_DELTA", "0")
	t.Setenv("TS_DELTA_FILES", "5")
	t.Setenv("TS_MUTATE_PERCENT", "0")
	t.Setenv("TS_ERROR_RATE", "0.25")
	t.Setenv("TS_OPTIONAL_FIELD_FACTOR", "2")
	t.Setenv("TS_CUSTOMER_COUNT", "12")
	t.Setenv("TS_LOGGER_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/datasets", cfg.Output.Directory)
	assert.Equal(t, "txn_sample", cfg.Output.FilePrefix)
	assert.False(t, cfg.Output.SplitInitial)
	assert.Equal(t, int64(7), cfg.Generation.Seed)
	assert.Equal(t, 50, cfg.Generation.BaseRecords)
	assert.Equal(t, 0, cfg.Generation.RecordsPerDelta)
	assert.Equal(t, 5, cfg.Generation.DeltaFiles)
	assert.Equal(t, 0, cfg.Generation.MutatePercent)
	assert.Equal(t, 0.25, cfg.Generation.ErrorRate)
	assert.Equal(t, 2.0, cfg.Generation.OptionalFieldFactor)
	assert.Equal(t, 12, cfg.Generation.CustomerCount)
	assert.Equal(t, "debug", cfg.Logger.Level)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "rejects unknown logger level",
			mutate: func(cfg *Config) { cfg.Logger.Level = "nope" },
		},
		{
			name:   "rejects empty output directory",
			mutate: func(cfg *Config) { cfg.Output.Directory = "" },
		},
		{
			name:   "rejects zero base records",
			mutate: func(cfg *Config) { cfg.Generation.BaseRecords = 0 },
		},
		{
			name:   "rejects mutate percent above hundred",
			mutate: func(cfg *Config) { cfg.Generation.MutatePercent = 101 },
		},
		{
			name:   "rejects error rate above one",
			mutate: func(cfg *Config) { cfg.Generation.ErrorRate = 1.5 },
		},
		{
			name:   "rejects zero customers",
			mutate: func(cfg *Config) { cfg.Generation.CustomerCount = 0 },
		},
		{
			name:   "rejects malformed window date",
			mutate: func(cfg *Config) { cfg.Windows.DeltaEnd = "15-01-2024" },
		},
		{
			name: "rejects inverted initial window",
			mutate: func(cfg *Config) {
				cfg.Windows.InitialStart = "2023-12-31"
				cfg.Windows.InitialEnd = "2023-01-01"
			},
		},
		{
			name: "rejects inverted delta window",
			mutate: func(cfg *Config) {
				cfg.Windows.DeltaStart = "2024-01-15"
				cfg.Windows.DeltaEnd = "2024-01-01"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsInvalidConfigError(err))
		})
	}

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, defaultConfig().Validate())
	})
}

func TestWindowParsing(t *testing.T) {
	w := defaultConfig().Windows

	start, end, err := w.InitialWindow()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), end)

	deltaStart, deltaEnd, err := w.DeltaWindow()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), deltaStart)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), deltaEnd)

	assert.Equal(t, 15*24*time.Hour, w.Step())
}
