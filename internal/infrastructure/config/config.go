package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	errs "txnsynth/internal/domain/error"
)

// DateLayout is the format of window boundary dates in configuration
const DateLayout = "2006-01-02"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Output      OutputConfig     `mapstructure:"output"`
	Generation  GenerationConfig `mapstructure:"generation"`
	Windows     WindowsConfig    `mapstructure:"windows"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// OutputConfig describes where snapshot files are written
type OutputConfig struct {
	Directory    string `mapstructure:"directory" validate:"required"`
	FilePrefix   string `mapstructure:"filePrefix" validate:"required"`
	SplitInitial bool   `mapstructure:"splitInitial"`
}

// GenerationConfig sizes one dataset run
type GenerationConfig struct {
	Seed                int64   `mapstructure:"seed"`
	BaseRecords         int     `mapstructure:"baseRecords" validate:"gte=1"`
	RecordsPerDelta     int     `mapstructure:"recordsPerDelta" validate:"gte=0"`
	DeltaFiles          int     `mapstructure:"deltaFiles" validate:"gte=0"`
	MutatePercent       int     `mapstructure:"mutatePercent" validate:"gte=0,lte=100"`
	ErrorRate           float64 `mapstructure:"errorRate" validate:"gte=0,lte=1"`
	OptionalFieldFactor float64 `mapstructure:"optionalFieldFactor" validate:"gte=0"`
	CustomerCount       int     `mapstructure:"customerCount" validate:"gte=1"`
}

// WindowsConfig bounds the timestamp windows of a run. Dates use the
// DateLayout format and are interpreted as UTC.
type WindowsConfig struct {
	InitialStart  string `mapstructure:"initialStart" validate:"required"`
	InitialEnd    string `mapstructure:"initialEnd" validate:"required"`
	DeltaStart    string `mapstructure:"deltaStart" validate:"required"`
	DeltaEnd      string `mapstructure:"deltaEnd" validate:"required"`
	DeltaStepDays int    `mapstructure:"deltaStepDays" validate:"gte=1"`
}

// InitialWindow returns the parsed bounds of the initial phase
func (w WindowsConfig) InitialWindow() (time.Time, time.Time, error) {
	start, err := parseDate("windows.initialStart", w.InitialStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("windows.initialEnd", w.InitialEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// DeltaWindow returns the parsed base bounds of the delta phases
func (w WindowsConfig) DeltaWindow() (time.Time, time.Time, error) {
	start, err := parseDate("windows.deltaStart", w.DeltaStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("windows.deltaEnd", w.DeltaEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Step returns how much further each delta window reaches
func (w WindowsConfig) Step() time.Duration {
	return time.Duration(w.DeltaStepDays) * 24 * time.Hour
}

// Validate checks the configuration: struct tags first, then window date
// parsing and ordering.
//
// Possible errors:
// - ErrInvalidConfig: naming the first field that failed
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return errs.NewConfigError(first.Namespace(), fmt.Sprintf("failed %q validation", first.Tag()))
		}
		return errs.NewConfigError("config", err.Error())
	}

	initialStart, initialEnd, err := c.Windows.InitialWindow()
	if err != nil {
		return err
	}
	if !initialEnd.After(initialStart) {
		return errs.NewConfigError("windows.initialEnd", "must be after windows.initialStart")
	}

	deltaStart, deltaEnd, err := c.Windows.DeltaWindow()
	if err != nil {
		return err
	}
	if !deltaEnd.After(deltaStart) {
		return errs.NewConfigError("windows.deltaEnd", "must be after windows.deltaStart")
	}

	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewConfigError(field, fmt.Sprintf("%q is not a %s date", value, DateLayout))
	}
	return t, nil
}
