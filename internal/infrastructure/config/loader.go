package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment. A
// missing config file is not an error: the defaults describe a complete
// run, and environment variables can override any of them.
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Don't return error, just log it or continue
		fmt.Println("Warning: Could not load .env file:", err)
	}

	// Get environment
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	// Add config paths
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	// Set default values for every setting
	setDefaults(v)

	// Read the config file if one exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix("TS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set the environment in the config
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil // Successfully loaded .env file
			} else {
				lastError = err
			}
		}
	}

	// Return the last error encountered if no .env file was successfully loaded
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every setting. The generation
// defaults reproduce the canonical dataset shape.
func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")

	// Output defaults
	v.SetDefault("output.directory", "data")
	v.SetDefault("output.filePrefix", "financial_transactions")
	v.SetDefault("output.splitInitial", true)

	// Generation defaults
	v.SetDefault("generation.seed", 42)
	v.SetDefault("generation.baseRecords", 1000)
	v.SetDefault("generation.recordsPerDelta", 250)
	v.SetDefault("generation.deltaFiles", 2)
	v.SetDefault("generation.mutatePercent", 30)
	v.SetDefault("generation.errorRate", 0.05)
	v.SetDefault("generation.optionalFieldFactor", 1.5)
	v.SetDefault("generation.customerCount", 200)

	// Window defaults
	v.SetDefault("windows.initialStart", "2023-01-01")
	v.SetDefault("windows.initialEnd", "2023-12-31")
	v.SetDefault("windows.deltaStart", "2024-01-01")
	v.SetDefault("windows.deltaEnd", "2024-01-15")
	v.SetDefault("windows.deltaStepDays", 15)
}

// getEnvironment determines the environment to use based on TS_ENV
func getEnvironment() string {
	env := os.Getenv("TS_ENV")
	if env == "" {
		// Default to development if not specified
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// Output settings
	if dir := os.Getenv("TS_OUTPUT_DIR"); dir != "" {
		v.Set("output.directory", dir)
	}
	if prefix := os.Getenv("TS_OUTPUT_PREFIX"); prefix != "" {
		v.Set("output.filePrefix", prefix)
	}
	if split := os.Getenv("TS_SPLIT_INITIAL"); split != "" {
		if b, err := strconv.ParseBool(split); err == nil {
			v.Set("output.splitInitial", b)
		}
	}

	// Generation settings
	if seed := os.Getenv("TS_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			v.Set("generation.seed", n)
		}
	}
	if n := getEnvInt("TS_BASE_RECORDS", 0); n > 0 {
		v.Set("generation.baseRecords", n)
	}
	if n := getEnvInt("TS_RECORDS_PER_DELTA", -1); n >= 0 {
		v.Set("generation.recordsPerDelta", n)
	}
	if n := getEnvInt("TS_DELTA_FILES", -1); n >= 0 {
		v.Set("generation.deltaFiles", n)
	}
	if n := getEnvInt("TS_MUTATE_PERCENT", -1); n >= 0 {
		v.Set("generation.mutatePercent", n)
	}
	if f := getEnvFloat("TS_ERROR_RATE", -1); f >= 0 {
		v.Set("generation.errorRate", f)
	}
	if f := getEnvFloat("TS_OPTIONAL_FIELD_FACTOR", -1); f >= 0 {
		v.Set("generation.optionalFieldFactor", f)
	}
	if n := getEnvInt("TS_CUSTOMER_COUNT", 0); n > 0 {
		v.Set("generation.customerCount", n)
	}

	// Logger settings
	if logLevel := os.Getenv("TS_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// Helper function to get environment variable as float
func getEnvFloat(name string, defaultVal float64) float64 {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return defaultVal
	}
	return val
}
