package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Data source
	DataPath    string // path to a delimited OHLC file
	SQLitePath  string // path to a SQLite bars database
	PostgresDSN string // Postgres connection string, empty disables
	Symbol      string // symbol filter for database sources

	// Batch run
	SweepSpecPath string // YAML sweep spec, empty uses defaults
	ResultsDir    string // directory for batch result files
	TopResults    int    // rows kept per result file

	// Observability
	MetricsAddr string // empty disables the metrics endpoint
	LogLevel    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		DataPath:    getEnv("DATA_PATH", "data/bars.csv"),
		SQLitePath:  getEnv("SQLITE_PATH", ""),
		PostgresDSN: getEnv("POSTGRES_DSN", ""),
		Symbol:      getEnv("SYMBOL", ""),

		SweepSpecPath: getEnv("SWEEP_SPEC", ""),
		ResultsDir:    getEnv("RESULTS_DIR", "results"),
		TopResults:    getEnvInt("TOP_RESULTS", 10),

		MetricsAddr: getEnv("METRICS_ADDR", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}
