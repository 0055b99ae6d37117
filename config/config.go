package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// Inputs
	ScenarioFile string
	HolidayFile  string // empty = built-in seed holidays

	// Output
	OutputDir      string
	ExportPlatform string
	ExportFormats  []string // csv, tsv, xlsx, pdf

	// Database; empty disables publishing
	DatabaseURL string
	MaxRetries  int

	// PDF rendering
	RenderTimeout time.Duration

	// Logging
	LogFile      string
	LogMaxSizeMB int
}

// Load reads configuration from environment variables or falls back to defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ScenarioFile:   getEnv("SCENARIO_FILE", ""),
		HolidayFile:    getEnv("HOLIDAY_FILE", ""),
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		ExportPlatform: getEnv("EXPORT_PLATFORM", "airbnb"),
		ExportFormats:  getEnvList("EXPORT_FORMATS", []string{"csv"}),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		RenderTimeout:  time.Duration(getEnvInt("RENDER_TIMEOUT_SEC", 30)) * time.Second,
		LogFile:        getEnv("LOG_FILE", ""),
		LogMaxSizeMB:   getEnvInt("LOG_MAX_SIZE_MB", 10),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return SplitList(val)
}

// SplitList splits a comma separated list, trimming and lowercasing entries
func SplitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
