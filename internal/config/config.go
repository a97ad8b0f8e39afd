// Package config centralises configuration parsing for the fitness tracker.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration values for the tracker.
type Config struct {
	LogPrefix      string
	FailFast       bool // Stop at the first rejected package.
	MetricsSummary bool // Log collected metrics after the run.
}

// Load reads environment variables into Config. Defaults reproduce the reference run.
func Load() Config {
	return Config{
		LogPrefix:      getEnv("TRACKER_LOG_PREFIX", "[tracker] "),
		FailFast:       getBoolEnv("TRACKER_FAIL_FAST", false),
		MetricsSummary: getBoolEnv("TRACKER_METRICS_SUMMARY", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
