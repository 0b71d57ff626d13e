// Package config provides centralized configuration loaded from
// environment variables. Shared by cmd/export and cmd/api.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Season types — the values the stats API accepts
// --------------------------------------------------------------------------

var SeasonTypes = []string{"Regular Season", "Playoffs", "Pre Season", "All-Star"}

// IsValidSeasonType reports whether the stats API accepts the value.
func IsValidSeasonType(s string) bool {
	for _, t := range SeasonTypes {
		if s == t {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Output
	OutDir string

	// Stats API
	StatsBaseURL      string
	ScheduleBaseURL   string
	RequestsPerMinute int

	// Failure backoff
	BackoffInitial    time.Duration
	BackoffMultiplier float64
	BackoffMax        time.Duration

	// Postgres mirror (only the load command needs it)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Export file server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string
}

// Load reads configuration from environment variables with sensible
// defaults. DATABASE_URL may be empty; commands that need Postgres check
// for it themselves.
func Load() (*Config, error) {
	return &Config{
		OutDir: envOr("EXPORT_OUT_DIR", "exports"),

		StatsBaseURL:      envOr("STATS_BASE_URL", ""),
		ScheduleBaseURL:   envOr("SCHEDULE_BASE_URL", ""),
		RequestsPerMinute: envInt("STATS_REQUESTS_PER_MINUTE", 40),

		BackoffInitial:    time.Duration(envInt("BACKOFF_INITIAL_SECONDS", 20)) * time.Second,
		BackoffMultiplier: envFloat("BACKOFF_MULTIPLIER", 1.5),
		BackoffMax:        time.Duration(envInt("BACKOFF_MAX_SECONDS", 1800)) * time.Second,

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
