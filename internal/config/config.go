// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MetricsAddr is the listen address of the Prometheus metrics endpoint.
	// Empty disables the metrics listener. Defaults to ":9091".
	MetricsAddr string

	// RedisAddr is the Redis host:port for the external-API response cache.
	// Empty disables caching entirely.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CacheTTL is how long cached external responses (rates, geocoding,
	// forecasts) stay fresh. Defaults to 1h.
	CacheTTL time.Duration

	// Base URLs of the external collaborators. Empty values select each
	// client's public default endpoint; tests point them at local fakes.
	RatesBaseURL   string
	GeocodeBaseURL string
	WeatherBaseURL string

	// AssistAPIKey enables the generative assistant. Empty makes every
	// assistant endpoint report that no model is configured.
	AssistAPIKey  string
	AssistModel   string
	AssistBaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MetricsAddr:    getEnv("METRICS_ADDR", ":9091"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RatesBaseURL:   os.Getenv("RATES_BASE_URL"),
		GeocodeBaseURL: os.Getenv("GEOCODE_BASE_URL"),
		WeatherBaseURL: os.Getenv("WEATHER_BASE_URL"),
		AssistAPIKey:   os.Getenv("ASSIST_API_KEY"),
		AssistModel:    os.Getenv("ASSIST_MODEL"),
		AssistBaseURL:  os.Getenv("ASSIST_BASE_URL"),
	}

	if db, err := strconv.Atoi(getEnv("REDIS_DB", "0")); err == nil {
		cfg.RedisDB = db
	}

	cfg.CacheTTL = time.Hour
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
