package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"tripsketch/services"
	"tripsketch/store"
)

// DefaultOrigins are the local dev servers allowed by CORS.
var DefaultOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	PlanLatency    time.Duration
	LogLevel       string
	MaxSessions    int
	CookieSecure   bool
}

// Load reads the configuration from the environment. Malformed values fall
// back to their defaults.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: append([]string(nil), DefaultOrigins...),
		PlanLatency:    services.DefaultLatency,
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		MaxSessions:    store.DefaultMaxSessions,
	}

	// FRONTEND_URL may carry several comma-separated origins
	for _, u := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, u)
		}
	}

	if v := os.Getenv("PLAN_LATENCY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.PlanLatency = d
		}
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSessions = n
		}
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CookieSecure = b
		}
	}
	return cfg
}

func (c Config) Release() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
