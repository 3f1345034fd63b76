package config

import (
	"os"
	"strconv"
)

// Config holds the service configuration, read once from the environment
// at startup.
type Config struct {
	Port        string
	UploadDir   string
	MaxUploadMB int
	LogLevel    string

	SupabaseURL        string
	SupabaseServiceKey string
	ProbeTable         string
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 512),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		ProbeTable:         getEnv("DATABASE_HEALTHCHECK_TABLE", "templates"),
	}
}

// SupabaseConfigured reports whether both Supabase settings are present.
// When false the diagnostics endpoint skips the database probe.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
