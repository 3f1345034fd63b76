package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "UPLOAD_DIR", "MAX_UPLOAD_MB", "LOG_LEVEL",
		"SUPABASE_URL", "SUPABASE_SERVICE_KEY", "DATABASE_HEALTHCHECK_TABLE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("port: got %q, want 8000", cfg.Port)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("upload dir: got %q, want uploads", cfg.UploadDir)
	}
	if cfg.MaxUploadMB != 512 {
		t.Errorf("max upload: got %d, want 512", cfg.MaxUploadMB)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level: got %q, want info", cfg.LogLevel)
	}
	if cfg.ProbeTable != "templates" {
		t.Errorf("probe table: got %q, want templates", cfg.ProbeTable)
	}
	if cfg.SupabaseConfigured() {
		t.Error("supabase should not count as configured with empty env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/tmp/assets")
	t.Setenv("MAX_UPLOAD_MB", "64")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_HEALTHCHECK_TABLE", "presets")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.UploadDir != "/tmp/assets" {
		t.Errorf("upload dir: got %q", cfg.UploadDir)
	}
	if cfg.MaxUploadMB != 64 {
		t.Errorf("max upload: got %d", cfg.MaxUploadMB)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: got %q", cfg.LogLevel)
	}
	if cfg.ProbeTable != "presets" {
		t.Errorf("probe table: got %q", cfg.ProbeTable)
	}
}

func TestLoad_BadMaxUploadFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")
	if cfg := Load(); cfg.MaxUploadMB != 512 {
		t.Errorf("got %d, want fallback 512", cfg.MaxUploadMB)
	}

	t.Setenv("MAX_UPLOAD_MB", "-5")
	if cfg := Load(); cfg.MaxUploadMB != 512 {
		t.Errorf("got %d, want fallback 512 for negative value", cfg.MaxUploadMB)
	}
}

func TestSupabaseConfigured_NeedsBothValues(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	if Load().SupabaseConfigured() {
		t.Error("url alone should not count as configured")
	}

	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	if !Load().SupabaseConfigured() {
		t.Error("url plus key should count as configured")
	}
}

func TestInitLogger_Level(t *testing.T) {
	InitLogger("warn")
	if Log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level: got %v, want warn", Log.GetLevel())
	}

	InitLogger("nonsense")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("bad level should fall back to info, got %v", Log.GetLevel())
	}
}
