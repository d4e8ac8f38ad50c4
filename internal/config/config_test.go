package config

import (
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port == "" {
		t.Error("port must have a default")
	}
	if cfg.JWTExpirationDays <= 0 {
		t.Errorf("JWTExpirationDays = %d, want a positive default", cfg.JWTExpirationDays)
	}
	if !strings.Contains(cfg.Database.DSN, "parseTime=True") {
		t.Errorf("DSN %q must enable parseTime for time columns", cfg.Database.DSN)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "portal_test")
	t.Setenv("JWT_EXPIRATION_DAYS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("port = %q, want 9999", cfg.Port)
	}
	if cfg.JWTExpirationDays != 3 {
		t.Errorf("JWTExpirationDays = %d, want 3", cfg.JWTExpirationDays)
	}
	if !strings.Contains(cfg.Database.DSN, "db.internal") || !strings.Contains(cfg.Database.DSN, "portal_test") {
		t.Errorf("DSN %q missing overridden host/name", cfg.Database.DSN)
	}
}

func TestLoadConfig_BadNumbers(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_DAYS", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Error("non-numeric JWT_EXPIRATION_DAYS must fail")
	}
}
