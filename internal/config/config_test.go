package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	if cfg.Port != "4000" {
		t.Errorf("expected default port 4000, got %q", cfg.Port)
	}
	if cfg.StaticDir != "public" {
		t.Errorf("expected default static dir public, got %q", cfg.StaticDir)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/students")
	t.Setenv("PORT", "8080")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	if cfg.DatabaseURL != "postgres://localhost/students" {
		t.Errorf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("unexpected port %q", cfg.Port)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	if got := getEnvInt("BCRYPT_COST", 10); got != 10 {
		t.Errorf("expected fallback 10 for invalid value, got %d", got)
	}
}
