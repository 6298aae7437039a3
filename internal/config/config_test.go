package config_test

import (
	"strings"
	"testing"

	"github.com/dmarquezl/aurora-rrhh/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AURORA_JWT_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.DatabasePath != "aurora-rrhh.db" {
		t.Errorf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Error("expected cookies to be secure by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AURORA_JWT_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("AURORA_JWT_SECRET", "too-short")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for short JWT secret")
	}
	if !strings.Contains(err.Error(), "32") {
		t.Errorf("expected error to mention minimum length, got %v", err)
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("AURORA_JWT_SECRET", testSecret)
	t.Setenv("AURORA_BCRYPT_COST", "20")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for bcrypt cost out of range")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("AURORA_JWT_SECRET", testSecret)
	t.Setenv("AURORA_CORS_ORIGINS", "https://rrhh.example.com, https://staging.example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"https://rrhh.example.com", "https://staging.example.com"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %d", len(want), len(cfg.CORSOrigins))
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.CORSOrigins[i])
		}
	}
}
