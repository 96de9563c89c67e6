package config

import (
	"testing"
	"time"
)

// No configs/ directory exists relative to this package, so Load falls back
// to environment-only configuration.

func TestLoad_MissingSigningKey(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when signing key is unset")
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("NOTES_AUTH_SIGNING_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.SigningKey != "test-secret" {
		t.Errorf("signing key: got %q", cfg.Auth.SigningKey)
	}
	if cfg.Port != "8080" {
		t.Errorf("port default: got %q, want 8080", cfg.Port)
	}
	if cfg.DB.Path != "notes.db" {
		t.Errorf("db path default: got %q", cfg.DB.Path)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("token ttl default: got %v, want 30m", cfg.Auth.TokenTTL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level default: got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NOTES_AUTH_SIGNING_KEY", "test-secret")
	t.Setenv("NOTES_PORT", "9090")
	t.Setenv("NOTES_AUTH_TOKEN_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port: got %q, want 9090", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 5*time.Minute {
		t.Errorf("token ttl: got %v, want 5m", cfg.Auth.TokenTTL)
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("NOTES_AUTH_SIGNING_KEY", "test-secret")
	t.Setenv("NOTES_AUTH_BCRYPT_COST", "99")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for out-of-range bcrypt cost")
	}
}
