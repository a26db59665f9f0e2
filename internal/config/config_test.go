package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.HTTPPort != "4000" {
		t.Fatalf("unexpected port: %s", cfg.HTTPPort)
	}
	if cfg.JWTExpiresIn != 168*time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.JWTExpiresIn)
	}
	if cfg.JenkinsTimeout != 30*time.Second {
		t.Fatalf("unexpected upstream timeout: %s", cfg.JenkinsTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("JWT_EXPIRES_IN", "24h")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.HTTPPort != "9999" || cfg.JWTExpiresIn != 24*time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
