package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray .env is picked up, and unset
	// the asserted keys so ambient environment cannot leak in. t.Setenv
	// registers the restore; Unsetenv makes the tag defaults apply.
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "RATE_LIMIT_RPS", "AI_GATEWAY_URL", "AI_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 20 {
		t.Fatalf("unexpected default rate limit %v", cfg.Server.RateLimit)
	}
	if cfg.AI.BaseURL == "" {
		t.Fatal("missing default gateway URL")
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.AI.Timeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_GATEWAY_API_KEY", "secret")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_MODEL", "test-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("port override not applied: %q", cfg.Server.Port)
	}
	if cfg.AI.APIKey != "secret" {
		t.Fatalf("api key not applied: %q", cfg.AI.APIKey)
	}
	if cfg.AI.Timeout != 5*time.Second {
		t.Fatalf("timeout override not applied: %v", cfg.AI.Timeout)
	}
	if cfg.AI.Model != "test-model" {
		t.Fatalf("model override not applied: %q", cfg.AI.Model)
	}
}

func TestAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: "8081"}
	if got := s.Addr(); got != "127.0.0.1:8081" {
		t.Fatalf("unexpected addr %q", got)
	}
}
