package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TODOCTL_LOG_LEVEL", "")
	t.Setenv("TODOCTL_COLOR", "")
	t.Setenv("TODOCTL_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "todoctl" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
	if cfg.Color != ColorAuto {
		t.Fatalf("expected auto color, got %q", cfg.Color)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("expected no timeout, got %s", cfg.Timeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TODOCTL_LOG_LEVEL", "DEBUG")
	t.Setenv("TODOCTL_COLOR", "never")
	t.Setenv("TODOCTL_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel)
	}
	if cfg.Color != ColorNever {
		t.Fatalf("expected never color, got %q", cfg.Color)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Timeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"color":   {"TODOCTL_COLOR", "rainbow"},
		"timeout": {"TODOCTL_TIMEOUT_SECONDS", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestSetColor(t *testing.T) {
	var cfg Config
	if err := cfg.SetColor(" Always "); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if cfg.Color != ColorAlways {
		t.Fatalf("expected always, got %q", cfg.Color)
	}
	if err := cfg.SetColor(""); err != nil || cfg.Color != ColorAuto {
		t.Fatalf("empty color should fall back to auto, got %q err=%v", cfg.Color, err)
	}
}
