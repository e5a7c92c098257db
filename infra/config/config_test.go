package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FirebaseURL != "https://hacker-news.firebaseio.com" {
		t.Fatalf("unexpected firebase url: %q", cfg.FirebaseURL)
	}
	if cfg.AlgoliaURL != "https://hn.algolia.com" {
		t.Fatalf("unexpected algolia url: %q", cfg.AlgoliaURL)
	}
	if cfg.PageSize != 10 || cfg.Strategy != StrategyShallow {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.HTTPTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TERMINALHN_FIREBASE_URL", "https://mirror.example/")
	t.Setenv("TERMINALHN_PAGE_SIZE", "25")
	t.Setenv("TERMINALHN_STRATEGY", "bulk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FirebaseURL != "https://mirror.example" {
		t.Fatalf("url must be normalized: %q", cfg.FirebaseURL)
	}
	if cfg.PageSize != 25 || cfg.Strategy != StrategyBulk {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoad_RejectsRelativeURL(t *testing.T) {
	t.Setenv("TERMINALHN_ALGOLIA_URL", "not-a-url")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for relative URL")
	}
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	t.Setenv("TERMINALHN_STRATEGY", "mystery")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestLoad_RejectsZeroPageSize(t *testing.T) {
	t.Setenv("TERMINALHN_PAGE_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero page size")
	}
}
