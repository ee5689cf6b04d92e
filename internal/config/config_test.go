package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultLocale != "en" || cfg.MatchWorkers != 8 || !cfg.MetricsEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ResultCacheTTL() != 10*time.Minute {
		t.Fatalf("expected 10m cache ttl, got %v", cfg.ResultCacheTTL())
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DEFAULT_LOCALE", "pt")
	t.Setenv("MATCH_WORKERS", "3")
	t.Setenv("RESULT_CACHE_TTL_SECONDS", "30")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultLocale != "pt" || cfg.MatchWorkers != 3 || cfg.MetricsEnabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ResultCacheTTL() != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.ResultCacheTTL())
	}
}

func TestLoadConfig_InvalidInt(t *testing.T) {
	t.Setenv("MATCH_WORKERS", "many")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
