package config

import (
	"testing"
	"time"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()

	if cfg.DatabaseHost != "localhost" {
		t.Errorf("expected default DB host localhost, got %s", cfg.DatabaseHost)
	}
	if cfg.Decision.ScenarioLimit != 20 {
		t.Errorf("expected default scenario limit 20, got %d", cfg.Decision.ScenarioLimit)
	}
	if cfg.Decision.CacheEnabled {
		t.Error("cache must be disabled by default")
	}
	if cfg.Decision.CacheTTL != 15*time.Minute {
		t.Errorf("expected default cache TTL 15m, got %s", cfg.Decision.CacheTTL)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "pricewaze_test")
	t.Setenv("DECISION_SCENARIO_LIMIT", "50")
	t.Setenv("DECISION_CACHE_ENABLED", "true")
	t.Setenv("DECISION_CACHE_TTL_MINUTES", "5")

	cfg := LoadFromEnv()

	if cfg.DatabaseName != "pricewaze_test" {
		t.Errorf("expected DB name pricewaze_test, got %s", cfg.DatabaseName)
	}
	if cfg.Decision.ScenarioLimit != 50 {
		t.Errorf("expected scenario limit 50, got %d", cfg.Decision.ScenarioLimit)
	}
	if !cfg.Decision.CacheEnabled {
		t.Error("expected cache enabled")
	}
	if cfg.Decision.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache TTL 5m, got %s", cfg.Decision.CacheTTL)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("DECISION_SCENARIO_LIMIT", "not-a-number")

	if got := getEnvInt("DECISION_SCENARIO_LIMIT", 20); got != 20 {
		t.Errorf("expected fallback 20 for malformed value, got %d", got)
	}
	if got := getEnvInt("DECISION_UNSET_KEY", 7); got != 7 {
		t.Errorf("expected fallback 7 for unset key, got %d", got)
	}
}
