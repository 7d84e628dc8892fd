package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("expected default cache type memory, got %s", cfg.Cache.Type)
	}
	if cfg.Serp.Engine != "google" {
		t.Errorf("expected default engine google, got %s", cfg.Serp.Engine)
	}
	if cfg.Serp.Concurrency != 6 {
		t.Errorf("expected default concurrency 6, got %d", cfg.Serp.Concurrency)
	}
	if cfg.Synthesis.MinWords != 20 || cfg.Synthesis.MaxWords != 80 {
		t.Errorf("expected default word window 20-80, got %d-%d", cfg.Synthesis.MinWords, cfg.Synthesis.MaxWords)
	}
	if cfg.Synthesis.ForbiddenTerms != nil {
		t.Errorf("forbidden terms should default to nil, got %v", cfg.Synthesis.ForbiddenTerms)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9090")
	os.Setenv("CACHE_TYPE", "sqlite")
	os.Setenv("SERP_CONCURRENCY", "3")
	os.Setenv("DESCRIPTION_FORBIDDEN_TERMS", "cheap, discount ,, bargain")
	defer os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Cache.Type != "sqlite" {
		t.Errorf("expected cache type sqlite, got %s", cfg.Cache.Type)
	}
	if cfg.Serp.Concurrency != 3 {
		t.Errorf("expected concurrency 3, got %d", cfg.Serp.Concurrency)
	}
	want := []string{"cheap", "discount", "bargain"}
	if len(cfg.Synthesis.ForbiddenTerms) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.Synthesis.ForbiddenTerms)
	}
	for i, term := range want {
		if cfg.Synthesis.ForbiddenTerms[i] != term {
			t.Errorf("expected term %q at %d, got %q", term, i, cfg.Synthesis.ForbiddenTerms[i])
		}
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate, got %v", err)
	}
}

func TestValidate_RejectsBadCacheType(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Cache.Type = "memcached"

	if err := cfg.Validate(); err == nil {
		t.Error("unknown cache type should fail validation")
	}
}

func TestValidate_RejectsConcurrencyOutOfRange(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	cfg.Serp.Concurrency = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero concurrency should fail validation")
	}

	cfg.Serp.Concurrency = 11
	if err := cfg.Validate(); err == nil {
		t.Error("concurrency above 10 should fail validation")
	}
}

func TestValidate_RejectsInvertedWordWindow(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Synthesis.MinWords = 80
	cfg.Synthesis.MaxWords = 20

	if err := cfg.Validate(); err == nil {
		t.Error("inverted word window should fail validation")
	}
}

func TestValidate_RejectsMissingRedisAddress(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Cache.Type = "redis"
	cfg.Cache.Redis.Address = ""

	if err := cfg.Validate(); err == nil {
		t.Error("redis cache without address should fail validation")
	}
}
