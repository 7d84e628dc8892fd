package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"intent-builder-api/pkg/config"
)

// Connectivity tests need a running Redis instance; they are skipped unless
// REDIS_TEST=1 is set.

func skipIfNoRedis(t *testing.T) {
	t.Helper()
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}
}

func testConfig() config.RedisConfig {
	return config.RedisConfig{
		Address:  "localhost:6379",
		Password: "",
		DB:       0,
	}
}

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	if err == nil {
		t.Error("NewRedisCache should return an error for an empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil for an invalid config")
	}
}

func TestRedisCache_SetAndGet(t *testing.T) {
	skipIfNoRedis(t)

	cache, err := NewRedisCache(testConfig())
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	if err := cache.Set(ctx, "intent-test-key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	defer cache.Delete(ctx, "intent-test-key")

	got, err := cache.Get(ctx, "intent-test-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("expected 'value', got %q", got)
	}
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	skipIfNoRedis(t)

	cache, err := NewRedisCache(testConfig())
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	defer cache.Close()

	if _, err := cache.Get(context.Background(), "intent-test-missing"); err == nil {
		t.Error("missing key should return an error")
	}
}

func TestRedisCache_Delete(t *testing.T) {
	skipIfNoRedis(t)

	cache, err := NewRedisCache(testConfig())
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, "intent-test-delete", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "intent-test-delete"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "intent-test-delete"); err == nil {
		t.Error("deleted key should return an error")
	}
}
