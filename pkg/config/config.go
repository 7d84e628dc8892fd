// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, SERP, and synthesis settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Serp contains search API configuration
	Serp SerpConfig

	// Synthesis contains description generation and validation configuration
	Synthesis SynthesisConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string

	// LogFormat selects the log output format (text/json)
	LogFormat string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RequestTimeout is the per-request timeout in seconds
	RequestTimeout int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains file-backed cache configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// SerpConfig holds search API configuration
type SerpConfig struct {
	// APIURL is the search API endpoint
	APIURL string

	// APIKey authenticates against the search API
	APIKey string

	// Engine selects the search engine
	Engine string

	// Concurrency bounds simultaneous per-query fetches (1..10)
	Concurrency int

	// CacheTTL is the per-query result cache TTL in seconds
	CacheTTL int
}

// SynthesisConfig holds description generation configuration
type SynthesisConfig struct {
	// GeminiAPIKey authenticates the generation provider; empty disables it
	GeminiAPIKey string

	// GeminiModel names the generation model
	GeminiModel string

	// MinWords is the validation lower word bound
	MinWords int

	// MaxWords is the validation upper word bound
	MaxWords int

	// ForbiddenTerms overrides the default promotional-language list when
	// non-empty (comma-separated in the environment)
	ForbiddenTerms []string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RequestTimeout: getEnvAsIntOrDefault("REQUEST_TIMEOUT", 120),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Serp: SerpConfig{
			APIURL:      getEnvOrDefault("SERP_API_URL", "https://www.searchapi.io/api/v1/search"),
			APIKey:      getEnvOrDefault("SERP_API_KEY", ""),
			Engine:      getEnvOrDefault("SERP_ENGINE", "google"),
			Concurrency: getEnvAsIntOrDefault("SERP_CONCURRENCY", 6),
			CacheTTL:    getEnvAsIntOrDefault("SERP_CACHE_TTL", 900),
		},
		Synthesis: SynthesisConfig{
			GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
			GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			MinWords:       getEnvAsIntOrDefault("DESCRIPTION_MIN_WORDS", 20),
			MaxWords:       getEnvAsIntOrDefault("DESCRIPTION_MAX_WORDS", 80),
			ForbiddenTerms: getEnvAsListOrDefault("DESCRIPTION_FORBIDDEN_TERMS", nil),
		},
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable,
// trimming whitespace and dropping empty entries
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RequestTimeout < 1 {
		return errors.New("request timeout must be at least 1 second")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Serp.Concurrency < 1 || c.Serp.Concurrency > 10 {
		return errors.New("serp concurrency must be between 1 and 10")
	}

	if c.Synthesis.MinWords < 1 {
		return errors.New("description minimum word count must be at least 1")
	}

	if c.Synthesis.MinWords >= c.Synthesis.MaxWords {
		return errors.New("description minimum word count must be below the maximum")
	}

	return nil
}
