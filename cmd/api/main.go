// ABOUTME: Main entry point for the Intent Builder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intent-builder-api/api"
	"intent-builder-api/api/handlers"
	"intent-builder-api/core/aggregate"
	"intent-builder-api/core/describe"
	"intent-builder-api/core/interfaces"
	"intent-builder-api/core/keyphrase"
	"intent-builder-api/core/pipeline"
	"intent-builder-api/core/serp"
	"intent-builder-api/infrastructure/cache/memory"
	"intent-builder-api/infrastructure/cache/redis"
	"intent-builder-api/infrastructure/cache/sqlite"
	"intent-builder-api/infrastructure/generator/gemini"
	stdhttp "intent-builder-api/infrastructure/http/standard"
	logruslogger "intent-builder-api/infrastructure/logger/logrus"
	"intent-builder-api/pkg/config"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting Intent Builder API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = sqliteCache
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the generation provider; missing credentials disable it and
	// every synthesis call uses the deterministic fallback
	var textGenerator interfaces.TextGenerator
	if cfg.Synthesis.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(httpClient, gemini.Config{
			APIKey: cfg.Synthesis.GeminiAPIKey,
			Model:  cfg.Synthesis.GeminiModel,
		})
		if err != nil {
			logger.Warn("Failed to create Gemini client, descriptions use fallback templates", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			textGenerator = geminiClient
			logger.Info("Using Gemini generation provider", map[string]interface{}{
				"model": cfg.Synthesis.GeminiModel,
			})
		}
	} else {
		logger.Info("No generation provider configured, descriptions use fallback templates", nil)
	}

	// Create services
	serpService := serp.NewService(deps, serp.Config{
		APIURL:      cfg.Serp.APIURL,
		APIKey:      cfg.Serp.APIKey,
		Engine:      cfg.Serp.Engine,
		Concurrency: cfg.Serp.Concurrency,
		CacheTTL:    time.Duration(cfg.Serp.CacheTTL) * time.Second,
	})
	maintextEnricher := serp.NewEnricher(serpService)
	aggregateService := aggregate.NewService(deps)
	keyphraseExtractor := keyphrase.NewExtractor()
	validator := describe.NewValidator(describe.ValidatorConfig{
		MinWords:       cfg.Synthesis.MinWords,
		MaxWords:       cfg.Synthesis.MaxWords,
		ForbiddenTerms: cfg.Synthesis.ForbiddenTerms,
	})
	describeService := describe.NewService(deps, textGenerator, validator)
	pipelineService := pipeline.NewService(deps, serpService, aggregateService, keyphraseExtractor, describeService, maintextEnricher)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewHealthHandler(version).RegisterRoutes(humaAPI)
	handlers.NewMiningHandler(serpService, maintextEnricher).RegisterRoutes(humaAPI)
	handlers.NewExtractionHandler(pipelineService, keyphraseExtractor).RegisterRoutes(humaAPI)
	handlers.NewDescribeHandler(pipelineService).RegisterRoutes(humaAPI)
	handlers.NewPipelineHandler(pipelineService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
