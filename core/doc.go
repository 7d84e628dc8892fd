// Package core contains the business logic for the Intent Builder API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SerpDocument, AggregatedContent, Lens, ...)
// - serp: SERP mining with bounded concurrency and per-query error capture
// - aggregate: Term and phrase frequency aggregation over mined documents
// - keyphrase: Degree-over-frequency keyphrase extraction
// - describe: Lens-conditioned description synthesis with validation
// - pipeline: Orchestration of the steps into fused runs
// - textutil: Tokenization, stopwords, and text normalization shared by the above
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, generator)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "intent-builder-api/core/interfaces"
//	    "intent-builder-api/core/serp"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	miner := serp.NewService(deps, serp.Config{APIKey: key})
//	results, err := miner.MineSERPs(ctx, []string{"roof repair"}, "en-US", 30)
//
// Aggregation and synthesis are deterministic for a given input, so the
// fused pipeline endpoints return exactly what the step endpoints compose to.
package core
