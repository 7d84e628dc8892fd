// Package api provides the HTTP API layer for the Intent Builder service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// The pipeline is exposed both as individual steps and as fused runs:
//
//   - POST /v1/step1/serp-mining: fetch SERP documents per seed keyword
//   - POST /v1/step2/keyword-extraction: aggregate terms, phrases, keyphrases
//   - POST /v1/extract: keyphrase extraction over raw text
//   - POST /v1/phase2/describe: synthesize a validated lens description
//   - POST /v1/phase1/process: mining plus extraction in one call
//   - POST /v1/phase1+2/process: the full pipeline including synthesis
//   - GET  /health: liveness probe
//
// # Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type MiningRequest struct {
//	    SeedKeywords    []string `json:"seed_keywords" minItems:"1" maxItems:"20"`
//	    Locale          string   `json:"locale,omitempty" default:"en-US"`
//	    ResultsPerQuery int      `json:"results_per_query,omitempty" minimum:"1" maximum:"100" default:"30"`
//	}
//
// The OpenAPI 3.0 spec is generated automatically: the JSON document is
// served at /openapi.json and the interactive UI at /docs.
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Domain errors
// are mapped to HTTP status codes in handlers/errors.go: validation errors
// become 400, upstream provider failures become 502/503.
package api
