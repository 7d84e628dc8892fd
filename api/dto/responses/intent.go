// ABOUTME: Response DTOs for intent building API endpoints
// ABOUTME: Shapes domain results into stable JSON payloads

package responses

import "intent-builder-api/core/domain"

// HealthResponse is the health check payload
type HealthResponse struct {
	OK      bool   `json:"ok" doc:"Service liveness"`
	Version string `json:"version,omitempty" doc:"API version"`
}

// MiningMeta echoes the mining request parameters alongside the results
type MiningMeta struct {
	Queries          []string `json:"queries" doc:"Seed keywords mined"`
	Locale           string   `json:"locale" doc:"Locale used for the searches"`
	ResultsPerQuery  int      `json:"results_per_query" doc:"Results requested per keyword"`
	HTMLFetchEnabled bool     `json:"html_fetch_enabled" doc:"Whether main-text extraction ran"`
}

// MiningResponse is the SERP mining payload
type MiningResponse struct {
	// SerpResults holds one block per seed keyword, in request order
	SerpResults []domain.SerpQueryResult `json:"serp_results" doc:"Per-query SERP results in request order"`

	// Meta echoes the request parameters
	Meta MiningMeta `json:"meta" doc:"Request parameters echoed back"`

	// TotalDocs counts documents across all successful queries
	TotalDocs int `json:"total_docs" doc:"Documents retrieved across all queries"`

	// TotalQueries counts the seed keywords mined
	TotalQueries int `json:"total_queries" doc:"Number of seed keywords mined"`

	// FailedQueries lists the queries whose fetch failed
	FailedQueries []string `json:"failed_queries,omitempty" doc:"Queries that failed to fetch"`
}

// KeyphraseResponse is the direct raw-text extraction payload
type KeyphraseResponse struct {
	// Keyphrases are the ranked extracted keyphrases
	Keyphrases []string `json:"keyphrases" doc:"Ranked keyphrases"`

	// Count is the number of keyphrases returned
	Count int `json:"count" doc:"Number of keyphrases returned"`
}

// ExtractionMeta summarizes what the extraction step analyzed
type ExtractionMeta struct {
	Queries               []string `json:"queries" doc:"Seed keywords behind the evidence"`
	DocsAnalyzed          int      `json:"docs_analyzed" doc:"Documents folded into the evidence"`
	ExtractPhrasesEnabled bool     `json:"extract_phrases_enabled" doc:"Whether keyphrase extraction ran"`
}

// ExtractionResponse is the keyword extraction payload
type ExtractionResponse struct {
	// Topic is the resolved working topic
	Topic string `json:"topic" doc:"Resolved working topic"`

	// RawContent is the aggregated evidence snapshot
	RawContent domain.AggregatedContent `json:"raw_content" doc:"Aggregated term, phrase, and keyphrase evidence"`

	// DraftDescription is the provisional pre-synthesis description
	DraftDescription string `json:"draft_description" doc:"Provisional description built from top evidence"`

	// Meta summarizes what was analyzed
	Meta ExtractionMeta `json:"meta" doc:"Extraction summary"`
}

// DescribeResponse is the description synthesis payload
type DescribeResponse struct {
	// Lens echoes the perspective used for synthesis
	Lens string `json:"lens" doc:"Perspective used for synthesis"`

	// Names are the deduplicated candidate names
	Names []string `json:"names" doc:"Candidate intent names"`

	// Description is the validated two-sentence description
	Description string `json:"description" doc:"Validated description"`

	// Validation reports the rule checks for the returned description
	Validation domain.DescriptionValidation `json:"validation" doc:"Rule check results"`
}

// PipelineMeta echoes the fused pipeline parameters and analysis summary
type PipelineMeta struct {
	Queries          []string `json:"queries" doc:"Seed keywords mined"`
	Locale           string   `json:"locale" doc:"Locale used for the searches"`
	ResultsPerQuery  int      `json:"results_per_query" doc:"Results requested per keyword"`
	HTMLFetchEnabled bool     `json:"html_fetch_enabled" doc:"Whether main-text extraction ran"`
	DocsAnalyzed     int      `json:"docs_analyzed" doc:"Documents folded into the evidence"`
	FailedQueries    []string `json:"failed_queries,omitempty" doc:"Queries that failed to fetch"`
}

// PipelineResponse is the fused pipeline payload
type PipelineResponse struct {
	// Topic is the resolved working topic
	Topic string `json:"topic" doc:"Resolved working topic"`

	// SerpResults holds one block per seed keyword, in request order
	SerpResults []domain.SerpQueryResult `json:"serp_results" doc:"Per-query SERP results in request order"`

	// RawContent is the aggregated evidence snapshot
	RawContent domain.AggregatedContent `json:"raw_content" doc:"Aggregated term, phrase, and keyphrase evidence"`

	// DraftDescription is the provisional pre-synthesis description
	DraftDescription string `json:"draft_description" doc:"Provisional description built from top evidence"`

	// Meta echoes the request parameters and analysis summary
	Meta PipelineMeta `json:"meta" doc:"Pipeline summary"`

	// Description is present for the mine-extract-describe pipeline only
	Description *DescribeResponse `json:"description,omitempty" doc:"Synthesized description, full pipeline only"`
}
