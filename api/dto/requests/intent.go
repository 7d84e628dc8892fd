// ABOUTME: Request DTOs for intent building API endpoints
// ABOUTME: Provides validation tags and default values for incoming requests

package requests

import "intent-builder-api/core/domain"

// MiningRequest represents the request body for SERP mining
type MiningRequest struct {
	// SeedKeywords is the list of search queries to mine
	SeedKeywords []string `json:"seed_keywords" minItems:"1" maxItems:"20" doc:"Seed keywords to mine SERPs for (1-20)"`

	// Locale is the language-region pair for the search, e.g. en-US
	Locale string `json:"locale,omitempty" default:"en-US" doc:"Locale as language-REGION, e.g. en-US"`

	// ResultsPerQuery is the number of results requested per keyword
	ResultsPerQuery int `json:"results_per_query,omitempty" minimum:"1" maximum:"100" default:"30" doc:"Results requested per keyword"`

	// HTMLFetch enables main-text extraction from each result page
	HTMLFetch bool `json:"html_fetch,omitempty" doc:"Fetch and extract readable main text from result pages"`
}

// ApplyDefaults sets default values for optional fields
func (r *MiningRequest) ApplyDefaults() {
	if r.Locale == "" {
		r.Locale = "en-US"
	}
	if r.ResultsPerQuery == 0 {
		r.ResultsPerQuery = 30
	}
}

// ExtractionRequest represents the request body for keyword extraction from
// previously mined SERP results
type ExtractionRequest struct {
	// SerpResults is the per-query result set produced by the mining step
	SerpResults []domain.SerpQueryResult `json:"serp_results" minItems:"1" doc:"Per-query SERP results from the mining step"`

	// SeedKeywords echoes the original seeds for evidence bookkeeping
	SeedKeywords []string `json:"seed_keywords,omitempty" maxItems:"20" doc:"Original seed keywords"`

	// Topic overrides the evidence-derived working topic
	Topic string `json:"topic,omitempty" doc:"Explicit topic; derived from evidence when omitted"`

	// ExtractPhrases enables keyphrase extraction (default: true)
	ExtractPhrases *bool `json:"extract_phrases,omitempty" default:"true" doc:"Run keyphrase extraction over the evidence"`
}

// ApplyDefaults sets default values for optional fields
func (r *ExtractionRequest) ApplyDefaults() {
	if r.ExtractPhrases == nil {
		enabled := true
		r.ExtractPhrases = &enabled
	}
}

// KeyphraseRequest represents the request body for direct raw-text extraction
type KeyphraseRequest struct {
	// RawText is the text to extract keyphrases from
	RawText string `json:"raw_text" required:"true" minLength:"1" doc:"Text to extract keyphrases from"`

	// TopN is the number of keyphrases to return
	TopN int `json:"top_n,omitempty" minimum:"1" maximum:"50" default:"15" doc:"Number of keyphrases to return"`
}

// ApplyDefaults sets default values for optional fields
func (r *KeyphraseRequest) ApplyDefaults() {
	if r.TopN == 0 {
		r.TopN = 15
	}
}

// DescribeRequest represents the request body for description synthesis
type DescribeRequest struct {
	// Topic is the subject of the description
	Topic string `json:"topic" required:"true" minLength:"1" doc:"Subject of the description"`

	// Lens selects the prompt perspective
	Lens string `json:"lens,omitempty" enum:"service,brand,event,product,solution,function" default:"service" doc:"Synthesis perspective"`

	// Category provides optional taxonomy context
	Category string `json:"category,omitempty" doc:"Optional category context"`

	// SubCategory provides optional taxonomy context
	SubCategory string `json:"sub_category,omitempty" doc:"Optional sub-category context"`

	// Content is the aggregated evidence from the extraction step
	Content domain.AggregatedContent `json:"raw_content" doc:"Aggregated evidence from the extraction step"`

	// UseLLM enables the generation provider (default: true)
	UseLLM *bool `json:"use_llm,omitempty" default:"true" doc:"Use the generation provider; false forces the deterministic fallback"`

	// Provider selects the generation provider
	Provider string `json:"provider,omitempty" enum:"gemini" default:"gemini" doc:"Generation provider"`
}

// ApplyDefaults sets default values for optional fields
func (r *DescribeRequest) ApplyDefaults() {
	if r.Lens == "" {
		r.Lens = "service"
	}
	if r.UseLLM == nil {
		enabled := true
		r.UseLLM = &enabled
	}
	if r.Provider == "" {
		r.Provider = "gemini"
	}
}

// PipelineRequest represents the request body for the fused pipelines
type PipelineRequest struct {
	// SeedKeywords is the list of search queries to mine
	SeedKeywords []string `json:"seed_keywords" minItems:"1" maxItems:"20" doc:"Seed keywords to mine SERPs for (1-20)"`

	// Locale is the language-region pair for the search
	Locale string `json:"locale,omitempty" default:"en-US" doc:"Locale as language-REGION, e.g. en-US"`

	// ResultsPerQuery is the number of results requested per keyword
	ResultsPerQuery int `json:"results_per_query,omitempty" minimum:"1" maximum:"100" default:"30" doc:"Results requested per keyword"`

	// HTMLFetch enables main-text extraction from each result page
	HTMLFetch bool `json:"html_fetch,omitempty" doc:"Fetch and extract readable main text from result pages"`

	// Topic overrides the evidence-derived working topic
	Topic string `json:"topic,omitempty" doc:"Explicit topic; derived from evidence when omitted"`

	// ExtractPhrases enables keyphrase extraction (default: true)
	ExtractPhrases *bool `json:"extract_phrases,omitempty" default:"true" doc:"Run keyphrase extraction over the evidence"`

	// Lens selects the prompt perspective for the describe stage
	Lens string `json:"lens,omitempty" enum:"service,brand,event,product,solution,function" default:"service" doc:"Synthesis perspective"`

	// Category provides optional taxonomy context
	Category string `json:"category,omitempty" doc:"Optional category context"`

	// SubCategory provides optional taxonomy context
	SubCategory string `json:"sub_category,omitempty" doc:"Optional sub-category context"`

	// UseLLM enables the generation provider (default: true)
	UseLLM *bool `json:"use_llm,omitempty" default:"true" doc:"Use the generation provider; false forces the deterministic fallback"`
}

// ApplyDefaults sets default values for optional fields
func (r *PipelineRequest) ApplyDefaults() {
	if r.Locale == "" {
		r.Locale = "en-US"
	}
	if r.ResultsPerQuery == 0 {
		r.ResultsPerQuery = 30
	}
	if r.ExtractPhrases == nil {
		enabled := true
		r.ExtractPhrases = &enabled
	}
	if r.Lens == "" {
		r.Lens = "service"
	}
	if r.UseLLM == nil {
		enabled := true
		r.UseLLM = &enabled
	}
}
