// ABOUTME: Pipeline orchestrator composing SERP mining, extraction, and synthesis
// ABOUTME: Fused operations reuse the step services so results match step-by-step runs

package pipeline

import (
	"context"
	"fmt"
	"strings"

	"intent-builder-api/core/describe"
	"intent-builder-api/core/domain"
	coreerrors "intent-builder-api/core/errors"
	"intent-builder-api/core/interfaces"
)

// SerpMiner is the mining dependency of the pipeline.
type SerpMiner interface {
	MineSERPs(ctx context.Context, seeds []string, locale string, perQuery int) (domain.SerpResultSet, error)
}

// Aggregator folds SERP results into the evidence snapshot.
type Aggregator interface {
	Aggregate(results domain.SerpResultSet, seeds []string) domain.AggregatedContent
}

// KeyphraseExtractor scores multi-word keyphrases from SERP results.
type KeyphraseExtractor interface {
	ExtractFromResults(results domain.SerpResultSet, max int) []string
}

// Describer synthesizes a validated lens description from aggregated content.
type Describer interface {
	Synthesize(ctx context.Context, req describe.SynthesisRequest) domain.GeneratedDescription
}

// MaintextEnricher attaches readable page text to mined documents.
type MaintextEnricher interface {
	EnrichMaintext(ctx context.Context, results domain.SerpResultSet, maxDocs int)
}

// Service wires the step services into single-call pipelines. Fused
// operations delegate to the same step implementations the step endpoints
// use, so a fused run and a composed run produce identical output for the
// same input.
type Service struct {
	deps       interfaces.Dependencies
	miner      SerpMiner
	aggregator Aggregator
	extractor  KeyphraseExtractor
	describer  Describer
	enricher   MaintextEnricher
}

// NewService creates the pipeline orchestrator. The enricher may be nil, in
// which case html_fetch requests skip main-text enrichment.
func NewService(deps interfaces.Dependencies, miner SerpMiner, aggregator Aggregator, extractor KeyphraseExtractor, describer Describer, enricher MaintextEnricher) *Service {
	return &Service{
		deps:       deps,
		miner:      miner,
		aggregator: aggregator,
		extractor:  extractor,
		describer:  describer,
		enricher:   enricher,
	}
}

// MineRequest is the input to the mining step.
type MineRequest struct {
	Seeds           []string
	Locale          string
	ResultsPerQuery int
}

// Mine runs SERP mining for the seed batch.
func (s *Service) Mine(ctx context.Context, req MineRequest) (domain.SerpResultSet, error) {
	return s.miner.MineSERPs(ctx, req.Seeds, req.Locale, req.ResultsPerQuery)
}

// ExtractRequest is the input to the extraction step. Results may come from
// the mining step or be supplied by the caller directly.
type ExtractRequest struct {
	Results        domain.SerpResultSet
	Seeds          []string
	Topic          string
	ExtractPhrases bool
}

// ExtractResult pairs the evidence snapshot with the draft description and
// the resolved topic.
type ExtractResult struct {
	Topic   string
	Content domain.AggregatedContent
	Draft   string
}

// Extract aggregates SERP results into term and phrase tables, optionally
// runs keyphrase extraction, and drafts a provisional description from the
// top evidence.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	if len(req.Results) == 0 {
		return ExtractResult{}, coreerrors.NewValidation("serp_results", "at least one query result is required")
	}

	content := s.aggregator.Aggregate(req.Results, req.Seeds)
	if req.ExtractPhrases {
		content.ExtractedKeyphrases = s.extractor.ExtractFromResults(req.Results, 0)
	}

	topic := resolveTopic(req.Topic, content)
	return ExtractResult{
		Topic:   topic,
		Content: content,
		Draft:   draftDescription(content),
	}, nil
}

// DescribeRequest is the input to the synthesis step.
type DescribeRequest struct {
	Topic       string
	Lens        domain.Lens
	Category    string
	SubCategory string
	Content     domain.AggregatedContent
	UseLLM      bool
}

// Describe synthesizes the lens-conditioned description.
func (s *Service) Describe(ctx context.Context, req DescribeRequest) domain.GeneratedDescription {
	return s.describer.Synthesize(ctx, describe.SynthesisRequest{
		Topic:       req.Topic,
		Lens:        req.Lens,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Content:     req.Content,
		UseLLM:      req.UseLLM,
	})
}

// ProcessRequest is the input to the fused pipelines.
type ProcessRequest struct {
	Seeds           []string
	Locale          string
	ResultsPerQuery int
	Topic           string
	ExtractPhrases  bool
	HTMLFetch       bool

	// Synthesis fields, used by ProcessAndDescribe only.
	Lens        domain.Lens
	Category    string
	SubCategory string
	UseLLM      bool
}

// ProcessResult is the fused mine-plus-extract output.
type ProcessResult struct {
	Topic       string
	Results     domain.SerpResultSet
	Content     domain.AggregatedContent
	Draft       string
	Description *domain.GeneratedDescription
}

// Process runs mining and extraction in one call. Per-query failures are
// recorded in the result set rather than aborting: even an all-failed batch
// proceeds with an empty evidence snapshot, so a fused run always matches
// composing the steps. Callers read FailedQueries off the results to surface
// the partial or empty condition.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (ProcessResult, error) {
	results, err := s.Mine(ctx, MineRequest{
		Seeds:           req.Seeds,
		Locale:          req.Locale,
		ResultsPerQuery: req.ResultsPerQuery,
	})
	if err != nil {
		return ProcessResult{}, err
	}

	if req.HTMLFetch && s.enricher != nil {
		s.enricher.EnrichMaintext(ctx, results, 0)
	}

	extracted, err := s.Extract(ctx, ExtractRequest{
		Results:        results,
		Seeds:          req.Seeds,
		Topic:          req.Topic,
		ExtractPhrases: req.ExtractPhrases,
	})
	if err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		Topic:   extracted.Topic,
		Results: results,
		Content: extracted.Content,
		Draft:   extracted.Draft,
	}, nil
}

// ProcessAndDescribe runs the full pipeline: mining, extraction, and lens
// description synthesis.
func (s *Service) ProcessAndDescribe(ctx context.Context, req ProcessRequest) (ProcessResult, error) {
	result, err := s.Process(ctx, req)
	if err != nil {
		return ProcessResult{}, err
	}

	generated := s.Describe(ctx, DescribeRequest{
		Topic:       result.Topic,
		Lens:        req.Lens,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Content:     result.Content,
		UseLLM:      req.UseLLM,
	})
	result.Description = &generated
	return result, nil
}

// resolveTopic picks the working topic: the caller's explicit topic first,
// then the strongest evidence, then a neutral placeholder.
func resolveTopic(topic string, content domain.AggregatedContent) string {
	if t := strings.TrimSpace(topic); t != "" {
		return t
	}
	if len(content.TopTerms) > 0 {
		return content.TopTerms[0]
	}
	if len(content.TopPhrases) > 0 {
		return content.TopPhrases[0]
	}
	return "Intent Topic"
}

// draftDescription produces the provisional pre-synthesis description from
// the top terms and phrases.
func draftDescription(content domain.AggregatedContent) string {
	parts := make([]string, 0, 6)
	for _, t := range content.TopTerms {
		if len(parts) == 4 {
			break
		}
		parts = append(parts, t)
	}
	for i, p := range content.TopPhrases {
		if i == 2 {
			break
		}
		parts = append(parts, p)
	}

	core := "the topic"
	if len(parts) > 0 {
		core = strings.Join(parts, ", ")
	}

	seedTxt := ""
	if len(content.Seeds) > 0 {
		seedTxt = fmt.Sprintf(", seeded by searches for %s", strings.Join(content.Seeds, ", "))
	}
	return fmt.Sprintf("This intent captures research into %s%s. It focuses on the offerings, approaches, and comparisons surfaced across the collected search results.", core, seedTxt)
}
