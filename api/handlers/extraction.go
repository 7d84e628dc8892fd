// ABOUTME: Keyword extraction handlers for the Huma API
// ABOUTME: Exposes step-two aggregation and direct raw-text keyphrase extraction

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"intent-builder-api/api/dto/requests"
	"intent-builder-api/api/dto/responses"
	"intent-builder-api/core/pipeline"
)

// ExtractionService defines the methods needed from the pipeline service
type ExtractionService interface {
	Extract(ctx context.Context, req pipeline.ExtractRequest) (pipeline.ExtractResult, error)
}

// KeyphraseService defines the direct raw-text extraction method
type KeyphraseService interface {
	Extract(text string, maxPhrases int) []string
}

// ExtractionHandler handles keyword extraction HTTP requests
type ExtractionHandler struct {
	extractor  ExtractionService
	keyphrases KeyphraseService
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractor ExtractionService, keyphrases KeyphraseService) *ExtractionHandler {
	return &ExtractionHandler{extractor: extractor, keyphrases: keyphrases}
}

// RegisterRoutes registers the extraction routes
func (h *ExtractionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractKeywords",
		Method:      http.MethodPost,
		Path:        "/v1/step2/keyword-extraction",
		Summary:     "Extract keywords from SERP results",
		Description: "Aggregates term and phrase frequencies from mined SERP results, optionally running keyphrase extraction",
		Tags:        []string{"Extraction"},
	}, h.ExtractKeywords)

	huma.Register(api, huma.Operation{
		OperationID: "extractKeyphrases",
		Method:      http.MethodPost,
		Path:        "/v1/extract",
		Summary:     "Extract keyphrases from raw text",
		Description: "Runs keyphrase extraction directly over supplied text, without SERP mining or aggregation",
		Tags:        []string{"Extraction"},
	}, h.ExtractKeyphrases)
}

// ExtractKeywordsInput defines the input for the ExtractKeywords operation
type ExtractKeywordsInput struct {
	Body requests.ExtractionRequest
}

// ExtractKeywordsOutput defines the output for the ExtractKeywords operation
type ExtractKeywordsOutput struct {
	Body responses.ExtractionResponse
}

// ExtractKeywords handles the POST /v1/step2/keyword-extraction endpoint
func (h *ExtractionHandler) ExtractKeywords(ctx context.Context, input *ExtractKeywordsInput) (*ExtractKeywordsOutput, error) {
	input.Body.ApplyDefaults()

	result, err := h.extractor.Extract(ctx, pipeline.ExtractRequest{
		Results:        input.Body.SerpResults,
		Seeds:          input.Body.SeedKeywords,
		Topic:          input.Body.Topic,
		ExtractPhrases: *input.Body.ExtractPhrases,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractKeywordsOutput{
		Body: responses.ExtractionResponse{
			Topic:            result.Topic,
			RawContent:       result.Content,
			DraftDescription: result.Draft,
			Meta: responses.ExtractionMeta{
				Queries:               input.Body.SeedKeywords,
				DocsAnalyzed:          result.Content.EvidenceCount,
				ExtractPhrasesEnabled: *input.Body.ExtractPhrases,
			},
		},
	}, nil
}

// ExtractKeyphrasesInput defines the input for the ExtractKeyphrases operation
type ExtractKeyphrasesInput struct {
	Body requests.KeyphraseRequest
}

// ExtractKeyphrasesOutput defines the output for the ExtractKeyphrases operation
type ExtractKeyphrasesOutput struct {
	Body responses.KeyphraseResponse
}

// ExtractKeyphrases handles the POST /v1/extract endpoint
func (h *ExtractionHandler) ExtractKeyphrases(ctx context.Context, input *ExtractKeyphrasesInput) (*ExtractKeyphrasesOutput, error) {
	input.Body.ApplyDefaults()

	phrases := h.keyphrases.Extract(input.Body.RawText, input.Body.TopN)

	return &ExtractKeyphrasesOutput{
		Body: responses.KeyphraseResponse{
			Keyphrases: phrases,
			Count:      len(phrases),
		},
	}, nil
}
