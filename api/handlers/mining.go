// ABOUTME: SERP mining handler for the Huma API
// ABOUTME: Exposes the step-one endpoint fetching results per seed keyword

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"intent-builder-api/api/dto/requests"
	"intent-builder-api/api/dto/responses"
	"intent-builder-api/core/domain"
)

// MiningService defines the methods needed from the SERP mining service
type MiningService interface {
	MineSERPs(ctx context.Context, seeds []string, locale string, perQuery int) (domain.SerpResultSet, error)
}

// MaintextEnricher attaches readable page text to mined documents
type MaintextEnricher interface {
	EnrichMaintext(ctx context.Context, results domain.SerpResultSet, maxDocs int)
}

// MiningHandler handles SERP mining HTTP requests
type MiningHandler struct {
	miner    MiningService
	enricher MaintextEnricher
}

// NewMiningHandler creates a new mining handler. The enricher may be nil, in
// which case html_fetch requests return results without main text.
func NewMiningHandler(miner MiningService, enricher MaintextEnricher) *MiningHandler {
	return &MiningHandler{miner: miner, enricher: enricher}
}

// RegisterRoutes registers the mining routes
func (h *MiningHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "mineSerps",
		Method:      http.MethodPost,
		Path:        "/v1/step1/serp-mining",
		Summary:     "Mine SERPs for seed keywords",
		Description: "Fetches search results for each seed keyword concurrently, capturing per-query failures without aborting the batch",
		Tags:        []string{"Mining"},
	}, h.MineSerps)
}

// MineSerpsInput defines the input for the MineSerps operation
type MineSerpsInput struct {
	Body requests.MiningRequest
}

// MineSerpsOutput defines the output for the MineSerps operation
type MineSerpsOutput struct {
	Body responses.MiningResponse
}

// MineSerps handles the POST /v1/step1/serp-mining endpoint
func (h *MiningHandler) MineSerps(ctx context.Context, input *MineSerpsInput) (*MineSerpsOutput, error) {
	input.Body.ApplyDefaults()

	results, err := h.miner.MineSERPs(ctx, input.Body.SeedKeywords, input.Body.Locale, input.Body.ResultsPerQuery)
	if err != nil {
		return nil, toHumaError(err)
	}

	if input.Body.HTMLFetch && h.enricher != nil {
		h.enricher.EnrichMaintext(ctx, results, 0)
	}

	return &MineSerpsOutput{
		Body: responses.MiningResponse{
			SerpResults: results,
			Meta: responses.MiningMeta{
				Queries:          input.Body.SeedKeywords,
				Locale:           input.Body.Locale,
				ResultsPerQuery:  input.Body.ResultsPerQuery,
				HTMLFetchEnabled: input.Body.HTMLFetch,
			},
			TotalDocs:     results.TotalDocs(),
			TotalQueries:  len(input.Body.SeedKeywords),
			FailedQueries: results.FailedQueries(),
		},
	}, nil
}
