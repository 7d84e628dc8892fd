// ABOUTME: Fused pipeline handlers for the Huma API
// ABOUTME: Exposes single-call mine-extract and mine-extract-describe endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"intent-builder-api/api/dto/requests"
	"intent-builder-api/api/dto/responses"
	"intent-builder-api/core/domain"
	"intent-builder-api/core/pipeline"
)

// PipelineService defines the methods needed from the pipeline service
type PipelineService interface {
	Process(ctx context.Context, req pipeline.ProcessRequest) (pipeline.ProcessResult, error)
	ProcessAndDescribe(ctx context.Context, req pipeline.ProcessRequest) (pipeline.ProcessResult, error)
}

// PipelineHandler handles fused pipeline HTTP requests
type PipelineHandler struct {
	pipeline PipelineService
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(p PipelineService) *PipelineHandler {
	return &PipelineHandler{pipeline: p}
}

// RegisterRoutes registers the pipeline routes
func (h *PipelineHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "processPhase1",
		Method:      http.MethodPost,
		Path:        "/v1/phase1/process",
		Summary:     "Mine and extract in one call",
		Description: "Runs SERP mining and keyword extraction as a single pipeline, matching the output of calling the steps separately",
		Tags:        []string{"Pipeline"},
	}, h.ProcessPhase1)

	huma.Register(api, huma.Operation{
		OperationID: "processFullPipeline",
		Method:      http.MethodPost,
		Path:        "/v1/phase1+2/process",
		Summary:     "Run the full pipeline",
		Description: "Runs SERP mining, keyword extraction, and description synthesis as a single pipeline",
		Tags:        []string{"Pipeline"},
	}, h.ProcessFullPipeline)
}

// ProcessInput defines the input for the fused pipeline operations
type ProcessInput struct {
	Body requests.PipelineRequest
}

// ProcessPhase1Output defines the output for the ProcessPhase1 operation
type ProcessPhase1Output struct {
	Body responses.PipelineResponse
}

// ProcessPhase1 handles the POST /v1/phase1/process endpoint
func (h *PipelineHandler) ProcessPhase1(ctx context.Context, input *ProcessInput) (*ProcessPhase1Output, error) {
	input.Body.ApplyDefaults()

	result, err := h.pipeline.Process(ctx, pipelineRequestFromDTO(input.Body, domain.LensService))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ProcessPhase1Output{Body: pipelineResponseFromResult(result, input.Body, domain.LensService)}, nil
}

// ProcessFullPipeline handles the POST /v1/phase1+2/process endpoint
func (h *PipelineHandler) ProcessFullPipeline(ctx context.Context, input *ProcessInput) (*ProcessPhase1Output, error) {
	input.Body.ApplyDefaults()

	lens, err := domain.ParseLens(input.Body.Lens)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.pipeline.ProcessAndDescribe(ctx, pipelineRequestFromDTO(input.Body, lens))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ProcessPhase1Output{Body: pipelineResponseFromResult(result, input.Body, lens)}, nil
}

// pipelineRequestFromDTO maps the request DTO onto the pipeline request
func pipelineRequestFromDTO(body requests.PipelineRequest, lens domain.Lens) pipeline.ProcessRequest {
	return pipeline.ProcessRequest{
		Seeds:           body.SeedKeywords,
		Locale:          body.Locale,
		ResultsPerQuery: body.ResultsPerQuery,
		HTMLFetch:       body.HTMLFetch,
		Topic:           body.Topic,
		ExtractPhrases:  *body.ExtractPhrases,
		Lens:            lens,
		Category:        body.Category,
		SubCategory:     body.SubCategory,
		UseLLM:          *body.UseLLM,
	}
}

// pipelineResponseFromResult maps the pipeline result onto the response DTO
func pipelineResponseFromResult(result pipeline.ProcessResult, body requests.PipelineRequest, lens domain.Lens) responses.PipelineResponse {
	resp := responses.PipelineResponse{
		Topic:            result.Topic,
		SerpResults:      result.Results,
		RawContent:       result.Content,
		DraftDescription: result.Draft,
		Meta: responses.PipelineMeta{
			Queries:          body.SeedKeywords,
			Locale:           body.Locale,
			ResultsPerQuery:  body.ResultsPerQuery,
			HTMLFetchEnabled: body.HTMLFetch,
			DocsAnalyzed:     result.Content.EvidenceCount,
			FailedQueries:    result.Results.FailedQueries(),
		},
	}
	if result.Description != nil {
		resp.Description = &responses.DescribeResponse{
			Lens:        lens.String(),
			Names:       result.Description.Names,
			Description: result.Description.Description,
			Validation:  result.Description.Validation,
		}
	}
	return resp
}
