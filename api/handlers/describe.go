// ABOUTME: Description synthesis handler for the Huma API
// ABOUTME: Exposes the phase-two endpoint producing validated lens descriptions

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

// DescribeService defines the methods needed from the pipeline service
type DescribeService interface {
	Describe(ctx context.Context, req pipeline.DescribeRequest) domain.GeneratedDescription
}

// DescribeHandler handles description synthesis HTTP requests
type DescribeHandler struct {
	describer DescribeService
}

// NewDescribeHandler creates a new describe handler
func NewDescribeHandler(describer DescribeService) *DescribeHandler {
	return &DescribeHandler{describer: describer}
}

// RegisterRoutes registers the describe route
func (h *DescribeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "describeIntent",
		Method:      http.MethodPost,
		Path:        "/v1/phase2/describe",
		Summary:     "Synthesize a lens-conditioned description",
		Description: "Generates candidate names and a validated two-sentence description from aggregated evidence, falling back to a deterministic template when the provider is unavailable",
		Tags:        []string{"Synthesis"},
	}, h.DescribeIntent)
}

// DescribeIntentInput defines the input for the DescribeIntent operation
type DescribeIntentInput struct {
	Body requests.DescribeRequest
}

// DescribeIntentOutput defines the output for the DescribeIntent operation
type DescribeIntentOutput struct {
	Body responses.DescribeResponse
}

// DescribeIntent handles the POST /v1/phase2/describe endpoint
func (h *DescribeHandler) DescribeIntent(ctx context.Context, input *DescribeIntentInput) (*DescribeIntentOutput, error) {
	input.Body.ApplyDefaults()

	lens, err := domain.ParseLens(input.Body.Lens)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	generated := h.describer.Describe(ctx, pipeline.DescribeRequest{
		Topic:       input.Body.Topic,
		Lens:        lens,
		Category:    input.Body.Category,
		SubCategory: input.Body.SubCategory,
		Content:     input.Body.Content,
		UseLLM:      *input.Body.UseLLM,
	})

	return &DescribeIntentOutput{
		Body: responses.DescribeResponse{
			Lens:        lens.String(),
			Names:       generated.Names,
			Description: generated.Description,
			Validation:  generated.Validation,
		},
	}, nil
}
