// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service liveness for orchestration probes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"intent-builder-api/api/dto/responses"
)

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns service status for orchestration probes",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{
			OK:      true,
			Version: h.version,
		},
	}, nil
}
