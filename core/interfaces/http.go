// ABOUTME: HTTP client abstraction used by core services for outbound calls
// ABOUTME: Keeps retrieval and generation providers mockable in tests

package interfaces

import (
	"context"
	"io"
)

// HTTPClient provides HTTP request functionality for core services.
type HTTPClient interface {
	// Get performs an HTTP GET request.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with a JSON body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response represents an HTTP response.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. Callers must close it.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	Header(key string) string
}
