// ABOUTME: Gemini text generation client implementing the TextGenerator interface
// ABOUTME: Calls the generateContent REST endpoint and unwraps the first candidate

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	coreerrors "intent-builder-api/core/errors"
	"intent-builder-api/core/interfaces"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config holds Gemini provider settings.
type Config struct {
	// APIKey authenticates against the Gemini API. Empty disables the client.
	APIKey string

	// Model names the generation model, e.g. "gemini-2.0-flash".
	Model string

	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// Client implements TextGenerator against the Gemini REST API.
type Client struct {
	httpClient interfaces.HTTPClient
	cfg        Config
}

// NewClient creates a Gemini client. Returns an error when the API key or
// model is missing so callers can fall back to template synthesis explicitly.
func NewClient(httpClient interfaces.HTTPClient, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini model cannot be empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{httpClient: httpClient, cfg: cfg}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	resp, err := c.httpClient.Post(ctx, url, bytes.NewReader(payload))
	if err != nil {
		return "", coreerrors.WrapError(err, "gemini request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "gemini",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to read gemini response")
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", coreerrors.WrapError(err, "failed to parse gemini response")
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
