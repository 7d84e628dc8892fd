// ABOUTME: Text generation provider abstraction for description synthesis
// ABOUTME: Implementations wrap external LLM APIs; failures trigger the deterministic fallback

package interfaces

import "context"

// TextGenerator produces raw model output for an assembled prompt. The prompt
// dictates the structured NAME/DESCRIPTION response format; parsing the output
// is the synthesizer's concern. Any error is treated as "provider unavailable"
// by the caller, never surfaced as a pipeline failure.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
