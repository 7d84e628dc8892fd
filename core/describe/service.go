// ABOUTME: Lens description synthesizer combining evidence with a generation provider
// ABOUTME: Provider failures and validation misses fall back to a deterministic template

package describe

import (
	"context"

	"intent-builder-api/core/domain"
	"intent-builder-api/core/interfaces"
)

// maxNames caps the candidate name list after deduplication.
const maxNames = 5

// SynthesisRequest carries everything one synthesis call needs. Lens must
// already be a parsed domain.Lens; unknown values are rejected upstream.
type SynthesisRequest struct {
	Topic       string
	Lens        domain.Lens
	Category    string
	SubCategory string
	Content     domain.AggregatedContent
	UseLLM      bool
}

// Service produces validated lens-conditioned descriptions. The contract is
// unconditional: every call returns a description, via the provider when it
// cooperates and the deterministic fallback otherwise.
type Service struct {
	deps      interfaces.Dependencies
	generator interfaces.TextGenerator
	validator *Validator
}

// NewService creates a synthesizer. A nil generator disables the provider
// path entirely; a nil validator gets the default rule set.
func NewService(deps interfaces.Dependencies, generator interfaces.TextGenerator, validator *Validator) *Service {
	if validator == nil {
		validator = NewValidator(ValidatorConfig{})
	}
	return &Service{deps: deps, generator: generator, validator: validator}
}

// Synthesize builds the lens prompt, asks the provider for names and a
// description, and gates the result through the validator. A failed
// validation triggers exactly one regeneration with the violated rules
// emphasized; a second miss, a provider error, or a disabled provider all
// resolve to the fallback. Invalid text is never returned.
func (s *Service) Synthesize(ctx context.Context, req SynthesisRequest) domain.GeneratedDescription {
	if !req.UseLLM || s.generator == nil {
		return s.fallback(req)
	}

	prompt := buildPrompt(req.Topic, req.Lens, req.Category, req.SubCategory, req.Content)
	names, description, ok := s.generateOnce(ctx, prompt)
	if !ok {
		return s.fallback(req)
	}

	result := s.validator.Validate(description)
	if !s.validator.Valid(result) {
		s.logWarn("generated description failed validation, retrying", map[string]interface{}{
			"topic":      req.Topic,
			"lens":       req.Lens.String(),
			"violations": s.validator.Violations(result),
		})
		retryNames, retryDescription, retryOK := s.generateOnce(ctx, adjustPrompt(prompt, s.validator.Violations(result)))
		if !retryOK {
			return s.fallback(req)
		}
		retryResult := s.validator.Validate(retryDescription)
		if !s.validator.Valid(retryResult) {
			return s.fallback(req)
		}
		names, description, result = retryNames, retryDescription, retryResult
	}

	if len(names) == 0 {
		names = s.fallbackNames(req)
	}

	return domain.GeneratedDescription{
		Names:       dedupeNames(names, maxNames),
		Description: description,
		Validation:  result,
	}
}

// generateOnce runs a single provider call and parses the structured
// response. Any provider error is treated as "provider unavailable".
func (s *Service) generateOnce(ctx context.Context, prompt string) (names []string, description string, ok bool) {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logWarn("generation provider unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, "", false
	}
	names, description = parseStructuredResponse(raw)
	if description == "" {
		s.logWarn("provider response missing DESCRIPTION field", nil)
		return nil, "", false
	}
	return names, description, true
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
