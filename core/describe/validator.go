// ABOUTME: Structural validator gating generated descriptions
// ABOUTME: Checks sentence count, word-count window, and forbidden-term absence

package describe

import (
	"fmt"
	"regexp"
	"strings"

	"intent-builder-api/core/domain"
)

// Default word-count window applied when configuration does not override it.
const (
	DefaultMinWords = 20
	DefaultMaxWords = 80
)

// DefaultForbiddenTerms is the stock denylist of promotional language. The
// deterministic fallback template is written to never collide with it.
var DefaultForbiddenTerms = []string{
	"best", "premium", "luxury", "affordable", "budget",
	"trusted", "top rated", "award-winning", "world-class", "market-leading",
}

// ValidatorConfig bounds and denylist for description validation.
type ValidatorConfig struct {
	MinWords       int
	MaxWords       int
	ForbiddenTerms []string
}

// Validator enforces the three structural rules on generated text. It is a
// pure function of its configuration; instances are safe for concurrent use.
type Validator struct {
	minWords  int
	maxWords  int
	forbidden []forbiddenTerm
}

type forbiddenTerm struct {
	term    string
	pattern *regexp.Regexp
}

// NewValidator compiles the forbidden-term list into whole-word,
// case-insensitive matchers. Zero bounds fall back to the defaults.
func NewValidator(cfg ValidatorConfig) *Validator {
	if cfg.MinWords <= 0 {
		cfg.MinWords = DefaultMinWords
	}
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultMaxWords
	}
	terms := cfg.ForbiddenTerms
	if terms == nil {
		terms = DefaultForbiddenTerms
	}
	v := &Validator{minWords: cfg.MinWords, maxWords: cfg.MaxWords}
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		v.forbidden = append(v.forbidden, forbiddenTerm{term: term, pattern: pattern})
	}
	return v
}

// Validate checks each rule independently and reports all of them.
//
// Sentence boundaries are counted as '.', '!', or '?' followed by whitespace
// or end of text. Abbreviation handling is deliberately out of scope; simple
// boundary counting is the documented behavior.
func (v *Validator) Validate(text string) domain.DescriptionValidation {
	return domain.DescriptionValidation{
		ForbiddenUsed:   v.ContainsForbidden(text),
		WordCount:       len(strings.Fields(text)),
		HasTwoSentences: countSentences(text) == 2,
	}
}

// Valid reports whether a validation result passes every rule under this
// validator's word-count window.
func (v *Validator) Valid(result domain.DescriptionValidation) bool {
	return result.HasTwoSentences &&
		!result.ForbiddenUsed &&
		result.WordCount >= v.minWords &&
		result.WordCount <= v.maxWords
}

// ContainsForbidden reports whether any denylisted term appears as a
// case-insensitive whole-word match.
func (v *Validator) ContainsForbidden(text string) bool {
	for _, f := range v.forbidden {
		if f.pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Violations names each failed rule, used to adjust the regeneration prompt.
func (v *Validator) Violations(result domain.DescriptionValidation) []string {
	var out []string
	if !result.HasTwoSentences {
		out = append(out, "the description must contain exactly two sentences")
	}
	if result.WordCount < v.minWords || result.WordCount > v.maxWords {
		out = append(out, fmt.Sprintf("the description must be between %d and %d words (got %d)", v.minWords, v.maxWords, result.WordCount))
	}
	if result.ForbiddenUsed {
		out = append(out, "the description must not contain promotional or audience language from the forbidden list")
	}
	return out
}

func countSentences(text string) int {
	count := 0
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i == len(runes)-1 {
			count++
			continue
		}
		next := runes[i+1]
		if next == ' ' || next == '\t' || next == '\n' || next == '\r' {
			count++
		}
	}
	return count
}
