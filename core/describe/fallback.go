// ABOUTME: Deterministic fallback description builder used when the provider is unavailable
// ABOUTME: The fixed two-sentence pattern always satisfies the default validation rules

package describe

import (
	"fmt"
	"strings"

	"intent-builder-api/core/domain"
)

// fallback produces a description and name list without the generation
// provider. The scaffolding is fixed at well over the minimum word count and
// under the maximum even with the longest permitted topic and focus phrases,
// and injected material is screened against the forbidden list, so the output
// passes all three rules under the default validator configuration.
func (s *Service) fallback(req SynthesisRequest) domain.GeneratedDescription {
	topic := s.safeTopic(req)
	focus := s.focusPhrases(req.Content, 3)

	var first string
	switch len(focus) {
	case 0:
		first = fmt.Sprintf("This intent represents interest in %s and the recurring themes observed across the collected search results.", topic)
	case 1:
		first = fmt.Sprintf("This intent represents interest in %s, with particular emphasis on %s as seen across the collected search results.", topic, focus[0])
	default:
		first = fmt.Sprintf("This intent represents interest in %s, with particular emphasis on %s and %s.",
			topic, strings.Join(focus[:len(focus)-1], ", "), focus[len(focus)-1])
	}
	second := "It encompasses research into the implementation approaches, capabilities, and comparisons that appear across related offerings in the current search evidence."

	description := first + " " + second
	return domain.GeneratedDescription{
		Names:       dedupeNames(s.fallbackNames(req), maxNames),
		Description: description,
		Validation:  s.validator.Validate(description),
	}
}

// fallbackNames derives candidate names from the top focus phrases, padded
// with generic topic variants.
func (s *Service) fallbackNames(req SynthesisRequest) []string {
	topic := titleCase(s.safeTopic(req))
	names := make([]string, 0, maxNames)
	for _, phrase := range s.focusPhrases(req.Content, 3) {
		names = append(names, titleCase(phrase))
	}
	names = append(names,
		fmt.Sprintf("%s Research", topic),
		fmt.Sprintf("%s Comparison", topic),
	)
	return names
}

// safeTopic returns a topic safe to inject: non-empty, capped in length, and
// free of forbidden terms. Seeds are the first substitute, then a neutral
// placeholder.
func (s *Service) safeTopic(req SynthesisRequest) string {
	candidates := append([]string{req.Topic}, req.Content.Seeds...)
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || s.validator.ContainsForbidden(c) || strings.ContainsAny(c, ".!?") {
			continue
		}
		if words := strings.Fields(c); len(words) > 8 {
			c = strings.Join(words[:8], " ")
		}
		return c
	}
	return "this topic"
}

// focusPhrases selects up to n evidence phrases for injection, preferring
// extracted keyphrases over frequent phrases over frequent terms. Phrases
// containing forbidden terms or sentence punctuation are skipped and each is
// capped at three words.
func (s *Service) focusPhrases(content domain.AggregatedContent, n int) []string {
	pools := [][]string{content.ExtractedKeyphrases, content.TopPhrases, content.TopTerms}
	out := make([]string, 0, n)
	seen := make(map[string]struct{})
	for _, pool := range pools {
		for _, phrase := range pool {
			phrase = strings.TrimSpace(phrase)
			if phrase == "" || strings.ContainsAny(phrase, ".!?") || s.validator.ContainsForbidden(phrase) {
				continue
			}
			if words := strings.Fields(phrase); len(words) > 3 {
				phrase = strings.Join(words[:3], " ")
			}
			key := strings.ToLower(phrase)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, strings.ToLower(phrase))
			if len(out) == n {
				return out
			}
		}
		if len(out) > 0 {
			// Stay within one pool so the ranking stays coherent.
			break
		}
	}
	return out
}

// titleCase capitalizes each word, leaving all-caps words (acronyms) intact.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == strings.ToUpper(w) {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
