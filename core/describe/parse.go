// ABOUTME: Parsing of structured NAME/DESCRIPTION provider responses
// ABOUTME: Splits camel-cased names and strips generic suffixes

package describe

import (
	"regexp"
	"strings"
	"unicode"

	"intent-builder-api/core/textutil"
)

var nameSuffixPattern = regexp.MustCompile(`(?i)\s+(Intent|Service|System|Platform|Tool|Solution)$`)

// parseStructuredResponse pulls candidate names and the description out of a
// provider response in the NAME1..NAME3 / DESCRIPTION format. Lines that do
// not match the format are ignored, so stray prose around the block is
// harmless.
func parseStructuredResponse(response string) (names []string, description string) {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "NAME") && strings.Contains(line, ":"):
			parts := strings.SplitN(line, ":", 2)
			if name := formatName(strings.TrimSpace(parts[1])); name != "" {
				names = append(names, name)
			}
		case strings.HasPrefix(line, "DESCRIPTION:"):
			description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
		}
	}
	return names, description
}

// formatName inserts spaces into camel-cased names, normalizes whitespace,
// and removes generic trailing suffixes. Acronyms stay intact:
// "RoofingSystemRepair" becomes "Roofing System Repair" while "SSLSetup"
// becomes "SSL Setup".
func formatName(name string) string {
	if name == "" {
		return name
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}

	formatted := textutil.NormalizeWhitespace(b.String())
	formatted = nameSuffixPattern.ReplaceAllString(formatted, "")
	return strings.TrimSpace(formatted)
}

// dedupeNames removes case-insensitive duplicates preserving order, capped at
// limit entries.
func dedupeNames(names []string, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
		if len(out) >= limit {
			break
		}
	}
	return out
}
