// ABOUTME: Unicode-aware tokenization and n-gram helpers for evidence mining
// ABOUTME: Case-folds, strips SERP boilerplate, and splits on non-word runes

package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinTermLength is the shortest token that counts as a term.
const MinTermLength = 3

var (
	boilerplatePattern = regexp.MustCompile(`(?i)(cookie|privacy|terms|subscribe|login|sign in|sign up|accept|advertis|newsletter)`)
	nonWordPattern     = regexp.MustCompile(`[^\pL\pN\- ]+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Tokenize case-folds text, removes boilerplate spans, and splits on anything
// that is not a letter, digit, or hyphen. Stopword removal is the caller's
// concern so that term and phrase accumulation can filter differently.
func Tokenize(text string) []string {
	t := strings.ToLower(text)
	t = boilerplatePattern.ReplaceAllString(t, " ")
	t = nonWordPattern.ReplaceAllString(t, " ")
	return strings.Fields(t)
}

// Ngrams returns all space-joined n-grams over the token slice.
func Ngrams(tokens []string, n int) []string {
	if len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

// IsNumeric reports whether the token is composed entirely of digits.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsTerm reports whether a token qualifies as a countable term: long enough,
// not purely numeric, and not a stopword.
func IsTerm(token string) bool {
	return utf8.RuneCountInString(token) >= MinTermLength && !IsNumeric(token) && !IsStopword(token)
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
