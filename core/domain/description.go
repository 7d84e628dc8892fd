// ABOUTME: Generated description models with structural validation results
// ABOUTME: A GeneratedDescription is never mutated after validation

package domain

// DescriptionValidation reports each structural rule independently.
type DescriptionValidation struct {
	ForbiddenUsed   bool `json:"forbidden_used"`
	WordCount       int  `json:"word_count"`
	HasTwoSentences bool `json:"has_two_sentences"`
}

// GeneratedDescription is the final synthesis output: deduplicated candidate
// names plus a description that passed validation (provider output or the
// deterministic fallback, never unvalidated text).
type GeneratedDescription struct {
	Names       []string              `json:"names"`
	Description string                `json:"description"`
	Validation  DescriptionValidation `json:"validation"`
}
