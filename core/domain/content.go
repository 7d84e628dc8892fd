// ABOUTME: Aggregated evidence models derived from SERP mining
// ABOUTME: Defines the self-describing content snapshot passed between pipeline steps

package domain

// DocSource summarizes an analyzed document without carrying its full text,
// keeping the serialized snapshot bounded.
type DocSource struct {
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	Domain     string `json:"domain"`
	Link       string `json:"link"`
	TextLength int    `json:"text_length"`
}

// AggregatedContent is the immutable evidence snapshot produced by aggregation.
// Ranked lists are sorted by descending frequency with lexicographic tie-break,
// and every ranked entry has a matching key in its frequency table. The doc
// source list is capped; TotalDocs always reflects the untruncated count.
type AggregatedContent struct {
	TermFrequencies     map[string]int `json:"term_frequencies"`
	PhraseFrequencies   map[string]int `json:"phrase_frequencies"`
	TopTerms            []string       `json:"top_terms"`
	TopPhrases          []string       `json:"top_phrases"`
	ExtractedKeyphrases []string       `json:"extracted_keyphrases,omitempty"`
	DocSources          []DocSource    `json:"doc_sources"`
	TotalDocs           int            `json:"total_docs"`
	TotalTextLength     int            `json:"total_text_length"`
	Seeds               []string       `json:"seeds"`
	EvidenceCount       int            `json:"evidence_count"`
}

// Empty reports whether the snapshot was built from zero documents.
func (c AggregatedContent) Empty() bool {
	return c.TotalDocs == 0
}
