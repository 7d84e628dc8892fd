// ABOUTME: Evidence aggregation service merging per-query SERP documents
// ABOUTME: Produces deterministic term/phrase frequency tables and ranked lists

package aggregate

import (
	"sort"

	"intent-builder-api/core/domain"
	"intent-builder-api/core/interfaces"
	"intent-builder-api/core/textutil"
)

const (
	maxTopTerms    = 50
	maxTopPhrases  = 30
	maxTermTable   = 100
	maxPhraseTable = 50
	maxDocSources  = 50
)

// Service merges mined SERP documents into a single evidence snapshot.
//
// Counting policy: frequencies are per-occurrence across the full evidence
// list, not per-document. Repeated use of a term inside one page raises its
// count; the boilerplate filter and blocked-phrase list keep templated page
// chrome from dominating the rankings. The same policy drives both the term
// and phrase tables so the two rankings stay comparable.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new aggregation service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Aggregate is a pure function of the result set and seed keywords: given
// identical input ordering it produces an identical snapshot. Empty evidence
// yields a snapshot with empty tables and zero counts, never an error.
func (s *Service) Aggregate(results domain.SerpResultSet, seeds []string) domain.AggregatedContent {
	termCounts := make(map[string]int)
	phraseCounts := make(map[string]int)
	docSources := make([]domain.DocSource, 0)

	totalDocs := 0
	totalTextLength := 0

	for _, block := range results {
		for _, doc := range block.Docs {
			combined := doc.CombinedText()
			if totalDocs > 0 {
				totalTextLength++ // separator between documents
			}
			totalTextLength += len(combined)
			totalDocs++

			tokens := textutil.Tokenize(combined)

			// Single terms: length/stopword/numeric filtered.
			filtered := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				if textutil.IsTerm(tok) {
					termCounts[tok]++
				}
				if !textutil.IsStopword(tok) {
					filtered = append(filtered, tok)
				}
			}

			// Phrases: 2- and 3-grams over stopword-filtered tokens, with the
			// blocked-phrase denylist applied at accumulation time.
			for _, n := range []int{2, 3} {
				for _, gram := range textutil.Ngrams(filtered, n) {
					if !textutil.IsBlockedPhrase(gram) {
						phraseCounts[gram]++
					}
				}
			}

			if len(docSources) < maxDocSources {
				docSources = append(docSources, domain.DocSource{
					Title:      doc.Title,
					Snippet:    doc.Snippet,
					Domain:     doc.Domain,
					Link:       doc.Link,
					TextLength: len(combined),
				})
			}
		}
	}

	rankedTerms := rankByFrequency(termCounts)
	rankedPhrases := rankByFrequency(phraseCounts)

	if seeds == nil {
		seeds = []string{}
	}

	return domain.AggregatedContent{
		TermFrequencies:   truncateTable(termCounts, rankedTerms, maxTermTable),
		PhraseFrequencies: truncateTable(phraseCounts, rankedPhrases, maxPhraseTable),
		TopTerms:          truncateList(rankedTerms, maxTopTerms),
		TopPhrases:        truncateList(rankedPhrases, maxTopPhrases),
		DocSources:        docSources,
		TotalDocs:         totalDocs,
		TotalTextLength:   totalTextLength,
		Seeds:             seeds,
		EvidenceCount:     totalDocs,
	}
}

// rankByFrequency orders keys by descending count, breaking ties
// alphabetically so repeated runs over the same evidence are reproducible.
func rankByFrequency(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// truncateTable keeps the top-ranked entries of a frequency table. The table
// always covers at least the ranked list, preserving the invariant that every
// ranked entry has a matching frequency.
func truncateTable(counts map[string]int, ranked []string, limit int) map[string]int {
	table := make(map[string]int)
	for i, key := range ranked {
		if i >= limit {
			break
		}
		table[key] = counts[key]
	}
	return table
}

func truncateList(ranked []string, limit int) []string {
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	copy(out, ranked)
	return out
}
