// ABOUTME: RAKE-style keyphrase extraction over mined SERP text
// ABOUTME: Scores candidate spans by co-occurrence degree over word frequency

package keyphrase

import (
	"regexp"
	"sort"
	"strings"

	"intent-builder-api/core/domain"
	"intent-builder-api/core/textutil"
)

const (
	// DefaultMaxPhrases bounds the returned keyphrase list when the caller
	// does not specify a limit.
	DefaultMaxPhrases = 15

	// maxSpanWords caps candidate span length; longer runs are split.
	maxSpanWords = 4
)

var (
	segmentSplitPattern = regexp.MustCompile(`[^\pL\pN\-' ]+`)
	wordCleanPattern    = regexp.MustCompile(`[^\pL\pN\-']+`)
)

// candidate is one surface form with its normalized key and running score.
type candidate struct {
	surface   string
	score     float64
	firstSeen int
}

// Extractor finds semantically coherent multi-word spans, independent of the
// raw n-gram counting done during aggregation. Candidates are runs of
// non-stopword words bounded by stopwords or sentence punctuation; each is
// scored by the sum of degree(word)/frequency(word) over its constituent
// words, so words that co-occur in longer coherent spans outrank words that
// merely repeat.
type Extractor struct {
	maxSpanWords int
}

// NewExtractor creates an extractor with default span bounds.
func NewExtractor() *Extractor {
	return &Extractor{maxSpanWords: maxSpanWords}
}

// ExtractFromResults concatenates every document's text across the result set
// and extracts keyphrases from the combined evidence.
func (e *Extractor) ExtractFromResults(results domain.SerpResultSet, maxPhrases int) []string {
	var parts []string
	for _, block := range results {
		for _, doc := range block.Docs {
			parts = append(parts, doc.CombinedText())
		}
	}
	return e.Extract(strings.Join(parts, ". "), maxPhrases)
}

// Extract returns up to maxPhrases keyphrases ranked by score. Near-duplicate
// candidates (case-insensitive, whitespace-normalized) are merged keeping the
// highest-scoring surface form; score ties resolve in first-seen order so the
// ranking is deterministic.
func (e *Extractor) Extract(text string, maxPhrases int) []string {
	if maxPhrases <= 0 {
		maxPhrases = DefaultMaxPhrases
	}
	spans := e.candidateSpans(text)
	if len(spans) == 0 {
		return []string{}
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, span := range spans {
		for _, w := range span {
			lw := strings.ToLower(w)
			freq[lw]++
			degree[lw] += len(span)
		}
	}

	merged := make(map[string]*candidate)
	order := make([]string, 0)
	for i, span := range spans {
		surface := strings.Join(span, " ")
		key := textutil.NormalizeWhitespace(strings.ToLower(surface))
		score := 0.0
		for _, w := range span {
			lw := strings.ToLower(w)
			score += float64(degree[lw]) / float64(freq[lw])
		}
		if existing, ok := merged[key]; ok {
			if score > existing.score {
				existing.score = score
				existing.surface = surface
			}
			continue
		}
		merged[key] = &candidate{surface: surface, score: score, firstSeen: i}
		order = append(order, key)
	}

	ranked := make([]*candidate, 0, len(merged))
	for _, key := range order {
		ranked = append(ranked, merged[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})

	out := make([]string, 0, maxPhrases)
	for _, c := range ranked {
		out = append(out, c.surface)
		if len(out) >= maxPhrases {
			break
		}
	}
	return out
}

// candidateSpans splits text into punctuation-bounded segments, then into
// runs of consecutive non-stopword words. Original casing is preserved on the
// surface form; stopword and numeric checks run on the folded word.
func (e *Extractor) candidateSpans(text string) [][]string {
	var spans [][]string
	for _, segment := range segmentSplitPattern.Split(text, -1) {
		var run []string
		flush := func() {
			if len(run) >= 2 {
				spans = append(spans, run)
			}
			run = nil
		}
		for _, raw := range strings.Fields(segment) {
			word := wordCleanPattern.ReplaceAllString(raw, "")
			folded := strings.ToLower(word)
			if word == "" || textutil.IsStopword(folded) || textutil.IsNumeric(folded) || len(folded) < 2 {
				flush()
				continue
			}
			run = append(run, word)
			if len(run) == e.maxSpanWords {
				flush()
			}
		}
		flush()
	}
	return spans
}
