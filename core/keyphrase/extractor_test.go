package keyphrase

import (
	"strings"
	"testing"

	"intent-builder-api/core/domain"
)

func TestNewExtractor(t *testing.T) {
	if NewExtractor() == nil {
		t.Error("NewExtractor returned nil")
	}
}

func TestExtract_RequiresMultiWordCandidates(t *testing.T) {
	e := NewExtractor()

	phrases := e.Extract("roofing", 10)

	if len(phrases) != 0 {
		t.Errorf("single word should yield no keyphrases, got %v", phrases)
	}
}

func TestExtract_FindsCooccurringPhrase(t *testing.T) {
	e := NewExtractor()
	text := "metal roof installation is popular. metal roof installation is affordable. owners choose the metal roof installation for homes."

	phrases := e.Extract(text, 10)

	if len(phrases) == 0 {
		t.Fatal("expected at least one keyphrase")
	}
	if !strings.EqualFold(phrases[0], "metal roof installation") {
		t.Errorf("expected 'metal roof installation' first, got %q", phrases[0])
	}
}

func TestExtract_SplitsAtStopwords(t *testing.T) {
	e := NewExtractor()
	text := "solar panels and battery storage. solar panels and battery storage."

	phrases := e.Extract(text, 10)

	for _, p := range phrases {
		if strings.Contains(strings.ToLower(p), " and ") {
			t.Errorf("candidate %q spans a stopword", p)
		}
	}
}

func TestExtract_CaseInsensitiveDedupe(t *testing.T) {
	e := NewExtractor()
	text := "Solar Panels work well. solar panels work well. SOLAR PANELS work well."

	phrases := e.Extract(text, 10)

	seen := make(map[string]int)
	for _, p := range phrases {
		seen[strings.ToLower(p)]++
	}
	for key, n := range seen {
		if n > 1 {
			t.Errorf("phrase %q returned %d times", key, n)
		}
	}
}

func TestExtract_RespectsMaxPhrases(t *testing.T) {
	e := NewExtractor()
	text := "alpha beta works. gamma delta works. epsilon zeta works. theta iota works."

	phrases := e.Extract(text, 2)

	if len(phrases) > 2 {
		t.Errorf("expected at most 2 phrases, got %d", len(phrases))
	}
}

func TestExtract_ZeroMaxUsesDefault(t *testing.T) {
	e := NewExtractor()
	text := "alpha beta works. gamma delta works."

	phrases := e.Extract(text, 0)

	if len(phrases) == 0 {
		t.Error("expected phrases with default limit")
	}
	if len(phrases) > DefaultMaxPhrases {
		t.Errorf("default limit exceeded: %d", len(phrases))
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor()
	text := "roof repair cost matters. roof repair estimate helps. solar panel installation grows."

	first := e.Extract(text, 10)
	second := e.Extract(text, 10)

	if strings.Join(first, "|") != strings.Join(second, "|") {
		t.Errorf("extraction not deterministic: %v vs %v", first, second)
	}
}

func TestExtractFromResults_UsesAllDocuments(t *testing.T) {
	e := NewExtractor()
	results := domain.SerpResultSet{
		{Query: "q1", Docs: []domain.SerpDocument{
			{Title: "metal roof installation for beginners"},
			{Title: "metal roof installation at home"},
		}},
		{Query: "q2", Docs: []domain.SerpDocument{
			{Title: "metal roof installation is cheap"},
		}},
	}

	phrases := e.ExtractFromResults(results, 5)

	found := false
	for _, p := range phrases {
		if strings.EqualFold(p, "metal roof installation") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'metal roof installation' in %v", phrases)
	}
}

func TestExtractFromResults_EmptyResults(t *testing.T) {
	e := NewExtractor()

	phrases := e.ExtractFromResults(domain.SerpResultSet{}, 5)

	if len(phrases) != 0 {
		t.Errorf("expected no phrases, got %v", phrases)
	}
}
