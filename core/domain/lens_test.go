package domain

import "testing"

func TestParseLens_AcceptsAllKnownLenses(t *testing.T) {
	for _, lens := range AllLenses() {
		parsed, err := ParseLens(string(lens))
		if err != nil {
			t.Errorf("lens %q should parse, got %v", lens, err)
		}
		if parsed != lens {
			t.Errorf("expected %q, got %q", lens, parsed)
		}
	}
}

func TestParseLens_CaseInsensitive(t *testing.T) {
	parsed, err := ParseLens("SERVICE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != LensService {
		t.Errorf("expected service lens, got %q", parsed)
	}
}

func TestParseLens_RejectsUnknown(t *testing.T) {
	if _, err := ParseLens("marketing"); err == nil {
		t.Error("unknown lens should be rejected")
	}
	if _, err := ParseLens(""); err == nil {
		t.Error("empty lens should be rejected")
	}
}

func TestAllLenses_CountAndUniqueness(t *testing.T) {
	lenses := AllLenses()
	if len(lenses) != 6 {
		t.Fatalf("expected 6 lenses, got %d", len(lenses))
	}
	seen := make(map[Lens]struct{})
	for _, l := range lenses {
		if _, ok := seen[l]; ok {
			t.Errorf("duplicate lens %q", l)
		}
		seen[l] = struct{}{}
	}
}

func TestSerpResultSet_TotalDocs(t *testing.T) {
	set := SerpResultSet{
		{Query: "a", Docs: []SerpDocument{{Title: "1"}, {Title: "2"}}},
		{Query: "b", Docs: []SerpDocument{{Title: "3"}}},
		{Query: "c", Error: "timeout"},
	}

	if set.TotalDocs() != 3 {
		t.Errorf("expected 3 docs, got %d", set.TotalDocs())
	}
}

func TestSerpResultSet_AllFailed(t *testing.T) {
	failed := SerpResultSet{
		{Query: "a", Error: "timeout"},
		{Query: "b", Error: "refused"},
	}
	if !failed.AllFailed() {
		t.Error("all queries failed, AllFailed should be true")
	}

	mixed := SerpResultSet{
		{Query: "a", Error: "timeout"},
		{Query: "b", Docs: []SerpDocument{{Title: "1"}}},
	}
	if mixed.AllFailed() {
		t.Error("one success means AllFailed is false")
	}

	if (SerpResultSet{}).AllFailed() {
		t.Error("empty set has no failures")
	}
}

func TestSerpResultSet_FailedQueries(t *testing.T) {
	set := SerpResultSet{
		{Query: "a", Error: "timeout"},
		{Query: "b", Docs: []SerpDocument{{Title: "1"}}},
		{Query: "c", Error: "refused"},
	}

	failed := set.FailedQueries()
	if len(failed) != 2 || failed[0] != "a" || failed[1] != "c" {
		t.Errorf("unexpected failed queries: %v", failed)
	}
}

func TestCombinedText_JoinsNonEmptyParts(t *testing.T) {
	doc := SerpDocument{Title: "Roof Repair", Snippet: "Cost guide", Maintext: "Full article text"}

	combined := doc.CombinedText()
	if combined != "Roof Repair Cost guide Full article text" {
		t.Errorf("unexpected combined text: %q", combined)
	}

	sparse := SerpDocument{Title: "Roof Repair"}
	if sparse.CombinedText() != "Roof Repair" {
		t.Errorf("empty parts should be skipped, got %q", sparse.CombinedText())
	}
}
