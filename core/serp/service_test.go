package serp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"intent-builder-api/core/domain"
	coreerrors "intent-builder-api/core/errors"
	"intent-builder-api/core/interfaces"
)

const serpPayload = `{
	"organic_results": [
		{"title": "Roof Repair &amp; Costs", "snippet": "Average   roof repair prices.", "link": "https://www.example.com/roof-repair"},
		{"title": "Find Contractors", "snippet": "Compare local pros.", "link": "https://contractors.example.org/find"}
	]
}`

func testService(client interfaces.HTTPClient, cache interfaces.Cache) *Service {
	return NewService(interfaces.Dependencies{
		HTTPClient: client,
		Cache:      cache,
	}, Config{
		APIURL: "https://search.test/api",
		APIKey: "test-key",
	})
}

func TestNewService_ClampsConcurrency(t *testing.T) {
	svc := NewService(interfaces.Dependencies{}, Config{Concurrency: 50})
	if svc.cfg.Concurrency != 10 {
		t.Errorf("concurrency should clamp to 10, got %d", svc.cfg.Concurrency)
	}

	svc = NewService(interfaces.Dependencies{}, Config{})
	if svc.cfg.Concurrency != 6 {
		t.Errorf("default concurrency should be 6, got %d", svc.cfg.Concurrency)
	}
}

func TestValidateSeeds_Empty(t *testing.T) {
	err := ValidateSeeds(nil)

	if !coreerrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidateSeeds_TooMany(t *testing.T) {
	seeds := make([]string, 21)
	for i := range seeds {
		seeds[i] = "keyword"
	}

	if !coreerrors.IsValidation(ValidateSeeds(seeds)) {
		t.Error("expected validation error for 21 seeds")
	}
}

func TestValidateSeeds_BlankEntry(t *testing.T) {
	if !coreerrors.IsValidation(ValidateSeeds([]string{"roof repair", "   "})) {
		t.Error("expected validation error for blank keyword")
	}
}

func TestValidateSeeds_AcceptsBounds(t *testing.T) {
	if err := ValidateSeeds([]string{"one"}); err != nil {
		t.Errorf("single seed should validate, got %v", err)
	}

	seeds := make([]string, 20)
	for i := range seeds {
		seeds[i] = "keyword"
	}
	if err := ValidateSeeds(seeds); err != nil {
		t.Errorf("twenty seeds should validate, got %v", err)
	}
}

func TestMineSERPs_ValidatesBeforeFetching(t *testing.T) {
	client := &mockHTTPClient{}
	svc := testService(client, nil)

	_, err := svc.MineSERPs(context.Background(), nil, "en-US", 30)

	if !coreerrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if client.callCount() != 0 {
		t.Errorf("no HTTP calls should happen on invalid input, got %d", client.callCount())
	}
}

func TestMineSERPs_ParsesOrganicResults(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: serpPayload}, nil
		},
	}
	svc := testService(client, nil)

	results, err := svc.MineSERPs(context.Background(), []string{"roof repair"}, "en-US", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 query block, got %d", len(results))
	}
	docs := results[0].Docs
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Title != "Roof Repair & Costs" {
		t.Errorf("HTML entities should be unescaped, got %q", docs[0].Title)
	}
	if docs[0].Snippet != "Average roof repair prices." {
		t.Errorf("whitespace should be collapsed, got %q", docs[0].Snippet)
	}
	if docs[0].Domain != "example.com" {
		t.Errorf("www prefix should be stripped, got %q", docs[0].Domain)
	}
	if docs[1].Domain != "contractors.example.org" {
		t.Errorf("unexpected domain %q", docs[1].Domain)
	}
	if docs[0].Position != 1 || docs[1].Position != 2 {
		t.Errorf("positions should be 1-based sequential, got %d and %d", docs[0].Position, docs[1].Position)
	}
}

func TestMineSERPs_SendsLocaleAndEngineParams(t *testing.T) {
	var gotURL string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			gotURL = url
			return &mockResponse{statusCode: 200, body: `{"organic_results":[]}`}, nil
		},
	}
	svc := testService(client, nil)

	_, err := svc.MineSERPs(context.Background(), []string{"roof repair"}, "en-GB", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"hl=en", "gl=GB", "engine=google", "num=10", "api_key=test-key"} {
		if !strings.Contains(gotURL, want) {
			t.Errorf("request URL missing %q: %s", want, gotURL)
		}
	}
}

func TestMineSERPs_PerQueryFailureDoesNotAbortBatch(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "bad") {
				return nil, errors.New("connection refused")
			}
			return &mockResponse{statusCode: 200, body: serpPayload}, nil
		},
	}
	svc := testService(client, nil)

	results, err := svc.MineSERPs(context.Background(), []string{"good query", "bad query"}, "en-US", 30)
	if err != nil {
		t.Fatalf("batch should not abort, got %v", err)
	}

	if results[0].Error != "" || len(results[0].Docs) != 2 {
		t.Errorf("first query should succeed: %+v", results[0])
	}
	if results[1].Error == "" {
		t.Error("second query should record its error")
	}
	if len(results[1].Docs) != 0 {
		t.Errorf("failed query should have no docs, got %d", len(results[1].Docs))
	}
	if results.AllFailed() {
		t.Error("AllFailed should be false with one success")
	}
}

func TestMineSERPs_ResultsInRequestOrder(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"organic_results":[]}`}, nil
		},
	}
	svc := testService(client, nil)

	seeds := []string{"alpha", "bravo", "charlie", "delta"}
	results, err := svc.MineSERPs(context.Background(), seeds, "en-US", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, seed := range seeds {
		if results[i].Query != seed {
			t.Errorf("position %d: expected %q, got %q", i, seed, results[i].Query)
		}
	}
}

func TestMineSERPs_Non200RecordedAsQueryError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 429, body: "slow down"}, nil
		},
	}
	svc := testService(client, nil)

	results, err := svc.MineSERPs(context.Background(), []string{"roof repair"}, "en-US", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Error == "" {
		t.Error("non-200 status should be recorded on the query block")
	}
	if !results.AllFailed() {
		t.Error("single failed query means AllFailed")
	}
}

func TestMineSERPs_CachesSuccessfulQueries(t *testing.T) {
	cache := &mockCache{}
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: serpPayload}, nil
		},
	}
	svc := testService(client, cache)

	_, err := svc.MineSERPs(context.Background(), []string{"roof repair"}, "en-US", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.sets != 1 {
		t.Errorf("successful query should be cached once, got %d sets", cache.sets)
	}
}

func TestMineSERPs_ServesFromCache(t *testing.T) {
	cached := domain.SerpQueryResult{
		Query: "roof repair",
		Docs:  []domain.SerpDocument{{Title: "Cached Doc", Link: "https://example.com"}},
	}
	data, _ := json.Marshal(cached)

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return data, nil
		},
	}
	client := &mockHTTPClient{}
	svc := testService(client, cache)

	results, err := svc.MineSERPs(context.Background(), []string{"roof repair"}, "en-US", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.callCount() != 0 {
		t.Errorf("cache hit should skip HTTP, got %d calls", client.callCount())
	}
	if len(results[0].Docs) != 1 || results[0].Docs[0].Title != "Cached Doc" {
		t.Errorf("expected cached docs, got %+v", results[0])
	}
}

func TestSplitLocale(t *testing.T) {
	hl, gl := splitLocale("en-US")
	if hl != "en" || gl != "US" {
		t.Errorf("expected en/US, got %s/%s", hl, gl)
	}

	hl, gl = splitLocale("de")
	if hl != "de" || gl != "" {
		t.Errorf("expected de with empty region, got %s/%s", hl, gl)
	}
}

func TestRegistrableDomain(t *testing.T) {
	if got := registrableDomain("https://www.Example.com/page?q=1"); got != "example.com" {
		t.Errorf("expected example.com, got %q", got)
	}
	if got := registrableDomain("https://sub.example.co.uk/x"); got != "sub.example.co.uk" {
		t.Errorf("expected sub.example.co.uk, got %q", got)
	}
}
