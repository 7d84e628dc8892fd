// ABOUTME: SERP retrieval service fetching search results for seed keywords
// ABOUTME: Fans out per-query with bounded concurrency; failures stay per-query

package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"intent-builder-api/core/domain"
	coreerrors "intent-builder-api/core/errors"
	"intent-builder-api/core/interfaces"
	"intent-builder-api/core/textutil"
)

const (
	// MaxSeedKeywords bounds one mining request.
	MaxSeedKeywords = 20

	// maxConcurrency is the hard cap on simultaneous outbound SERP calls.
	maxConcurrency = 10

	defaultConcurrency = 6
	defaultCacheTTL    = 15 * time.Minute
)

// Config holds SERP provider settings.
type Config struct {
	// APIURL is the search API endpoint, e.g. https://www.searchapi.io/api/v1/search
	APIURL string

	// APIKey authenticates against the search API.
	APIKey string

	// Engine selects the search engine, e.g. "google".
	Engine string

	// Concurrency bounds simultaneous per-query fetches (1..10).
	Concurrency int

	// CacheTTL controls how long per-query results are cached.
	CacheTTL time.Duration
}

// Service fetches SERP documents for seed keyword batches.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a SERP retrieval service, clamping concurrency into the
// supported range.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Concurrency > maxConcurrency {
		cfg.Concurrency = maxConcurrency
	}
	if cfg.Engine == "" {
		cfg.Engine = "google"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &Service{deps: deps, cfg: cfg}
}

// ValidateSeeds enforces the 1..20 keyword window with non-empty entries.
// It runs before any outbound call is made.
func ValidateSeeds(seeds []string) error {
	if len(seeds) == 0 {
		return coreerrors.NewValidation("seed_keywords", "at least one seed keyword is required")
	}
	if len(seeds) > MaxSeedKeywords {
		return coreerrors.NewValidation("seed_keywords", fmt.Sprintf("at most %d seed keywords are allowed", MaxSeedKeywords))
	}
	for i, s := range seeds {
		if strings.TrimSpace(s) == "" {
			return coreerrors.NewValidation("seed_keywords", fmt.Sprintf("keyword at position %d is empty", i))
		}
	}
	return nil
}

// MineSERPs fetches results for every seed query concurrently and fans in
// before returning. A single query's failure is recorded in its block and
// never aborts the batch; the caller inspects AllFailed for the
// everything-failed condition.
func (s *Service) MineSERPs(ctx context.Context, seeds []string, locale string, perQuery int) (domain.SerpResultSet, error) {
	if err := ValidateSeeds(seeds); err != nil {
		return nil, err
	}
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}
	if locale == "" {
		locale = "en-US"
	}
	if perQuery <= 0 {
		perQuery = 30
	}

	results := make(domain.SerpResultSet, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			results[i] = s.fetchQuery(gctx, seed, locale, perQuery)
			return nil
		})
	}
	// Workers never return errors; Wait only observes context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("SERP mining complete", map[string]interface{}{
			"queries":        len(seeds),
			"docs":           results.TotalDocs(),
			"failed_queries": len(results.FailedQueries()),
		})
	}
	return results, nil
}

// fetchQuery retrieves one query's results, serving from cache when possible.
func (s *Service) fetchQuery(ctx context.Context, query, locale string, perQuery int) domain.SerpQueryResult {
	cacheKey := fmt.Sprintf("serp:%s:%s:%d", locale, query, perQuery)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.SerpQueryResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	result := domain.SerpQueryResult{Query: query, Docs: []domain.SerpDocument{}}
	docs, err := s.callSearchAPI(ctx, query, locale, perQuery)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Docs = docs

	if s.deps.Cache != nil && len(docs) > 0 {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.CacheTTL)
		}
	}
	return result
}

// callSearchAPI performs the outbound request and normalizes organic results.
func (s *Service) callSearchAPI(ctx context.Context, query, locale string, perQuery int) ([]domain.SerpDocument, error) {
	hl, gl := splitLocale(locale)
	params := url.Values{}
	params.Set("engine", s.cfg.Engine)
	params.Set("q", query)
	params.Set("api_key", s.cfg.APIKey)
	params.Set("hl", hl)
	if gl != "" {
		params.Set("gl", gl)
	}
	params.Set("num", strconv.Itoa(perQuery))

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.APIURL+"?"+params.Encode())
	if err != nil {
		return nil, coreerrors.WrapError(err, "SERP request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "serp",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read SERP response")
	}

	var payload struct {
		OrganicResults []organicResult `json:"organic_results"`
		Results        []organicResult `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse SERP response")
	}

	organic := payload.OrganicResults
	if len(organic) == 0 {
		organic = payload.Results
	}

	docs := make([]domain.SerpDocument, 0, len(organic))
	pos := 1
	for _, item := range organic {
		link := item.Link
		if link == "" {
			link = item.URL
		}
		if link == "" {
			continue
		}
		if len(docs) == perQuery {
			break
		}
		docs = append(docs, domain.SerpDocument{
			Title:    cleanText(item.Title),
			Snippet:  cleanText(firstNonEmpty(item.Snippet, item.Description)),
			Domain:   registrableDomain(link),
			Link:     link,
			Position: pos,
		})
		pos++
	}
	return docs, nil
}

type organicResult struct {
	Link        string `json:"link"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Description string `json:"description"`
}

// splitLocale maps "en-US" onto hl=en, gl=US.
func splitLocale(locale string) (hl, gl string) {
	if idx := strings.Index(locale, "-"); idx >= 0 {
		return locale[:idx], locale[idx+1:]
	}
	return locale, ""
}

// cleanText unescapes HTML entities and collapses whitespace.
func cleanText(s string) string {
	return textutil.NormalizeWhitespace(html.UnescapeString(s))
}

// registrableDomain extracts the host, dropping a leading www.
func registrableDomain(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
