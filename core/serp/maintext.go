// ABOUTME: Optional main-text enrichment for SERP documents
// ABOUTME: Fetches result pages and extracts readable body text

package serp

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"

	"intent-builder-api/core/domain"
	"intent-builder-api/core/interfaces"
	"intent-builder-api/core/textutil"
)

const (
	// maxMaintextLength caps extracted body text per document.
	maxMaintextLength = 20000

	enrichTimeout = 10 * time.Second
)

// Enricher fetches result pages and attaches readable main text to documents.
// Extraction failures leave the document untouched; titles and snippets are
// always enough to aggregate on.
type Enricher struct {
	logger      interfaces.Logger
	concurrency int
	userAgent   string
}

// NewEnricher creates a main-text enricher sharing the service's concurrency
// bound.
func NewEnricher(svc *Service) *Enricher {
	return &Enricher{
		logger:      svc.deps.Logger,
		concurrency: svc.cfg.Concurrency,
		userAgent:   "Mozilla/5.0 (compatible; IntentBuilder/1.0)",
	}
}

func (e *Enricher) logWarn(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Warn(msg, fields)
	}
}

// EnrichMaintext fetches each document's page and fills Maintext in place.
// Only the first maxDocs documents per query are enriched to keep latency
// bounded; pass maxDocs <= 0 to enrich everything.
func (e *Enricher) EnrichMaintext(ctx context.Context, results domain.SerpResultSet, maxDocs int) {
	sem := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup

	for qi := range results {
		for di := range results[qi].Docs {
			if maxDocs > 0 && di >= maxDocs {
				break
			}
			doc := &results[qi].Docs[di]
			if doc.Link == "" {
				continue
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(doc *domain.SerpDocument) {
				defer wg.Done()
				defer func() { <-sem }()

				select {
				case <-ctx.Done():
					return
				default:
				}

				text, err := e.extractPage(doc.Link)
				if err != nil {
					e.logWarn("maintext extraction failed", map[string]interface{}{
						"url":   doc.Link,
						"error": err.Error(),
					})
					return
				}
				doc.Maintext = text
			}(doc)
		}
	}
	wg.Wait()
}

// extractPage downloads one page and runs readability extraction with a
// goquery fallback for pages readability cannot parse.
func (e *Enricher) extractPage(link string) (string, error) {
	body, err := e.fetch(link)
	if err != nil {
		return "", err
	}

	pageURL, err := url.Parse(link)
	if err != nil {
		return "", err
	}

	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		if text := truncateText(textutil.NormalizeWhitespace(article.TextContent)); text != "" {
			return text, nil
		}
	}
	return e.extractWithGoquery(body)
}

// fetch downloads the page body via colly, which handles redirects and
// per-domain politeness.
func (e *Enricher) fetch(link string) ([]byte, error) {
	c := colly.NewCollector(
		colly.UserAgent(e.userAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(enrichTimeout)

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(link); err != nil {
		return nil, err
	}
	c.Wait()
	return body, nil
}

// extractWithGoquery strips script/style/nav chrome and returns the remaining
// body text.
func (e *Enricher) extractWithGoquery(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, nav, header, footer, noscript, iframe").Remove()
	text := textutil.NormalizeWhitespace(doc.Find("body").Text())
	return truncateText(text), nil
}

func truncateText(text string) string {
	if len(text) <= maxMaintextLength {
		return text
	}
	truncated := text[:maxMaintextLength]
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated
}
