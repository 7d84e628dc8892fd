// ABOUTME: Domain models for SERP mining results
// ABOUTME: Defines documents, per-query result blocks, and the replayable result set

package domain

import "strings"

// SerpDocument is a single organic search result normalized from the retrieval API.
// Maintext is only populated when a deep page fetch was requested.
type SerpDocument struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Domain   string `json:"domain"`
	Link     string `json:"link"`
	Maintext string `json:"maintext,omitempty"`
	Position int    `json:"position,omitempty"`
}

// CombinedText returns the text that mining operates on: title, snippet and
// optional main text joined with single spaces. Empty parts are skipped.
func (d SerpDocument) CombinedText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Title, d.Snippet, d.Maintext} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SerpQueryResult groups the documents mined for one seed query, in relevance
// order. A failed retrieval is recorded via Error with an empty Docs list so a
// single query failure never aborts the batch.
type SerpQueryResult struct {
	Query string         `json:"query"`
	Docs  []SerpDocument `json:"docs"`
	Error string         `json:"error,omitempty"`
}

// SerpResultSet is the ordered result of one mining call. It is fully
// self-describing JSON: callers may serialize it and replay it into the
// extraction step without any server-side session state.
type SerpResultSet []SerpQueryResult

// TotalDocs counts documents across all queries.
func (s SerpResultSet) TotalDocs() int {
	n := 0
	for _, block := range s {
		n += len(block.Docs)
	}
	return n
}

// AllFailed reports whether every query in the set failed retrieval.
func (s SerpResultSet) AllFailed() bool {
	if len(s) == 0 {
		return false
	}
	for _, block := range s {
		if block.Error == "" {
			return false
		}
	}
	return true
}

// FailedQueries returns the queries whose retrieval failed.
func (s SerpResultSet) FailedQueries() []string {
	failed := make([]string, 0)
	for _, block := range s {
		if block.Error != "" {
			failed = append(failed, block.Query)
		}
	}
	return failed
}
