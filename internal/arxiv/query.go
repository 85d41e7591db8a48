// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"net/url"
	"strings"
	"time"
)

// SortBy enumerates the sort fields the API accepts for advanced queries.
type SortBy string

const (
	SortRelevance   SortBy = "relevance"
	SortLastUpdated SortBy = "lastUpdatedDate"
	SortSubmitted   SortBy = "submittedDate"
)

func (s SortBy) valid() bool {
	switch s {
	case SortRelevance, SortLastUpdated, SortSubmitted:
		return true
	}
	return false
}

// SortOrder enumerates the sort directions the API accepts.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

func (s SortOrder) valid() bool {
	return s == Ascending || s == Descending
}

// dateStamp is the submittedDate clause format (YYYYMMDDHHMMSS).
const dateStamp = "20060102150405"

// phraseQuote wraps a multi-word query in quotes so the API matches it
// as an exact phrase. Queries carrying explicit boolean operators are
// left alone so AND/OR keep their meaning.
func phraseQuote(query string) string {
	if strings.Contains(query, " ") &&
		!strings.Contains(query, "AND") &&
		!strings.Contains(query, "OR") {
		return `"` + query + `"`
	}
	return query
}

// quoteMultiWord wraps any multi-word term in quotes. Used for title and
// author fields, where boolean operators are not expected.
func quoteMultiWord(term string) string {
	if strings.Contains(term, " ") {
		return `"` + term + `"`
	}
	return term
}

// fieldQuery builds a search_query value for one field prefix, e.g.
// fieldQuery("ti", `"deep learning"`) → "ti:%22deep+learning%22".
func fieldQuery(prefix, term string) string {
	return prefix + ":" + url.QueryEscape(term)
}

// dateRangeQuery builds a submittedDate clause and ANDs it onto an
// optional base query. The clause is passed to the API verbatim; arXiv
// treats "+" as the term separator here.
func dateRangeQuery(base string, from, to time.Time) string {
	clause := "submittedDate:[" + from.Format(dateStamp) + "+TO+" + to.Format(dateStamp) + "]"
	if base == "" {
		return clause
	}
	return base + "+AND+" + clause
}
