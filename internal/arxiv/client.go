// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv translates logical search requests into the arXiv API's
// query grammar, executes them (optionally through a relay), and
// normalizes the Atom response into Paper records.
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ashutosh-ps/arxiv-explorer/internal/httputil"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

const (
	defaultTimeout         = 30 * time.Second
	defaultMaxResults      = 10
	defaultRequestInterval = 3 * time.Second
)

// Client queries the arXiv API.
type Client struct {
	httpClient *http.Client
	cfg        types.SearchConfig
	limiter    *rate.Limiter
}

// NewClient builds a Client from cfg, applying defaults for zero fields.
// A negative RequestInterval disables request pacing entirely.
func NewClient(cfg types.SearchConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.RequestInterval == 0 {
		cfg.RequestInterval = defaultRequestInterval
	}

	var limiter *rate.Limiter
	if cfg.RequestInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RequestInterval), 1)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    limiter,
	}
}

// SearchAllFields searches every field. Multi-word queries without
// explicit boolean operators are phrase-quoted.
func (c *Client) SearchAllFields(ctx context.Context, query string, start, maxResults int) ([]types.Paper, error) {
	return c.search(ctx, fieldQuery("all", phraseQuote(query)), start, maxResults)
}

// SearchByTitle searches the title field, phrase-quoting multi-word titles.
func (c *Client) SearchByTitle(ctx context.Context, title string, start, maxResults int) ([]types.Paper, error) {
	return c.search(ctx, fieldQuery("ti", quoteMultiWord(title)), start, maxResults)
}

// SearchByAuthor searches the author field, phrase-quoting multi-word names.
func (c *Client) SearchByAuthor(ctx context.Context, author string, start, maxResults int) ([]types.Paper, error) {
	return c.search(ctx, fieldQuery("au", quoteMultiWord(author)), start, maxResults)
}

// SearchByAbstract searches abstracts with the same phrase-quoting rule
// as SearchAllFields.
func (c *Client) SearchByAbstract(ctx context.Context, text string, start, maxResults int) ([]types.Paper, error) {
	return c.search(ctx, fieldQuery("abs", phraseQuote(text)), start, maxResults)
}

// SearchByCategory searches by category code (e.g. "cs.LG").
func (c *Client) SearchByCategory(ctx context.Context, category string, start, maxResults int) ([]types.Paper, error) {
	return c.search(ctx, fieldQuery("cat", category), start, maxResults)
}

// AdvancedSearch passes query through verbatim so boolean operators and
// field prefixes reach the API unchanged, with explicit sort parameters.
func (c *Client) AdvancedSearch(ctx context.Context, query string, sortBy SortBy, sortOrder SortOrder, start, maxResults int) ([]types.Paper, error) {
	if !sortBy.valid() {
		return nil, fmt.Errorf("%w: sortBy %q", ErrInvalidSort, sortBy)
	}
	if !sortOrder.valid() {
		return nil, fmt.Errorf("%w: sortOrder %q", ErrInvalidSort, sortOrder)
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&sortBy=%s&sortOrder=%s&start=%d&max_results=%d",
		apiBase, url.QueryEscape(query), sortBy, sortOrder, start, c.pageSize(maxResults))
	return c.fetch(ctx, reqURL)
}

// SearchByDateRange ANDs a submittedDate clause onto an optional
// all-fields query. An end before start is rejected before any network
// call.
func (c *Client) SearchByDateRange(ctx context.Context, query string, from, to time.Time, start, maxResults int) ([]types.Paper, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	base := ""
	if query != "" {
		base = fieldQuery("all", phraseQuote(query))
	}
	reqURL := fmt.Sprintf("%s?search_query=%s&start=%d&max_results=%d",
		apiBase, dateRangeQuery(base, from, to), start, c.pageSize(maxResults))
	return c.fetch(ctx, reqURL)
}

// GetByIDs fetches papers directly by arXiv ID via the id_list parameter.
func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]types.Paper, error) {
	reqURL := fmt.Sprintf("%s?id_list=%s", apiBase, strings.Join(ids, ","))
	return c.fetch(ctx, reqURL)
}

// HasMore reports whether another page is likely available. The feed
// exposes no reliable cursor; a full page is taken as "probably more",
// which overshoots by one page when the total is an exact multiple.
func (c *Client) HasMore(returned, requested int) bool {
	if requested <= 0 {
		requested = c.cfg.MaxResults
	}
	return returned > 0 && returned == requested
}

func (c *Client) search(ctx context.Context, searchQuery string, start, maxResults int) ([]types.Paper, error) {
	reqURL := fmt.Sprintf("%s?search_query=%s&start=%d&max_results=%d",
		apiBase, searchQuery, start, c.pageSize(maxResults))
	return c.fetch(ctx, reqURL)
}

func (c *Client) pageSize(maxResults int) int {
	if maxResults <= 0 {
		return c.cfg.MaxResults
	}
	return maxResults
}

// fetch executes the request, routing through the relay when configured,
// and parses the Atom payload.
func (c *Client) fetch(ctx context.Context, reqURL string) ([]types.Paper, error) {
	if c.cfg.ProxyURL != "" {
		reqURL = c.cfg.ProxyURL + "?url=" + url.QueryEscape(reqURL)
	}

	resp, err := httputil.Get(ctx, c.httpClient, c.limiter, reqURL, c.cfg.UserAgent, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Err: fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)}
	}

	return parseFeed(resp.Body)
}
