// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wiki resolves article titles to plain-text extracts through the
// MediaWiki Action API. It implements the lookup.Source contract, mapping
// API responses onto the not-found / ambiguous / transient taxonomy.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/pdiddy/street-eras/internal/lookup"
	"github.com/pdiddy/street-eras/pkg/types"
)

// apiBase is the MediaWiki Action API endpoint. Declared as a var so tests
// can substitute an httptest server.
var apiBase = "https://en.wikipedia.org/w/api.php"

// candidateLimit caps how many disambiguation candidates are fetched. The
// resolver only follows the first, but the full list aids logging.
const candidateLimit = "50"

// Client queries the MediaWiki API. The limiter, when set, is shared by
// every worker holding this client, bounding the aggregate request rate.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// NewClient builds a Client from the lookup configuration.
func NewClient(cfg types.LookupConfig) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
	}
	if cfg.RateLimitRPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}
	return c
}

// queryResponse covers both the extract and the links queries
// (formatversion=2).
type queryResponse struct {
	Query struct {
		Pages []queryPage `json:"pages"`
	} `json:"query"`
}

type queryPage struct {
	Title     string `json:"title"`
	Missing   bool   `json:"missing"`
	Extract   string `json:"extract"`
	PageProps struct {
		Disambiguation *string `json:"disambiguation"`
	} `json:"pageprops"`
	Links []struct {
		Title string `json:"title"`
	} `json:"links"`
}

// Lookup fetches the plain-text extract for title. A missing page yields
// lookup.ErrNotFound; a disambiguation page yields *lookup.AmbiguousError
// carrying the page's article links in order; network and server failures
// yield *lookup.TransientError.
func (c *Client) Lookup(ctx context.Context, title string) (string, error) {
	page, err := c.query(ctx, title, url.Values{
		"prop":        {"extracts|pageprops"},
		"ppprop":      {"disambiguation"},
		"explaintext": {"1"},
		"redirects":   {"1"},
	})
	if err != nil {
		return "", err
	}
	if page == nil || page.Missing {
		return "", lookup.ErrNotFound
	}

	if page.PageProps.Disambiguation != nil {
		candidates, err := c.candidates(ctx, page.Title)
		if err != nil {
			return "", err
		}
		return "", &lookup.AmbiguousError{Title: title, Candidates: candidates}
	}

	return page.Extract, nil
}

// candidates lists the article-namespace links of a disambiguation page.
func (c *Client) candidates(ctx context.Context, title string) ([]string, error) {
	page, err := c.query(ctx, title, url.Values{
		"prop":        {"links"},
		"plnamespace": {"0"},
		"pllimit":     {candidateLimit},
	})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}
	titles := make([]string, 0, len(page.Links))
	for _, l := range page.Links {
		titles = append(titles, l.Title)
	}
	return titles, nil
}

// query issues one action=query request and returns its single page.
func (c *Client) query(ctx context.Context, title string, params url.Values) (*queryPage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &lookup.TransientError{Err: err}
		}
	}

	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("titles", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &lookup.TransientError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &lookup.TransientError{Err: fmt.Errorf("API returned HTTP %d", resp.StatusCode)}
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, &lookup.TransientError{Err: fmt.Errorf("parsing API response: %w", err)}
	}

	if len(qr.Query.Pages) == 0 {
		return nil, nil
	}
	return &qr.Query.Pages[0], nil
}
