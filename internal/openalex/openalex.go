// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex implements the title-candidate lookup against the
// OpenAlex Works API. It is the ingestion-collaborator side of identifier
// resolution; the matching engine only sees the Candidate records it
// returns.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/attribution-engine/internal/httputil"
	"github.com/pdiddy/attribution-engine/internal/normalize"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// worksBase is the OpenAlex Works endpoint. Declared as a var so tests
// can substitute an httptest server.
var worksBase = "https://api.openalex.org/works"

// Client queries OpenAlex for title candidates. It implements
// match.Lookup.
type Client struct {
	HTTP *http.Client

	// Email is sent as mailto parameter for polite pool access.
	Email string

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// InstitutionID is the OpenAlex id of the home institution, matched
	// against each candidate's corresponding institutions.
	InstitutionID string

	// MaxResults caps the candidates requested per title (default 10).
	MaxResults int

	// MaxRetries is passed to the HTTP retry helper.
	MaxRetries int
}

// NewClient builds a lookup client from configuration.
func NewClient(cfg types.LookupConfig, institutionID string) *Client {
	return &Client{
		HTTP:          &http.Client{Timeout: cfg.Timeout},
		Email:         cfg.Email,
		UserAgent:     cfg.UserAgent,
		InstitutionID: institutionID,
		MaxResults:    cfg.MaxResults,
		MaxRetries:    cfg.MaxRetries,
	}
}

// WorksByTitle returns candidate works for a title, in API return order.
// A failure affects only this call; the caller decides how to proceed.
func (c *Client) WorksByTitle(ctx context.Context, title string) ([]types.Candidate, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("empty title")
	}

	maxResults := c.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"filter":   {"title.search:" + title},
		"per_page": {fmt.Sprintf("%d", maxResults)},
		"page":     {"1"},
	}
	if c.Email != "" {
		params.Set("mailto", c.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worksBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	candidates := make([]types.Candidate, 0, len(oar.Results))
	for _, work := range oar.Results {
		cand := types.Candidate{
			ID:    work.ID,
			DOI:   normalize.DOI(work.DOI),
			Title: work.DisplayName,
		}
		if cand.Title == "" {
			cand.Title = work.Title
		}
		for _, inst := range work.CorrespondingInstitutionIDs {
			if inst == c.InstitutionID {
				cand.CorrespondingHost = true
			}
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// OpenAlex API JSON structures.
type worksResponse struct {
	Meta    worksMeta  `json:"meta"`
	Results []workJSON `json:"results"`
}

type worksMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type workJSON struct {
	ID                          string   `json:"id"`
	DOI                         string   `json:"doi"`
	Title                       string   `json:"title"`
	DisplayName                 string   `json:"display_name"`
	CorrespondingInstitutionIDs []string `json:"corresponding_institution_ids"`
}
