package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/huangsam/talentview/schema"
)

// Client is a plain HTTP client for the evaluation API. It performs no
// caching; wrap it in a CachedClient for read-through caching.
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	validate *validator.Validate
}

// NewClient creates a Client against the given base URL. An empty token
// disables the Authorization header.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// getJSON performs a GET against path with the given query values, decodes
// the JSON payload into T and validates it. A 404 or empty payload becomes a
// DataAbsentError; any other non-2xx status becomes a NetworkError.
func getJSON[T any](ctx context.Context, c *Client, resource, path string, query url.Values) (*T, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, &DataAbsentError{Resource: resource}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Op: resource, URL: fullURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	if len(body) == 0 || string(body) == "null" {
		return nil, &DataAbsentError{Resource: resource}
	}

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ParseError{Resource: resource, Cause: err}
	}
	if err := c.validate.Struct(&payload); err != nil {
		return nil, &ParseError{Resource: resource, Cause: err}
	}
	return &payload, nil
}

// getJSONList is the slice counterpart of getJSON: it decodes a JSON array
// and validates every element. An empty array is a valid result, not a
// DataAbsentError.
func getJSONList[T any](ctx context.Context, c *Client, resource, path string, query url.Values) ([]T, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, &DataAbsentError{Resource: resource}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Op: resource, URL: fullURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: resource, URL: fullURL, Cause: err}
	}
	if len(body) == 0 || string(body) == "null" {
		return nil, &DataAbsentError{Resource: resource}
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &ParseError{Resource: resource, Cause: err}
	}
	for i := range items {
		if err := c.validate.Struct(&items[i]); err != nil {
			return nil, &ParseError{Resource: resource, Cause: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	return items, nil
}

// CollaboratorMetrics returns the per-collaborator metrics for a cycle.
func (c *Client) CollaboratorMetrics(ctx context.Context, cycle string) ([]schema.CollaboratorMetric, error) {
	return getJSONList[schema.CollaboratorMetric](ctx, c, "collaborator metrics",
		"/evaluations/manager/collaborators-metrics", url.Values{"cycle": {cycle}})
}

// BrutalFactsMetrics returns the team-level aggregate snapshot for a cycle.
func (c *Client) BrutalFactsMetrics(ctx context.Context, cycle string) (*schema.BrutalFactsMetrics, error) {
	return getJSON[schema.BrutalFactsMetrics](ctx, c, "brutal facts metrics",
		"/evaluations/manager/brutal-facts-metrics", url.Values{"cycle": {cycle}})
}

// TeamAnalysis returns the free-text team analysis for a cycle.
func (c *Client) TeamAnalysis(ctx context.Context, cycle string) (*schema.TeamAnalysis, error) {
	return getJSON[schema.TeamAnalysis](ctx, c, "team analysis",
		"/evaluations/manager/team-analysis", url.Values{"cycle": {cycle}})
}

// TeamHistoricalPerformance returns the team trend across all cycles.
func (c *Client) TeamHistoricalPerformance(ctx context.Context) (*schema.TeamHistoricalPerformance, error) {
	return getJSON[schema.TeamHistoricalPerformance](ctx, c, "team historical performance",
		"/evaluations/manager/team-historical-performance", nil)
}

// TalentMatrix returns the 9-box dataset for a cycle.
func (c *Client) TalentMatrix(ctx context.Context, cycle string) (*schema.TalentMatrixData, error) {
	return getJSON[schema.TalentMatrixData](ctx, c, "talent matrix",
		"/users/talent-matrix", url.Values{"cycle": {cycle}})
}

// PerformanceHistory returns one subordinate's score history.
func (c *Client) PerformanceHistory(ctx context.Context, subordinateID string) (*schema.PerformanceHistory, error) {
	return getJSON[schema.PerformanceHistory](ctx, c, "performance history",
		"/evaluations/manager/performance/history", url.Values{"subordinateId": {subordinateID}})
}

// Projects returns the project assignments of a user.
func (c *Client) Projects(ctx context.Context, userID string) ([]schema.Project, error) {
	return getJSONList[schema.Project](ctx, c, "projects",
		"/users/"+url.PathEscape(userID)+"/projects", nil)
}
