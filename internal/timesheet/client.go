// Package timesheet fetches raw time-tracking entries from the remote API
// and aggregates them into ranked per-employee summaries.
package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client fetches time entries from the remote time-tracking endpoint.
// It owns its HTTP client so the transport lifecycle is scoped to the
// pipeline run that created it, rather than living in package state.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpc = h
	}
}

// NewClient creates a client for the given endpoint. The token is the
// static access code the API expects as a query parameter.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchEntries retrieves the full list of time entries. Any transport
// failure, non-2xx status or malformed payload is returned as a wrapped
// error; the caller does not retry.
func (c *Client) FetchEntries(ctx context.Context) ([]TimeEntry, error) {
	reqURL, err := c.entriesURL()
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("time entry endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var entries []TimeEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode time entries: %w", err)
	}

	return entries, nil
}

func (c *Client) entriesURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		q := u.Query()
		q.Set("code", c.token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
