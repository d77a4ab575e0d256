// Package boxscore fetches daily boxscore documents from a provider whose
// endpoint paths, parameter names and auth scheme are not reliably known.
// A single-date fetch probes an ordered list of candidate endpoint
// templates; a range fetch walks calendar days and isolates per-date
// failures so one bad day never aborts the batch.
package boxscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/schema"
)

// BaseURL is the default boxscore-provider API root.
const BaseURL = "https://api.sportsblaze.com/nba/v1"

// The provider sits behind browser fingerprint checks like the stats
// provider does.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://docs.sportsblaze.com/"
)

// Conventional credential names. Query mode sends both parameter spellings
// at once; the provider ignores the one it does not recognize.
const (
	queryKeyParam    = "key"
	queryAPIKeyParam = "api_key"
	headerKeyField   = "X-API-Key"
)

// DefaultEndpoints are the candidate path templates, tried in priority
// order until one answers with a 2xx.
var DefaultEndpoints = []string{
	"boxscores/daily/{date}.json",
	"games/daily/{date}.json",
	"schedule/daily/{date}.json",
	"daily/{date}.json",
	"boxscores/{date}.json",
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL   string
	APIKey    string
	AuthMode  schema.AuthMode
	Endpoints []string
	Timeout   time.Duration
}

// Client fetches daily boxscore documents. Documents are opaque: bodies are
// kept verbatim and only checked for being valid JSON.
type Client struct {
	baseURL    string
	apiKey     string
	authMode   schema.AuthMode
	endpoints  []string
	httpClient *http.Client
}

// New creates a boxscore-provider client from the given options.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.AuthMode == "" {
		opts.AuthMode = schema.QueryAuth
	}
	if len(opts.Endpoints) == 0 {
		opts.Endpoints = DefaultEndpoints
	}
	if opts.Timeout == 0 {
		opts.Timeout = contract.DefaultTimeoutSeconds * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		authMode:   opts.AuthMode,
		endpoints:  opts.Endpoints,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// FetchDaily returns the boxscore document for one calendar date.
//
// Candidates are tried in order. A 404 means the candidate path is wrong
// and the next one is tried; any other failure aborts the loop immediately
// with a *RequestError. When every candidate 404s the date fails with
// ErrNoValidEndpoint.
func (c *Client) FetchDaily(ctx context.Context, date time.Time) (json.RawMessage, error) {
	dateStr := date.Format(contract.DateFormat)

	for _, tmpl := range c.endpoints {
		doc, err := c.tryCandidate(ctx, tmpl, dateStr)
		if err == nil {
			return doc, nil
		}
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("%w for %s", ErrNoValidEndpoint, dateStr)
}

// FetchRange returns one DateResult per calendar day in [start, end]
// inclusive, ascending. Per-date failures are logged and recorded in their
// slot rather than raised, so the batch always completes.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) ([]schema.DateResult, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("start date %s is after end date %s",
			start.Format(contract.DateFormat), end.Format(contract.DateFormat))
	}

	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	final := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var results []schema.DateResult
	for !current.After(final) {
		doc, err := c.FetchDaily(ctx, current)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("boxscore fetch for %s failed", current.Format(contract.DateFormat)), err)
			results = append(results, schema.DateResult{Date: current, Err: err})
		} else {
			results = append(results, schema.DateResult{Date: current, Doc: doc})
		}
		current = current.AddDate(0, 0, 1)
	}
	return results, nil
}

// tryCandidate issues one GET against a rendered candidate template.
func (c *Client) tryCandidate(ctx context.Context, tmpl, dateStr string) (json.RawMessage, error) {
	endpoint := strings.ReplaceAll(tmpl, contract.DatePlaceholder, dateStr)
	u := c.baseURL + "/" + endpoint

	params := url.Values{}
	if c.authMode == schema.QueryAuth || c.authMode == schema.BothAuth {
		params.Set(queryKeyParam, c.apiKey)
		params.Set(queryAPIKeyParam, c.apiKey)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RequestError{URL: u, Err: err}
	}
	req.Header.Add("Accept", "application/json, text/plain, */*")
	req.Header.Add("Referer", referer)
	req.Header.Add("User-Agent", userAgent)
	if c.authMode == schema.HeaderAuth || c.authMode == schema.BothAuth {
		req.Header.Add(headerKeyField, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			URL:    u,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: u, Err: err}
	}
	if !json.Valid(body) {
		return nil, &RequestError{URL: u, Err: fmt.Errorf("response body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}
