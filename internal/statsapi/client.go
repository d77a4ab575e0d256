// Package statsapi wraps the fixed stats-provider REST endpoints, one
// operation per endpoint. Calls are single-shot: a failed call surfaces a
// *ProviderError immediately and the caller decides whether to continue.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/defactosf/nbafetch/schema"
)

// BaseURL is the default stats-provider API root.
const BaseURL = "https://stats.nba.com/stats"

// LeagueID identifies the NBA on the stats provider.
const LeagueID = "00"

// The provider rejects requests without browser-like headers.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://www.nba.com/"
)

// Client issues parameterized queries against the stats provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a stats-provider client. An empty baseURL selects the default
// root; overriding it is useful for tests.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// resultSet is one named table within a provider response.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// envelope is the provider's response wrapper. Every endpoint ships its
// tabular payload under resultSets.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

// get issues one GET against an endpoint and decodes the first result set.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*schema.RecordSet, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &ProviderError{Endpoint: endpoint, Err: err}
	}
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Referer", referer)
	req.Header.Add("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Endpoint: endpoint, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(env.ResultSets) == 0 {
		return nil, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("response carried no result sets")}
	}

	first := env.ResultSets[0]
	return &schema.RecordSet{
		Name:    first.Name,
		Columns: first.Headers,
		Rows:    first.RowSet,
	}, nil
}
