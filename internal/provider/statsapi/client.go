// Package statsapi provides the HTTP client and endpoint handlers for the
// NBA stats API shared by the game, box-score, shot-chart, and standings
// exporters.
//
// Every endpoint responds with the same resultSets envelope (named header
// arrays plus row arrays), so one decoder serves all of them. The API
// rejects requests without browser-like headers, and it rate limits
// aggressively; request spacing is handled by a token bucket limiter.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider"
)

// DefaultBaseURL is the production stats API root.
const DefaultBaseURL = "https://stats.nba.com/stats"

const leagueNBA = "00"

// Client is the shared HTTP client for all stats endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a stats API client with rate limiting. The base URL is
// a parameter so tests can point the client at a local server.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// resultSet is one named table inside a stats API response.
type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// envelope is the common stats API response wrapper.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

// get performs a rate-limited GET against a stats endpoint.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// stats.nba.com returns 403 to clients that do not look like a browser.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var result envelope
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// frameByName returns the named result set as a frame, falling back to the
// positional index when the API omits or renames set names.
func (e *envelope) frameByName(name string, fallbackIdx int) (*frame.Frame, error) {
	for i := range e.ResultSets {
		if e.ResultSets[i].Name == name {
			return e.ResultSets[i].frame(), nil
		}
	}
	if fallbackIdx >= 0 && fallbackIdx < len(e.ResultSets) {
		return e.ResultSets[fallbackIdx].frame(), nil
	}
	return nil, fmt.Errorf("result set %q not found (%d sets in response)", name, len(e.ResultSets))
}

// frame converts a result set's headers and rows into a frame of
// normalized string cells. Rows shorter than the header are padded with
// empty cells; longer rows are truncated to the header width.
func (rs *resultSet) frame() *frame.Frame {
	f := frame.New(rs.Headers...)
	for _, raw := range rs.RowSet {
		row := frame.Row{}
		for i, col := range rs.Headers {
			if i < len(raw) {
				row[col] = provider.FormatCell(raw[i])
			} else {
				row[col] = ""
			}
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
