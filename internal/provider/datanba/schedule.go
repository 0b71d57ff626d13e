// Package datanba fetches the league's full-schedule feed from
// data.nba.com. Unlike the stats API this feed is plain nested JSON, one
// document per season, grouped by month. It is the source for the
// schedule/standings export and the strength-of-schedule calculation.
package datanba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/courtline/courtline-data/internal/frame"
)

// DefaultBaseURL is the production schedule feed root.
const DefaultBaseURL = "https://data.nba.com"

// Client fetches schedule documents.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a schedule feed client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// scheduleTeam is one side of a scheduled game.
type scheduleTeam struct {
	TeamID int    `json:"tid"`
	Abbr   string `json:"ta"`
	Name   string `json:"tn"`
	Record string `json:"re"` // "W-L" at time of fetch
	Score  string `json:"s"`
}

// scheduleDoc is the full-schedule document: league schedule by month.
type scheduleDoc struct {
	LeagueSchedule []struct {
		Month struct {
			Games []struct {
				GameID   string       `json:"gid"`
				GameDate string       `json:"gdte"` // "YYYY-MM-DD"
				Visitor  scheduleTeam `json:"v"`
				Home     scheduleTeam `json:"h"`
			} `json:"g"`
		} `json:"mscd"`
	} `json:"lscd"`
}

// FullSchedule fetches a season's schedule and flattens it to one row per
// game: gid, gdte, and the visitor/home team columns. seasonYear is the
// season's start year ("2024" for 2024-25).
func (c *Client) FullSchedule(ctx context.Context, seasonYear string) (*frame.Frame, error) {
	u := fmt.Sprintf("%s/data/10s/v2015/json/mobile_teams/nba/%s/league/00_full_schedule.json", c.baseURL, seasonYear)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule %s: %w", seasonYear, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("schedule %s returned %d: %s", seasonYear, resp.StatusCode, string(b))
	}

	var doc scheduleDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode schedule %s: %w", seasonYear, err)
	}

	f := frame.New(
		"gid", "gdte",
		"v_tid", "v_ta", "v_tn", "v_re", "v_s",
		"h_tid", "h_ta", "h_tn", "h_re", "h_s",
	)
	for _, month := range doc.LeagueSchedule {
		for _, g := range month.Month.Games {
			f.Rows = append(f.Rows, frame.Row{
				"gid":   g.GameID,
				"gdte":  g.GameDate,
				"v_tid": fmt.Sprintf("%d", g.Visitor.TeamID),
				"v_ta":  g.Visitor.Abbr,
				"v_tn":  g.Visitor.Name,
				"v_re":  g.Visitor.Record,
				"v_s":   g.Visitor.Score,
				"h_tid": fmt.Sprintf("%d", g.Home.TeamID),
				"h_ta":  g.Home.Abbr,
				"h_tn":  g.Home.Name,
				"h_re":  g.Home.Record,
				"h_s":   g.Home.Score,
			})
		}
	}
	return f, nil
}
