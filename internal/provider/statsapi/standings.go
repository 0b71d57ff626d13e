package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/courtline/courtline-data/internal/frame"
)

// Standings fetches the league standings snapshot for a season.
func (c *Client) Standings(ctx context.Context, seasonLabel, seasonType string) (*frame.Frame, error) {
	params := url.Values{
		"LeagueID":   {leagueNBA},
		"Season":     {seasonLabel},
		"SeasonType": {seasonType},
	}

	resp, err := c.get(ctx, "/leaguestandingsv3", params)
	if err != nil {
		return nil, fmt.Errorf("fetch standings %s: %w", seasonLabel, err)
	}

	f, err := resp.frameByName("Standings", 0)
	if err != nil {
		return nil, fmt.Errorf("standings %s: %w", seasonLabel, err)
	}
	return f, nil
}

// TeamIDByName resolves a team name (or any substring of "City Name",
// case-insensitive) to its team ID using the standings table.
func (c *Client) TeamIDByName(ctx context.Context, seasonLabel, name string) (string, error) {
	standings, err := c.Standings(ctx, seasonLabel, "Regular Season")
	if err != nil {
		return "", err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, r := range standings.Rows {
		full := strings.ToLower(r["TeamCity"] + " " + r["TeamName"])
		if strings.Contains(full, needle) {
			return r["TeamID"], nil
		}
	}
	return "", fmt.Errorf("no team matching %q in %s standings", name, seasonLabel)
}
