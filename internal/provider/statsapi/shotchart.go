package statsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courtline/courtline-data/internal/frame"
)

// ShotChart fetches a team's shot locations. gameID may be empty, which
// returns the team's shots for the whole season/season-type instead of a
// single game. PlayerID 0 means every player on the team. The second
// frame is the league-average shooting for the same court zones.
func (c *Client) ShotChart(ctx context.Context, teamID, gameID, seasonType string) (shots, leagueAvg *frame.Frame, err error) {
	params := url.Values{
		"TeamID":         {teamID},
		"PlayerID":       {"0"},
		"GameID":         {gameID},
		"ContextMeasure": {"FGA"},
		"SeasonType":     {seasonType},
		"LeagueID":       {leagueNBA},
	}

	resp, err := c.get(ctx, "/shotchartdetail", params)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch shot chart team=%s game=%q: %w", teamID, gameID, err)
	}

	shots, err = resp.frameByName("Shot_Chart_Detail", 0)
	if err != nil {
		return nil, nil, fmt.Errorf("shot chart: %w", err)
	}
	leagueAvg, err = resp.frameByName("LeagueAverages", 1)
	if err != nil {
		return nil, nil, fmt.Errorf("shot chart: %w", err)
	}
	return shots, leagueAvg, nil
}
