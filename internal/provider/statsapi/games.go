package statsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courtline/courtline-data/internal/frame"
)

// LeagueGameFinder lists the games of one season. The result has one row
// per (GAME_ID, TEAM_ID) pair carrying the game context columns: date,
// matchup, win/loss, and the team's counting stats for the game.
func (c *Client) LeagueGameFinder(ctx context.Context, seasonLabel, seasonType string) (*frame.Frame, error) {
	params := url.Values{
		"SeasonNullable":     {seasonLabel},
		"SeasonTypeNullable": {seasonType},
		"LeagueIDNullable":   {leagueNBA},
		"PlayerOrTeam":       {"T"},
	}

	resp, err := c.get(ctx, "/leaguegamefinder", params)
	if err != nil {
		return nil, fmt.Errorf("fetch games for %s (%s): %w", seasonLabel, seasonType, err)
	}

	f, err := resp.frameByName("LeagueGameFinderResults", 0)
	if err != nil {
		return nil, fmt.Errorf("games for %s: %w", seasonLabel, err)
	}
	return f, nil
}
