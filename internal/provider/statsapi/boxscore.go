package statsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider"
)

// Result set names and positions shared by the V2 box-score endpoints.
const (
	playerStatsSet = "PlayerStats"
	teamStatsSet   = "TeamStats"
)

// BoxScore fetches exactly one tabular dataset for a game: the rows at
// the requested level from the endpoint for the requested mode. Callers
// treat any error as retryable; no distinction is made between a missing
// game and a transport failure.
func (c *Client) BoxScore(ctx context.Context, gameID string, level provider.Level, mode provider.Mode) (*frame.Frame, error) {
	var path string
	switch mode {
	case provider.ModeTraditional:
		path = "/boxscoretraditionalv2"
	case provider.ModeAdvanced:
		path = "/boxscoreadvancedv2"
	default:
		return nil, fmt.Errorf("box score endpoint cannot serve mode %q", mode)
	}

	// Range parameters are mandatory; these values select the full game.
	params := url.Values{
		"GameID":      {gameID},
		"StartPeriod": {"0"},
		"EndPeriod":   {"10"},
		"StartRange":  {"0"},
		"EndRange":    {"28800"},
		"RangeType":   {"0"},
	}

	resp, err := c.get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s box score %s: %w", mode, level, gameID, err)
	}

	setName, fallback := playerStatsSet, 0
	if level == provider.LevelTeam {
		setName, fallback = teamStatsSet, 1
	}

	f, err := resp.frameByName(setName, fallback)
	if err != nil {
		return nil, fmt.Errorf("box score %s: %w", gameID, err)
	}
	if f.Len() == 0 {
		return nil, fmt.Errorf("box score %s: no %s rows", gameID, level)
	}
	return f, nil
}
