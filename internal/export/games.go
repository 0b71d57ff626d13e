package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider/statsapi"
)

// regulationGames is the length of an NBA regular season; playoff game
// numbering continues from it.
const regulationGames = 82

// Games fetches the game list for each season and stacks them into one
// frame: one row per (GAME_ID, TEAM_ID) pair. The client's limiter paces
// the per-season requests.
func Games(ctx context.Context, client *statsapi.Client, seasons []string, seasonType string, logger *slog.Logger) (*frame.Frame, error) {
	frames := make([]*frame.Frame, 0, len(seasons))
	for _, s := range seasons {
		logger.Info("Loading games", "season", s, "season_type", seasonType)
		f, err := client.LeagueGameFinder(ctx, s, seasonType)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frame.Concat(frames...), nil
}

// AddGameNumbers annotates each row with the team's sequential game
// number for the season (GAME_NUMBER) and the count of games remaining
// including this one (GAME_NUMBER_REV). For playoff games the numbering
// continues past the 82-game regular season. Rows end up sorted by team
// and date.
func AddGameNumbers(f *frame.Frame, playoffs bool) {
	f.SortBy("TEAM_ID", "SEASON_ID", "GAME_DATE")

	type groupKey struct{ team, seasonID string }
	sizes := map[groupKey]int{}
	for _, r := range f.Rows {
		sizes[groupKey{r["TEAM_ID"], r["SEASON_ID"]}]++
	}

	base := 0
	if playoffs {
		base = regulationGames
	}

	counts := map[groupKey]int{}
	for _, r := range f.Rows {
		k := groupKey{r["TEAM_ID"], r["SEASON_ID"]}
		counts[k]++
		r["GAME_NUMBER"] = strconv.Itoa(base + counts[k])
		r["GAME_NUMBER_REV"] = strconv.Itoa(base + sizes[k] - counts[k] + 1)
	}
	f.AddColumns("GAME_NUMBER", "GAME_NUMBER_REV")
}

// GameIDs returns the distinct game IDs of a game frame in frame order.
// Each ID appears twice in the frame (once per team).
func GameIDs(f *frame.Frame) []string {
	return f.Unique("GAME_ID")
}

// ExportGames fetches, numbers, and writes the game list for a run.
// The file is overwritten every time; game context is cheap to refetch
// and has no resume state.
func ExportGames(ctx context.Context, client *statsapi.Client, seasonsToken string, seasons []string, seasonType, outDir string, logger *slog.Logger) (*frame.Frame, error) {
	games, err := Games(ctx, client, seasons, seasonType, logger)
	if err != nil {
		return nil, err
	}
	if games.Len() == 0 {
		return games, nil
	}

	AddGameNumbers(games, seasonType == "Playoffs")

	path := filepath.Join(outDir, "games", fmt.Sprintf("games_%s_%s.csv", tag(seasonsToken), tag(seasonType)))
	if err := csvio.WriteFrame(path, games); err != nil {
		return nil, fmt.Errorf("write games: %w", err)
	}
	logger.Info("Games written", "path", path, "rows", games.Len())
	return games, nil
}
