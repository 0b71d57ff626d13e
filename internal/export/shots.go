package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider/statsapi"
)

// ShotJob describes one shot-location export for a team.
type ShotJob struct {
	TeamName   string
	Season     string // "YYYY-YY"
	SeasonType string
	GameIDs    []string // empty = whole season in one request
	OutDir     string
}

// ExportShots resolves the team name to an ID and writes the team's shot
// locations, plus the league-average zone shooting, to CSVs. With game
// IDs it fetches per game sequentially (the client limiter paces the
// calls); without, one season-wide request.
func ExportShots(ctx context.Context, client *statsapi.Client, job ShotJob, logger *slog.Logger) (*Result, error) {
	result := &Result{}

	teamID, err := client.TeamIDByName(ctx, job.Season, job.TeamName)
	if err != nil {
		return result, err
	}
	logger.Info("Retrieving shot locations",
		"team", job.TeamName, "team_id", teamID, "season", job.Season, "games", len(job.GameIDs))

	var shots, leagueAvg *frame.Frame
	if len(job.GameIDs) == 0 {
		shots, leagueAvg, err = client.ShotChart(ctx, teamID, "", job.SeasonType)
		if err != nil {
			return result, err
		}
		result.GamesProcessed++
	} else {
		parts := make([]*frame.Frame, 0, len(job.GameIDs))
		for _, gid := range job.GameIDs {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			s, avg, err := client.ShotChart(ctx, teamID, gid, job.SeasonType)
			if err != nil {
				result.GamesFailed++
				result.AddErrorf("shots for game %s: %v", gid, err)
				logger.Warn("Shot chart fetch failed, skipping game", "game_id", gid, "error", err)
				continue
			}
			parts = append(parts, s)
			leagueAvg = avg
			result.GamesProcessed++
		}
		shots = frame.Concat(parts...)
	}

	name := fmt.Sprintf("shots_%s_%s_%s.csv", teamID, tag(job.Season), tag(job.SeasonType))
	path := filepath.Join(job.OutDir, "shots", name)
	if err := csvio.WriteFrame(path, shots); err != nil {
		return result, fmt.Errorf("write shots: %w", err)
	}

	if leagueAvg != nil && leagueAvg.Len() > 0 {
		avgPath := filepath.Join(job.OutDir, "shots", "league_averages_"+tag(job.Season)+"_"+tag(job.SeasonType)+".csv")
		if err := csvio.WriteFrame(avgPath, leagueAvg); err != nil {
			return result, fmt.Errorf("write league averages: %w", err)
		}
	}

	result.RowsWritten = shots.Len()
	logger.Info("Shots written", "path", path, "rows", shots.Len())
	return result, nil
}
