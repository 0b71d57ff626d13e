package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider"
	"github.com/courtline/courtline-data/internal/provider/statsapi"
)

// KeyAliases maps key column spellings from older exports (the V3
// endpoints used camelCase) to the canonical names, so files written by
// any version keep a single key schema.
var KeyAliases = map[string]string{
	"gameId":   "GAME_ID",
	"personId": "PLAYER_ID",
	"playerId": "PLAYER_ID",
	"teamId":   "TEAM_ID",
}

// MergeKeys returns the join keys for a level. Player rows also join on
// TEAM_ID so a mid-game trade's two stints stay distinct.
func MergeKeys(level provider.Level) []string {
	if level == provider.LevelTeam {
		return []string{"GAME_ID", "TEAM_ID"}
	}
	return []string{"GAME_ID", "PLAYER_ID", "TEAM_ID"}
}

// DedupeKeys returns the (game, entity) identity used to collapse
// re-merged rows after a resume.
func DedupeKeys(level provider.Level) []string {
	if level == provider.LevelTeam {
		return []string{"GAME_ID", "TEAM_ID"}
	}
	return []string{"GAME_ID", "PLAYER_ID"}
}

// BoxScoreJob describes one box-score export: which games, at which
// level, in which mode, and how to run.
type BoxScoreJob struct {
	SeasonsToken string
	Seasons      []string
	SeasonType   string
	Level        provider.Level
	Mode         provider.Mode
	OutDir       string
	Resume       bool
	UpdateOnly   bool
	Backoff      Backoff
}

// FileName is the output name for the job:
// boxscores_{mode}_{level}_{seasons}_{type}.csv.
func (j BoxScoreJob) FileName() string {
	return fmt.Sprintf("boxscores_%s_%s_%s_%s.csv", j.Mode, j.Level, tag(j.SeasonsToken), tag(j.SeasonType))
}

// CSVPath is the output file location under the job's out dir.
func (j BoxScoreJob) CSVPath() string {
	return filepath.Join(j.OutDir, j.FileName())
}

// MarkerPath is the checkpoint marker location for the job.
func (j BoxScoreJob) MarkerPath() string {
	return filepath.Join(j.OutDir, "checkpoints", "last_game_id_"+strings.TrimSuffix(j.FileName(), ".csv")+".txt")
}

// ExportBoxScores runs the full flow for one job: write the game list,
// then drive the checkpointed per-game loop over its game IDs.
func ExportBoxScores(ctx context.Context, client *statsapi.Client, job BoxScoreJob, logger *slog.Logger) (*Result, error) {
	games, err := ExportGames(ctx, client, job.SeasonsToken, job.Seasons, job.SeasonType, job.OutDir, logger)
	if err != nil {
		return &Result{}, err
	}

	ids := GameIDs(games)
	if len(ids) == 0 {
		logger.Info("No games found", "seasons", job.SeasonsToken, "season_type", job.SeasonType)
		return &Result{}, nil
	}
	logger.Info("Exporting box scores",
		"games", len(ids), "level", job.Level, "mode", job.Mode, "path", job.CSVPath())

	runner := &Runner{
		GameIDs:    ids,
		Fetch:      fetchFunc(client, job.Level, job.Mode),
		CSVPath:    job.CSVPath(),
		MarkerPath: job.MarkerPath(),
		DedupeKeys: DedupeKeys(job.Level),
		KeyAliases: KeyAliases,
		Resume:     job.Resume,
		UpdateOnly: job.UpdateOnly,
		Backoff:    job.Backoff,
		Logger:     logger,
	}
	return runner.Run(ctx)
}

// fetchFunc builds the per-game fetch for a level and mode. Merged mode
// fetches both schemas and outer-joins them, suffixing the columns both
// schemas carry.
func fetchFunc(client *statsapi.Client, level provider.Level, mode provider.Mode) FetchFunc {
	if mode != provider.ModeMerged {
		return func(ctx context.Context, gameID string) (*frame.Frame, error) {
			return client.BoxScore(ctx, gameID, level, mode)
		}
	}
	return func(ctx context.Context, gameID string) (*frame.Frame, error) {
		trad, err := client.BoxScore(ctx, gameID, level, provider.ModeTraditional)
		if err != nil {
			return nil, err
		}
		adv, err := client.BoxScore(ctx, gameID, level, provider.ModeAdvanced)
		if err != nil {
			return nil, err
		}
		return frame.OuterJoin(trad, adv, MergeKeys(level), "_trad", "_adv"), nil
	}
}

// tag removes spaces so season types and tokens are filename-safe.
func tag(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
