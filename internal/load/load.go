// Package load mirrors exported CSV files into Postgres. Each merged
// box-score row becomes one JSONB stats document keyed by game, entity,
// level and season type, so downstream services can query exports without
// touching the filesystem.
package load

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/db"
	"github.com/courtline/courtline-data/internal/export"
	"github.com/courtline/courtline-data/internal/provider"
)

// Run reads a box-score CSV and upserts every row into the mirror table.
// Rows missing their key columns are skipped and reported in the result.
func Run(ctx context.Context, pool *db.Pool, path string, level provider.Level, seasonType string, logger *slog.Logger) (*export.Result, error) {
	if err := pool.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	f, err := csvio.ReadFrame(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f.Rename(export.KeyAliases)
	f = f.Dedupe(export.DedupeKeys(level)...)

	entityCol := "PLAYER_ID"
	if level == provider.LevelTeam {
		entityCol = "TEAM_ID"
	}

	result := &export.Result{}
	for _, row := range f.Rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		gameID, entityID := row["GAME_ID"], row[entityCol]
		if gameID == "" || entityID == "" {
			result.AddErrorf("row missing %s/%s key", "GAME_ID", entityCol)
			continue
		}

		stats, err := json.Marshal(statsMap(row, entityCol))
		if err != nil {
			result.AddErrorf("marshal stats for game %s entity %s: %v", gameID, entityID, err)
			continue
		}

		if err := upsertRow(ctx, pool, gameID, entityID, string(level), seasonType, stats); err != nil {
			result.AddErrorf("upsert game %s entity %s: %v", gameID, entityID, err)
			continue
		}
		result.RowsWritten++
	}
	result.GamesProcessed = len(f.Unique("GAME_ID"))

	logger.Info("Mirror load complete",
		"path", path,
		"level", level,
		"rows", result.RowsWritten,
		"games", result.GamesProcessed,
		"errors", len(result.Errors))
	return result, nil
}

// upsertRow writes one merged row to the mirror table.
func upsertRow(ctx context.Context, pool *db.Pool, gameID, entityID, level, seasonType string, stats []byte) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO `+db.BoxScoresTable+` (game_id, entity_id, level, season_type, stats)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (game_id, entity_id, level, season_type) DO UPDATE SET
			stats = EXCLUDED.stats,
			updated_at = NOW()`,
		gameID, entityID, level, seasonType, stats,
	)
	return err
}

// statsMap collects the non-key columns of a row. Empty cells come from
// the outer merge and are dropped rather than stored as empty strings.
func statsMap(row map[string]string, entityCol string) map[string]string {
	stats := make(map[string]string, len(row))
	for col, val := range row {
		if col == "GAME_ID" || col == entityCol || val == "" {
			continue
		}
		stats[col] = val
	}
	return stats
}
