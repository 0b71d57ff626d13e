// Command export is the Courtline bulk export CLI.
//
// Usage:
//
//	courtline-export boxscores --seasons 2018-2024 --level player --mode merged
//	courtline-export boxscores --seasons 2023-24 --season-type Playoffs --update
//	courtline-export games --seasons 2023-24
//	courtline-export shots --team "Boston Celtics" --season 2023-24
//	courtline-export standings --season 2023
//	courtline-export load --file exports/boxscores_merged_player_2023-24_Regular_Season.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtline/courtline-data/internal/config"
	"github.com/courtline/courtline-data/internal/db"
	"github.com/courtline/courtline-data/internal/export"
	"github.com/courtline/courtline-data/internal/load"
	"github.com/courtline/courtline-data/internal/provider"
	"github.com/courtline/courtline-data/internal/provider/datanba"
	"github.com/courtline/courtline-data/internal/provider/statsapi"
	"github.com/courtline/courtline-data/internal/season"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "courtline-export",
		Short: "Courtline bulk export CLI",
	}

	root.AddCommand(boxScoresCmd())
	root.AddCommand(gamesCmd())
	root.AddCommand(shotsCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(loadCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// boxscores command
// --------------------------------------------------------------------------

func boxScoresCmd() *cobra.Command {
	var (
		seasonsToken string
		seasonType   string
		level        string
		mode         string
		update       bool
		noResume     bool
	)
	cmd := &cobra.Command{
		Use:   "boxscores",
		Short: "Export per-game box scores season by season, checkpointed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seasonsToken == "" {
				return fmt.Errorf("--seasons is required")
			}
			return runExport(func(ctx context.Context, cfg *config.Config) error {
				lvl, err := provider.ParseLevel(level)
				if err != nil {
					return err
				}
				md, err := provider.ParseMode(mode)
				if err != nil {
					return err
				}
				if !config.IsValidSeasonType(seasonType) {
					return fmt.Errorf("invalid season type %q (one of %v)", seasonType, config.SeasonTypes)
				}
				seasons, err := season.Expand(seasonsToken)
				if err != nil {
					return err
				}

				job := export.BoxScoreJob{
					SeasonsToken: seasonsToken,
					Seasons:      seasons,
					SeasonType:   seasonType,
					Level:        lvl,
					Mode:         md,
					OutDir:       cfg.OutDir,
					Resume:       !noResume,
					UpdateOnly:   update,
					Backoff:      backoffFrom(cfg),
				}

				start := time.Now()
				result, err := export.ExportBoxScores(ctx, statsClient(cfg), job, logger)
				if result != nil {
					logger.Info("Box score export finished",
						"file", job.FileName(),
						"duration", time.Since(start).Round(time.Second),
						"summary", result.Summary())
					for _, e := range result.Errors {
						logger.Error("export error", "error", e)
					}
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&seasonsToken, "seasons", "", `Season or range ("2023-24" or "2018-2024")`)
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular Season", "Season type")
	cmd.Flags().StringVar(&level, "level", "player", "Stat level (player, team)")
	cmd.Flags().StringVar(&mode, "mode", "merged", "Stat mode (traditional, advanced, merged)")
	cmd.Flags().BoolVar(&update, "update", false, "Only fetch games missing from the existing file")
	cmd.Flags().BoolVar(&noResume, "no-resume", false, "Ignore the checkpoint marker and start over")
	return cmd
}

// --------------------------------------------------------------------------
// games command
// --------------------------------------------------------------------------

func gamesCmd() *cobra.Command {
	var (
		seasonsToken string
		seasonType   string
	)
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Export the season game list with game numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seasonsToken == "" {
				return fmt.Errorf("--seasons is required")
			}
			return runExport(func(ctx context.Context, cfg *config.Config) error {
				if !config.IsValidSeasonType(seasonType) {
					return fmt.Errorf("invalid season type %q (one of %v)", seasonType, config.SeasonTypes)
				}
				seasons, err := season.Expand(seasonsToken)
				if err != nil {
					return err
				}

				start := time.Now()
				games, err := export.ExportGames(ctx, statsClient(cfg), seasonsToken, seasons, seasonType, cfg.OutDir, logger)
				if err != nil {
					return err
				}
				logger.Info("Game list export finished",
					"rows", games.Len(),
					"duration", time.Since(start).Round(time.Second))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&seasonsToken, "seasons", "", `Season or range ("2023-24" or "2018-2024")`)
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular Season", "Season type")
	return cmd
}

// --------------------------------------------------------------------------
// shots command
// --------------------------------------------------------------------------

func shotsCmd() *cobra.Command {
	var (
		team       string
		seasonFlag string
		seasonType string
		gameIDs    []string
	)
	cmd := &cobra.Command{
		Use:   "shots",
		Short: "Export shot locations for one team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if team == "" {
				return fmt.Errorf("--team is required")
			}
			if seasonFlag == "" {
				return fmt.Errorf("--season is required")
			}
			return runExport(func(ctx context.Context, cfg *config.Config) error {
				if !config.IsValidSeasonType(seasonType) {
					return fmt.Errorf("invalid season type %q (one of %v)", seasonType, config.SeasonTypes)
				}

				job := export.ShotJob{
					TeamName:   team,
					Season:     seasonFlag,
					SeasonType: seasonType,
					GameIDs:    gameIDs,
					OutDir:     cfg.OutDir,
				}

				start := time.Now()
				result, err := export.ExportShots(ctx, statsClient(cfg), job, logger)
				if result != nil {
					logger.Info("Shot export finished",
						"team", team,
						"duration", time.Since(start).Round(time.Second),
						"summary", result.Summary())
					for _, e := range result.Errors {
						logger.Error("export error", "error", e)
					}
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&team, "team", "", `Team name ("Boston Celtics")`)
	cmd.Flags().StringVar(&seasonFlag, "season", "", `Season label ("2023-24")`)
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular Season", "Season type")
	cmd.Flags().StringSliceVar(&gameIDs, "game-id", nil, "Fetch per game instead of season-wide (repeatable)")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var (
		seasonYear string
		seasonType string
	)
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Export standings, schedule and strength of schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seasonYear == "" {
				return fmt.Errorf("--season is required")
			}
			return runExport(func(ctx context.Context, cfg *config.Config) error {
				if !config.IsValidSeasonType(seasonType) {
					return fmt.Errorf("invalid season type %q (one of %v)", seasonType, config.SeasonTypes)
				}
				schedBase := cfg.ScheduleBaseURL
				if schedBase == "" {
					schedBase = datanba.DefaultBaseURL
				}
				sched := datanba.NewClient(schedBase, logger)
				start := time.Now()
				if err := export.ExportStandings(ctx, statsClient(cfg), sched, seasonYear, seasonType, cfg.OutDir, logger); err != nil {
					return err
				}
				logger.Info("Standings export finished",
					"season", seasonYear,
					"duration", time.Since(start).Round(time.Second))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&seasonYear, "season", "", `Season start year ("2023")`)
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular Season", "Season type")
	return cmd
}

// --------------------------------------------------------------------------
// load command
// --------------------------------------------------------------------------

func loadCmd() *cobra.Command {
	var (
		file       string
		level      string
		seasonType string
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Mirror an exported CSV into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			return runExport(func(ctx context.Context, cfg *config.Config) error {
				if cfg.DatabaseURL == "" {
					return fmt.Errorf("DATABASE_URL is required")
				}
				lvl, err := provider.ParseLevel(level)
				if err != nil {
					return err
				}

				pool, err := db.New(ctx, cfg)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()

				start := time.Now()
				result, err := load.Run(ctx, pool, file, lvl, seasonType, logger)
				if result != nil {
					logger.Info("Mirror load finished",
						"file", file,
						"duration", time.Since(start).Round(time.Second),
						"summary", result.Summary())
					for _, e := range result.Errors {
						logger.Error("load error", "error", e)
					}
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Exported CSV to load")
	cmd.Flags().StringVar(&level, "level", "player", "Stat level (player, team)")
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular Season", "Season type")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runExport handles config loading and context cancellation.
func runExport(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	return fn(ctx, cfg)
}

func statsClient(cfg *config.Config) *statsapi.Client {
	base := cfg.StatsBaseURL
	if base == "" {
		base = statsapi.DefaultBaseURL
	}
	return statsapi.NewClient(base, cfg.RequestsPerMinute, logger)
}

func backoffFrom(cfg *config.Config) export.Backoff {
	return export.Backoff{
		Initial:    cfg.BackoffInitial,
		Multiplier: cfg.BackoffMultiplier,
		Max:        cfg.BackoffMax,
	}
}
