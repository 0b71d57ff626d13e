package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/frame"
)

// FetchFunc returns the rows for one game. Errors are treated as
// retryable on a later run; the runner never distinguishes a missing
// game from a transport failure.
type FetchFunc func(ctx context.Context, gameID string) (*frame.Frame, error)

// Backoff is the delay policy applied after a fetch failure. Each failure
// grows the next pause by Multiplier, capped at Max.
type Backoff struct {
	Initial    time.Duration
	Multiplier float64
	Max        time.Duration
}

func (b Backoff) next(cur time.Duration) time.Duration {
	nxt := time.Duration(float64(cur) * b.Multiplier)
	if b.Max > 0 && nxt > b.Max {
		return b.Max
	}
	return nxt
}

// Runner drives the per-game fetch loop with checkpointing. After every
// unit of work (success or failure) it persists the accumulated frame and
// the last game ID, so an interrupted run loses at most the game in
// flight and resumes from the marker.
type Runner struct {
	GameIDs    []string
	Fetch      FetchFunc
	CSVPath    string
	MarkerPath string

	// DedupeKeys collapse the accumulated frame to one row per
	// (game, entity); KeyAliases rename older files' key columns to the
	// canonical names before anything else touches them.
	DedupeKeys []string
	KeyAliases map[string]string

	// Resume starts from the stored marker when it is present in
	// GameIDs. UpdateOnly instead fetches only IDs absent from the
	// existing CSV and ignores the marker.
	Resume     bool
	UpdateOnly bool

	Backoff Backoff
	Logger  *slog.Logger
}

// Run executes the loop. Fetch failures are logged and counted, never
// fatal; the returned error is non-nil only for persistence failures on
// the output path or context cancellation.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	result := &Result{}

	acc, err := r.loadExisting()
	if err != nil {
		return result, err
	}

	todo := r.GameIDs
	switch {
	case r.UpdateOnly:
		have := map[string]bool{}
		for _, id := range acc.Unique("GAME_ID") {
			have[id] = true
		}
		var missing []string
		for _, id := range r.GameIDs {
			if !have[id] {
				missing = append(missing, id)
			}
		}
		result.GamesSkipped = len(r.GameIDs) - len(missing)
		todo = missing
		logger.Info("Update mode", "missing", len(missing), "already_have", result.GamesSkipped)
	case r.Resume:
		marker, err := csvio.ReadMarker(r.MarkerPath)
		if err != nil {
			return result, err
		}
		if marker != "" {
			for i, id := range r.GameIDs {
				if id == marker {
					todo = r.GameIDs[i:]
					result.GamesSkipped = i
					logger.Info("Resuming", "game_id", marker, "index", i)
					break
				}
			}
		}
	}

	pause := r.Backoff.Initial
	for i, gid := range todo {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fetched, err := r.Fetch(ctx, gid)
		if err != nil {
			result.GamesFailed++
			result.AddErrorf("game %s: %v", gid, err)
			logger.Warn("Fetch failed, saving progress and backing off",
				"game_id", gid, "error", err, "pause", pause)
			if err := r.persist(acc, gid); err != nil {
				return result, err
			}
			if err := sleep(ctx, pause); err != nil {
				return result, err
			}
			pause = r.Backoff.next(pause)
			continue
		}

		acc = frame.Concat(acc, fetched).Dedupe(r.DedupeKeys...)
		if err := r.persist(acc, gid); err != nil {
			return result, err
		}
		result.GamesProcessed++
		logger.Info("Game done", "game_id", gid, "remaining", len(todo)-i-1, "rows", acc.Len())
	}

	result.RowsWritten = acc.Len()
	return result, nil
}

// loadExisting reads the output CSV from a previous run, normalizes key
// column names, and dedupes, so accumulation continues from saved work.
func (r *Runner) loadExisting() (*frame.Frame, error) {
	if !csvio.Exists(r.CSVPath) {
		return frame.New(r.DedupeKeys...), nil
	}
	acc, err := csvio.ReadFrame(r.CSVPath)
	if err != nil {
		return nil, err
	}
	acc.Rename(r.KeyAliases)
	return acc.Dedupe(r.DedupeKeys...), nil
}

// persist writes the data file, then the marker. Each write is atomic;
// a crash between them only costs the marker update, never rows.
func (r *Runner) persist(acc *frame.Frame, gameID string) error {
	if err := csvio.WriteFrame(r.CSVPath, acc); err != nil {
		return err
	}
	return csvio.WriteMarker(r.MarkerPath, gameID)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
