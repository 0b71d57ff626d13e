// Package export orchestrates the box-score pipeline: enumerate a
// season's games, fetch and merge per-game box scores, dedupe, and
// persist CSVs with checkpoint/resume.
package export

import "fmt"

// Result tracks counts and errors from one export run. Per-game fetch
// failures are recorded here rather than aborting the run.
type Result struct {
	GamesProcessed int
	GamesFailed    int
	GamesSkipped   int
	RowsWritten    int
	Errors         []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.GamesProcessed += other.GamesProcessed
	r.GamesFailed += other.GamesFailed
	r.GamesSkipped += other.GamesSkipped
	r.RowsWritten += other.RowsWritten
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"games=%d failed=%d skipped=%d rows=%d errors=%d",
		r.GamesProcessed, r.GamesFailed, r.GamesSkipped,
		r.RowsWritten, len(r.Errors),
	)
}
