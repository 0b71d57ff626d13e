// Package provider defines the vocabulary shared by data-source handlers
// and the export pipeline: box-score levels and modes, and the cell
// normalization applied to every value a provider emits. Providers output
// frames of normalized cells; the exporters never see raw API values.
package provider

import (
	"fmt"
	"strconv"
)

// Level selects the granularity of a box score.
type Level string

const (
	LevelPlayer Level = "player"
	LevelTeam   Level = "team"
)

// ParseLevel validates a level flag value.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelPlayer, LevelTeam:
		return Level(s), nil
	}
	return "", fmt.Errorf("invalid level %q: use player or team", s)
}

// Mode selects the statistical schema of a box score.
type Mode string

const (
	ModeTraditional Mode = "traditional"
	ModeAdvanced    Mode = "advanced"
	// ModeMerged is the outer join of the traditional and advanced rows
	// for one game. It is an export mode, not something a source serves.
	ModeMerged Mode = "merged"
)

// ParseMode validates a mode flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTraditional, ModeAdvanced, ModeMerged:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q: use traditional, advanced, or merged", s)
}

// FormatCell normalizes a decoded JSON value into its CSV cell form.
//
// The stats API mixes numbers, strings, and nulls within one row set, and
// integers arrive as float64 after JSON decoding. Floats are printed with
// the shortest representation that round-trips, so 27.0 stays "27".
func FormatCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
