package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/frame"
	"github.com/courtline/courtline-data/internal/provider/datanba"
	"github.com/courtline/courtline-data/internal/provider/statsapi"
	"github.com/courtline/courtline-data/internal/season"
)

// ExportStandings writes three CSVs for a season: the standings snapshot
// from the stats API, the flattened full schedule from the schedule feed,
// and the strength-of-schedule table computed from the remaining games.
// seasonYear is the season's start year, e.g. "2024" for 2024-25.
func ExportStandings(ctx context.Context, stats *statsapi.Client, sched *datanba.Client, seasonYear, seasonType, outDir string, logger *slog.Logger) error {
	startYear, err := strconv.Atoi(seasonYear)
	if err != nil {
		return fmt.Errorf("invalid season year %q", seasonYear)
	}
	label := season.Label(startYear)

	standings, err := stats.Standings(ctx, label, seasonType)
	if err != nil {
		return err
	}
	standingsPath := filepath.Join(outDir, "standings", label+".csv")
	if err := csvio.WriteFrame(standingsPath, standings); err != nil {
		return fmt.Errorf("write standings: %w", err)
	}
	logger.Info("Standings written", "path", standingsPath, "rows", standings.Len())

	schedule, err := sched.FullSchedule(ctx, seasonYear)
	if err != nil {
		return err
	}
	schedulePath := filepath.Join(outDir, "schedule_standings", label+".csv")
	if err := csvio.WriteFrame(schedulePath, schedule); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	logger.Info("Schedule written", "path", schedulePath, "rows", schedule.Len())

	sos := StrengthOfSchedule(schedule, time.Now().Format("2006-01-02"))
	sosPath := filepath.Join(outDir, "schedule_standings", "sos_"+label+".csv")
	if err := csvio.WriteFrame(sosPath, sos); err != nil {
		return fmt.Errorf("write sos: %w", err)
	}
	logger.Info("Strength of schedule written", "path", sosPath, "teams", sos.Len())
	return nil
}

// sosAgg accumulates opponent win rates for one team.
type sosAgg struct {
	homeSum   float64 // opponents' win rate in this team's home games
	homeCount int
	awaySum   float64 // opponents' win rate in this team's road games
	awayCount int
}

// StrengthOfSchedule computes each team's remaining-schedule strength
// from a flattened schedule frame: the average win rate of opponents in
// games on or after fromDate ("YYYY-MM-DD"), weighted by game counts.
// Teams with no remaining home games or no remaining road games are
// omitted. Output is sorted strongest schedule first.
func StrengthOfSchedule(schedule *frame.Frame, fromDate string) *frame.Frame {
	aggs := map[string]*sosAgg{}
	get := func(team string) *sosAgg {
		a, ok := aggs[team]
		if !ok {
			a = &sosAgg{}
			aggs[team] = a
		}
		return a
	}

	for _, r := range schedule.Rows {
		if r["gdte"] < fromDate {
			continue
		}
		homeWR, okH := winRate(r["h_re"])
		awayWR, okV := winRate(r["v_re"])
		if !okH || !okV {
			continue
		}
		// home team faces the visitor's record and vice versa
		h := get(r["h_tn"])
		h.homeSum += awayWR
		h.homeCount++
		v := get(r["v_tn"])
		v.awaySum += homeWR
		v.awayCount++
	}

	out := frame.New("Team Name", "mean_v_wr", "count_v_wr", "mean_h_wr", "count_h_wr", "sched_strength")
	type scored struct {
		row      frame.Row
		strength float64
	}
	var rows []scored
	for team, a := range aggs {
		if a.homeCount == 0 || a.awayCount == 0 {
			continue
		}
		meanHome := a.homeSum / float64(a.homeCount)
		meanAway := a.awaySum / float64(a.awayCount)
		strength := (a.homeSum + a.awaySum) / float64(a.homeCount+a.awayCount)
		rows = append(rows, scored{
			row: frame.Row{
				"Team Name":      team,
				"mean_v_wr":      formatRate(meanHome),
				"count_v_wr":     strconv.Itoa(a.homeCount),
				"mean_h_wr":      formatRate(meanAway),
				"count_h_wr":     strconv.Itoa(a.awayCount),
				"sched_strength": formatRate(strength),
			},
			strength: strength,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].strength > rows[j].strength })
	for _, s := range rows {
		out.Rows = append(out.Rows, s.row)
	}
	return out
}

// winRate parses a "W-L" record into wins/(wins+losses).
func winRate(record string) (float64, bool) {
	parts := strings.SplitN(record, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	l, errL := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errL != nil || w+l == 0 {
		return 0, false
	}
	return float64(w) / float64(w+l), true
}

func formatRate(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
