// Package season expands season tokens into the per-season labels the
// stats API expects. "2024-25" is one season; "2020-2024" is the four
// seasons 2020-21 through 2023-24.
package season

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	singleRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	rangeRe  = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
)

// Label formats a start year as the "YYYY-YY" label for that season.
func Label(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// Expand parses a season token into an ordered list of single-season labels.
//
// Single form "YYYY-YY": the two-digit suffix must be (YYYY+1) mod 100.
// Range form "YYYY-YYYY": the end year is exclusive of its own season and
// must be greater than the start year.
func Expand(token string) ([]string, error) {
	if m := singleRe.FindStringSubmatch(token); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if end != (start+1)%100 {
			return nil, fmt.Errorf("invalid season %q: end must be start+1, e.g. %s", token, Label(start))
		}
		return []string{Label(start)}, nil
	}
	if m := rangeRe.FindStringSubmatch(token); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if end <= start {
			return nil, fmt.Errorf("invalid season range %q: end year must be greater than start year", token)
		}
		labels := make([]string, 0, end-start)
		for y := start; y < end; y++ {
			labels = append(labels, Label(y))
		}
		return labels, nil
	}
	return nil, fmt.Errorf("invalid seasons %q: use \"YYYY-YY\" for one season or \"YYYY-YYYY\" for a range", token)
}
