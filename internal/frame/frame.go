// Package frame provides the tabular row model the pipeline accumulates
// box-score data in. A Frame is an ordered set of column names plus rows
// of string cells, matching what a CSV holds; cells absent from a row
// read as the empty string.
package frame

import (
	"sort"
	"strings"
)

// Row maps column name to cell value. Missing columns read as "".
type Row map[string]string

// Frame is an ordered collection of columns and rows.
type Frame struct {
	Columns []string
	Rows    []Row
}

// New creates an empty frame with the given column order.
func New(columns ...string) *Frame {
	return &Frame{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumns appends any columns not already present, in the order given.
func (f *Frame) AddColumns(names ...string) {
	for _, n := range names {
		if !f.HasColumn(n) {
			f.Columns = append(f.Columns, n)
		}
	}
}

// Append adds a row. Keys not yet in the column set are added in sorted
// order so the header stays deterministic regardless of map iteration.
func (f *Frame) Append(r Row) {
	var unseen []string
	for k := range r {
		if !f.HasColumn(k) {
			unseen = append(unseen, k)
		}
	}
	if len(unseen) > 0 {
		sort.Strings(unseen)
		f.Columns = append(f.Columns, unseen...)
	}
	f.Rows = append(f.Rows, r)
}

// Concat stacks frames vertically. The output header is the union of all
// input headers, first-seen column order preserved.
func Concat(frames ...*Frame) *Frame {
	out := New()
	for _, f := range frames {
		if f == nil {
			continue
		}
		out.AddColumns(f.Columns...)
		out.Rows = append(out.Rows, f.Rows...)
	}
	return out
}

// Rename renames columns in place according to aliases. Rows keep their
// values under the new name; aliases for absent columns are ignored.
func (f *Frame) Rename(aliases map[string]string) {
	renamed := map[string]string{}
	for i, c := range f.Columns {
		if to, ok := aliases[c]; ok && to != c {
			f.Columns[i] = to
			renamed[c] = to
		}
	}
	if len(renamed) == 0 {
		return
	}
	for _, r := range f.Rows {
		for from, to := range renamed {
			if v, ok := r[from]; ok {
				r[to] = v
				delete(r, from)
			}
		}
	}
}

// SortBy stably sorts rows by the given columns, lexicographic ascending.
func (f *Frame) SortBy(columns ...string) {
	sort.SliceStable(f.Rows, func(i, j int) bool {
		for _, c := range columns {
			a, b := f.Rows[i][c], f.Rows[j][c]
			if a != b {
				return a < b
			}
		}
		return false
	})
}

// Unique returns the distinct non-empty values of a column in first-seen order.
func (f *Frame) Unique(column string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range f.Rows {
		v := r[column]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// keySep never occurs in stats API values, so joined key tuples are unambiguous.
const keySep = "\x1f"

func keyOf(r Row, keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = r[k]
	}
	return strings.Join(parts, keySep)
}
