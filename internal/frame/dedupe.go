package frame

// Dedupe collapses the frame to one row per key tuple, keeping the last
// occurrence of each key (later merges win over earlier ones). Kept rows
// stay at the position of that last occurrence, so applying Dedupe twice
// yields the same frame.
func (f *Frame) Dedupe(keys ...string) *Frame {
	lastIdx := map[string]int{}
	for i, r := range f.Rows {
		lastIdx[keyOf(r, keys)] = i
	}

	out := New(f.Columns...)
	for i, r := range f.Rows {
		if lastIdx[keyOf(r, keys)] == i {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
