package frame

// OuterJoin merges two frames on the given key columns. Non-key columns
// present in both inputs are renamed with the corresponding suffix first,
// so the output never has a column-name collision. The join is a full
// outer join: left rows without a match keep empty right cells, and
// unmatched right rows are appended after the left rows.
func OuterJoin(left, right *Frame, keys []string, leftSuffix, rightSuffix string) *Frame {
	isKey := map[string]bool{}
	for _, k := range keys {
		isKey[k] = true
	}

	shared := map[string]bool{}
	for _, c := range left.Columns {
		if !isKey[c] && right.HasColumn(c) {
			shared[c] = true
		}
	}

	leftName := func(c string) string {
		if shared[c] {
			return c + leftSuffix
		}
		return c
	}
	rightName := func(c string) string {
		if shared[c] {
			return c + rightSuffix
		}
		return c
	}

	out := New(keys...)
	for _, c := range left.Columns {
		if !isKey[c] {
			out.AddColumns(leftName(c))
		}
	}
	for _, c := range right.Columns {
		if !isKey[c] {
			out.AddColumns(rightName(c))
		}
	}

	rightByKey := map[string][]int{}
	for i, r := range right.Rows {
		k := keyOf(r, keys)
		rightByKey[k] = append(rightByKey[k], i)
	}

	matched := make([]bool, len(right.Rows))
	for _, lr := range left.Rows {
		k := keyOf(lr, keys)
		base := Row{}
		for _, c := range keys {
			base[c] = lr[c]
		}
		for _, c := range left.Columns {
			if !isKey[c] {
				if v, ok := lr[c]; ok {
					base[c+suffixIf(shared[c], leftSuffix)] = v
				}
			}
		}
		idxs := rightByKey[k]
		if len(idxs) == 0 {
			out.Rows = append(out.Rows, base)
			continue
		}
		for _, ri := range idxs {
			matched[ri] = true
			row := Row{}
			for c, v := range base {
				row[c] = v
			}
			rr := right.Rows[ri]
			for _, c := range right.Columns {
				if !isKey[c] {
					if v, ok := rr[c]; ok {
						row[c+suffixIf(shared[c], rightSuffix)] = v
					}
				}
			}
			out.Rows = append(out.Rows, row)
		}
	}

	for ri, rr := range right.Rows {
		if matched[ri] {
			continue
		}
		row := Row{}
		for _, c := range keys {
			row[c] = rr[c]
		}
		for _, c := range right.Columns {
			if !isKey[c] {
				if v, ok := rr[c]; ok {
					row[c+suffixIf(shared[c], rightSuffix)] = v
				}
			}
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

func suffixIf(cond bool, suffix string) string {
	if cond {
		return suffix
	}
	return ""
}
