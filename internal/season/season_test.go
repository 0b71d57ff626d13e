package season

import (
	"strconv"
	"strings"
	"testing"
)

func TestExpandSingle(t *testing.T) {
	got, err := Expand("2024-25")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 || got[0] != "2024-25" {
		t.Fatalf("Expand(2024-25) = %v, want [2024-25]", got)
	}
}

func TestExpandSingleCenturyWrap(t *testing.T) {
	got, err := Expand("1999-00")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got[0] != "1999-00" {
		t.Fatalf("Expand(1999-00) = %v", got)
	}
}

func TestExpandRange(t *testing.T) {
	got, err := Expand("2020-2024")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{"2020-21", "2021-22", "2022-23", "2023-24"}
	if len(got) != len(want) {
		t.Fatalf("Expand(2020-2024) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// Consecutive labels in any valid range increment the start year by one.
func TestExpandRangeConsecutive(t *testing.T) {
	for _, token := range []string{"2010-2015", "1998-2003", "2023-2026"} {
		labels, err := Expand(token)
		if err != nil {
			t.Fatalf("Expand(%s): %v", token, err)
		}
		for i := 1; i < len(labels); i++ {
			prev, _ := strconv.Atoi(strings.SplitN(labels[i-1], "-", 2)[0])
			cur, _ := strconv.Atoi(strings.SplitN(labels[i], "-", 2)[0])
			if cur != prev+1 {
				t.Errorf("Expand(%s): label %q does not follow %q", token, labels[i], labels[i-1])
			}
		}
	}
}

func TestExpandInvalid(t *testing.T) {
	for _, token := range []string{
		"",
		"2024",
		"2024-2024",
		"2024-2023",
		"2024-26",
		"24-25",
		"2024/25",
		"abcd-ef",
	} {
		if _, err := Expand(token); err == nil {
			t.Errorf("Expand(%q): expected error, got nil", token)
		}
	}
}
