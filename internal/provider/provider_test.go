package provider

import "testing"

func TestFormatCell(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"MIN", "MIN"},
		{float64(27), "27"},
		{27.5, "27.5"},
		{0.458, "0.458"},
		{int64(1610612738), "1610612738"},
		{true, "true"},
	}
	for _, c := range cases {
		if got := FormatCell(c.in); got != c.want {
			t.Errorf("FormatCell(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("player"); err != nil {
		t.Error(err)
	}
	if _, err := ParseLevel("franchise"); err == nil {
		t.Error("want error for unknown level")
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"traditional", "advanced", "merged"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q): %v", s, err)
		}
	}
	if _, err := ParseMode("hustle"); err == nil {
		t.Error("want error for unknown mode")
	}
}
