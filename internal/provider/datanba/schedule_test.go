package datanba

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const scheduleDocJSON = `{
	"lscd": [
		{"mscd": {"mon": "October", "g": [
			{"gid": "0022400001", "gdte": "2024-10-22",
			 "v": {"tid": 1610612738, "ta": "BOS", "tn": "Celtics", "re": "0-0", "s": "120"},
			 "h": {"tid": 1610612752, "ta": "NYK", "tn": "Knicks", "re": "0-0", "s": "109"}}
		]}},
		{"mscd": {"mon": "November", "g": [
			{"gid": "0022400150", "gdte": "2024-11-05",
			 "v": {"tid": 1610612747, "ta": "LAL", "tn": "Lakers", "re": "4-2", "s": ""},
			 "h": {"tid": 1610612738, "ta": "BOS", "tn": "Celtics", "re": "6-0", "s": ""}}
		]}}
	]
}`

func TestFullScheduleFlattensMonths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/data/10s/v2015/json/mobile_teams/nba/2024/league/00_full_schedule.json"
		if r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		w.Write([]byte(scheduleDocJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	f, err := c.FullSchedule(context.Background(), "2024")
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2 {
		t.Fatalf("rows = %d, want 2", f.Len())
	}

	first := f.Rows[0]
	if first["gid"] != "0022400001" || first["gdte"] != "2024-10-22" {
		t.Errorf("first row = %+v", first)
	}
	if first["v_tid"] != "1610612738" || first["v_re"] != "0-0" {
		t.Errorf("visitor columns = %+v", first)
	}
	if first["h_ta"] != "NYK" || first["h_s"] != "109" {
		t.Errorf("home columns = %+v", first)
	}
	if f.Rows[1]["h_re"] != "6-0" {
		t.Errorf("second row home record = %q", f.Rows[1]["h_re"])
	}
}

func TestFullScheduleNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such season", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.FullSchedule(context.Background(), "1891"); err == nil {
		t.Fatal("want error for 404")
	}
}
