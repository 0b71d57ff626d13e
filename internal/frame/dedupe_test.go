package frame

import (
	"reflect"
	"testing"
)

func TestDedupeLastWins(t *testing.T) {
	f := New("GAME_ID", "PLAYER_ID", "PTS")
	f.Append(Row{"GAME_ID": "001", "PLAYER_ID": "p1", "PTS": "10"})
	f.Append(Row{"GAME_ID": "001", "PLAYER_ID": "p2", "PTS": "8"})
	f.Append(Row{"GAME_ID": "001", "PLAYER_ID": "p1", "PTS": "12"})

	out := f.Dedupe("GAME_ID", "PLAYER_ID")
	if out.Len() != 2 {
		t.Fatalf("Len = %d, want 2", out.Len())
	}
	for _, r := range out.Rows {
		if r["PLAYER_ID"] == "p1" && r["PTS"] != "12" {
			t.Errorf("last write must win, got PTS=%q", r["PTS"])
		}
	}
}

func TestDedupeIdempotent(t *testing.T) {
	f := New("GAME_ID", "TEAM_ID", "PTS")
	f.Append(Row{"GAME_ID": "001", "TEAM_ID": "t1", "PTS": "100"})
	f.Append(Row{"GAME_ID": "001", "TEAM_ID": "t2", "PTS": "95"})
	f.Append(Row{"GAME_ID": "002", "TEAM_ID": "t1", "PTS": "101"})
	f.Append(Row{"GAME_ID": "001", "TEAM_ID": "t1", "PTS": "102"})

	once := f.Dedupe("GAME_ID", "TEAM_ID")
	twice := once.Dedupe("GAME_ID", "TEAM_ID")

	if !reflect.DeepEqual(once.Rows, twice.Rows) || !reflect.DeepEqual(once.Columns, twice.Columns) {
		t.Fatalf("Dedupe not idempotent:\nonce:  %v\ntwice: %v", once.Rows, twice.Rows)
	}
}

func TestDedupeKeepsLastPosition(t *testing.T) {
	f := New("K", "V")
	f.Append(Row{"K": "a", "V": "1"})
	f.Append(Row{"K": "b", "V": "2"})
	f.Append(Row{"K": "a", "V": "3"})

	out := f.Dedupe("K")
	got := []string{out.Rows[0]["K"], out.Rows[1]["K"]}
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}
