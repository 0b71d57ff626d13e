package frame

import (
	"reflect"
	"testing"
)

func TestAppendAddsUnseenColumnsSorted(t *testing.T) {
	f := New("GAME_ID")
	f.Append(Row{"GAME_ID": "001", "PTS": "30", "AST": "7"})
	want := []string{"GAME_ID", "AST", "PTS"}
	if !reflect.DeepEqual(f.Columns, want) {
		t.Fatalf("Columns = %v, want %v", f.Columns, want)
	}
}

func TestConcatUnionsColumns(t *testing.T) {
	a := New("GAME_ID", "PTS")
	a.Append(Row{"GAME_ID": "001", "PTS": "10"})
	b := New("GAME_ID", "REB")
	b.Append(Row{"GAME_ID": "002", "REB": "5"})

	out := Concat(a, b)
	if out.Len() != 2 {
		t.Fatalf("Len = %d, want 2", out.Len())
	}
	want := []string{"GAME_ID", "PTS", "REB"}
	if !reflect.DeepEqual(out.Columns, want) {
		t.Fatalf("Columns = %v, want %v", out.Columns, want)
	}
	if out.Rows[1]["PTS"] != "" {
		t.Errorf("missing cell should read empty, got %q", out.Rows[1]["PTS"])
	}
}

func TestRename(t *testing.T) {
	f := New("gameId", "PTS")
	f.Append(Row{"gameId": "001", "PTS": "10"})
	f.Rename(map[string]string{"gameId": "GAME_ID", "absent": "X"})

	if !f.HasColumn("GAME_ID") || f.HasColumn("gameId") {
		t.Fatalf("Columns = %v", f.Columns)
	}
	if f.Rows[0]["GAME_ID"] != "001" {
		t.Errorf("row value not carried over: %v", f.Rows[0])
	}
	if _, ok := f.Rows[0]["gameId"]; ok {
		t.Errorf("old key still present: %v", f.Rows[0])
	}
}

func TestSortByStable(t *testing.T) {
	f := New("TEAM_ID", "GAME_DATE", "N")
	f.Append(Row{"TEAM_ID": "2", "GAME_DATE": "2024-10-24", "N": "a"})
	f.Append(Row{"TEAM_ID": "1", "GAME_DATE": "2024-10-26", "N": "b"})
	f.Append(Row{"TEAM_ID": "1", "GAME_DATE": "2024-10-22", "N": "c"})
	f.Append(Row{"TEAM_ID": "1", "GAME_DATE": "2024-10-22", "N": "d"})

	f.SortBy("TEAM_ID", "GAME_DATE")
	got := []string{f.Rows[0]["N"], f.Rows[1]["N"], f.Rows[2]["N"], f.Rows[3]["N"]}
	want := []string{"c", "d", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestUnique(t *testing.T) {
	f := New("GAME_ID")
	for _, id := range []string{"002", "001", "002", "", "003"} {
		f.Append(Row{"GAME_ID": id})
	}
	got := f.Unique("GAME_ID")
	want := []string{"002", "001", "003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Unique = %v, want %v", got, want)
	}
}
