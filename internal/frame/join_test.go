package frame

import "testing"

func playerKeys() []string { return []string{"GAME_ID", "PLAYER_ID", "TEAM_ID"} }

func TestOuterJoinSuffixesSharedColumns(t *testing.T) {
	trad := New("GAME_ID", "PLAYER_ID", "TEAM_ID", "MIN", "PTS")
	trad.Append(Row{"GAME_ID": "001", "PLAYER_ID": "p1", "TEAM_ID": "t1", "MIN": "32", "PTS": "20"})
	adv := New("GAME_ID", "PLAYER_ID", "TEAM_ID", "MIN", "OFF_RATING")
	adv.Append(Row{"GAME_ID": "001", "PLAYER_ID": "p1", "TEAM_ID": "t1", "MIN": "32:10", "OFF_RATING": "118.2"})

	out := OuterJoin(trad, adv, playerKeys(), "_trad", "_adv")
	if out.Len() != 1 {
		t.Fatalf("Len = %d, want 1", out.Len())
	}
	r := out.Rows[0]
	if r["MIN_trad"] != "32" || r["MIN_adv"] != "32:10" {
		t.Errorf("shared column not suffixed per source: %v", r)
	}
	if out.HasColumn("MIN") {
		t.Errorf("unsuffixed shared column leaked into header: %v", out.Columns)
	}
	if r["PTS"] != "20" || r["OFF_RATING"] != "118.2" {
		t.Errorf("single-source columns must keep their names: %v", r)
	}

	// no duplicate column names
	seen := map[string]bool{}
	for _, c := range out.Columns {
		if seen[c] {
			t.Errorf("duplicate column %q", c)
		}
		seen[c] = true
	}
}

// A join of datasets that share only key columns keeps every key: the row
// count equals the union of key tuples.
func TestOuterJoinKeyUnion(t *testing.T) {
	left := New("GAME_ID", "PLAYER_ID", "TEAM_ID", "PTS")
	right := New("GAME_ID", "PLAYER_ID", "TEAM_ID", "PACE")
	for _, p := range []string{"p1", "p2", "p3"} {
		left.Append(Row{"GAME_ID": "001", "PLAYER_ID": p, "TEAM_ID": "t1", "PTS": "1"})
	}
	for _, p := range []string{"p2", "p3", "p4", "p5"} {
		right.Append(Row{"GAME_ID": "001", "PLAYER_ID": p, "TEAM_ID": "t1", "PACE": "99"})
	}

	out := OuterJoin(left, right, playerKeys(), "_trad", "_adv")
	if out.Len() != 5 {
		t.Fatalf("Len = %d, want 5 (union of p1..p5)", out.Len())
	}

	byPlayer := map[string]Row{}
	for _, r := range out.Rows {
		byPlayer[r["PLAYER_ID"]] = r
	}
	if byPlayer["p1"]["PACE"] != "" {
		t.Errorf("left-only row should have empty right cells: %v", byPlayer["p1"])
	}
	if byPlayer["p5"]["PTS"] != "" {
		t.Errorf("right-only row should have empty left cells: %v", byPlayer["p5"])
	}
	if byPlayer["p5"]["GAME_ID"] != "001" || byPlayer["p5"]["TEAM_ID"] != "t1" {
		t.Errorf("right-only row must keep its keys: %v", byPlayer["p5"])
	}
	if byPlayer["p2"]["PTS"] != "1" || byPlayer["p2"]["PACE"] != "99" {
		t.Errorf("matched row should carry both sides: %v", byPlayer["p2"])
	}
}

func TestOuterJoinDoesNotMutateInputs(t *testing.T) {
	left := New("GAME_ID", "TEAM_ID", "MIN")
	left.Append(Row{"GAME_ID": "001", "TEAM_ID": "t1", "MIN": "240"})
	right := New("GAME_ID", "TEAM_ID", "MIN")
	right.Append(Row{"GAME_ID": "001", "TEAM_ID": "t1", "MIN": "240:00"})

	OuterJoin(left, right, []string{"GAME_ID", "TEAM_ID"}, "_trad", "_adv")

	if !left.HasColumn("MIN") || left.Rows[0]["MIN"] != "240" {
		t.Errorf("left input mutated: cols=%v rows=%v", left.Columns, left.Rows)
	}
	if !right.HasColumn("MIN") || right.Rows[0]["MIN"] != "240:00" {
		t.Errorf("right input mutated: cols=%v rows=%v", right.Columns, right.Rows)
	}
}
