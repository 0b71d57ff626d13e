package export

import (
	"reflect"
	"testing"

	"github.com/courtline/courtline-data/internal/frame"
)

func gameRow(team, seasonID, date, gameID string) frame.Row {
	return frame.Row{
		"TEAM_ID":   team,
		"SEASON_ID": seasonID,
		"GAME_DATE": date,
		"GAME_ID":   gameID,
	}
}

func TestAddGameNumbersRegularSeason(t *testing.T) {
	f := frame.New("TEAM_ID", "SEASON_ID", "GAME_DATE", "GAME_ID")
	// deliberately out of date order
	f.Append(gameRow("t1", "22024", "2024-10-26", "003"))
	f.Append(gameRow("t1", "22024", "2024-10-22", "001"))
	f.Append(gameRow("t2", "22024", "2024-10-22", "001"))
	f.Append(gameRow("t1", "22024", "2024-10-24", "002"))

	AddGameNumbers(f, false)

	type numbered struct{ n, rev string }
	got := map[string]numbered{}
	for _, r := range f.Rows {
		if r["TEAM_ID"] == "t1" {
			got[r["GAME_DATE"]] = numbered{r["GAME_NUMBER"], r["GAME_NUMBER_REV"]}
		}
	}
	want := map[string]numbered{
		"2024-10-22": {"1", "3"},
		"2024-10-24": {"2", "2"},
		"2024-10-26": {"3", "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("t1 numbering = %v, want %v", got, want)
	}

	for _, r := range f.Rows {
		if r["TEAM_ID"] == "t2" && r["GAME_NUMBER"] != "1" {
			t.Errorf("t2 first game numbered %q, want 1", r["GAME_NUMBER"])
		}
	}
}

func TestAddGameNumbersPlayoffsContinueFromRegulation(t *testing.T) {
	f := frame.New("TEAM_ID", "SEASON_ID", "GAME_DATE", "GAME_ID")
	f.Append(gameRow("t1", "42024", "2025-04-20", "101"))
	f.Append(gameRow("t1", "42024", "2025-04-22", "102"))

	AddGameNumbers(f, true)

	if f.Rows[0]["GAME_NUMBER"] != "83" || f.Rows[1]["GAME_NUMBER"] != "84" {
		t.Fatalf("playoff numbering = %q, %q; want 83, 84",
			f.Rows[0]["GAME_NUMBER"], f.Rows[1]["GAME_NUMBER"])
	}
	if f.Rows[0]["GAME_NUMBER_REV"] != "84" {
		t.Errorf("GAME_NUMBER_REV = %q, want 84", f.Rows[0]["GAME_NUMBER_REV"])
	}
}

// Each season's numbering is independent even for the same team.
func TestAddGameNumbersPerSeason(t *testing.T) {
	f := frame.New("TEAM_ID", "SEASON_ID", "GAME_DATE", "GAME_ID")
	f.Append(gameRow("t1", "22023", "2023-10-25", "001"))
	f.Append(gameRow("t1", "22024", "2024-10-22", "002"))

	AddGameNumbers(f, false)

	for _, r := range f.Rows {
		if r["GAME_NUMBER"] != "1" {
			t.Errorf("season %s game number = %q, want 1", r["SEASON_ID"], r["GAME_NUMBER"])
		}
	}
}

func TestGameIDsUniqueInOrder(t *testing.T) {
	f := frame.New("GAME_ID")
	for _, id := range []string{"002", "002", "001", "003", "001"} {
		f.Append(frame.Row{"GAME_ID": id})
	}
	got := GameIDs(f)
	want := []string{"002", "001", "003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GameIDs = %v, want %v", got, want)
	}
}
