package load

import (
	"testing"
)

func TestStatsMapDropsKeysAndEmptyCells(t *testing.T) {
	row := map[string]string{
		"GAME_ID":   "0022300001",
		"PLAYER_ID": "2544",
		"TEAM_ID":   "1610612747",
		"PTS_trad":  "31",
		"PACE_adv":  "",
	}

	stats := statsMap(row, "PLAYER_ID")

	if _, ok := stats["GAME_ID"]; ok {
		t.Error("GAME_ID should not be in stats")
	}
	if _, ok := stats["PLAYER_ID"]; ok {
		t.Error("entity column should not be in stats")
	}
	if _, ok := stats["PACE_adv"]; ok {
		t.Error("empty cells should be dropped")
	}
	if stats["PTS_trad"] != "31" {
		t.Errorf("PTS_trad = %q, want 31", stats["PTS_trad"])
	}
	// TEAM_ID is not a key at player level and stays in stats.
	if stats["TEAM_ID"] != "1610612747" {
		t.Errorf("TEAM_ID = %q, want kept", stats["TEAM_ID"])
	}
}
