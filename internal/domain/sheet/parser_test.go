package sheet

import (
	"reflect"
	"testing"
)

func TestCellInt_LenientCoercion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cell string
		want int
	}{
		{"0", 0},
		{"7", 7},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
		{"-4", 0},
	}
	for _, tc := range cases {
		if got := CellInt([]string{tc.cell}, 0); got != tc.want {
			t.Errorf("CellInt(%q) = %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestCellBool(t *testing.T) {
	t.Parallel()

	for cell, want := range map[string]bool{
		"TRUE":  true,
		"true":  true,
		" True": true,
		"FALSE": false,
		"1":     false,
		"":      false,
	} {
		if got := CellBool([]string{cell}, 0); got != want {
			t.Errorf("CellBool(%q) = %v, want %v", cell, got, want)
		}
	}
}

func TestParseTeamRow_ShortRowDefaultsToEmpty(t *testing.T) {
	t.Parallel()

	got := ParseTeamRow([]string{"T1", "Draghi"})
	want := TeamRow{ID: "T1", Name: "Draghi"}
	if got != want {
		t.Fatalf("ParseTeamRow = %+v, want %+v", got, want)
	}
}

func TestParseMatchRow_FullRow(t *testing.T) {
	t.Parallel()

	row := []string{
		"A1", "T1", "Draghi", "T2", "Lupi", "12", "10", "2026-05-03",
		"1", "8", "3", "0", "1",
		"0", "6", "4", "1", "0",
	}
	got := ParseMatchRow(row)
	want := MatchRow{
		ID:      "A1",
		Team1ID: "T1",
		Team2ID: "T2",
		Score1:  12,
		Score2:  10,
		Date:    "2026-05-03",
		Team1Stats: MatchStats{
			Flash: 1, GoalAttacker: 8, GoalDefender: 3, AutogoalAttacker: 0, AutogoalDefender: 1,
		},
		Team2Stats: MatchStats{
			Flash: 0, GoalAttacker: 6, GoalDefender: 4, AutogoalAttacker: 1, AutogoalDefender: 0,
		},
	}
	if got != want {
		t.Fatalf("ParseMatchRow = %+v, want %+v", got, want)
	}
}

func TestParseMatchRow_GarbageCellsDegradeToZero(t *testing.T) {
	t.Parallel()

	row := []string{"A2", "T1", "", "T2", "", "x", "-1", "2026-05-04"}
	got := ParseMatchRow(row)
	if got.Score1 != 0 || got.Score2 != 0 {
		t.Fatalf("scores = %d/%d, want 0/0", got.Score1, got.Score2)
	}
	if got.Team1Stats != (MatchStats{}) || got.Team2Stats != (MatchStats{}) {
		t.Fatalf("stats should be zero for missing blocks, got %+v / %+v", got.Team1Stats, got.Team2Stats)
	}
}

func TestParseBracketRow(t *testing.T) {
	t.Parallel()

	got := ParseBracketRow([]string{"Q1", "T1", "T4", "5", "3", "TRUE", "Quarti", "left"})
	want := BracketRow{
		ID: "Q1", Team1ID: "T1", Team2ID: "T4",
		Score1: 5, Score2: 3, Played: true,
		Round: "Quarti", Side: "left",
	}
	if got != want {
		t.Fatalf("ParseBracketRow = %+v, want %+v", got, want)
	}
}

func TestBuildMatchRow_RoundTripsThroughParser(t *testing.T) {
	t.Parallel()

	in := NewMatch{
		Team1ID:    "T1",
		Team1Label: "Draghi",
		Team2ID:    "T3",
		Team2Label: "Falchi",
		Score1:     4,
		Score2:     4,
		Date:       "2026-05-10",
		Team1Stats: MatchStats{Flash: 1, GoalAttacker: 3, GoalDefender: 1},
		Team2Stats: MatchStats{GoalAttacker: 2, GoalDefender: 2, AutogoalDefender: 1},
	}
	row := BuildMatchRow("A9", in)
	if len(row) != matchRowWidth {
		t.Fatalf("row width = %d, want %d", len(row), matchRowWidth)
	}

	parsed := ParseMatchRow(row)
	want := MatchRow{
		ID:         "A9",
		Team1ID:    in.Team1ID,
		Team2ID:    in.Team2ID,
		Score1:     in.Score1,
		Score2:     in.Score2,
		Date:       in.Date,
		Team1Stats: in.Team1Stats,
		Team2Stats: in.Team2Stats,
	}
	if !reflect.DeepEqual(parsed, want) {
		t.Fatalf("round trip = %+v, want %+v", parsed, want)
	}
}
