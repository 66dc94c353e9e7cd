package usecase

import (
	"context"
	"testing"

	"github.com/calcettolab/torneo-api/internal/domain/calendar"
)

func TestCalendarService_DaysOrderedAndLabelled(t *testing.T) {
	t.Parallel()

	svc := NewCalendarService(NewRowFetcher(newStubSource(), nil, nil))
	days, err := svc.Days(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(days) != 3 {
		t.Fatalf("days = %d, want 3", len(days))
	}

	first := days[0]
	if first.ID != "day-1" || first.RoundLabel != "Giornata 1" {
		t.Fatalf("first day labels = %s/%s", first.ID, first.RoundLabel)
	}
	if first.DateLabel != "3 maggio 2026" {
		t.Fatalf("first date label = %q", first.DateLabel)
	}
	if len(first.Matches) != 1 || first.Matches[0].ID != "A2" {
		t.Fatalf("first day matches = %+v", first.Matches)
	}

	second := days[1]
	if second.RoundLabel != "Giornata 2" || len(second.Matches) != 2 {
		t.Fatalf("second day = %s with %d matches", second.RoundLabel, len(second.Matches))
	}
}

func TestCalendarService_UndatedDroppedUnknownTeamKeptAsID(t *testing.T) {
	t.Parallel()

	svc := NewCalendarService(NewRowFetcher(newStubSource(), nil, nil))
	days, err := svc.Days(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var found *calendar.Match
	for _, day := range days {
		for i, m := range day.Matches {
			if m.ID == "A4" {
				t.Fatal("undated match A4 should have been dropped")
			}
			if m.ID == "A5" {
				found = &day.Matches[i]
			}
		}
	}

	if found == nil {
		t.Fatal("dated match A5 missing from the calendar")
	}
	if found.Team1Name != "T9" || found.Team2Name != "Draghi" {
		t.Fatalf("names = %s vs %s, want raw id fallback", found.Team1Name, found.Team2Name)
	}
}

func TestCalendarService_MatchShape(t *testing.T) {
	t.Parallel()

	svc := NewCalendarService(NewRowFetcher(newStubSource(), nil, nil))
	days, err := svc.Days(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	m := days[0].Matches[0]
	if m.Team1Name != "Falchi" || m.Team2Name != "Orsi" {
		t.Fatalf("names = %s vs %s", m.Team1Name, m.Team2Name)
	}
	if m.Status != calendar.StatusFullTime {
		t.Fatalf("status = %s, want %s", m.Status, calendar.StatusFullTime)
	}
	if m.Score1 != 3 || m.Score2 != 3 {
		t.Fatalf("score = %d-%d, want 3-3", m.Score1, m.Score2)
	}
	if m.Team1Stats.GoalAttacker != 2 || m.Team2Stats.GoalDefender != 2 {
		t.Fatalf("stats = %+v / %+v", m.Team1Stats, m.Team2Stats)
	}
}
