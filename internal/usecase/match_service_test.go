package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

func TestMatchService_SubmitAppendsRow(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	svc := NewMatchService(NewRowFetcher(source, nil, nil), source, nil)

	id, err := svc.Submit(context.Background(), SubmitMatchInput{
		Team1ID:    "T1",
		Team2ID:    "T3",
		Score1:     6,
		Score2:     2,
		Date:       "2026-05-24",
		Team1Stats: sheet.MatchStats{Flash: 1, GoalAttacker: 4, GoalDefender: 2},
		Team2Stats: sheet.MatchStats{GoalAttacker: 1, GoalDefender: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Five rows were already on the tab.
	if id != "A6" {
		t.Fatalf("id = %s, want A6", id)
	}

	if len(source.appendCalls) != 1 {
		t.Fatalf("append calls = %d, want 1", len(source.appendCalls))
	}
	row := source.appendCalls[0]
	parsed := sheet.ParseMatchRow(row)
	if parsed.ID != "A6" || parsed.Team1ID != "T1" || parsed.Team2ID != "T3" {
		t.Fatalf("parsed row = %+v", parsed)
	}
	if parsed.Score1 != 6 || parsed.Score2 != 2 || parsed.Date != "2026-05-24" {
		t.Fatalf("parsed row = %+v", parsed)
	}
	if row[2] != "Draghi" || row[4] != "Falchi" {
		t.Fatalf("labels = %q/%q, want team names", row[2], row[4])
	}
}

func TestMatchService_SubmitValidation(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	svc := NewMatchService(NewRowFetcher(source, nil, nil), source, nil)

	cases := map[string]SubmitMatchInput{
		"missing team":     {Team2ID: "T2", Date: "2026-05-24"},
		"same team twice":  {Team1ID: "T1", Team2ID: "T1", Date: "2026-05-24"},
		"negative score":   {Team1ID: "T1", Team2ID: "T2", Score1: -1, Date: "2026-05-24"},
		"negative counter": {Team1ID: "T1", Team2ID: "T2", Date: "2026-05-24", Team1Stats: sheet.MatchStats{Flash: -1}},
		"bad date":         {Team1ID: "T1", Team2ID: "T2", Date: "24/05/2026"},
	}
	for name, in := range cases {
		if _, err := svc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", name, err)
		}
	}
	if len(source.appendCalls) != 0 {
		t.Fatalf("invalid input reached the sink: %d appends", len(source.appendCalls))
	}
}

func TestMatchService_SubmitUnknownTeam(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	svc := NewMatchService(NewRowFetcher(source, nil, nil), source, nil)

	_, err := svc.Submit(context.Background(), SubmitMatchInput{
		Team1ID: "T9",
		Team2ID: "T1",
		Date:    "2026-05-24",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMatchService_SinkFailure(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	sink := newStubSource()
	sink.err = errSourceDown
	svc := NewMatchService(NewRowFetcher(source, nil, nil), sink, nil)

	_, err := svc.Submit(context.Background(), SubmitMatchInput{
		Team1ID: "T1",
		Team2ID: "T2",
		Score1:  3,
		Date:    "2026-05-24",
	})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
}
