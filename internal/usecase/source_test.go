package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

func TestRowFetcher_PrimaryServes(t *testing.T) {
	t.Parallel()

	primary := newStubSource()
	fallback := newStubSource()
	fetcher := NewRowFetcher(primary, fallback, nil)

	rows, err := fetcher.FetchTab(context.Background(), sheet.TabTeams)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if fallback.fetchCalls != 0 {
		t.Fatalf("fallback touched %d times while primary is healthy", fallback.fetchCalls)
	}
}

func TestRowFetcher_FallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := newStubSource()
	primary.err = errSourceDown
	fallback := newStubSource()
	fetcher := NewRowFetcher(primary, fallback, nil)

	rows, err := fetcher.FetchTab(context.Background(), sheet.TabTeams)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4 from fallback", len(rows))
	}
}

func TestRowFetcher_UnavailableWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := newStubSource()
	primary.err = errSourceDown
	fallback := newStubSource()
	fallback.err = errSourceDown

	fetcher := NewRowFetcher(primary, fallback, nil)
	if _, err := fetcher.FetchTab(context.Background(), sheet.TabTeams); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
}

func TestRowFetcher_FetchSnapshot(t *testing.T) {
	t.Parallel()

	fetcher := NewRowFetcher(newStubSource(), nil, nil)
	snap, err := fetcher.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Teams) != 4 || len(snap.Matches) != 5 || len(snap.Bracket) != 4 {
		t.Fatalf("snapshot sizes = %d/%d/%d", len(snap.Teams), len(snap.Matches), len(snap.Bracket))
	}
}

func TestRowFetcher_FetchSnapshotPropagatesFailure(t *testing.T) {
	t.Parallel()

	primary := newStubSource()
	primary.err = errSourceDown
	fetcher := NewRowFetcher(primary, nil, nil)

	if _, err := fetcher.FetchSnapshot(context.Background()); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
}
