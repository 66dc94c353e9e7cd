package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
	"github.com/calcettolab/torneo-api/internal/platform/logging"
)

// RowFetcher reads tabs from the primary spreadsheet source and, when that
// source is down or rate limited, serves the seeded fallback instead. Every
// answer comes whole from a single source, never stitched from both.
type RowFetcher struct {
	primary  sheet.RowSource
	fallback sheet.RowSource
	logger   *logging.Logger
}

func NewRowFetcher(primary, fallback sheet.RowSource, logger *logging.Logger) *RowFetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RowFetcher{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// FetchTab returns the full contents of one tab.
func (f *RowFetcher) FetchTab(ctx context.Context, tab string) ([][]string, error) {
	ctx, span := startUsecaseSpan(ctx, "RowFetcher.FetchTab")
	defer span.End()

	rows, err := f.primary.FetchTab(ctx, tab)
	if err == nil {
		return rows, nil
	}

	if f.fallback == nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrSourceUnavailable, tab, err)
	}

	f.logger.WarnContext(ctx, "primary row source failed, serving fallback", "tab", tab, "error", err)
	rows, fbErr := f.fallback.FetchTab(ctx, tab)
	if fbErr != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrSourceUnavailable, tab, fbErr)
	}
	return rows, nil
}

// Snapshot holds the three tabs of one coherent read.
type Snapshot struct {
	Teams   [][]string
	Matches [][]string
	Bracket [][]string
}

// FetchSnapshot pulls all three tabs in parallel. One failing tab fails the
// whole snapshot.
func (f *RowFetcher) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "RowFetcher.FetchSnapshot")
	defer span.End()

	pool, err := ants.NewPool(3)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	var (
		snap     Snapshot
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	fetch := func(tab string, assign func([][]string)) {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			rows, fetchErr := f.FetchTab(ctx, tab)

			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				if firstErr == nil {
					firstErr = fetchErr
				}
				return
			}
			assign(rows)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	fetch(sheet.TabTeams, func(rows [][]string) { snap.Teams = rows })
	fetch(sheet.TabMatches, func(rows [][]string) { snap.Matches = rows })
	fetch(sheet.TabBracket, func(rows [][]string) { snap.Bracket = rows })
	wg.Wait()

	if firstErr != nil {
		return Snapshot{}, firstErr
	}
	return snap, nil
}
