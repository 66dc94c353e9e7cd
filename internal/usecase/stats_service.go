package usecase

import (
	"context"
	"fmt"

	"github.com/calcettolab/torneo-api/internal/domain/playerstats"
)

// StatsService aggregates per-player statistics and the season awards.
type StatsService struct {
	fetcher *RowFetcher
}

func NewStatsService(fetcher *RowFetcher) *StatsService {
	return &StatsService{fetcher: fetcher}
}

func (s *StatsService) rows(ctx context.Context) ([]playerstats.StatRow, error) {
	snap, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := assembleTeams(snap.Teams)
	matches := assembleMatches(snap.Matches, teamIndex(entries))
	return playerstats.BuildRows(teamsOf(entries), matches), nil
}

// Awards resolves the four season trophies from the current match data.
func (s *StatsService) Awards(ctx context.Context) (playerstats.Awards, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.Awards")
	defer span.End()

	rows, err := s.rows(ctx)
	if err != nil {
		return playerstats.Awards{}, err
	}
	return playerstats.ComputeAwards(rows), nil
}

// Top returns the capped leaderboard for one category.
func (s *StatsService) Top(ctx context.Context, category string) ([]playerstats.StatRow, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.Top")
	defer span.End()

	c, ok := playerstats.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	rows, err := s.rows(ctx)
	if err != nil {
		return nil, err
	}
	return playerstats.Top(rows, c), nil
}
