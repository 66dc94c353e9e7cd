package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
	"github.com/calcettolab/torneo-api/internal/platform/logging"
)

// SubmitMatchInput is a validated match result about to be written back to
// the sheet. Scores and stat counters arrive as the client computed them.
// Labels are optional; the roster name fills an empty one.
type SubmitMatchInput struct {
	Team1ID    string
	Team1Label string
	Team2ID    string
	Team2Label string
	Score1     int
	Score2     int
	Date       string
	Team1Stats sheet.MatchStats
	Team2Stats sheet.MatchStats
}

// MatchService appends submitted results to the Partite tab.
type MatchService struct {
	fetcher *RowFetcher
	sink    sheet.RowSink
	logger  *logging.Logger
}

func NewMatchService(fetcher *RowFetcher, sink sheet.RowSink, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchService{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
	}
}

// Submit validates the result, assigns the next match id and appends the
// row. It returns the assigned id.
func (s *MatchService) Submit(ctx context.Context, in SubmitMatchInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Submit")
	defer span.End()

	if err := s.validate(in); err != nil {
		return "", err
	}

	teamRows, err := s.fetcher.FetchTab(ctx, sheet.TabTeams)
	if err != nil {
		return "", fmt.Errorf("fetch teams: %w", err)
	}
	known := teamIndex(assembleTeams(teamRows))

	t1, ok := known[in.Team1ID]
	if !ok {
		return "", fmt.Errorf("%w: team %s", ErrNotFound, in.Team1ID)
	}
	t2, ok := known[in.Team2ID]
	if !ok {
		return "", fmt.Errorf("%w: team %s", ErrNotFound, in.Team2ID)
	}

	matchRows, err := s.fetcher.FetchTab(ctx, sheet.TabMatches)
	if err != nil {
		return "", fmt.Errorf("fetch matches: %w", err)
	}

	// Ids are row-count based, so two concurrent submissions can collide.
	// Acceptable for a single-operator tournament sheet.
	id := "A" + strconv.Itoa(len(matchRows)+1)

	label1 := in.Team1Label
	if label1 == "" {
		label1 = t1.team.Name
	}
	label2 := in.Team2Label
	if label2 == "" {
		label2 = t2.team.Name
	}

	row := sheet.BuildMatchRow(id, sheet.NewMatch{
		Team1ID:    in.Team1ID,
		Team1Label: label1,
		Team2ID:    in.Team2ID,
		Team2Label: label2,
		Score1:     in.Score1,
		Score2:     in.Score2,
		Date:       in.Date,
		Team1Stats: in.Team1Stats,
		Team2Stats: in.Team2Stats,
	})

	if err := s.sink.AppendRow(ctx, sheet.TabMatches, row); err != nil {
		return "", fmt.Errorf("%w: append match: %v", ErrSourceUnavailable, err)
	}

	s.logger.InfoContext(ctx, "match submitted",
		"match_id", id,
		"team1", in.Team1ID,
		"team2", in.Team2ID,
		"score", fmt.Sprintf("%d-%d", in.Score1, in.Score2),
	)
	return id, nil
}

func (s *MatchService) validate(in SubmitMatchInput) error {
	if in.Team1ID == "" || in.Team2ID == "" {
		return fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if in.Team1ID == in.Team2ID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if in.Score1 < 0 || in.Score2 < 0 {
		return fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}
	for _, stats := range []sheet.MatchStats{in.Team1Stats, in.Team2Stats} {
		if stats.Flash < 0 || stats.GoalAttacker < 0 || stats.GoalDefender < 0 ||
			stats.AutogoalAttacker < 0 || stats.AutogoalDefender < 0 {
			return fmt.Errorf("%w: stat counters must not be negative", ErrInvalidInput)
		}
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}
