package usecase

import (
	"context"
	"sort"

	"github.com/calcettolab/torneo-api/internal/domain/tournament"
)

// TournamentService assembles the group-stage view: rosters, per-group
// match lists and freshly computed standings.
type TournamentService struct {
	fetcher *RowFetcher
}

func NewTournamentService(fetcher *RowFetcher) *TournamentService {
	return &TournamentService{fetcher: fetcher}
}

func (s *TournamentService) Tournament(ctx context.Context) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.Tournament")
	defer span.End()

	snap, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return tournament.Tournament{}, err
	}

	return buildTournament(snap.Teams, snap.Matches), nil
}

// Teams lists every roster team in group order with its group context and
// current standing.
func (s *TournamentService) Teams(ctx context.Context) ([]tournament.TeamRef, error) {
	t, err := s.Tournament(ctx)
	if err != nil {
		return nil, err
	}

	ix := tournament.NewIndex(t)
	refs := make([]tournament.TeamRef, 0)
	for _, group := range t.Groups {
		for _, team := range group.Teams {
			if ref, ok := ix.TeamByName(team.Name); ok && ref.Team.ID == team.ID {
				refs = append(refs, ref)
				continue
			}
			refs = append(refs, tournament.TeamRef{
				Team:      team,
				GroupID:   group.ID,
				GroupName: group.Name,
			})
		}
	}
	return refs, nil
}

// buildTournament groups teams by group id, files each match under its
// first team's group and sorts groups by id for a stable display order.
func buildTournament(teamRows, matchRows [][]string) tournament.Tournament {
	entries := assembleTeams(teamRows)
	known := teamIndex(entries)
	matches := assembleMatches(matchRows, known)

	var t tournament.Tournament
	groupAt := make(map[string]int)
	for _, e := range entries {
		i, ok := groupAt[e.groupID]
		if !ok {
			i = len(t.Groups)
			groupAt[e.groupID] = i
			t.Groups = append(t.Groups, tournament.Group{ID: e.groupID, Name: e.groupName})
		}
		t.Groups[i].Teams = append(t.Groups[i].Teams, e.team)
	}

	for _, m := range matches {
		home := known[m.Team1]
		if i, ok := groupAt[home.groupID]; ok {
			t.Groups[i].Matches = append(t.Groups[i].Matches, m)
		}
	}

	sort.SliceStable(t.Groups, func(i, j int) bool {
		return t.Groups[i].ID < t.Groups[j].ID
	})

	for i := range t.Groups {
		t.Groups[i].Standings = tournament.CalculateStandings(t.Groups[i].Teams, t.Groups[i].Matches)
	}
	return t
}
