package usecase

import (
	"context"
	"unicode"

	"github.com/calcettolab/torneo-api/internal/domain/bracket"
	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

// BracketService assembles the knockout board from the Bracket tab.
type BracketService struct {
	fetcher *RowFetcher
}

func NewBracketService(fetcher *RowFetcher) *BracketService {
	return &BracketService{fetcher: fetcher}
}

func (s *BracketService) Bracket(ctx context.Context) (bracket.Bracket, error) {
	ctx, span := startUsecaseSpan(ctx, "BracketService.Bracket")
	defer span.End()

	snap, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return bracket.Bracket{}, err
	}

	return buildBracket(snap.Teams, snap.Bracket), nil
}

func buildBracket(teamRows, bracketRows [][]string) bracket.Bracket {
	known := teamIndex(assembleTeams(teamRows))

	slot := func(teamID string) *bracket.Team {
		e, ok := known[teamID]
		if teamID == "" || !ok {
			return nil
		}
		return &bracket.Team{
			ID:    e.team.ID,
			Name:  e.team.Name,
			Abbr:  TeamAbbr(e.team.Name),
			Emoji: e.team.Emoji,
		}
	}

	toMatch := func(br sheet.BracketRow) bracket.Match {
		m := bracket.Match{
			ID:     br.ID,
			Team1:  slot(br.Team1ID),
			Team2:  slot(br.Team2ID),
			Played: br.Played,
		}
		if br.Played {
			s1, s2 := br.Score1, br.Score2
			m.Score1, m.Score2 = &s1, &s2
		}
		return m
	}

	var b bracket.Bracket
	rounds := map[string]*[]bracket.Match{}
	for _, round := range []string{bracket.RoundQuarti, bracket.RoundSemifinali} {
		for _, side := range []string{bracket.SideLeft, bracket.SideRight} {
			rounds[round+"/"+side] = &[]bracket.Match{}
		}
	}

	haveFinal := false
	for _, row := range bracketRows {
		br := sheet.ParseBracketRow(row)
		if br.ID == "" {
			continue
		}
		if br.Round == bracket.RoundFinale {
			// First Finale row wins, extras are ignored.
			if !haveFinal {
				b.Final = toMatch(br)
				haveFinal = true
			}
			continue
		}
		if bucket, ok := rounds[br.Round+"/"+br.Side]; ok {
			*bucket = append(*bucket, toMatch(br))
		}
	}
	if !haveFinal {
		b.Final = bracket.Match{ID: "f1"}
	}

	side := func(name string) []bracket.Round {
		return []bracket.Round{
			{ID: name + "-quarti", Name: bracket.RoundQuarti, Matches: *rounds[bracket.RoundQuarti+"/"+name]},
			{ID: name + "-semifinali", Name: bracket.RoundSemifinali, Matches: *rounds[bracket.RoundSemifinali+"/"+name]},
		}
	}
	b.LeftRounds = side(bracket.SideLeft)
	b.RightRounds = side(bracket.SideRight)
	return b
}

// TeamAbbr derives the three-letter scoreboard code from a team name: the
// first three letters, uppercased, skipping spaces and punctuation.
func TeamAbbr(name string) string {
	var out []rune
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 3 {
			break
		}
	}
	return string(out)
}
