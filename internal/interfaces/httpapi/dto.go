package httpapi

import (
	"github.com/calcettolab/torneo-api/internal/domain/bracket"
	"github.com/calcettolab/torneo-api/internal/domain/calendar"
	"github.com/calcettolab/torneo-api/internal/domain/playerstats"
	"github.com/calcettolab/torneo-api/internal/domain/tournament"
)

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Defender string `json:"defender"`
	Attacker string `json:"attacker"`
}

type statBlockDTO struct {
	Flash            int `json:"flash"`
	GoalAttacker     int `json:"goal_attacker"`
	GoalDefender     int `json:"goal_defender"`
	AutogoalAttacker int `json:"autogoal_attacker"`
	AutogoalDefender int `json:"autogoal_defender"`
}

type groupMatchDTO struct {
	ID         string       `json:"id"`
	Team1ID    string       `json:"team1_id"`
	Team2ID    string       `json:"team2_id"`
	Score1     int          `json:"score1"`
	Score2     int          `json:"score2"`
	Team1Stats statBlockDTO `json:"team1_stats"`
	Team2Stats statBlockDTO `json:"team2_stats"`
}

type standingDTO struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type groupDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Teams     []teamDTO       `json:"teams"`
	Matches   []groupMatchDTO `json:"matches"`
	Standings []standingDTO   `json:"standings"`
}

type tournamentDTO struct {
	Groups []groupDTO `json:"groups"`
}

type teamRefDTO struct {
	Team      teamDTO      `json:"team"`
	GroupID   string       `json:"group_id"`
	GroupName string       `json:"group_name"`
	Standing  *standingDTO `json:"standing,omitempty"`
}

type calendarMatchDTO struct {
	ID         string       `json:"id"`
	Team1Name  string       `json:"team1_name"`
	Team2Name  string       `json:"team2_name"`
	Score1     int          `json:"score1"`
	Score2     int          `json:"score2"`
	Status     string       `json:"status"`
	Team1Stats statBlockDTO `json:"team1_stats"`
	Team2Stats statBlockDTO `json:"team2_stats"`
}

type calendarDayDTO struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	DateLabel  string             `json:"date_label"`
	RoundLabel string             `json:"round_label"`
	Matches    []calendarMatchDTO `json:"matches"`
}

type bracketTeamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Abbr  string `json:"abbr"`
	Emoji string `json:"emoji"`
}

type bracketMatchDTO struct {
	ID     string          `json:"id"`
	Team1  *bracketTeamDTO `json:"team1"`
	Team2  *bracketTeamDTO `json:"team2"`
	Score1 *int            `json:"score1"`
	Score2 *int            `json:"score2"`
	Played bool            `json:"played"`
}

type bracketRoundDTO struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Matches []bracketMatchDTO `json:"matches"`
}

type bracketDTO struct {
	LeftRounds  []bracketRoundDTO `json:"left_rounds"`
	RightRounds []bracketRoundDTO `json:"right_rounds"`
	Final       bracketMatchDTO   `json:"final"`
}

type statRowDTO struct {
	PlayerName       string `json:"player_name"`
	TeamID           string `json:"team_id"`
	TeamName         string `json:"team_name"`
	TeamEmoji        string `json:"team_emoji"`
	Role             string `json:"role"`
	GoalAttacker     int    `json:"goal_attacker"`
	GoalDefender     int    `json:"goal_defender"`
	AutogoalAttacker int    `json:"autogoal_attacker"`
	AutogoalDefender int    `json:"autogoal_defender"`
	AutogoalsTotal   int    `json:"autogoals_total"`
	Flash            int    `json:"flash"`
}

type winnerDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	IsTie bool   `json:"is_tie"`
}

type awardsDTO struct {
	Capocannoniere   *winnerDTO `json:"capocannoniere"`
	IlMuro           *winnerDTO `json:"il_muro"`
	BoomerangOro     *winnerDTO `json:"boomerang_oro"`
	MigliorFotografo *winnerDTO `json:"miglior_fotografo"`
}

type submitMatchStatsRequest struct {
	Flash            int `json:"flash" validate:"min=0"`
	GoalAttacker     int `json:"goal_attacker" validate:"min=0"`
	GoalDefender     int `json:"goal_defender" validate:"min=0"`
	AutogoalAttacker int `json:"autogoal_attacker" validate:"min=0"`
	AutogoalDefender int `json:"autogoal_defender" validate:"min=0"`
}

type submitMatchRequest struct {
	Team1ID    string                  `json:"team1_id" validate:"required"`
	Team1Label string                  `json:"team1_label,omitempty"`
	Team2ID    string                  `json:"team2_id" validate:"required,nefield=Team1ID"`
	Team2Label string                  `json:"team2_label,omitempty"`
	Score1     int                     `json:"score1" validate:"min=0"`
	Score2     int                     `json:"score2" validate:"min=0"`
	Date       string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Team1Stats submitMatchStatsRequest `json:"team1_stats"`
	Team2Stats submitMatchStatsRequest `json:"team2_stats"`
}

type submitMatchResponse struct {
	ID string `json:"id"`
}

func teamToDTO(t tournament.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		Name:     t.Name,
		Emoji:    t.Emoji,
		Defender: t.Defender,
		Attacker: t.Attacker,
	}
}

func statsToDTO(s tournament.TeamMatchStats) statBlockDTO {
	return statBlockDTO{
		Flash:            s.Flash,
		GoalAttacker:     s.GoalAttacker,
		GoalDefender:     s.GoalDefender,
		AutogoalAttacker: s.AutogoalAttacker,
		AutogoalDefender: s.AutogoalDefender,
	}
}

func standingToDTO(s tournament.GroupStanding) standingDTO {
	return standingDTO{
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		Played:         s.Played,
		Won:            s.Won,
		Drawn:          s.Drawn,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
	}
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	groups := make([]groupDTO, 0, len(t.Groups))
	for _, g := range t.Groups {
		teams := make([]teamDTO, 0, len(g.Teams))
		for _, team := range g.Teams {
			teams = append(teams, teamToDTO(team))
		}
		matches := make([]groupMatchDTO, 0, len(g.Matches))
		for _, m := range g.Matches {
			matches = append(matches, groupMatchDTO{
				ID:         m.ID,
				Team1ID:    m.Team1,
				Team2ID:    m.Team2,
				Score1:     m.Score1,
				Score2:     m.Score2,
				Team1Stats: statsToDTO(m.Team1Stats),
				Team2Stats: statsToDTO(m.Team2Stats),
			})
		}
		standings := make([]standingDTO, 0, len(g.Standings))
		for _, s := range g.Standings {
			standings = append(standings, standingToDTO(s))
		}
		groups = append(groups, groupDTO{
			ID:        g.ID,
			Name:      g.Name,
			Teams:     teams,
			Matches:   matches,
			Standings: standings,
		})
	}
	return tournamentDTO{Groups: groups}
}

func teamRefToDTO(ref tournament.TeamRef) teamRefDTO {
	dto := teamRefDTO{
		Team:      teamToDTO(ref.Team),
		GroupID:   ref.GroupID,
		GroupName: ref.GroupName,
	}
	if ref.Standing != nil {
		standing := standingToDTO(*ref.Standing)
		dto.Standing = &standing
	}
	return dto
}

func calendarDayToDTO(day calendar.Day) calendarDayDTO {
	matches := make([]calendarMatchDTO, 0, len(day.Matches))
	for _, m := range day.Matches {
		matches = append(matches, calendarMatchDTO{
			ID:         m.ID,
			Team1Name:  m.Team1Name,
			Team2Name:  m.Team2Name,
			Score1:     m.Score1,
			Score2:     m.Score2,
			Status:     string(m.Status),
			Team1Stats: statsToDTO(m.Team1Stats),
			Team2Stats: statsToDTO(m.Team2Stats),
		})
	}
	return calendarDayDTO{
		ID:         day.ID,
		Date:       day.Date.Format("2006-01-02"),
		DateLabel:  day.DateLabel,
		RoundLabel: day.RoundLabel,
		Matches:    matches,
	}
}

func bracketMatchToDTO(m bracket.Match) bracketMatchDTO {
	dto := bracketMatchDTO{
		ID:     m.ID,
		Score1: m.Score1,
		Score2: m.Score2,
		Played: m.Played,
	}
	if m.Team1 != nil {
		dto.Team1 = &bracketTeamDTO{ID: m.Team1.ID, Name: m.Team1.Name, Abbr: m.Team1.Abbr, Emoji: m.Team1.Emoji}
	}
	if m.Team2 != nil {
		dto.Team2 = &bracketTeamDTO{ID: m.Team2.ID, Name: m.Team2.Name, Abbr: m.Team2.Abbr, Emoji: m.Team2.Emoji}
	}
	return dto
}

func bracketToDTO(b bracket.Bracket) bracketDTO {
	rounds := func(in []bracket.Round) []bracketRoundDTO {
		out := make([]bracketRoundDTO, 0, len(in))
		for _, round := range in {
			matches := make([]bracketMatchDTO, 0, len(round.Matches))
			for _, m := range round.Matches {
				matches = append(matches, bracketMatchToDTO(m))
			}
			out = append(out, bracketRoundDTO{ID: round.ID, Name: round.Name, Matches: matches})
		}
		return out
	}
	return bracketDTO{
		LeftRounds:  rounds(b.LeftRounds),
		RightRounds: rounds(b.RightRounds),
		Final:       bracketMatchToDTO(b.Final),
	}
}

func statRowToDTO(r playerstats.StatRow) statRowDTO {
	return statRowDTO{
		PlayerName:       r.PlayerName,
		TeamID:           r.TeamID,
		TeamName:         r.TeamName,
		TeamEmoji:        r.TeamEmoji,
		Role:             string(r.Role),
		GoalAttacker:     r.GoalAttacker,
		GoalDefender:     r.GoalDefender,
		AutogoalAttacker: r.AutogoalAttacker,
		AutogoalDefender: r.AutogoalDefender,
		AutogoalsTotal:   r.AutogoalsTotal,
		Flash:            r.Flash,
	}
}

func winnerToDTO(w *playerstats.Winner) *winnerDTO {
	if w == nil {
		return nil
	}
	return &winnerDTO{Name: w.Name, Value: w.Value, IsTie: w.IsTie}
}

func awardsToDTO(a playerstats.Awards) awardsDTO {
	return awardsDTO{
		Capocannoniere:   winnerToDTO(a.Capocannoniere),
		IlMuro:           winnerToDTO(a.IlMuro),
		BoomerangOro:     winnerToDTO(a.BoomerangOro),
		MigliorFotografo: winnerToDTO(a.MigliorFotografo),
	}
}
