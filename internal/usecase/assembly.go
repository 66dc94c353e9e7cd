package usecase

import (
	"github.com/calcettolab/torneo-api/internal/domain/sheet"
	"github.com/calcettolab/torneo-api/internal/domain/tournament"
)

type teamEntry struct {
	team      tournament.Team
	groupID   string
	groupName string
}

// assembleTeams parses the Squadre rows, keeping group order as the sheet
// lists it. Rows without an id are dropped.
func assembleTeams(rows [][]string) []teamEntry {
	out := make([]teamEntry, 0, len(rows))
	for _, row := range rows {
		tr := sheet.ParseTeamRow(row)
		if tr.ID == "" {
			continue
		}
		out = append(out, teamEntry{
			team: tournament.Team{
				ID:       tr.ID,
				Name:     tr.Name,
				Emoji:    tr.Emoji,
				Defender: tr.Defender,
				Attacker: tr.Attacker,
			},
			groupID:   tr.GroupID,
			groupName: tr.GroupName,
		})
	}
	return out
}

// assembleMatches parses the Partite rows into domain matches. Undated rows
// are placeholders, and a row whose first team is off the roster has no
// group to live in; both are dropped without error. An unknown second team
// is kept as-is, the standings calculator skips what it cannot resolve.
func assembleMatches(rows [][]string, known map[string]teamEntry) []tournament.Match {
	out := make([]tournament.Match, 0, len(rows))
	for _, row := range rows {
		mr := sheet.ParseMatchRow(row)
		if mr.ID == "" || mr.Date == "" {
			continue
		}
		if _, ok := known[mr.Team1ID]; !ok {
			continue
		}
		out = append(out, tournament.Match{
			ID:         mr.ID,
			Team1:      mr.Team1ID,
			Team2:      mr.Team2ID,
			Score1:     mr.Score1,
			Score2:     mr.Score2,
			Team1Stats: sheetStats(mr.Team1Stats),
			Team2Stats: sheetStats(mr.Team2Stats),
		})
	}
	return out
}

func teamsOf(entries []teamEntry) []tournament.Team {
	out := make([]tournament.Team, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.team)
	}
	return out
}

func teamIndex(entries []teamEntry) map[string]teamEntry {
	out := make(map[string]teamEntry, len(entries))
	for _, e := range entries {
		if _, ok := out[e.team.ID]; !ok {
			out[e.team.ID] = e
		}
	}
	return out
}

func sheetStats(s sheet.MatchStats) tournament.TeamMatchStats {
	return tournament.TeamMatchStats{
		Flash:            s.Flash,
		GoalAttacker:     s.GoalAttacker,
		GoalDefender:     s.GoalDefender,
		AutogoalAttacker: s.AutogoalAttacker,
		AutogoalDefender: s.AutogoalDefender,
	}
}
