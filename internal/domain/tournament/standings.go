package tournament

import "sort"

// vantaggiThreshold marks an extra-time match: whenever either side scores
// more than this, the winner takes 2 points and the loser 1 instead of the
// regular 3/0 split.
const vantaggiThreshold = 10

// CalculateStandings builds the ranked table for one group from scratch.
// Matches referencing a team that is not in the group are skipped.
func CalculateStandings(teams []Team, matches []Match) []GroupStanding {
	rows := make([]GroupStanding, 0, len(teams))
	index := make(map[string]int, len(teams))

	for _, team := range teams {
		if _, ok := index[team.ID]; ok {
			continue
		}
		index[team.ID] = len(rows)
		rows = append(rows, GroupStanding{TeamID: team.ID, TeamName: team.Name})
	}

	for _, match := range matches {
		i1, ok1 := index[match.Team1]
		i2, ok2 := index[match.Team2]
		if !ok1 || !ok2 {
			continue
		}
		s1 := &rows[i1]
		s2 := &rows[i2]

		s1.Played++
		s2.Played++
		s1.GoalsFor += match.Score1
		s1.GoalsAgainst += match.Score2
		s2.GoalsFor += match.Score2
		s2.GoalsAgainst += match.Score1

		vantaggi := match.Score1 > vantaggiThreshold || match.Score2 > vantaggiThreshold

		switch {
		case match.Score1 > match.Score2:
			s1.Won++
			s2.Lost++
			if vantaggi {
				s1.Points += 2
				s2.Points++
			} else {
				s1.Points += 3
			}
		case match.Score1 < match.Score2:
			s2.Won++
			s1.Lost++
			if vantaggi {
				s2.Points += 2
				s1.Points++
			} else {
				s2.Points += 3
			}
		default:
			s1.Drawn++
			s2.Drawn++
			s1.Points++
			s2.Points++
		}
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	// Points, then goal difference, then goals scored. Teams still tied
	// after all three keep the order they were first encountered in.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	return rows
}
