package playerstats

import (
	"sort"
	"strings"

	"github.com/calcettolab/torneo-api/internal/domain/tournament"
)

const topLimit = 5

// BuildRows seeds one row per roster player in team order, then folds every
// match's stat blocks into them. Rows are keyed by role, name and team so a
// duplicate first name on another team stays a distinct player.
func BuildRows(teams []tournament.Team, matches []tournament.Match) []StatRow {
	rows := make([]StatRow, 0, len(teams)*2)
	index := make(map[string]int, len(teams)*2)

	seed := func(team tournament.Team, name string, role Role) {
		key := string(role) + ":" + name + ":" + team.ID
		if _, ok := index[key]; ok {
			return
		}
		index[key] = len(rows)
		rows = append(rows, StatRow{
			PlayerName: name,
			TeamID:     team.ID,
			TeamName:   team.Name,
			TeamEmoji:  team.Emoji,
			Role:       role,
		})
	}

	byTeam := make(map[string]tournament.Team, len(teams))
	for _, team := range teams {
		byTeam[team.ID] = team
		seed(team, team.Attacker, RoleAttacker)
		seed(team, team.Defender, RoleDefender)
	}

	add := func(teamID string, stats tournament.TeamMatchStats) {
		team, ok := byTeam[teamID]
		if !ok {
			return
		}
		if i, ok := index[string(RoleAttacker)+":"+team.Attacker+":"+team.ID]; ok {
			rows[i].GoalAttacker += stats.GoalAttacker
			rows[i].AutogoalAttacker += stats.AutogoalAttacker
			rows[i].Flash += stats.Flash
		}
		if i, ok := index[string(RoleDefender)+":"+team.Defender+":"+team.ID]; ok {
			rows[i].GoalDefender += stats.GoalDefender
			rows[i].AutogoalDefender += stats.AutogoalDefender
		}
	}

	for _, m := range matches {
		add(m.Team1, m.Team1Stats)
		add(m.Team2, m.Team2Stats)
	}

	for i := range rows {
		rows[i].AutogoalsTotal = rows[i].AutogoalAttacker + rows[i].AutogoalDefender
	}
	return rows
}

// TopScorers returns up to five attackers by goals scored, stable on roster
// order among ties.
func TopScorers(rows []StatRow) []StatRow {
	return top(rows, func(r StatRow) bool { return r.Role == RoleAttacker }, func(r StatRow) int { return r.GoalAttacker })
}

// TopDefenders returns up to five defenders by goals scored.
func TopDefenders(rows []StatRow) []StatRow {
	return top(rows, func(r StatRow) bool { return r.Role == RoleDefender }, func(r StatRow) int { return r.GoalDefender })
}

// TopAutogoals ranks everybody by combined own goals.
func TopAutogoals(rows []StatRow) []StatRow {
	return top(rows, nil, func(r StatRow) int { return r.AutogoalsTotal })
}

// TopFlashes returns up to five attackers by flashes, the only role the
// counter is recorded for.
func TopFlashes(rows []StatRow) []StatRow {
	return top(rows, func(r StatRow) bool { return r.Role == RoleAttacker }, func(r StatRow) int { return r.Flash })
}

// Top resolves a leaderboard by category.
func Top(rows []StatRow, c Category) []StatRow {
	switch c {
	case CategoryCapocannoniere:
		return TopScorers(rows)
	case CategoryMuro:
		return TopDefenders(rows)
	case CategoryBoomerang:
		return TopAutogoals(rows)
	default:
		return TopFlashes(rows)
	}
}

func top(rows []StatRow, keep func(StatRow) bool, value func(StatRow) int) []StatRow {
	out := make([]StatRow, 0, len(rows))
	for _, r := range rows {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out
}

// ComputeAwards resolves the four trophies. A category where the maximum is
// zero has no winner.
func ComputeAwards(rows []StatRow) Awards {
	attackers := func(r StatRow) bool { return r.Role == RoleAttacker }
	defenders := func(r StatRow) bool { return r.Role == RoleDefender }
	return Awards{
		Capocannoniere:   bestOf(rows, attackers, func(r StatRow) int { return r.GoalAttacker }),
		IlMuro:           bestOf(rows, defenders, func(r StatRow) int { return r.GoalDefender }),
		BoomerangOro:     bestOf(rows, nil, func(r StatRow) int { return r.AutogoalsTotal }),
		MigliorFotografo: bestOf(rows, nil, func(r StatRow) int { return r.Flash }),
	}
}

// bestOf tallies values per player name, so a player who somehow appears in
// two rows (never in a well-formed roster) still counts once per name. A
// strict-maximum tie lists every tied name; a maximum of zero has no winner.
func bestOf(rows []StatRow, keep func(StatRow) bool, value func(StatRow) int) *Winner {
	names := make([]string, 0, len(rows))
	totals := make(map[string]int, len(rows))
	for _, r := range rows {
		if keep != nil && !keep(r) {
			continue
		}
		if _, ok := totals[r.PlayerName]; !ok {
			names = append(names, r.PlayerName)
		}
		totals[r.PlayerName] += value(r)
	}

	var best []string
	max := 0
	for _, name := range names {
		v := totals[name]
		switch {
		case v > max:
			max = v
			best = best[:0]
			best = append(best, name)
		case v == max && max > 0:
			best = append(best, name)
		}
	}
	if len(best) == 0 || max == 0 {
		return nil
	}
	return &Winner{
		Name:  strings.Join(best, ", "),
		Value: max,
		IsTie: len(best) > 1,
	}
}
