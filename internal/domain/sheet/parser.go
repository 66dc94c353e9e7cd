package sheet

import (
	"strconv"
	"strings"
)

// Squadre tab columns.
const (
	teamColID = iota
	teamColName
	teamColEmoji
	teamColDefender
	teamColAttacker
	teamColGroupID
	teamColGroupName
)

// Partite tab columns. Each stats block is five consecutive cells in the
// order flash, goalAttacker, goalDefender, autogoalAttacker, autogoalDefender.
const (
	matchColID = iota
	matchColTeam1
	matchColTeam1Label // display only
	matchColTeam2
	matchColTeam2Label // display only
	matchColScore1
	matchColScore2
	matchColDate
	matchColTeam1Stats = 8
	matchColTeam2Stats = 13
	matchRowWidth      = 18
)

// Bracket tab columns.
const (
	bracketColID = iota
	bracketColTeam1
	bracketColTeam2
	bracketColScore1
	bracketColScore2
	bracketColPlayed
	bracketColRound
	bracketColSide
)

// Cell returns row[i], or "" when the row is too short. Sheet rows drop
// trailing empty cells, so missing is the same as empty.
func Cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// CellInt coerces a cell to a non-negative int. Anything unparsable or
// negative counts as zero; sheets happily hold "", "abc" or "3.5" where a
// score belongs.
func CellInt(row []string, i int) int {
	n, err := strconv.Atoi(strings.TrimSpace(Cell(row, i)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CellBool reports whether a cell holds the sheet literal TRUE, in any case.
func CellBool(row []string, i int) bool {
	return strings.EqualFold(strings.TrimSpace(Cell(row, i)), "TRUE")
}

// ParseTeamRow maps one Squadre row onto a TeamRow.
func ParseTeamRow(row []string) TeamRow {
	return TeamRow{
		ID:        Cell(row, teamColID),
		Name:      Cell(row, teamColName),
		Emoji:     Cell(row, teamColEmoji),
		Defender:  Cell(row, teamColDefender),
		Attacker:  Cell(row, teamColAttacker),
		GroupID:   Cell(row, teamColGroupID),
		GroupName: Cell(row, teamColGroupName),
	}
}

func parseStatsBlock(row []string, start int) MatchStats {
	return MatchStats{
		Flash:            CellInt(row, start),
		GoalAttacker:     CellInt(row, start+1),
		GoalDefender:     CellInt(row, start+2),
		AutogoalAttacker: CellInt(row, start+3),
		AutogoalDefender: CellInt(row, start+4),
	}
}

// ParseMatchRow maps one Partite row onto a MatchRow.
func ParseMatchRow(row []string) MatchRow {
	return MatchRow{
		ID:         Cell(row, matchColID),
		Team1ID:    Cell(row, matchColTeam1),
		Team2ID:    Cell(row, matchColTeam2),
		Score1:     CellInt(row, matchColScore1),
		Score2:     CellInt(row, matchColScore2),
		Date:       strings.TrimSpace(Cell(row, matchColDate)),
		Team1Stats: parseStatsBlock(row, matchColTeam1Stats),
		Team2Stats: parseStatsBlock(row, matchColTeam2Stats),
	}
}

// ParseBracketRow maps one Bracket row onto a BracketRow.
func ParseBracketRow(row []string) BracketRow {
	return BracketRow{
		ID:      Cell(row, bracketColID),
		Team1ID: Cell(row, bracketColTeam1),
		Team2ID: Cell(row, bracketColTeam2),
		Score1:  CellInt(row, bracketColScore1),
		Score2:  CellInt(row, bracketColScore2),
		Played:  CellBool(row, bracketColPlayed),
		Round:   Cell(row, bracketColRound),
		Side:    Cell(row, bracketColSide),
	}
}

func writeStatsBlock(row []string, start int, s MatchStats) {
	row[start] = strconv.Itoa(s.Flash)
	row[start+1] = strconv.Itoa(s.GoalAttacker)
	row[start+2] = strconv.Itoa(s.GoalDefender)
	row[start+3] = strconv.Itoa(s.AutogoalAttacker)
	row[start+4] = strconv.Itoa(s.AutogoalDefender)
}

// BuildMatchRow renders a submission as a full-width Partite row, the exact
// inverse of ParseMatchRow for every parsed column.
func BuildMatchRow(id string, m NewMatch) []string {
	row := make([]string, matchRowWidth)
	row[matchColID] = id
	row[matchColTeam1] = m.Team1ID
	row[matchColTeam1Label] = m.Team1Label
	row[matchColTeam2] = m.Team2ID
	row[matchColTeam2Label] = m.Team2Label
	row[matchColScore1] = strconv.Itoa(m.Score1)
	row[matchColScore2] = strconv.Itoa(m.Score2)
	row[matchColDate] = m.Date
	writeStatsBlock(row, matchColTeam1Stats, m.Team1Stats)
	writeStatsBlock(row, matchColTeam2Stats, m.Team2Stats)
	return row
}
