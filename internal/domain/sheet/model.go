package sheet

// Tab names inside the tournament spreadsheet.
const (
	TabTeams   = "Squadre"
	TabMatches = "Partite"
	TabBracket = "Bracket"
)

// MatchStats is the raw five-counter block of one team in one match row,
// in sheet column order.
type MatchStats struct {
	Flash            int
	GoalAttacker     int
	GoalDefender     int
	AutogoalAttacker int
	AutogoalDefender int
}

// TeamRow mirrors one row of the Squadre tab:
// id, name, emoji, defender, attacker, groupId, groupName.
type TeamRow struct {
	ID        string
	Name      string
	Emoji     string
	Defender  string
	Attacker  string
	GroupID   string
	GroupName string
}

// MatchRow mirrors one row of the Partite tab. Date is the raw cell value,
// expected as "YYYY-MM-DD"; an empty date marks a placeholder row that must
// not reach standings or calendar.
type MatchRow struct {
	ID         string
	Team1ID    string
	Team2ID    string
	Score1     int
	Score2     int
	Date       string
	Team1Stats MatchStats
	Team2Stats MatchStats
}

// BracketRow mirrors one row of the Bracket tab. Round is one of the round
// literals ("Quarti", "Semifinali", "Finale"); Side is "left" or "right",
// empty for the final.
type BracketRow struct {
	ID      string
	Team1ID string
	Team2ID string
	Score1  int
	Score2  int
	Played  bool
	Round   string
	Side    string
}

// NewMatch carries a validated submission about to be appended to the
// Partite tab. Scores are client-computed and stored as given.
type NewMatch struct {
	Team1ID    string
	Team1Label string
	Team2ID    string
	Team2Label string
	Score1     int
	Score2     int
	Date       string
	Team1Stats MatchStats
	Team2Stats MatchStats
}
