package tournament

// Team is one roster entry from the Squadre sheet: two fixed player slots,
// a defender and an attacker.
type Team struct {
	ID       string
	Name     string
	Emoji    string
	Defender string
	Attacker string
}

// TeamMatchStats is the five-counter block recorded per team per match.
// Flash is informational only and never affects score or points.
type TeamMatchStats struct {
	Flash            int
	GoalAttacker     int
	GoalDefender     int
	AutogoalAttacker int
	AutogoalDefender int
}

// Match is one completed group-stage match. Team1 and Team2 hold team IDs.
type Match struct {
	ID         string
	Team1      string
	Team2      string
	Score1     int
	Score2     int
	Team1Stats TeamMatchStats
	Team2Stats TeamMatchStats
}

// GroupStanding is one ranked table row, recomputed from scratch on every
// read and never persisted.
type GroupStanding struct {
	TeamID         string
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

type Group struct {
	ID        string
	Name      string
	Teams     []Team
	Matches   []Match
	Standings []GroupStanding
}

// Tournament is the root aggregate for one read: all groups, ordered by
// group ID.
type Tournament struct {
	Groups []Group
}
