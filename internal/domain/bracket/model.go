package bracket

// Round and side literals as they appear in the Bracket sheet tab.
const (
	RoundQuarti     = "Quarti"
	RoundSemifinali = "Semifinali"
	RoundFinale     = "Finale"

	SideLeft  = "left"
	SideRight = "right"
)

type Team struct {
	ID    string
	Name  string
	Abbr  string
	Emoji string
}

// Match is one knockout fixture. Team slots are nil while the opponent is
// still undetermined; scores are nil until the match has been played, so a
// 0-0 result stays distinguishable from "not played yet".
type Match struct {
	ID     string
	Team1  *Team
	Team2  *Team
	Score1 *int
	Score2 *int
	Played bool
}

type Round struct {
	ID      string
	Name    string
	Matches []Match
}

// Bracket is the fixed 8-team single-elimination board: two symmetric sides
// of quarterfinals and semifinals converging on one final.
type Bracket struct {
	LeftRounds  []Round
	RightRounds []Round
	Final       Match
}
