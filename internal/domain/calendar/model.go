package calendar

import (
	"time"

	"github.com/calcettolab/torneo-api/internal/domain/tournament"
)

// Status is the display state of a calendar match. Rows read from the sheet
// are always full-time; the remaining values exist for datasets that carry
// scheduled or live matches.
type Status string

const (
	StatusFullTime  Status = "Fischio finale"
	StatusLive      Status = "In diretta"
	StatusScheduled Status = "Da giocare"
	StatusPostponed Status = "Rinviata"
)

type Match struct {
	ID         string
	Team1Name  string
	Team2Name  string
	Score1     int
	Score2     int
	Status     Status
	Team1Stats tournament.TeamMatchStats
	Team2Stats tournament.TeamMatchStats
}

// Day groups the matches played on one date. RoundLabel is positional
// ("Giornata N"), assigned by the day's rank in the sorted date sequence.
type Day struct {
	ID         string
	Date       time.Time
	DateLabel  string
	RoundLabel string
	Matches    []Match
}
