package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/calcettolab/torneo-api/internal/domain/calendar"
	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

var italianMonths = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// CalendarService turns the match list into match days ordered by date.
type CalendarService struct {
	fetcher *RowFetcher
}

func NewCalendarService(fetcher *RowFetcher) *CalendarService {
	return &CalendarService{fetcher: fetcher}
}

func (s *CalendarService) Days(ctx context.Context) ([]calendar.Day, error) {
	ctx, span := startUsecaseSpan(ctx, "CalendarService.Days")
	defer span.End()

	snap, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return buildCalendar(snap.Teams, snap.Matches), nil
}

func buildCalendar(teamRows, matchRows [][]string) []calendar.Day {
	known := teamIndex(assembleTeams(teamRows))

	teamName := func(id string) string {
		if e, ok := known[id]; ok {
			return e.team.Name
		}
		// Unknown references render as the raw id rather than vanishing.
		return id
	}

	type bucket struct {
		key     string
		date    time.Time
		matches []calendar.Match
	}

	dayAt := make(map[string]int)
	days := make([]bucket, 0)
	for _, row := range matchRows {
		mr := sheet.ParseMatchRow(row)
		if mr.ID == "" || mr.Date == "" {
			continue
		}
		// Days bucket on the exact cell value. ISO dates keep lexicographic
		// order chronological, and a malformed date still gets a day.
		i, ok := dayAt[mr.Date]
		if !ok {
			i = len(days)
			dayAt[mr.Date] = i
			date, _ := time.Parse("2006-01-02", mr.Date)
			days = append(days, bucket{key: mr.Date, date: date})
		}
		days[i].matches = append(days[i].matches, calendar.Match{
			ID:         mr.ID,
			Team1Name:  teamName(mr.Team1ID),
			Team2Name:  teamName(mr.Team2ID),
			Score1:     mr.Score1,
			Score2:     mr.Score2,
			Status:     calendar.StatusFullTime,
			Team1Stats: sheetStats(mr.Team1Stats),
			Team2Stats: sheetStats(mr.Team2Stats),
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].key < days[j].key
	})

	out := make([]calendar.Day, 0, len(days))
	for i, d := range days {
		out = append(out, calendar.Day{
			ID:         fmt.Sprintf("day-%d", i+1),
			Date:       d.date,
			DateLabel:  dateLabel(d.key, d.date),
			RoundLabel: fmt.Sprintf("Giornata %d", i+1),
			Matches:    d.matches,
		})
	}
	return out
}

// dateLabel renders the long Italian form, or the raw cell when the date
// never parsed.
func dateLabel(raw string, t time.Time) string {
	if t.IsZero() {
		return raw
	}
	return fmt.Sprintf("%d %s %d", t.Day(), italianMonths[t.Month()-1], t.Year())
}
