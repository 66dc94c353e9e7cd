package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

var errSourceDown = errors.New("source down")

type stubSource struct {
	mu   sync.Mutex
	tabs map[string][][]string
	err  error

	fetchCalls  int
	appendCalls [][]string
}

func newStubSource() *stubSource {
	return &stubSource{tabs: map[string][][]string{
		sheet.TabTeams: {
			{"T1", "Draghi", "🐉", "Aldo", "Bea", "G1", "Girone A"},
			{"T2", "Lupi", "🐺", "Carla", "Dino", "G1", "Girone A"},
			{"T3", "Falchi", "🦅", "Elsa", "Fabio", "G2", "Girone B"},
			{"T4", "Orsi", "🐻", "Gino", "Hana", "G2", "Girone B"},
		},
		sheet.TabMatches: {
			{"A1", "T1", "Draghi", "T2", "Lupi", "12", "10", "2026-05-10", "1", "8", "4", "0", "0", "0", "7", "3", "0", "0"},
			{"A2", "T3", "Falchi", "T4", "Orsi", "3", "3", "2026-05-03", "0", "2", "1", "0", "0", "0", "1", "2", "0", "0"},
			{"A3", "T1", "Draghi", "T3", "Falchi", "4", "1", "2026-05-10"},
			{"A4", "T2", "Lupi", "T4", "Orsi", "", "", ""},
			{"A5", "T9", "", "T1", "", "2", "2", "2026-05-17"},
		},
		sheet.TabBracket: {
			{"Q1", "T1", "T4", "5", "3", "TRUE", "Quarti", "left"},
			{"Q2", "T2", "T3", "0", "0", "FALSE", "Quarti", "right"},
			{"S1", "", "", "0", "0", "FALSE", "Semifinali", "left"},
			{"F1", "", "", "0", "0", "FALSE", "Finale", ""},
		},
	}}
}

func (s *stubSource) FetchTab(_ context.Context, tab string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.tabs[tab], nil
}

func (s *stubSource) AppendRow(_ context.Context, tab string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.tabs[tab] = append(s.tabs[tab], row)
	s.appendCalls = append(s.appendCalls, row)
	return nil
}
