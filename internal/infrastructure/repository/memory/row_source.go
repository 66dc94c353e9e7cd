// Package memory holds the seeded fallback dataset served when the
// spreadsheet backend is unreachable.
package memory

import (
	"context"
	"sync"

	"github.com/calcettolab/torneo-api/internal/domain/sheet"
)

// RowSource serves raw tab contents from memory. It backs the dashboard
// with demo data during outages and the test suites with fixtures.
type RowSource struct {
	mu   sync.RWMutex
	tabs map[string][][]string
}

func NewRowSource(tabs map[string][][]string) *RowSource {
	copied := make(map[string][][]string, len(tabs))
	for tab, rows := range tabs {
		copied[tab] = append([][]string(nil), rows...)
	}
	return &RowSource{tabs: copied}
}

// NewSeeded returns a source preloaded with the demo tournament.
func NewSeeded() *RowSource {
	return NewRowSource(seedTabs())
}

func (r *RowSource) FetchTab(_ context.Context, tab string) ([][]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, ok := r.tabs[tab]
	if !ok {
		return [][]string{}, nil
	}
	return append([][]string(nil), rows...), nil
}

func (r *RowSource) AppendRow(_ context.Context, tab string, row []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tabs == nil {
		r.tabs = make(map[string][][]string)
	}
	r.tabs[tab] = append(r.tabs[tab], append([]string(nil), row...))
	return nil
}

var _ sheet.RowSource = (*RowSource)(nil)
var _ sheet.RowSink = (*RowSource)(nil)
