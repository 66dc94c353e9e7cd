// Package rowcache holds recently fetched spreadsheet tabs in memory so a
// burst of dashboard requests costs one upstream read per tab.
package rowcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	rows      [][]string
	expiresAt time.Time
}

type inflight struct {
	wg   sync.WaitGroup
	rows [][]string
	err  error
}

// Store is a TTL cache of raw tab contents keyed by tab name. Concurrent
// loads of the same tab collapse into one upstream call.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	flights map[string]*inflight
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		flights: make(map[string]*inflight),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached rows for a tab when the entry is still fresh.
func (s *Store) Get(tab string) ([][]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[tab]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		delete(s.entries, tab)
		return nil, false
	}
	return e.rows, true
}

// Invalidate drops a tab, forcing the next read through the loader. Used
// after a write-back so the appended row shows up immediately.
func (s *Store) Invalidate(tab string) {
	s.mu.Lock()
	delete(s.entries, tab)
	s.mu.Unlock()
}

// GetOrLoad returns the cached rows for a tab or loads them once, no matter
// how many goroutines ask at the same time. Load errors are shared with
// every waiter and never cached.
func (s *Store) GetOrLoad(ctx context.Context, tab string, loader func(context.Context) ([][]string, error)) ([][]string, error) {
	s.mu.Lock()
	if e, ok := s.entries[tab]; ok && (s.ttl <= 0 || e.expiresAt.After(s.now())) {
		s.mu.Unlock()
		return e.rows, nil
	}
	if f, ok := s.flights[tab]; ok {
		s.mu.Unlock()
		f.wg.Wait()
		return f.rows, f.err
	}

	f := &inflight{}
	f.wg.Add(1)
	s.flights[tab] = f
	s.mu.Unlock()

	f.rows, f.err = loader(ctx)

	s.mu.Lock()
	delete(s.flights, tab)
	if f.err == nil {
		s.entries[tab] = entry{rows: f.rows, expiresAt: s.now().Add(s.ttl)}
	}
	s.mu.Unlock()
	f.wg.Done()

	return f.rows, f.err
}
