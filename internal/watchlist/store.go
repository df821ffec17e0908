// Package watchlist owns the set of tracked symbols and their display rows.
package watchlist

import (
	"sync"

	"github.com/mhsendur/StockPriceTracker/internal/model"
)

// Store holds the insertion-ordered symbol list, the symbol to row-handle
// mapping, and the chart selection. Tracked symbols and live rows stay in
// one-to-one correspondence across every operation.
type Store struct {
	mu       sync.Mutex
	order    []string
	handles  map[string]model.RowHandle
	selected string // empty means no selection
	lastID   model.RowHandle
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{handles: make(map[string]model.RowHandle)}
}

// Add tracks a new symbol and returns its freshly allocated row handle.
// The raw input is case-normalized first; adding an empty or already-tracked
// symbol is a silent no-op (ok=false). The first symbol ever added becomes
// the selection.
func (s *Store) Add(raw string) (h model.RowHandle, ok bool) {
	sym := model.NormalizeSymbol(raw)
	if sym == "" {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.handles[sym]; exists {
		return 0, false
	}
	s.lastID++
	s.handles[sym] = s.lastID
	s.order = append(s.order, sym)
	if s.selected == "" {
		s.selected = sym
	}
	return s.lastID, true
}

// Remove untracks a symbol and returns the handle of its now-dead row.
// Removing an absent symbol is a silent no-op (ok=false). If the removed
// symbol was selected, the first remaining symbol in insertion order becomes
// the selection, or no symbol when the watchlist is now empty.
func (s *Store) Remove(raw string) (h model.RowHandle, ok bool) {
	sym := model.NormalizeSymbol(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok = s.handles[sym]
	if !ok {
		return 0, false
	}
	delete(s.handles, sym)
	for i, o := range s.order {
		if o == sym {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == sym {
		if len(s.order) > 0 {
			s.selected = s.order[0]
		} else {
			s.selected = ""
		}
	}
	return h, true
}

// Symbols returns the tracked symbols in insertion order.
func (s *Store) Symbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Handle returns the row handle for a tracked symbol.
func (s *Store) Handle(symbol string) (model.RowHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[model.NormalizeSymbol(symbol)]
	return h, ok
}

// Select makes a tracked symbol the chart selection. Selecting an untracked
// symbol is a no-op (ok=false).
func (s *Store) Select(raw string) bool {
	sym := model.NormalizeSymbol(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handles[sym]; !ok {
		return false
	}
	s.selected = sym
	return true
}

// Selection returns the currently charted symbol, or empty when the
// watchlist is empty.
func (s *Store) Selection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Len returns the number of tracked symbols.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
