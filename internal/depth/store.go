package depth

import (
	"sort"
	"sync"
	"time"

	md "github.com/echenim/bookview/internal/models"
	"github.com/sirupsen/logrus"
)

// Store keeps the latest snapshot per market. It replaces any ambient market
// data state: handlers read a snapshot out of it and pass it to the formatter
// explicitly. Nothing is persisted.
type Store struct {
	mu    sync.RWMutex
	books map[md.Market]md.Snapshot
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		books: make(map[md.Market]md.Snapshot),
		now:   time.Now,
	}
}

// Put replaces the snapshot held for market. The store keeps its own copy.
func (s *Store) Put(market md.Market, snap md.Snapshot) md.Snapshot {
	snap = snap.Clone()
	snap.Market = market
	if snap.UpdatedAt.IsZero() {
		snap.UpdatedAt = s.now().UTC()
	}

	s.mu.Lock()
	s.books[market] = snap
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"market": market,
		"asks":   len(snap.Asks),
		"bids":   len(snap.Bids),
	}).Debug("snapshot stored")

	return snap.Clone()
}

// Get returns a copy of the snapshot for market.
func (s *Store) Get(market md.Market) (md.Snapshot, bool) {
	s.mu.RLock()
	snap, ok := s.books[market]
	s.mu.RUnlock()

	if !ok {
		return md.Snapshot{}, false
	}
	return snap.Clone(), true
}

// Delete drops the market. It reports whether anything was removed.
func (s *Store) Delete(market md.Market) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[market]; !ok {
		return false
	}
	delete(s.books, market)

	return true
}

// Markets lists the markets currently held, sorted by name.
func (s *Store) Markets() []md.Market {
	s.mu.RLock()
	out := make([]md.Market, 0, len(s.books))
	for m := range s.books {
		out = append(out, m)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
