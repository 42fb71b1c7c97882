package leapseconds

import (
	"sync/atomic"

	"github.com/chrisconley/chronon/duration"
)

// Provider answers the lookups the epoch conversions need. *Table and
// *Store both implement it.
type Provider interface {
	Lookup(tai duration.Duration) (Record, bool)
	LookupUTC(utc duration.Duration) (Record, bool)
	InsertionAt(tai duration.Duration) (Record, bool)
}

// Store holds the current table snapshot. Install replaces it atomically.
type Store struct {
	current atomic.Pointer[Table]
}

func NewStore(t *Table) *Store {
	s := &Store{}
	s.current.Store(t)
	return s
}

var defaultStore = NewStore(Baseline())

// Default returns the process-wide store, seeded with Baseline.
func Default() *Store { return defaultStore }

// Load returns the current snapshot.
func (s *Store) Load() *Table { return s.current.Load() }

// Install swaps in t and returns the snapshot it replaced.
func (s *Store) Install(t *Table) *Table { return s.current.Swap(t) }

func (s *Store) Lookup(tai duration.Duration) (Record, bool) {
	return s.Load().Lookup(tai)
}

func (s *Store) LookupUTC(utc duration.Duration) (Record, bool) {
	return s.Load().LookupUTC(utc)
}

func (s *Store) InsertionAt(tai duration.Duration) (Record, bool) {
	return s.Load().InsertionAt(tai)
}
