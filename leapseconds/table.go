// Package leapseconds holds the TAI-UTC correction table.
//
// A Table is immutable once built. The process-wide table lives in a Store
// and is replaced by atomically swapping in a new snapshot, so readers never
// see a partially updated table.
package leapseconds

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chrisconley/chronon/duration"
)

var (
	ErrUnordered        = errors.New("leap second records are not strictly increasing")
	ErrDecreasingOffset = errors.New("announced leap second offsets decrease")
)

// Record is one correction: from the instant TAI onward, TAI - UTC is
// Offset. Announced records are IERS integer leap seconds; the others are
// the fractional pre-1972 rates.
type Record struct {
	TAI       duration.Duration
	Offset    duration.Duration
	Announced bool
}

// NewRecord builds a record from the UTC instant at which the offset takes
// effect, counted from 1900-01-01T00:00:00 UTC.
func NewRecord(utc, offset duration.Duration, announced bool) Record {
	return Record{TAI: utc.Add(offset), Offset: offset, Announced: announced}
}

// UTC is the UTC instant, counted from 1900-01-01, at which the record
// takes effect.
func (r Record) UTC() duration.Duration { return r.TAI.Sub(r.Offset) }

type Table struct {
	records   []Record
	announced []Record
	expires   duration.Duration
	hasExpiry bool
}

// NewTable validates and wraps records, which must be strictly increasing
// in TAI. Announced offsets must never decrease.
func NewTable(records []Record) (*Table, error) {
	t := &Table{records: append([]Record(nil), records...)}
	for i, r := range t.records {
		if i > 0 && !t.records[i-1].TAI.Less(r.TAI) {
			return nil, fmt.Errorf("record %d at %s: %w", i, r.UTC(), ErrUnordered)
		}
		if !r.Announced {
			continue
		}
		if n := len(t.announced); n > 0 && r.Offset.Less(t.announced[n-1].Offset) {
			return nil, fmt.Errorf("record %d at %s: %w", i, r.UTC(), ErrDecreasingOffset)
		}
		t.announced = append(t.announced, r)
	}
	return t, nil
}

// WithExpiry returns a copy of t that reports the given UTC expiration.
func (t *Table) WithExpiry(utc duration.Duration) *Table {
	c := *t
	c.expires, c.hasExpiry = utc, true
	return &c
}

// Expiry returns the UTC instant after which the table may be missing leap
// seconds, when the source declared one.
func (t *Table) Expiry() (duration.Duration, bool) { return t.expires, t.hasExpiry }

func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of every record in TAI order.
func (t *Table) Records() []Record { return append([]Record(nil), t.records...) }

// Lookup returns the last announced record whose TAI instant is at or
// before tai.
func (t *Table) Lookup(tai duration.Duration) (Record, bool) {
	return lastAtOrBefore(t.announced, tai, func(r Record) duration.Duration { return r.TAI })
}

// LookupAll is Lookup including the fractional pre-1972 records.
func (t *Table) LookupAll(tai duration.Duration) (Record, bool) {
	return lastAtOrBefore(t.records, tai, func(r Record) duration.Duration { return r.TAI })
}

// LookupUTC returns the last announced record whose UTC instant is at or
// before utc. A UTC reading exactly on a boundary takes the new offset.
func (t *Table) LookupUTC(utc duration.Duration) (Record, bool) {
	return lastAtOrBefore(t.announced, utc, Record.UTC)
}

// InsertionAt reports whether tai falls inside an inserted leap second and
// returns the record that ends it.
func (t *Table) InsertionAt(tai duration.Duration) (Record, bool) {
	i := sort.Search(len(t.announced), func(i int) bool { return tai.Less(t.announced[i].TAI) })
	if i == 0 || i == len(t.announced) {
		return Record{}, false
	}
	next, prev := t.announced[i], t.announced[i-1]
	inserted := next.Offset.Sub(prev.Offset)
	if inserted.Signum() <= 0 || tai.Less(next.TAI.Sub(inserted)) {
		return Record{}, false
	}
	return next, true
}

func lastAtOrBefore(records []Record, at duration.Duration, key func(Record) duration.Duration) (Record, bool) {
	i := sort.Search(len(records), func(i int) bool { return at.Less(key(records[i])) })
	if i == 0 {
		return Record{}, false
	}
	return records[i-1], true
}
