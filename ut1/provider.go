// Package ut1 supplies TAI - UT1 corrections from Earth orientation records.
package ut1

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
)

var (
	ErrNoRecords         = errors.New("no UT1 records")
	ErrBeforeFirstRecord = errors.New("epoch precedes the first UT1 record")
	ErrDuplicateRecord   = errors.New("duplicate UT1 record")
)

// Record holds TAI - UT1 from Epoch until the next record.
type Record struct {
	Epoch epoch.Epoch       `toml:"epoch"`
	Delta duration.Duration `toml:"delta_tai_ut1"`
}

// Provider looks corrections up as a step function of the query epoch. It
// is immutable once built.
type Provider struct {
	records []Record
}

var _ epoch.UT1Provider = (*Provider)(nil)

// NewProvider sorts records by epoch. Two records at the same instant are
// rejected.
func NewProvider(records []Record) (*Provider, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int { return a.Epoch.Compare(b.Epoch) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Epoch.Equal(sorted[i-1].Epoch) {
			return nil, fmt.Errorf("%w at %s", ErrDuplicateRecord, sorted[i].Epoch)
		}
	}
	return &Provider{records: sorted}, nil
}

// OffsetAt returns TAI - UT1 from the last record at or before e.
func (p *Provider) OffsetAt(e epoch.Epoch) (duration.Duration, error) {
	i := sort.Search(len(p.records), func(i int) bool { return e.Before(p.records[i].Epoch) })
	if i == 0 {
		return duration.Zero, fmt.Errorf("%w (%s)", ErrBeforeFirstRecord, p.records[0].Epoch)
	}
	return p.records[i-1].Delta, nil
}

func (p *Provider) Len() int { return len(p.records) }

// Records returns a copy of the records in epoch order.
func (p *Provider) Records() []Record { return slices.Clone(p.records) }

// Span returns the first and last record epochs.
func (p *Provider) Span() (epoch.Epoch, epoch.Epoch) {
	return p.records[0].Epoch, p.records[len(p.records)-1].Epoch
}
