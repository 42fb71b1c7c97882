package epoch

import (
	"fmt"

	"github.com/chrisconley/chronon/duration"
)

// UT1Provider supplies TAI - UT1 at an instant. Earth orientation data is
// loaded outside this package; see the ut1 package for a file backed one.
type UT1Provider interface {
	OffsetAt(e Epoch) (duration.Duration, error)
}

// ToUT1Duration returns the UT1 reading at e counted from 1900-01-01, as
// the TAI reading minus the provider's TAI - UT1 correction.
func (e Epoch) ToUT1Duration(p UT1Provider) (duration.Duration, error) {
	delta, err := p.OffsetAt(e)
	if err != nil {
		return duration.Zero, fmt.Errorf("UT1 offset at %s: %w", e, err)
	}
	return e.tai.Sub(delta), nil
}

// ToUT1 returns an epoch whose TAI reading equals the UT1 reading at e.
// It is a view for display; do not mix it with true TAI epochs.
func (e Epoch) ToUT1(p UT1Provider) (Epoch, error) {
	d, err := e.ToUT1Duration(p)
	if err != nil {
		return Epoch{}, err
	}
	return FromTAIDuration(d), nil
}

// FromUT1Duration builds the epoch whose UT1 reading is d. The correction
// is looked up at the uncorrected instant.
func FromUT1Duration(d duration.Duration, p UT1Provider) (Epoch, error) {
	delta, err := p.OffsetAt(FromTAIDuration(d))
	if err != nil {
		return Epoch{}, fmt.Errorf("UT1 offset at %s: %w", FromTAIDuration(d), err)
	}
	return FromTAIDuration(d.Add(delta)), nil
}
