// Package epoch models absolute instants and converts them between time
// scales.
//
// An Epoch is a Duration counted from 1900-01-01T00:00:00 TAI. Every scale
// specific view is computed from that single value on demand. The epoch's
// time scale only selects how it is displayed; Equal and Compare ignore it.
package epoch

import (
	"errors"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/timescale"
)

var (
	ErrInvalidGregorianDate = errors.New("invalid Gregorian date")
	ErrSystemTime           = errors.New("system time unavailable")
)

type Epoch struct {
	tai   duration.Duration
	scale timescale.TimeScale
}

// FromTAIDuration builds the epoch d after 1900-01-01T00:00:00 TAI.
func FromTAIDuration(d duration.Duration) Epoch {
	return Epoch{tai: d, scale: timescale.TAI}
}

// TAIDuration returns the elapsed TAI time since 1900-01-01T00:00:00 TAI.
func (e Epoch) TAIDuration() duration.Duration { return e.tai }

// TimeScale returns the scale e is displayed in.
func (e Epoch) TimeScale() timescale.TimeScale { return e.scale }

// InTimeScale returns the same instant displayed in ts.
func (e Epoch) InTimeScale(ts timescale.TimeScale) Epoch {
	e.scale = ts
	return e
}

// Add returns e shifted by d. The arithmetic happens on the TAI count, so
// leap seconds inside the interval are counted.
func (e Epoch) Add(d duration.Duration) Epoch {
	e.tai = e.tai.Add(d)
	return e
}

// Sub returns the elapsed time e - o.
func (e Epoch) Sub(o Epoch) duration.Duration {
	return e.tai.Sub(o.tai)
}

func (e Epoch) Compare(o Epoch) int { return e.tai.Compare(o.tai) }

func (e Epoch) Equal(o Epoch) bool { return e.tai == o.tai }

func (e Epoch) Before(o Epoch) bool { return e.tai.Less(o.tai) }

func (e Epoch) After(o Epoch) bool { return o.tai.Less(e.tai) }

// Floor rounds e down to a multiple of step on its display scale.
func (e Epoch) Floor(step duration.Duration) Epoch {
	return FromDuration(e.ToDuration(e.scale).Floor(step), e.scale)
}

// Ceil rounds e up to a multiple of step on its display scale.
func (e Epoch) Ceil(step duration.Duration) Epoch {
	return FromDuration(e.ToDuration(e.scale).Ceil(step), e.scale)
}

// Round rounds e to the nearest multiple of step on its display scale.
func (e Epoch) Round(step duration.Duration) Epoch {
	return FromDuration(e.ToDuration(e.scale).Round(step), e.scale)
}

// Min returns the earlier of a and b.
func Min(a, b Epoch) Epoch {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Epoch) Epoch {
	if a.Before(b) {
		return b
	}
	return a
}
