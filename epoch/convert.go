package epoch

import (
	"math/big"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/timescale"
)

// Every scale is modelled as a clock whose reading, counted from
// 1900-01-01T00:00:00 on that clock, is TAI plus an offset. A scale's
// native duration is that reading minus the scale's origin.

// clockReading returns the ts clock reading at the TAI count tai.
func clockReading(tai duration.Duration, ts timescale.TimeScale, p leapseconds.Provider) duration.Duration {
	switch ts {
	case timescale.UTC:
		if r, ok := p.Lookup(tai); ok {
			return tai.Sub(r.Offset)
		}
		return tai
	case timescale.ET:
		tt := tai.Add(timescale.TTOffset())
		return tt.Add(periodicForward(etMinusTT, tt.Sub(timescale.J2000())))
	case timescale.TDB:
		tt := tai.Add(timescale.TTOffset())
		return tt.Add(periodicForward(tdbMinusTT, tt.Sub(timescale.J2000())))
	default:
		offset, _ := ts.FixedOffset()
		return tai.Add(offset)
	}
}

// taiFromClock inverts clockReading. A UTC reading on or after a leap second
// boundary takes the new offset, so the inserted second itself is only
// reachable through its 23:59:60 Gregorian label.
func taiFromClock(clock duration.Duration, ts timescale.TimeScale, p leapseconds.Provider) duration.Duration {
	switch ts {
	case timescale.UTC:
		if r, ok := p.LookupUTC(clock); ok {
			return clock.Add(r.Offset)
		}
		return clock
	case timescale.ET:
		tt := clock.Sub(periodicInverse(etMinusTT, clock.Sub(timescale.J2000())))
		return tt.Sub(timescale.TTOffset())
	case timescale.TDB:
		tt := clock.Sub(periodicInverse(tdbMinusTT, clock.Sub(timescale.J2000())))
		return tt.Sub(timescale.TTOffset())
	default:
		offset, _ := ts.FixedOffset()
		return clock.Sub(offset)
	}
}

func provider(p leapseconds.Provider) leapseconds.Provider {
	if p == nil {
		return leapseconds.Default()
	}
	return p
}

// FromDuration builds the epoch whose native ts duration is d: elapsed
// time since 1900-01-01 for TAI, TT and UTC, since 1980-01-06 for GPST and
// QZSST, since 1999-08-22 for GST, since 2006-01-01 for BDT and since J2000
// for ET and TDB. UTC uses the default leap second store.
func FromDuration(d duration.Duration, ts timescale.TimeScale) Epoch {
	return FromDurationWith(d, ts, nil)
}

// FromDurationWith is FromDuration with an explicit leap second provider.
// A nil provider selects the default store.
func FromDurationWith(d duration.Duration, ts timescale.TimeScale, p leapseconds.Provider) Epoch {
	return Epoch{tai: taiFromClock(d.Add(ts.Origin()), ts, provider(p)), scale: ts}
}

// ToDuration returns the native ts duration of e.
func (e Epoch) ToDuration(ts timescale.TimeScale) duration.Duration {
	return e.ToDurationWith(ts, nil)
}

// ToDurationWith is ToDuration with an explicit leap second provider.
func (e Epoch) ToDurationWith(ts timescale.TimeScale, p leapseconds.Provider) duration.Duration {
	return clockReading(e.tai, ts, provider(p)).Sub(ts.Origin())
}

// ToDurationSince1900 returns the ts clock reading counted from
// 1900-01-01T00:00:00 on that clock, whatever the scale's own origin.
func (e Epoch) ToDurationSince1900(ts timescale.TimeScale) duration.Duration {
	return clockReading(e.tai, ts, provider(nil))
}

func FromUTCDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.UTC) }
func FromTTDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.TT) }
func FromETDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.ET) }
func FromTDBDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.TDB) }
func FromGPSTDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.GPST) }
func FromGSTDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.GST) }
func FromBDTDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.BDT) }
func FromQZSSTDuration(d duration.Duration) Epoch { return FromDuration(d, timescale.QZSST) }

func FromTAISeconds(seconds float64) Epoch { return FromSeconds(seconds, timescale.TAI) }
func FromTAIDays(days float64) Epoch { return FromDays(days, timescale.TAI) }
func FromUTCSeconds(seconds float64) Epoch { return FromSeconds(seconds, timescale.UTC) }
func FromUTCDays(days float64) Epoch { return FromDays(days, timescale.UTC) }
func FromGPSTSeconds(seconds float64) Epoch { return FromSeconds(seconds, timescale.GPST) }
func FromGPSTNanoseconds(ns uint64) Epoch { return FromNanoseconds(ns, timescale.GPST) }

// FromSeconds builds an epoch from native ts seconds.
func FromSeconds(seconds float64, ts timescale.TimeScale) Epoch {
	return FromDuration(duration.FromSeconds(seconds), ts)
}

// FromDays builds an epoch from native ts days.
func FromDays(days float64, ts timescale.TimeScale) Epoch {
	return FromDuration(duration.FromDays(days), ts)
}

// FromNanoseconds builds an epoch from native ts nanoseconds, the usual
// GNSS receiver representation.
func FromNanoseconds(ns uint64, ts timescale.TimeScale) Epoch {
	return FromDuration(duration.FromParts(0, ns), ts)
}

// ToSeconds returns the native ts duration of e in seconds.
func (e Epoch) ToSeconds(ts timescale.TimeScale) float64 {
	return e.ToDuration(ts).ToSeconds()
}

// ToDays returns the native ts duration of e in days.
func (e Epoch) ToDays(ts timescale.TimeScale) float64 {
	return e.ToDuration(ts).ToUnit(duration.Day)
}

const (
	mjd1900 = 15_020
	jdMJD   = 2_400_000.5
)

// FromMJD builds an epoch from a Modified Julian Date on the ts clock.
func FromMJD(days float64, ts timescale.TimeScale) Epoch {
	return fromMJDDuration(duration.FromDays(days), ts)
}

func fromMJDDuration(mjd duration.Duration, ts timescale.TimeScale) Epoch {
	clock := mjd.Sub(duration.Day.Mul(mjd1900))
	return FromDuration(clock.Sub(ts.Origin()), ts)
}

// ToMJD returns the Modified Julian Date of e on the ts clock.
func (e Epoch) ToMJD(ts timescale.TimeScale) float64 {
	return e.ToDurationSince1900(ts).ToUnit(duration.Day) + mjd1900
}

// FromJDE builds an epoch from a Julian Date on the ts clock.
func FromJDE(days float64, ts timescale.TimeScale) Epoch {
	return fromMJDDuration(duration.FromDays(days).Sub(duration.FromDays(jdMJD)), ts)
}

// ToJDE returns the Julian Date of e on the ts clock.
func (e Epoch) ToJDE(ts timescale.TimeScale) float64 {
	return e.ToMJD(ts) + jdMJD
}

// unixOrigin is 1970-01-01T00:00:00 counted from 1900-01-01 on the UTC clock.
var unixOrigin = duration.Second.Mul(2_208_988_800)

// FromUnixDuration builds an epoch from the UTC time elapsed since
// 1970-01-01T00:00:00 UTC.
func FromUnixDuration(d duration.Duration) Epoch {
	return FromUTCDuration(d.Add(unixOrigin))
}

func FromUnixSeconds(seconds float64) Epoch {
	return FromUnixDuration(duration.FromSeconds(seconds))
}

func FromUnixMilliseconds(ms float64) Epoch {
	return FromUnixDuration(duration.FromMilliseconds(ms))
}

// ToUnixDuration returns the UTC time elapsed since 1970-01-01T00:00:00 UTC.
func (e Epoch) ToUnixDuration() duration.Duration {
	return e.ToDuration(timescale.UTC).Sub(unixOrigin)
}

func (e Epoch) ToUnixSeconds() float64 { return e.ToUnixDuration().ToSeconds() }

func (e Epoch) ToUnixMilliseconds() float64 { return e.ToUnixDuration().ToUnit(duration.Millisecond) }

// FromTimeOfWeek builds an epoch from a week counter and the nanoseconds
// into that week, counted from the ts origin. This is how GNSS vehicles
// broadcast GPST, GST and BDT.
func FromTimeOfWeek(week uint32, ns uint64, ts timescale.TimeScale) Epoch {
	d := duration.Day.Mul(7 * int64(week)).Add(duration.FromParts(0, ns))
	return FromDuration(d, ts)
}

// TimeOfWeek returns the week counter and the nanoseconds into the week of
// e on its display scale. Epochs before the origin have a negative week.
func (e Epoch) TimeOfWeek() (int64, uint64) {
	weekNs := new(big.Int).SetUint64(7 * duration.NanosecondsPerDay)
	weeks, into := new(big.Int).DivMod(e.ToDuration(e.scale).TotalNanoseconds(), weekNs, new(big.Int))
	return weeks.Int64(), into.Uint64()
}

// LeapSeconds returns TAI - UTC in seconds at e from announced leap
// seconds, or from the fractional pre-1972 rates too when iersOnly is false.
func (e Epoch) LeapSeconds(iersOnly bool) (float64, bool) {
	table := leapseconds.Default().Load()
	lookup := table.LookupAll
	if iersOnly {
		lookup = table.Lookup
	}
	r, ok := lookup(e.tai)
	if !ok {
		return 0, false
	}
	return r.Offset.ToSeconds(), true
}
