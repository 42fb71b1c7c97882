package duration

import (
	"math/big"
)

// Unit is a fixed length of time that Durations can be built from and
// expressed in.
type Unit uint8

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Century
)

// Units lists every Unit from largest to smallest.
var Units = []Unit{Century, Day, Hour, Minute, Second, Millisecond, Microsecond, Nanosecond}

func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "μs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	case Minute:
		return "min"
	case Hour:
		return "h"
	case Day:
		return "days"
	case Century:
		return "centuries"
	default:
		return "unknown"
	}
}

// Duration returns one u. One century is the only unit that does not fit
// in the nanosecond remainder.
func (u Unit) Duration() Duration {
	if u == Century {
		return Duration{centuries: 1}
	}
	return Duration{nanoseconds: u.nanoseconds()}
}

func (u Unit) nanoseconds() uint64 {
	switch u {
	case Microsecond:
		return NanosecondsPerMicrosecond
	case Millisecond:
		return NanosecondsPerMillisecond
	case Second:
		return NanosecondsPerSecond
	case Minute:
		return NanosecondsPerMinute
	case Hour:
		return NanosecondsPerHour
	case Day:
		return NanosecondsPerDay
	case Century:
		return NanosecondsPerCentury
	default:
		return 1
	}
}

func (u Unit) bigNanoseconds() *big.Int {
	return new(big.Int).SetUint64(u.nanoseconds())
}

// InSeconds returns the length of one u in seconds.
func (u Unit) InSeconds() float64 {
	return float64(u.nanoseconds()) / float64(NanosecondsPerSecond)
}

// FromSeconds returns how many u fit in one second.
func (u Unit) FromSeconds() float64 {
	return 1 / u.InSeconds()
}

// CheckedMul returns q units.
func (u Unit) CheckedMul(q int64) (Duration, error) {
	return u.Duration().CheckedMul(q)
}

// Mul returns q units, saturating at Max and Min.
func (u Unit) Mul(q int64) Duration {
	return u.Duration().Mul(q)
}

// CheckedMulFloat returns q units rounded half to even onto the nanosecond
// grid. For an integral q it agrees exactly with CheckedMul.
func (u Unit) CheckedMulFloat(q float64) (Duration, error) {
	return u.Duration().CheckedMulFloat(q)
}

// MulFloat returns q units, saturating at Max and Min.
func (u Unit) MulFloat(q float64) Duration {
	return u.Duration().MulFloat(q)
}

// Freq is a frequency whose reciprocal is a Duration.
type Freq uint8

const (
	GigaHertz Freq = iota
	MegaHertz
	KiloHertz
	Hertz
)

func (f Freq) String() string {
	switch f {
	case GigaHertz:
		return "GHz"
	case MegaHertz:
		return "MHz"
	case KiloHertz:
		return "kHz"
	default:
		return "Hz"
	}
}

// Period returns the length of one cycle.
func (f Freq) Period() Duration {
	switch f {
	case GigaHertz:
		return Nanosecond.Duration()
	case MegaHertz:
		return Microsecond.Duration()
	case KiloHertz:
		return Millisecond.Duration()
	default:
		return Second.Duration()
	}
}

// CyclesPeriod returns the period of q of f, i.e. 1/(q·f).
func (f Freq) CyclesPeriod(q float64) Duration {
	return f.Period().DivFloat(q)
}

// FromSeconds builds a Duration from float seconds. The shortest decimal
// form of seconds is rounded half to even onto the nanosecond grid; values
// beyond the range saturate to Max or Min.
func FromSeconds(seconds float64) Duration {
	return Second.MulFloat(seconds)
}

// TryFromSeconds is FromSeconds reporting saturation as ErrOverflow or
// ErrUnderflow.
func TryFromSeconds(seconds float64) (Duration, error) {
	return Second.CheckedMulFloat(seconds)
}

func FromDays(days float64) Duration { return Day.MulFloat(days) }

func FromHours(hours float64) Duration { return Hour.MulFloat(hours) }

func FromMinutes(minutes float64) Duration { return Minute.MulFloat(minutes) }

func FromMilliseconds(ms float64) Duration { return Millisecond.MulFloat(ms) }

func FromMicroseconds(us float64) Duration { return Microsecond.MulFloat(us) }

func FromNanoseconds(ns float64) Duration { return Nanosecond.MulFloat(ns) }
