package duration

import (
	"math/big"
)

// Parts is a Duration broken into calendar-free components. Every field
// but Sign is a magnitude.
type Parts struct {
	Sign         int
	Days         uint64
	Hours        uint64
	Minutes      uint64
	Seconds      uint64
	Milliseconds uint64
	Microseconds uint64
	Nanoseconds  uint64
}

// Duration composes p back into a Duration.
func (p Parts) Duration() Duration {
	return Compose(p.Sign, p.Days, p.Hours, p.Minutes, p.Seconds, p.Milliseconds, p.Microseconds, p.Nanoseconds)
}

// absParts returns |d| as a century count and a remainder.
func (d Duration) absParts() (uint64, uint64) {
	if d.centuries >= 0 {
		return uint64(d.centuries), d.nanoseconds
	}
	centuries := uint64(-int64(d.centuries))
	if d.nanoseconds == 0 {
		return centuries, 0
	}
	return centuries - 1, NanosecondsPerCentury - d.nanoseconds
}

// Decompose splits d into its sign and its day, hour, minute, second,
// millisecond, microsecond and nanosecond magnitudes.
func (d Duration) Decompose() Parts {
	centuries, ns := d.absParts()
	p := Parts{Sign: d.Signum()}
	p.Days = centuries*DaysPerCentury + ns/NanosecondsPerDay
	ns %= NanosecondsPerDay
	p.Hours, ns = ns/NanosecondsPerHour, ns%NanosecondsPerHour
	p.Minutes, ns = ns/NanosecondsPerMinute, ns%NanosecondsPerMinute
	p.Seconds, ns = ns/NanosecondsPerSecond, ns%NanosecondsPerSecond
	p.Milliseconds, ns = ns/NanosecondsPerMillisecond, ns%NanosecondsPerMillisecond
	p.Microseconds, p.Nanoseconds = ns/NanosecondsPerMicrosecond, ns%NanosecondsPerMicrosecond
	return p
}

// Compose is the inverse of Decompose. A negative sign negates the sum of
// the magnitudes; the result saturates at Max and Min.
func Compose(sign int, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds uint64) Duration {
	total := new(big.Int)
	for _, term := range []struct {
		n    uint64
		unit Unit
	}{
		{days, Day},
		{hours, Hour},
		{minutes, Minute},
		{seconds, Second},
		{milliseconds, Millisecond},
		{microseconds, Microsecond},
		{nanoseconds, Nanosecond},
	} {
		product := new(big.Int).SetUint64(term.n)
		total.Add(total, product.Mul(product, term.unit.bigNanoseconds()))
	}
	if sign < 0 {
		total.Neg(total)
	}
	d, _ := FromTotalNanoseconds(total)
	return d
}

// Subdivision returns the component of d in unit u, e.g. the 3 min of
// 2 h 3 min for Minute, carrying the sign of d. Centuries are not a
// component and report false.
func (d Duration) Subdivision(u Unit) (Duration, bool) {
	p := d.Decompose()
	var n uint64
	switch u {
	case Nanosecond:
		n = p.Nanoseconds
	case Microsecond:
		n = p.Microseconds
	case Millisecond:
		n = p.Milliseconds
	case Second:
		n = p.Seconds
	case Minute:
		n = p.Minutes
	case Hour:
		n = p.Hours
	case Day:
		n = p.Days
	default:
		return Zero, false
	}
	sub := u.Mul(int64(n))
	if p.Sign < 0 {
		sub = sub.Neg()
	}
	return sub, true
}

// FromTZOffset builds the offset of a timezone sign hours minutes ahead of
// (sign >= 0) or behind (sign < 0) UTC.
func FromTZOffset(sign int, hours, minutes int64) Duration {
	d := Hour.Mul(hours).Add(Minute.Mul(minutes))
	if sign < 0 {
		return d.Neg()
	}
	return d
}
