package duration

import (
	"math/big"
)

// Floor rounds d down to a multiple of |step|. A zero step returns d.
func (d Duration) Floor(step Duration) Duration {
	total, stepNs := d.TotalNanoseconds(), step.Abs().TotalNanoseconds()
	if stepNs.Sign() == 0 {
		return d
	}
	rem := new(big.Int).Mod(total, stepNs)
	r, _ := FromTotalNanoseconds(total.Sub(total, rem))
	return r
}

// Ceil rounds d up to a multiple of |step|. A zero step returns d.
func (d Duration) Ceil(step Duration) Duration {
	floor := d.Floor(step)
	if floor == d {
		return d
	}
	return floor.Add(step.Abs())
}

// Round rounds d to the nearest multiple of |step|, halves rounding up.
func (d Duration) Round(step Duration) Duration {
	floor := d.Floor(step)
	if floor == d {
		return d
	}
	ceil := floor.Add(step.Abs())
	if d.Sub(floor).Compare(ceil.Sub(d)) < 0 {
		return floor
	}
	return ceil
}

// Approx rounds d to its largest non-zero unit from days down to
// microseconds, e.g. 2 h 35 min becomes 3 h.
func (d Duration) Approx() Duration {
	abs := d.Abs()
	for _, u := range []Unit{Day, Hour, Minute, Second, Millisecond, Microsecond} {
		if abs.Compare(u.Duration()) >= 0 {
			return d.Round(u.Duration())
		}
	}
	return d
}
