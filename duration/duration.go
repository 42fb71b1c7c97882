// Package duration implements a fixed-point signed time interval with
// nanosecond resolution over a range of ±32,768 centuries.
//
// A Duration is a whole number of centuries plus a nanosecond remainder in
// [0, NanosecondsPerCentury). The remainder is always non-negative and the
// sign lives in the century field, so every value has exactly one
// representation and two Durations are equal iff their fields are equal.
package duration

import (
	"errors"
	"math"
	"math/big"
)

const (
	DaysPerCentury   = 36525
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400

	NanosecondsPerMicrosecond uint64 = 1_000
	NanosecondsPerMillisecond uint64 = 1_000_000
	NanosecondsPerSecond      uint64 = 1_000_000_000
	NanosecondsPerMinute      uint64 = SecondsPerMinute * NanosecondsPerSecond
	NanosecondsPerHour        uint64 = SecondsPerHour * NanosecondsPerSecond
	NanosecondsPerDay         uint64 = SecondsPerDay * NanosecondsPerSecond
	NanosecondsPerCentury     uint64 = DaysPerCentury * NanosecondsPerDay

	SecondsPerCentury float64 = DaysPerCentury * SecondsPerDay
)

var (
	ErrOverflow  = errors.New("duration overflow")
	ErrUnderflow = errors.New("duration underflow")
)

type Duration struct {
	centuries   int16
	nanoseconds uint64
}

var (
	Zero = Duration{}
	// Max and Min are the saturation sentinels. Arithmetic that leaves the
	// representable range returns one of them.
	Max         = Duration{centuries: math.MaxInt16, nanoseconds: NanosecondsPerCentury - 1}
	Min         = Duration{centuries: math.MinInt16}
	MinPositive = Duration{nanoseconds: 1}
	MinNegative = Duration{centuries: -1, nanoseconds: NanosecondsPerCentury - 1}

	// Epsilon is the resolution of the representation.
	Epsilon = MinPositive
)

var (
	bigCentury = new(big.Int).SetUint64(NanosecondsPerCentury)
	bigMaxNs   = Max.TotalNanoseconds()
	bigMinNs   = Min.TotalNanoseconds()
)

// FromParts builds a Duration from a century count and a nanosecond
// remainder, carrying any whole centuries out of the remainder. The result
// saturates at Max.
func FromParts(centuries int16, nanoseconds uint64) Duration {
	d, _ := fromCenturies(int64(centuries)+int64(nanoseconds/NanosecondsPerCentury), nanoseconds%NanosecondsPerCentury)
	return d
}

// FromTruncatedNanoseconds builds a Duration from a signed nanosecond count.
func FromTruncatedNanoseconds(ns int64) Duration {
	if ns >= 0 {
		u := uint64(ns)
		return Duration{centuries: int16(u / NanosecondsPerCentury), nanoseconds: u % NanosecondsPerCentury}
	}
	abs := uint64(-(ns + 1)) + 1
	centuries, rem := int16(abs/NanosecondsPerCentury), abs%NanosecondsPerCentury
	if rem == 0 {
		return Duration{centuries: -centuries}
	}
	return Duration{centuries: -centuries - 1, nanoseconds: NanosecondsPerCentury - rem}
}

// FromTotalNanoseconds builds a Duration from an arbitrary precision
// nanosecond count. Out of range values return the saturated sentinel
// along with ErrOverflow or ErrUnderflow.
func FromTotalNanoseconds(ns *big.Int) (Duration, error) {
	if ns.Cmp(bigMaxNs) > 0 {
		return Max, ErrOverflow
	}
	if ns.Cmp(bigMinNs) < 0 {
		return Min, ErrUnderflow
	}
	q, m := new(big.Int).DivMod(ns, bigCentury, new(big.Int))
	return Duration{centuries: int16(q.Int64()), nanoseconds: m.Uint64()}, nil
}

func fromCenturies(centuries int64, nanoseconds uint64) (Duration, error) {
	switch {
	case centuries > math.MaxInt16:
		return Max, ErrOverflow
	case centuries < math.MinInt16:
		return Min, ErrUnderflow
	}
	return Duration{centuries: int16(centuries), nanoseconds: nanoseconds}, nil
}

// ToParts returns the century count and the nanosecond remainder.
func (d Duration) ToParts() (int16, uint64) {
	return d.centuries, d.nanoseconds
}

func (d Duration) Centuries() int16 { return d.centuries }

func (d Duration) NanosecondsRemainder() uint64 { return d.nanoseconds }

// TotalNanoseconds returns the exact signed nanosecond count.
func (d Duration) TotalNanoseconds() *big.Int {
	total := big.NewInt(int64(d.centuries))
	total.Mul(total, bigCentury)
	return total.Add(total, new(big.Int).SetUint64(d.nanoseconds))
}

// TruncatedNanoseconds returns the nanosecond count when it fits in an
// int64, and ErrOverflow or ErrUnderflow with the clamped value otherwise.
func (d Duration) TruncatedNanoseconds() (int64, error) {
	total := d.TotalNanoseconds()
	switch {
	case total.IsInt64():
		return total.Int64(), nil
	case total.Sign() > 0:
		return math.MaxInt64, ErrOverflow
	default:
		return math.MinInt64, ErrUnderflow
	}
}

func (d Duration) IsZero() bool { return d == Zero }

func (d Duration) IsNegative() bool { return d.centuries < 0 }

// Signum returns -1, 0 or +1.
func (d Duration) Signum() int {
	switch {
	case d.centuries < 0:
		return -1
	case d == Zero:
		return 0
	default:
		return 1
	}
}

// IsSaturated reports whether d is one of the Max or Min sentinels.
func (d Duration) IsSaturated() bool { return d == Max || d == Min }

// Compare returns -1, 0 or +1 as d is less than, equal to or greater than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.centuries < o.centuries:
		return -1
	case d.centuries > o.centuries:
		return 1
	case d.nanoseconds < o.nanoseconds:
		return -1
	case d.nanoseconds > o.nanoseconds:
		return 1
	default:
		return 0
	}
}

func (d Duration) Equal(o Duration) bool { return d == o }

func (d Duration) Less(o Duration) bool { return d.Compare(o) < 0 }

// CheckedAdd returns d+o, or the saturated sentinel with ErrOverflow or
// ErrUnderflow.
func (d Duration) CheckedAdd(o Duration) (Duration, error) {
	centuries := int64(d.centuries) + int64(o.centuries)
	ns := d.nanoseconds + o.nanoseconds
	if ns >= NanosecondsPerCentury {
		ns -= NanosecondsPerCentury
		centuries++
	}
	return fromCenturies(centuries, ns)
}

// Add returns d+o, saturating at Max and Min.
func (d Duration) Add(o Duration) Duration {
	r, _ := d.CheckedAdd(o)
	return r
}

// CheckedSub returns d-o, or the saturated sentinel with ErrOverflow or
// ErrUnderflow.
func (d Duration) CheckedSub(o Duration) (Duration, error) {
	centuries := int64(d.centuries) - int64(o.centuries)
	var ns uint64
	if d.nanoseconds >= o.nanoseconds {
		ns = d.nanoseconds - o.nanoseconds
	} else {
		ns = d.nanoseconds + NanosecondsPerCentury - o.nanoseconds
		centuries--
	}
	return fromCenturies(centuries, ns)
}

// Sub returns d-o, saturating at Max and Min.
func (d Duration) Sub(o Duration) Duration {
	r, _ := d.CheckedSub(o)
	return r
}

// CheckedNeg returns -d. Negating Min overflows.
func (d Duration) CheckedNeg() (Duration, error) {
	if d.nanoseconds == 0 {
		return fromCenturies(-int64(d.centuries), 0)
	}
	return fromCenturies(-int64(d.centuries)-1, NanosecondsPerCentury-d.nanoseconds)
}

// Neg returns -d, saturating at Max.
func (d Duration) Neg() Duration {
	r, _ := d.CheckedNeg()
	return r
}

// Abs returns |d|, saturating at Max.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// CheckedMul multiplies d by an integer factor.
func (d Duration) CheckedMul(q int64) (Duration, error) {
	total := d.TotalNanoseconds()
	return FromTotalNanoseconds(total.Mul(total, big.NewInt(q)))
}

// Mul multiplies d by an integer factor, saturating at Max and Min.
func (d Duration) Mul(q int64) Duration {
	r, _ := d.CheckedMul(q)
	return r
}

// CheckedMulFloat multiplies d by a float factor, rounding the product half
// to even on the nanosecond grid. NaN yields Zero and ErrOverflow.
func (d Duration) CheckedMulFloat(q float64) (Duration, error) {
	if n, ok := floatAsInt(q); ok {
		total := d.TotalNanoseconds()
		return FromTotalNanoseconds(total.Mul(total, n))
	}
	return mulDecimal(d.TotalNanoseconds(), q)
}

// MulFloat multiplies d by a float factor, saturating at Max and Min.
func (d Duration) MulFloat(q float64) Duration {
	r, _ := d.CheckedMulFloat(q)
	return r
}

// CheckedDiv divides d by an integer, truncating toward zero. Division by
// zero saturates in the direction of d's sign; 0/0 is Zero with ErrNaN.
func (d Duration) CheckedDiv(q int64) (Duration, error) {
	if q == 0 {
		return divideByZero(d)
	}
	total := d.TotalNanoseconds()
	return FromTotalNanoseconds(total.Quo(total, big.NewInt(q)))
}

// Div divides d by an integer, truncating toward zero and saturating on
// division by zero.
func (d Duration) Div(q int64) Duration {
	r, _ := d.CheckedDiv(q)
	return r
}

// CheckedDivFloat divides d by a float, rounding half to even.
func (d Duration) CheckedDivFloat(q float64) (Duration, error) {
	if math.IsNaN(q) {
		return Zero, ErrNaN
	}
	if q == 0 {
		return divideByZero(d)
	}
	return quoDecimal(d.TotalNanoseconds(), q)
}

func (d Duration) DivFloat(q float64) Duration {
	r, _ := d.CheckedDivFloat(q)
	return r
}

func divideByZero(d Duration) (Duration, error) {
	if d.IsZero() {
		return Zero, ErrNaN
	}
	if d.IsNegative() {
		return Min, ErrUnderflow
	}
	return Max, ErrOverflow
}

// ToSeconds returns d in seconds as a float64.
func (d Duration) ToSeconds() float64 {
	whole := d.nanoseconds / NanosecondsPerSecond
	frac := d.nanoseconds % NanosecondsPerSecond
	return float64(d.centuries)*SecondsPerCentury + float64(whole) + float64(frac)*1e-9
}

// ToUnit returns d expressed in the given unit as a float64.
func (d Duration) ToUnit(u Unit) float64 {
	return d.ToSeconds() * u.FromSeconds()
}

// MinOf returns the smaller of a and b.
func MinOf(a, b Duration) Duration {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

// MaxOf returns the larger of a and b.
func MaxOf(a, b Duration) Duration {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}
