package duration

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// ErrNaN is returned when a float factor or float seconds value is NaN, and
// for 0/0.
var ErrNaN = errors.New("duration from NaN")

// decimalContext has room for the exact product of any nanosecond count
// and the shortest decimal form of any float64.
var decimalContext = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(80)
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}()

// decimalFromFloat returns the shortest decimal that round-trips to f, so
// 0.1 is treated as exactly one tenth.
func decimalFromFloat(f float64) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal: %w", err)
	}
	return d, nil
}

func decimalFromBig(n *big.Int) *apd.Decimal {
	d, _, _ := apd.NewFromString(n.String())
	return d
}

// floatAsInt returns the exact integer value of an integral finite float.
func floatAsInt(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	n, _ := new(big.Float).SetFloat64(f).Int(nil)
	return n, true
}

// fromDecimalNanoseconds rounds a decimal nanosecond count half to even
// onto the nanosecond grid.
func fromDecimalNanoseconds(x *apd.Decimal) (Duration, error) {
	switch x.Form {
	case apd.Infinite:
		if x.Negative {
			return Min, ErrUnderflow
		}
		return Max, ErrOverflow
	case apd.NaN, apd.NaNSignaling:
		return Zero, ErrNaN
	}
	var rounded apd.Decimal
	if _, err := decimalContext.RoundToIntegralValue(&rounded, x); err != nil {
		return Zero, fmt.Errorf("invalid decimal: %w", err)
	}
	n, ok := new(big.Int).SetString(rounded.Text('f'), 10)
	if !ok {
		return Zero, fmt.Errorf("invalid decimal: %s", rounded.Text('f'))
	}
	return FromTotalNanoseconds(n)
}

func saturateInfinite(totalSign int, f float64) (Duration, error) {
	if totalSign == 0 {
		return Zero, ErrNaN
	}
	if (totalSign > 0) == (f > 0) {
		return Max, ErrOverflow
	}
	return Min, ErrUnderflow
}

func mulDecimal(total *big.Int, f float64) (Duration, error) {
	if math.IsNaN(f) {
		return Zero, ErrNaN
	}
	if math.IsInf(f, 0) {
		return saturateInfinite(total.Sign(), f)
	}
	factor, err := decimalFromFloat(f)
	if err != nil {
		return Zero, err
	}
	var product apd.Decimal
	if _, err := decimalContext.Mul(&product, decimalFromBig(total), factor); err != nil {
		return Zero, fmt.Errorf("invalid product: %w", err)
	}
	return fromDecimalNanoseconds(&product)
}

func quoDecimal(total *big.Int, f float64) (Duration, error) {
	if math.IsInf(f, 0) {
		return Zero, nil
	}
	divisor, err := decimalFromFloat(f)
	if err != nil {
		return Zero, err
	}
	var quotient apd.Decimal
	if _, err := decimalContext.Quo(&quotient, decimalFromBig(total), divisor); err != nil {
		return Zero, fmt.Errorf("invalid quotient: %w", err)
	}
	return fromDecimalNanoseconds(&quotient)
}

// scaledLiteral returns literal × unit as an exact decimal nanosecond count.
func scaledLiteral(literal string, u Unit) (*apd.Decimal, error) {
	value, _, err := apd.NewFromString(literal)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal: %w", err)
	}
	var scaled apd.Decimal
	if _, err := decimalContext.Mul(&scaled, value, decimalFromBig(u.bigNanoseconds())); err != nil {
		return nil, fmt.Errorf("invalid decimal: %w", err)
	}
	return &scaled, nil
}

// DecimalSeconds renders d as an exact decimal number of seconds, without
// trailing zeros, e.g. "-1.5" or "3155760000".
func (d Duration) DecimalSeconds() string {
	x := decimalFromBig(d.TotalNanoseconds())
	x.Exponent -= 9
	var reduced apd.Decimal
	reduced.Reduce(x)
	return reduced.Text('f')
}
