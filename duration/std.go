package duration

import (
	"fmt"
	"math/big"
	"time"
)

// FromStd converts a time.Duration exactly.
func FromStd(d time.Duration) Duration {
	return FromTruncatedNanoseconds(int64(d))
}

// ToStd converts d to a time.Duration, clamping values beyond roughly ±292
// years to the time.Duration range.
func (d Duration) ToStd() time.Duration {
	ns, _ := d.TruncatedNanoseconds()
	return time.Duration(ns)
}

// SecondsNanos converts d to an unsigned whole-second count and a
// nanosecond remainder. Negative durations clamp to zero; Max needs
// fewer than 47 bits of seconds so the upper bound never clamps.
func (d Duration) SecondsNanos() (uint64, uint32) {
	if d.IsNegative() {
		return 0, 0
	}
	seconds, nanos := new(big.Int).QuoRem(d.TotalNanoseconds(), Second.bigNanoseconds(), new(big.Int))
	return seconds.Uint64(), uint32(nanos.Uint64())
}

// FromSecondsNanos is the inverse of SecondsNanos. It saturates at Max.
func FromSecondsNanos(seconds uint64, nanos uint32) Duration {
	total := new(big.Int).SetUint64(seconds)
	total.Mul(total, Second.bigNanoseconds())
	total.Add(total, big.NewInt(int64(nanos)))
	d, _ := FromTotalNanoseconds(total)
	return d
}

// MarshalText renders d with String, which also serves JSON and TOML.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = parsed
	return nil
}
