package epoch

import (
	"fmt"
	"math/big"
	"time"

	"github.com/chrisconley/chronon/duration"
)

// Clock reads the wall clock as the UTC time elapsed since
// 1970-01-01T00:00:00 UTC.
type Clock interface {
	Now() (duration.Duration, error)
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() (duration.Duration, error) {
	now := time.Now()
	if now.Unix() < 0 {
		return duration.Zero, fmt.Errorf("system clock reads %s, before the Unix epoch", now.Format(time.RFC3339))
	}
	return unixDurationOf(now), nil
}

// Now returns the current instant from the system clock, displayed in UTC.
func Now() (Epoch, error) {
	return NowFrom(SystemClock{})
}

// NowFrom returns the current instant read from c. A clock failure is
// reported as ErrSystemTime.
func NowFrom(c Clock) (Epoch, error) {
	d, err := c.Now()
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %w", ErrSystemTime, err)
	}
	return FromUnixDuration(d), nil
}

func unixDurationOf(t time.Time) duration.Duration {
	return duration.Second.Mul(t.Unix()).Add(duration.Nanosecond.Mul(int64(t.Nanosecond())))
}

// FromStdTime converts a time.Time, which counts UTC without leap seconds.
func FromStdTime(t time.Time) Epoch {
	return FromUnixDuration(unixDurationOf(t))
}

// ToStdTime converts e to a UTC time.Time. A leap second reads as the
// first second after it.
func (e Epoch) ToStdTime() time.Time {
	second := big.NewInt(int64(duration.NanosecondsPerSecond))
	seconds, nanos := new(big.Int).DivMod(e.ToUnixDuration().TotalNanoseconds(), second, new(big.Int))
	return time.Unix(seconds.Int64(), nanos.Int64()).UTC()
}
