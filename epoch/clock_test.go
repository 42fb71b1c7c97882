package epoch

import (
	"errors"
	"testing"
	"time"

	"github.com/chrisconley/chronon/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	since1970 duration.Duration
	err       error
}

func (c fixedClock) Now() (duration.Duration, error) { return c.since1970, c.err }

type fixedUT1 struct {
	delta duration.Duration
	err   error
}

func (p fixedUT1) OffsetAt(Epoch) (duration.Duration, error) { return p.delta, p.err }

func TestNow(t *testing.T) {
	t.Run("reads the clock as UTC since 1970", func(t *testing.T) {
		e, err := NowFrom(fixedClock{since1970: duration.Second.Mul(1_484_352_000)})

		require.NoError(t, err)
		assert.Equal(t, "2017-01-14T00:00:00 UTC", e.String())
	})

	t.Run("reports clock failures as system time errors", func(t *testing.T) {
		_, err := NowFrom(fixedClock{err: errors.New("clock unplugged")})

		assert.ErrorIs(t, err, ErrSystemTime)
		assert.Contains(t, err.Error(), "clock unplugged")
	})

	t.Run("reads the system clock", func(t *testing.T) {
		before := time.Now()
		e, err := Now()
		after := time.Now()

		require.NoError(t, err)
		assert.False(t, e.ToStdTime().Before(before.Truncate(time.Microsecond)))
		assert.False(t, e.ToStdTime().After(after))
	})
}

func TestStdTime(t *testing.T) {
	t.Run("round trips time.Time", func(t *testing.T) {
		std := time.Date(2018, 2, 13, 23, 8, 32, 123_456_983, time.UTC)

		e := FromStdTime(std)

		assert.Equal(t, "2018-02-13T23:08:32.123456983 UTC", e.String())
		assert.True(t, std.Equal(e.ToStdTime()))
	})

	t.Run("honours the location offset", func(t *testing.T) {
		std := time.Date(2018, 2, 14, 4, 38, 32, 0, time.FixedZone("IST", 5*3600+1800))

		assert.Equal(t, "2018-02-13T23:08:32 UTC", FromStdTime(std).String())
	})

	t.Run("reads dates before 1970", func(t *testing.T) {
		std := time.Date(1965, 6, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, "1965-06-01T00:00:00 UTC", FromStdTime(std).String())
		assert.True(t, std.Equal(FromStdTime(std).ToStdTime()))
	})
}

func TestUT1(t *testing.T) {
	e := MustGregorianUTC(2017, 1, 14, 0, 0, 0, 0)
	p := fixedUT1{delta: duration.Millisecond.Mul(36_600)}

	t.Run("subtracts TAI - UT1", func(t *testing.T) {
		d, err := e.ToUT1Duration(p)

		require.NoError(t, err)
		assert.Equal(t, e.TAIDuration().Sub(duration.Millisecond.Mul(36_600)), d)

		ut1, err := e.ToUT1(p)
		require.NoError(t, err)
		assert.Equal(t, "2017-01-14T00:00:00.400000000 TAI", ut1.String())
	})

	t.Run("inverts the correction", func(t *testing.T) {
		d, err := e.ToUT1Duration(p)
		require.NoError(t, err)

		back, err := FromUT1Duration(d, p)

		require.NoError(t, err)
		assert.True(t, e.Equal(back))
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		_, err := e.ToUT1(fixedUT1{err: errors.New("no EOP data")})

		assert.Contains(t, err.Error(), "no EOP data")
	})
}
