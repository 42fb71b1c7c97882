package epoch

import (
	"fmt"
	"testing"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/timescale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func within(t *testing.T, want, got Epoch, tolerance duration.Duration) {
	t.Helper()
	diff := got.Sub(want).Abs()
	assert.False(t, tolerance.Less(diff), "%s and %s differ by %s", want, got, diff)
}

func TestArithmetic(t *testing.T) {
	t.Run("adds a duration across display scales", func(t *testing.T) {
		e := MustGregorianUTC(2015, 2, 7, 11, 22, 33, 0)

		later := e.Add(duration.Second.Mul(50))

		assert.Equal(t, "2015-02-07T11:23:23 UTC", later.String())
		assert.Equal(t, "2015-02-07T11:23:23 UTC", e.InTimeScale(timescale.TAI).Add(duration.Second.Mul(50)).InTimeScale(timescale.UTC).String())
	})

	t.Run("counts the inserted leap second", func(t *testing.T) {
		before := MustGregorianUTC(2016, 12, 31, 23, 59, 59, 0)
		after := MustGregorianUTC(2017, 1, 1, 0, 0, 0, 0)

		assert.Equal(t, duration.Second.Mul(2), after.Sub(before))
	})

	t.Run("compares instants whatever the display scale", func(t *testing.T) {
		e := MustGregorianUTC(2020, 6, 15, 8, 30, 15, 0)
		gps := e.InTimeScale(timescale.GPST)

		assert.True(t, e.Equal(gps))
		assert.Zero(t, e.Compare(gps))
		assert.True(t, e.Before(e.Add(duration.MinPositive)))
		assert.True(t, e.After(e.Add(duration.MinNegative)))
		assert.Equal(t, e, Min(e, e.Add(duration.Second.Duration())))
		assert.Equal(t, e, Max(e, e.Add(duration.Second.Mul(-1))))
	})

	t.Run("rounds on the display clock", func(t *testing.T) {
		e := MustGregorianUTC(2015, 2, 7, 11, 22, 33, 0)

		assert.Equal(t, "2015-02-07T11:00:00 UTC", e.Floor(duration.Hour.Duration()).String())
		assert.Equal(t, "2015-02-07T12:00:00 UTC", e.Ceil(duration.Hour.Duration()).String())
		assert.Equal(t, "2015-02-07T11:23:00 UTC", e.Round(duration.Minute.Duration()).String())
	})
}

func TestTimeScaleConversion(t *testing.T) {
	t.Run("round trips through every scale", func(t *testing.T) {
		for _, e := range []Epoch{
			MustGregorianUTC(2020, 6, 15, 8, 30, 15, 123_456_789),
			MustGregorianUTC(1972, 7, 1, 0, 0, 0, 0),
			MustGregorianUTC(1900, 1, 1, 0, 0, 0, 0),
			MustGregorianUTC(2150, 12, 31, 23, 59, 59, 999_999_999),
		} {
			for _, ts := range timescale.All {
				back := FromDuration(e.ToDuration(ts), ts)
				within(t, e, back, duration.Nanosecond.Duration())
			}
		}
	})

	t.Run("offsets TT from TAI by 32.184 s", func(t *testing.T) {
		e := FromTAIDuration(duration.Day.Mul(40_000))

		assert.Equal(t, duration.Millisecond.Mul(32_184), e.ToDuration(timescale.TT).Sub(e.ToDuration(timescale.TAI)))
	})

	t.Run("keeps TDB within 1.7 ms of TT", func(t *testing.T) {
		for _, year := range []int{1950, 2000, 2017, 2050} {
			for _, month := range []int{1, 4, 7, 10} {
				e := MustGregorianUTC(year, month, 1, 0, 0, 0, 0)

				tdbMinusTT := e.ToDurationSince1900(timescale.TDB).Sub(e.ToDurationSince1900(timescale.TT))

				assert.False(t, duration.Microsecond.Mul(1_700).Less(tdbMinusTT.Abs()), "TDB - TT = %s", tdbMinusTT)
			}
		}
	})

	t.Run("keeps ET within a few microseconds of TDB", func(t *testing.T) {
		e := MustGregorianUTC(2017, 4, 1, 0, 0, 0, 0)

		diff := e.ToDurationSince1900(timescale.ET).Sub(e.ToDurationSince1900(timescale.TDB))

		assert.True(t, diff.Abs().Less(duration.Microsecond.Mul(50)), "ET - TDB = %s", diff)
	})

	t.Run("starts GNSS scales at their origins", func(t *testing.T) {
		assert.Equal(t, "1980-01-06T00:00:00 UTC", FromGPSTDuration(duration.Zero).InTimeScale(timescale.UTC).String())
		assert.Equal(t, "1980-01-06T00:00:00 UTC", FromQZSSTDuration(duration.Zero).InTimeScale(timescale.UTC).String())
		assert.Equal(t, "1999-08-21T23:59:47 UTC", FromGSTDuration(duration.Zero).InTimeScale(timescale.UTC).String())
		assert.Equal(t, "2006-01-01T00:00:00 UTC", FromBDTDuration(duration.Zero).InTimeScale(timescale.UTC).String())
		assert.Equal(t, "1980-01-06T00:00:00 GPST", FromGPSTNanoseconds(0).String())
	})

	t.Run("keeps GNSS scales continuous", func(t *testing.T) {
		e := MustGregorianUTC(2017, 1, 14, 0, 0, 0, 0)

		assert.Equal(t, duration.Second.Mul(-19), e.ToDurationSince1900(timescale.GPST).Sub(e.ToDurationSince1900(timescale.TAI)))
		assert.Equal(t, duration.Second.Mul(-33), e.ToDurationSince1900(timescale.BDT).Sub(e.ToDurationSince1900(timescale.TAI)))
	})

	t.Run("starts ET and TDB at J2000", func(t *testing.T) {
		j2000 := FromMJD(51_544.5, timescale.TT)

		assert.Equal(t, "2000-01-01T12:00:00 TT", j2000.String())
		assert.True(t, j2000.ToDuration(timescale.TDB).Abs().Less(duration.Millisecond.Mul(2)))
	})
}

func TestNumericForms(t *testing.T) {
	t.Run("reads modified and plain Julian dates", func(t *testing.T) {
		e := FromMJD(51_544.5, timescale.TAI)

		assert.Equal(t, Gregorian{Year: 2000, Month: 1, Day: 1, Hour: 12}, e.ToGregorian(timescale.TAI))
		assert.InDelta(t, 51_544.5, e.ToMJD(timescale.TAI), 1e-9)
		assert.InDelta(t, 2_451_545.0, e.ToJDE(timescale.TAI), 1e-9)
		assert.True(t, e.Equal(FromJDE(2_451_545.0, timescale.TAI)))
	})

	t.Run("reads Unix time as UTC", func(t *testing.T) {
		assert.Equal(t, "1970-01-01T00:00:00 UTC", FromUnixSeconds(0).String())
		assert.Equal(t, "2017-01-14T00:00:00 UTC", FromUnixSeconds(1_484_352_000).String())
		assert.InDelta(t, 1_484_352_000_000.0, MustGregorianUTC(2017, 1, 14, 0, 0, 0, 0).ToUnixMilliseconds(), 1e-3)
		assert.True(t, FromUnixMilliseconds(1_500).Equal(FromUnixDuration(duration.Millisecond.Mul(1_500))))
	})

	t.Run("reads native seconds and days", func(t *testing.T) {
		assert.Equal(t, "1900-01-02T00:00:00 TAI", FromTAIDays(1).String())
		assert.Equal(t, "1900-01-01T00:01:00 TAI", FromTAISeconds(60).String())
		assert.InDelta(t, 1.0, FromTAIDays(1).ToDays(timescale.TAI), 1e-12)
		assert.InDelta(t, 60.0, FromGPSTSeconds(60).ToSeconds(timescale.GPST), 1e-9)
		assert.True(t, FromUTCDays(1).Equal(FromUTCSeconds(86_400)))
	})

	t.Run("round trips the GNSS time of week", func(t *testing.T) {
		e := MustGregorianUTC(2017, 1, 14, 12, 30, 0, 250).InTimeScale(timescale.GPST)

		week, ns := e.TimeOfWeek()

		assert.Less(t, ns, 7*duration.NanosecondsPerDay)
		assert.True(t, e.Equal(FromTimeOfWeek(uint32(week), ns, timescale.GPST)))
	})

	t.Run("reports TAI - UTC", func(t *testing.T) {
		offset, ok := MustGregorianUTC(2017, 6, 1, 0, 0, 0, 0).LeapSeconds(true)
		require.True(t, ok)
		assert.Equal(t, 37.0, offset)

		_, ok = MustGregorianUTC(1965, 6, 1, 0, 0, 0, 0).LeapSeconds(true)
		assert.False(t, ok)

		offset, ok = MustGregorianUTC(1965, 6, 1, 0, 0, 0, 0).LeapSeconds(false)
		require.True(t, ok)
		assert.Greater(t, offset, 3.0)
		assert.Less(t, offset, 5.0)
	})
}

func TestFormat(t *testing.T) {
	e := MustGregorianUTC(2017, 1, 14, 0, 0, 0, 0)

	t.Run("renders fractions only when present", func(t *testing.T) {
		assert.Equal(t, "2017-01-14T00:00:00 UTC", e.String())
		assert.Equal(t, "2017-01-14T00:00:00.000000250 UTC", e.Add(duration.Nanosecond.Mul(250)).String())
	})

	t.Run("selects a clock by verb", func(t *testing.T) {
		assert.Equal(t, "2017-01-14T00:00:00 UTC", fmt.Sprintf("%v", e))
		assert.Equal(t, "2017-01-14T00:00:37 TAI", fmt.Sprintf("%x", e))
		assert.Equal(t, "2017-01-14T00:01:09.184000000 TT", fmt.Sprintf("%X", e))
		assert.Equal(t, "1484352000", fmt.Sprintf("%d", e))
	})

	t.Run("pads to the requested width", func(t *testing.T) {
		assert.Equal(t, "[2017-01-14T00:00:00 UTC  ]", fmt.Sprintf("[%-25s]", e))
		assert.Equal(t, "[  1484352000]", fmt.Sprintf("[%12d]", e))
	})

	t.Run("marshals as text", func(t *testing.T) {
		text, err := e.MarshalText()
		require.NoError(t, err)

		var back Epoch
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, e, back)

		err = back.UnmarshalText([]byte("yesterday"))
		assert.Contains(t, err.Error(), "invalid epoch")
	})
}
