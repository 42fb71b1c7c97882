package efmt

import (
	"errors"
	"testing"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/parsing"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timescale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	e := epoch.MustGregorianUTC(2015, 2, 7, 11, 22, 33, 0)

	t.Run("renders the predefined formats", func(t *testing.T) {
		cases := []struct {
			format Format
			want   string
		}{
			{ISO8601, "2015-02-07T11:22:33.000000000 UTC"},
			{ISO8601Flex, "2015-02-07T11:22:33"},
			{ISO8601Date, "2015-02-07"},
			{ISO8601Ordinal, "2015-038"},
			{RFC3339, "2015-02-07T11:22:33+00:00"},
			{RFC2822, "Sat, 07 Feb 2015 11:22:33"},
			{RFC2822Long, "Saturday, 07 February 2015 11:22:33"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, New(e, tc.format).String(), tc.format.String())
		}
	})

	t.Run("shows optional items when they carry information", func(t *testing.T) {
		assert.Equal(t, "2015-02-07T11:23:08 TAI", New(e, ISO8601Flex).InTimeScale(timescale.TAI).String())
		assert.Equal(t, "2015-02-07T11:22:33.250000000", New(e.Add(duration.Millisecond.Mul(250)), ISO8601Flex).String())
	})

	t.Run("applies a display timezone without moving the instant", func(t *testing.T) {
		f := New(e, RFC3339).WithTimezone(duration.FromTZOffset(1, 5, 30))

		assert.Equal(t, "2015-02-07T16:52:33+05:30", f.String())
		assert.Equal(t, "2015-02-07T06:22:33-05:00", New(e, RFC3339).WithTimezone(duration.Hour.Mul(-5)).String())
	})

	t.Run("renders scale codes, weekdays and ordinals", func(t *testing.T) {
		noon := epoch.MustGregorianUTC(2017, 1, 14, 12, 0, 0, 0)

		assert.Equal(t, "GPS", New(noon, MustParseFormat("%t")).InTimeScale(timescale.GPST).String())
		assert.Equal(t, "6 Saturday", New(noon, MustParseFormat("%w %A")).String())
		assert.Equal(t, "2017-14.5", New(noon, MustParseFormat("%Y-%J")).String())
	})

	t.Run("writes the separators of the last item", func(t *testing.T) {
		got := New(epoch.MustParse("2018-02-13T23:08:32.123456983Z"), MustParseFormat("%Y-%m-%dT%H:%M:%S.%fZ")).String()

		assert.Equal(t, "2018-02-13T23:08:32.123456983Z", got)
	})

	t.Run("reads the UTC clock when the layout names no scale", func(t *testing.T) {
		tai := e.InTimeScale(timescale.TAI)

		assert.Equal(t, "2015-02-07T11:22:33+00:00", New(tai, RFC3339).String())
		assert.Equal(t, "Sat, 07 Feb 2015 11:22:33", New(tai, RFC2822).String())
		assert.Equal(t, "11:23:08 TAI", New(tai, MustParseFormat("%H:%M:%S %T")).String())
	})

	t.Run("renders the leap second", func(t *testing.T) {
		leap := epoch.MustParse("2016-12-31T23:59:60 UTC")

		assert.Equal(t, "2016-12-31T23:59:60", New(leap, ISO8601Flex).String())
	})
}

func TestParse(t *testing.T) {
	t.Run("round trips nine fraction digits", func(t *testing.T) {
		f := MustParseFormat("%Y-%m-%dT%H:%M:%S.%fZ")
		text := "2018-02-13T23:08:32.123456983Z"

		e, err := Parse(text, f)

		require.NoError(t, err)
		assert.Equal(t, text, New(e, f).String())
	})

	t.Run("round trips every predefined format", func(t *testing.T) {
		midnight := epoch.MustGregorianUTC(2000, 2, 29, 0, 0, 0, 0)
		instant := epoch.MustGregorianUTC(2000, 2, 29, 14, 57, 29, 0)
		leap := epoch.MustParse("2016-12-31T23:59:60 UTC")

		roundTrip := func(e epoch.Epoch, f Format) {
			back, err := Parse(New(e, f).String(), f)

			require.NoError(t, err, f.String())
			assert.True(t, e.Equal(back), "%s: %s read back as %s", f, e, back)
		}
		for _, f := range []Format{ISO8601, ISO8601Flex} {
			for _, e := range []epoch.Epoch{instant, leap, instant.InTimeScale(timescale.TAI)} {
				roundTrip(e, f)
			}
		}
		for _, f := range []Format{RFC3339, RFC2822, RFC2822Long} {
			roundTrip(instant, f)
			roundTrip(leap, f)
			roundTrip(instant.InTimeScale(timescale.TAI), f)
		}
		roundTrip(instant.Add(duration.Millisecond.Mul(123)).InTimeScale(timescale.TAI), RFC3339)
		for _, f := range []Format{ISO8601Date, ISO8601Ordinal} {
			back, err := Parse(New(midnight, f).String(), f)

			require.NoError(t, err)
			assert.True(t, midnight.Equal(back), f.String())
		}
	})

	t.Run("reads offsets and scales", func(t *testing.T) {
		want := epoch.MustGregorianUTC(2015, 2, 7, 11, 22, 33, 0)

		for text, f := range map[string]Format{
			"2015-02-07T16:52:33+05:30":         RFC3339,
			"2015-02-07T11:22:33Z":              RFC3339,
			"2015-02-07T11:22:33.5-00:00":       RFC3339,
			"2015-02-07T11:23:08 TAI":           ISO8601Flex,
			"2015-02-07T11:22:33.000000000 UTC": ISO8601,
		} {
			e, err := Parse(text, f)

			require.NoError(t, err, text)
			if text == "2015-02-07T11:22:33.5-00:00" {
				assert.True(t, want.Add(duration.Millisecond.Mul(500)).Equal(e), text)
				continue
			}
			assert.True(t, want.Equal(e), "%s read as %s", text, e)
		}
	})

	t.Run("reads month names and weekday numbers", func(t *testing.T) {
		e, err := ParseLayout("6 14 jan 2017", "%w %d %b %Y")

		require.NoError(t, err)
		assert.True(t, epoch.MustGregorianUTC(2017, 1, 14, 0, 0, 0, 0).Equal(e))
	})

	t.Run("checks the weekday against the date", func(t *testing.T) {
		_, err := Parse("Mon, 29 Feb 2000 14:57:29", RFC2822)

		var perr *parsing.Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, parsing.WeekdayMismatch, perr.Kind)
		assert.Equal(t, "Monday", perr.FoundWeekday)
		assert.Equal(t, "Tuesday", perr.ExpectedWeekday)
	})

	t.Run("reports the expected separators", func(t *testing.T) {
		_, err := Parse("2015/02/07", ISO8601Date)

		var perr *parsing.Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, parsing.UnexpectedCharacter, perr.Kind)
		assert.Equal(t, '/', perr.Found)
		assert.Equal(t, '-', perr.Option1)

		_, err = Parse("Tue 29 Feb 2000 14:57:29", RFC2822)
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, ',', perr.Option1)
		assert.Equal(t, ' ', perr.Option2)
	})

	t.Run("reports malformed input", func(t *testing.T) {
		cases := []struct {
			text   string
			format Format
			kind   parsing.Kind
		}{
			{"", ISO8601Date, parsing.NothingToParse},
			{"2015-02", ISO8601Date, parsing.ISO8601},
			{"2015-02-07 extra", ISO8601Date, parsing.UnknownFormat},
			{"Sat, 07 Smarch 2015 11:22:33", RFC2822, parsing.UnknownMonthName},
			{"Caturday, 07 February 2015 11:22:33", RFC2822Long, parsing.UnknownWeekday},
			{"2015-02-07T11:22:33.000000000 Mars", ISO8601, parsing.TimeSystem},
			{"2015-02-07T11:22:33+05:99", RFC3339, parsing.InvalidTimezone},
		}
		for _, tc := range cases {
			_, err := Parse(tc.text, tc.format)

			assert.ErrorIs(t, err, tc.kind, "%q: %v", tc.text, err)
		}

		_, err := Parse("2015-02-30", ISO8601Date)
		assert.ErrorIs(t, err, epoch.ErrInvalidGregorianDate)
	})
}

func TestFormatSpec(t *testing.T) {
	t.Run("renders with a timezone", func(t *testing.T) {
		got, err := FormatSpec(
			specs.NewEpochSpec("2015-02-07T11:22:33 UTC", ""),
			specs.FormatSpec{Layout: "%Y-%m-%d %H:%M %z", Timezone: "+01:00"},
		)

		require.NoError(t, err)
		assert.Equal(t, "2015-02-07 12:22 +01:00", got)
	})

	t.Run("renders another clock", func(t *testing.T) {
		got, err := FormatSpec(
			specs.NewEpochSpec("2015-02-07T11:22:33 UTC", ""),
			specs.FormatSpec{Layout: "%H:%M:%S %T", TimeScale: "TAI"},
		)

		require.NoError(t, err)
		assert.Equal(t, "11:23:08 TAI", got)
	})

	t.Run("rejects a bad layout", func(t *testing.T) {
		_, err := FormatSpec(specs.NewEpochSpec("2015-02-07T11:22:33 UTC", ""), specs.FormatSpec{Layout: "%Q"})

		assert.Contains(t, err.Error(), "invalid layout")
	})
}
