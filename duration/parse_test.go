package duration

import (
	"errors"
	"testing"

	"github.com/chrisconley/chronon/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("parses whole days", func(t *testing.T) {
		d, err := Parse("15 d")

		require.NoError(t, err)
		assert.Equal(t, Day.Mul(15), d)
		assert.Equal(t, uint64(15*NanosecondsPerDay), d.NanosecondsRemainder())
	})

	t.Run("parses fractional units", func(t *testing.T) {
		d, err := Parse("1 d 15.5 hours 25 ns")

		require.NoError(t, err)
		assert.Equal(t, Compose(1, 1, 15, 30, 0, 0, 0, 25), d)
	})

	t.Run("accepts spelled out and attached units", func(t *testing.T) {
		spelled, err := Parse("2 minutes 3 seconds")
		require.NoError(t, err)
		attached, err := Parse("2min3s")
		require.NoError(t, err)
		micro, err := Parse("5 μs")
		require.NoError(t, err)

		assert.Equal(t, Second.Mul(123), spelled)
		assert.Equal(t, spelled, attached)
		assert.Equal(t, Microsecond.Mul(5), micro)
	})

	t.Run("applies a leading sign to the whole sequence", func(t *testing.T) {
		d, err := Parse("-1 day 12 h")

		require.NoError(t, err)
		assert.Equal(t, Hour.Mul(-36), d)
	})

	t.Run("parses timezone offsets", func(t *testing.T) {
		for input, want := range map[string]Duration{
			"+05:30":    Minute.Mul(330),
			"-0530":     Minute.Mul(-330),
			"+01":       Hour.Duration(),
			"-01:02:03": Second.Mul(-3723),
		} {
			d, err := Parse(input)

			require.NoError(t, err, input)
			assert.Equal(t, want, d, input)
		}
	})

	t.Run("with malformed offset returns InvalidTimezone", func(t *testing.T) {
		_, err := Parse("+5:30")

		assert.True(t, errors.Is(err, parsing.InvalidTimezone))
	})

	t.Run("with empty input returns NothingToParse", func(t *testing.T) {
		_, err := Parse("   ")

		assert.True(t, errors.Is(err, parsing.NothingToParse))
	})

	t.Run("with missing unit returns UnknownOrMissingUnit", func(t *testing.T) {
		_, err := Parse("1 d 15")

		assert.True(t, errors.Is(err, parsing.UnknownOrMissingUnit))
	})

	t.Run("with unknown unit returns UnknownToken", func(t *testing.T) {
		_, err := Parse("3 fortnights")

		var perr *parsing.Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, parsing.UnknownToken, perr.Kind)
		assert.Equal(t, "fortnights", perr.Token)
	})

	t.Run("with out of range total returns ValueError", func(t *testing.T) {
		d, err := Parse("99999999999 d")

		assert.True(t, errors.Is(err, parsing.ValueError))
		assert.True(t, errors.Is(err, ErrOverflow))
		assert.Equal(t, Max, d)
	})

	t.Run("resolves unit names", func(t *testing.T) {
		u, err := ParseUnit("hr")
		require.NoError(t, err)
		assert.Equal(t, Hour, u)

		_, err = ParseUnit("jiffy")
		assert.True(t, errors.Is(err, parsing.UnknownToken))
	})
}
