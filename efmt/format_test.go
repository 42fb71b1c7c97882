package efmt

import (
	"testing"

	"github.com/chrisconley/chronon/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Run("compiles directives and separators", func(t *testing.T) {
		f, err := ParseFormat("%Y-%m-%dT%H:%M:%S.%f? %T?")

		require.NoError(t, err)
		items := f.Items()
		require.Len(t, items, 8)
		assert.Equal(t, Item{Token: Year, Separator: '-'}, items[0])
		assert.Equal(t, Item{Token: Day, Separator: 'T'}, items[2])
		assert.Equal(t, Item{Token: Subsecond, Separator: ' ', Optional: true}, items[6])
		assert.Equal(t, Item{Token: Timescale, Optional: true}, items[7])
	})

	t.Run("keeps two separators", func(t *testing.T) {
		f, err := ParseFormat("%a, %d")

		require.NoError(t, err)
		assert.Equal(t, Item{Token: WeekdayShort, Separator: ',', SecondSeparator: ' '}, f.Items()[0])
	})

	t.Run("renders its layout", func(t *testing.T) {
		for _, layout := range []string{"%Y-%m-%d", "%Y-%j", "%a, %d %b %Y %H:%M:%S", "%Y-%m-%dT%H:%M:%S.%f? %T?"} {
			assert.Equal(t, layout, MustParseFormat(layout).String())
		}
	})

	t.Run("matches the predefined formats", func(t *testing.T) {
		assert.Equal(t, ISO8601Date, MustParseFormat("%Y-%m-%d"))
		assert.Equal(t, ISO8601, MustParseFormat("%Y-%m-%dT%H:%M:%S.%f %T"))
		assert.Equal(t, RFC2822Long, MustParseFormat("%A, %d %B %Y %H:%M:%S"))
	})

	t.Run("rejects unknown directives", func(t *testing.T) {
		_, err := ParseFormat("%Y-%Q")
		assert.ErrorIs(t, err, parsing.UnknownFormattingToken)

		_, err = ParseFormat("date %Y")
		assert.ErrorIs(t, err, parsing.UnknownFormattingToken)

		_, err = ParseFormat("%Y---")
		assert.ErrorIs(t, err, parsing.UnknownFormat)

		_, err = ParseFormat("")
		assert.ErrorIs(t, err, parsing.NothingToParse)
	})
}
