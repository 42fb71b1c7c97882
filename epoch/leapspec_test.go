package epoch

import (
	"errors"
	"testing"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeapSecondTableSpec(t *testing.T) {
	baseline := leapseconds.Baseline()

	t.Run("renders instants and exact offsets", func(t *testing.T) {
		spec := LeapSecondTableSpec(baseline)

		require.Len(t, spec.Records, baseline.Len())
		assert.Equal(t, specs.LeapSecondSpec{UTC: "1960-01-01T00:00:00 UTC", Offset: "1.417818"}, spec.Records[0])
		assert.Equal(t, specs.LeapSecondSpec{UTC: "2017-01-01T00:00:00 UTC", Offset: "37", Announced: true}, spec.Records[len(spec.Records)-1])
		assert.Empty(t, spec.Expires)
	})

	t.Run("round trips through the wire form", func(t *testing.T) {
		table, err := LeapSecondTableFromSpec(LeapSecondTableSpec(baseline.WithExpiry(duration.Second.Mul(4_891_363_200))))

		require.NoError(t, err)
		assert.Equal(t, baseline.Records(), table.Records())
		expiry, ok := table.Expiry()
		require.True(t, ok)
		assert.Equal(t, duration.Second.Mul(4_891_363_200), expiry)
	})

	t.Run("with rows out of order returns ErrUnordered", func(t *testing.T) {
		_, err := LeapSecondTableFromSpec(specs.LeapSecondTableSpec{Records: []specs.LeapSecondSpec{
			{UTC: "2017-01-01T00:00:00 UTC", Offset: "37", Announced: true},
			{UTC: "2015-07-01T00:00:00 UTC", Offset: "36", Announced: true},
		}})

		assert.True(t, errors.Is(err, leapseconds.ErrUnordered))
	})

	t.Run("with an unreadable offset names the record", func(t *testing.T) {
		_, err := LeapSecondTableFromSpec(specs.LeapSecondTableSpec{Records: []specs.LeapSecondSpec{
			{UTC: "2017-01-01T00:00:00 UTC", Offset: "many", Announced: true},
		}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 0: invalid offset")
	})
}
