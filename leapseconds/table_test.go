package leapseconds

import (
	"errors"
	"testing"

	"github.com/chrisconley/chronon/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2017-01-01T00:00:00 UTC counted from 1900-01-01.
var boundary2017 = duration.Second.Mul(3_692_217_600)

func TestBaseline(t *testing.T) {
	table := Baseline()

	t.Run("holds historical and announced records", func(t *testing.T) {
		records := table.Records()

		assert.Equal(t, 42, table.Len())
		assert.False(t, records[0].Announced)
		assert.Equal(t, duration.FromSeconds(1.417818), records[0].Offset)
		assert.True(t, records[41].Announced)
		assert.Equal(t, duration.Second.Mul(37), records[41].Offset)
	})

	t.Run("looks up by TAI with the boundary taking the new offset", func(t *testing.T) {
		tai := boundary2017.Add(duration.Second.Mul(37))

		at, ok := table.Lookup(tai)
		require.True(t, ok)
		before, ok := table.Lookup(tai.Sub(duration.MinPositive))
		require.True(t, ok)

		assert.Equal(t, duration.Second.Mul(37), at.Offset)
		assert.Equal(t, duration.Second.Mul(36), before.Offset)
		assert.Equal(t, boundary2017, at.UTC())
	})

	t.Run("looks up by UTC", func(t *testing.T) {
		at, _ := table.LookupUTC(boundary2017)
		before, _ := table.LookupUTC(boundary2017.Sub(duration.MinPositive))

		assert.Equal(t, duration.Second.Mul(37), at.Offset)
		assert.Equal(t, duration.Second.Mul(36), before.Offset)
	})

	t.Run("ignores pre-1972 rates unless asked", func(t *testing.T) {
		tai := duration.Second.Mul(2_000_000_000)

		_, ok := table.Lookup(tai)
		historical, found := table.LookupAll(tai)

		assert.False(t, ok)
		require.True(t, found)
		assert.Equal(t, duration.FromSeconds(1.845858), historical.Offset)
	})

	t.Run("detects the inserted leap second", func(t *testing.T) {
		inside := boundary2017.Add(duration.FromSeconds(36.5))

		r, ok := table.InsertionAt(inside)
		_, atBoundary := table.InsertionAt(boundary2017.Add(duration.Second.Mul(37)))
		_, beforeLeap := table.InsertionAt(boundary2017.Add(duration.FromSeconds(35.9)))

		require.True(t, ok)
		assert.Equal(t, duration.Second.Mul(37), r.Offset)
		assert.False(t, atBoundary)
		assert.False(t, beforeLeap)
	})
}

func TestNewTable(t *testing.T) {
	t.Run("with unordered records returns error", func(t *testing.T) {
		_, err := NewTable([]Record{
			NewRecord(duration.Second.Mul(200), duration.Second.Mul(10), true),
			NewRecord(duration.Second.Mul(100), duration.Second.Mul(11), true),
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnordered))
	})

	t.Run("with decreasing announced offsets returns error", func(t *testing.T) {
		_, err := NewTable([]Record{
			NewRecord(duration.Second.Mul(100), duration.Second.Mul(11), true),
			NewRecord(duration.Second.Mul(200), duration.Second.Mul(10), true),
		})

		assert.True(t, errors.Is(err, ErrDecreasingOffset))
	})

	t.Run("an empty table has no offsets", func(t *testing.T) {
		table, err := NewTable(nil)
		require.NoError(t, err)

		_, ok := table.Lookup(boundary2017)

		assert.False(t, ok)
	})
}

func TestStore(t *testing.T) {
	t.Run("installs a new snapshot atomically", func(t *testing.T) {
		empty, err := NewTable(nil)
		require.NoError(t, err)
		store := NewStore(Baseline())

		previous := store.Install(empty)

		assert.Equal(t, 42, previous.Len())
		assert.Equal(t, 0, store.Load().Len())
		_, ok := store.Lookup(boundary2017)
		assert.False(t, ok)
	})

	t.Run("default store starts from the baseline", func(t *testing.T) {
		r, ok := Default().Lookup(boundary2017.Add(duration.Second.Mul(40)))

		require.True(t, ok)
		assert.Equal(t, duration.Second.Mul(37), r.Offset)
	})
}
