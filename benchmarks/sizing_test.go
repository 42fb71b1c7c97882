package benchmarks

import (
	"encoding/json"
	"testing"
	"unsafe"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timeseries"
	"github.com/stretchr/testify/assert"
)

// Test struct sizes using unsafe.Sizeof
func TestStructSizes(t *testing.T) {
	t.Logf("\n=== Struct Sizes (unsafe.Sizeof) ===\n")

	var d duration.Duration
	var e epoch.Epoch
	var ts timeseries.TimeSeries
	var spec specs.EpochSpec

	t.Logf("Duration:    %d bytes", unsafe.Sizeof(d))
	t.Logf("Epoch:       %d bytes", unsafe.Sizeof(e))
	t.Logf("TimeSeries:  %d bytes", unsafe.Sizeof(ts))
	t.Logf("EpochSpec:   %d bytes", unsafe.Sizeof(spec))

	// Both stay small enough to pass by value.
	assert.LessOrEqual(t, unsafe.Sizeof(d), uintptr(16))
	assert.LessOrEqual(t, unsafe.Sizeof(e), uintptr(24))
}

// Measure the JSON wire size of the specs
func TestSpecWireSizes(t *testing.T) {
	scenarios := []struct {
		name string
		spec any
	}{
		{"EpochSpec/whole second", epoch.MustGregorianUTC(2017, 1, 1, 0, 0, 0, 0).Spec()},
		{"EpochSpec/nanoseconds", epoch.MustGregorianUTC(2020, 6, 15, 8, 30, 15, 123_456_789).Spec()},
		{"DurationSpec", duration.MustParse("1 d 15.5 hours 25 ns").Spec()},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			data, err := json.Marshal(scenario.spec)

			assert.NoError(t, err)
			t.Logf("%s: %d bytes %s", scenario.name, len(data), data)
		})
	}
}
