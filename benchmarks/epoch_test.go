package benchmarks

import (
	"encoding/json"
	"testing"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timescale"
	"github.com/chrisconley/chronon/timeseries"
)

var realistic = epoch.MustGregorianUTC(2020, 6, 15, 8, 30, 15, 123_456_789)

// Benchmark parsing a free form epoch string
func BenchmarkEpoch_Parse(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := epoch.Parse("2020-06-15T08:30:15.123456789 UTC"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark each conversion path: fixed offsets, the leap second table and
// the relativistic series
func BenchmarkEpoch_ToDuration(b *testing.B) {
	for _, ts := range []timescale.TimeScale{timescale.TAI, timescale.GPST, timescale.UTC, timescale.TDB, timescale.ET} {
		b.Run(ts.String(), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_ = realistic.ToDuration(ts)
			}
		})
	}
}

func BenchmarkEpoch_ToGregorian(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = realistic.ToGregorian(timescale.UTC)
	}
}

// Benchmark formatting with a predefined layout
func BenchmarkEpoch_FormatISO8601(b *testing.B) {
	f := efmt.New(realistic, efmt.ISO8601)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = f.String()
	}
}

// Benchmark format-driven parsing
func BenchmarkEpoch_ParseRFC2822(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := efmt.Parse("Sat, 07 Feb 2015 11:22:33", efmt.RFC2822); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark walking a day of one second steps
func BenchmarkTimeSeries_Day(b *testing.B) {
	end := realistic.Add(duration.Day.Duration())

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		n := 0
		for range timeseries.Exclusive(realistic, end, duration.Second.Duration()).All() {
			n++
		}
		if n != 86_400 {
			b.Fatalf("got %d epochs", n)
		}
	}
}

// Benchmark JSON serialization of an EpochSpec
func BenchmarkEpochSpec_JSONMarshal(b *testing.B) {
	spec := realistic.Spec()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(spec); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark the full spec round trip: JSON, parse, convert, render
func BenchmarkEpochSpec_Convert(b *testing.B) {
	data := []byte(`{"value": "2020-06-15T08:30:15.123456789 UTC"}`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var spec specs.EpochSpec
		if err := json.Unmarshal(data, &spec); err != nil {
			b.Fatal(err)
		}
		if _, err := epoch.Convert(spec, "TDB"); err != nil {
			b.Fatal(err)
		}
	}
}
