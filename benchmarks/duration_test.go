package benchmarks

import (
	"testing"

	"github.com/chrisconley/chronon/duration"
)

// Benchmark parsing a multi-unit duration
func BenchmarkDuration_Parse(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := duration.Parse("1 d 15.5 hours 25 ns"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark parsing a timezone offset
func BenchmarkDuration_ParseOffset(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := duration.ParseOffset("-05:30"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark the saturating add, the hot path of every epoch shift
func BenchmarkDuration_Add(b *testing.B) {
	d := duration.MustParse("36524 d 23 h 59 min 59 s")
	step := duration.Millisecond.Mul(100)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		d = d.Add(step)
	}
	_ = d
}

// Benchmark float multiplication, which rounds through apd
func BenchmarkDuration_MulFloat(b *testing.B) {
	d := duration.Hour.Duration()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = d.MulFloat(1.0000000123)
	}
}

func BenchmarkDuration_String(b *testing.B) {
	d := duration.MustParse("1 d 15.5 hours 25 ns")

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}
