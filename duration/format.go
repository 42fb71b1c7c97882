package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders d as its non-zero components from days down to
// nanoseconds, e.g. "-1 day 15 h 30 min 25 ns". Zero renders as "0 ns".
// The output is accepted by Parse.
func (d Duration) String() string {
	if d.IsZero() {
		return "0 ns"
	}
	p := d.Decompose()
	var b strings.Builder
	if p.Sign < 0 {
		b.WriteByte('-')
	}
	first := true
	write := func(n uint64, unit string) {
		if n == 0 {
			return
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.FormatUint(n, 10))
		b.WriteByte(' ')
		b.WriteString(unit)
	}
	if p.Days == 1 {
		write(p.Days, "day")
	} else {
		write(p.Days, "days")
	}
	write(p.Hours, Hour.String())
	write(p.Minutes, Minute.String())
	write(p.Seconds, Second.String())
	write(p.Milliseconds, Millisecond.String())
	write(p.Microseconds, Microsecond.String())
	write(p.Nanoseconds, Nanosecond.String())
	return b.String()
}

// Exp renders d as a single float in the largest unit that keeps it
// readable, e.g. "1.5 h" or "-0.25 s".
func (d Duration) Exp() string {
	seconds := d.ToSeconds()
	abs := math.Abs(seconds)
	var value float64
	var unit Unit
	switch {
	case abs < 1e-5:
		value, unit = seconds*1e9, Nanosecond
	case abs < 1e-2:
		value, unit = seconds*1e3, Millisecond
	case abs < 3*SecondsPerMinute:
		value, unit = seconds, Second
	case abs < SecondsPerHour:
		value, unit = seconds/SecondsPerMinute, Minute
	case abs < SecondsPerDay:
		value, unit = seconds/SecondsPerHour, Hour
	default:
		value, unit = seconds/SecondsPerDay, Day
	}
	return strconv.FormatFloat(value, 'g', -1, 64) + " " + unit.String()
}

// Format implements fmt.Formatter: %e prints Exp, every other verb prints
// String. Width and flags apply as they do to a string.
func (d Duration) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), d.Exp())
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), d.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, 's'), d.String())
	}
}
