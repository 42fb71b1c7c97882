package epoch

import (
	"fmt"
	"strconv"

	"github.com/chrisconley/chronon/timescale"
)

// String renders e on its display clock, e.g. "2015-02-07T11:22:33 UTC".
// Nine fraction digits are added when the reading is not a whole second.
// The output is accepted by Parse.
func (e Epoch) String() string {
	return e.render(e.scale)
}

func (e Epoch) render(ts timescale.TimeScale) string {
	return e.ToGregorian(ts).String() + " " + ts.String()
}

// String renders g as "2015-02-07T11:22:33", adding nine fraction digits
// when Nanosecond is not zero.
func (g Gregorian) String() string {
	if g.Nanosecond == 0 {
		return g.dateTime()
	}
	return fmt.Sprintf("%s.%09d", g.dateTime(), g.Nanosecond)
}

func (g Gregorian) dateTime() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", g.Year, g.Month, g.Day, g.Hour, g.Minute, g.Second)
}

// Format implements fmt.Formatter. Besides the default rendering the verbs
// select a clock: %x TAI, %X TT, %e TDB, %E ET. %o prints the GPST
// nanosecond count and %d the Unix seconds. Width and flags apply as they
// do to a string.
func (e Epoch) Format(f fmt.State, verb rune) {
	var text string
	switch verb {
	case 'x':
		text = e.render(timescale.TAI)
	case 'X':
		text = e.render(timescale.TT)
	case 'e':
		text = e.render(timescale.TDB)
	case 'E':
		text = e.render(timescale.ET)
	case 'o':
		ns, _ := e.ToDuration(timescale.GPST).TruncatedNanoseconds()
		text = strconv.FormatInt(ns, 10)
	case 'd':
		text = strconv.FormatFloat(e.ToUnixSeconds(), 'f', -1, 64)
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), e.String())
		return
	default:
		text = e.String()
	}
	fmt.Fprintf(f, fmt.FormatString(f, 's'), text)
}

// MarshalText renders e with String, which also serves JSON and TOML.
func (e Epoch) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Epoch) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("invalid epoch: %w", err)
	}
	*e = parsed
	return nil
}
