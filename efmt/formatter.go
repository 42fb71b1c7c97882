package efmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/timescale"
)

// Formatter renders an epoch with a Format. The epoch's display scale picks
// the clock when the format names its scale; otherwise the UTC clock is
// read, as Parse reads such text. A timezone offset shifts the reading
// without changing the instant.
type Formatter struct {
	epoch  epoch.Epoch
	format Format
	offset duration.Duration
}

func New(e epoch.Epoch, f Format) Formatter {
	return Formatter{epoch: e, format: f}
}

// WithTimezone returns a copy of f that shows the clock offset ahead of
// its scale, as a wall clock in a fixed time zone would.
func (f Formatter) WithTimezone(offset duration.Duration) Formatter {
	f.offset = offset
	return f
}

// InTimeScale returns a copy of f that reads the ts clock.
func (f Formatter) InTimeScale(ts timescale.TimeScale) Formatter {
	f.epoch = f.epoch.InTimeScale(ts)
	return f
}

func (f Formatter) String() string {
	ts := f.epoch.TimeScale()
	if !f.format.CarriesScale() {
		ts = timescale.UTC
	}
	g := f.epoch.ToGregorianOffset(ts, f.offset)

	var b strings.Builder
	for i, it := range f.format.items {
		value, emit := f.render(it, g, ts)
		if !emit {
			continue
		}
		if i > 0 {
			for _, sep := range f.format.items[i-1].separators() {
				b.WriteRune(sep)
			}
		}
		b.WriteString(value)
		if i == len(f.format.items)-1 {
			for _, sep := range it.separators() {
				b.WriteRune(sep)
			}
		}
	}
	return b.String()
}

func (f Formatter) render(it Item, g epoch.Gregorian, ts timescale.TimeScale) (string, bool) {
	switch it.Token {
	case Year:
		return fmt.Sprintf("%04d", g.Year), true
	case Month:
		return fmt.Sprintf("%02d", g.Month), true
	case Day:
		return fmt.Sprintf("%02d", g.Day), true
	case Hour:
		return fmt.Sprintf("%02d", g.Hour), true
	case Minute:
		return fmt.Sprintf("%02d", g.Minute), true
	case Second:
		return fmt.Sprintf("%02d", g.Second), true
	case Subsecond:
		return fmt.Sprintf("%09d", g.Nanosecond), !it.Optional || g.Nanosecond > 0
	case Timescale:
		return ts.String(), !it.Optional || ts != timescale.UTC
	case TimescaleCode:
		return ts.ShortCode(), !it.Optional || ts != timescale.UTC
	case DayOfYearInteger:
		return fmt.Sprintf("%03d", ordinal(g)), true
	case DayOfYear:
		return strconv.FormatFloat(fractionalOrdinal(g), 'f', -1, 64), true
	case Weekday:
		return epoch.WeekdayOf(g.Year, g.Month, g.Day).String(), true
	case WeekdayShort:
		return epoch.WeekdayOf(g.Year, g.Month, g.Day).Short(), true
	case WeekdayDecimal:
		return strconv.Itoa(epoch.WeekdayOf(g.Year, g.Month, g.Day).C89()), true
	case MonthName:
		return epoch.MonthName(g.Month).String(), true
	case MonthNameShort:
		return epoch.MonthName(g.Month).Short(), true
	case OffsetHours:
		return renderOffset(f.offset), true
	default:
		return "", false
	}
}

func ordinal(g epoch.Gregorian) int {
	day := g.Day
	for m := 1; m < g.Month; m++ {
		day += epoch.DaysInMonth(g.Year, m)
	}
	return day
}

func fractionalOrdinal(g epoch.Gregorian) float64 {
	tod := duration.Compose(1, 0, uint64(g.Hour), uint64(g.Minute), uint64(g.Second), 0, 0, uint64(g.Nanosecond))
	return float64(ordinal(g)) + tod.ToSeconds()/duration.SecondsPerDay
}

// renderOffset writes ±HH:MM, adding :SS when the offset has seconds.
func renderOffset(offset duration.Duration) string {
	p := offset.Decompose()
	sign := '+'
	if p.Sign < 0 {
		sign = '-'
	}
	s := fmt.Sprintf("%c%02d:%02d", sign, p.Days*24+p.Hours, p.Minutes)
	if p.Seconds > 0 {
		s += fmt.Sprintf(":%02d", p.Seconds)
	}
	return s
}
