package epoch

import (
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/parsing"
	"github.com/chrisconley/chronon/timescale"
)

// Weekday counts from Monday, the weekday of 1900-01-01.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// Short returns the three letter abbreviation.
func (w Weekday) Short() string { return w.String()[:3] }

// C89 returns the C library numbering, Sunday being 0.
func (w Weekday) C89() int { return (int(w) + 1) % 7 }

// WeekdayFromC89 inverts C89.
func WeekdayFromC89(n int) Weekday { return Weekday((n + 6) % 7) }

// ParseWeekday accepts full or abbreviated English names, ignoring case.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return Weekday(i), nil
		}
	}
	return Monday, parsing.TokenError(parsing.UnknownWeekday, s)
}

func weekdayOfDays(daysSince1900 int64) Weekday {
	return Weekday(((daysSince1900 % 7) + 7) % 7)
}

// WeekdayOf returns the weekday of a calendar date.
func WeekdayOf(year, month, day int) Weekday {
	return weekdayOfDays(daysFromCivil(int64(year), month, day) - days1900)
}

// Weekday returns the weekday on the display clock.
func (e Epoch) Weekday() Weekday { return e.WeekdayIn(e.scale) }

// WeekdayIn returns the weekday on the ts clock.
func (e Epoch) WeekdayIn(ts timescale.TimeScale) Weekday {
	g := e.ToGregorian(ts)
	return WeekdayOf(g.Year, g.Month, g.Day)
}

// NextWeekday returns the first epoch strictly after e, at the same time of
// day on the display clock, that falls on w.
func (e Epoch) NextWeekday(w Weekday) Epoch {
	ahead := (int(w) - int(e.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return FromDuration(e.ToDuration(e.scale).Add(duration.Day.Mul(int64(ahead))), e.scale)
}

// PreviousWeekday returns the last epoch strictly before e, at the same time
// of day on the display clock, that falls on w.
func (e Epoch) PreviousWeekday(w Weekday) Epoch {
	behind := (int(e.Weekday()) - int(w) + 7) % 7
	if behind == 0 {
		behind = 7
	}
	return FromDuration(e.ToDuration(e.scale).Sub(duration.Day.Mul(int64(behind))), e.scale)
}
