package epoch

import (
	"fmt"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/timescale"
)

// Gregorian is a calendar reading on some scale's clock. Second is 60 only
// while a UTC leap second is being inserted.
type Gregorian struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// days1900 is 1900-01-01 counted from 1970-01-01.
const days1900 = -25_567

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// daysFromCivil counts days from 1970-01-01 in the proleptic Gregorian
// calendar.
func daysFromCivil(year int64, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	mp := int64((month + 9) % 12)
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146_097 + doe - 719_468
}

func civilFromDays(z int64) (int64, int, int) {
	z += 719_468
	era := floorDiv(z, 146_097)
	doe := z - era*146_097
	yoe := (doe - doe/1_460 + doe/36_524 - doe/146_096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := int(doy - (153*mp+2)/5 + 1)
	month := int(mp + 3)
	if mp >= 10 {
		month = int(mp - 9)
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month]
}

// Validate reports the first out of range component. A second of 60 is
// accepted here; whether a leap second exists there is checked against the
// leap second table on construction.
func (g Gregorian) Validate() error {
	switch {
	case g.Month < 1 || g.Month > 12:
		return fmt.Errorf("%w: month %d", ErrInvalidGregorianDate, g.Month)
	case g.Day < 1 || g.Day > DaysInMonth(g.Year, g.Month):
		return fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidGregorianDate, g.Day, g.Year, g.Month)
	case g.Hour < 0 || g.Hour > 23:
		return fmt.Errorf("%w: hour %d", ErrInvalidGregorianDate, g.Hour)
	case g.Minute < 0 || g.Minute > 59:
		return fmt.Errorf("%w: minute %d", ErrInvalidGregorianDate, g.Minute)
	case g.Second < 0 || g.Second > 60:
		return fmt.Errorf("%w: second %d", ErrInvalidGregorianDate, g.Second)
	case g.Nanosecond < 0 || g.Nanosecond >= int(duration.NanosecondsPerSecond):
		return fmt.Errorf("%w: nanosecond %d", ErrInvalidGregorianDate, g.Nanosecond)
	}
	return nil
}

// clock returns the reading, counted from 1900-01-01T00:00:00, of a clock
// showing g.
func (g Gregorian) clock() (duration.Duration, error) {
	days := daysFromCivil(int64(g.Year), g.Month, g.Day) - days1900
	d, err := duration.Day.CheckedMul(days)
	if err != nil {
		return duration.Zero, fmt.Errorf("%w: year %d out of range", ErrInvalidGregorianDate, g.Year)
	}
	tod := duration.Compose(1, 0, uint64(g.Hour), uint64(g.Minute), uint64(g.Second), 0, 0, uint64(g.Nanosecond))
	d, err = d.CheckedAdd(tod)
	if err != nil {
		return duration.Zero, fmt.Errorf("%w: year %d out of range", ErrInvalidGregorianDate, g.Year)
	}
	return d, nil
}

func gregorianFromClock(clock duration.Duration) Gregorian {
	centuries, ns := clock.ToParts()
	days := int64(centuries)*duration.DaysPerCentury + int64(ns/duration.NanosecondsPerDay)
	year, month, day := civilFromDays(days + days1900)
	p := duration.FromParts(0, ns%duration.NanosecondsPerDay).Decompose()
	return Gregorian{
		Year:       int(year),
		Month:      month,
		Day:        day,
		Hour:       int(p.Hours),
		Minute:     int(p.Minutes),
		Second:     int(p.Seconds),
		Nanosecond: int(p.Milliseconds*1_000_000 + p.Microseconds*1_000 + p.Nanoseconds),
	}
}

// FromGregorian builds the epoch a ts clock shows as g, using the default
// leap second store for UTC.
func FromGregorian(g Gregorian, ts timescale.TimeScale) (Epoch, error) {
	return FromGregorianWith(g, ts, nil)
}

// FromGregorianWith is FromGregorian with an explicit leap second provider.
// Components are validated before any arithmetic. 23:59:60 is accepted only
// on the UTC clock during an inserted leap second; it resolves with the
// offset in force before the insertion.
func FromGregorianWith(g Gregorian, ts timescale.TimeScale, p leapseconds.Provider) (Epoch, error) {
	if err := g.Validate(); err != nil {
		return Epoch{}, err
	}
	p = provider(p)
	if g.Second == 60 {
		return fromLeapSecondLabel(g, ts, p)
	}
	clock, err := g.clock()
	if err != nil {
		return Epoch{}, err
	}
	return Epoch{tai: taiFromClock(clock, ts, p), scale: ts}, nil
}

func fromLeapSecondLabel(g Gregorian, ts timescale.TimeScale, p leapseconds.Provider) (Epoch, error) {
	invalid := fmt.Errorf("%w: no leap second at %04d-%02d-%02dT%02d:%02d:60 %s",
		ErrInvalidGregorianDate, g.Year, g.Month, g.Day, g.Hour, g.Minute, ts)
	if ts != timescale.UTC {
		return Epoch{}, invalid
	}
	g.Second = 59
	clock, err := g.clock()
	if err != nil {
		return Epoch{}, err
	}
	var before duration.Duration
	if r, ok := p.LookupUTC(clock); ok {
		before = r.Offset
	}
	tai := clock.Add(before).Add(duration.Second.Duration())
	if _, ok := p.InsertionAt(tai); !ok {
		return Epoch{}, invalid
	}
	return Epoch{tai: tai, scale: ts}, nil
}

// FromGregorianUTC is a shorthand for a UTC calendar reading.
func FromGregorianUTC(year, month, day, hour, minute, second, nanos int) (Epoch, error) {
	return FromGregorian(Gregorian{year, month, day, hour, minute, second, nanos}, timescale.UTC)
}

// FromGregorianTAI is a shorthand for a TAI calendar reading.
func FromGregorianTAI(year, month, day, hour, minute, second, nanos int) (Epoch, error) {
	return FromGregorian(Gregorian{year, month, day, hour, minute, second, nanos}, timescale.TAI)
}

// MustGregorianUTC is FromGregorianUTC for known-valid dates.
func MustGregorianUTC(year, month, day, hour, minute, second, nanos int) Epoch {
	e, err := FromGregorianUTC(year, month, day, hour, minute, second, nanos)
	if err != nil {
		panic(err)
	}
	return e
}

// ToGregorian returns the calendar reading of the ts clock at e. During a
// UTC leap second the reading is 23:59:60.
func (e Epoch) ToGregorian(ts timescale.TimeScale) Gregorian {
	return e.ToGregorianWith(ts, nil)
}

// ToGregorianWith is ToGregorian with an explicit leap second provider.
func (e Epoch) ToGregorianWith(ts timescale.TimeScale, p leapseconds.Provider) Gregorian {
	p = provider(p)
	if ts == timescale.UTC {
		if r, ok := p.InsertionAt(e.tai); ok {
			g := gregorianFromClock(e.tai.Sub(r.Offset))
			g.Second = 60
			return g
		}
	}
	return gregorianFromClock(clockReading(e.tai, ts, p))
}

// ToGregorianOffset returns the calendar reading of the ts clock at e shifted
// by a fixed offset, as shown by a wall clock in that time zone.
func (e Epoch) ToGregorianOffset(ts timescale.TimeScale, offset duration.Duration) Gregorian {
	if offset.IsZero() {
		return e.ToGregorian(ts)
	}
	return gregorianFromClock(e.ToDurationSince1900(ts).Add(offset))
}

// Year returns the calendar year on the display clock.
func (e Epoch) Year() int { return e.ToGregorian(e.scale).Year }

// DayOfYear returns the fractional ordinal day on the ts clock, 1.0 being
// January 1st at midnight.
func (e Epoch) DayOfYear(ts timescale.TimeScale) float64 {
	clock := e.ToDurationSince1900(ts)
	g := gregorianFromClock(clock)
	start, _ := Gregorian{Year: g.Year, Month: 1, Day: 1}.clock()
	return clock.Sub(start).ToUnit(duration.Day) + 1
}

// DurationInYear returns the time elapsed since January 1st midnight on the
// display clock.
func (e Epoch) DurationInYear() duration.Duration {
	clock := e.ToDurationSince1900(e.scale)
	start, _ := Gregorian{Year: gregorianFromClock(clock).Year, Month: 1, Day: 1}.clock()
	return clock.Sub(start)
}

// FromDayOfYear builds the epoch at the fractional ordinal day of year on
// the ts clock, 1.0 being January 1st at midnight.
func FromDayOfYear(year int, dayOfYear float64, ts timescale.TimeScale) (Epoch, error) {
	start, err := Gregorian{Year: year, Month: 1, Day: 1}.clock()
	if err != nil {
		return Epoch{}, err
	}
	if dayOfYear < 1 || dayOfYear >= 367 || (dayOfYear >= 366 && !IsLeapYear(year)) {
		return Epoch{}, fmt.Errorf("%w: day of year %g", ErrInvalidGregorianDate, dayOfYear)
	}
	clock := start.Add(duration.FromDays(dayOfYear - 1))
	return Epoch{tai: taiFromClock(clock, ts, provider(nil)), scale: ts}, nil
}

// FromGregorianAtMidnight builds the epoch at 00:00:00 of a ts calendar day.
func FromGregorianAtMidnight(year, month, day int, ts timescale.TimeScale) (Epoch, error) {
	return FromGregorian(Gregorian{Year: year, Month: month, Day: day}, ts)
}

// FromGregorianAtNoon builds the epoch at 12:00:00 of a ts calendar day.
func FromGregorianAtNoon(year, month, day int, ts timescale.TimeScale) (Epoch, error) {
	return FromGregorian(Gregorian{Year: year, Month: month, Day: day, Hour: 12}, ts)
}

// WithHMS returns the epoch on the same display calendar day as e at the
// given time of day, dropping any fraction of a second.
func (e Epoch) WithHMS(hour, minute, second int) (Epoch, error) {
	g := e.ToGregorian(e.scale)
	g.Hour, g.Minute, g.Second, g.Nanosecond = hour, minute, second, 0
	return FromGregorian(g, e.scale)
}
