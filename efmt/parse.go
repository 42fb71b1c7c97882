package efmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/parsing"
	"github.com/chrisconley/chronon/timescale"
)

// fields accumulates what a Format reads before the epoch is assembled.
type fields struct {
	g          epoch.Gregorian
	ts         timescale.TimeScale
	offset     duration.Duration
	dayOfYear  float64
	hasOrdinal bool
	weekday    epoch.Weekday
	hasWeekday bool
}

// Parse reads s laid out as f. Fields the format does not carry default to
// January 1st, midnight and UTC. A weekday, when present, must match the
// date.
func Parse(s string, f Format) (epoch.Epoch, error) {
	e, err := parse(s, f)
	if err != nil {
		return epoch.Epoch{}, fmt.Errorf("parsing %q with %q: %w", s, f, err)
	}
	return e, nil
}

// ParseLayout is Parse with a layout compiled on the fly.
func ParseLayout(s, layout string) (epoch.Epoch, error) {
	f, err := ParseFormat(layout)
	if err != nil {
		return epoch.Epoch{}, fmt.Errorf("compiling layout %q: %w", layout, err)
	}
	return Parse(s, f)
}

func parse(s string, f Format) (epoch.Epoch, error) {
	if strings.TrimSpace(s) == "" {
		return epoch.Epoch{}, &parsing.Error{Kind: parsing.NothingToParse}
	}
	sc := parsing.NewScanner(s)
	fl := fields{g: epoch.Gregorian{Month: 1, Day: 1}, ts: timescale.UTC}

	lastEmitted := false
	for i, it := range f.items {
		var seps []rune
		if i > 0 {
			seps = f.items[i-1].separators()
		}
		if it.Optional {
			mark, saved := sc.Pos(), fl
			if expectSeparators(sc, seps) == nil && fl.read(sc, it) == nil {
				lastEmitted = true
				continue
			}
			sc.Seek(mark)
			fl = saved
			lastEmitted = false
			continue
		}
		if err := expectSeparators(sc, seps); err != nil {
			return epoch.Epoch{}, err
		}
		if err := fl.read(sc, it); err != nil {
			return epoch.Epoch{}, err
		}
		lastEmitted = true
	}
	if lastEmitted {
		if err := expectSeparators(sc, f.items[len(f.items)-1].separators()); err != nil {
			return epoch.Epoch{}, err
		}
	}
	if !sc.Done() {
		return epoch.Epoch{}, &parsing.Error{Kind: parsing.UnknownFormat, Token: sc.Rest(), Pos: sc.Pos()}
	}
	return fl.assemble()
}

func expectSeparators(sc *parsing.Scanner, seps []rune) error {
	var option2 rune
	if len(seps) > 1 {
		option2 = seps[1]
	}
	for _, sep := range seps {
		if sc.Accept(sep) {
			continue
		}
		if sc.Done() {
			return parsing.Errorf(parsing.ISO8601, "input ends where %q was expected", sep)
		}
		return &parsing.Error{Kind: parsing.UnexpectedCharacter, Found: sc.PeekRune(), Option1: seps[0], Option2: option2, Pos: sc.Pos()}
	}
	return nil
}

func number(sc *parsing.Scanner, it Item, max int) (parsing.Token, error) {
	var tok parsing.Token
	if it.Separator != 0 {
		tok = sc.Next()
	} else {
		tok = sc.NextDigits(max)
	}
	switch tok.Kind {
	case parsing.Numeric:
		return tok, nil
	case parsing.EOF:
		return tok, parsing.Errorf(parsing.ISO8601, "input ends where %%%c was expected", it.Token.Directive())
	default:
		return tok, &parsing.Error{Kind: parsing.ValueError, Token: tok.Text, Pos: tok.Pos}
	}
}

func integer(sc *parsing.Scanner, it Item, max int) (int, error) {
	tok, err := number(sc, it, max)
	if err != nil {
		return 0, err
	}
	v, err := parsing.Int(tok, 32)
	return int(v), err
}

func word(sc *parsing.Scanner) (parsing.Token, error) {
	tok := sc.Next()
	if tok.Kind != parsing.Word {
		return tok, &parsing.Error{Kind: parsing.ValueError, Token: tok.Text, Pos: tok.Pos}
	}
	return tok, nil
}

func (fl *fields) read(sc *parsing.Scanner, it Item) error {
	var err error
	switch it.Token {
	case Year:
		negative := sc.Accept('-')
		fl.g.Year, err = integer(sc, it, 4)
		if negative {
			fl.g.Year = -fl.g.Year
		}
	case Month:
		fl.g.Month, err = integer(sc, it, 2)
	case Day:
		fl.g.Day, err = integer(sc, it, 2)
	case Hour:
		fl.g.Hour, err = integer(sc, it, 2)
	case Minute:
		fl.g.Minute, err = integer(sc, it, 2)
	case Second:
		fl.g.Second, err = integer(sc, it, 2)
	case Subsecond:
		var tok parsing.Token
		if tok, err = number(sc, it, 9); err == nil {
			var nanos uint32
			nanos, err = parsing.Nanos(tok)
			fl.g.Nanosecond = int(nanos)
		}
	case Timescale, TimescaleCode:
		var tok parsing.Token
		if tok, err = word(sc); err == nil {
			fl.ts, err = timescale.Parse(tok.Text)
		}
	case DayOfYearInteger:
		var doy int
		doy, err = integer(sc, it, 3)
		fl.dayOfYear, fl.hasOrdinal = float64(doy), true
	case DayOfYear:
		fl.dayOfYear, err = decimal(sc)
		fl.hasOrdinal = true
	case Weekday, WeekdayShort:
		var tok parsing.Token
		if tok, err = word(sc); err == nil {
			fl.weekday, err = epoch.ParseWeekday(tok.Text)
			fl.hasWeekday = true
		}
	case WeekdayDecimal:
		var c89 int
		if c89, err = integer(sc, it, 1); err == nil {
			if c89 > 6 {
				return &parsing.Error{Kind: parsing.UnknownWeekday, Token: strconv.Itoa(c89)}
			}
			fl.weekday, fl.hasWeekday = epoch.WeekdayFromC89(c89), true
		}
	case MonthName, MonthNameShort:
		var tok parsing.Token
		if tok, err = word(sc); err == nil {
			var m epoch.MonthName
			m, err = epoch.ParseMonthName(tok.Text)
			fl.g.Month = int(m)
		}
	case OffsetHours:
		fl.offset, err = offset(sc)
	}
	return err
}

func decimal(sc *parsing.Scanner) (float64, error) {
	start := sc.Pos()
	var b strings.Builder
	for {
		if tok := sc.Peek(); tok.Kind == parsing.Numeric {
			b.WriteString(sc.Next().Text)
		} else if sc.Accept('.') {
			b.WriteByte('.')
		} else {
			break
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, &parsing.Error{Kind: parsing.ValueError, Token: b.String(), Pos: start, Err: err}
	}
	return v, nil
}

// offset reads 'Z' or ±HH[:MM[:SS]].
func offset(sc *parsing.Scanner) (duration.Duration, error) {
	if sc.Accept('Z') {
		return duration.Zero, nil
	}
	sign := sc.PeekRune()
	if sign != '+' && sign != '-' {
		return duration.Zero, parsing.Errorf(parsing.InvalidTimezone, "expected Z or a signed offset at %d", sc.Pos())
	}
	sc.Accept(sign)
	var b strings.Builder
	b.WriteRune(sign)
	for group := 0; group < 3; group++ {
		if group > 0 {
			rest := sc.Rest()
			if len(rest) < 2 || rest[0] != ':' || rest[1] < '0' || rest[1] > '9' {
				break
			}
			sc.Accept(':')
			b.WriteByte(':')
		}
		tok := sc.NextDigits(2)
		if tok.Kind != parsing.Numeric {
			break
		}
		b.WriteString(tok.Text)
	}
	return duration.ParseOffset(b.String())
}

func (fl fields) assemble() (epoch.Epoch, error) {
	var (
		e   epoch.Epoch
		err error
	)
	if fl.hasOrdinal {
		e, err = epoch.FromDayOfYear(fl.g.Year, fl.dayOfYear, fl.ts)
		if err != nil {
			return epoch.Epoch{}, err
		}
		tod := duration.Compose(1, 0, uint64(fl.g.Hour), uint64(fl.g.Minute), uint64(fl.g.Second), 0, 0, uint64(fl.g.Nanosecond))
		e = e.Add(tod)
		date := e.ToGregorian(fl.ts)
		fl.g.Month, fl.g.Day = date.Month, date.Day
	} else if e, err = epoch.FromGregorian(fl.g, fl.ts); err != nil {
		return epoch.Epoch{}, err
	}
	if fl.hasWeekday {
		if expected := epoch.WeekdayOf(fl.g.Year, fl.g.Month, fl.g.Day); expected != fl.weekday {
			return epoch.Epoch{}, &parsing.Error{
				Kind:            parsing.WeekdayMismatch,
				FoundWeekday:    fl.weekday.String(),
				ExpectedWeekday: expected.String(),
			}
		}
	}
	return e.Add(fl.offset.Neg()), nil
}
