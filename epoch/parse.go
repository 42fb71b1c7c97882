package epoch

import (
	"fmt"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/parsing"
	"github.com/chrisconley/chronon/timescale"
)

// Parse reads an RFC 3339 style date-time,
//
//	[-]YYYY-MM-DD[(T| )HH:MM[:SS[.fffffffff]]][ ][Z|±HH[:]MM][ ][scale]
//
// or a prefixed day or second count such as "MJD 51544.5 TAI",
// "JD 2451545 TDB" or "SEC 1000000000 TT". Zero to nine fraction digits are
// significant; further digits are truncated. Without a scale suffix the
// reading is UTC, and the parsed epoch is displayed in the scale it was
// read in.
func Parse(s string) (Epoch, error) {
	return ParseWith(s, nil)
}

// ParseWith is Parse with an explicit leap second provider.
func ParseWith(s string, p leapseconds.Provider) (Epoch, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Epoch{}, &parsing.Error{Kind: parsing.NothingToParse}
	}
	sc := parsing.NewScanner(trimmed)
	var (
		e   Epoch
		err error
	)
	if sc.Peek().Kind == parsing.Word {
		e, err = parsePrefixed(sc)
	} else {
		e, err = parseDateTime(sc, provider(p))
	}
	if err != nil {
		return Epoch{}, fmt.Errorf("parsing epoch %q: %w", s, err)
	}
	return e, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Epoch {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func digits(sc *parsing.Scanner, max, bits int) (int64, error) {
	tok := sc.NextDigits(max)
	switch tok.Kind {
	case parsing.Numeric:
		return parsing.Int(tok, bits)
	case parsing.EOF:
		return 0, parsing.Errorf(parsing.ISO8601, "input ends where digits were expected")
	default:
		return 0, &parsing.Error{Kind: parsing.ISO8601, Token: tok.Text, Pos: tok.Pos}
	}
}

func parseDateTime(sc *parsing.Scanner, p leapseconds.Provider) (Epoch, error) {
	var g Gregorian
	negative := sc.Accept('-')
	year, err := digits(sc, 10, 32)
	if err != nil {
		return Epoch{}, err
	}
	if negative {
		year = -year
	}
	g.Year = int(year)

	fields := []struct {
		sep   rune
		value *int
	}{{'-', &g.Month}, {'-', &g.Day}}
	for _, f := range fields {
		if _, err := sc.Expect(f.sep, 0); err != nil {
			return Epoch{}, err
		}
		v, err := digits(sc, 2, 32)
		if err != nil {
			return Epoch{}, err
		}
		*f.value = int(v)
	}

	ts := timescale.UTC
	var offset duration.Duration
	if !sc.Done() {
		if _, err := sc.Expect('T', ' '); err != nil {
			return Epoch{}, err
		}
		if err := parseClock(sc, &g); err != nil {
			return Epoch{}, err
		}
		if ts, offset, err = parseSuffix(sc); err != nil {
			return Epoch{}, err
		}
	}

	e, err := FromGregorianWith(g, ts, p)
	if err != nil {
		return Epoch{}, err
	}
	return e.Add(offset.Neg()), nil
}

func parseClock(sc *parsing.Scanner, g *Gregorian) error {
	hour, err := digits(sc, 2, 32)
	if err != nil {
		return err
	}
	if _, err := sc.Expect(':', 0); err != nil {
		return err
	}
	minute, err := digits(sc, 2, 32)
	if err != nil {
		return err
	}
	g.Hour, g.Minute = int(hour), int(minute)
	if !sc.Accept(':') {
		return nil
	}
	second, err := digits(sc, 2, 32)
	if err != nil {
		return err
	}
	g.Second = int(second)
	if !sc.Accept('.') {
		return nil
	}
	if sc.Peek().Kind != parsing.Numeric {
		return nil
	}
	nanos, err := parsing.Nanos(sc.Next())
	if err != nil {
		return err
	}
	g.Nanosecond = int(nanos)
	return nil
}

// parseSuffix reads an optional 'Z' or numeric offset followed by an
// optional scale identifier.
func parseSuffix(sc *parsing.Scanner) (timescale.TimeScale, duration.Duration, error) {
	ts := timescale.UTC
	var offset duration.Duration
	sc.SkipSpaces()
	switch sc.PeekRune() {
	case 'Z':
		sc.Accept('Z')
	case '+', '-':
		var b strings.Builder
		b.WriteRune(sc.Next().Rune())
		for {
			if tok := sc.Peek(); tok.Kind == parsing.Numeric {
				b.WriteString(sc.Next().Text)
			} else if sc.Accept(':') {
				b.WriteByte(':')
			} else {
				break
			}
		}
		var err error
		if offset, err = duration.ParseOffset(b.String()); err != nil {
			return ts, offset, err
		}
	}
	sc.SkipSpaces()
	if sc.Done() {
		return ts, offset, nil
	}
	tok := sc.Next()
	if tok.Kind != parsing.Word {
		return ts, offset, &parsing.Error{Kind: parsing.UnknownFormat, Token: tok.Text, Pos: tok.Pos}
	}
	ts, err := timescale.Parse(tok.Text)
	if err != nil {
		return ts, offset, err
	}
	sc.SkipSpaces()
	if !sc.Done() {
		return ts, offset, &parsing.Error{Kind: parsing.UnknownFormat, Token: sc.Rest(), Pos: sc.Pos()}
	}
	return ts, offset, nil
}

func parsePrefixed(sc *parsing.Scanner) (Epoch, error) {
	prefix := sc.Next()
	unit := " d"
	switch strings.ToUpper(prefix.Text) {
	case "MJD", "JD":
	case "SEC":
		unit = " s"
	default:
		return Epoch{}, &parsing.Error{Kind: parsing.UnknownFormat, Token: prefix.Text, Pos: prefix.Pos}
	}
	sc.SkipSpaces()
	var literal strings.Builder
	if sc.Accept('-') {
		literal.WriteByte('-')
	}
	for {
		if tok := sc.Peek(); tok.Kind == parsing.Numeric {
			literal.WriteString(sc.Next().Text)
		} else if sc.Accept('.') {
			literal.WriteByte('.')
		} else {
			break
		}
	}
	if literal.Len() == 0 {
		return Epoch{}, &parsing.Error{Kind: parsing.ValueError, Token: sc.Rest(), Pos: sc.Pos()}
	}

	ts := timescale.UTC
	sc.SkipSpaces()
	if !sc.Done() {
		tok := sc.Next()
		parsed, err := timescale.Parse(tok.Text)
		if err != nil {
			return Epoch{}, err
		}
		ts = parsed
	}

	value, err := duration.Parse(literal.String() + unit)
	if err != nil {
		return Epoch{}, err
	}
	switch strings.ToUpper(prefix.Text) {
	case "MJD":
		return fromMJDDuration(value, ts), nil
	case "JD":
		return fromMJDDuration(value.Sub(duration.FromDays(jdMJD)), ts), nil
	default:
		return FromDuration(value, ts), nil
	}
}
