package duration

import (
	"fmt"
	"strings"

	"github.com/chrisconley/chronon/parsing"
	"github.com/cockroachdb/apd/v3"
)

var unitNames = map[string]Unit{
	"d": Day, "day": Day, "days": Day,
	"h": Hour, "hr": Hour, "hour": Hour, "hours": Hour,
	"min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "sec": Second, "second": Second, "seconds": Second,
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
	"μs": Microsecond, "us": Microsecond, "microsecond": Microsecond, "microseconds": Microsecond,
	"ns": Nanosecond, "nanosecond": Nanosecond, "nanoseconds": Nanosecond,
}

// ParseUnit resolves a unit name or abbreviation such as "h" or "hours".
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[s]
	if !ok {
		return 0, parsing.TokenError(parsing.UnknownToken, s)
	}
	return u, nil
}

// Parse reads a sequence of <number> <unit> pairs such as "1 d 15.5 hours
// 25 ns", or a signed offset of the form ±HH[:MM[:SS]]. Every unit accepts
// fractional values; the sum is exact and rounded half to even onto the
// nanosecond grid. A leading sign applies to the whole sequence.
func Parse(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Zero, &parsing.Error{Kind: parsing.NothingToParse}
	}
	if d, ok, err := parseOffset(trimmed); ok {
		return d, err
	}

	sc := parsing.NewScanner(trimmed)
	negative := sc.Accept('-')
	if !negative {
		sc.Accept('+')
	}

	var total apd.Decimal
	for sc.SkipSpaces(); !sc.Done(); sc.SkipSpaces() {
		literal, err := readNumber(sc)
		if err != nil {
			return Zero, err
		}
		sc.SkipSpaces()
		tok := sc.Next()
		if tok.Kind != parsing.Word {
			return Zero, &parsing.Error{Kind: parsing.UnknownOrMissingUnit, Token: tok.Text, Pos: tok.Pos}
		}
		unit, ok := unitNames[tok.Text]
		if !ok {
			return Zero, &parsing.Error{Kind: parsing.UnknownToken, Token: tok.Text, Pos: tok.Pos}
		}
		scaled, err := scaledLiteral(literal, unit)
		if err != nil {
			return Zero, &parsing.Error{Kind: parsing.ValueError, Token: literal, Err: err}
		}
		if _, err := decimalContext.Add(&total, &total, scaled); err != nil {
			return Zero, &parsing.Error{Kind: parsing.ValueError, Err: err}
		}
	}
	if negative {
		total.Negative = !total.Negative
	}
	d, err := fromDecimalNanoseconds(&total)
	if err != nil {
		return d, &parsing.Error{Kind: parsing.ValueError, Err: fmt.Errorf("parsing %q: %w", s, err)}
	}
	return d, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// readNumber consumes an optionally signed decimal literal.
func readNumber(sc *parsing.Scanner) (string, error) {
	start := sc.Pos()
	var b strings.Builder
	if sc.Accept('-') {
		b.WriteByte('-')
	} else {
		sc.Accept('+')
	}
	digits := false
	if tok := sc.Peek(); tok.Kind == parsing.Numeric {
		b.WriteString(sc.Next().Text)
		digits = true
	}
	if sc.Accept('.') {
		b.WriteByte('.')
		if tok := sc.Peek(); tok.Kind == parsing.Numeric {
			b.WriteString(sc.Next().Text)
			digits = true
		}
	}
	if !digits {
		tok := sc.Peek()
		return "", &parsing.Error{Kind: parsing.ValueError, Token: tok.Text, Pos: start}
	}
	return b.String(), nil
}

// parseOffset reads ±HH, ±HHMM, ±HH:MM, ±HHMMSS or ±HH:MM:SS. The boolean is
// false when s is not shaped like an offset at all.
func parseOffset(s string) (Duration, bool, error) {
	if s[0] != '+' && s[0] != '-' {
		return Zero, false, nil
	}
	body := s[1:]
	if body == "" || strings.Trim(body, "0123456789:") != "" {
		return Zero, false, nil
	}
	var groups []string
	for _, group := range strings.Split(body, ":") {
		for len(group) > 2 {
			groups = append(groups, group[:2])
			group = group[2:]
		}
		groups = append(groups, group)
	}
	if len(groups) > 3 {
		return Zero, true, parsing.Errorf(parsing.InvalidTimezone, "%q is not [+/-]HH[:MM[:SS]]", s)
	}
	var fields [3]int64
	for i, group := range groups {
		if len(group) != 2 {
			return Zero, true, parsing.Errorf(parsing.InvalidTimezone, "%q is not [+/-]HH[:MM[:SS]]", s)
		}
		v, err := parsing.Int(parsing.Token{Kind: parsing.Numeric, Text: group}, 64)
		if err != nil {
			return Zero, true, err
		}
		fields[i] = v
	}
	if fields[1] > 59 || fields[2] > 59 {
		return Zero, true, parsing.Errorf(parsing.InvalidTimezone, "%q has minutes or seconds out of range", s)
	}
	d := Hour.Mul(fields[0]).Add(Minute.Mul(fields[1])).Add(Second.Mul(fields[2]))
	if s[0] == '-' {
		d = d.Neg()
	}
	return d, true, nil
}

// ParseOffset reads a timezone offset of the form ±HH[:MM[:SS]] or
// ±HH[MM[SS]].
func ParseOffset(s string) (Duration, error) {
	if s == "" {
		return Zero, &parsing.Error{Kind: parsing.NothingToParse}
	}
	d, ok, err := parseOffset(s)
	if !ok {
		return Zero, parsing.Errorf(parsing.InvalidTimezone, "%q is not [+/-]HH[:MM[:SS]]", s)
	}
	return d, err
}
