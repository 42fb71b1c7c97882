// Package efmt renders epochs with %-directive layouts and parses text back
// with the same layouts.
package efmt

import (
	"strings"
	"unicode/utf8"

	"github.com/chrisconley/chronon/parsing"
)

// Token is the calendar field an Item renders.
type Token uint8

const (
	Year Token = iota
	Month
	Day
	Hour
	Minute
	Second
	Subsecond
	Timescale
	TimescaleCode
	DayOfYearInteger
	DayOfYear
	Weekday
	WeekdayShort
	WeekdayDecimal
	MonthName
	MonthNameShort
	OffsetHours
)

var directives = map[rune]Token{
	'Y': Year,
	'm': Month,
	'd': Day,
	'H': Hour,
	'M': Minute,
	'S': Second,
	'f': Subsecond,
	'T': Timescale,
	't': TimescaleCode,
	'j': DayOfYearInteger,
	'J': DayOfYear,
	'A': Weekday,
	'a': WeekdayShort,
	'w': WeekdayDecimal,
	'B': MonthName,
	'b': MonthNameShort,
	'z': OffsetHours,
}

// Directive returns the layout letter of t.
func (t Token) Directive() rune {
	for r, tok := range directives {
		if tok == t {
			return r
		}
	}
	return 0
}

// Item is one field of a Format followed by up to two separator runes.
// Optional items may be absent from parsed text and are skipped when
// formatting if they carry no information.
type Item struct {
	Token           Token
	Separator       rune
	SecondSeparator rune
	Optional        bool
}

func (it Item) separators() []rune {
	var seps []rune
	if it.Separator != 0 {
		seps = append(seps, it.Separator)
	}
	if it.SecondSeparator != 0 {
		seps = append(seps, it.SecondSeparator)
	}
	return seps
}

// Format is an ordered list of Items.
type Format struct {
	items []Item
}

// Items returns a copy of the items of f.
func (f Format) Items() []Item { return append([]Item(nil), f.items...) }

// CarriesScale reports whether f names the time scale of the text it
// renders. Text without one is read back as UTC.
func (f Format) CarriesScale() bool {
	for _, it := range f.items {
		if it.Token == Timescale || it.Token == TimescaleCode {
			return true
		}
	}
	return false
}

// String renders the layout f was compiled from.
func (f Format) String() string {
	var b strings.Builder
	for _, it := range f.items {
		b.WriteByte('%')
		b.WriteRune(it.Token.Directive())
		if it.Optional {
			b.WriteByte('?')
		}
		for _, sep := range it.separators() {
			b.WriteRune(sep)
		}
	}
	return b.String()
}

// ParseFormat compiles a layout such as "%Y-%m-%dT%H:%M:%S.%f %T". Each
// directive may be followed by at most two separator runes and a '?' that
// marks it optional.
func ParseFormat(layout string) (Format, error) {
	if layout == "" {
		return Format{}, &parsing.Error{Kind: parsing.NothingToParse}
	}
	chunks := strings.Split(layout, "%")
	if chunks[0] != "" {
		return Format{}, parsing.TokenError(parsing.UnknownFormattingToken, chunks[0])
	}
	var f Format
	for _, chunk := range chunks[1:] {
		directive, size := utf8.DecodeRuneInString(chunk)
		tok, ok := directives[directive]
		if !ok {
			return Format{}, parsing.TokenError(parsing.UnknownFormattingToken, "%"+chunk)
		}
		it := Item{Token: tok}
		var seps []rune
		for _, r := range chunk[size:] {
			if r == '?' {
				it.Optional = true
				continue
			}
			seps = append(seps, r)
		}
		if len(seps) > 2 {
			return Format{}, parsing.Errorf(parsing.UnknownFormat, "%q: at most two separators may follow %%%c", layout, directive)
		}
		if len(seps) > 0 {
			it.Separator = seps[0]
		}
		if len(seps) > 1 {
			it.SecondSeparator = seps[1]
		}
		f.items = append(f.items, it)
	}
	return f, nil
}

// MustParseFormat is ParseFormat for layouts known to be valid.
func MustParseFormat(layout string) Format {
	f, err := ParseFormat(layout)
	if err != nil {
		panic(err)
	}
	return f
}

var (
	// ISO8601 renders every field and the time scale,
	// e.g. "2015-02-07T11:22:33.000000000 UTC".
	ISO8601 = MustParseFormat("%Y-%m-%dT%H:%M:%S.%f %T")
	// ISO8601Flex drops a zero fraction and a UTC scale.
	ISO8601Flex    = MustParseFormat("%Y-%m-%dT%H:%M:%S.%f? %T?")
	ISO8601Date    = MustParseFormat("%Y-%m-%d")
	ISO8601Ordinal = MustParseFormat("%Y-%j")
	// RFC3339 carries a numeric offset instead of a scale, so it reads the
	// UTC clock like every other scale-free layout.
	RFC3339     = MustParseFormat("%Y-%m-%dT%H:%M:%S.%f?%z")
	RFC2822     = MustParseFormat("%a, %d %b %Y %H:%M:%S")
	RFC2822Long = MustParseFormat("%A, %d %B %Y %H:%M:%S")
)
