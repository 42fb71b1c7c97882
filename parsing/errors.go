package parsing

import (
	"fmt"
	"strings"
)

// Kind classifies a parsing failure. A Kind is itself an error so callers can
// match on it with errors.Is(err, parsing.UnknownToken).
type Kind uint8

const (
	NothingToParse Kind = iota + 1
	ValueError
	UnknownFormat
	UnknownOrMissingUnit
	UnknownToken
	UnexpectedCharacter
	WeekdayMismatch
	UnknownMonthName
	UnknownWeekday
	TimeSystem
	ISO8601
	InvalidTimezone
	UnknownFormattingToken
	IntegerParse
)

func (k Kind) String() string {
	switch k {
	case NothingToParse:
		return "NothingToParse"
	case ValueError:
		return "ValueError"
	case UnknownFormat:
		return "UnknownFormat"
	case UnknownOrMissingUnit:
		return "UnknownOrMissingUnit"
	case UnknownToken:
		return "UnknownToken"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case WeekdayMismatch:
		return "WeekdayMismatch"
	case UnknownMonthName:
		return "UnknownMonthName"
	case UnknownWeekday:
		return "UnknownWeekday"
	case TimeSystem:
		return "TimeSystem"
	case ISO8601:
		return "ISO8601"
	case InvalidTimezone:
		return "InvalidTimezone"
	case UnknownFormattingToken:
		return "UnknownFormattingToken"
	case IntegerParse:
		return "IntegerParse"
	default:
		return "Unknown"
	}
}

func (k Kind) Error() string {
	switch k {
	case NothingToParse:
		return "nothing to parse"
	case ValueError:
		return "invalid value"
	case UnknownFormat:
		return "unknown format"
	case UnknownOrMissingUnit:
		return "unknown or missing unit"
	case UnknownToken:
		return "unknown token"
	case UnexpectedCharacter:
		return "unexpected character"
	case WeekdayMismatch:
		return "weekday does not match date"
	case UnknownMonthName:
		return "unknown month name"
	case UnknownWeekday:
		return "unknown weekday"
	case TimeSystem:
		return "unknown time system"
	case ISO8601:
		return "invalid ISO8601 string"
	case InvalidTimezone:
		return "invalid timezone offset"
	case UnknownFormattingToken:
		return "unknown formatting token"
	case IntegerParse:
		return "invalid integer"
	default:
		return "parsing error"
	}
}

// Error is the structured failure returned by every parser in this module.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	// Token is the offending input for UnknownToken, UnknownWeekday,
	// UnknownMonthName, TimeSystem and UnknownFormattingToken.
	Token string

	// Found, Option1 and Option2 describe an UnexpectedCharacter: the rune
	// seen and the two separators acceptable at that grammar position.
	// A zero option means only one separator was acceptable.
	Found   rune
	Option1 rune
	Option2 rune

	// FoundWeekday and ExpectedWeekday describe a WeekdayMismatch.
	FoundWeekday    string
	ExpectedWeekday string

	// Pos is the byte offset into the input where the failure was detected.
	Pos int

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch e.Kind {
	case UnknownToken, UnknownWeekday, UnknownMonthName, TimeSystem, UnknownFormattingToken:
		if e.Token != "" {
			fmt.Fprintf(&b, " %q", e.Token)
		}
	case UnexpectedCharacter:
		fmt.Fprintf(&b, " %q at %d: expected %q", e.Found, e.Pos, e.Option1)
		if e.Option2 != 0 {
			fmt.Fprintf(&b, " or %q", e.Option2)
		}
	case WeekdayMismatch:
		fmt.Fprintf(&b, ": found %s, expected %s", e.FoundWeekday, e.ExpectedWeekday)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of this error.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Errorf builds an Error of the given kind wrapping a formatted cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// TokenError builds an Error of the given kind carrying the offending token.
func TokenError(kind Kind, token string) *Error {
	return &Error{Kind: kind, Token: token}
}
