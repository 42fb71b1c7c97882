// Package parsing holds the lexical layer shared by the duration and
// date-time parsers: a rune scanner that classifies runs of input and the
// structured Error every parser returns.
package parsing

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind is the lexical class of a run of input.
type TokenKind uint8

const (
	EOF TokenKind = iota
	Numeric
	Word
	Space
	Separator
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Numeric:
		return "Numeric"
	case Word:
		return "Word"
	case Space:
		return "Space"
	case Separator:
		return "Separator"
	default:
		return "Unknown"
	}
}

// Token is a classified run of input. Numeric tokens are ASCII digit runs,
// Word tokens are letter runs, Space tokens are whitespace runs and
// Separator tokens are a single other rune.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Rune returns the first rune of the token, or zero for EOF.
func (t Token) Rune() rune {
	r, _ := utf8.DecodeRuneInString(t.Text)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Scanner walks an input string. Parsers pull classified tokens with Next
// and consume exact separators with Accept, so a separator letter such as
// the 'T' between date and time does not need its own token class.
type Scanner struct {
	src string
	pos int
}

func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

func (s *Scanner) Pos() int { return s.pos }

// Seek moves back to a position returned by Pos.
func (s *Scanner) Seek(pos int) { s.pos = pos }

// Done reports whether the whole input has been consumed.
func (s *Scanner) Done() bool { return s.pos >= len(s.src) }

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string { return s.src[s.pos:] }

// PeekRune returns the next rune without consuming it, or zero at the end.
func (s *Scanner) PeekRune() rune {
	if s.Done() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() Token {
	tok, _ := s.scan()
	return tok
}

// Next consumes and returns the next token.
func (s *Scanner) Next() Token {
	tok, end := s.scan()
	s.pos = end
	return tok
}

// Accept consumes r if it is the next rune. A space matches any single
// whitespace rune.
func (s *Scanner) Accept(r rune) bool {
	next := s.PeekRune()
	if next == 0 {
		return false
	}
	if next != r && !(r == ' ' && unicode.IsSpace(next)) {
		return false
	}
	s.pos += utf8.RuneLen(next)
	return true
}

// SkipSpaces consumes a whitespace run and reports whether any was present.
func (s *Scanner) SkipSpaces() bool {
	start := s.pos
	for !s.Done() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	return s.pos > start
}

// NextDigits consumes a run of at most max ASCII digits. When the next
// rune is not a digit nothing is consumed and the peeked token is returned.
func (s *Scanner) NextDigits(max int) Token {
	start := s.pos
	for s.pos < len(s.src) && s.pos-start < max && isDigit(rune(s.src[s.pos])) {
		s.pos++
	}
	if s.pos == start {
		return s.Peek()
	}
	return Token{Kind: Numeric, Text: s.src[start:s.pos], Pos: start}
}

func (s *Scanner) scan() (Token, int) {
	if s.Done() {
		return Token{Kind: EOF, Pos: s.pos}, s.pos
	}
	first, size := utf8.DecodeRuneInString(s.src[s.pos:])
	var class func(rune) bool
	kind := Separator
	switch {
	case isDigit(first):
		kind, class = Numeric, isDigit
	case unicode.IsLetter(first):
		kind, class = Word, unicode.IsLetter
	case unicode.IsSpace(first):
		kind, class = Space, unicode.IsSpace
	}
	end := s.pos + size
	if class != nil {
		for end < len(s.src) {
			r, n := utf8.DecodeRuneInString(s.src[end:])
			if !class(r) {
				break
			}
			end += n
		}
	}
	return Token{Kind: kind, Text: s.src[s.pos:end], Pos: s.pos}, end
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Int parses a Numeric token as a base-10 integer of the given bit size.
// Overflow is reported as an IntegerParse error wrapping the strconv error.
func Int(tok Token, bitSize int) (int64, error) {
	if tok.Kind != Numeric {
		return 0, &Error{Kind: ValueError, Token: tok.Text, Pos: tok.Pos}
	}
	v, err := strconv.ParseInt(tok.Text, 10, bitSize)
	if err != nil {
		return 0, &Error{Kind: IntegerParse, Token: tok.Text, Pos: tok.Pos, Err: err}
	}
	return v, nil
}

// Nanos converts a run of fractional-second digits to nanoseconds. Up to
// nine digits are significant; shorter runs are scaled by 10^(9-n) and
// longer runs are truncated.
func Nanos(tok Token) (uint32, error) {
	if tok.Kind != Numeric {
		return 0, &Error{Kind: ValueError, Token: tok.Text, Pos: tok.Pos}
	}
	digits := tok.Text
	if len(digits) > 9 {
		digits = digits[:9]
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, &Error{Kind: IntegerParse, Token: tok.Text, Pos: tok.Pos, Err: err}
	}
	for i := len(digits); i < 9; i++ {
		v *= 10
	}
	return uint32(v), nil
}

// Expect consumes one of the two separators. At the end of input it returns
// an ISO8601 error; otherwise a mismatch is an UnexpectedCharacter error.
// A zero option2 means only option1 is acceptable.
func (s *Scanner) Expect(option1, option2 rune) (rune, error) {
	if s.Accept(option1) {
		return option1, nil
	}
	if option2 != 0 && s.Accept(option2) {
		return option2, nil
	}
	if s.Done() {
		return 0, Errorf(ISO8601, "input ends where %q was expected", option1)
	}
	return 0, &Error{Kind: UnexpectedCharacter, Found: s.PeekRune(), Option1: option1, Option2: option2, Pos: s.pos}
}
