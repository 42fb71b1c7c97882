package leapseconds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/parsing"
	"github.com/rs/zerolog/log"
)

// ParseList reads the IERS leap-seconds.list format: '#' comment lines,
// an optional "#@ <expiry>" line, and data lines of "<seconds since
// 1900-01-01 UTC> <TAI-UTC>" with an optional trailing comment.
func ParseList(r io.Reader) (*Table, error) {
	var (
		records []Record
		expiry  duration.Duration
		expires bool
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(text, "#@"); ok {
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: %w", line, &parsing.Error{Kind: parsing.UnknownFormat})
			}
			seconds, err := parsing.Int(parsing.Token{Kind: parsing.Numeric, Text: fields[0]}, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid expiry: %w", line, err)
			}
			expiry, expires = duration.Second.Mul(seconds), true
			continue
		}
		text, _, _ = strings.Cut(text, "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %w", line, &parsing.Error{Kind: parsing.UnknownFormat, Token: text})
		}
		seconds, err := parsing.Int(parsing.Token{Kind: parsing.Numeric, Text: fields[0]}, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestamp: %w", line, err)
		}
		offset, err := duration.Parse(fields[1] + " s")
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid offset: %w", line, err)
		}
		records = append(records, NewRecord(duration.Second.Mul(seconds), offset, true))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading leap second list: %w", err)
	}
	if len(records) == 0 {
		return nil, &parsing.Error{Kind: parsing.NothingToParse}
	}
	t, err := NewTable(records)
	if err != nil {
		return nil, err
	}
	if expires {
		t = t.WithExpiry(expiry)
	}
	return t, nil
}

// LoadFile reads a leap-seconds.list file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening leap second list: %w", err)
	}
	defer f.Close()

	t, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("records", t.Len()).Msg("loaded leap second list")
	return t, nil
}
