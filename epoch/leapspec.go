package epoch

import (
	"fmt"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timescale"
)

func utcLabel(utc duration.Duration) string {
	return gregorianFromClock(utc).dateTime() + " " + timescale.UTC.String()
}

// LeapSecondTableSpec renders t with its instants as UTC epoch strings and
// its offsets as exact decimal seconds.
func LeapSecondTableSpec(t *leapseconds.Table) specs.LeapSecondTableSpec {
	var spec specs.LeapSecondTableSpec
	for _, r := range t.Records() {
		spec.Records = append(spec.Records, specs.LeapSecondSpec{
			UTC:       utcLabel(r.UTC()),
			Offset:    r.Offset.DecimalSeconds(),
			Announced: r.Announced,
		})
	}
	if expiry, ok := t.Expiry(); ok {
		spec.Expires = utcLabel(expiry)
	}
	return spec
}

// LeapSecondTableFromSpec builds a table from its wire form.
func LeapSecondTableFromSpec(spec specs.LeapSecondTableSpec) (*leapseconds.Table, error) {
	records := make([]leapseconds.Record, 0, len(spec.Records))
	for i, rs := range spec.Records {
		utc, err := utcReading(rs.UTC)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid utc: %w", i, err)
		}
		offset, err := duration.Parse(rs.Offset + " s")
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid offset: %w", i, err)
		}
		records = append(records, leapseconds.NewRecord(utc, offset, rs.Announced))
	}
	t, err := leapseconds.NewTable(records)
	if err != nil {
		return nil, err
	}
	if spec.Expires != "" {
		expiry, err := utcReading(spec.Expires)
		if err != nil {
			return nil, fmt.Errorf("invalid expires: %w", err)
		}
		t = t.WithExpiry(expiry)
	}
	return t, nil
}

// utcReading returns the UTC clock reading, counted from 1900-01-01, of an
// epoch string.
func utcReading(s string) (duration.Duration, error) {
	e, err := Parse(s)
	if err != nil {
		return duration.Zero, err
	}
	return e.ToDurationSince1900(timescale.UTC), nil
}
