// Package timescale enumerates the supported time reference systems.
package timescale

import (
	"fmt"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/parsing"
)

// TimeScale identifies a time reference system. The zero value is TAI.
type TimeScale uint8

const (
	// TAI is International Atomic Time.
	TAI TimeScale = iota
	// TT is Terrestrial Time, TAI + 32.184 s.
	TT
	// ET is Ephemeris Time as computed by NAIF SPICE.
	ET
	// TDB is Barycentric Dynamical Time.
	TDB
	// UTC is Coordinated Universal Time, TAI minus the leap seconds.
	UTC
	// GPST is GPS time, TAI - 19 s, counted from 1980-01-06.
	GPST
	// GST is Galileo System Time, TAI - 19 s, counted from 1999-08-22.
	GST
	// BDT is BeiDou Time, TAI - 33 s, counted from 2006-01-01.
	BDT
	// QZSST is QZSS time, identical to GPST.
	QZSST
)

// All lists every TimeScale in encoding order.
var All = []TimeScale{TAI, TT, ET, TDB, UTC, GPST, GST, BDT, QZSST}

func (ts TimeScale) String() string {
	switch ts {
	case TAI:
		return "TAI"
	case TT:
		return "TT"
	case ET:
		return "ET"
	case TDB:
		return "TDB"
	case UTC:
		return "UTC"
	case GPST:
		return "GPST"
	case GST:
		return "GST"
	case BDT:
		return "BDT"
	case QZSST:
		return "QZSST"
	default:
		return "Unknown"
	}
}

// ShortCode returns the GNSS constellation code (GPS, GAL, BDS, QZSS) for
// GNSS scales and the canonical identifier otherwise.
func (ts TimeScale) ShortCode() string {
	switch ts {
	case GPST:
		return "GPS"
	case GST:
		return "GAL"
	case BDT:
		return "BDS"
	case QZSST:
		return "QZSS"
	default:
		return ts.String()
	}
}

// Format renders the short code for %x and the identifier otherwise.
// Width and flags apply as they do to a string.
func (ts TimeScale) Format(f fmt.State, verb rune) {
	text := ts.String()
	switch verb {
	case 'x':
		text, verb = ts.ShortCode(), 's'
	case 'q':
	default:
		verb = 's'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), text)
}

// IsGNSS reports whether ts is a continuous GNSS constellation scale.
func (ts TimeScale) IsGNSS() bool {
	return ts == GPST || ts == GST || ts == BDT || ts == QZSST
}

// Parse accepts canonical identifiers and GNSS short codes, ignoring case.
func Parse(s string) (TimeScale, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TAI":
		return TAI, nil
	case "TT":
		return TT, nil
	case "ET":
		return ET, nil
	case "TDB":
		return TDB, nil
	case "UTC":
		return UTC, nil
	case "GPST", "GPS":
		return GPST, nil
	case "GST", "GAL":
		return GST, nil
	case "BDT", "BDS":
		return BDT, nil
	case "QZSST", "QZSS":
		return QZSST, nil
	default:
		return TAI, parsing.TokenError(parsing.TimeSystem, s)
	}
}

// FromUint8 decodes the compact encoding. Unknown values map to TAI.
func FromUint8(v uint8) TimeScale {
	if int(v) >= len(All) {
		return TAI
	}
	return TimeScale(v)
}

func (ts TimeScale) Uint8() uint8 { return uint8(ts) }

func (ts TimeScale) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

func (ts *TimeScale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("invalid time scale: %w", err)
	}
	*ts = parsed
	return nil
}

var (
	ttOffset   = duration.Millisecond.Mul(32_184)
	gpstOffset = duration.Second.Mul(-19)
	bdtOffset  = duration.Second.Mul(-33)

	gpstOrigin = duration.Second.Mul(2_524_953_600)
	gstOrigin  = duration.Second.Mul(3_144_268_800)
	bdtOrigin  = duration.Second.Mul(3_345_062_400)
	j2000      = duration.Second.Mul(3_155_716_800)
)

// TTOffset is TT - TAI.
func TTOffset() duration.Duration { return ttOffset }

// J2000 is 2000-01-01T12:00:00 counted from 1900-01-01T00:00:00 on the same
// clock.
func J2000() duration.Duration { return j2000 }

// FixedOffset returns the scale's clock reading minus TAI when it is
// constant. UTC, ET and TDB have time dependent offsets and report false.
func (ts TimeScale) FixedOffset() (duration.Duration, bool) {
	switch ts {
	case TAI:
		return duration.Zero, true
	case TT:
		return ttOffset, true
	case GPST, GST, QZSST:
		return gpstOffset, true
	case BDT:
		return bdtOffset, true
	default:
		return duration.Zero, false
	}
}

// Origin is the scale's own clock reading, counted from 1900-01-01T00:00:00
// on that clock, at which its native elapsed count is zero: 1980-01-06 for
// GPST and QZSST, 1999-08-22 for GST, 2006-01-01 for BDT, J2000 for ET and
// TDB, and 1900-01-01 for the others.
func (ts TimeScale) Origin() duration.Duration {
	switch ts {
	case GPST, QZSST:
		return gpstOrigin
	case GST:
		return gstOrigin
	case BDT:
		return bdtOrigin
	case ET, TDB:
		return j2000
	default:
		return duration.Zero
	}
}
