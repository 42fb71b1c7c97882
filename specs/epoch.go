package specs

// EpochSpec represents an absolute instant.
//
// The instant is written as a calendar reading so that it survives any
// transport, and is paired with the time scale it should be displayed in.
//
// Examples:
//   - {"value": "2015-02-07T11:22:33 UTC"}
//   - {"value": "2018-02-13T23:08:32.123456983Z", "time_scale": "TAI"}
//   - {"value": "MJD 51544.5 TT"}
type EpochSpec struct {
	// Instant as an RFC 3339 style date-time or a prefixed day or second
	// count.
	//
	// Date-times read YYYY-MM-DDTHH:MM:SS with zero to nine fraction digits
	// and an optional 'Z', numeric offset or scale suffix. Without a suffix
	// the reading is UTC. Prefixed counts read "MJD <days>", "JD <days>" or
	// "SEC <seconds>", each followed by an optional scale.
	Value string `json:"value"`

	// Display time scale of the instant.
	//
	// One of TAI, TT, ET, TDB, UTC, GPST, GST, BDT or QZSST; the GNSS codes
	// GPS, GAL, BDS and QZSS are accepted too. The scale never changes
	// which instant is meant. Empty keeps the scale read from Value.
	TimeScale string `json:"time_scale,omitempty"`
}

// NewEpochSpec wraps a date-time string and a display scale.
func NewEpochSpec(value, timeScale string) EpochSpec {
	return EpochSpec{Value: value, TimeScale: timeScale}
}

// Convert re-expresses an instant in another time scale.
//
// The returned spec names the same instant: only its display scale and
// calendar reading change. Returns error if the input cannot be read or the
// target scale is unknown.
//
// This is the spec-level interface using only primitive types.
// See epoch.Convert for the reference implementation.
type Convert func(epoch EpochSpec, targetTimeScale string) (EpochSpec, error)
