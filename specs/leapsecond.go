package specs

// LeapSecondSpec represents one row of a TAI - UTC table.
//
// Each row states the UTC instant from which a cumulative offset applies.
// Rows of a table are strictly increasing by UTC and their offsets never
// decrease.
type LeapSecondSpec struct {
	// UTC instant the offset takes effect, as an EpochSpec value.
	// Example: "2017-01-01T00:00:00 UTC".
	UTC string `json:"utc"`

	// Cumulative TAI - UTC offset as a decimal number of seconds.
	//
	// Stored as string to keep the fractional offsets of the 1960s exact.
	// Examples: "37", "1.4228180".
	Offset string `json:"offset"`

	// Whether the row is an announced IERS leap second. The pre-1972 rate
	// offsets are not.
	Announced bool `json:"announced"`
}

// LeapSecondTableSpec is a whole TAI - UTC table.
type LeapSecondTableSpec struct {
	Records []LeapSecondSpec `json:"records"`

	// Instant after which the table is no longer guaranteed complete,
	// as an EpochSpec value. Empty when unknown.
	Expires string `json:"expires,omitempty"`
}
