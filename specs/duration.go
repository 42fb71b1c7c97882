package specs

// DurationSpec represents a signed time interval.
//
// The value is stored as text so that no precision is lost across language
// boundaries: a Duration spans ±32,768 centuries at nanosecond resolution,
// which no float64 can carry.
type DurationSpec struct {
	// Interval as a sequence of number and unit pairs.
	//
	// Numbers may carry a fraction and units may be abbreviated or spelled
	// out. A leading sign applies to the whole sequence, and a bare timezone
	// offset is accepted too.
	// Examples: "1 day 15 h 30 min 25 ns", "15.5 hours", "-2 min", "+05:30".
	Value string `json:"value"`
}

// NewDurationSpec wraps an interval string.
func NewDurationSpec(value string) DurationSpec {
	return DurationSpec{Value: value}
}
