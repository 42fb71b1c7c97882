package specs

import "fmt"

// TimeSeriesSpec represents an evenly spaced run of instants.
//
// The series yields Start, Start + Step, Start + 2·Step, ... up to End.
// End is yielded only when Inclusive is set and a step lands on it.
//
// Examples:
//   - Every 2 hours through half a day:
//     {"start": {"value": "2017-01-14T00:00:00 UTC"}, "end": {"value": "2017-01-14T12:00:00 UTC"},
//     "step": {"value": "2 h"}, "inclusive": true}
type TimeSeriesSpec struct {
	// Instant the series counts from.
	Start EpochSpec `json:"start"`

	// Instant the series stops at.
	End EpochSpec `json:"end"`

	// Spacing between consecutive instants. A zero step yields nothing.
	Step DurationSpec `json:"step"`

	// Whether End may be yielded.
	Inclusive bool `json:"inclusive"`
}

// NewTimeSeriesSpec creates a series spec.
//
// Returns error if any of start, end or step is empty.
func NewTimeSeriesSpec(start, end EpochSpec, step DurationSpec, inclusive bool) (TimeSeriesSpec, error) {
	if start.Value == "" || end.Value == "" {
		return TimeSeriesSpec{}, fmt.Errorf("time series: start and end are required (start=%q, end=%q)", start.Value, end.Value)
	}
	if step.Value == "" {
		return TimeSeriesSpec{}, fmt.Errorf("time series: step is required")
	}
	return TimeSeriesSpec{Start: start, End: end, Step: step, Inclusive: inclusive}, nil
}

// Series expands a TimeSeriesSpec into its instants.
//
// Returns the instants in order, rendered in the display scale of Start.
// Returns error if a field cannot be read.
//
// This is the spec-level interface using only primitive types.
// See timeseries.FromSpec for the reference implementation.
type Series func(spec TimeSeriesSpec) ([]EpochSpec, error)
