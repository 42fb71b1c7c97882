package timeseries

import (
	"fmt"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/specs"
)

var _ specs.Series = Series

// FromSpec builds the series a TimeSeriesSpec describes.
func FromSpec(spec specs.TimeSeriesSpec) (TimeSeries, error) {
	start, err := epoch.FromSpec(spec.Start)
	if err != nil {
		return TimeSeries{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := epoch.FromSpec(spec.End)
	if err != nil {
		return TimeSeries{}, fmt.Errorf("invalid end: %w", err)
	}
	step, err := duration.FromSpec(spec.Step)
	if err != nil {
		return TimeSeries{}, fmt.Errorf("invalid step: %w", err)
	}
	if spec.Inclusive {
		return Inclusive(start, end, step), nil
	}
	return Exclusive(start, end, step), nil
}

// Series implements specs.Series.
func Series(spec specs.TimeSeriesSpec) ([]specs.EpochSpec, error) {
	ts, err := FromSpec(spec)
	if err != nil {
		return nil, err
	}
	out := make([]specs.EpochSpec, 0, min(ts.Len(), 1<<16))
	for e := range ts.All() {
		out = append(out, e.Spec())
	}
	return out, nil
}
