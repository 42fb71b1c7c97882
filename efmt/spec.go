package efmt

import (
	"fmt"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timescale"
)

// FromSpec builds a Formatter for e from a FormatSpec.
func FromSpec(e epoch.Epoch, spec specs.FormatSpec) (Formatter, error) {
	f, err := ParseFormat(spec.Layout)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid layout: %w", err)
	}
	fm := New(e, f)
	if spec.TimeScale != "" {
		ts, err := timescale.Parse(spec.TimeScale)
		if err != nil {
			return Formatter{}, fmt.Errorf("invalid time scale: %w", err)
		}
		fm = fm.InTimeScale(ts)
	}
	if spec.Timezone != "" {
		offset, err := duration.Parse(spec.Timezone)
		if err != nil {
			return Formatter{}, fmt.Errorf("invalid timezone: %w", err)
		}
		fm = fm.WithTimezone(offset)
	}
	return fm, nil
}

// FormatSpec implements specs.Format.
func FormatSpec(e specs.EpochSpec, spec specs.FormatSpec) (string, error) {
	parsed, err := epoch.FromSpec(e)
	if err != nil {
		return "", err
	}
	fm, err := FromSpec(parsed, spec)
	if err != nil {
		return "", err
	}
	return fm.String(), nil
}

var _ specs.Format = FormatSpec
