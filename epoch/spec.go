package epoch

import (
	"fmt"

	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timescale"
)

// FromSpec reads an EpochSpec. A non-empty TimeScale overrides the display
// scale read from the value.
func FromSpec(spec specs.EpochSpec) (Epoch, error) {
	e, err := Parse(spec.Value)
	if err != nil {
		return Epoch{}, fmt.Errorf("invalid value: %w", err)
	}
	if spec.TimeScale == "" {
		return e, nil
	}
	ts, err := timescale.Parse(spec.TimeScale)
	if err != nil {
		return Epoch{}, fmt.Errorf("invalid time scale: %w", err)
	}
	return e.InTimeScale(ts), nil
}

// Spec renders e as an EpochSpec on its display clock.
func (e Epoch) Spec() specs.EpochSpec {
	return specs.NewEpochSpec(e.String(), e.scale.String())
}

// Convert implements specs.Convert.
func Convert(spec specs.EpochSpec, target string) (specs.EpochSpec, error) {
	e, err := FromSpec(spec)
	if err != nil {
		return specs.EpochSpec{}, err
	}
	ts, err := timescale.Parse(target)
	if err != nil {
		return specs.EpochSpec{}, fmt.Errorf("invalid target time scale: %w", err)
	}
	return e.InTimeScale(ts).Spec(), nil
}

var _ specs.Convert = Convert
