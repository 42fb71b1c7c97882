package duration

import (
	"fmt"

	"github.com/chrisconley/chronon/specs"
)

// FromSpec reads a DurationSpec.
func FromSpec(spec specs.DurationSpec) (Duration, error) {
	d, err := Parse(spec.Value)
	if err != nil {
		return Zero, fmt.Errorf("invalid duration: %w", err)
	}
	return d, nil
}

// Spec renders d as a DurationSpec that FromSpec reads back exactly.
func (d Duration) Spec() specs.DurationSpec {
	return specs.NewDurationSpec(d.String())
}
