package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default joint range applied when a leg/axis has no explicit limit.
const (
	DefaultMinAngle = -360.0
	DefaultMaxAngle = 360.0
)

// Axis identifies one of the three local rotation axes of a leg joint.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Index returns the component index of the axis in an angle triple.
func (a Axis) Index() int {
	switch a {
	case AxisY:
		return 1
	case AxisZ:
		return 2
	default:
		return 0
	}
}

// Range is an inclusive angle interval in degrees.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Limits maps leg key to per-axis angle ranges. Missing entries fall back to
// the default range.
type Limits map[string]map[Axis]Range

// LoadLimits reads a joint limits file. The file is parsed as YAML, which
// also accepts plain JSON. A missing or empty document yields empty limits.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading joints file: %w", err)
	}

	var l Limits
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if l == nil {
		l = Limits{}
	}
	return l, nil
}

// For returns the angle range for a leg/axis, defaulting to [-360, 360].
func (l Limits) For(leg string, axis Axis) Range {
	if axes, ok := l[leg]; ok {
		if r, ok := axes[axis]; ok {
			return r
		}
	}
	return Range{Min: DefaultMinAngle, Max: DefaultMaxAngle}
}
