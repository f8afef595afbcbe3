// Package scene holds the table model: immutable shape and joint-limit
// definitions loaded from configuration files, plus the live joint-angle and
// selection state mutated during a session.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLightPos is used when the shapes file does not specify a light.
var DefaultLightPos = [3]float32{4, 8, 10}

// Tabletop describes the table surface.
type Tabletop struct {
	Size     [3]float32 `yaml:"size"`
	Position [3]float32 `yaml:"position"`
}

// Leg describes a single table leg. Offset is relative to the tabletop origin.
type Leg struct {
	Key    string     `yaml:"key"`
	Size   [3]float32 `yaml:"size"`
	Offset [3]float32 `yaml:"offset"`
}

// Shapes is the full static scene definition. Leg order is significant: it
// fixes pick-ID assignment and next/previous selection cycling.
type Shapes struct {
	Tabletop Tabletop
	Legs     []Leg
	LightPos [3]float32
}

// rawShapes mirrors the file schema; pointers distinguish absent sections
// from zero values so defaults can be applied.
type rawShapes struct {
	Tabletop *Tabletop   `yaml:"tabletop"`
	Legs     []Leg       `yaml:"legs"`
	LightPos *[3]float32 `yaml:"light_pos"`
}

// LoadShapes reads and validates a shapes file. The file is parsed as YAML,
// which also accepts plain JSON.
func LoadShapes(path string) (*Shapes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shapes file: %w", err)
	}
	s, err := ParseShapes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// ParseShapes parses and validates shapes data.
func ParseShapes(data []byte) (*Shapes, error) {
	var raw rawShapes
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if raw.Tabletop == nil {
		return nil, fmt.Errorf("shapes must contain a tabletop")
	}
	if raw.Legs == nil {
		return nil, fmt.Errorf("shapes must contain a legs list")
	}

	s := &Shapes{
		Tabletop: *raw.Tabletop,
		Legs:     raw.Legs,
		LightPos: DefaultLightPos,
	}
	if raw.LightPos != nil {
		s.LightPos = *raw.LightPos
	}

	seen := make(map[string]bool, len(s.Legs))
	for i, leg := range s.Legs {
		if leg.Key == "" {
			return nil, fmt.Errorf("leg %d has an empty key", i)
		}
		if seen[leg.Key] {
			return nil, fmt.Errorf("duplicate leg key %q", leg.Key)
		}
		seen[leg.Key] = true

		for axis := 0; axis < 3; axis++ {
			if leg.Size[axis] <= 0 {
				return nil, fmt.Errorf("leg %q has non-positive size", leg.Key)
			}
		}
	}

	return s, nil
}

// Leg returns the leg with the given key.
func (s *Shapes) Leg(key string) (Leg, bool) {
	for _, leg := range s.Legs {
		if leg.Key == key {
			return leg, true
		}
	}
	return Leg{}, false
}

// LegIndex returns the position of the given key in the leg order, or -1.
func (s *Shapes) LegIndex(key string) int {
	for i, leg := range s.Legs {
		if leg.Key == key {
			return i
		}
	}
	return -1
}
