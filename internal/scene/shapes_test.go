package scene

import (
	"os"
	"path/filepath"
	"testing"
)

const validShapesYAML = `
tabletop:
  size: [4.0, 0.2, 4.0]
  position: [0.0, 2.0, 0.0]
legs:
  - key: front_left
    size: [0.3, 2.0, 0.3]
    offset: [-1.5, 0.0, -1.5]
  - key: front_right
    size: [0.3, 2.0, 0.3]
    offset: [1.5, 0.0, -1.5]
light_pos: [5.0, 9.0, 7.0]
`

func TestParseShapes(t *testing.T) {
	s, err := ParseShapes([]byte(validShapesYAML))
	if err != nil {
		t.Fatalf("ParseShapes failed: %v", err)
	}

	if s.Tabletop.Size != [3]float32{4, 0.2, 4} {
		t.Errorf("tabletop size = %v, want (4, 0.2, 4)", s.Tabletop.Size)
	}
	if s.Tabletop.Position != [3]float32{0, 2, 0} {
		t.Errorf("tabletop position = %v, want (0, 2, 0)", s.Tabletop.Position)
	}
	if len(s.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(s.Legs))
	}
	if s.Legs[0].Key != "front_left" || s.Legs[1].Key != "front_right" {
		t.Errorf("leg order not preserved: %q, %q", s.Legs[0].Key, s.Legs[1].Key)
	}
	if s.Legs[0].Offset != [3]float32{-1.5, 0, -1.5} {
		t.Errorf("leg offset = %v, want (-1.5, 0, -1.5)", s.Legs[0].Offset)
	}
	if s.LightPos != [3]float32{5, 9, 7} {
		t.Errorf("light pos = %v, want (5, 9, 7)", s.LightPos)
	}
}

func TestParseShapesJSON(t *testing.T) {
	// The original project shipped JSON scene files; YAML parses them as-is.
	data := `{"tabletop": {"size": [4, 0.2, 4]}, "legs": [{"key": "a", "size": [0.3, 2, 0.3], "offset": [1, 0, 1]}]}`

	s, err := ParseShapes([]byte(data))
	if err != nil {
		t.Fatalf("ParseShapes failed on JSON input: %v", err)
	}
	if len(s.Legs) != 1 || s.Legs[0].Key != "a" {
		t.Errorf("unexpected legs: %+v", s.Legs)
	}
}

func TestParseShapesDefaults(t *testing.T) {
	data := `
tabletop:
  size: [4.0, 0.2, 4.0]
legs: []
`
	s, err := ParseShapes([]byte(data))
	if err != nil {
		t.Fatalf("ParseShapes failed: %v", err)
	}
	if s.Tabletop.Position != [3]float32{0, 0, 0} {
		t.Errorf("default position = %v, want origin", s.Tabletop.Position)
	}
	if s.LightPos != DefaultLightPos {
		t.Errorf("default light pos = %v, want %v", s.LightPos, DefaultLightPos)
	}
}

func TestParseShapesInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing tabletop", `legs: []`},
		{"missing legs", `{"tabletop": {"size": [1, 1, 1]}}`},
		{"empty key", `
tabletop: {size: [1, 1, 1]}
legs:
  - {key: "", size: [1, 1, 1], offset: [0, 0, 0]}
`},
		{"duplicate key", `
tabletop: {size: [1, 1, 1]}
legs:
  - {key: a, size: [1, 1, 1], offset: [0, 0, 0]}
  - {key: a, size: [1, 1, 1], offset: [1, 0, 0]}
`},
		{"zero size", `
tabletop: {size: [1, 1, 1]}
legs:
  - {key: a, size: [0.3, 0, 0.3], offset: [0, 0, 0]}
`},
		{"not yaml", `{{{`},
	}

	for _, tc := range cases {
		if _, err := ParseShapes([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestLoadShapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	if err := os.WriteFile(path, []byte(validShapesYAML), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	s, err := LoadShapes(path)
	if err != nil {
		t.Fatalf("LoadShapes failed: %v", err)
	}
	if len(s.Legs) != 2 {
		t.Errorf("expected 2 legs, got %d", len(s.Legs))
	}
}

func TestLoadShapesMissingFile(t *testing.T) {
	if _, err := LoadShapes(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLegLookup(t *testing.T) {
	s, err := ParseShapes([]byte(validShapesYAML))
	if err != nil {
		t.Fatalf("ParseShapes failed: %v", err)
	}

	leg, ok := s.Leg("front_right")
	if !ok || leg.Key != "front_right" {
		t.Errorf("Leg(front_right) = %+v, %v", leg, ok)
	}
	if _, ok := s.Leg("missing"); ok {
		t.Error("Leg(missing) should not be found")
	}

	if idx := s.LegIndex("front_left"); idx != 0 {
		t.Errorf("LegIndex(front_left) = %d, want 0", idx)
	}
	if idx := s.LegIndex("missing"); idx != -1 {
		t.Errorf("LegIndex(missing) = %d, want -1", idx)
	}
}
