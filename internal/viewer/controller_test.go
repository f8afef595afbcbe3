package viewer

import (
	"errors"
	"testing"

	"github.com/Faultbox/tableview/internal/scene"
)

func twoLegScene() (*scene.Shapes, *scene.State) {
	shapes := &scene.Shapes{
		Tabletop: scene.Tabletop{Size: [3]float32{4, 0.2, 4}},
		Legs: []scene.Leg{
			{Key: "A", Size: [3]float32{0.3, 2, 0.3}, Offset: [3]float32{-1.5, 0, -1.5}},
			{Key: "B", Size: [3]float32{0.3, 2, 0.3}, Offset: [3]float32{1.5, 0, -1.5}},
		},
		LightPos: scene.DefaultLightPos,
	}
	return shapes, scene.NewState(shapes)
}

func fourLegScene() (*scene.Shapes, *scene.State) {
	shapes := &scene.Shapes{
		Tabletop: scene.Tabletop{Size: [3]float32{4, 0.2, 4}},
		Legs: []scene.Leg{
			{Key: "fl", Size: [3]float32{0.3, 2, 0.3}},
			{Key: "fr", Size: [3]float32{0.3, 2, 0.3}},
			{Key: "bl", Size: [3]float32{0.3, 2, 0.3}},
			{Key: "br", Size: [3]float32{0.3, 2, 0.3}},
		},
	}
	return shapes, scene.NewState(shapes)
}

func TestRotateAccumulates(t *testing.T) {
	shapes, state := twoLegScene()
	c := NewController(shapes, scene.Limits{}, state)

	if err := c.SetSelection("A"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	c.Rotate(scene.AxisX, 5.0)
	if got := state.Angle("A", scene.AxisX); got != 5.0 {
		t.Errorf("angle after +5 = %f, want 5", got)
	}

	c.Rotate(scene.AxisX, -10.0)
	if got := state.Angle("A", scene.AxisX); got != -5.0 {
		t.Errorf("angle after -10 = %f, want -5", got)
	}
}

func TestRotateClampsToLimits(t *testing.T) {
	shapes, state := twoLegScene()
	limits := scene.Limits{
		"A": {scene.AxisX: {Min: -30, Max: 30}},
	}
	c := NewController(shapes, limits, state)
	if err := c.SetSelection("A"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	c.Rotate(scene.AxisX, 100)
	if got := state.Angle("A", scene.AxisX); got != 30 {
		t.Errorf("angle = %f, want clamped to 30", got)
	}

	// Saturated: further positive deltas leave the angle unchanged.
	c.Rotate(scene.AxisX, 5)
	if got := state.Angle("A", scene.AxisX); got != 30 {
		t.Errorf("angle after saturated rotate = %f, want 30", got)
	}

	c.Rotate(scene.AxisX, -200)
	if got := state.Angle("A", scene.AxisX); got != -30 {
		t.Errorf("angle = %f, want clamped to -30", got)
	}
}

func TestRotateDefaultLimits(t *testing.T) {
	shapes, state := twoLegScene()
	c := NewController(shapes, scene.Limits{}, state)
	if err := c.SetSelection("B"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	// No limits configured for B/y: the default bound of 360 applies.
	c.Rotate(scene.AxisY, 400.0)
	if got := state.Angle("B", scene.AxisY); got != 360.0 {
		t.Errorf("angle = %f, want 360 (default bound)", got)
	}
}

func TestRotateStaysWithinLimits(t *testing.T) {
	shapes, state := twoLegScene()
	limits := scene.Limits{
		"A": {
			scene.AxisX: {Min: -45, Max: 45},
			scene.AxisY: {Min: -10, Max: 90},
		},
	}
	c := NewController(shapes, limits, state)
	if err := c.SetSelection("A"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	deltas := []float32{30, 30, -100, 7.5, 200, -0.1, -500, 123}
	for _, d := range deltas {
		for _, axis := range []scene.Axis{scene.AxisX, scene.AxisY, scene.AxisZ} {
			c.Rotate(axis, d)
			r := limits.For("A", axis)
			got := state.Angle("A", axis)
			if got < r.Min || got > r.Max {
				t.Fatalf("angle(A, %s) = %f outside [%f, %f]", axis, got, r.Min, r.Max)
			}
		}
	}
}

func TestRotateNoSelection(t *testing.T) {
	shapes, state := twoLegScene()
	c := NewController(shapes, scene.Limits{}, state)
	c.ClearSelection()

	c.Rotate(scene.AxisX, 45)

	for _, key := range []string{"A", "B"} {
		if a, _ := state.Angles(key); a != [3]float32{} {
			t.Errorf("rotate without selection mutated %q: %v", key, a)
		}
	}
}

func TestResetJoints(t *testing.T) {
	shapes, state := twoLegScene()
	c := NewController(shapes, scene.Limits{}, state)

	if err := c.SetSelection("A"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	c.Rotate(scene.AxisX, 45)
	c.Rotate(scene.AxisZ, -90)
	if err := c.SetSelection("B"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	c.Rotate(scene.AxisY, 120)

	c.ResetJoints()

	for _, key := range []string{"A", "B"} {
		a, ok := c.Angles(key)
		if !ok {
			t.Fatalf("missing angles for %q", key)
		}
		if a != [3]float32{} {
			t.Errorf("angles for %q after reset = %v, want (0, 0, 0)", key, a)
		}
	}
}

func TestSelectNextCyclesFullCircle(t *testing.T) {
	shapes, state := fourLegScene()
	c := NewController(shapes, scene.Limits{}, state)

	start, ok := c.Selection()
	if !ok {
		t.Fatal("expected an initial selection")
	}

	for i := 0; i < len(shapes.Legs); i++ {
		c.SelectNext()
	}

	end, _ := c.Selection()
	if end != start {
		t.Errorf("after %d SelectNext calls selection = %q, want %q", len(shapes.Legs), end, start)
	}
}

func TestSelectPrevious(t *testing.T) {
	shapes, state := fourLegScene()
	c := NewController(shapes, scene.Limits{}, state)

	// Initial selection is the first leg; previous wraps to the last.
	c.SelectPrevious()
	if sel, _ := c.Selection(); sel != "br" {
		t.Errorf("selection = %q, want br", sel)
	}

	c.SelectNext()
	if sel, _ := c.Selection(); sel != "fl" {
		t.Errorf("selection = %q, want fl", sel)
	}
}

func TestSelectNextFromNone(t *testing.T) {
	shapes, state := fourLegScene()
	c := NewController(shapes, scene.Limits{}, state)
	c.ClearSelection()

	c.SelectNext()
	if sel, _ := c.Selection(); sel != "fl" {
		t.Errorf("selection from none = %q, want first leg", sel)
	}

	c.ClearSelection()
	c.SelectPrevious()
	if sel, _ := c.Selection(); sel != "fl" {
		t.Errorf("previous from none = %q, want first leg", sel)
	}
}

func TestSelectNextEmptyScene(t *testing.T) {
	shapes := &scene.Shapes{Tabletop: scene.Tabletop{Size: [3]float32{1, 1, 1}}}
	state := scene.NewState(shapes)
	c := NewController(shapes, scene.Limits{}, state)

	c.SelectNext()
	c.SelectPrevious()

	if _, ok := c.Selection(); ok {
		t.Error("empty scene must never gain a selection")
	}
}

func TestSetSelection(t *testing.T) {
	shapes, state := twoLegScene()
	c := NewController(shapes, scene.Limits{}, state)

	if err := c.SetSelection("B"); err != nil {
		t.Fatalf("SetSelection(B) failed: %v", err)
	}
	if sel, _ := c.Selection(); sel != "B" {
		t.Errorf("selection = %q, want B", sel)
	}

	if err := c.SetSelection(""); err != nil {
		t.Fatalf("SetSelection(none) failed: %v", err)
	}
	if _, ok := c.Selection(); ok {
		t.Error("empty key should clear the selection")
	}

	err := c.SetSelection("missing")
	if !errors.Is(err, ErrUnknownLeg) {
		t.Errorf("SetSelection(missing) = %v, want ErrUnknownLeg", err)
	}
	if _, ok := c.Selection(); ok {
		t.Error("rejected selection must not change state")
	}
}
