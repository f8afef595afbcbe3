package scene

import "testing"

func testShapes() *Shapes {
	return &Shapes{
		Tabletop: Tabletop{Size: [3]float32{4, 0.2, 4}},
		Legs: []Leg{
			{Key: "A", Size: [3]float32{0.3, 2, 0.3}, Offset: [3]float32{-1.5, 0, -1.5}},
			{Key: "B", Size: [3]float32{0.3, 2, 0.3}, Offset: [3]float32{1.5, 0, -1.5}},
		},
		LightPos: DefaultLightPos,
	}
}

func TestNewState(t *testing.T) {
	st := NewState(testShapes())

	for _, key := range []string{"A", "B"} {
		a, ok := st.Angles(key)
		if !ok {
			t.Fatalf("missing angles for %q", key)
		}
		if a != [3]float32{} {
			t.Errorf("initial angles for %q = %v, want zero", key, a)
		}
	}

	// First leg starts selected.
	sel, ok := st.Selection()
	if !ok || sel != "A" {
		t.Errorf("initial selection = %q, %v, want A", sel, ok)
	}
}

func TestNewStateNoLegs(t *testing.T) {
	st := NewState(&Shapes{Tabletop: Tabletop{Size: [3]float32{1, 1, 1}}})
	if _, ok := st.Selection(); ok {
		t.Error("empty scene should start with no selection")
	}
}

func TestSetAngle(t *testing.T) {
	st := NewState(testShapes())

	st.SetAngle("A", AxisY, 42)
	if got := st.Angle("A", AxisY); got != 42 {
		t.Errorf("Angle(A, y) = %f, want 42", got)
	}
	if got := st.Angle("A", AxisX); got != 0 {
		t.Errorf("Angle(A, x) = %f, want 0", got)
	}

	// Unknown legs are ignored rather than invented.
	st.SetAngle("missing", AxisX, 10)
	if _, ok := st.Angles("missing"); ok {
		t.Error("SetAngle must not create entries for unknown legs")
	}
}

func TestResetAngles(t *testing.T) {
	st := NewState(testShapes())
	st.SetAngle("A", AxisX, 30)
	st.SetAngle("B", AxisZ, -90)

	st.ResetAngles()

	for _, key := range []string{"A", "B"} {
		if a, _ := st.Angles(key); a != [3]float32{} {
			t.Errorf("angles for %q after reset = %v, want zero", key, a)
		}
	}
}

func TestSelection(t *testing.T) {
	st := NewState(testShapes())

	st.Select("B")
	if sel, ok := st.Selection(); !ok || sel != "B" {
		t.Errorf("selection = %q, %v, want B", sel, ok)
	}

	st.ClearSelection()
	if _, ok := st.Selection(); ok {
		t.Error("selection should be cleared")
	}
}
