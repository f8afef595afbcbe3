package transform

import (
	"testing"

	"github.com/Faultbox/tableview/internal/scene"
	"github.com/Faultbox/tableview/pkg/math"
)

const epsilon = 0.0001

func near(a, b [3]float32) bool {
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		if d < -epsilon || d > epsilon {
			return false
		}
	}
	return true
}

var testTabletop = scene.Tabletop{
	Size:     [3]float32{4, 0.2, 4},
	Position: [3]float32{0, 2, 0},
}

var testLeg = scene.Leg{
	Key:    "A",
	Size:   [3]float32{0.3, 2, 0.3},
	Offset: [3]float32{-1.5, 0, -1.5},
}

func TestTabletopModel(t *testing.T) {
	m := TabletopModel(testTabletop)

	// A unit-cube corner scales to half the size and shifts by the position.
	got := m.TransformPoint([3]float32{0.5, 0.5, 0.5})
	want := [3]float32{2, 2.1, 2}
	if !near(got, want) {
		t.Errorf("tabletop corner = %v, want %v", got, want)
	}

	if got := m.TransformPoint([3]float32{0, 0, 0}); !near(got, testTabletop.Position) {
		t.Errorf("tabletop center = %v, want %v", got, testTabletop.Position)
	}
}

func TestLegModelRestPose(t *testing.T) {
	tt := scene.Tabletop{Size: [3]float32{4, 0.2, 4}}
	m := LegModel(tt, testLeg, [3]float32{})

	// The top face center is the hinge point: it sits at the leg offset.
	got := m.TransformPoint([3]float32{0, 0.5, 0})
	want := [3]float32{-1.5, 0, -1.5}
	if !near(got, want) {
		t.Errorf("leg top center = %v, want %v", got, want)
	}

	// The bottom face center hangs one leg length below.
	got = m.TransformPoint([3]float32{0, -0.5, 0})
	want = [3]float32{-1.5, -2, -1.5}
	if !near(got, want) {
		t.Errorf("leg bottom center = %v, want %v", got, want)
	}
}

func TestLegModelHingeRotation(t *testing.T) {
	tt := scene.Tabletop{Size: [3]float32{4, 0.2, 4}}
	m := LegModel(tt, testLeg, [3]float32{90, 0, 0})

	// The hinge point stays fixed under rotation.
	got := m.TransformPoint([3]float32{0, 0.5, 0})
	want := [3]float32{-1.5, 0, -1.5}
	if !near(got, want) {
		t.Errorf("hinge moved under rotation: %v, want %v", got, want)
	}

	// A 90 degree X rotation swings the foot from below the hinge to behind it.
	got = m.TransformPoint([3]float32{0, -0.5, 0})
	want = [3]float32{-1.5, 0, -3.5}
	if !near(got, want) {
		t.Errorf("leg foot after 90deg X = %v, want %v", got, want)
	}
}

func TestLegModelIgnoresOffsetY(t *testing.T) {
	tt := scene.Tabletop{Size: [3]float32{4, 0.2, 4}}
	leg := testLeg
	leg.Offset[1] = 5 // must be ignored: legs hang from the tabletop plane

	m := LegModel(tt, leg, [3]float32{})
	got := m.TransformPoint([3]float32{0, 0.5, 0})
	want := [3]float32{-1.5, 0, -1.5}
	if !near(got, want) {
		t.Errorf("leg Y offset not ignored: %v, want %v", got, want)
	}
}

func TestLegModelRotationOrder(t *testing.T) {
	tt := scene.Tabletop{Position: [3]float32{1, 2, 3}}
	angles := [3]float32{30, 45, 60}

	// The composition is fixed: Z then Y then X, with Z innermost relative to
	// the pivot translate and scale.
	want := math.Translate(1, 2, 3).
		Mul(math.Translate(testLeg.Offset[0], 0, testLeg.Offset[2])).
		Mul(math.RotateZ(math.Radians(60))).
		Mul(math.RotateY(math.Radians(45))).
		Mul(math.RotateX(math.Radians(30))).
		Mul(math.Translate(0, -testLeg.Size[1]/2, 0)).
		Mul(math.Scale(testLeg.Size[0], testLeg.Size[1], testLeg.Size[2]))

	got := LegModel(tt, testLeg, angles)
	for i := 0; i < 16; i++ {
		d := got[i] - want[i]
		if d < -epsilon || d > epsilon {
			t.Fatalf("element %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestAdjusterClamping(t *testing.T) {
	a := NewAdjuster()

	for i := 0; i < 100; i++ {
		a.AdjustTabletop(scene.AxisX, 0.1)
		a.AdjustLegs(scene.AxisY, -0.1)
	}
	if got := a.TabletopScale()[0]; got != 3.0 {
		t.Errorf("tabletop scale saturates at 3.0, got %f", got)
	}
	if got := a.LegScale()[1]; got != 0.3 {
		t.Errorf("leg scale saturates at 0.3, got %f", got)
	}

	for i := 0; i < 100; i++ {
		a.AdjustTabletop(scene.AxisX, -0.1)
	}
	if got := a.TabletopScale()[0]; got != 0.5 {
		t.Errorf("tabletop scale saturates at 0.5, got %f", got)
	}
}

func TestAdjusterReset(t *testing.T) {
	a := NewAdjuster()
	a.AdjustTabletop(scene.AxisZ, 0.5)
	a.AdjustLegs(scene.AxisX, 0.5)

	a.Reset()

	if a.TabletopScale() != [3]float32{1, 1, 1} || a.LegScale() != [3]float32{1, 1, 1} {
		t.Errorf("reset scales = %v, %v, want all 1", a.TabletopScale(), a.LegScale())
	}
}

func TestAdjusterScalesOffsets(t *testing.T) {
	tt := scene.Tabletop{Size: [3]float32{4, 0.2, 4}}
	a := NewAdjuster()
	a.AdjustTabletop(scene.AxisX, 1.0) // 2x width

	m := a.LegModel(tt, testLeg, [3]float32{})
	got := m.TransformPoint([3]float32{0, 0.5, 0})
	// Leg stays at the (now wider) corner: offset X doubles, Z unchanged.
	want := [3]float32{-3, 0, -1.5}
	if !near(got, want) {
		t.Errorf("scaled leg hinge = %v, want %v", got, want)
	}
}

func TestAdjusterNeutralMatchesBase(t *testing.T) {
	a := NewAdjuster()
	angles := [3]float32{10, 20, 30}

	base := LegModel(testTabletop, testLeg, angles)
	adj := a.LegModel(testTabletop, testLeg, angles)
	if base != adj {
		t.Error("neutral adjuster must match the base leg model")
	}

	if TabletopModel(testTabletop) != a.TabletopModel(testTabletop) {
		t.Error("neutral adjuster must match the base tabletop model")
	}
}
