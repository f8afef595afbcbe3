// Package transform builds model matrices for the tabletop and legs from the
// scene definition and the live joint angles.
package transform

import (
	"github.com/Faultbox/tableview/internal/scene"
	"github.com/Faultbox/tableview/pkg/math"
)

// TabletopModel returns the model matrix for the tabletop:
// translate(position) * scale(size) applied to a unit cube.
func TabletopModel(tt scene.Tabletop) math.Mat4 {
	return math.Translate(tt.Position[0], tt.Position[1], tt.Position[2]).
		Mul(math.Scale(tt.Size[0], tt.Size[1], tt.Size[2]))
}

// LegModel returns the model matrix for a leg. Rotation order is fixed
// Z-then-Y-then-X (Z innermost), and the pivot is re-anchored to the leg's
// top face so rotation hinges at the tabletop. Angles are (x, y, z) degrees.
func LegModel(tt scene.Tabletop, leg scene.Leg, angles [3]float32) math.Mat4 {
	return legModel(tt, leg.Offset, leg.Size, angles)
}

func legModel(tt scene.Tabletop, offset, size, angles [3]float32) math.Mat4 {
	rx := math.Radians(angles[0])
	ry := math.Radians(angles[1])
	rz := math.Radians(angles[2])

	// Leg offsets apply in X/Z only; the leg hangs from the tabletop plane.
	return math.Translate(tt.Position[0], tt.Position[1], tt.Position[2]).
		Mul(math.Translate(offset[0], 0, offset[2])).
		Mul(math.RotateZ(rz)).
		Mul(math.RotateY(ry)).
		Mul(math.RotateX(rx)).
		Mul(math.Translate(0, -size[1]/2, 0)).
		Mul(math.Scale(size[0], size[1], size[2]))
}
