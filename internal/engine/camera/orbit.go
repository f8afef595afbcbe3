// Package camera provides the orbit camera used to view the table.
package camera

import (
	gomath "math"

	"github.com/Faultbox/tableview/pkg/math"
)

// OrbitCamera orbits around a target point using spherical coordinates.
type OrbitCamera struct {
	// Target point to orbit around
	Target math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from target
	Azimuth   float32 // Horizontal angle, radians
	Elevation float32 // Vertical angle, radians

	// Constraints
	MinDistance  float32
	MaxDistance  float32
	MinElevation float32
	MaxElevation float32

	// Sensitivity
	DragSensitivity float32
	ZoomFactor      float32
}

// New creates an orbit camera framing the table from above and to the side.
func New() *OrbitCamera {
	return &OrbitCamera{
		Target:          math.Vec3{X: 0, Y: 1.5, Z: 0},
		Distance:        12.0,
		Azimuth:         math.Radians(45),
		Elevation:       math.Radians(30),
		MinDistance:     3.0,
		MaxDistance:     30.0,
		MinElevation:    math.Radians(-89),
		MaxElevation:    math.Radians(89),
		DragSensitivity: 0.01,
		ZoomFactor:      1.2,
	}
}

// Position returns the camera eye position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosEl := float32(gomath.Cos(float64(c.Elevation)))
	x := c.Distance * cosEl * float32(gomath.Sin(float64(c.Azimuth)))
	y := c.Distance * float32(gomath.Sin(float64(c.Elevation)))
	z := c.Distance * cosEl * float32(gomath.Cos(float64(c.Azimuth)))

	return c.Target.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}

// HandleDrag updates azimuth and elevation from a mouse drag delta, clamping
// elevation so the camera never flips over the poles.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Azimuth -= deltaX * c.DragSensitivity
	c.Elevation += deltaY * c.DragSensitivity

	if c.Elevation < c.MinElevation {
		c.Elevation = c.MinElevation
	}
	if c.Elevation > c.MaxElevation {
		c.Elevation = c.MaxElevation
	}
}

// HandleZoom moves the camera toward or away from the target. A positive
// scroll zooms in.
func (c *OrbitCamera) HandleZoom(scrollY float32) {
	if scrollY > 0 {
		c.Distance /= c.ZoomFactor
	} else if scrollY < 0 {
		c.Distance *= c.ZoomFactor
	}

	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
