package viewer

import (
	"errors"
	"fmt"

	"github.com/Faultbox/tableview/internal/scene"
)

// ErrUnknownLeg is returned when a selection names a leg absent from the
// scene. Failing loudly here keeps integration bugs from masquerading as a
// cleared selection.
var ErrUnknownLeg = errors.New("unknown leg key")

// Controller applies semantic interaction events to the scene state:
// selection cycling, joint rotation within limits, and resets. It is the
// only writer of scene state during a session.
type Controller struct {
	shapes *scene.Shapes
	limits scene.Limits
	state  *scene.State
}

// NewController creates a controller over the given scene.
func NewController(shapes *scene.Shapes, limits scene.Limits, state *scene.State) *Controller {
	return &Controller{
		shapes: shapes,
		limits: limits,
		state:  state,
	}
}

// SelectNext advances the selection cyclically through the leg order.
func (c *Controller) SelectNext() {
	c.cycle(1)
}

// SelectPrevious retreats the selection cyclically through the leg order.
func (c *Controller) SelectPrevious() {
	c.cycle(-1)
}

// cycle moves the selection by delta positions. A missing or stale selection
// resets to the first leg; an empty scene is a no-op.
func (c *Controller) cycle(delta int) {
	n := len(c.shapes.Legs)
	if n == 0 {
		return
	}

	selected, ok := c.state.Selection()
	idx := -1
	if ok {
		idx = c.shapes.LegIndex(selected)
	}
	if idx < 0 {
		c.state.Select(c.shapes.Legs[0].Key)
		return
	}

	c.state.Select(c.shapes.Legs[((idx+delta)%n+n)%n].Key)
}

// Rotate adds deltaDegrees to the selected leg's angle on the given axis,
// clamped to the joint limits. Saturates at the bound rather than wrapping.
// No-op when nothing is selected.
func (c *Controller) Rotate(axis scene.Axis, deltaDegrees float32) {
	selected, ok := c.state.Selection()
	if !ok {
		return
	}

	r := c.limits.For(selected, axis)
	angle := c.state.Angle(selected, axis) + deltaDegrees
	if angle < r.Min {
		angle = r.Min
	}
	if angle > r.Max {
		angle = r.Max
	}
	c.state.SetAngle(selected, axis, angle)
}

// ResetJoints sets every leg's angles back to (0, 0, 0).
func (c *Controller) ResetJoints() {
	c.state.ResetAngles()
}

// SetSelection selects the given leg directly, as pick results do. An empty
// key clears the selection; an unknown key is rejected with ErrUnknownLeg.
func (c *Controller) SetSelection(key string) error {
	if key == "" {
		c.state.ClearSelection()
		return nil
	}
	if c.shapes.LegIndex(key) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownLeg, key)
	}
	c.state.Select(key)
	return nil
}

// ClearSelection removes the current selection.
func (c *Controller) ClearSelection() {
	c.state.ClearSelection()
}

// Selection returns the currently selected leg key, if any.
func (c *Controller) Selection() (string, bool) {
	return c.state.Selection()
}

// Angles returns the angle triple for a leg, for status display.
func (c *Controller) Angles(key string) ([3]float32, bool) {
	return c.state.Angles(key)
}
