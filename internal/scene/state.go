package scene

// State is the mutable per-session scene state: one angle triple per leg and
// the current selection. All mutation goes through the interaction
// controller; rendering and picking only read.
type State struct {
	angles   map[string][3]float32
	selected string
}

// NewState creates session state for the given shapes. Every leg starts at
// rest (0,0,0) and the first leg, if any, starts selected.
func NewState(shapes *Shapes) *State {
	st := &State{
		angles: make(map[string][3]float32, len(shapes.Legs)),
	}
	for _, leg := range shapes.Legs {
		st.angles[leg.Key] = [3]float32{}
	}
	if len(shapes.Legs) > 0 {
		st.selected = shapes.Legs[0].Key
	}
	return st
}

// Angles returns the (x, y, z) angle triple for a leg.
func (st *State) Angles(key string) ([3]float32, bool) {
	a, ok := st.angles[key]
	return a, ok
}

// Angle returns a single axis angle for a leg.
func (st *State) Angle(key string, axis Axis) float32 {
	return st.angles[key][axis.Index()]
}

// SetAngle sets a single axis angle for a leg. Unknown keys are ignored.
func (st *State) SetAngle(key string, axis Axis, degrees float32) {
	a, ok := st.angles[key]
	if !ok {
		return
	}
	a[axis.Index()] = degrees
	st.angles[key] = a
}

// ResetAngles sets every leg back to (0, 0, 0).
func (st *State) ResetAngles() {
	for key := range st.angles {
		st.angles[key] = [3]float32{}
	}
}

// Selection returns the selected leg key, if any.
func (st *State) Selection() (string, bool) {
	return st.selected, st.selected != ""
}

// Select sets the selected leg key.
func (st *State) Select(key string) {
	st.selected = key
}

// ClearSelection removes the selection.
func (st *State) ClearSelection() {
	st.selected = ""
}
