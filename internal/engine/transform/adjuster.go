package transform

import (
	"github.com/Faultbox/tableview/internal/scene"
	"github.com/Faultbox/tableview/pkg/math"
)

// Scale factor bounds for interactive resizing.
const (
	minTabletopScale = 0.5
	maxTabletopScale = 3.0
	minLegScale      = 0.3
	maxLegScale      = 2.0
)

// Adjuster layers interactive per-axis rescaling over the base model
// matrices. Tabletop scale also applies to leg offsets so legs stay at the
// corners; leg scale applies to leg sizes only.
type Adjuster struct {
	tabletop [3]float32
	legs     [3]float32
}

// NewAdjuster returns an adjuster at the neutral 1.0 scale.
func NewAdjuster() *Adjuster {
	return &Adjuster{
		tabletop: [3]float32{1, 1, 1},
		legs:     [3]float32{1, 1, 1},
	}
}

// AdjustTabletop changes the tabletop scale factor on one axis, clamped to
// [0.5, 3.0].
func (a *Adjuster) AdjustTabletop(axis scene.Axis, delta float32) {
	i := axis.Index()
	a.tabletop[i] = clamp(a.tabletop[i]+delta, minTabletopScale, maxTabletopScale)
}

// AdjustLegs changes the leg scale factor on one axis, clamped to [0.3, 2.0].
func (a *Adjuster) AdjustLegs(axis scene.Axis, delta float32) {
	i := axis.Index()
	a.legs[i] = clamp(a.legs[i]+delta, minLegScale, maxLegScale)
}

// Reset restores both scale factors to 1.0.
func (a *Adjuster) Reset() {
	a.tabletop = [3]float32{1, 1, 1}
	a.legs = [3]float32{1, 1, 1}
}

// TabletopScale returns the current tabletop scale factors.
func (a *Adjuster) TabletopScale() [3]float32 { return a.tabletop }

// LegScale returns the current leg scale factors.
func (a *Adjuster) LegScale() [3]float32 { return a.legs }

// TabletopModel returns the tabletop model matrix with the current scale
// applied to its size.
func (a *Adjuster) TabletopModel(tt scene.Tabletop) math.Mat4 {
	scaled := tt
	for i := 0; i < 3; i++ {
		scaled.Size[i] *= a.tabletop[i]
	}
	return TabletopModel(scaled)
}

// LegModel returns a leg model matrix with tabletop scale applied to the
// offset and leg scale applied to the size. The rotation pivot follows the
// scaled leg height.
func (a *Adjuster) LegModel(tt scene.Tabletop, leg scene.Leg, angles [3]float32) math.Mat4 {
	var offset, size [3]float32
	for i := 0; i < 3; i++ {
		offset[i] = leg.Offset[i] * a.tabletop[i]
		size[i] = leg.Size[i] * a.legs[i]
	}
	return legModel(tt, offset, size, angles)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
