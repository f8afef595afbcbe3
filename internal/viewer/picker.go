package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tableview/internal/engine/framebuffer"
	"github.com/Faultbox/tableview/internal/engine/resource"
	"github.com/Faultbox/tableview/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// picker renders the scene into an off-screen target with flat ID colors and
// reads back a single pixel to resolve what sits under the cursor.
type picker struct {
	resources *resource.Manager
	target    *framebuffer.Framebuffer
	idToKey   map[int]string
}

func newPicker(resources *resource.Manager) *picker {
	return &picker{
		resources: resources,
		idToKey:   make(map[int]string),
	}
}

// packPickColor encodes a 1-based pick ID into normalized RGB channels.
// Three 8-bit channels bound the scheme to 16,777,214 distinct legs.
func packPickColor(id int) (r, g, b float32) {
	return float32(id&0xFF) / 255.0,
		float32((id>>8)&0xFF) / 255.0,
		float32((id>>16)&0xFF) / 255.0
}

// unpackPickID decodes raw color bytes back into a pick ID. Zero means the
// tabletop or the background.
func unpackPickID(r, g, b uint8) int {
	return int(r) | int(g)<<8 | int(b)<<16
}

// Pick draws the ID-color pass and resolves the pixel at (x, y) to a leg
// key. Coordinates use the window convention (origin top-left); coordinates
// outside the viewport resolve to no selection, not an error. The default
// framebuffer is rebound on every exit path. A non-nil error means the
// off-screen target could not be created and is fatal to the session.
func (p *picker) Pick(r *Renderer, x, y, width, height int) (string, bool, error) {
	if len(r.shapes.Legs) == 0 {
		return "", false, nil
	}
	if x < 0 || y < 0 || x >= width || y >= height {
		return "", false, nil
	}

	target, err := p.ensureTarget(int32(width), int32(height))
	if err != nil {
		return "", false, err
	}

	restore := target.BindWithViewport()
	defer restore()

	target.Clear(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)

	projView := r.projView(width, height)

	r.pickProg.Use()
	r.cube.Bind()
	defer r.cube.Unbind()

	// Tabletop first, in black: reserved as "not pickable".
	model := r.adjust.TabletopModel(r.shapes.Tabletop)
	mvp := projView.Mul(model)
	r.pickProg.SetMat4("mvp", &mvp)
	r.pickProg.SetMat4("model", &model)
	r.pickProg.SetVec3("pickColor", 0, 0, 0)
	r.cube.Draw()

	clear(p.idToKey)
	for i, leg := range r.shapes.Legs {
		id := i + 1
		p.idToKey[id] = leg.Key

		angles, _ := r.state.Angles(leg.Key)
		model := r.adjust.LegModel(r.shapes.Tabletop, leg, angles)
		mvp := projView.Mul(model)

		cr, cg, cb := packPickColor(id)
		r.pickProg.SetMat4("mvp", &mvp)
		r.pickProg.SetMat4("model", &model)
		r.pickProg.SetVec3("pickColor", cr, cg, cb)
		r.cube.Draw()
	}

	// Flip to the GL convention (origin bottom-left) for the readback.
	pr, pg, pb := target.ReadPixel(int32(x), int32(height-1-y))
	key, ok := p.idToKey[unpackPickID(pr, pg, pb)]
	return key, ok, nil
}

// ensureTarget returns an off-screen target matching the viewport,
// recreating it on size changes. Framebuffers cannot be resized in place, so
// the old target is released and a new one allocated.
func (p *picker) ensureTarget(width, height int32) (*framebuffer.Framebuffer, error) {
	if p.target != nil {
		w, h := p.target.Size()
		if w == width && h == height {
			return p.target, nil
		}
		p.target.Release()
		p.target = nil
	}

	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, &resource.CreationError{Kind: "framebuffer", Err: err}
	}
	p.resources.Track(fb)
	p.target = fb

	logger.Debug("pick target created", zap.Int32("width", width), zap.Int32("height", height))
	return fb, nil
}
