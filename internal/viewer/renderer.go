// Package viewer implements the core of the table viewer: the shaded render
// pass, the color-coded pick pass and the interaction state machine driving
// leg selection and joint angles.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tableview/internal/engine/camera"
	"github.com/Faultbox/tableview/internal/engine/geometry"
	"github.com/Faultbox/tableview/internal/engine/resource"
	"github.com/Faultbox/tableview/internal/engine/transform"
	"github.com/Faultbox/tableview/internal/logger"
	"github.com/Faultbox/tableview/internal/scene"
	"github.com/Faultbox/tableview/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Projection parameters.
const (
	fovYDegrees = 45.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

// Part colors for the shaded pass.
var (
	clearColor    = [3]float32{0.1, 0.1, 0.12}
	tabletopColor = [3]float32{0.82, 0.6, 0.4}
	selectedColor = [3]float32{0.98, 0.65, 0.25}
	legColor      = [3]float32{0.45, 0.38, 0.33}
)

// Renderer draws the table scene and owns every GPU resource involved.
// It must be created after the OpenGL context and cleaned up exactly once
// before the context is destroyed.
type Renderer struct {
	shapes *scene.Shapes
	state  *scene.State
	camera *camera.OrbitCamera
	adjust *transform.Adjuster

	resources *resource.Manager
	cube      *resource.Buffer
	mainProg  *resource.Program
	pickProg  *resource.Program
	picker    *picker
}

// NewRenderer creates the renderer and all GPU resources it needs.
// Must be called after the OpenGL context exists. On any creation failure
// everything already created is released and the error propagates.
func NewRenderer(shapes *scene.Shapes, state *scene.State, cam *camera.OrbitCamera) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		shapes:    shapes,
		state:     state,
		camera:    cam,
		adjust:    transform.NewAdjuster(),
		resources: resource.NewManager(),
	}

	var err error
	r.cube, err = r.resources.CreateBuffer(geometry.CubeWithNormals())
	if err != nil {
		r.resources.Cleanup()
		return nil, err
	}

	r.mainProg, err = r.resources.CreateProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		r.resources.Cleanup()
		return nil, err
	}

	r.pickProg, err = r.resources.CreateProgram(vertexShaderSrc, pickFragmentShaderSrc)
	if err != nil {
		r.resources.Cleanup()
		return nil, err
	}

	r.picker = newPicker(r.resources)

	logger.Debug("renderer created",
		zap.Int("legs", len(shapes.Legs)),
		zap.Int("resources", r.resources.Count()),
	)
	return r, nil
}

// Adjuster exposes the interactive rescaling decorator.
func (r *Renderer) Adjuster() *transform.Adjuster {
	return r.adjust
}

// Render draws the tabletop and all legs into the currently bound target,
// which is expected to be the visible framebuffer.
func (r *Renderer) Render(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projView := r.projView(width, height)
	eye := r.camera.Position()

	r.mainProg.Use()
	r.cube.Bind()
	defer r.cube.Unbind()

	r.mainProg.SetVec3("lightPos", r.shapes.LightPos[0], r.shapes.LightPos[1], r.shapes.LightPos[2])
	r.mainProg.SetVec3("viewPos", eye.X, eye.Y, eye.Z)

	model := r.adjust.TabletopModel(r.shapes.Tabletop)
	r.drawPart(r.mainProg, projView, model, tabletopColor)

	selected, _ := r.state.Selection()
	for _, leg := range r.shapes.Legs {
		angles, _ := r.state.Angles(leg.Key)
		model := r.adjust.LegModel(r.shapes.Tabletop, leg, angles)

		color := legColor
		if leg.Key == selected {
			color = selectedColor
		}
		r.drawPart(r.mainProg, projView, model, color)
	}
}

// Pick resolves the leg under a window pixel, if any. Coordinates use the
// window convention (origin top-left). A non-nil error means the pick target
// could not be created and is fatal to the session.
func (r *Renderer) Pick(x, y, width, height int) (string, bool, error) {
	return r.picker.Pick(r, x, y, width, height)
}

// Cleanup releases every GPU resource exactly once. Safe to call twice;
// rendering after cleanup is a caller bug.
func (r *Renderer) Cleanup() {
	logger.Debug("releasing renderer resources", zap.Int("resources", r.resources.Count()))
	r.resources.Cleanup()
}

// projView builds the combined projection * view matrix for a viewport.
func (r *Renderer) projView(width, height int) math.Mat4 {
	h := height
	if h < 1 {
		h = 1
	}
	aspect := float32(width) / float32(h)
	proj := math.Perspective(math.Radians(fovYDegrees), aspect, nearPlane, farPlane)
	return proj.Mul(r.camera.ViewMatrix())
}

// drawPart uploads per-part uniforms and issues one draw call.
func (r *Renderer) drawPart(prog *resource.Program, projView, model math.Mat4, color [3]float32) {
	mvp := projView.Mul(model)
	prog.SetMat4("mvp", &mvp)
	prog.SetMat4("model", &model)
	prog.SetVec3("color", color[0], color[1], color[2])
	r.cube.Draw()
}
