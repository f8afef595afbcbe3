// Package app implements the main viewer loop and event handling.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tableview/internal/config"
	"github.com/Faultbox/tableview/internal/engine/camera"
	"github.com/Faultbox/tableview/internal/engine/input"
	"github.com/Faultbox/tableview/internal/engine/window"
	"github.com/Faultbox/tableview/internal/logger"
	"github.com/Faultbox/tableview/internal/scene"
	"github.com/Faultbox/tableview/internal/viewer"
)

// App is the main viewer instance. It owns the window, the renderer and
// the interaction state, and drives them from a single-threaded loop.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	camera   *camera.OrbitCamera
	renderer *viewer.Renderer
	control  *viewer.Controller
}

// New loads the scene files and creates the window, OpenGL context and
// renderer. Cleanup is handled by Close.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("shapes", cfg.Scene.ShapesPath),
		zap.String("joints", cfg.Scene.JointsPath),
	)

	shapes, err := scene.LoadShapes(cfg.Scene.ShapesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load shapes: %w", err)
	}

	limits, err := scene.LoadLimits(cfg.Scene.JointsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load joint limits: %w", err)
	}

	a := &App{
		cfg:    cfg,
		camera: camera.New(),
	}

	// Create window first: the renderer needs a live OpenGL context.
	a.window, err = window.New(window.Config{
		Title:      "Table Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	state := scene.NewState(shapes)
	a.control = viewer.NewController(shapes, limits, state)

	a.renderer, err = viewer.NewRenderer(shapes, state, a.camera)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	logger.Info("viewer initialized", zap.Int("legs", len(shapes.Legs)))
	return a, nil
}

// Run starts the main loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if err := a.handleEvent(event); err != nil {
				return err
			}
		}

		width, height := a.window.GetDrawableSize()
		a.renderer.Render(width, height)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up the renderer and window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Cleanup()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventKeyDown:
		a.handleKey(event.Key, event.Shift)

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			return a.pickAt(event.MouseX, event.MouseY)
		}

	case input.EventMouseMove:
		if a.input.RightButtonHeld() {
			a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(event.WheelY))

	case input.EventWindowResize:
		logger.Debug("window resized",
			zap.Int("width", event.Width),
			zap.Int("height", event.Height),
		)
	}
	return nil
}

func (a *App) handleKey(key sdl.Scancode, shift bool) {
	step := a.cfg.Input.RotationStep
	if shift {
		step = -step
	}
	scale := a.cfg.Input.ScaleStep
	adjust := a.renderer.Adjuster()

	switch key {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		a.running = false

	case sdl.SCANCODE_N:
		a.control.SelectNext()
	case sdl.SCANCODE_P:
		a.control.SelectPrevious()

	case sdl.SCANCODE_X:
		a.control.Rotate(scene.AxisX, step)
	case sdl.SCANCODE_Y:
		a.control.Rotate(scene.AxisY, step)
	case sdl.SCANCODE_Z:
		a.control.Rotate(scene.AxisZ, step)

	case sdl.SCANCODE_R:
		a.control.ResetJoints()
	case sdl.SCANCODE_T:
		adjust.Reset()

	// Tabletop rescaling: 1/2 width, 3/4 thickness, 5/6 depth.
	case sdl.SCANCODE_1:
		adjust.AdjustTabletop(scene.AxisX, -scale)
	case sdl.SCANCODE_2:
		adjust.AdjustTabletop(scene.AxisX, scale)
	case sdl.SCANCODE_3:
		adjust.AdjustTabletop(scene.AxisY, -scale)
	case sdl.SCANCODE_4:
		adjust.AdjustTabletop(scene.AxisY, scale)
	case sdl.SCANCODE_5:
		adjust.AdjustTabletop(scene.AxisZ, -scale)
	case sdl.SCANCODE_6:
		adjust.AdjustTabletop(scene.AxisZ, scale)

	// Leg rescaling: 7/8 width, 9/0 length, -/= depth.
	case sdl.SCANCODE_7:
		adjust.AdjustLegs(scene.AxisX, -scale)
	case sdl.SCANCODE_8:
		adjust.AdjustLegs(scene.AxisX, scale)
	case sdl.SCANCODE_9:
		adjust.AdjustLegs(scene.AxisY, -scale)
	case sdl.SCANCODE_0:
		adjust.AdjustLegs(scene.AxisY, scale)
	case sdl.SCANCODE_MINUS:
		adjust.AdjustLegs(scene.AxisZ, -scale)
	case sdl.SCANCODE_EQUALS:
		adjust.AdjustLegs(scene.AxisZ, scale)
	}
}

// pickAt runs the pick pass at a mouse position. Mouse coordinates arrive in
// screen units; the pick target uses drawable pixels, so they are rescaled
// for HiDPI displays.
func (a *App) pickAt(mouseX, mouseY int) error {
	winW, winH := a.window.GetSize()
	drawW, drawH := a.window.GetDrawableSize()

	x := mouseX
	y := mouseY
	if winW > 0 && winH > 0 {
		x = mouseX * drawW / winW
		y = mouseY * drawH / winH
	}

	key, hit, err := a.renderer.Pick(x, y, drawW, drawH)
	if err != nil {
		return fmt.Errorf("pick failed: %w", err)
	}

	if hit {
		if err := a.control.SetSelection(key); err != nil {
			logger.Warn("pick resolved to unknown leg", zap.String("key", key))
			return nil
		}
		logger.Debug("leg selected", zap.String("key", key))
	} else {
		a.control.ClearSelection()
		logger.Debug("selection cleared")
	}
	return nil
}
