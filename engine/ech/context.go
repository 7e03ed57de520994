// Package ech is the immediate-mode facade: one Context owns the window, the
// graphics backend, the 2D pipeline, input, camera and frame timer.
//
// Failures never panic. Resource loads report false or a nil handle, and a
// Context whose window failed to open reports ShouldClose and ignores draws.
package ech

import (
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	glbackend "github.com/hubastard/echlib/engine/gfx/gl"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
	"github.com/hubastard/echlib/engine/platform"
	"github.com/hubastard/echlib/engine/scene"
)

type Context struct {
	eng    *core.Engine
	r2d    *renderer2d.Renderer2D
	camera *scene.Camera2D
}

// Open creates a GLFW window with an OpenGL renderer. When initialization
// fails the error is logged and the returned Context behaves as closed.
func Open(cfg core.Config, opts glbackend.Options) *Context {
	win, err := platform.NewGLFWWindow(cfg)
	if err != nil {
		core.Logger().Error("window init failed", "error", err)
		return New(nil, nil, cfg, core.SystemClock)
	}
	rend, err := glbackend.NewRendererGL(win, cfg, opts)
	if err != nil {
		core.Logger().Error("renderer init failed", "error", err)
		win.Close()
		return New(nil, nil, cfg, core.SystemClock)
	}
	return New(win, rend, cfg, core.SystemClock)
}

// New builds a Context over explicit collaborators. A nil window yields a
// closed Context.
func New(win core.Window, rend core.Renderer, cfg core.Config, clock core.Clock) *Context {
	if clock == nil {
		clock = core.SystemClock
	}
	c := &Context{
		eng:    core.NewEngine(win, rend, cfg, clock),
		camera: scene.NewCamera2D(),
	}
	if win == nil || rend == nil {
		return c
	}
	r2d, err := renderer2d.New(rend, win, renderer2d.Options{CircleSegments: cfg.CircleSegments})
	if err != nil {
		core.Logger().Error("2d pipeline init failed", "error", err)
		return c
	}
	c.r2d = r2d
	return c
}

// Engine exposes the underlying frame bracket and input.
func (c *Context) Engine() *core.Engine { return c.eng }

// Renderer2D is nil when the Context failed to open.
func (c *Context) Renderer2D() *renderer2d.Renderer2D { return c.r2d }

func (c *Context) Camera() *scene.Camera2D { return c.camera }

func (c *Context) ShouldClose() bool { return c.eng.ShouldClose() }

// RequestClose makes the next ShouldClose report true.
func (c *Context) RequestClose() {
	if c.live() {
		c.eng.Window.RequestClose()
	}
}

// BeginFrame clears with the current clear colour and resets draw statistics.
func (c *Context) BeginFrame() {
	c.eng.BeginFrame()
	if c.r2d != nil {
		c.r2d.ResetStats()
	}
}

// EndFrame presents, polls events and refreshes input.
func (c *Context) EndFrame() { c.eng.EndFrame() }

// ClearBackground sets the clear colour. Inside a frame it also clears now.
func (c *Context) ClearBackground(col colors.Color) {
	c.eng.SetClearColor(col)
	if c.eng.State() == core.StateFrameBegun && c.eng.Renderer != nil {
		c.eng.Renderer.Clear(col[0], col[1], col[2], col[3])
	}
}

func (c *Context) SetTitle(title string) {
	if c.live() {
		c.eng.Window.SetTitle(title)
	}
}

// Close releases the renderer and window. Safe to call more than once; every
// later draw, load and camera call is a no-op.
func (c *Context) Close() {
	c.eng.Close()
	c.r2d = nil
}

// live reports whether the window and graphics context can still be used.
func (c *Context) live() bool {
	return c.eng.Window != nil && c.eng.State() != core.StateClosed
}

// Stats reports draw statistics since BeginFrame.
func (c *Context) Stats() renderer2d.Statistics {
	if c.r2d == nil {
		return renderer2d.Statistics{}
	}
	return c.r2d.Stats()
}
