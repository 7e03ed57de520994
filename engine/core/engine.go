package core

import (
	"errors"
	"time"

	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/profiler"
)

// ErrNoWindow is returned when an operation needs a window that failed to open.
var ErrNoWindow = errors.New("core: no window")

// State is the frame lifecycle state of an Engine.
type State int

const (
	StateUninitialized State = iota
	StateWindowOpen
	StateFrameBegun
	StateFrameEnded
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWindowOpen:
		return "window-open"
	case StateFrameBegun:
		return "frame-begun"
	case StateFrameEnded:
		return "frame-ended"
	case StateClosed:
		return "closed"
	default:
		return "invalid"
	}
}

// Engine exposes core services and owns the frame bracket.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Timer    *Timer
	Layers   LayerStack

	// OnEvent, when set, receives every window event after the engine handled it.
	OnEvent func(Event)

	state    State
	clear    colors.Color
	start    time.Time
	endFrame func() // closes the profiler scope opened by BeginFrame
}

// NewEngine wires win and rend together. A nil window leaves the engine
// uninitialized: ShouldClose reports true and frame calls are no-ops.
func NewEngine(win Window, rend Renderer, cfg Config, clock Clock) *Engine {
	e := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Timer:    NewTimer(clock),
		clear:    cfg.ClearColor,
		start:    time.Now(),
	}
	e.Timer.SetFPSLimit(cfg.FPSLimit)
	if win == nil {
		return e
	}
	e.state = StateWindowOpen
	win.SetEventCallback(e.handle)
	if rend != nil {
		w, h := win.FramebufferSize()
		rend.Resize(w, h)
	}
	return e
}

func (e *Engine) handle(ev Event) {
	e.Input.Handle(ev)
	if _, ok := ev.(EventResize); ok && e.Renderer != nil {
		fw, fh := e.Window.FramebufferSize()
		if fw >= 1 && fh >= 1 {
			e.Renderer.Resize(fw, fh)
		}
	}
	if e.OnEvent != nil {
		e.OnEvent(ev)
	}
}

func (e *Engine) State() State { return e.state }

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

func (e *Engine) ClearColor() colors.Color { return e.clear }

// SetClearColor sets the colour used by the next BeginFrame.
func (e *Engine) SetClearColor(c colors.Color) { e.clear = c }

func (e *Engine) open() bool {
	return e.Window != nil && e.state != StateUninitialized && e.state != StateClosed
}

// ShouldClose is true once the window is gone or asked to close.
func (e *Engine) ShouldClose() bool {
	if !e.open() {
		return true
	}
	return e.Window.ShouldClose()
}

// BeginFrame clears the colour buffer with the current clear colour.
func (e *Engine) BeginFrame() {
	if !e.open() {
		return
	}
	if e.state == StateFrameBegun {
		Logger().Debug("BeginFrame called twice without EndFrame")
		e.closeFrameScope()
	}
	e.endFrame = profiler.Start("frame")
	if e.Renderer != nil {
		c := e.clear
		e.Renderer.Clear(c[0], c[1], c[2], c[3])
	}
	e.state = StateFrameBegun
}

// EndFrame presents the frame, polls window events and refreshes the input
// snapshot. This is the only point where new input and resizes take effect.
func (e *Engine) EndFrame() {
	if !e.open() {
		return
	}
	present := profiler.Start("present")
	e.Window.SwapBuffers()
	e.Window.PollEvents()
	e.Input.Refresh(e.Window)
	present()
	e.closeFrameScope()
	e.state = StateFrameEnded
}

func (e *Engine) closeFrameScope() {
	if e.endFrame != nil {
		e.endFrame()
		e.endFrame = nil
	}
}

// Close releases the renderer and the window. Safe to call more than once.
func (e *Engine) Close() {
	if e.state == StateClosed {
		return
	}
	e.closeFrameScope()
	if e.Renderer != nil {
		e.Renderer.Shutdown()
	}
	if e.Window != nil {
		e.Window.Close()
	}
	e.state = StateClosed
	Logger().Info("engine closed")
}
