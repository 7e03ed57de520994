package core

import "github.com/hubastard/echlib/engine/colors"

// App defines the game/application hooks driven by Run.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// InputPoller exposes the raw polled input state of a window.
type InputPoller interface {
	KeyAction(k Key) Action
	MouseButtonDown(b MouseButton) bool
	CursorPos() (float64, float64)
}

// Window abstraction.
type Window interface {
	InputPoller
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Close()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key    Key
	Action Action
	Mods   Mod
}

func (EventKey) isEvent() {}

// Down reports whether the key went down or is repeating.
func (e EventKey) Down() bool { return e.Action != ActionRelease }

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key identifies a keyboard key. KeyUnknown never reports pressed.
type Key int

const (
	KeyUnknown Key = iota - 1
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCount
)

func (k Key) Valid() bool { return k >= 0 && k < KeyCount }

type MouseButton int

const (
	MouseUnknown MouseButton = iota - 1
	MouseLeft
	MouseRight
	MouseMiddle
	MouseButtonCount
)

func (b MouseButton) Valid() bool { return b >= 0 && b < MouseButtonCount }

// Action is the raw state of a key as reported by the window.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title          string
	Width          int
	Height         int
	VSync          bool
	Resizable      bool
	ClearColor     colors.Color
	FPSLimit       int // <= 0 disables the limiter
	CircleSegments int // <= 0 uses the renderer default
}
