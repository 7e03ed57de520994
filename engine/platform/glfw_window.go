package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/echlib/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow opens a window with a current OpenGL 3.3 core context.
// Must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Mac requires the forward-compatible flag for core profiles.
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	core.Logger().Info("window open",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Action: translateAction(action), Mods: translateMods(mods)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn := translateButton(b)
		if btn == core.MouseUnknown {
			return
		}
		gw.emit(core.EventMouseButton{Button: btn, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

// Open adapts NewGLFWWindow to the core.Run window factory.
func Open(cfg core.Config) (core.Window, error) {
	w, err := NewGLFWWindow(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w == nil || g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Close destroys the window and terminates GLFW. Safe to call twice.
func (g *GLFWWindow) Close() {
	if g.w == nil {
		return
	}
	g.w.Destroy()
	g.w = nil
	glfw.Terminate()
	core.Logger().Info("window closed")
}

// core.InputPoller impl
func (g *GLFWWindow) KeyAction(k core.Key) core.Action {
	if !k.Valid() {
		return core.ActionRelease
	}
	return translateAction(g.w.GetKey(glfwKeys[k]))
}

func (g *GLFWWindow) MouseButtonDown(b core.MouseButton) bool {
	if !b.Valid() {
		return false
	}
	return g.w.GetMouseButton(glfwButtons[b]) == glfw.Press
}

func (g *GLFWWindow) CursorPos() (float64, float64) { return g.w.GetCursorPos() }

var glfwKeys = [core.KeyCount]glfw.Key{
	core.KeyA: glfw.KeyA, core.KeyB: glfw.KeyB, core.KeyC: glfw.KeyC,
	core.KeyD: glfw.KeyD, core.KeyE: glfw.KeyE, core.KeyF: glfw.KeyF,
	core.KeyG: glfw.KeyG, core.KeyH: glfw.KeyH, core.KeyI: glfw.KeyI,
	core.KeyJ: glfw.KeyJ, core.KeyK: glfw.KeyK, core.KeyL: glfw.KeyL,
	core.KeyM: glfw.KeyM, core.KeyN: glfw.KeyN, core.KeyO: glfw.KeyO,
	core.KeyP: glfw.KeyP, core.KeyQ: glfw.KeyQ, core.KeyR: glfw.KeyR,
	core.KeyS: glfw.KeyS, core.KeyT: glfw.KeyT, core.KeyU: glfw.KeyU,
	core.KeyV: glfw.KeyV, core.KeyW: glfw.KeyW, core.KeyX: glfw.KeyX,
	core.KeyY: glfw.KeyY, core.KeyZ: glfw.KeyZ,

	core.KeySpace:  glfw.KeySpace,
	core.KeyEscape: glfw.KeyEscape,
	core.KeyEnter:  glfw.KeyEnter,
	core.KeyLeft:   glfw.KeyLeft,
	core.KeyRight:  glfw.KeyRight,
	core.KeyUp:     glfw.KeyUp,
	core.KeyDown:   glfw.KeyDown,
}

var glfwButtons = [core.MouseButtonCount]glfw.MouseButton{
	core.MouseLeft:   glfw.MouseButtonLeft,
	core.MouseRight:  glfw.MouseButtonRight,
	core.MouseMiddle: glfw.MouseButtonMiddle,
}

var keyLookup = func() map[glfw.Key]core.Key {
	m := make(map[glfw.Key]core.Key, len(glfwKeys))
	for k, gk := range glfwKeys {
		m[gk] = core.Key(k)
	}
	return m
}()

func translateKey(k glfw.Key) core.Key {
	if ck, ok := keyLookup[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) core.MouseButton {
	for i, gb := range glfwButtons {
		if gb == b {
			return core.MouseButton(i)
		}
	}
	return core.MouseUnknown
}

func translateAction(a glfw.Action) core.Action {
	switch a {
	case glfw.Press:
		return core.ActionPress
	case glfw.Repeat:
		return core.ActionRepeat
	default:
		return core.ActionRelease
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
