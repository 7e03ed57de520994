package ech

import (
	"time"

	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/scene"
)

// --- input ---

// IsKeyPressed is true only in the frame the key went down.
func (c *Context) IsKeyPressed(k core.Key) bool { return c.eng.Input.IsKeyPressed(k) }

func (c *Context) IsKeyHeld(k core.Key) bool { return c.eng.Input.IsKeyHeld(k) }

func (c *Context) IsMouseButtonPressed(b core.MouseButton) bool {
	return c.eng.Input.IsMouseButtonPressed(b)
}

func (c *Context) IsMouseButtonHeld(b core.MouseButton) bool {
	return c.eng.Input.IsMouseButtonHeld(b)
}

func (c *Context) MousePosition() (float64, float64) { return c.eng.Input.Mouse() }

// MouseWheelMove returns and clears the scroll offset accumulated since the
// previous call.
func (c *Context) MouseWheelMove() (float64, float64) { return c.eng.Input.Scroll() }

// MouseWorldPosition maps the cursor through the inverse camera view.
func (c *Context) MouseWorldPosition() (float32, float32) {
	mx, my := c.eng.Input.Mouse()
	if !c.live() {
		return float32(mx), float32(my)
	}
	w, h := c.eng.Window.FramebufferSize()
	return c.camera.ScreenToWorld(float32(mx), float32(my), float32(w), float32(h))
}

// --- timing ---

// GetDeltaTime returns seconds since the previous call. Call it once per frame.
func (c *Context) GetDeltaTime() float64 { return c.eng.Timer.DeltaTime() }

// SetFPSLimit caps the frame rate; fps <= 0 disables the cap.
func (c *Context) SetFPSLimit(fps int) { c.eng.Timer.SetFPSLimit(fps) }

// ApplyFPSLimit sleeps out the rest of the frame budget given the measured
// frame time in seconds, returning how long it slept.
func (c *Context) ApplyFPSLimit(measured float64) time.Duration {
	return c.eng.Timer.ApplyFPSLimit(measured)
}

// --- collision ---

// CheckCollision reports strict overlap of two axis-aligned boxes.
func CheckCollision(ax, ay, aw, ah, bx, by, bw, bh float32) bool {
	return scene.CheckCollision(ax, ay, aw, ah, bx, by, bw, bh)
}
