package scene

import (
	"math"

	"github.com/hubastard/echlib/engine/core"
)

// Controller2D: WASD/arrow pan, Q/E zoom, scroll zoom.
type Controller2D struct {
	MoveSpeed float32 // pixels per second at zoom 1
	ZoomSpeed float32 // zoom factor per second while held
	Camera    *Camera2D
}

func NewController2D(cam *Camera2D) *Controller2D {
	return &Controller2D{
		MoveSpeed: 300,
		ZoomSpeed: 1.5,
		Camera:    cam,
	}
}

func (cc *Controller2D) Update(in *core.Input, dt float32) {
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom

	if in.IsKeyHeld(core.KeyW) || in.IsKeyHeld(core.KeyUp) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyHeld(core.KeyS) || in.IsKeyHeld(core.KeyDown) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyHeld(core.KeyA) || in.IsKeyHeld(core.KeyLeft) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyHeld(core.KeyD) || in.IsKeyHeld(core.KeyRight) {
		cc.Camera.Move(speed, 0)
	}

	step := 1 + (cc.ZoomSpeed-1)*dt
	if in.IsKeyHeld(core.KeyE) {
		cc.Camera.SetZoom(cc.Camera.Zoom * step)
	}
	if in.IsKeyHeld(core.KeyQ) {
		cc.Camera.SetZoom(cc.Camera.Zoom / step)
	}

	// scroll accumulated since the last update, one 10% notch per unit
	if _, sy := in.Scroll(); sy != 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * float32(math.Pow(1.1, sy)))
	}
}
