package main

import (
	"math"

	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
	"github.com/hubastard/echlib/engine/profiler"
	"github.com/hubastard/echlib/engine/scene"
)

const (
	playerTexture  = "player"
	checkerTexture = "checker"
)

// ------- A simple 2D Layer demo -------
type Layer2D struct {
	cam    *scene.Camera2D
	ctrl   *scene.Controller2D
	r2d    *renderer2d.Renderer2D
	player renderer2d.SubTexture2D
	t      float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	l.cam = scene.NewCamera2D()
	l.cam.SetZoom(2)
	l.ctrl = scene.NewController2D(l.cam)

	tex, err := l.r2d.LoadTexture(playerTexture, "assets/textures/player.png")
	if err != nil {
		core.Logger().Warn("sprite missing, using checker", "error", err)
		tex, err = makeChecker(e.Renderer, 64, 8)
		if err != nil {
			core.Logger().Error("checker texture", "error", err)
			return
		}
		l.r2d.RegisterTexture(playerTexture, tex)
	}
	w, h := tex.Size()
	l.player = renderer2d.FromPixels(playerTexture, 0, 0, min(w, 32), min(h, 32), w, h)

	if checker, err := makeChecker(e.Renderer, 64, 16); err == nil {
		l.r2d.RegisterTexture(checkerTexture, checker)
	}
}

func (l *Layer2D) OnDetach(e *core.Engine) {}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	defer profiler.Start("Layer2D.OnUpdate")()

	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)

	if e.Input.IsKeyPressed(core.KeyEscape) {
		e.Window.RequestClose()
	}
	if e.Input.IsKeyPressed(core.KeyR) {
		l.cam.SetPosition(0, 0)
		l.cam.SetZoom(2)
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("Layer2D.OnRender")()

	w, h := e.Window.FramebufferSize()
	l.r2d.SetView(l.cam.View(float32(w), float32(h)))

	for i := -4; i <= 4; i++ {
		x := float32(i) * 40
		l.r2d.DrawLine(x, -160, x, 160, colors.Gray.WithAlpha(0.4))
		l.r2d.DrawLine(-160, x, 160, x, colors.Gray.WithAlpha(0.4))
	}

	l.r2d.DrawTexturedRectangleEx(-150, -150, 64, 64, checkerTexture, renderer2d.DrawOpts{}.WithAlpha(0.8))
	l.r2d.DrawRectangleEx(60, -40, 40, 40, colors.Orange, renderer2d.DrawOpts{Rotation: l.t * 45})
	pulse := float32(0.5 + 0.5*math.Sin(float64(l.t*2)))
	l.r2d.DrawCircle(-80, 60, 24, colors.LightBlue.WithAlpha(0.3+0.7*pulse))
	l.r2d.DrawCircleOutlineFan(80, 80, 20, 6, colors.Purple)
	l.r2d.DrawTriangle(-20, 120, 40, -40, colors.Green)

	l.r2d.DrawSubTexture(-16, -16, 32, 32, l.player, renderer2d.DrawOpts{Rotation: l.t * 30})
	l.r2d.DrawTexturedRectangle(-150, 100, 32, 32, "missing")
}

// OnEvent consumes nothing: scroll reaches the controller through e.Input.
func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// makeChecker builds a two-tone RGBA checkerboard of cell-pixel squares.
func makeChecker(r core.Renderer, size, cell int) (core.Texture, error) {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := colors.Beige
			if (x/cell+y/cell)%2 == 0 {
				c = colors.Brown
			}
			b := c.Bytes()
			copy(pix[(y*size+x)*4:], b[:])
		}
	}
	return r.CreateTexture(core.TextureDesc{
		Width:     size,
		Height:    size,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "repeat",
		WrapV:     "repeat",
	})
}
