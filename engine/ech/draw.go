package ech

import (
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
	"github.com/hubastard/echlib/engine/scene"
	"github.com/hubastard/echlib/engine/text"
)

type (
	DrawOpts   = renderer2d.DrawOpts
	CircleOpts = renderer2d.CircleOpts
)

func (c *Context) DrawLine(x1, y1, x2, y2 float32, col colors.Color) {
	if c.r2d != nil {
		c.r2d.DrawLine(x1, y1, x2, y2, col)
	}
}

func (c *Context) DrawTriangle(x, y, w, h float32, col colors.Color) {
	if c.r2d != nil {
		c.r2d.DrawTriangle(x, y, w, h, col)
	}
}

func (c *Context) DrawRectangle(x, y, w, h float32, col colors.Color) {
	if c.r2d != nil {
		c.r2d.DrawRectangle(x, y, w, h, col)
	}
}

// DrawRectangleEx takes rotation (degrees about the centre) and alpha override.
func (c *Context) DrawRectangleEx(x, y, w, h float32, col colors.Color, opts DrawOpts) {
	if c.r2d != nil {
		c.r2d.DrawRectangleEx(x, y, w, h, col, opts)
	}
}

func (c *Context) DrawCircle(x, y, radius float32, col colors.Color) {
	if c.r2d != nil {
		c.r2d.DrawCircle(x, y, radius, col)
	}
}

func (c *Context) DrawCircleEx(x, y, radius float32, col colors.Color, opts CircleOpts) {
	if c.r2d != nil {
		c.r2d.DrawCircleEx(x, y, radius, col, opts)
	}
}

func (c *Context) DrawTexturedRectangle(x, y, w, h float32, name string) {
	if c.r2d != nil {
		c.r2d.DrawTexturedRectangle(x, y, w, h, name)
	}
}

func (c *Context) DrawTexturedRectangleEx(x, y, w, h float32, name string, opts DrawOpts) {
	if c.r2d != nil {
		c.r2d.DrawTexturedRectangleEx(x, y, w, h, name, opts)
	}
}

func (c *Context) DrawSubTexture(x, y, w, h float32, sub renderer2d.SubTexture2D, opts DrawOpts) {
	if c.r2d != nil {
		c.r2d.DrawSubTexture(x, y, w, h, sub, opts)
	}
}

// DrawText draws s with its first line's top-left at (x, y).
func (c *Context) DrawText(font *text.FontAtlas, s string, x, y, scale float32, col colors.Color) {
	if c.r2d != nil {
		text.DrawText(c.r2d, font, s, x, y, scale, col)
	}
}

// --- resources ---

// LoadTexture decodes path and registers it under name, replacing any
// texture already bound to that name.
func (c *Context) LoadTexture(name, path string) bool {
	if c.r2d == nil {
		core.Logger().Warn("texture load skipped", "texture", name, "reason", "no window")
		return false
	}
	if _, err := c.r2d.LoadTexture(name, path); err != nil {
		core.Logger().Warn("texture load failed", "texture", name, "error", err)
		return false
	}
	return true
}

// LoadFont bakes a TrueType file. It returns nil on failure.
func (c *Context) LoadFont(path string, sizePx float32) *text.FontAtlas {
	if c.eng.Renderer == nil || c.r2d == nil {
		core.Logger().Warn("font load skipped", "path", path, "reason", "no window")
		return nil
	}
	fa, err := text.LoadTTF(c.eng.Renderer, path, sizePx)
	if err != nil {
		core.Logger().Warn("font load failed", "path", path, "error", err)
		return nil
	}
	return fa
}

// DefaultFont bakes the embedded Go Regular face. It returns nil on failure.
func (c *Context) DefaultFont(sizePx float32) *text.FontAtlas {
	if c.eng.Renderer == nil || c.r2d == nil {
		return nil
	}
	fa, err := text.Default(c.eng.Renderer, sizePx)
	if err != nil {
		core.Logger().Warn("font bake failed", "error", err)
		return nil
	}
	return fa
}

// UnloadFont releases the font's atlas texture. After Close the texture is
// already gone with the graphics context and only the reference is dropped.
func (c *Context) UnloadFont(fa *text.FontAtlas) {
	if fa == nil {
		return
	}
	if c.eng.Renderer == nil || !c.live() {
		fa.Texture = nil
		return
	}
	fa.Release(c.eng.Renderer)
}

// --- camera ---

// UpdateCamera eases the camera toward (tx, ty) by lerp and installs its
// view, centring the camera on the framebuffer.
func (c *Context) UpdateCamera(tx, ty, lerp float32) {
	c.camera.Follow(tx, ty, lerp)
	c.applyView()
}

// UpdateCameraZoom is UpdateCamera with a zoom factor.
func (c *Context) UpdateCameraZoom(tx, ty, lerp, zoom float32) {
	c.camera.SetZoom(zoom)
	c.UpdateCamera(tx, ty, lerp)
}

// SetCameraRotation sets the camera roll in degrees and reinstalls the view.
func (c *Context) SetCameraRotation(deg float32) {
	c.camera.Rotation = deg
	c.applyView()
}

// ResetCamera returns to screen-space drawing.
func (c *Context) ResetCamera() {
	c.camera = scene.NewCamera2D()
	if c.r2d != nil {
		c.r2d.ResetView()
	}
}

func (c *Context) applyView() {
	if c.r2d == nil || !c.live() {
		return
	}
	w, h := c.eng.Window.FramebufferSize()
	c.r2d.SetView(c.camera.View(float32(w), float32(h)))
}
