package text

import (
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
	"github.com/hubastard/echlib/engine/gfx/renderer2d"
)

// Layout positions glyph quads for s with the first line's top-left at (x, y)
// on a y-down surface. Characters outside FirstChar..LastChar are skipped
// without advancing; '\n' returns the pen to x and moves one line down.
func Layout(font *FontAtlas, s string, x, y, scale float32) []renderer2d.GlyphQuad {
	if font == nil {
		return nil
	}
	quads := make([]renderer2d.GlyphQuad, 0, len(s))
	penX := x
	baseline := y + font.Ascent*scale

	for _, ch := range s {
		if ch == '\n' {
			penX = x
			baseline += font.LineAdvance * scale
			continue
		}
		g, ok := font.Glyph(ch)
		if !ok {
			continue
		}
		if g.W > 0 {
			x0 := penX + g.XOff*scale
			y0 := baseline + g.YOff*scale
			quads = append(quads, renderer2d.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.W)*scale, Y1: y0 + float32(g.H)*scale,
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		penX += g.Advance * scale
	}
	return quads
}

// DrawText lays out s and draws it with a single glyph draw.
func DrawText(r2d *renderer2d.Renderer2D, font *FontAtlas, s string, x, y, scale float32, c colors.Color) {
	if font == nil || font.Texture == nil {
		core.Logger().Warn("text skipped", "reason", "font not loaded")
		return
	}
	r2d.DrawGlyphs(font.Texture, Layout(font, s, x, y, scale), c)
}

// MeasureText returns the widest line's advance and the total height of all
// lines, scaled.
func MeasureText(font *FontAtlas, s string, scale float32) (width, height float32) {
	if font == nil {
		return 0, 0
	}
	var line float32
	lines := 1
	for _, ch := range s {
		if ch == '\n' {
			width = max(width, line)
			line = 0
			lines++
			continue
		}
		if g, ok := font.Glyph(ch); ok {
			line += g.Advance
		}
	}
	width = max(width, line)
	return width * scale, float32(lines) * font.LineAdvance * scale
}
