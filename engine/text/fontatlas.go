package text

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/hubastard/echlib/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyphs is returned when a font yields no drawable glyph in the baked range.
var ErrNoGlyphs = errors.New("text: font has no glyphs in range")

const (
	FirstChar  = 32 // space
	GlyphCount = 96 // table slots, FirstChar..FirstChar+95
	LastChar   = 126

	// DefaultAtlasSize is the edge length of the square single-channel atlas.
	DefaultAtlasSize = 512

	cellPadding = 1
)

// Glyph holds the baked metrics of one character. Offsets are relative to the
// pen position on the baseline, in pixels at the baked size.
type Glyph struct {
	Advance    float32
	XOff, YOff float32 // top-left of the bitmap; YOff is negative above the baseline
	W, H       int
	U0, V0     float32
	U1, V1     float32
}

// FontAtlas is a baked font: a fixed glyph table plus the coverage bitmap.
// Texture is nil until Upload succeeds.
type FontAtlas struct {
	SizePx          float32
	Ascent, Descent float32 // both positive
	LineAdvance     float32
	Glyphs          [GlyphCount]Glyph
	Bitmap          *image.Alpha
	Texture         core.Texture
}

// Glyph returns the table entry for ch. Characters outside FirstChar..LastChar
// report false.
func (fa *FontAtlas) Glyph(ch rune) (Glyph, bool) {
	if ch < FirstChar || ch > LastChar {
		return Glyph{}, false
	}
	return fa.Glyphs[ch-FirstChar], true
}

// LineHeight is the baseline-to-baseline distance at the baked size.
func (fa *FontAtlas) LineHeight() float32 { return fa.LineAdvance }

// Bake rasterizes FirstChar..LastChar from TrueType/OpenType data into a
// size x size single-channel atlas using a row packer. Nothing touches the GPU.
func Bake(data []byte, sizePx float32, size int) (*FontAtlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("bake font: invalid pixel height %v", sizePx)
	}
	if size <= 0 {
		size = DefaultAtlasSize
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	fa := &FontAtlas{
		SizePx:      sizePx,
		Ascent:      float32(m.Ascent.Round()),
		Descent:     float32(m.Descent.Round()),
		LineAdvance: float32(m.Height.Round()),
		Bitmap:      image.NewAlpha(image.Rect(0, 0, size, size)),
	}

	drawer := &font.Drawer{Dst: fa.Bitmap, Src: image.White, Face: face}

	x, y, rowH := cellPadding, cellPadding, 0
	drawn := 0
	for ch := rune(FirstChar); ch <= LastChar; ch++ {
		b, adv, ok := face.GlyphBounds(ch)
		if !ok {
			continue
		}
		g := Glyph{
			Advance: float32(adv.Round()),
			XOff:    float32(b.Min.X.Floor()),
			YOff:    float32(b.Min.Y.Floor()),
			W:       b.Max.X.Ceil() - b.Min.X.Floor(),
			H:       b.Max.Y.Ceil() - b.Min.Y.Floor(),
		}
		if g.W <= 0 || g.H <= 0 {
			g.W, g.H = 0, 0
			fa.Glyphs[ch-FirstChar] = g
			continue
		}

		if x+g.W+cellPadding > size {
			x = cellPadding
			y += rowH + cellPadding
			rowH = 0
		}
		if g.W+2*cellPadding > size || y+g.H+cellPadding > size {
			return nil, fmt.Errorf("bake font: glyphs at %vpx do not fit a %dx%d atlas", sizePx, size, size)
		}

		// dot sits on the baseline; shift so the bitmap lands at (x, y)
		drawer.Dot = fixed.P(x-int(g.XOff), y-int(g.YOff))
		drawer.DrawString(string(ch))

		g.U0 = float32(x) / float32(size)
		g.V0 = float32(y) / float32(size)
		g.U1 = float32(x+g.W) / float32(size)
		g.V1 = float32(y+g.H) / float32(size)
		fa.Glyphs[ch-FirstChar] = g
		drawn++

		x += g.W + cellPadding
		if g.H > rowH {
			rowH = g.H
		}
	}
	if drawn == 0 {
		return nil, ErrNoGlyphs
	}
	return fa, nil
}

// Upload creates the atlas texture. A previously uploaded texture is released.
func (fa *FontAtlas) Upload(r core.Renderer) error {
	b := fa.Bitmap.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    core.TextureR8,
		Pixels:    fa.Bitmap.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	if fa.Texture != nil {
		r.DeleteTexture(fa.Texture)
	}
	fa.Texture = tex
	return nil
}

// Release deletes the atlas texture.
func (fa *FontAtlas) Release(r core.Renderer) {
	if fa != nil && fa.Texture != nil {
		r.DeleteTexture(fa.Texture)
		fa.Texture = nil
	}
}

// NewAtlasFromBytes bakes data and uploads the result.
func NewAtlasFromBytes(r core.Renderer, data []byte, sizePx float32) (*FontAtlas, error) {
	fa, err := Bake(data, sizePx, DefaultAtlasSize)
	if err != nil {
		return nil, err
	}
	if err := fa.Upload(r); err != nil {
		return nil, err
	}
	core.Logger().Debug("font baked", "size", sizePx, "atlas", DefaultAtlasSize)
	return fa, nil
}

// LoadTTF reads a font file and bakes it at sizePx.
func LoadTTF(r core.Renderer, path string, sizePx float32) (*FontAtlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	fa, err := NewAtlasFromBytes(r, data, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return fa, nil
}

// Default bakes the embedded Go Regular face.
func Default(r core.Renderer, sizePx float32) (*FontAtlas, error) {
	return NewAtlasFromBytes(r, goregular.TTF, sizePx)
}

// Reload replaces the whole atlas with a fresh bake of path. On failure fa
// is left unchanged.
func (fa *FontAtlas) Reload(r core.Renderer, path string, sizePx float32) error {
	next, err := LoadTTF(r, path, sizePx)
	if err != nil {
		return err
	}
	fa.Release(r)
	*fa = *next
	return nil
}
