package renderer2d

import (
	"errors"
	"fmt"
)

// ErrEmptySurface means the drawable surface has zero width or height.
var ErrEmptySurface = errors.New("renderer2d: drawable surface has zero area")

// YAxis selects the pixel-space vertical convention.
type YAxis int

const (
	// YDown: origin top-left, y grows downward (default).
	YDown YAxis = iota
	// YUp: origin bottom-left, y grows upward; y is flipped as H - y.
	YUp
)

// Normalizer maps pixel coordinates on a W x H surface to NDC and back.
// Build a fresh one per draw: the surface size is not cached.
type Normalizer struct {
	W, H float32
	Axis YAxis
}

func NewNormalizer(w, h int, axis YAxis) (Normalizer, error) {
	if w <= 0 || h <= 0 {
		return Normalizer{}, fmt.Errorf("%w (%dx%d)", ErrEmptySurface, w, h)
	}
	return Normalizer{W: float32(w), H: float32(h), Axis: axis}, nil
}

func (n Normalizer) flip(y float32) float32 {
	if n.Axis == YUp {
		return n.H - y
	}
	return y
}

// ToNDC: ndc_x = x/W*2 - 1, ndc_y = 1 - flip(y)/H*2.
func (n Normalizer) ToNDC(x, y float32) (float32, float32) {
	return x/n.W*2 - 1, 1 - n.flip(y)/n.H*2
}

// FromNDC is the inverse of ToNDC.
func (n Normalizer) FromNDC(nx, ny float32) (float32, float32) {
	x := (nx + 1) / 2 * n.W
	y := (1 - ny) / 2 * n.H
	return x, n.flip(y)
}

// SizeToNDC scales a pixel extent linearly.
func (n Normalizer) SizeToNDC(w, h float32) (float32, float32) {
	return w / n.W * 2, h / n.H * 2
}

func (n Normalizer) SizeFromNDC(w, h float32) (float32, float32) {
	return w * n.W / 2, h * n.H / 2
}

// NormalizePositions rewrites the xy pair at the start of every vertex of
// stride floats in place.
func (n Normalizer) NormalizePositions(verts []float32, stride int) {
	for i := 0; i+1 < len(verts); i += stride {
		verts[i], verts[i+1] = n.ToNDC(verts[i], verts[i+1])
	}
}
