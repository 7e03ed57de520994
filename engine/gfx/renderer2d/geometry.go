package renderer2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCircleSegments is the fan resolution used when none is configured.
const DefaultCircleSegments = 64

const minCircleSegments = 3

// RectIndices triangulates the four corners returned by RectCorners.
var RectIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// LineVertices returns the two endpoints as a line list.
func LineVertices(x1, y1, x2, y2 float32) []float32 {
	return []float32{x1, y1, x2, y2}
}

// TriangleVertices builds an isosceles triangle: base from (x, y) to
// (x+w, y) and apex at (x+w/2, y+h). A negative h points the apex up on a
// y-down surface.
func TriangleVertices(x, y, w, h float32) []float32 {
	return []float32{
		x, y,
		x + w, y,
		x + w/2, y + h,
	}
}

// RectCorners returns (x,y), (x+w,y), (x+w,y+h), (x,y+h), rotated by deg
// degrees about the rectangle's centre.
func RectCorners(x, y, w, h, deg float32) [4]mgl32.Vec2 {
	corners := [4]mgl32.Vec2{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
	if deg == 0 {
		return corners
	}
	center := mgl32.Vec2{x + w/2, y + h/2}
	rot := mgl32.Rotate2D(mgl32.DegToRad(deg))
	for i, c := range corners {
		corners[i] = rot.Mul2x1(c.Sub(center)).Add(center)
	}
	return corners
}

// RectVertices flattens RectCorners into a position-only vertex list.
func RectVertices(x, y, w, h, deg float32) []float32 {
	c := RectCorners(x, y, w, h, deg)
	return []float32{
		c[0].X(), c[0].Y(),
		c[1].X(), c[1].Y(),
		c[2].X(), c[2].Y(),
		c[3].X(), c[3].Y(),
	}
}

// TexturedRectVertices interleaves position and UV for the four corners.
// (u0, v0) maps to the top-left corner and (u1, v1) to the bottom-right.
func TexturedRectVertices(x, y, w, h, deg, u0, v0, u1, v1 float32) []float32 {
	c := RectCorners(x, y, w, h, deg)
	return []float32{
		c[0].X(), c[0].Y(), u0, v0,
		c[1].X(), c[1].Y(), u1, v0,
		c[2].X(), c[2].Y(), u1, v1,
		c[3].X(), c[3].Y(), u0, v1,
	}
}

// CircleFan tessellates a circle. With a centre vertex the result has
// segments+1 vertices and segments triangles; without it, segments vertices
// and segments-2 triangles joining consecutive boundary vertices. Boundary
// vertex i sits at angle 2*pi*i/segments.
func CircleFan(cx, cy, radius float32, segments int, withCenter bool) ([]float32, []uint32) {
	if segments < minCircleSegments {
		segments = minCircleSegments
	}
	n := segments
	if withCenter {
		n++
	}
	verts := make([]float32, 0, n*2)
	if withCenter {
		verts = append(verts, cx, cy)
	}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts,
			cx+radius*float32(math.Cos(a)),
			cy+radius*float32(math.Sin(a)),
		)
	}

	var inds []uint32
	if withCenter {
		inds = make([]uint32, 0, segments*3)
		for i := 0; i < segments; i++ {
			next := (i+1)%segments + 1
			inds = append(inds, 0, uint32(i+1), uint32(next))
		}
		return verts, inds
	}
	inds = make([]uint32, 0, (segments-2)*3)
	for i := 1; i < segments-1; i++ {
		inds = append(inds, 0, uint32(i), uint32(i+1))
	}
	return verts, inds
}

// GlyphQuad is one glyph cell in pixel space with its atlas UV rect.
type GlyphQuad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// GlyphVertices emits four pos+UV vertices and two triangles per quad.
func GlyphVertices(quads []GlyphQuad) ([]float32, []uint32) {
	verts := make([]float32, 0, len(quads)*16)
	inds := make([]uint32, 0, len(quads)*6)
	for i, q := range quads {
		base := uint32(i * 4)
		verts = append(verts,
			q.X0, q.Y0, q.U0, q.V0,
			q.X1, q.Y0, q.U1, q.V0,
			q.X1, q.Y1, q.U1, q.V1,
			q.X0, q.Y1, q.U0, q.V1,
		)
		inds = append(inds,
			base+0, base+1, base+2,
			base+2, base+3, base+0,
		)
	}
	return verts, inds
}
