package renderer2d

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
)

// ErrUnknownTexture is reported when a draw names a texture that was never registered.
var ErrUnknownTexture = errors.New("renderer2d: unknown texture")

// initial mesh capacity, in vertices; meshes are re-uploaded on every draw
const reserveVerts = 256

// Surface reports the current drawable size in pixels.
type Surface interface {
	FramebufferSize() (int, int)
}

// Options configures a Renderer2D.
type Options struct {
	CircleSegments int   // <= 0 uses DefaultCircleSegments
	Axis           YAxis // pixel-space vertical convention
}

// DrawOpts are the optional per-shape parameters shared by rectangles and
// textured quads. The zero value draws unrotated with the colour's own alpha.
type DrawOpts struct {
	Rotation      float32 // degrees, about the shape's centre
	Alpha         float32
	OverrideAlpha bool // use Alpha instead of the colour's alpha channel
}

// Rotated returns opts with a rotation in degrees.
func (o DrawOpts) Rotated(deg float32) DrawOpts { o.Rotation = deg; return o }

// WithAlpha returns opts with an alpha override.
func (o DrawOpts) WithAlpha(a float32) DrawOpts {
	o.Alpha, o.OverrideAlpha = a, true
	return o
}

func (o DrawOpts) apply(c colors.Color) colors.Color {
	if o.OverrideAlpha {
		return c.WithAlpha(o.Alpha)
	}
	return c
}

// CircleOpts selects the circle tessellation.
type CircleOpts struct {
	Segments int  // <= 0 uses the renderer's configured count
	NoCenter bool // fan over boundary vertices only
}

// Statistics captures the counts generated since the last ResetStats.
type Statistics struct {
	DrawCalls   int
	Vertices    int
	Indices     int
	SkippedDraw int
}

// Renderer2D turns one shape request into one backend draw. There is no
// batching: every call re-uploads its mesh and issues its own draw.
type Renderer2D struct {
	r        core.Renderer
	surface  Surface
	axis     YAxis
	segments int

	posMesh core.Mesh
	uvMesh  core.Mesh

	view    mgl32.Mat4
	hasView bool

	textures map[string]core.Texture
	stats    Statistics
}

// New creates the reusable meshes for both vertex layouts.
func New(r core.Renderer, surface Surface, opts Options) (*Renderer2D, error) {
	if r == nil || surface == nil {
		return nil, errors.New("renderer2d: nil renderer or surface")
	}
	segments := opts.CircleSegments
	if segments <= 0 {
		segments = DefaultCircleSegments
	}
	if segments < minCircleSegments {
		segments = minCircleSegments
	}

	posMesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, reserveVerts*core.LayoutPos.Floats()),
		Indices:  make([]uint32, reserveVerts*3),
		Layout:   core.LayoutPos,
	})
	if err != nil {
		return nil, fmt.Errorf("create shape mesh: %w", err)
	}
	uvMesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, reserveVerts*core.LayoutPosUV.Floats()),
		Indices:  make([]uint32, reserveVerts*3),
		Layout:   core.LayoutPosUV,
	})
	if err != nil {
		return nil, fmt.Errorf("create textured mesh: %w", err)
	}

	return &Renderer2D{
		r:        r,
		surface:  surface,
		axis:     opts.Axis,
		segments: segments,
		posMesh:  posMesh,
		uvMesh:   uvMesh,
		view:     mgl32.Ident4(),
		textures: make(map[string]core.Texture),
	}, nil
}

// SetView sets the pixel-space transform applied before normalization.
func (rd *Renderer2D) SetView(m mgl32.Mat4) {
	rd.view = m
	rd.hasView = m != mgl32.Ident4()
}

// ResetView restores the identity view.
func (rd *Renderer2D) ResetView() { rd.SetView(mgl32.Ident4()) }

func (rd *Renderer2D) View() mgl32.Mat4 { return rd.view }

// CircleSegments is the configured default fan resolution.
func (rd *Renderer2D) CircleSegments() int { return rd.segments }

// Stats returns the current statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// ResetStats zeroes the counters, typically at frame begin.
func (rd *Renderer2D) ResetStats() { rd.stats = Statistics{} }

// --- textures ---

// RegisterTexture binds name to tex. An existing texture under the same name
// is released first.
func (rd *Renderer2D) RegisterTexture(name string, tex core.Texture) {
	if old, ok := rd.textures[name]; ok && old != tex && old != nil {
		rd.r.DeleteTexture(old)
	}
	rd.textures[name] = tex
}

// Texture looks up a registered texture.
func (rd *Renderer2D) Texture(name string) (core.Texture, bool) {
	t, ok := rd.textures[name]
	return t, ok
}

// TextureCount returns the number of registered textures.
func (rd *Renderer2D) TextureCount() int { return len(rd.textures) }

// --- primitives ---

func (rd *Renderer2D) DrawLine(x1, y1, x2, y2 float32, c colors.Color) {
	rd.submit(core.MaterialFlat, core.PrimitiveLines, LineVertices(x1, y1, x2, y2), nil, c, nil)
}

func (rd *Renderer2D) DrawTriangle(x, y, w, h float32, c colors.Color) {
	rd.submit(core.MaterialFlat, core.PrimitiveTriangles, TriangleVertices(x, y, w, h), nil, c, nil)
}

func (rd *Renderer2D) DrawRectangle(x, y, w, h float32, c colors.Color) {
	rd.DrawRectangleEx(x, y, w, h, c, DrawOpts{})
}

// DrawRectangleEx draws a filled rectangle with optional rotation and alpha override.
func (rd *Renderer2D) DrawRectangleEx(x, y, w, h float32, c colors.Color, opts DrawOpts) {
	verts := RectVertices(x, y, w, h, opts.Rotation)
	rd.submit(core.MaterialFlat, core.PrimitiveTriangles, verts, RectIndices[:], opts.apply(c), nil)
}

func (rd *Renderer2D) DrawCircle(x, y, radius float32, c colors.Color) {
	rd.DrawCircleEx(x, y, radius, c, CircleOpts{})
}

// DrawCircleOutlineFan fans over the boundary vertices only, without a centre.
func (rd *Renderer2D) DrawCircleOutlineFan(x, y, radius float32, segments int, c colors.Color) {
	rd.DrawCircleEx(x, y, radius, c, CircleOpts{Segments: segments, NoCenter: true})
}

func (rd *Renderer2D) DrawCircleEx(x, y, radius float32, c colors.Color, opts CircleOpts) {
	segments := opts.Segments
	if segments <= 0 {
		segments = rd.segments
	}
	verts, inds := CircleFan(x, y, radius, segments, !opts.NoCenter)
	rd.submit(core.MaterialFlat, core.PrimitiveTriangles, verts, inds, c, nil)
}

// DrawTexturedRectangle draws the whole named texture into the rectangle.
func (rd *Renderer2D) DrawTexturedRectangle(x, y, w, h float32, name string) {
	rd.DrawTexturedRectangleEx(x, y, w, h, name, DrawOpts{})
}

// DrawTexturedRectangleEx is DrawTexturedRectangle with rotation about the
// rectangle's centre and an optional alpha override.
func (rd *Renderer2D) DrawTexturedRectangleEx(x, y, w, h float32, name string, opts DrawOpts) {
	tex, ok := rd.lookup(name)
	if !ok {
		return
	}
	verts := TexturedRectVertices(x, y, w, h, opts.Rotation, 0, 0, 1, 1)
	rd.submit(core.MaterialTextured, core.PrimitiveTriangles, verts, RectIndices[:], opts.apply(colors.White), tex)
}

// DrawSubTexture draws a sub-rect of a registered texture.
func (rd *Renderer2D) DrawSubTexture(x, y, w, h float32, sub SubTexture2D, opts DrawOpts) {
	tex, ok := rd.lookup(sub.Name)
	if !ok {
		return
	}
	verts := TexturedRectVertices(x, y, w, h, opts.Rotation, sub.U0, sub.V0, sub.U1, sub.V1)
	rd.submit(core.MaterialTextured, core.PrimitiveTriangles, verts, RectIndices[:], opts.apply(colors.White), tex)
}

// DrawGlyphs draws glyph quads from a single-channel atlas in one call.
func (rd *Renderer2D) DrawGlyphs(atlas core.Texture, quads []GlyphQuad, c colors.Color) {
	if atlas == nil || len(quads) == 0 {
		return
	}
	verts, inds := GlyphVertices(quads)
	rd.submit(core.MaterialText, core.PrimitiveTriangles, verts, inds, c, atlas)
}

// --- internals ---

func (rd *Renderer2D) lookup(name string) (core.Texture, bool) {
	tex, ok := rd.textures[name]
	if !ok || tex == nil {
		core.Logger().Warn("draw skipped", "error", ErrUnknownTexture, "texture", name)
		rd.stats.SkippedDraw++
		return nil, false
	}
	return tex, true
}

func (rd *Renderer2D) submit(mat core.Material, prim core.Primitive, verts []float32, inds []uint32, c colors.Color, tex core.Texture) {
	if !rd.r.ProgramValid(mat) {
		core.Logger().Debug("draw skipped", "reason", "invalid program", "material", mat.String())
		rd.stats.SkippedDraw++
		return
	}

	mesh := rd.posMesh
	if mat != core.MaterialFlat {
		mesh = rd.uvMesh
	}
	stride := mesh.Layout().Floats()

	w, h := rd.surface.FramebufferSize()
	norm, err := NewNormalizer(w, h, rd.axis)
	if err != nil {
		core.Logger().Warn("draw skipped", "error", err, "material", mat.String())
		rd.stats.SkippedDraw++
		return
	}

	if rd.hasView {
		for i := 0; i+1 < len(verts); i += stride {
			p := rd.view.Mul4x1(mgl32.Vec4{verts[i], verts[i+1], 0, 1})
			verts[i], verts[i+1] = p.X(), p.Y()
		}
	}
	norm.NormalizePositions(verts, stride)

	if err := rd.r.UpdateMesh(mesh, verts, inds); err != nil {
		core.Logger().Warn("mesh upload failed", "error", err, "material", mat.String())
		rd.stats.SkippedDraw++
		return
	}

	cmd := core.DrawCmd{
		Material:  mat,
		Mesh:      mesh,
		Primitive: prim,
		Count:     len(verts) / stride,
		Color:     c,
		Texture:   tex,
	}
	if len(inds) > 0 {
		cmd.Indexed = true
		cmd.Count = len(inds)
	}
	rd.r.Draw(cmd)

	rd.stats.DrawCalls++
	rd.stats.Vertices += len(verts) / stride
	rd.stats.Indices += len(inds)
}
