package core

import "github.com/hubastard/echlib/engine/colors"

// Renderer is the graphics backend consumed by the 2D pipeline.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, verts []float32, inds []uint32) error
	Draw(cmd DrawCmd)
	// ProgramValid reports whether the program for m compiled and linked.
	ProgramValid(m Material) bool
	Shutdown()
}

// Material selects one of the three shader programs.
type Material uint8

const (
	MaterialFlat     Material = iota // uniform RGBA
	MaterialTextured                 // RGBA/RGB texture, alpha-tested
	MaterialText                     // single-channel atlas used as alpha
	MaterialCount
)

func (m Material) String() string {
	switch m {
	case MaterialFlat:
		return "flat"
	case MaterialTextured:
		return "textured"
	case MaterialText:
		return "text"
	default:
		return "unknown"
	}
}

type Texture interface {
	ID() uint32
	Size() (w, h int)
}

type Mesh interface {
	ID() uint32
	Layout() VertexLayout
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureRGB8
	TextureR8
)

// Channels returns bytes per pixel.
func (f TextureFormat) Channels() int {
	switch f {
	case TextureRGB8:
		return 3
	case TextureR8:
		return 1
	default:
		return 4
	}
}

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
	Mipmaps              bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

// Floats returns the number of float32 values per vertex.
func (l VertexLayout) Floats() int { return l.Stride / 4 }

var (
	// LayoutPos is a bare vec2 position.
	LayoutPos = VertexLayout{
		Stride:     2 * 4,
		Attributes: []VertexAttrib{{Location: 0, Size: 2, Type: AttribFloat32, Offset: 0}},
	}
	// LayoutPosUV is vec2 position followed by vec2 texture coordinates.
	LayoutPosUV = VertexLayout{
		Stride: 4 * 4,
		Attributes: []VertexAttrib{
			{Location: 0, Size: 2, Type: AttribFloat32, Offset: 0},
			{Location: 1, Size: 2, Type: AttribFloat32, Offset: 2 * 4},
		},
	}
)

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type Primitive int

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveLines
)

// DrawCmd issues one draw against the mesh's current contents.
type DrawCmd struct {
	Material  Material
	Mesh      Mesh
	Primitive Primitive
	Count     int  // vertices, or indices when Indexed
	Indexed   bool
	Color     colors.Color
	Texture   Texture
}
