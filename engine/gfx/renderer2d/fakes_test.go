package renderer2d

import (
	"errors"

	"github.com/hubastard/echlib/engine/core"
)

type fakeTexture struct {
	id   uint32
	w, h int
}

func (t *fakeTexture) ID() uint32       { return t.id }
func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeMesh struct {
	id     uint32
	layout core.VertexLayout
}

func (m *fakeMesh) ID() uint32                { return m.id }
func (m *fakeMesh) Layout() core.VertexLayout { return m.layout }

type upload struct {
	mesh  core.Mesh
	verts []float32
	inds  []uint32
}

type fakeBackend struct {
	meshes   []*fakeMesh
	textures []core.TextureDesc
	deleted  []core.Texture
	uploads  []upload
	draws    []core.DrawCmd
	failMesh bool
	invalid  map[core.Material]bool // programs that failed to build
}

func (b *fakeBackend) Init() error               { return nil }
func (b *fakeBackend) Resize(w, h int)           {}
func (b *fakeBackend) Clear(r, g, bl, a float32) {}

func (b *fakeBackend) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	b.textures = append(b.textures, desc)
	return &fakeTexture{id: uint32(len(b.textures)), w: desc.Width, h: desc.Height}, nil
}

func (b *fakeBackend) DeleteTexture(t core.Texture) { b.deleted = append(b.deleted, t) }

func (b *fakeBackend) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m := &fakeMesh{id: uint32(len(b.meshes) + 1), layout: desc.Layout}
	b.meshes = append(b.meshes, m)
	return m, nil
}

func (b *fakeBackend) UpdateMesh(m core.Mesh, verts []float32, inds []uint32) error {
	if b.failMesh {
		return errors.New("buffer lost")
	}
	b.uploads = append(b.uploads, upload{
		mesh:  m,
		verts: append([]float32(nil), verts...),
		inds:  append([]uint32(nil), inds...),
	})
	return nil
}

func (b *fakeBackend) Draw(cmd core.DrawCmd)             { b.draws = append(b.draws, cmd) }
func (b *fakeBackend) ProgramValid(m core.Material) bool { return !b.invalid[m] }
func (b *fakeBackend) Shutdown()                         {}

type fixedSurface struct{ w, h int }

func (s *fixedSurface) FramebufferSize() (int, int) { return s.w, s.h }
