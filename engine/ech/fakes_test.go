package ech

import (
	"time"

	"github.com/hubastard/echlib/engine/core"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

type fakeWindow struct {
	keys    [core.KeyCount]core.Action
	buttons [core.MouseButtonCount]bool
	x, y    float64
	w, h    int
	cb      func(core.Event)
	pending []core.Event
	swaps   int
	polls   int
	closing bool
	closed  int
	title   string
}

func (f *fakeWindow) KeyAction(k core.Key) core.Action        { return f.keys[k] }
func (f *fakeWindow) MouseButtonDown(b core.MouseButton) bool { return f.buttons[b] }
func (f *fakeWindow) CursorPos() (float64, float64)           { return f.x, f.y }
func (f *fakeWindow) SwapBuffers()                            { f.swaps++ }
func (f *fakeWindow) ShouldClose() bool                       { return f.closing }
func (f *fakeWindow) RequestClose()                           { f.closing = true }
func (f *fakeWindow) SetTitle(t string)                       { f.title = t }
func (f *fakeWindow) SetEventCallback(cb func(core.Event))    { f.cb = cb }
func (f *fakeWindow) Close()                                  { f.closed++ }

// FramebufferSize fails like a destroyed GLFW window once Close ran.
func (f *fakeWindow) FramebufferSize() (int, int) {
	if f.closed > 0 {
		panic("FramebufferSize on a closed window")
	}
	return f.w, f.h
}

func (f *fakeWindow) PollEvents() {
	f.polls++
	evs := f.pending
	f.pending = nil
	for _, ev := range evs {
		if f.cb != nil {
			f.cb(ev)
		}
	}
}

type fakeTexture struct{ id uint32 }

func (t *fakeTexture) ID() uint32       { return t.id }
func (t *fakeTexture) Size() (int, int) { return 1, 1 }

type fakeMesh struct{ layout core.VertexLayout }

func (m *fakeMesh) ID() uint32                { return 1 }
func (m *fakeMesh) Layout() core.VertexLayout { return m.layout }

type fakeBackend struct {
	clears   [][4]float32
	textures []core.TextureDesc
	uploads  [][]float32
	draws    []core.DrawCmd
	deleted  int
	shutdown int
}

func (b *fakeBackend) Init() error     { return nil }
func (b *fakeBackend) Resize(w, h int) {}

func (b *fakeBackend) Clear(r, g, bl, a float32) {
	b.clears = append(b.clears, [4]float32{r, g, bl, a})
}

func (b *fakeBackend) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	b.textures = append(b.textures, desc)
	return &fakeTexture{id: uint32(len(b.textures))}, nil
}

func (b *fakeBackend) DeleteTexture(core.Texture) { b.deleted++ }

func (b *fakeBackend) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	return &fakeMesh{layout: desc.Layout}, nil
}

func (b *fakeBackend) UpdateMesh(_ core.Mesh, verts []float32, _ []uint32) error {
	b.uploads = append(b.uploads, append([]float32(nil), verts...))
	return nil
}

func (b *fakeBackend) Draw(cmd core.DrawCmd)           { b.draws = append(b.draws, cmd) }
func (b *fakeBackend) ProgramValid(core.Material) bool { return true }
func (b *fakeBackend) Shutdown()                       { b.shutdown++ }
