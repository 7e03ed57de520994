package core

import "time"

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1000, 0)} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeWindow struct {
	keys       [KeyCount]Action
	buttons    [MouseButtonCount]bool
	x, y       float64
	w, h       int
	cb         func(Event)
	pending    []Event
	swaps      int
	polls      int
	closeAfter int // ShouldClose turns true after this many polls; 0 = never
	closed     bool
	title      string
}

func newFakeWindow(w, h int) *fakeWindow { return &fakeWindow{w: w, h: h} }

func (f *fakeWindow) KeyAction(k Key) Action { return f.keys[k] }

func (f *fakeWindow) MouseButtonDown(b MouseButton) bool { return f.buttons[b] }

func (f *fakeWindow) CursorPos() (float64, float64) { return f.x, f.y }

func (f *fakeWindow) PollEvents() {
	f.polls++
	evs := f.pending
	f.pending = nil
	for _, ev := range evs {
		if r, ok := ev.(EventResize); ok {
			f.w, f.h = r.W, r.H
		}
		if f.cb != nil {
			f.cb(ev)
		}
	}
}

func (f *fakeWindow) SwapBuffers() { f.swaps++ }

func (f *fakeWindow) ShouldClose() bool {
	return f.closed || (f.closeAfter > 0 && f.polls >= f.closeAfter)
}

func (f *fakeWindow) RequestClose() { f.closed = true }

func (f *fakeWindow) FramebufferSize() (int, int) { return f.w, f.h }

func (f *fakeWindow) SetTitle(t string) { f.title = t }

func (f *fakeWindow) SetEventCallback(cb func(Event)) { f.cb = cb }

func (f *fakeWindow) Close() { f.closed = true }

type fakeRenderer struct {
	clears   [][4]float32
	resizes  [][2]int
	draws    []DrawCmd
	shutdown int
}

func (r *fakeRenderer) Init() error { return nil }

func (r *fakeRenderer) Resize(w, h int) { r.resizes = append(r.resizes, [2]int{w, h}) }

func (r *fakeRenderer) Clear(cr, cg, cb, ca float32) {
	r.clears = append(r.clears, [4]float32{cr, cg, cb, ca})
}

func (r *fakeRenderer) CreateTexture(TextureDesc) (Texture, error) { return nil, nil }

func (r *fakeRenderer) DeleteTexture(Texture) {}

func (r *fakeRenderer) CreateMesh(MeshDesc) (Mesh, error) { return nil, nil }

func (r *fakeRenderer) UpdateMesh(Mesh, []float32, []uint32) error { return nil }

func (r *fakeRenderer) Draw(cmd DrawCmd) { r.draws = append(r.draws, cmd) }

func (r *fakeRenderer) ProgramValid(Material) bool { return true }

func (r *fakeRenderer) Shutdown() { r.shutdown++ }
