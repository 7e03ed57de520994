package renderer2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/echlib/engine/colors"
	"github.com/hubastard/echlib/engine/core"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer2D, *fakeBackend, *fixedSurface) {
	t.Helper()
	prev := core.Logger()
	core.SetLogger(nil)
	t.Cleanup(func() { core.SetLogger(prev) })

	b := &fakeBackend{}
	s := &fixedSurface{w: w, h: h}
	rd, err := New(b, s, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return rd, b, s
}

func TestNewCreatesBothMeshes(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	if len(b.meshes) != 2 {
		t.Fatalf("meshes created = %d, want 2", len(b.meshes))
	}
	if b.meshes[0].layout.Stride != core.LayoutPos.Stride || b.meshes[1].layout.Stride != core.LayoutPosUV.Stride {
		t.Errorf("mesh layouts = %v, %v", b.meshes[0].layout, b.meshes[1].layout)
	}
	if rd.CircleSegments() != DefaultCircleSegments {
		t.Errorf("CircleSegments() = %d, want %d", rd.CircleSegments(), DefaultCircleSegments)
	}
	if _, err := New(nil, &fixedSurface{}, Options{}); err == nil {
		t.Error("New(nil renderer) error = nil")
	}
}

func TestDrawRectangleIssuesOneDraw(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	rd.DrawRectangle(0, 0, 400, 300, colors.Red)

	if len(b.uploads) != 1 || len(b.draws) != 1 {
		t.Fatalf("uploads, draws = %d, %d; want 1, 1", len(b.uploads), len(b.draws))
	}
	cmd := b.draws[0]
	if cmd.Material != core.MaterialFlat || !cmd.Indexed || cmd.Count != 6 {
		t.Errorf("cmd = %+v, want indexed flat draw of 6", cmd)
	}
	if cmd.Color != colors.Red {
		t.Errorf("cmd.Color = %v, want %v", cmd.Color, colors.Red)
	}
	want := []float32{-1, 1, 0, 1, 0, 0, -1, 0}
	got := b.uploads[0].verts
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("verts[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if st := rd.Stats(); st.DrawCalls != 1 || st.Vertices != 4 || st.Indices != 6 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestEveryShapeIsItsOwnDraw(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 320, 240)
	rd.DrawLine(0, 0, 10, 10, colors.White)
	rd.DrawTriangle(10, 10, 20, 20, colors.Green)
	rd.DrawCircle(50, 50, 10, colors.Blue)
	rd.DrawRectangle(1, 1, 2, 2, colors.Gray)

	if len(b.draws) != 4 || len(b.uploads) != 4 {
		t.Fatalf("draws, uploads = %d, %d; want 4, 4", len(b.draws), len(b.uploads))
	}
	line := b.draws[0]
	if line.Primitive != core.PrimitiveLines || line.Indexed || line.Count != 2 {
		t.Errorf("line cmd = %+v", line)
	}
	tri := b.draws[1]
	if tri.Indexed || tri.Count != 3 {
		t.Errorf("triangle cmd = %+v", tri)
	}
	circle := b.draws[2]
	if !circle.Indexed || circle.Count != DefaultCircleSegments*3 {
		t.Errorf("circle cmd = %+v", circle)
	}
}

func TestDrawCircleExSegments(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 100, 100)
	rd.DrawCircleEx(50, 50, 10, colors.Blue, CircleOpts{Segments: 4})
	rd.DrawCircleEx(50, 50, 10, colors.Blue, CircleOpts{Segments: 4, NoCenter: true})

	if got := b.draws[0].Count / 3; got != 4 {
		t.Errorf("centred triangles = %d, want 4", got)
	}
	if got := b.draws[1].Count / 3; got != 2 {
		t.Errorf("centreless triangles = %d, want 2", got)
	}
}

func TestZeroSurfaceSkipsDraw(t *testing.T) {
	rd, b, s := newTestRenderer(t, 0, 600)
	rd.DrawRectangle(0, 0, 10, 10, colors.Red)
	s.w, s.h = 800, 0
	rd.DrawCircle(0, 0, 5, colors.Red)

	if len(b.uploads) != 0 || len(b.draws) != 0 {
		t.Fatalf("uploads, draws = %d, %d; want 0, 0", len(b.uploads), len(b.draws))
	}
	if st := rd.Stats(); st.SkippedDraw != 2 || st.DrawCalls != 0 {
		t.Errorf("Stats() = %+v", st)
	}

	// resize is picked up on the next draw
	s.w, s.h = 800, 600
	rd.DrawRectangle(0, 0, 10, 10, colors.Red)
	if len(b.draws) != 1 {
		t.Errorf("draws after resize = %d, want 1", len(b.draws))
	}
}

func TestUnknownTextureIssuesNoGPUWork(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	rd.DrawTexturedRectangle(0, 0, 32, 32, "missing")
	rd.DrawTexturedRectangleEx(0, 0, 32, 32, "missing", DrawOpts{Rotation: 45})
	rd.DrawSubTexture(0, 0, 32, 32, SubTexture2D{Name: "missing"}, DrawOpts{})

	if len(b.uploads) != 0 || len(b.draws) != 0 {
		t.Fatalf("uploads, draws = %d, %d; want 0, 0", len(b.uploads), len(b.draws))
	}
	if got := rd.Stats().SkippedDraw; got != 3 {
		t.Errorf("SkippedDraw = %d, want 3", got)
	}
}

func TestTexturedRectangle(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	tex, _ := b.CreateTexture(core.TextureDesc{Width: 16, Height: 16, Format: core.TextureRGBA8})
	rd.RegisterTexture("player", tex)

	rd.DrawTexturedRectangleEx(0, 0, 32, 32, "player", DrawOpts{}.WithAlpha(0.5))

	if len(b.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(b.draws))
	}
	cmd := b.draws[0]
	if cmd.Material != core.MaterialTextured || cmd.Texture != tex {
		t.Errorf("cmd = %+v", cmd)
	}
	if cmd.Color != colors.White.WithAlpha(0.5) {
		t.Errorf("tint = %v, want white at half alpha", cmd.Color)
	}
	if b.uploads[0].mesh != rd.uvMesh {
		t.Error("textured draw uploaded to the position-only mesh")
	}
	v := b.uploads[0].verts
	if v[2] != 0 || v[3] != 0 || v[10] != 1 || v[11] != 1 {
		t.Errorf("uv = (%v,%v) (%v,%v), want full texture", v[2], v[3], v[10], v[11])
	}
}

func TestAlphaOverride(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	rd.DrawRectangleEx(0, 0, 10, 10, colors.Red, DrawOpts{}.WithAlpha(0.25))
	rd.DrawRectangleEx(0, 0, 10, 10, colors.Red.WithAlpha(0.75), DrawOpts{})

	if a := b.draws[0].Color.A(); a != 0.25 {
		t.Errorf("override alpha = %v, want 0.25", a)
	}
	if a := b.draws[1].Color.A(); a != 0.75 {
		t.Errorf("colour alpha = %v, want 0.75", a)
	}
}

func TestRegisterTextureReplacesOld(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	first, _ := b.CreateTexture(core.TextureDesc{Width: 1, Height: 1})
	second, _ := b.CreateTexture(core.TextureDesc{Width: 2, Height: 2})

	rd.RegisterTexture("a", first)
	rd.RegisterTexture("a", first)
	if len(b.deleted) != 0 {
		t.Fatalf("re-registering the same texture deleted it")
	}
	rd.RegisterTexture("a", second)
	if len(b.deleted) != 1 || b.deleted[0] != first {
		t.Errorf("deleted = %v, want [first]", b.deleted)
	}
	if got, _ := rd.Texture("a"); got != second {
		t.Error("Texture(a) did not return the replacement")
	}
	if rd.TextureCount() != 1 {
		t.Errorf("TextureCount() = %d, want 1", rd.TextureCount())
	}
}

func TestViewIsAppliedBeforeNormalization(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 200, 200)
	rd.SetView(mgl32.Translate3D(100, 100, 0))
	rd.DrawLine(0, 0, -100, -100, colors.White)

	v := b.uploads[0].verts
	if !near(v[0], 0) || !near(v[1], 0) || !near(v[2], -1) || !near(v[3], 1) {
		t.Errorf("verts = %v, want [0 0 -1 1]", v)
	}

	rd.ResetView()
	if rd.View() != mgl32.Ident4() {
		t.Error("ResetView() left a non-identity view")
	}
	rd.DrawLine(0, 0, 200, 200, colors.White)
	v = b.uploads[1].verts
	if !near(v[0], -1) || !near(v[1], 1) {
		t.Errorf("verts after reset = %v", v)
	}
}

func TestDrawGlyphsUsesTextMaterial(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	atlas, _ := b.CreateTexture(core.TextureDesc{Width: 64, Height: 64, Format: core.TextureR8})

	rd.DrawGlyphs(atlas, nil, colors.White)
	if len(b.draws) != 0 {
		t.Fatal("empty glyph run issued a draw")
	}
	rd.DrawGlyphs(atlas, []GlyphQuad{{X1: 8, Y1: 8}, {X0: 8, X1: 16, Y1: 8}}, colors.Yellow)
	if len(b.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(b.draws))
	}
	if cmd := b.draws[0]; cmd.Material != core.MaterialText || cmd.Count != 12 || cmd.Texture != atlas {
		t.Errorf("cmd = %+v", cmd)
	}
}

func TestUploadFailureSkipsDraw(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	b.failMesh = true
	rd.DrawRectangle(0, 0, 10, 10, colors.Red)
	if len(b.draws) != 0 {
		t.Errorf("draws = %d, want 0", len(b.draws))
	}
	if rd.Stats().SkippedDraw != 1 {
		t.Errorf("SkippedDraw = %d, want 1", rd.Stats().SkippedDraw)
	}
	rd.ResetStats()
	if rd.Stats() != (Statistics{}) {
		t.Errorf("ResetStats() left %+v", rd.Stats())
	}
}

func TestSubTexture(t *testing.T) {
	sub := FromPixels("sheet", 32, 16, 32, 16, 128, 64)
	if sub.U0 != 0.25 || sub.V0 != 0.25 || sub.U1 != 0.5 || sub.V1 != 0.5 {
		t.Errorf("FromPixels() = %+v", sub)
	}
}

func TestInvalidProgramSkipsDraw(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 800, 600)
	b.invalid = map[core.Material]bool{core.MaterialFlat: true}

	rd.DrawRectangle(0, 0, 10, 10, colors.Red)
	rd.DrawCircle(50, 50, 5, colors.Red)
	rd.DrawLine(0, 0, 5, 5, colors.Red)

	if len(b.uploads) != 0 || len(b.draws) != 0 {
		t.Errorf("uploads, draws = %d, %d; want 0, 0", len(b.uploads), len(b.draws))
	}
	st := rd.Stats()
	if st.DrawCalls != 0 || st.SkippedDraw != 3 {
		t.Errorf("Stats() = %+v, want 0 draws and 3 skipped", st)
	}

	rd.RegisterTexture("tile", &fakeTexture{id: 9, w: 4, h: 4})
	rd.DrawTexturedRectangle(0, 0, 10, 10, "tile")
	if len(b.draws) != 1 || b.draws[0].Material != core.MaterialTextured {
		t.Errorf("textured draw with a valid program: draws = %+v", b.draws)
	}
}
