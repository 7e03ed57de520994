package renderer2d

import "testing"

func TestCircleFanFourSegments(t *testing.T) {
	verts, inds := CircleFan(0, 0, 10, 4, true)

	if len(verts) != 5*2 {
		t.Fatalf("len(verts) = %d, want 10", len(verts))
	}
	if verts[0] != 0 || verts[1] != 0 {
		t.Errorf("centre = (%v, %v), want (0, 0)", verts[0], verts[1])
	}
	want := [][2]float32{{10, 0}, {0, 10}, {-10, 0}, {0, -10}}
	for i, w := range want {
		x, y := verts[2+i*2], verts[3+i*2]
		if !near(x, w[0]) || !near(y, w[1]) {
			t.Errorf("boundary %d = (%v, %v), want (%v, %v)", i, x, y, w[0], w[1])
		}
	}
	if got := len(inds) / 3; got != 4 {
		t.Errorf("triangles = %d, want 4", got)
	}
	// last triangle closes the seam back to the first boundary vertex
	if last := inds[len(inds)-3:]; last[0] != 0 || last[1] != 4 || last[2] != 1 {
		t.Errorf("closing triangle = %v, want [0 4 1]", last)
	}
}

func TestCircleFanWithoutCenter(t *testing.T) {
	verts, inds := CircleFan(5, 5, 2, 4, false)
	if len(verts) != 4*2 {
		t.Fatalf("len(verts) = %d, want 8", len(verts))
	}
	if got := len(inds) / 3; got != 2 {
		t.Fatalf("triangles = %d, want 2", got)
	}
	for _, idx := range inds {
		if idx >= 4 {
			t.Errorf("index %d out of boundary range", idx)
		}
	}
	for tri := 0; tri < len(inds)/3; tri++ {
		if b, c := inds[tri*3+1], inds[tri*3+2]; c != b+1 {
			t.Errorf("triangle %d joins %d and %d, want consecutive boundary vertices", tri, b, c)
		}
	}
}

func TestCircleFanClampsSegments(t *testing.T) {
	_, inds := CircleFan(0, 0, 1, 1, true)
	if got := len(inds) / 3; got != minCircleSegments {
		t.Errorf("triangles = %d, want %d", got, minCircleSegments)
	}
}

func TestTriangleVertices(t *testing.T) {
	got := TriangleVertices(10, 100, 32, -32)
	want := []float32{10, 100, 42, 100, 26, 68}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TriangleVertices()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRectCornersRotation(t *testing.T) {
	flat := RectCorners(0, 0, 4, 2, 0)
	if flat[0].X() != 0 || flat[2].X() != 4 || flat[2].Y() != 2 || flat[3].Y() != 2 {
		t.Errorf("unrotated corners = %v", flat)
	}

	rot := RectCorners(0, 0, 4, 2, 90)
	// centre (2,1); TL (-2,-1) rotated 90deg -> (1,-2) -> (3, -1)
	if !near(rot[0].X(), 3) || !near(rot[0].Y(), -1) {
		t.Errorf("rotated TL = %v, want (3, -1)", rot[0])
	}
	var cx, cy float32
	for _, c := range rot {
		cx += c.X() / 4
		cy += c.Y() / 4
	}
	if !near(cx, 2) || !near(cy, 1) {
		t.Errorf("rotated centroid = (%v, %v), want (2, 1)", cx, cy)
	}
}

func TestTexturedRectVerticesUV(t *testing.T) {
	v := TexturedRectVertices(0, 0, 10, 10, 0, 0.25, 0.5, 0.75, 1)
	uvs := [][2]float32{{0.25, 0.5}, {0.75, 0.5}, {0.75, 1}, {0.25, 1}}
	for i, uv := range uvs {
		if v[i*4+2] != uv[0] || v[i*4+3] != uv[1] {
			t.Errorf("corner %d uv = (%v, %v), want %v", i, v[i*4+2], v[i*4+3], uv)
		}
	}
}

func TestGlyphVertices(t *testing.T) {
	verts, inds := GlyphVertices([]GlyphQuad{
		{X0: 0, Y0: 0, X1: 8, Y1: 12, U0: 0, V0: 0, U1: 0.1, V1: 0.2},
		{X0: 9, Y0: 0, X1: 17, Y1: 12},
	})
	if len(verts) != 2*4*4 || len(inds) != 12 {
		t.Fatalf("len(verts), len(inds) = %d, %d; want 32, 12", len(verts), len(inds))
	}
	if inds[6] != 4 {
		t.Errorf("second glyph first index = %d, want 4", inds[6])
	}
}
