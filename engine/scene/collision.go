package scene

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// Overlaps reports strict AABB overlap; rectangles sharing only an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether point (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float32, float32) { return r.X + r.W/2, r.Y + r.H/2 }

func CheckCollision(ax, ay, aw, ah, bx, by, bw, bh float32) bool {
	return Rect{ax, ay, aw, ah}.Overlaps(Rect{bx, by, bw, bh})
}
