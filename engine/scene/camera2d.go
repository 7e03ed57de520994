package scene

import "github.com/go-gl/mathgl/mgl32"

const minZoom = 0.05

// Camera2D is a pixel-space camera: position, rotation (degrees) and zoom.
type Camera2D struct {
	X, Y     float32
	Rotation float32
	Zoom     float32 // 1 = no zoom
}

func NewCamera2D() *Camera2D { return &Camera2D{Zoom: 1} }

// Follow moves the camera toward the target by lerp of the remaining
// distance. lerp = 1 snaps, lerp = 0 freezes.
func (c *Camera2D) Follow(targetX, targetY, lerp float32) {
	c.X += (targetX - c.X) * lerp
	c.Y += (targetY - c.Y) * lerp
}

func (c *Camera2D) SetPosition(x, y float32) { c.X, c.Y = x, y }
func (c *Camera2D) Move(dx, dy float32)      { c.X += dx; c.Y += dy }
func (c *Camera2D) Rotate(deg float32)       { c.Rotation += deg }

func (c *Camera2D) SetZoom(z float32) {
	if z < minZoom {
		z = minZoom
	}
	c.Zoom = z
}

// View maps world pixels to screen pixels so the camera position lands on
// the centre of a viewW x viewH viewport.
func (c *Camera2D) View(viewW, viewH float32) mgl32.Mat4 {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	center := mgl32.Translate3D(viewW/2, viewH/2, 0)
	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(-c.Rotation))
	scale := mgl32.Scale3D(z, z, 1)
	follow := mgl32.Translate3D(-c.X, -c.Y, 0)
	return center.Mul4(rot).Mul4(scale).Mul4(follow)
}

// ScreenToWorld inverts View for a screen-space point.
func (c *Camera2D) ScreenToWorld(sx, sy, viewW, viewH float32) (float32, float32) {
	inv := c.View(viewW, viewH).Inv()
	p := inv.Mul4x1(mgl32.Vec4{sx, sy, 0, 1})
	return p.X(), p.Y()
}
