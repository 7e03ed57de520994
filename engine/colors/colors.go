package colors

// Color is RGBA with channels in [0,1]. Values are not clamped.
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Orange      = Color{1, 0.647, 0, 1}
	Purple      = Color{0.5, 0, 0.5, 1}
	Pink        = Color{1, 0.75, 0.796, 1}
	Brown       = Color{0.545, 0.298, 0.149, 1}
	LightBlue   = Color{0.678, 0.847, 0.902, 1}
	Beige       = Color{0.827, 0.690, 0.514, 1}
	LightGreen  = Color{0.565, 0.933, 0.565, 1}
	DarkGreen   = Color{0, 0.459, 0.173, 1}
	LightCoral  = Color{0.941, 0.502, 0.502, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Bytes converts to 8-bit RGBA for pixel buffers, clamping each channel to [0, 1].
func (c Color) Bytes() [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		out[i] = uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return out
}
