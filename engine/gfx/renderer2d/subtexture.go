package renderer2d

// SubTexture2D describes a UV sub-rect of a registered texture.
type SubTexture2D struct {
	Name   string
	U0, V0 float32 // top-left
	U1, V1 float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(name string, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	u0 := float32(x) / float32(atlasW)
	v0 := float32(y) / float32(atlasH)
	u1 := float32(x+w) / float32(atlasW)
	v1 := float32(y+h) / float32(atlasH)
	return SubTexture2D{Name: name, U0: u0, V0: v0, U1: u1, V1: v1}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(name string, cx, cy, cw, ch, atlasW, atlasH int) SubTexture2D {
	return FromPixels(name, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}
