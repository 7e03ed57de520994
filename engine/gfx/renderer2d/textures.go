package renderer2d

import (
	"fmt"

	"github.com/hubastard/echlib/engine/assets"
	"github.com/hubastard/echlib/engine/core"
)

// LoadTexture decodes the image at path, uploads it and registers it as name.
func (rd *Renderer2D) LoadTexture(name, path string) (core.Texture, error) {
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, err
	}
	tex, err := rd.r.CreateTexture(core.TextureDesc{
		Width:     img.Width,
		Height:    img.Height,
		Format:    core.TextureRGBA8,
		Pixels:    img.Pixels,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "repeat",
		WrapV:     "repeat",
		Mipmaps:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("upload texture %q: %w", path, err)
	}
	rd.RegisterTexture(name, tex)
	return tex, nil
}
