package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"raycast-maze/config"
)

// Texture is a square wall texture as packed 0xRRGGBBAA texels, row
// major. The renderer samples it directly; no image decoding happens
// after construction.
type Texture struct {
	Width  int
	Height int
	texels []uint32
}

// Texel returns the packed color at (x, y). Callers keep coordinates in
// range; the renderer masks them itself.
func (t *Texture) Texel(x, y int) uint32 {
	return t.texels[y*t.Width+x]
}

// LoadTexture decodes an image file and resamples it to the fixed
// 64×64 wall texture size.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("texture %s is empty", path)
	}

	t := &Texture{
		Width:  config.TexWidth,
		Height: config.TexHeight,
		texels: make([]uint32, config.TexWidth*config.TexHeight),
	}
	// Nearest-neighbor resample; wall textures are expected to already
	// be 64×64, anything else just gets scaled.
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			sx := bounds.Min.X + x*bounds.Dx()/t.Width
			sy := bounds.Min.Y + y*bounds.Dy()/t.Height
			r, g, b, a := img.At(sx, sy).RGBA()
			t.texels[y*t.Width+x] = uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8)
		}
	}
	return t, nil
}

// BrickTexture synthesizes the built-in wall texture: staggered gray
// bricks with dark mortar lines. Used whenever no texture file is given
// so the binary has no asset dependencies.
func BrickTexture() *Texture {
	const (
		brickH = 16
		brickW = 32
		mortar = 2
	)
	t := &Texture{
		Width:  config.TexWidth,
		Height: config.TexHeight,
		texels: make([]uint32, config.TexWidth*config.TexHeight),
	}
	for y := 0; y < t.Height; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < t.Width; x++ {
			bx := (x + offset) % brickW
			inMortar := y%brickH < mortar || bx < mortar
			var r, g, b uint32
			if inMortar {
				r, g, b = 60, 60, 60
			} else {
				// Cheap per-brick tint variation.
				tint := uint32((row*7+(x+offset)/brickW*13)%3) * 15
				r, g, b = 150+tint, 85+tint/2, 70+tint/2
			}
			t.texels[y*t.Width+x] = r<<24 | g<<16 | b<<8 | 0xFF
		}
	}
	return t
}
