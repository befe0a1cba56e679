// Package render draws the first-person view. One ray is cast per
// screen column with a grid-stepping traversal; each hit becomes a
// textured, shaded vertical slice in a packed RGBA pixel buffer that
// the presentation layer blits as-is.
package render

import (
	"raycast-maze/maze"
	"raycast-maze/player"
)

// Background shades for the two screen halves.
const (
	ceilingShade = 70
	floorShade   = 40
)

// Exit cells render as a checkerboard of this many texels per block
// instead of the wall texture.
const exitBlockSize = 8

// Raycaster renders the maze from a pose into a reusable pixel buffer.
type Raycaster struct {
	width   int
	height  int
	pix     []byte // RGBA, width*height*4
	texture *Texture
}

// NewRaycaster creates a renderer for a fixed screen size.
func NewRaycaster(width, height int, texture *Texture) *Raycaster {
	return &Raycaster{
		width:   width,
		height:  height,
		pix:     make([]byte, width*height*4),
		texture: texture,
	}
}

// Pixels returns the RGBA buffer produced by the last Render call. The
// buffer is owned by the Raycaster and overwritten every frame.
func (r *Raycaster) Pixels() []byte {
	return r.pix
}

// Size returns the renderer's screen dimensions.
func (r *Raycaster) Size() (int, int) {
	return r.width, r.height
}

// Render draws a full frame: ceiling and floor fills, then one textured
// wall slice per column. Every pixel is overwritten; no dirty tracking.
func (r *Raycaster) Render(pose *player.Pose, grid *maze.Grid) {
	r.fillBackground()
	for x := 0; x < r.width; x++ {
		r.castColumn(x, pose, grid)
	}
}

func (r *Raycaster) fillBackground() {
	half := r.height / 2
	for y := 0; y < r.height; y++ {
		shade := byte(ceilingShade)
		if y >= half {
			shade = floorShade
		}
		row := r.pix[y*r.width*4 : (y+1)*r.width*4]
		for x := 0; x < r.width; x++ {
			row[x*4+0] = shade
			row[x*4+1] = shade
			row[x*4+2] = shade
			row[x*4+3] = 0xFF
		}
	}
}

// castColumn traces the ray for screen column x and draws its slice.
func (r *Raycaster) castColumn(x int, pose *player.Pose, grid *maze.Grid) {
	// Map the column to a camera-space offset in [-1, 1].
	cameraX := 2.0*float64(x)/float64(r.width) - 1.0
	rayDirX := pose.DirX + pose.PlaneX*cameraX
	rayDirY := pose.DirY + pose.PlaneY*cameraX

	mapX, mapY := int(pose.X), int(pose.Y)

	// Distance the ray travels to cross one full cell on each axis. A
	// zero direction component gets a saturating stand-in instead of a
	// division by zero; that axis then simply never wins a step.
	deltaDistX := 1e30
	if rayDirX != 0 {
		deltaDistX = abs(1.0 / rayDirX)
	}
	deltaDistY := 1e30
	if rayDirY != 0 {
		deltaDistY = abs(1.0 / rayDirY)
	}

	stepX, stepY := 1, 1
	sideDistX := (float64(mapX) + 1.0 - pose.X) * deltaDistX
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (pose.X - float64(mapX)) * deltaDistX
	}
	sideDistY := (float64(mapY) + 1.0 - pose.Y) * deltaDistY
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (pose.Y - float64(mapY)) * deltaDistY
	}

	// Grid-stepping traversal: advance to whichever grid line is
	// nearer until the ray lands in a solid cell. Out-of-bounds cells
	// read as walls, so this always terminates.
	side := 0
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if grid.IsSolid(mapX, mapY) {
			break
		}
	}

	// Perpendicular wall distance: measured along the view's forward
	// axis, not the raw hit distance, to avoid fish-eye distortion.
	var perpDist float64
	if side == 0 {
		perpDist = (float64(mapX) - pose.X + float64(1-stepX)/2.0) / rayDirX
	} else {
		perpDist = (float64(mapY) - pose.Y + float64(1-stepY)/2.0) / rayDirY
	}

	if perpDist < 1e-6 {
		perpDist = 1e-6
	}

	lineHeight := int(float64(r.height) / perpDist)
	if lineHeight < 1 {
		lineHeight = 1
	}
	drawStart := -lineHeight/2 + r.height/2
	if drawStart < 0 {
		drawStart = 0
	}
	drawEnd := lineHeight/2 + r.height/2
	if drawEnd >= r.height {
		drawEnd = r.height - 1
	}

	// Fractional coordinate of the hit along the wall face.
	var wallX float64
	if side == 0 {
		wallX = pose.Y + perpDist*rayDirY
	} else {
		wallX = pose.X + perpDist*rayDirX
	}
	wallX -= float64(int(wallX))
	if wallX < 0 {
		wallX += 1
	}

	texX := int(wallX * float64(r.texture.Width))
	// Mirror the texture column where the raw coordinate would paint
	// the face backwards.
	if (side == 0 && rayDirX > 0) || (side == 1 && rayDirY < 0) {
		texX = r.texture.Width - texX - 1
	}
	if texX < 0 {
		texX = 0
	} else if texX >= r.texture.Width {
		texX = r.texture.Width - 1
	}

	// 16.16 fixed-point row accumulator, wrapped with a power-of-two
	// mask on the texture height.
	texStep := (r.texture.Height << 16) / lineHeight
	texPos := (drawStart - r.height/2 + lineHeight/2) * texStep

	cell := grid.Cell(mapX, mapY)
	for y := drawStart; y < drawEnd; y++ {
		texY := (texPos >> 16) & (r.texture.Height - 1)
		texPos += texStep

		var cr, cg, cb byte
		if cell == maze.CellExit {
			// The exit ignores the wall texture: a black/white
			// checkerboard keeps it recognizable with any texture.
			if (texX/exitBlockSize+texY/exitBlockSize)%2 == 0 {
				cr, cg, cb = 0xFF, 0xFF, 0xFF
			}
		} else {
			texel := r.texture.Texel(texX, texY)
			cr = byte(texel >> 24)
			cg = byte(texel >> 16)
			cb = byte(texel >> 8)
			if side == 1 {
				// Darken Y-side hits to fake directional lighting.
				cr >>= 1
				cg >>= 1
				cb >>= 1
			}
		}

		i := (y*r.width + x) * 4
		r.pix[i+0] = cr
		r.pix[i+1] = cg
		r.pix[i+2] = cb
		r.pix[i+3] = 0xFF
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
