package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycast-maze/config"
	"raycast-maze/maze"
	"raycast-maze/player"
)

const (
	testW = 100
	testH = 200
)

// solidTexture builds a uniform texture for slice measurements.
func solidTexture(texel uint32) *Texture {
	t := &Texture{
		Width:  config.TexWidth,
		Height: config.TexHeight,
		texels: make([]uint32, config.TexWidth*config.TexHeight),
	}
	for i := range t.texels {
		t.texels[i] = texel
	}
	return t
}

// splitTexture is black in its left half and white in its right half,
// for checking the column mirroring rule.
func splitTexture() *Texture {
	t := solidTexture(0x000000FF)
	for y := 0; y < t.Height; y++ {
		for x := t.Width / 2; x < t.Width; x++ {
			t.texels[y*t.Width+x] = 0xFFFFFFFF
		}
	}
	return t
}

// hallGrid is a 10×10 room of empty cells inside a solid border, with
// an extra solid column at x=5 acting as the target wall.
func hallGrid() *maze.Grid {
	g := maze.NewGrid(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			g.SetCell(x, y, maze.CellEmpty)
		}
	}
	for y := 0; y < 10; y++ {
		g.SetCell(5, y, maze.CellWall)
	}
	return g
}

func pixelAt(r *Raycaster, x, y int) (byte, byte, byte) {
	i := (y*testW + x) * 4
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// sliceHeight counts the pixels in a column that differ from the
// ceiling/floor background.
func sliceHeight(r *Raycaster, x int) int {
	n := 0
	for y := 0; y < testH; y++ {
		cr, cg, cb := pixelAt(r, x, y)
		if !(cr == cg && cg == cb && (cr == ceilingShade || cr == floorShade)) {
			n++
		}
	}
	return n
}

func TestPerpendicularDistanceHasNoFisheye(t *testing.T) {
	// A flat wall orthogonal to the view axis at distance 2.5 must
	// produce the same slice height screenHeight/d in every column;
	// raw Euclidean distance would shrink the off-center columns.
	r := NewRaycaster(testW, testH, solidTexture(0xFFFFFFFF))
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}
	grid := hallGrid()

	r.Render(&pose, grid)
	// The outermost columns clip the top border wall first; every
	// column whose ray reaches the target wall must agree exactly.
	for x := 10; x <= 90; x++ {
		require.Equal(t, 80, sliceHeight(r, x), "column %d", x) // 200 / 2.5
	}
}

func TestXSideHitIsUnshaded(t *testing.T) {
	r := NewRaycaster(testW, testH, solidTexture(0xFFFFFFFF))
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}
	r.Render(&pose, hallGrid())

	cr, cg, cb := pixelAt(r, testW/2, testH/2)
	assert.Equal(t, [3]byte{0xFF, 0xFF, 0xFF}, [3]byte{cr, cg, cb})
}

func TestYSideHitIsDarkened(t *testing.T) {
	// Facing +Y the target wall is hit crossing a horizontal grid
	// line, so every channel is halved.
	r := NewRaycaster(testW, testH, solidTexture(0xFFFFFFFF))
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 0, DirY: 1, PlaneX: -0.66, PlaneY: 0}

	grid := maze.NewGrid(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			grid.SetCell(x, y, maze.CellEmpty)
		}
	}
	for x := 0; x < 10; x++ {
		grid.SetCell(x, 5, maze.CellWall)
	}

	r.Render(&pose, grid)
	cr, cg, cb := pixelAt(r, testW/2, testH/2)
	assert.Equal(t, [3]byte{0x7F, 0x7F, 0x7F}, [3]byte{cr, cg, cb})
}

func TestExitRendersCheckerboardIgnoringTexture(t *testing.T) {
	// A red texture must not leak into the exit slice: only pure black
	// and pure white, and both occur.
	r := NewRaycaster(testW, testH, solidTexture(0xFF0000FF))
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}

	grid := hallGrid()
	grid.SetCell(5, 2, maze.CellExit)

	r.Render(&pose, grid)
	x := testW / 2
	black, white := 0, 0
	for y := 0; y < testH; y++ {
		cr, cg, cb := pixelAt(r, x, y)
		switch {
		case cr == 0 && cg == 0 && cb == 0:
			black++
		case cr == 0xFF && cg == 0xFF && cb == 0xFF:
			white++
		default:
			assert.NotEqual(t, byte(0xFF), cr, "texture red leaked into exit slice at row %d", y)
		}
	}
	assert.Positive(t, black, "checkerboard has black blocks")
	assert.Positive(t, white, "checkerboard has white blocks")
}

func TestTextureColumnMirroringOnPositiveXRay(t *testing.T) {
	// Hitting a west face with rayDirX > 0 mirrors the texture column.
	// The center ray hits the wall face at its midpoint (wallX 0.5 →
	// raw column 32) and must land in the mirrored half.
	r := NewRaycaster(testW, testH, splitTexture())
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}
	r.Render(&pose, hallGrid())

	midY := testH / 2
	cr, _, _ := pixelAt(r, testW/2, midY) // raw 32 → mirrored 31 → black half
	assert.Equal(t, byte(0), cr)

	cr, _, _ = pixelAt(r, 10, midY) // wallX 0.18 → raw 11 → mirrored 52 → white half
	assert.Equal(t, byte(0xFF), cr)
}

func TestBackgroundFill(t *testing.T) {
	// An empty view column shows only ceiling above the horizon and
	// floor below it.
	r := NewRaycaster(testW, testH, solidTexture(0xFFFFFFFF))
	pose := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}
	grid := hallGrid()
	r.Render(&pose, grid)

	cr, cg, cb := pixelAt(r, testW/2, 0)
	assert.Equal(t, [3]byte{ceilingShade, ceilingShade, ceilingShade}, [3]byte{cr, cg, cb})
	cr, cg, cb = pixelAt(r, testW/2, testH-1)
	assert.Equal(t, [3]byte{floorShade, floorShade, floorShade}, [3]byte{cr, cg, cb})
}

func TestRenderOverwritesEveryFrame(t *testing.T) {
	r := NewRaycaster(testW, testH, solidTexture(0xFFFFFFFF))
	grid := hallGrid()

	near := player.Pose{X: 3.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}
	far := player.Pose{X: 2.5, Y: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}

	r.Render(&near, grid)
	tall := sliceHeight(r, testW/2)
	r.Render(&far, grid)
	short := sliceHeight(r, testW/2)
	assert.Greater(t, tall, short, "closer wall draws a taller slice")
}
