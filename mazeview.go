package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycast-maze/config"
	"raycast-maze/maze"
)

// Pixels per maze cell in the preview.
const viewScale = 3

// MazeViewer implements ebiten.Game interface for inspecting generated
// mazes top-down (-map-view flag). R regenerates, Escape quits.
type MazeViewer struct {
	generator *maze.Generator
	withExit  bool
	grid      *maze.Grid
	pix       []byte
}

// NewMazeViewer creates a new maze viewer with a freshly generated maze.
func NewMazeViewer(generator *maze.Generator, withExit bool) *MazeViewer {
	v := &MazeViewer{
		generator: generator,
		withExit:  withExit,
		pix:       make([]byte, config.MapWidth*viewScale*config.MapHeight*viewScale*4),
	}
	v.regenerate()
	return v
}

// WindowSize returns the preview's pixel dimensions.
func (v *MazeViewer) WindowSize() (int, int) {
	return config.MapWidth * viewScale, config.MapHeight * viewScale
}

// regenerate produces a new maze and rasterizes it into the buffer.
func (v *MazeViewer) regenerate() {
	v.grid = v.generator.Generate(config.MapWidth, config.MapHeight, v.withExit)

	w, _ := v.WindowSize()
	for cy := 0; cy < v.grid.Height; cy++ {
		for cx := 0; cx < v.grid.Width; cx++ {
			var r, g, b byte
			switch v.grid.Cell(cx, cy) {
			case maze.CellWall:
				r, g, b = 40, 40, 40
			case maze.CellExit:
				r, g, b = 0, 220, 0
			default:
				r, g, b = 210, 210, 210
			}
			// Spawn cell marker.
			if cx == config.SpawnCellX && cy == config.SpawnCellY {
				r, g, b = 220, 60, 60
			}
			for py := 0; py < viewScale; py++ {
				rowStart := ((cy*viewScale+py)*w + cx*viewScale) * 4
				for px := 0; px < viewScale; px++ {
					i := rowStart + px*4
					v.pix[i+0] = r
					v.pix[i+1] = g
					v.pix[i+2] = b
					v.pix[i+3] = 0xFF
				}
			}
		}
	}
}

// Update handles the preview's input.
func (v *MazeViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.regenerate()
	}
	return nil
}

// Draw blits the rasterized maze.
func (v *MazeViewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.pix)
	ebitenutil.DebugPrint(screen, "R: new maze  Esc: quit")
}

// Layout implements ebiten.Game's Layout.
func (v *MazeViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.WindowSize()
}
