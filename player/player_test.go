package player

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"raycast-maze/maze"
)

func openGrid(w, h int) *maze.Grid {
	g := maze.NewGrid(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.SetCell(x, y, maze.CellEmpty)
		}
	}
	return g
}

func TestNewPoseSpawn(t *testing.T) {
	p := NewPose(0.66)
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 1.5, p.Y)
	assert.Equal(t, 1.0, p.DirX)
	assert.Equal(t, 0.0, p.DirY)
	assert.Equal(t, 0.0, p.PlaneX)
	assert.Equal(t, 0.66, p.PlaneY)
}

func TestRotatePreservesMagnitudes(t *testing.T) {
	p := NewPose(1.0)
	p.Rotate(0.7)

	assert.InDelta(t, 1.0, math.Hypot(p.DirX, p.DirY), 1e-12, "direction stays unit length")
	assert.InDelta(t, 1.0, math.Hypot(p.PlaneX, p.PlaneY), 1e-12, "plane magnitude preserved")
	// Direction and plane stay perpendicular, so the FOV is unchanged.
	assert.InDelta(t, 0.0, p.DirX*p.PlaneX+p.DirY*p.PlaneY, 1e-12)
}

func TestRotateFullCircle(t *testing.T) {
	p := NewPose(0.66)
	steps := 8
	for i := 0; i < steps; i++ {
		p.Rotate(2 * math.Pi / float64(steps))
	}
	assert.InDelta(t, 1.0, p.DirX, 1e-9)
	assert.InDelta(t, 0.0, p.DirY, 1e-9)
}

func TestMoveForwardInOpenSpace(t *testing.T) {
	grid := openGrid(20, 20)
	p := NewPose(0.66)
	p.X, p.Y = 5.5, 5.5

	p.Move(1, 0, 0.25, grid)
	assert.InDelta(t, 5.75, p.X, 1e-12)
	assert.InDelta(t, 5.5, p.Y, 1e-12)
}

func TestMoveStrafeIsPerpendicular(t *testing.T) {
	grid := openGrid(20, 20)
	p := NewPose(0.66)
	p.X, p.Y = 5.5, 5.5

	// Facing +X, strafing right moves along +Y.
	p.Move(0, 1, 0.25, grid)
	assert.InDelta(t, 5.5, p.X, 1e-12)
	assert.InDelta(t, 5.75, p.Y, 1e-12)
}

func TestMoveBlockedByWall(t *testing.T) {
	grid := openGrid(20, 20)
	grid.SetCell(6, 5, maze.CellWall)
	p := NewPose(0.66)
	p.X, p.Y = 5.5, 5.5

	// Walk straight into the wall: the face at x=6 keeps the center a
	// hitbox radius away.
	for i := 0; i < 50; i++ {
		p.Move(1, 0, 0.1, grid)
	}
	assert.InDelta(t, 5.8, p.X, 1e-9)
	assert.InDelta(t, 5.5, p.Y, 1e-9)
}

func TestResetReturnsToSpawnKeepingPlaneScale(t *testing.T) {
	p := NewPose(1.0)
	p.X, p.Y = 7.3, 2.1
	p.Rotate(1.234)

	p.Reset()
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 1.5, p.Y)
	assert.InDelta(t, 1.0, p.DirX, 1e-12)
	assert.InDelta(t, 0.0, p.DirY, 1e-12)
	assert.InDelta(t, 1.0, math.Hypot(p.PlaneX, p.PlaneY), 1e-12)
}

func TestCellCoordinatesTruncate(t *testing.T) {
	p := NewPose(0.66)
	p.X, p.Y = 3.99, 7.01
	assert.Equal(t, 3, p.CellX())
	assert.Equal(t, 7, p.CellY())
}
