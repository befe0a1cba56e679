// Package physics resolves the player's circular hitbox against the maze
// grid. It is not a general physics engine: the only shape pair is a
// circle against axis-aligned unit cells.
package physics

import (
	"math"

	"raycast-maze/maze"
)

// Resolve pushes a circle of the given radius out of any wall cells it
// penetrates and returns the corrected center. Exit cells are passable.
//
// Each overlapping wall cell is corrected independently, in grid-scan
// order: the closest point on the cell's unit square to the center is
// found by clamping, and if it lies inside the circle the center is
// pushed out along the separation vector by the penetration depth. A
// correction away from one wall may leave a small overlap with a
// neighbor found later in the scan; with the radius well under one cell
// this stays invisible in practice.
func Resolve(posX, posY, radius float64, grid *maze.Grid) (float64, float64) {
	startX := max(0, int(math.Floor(posX-radius)))
	endX := min(grid.Width-1, int(math.Ceil(posX+radius)))
	startY := max(0, int(math.Floor(posY-radius)))
	endY := min(grid.Height-1, int(math.Ceil(posY+radius)))

	for cy := startY; cy <= endY; cy++ {
		for cx := startX; cx <= endX; cx++ {
			if !grid.IsWall(cx, cy) {
				continue
			}
			closestX := math.Max(float64(cx), math.Min(posX, float64(cx+1)))
			closestY := math.Max(float64(cy), math.Min(posY, float64(cy+1)))
			distX := posX - closestX
			distY := posY - closestY
			distSq := distX*distX + distY*distY
			if distSq >= radius*radius {
				continue
			}
			dist := math.Sqrt(distSq)
			pen := radius - dist
			if dist == 0 {
				// Center exactly on the cell surface: the separation
				// vector is undefined, push straight up instead.
				posY -= pen
			} else {
				posX += (distX / dist) * pen
				posY += (distY / dist) * pen
			}
		}
	}
	return posX, posY
}

// UpdatePosition applies a displacement to a position and resolves the
// result against the grid. This single pass is the whole physics step;
// there is no substepping.
func UpdatePosition(posX, posY, dx, dy, radius float64, grid *maze.Grid) (float64, float64) {
	return Resolve(posX+dx, posY+dy, radius, grid)
}
