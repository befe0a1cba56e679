package maze

import (
	"math/rand"
	"time"
)

// Generator handles procedural generation of maze layouts.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new maze generator seeded from the clock.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible mazes.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate carves a fresh maze with the recursive backtracker and returns
// it. Carvable cells live on the odd lattice inside the border; the
// result is a perfect maze (spanning tree) rooted at (1, 1). The border
// is forced solid afterwards, and when withExit is set a single exit cell
// is placed on a random border with its inward neighbor opened.
func (g *Generator) Generate(width, height int, withExit bool) *Grid {
	grid := NewGrid(width, height)

	type point struct{ x, y int }

	// Lattice jumps: two cells in each axis direction, so carving opens
	// the intervening wall and lands on the next carvable cell.
	dirs := []point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	start := point{1, 1}
	grid.SetCell(start.x, start.y, CellEmpty)
	stack := []point{start}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]point, 0, 4)
		for _, d := range dirs {
			nx, ny := curr.x+d.x, curr.y+d.y
			if nx > 0 && nx < width-1 && ny > 0 && ny < height-1 && grid.Cell(nx, ny) == CellWall {
				candidates = append(candidates, point{nx, ny})
			}
		}

		if len(candidates) > 0 {
			next := candidates[g.rng.Intn(len(candidates))]
			grid.SetCell(curr.x+(next.x-curr.x)/2, curr.y+(next.y-curr.y)/2, CellEmpty)
			grid.SetCell(next.x, next.y, CellEmpty)
			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
		}
	}

	// Force the border solid regardless of what carving did near it.
	for y := 0; y < height; y++ {
		grid.SetCell(0, y, CellWall)
		grid.SetCell(width-1, y, CellWall)
	}
	for x := 0; x < width; x++ {
		grid.SetCell(x, 0, CellWall)
		grid.SetCell(x, height-1, CellWall)
	}

	if withExit {
		g.placeExit(grid)
	}
	return grid
}

// placeExit marks one random border cell as the exit and opens the cell
// just inside it, so the exit is always reachable from the interior.
func (g *Generator) placeExit(grid *Grid) {
	const (
		borderTop = iota
		borderBottom
		borderLeft
		borderRight
	)

	var ex, ey int
	switch g.rng.Intn(4) {
	case borderTop:
		ex, ey = 1+g.rng.Intn(grid.Width-2), 0
		grid.SetCell(ex, ey+1, CellEmpty)
	case borderBottom:
		ex, ey = 1+g.rng.Intn(grid.Width-2), grid.Height-1
		grid.SetCell(ex, ey-1, CellEmpty)
	case borderLeft:
		ex, ey = 0, 1+g.rng.Intn(grid.Height-2)
		grid.SetCell(ex+1, ey, CellEmpty)
	case borderRight:
		ex, ey = grid.Width-1, 1+g.rng.Intn(grid.Height-2)
		grid.SetCell(ex-1, ey, CellEmpty)
	}
	grid.SetCell(ex, ey, CellExit)
}
