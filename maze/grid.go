package maze

// CellKind identifies what occupies a single grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellExit
)

// Grid is the game map: a fixed-size 2D field of cells. It is replaced
// wholesale on regeneration and only read during a frame.
type Grid struct {
	Width  int
	Height int
	cells  []CellKind
}

// NewGrid creates a grid with every cell set to CellWall.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellKind, width*height),
	}
	for i := range g.cells {
		g.cells[i] = CellWall
	}
	return g
}

// Cell returns the cell at (x, y). Out-of-bounds reads come back as
// CellWall so the renderer and the collision resolver can never walk off
// the map.
func (g *Grid) Cell(x, y int) CellKind {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return CellWall
	}
	return g.cells[y*g.Width+x]
}

// SetCell writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(x, y int, kind CellKind) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y*g.Width+x] = kind
}

// IsWall reports whether (x, y) blocks movement. Exit cells are passable;
// the win check fires when the player stands on one.
func (g *Grid) IsWall(x, y int) bool {
	return g.Cell(x, y) == CellWall
}

// IsSolid reports whether a ray stops in (x, y). Both walls and the exit
// decoration stop rays; only empty cells are see-through.
func (g *Grid) IsSolid(x, y int) bool {
	return g.Cell(x, y) != CellEmpty
}
