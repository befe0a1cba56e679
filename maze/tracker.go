package maze

// Tracker records which cells the player has stood in and how many
// distinct cells that makes. It is reset together with the grid.
type Tracker struct {
	width   int
	height  int
	visited []bool
	count   int
}

// NewTracker creates a tracker for a width×height grid.
func NewTracker(width, height int) *Tracker {
	return &Tracker{
		width:   width,
		height:  height,
		visited: make([]bool, width*height),
	}
}

// Reset clears every visited flag and zeroes the counter.
func (t *Tracker) Reset() {
	for i := range t.visited {
		t.visited[i] = false
	}
	t.count = 0
}

// RecordVisit marks the cell containing the continuous position as
// visited. Revisiting a cell never double-counts.
func (t *Tracker) RecordVisit(posX, posY float64) {
	x, y := int(posX), int(posY)
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	i := y*t.width + x
	if !t.visited[i] {
		t.visited[i] = true
		t.count++
	}
}

// DistinctVisited returns the number of distinct cells visited since the
// last reset.
func (t *Tracker) DistinctVisited() int {
	return t.count
}

// ThresholdReached reports whether the distinct-visit counter has reached
// the given threshold.
func (t *Tracker) ThresholdReached(threshold int) bool {
	return t.count >= threshold
}
