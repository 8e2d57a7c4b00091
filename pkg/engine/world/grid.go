package world

import "strings"

// Grid represents the game map with encapsulated cell storage.
// Cells live in one contiguous buffer indexed by y*width+x; coordinates
// outside the grid are never stored and always read as walls.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, every cell a wall
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// GetCellAt returns the cell at p, or nil if out of bounds
func (g *Grid) GetCellAt(p Point) *Cell {
	return g.GetCell(p.X, p.Y)
}

// IsWall reports whether (x, y) blocks movement.
// Out-of-bounds positions are walls, so callers never need a separate bounds check.
func (g *Grid) IsWall(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return true
	}
	return cell.Wall
}

// SetWall sets the wall flag at the given position. Returns false if out of bounds.
func (g *Grid) SetWall(x, y int, wall bool) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Wall = wall
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)
	g.Reset()
}

// Reset returns every cell to its initial wall/unvisited state
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = NewCell()
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.cells[g.index(x, y)])
		}
	}
}

// CountOpen returns the number of non-wall cells
func (g *Grid) CountOpen() int {
	n := 0
	for i := range g.cells {
		if !g.cells[i].Wall {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for open cells, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)].Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
