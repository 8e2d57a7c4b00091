// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
// A cell has no identity beyond its coordinate in the owning Grid.
type Cell struct {
	// Wall is true while the cell blocks movement
	Wall bool

	// Visited is set by generators that walk the grid
	Visited bool
}

// NewCell creates a new cell in its initial state: a wall that has not been visited
func NewCell() Cell {
	return Cell{Wall: true}
}

// Open clears the wall flag
func (c *Cell) Open() {
	c.Wall = false
}

// IsOpen returns true if the cell can be walked on
func (c *Cell) IsOpen() bool {
	return c != nil && !c.Wall
}
