package generator

import (
	"mazerun/pkg/engine/world"
)

// Rand is the random source a generator draws from.
// *rand.Rand satisfies it; tests may pass a scripted source.
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int
}

// GridGenerator is an interface for maze carving algorithms
type GridGenerator interface {
	// Carve opens passages in grid starting from start. The grid is expected
	// to be freshly built (all walls, nothing visited).
	Carve(grid *world.Grid, start world.Point)
	Name() string
}

// DefaultStart is the conventional entry cell of a maze
var DefaultStart = world.Point{X: 1, Y: 1}

// DefaultGenerator is the default maze generator, seeded from the clock
var DefaultGenerator GridGenerator = NewBacktracker(0)
