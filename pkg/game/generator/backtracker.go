package generator

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"

	"mazerun/pkg/engine/world"
)

// carveOrder is the unshuffled direction order: up, down, left, right
var carveOrder = [4]world.Direction{world.North, world.South, world.West, world.East}

// BacktrackerGenerator carves a perfect maze with randomized depth-first search.
// Rooms sit two cells apart; the cell between two rooms is opened when the
// search steps from one to the other.
type BacktrackerGenerator struct {
	Rand Rand
}

// NewBacktracker creates a backtracker with its own seeded source.
// A zero seed picks one from the clock.
func NewBacktracker(seed int64) *BacktrackerGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &BacktrackerGenerator{Rand: rand.New(rand.NewSource(seed))}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// frame is one level of the depth-first search: a room and the directions
// still to try from it
type frame struct {
	at   world.Point
	dirs [4]world.Direction
	next int
}

// enter marks a room visited and open, and shuffles its directions.
// Shuffling on entry keeps the random draws in the same order as a
// recursive implementation would make them.
func (g *BacktrackerGenerator) enter(grid *world.Grid, at world.Point) *frame {
	cell := grid.GetCellAt(at)
	cell.Visited = true
	cell.Open()

	f := &frame{at: at, dirs: carveOrder}
	g.shuffle(&f.dirs)
	return f
}

// shuffle is Fisher-Yates: index i swaps with a uniform j in [i, 3]
func (g *BacktrackerGenerator) shuffle(dirs *[4]world.Direction) {
	for i := 0; i < len(dirs); i++ {
		j := i + g.Rand.Intn(len(dirs)-i)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// Carve runs the search from start until every reachable room is visited.
// A start outside the grid carves nothing.
func (g *BacktrackerGenerator) Carve(grid *world.Grid, start world.Point) {
	if grid == nil || !grid.IsValidPosition(start.X, start.Y) {
		return
	}

	pending := stack.New[*frame]()
	pending.Push(g.enter(grid, start))

	for pending.Size() > 0 {
		top := pending.Peek()
		if top.next >= len(top.dirs) {
			pending.Pop()
			continue
		}

		dir := top.dirs[top.next]
		top.next++

		neighbor := top.at.Step(dir, 2)
		cell := grid.GetCellAt(neighbor)
		if cell == nil || cell.Visited {
			continue
		}

		// Remove the wall between the two rooms
		grid.GetCellAt(top.at.Step(dir, 1)).Open()
		pending.Push(g.enter(grid, neighbor))
	}
}
