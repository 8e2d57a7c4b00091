// Package maze wraps a carved grid with the queries gameplay and rendering need:
// wall and exit lookups, pixel-space rectangles, and path finding.
package maze

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/generator"
)

// ErrInvalidDimensions is returned when a maze cannot place rooms on its edges
var ErrInvalidDimensions = errors.New("maze dimensions must be odd and at least 3")

const (
	// DefaultCellSize is the pixel size of a cell when no option overrides it
	DefaultCellSize = 40
	minDimension    = 3
)

// DefaultWallColor matches the light gray used for easy and hard mazes
var DefaultWallColor color.Color = color.RGBA{200, 200, 200, 255}

// Maze owns a carved grid, its exit, and the metadata a renderer needs to draw it
type Maze struct {
	grid *world.Grid
	exit world.Point

	cellSize   int
	wallColor  color.Color
	exitVisual string

	gen generator.GridGenerator
}

// Option configures a Maze at construction time
type Option func(*Maze)

// WithGenerator selects the carving algorithm (defaults to generator.DefaultGenerator)
func WithGenerator(gen generator.GridGenerator) Option {
	return func(m *Maze) { m.gen = gen }
}

// WithCellSize sets the pixel size of a cell
func WithCellSize(size int) Option {
	return func(m *Maze) {
		if size > 0 {
			m.cellSize = size
		}
	}
}

// WithWallColor sets the wall colour
func WithWallColor(c color.Color) Option {
	return func(m *Maze) { m.wallColor = c }
}

// WithExitVisual sets the asset key drawn on the exit cell
func WithExitVisual(key string) Option {
	return func(m *Maze) { m.exitVisual = key }
}

// New builds a width x height grid, carves it from the start cell and opens the exit.
// Both dimensions must be odd so the exit at (width-2, height-2) lands on a room.
func New(width, height int, opts ...Option) (*Maze, error) {
	if width < minDimension || height < minDimension || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	m := newMaze(opts)
	m.grid = world.NewGrid(width, height)
	m.gen.Carve(m.grid, generator.DefaultStart)
	m.placeExit()
	return m, nil
}

// NewFromGrid wraps an already carved grid. The exit is still forced open.
// Even dimensions are accepted here; the exit may then sit on a corridor cell.
func NewFromGrid(grid *world.Grid, opts ...Option) (*Maze, error) {
	if grid == nil || grid.Width() < minDimension || grid.Height() < minDimension {
		return nil, ErrInvalidDimensions
	}
	m := newMaze(opts)
	m.grid = grid
	m.placeExit()
	return m, nil
}

func newMaze(opts []Option) *Maze {
	m := &Maze{
		cellSize:  DefaultCellSize,
		wallColor: DefaultWallColor,
		gen:       generator.DefaultGenerator,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// placeExit fixes the exit near the bottom-right corner and makes sure it is walkable
func (m *Maze) placeExit() {
	m.exit = world.Point{X: m.grid.Width() - 2, Y: m.grid.Height() - 2}
	m.grid.SetWall(m.exit.X, m.exit.Y, false)
}

// Width returns the number of columns
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the number of rows
func (m *Maze) Height() int { return m.grid.Height() }

// Grid exposes the underlying grid for read-only use (rendering, dumps)
func (m *Maze) Grid() *world.Grid { return m.grid }

// Start returns the entry cell
func (m *Maze) Start() world.Point { return generator.DefaultStart }

// Exit returns the exit cell
func (m *Maze) Exit() world.Point { return m.exit }

// IsWall reports whether (x, y) blocks movement; anything outside the maze does
func (m *Maze) IsWall(x, y int) bool {
	return m.grid.IsWall(x, y)
}

// IsExit reports whether (x, y) is the exit cell
func (m *Maze) IsExit(x, y int) bool {
	return x == m.exit.X && y == m.exit.Y
}

// CellSize returns the pixel size of one cell
func (m *Maze) CellSize() int { return m.cellSize }

// WallColor returns the colour walls are drawn with
func (m *Maze) WallColor() color.Color { return m.wallColor }

// ExitVisual returns the asset key for the exit
func (m *Maze) ExitVisual() string { return m.exitVisual }

// CellRect returns the pixel-space rectangle covered by cell p
func (m *Maze) CellRect(p world.Point) image.Rectangle {
	x0, y0 := p.X*m.cellSize, p.Y*m.cellSize
	return image.Rect(x0, y0, x0+m.cellSize, y0+m.cellSize)
}

// ExitRect returns the pixel-space rectangle of the exit cell
func (m *Maze) ExitRect() image.Rectangle {
	return m.CellRect(m.exit)
}

// ForEachWall calls fn for every wall cell, row by row, with its pixel rectangle
func (m *Maze) ForEachWall(fn func(x, y int, rect image.Rectangle)) {
	m.grid.ForEachCell(func(x, y int, cell *world.Cell) {
		if cell.Wall {
			fn(x, y, m.CellRect(world.Point{X: x, Y: y}))
		}
	})
}

// WallRects returns the pixel rectangles of every wall cell in row-major order
func (m *Maze) WallRects() []image.Rectangle {
	var rects []image.Rectangle
	m.ForEachWall(func(x, y int, rect image.Rectangle) {
		rects = append(rects, rect)
	})
	return rects
}

// Rooms returns the number of open cells at odd/odd coordinates
func (m *Maze) Rooms() int {
	n := 0
	m.grid.ForEachCell(func(x, y int, cell *world.Cell) {
		if x%2 == 1 && y%2 == 1 && !cell.Wall {
			n++
		}
	})
	return n
}

// ShortestPath returns the cells from 'from' to 'to' inclusive, walking only open
// cells, or nil if there is no such path
func (m *Maze) ShortestPath(from, to world.Point) []world.Point {
	if m.IsWall(from.X, from.Y) || m.IsWall(to.X, to.Y) {
		return nil
	}

	visited := mapset.New[world.Point]()
	parent := make(map[world.Point]world.Point)
	queue := []world.Point{from}
	visited.Put(from)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return buildPath(parent, from, to)
		}

		for _, dir := range world.AllDirections() {
			next := current.Step(dir, 1)
			if visited.Has(next) || m.IsWall(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			queue = append(queue, next)
		}
	}

	return nil
}

func buildPath(parent map[world.Point]world.Point, from, to world.Point) []world.Point {
	var path []world.Point
	for p := to; p != from; p = parent[p] {
		path = append(path, p)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// String renders the maze: '#' wall, '.' open, 'S' start, 'E' exit
func (m *Maze) String() string {
	var sb strings.Builder
	start := m.Start()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			switch {
			case m.IsExit(x, y):
				sb.WriteByte('E')
			case x == start.X && y == start.Y:
				sb.WriteByte('S')
			case m.IsWall(x, y):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
