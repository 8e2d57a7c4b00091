package maze

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/generator"
)

func seeded(seed int64) Option {
	return WithGenerator(generator.NewBacktracker(seed))
}

func TestNew_RejectsInvalidDimensions(t *testing.T) {
	for _, size := range []struct{ w, h int }{{1, 5}, {5, 1}, {2, 5}, {4, 5}, {5, 6}, {0, 0}, {-3, 3}} {
		m, err := New(size.w, size.h)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", size.w, size.h)
		assert.Nil(t, m)
	}
}

func TestNew_FiveByFiveScenario(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := New(5, 5, seeded(seed))
		require.NoError(t, err)

		assert.Equal(t, world.Point{X: 3, Y: 3}, m.Exit())
		assert.True(t, m.IsExit(3, 3))
		assert.False(t, m.IsWall(3, 3))

		path := m.ShortestPath(m.Start(), m.Exit())
		require.NotNil(t, path, "seed %d: exit unreachable\n%s", seed, m)
		assert.Equal(t, m.Start(), path[0])
		assert.Equal(t, m.Exit(), path[len(path)-1])
	}
}

func TestNew_EveryRoomReachable(t *testing.T) {
	m, err := New(31, 21, seeded(11))
	require.NoError(t, err)

	for y := 1; y < m.Height(); y += 2 {
		for x := 1; x < m.Width(); x += 2 {
			assert.NotNil(t, m.ShortestPath(m.Start(), world.Point{X: x, Y: y}), "room (%d,%d) unreachable", x, y)
		}
	}
	assert.Equal(t, 15*10, m.Rooms())
}

func TestIsWall_OutOfBounds(t *testing.T) {
	m, err := New(7, 5, seeded(3))
	require.NoError(t, err)

	for _, p := range []world.Point{{X: -1, Y: 1}, {X: 1, Y: -1}, {X: 7, Y: 1}, {X: 1, Y: 5}, {X: 100, Y: 100}, {X: -7, Y: -5}} {
		assert.True(t, m.IsWall(p.X, p.Y), "(%d,%d)", p.X, p.Y)
	}
	assert.False(t, m.IsExit(-1, -1))
}

func TestExitOverride_ForcesOpenCell(t *testing.T) {
	// An untouched grid leaves the exit a wall; wrapping it must still open the exit
	grid := world.NewGrid(6, 6)
	m, err := NewFromGrid(grid)
	require.NoError(t, err)

	assert.Equal(t, world.Point{X: 4, Y: 4}, m.Exit())
	assert.False(t, m.IsWall(4, 4))
	assert.Equal(t, 1, grid.CountOpen())
}

func TestNewFromGrid_RejectsTinyGrid(t *testing.T) {
	_, err := NewFromGrid(world.NewGrid(2, 8))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewFromGrid(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestRenderData(t *testing.T) {
	m, err := New(5, 5,
		seeded(5),
		WithCellSize(30),
		WithWallColor(color.Black),
		WithExitVisual("exit_cheese"),
	)
	require.NoError(t, err)

	assert.Equal(t, 30, m.CellSize())
	assert.Equal(t, color.Black, m.WallColor())
	assert.Equal(t, "exit_cheese", m.ExitVisual())
	assert.Equal(t, image.Rect(90, 90, 120, 120), m.ExitRect())

	rects := m.WallRects()
	assert.Len(t, rects, 25-m.Grid().CountOpen())
	// Row-major: the first wall is the top-left corner
	assert.Equal(t, image.Rect(0, 0, 30, 30), rects[0])
	for _, r := range rects {
		assert.Equal(t, 30, r.Dx())
		assert.Equal(t, 30, r.Dy())
	}
}

func TestWithCellSize_IgnoresNonPositive(t *testing.T) {
	m, err := New(3, 3, WithCellSize(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultCellSize, m.CellSize())
}

func TestShortestPath_Unreachable(t *testing.T) {
	grid := world.NewGrid(7, 3)
	grid.SetWall(1, 1, false)
	m, err := NewFromGrid(grid)
	require.NoError(t, err)

	assert.Nil(t, m.ShortestPath(m.Start(), m.Exit()))
	assert.Nil(t, m.ShortestPath(world.Point{X: 0, Y: 0}, m.Exit()))
	assert.Equal(t, []world.Point{{X: 1, Y: 1}}, m.ShortestPath(m.Start(), m.Start()))
}

func TestString_MarksStartAndExit(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)
	// In a 3x3 maze the start and exit are the same cell; exit wins
	assert.Equal(t, "###\n#E#\n###\n", m.String())
}
