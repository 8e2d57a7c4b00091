package renderer

import (
	"image"
	"math"
	"time"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/maze"
)

// BumpDuration is how long the player sprite nudges towards a wall it hit
const BumpDuration = 150 * time.Millisecond

// CenterOffset returns the translation that centres the maze on a screen.
// Mazes larger than the screen are pinned to the top-left corner.
func CenterOffset(m *maze.Maze, screenWidth, screenHeight int) image.Point {
	w := m.Width() * m.CellSize()
	h := m.Height() * m.CellSize()
	return image.Point{X: max(0, (screenWidth-w)/2), Y: max(0, (screenHeight-h)/2)}
}

// BumpOffset returns the pixel nudge for a wall bump elapsed ago.
// The sprite moves up to a fifth of a cell towards the wall and back.
func BumpOffset(a engineinput.Action, elapsed time.Duration, cellSize int) image.Point {
	if elapsed < 0 || elapsed >= BumpDuration {
		return image.Point{}
	}
	dx, dy := engineinput.Delta(a)
	progress := float64(elapsed) / float64(BumpDuration)
	amount := math.Sin(progress*math.Pi) * float64(cellSize) / 5
	return image.Point{X: int(math.Round(float64(dx) * amount)), Y: int(math.Round(float64(dy) * amount))}
}

// Pulse returns a value oscillating between lo and hi with the given period
func Pulse(now time.Time, period time.Duration, lo, hi float64) float64 {
	if period <= 0 {
		return hi
	}
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	v := (math.Sin(phase*2*math.Pi) + 1) / 2
	return lo + (hi-lo)*v
}

// EaseInOut is a cubic ease for menu animations, t in [0, 1]
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
