// Package level defines the difficulty profiles and playable characters.
// A difficulty fixes the cell size, so the screen size decides how many cells fit.
package level

import (
	"image/color"
)

// Difficulty is the level picked in the main menu
type Difficulty int

const (
	Easy   Difficulty = iota + 1 // Large cells, small maze
	Medium                       // Medium cells
	Hard                         // Small cells, large maze
)

// Cell sizes in pixels per difficulty
const (
	easyCellSize   = 50
	mediumCellSize = 40
	hardCellSize   = 30
)

// Wall colours: dark gray on even difficulties, light gray on odd ones
var (
	WallDark  color.Color = color.RGBA{80, 80, 80, 255}
	WallLight color.Color = color.RGBA{200, 200, 200, 255}
)

// All returns the difficulties in menu order
func All() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// FromMenuIndex maps a main-menu row (0-based) to a difficulty.
// Returns false for rows that are not difficulties (Exit).
func FromMenuIndex(index int) (Difficulty, bool) {
	d := Difficulty(index + 1)
	return d, d.IsValid()
}

// IsValid returns true for Easy, Medium and Hard
func (d Difficulty) IsValid() bool {
	return d >= Easy && d <= Hard
}

// Key returns the translation key of the difficulty label
func (d Difficulty) Key() string {
	switch d {
	case Easy:
		return "LEVEL_EASY"
	case Medium:
		return "LEVEL_MEDIUM"
	case Hard:
		return "LEVEL_HARD"
	default:
		return "LEVEL_UNKNOWN"
	}
}

// String returns a short English name, used in logs
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// CellSize returns the pixel size of one maze cell
func (d Difficulty) CellSize() int {
	switch d {
	case Easy:
		return easyCellSize
	case Medium:
		return mediumCellSize
	default:
		return hardCellSize
	}
}

// WallColor returns the wall colour for this difficulty
func (d Difficulty) WallColor() color.Color {
	if d%2 == 0 {
		return WallDark
	}
	return WallLight
}

// Dimensions returns how many cells fit on a screen of the given pixel size.
// Both are rounded down to odd so the exit lands on a room, with a floor of 3.
func (d Difficulty) Dimensions(screenWidth, screenHeight int) (width, height int) {
	size := d.CellSize()
	return ensureOdd(screenWidth / size), ensureOdd(screenHeight / size)
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
