// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when stdout is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height in characters.
// Falls back to 80x24 if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Area returns the columns and rows left for drawing once reservedRows lines
// (status bars, prompts) are set aside. Never below 1x1.
func Area(reservedRows int) (cols, rows int) {
	w, h := GetSize()
	return max(w, 1), max(h-reservedRows, 1)
}
