package ebiten

import (
	"image"
	"image/color"
	"time"

	"mazerun/pkg/game/renderer"
)

// getPulsingExitColor returns the placeholder exit colour, pulsing between 50% and 100% brightness
func (e *EbitenRenderer) getPulsingExitColor(now time.Time) color.Color {
	brightness := renderer.Pulse(now, exitPulsePeriod, 0.5, 1.0)
	r, g, b, a := colorExit.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * brightness),
		uint8(float64(g>>8) * brightness),
		uint8(float64(b>>8) * brightness),
		uint8(a >> 8),
	}
}

// currentBumpOffset returns the player sprite nudge after hitting a wall
func (e *EbitenRenderer) currentBumpOffset(now time.Time, cellSize int) image.Point {
	if e.bumpStart.IsZero() {
		return image.Point{}
	}
	return renderer.BumpOffset(e.bumpAction, now.Sub(e.bumpStart), cellSize)
}

// highlightPosition returns the animated row of the menu highlight, as a fractional index
func (e *EbitenRenderer) highlightPosition(selected int, now time.Time) float64 {
	if selected != e.menuHighlightTo {
		e.menuHighlightFrom = e.menuHighlightTo
		e.menuHighlightTo = selected
		e.menuHighlightStart = now
	}
	elapsed := now.Sub(e.menuHighlightStart)
	if e.menuHighlightStart.IsZero() || elapsed >= menuHighlightDuration {
		return float64(selected)
	}
	progress := renderer.EaseInOut(float64(elapsed) / float64(menuHighlightDuration))
	from, to := float64(e.menuHighlightFrom), float64(e.menuHighlightTo)
	return from + (to-from)*progress
}
