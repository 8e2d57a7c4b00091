package ebiten

import (
	"image/color"
	"time"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMazeBackground  = color.RGBA{15, 15, 26, 255}    // Darker for the maze floor
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Placeholder when a sprite is missing
	colorExit            = color.RGBA{100, 255, 100, 255} // Placeholder exit, pulses
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorHighlight       = color.RGBA{100, 60, 160, 255}  // Selected menu entry
	colorPanelBackground = color.RGBA{10, 6, 16, 220}     // Menu panel
	colorHUDBackground   = color.RGBA{30, 30, 50, 200}    // Semi-transparent status bar
)

// Characters get distinct placeholder colours so they stay recognisable without textures
var characterPlaceholderColors = []color.Color{
	color.RGBA{200, 200, 210, 255}, // mouse
	color.RGBA{240, 190, 140, 255}, // man
	color.RGBA{250, 160, 60, 255},  // cat
}

const (
	defaultTitle = "Labyrinthe"

	baseFontSize     = 16.0 // UI font size at a 720px high screen
	menuItemPadding  = 10
	menuCornerRadius = 12

	menuHighlightDuration = 150 * time.Millisecond
	exitPulsePeriod       = 2 * time.Second
)
