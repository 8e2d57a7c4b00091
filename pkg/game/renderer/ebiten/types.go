// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze game.
package ebiten

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/renderer"
	"mazerun/pkg/game/state"
)

// Options configure the window
type Options struct {
	Title        string
	AssetDir     string // Directory holding img/
	Fullscreen   bool
	WindowWidth  int
	WindowHeight int
	TPS          int
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	opts Options

	session *gameplay.Session
	clock   gameplay.Clock
	music   renderer.Music

	// Logical screen size, set by Layout
	screenWidth  int
	screenHeight int
	screenMutex  sync.RWMutex

	// Textures by asset path; missing files are drawn as coloured blocks
	textures map[string]*ebiten.Image

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for menu titles

	// Cached font faces (recreated when the screen size changes)
	cachedUIFontSize    float64
	cachedSansFace      *text.GoTextFace
	cachedSansBoldFace  *text.GoTextFace
	cachedTitleFontSize float64
	cachedTitleFace     *text.GoTextFace

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Menu highlight animation state
	menuHighlightFrom  int
	menuHighlightTo    int
	menuHighlightStart time.Time
	menuLastScreen     state.Screen

	// Bump animation state (for movement into a wall)
	bumpAction engineinput.Action
	bumpStart  time.Time

	// Background animation for the menus (floating wall blocks)
	floatingTiles      []floatingTile
	floatingTilesMutex sync.RWMutex
}

// floatingTile represents a single block in the background animation
type floatingTile struct {
	x, y   float64 // Position
	vx, vy float64 // Velocity
	size   float64
	color  color.Color
	alpha  float64 // Opacity (0.0 to 1.0)
}
