package ebiten

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const tileMovementSpeed = 1.3

// initFloatingTiles fills the menu background with slowly drifting wall blocks
func (e *EbitenRenderer) initFloatingTiles(screenWidth, screenHeight int) {
	e.floatingTilesMutex.Lock()
	defer e.floatingTilesMutex.Unlock()

	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}

	// Dark contrasting colors for background animation
	colors := []color.Color{
		color.RGBA{40, 40, 60, 255}, // Dark blue-gray
		color.RGBA{60, 40, 40, 255}, // Dark red-gray
		color.RGBA{40, 60, 40, 255}, // Dark green-gray
		color.RGBA{50, 50, 70, 255}, // Darker blue-gray
		color.RGBA{55, 45, 55, 255}, // Dark purple-gray
		color.RGBA{35, 50, 55, 255}, // Dark teal-gray
	}

	numTiles := 30 + rand.Intn(21)
	e.floatingTiles = make([]floatingTile, numTiles)
	for i := range e.floatingTiles {
		e.floatingTiles[i] = floatingTile{
			x:     rand.Float64() * float64(screenWidth),
			y:     rand.Float64() * float64(screenHeight),
			vx:    (rand.Float64() - 0.5) * tileMovementSpeed,
			vy:    (rand.Float64() - 0.5) * tileMovementSpeed,
			size:  10 + rand.Float64()*30,
			color: colors[rand.Intn(len(colors))],
			alpha: 0.4 + rand.Float64()*0.5,
		}
	}
}

// updateFloatingTiles moves the tiles one tick, wrapping around the screen edges
func (e *EbitenRenderer) updateFloatingTiles(screenWidth, screenHeight int) {
	e.floatingTilesMutex.RLock()
	empty := len(e.floatingTiles) == 0
	e.floatingTilesMutex.RUnlock()
	if empty {
		e.initFloatingTiles(screenWidth, screenHeight)
	}

	e.floatingTilesMutex.Lock()
	defer e.floatingTilesMutex.Unlock()

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]

		tile.x += tile.vx
		tile.y += tile.vy

		if tile.x < 0 {
			tile.x += float64(screenWidth)
		} else if tile.x >= float64(screenWidth) {
			tile.x -= float64(screenWidth)
		}
		if tile.y < 0 {
			tile.y += float64(screenHeight)
		} else if tile.y >= float64(screenHeight) {
			tile.y -= float64(screenHeight)
		}

		// Occasional drift change for more organic movement
		if rand.Float64() < 0.01 {
			tile.vx = clampVelocity(tile.vx + (rand.Float64()-0.5)*0.13)
			tile.vy = clampVelocity(tile.vy + (rand.Float64()-0.5)*0.13)
		}
	}
}

func clampVelocity(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}

// drawFloatingTilesBackground draws the floating tiles behind the menu panel
func (e *EbitenRenderer) drawFloatingTilesBackground(screen *ebiten.Image) {
	e.floatingTilesMutex.RLock()
	tiles := make([]floatingTile, len(e.floatingTiles))
	copy(tiles, e.floatingTiles)
	e.floatingTilesMutex.RUnlock()

	for _, tile := range tiles {
		r, g, b, a := tile.color.RGBA()
		tileColor := color.RGBA{
			uint8(float64(r>>8) * tile.alpha),
			uint8(float64(g>>8) * tile.alpha),
			uint8(float64(b>>8) * tile.alpha),
			uint8(float64(a>>8) * tile.alpha),
		}
		half := tile.size / 2
		vector.FillRect(screen, float32(tile.x-half), float32(tile.y-half), float32(tile.size), float32(tile.size), tileColor, true)
	}
}
