package ebiten

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerun/pkg/game/level"
	"mazerun/pkg/game/renderer"
	"mazerun/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	now := e.clock.Now()
	g := e.session.Game

	if g.Screen != e.menuLastScreen {
		e.menuLastScreen = g.Screen
		e.menuHighlightStart = time.Time{}
		e.menuHighlightFrom, e.menuHighlightTo = 0, 0
	}

	switch g.Screen {
	case state.ScreenPlaying:
		e.drawRound(screen, g.Round, now)
		e.drawHUD(screen, g, now)
	case state.ScreenCharacterSelect:
		e.drawMenuBackground(screen)
		e.drawMenu(screen, g.CharacterMenu, now)
		e.drawMessage(screen, g)
	default:
		e.drawMenuBackground(screen)
		e.drawMenu(screen, g.MainMenu, now)
		e.drawMessage(screen, g)
	}
}

// drawMenuBackground draws the background picture under the floating tiles
func (e *EbitenRenderer) drawMenuBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if _, ok := e.textures[level.AssetBackground]; ok {
		e.drawTexture(screen, level.AssetBackground, 0, 0, float64(w), float64(h), colorBackground)
	}
	e.drawFloatingTilesBackground(screen)
}

// drawRound draws the walls, the exit picture and the player
func (e *EbitenRenderer) drawRound(screen *ebiten.Image, r *state.Round, now time.Time) {
	screen.Fill(colorMazeBackground)
	if r == nil {
		return
	}

	m := r.Maze
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	off := renderer.CenterOffset(m, w, h)
	wallColor := m.WallColor()

	m.ForEachWall(func(_, _ int, rect image.Rectangle) {
		rect = rect.Add(off)
		vector.FillRect(screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()),
			wallColor, false)
	})

	exit := m.ExitRect().Add(off)
	e.drawTexture(screen, m.ExitVisual(),
		float64(exit.Min.X), float64(exit.Min.Y), float64(exit.Dx()), float64(exit.Dy()),
		e.getPulsingExitColor(now))

	cell := m.CellRect(r.Player.Position()).Add(off).Add(e.currentBumpOffset(now, m.CellSize()))
	e.drawTexture(screen, r.Character.Sprite,
		float64(cell.Min.X), float64(cell.Min.Y), float64(cell.Dx()), float64(cell.Dy()),
		colorPlayer)
}

// drawHUD draws the status bar at the top of the round screen
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game, now time.Time) {
	face := e.getSansFontFace()
	barHeight := textHeight(face) + 12
	w := screen.Bounds().Dx()

	vector.FillRect(screen, 0, 0, float32(w), float32(barHeight), colorHUDBackground, false)
	drawText(screen, renderer.StatusLine(g, now), 12, 6, colorText, face)

	if msg := renderer.LastMessage(g); msg != "" {
		drawCenteredText(screen, msg, float64(w)/2, barHeight+8, colorSubtle, face)
	}
}

// drawMessage shows the last message (round result, errors) under the menu
func (e *EbitenRenderer) drawMessage(screen *ebiten.Image, g *state.Game) {
	msg := renderer.LastMessage(g)
	if msg == "" {
		return
	}
	face := e.getSansBoldFontFace()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawCenteredText(screen, msg, float64(w)/2, float64(h)-textHeight(face)-24, colorAction, face)
}
