package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText draws already-translated text with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws text horizontally centred on cx
func drawCenteredText(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(str, face, 0)
	drawText(screen, str, cx-w/2, y, col, face)
}

// textHeight returns the line height of a face
func textHeight(face *text.GoTextFace) float64 {
	_, h := text.Measure("Ag", face, 0)
	return h
}
