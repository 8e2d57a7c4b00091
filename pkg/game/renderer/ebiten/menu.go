package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerun/pkg/game/level"
	gamemenu "mazerun/pkg/game/menu"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// fillRoundedRect fills a rounded rectangle with a solid colour
func fillRoundedRect(screen *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	var path vector.Path
	appendRoundedRect(&path, x, y, w, h, r)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, drawOpts)
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color) {
	const shadowSpread = 8
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := max(uint8((bor>>8)*15/255), 8)
	shadowG := max(uint8((bog>>8)*15/255), 8)
	shadowB := max(uint8((bob>>8)*15/255), 8)

	// Ring only, outermost first, so the shadow never overlaps the panel
	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := min(uint8(12+i*8), 55)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	fillRoundedRect(screen, x, y, w, h, cornerRadius, bgColor)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenu draws a menu panel centred on the screen, with an animated highlight on the selected row.
// Character menus show each character's sprite next to its name.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, m *gamemenu.Menu, now time.Time) {
	items := m.Items()
	if len(items) == 0 {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	face := e.getSansFontFace()
	titleFace := e.getTitleFontFace()
	lineHeight := textHeight(face) + 2*menuItemPadding
	titleHeight := textHeight(titleFace)

	const paddingX, paddingY = 24.0, 24.0
	panelW := float64(screenWidth) * 0.5
	panelH := paddingY*2 + titleHeight + 16 + lineHeight*float64(len(items)) + 8 + textHeight(face)
	panelX := (float64(screenWidth) - panelW) / 2
	panelY := (float64(screenHeight) - panelH) / 2

	drawRoundedRectWithShadow(screen,
		float32(panelX), float32(panelY), float32(panelW), float32(panelH),
		menuCornerRadius, 2, colorPanelBackground, colorAction)

	cx := panelX + panelW/2
	y := panelY + paddingY
	drawCenteredText(screen, m.Title(), cx, y, colorAction, titleFace)
	y += titleHeight + 16

	// Highlight pill slides between rows
	pos := e.highlightPosition(m.Index(), now)
	hlY := y + pos*lineHeight
	fillRoundedRect(screen,
		float32(panelX+paddingX), float32(hlY),
		float32(panelW-2*paddingX), float32(lineHeight),
		float32(lineHeight/2), colorHighlight)

	for i, item := range items {
		col := colorText
		if !item.IsSelectable() {
			col = colorSubtle
		}
		rowY := y + float64(i)*lineHeight
		if ch, ok := item.(*gamemenu.CharacterMenuItem); ok {
			e.drawCharacterPreview(screen, ch.Character, i, panelX+paddingX+menuItemPadding, rowY+2, lineHeight-4)
		}
		drawCenteredText(screen, item.GetLabel(), cx, rowY+menuItemPadding, col, face)
	}
	y += lineHeight*float64(len(items)) + 8

	drawCenteredText(screen, m.Instructions(), cx, y, colorSubtle, face)
}

// drawCharacterPreview draws a character sprite in a menu row
func (e *EbitenRenderer) drawCharacterPreview(screen *ebiten.Image, c level.Character, index int, x, y, size float64) {
	fallback := characterPlaceholderColors[index%len(characterPlaceholderColors)]
	e.drawTexture(screen, c.Sprite, x, y, size, size, fallback)
}
