package ebiten

import (
	"image/color"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerun/pkg/game/level"
)

// loadTextures reads every game texture from the asset directory.
// Missing or unreadable files are logged and drawn as coloured blocks instead.
func (e *EbitenRenderer) loadTextures() {
	e.textures = make(map[string]*ebiten.Image)
	for _, path := range level.Textures() {
		full := filepath.Join(e.opts.AssetDir, path)
		img, _, err := ebitenutil.NewImageFromFile(full)
		if err != nil {
			log.Printf("Texture %s unavailable, using placeholder: %v", full, err)
			continue
		}
		e.textures[path] = img
	}
	log.Printf("Loaded %d of %d textures", len(e.textures), len(level.Textures()))
}

// drawTexture scales the texture at path into the given rectangle, or fills it with fallback
func (e *EbitenRenderer) drawTexture(screen *ebiten.Image, path string, x, y, w, h float64, fallback color.Color) {
	img, ok := e.textures[path]
	if !ok {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
