package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/renderer"
)

// New creates the Ebiten renderer.
// The maze is sized from the logical screen, so settings.Dimensions is replaced.
func New(opts Options, settings gameplay.Settings, music renderer.Music) *EbitenRenderer {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	e := &EbitenRenderer{
		opts:         opts,
		clock:        gameplay.SystemClock{},
		music:        music,
		screenWidth:  opts.WindowWidth,
		screenHeight: opts.WindowHeight,
	}
	settings.Dimensions = func(d level.Difficulty) (int, int) {
		w, h := e.screenSize()
		return d.Dimensions(w, h)
	}
	e.session = gameplay.NewSession(settings)
	return e
}

// Init loads fonts and textures and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return fmt.Errorf("ebiten renderer: %w", err)
	}
	e.loadTextures()

	ebiten.SetWindowSize(e.opts.WindowWidth, e.opts.WindowHeight)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(e.opts.Fullscreen)
	ebiten.SetTPS(e.opts.TPS)

	if e.music != nil {
		if err := e.music.PlayMenu(); err != nil {
			log.Printf("Music: %v", err)
		}
	}
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	log.Printf("Starting game loop (%d TPS)", e.opts.TPS)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten game loop: %w", err)
	}
	return nil
}

// Close releases the textures
func (e *EbitenRenderer) Close() {
	for _, img := range e.textures {
		img.Deallocate()
	}
	e.textures = nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenMutex.Lock()
	defer e.screenMutex.Unlock()
	if outsideWidth > 0 && outsideHeight > 0 {
		e.screenWidth = outsideWidth
		e.screenHeight = outsideHeight
	}
	return e.screenWidth, e.screenHeight
}

func (e *EbitenRenderer) screenSize() (int, int) {
	e.screenMutex.RLock()
	defer e.screenMutex.RUnlock()
	return e.screenWidth, e.screenHeight
}

// Session exposes the game session, for tests and the map dump
func (e *EbitenRenderer) Session() *gameplay.Session {
	return e.session
}
