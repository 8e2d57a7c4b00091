package renderer

// Renderer defines the interface for game rendering backends.
// Implementations drive a gameplay.Session: Ebiten (window) and TUI (terminal).
type Renderer interface {
	// Init prepares the backend (window, fonts, textures, raw terminal)
	Init() error

	// Run blocks until the player quits
	Run() error

	// Close releases whatever Init acquired
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
