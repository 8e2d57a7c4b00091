package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/renderer"
)

// keyCodes maps Ebiten keys to the binding codes of the input package
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyQ:           "q",
	ebiten.KeyF9:          "f9",
	ebiten.KeyF10:         "f10",
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	now := e.clock.Now()

	if e.session.Game.Round == nil {
		w, h := e.screenSize()
		e.updateFloatingTiles(w, h)
	}

	events := e.session.Update(e.readFrame(), now)
	for _, ev := range events {
		if ev.Kind == gameplay.EventBump {
			e.bumpAction = ev.Action
			e.bumpStart = now
		}
	}
	if renderer.HandleEvents(events, e.music) {
		return ebiten.Termination
	}
	return nil
}

// readFrame collects the keys pressed and held during this tick
func (e *EbitenRenderer) readFrame() engineinput.Frame {
	frame := engineinput.NewFrame()
	for key, code := range keyCodes {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		}))
		switch {
		case inpututil.IsKeyJustPressed(key):
			frame = frame.Press(intent.Action)
		case ebiten.IsKeyPressed(key):
			frame = frame.Hold(intent.Action)
		}
	}
	return frame
}
