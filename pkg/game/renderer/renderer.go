package renderer

import (
	"fmt"
	"log"
	"time"

	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/locale"
	"mazerun/pkg/game/state"
)

// Music is the part of the jukebox the renderers drive
type Music interface {
	PlayMenu() error
	PlayGame() error
}

// HandleEvents switches music on round changes and reports whether the game should quit.
// Music errors are logged; the game carries on silently.
func HandleEvents(events []gameplay.Event, music Music) (quit bool) {
	for _, ev := range events {
		var err error
		switch ev.Kind {
		case gameplay.EventQuit:
			quit = true
		case gameplay.EventRoundStarted:
			if music != nil {
				err = music.PlayGame()
			}
		case gameplay.EventRoundWon, gameplay.EventRoundAbandoned:
			if music != nil {
				err = music.PlayMenu()
			}
		}
		if err != nil {
			log.Printf("Music: %v", err)
		}
	}
	return quit
}

// StatusLine returns the one-line HUD shown during a round
func StatusLine(g *state.Game, now time.Time) string {
	r := g.Round
	if r == nil {
		return ""
	}
	elapsed := r.Elapsed(now).Truncate(time.Second)
	return fmt.Sprintf("%s  |  %s  |  %s",
		locale.Get(r.Difficulty.Key()),
		locale.Get("HUD_MOVES", r.Moves),
		elapsed)
}

// LastMessage returns the newest message of the log, or ""
func LastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}
