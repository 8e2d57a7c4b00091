// Package gameplay provides core game logic for player movement and the round lifecycle.
package gameplay

import (
	"time"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/entities"
	"mazerun/pkg/game/state"
)

// Clock supplies the current time to the frame loop
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MoveAttempt is a movement action that was evaluated (not suppressed)
type MoveAttempt struct {
	Action engineinput.Action
	Result entities.MoveResult
}

// ApplyMoves tries every held direction, in the order up, down, left, right.
// Each is an independent attempt, so the cooldown lets at most one through per frame.
// Returns the attempts that were not suppressed.
func ApplyMoves(r *state.Round, frame engineinput.Frame, now time.Time) []MoveAttempt {
	var results []MoveAttempt
	for _, act := range engineinput.MoveActions {
		if !frame.IsHeld(act) {
			continue
		}
		dx, dy := engineinput.Delta(act)
		res := r.Player.Move(dx, dy, r.Maze, now)
		switch res {
		case entities.MoveAccepted:
			r.Moves++
		case entities.MoveBlocked:
			r.Bumps++
		default:
			continue
		}
		results = append(results, MoveAttempt{Action: act, Result: res})
	}
	return results
}
