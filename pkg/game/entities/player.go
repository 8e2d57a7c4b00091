// Package entities contains the game objects that live on top of the maze grid.
package entities

import (
	"time"

	"mazerun/pkg/engine/world"
)

// DefaultMoveCooldown is the minimum time between two movement attempts
const DefaultMoveCooldown = 200 * time.Millisecond

// MoveResult is the outcome of a movement attempt
type MoveResult int

const (
	MoveSuppressed MoveResult = iota // Cooldown not elapsed, nothing changed
	MoveBlocked                      // Target is a wall, position kept
	MoveAccepted                     // Position updated
)

// String returns the result name, used in logs
func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "blocked"
	case MoveAccepted:
		return "accepted"
	default:
		return "suppressed"
	}
}

// WallChecker answers wall queries; out-of-range coordinates must report true.
type WallChecker interface {
	IsWall(x, y int) bool
}

// Player is the avatar's grid position plus the rate limiter on its moves
type Player struct {
	X, Y int

	cooldown time.Duration
	last     time.Time
	tried    bool // no attempt yet, so the cooldown counts as elapsed
}

// NewPlayer places a player on start. A non-positive cooldown disables rate limiting.
func NewPlayer(start world.Point, cooldown time.Duration) *Player {
	if cooldown < 0 {
		cooldown = 0
	}
	return &Player{
		X:        start.X,
		Y:        start.Y,
		cooldown: cooldown,
	}
}

// Position returns the current cell
func (p *Player) Position() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Cooldown returns the configured minimum interval between attempts
func (p *Player) Cooldown() time.Duration {
	return p.cooldown
}

// LastAttempt returns the time of the last non-suppressed attempt
func (p *Player) LastAttempt() (time.Time, bool) {
	return p.last, p.tried
}

// Ready reports whether an attempt at now would be evaluated
func (p *Player) Ready(now time.Time) bool {
	return !p.tried || now.Sub(p.last) >= p.cooldown
}

// Move attempts a step of (dx, dy).
// Attempts inside the cooldown are dropped without touching the timestamp.
// Otherwise the attempt is recorded, and the position changes only when the target is open.
// A wall bump therefore also restarts the cooldown.
func (p *Player) Move(dx, dy int, walls WallChecker, now time.Time) MoveResult {
	if !p.Ready(now) {
		return MoveSuppressed
	}

	nx, ny := p.X+dx, p.Y+dy
	p.last = now
	p.tried = true

	if walls.IsWall(nx, ny) {
		return MoveBlocked
	}
	p.X, p.Y = nx, ny
	return MoveAccepted
}
