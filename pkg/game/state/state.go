package state

import (
	"time"

	"github.com/google/uuid"

	"mazerun/pkg/game/entities"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/maze"
	"mazerun/pkg/game/menu"
)

// Screen is the part of the game currently shown
type Screen int

// Screens
const (
	ScreenMainMenu Screen = iota
	ScreenCharacterSelect
	ScreenPlaying
)

// String returns the screen name, used in logs
func (s Screen) String() string {
	switch s {
	case ScreenCharacterSelect:
		return "character-select"
	case ScreenPlaying:
		return "playing"
	default:
		return "main-menu"
	}
}

// Round is one maze, from character selection until the exit is reached or abandoned
type Round struct {
	ID         uuid.UUID
	Difficulty level.Difficulty
	Character  level.Character
	Maze       *maze.Maze
	Player     *entities.Player
	StartedAt  time.Time

	Moves int // Accepted steps
	Bumps int // Attempts stopped by a wall
}

// NewRound places a player on the maze start
func NewRound(d level.Difficulty, c level.Character, m *maze.Maze, cooldown time.Duration, now time.Time) *Round {
	return &Round{
		ID:         uuid.New(),
		Difficulty: d,
		Character:  c,
		Maze:       m,
		Player:     entities.NewPlayer(m.Start(), cooldown),
		StartedAt:  now,
	}
}

// Won returns true once the player stands on the exit
func (r *Round) Won() bool {
	return r.Maze.IsExit(r.Player.X, r.Player.Y)
}

// Elapsed returns the time spent in the round
func (r *Round) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartedAt)
}

// Game represents the game state for the maze runner
type Game struct {
	Screen Screen

	MainMenu      *menu.Menu
	CharacterMenu *menu.Menu

	Difficulty level.Difficulty // Set when a level is picked
	Round      *Round           // nil outside ScreenPlaying

	RoundsWon int
	Messages  []string
}

// NewGame creates a new game instance on the main menu
func NewGame() *Game {
	return &Game{
		Screen:        ScreenMainMenu,
		MainMenu:      menu.NewMainMenu(),
		CharacterMenu: menu.NewCharacterMenu(),
		Messages:      make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// ShowMainMenu drops any round and returns to the level menu
func (g *Game) ShowMainMenu() {
	g.Screen = ScreenMainMenu
	g.Round = nil
}

// ShowCharacterMenu records the picked level and opens the character menu
func (g *Game) ShowCharacterMenu(d level.Difficulty) {
	g.Difficulty = d
	g.CharacterMenu.Reset()
	g.Screen = ScreenCharacterSelect
}

// StartRound switches to the playing screen
func (g *Game) StartRound(r *Round) {
	g.Round = r
	g.Screen = ScreenPlaying
}
