// Package tui renders the maze in a terminal, one character per cell.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"mazerun/pkg/engine/input"
	"mazerun/pkg/engine/terminal"
	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/level"
	gamemenu "mazerun/pkg/game/menu"
	"mazerun/pkg/game/renderer"
	"mazerun/pkg/game/state"
)

// Icons
const (
	PlayerIcon = "@"
	IconWall   = "▒"
	IconFloor  = " "
	IconExit   = "△"
	IconCursor = "> "
)

// ErrNotTerminal is returned by Init when stdin is redirected
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Lines drawn around the maze: status bar and last message, with their spacing
const reservedRows = 5

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall     color.Style
	colorPlayer   color.Style
	colorExit     color.Style
	colorAction   color.Style
	colorSelected color.Style
	colorSubtle   color.Style

	out     io.Writer
	session *gameplay.Session
	clock   gameplay.Clock
	music   renderer.Music
	readKey func() (input.RawInput, error)
}

// New creates a new TUI renderer.
// The maze is sized from the terminal, so settings.Dimensions is replaced.
func New(settings gameplay.Settings, music renderer.Music) *TUIRenderer {
	settings.Dimensions = func(level.Difficulty) (int, int) {
		return GridSize(terminal.Area(reservedRows))
	}
	return &TUIRenderer{
		out:     os.Stdout,
		session: gameplay.NewSession(settings),
		clock:   gameplay.SystemClock{},
		music:   music,
		readKey: input.ReadKey,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	if !input.IsTerminal() {
		return fmt.Errorf("tui renderer: %w", ErrNotTerminal)
	}
	t.initStyles()
	if t.music != nil {
		if err := t.music.PlayMenu(); err != nil {
			log.Printf("Music: %v", err)
		}
	}
	return nil
}

func (t *TUIRenderer) initStyles() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorSelected = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Run draws a frame, waits for a key and feeds it to the session until the player quits
func (t *TUIRenderer) Run() error {
	for {
		t.Clear()
		fmt.Fprint(t.out, t.Frame())

		raw, err := t.readKey()
		if err != nil {
			return fmt.Errorf("tui renderer: %w", err)
		}
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionNone {
			continue
		}

		events := t.session.Update(input.FrameFromIntent(intent), t.clock.Now())
		if renderer.HandleEvents(events, t.music) {
			t.Clear()
			return nil
		}
	}
}

// Close is a no-op; the terminal is restored after every key
func (t *TUIRenderer) Close() {}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// Frame returns the text of the current screen
func (t *TUIRenderer) Frame() string {
	g := t.session.Game
	switch g.Screen {
	case state.ScreenPlaying:
		return t.renderRound(g)
	case state.ScreenCharacterSelect:
		return t.renderMenu(g.CharacterMenu, renderer.LastMessage(g))
	default:
		return t.renderMenu(g.MainMenu, renderer.LastMessage(g))
	}
}

// renderMenu lists the menu entries with a cursor on the selected one
func (t *TUIRenderer) renderMenu(m *gamemenu.Menu, message string) string {
	var b strings.Builder
	b.WriteString(t.colorAction.Sprint(m.Title()))
	b.WriteString("\n\n")
	for i, item := range m.Items() {
		if i == m.Index() {
			b.WriteString(t.colorSelected.Sprint(IconCursor + item.GetLabel()))
		} else {
			b.WriteString(strings.Repeat(" ", len(IconCursor)) + item.GetLabel())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(m.Instructions()))
	b.WriteString("\n")
	if message != "" {
		b.WriteString("\n" + message + "\n")
	}
	return b.String()
}

// renderRound draws the status bar, the maze and the last message
func (t *TUIRenderer) renderRound(g *state.Game) string {
	r := g.Round
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.colorAction.Sprint(renderer.StatusLine(g, t.clock.Now())))
	b.WriteString("\n\n")

	m := r.Maze
	px, py := r.Player.Position().X, r.Player.Position().Y
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			switch {
			case x == px && y == py:
				b.WriteString(t.colorPlayer.Sprint(PlayerIcon))
			case m.IsExit(x, y):
				b.WriteString(t.colorExit.Sprint(IconExit))
			case m.IsWall(x, y):
				b.WriteString(t.colorWall.Sprint(IconWall))
			default:
				b.WriteString(IconFloor)
			}
		}
		b.WriteString("\n")
	}
	if msg := renderer.LastMessage(g); msg != "" {
		b.WriteString("\n" + msg + "\n")
	}
	return b.String()
}

// GridSize returns the maze size that fits the given drawing area, odd in both directions
func GridSize(cols, rows int) (width, height int) {
	return ensureOdd(cols), ensureOdd(rows)
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
