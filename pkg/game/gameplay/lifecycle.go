package gameplay

import (
	"fmt"
	"log"
	"time"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/devtools"
	"mazerun/pkg/game/entities"
	"mazerun/pkg/game/generator"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/locale"
	"mazerun/pkg/game/maze"
	"mazerun/pkg/game/menu"
	"mazerun/pkg/game/state"
)

// EventKind identifies what happened during an Update
type EventKind int

const (
	EventQuit EventKind = iota
	EventRoundStarted
	EventRoundWon
	EventRoundAbandoned
	EventBump
	EventMapDumped
	EventScreenshotSaved
	EventError
)

// String returns the event name, used in logs
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventRoundStarted:
		return "round-started"
	case EventRoundWon:
		return "round-won"
	case EventRoundAbandoned:
		return "round-abandoned"
	case EventBump:
		return "bump"
	case EventMapDumped:
		return "map-dumped"
	case EventScreenshotSaved:
		return "screenshot-saved"
	default:
		return "error"
	}
}

// Event is reported to the renderer so it can react (music, window close)
type Event struct {
	Kind   EventKind
	Round  *state.Round
	Path   string             // EventMapDumped, EventScreenshotSaved
	Err    error              // EventError
	Action engineinput.Action // EventBump: the direction that hit the wall
}

// Settings configure how rounds are built
type Settings struct {
	ScreenWidth   int // Pixels available for the maze
	ScreenHeight  int
	Cooldown      time.Duration // Movement cooldown; 0 disables rate limiting
	Seed          int64         // 0 for a fresh time seed every round
	DumpPath      string        // Where F9 writes the map; "" for map.txt
	ScreenshotDir string        // Where F10 writes HTML screenshots; "" for the working directory

	// Dimensions overrides the pixel-based grid size (the terminal renderer counts characters)
	Dimensions func(d level.Difficulty) (width, height int)
}

// Session drives the menus and rounds one frame at a time
type Session struct {
	Game     *state.Game
	settings Settings
	rounds   int64
}

// NewSession starts on the main menu
func NewSession(settings Settings) *Session {
	return &Session{
		Game:     state.NewGame(),
		settings: settings,
	}
}

// Settings returns the session settings
func (s *Session) Settings() Settings {
	return s.settings
}

// Update advances the game by one frame
func (s *Session) Update(frame engineinput.Frame, now time.Time) []Event {
	if frame.WasPressed(engineinput.ActionQuit) {
		return []Event{{Kind: EventQuit, Round: s.Game.Round}}
	}

	switch s.Game.Screen {
	case state.ScreenMainMenu:
		return s.updateMainMenu(frame)
	case state.ScreenCharacterSelect:
		return s.updateCharacterMenu(frame, now)
	case state.ScreenPlaying:
		return s.updatePlaying(frame, now)
	}
	return nil
}

func (s *Session) updateMainMenu(frame engineinput.Frame) []Event {
	if frame.WasPressed(engineinput.ActionBack) {
		return []Event{{Kind: EventQuit}}
	}

	item := navigate(s.Game.MainMenu, frame)
	main, ok := item.(*menu.MainMenuItem)
	if !ok {
		return nil
	}
	if main.Action == menu.MainMenuActionQuit {
		return []Event{{Kind: EventQuit}}
	}
	s.Game.ShowCharacterMenu(main.Difficulty)
	return nil
}

func (s *Session) updateCharacterMenu(frame engineinput.Frame, now time.Time) []Event {
	if frame.WasPressed(engineinput.ActionBack) {
		s.Game.ShowMainMenu()
		return nil
	}

	item := navigate(s.Game.CharacterMenu, frame)
	choice, ok := item.(*menu.CharacterMenuItem)
	if !ok {
		return nil
	}

	r, err := s.NewRound(s.Game.Difficulty, choice.Character, now)
	if err != nil {
		log.Printf("Cannot build maze: %v", err)
		s.Game.AddMessage(locale.Get("ROUND_FAILED"))
		s.Game.ShowMainMenu()
		return []Event{{Kind: EventError, Err: err}}
	}

	s.Game.StartRound(r)
	s.Game.ClearMessages()
	s.Game.AddMessage(locale.Get("ROUND_STARTED", locale.Get(r.Difficulty.Key())))
	log.Printf("Round %s started: %s, %s, %dx%d", r.ID, r.Difficulty, r.Character.Key, r.Maze.Width(), r.Maze.Height())
	return []Event{{Kind: EventRoundStarted, Round: r}}
}

func (s *Session) updatePlaying(frame engineinput.Frame, now time.Time) []Event {
	r := s.Game.Round
	if r == nil {
		s.Game.ShowMainMenu()
		return nil
	}

	if frame.WasPressed(engineinput.ActionBack) {
		log.Printf("Round %s abandoned after %d moves", r.ID, r.Moves)
		s.Game.ShowMainMenu()
		s.Game.AddMessage(locale.Get("ROUND_ABANDONED"))
		return []Event{{Kind: EventRoundAbandoned, Round: r}}
	}

	var events []Event
	if frame.WasPressed(engineinput.ActionDumpMap) {
		events = append(events, s.dumpMap(r))
	}
	if frame.WasPressed(engineinput.ActionScreenshot) {
		events = append(events, s.saveScreenshot(r, now))
	}

	for _, attempt := range ApplyMoves(r, frame, now) {
		if attempt.Result == entities.MoveBlocked {
			events = append(events, Event{Kind: EventBump, Round: r, Action: attempt.Action})
		}
	}

	if r.Won() {
		elapsed := r.Elapsed(now).Round(100 * time.Millisecond)
		log.Printf("Round %s won in %s (%d moves, %d bumps)", r.ID, elapsed, r.Moves, r.Bumps)
		s.Game.RoundsWon++
		s.Game.ShowMainMenu()
		s.Game.AddMessage(locale.Get("ROUND_WON", elapsed.String()))
		events = append(events, Event{Kind: EventRoundWon, Round: r})
	}
	return events
}

func (s *Session) dumpMap(r *state.Round) Event {
	path, err := devtools.DumpRoundToFile(r, s.settings.DumpPath)
	if err != nil {
		log.Printf("Cannot dump map: %v", err)
		s.Game.AddMessage(locale.Get("MAP_DUMP_FAILED"))
		return Event{Kind: EventError, Round: r, Err: err}
	}
	log.Printf("Map dumped to %s", path)
	s.Game.AddMessage(locale.Get("MAP_DUMPED", path))
	return Event{Kind: EventMapDumped, Round: r, Path: path}
}

func (s *Session) saveScreenshot(r *state.Round, now time.Time) Event {
	path, err := devtools.SaveScreenshotHTML(r, s.Game.Messages, s.settings.ScreenshotDir, now)
	if err != nil {
		log.Printf("Cannot save screenshot: %v", err)
		s.Game.AddMessage(locale.Get("SCREENSHOT_FAILED"))
		return Event{Kind: EventError, Round: r, Err: err}
	}
	log.Printf("Screenshot saved to %s", path)
	s.Game.AddMessage(locale.Get("SCREENSHOT_SAVED", path))
	return Event{Kind: EventScreenshotSaved, Round: r, Path: path}
}

// NewRound builds a maze sized for the difficulty and places the player on its start
func (s *Session) NewRound(d level.Difficulty, c level.Character, now time.Time) (*state.Round, error) {
	width, height := s.dimensions(d)

	m, err := maze.New(width, height,
		maze.WithGenerator(s.nextGenerator()),
		maze.WithCellSize(d.CellSize()),
		maze.WithWallColor(d.WallColor()),
		maze.WithExitVisual(c.ExitSprite),
	)
	if err != nil {
		return nil, fmt.Errorf("new %s round: %w", d, err)
	}
	return state.NewRound(d, c, m, s.settings.Cooldown, now), nil
}

func (s *Session) dimensions(d level.Difficulty) (int, int) {
	if s.settings.Dimensions != nil {
		return s.settings.Dimensions(d)
	}
	return d.Dimensions(s.settings.ScreenWidth, s.settings.ScreenHeight)
}

// nextGenerator gives every round its own seed; a fixed base seed keeps the sequence reproducible
func (s *Session) nextGenerator() generator.GridGenerator {
	s.rounds++
	if s.settings.Seed == 0 {
		return generator.NewBacktracker(0)
	}
	return generator.NewBacktracker(roundSeed(s.settings.Seed, s.rounds))
}

// roundSeed returns the seed of the n-th round (from 1) for a non-zero base seed.
// 0 would ask for a time seed, so a sequence climbing from a negative base steps over it.
func roundSeed(base, n int64) int64 {
	seed := base + n - 1
	if base < 0 && seed >= 0 {
		seed++
	}
	return seed
}

// menuActions are the actions a menu reacts to, in the order a frame applies them
var menuActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionConfirm,
}

// navigate feeds the pressed menu actions of a frame to m
func navigate(m *menu.Menu, frame engineinput.Frame) menu.MenuItem {
	for _, act := range menuActions {
		if !frame.WasPressed(act) {
			continue
		}
		if item := m.Navigate(act); item != nil {
			return item
		}
	}
	return nil
}
