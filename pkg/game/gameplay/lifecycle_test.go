package gameplay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/entities"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/state"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	return NewSession(Settings{
		Cooldown:      entities.DefaultMoveCooldown,
		Seed:          42,
		DumpPath:      filepath.Join(dir, "map.txt"),
		ScreenshotDir: dir,
		Dimensions: func(level.Difficulty) (int, int) {
			return 7, 5
		},
	})
}

func press(a engineinput.Action) engineinput.Frame {
	return engineinput.NewFrame().Press(a)
}

func hold(a engineinput.Action) engineinput.Frame {
	return engineinput.NewFrame().Hold(a)
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// startRound picks the menu entries and returns the new round
func startRound(t *testing.T, s *Session, now time.Time) *state.Round {
	t.Helper()
	s.Update(press(engineinput.ActionMoveSouth), now) // Medium
	s.Update(press(engineinput.ActionConfirm), now)
	if s.Game.Screen != state.ScreenCharacterSelect {
		t.Fatalf("screen = %s, want character-select", s.Game.Screen)
	}
	events := s.Update(press(engineinput.ActionConfirm), now)
	if !hasEvent(events, EventRoundStarted) {
		t.Fatalf("events = %v, want round-started", kinds(events))
	}
	return s.Game.Round
}

func actionFor(from, to world.Point) engineinput.Action {
	switch {
	case to.Y < from.Y:
		return engineinput.ActionMoveNorth
	case to.Y > from.Y:
		return engineinput.ActionMoveSouth
	case to.X < from.X:
		return engineinput.ActionMoveWest
	default:
		return engineinput.ActionMoveEast
	}
}

func TestSession_StartsOnMainMenu(t *testing.T) {
	s := newTestSession(t)
	if s.Game.Screen != state.ScreenMainMenu {
		t.Errorf("screen = %s, want main-menu", s.Game.Screen)
	}
}

func TestSession_ZeroCooldownIsKept(t *testing.T) {
	s := NewSession(Settings{
		Cooldown:   0,
		Seed:       42,
		Dimensions: func(level.Difficulty) (int, int) { return 7, 5 },
	})
	if s.Settings().Cooldown != 0 {
		t.Errorf("settings cooldown = %v, want 0", s.Settings().Cooldown)
	}
	r, err := s.NewRound(level.Easy, level.Characters[0], t0)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if r.Player.Cooldown() != 0 {
		t.Errorf("player cooldown = %v, want 0", r.Player.Cooldown())
	}
}

func TestSession_RoundUsesPickedLevelAndCharacter(t *testing.T) {
	s := newTestSession(t)
	s.Update(press(engineinput.ActionMoveSouth), t0)
	s.Update(press(engineinput.ActionMoveSouth), t0) // Hard
	s.Update(press(engineinput.ActionConfirm), t0)
	s.Update(press(engineinput.ActionMoveNorth), t0) // wraps to the cat
	s.Update(press(engineinput.ActionConfirm), t0)

	r := s.Game.Round
	if r == nil {
		t.Fatal("no round started")
	}
	if r.Difficulty != level.Hard {
		t.Errorf("difficulty = %s, want hard", r.Difficulty)
	}
	if r.Character != level.Characters[2] {
		t.Errorf("character = %v, want %v", r.Character, level.Characters[2])
	}
	if r.Maze.CellSize() != 30 || r.Maze.ExitVisual() != "img/sc.png" {
		t.Errorf("maze render data = (%d, %q), want (30, img/sc.png)", r.Maze.CellSize(), r.Maze.ExitVisual())
	}
	if r.Player.Position() != (world.Point{X: 1, Y: 1}) {
		t.Errorf("player starts at %v, want (1,1)", r.Player.Position())
	}
}

func TestSession_WalkToExitReturnsToMenu(t *testing.T) {
	s := newTestSession(t)
	now := t0
	r := startRound(t, s, now)

	path := r.Maze.ShortestPath(r.Player.Position(), r.Maze.Exit())
	if len(path) < 2 {
		t.Fatalf("no path to exit: %v", path)
	}

	var last []Event
	for i := 1; i < len(path); i++ {
		now = now.Add(200 * time.Millisecond)
		last = s.Update(hold(actionFor(path[i-1], path[i])), now)
		if i < len(path)-1 && s.Game.Screen != state.ScreenPlaying {
			t.Fatalf("round ended early at step %d", i)
		}
	}

	if !hasEvent(last, EventRoundWon) {
		t.Fatalf("last events = %v, want round-won", kinds(last))
	}
	if s.Game.Screen != state.ScreenMainMenu || s.Game.Round != nil {
		t.Errorf("after winning: screen=%s round=%v, want main-menu and no round", s.Game.Screen, s.Game.Round)
	}
	if s.Game.RoundsWon != 1 {
		t.Errorf("RoundsWon = %d, want 1", s.Game.RoundsWon)
	}
	if r.Moves != len(path)-1 {
		t.Errorf("moves = %d, want %d", r.Moves, len(path)-1)
	}
}

func TestSession_HeldKeyRespectsCooldown(t *testing.T) {
	s := newTestSession(t)
	r := startRound(t, s, t0)

	// South of the start is open or east is; pick whichever the maze carved
	act := engineinput.ActionMoveEast
	if r.Maze.IsWall(2, 1) {
		act = engineinput.ActionMoveSouth
	}
	s.Update(hold(act), t0)
	s.Update(hold(act), t0.Add(16*time.Millisecond))
	s.Update(hold(act), t0.Add(32*time.Millisecond))
	if r.Moves != 1 {
		t.Errorf("moves after three frames inside one cooldown = %d, want 1", r.Moves)
	}
}

func TestSession_BumpEvent(t *testing.T) {
	s := newTestSession(t)
	startRound(t, s, t0)

	events := s.Update(hold(engineinput.ActionMoveNorth), t0) // row 0 is border
	if !hasEvent(events, EventBump) {
		t.Fatalf("events = %v, want bump", kinds(events))
	}
	if events[0].Action != engineinput.ActionMoveNorth {
		t.Errorf("bump action = %s, want Move North", engineinput.ActionName(events[0].Action))
	}
}

func TestSession_EscapeAbandonsRound(t *testing.T) {
	s := newTestSession(t)
	startRound(t, s, t0)

	events := s.Update(press(engineinput.ActionBack), t0)
	if !hasEvent(events, EventRoundAbandoned) {
		t.Errorf("events = %v, want round-abandoned", kinds(events))
	}
	if s.Game.Screen != state.ScreenMainMenu || s.Game.Round != nil {
		t.Errorf("screen=%s round=%v, want main-menu and no round", s.Game.Screen, s.Game.Round)
	}
}

func TestSession_BackFromCharacterMenu(t *testing.T) {
	s := newTestSession(t)
	s.Update(press(engineinput.ActionConfirm), t0)
	s.Update(press(engineinput.ActionBack), t0)
	if s.Game.Screen != state.ScreenMainMenu {
		t.Errorf("screen = %s, want main-menu", s.Game.Screen)
	}
}

func TestSession_QuitPaths(t *testing.T) {
	tests := []struct {
		name   string
		frames []engineinput.Frame
	}{
		{"exit entry", []engineinput.Frame{press(engineinput.ActionMoveNorth), press(engineinput.ActionConfirm)}},
		{"escape on main menu", []engineinput.Frame{press(engineinput.ActionBack)}},
		{"quit key", []engineinput.Frame{press(engineinput.ActionQuit)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			var events []Event
			for _, f := range tt.frames {
				events = s.Update(f, t0)
			}
			if !hasEvent(events, EventQuit) {
				t.Errorf("events = %v, want quit", kinds(events))
			}
		})
	}
}

func TestSession_DumpMap(t *testing.T) {
	s := newTestSession(t)
	startRound(t, s, t0)

	events := s.Update(press(engineinput.ActionDumpMap), t0)
	if len(events) != 1 || events[0].Kind != EventMapDumped {
		t.Fatalf("events = %v, want map-dumped", kinds(events))
	}
	if _, err := os.Stat(events[0].Path); err != nil {
		t.Errorf("dump file missing: %v", err)
	}
}

func TestSession_Screenshot(t *testing.T) {
	s := newTestSession(t)
	startRound(t, s, t0)

	events := s.Update(press(engineinput.ActionScreenshot), t0)
	if len(events) != 1 || events[0].Kind != EventScreenshotSaved {
		t.Fatalf("events = %v, want screenshot-saved", kinds(events))
	}
	if filepath.Dir(events[0].Path) != s.Settings().ScreenshotDir {
		t.Errorf("screenshot written to %s, want %s", events[0].Path, s.Settings().ScreenshotDir)
	}
	if _, err := os.Stat(events[0].Path); err != nil {
		t.Errorf("screenshot file missing: %v", err)
	}
}

func TestSession_SeedIsReproducible(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	ra := startRound(t, a, t0)
	rb := startRound(t, b, t0)
	if ra.Maze.String() != rb.Maze.String() {
		t.Errorf("same seed produced different mazes:\n%s\n%s", ra.Maze, rb.Maze)
	}
}

func TestSession_PixelDimensions(t *testing.T) {
	s := NewSession(Settings{ScreenWidth: 800, ScreenHeight: 600, Seed: 1})
	r, err := s.NewRound(level.Easy, level.Characters[0], t0)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if r.Maze.Width() != 15 || r.Maze.Height() != 11 {
		t.Errorf("maze = %dx%d, want 15x11", r.Maze.Width(), r.Maze.Height())
	}
}

func TestRoundSeed_NeverZero(t *testing.T) {
	tests := []struct {
		base, n, want int64
	}{
		{42, 1, 42},
		{42, 3, 44},
		{-1, 1, -1},
		{-1, 2, 1}, // 0 would mean a time seed
		{-1, 3, 2},
		{-3, 3, -1},
		{-3, 4, 1},
	}
	for _, tt := range tests {
		if got := roundSeed(tt.base, tt.n); got != tt.want {
			t.Errorf("roundSeed(%d, %d) = %d, want %d", tt.base, tt.n, got, tt.want)
		}
	}
}

func TestSession_NegativeSeedIsReproducible(t *testing.T) {
	newSession := func() *Session {
		return NewSession(Settings{
			Seed:       -1,
			Dimensions: func(level.Difficulty) (int, int) { return 9, 9 },
		})
	}
	a, b := newSession(), newSession()
	for round := 1; round <= 3; round++ {
		ra, err := a.NewRound(level.Easy, level.Characters[0], t0)
		if err != nil {
			t.Fatalf("NewRound: %v", err)
		}
		rb, err := b.NewRound(level.Easy, level.Characters[0], t0)
		if err != nil {
			t.Fatalf("NewRound: %v", err)
		}
		if ra.Maze.String() != rb.Maze.String() {
			t.Errorf("round %d: same seed produced different mazes", round)
		}
	}
}

func TestSession_CharacterMenuLeftRight(t *testing.T) {
	s := newTestSession(t)
	s.Update(press(engineinput.ActionConfirm), t0) // Easy
	if s.Game.Screen != state.ScreenCharacterSelect {
		t.Fatalf("screen = %s, want character-select", s.Game.Screen)
	}

	s.Update(press(engineinput.ActionMoveEast), t0)
	if got := s.Game.CharacterMenu.Index(); got != 1 {
		t.Errorf("index after right = %d, want 1", got)
	}
	s.Update(press(engineinput.ActionMoveEast), t0)
	s.Update(press(engineinput.ActionMoveEast), t0)
	if got := s.Game.CharacterMenu.Index(); got != 0 {
		t.Errorf("index after right from the last character = %d, want 0", got)
	}
	s.Update(press(engineinput.ActionMoveWest), t0)
	if got := s.Game.CharacterMenu.Index(); got != 2 {
		t.Errorf("index after left from the first character = %d, want 2", got)
	}
}
