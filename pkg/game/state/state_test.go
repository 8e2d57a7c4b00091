package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/generator"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/maze"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame()
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, []string{"m3", "m4", "m5", "m6", "m7"}, g.Messages)

	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestScreenTransitions(t *testing.T) {
	g := NewGame()
	assert.Equal(t, ScreenMainMenu, g.Screen)

	g.CharacterMenu.Next()
	g.ShowCharacterMenu(level.Hard)
	assert.Equal(t, ScreenCharacterSelect, g.Screen)
	assert.Equal(t, level.Hard, g.Difficulty)
	assert.Equal(t, 0, g.CharacterMenu.Index(), "character menu starts on the first entry")

	m, err := maze.New(5, 5, maze.WithGenerator(generator.NewBacktracker(1)))
	require.NoError(t, err)
	now := time.Now()
	r := NewRound(level.Hard, level.Characters[1], m, time.Second, now)
	g.StartRound(r)
	assert.Equal(t, ScreenPlaying, g.Screen)
	assert.Same(t, r, g.Round)

	g.ShowMainMenu()
	assert.Equal(t, ScreenMainMenu, g.Screen)
	assert.Nil(t, g.Round)
}

func TestRound(t *testing.T) {
	m, err := maze.New(5, 5, maze.WithGenerator(generator.NewBacktracker(7)))
	require.NoError(t, err)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r := NewRound(level.Easy, level.Characters[0], m, time.Second, start)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, world.Point{X: 1, Y: 1}, r.Player.Position())
	assert.False(t, r.Won())
	assert.Equal(t, 3*time.Second, r.Elapsed(start.Add(3*time.Second)))

	r.Player.X, r.Player.Y = 3, 3
	assert.True(t, r.Won())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "main-menu", ScreenMainMenu.String())
	assert.Equal(t, "character-select", ScreenCharacterSelect.String())
	assert.Equal(t, "playing", ScreenPlaying.String())
}
