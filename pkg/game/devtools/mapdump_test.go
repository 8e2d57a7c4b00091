package devtools

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/generator"
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/maze"
	"mazerun/pkg/game/state"
)

func newMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(7, 7, maze.WithGenerator(generator.NewBacktracker(3)))
	require.NoError(t, err)
	return m
}

// section returns the lines between header and the next blank line
func section(out, header string) []string {
	_, rest, found := strings.Cut(out, header+"\n")
	if !found {
		return nil
	}
	body, _, _ := strings.Cut(rest, "\n\n")
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func TestWriteMazeDump(t *testing.T) {
	m := newMaze(t)
	var buf bytes.Buffer
	require.NoError(t, WriteMazeDump(&buf, m, m.Start()))
	out := buf.String()

	assert.Contains(t, out, "width: 7\n")
	assert.Contains(t, out, "exit: 5,5\n")
	assert.Contains(t, out, "rooms: 9\n")

	plain := section(out, "--- Map ---")
	require.Len(t, plain, 7)
	assert.Equal(t, "#######", plain[0])
	assert.Equal(t, byte('@'), plain[1][1], "player drawn over the start")
	assert.Equal(t, byte('E'), plain[5][5])
	assert.NotContains(t, strings.Join(plain, ""), "*")

	solved := section(out, "--- Map (shortest path to exit) ---")
	require.Len(t, solved, 7)
	path := m.ShortestPath(m.Start(), m.Exit())
	stars := strings.Count(strings.Join(solved, ""), "*")
	assert.Equal(t, len(path)-2, stars, "path minus its two endpoints")
}

func TestWriteMazeDump_NilMaze(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteMazeDump(&buf, nil, world.Point{}), ErrNoMaze)
}

func TestDumpMazeToFile(t *testing.T) {
	m := newMaze(t)
	path := filepath.Join(t.TempDir(), "dump.txt")

	written, err := DumpMazeToFile(m, world.Point{X: -1, Y: -1}, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "player: -1,-1\n")
	assert.Contains(t, string(data), "S", "start marker shown when the player is off the grid")
}

func TestDumpRoundToFile(t *testing.T) {
	m := newMaze(t)
	r := state.NewRound(level.Medium, level.Characters[2], m, time.Second, time.Now())
	path := filepath.Join(t.TempDir(), "round.txt")

	written, err := DumpRoundToFile(r, path)
	require.NoError(t, err)
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "round_id: "+r.ID.String()))
	assert.Contains(t, string(data), "difficulty: medium\n")

	_, err = DumpRoundToFile(nil, path)
	assert.ErrorIs(t, err, ErrNoMaze)
}

// failingFile buffers writes and fails on the calls named by its errors
type failingFile struct {
	bytes.Buffer
	writeErr error
	closeErr error
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.Buffer.Write(p)
}

func (f *failingFile) Close() error { return f.closeErr }

func withCreateFile(t *testing.T, f *failingFile) {
	t.Helper()
	saved := createFile
	createFile = func(string) (io.WriteCloser, error) { return f, nil }
	t.Cleanup(func() { createFile = saved })
}

func TestDumpMazeToFile_CloseError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	f := &failingFile{closeErr: diskFull}
	withCreateFile(t, f)

	written, err := DumpMazeToFile(newMaze(t), world.Point{}, filepath.Join(t.TempDir(), "dump.txt"))
	assert.ErrorIs(t, err, diskFull)
	assert.Empty(t, written)
	assert.NotZero(t, f.Len(), "the dump was written before close failed")
}

func TestDumpRoundToFile_WriteError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	withCreateFile(t, &failingFile{writeErr: diskFull})

	r := state.NewRound(level.Easy, level.Characters[0], newMaze(t), time.Second, time.Now())
	written, err := DumpRoundToFile(r, filepath.Join(t.TempDir(), "round.txt"))
	assert.ErrorIs(t, err, diskFull)
	assert.Empty(t, written)
}
