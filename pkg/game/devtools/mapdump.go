// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/maze"
	"mazerun/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// ErrNoMaze is returned when there is nothing to dump
var ErrNoMaze = errors.New("no maze")

// cellSymbol returns the single-character symbol for a cell, before overlays
func cellSymbol(m *maze.Maze, x, y int) rune {
	if m.IsWall(x, y) {
		return '#'
	}
	return '.'
}

// writeMapGrid writes the maze with the player, start, exit and an optional path overlay.
// The player wins over the exit, which wins over the start and the path.
func writeMapGrid(w io.Writer, m *maze.Maze, player world.Point, path mapset.Set[world.Point]) {
	start := m.Start()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := world.Point{X: x, Y: y}
			switch {
			case p == player:
				fmt.Fprint(w, "@")
			case m.IsExit(x, y):
				fmt.Fprint(w, "E")
			case p == start:
				fmt.Fprint(w, "S")
			case path.Has(p):
				fmt.Fprint(w, "*")
			default:
				fmt.Fprintf(w, "%c", cellSymbol(m, x, y))
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteMazeDump writes metadata, legend, the maze and the solved maze to w.
// Pass a player outside the grid (e.g. -1,-1) to omit the marker.
func WriteMazeDump(w io.Writer, m *maze.Maze, player world.Point) error {
	if m == nil {
		return ErrNoMaze
	}

	solution := m.ShortestPath(player, m.Exit())
	if !m.Grid().IsValidPosition(player.X, player.Y) {
		solution = m.ShortestPath(m.Start(), m.Exit())
	}

	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "start: %d,%d\n", m.Start().X, m.Start().Y)
	fmt.Fprintf(w, "exit: %d,%d\n", m.Exit().X, m.Exit().Y)
	fmt.Fprintf(w, "player: %d,%d\n", player.X, player.Y)
	fmt.Fprintf(w, "rooms: %d\n", m.Rooms())
	fmt.Fprintf(w, "open_cells: %d\n", m.Grid().CountOpen())
	fmt.Fprintf(w, "cell_size_px: %d\n", m.CellSize())
	fmt.Fprintf(w, "exit_visual: %q\n", m.ExitVisual())
	if len(solution) > 0 {
		fmt.Fprintf(w, "steps_to_exit: %d\n", len(solution)-1)
	} else {
		fmt.Fprintln(w, "steps_to_exit: unreachable")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = open  # = wall  S = start  E = exit  @ = player  * = shortest path")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, m, player, mapset.New[world.Point]())
	fmt.Fprintln(w, "")

	onPath := mapset.New[world.Point]()
	for _, p := range solution {
		onPath.Put(p)
	}
	fmt.Fprintln(w, "--- Map (shortest path to exit) ---")
	writeMapGrid(w, m, player, onPath)
	return nil
}

// createFile opens the dump file for writing
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// DumpMazeToFile writes the maze dump to path (map.txt in the working directory when empty).
// Returns the absolute path written.
func DumpMazeToFile(m *maze.Maze, player world.Point, path string) (string, error) {
	if m == nil {
		return "", ErrNoMaze
	}
	return writeDumpFile(path, func(w io.Writer) error {
		return WriteMazeDump(w, m, player)
	})
}

// DumpRoundToFile dumps the maze of a round with a header naming the round
func DumpRoundToFile(r *state.Round, path string) (string, error) {
	if r == nil || r.Maze == nil {
		return "", ErrNoMaze
	}
	return writeDumpFile(path, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "round_id: %s\ndifficulty: %s\ncharacter: %s\nmoves: %d\nbumps: %d\n\n",
			r.ID, r.Difficulty, r.Character.Key, r.Moves, r.Bumps)
		if err != nil {
			return err
		}
		return WriteMazeDump(w, r.Maze, r.Player.Position())
	})
}

// writeDumpFile creates path, fills it with write and returns its absolute path.
// The path is only returned once the file has been closed cleanly.
func writeDumpFile(path string, write func(io.Writer) error) (absPath string, err error) {
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := createFile(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close map dump: %w", cerr)
		}
		if err != nil {
			absPath = ""
		}
	}()

	if err := write(f); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}
	return absPath, nil
}
