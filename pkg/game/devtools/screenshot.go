package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mazerun/pkg/engine/world"
	"mazerun/pkg/game/state"
)

const screenshotHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .exit { color: #00aa00; font-weight: bold; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// cellHTML returns the icon and CSS class for a cell
func cellHTML(r *state.Round, x, y int) (string, string) {
	switch {
	case r.Player.Position() == world.Point{X: x, Y: y}:
		return "@", "player"
	case r.Maze.IsExit(x, y):
		return "△", "exit"
	case r.Maze.IsWall(x, y):
		return "▒", "wall"
	default:
		return " ", "floor"
	}
}

// WriteScreenshotHTML renders the whole maze of a round, with the message log, as an HTML page
func WriteScreenshotHTML(b *strings.Builder, r *state.Round, messages []string) error {
	if r == nil || r.Maze == nil {
		return ErrNoMaze
	}

	b.WriteString(screenshotHeader)
	fmt.Fprintf(b, `    <div class="header">%s - %dx%d - %d moves</div>`+"\n",
		html.EscapeString(r.Difficulty.String()), r.Maze.Width(), r.Maze.Height(), r.Moves)

	b.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < r.Maze.Height(); y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < r.Maze.Width(); x++ {
			icon, class := cellHTML(r, x, y)
			fmt.Fprintf(b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if len(messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range messages {
			fmt.Fprintf(b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	return nil
}

// SaveScreenshotHTML writes the round to screenshot-<timestamp>.html in dir ("" for the working directory).
// Returns the absolute path of the file.
func SaveScreenshotHTML(r *state.Round, messages []string, dir string, now time.Time) (string, error) {
	var b strings.Builder
	if err := WriteScreenshotHTML(&b, r, messages); err != nil {
		return "", err
	}

	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", now.Format("20060102-150405")))
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}
	return filename, nil
}
