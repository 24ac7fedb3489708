package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

// styleClasses maps text styles to the CSS classes of the screenshot page
var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleNormal:   "void",
	renderer.StyleCell:     "floor",
	renderer.StyleItem:     "item",
	renderer.StyleDenied:   "denied",
	renderer.StyleDoor:     "door",
	renderer.StyleTurn:     "turn",
	renderer.StyleSubtle:   "wall",
	renderer.StylePlayer:   "player",
	renderer.StyleExitOpen: "open",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Puzzle Rooms - Screenshot</title>
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
        .status { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .door { color: #ffff00; font-weight: bold; }
        .open { color: #00aa00; }
        .denied { color: #ff4444; font-weight: bold; }
        .item { color: #bb86fc; }
        .turn { color: #44ddff; font-weight: bold; }
        .void { color: #1a1a2e; }
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

// WriteScreenshotHTML writes the whole map as a self-contained HTML page
func WriteScreenshotHTML(w io.Writer, g *state.Game) error {
	var b strings.Builder
	b.WriteString(screenshotHead)

	puzzleName := "-"
	if g.CurrentPuzzle != nil {
		puzzleName = g.CurrentPuzzle.String()
	}
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(puzzleName))
	fmt.Fprintf(&b, `    <div class="status">mode: %s &middot; super pickups left: %d &middot; checkpoints: %d</div>`+"\n",
		g.Mode, g.Puzzles.Super().PickupCount, g.Checkpoints.Len())

	b.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < g.Grid.Rows(); row++ {
		b.WriteString(`        <div class="map-row">`)
		for col := 0; col < g.Grid.Cols(); col++ {
			icon, class := cellHTMLInfo(g, g.Grid.GetCell(row, col))
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.PlainText("%s", msg)))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// SaveScreenshotHTML writes a timestamped screenshot page into dir and returns its path
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, g); err != nil {
		return "", err
	}
	return path, nil
}

// cellHTMLInfo returns the icon and CSS class for a cell
func cellHTMLInfo(g *state.Game, cell *world.Cell) (string, string) {
	if cell != nil && g.Player != nil && cell.Position == g.Player.Position {
		return renderer.PlayerIcon, styleClasses[renderer.StylePlayer]
	}
	icon, style := renderer.CellGlyph(g, cell)
	class, ok := styleClasses[style]
	if !ok {
		class = "floor"
	}
	return icon, class
}
