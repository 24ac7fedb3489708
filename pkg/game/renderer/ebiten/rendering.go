package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	e.drawMap(screen, w, h)
	e.drawPlayer(screen, w, h)
	if e.game.MarkerVisible && e.game.IsEditable() {
		x, y, size := cellRect(e.camera, e.game.Grid.Rows(), e.cursor, w, h)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, colorAction, false)
	}
	e.drawStatus(screen)
	e.drawMessages(screen, h)
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image, w, h int) {
	g := e.game
	rows := g.Grid.Rows()
	face := e.tileFaceFor(e.camera.Scale(h))

	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		x, y, size := cellRect(e.camera, rows, cell.Position, w, h)
		if x+size < 0 || y+size < 0 || x > float64(w) || y > float64(h) {
			return
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), tileBackground(cell), false)

		glyph, style := renderer.CellGlyph(g, cell)
		if face == nil || glyph == renderer.IconVoid {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+size/2, y+size/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(glyphColor(style))
		text.Draw(screen, glyph, face, op)
	})
}

// drawPlayer draws the player between cells while it walks
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, w, h int) {
	row, col := e.game.Player.VisualPosition()
	rows := float64(e.game.Grid.Rows())
	x, y := e.camera.WorldToScreen(col, rows-row, w, h)
	size := e.camera.Scale(h)
	inset := size * playerInset
	vector.DrawFilledRect(screen, float32(x+inset), float32(y+inset), float32(size-2*inset), float32(size-2*inset), colorPlayer, false)
}

// drawStatus draws the status panel in the top-left corner
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image) {
	lines := statusLines(e.game)
	e.drawPanel(screen, lines, panelPadding, panelPadding)
}

// drawMessages draws the message log along the bottom edge, newest last
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, h int) {
	if len(e.game.Messages) == 0 {
		return
	}
	lines := make([]string, 0, len(e.game.Messages))
	for _, msg := range e.game.Messages {
		lines = append(lines, e.FormatText("%s", msg))
	}
	top := h - panelPadding*3 - len(lines)*lineHeight
	e.drawPanel(screen, lines, panelPadding, top)
}

func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, lines []string, x, y int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	pw := float32(width*uiFontSize*6/10 + 2*panelPadding)
	ph := float32(len(lines)*lineHeight + panelPadding)
	vector.DrawFilledRect(screen, float32(x), float32(y), pw, ph, colorPanelBackground, false)

	for i, l := range lines {
		lx, ly := x+panelPadding, y+panelPadding/2+i*lineHeight
		if e.uiFace == nil {
			ebitenutil.DebugPrintAt(screen, l, lx, ly)
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(lx), float64(ly))
		op.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, l, e.uiFace, op)
	}
}

// tileFaceFor returns a face sized for the current zoom, or nil when cells are
// too small to hold a glyph
func (e *EbitenRenderer) tileFaceFor(scale float64) *text.GoTextFace {
	if e.fontSource == nil || scale < minGlyphScale {
		return nil
	}
	size := scale * 0.7
	if e.tileFace == nil || e.tileFaceSize != size {
		e.tileFaceSize = size
		e.tileFace = &text.GoTextFace{Source: e.fontSource, Size: size}
	}
	return e.tileFace
}

// statusLines is the text of the status panel
func statusLines(g *state.Game) []string {
	puzzleName := "-"
	if p := g.CurrentPuzzle; p != nil {
		puzzleName = fmt.Sprintf("L%d (%d, %d)", p.Level, p.Position.Row, p.Position.Col)
	}
	lines := []string{
		fmt.Sprintf("%s: %s", gotext.Get("HUD_MODE"), g.Mode),
		fmt.Sprintf("%s: %s", gotext.Get("HUD_PUZZLE"), puzzleName),
	}
	if p := g.CurrentPuzzle; p != nil {
		lines = append(lines, fmt.Sprintf("%s: %d", gotext.Get("HUD_PICKUPS"), p.PickupCount))
	}
	lines = append(lines,
		fmt.Sprintf("%s: %d", gotext.Get("HUD_SUPER_PICKUPS"), g.Puzzles.Super().PickupCount),
		fmt.Sprintf("%s: %d", gotext.Get("HUD_CHECKPOINTS"), g.Checkpoints.Len()),
	)
	if g.Mode == state.ModeWon {
		lines = append(lines, gotext.Get("GAME_WON"))
	}
	return lines
}

func tileBackground(cell *world.Cell) color.RGBA {
	switch cell.Type {
	case world.Block:
		return colorWallBg
	case world.Door:
		return colorSubtle
	default:
		return colorMapBackground
	}
}

func glyphColor(style renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return colorText
}
