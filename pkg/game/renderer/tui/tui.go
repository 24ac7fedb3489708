package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside the board: title, status, blank, messages (5), help
	chromeRows = 9
	// Width of the status column next to the board
	hudCols = 34
)

// TUIRenderer draws the game as text. Board cells are styled with lipgloss;
// messages go through the shared markup with gookit colours.
type TUIRenderer struct {
	out     io.Writer
	palette renderer.Palette
	cells   map[renderer.TextStyle]lipgloss.Style

	cursorStyle lipgloss.Style
	titleStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	hudStyle    lipgloss.Style
}

// New creates a renderer writing static frames to out (stdout when nil)
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	t := &TUIRenderer{out: out}
	t.Init()
	return t
}

// Init sets up the colours
func (t *TUIRenderer) Init() {
	t.palette = renderer.DefaultPalette()

	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	t.cells = map[renderer.TextStyle]lipgloss.Style{
		renderer.StyleNormal:   lipgloss.NewStyle(),
		renderer.StyleCell:     fg("#6c6c6c"),
		renderer.StyleItem:     fg("#d75fd7").Bold(true),
		renderer.StyleDenied:   fg("#ff4444").Bold(true),
		renderer.StyleDoor:     fg("#ffcc00").Bold(true),
		renderer.StyleTurn:     fg("#44ddff").Bold(true),
		renderer.StyleSubtle:   fg("#555555"),
		renderer.StylePlayer:   fg("#00ff88").Background(lipgloss.Color("#000000")).Bold(true),
		renderer.StyleExitOpen: fg("#00aa55"),
	}

	t.cursorStyle = lipgloss.NewStyle().Reverse(true)
	t.titleStyle = fg("#ff8844").Bold(true)
	t.labelStyle = fg("#888888")
	t.hudStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1).
		Width(hudCols)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	return t.palette.Style(style).Sprint(text)
}

// FormatText formats a message with markup
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatMarkup(t.palette, msg, args...)
}

// GetViewportSize returns how many board rows and cols fit the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	w, h := input.TerminalSize()
	return viewportFor(w, h)
}

func viewportFor(width, height int) (rows, cols int) {
	rows = max(height-chromeRows, ViewportMinRows)
	cols = max(width-hudCols-4, ViewportMinCols)
	return rows, cols
}

// RenderFrame writes one static frame without a cursor
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	rows, cols := t.GetViewportSize()
	fmt.Fprintln(t.out, t.Frame(g, nil, rows, cols))
}

// Frame renders the board next to the status panel, with the message pane
// below. cursor may be nil.
func (t *TUIRenderer) Frame(g *state.Game, cursor *world.Position, rows, cols int) string {
	board := t.Board(g, cursor, rows, cols)
	hud := t.HUD(g, cursor)

	return lipgloss.JoinVertical(lipgloss.Left,
		t.titleStyle.Render(gotext.Get("TITLE")),
		lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", hud),
		t.Messages(g),
		t.Help(),
	)
}

// Board renders the part of the grid that fits rows x cols, framed on the
// cursor when there is one and on the player otherwise
func (t *TUIRenderer) Board(g *state.Game, cursor *world.Position, rows, cols int) string {
	focus := g.Player.Position
	if cursor != nil {
		focus = *cursor
	}
	r0, r1 := window(focus.Row, rows, g.Grid.Rows())
	c0, c1 := window(focus.Col, cols, g.Grid.Cols())

	lines := make([]string, 0, r1-r0)
	for r := r0; r < r1; r++ {
		var sb strings.Builder
		for c := c0; c < c1; c++ {
			pos := world.Pos(r, c)
			glyph, style := renderer.CellGlyph(g, g.Grid.CellAt(pos))
			if pos == g.Player.Position {
				glyph, style = renderer.PlayerIcon, renderer.StylePlayer
			}

			s := t.cells[style]
			if cursor != nil && pos == *cursor && g.MarkerVisible {
				s = s.Inherit(t.cursorStyle)
			}
			sb.WriteString(s.Render(glyph))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// window returns the [lo, hi) span of length size inside [0, limit) that
// keeps center in view
func window(center, size, limit int) (lo, hi int) {
	if size >= limit {
		return 0, limit
	}
	lo = center - size/2
	lo = max(lo, 0)
	lo = min(lo, limit-size)
	return lo, lo + size
}

// HUD renders the status panel
func (t *TUIRenderer) HUD(g *state.Game, cursor *world.Position) string {
	label := func(k string) string { return t.labelStyle.Render(gotext.Get(k) + ":") }

	puzzleName := "-"
	if p := g.CurrentPuzzle; p != nil {
		puzzleName = fmt.Sprintf("L%d (%d, %d)", p.Level, p.Position.Row, p.Position.Col)
		if p.IsInitial() {
			puzzleName += " " + gotext.Get("HUD_INITIAL")
		}
	}

	parts := []string{
		fmt.Sprintf("%s %s", label("HUD_MODE"), g.Mode),
		fmt.Sprintf("%s %s", label("HUD_PUZZLE"), puzzleName),
	}
	if p := g.CurrentPuzzle; p != nil {
		parts = append(parts, fmt.Sprintf("%s %d", label("HUD_PICKUPS"), p.PickupCount))
	}
	parts = append(parts,
		fmt.Sprintf("%s %d", label("HUD_SUPER_PICKUPS"), g.Puzzles.Super().PickupCount),
		fmt.Sprintf("%s %d", label("HUD_CHECKPOINTS"), g.Checkpoints.Len()),
		fmt.Sprintf("%s %v %s", label("HUD_PLAYER"), g.Player.Position, g.Player.Direction),
	)
	if cursor != nil {
		parts = append(parts, fmt.Sprintf("%s %v %s", label("HUD_CURSOR"), *cursor, g.Grid.TypeAt(*cursor)))
	}
	return t.hudStyle.Render(strings.Join(parts, "\n"))
}

// Messages renders the message pane, newest last
func (t *TUIRenderer) Messages(g *state.Game) string {
	lines := make([]string, 0, len(g.Messages)+1)
	lines = append(lines, t.labelStyle.Render(gotext.Get("MESSAGES")))
	for _, msg := range g.Messages {
		lines = append(lines, " "+t.FormatText("%s", msg))
	}
	return strings.Join(lines, "\n")
}

// helpKeys are the keys shown in the help line, in order
var helpKeys = []string{"t", "x", "space", "r", "p", "e", "q"}

// Help lists the main key bindings
func (t *TUIRenderer) Help() string {
	parts := make([]string, 0, len(helpKeys))
	for _, code := range helpKeys {
		act := input.MapToIntent(input.DebouncedInput{Device: input.DeviceKeyboard, Code: code}).Action
		if act == input.ActionNone {
			continue
		}
		parts = append(parts, t.palette.ActionShort.Sprint(code)+" "+t.palette.Subtle.Sprint(input.ActionName(act)))
	}
	return strings.Join(parts, "  ")
}
