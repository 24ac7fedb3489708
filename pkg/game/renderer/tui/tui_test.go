package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlerooms/assets"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/gameplay"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	grid, err := world.LoadMapString(assets.DefaultMap)
	require.NoError(t, err)
	g, err := gameplay.BuildGame(grid, puzzle.DefaultLayout(), gameplay.Options{})
	require.NoError(t, err)
	return g
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		center, size, limit int
		lo, hi              int
	}{
		{10, 50, 41, 0, 41},
		{0, 10, 41, 0, 10},
		{20, 10, 41, 15, 25},
		{40, 10, 41, 31, 41},
	}
	for _, tt := range tests {
		lo, hi := window(tt.center, tt.size, tt.limit)
		assert.Equal(t, tt.lo, lo, "lo for %+v", tt)
		assert.Equal(t, tt.hi, hi, "hi for %+v", tt)
	}
}

func TestViewportFor(t *testing.T) {
	rows, cols := viewportFor(120, 40)
	assert.Equal(t, 31, rows)
	assert.Equal(t, 82, cols)

	rows, cols = viewportFor(10, 5)
	assert.Equal(t, ViewportMinRows, rows)
	assert.Equal(t, ViewportMinCols, cols)
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "arrow_up"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "arrow_left"},
		{tea.KeyMsg{Type: tea.KeySpace}, "space"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "escape"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"},
		{runes("r"), "r"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyCode(tt.key))
	}
}

func TestModel_CursorStaysOnGrid(t *testing.T) {
	g := newGame(t)
	m := NewModel(g, New(&bytes.Buffer{}), 30)
	assert.Equal(t, world.Pos(3, 1), m.Cursor())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, world.Pos(3, 2), m.Cursor())

	up := tea.KeyMsg{Type: tea.KeyUp}
	m, _ = press(t, m, up, up, up, up, up)
	assert.Equal(t, world.Pos(0, 2), m.Cursor())

	m, _ = press(t, m, runes("h"))
	assert.Equal(t, world.Pos(0, 1), m.Cursor(), "vim keys move the cursor too")
}

func TestModel_ToggleAtCursor(t *testing.T) {
	g := newGame(t)
	m := NewModel(g, New(&bytes.Buffer{}), 30)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyRight}, runes("t"))
	require.Equal(t, world.Pos(2, 2), m.Cursor())
	assert.Equal(t, world.Turn00, g.Grid.TypeAt(world.Pos(2, 2)))

	press(t, m, runes("x"))
	assert.Equal(t, world.Empty, g.Grid.TypeAt(world.Pos(2, 2)))
}

func TestModel_RunAndTick(t *testing.T) {
	g := newGame(t)
	m := NewModel(g, New(&bytes.Buffer{}), 30)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, state.ModeRunning, g.Mode)

	next, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd, "ticking keeps the clock running")
	assert.True(t, next.(Model).game.Player.Walking)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		g := newGame(t)
		m, cmd := press(t, NewModel(g, New(&bytes.Buffer{}), 30), key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestModel_View(t *testing.T) {
	g := newGame(t)
	m := NewModel(g, New(&bytes.Buffer{}), 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := next.View()
	assert.Contains(t, view, renderer.PlayerIcon)
	assert.Contains(t, view, "Editing")
	assert.Contains(t, view, renderer.IconPickup)
	assert.Contains(t, view, "HUD_MODE", "labels are translation keys until a catalogue is loaded")
}

func TestRenderFrame(t *testing.T) {
	g := newGame(t)
	var out bytes.Buffer
	New(&out).RenderFrame(g)

	frame := out.String()
	assert.Contains(t, frame, renderer.PlayerIcon)
	assert.True(t, strings.HasSuffix(frame, "\n"))
}

func TestBoard_WindowFollowsCursor(t *testing.T) {
	g := newGame(t)
	view := New(&bytes.Buffer{})

	cursor := world.Pos(20, 38)
	board := view.Board(g, &cursor, 7, 15)
	lines := strings.Split(board, "\n")
	require.Len(t, lines, 7)
	assert.NotContains(t, board, renderer.PlayerIcon, "the player is out of the window")
	assert.Contains(t, board, renderer.IconExitLocked)
}
