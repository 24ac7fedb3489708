package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlerooms/assets"
	engineinput "puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/camera"
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

func TestCellRect_RoundTrip(t *testing.T) {
	const rows, w, h = 21, 800, 600
	cam := camera.New(puzzle.CameraTarget{X: 10.5, Y: 10.5, Zoom: 5})

	for _, pos := range []world.Position{world.Pos(3, 1), world.Pos(10, 10), world.Pos(14, 16)} {
		x, y, size := cellRect(cam, rows, pos, w, h)
		assert.Equal(t, cam.Scale(h), size)
		got := screenToCell(cam, rows, x+size/2, y+size/2, w, h)
		assert.Equal(t, pos, got)
	}
}

func TestCellRect_CentreOfView(t *testing.T) {
	const rows, w, h = 21, 800, 600
	// the camera looks at the centre of cell (10, 10)
	cam := camera.New(puzzle.CameraTarget{X: 10.5, Y: 10.5, Zoom: 5})

	x, y, size := cellRect(cam, rows, world.Pos(10, 10), w, h)
	assert.InDelta(t, 400.0, x+size/2, 1e-9)
	assert.InDelta(t, 300.0, y+size/2, 1e-9)
}

func TestIntentFor(t *testing.T) {
	for key, code := range keyCodes {
		assert.NotEqual(t, engineinput.ActionNone, intentFor(engineinput.DeviceKeyboard, code).Action, "key %v (%s) is unbound", key, code)
	}
	assert.Equal(t, engineinput.ActionToggleCell, intentFor(engineinput.DeviceMouse, mouseCodes[ebiten.MouseButtonLeft]).Action)
}

func TestApply_EditsAtCursor(t *testing.T) {
	g := newGame(t)
	e := New(g)
	require.Equal(t, world.Pos(3, 1), e.cursor)

	e.apply(engineinput.Intent{Action: engineinput.ActionCursorUp})
	e.apply(engineinput.Intent{Action: engineinput.ActionCursorRight})
	assert.Equal(t, world.Pos(2, 2), e.cursor)

	e.apply(engineinput.Intent{Action: engineinput.ActionToggleCell})
	assert.Equal(t, world.Turn00, g.Grid.TypeAt(world.Pos(2, 2)))

	e.apply(engineinput.Intent{Action: engineinput.ActionClearCell})
	assert.Equal(t, world.Empty, g.Grid.TypeAt(world.Pos(2, 2)))

	e.apply(engineinput.Intent{Action: engineinput.ActionCommitRun})
	assert.Equal(t, state.ModeRunning, g.Mode)
}

func TestMoveCursor_StaysOnGrid(t *testing.T) {
	e := New(newGame(t))
	e.cursor = world.Pos(0, 0)
	e.moveCursor(world.Up)
	e.moveCursor(world.Left)
	assert.Equal(t, world.Pos(0, 0), e.cursor)
}

func TestRendererBasics(t *testing.T) {
	g := newGame(t)
	e := New(g)

	assert.Equal(t, "plain", e.StyleText("plain", renderer.StyleDenied))
	assert.Equal(t, "(1, 2)", e.FormatText("ROOM{1 2}"))

	w, h := e.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	// the first room is framed at zoom 2.5: 120px per cell
	rows, cols := e.GetViewportSize()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 6, cols)
}

func TestStatusLines(t *testing.T) {
	g := newGame(t)
	lines := statusLines(g)
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "Editing")
	assert.Contains(t, lines[1], "L1 (0, -4)")
}

func TestColours(t *testing.T) {
	assert.Equal(t, colorWallBg, tileBackground(&world.Cell{Type: world.Block}))
	assert.Equal(t, colorMapBackground, tileBackground(&world.Cell{Type: world.Empty}))
	assert.Equal(t, colorTurn, glyphColor(renderer.StyleTurn))
	assert.Equal(t, colorText, glyphColor(renderer.StyleActionShort))
}
