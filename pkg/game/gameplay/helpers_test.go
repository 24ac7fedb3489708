package gameplay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"puzzlerooms/assets"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/state"
)

// tinyMap is a 3x3 room: start top-left, a pickup in the middle, a door on
// the right wall and the finish bottom-right
const tinyMap = `3 3
S . B
. P D
. . Q
`

func tinyLayout() puzzle.Layout {
	door := world.Pos(1, 2)
	return puzzle.Layout{
		LevelCount:     2,
		InitialPuzzles: []puzzle.InitialPuzzle{{PickupCount: 1, Right: &door}},
		CameraZoom:     []float64{10.5, 2.5},
	}
}

func newTestGame(t *testing.T, src string, layout puzzle.Layout) (*state.Game, *audio.Recorder) {
	t.Helper()
	grid, err := world.LoadMapString(src)
	require.NoError(t, err)

	rec := &audio.Recorder{}
	g, err := BuildGame(grid, layout, Options{Audio: rec})
	require.NoError(t, err)
	return g, rec
}

func newDefaultGame(t *testing.T) (*state.Game, *audio.Recorder) {
	t.Helper()
	return newTestGame(t, assets.DefaultMap, puzzle.DefaultLayout())
}

// runToEnd commits a run and ticks it to completion, one cell per tick
func runToEnd(t *testing.T, g *state.Game) Outcome {
	t.Helper()
	require.True(t, CommitRun(g), "CommitRun in mode %s", g.Mode)
	outcome, err := RunUntilSettled(g, 1, 500)
	require.NoError(t, err)
	require.NotEqual(t, state.ModeRunning, g.Mode, "run did not settle")
	return outcome
}

// placeTurns drops turn cells directly, bypassing editing checks
func placeTurns(g *state.Game, turns map[world.Position]world.CellType) {
	for pos, shape := range turns {
		PlaceTurn(g, pos, shape)
	}
}

// corridorTurns solves the four initial rooms of the default map
var corridorTurns = []map[world.Position]world.CellType{
	{},
	{world.Pos(3, 8): world.Turn00, world.Pos(2, 8): world.Turn11},
	{world.Pos(2, 13): world.Turn10, world.Pos(4, 13): world.Turn01},
	{world.Pos(4, 18): world.Turn00, world.Pos(1, 18): world.Turn11},
}

// walkCorridor plays the default map until the super-puzzle entry room is reached
func walkCorridor(t *testing.T, g *state.Game) {
	t.Helper()
	for i, turns := range corridorTurns {
		placeTurns(g, turns)
		require.Equal(t, OutcomeEnteredPuzzle, runToEnd(t, g), "initial room %d", i)
	}
}
