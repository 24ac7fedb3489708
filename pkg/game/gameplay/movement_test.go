package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/state"
)

func TestCanEnter_Blocks(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())

	assert.False(t, CanEnter(g, world.Pos(0, 1), world.Right), "Block must reject")
	assert.False(t, CanEnter(g, world.Pos(0, 0), world.Up), "outside the grid must reject")
	assert.False(t, CanEnter(g, world.Pos(0, 0), world.Left), "outside the grid must reject")
	assert.True(t, CanEnter(g, world.Pos(0, 0), world.Right), "Empty must admit")
	assert.True(t, CanEnter(g, world.Pos(0, 1), world.Down), "Pickup must admit")
}

func TestCanEnter_DoorNeedsOpened(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())
	door := world.Pos(1, 2)

	tests := []struct {
		state entities.DoorState
		want  bool
	}{
		{entities.DoorClosed, false},
		{entities.DoorSealed, false},
		{entities.DoorOpened, true},
	}
	for _, tt := range tests {
		g.Registry.Door(door).State = tt.state
		if got := CanEnter(g, world.Pos(1, 1), world.Right); got != tt.want {
			t.Errorf("CanEnter(door %v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestCanEnter_FinishNeedsSuperPickups(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())
	from := world.Pos(2, 1)

	g.Puzzles.Super().PickupCount = 2
	assert.False(t, CanEnter(g, from, world.Right))

	g.Puzzles.Super().PickupCount = 0
	assert.True(t, CanEnter(g, from, world.Right))
}

func TestCanEnter_StartOnlyInFirstInitialRoom(t *testing.T) {
	g, _ := newDefaultGame(t)
	from := world.Pos(3, 2)

	assert.True(t, CanEnter(g, from, world.Left), "first initial room may walk back over the start")

	require.NoError(t, SetCurrentPuzzle(g, 1, 0, -3))
	assert.False(t, CanEnter(g, from, world.Left), "start is closed from every other room")
}

func TestCanEnter_TurnAdmission(t *testing.T) {
	admitted := map[world.CellType][]world.Direction{
		world.Turn00: {world.Right, world.Down},
		world.Turn01: {world.Left, world.Down},
		world.Turn10: {world.Right, world.Up},
		world.Turn11: {world.Left, world.Up},
	}

	for shape, dirs := range admitted {
		for _, dir := range world.AllDirections() {
			g, _ := newTestGame(t, "3 3 . . . . . . . S .", tinyLayout())
			PlaceTurn(g, world.Pos(1, 1), shape)

			from := world.Pos(1, 1).Sub(dir)
			want := dir == dirs[0] || dir == dirs[1]
			if got := CanEnter(g, from, dir); got != want {
				t.Errorf("CanEnter(%v heading %v) = %v, want %v", shape, dir, got, want)
			}
		}
	}
}

func TestDeflect(t *testing.T) {
	tests := []struct {
		shape world.CellType
		in    world.Direction
		out   world.Direction
	}{
		{world.Turn00, world.Right, world.Up},
		{world.Turn00, world.Down, world.Left},
		{world.Turn01, world.Left, world.Up},
		{world.Turn01, world.Down, world.Right},
		{world.Turn10, world.Right, world.Down},
		{world.Turn10, world.Up, world.Left},
		{world.Turn11, world.Left, world.Down},
		{world.Turn11, world.Up, world.Right},
		{world.Turn00, world.Up, world.Up},
	}
	for _, tt := range tests {
		if got := Deflect(tt.shape, tt.in); got != tt.out {
			t.Errorf("Deflect(%v, %v) = %v, want %v", tt.shape, tt.in, got, tt.out)
		}
	}
}

func TestActOnCurrentCell(t *testing.T) {
	t.Run("finish stops", func(t *testing.T) {
		g, _ := newTestGame(t, tinyMap, tinyLayout())
		assert.False(t, ActOnCurrentCell(g, world.Pos(2, 2), world.Right))
	})

	t.Run("turn deflects and cues", func(t *testing.T) {
		g, rec := newTestGame(t, tinyMap, tinyLayout())
		PlaceTurn(g, world.Pos(0, 1), world.Turn10)
		g.Player.Direction = world.Right

		assert.True(t, ActOnCurrentCell(g, world.Pos(0, 1), world.Right))
		assert.Equal(t, world.Down, g.Player.Direction)
		assert.Equal(t, 1, rec.Count(audio.CueTurn))
	})

	t.Run("opened door ends the run only after moving", func(t *testing.T) {
		g, _ := newTestGame(t, tinyMap, tinyLayout())
		door := world.Pos(1, 2)
		g.Registry.Door(door).State = entities.DoorOpened

		g.Player.PrevPosition = door
		assert.True(t, ActOnCurrentCell(g, door, world.Right), "standing on the entry door continues")

		g.Player.PrevPosition = world.Pos(0, 0)
		assert.False(t, ActOnCurrentCell(g, door, world.Right), "arriving on an opened door transits")
	})

	t.Run("closed door continues", func(t *testing.T) {
		g, _ := newTestGame(t, tinyMap, tinyLayout())
		assert.True(t, ActOnCurrentCell(g, world.Pos(1, 2), world.Right))
	})
}

// Walks the 3x3 room: right onto a turn, down through the pickup which opens
// the door, then right onto the finish.
func TestScenario_TinyRoomWins(t *testing.T) {
	g, rec := newTestGame(t, tinyMap, tinyLayout())
	placeTurns(g, map[world.Position]world.CellType{
		world.Pos(0, 1): world.Turn10,
		world.Pos(2, 1): world.Turn01,
	})

	outcome := runToEnd(t, g)

	assert.Equal(t, OutcomeWon, outcome)
	assert.Equal(t, state.ModeWon, g.Mode)
	assert.Equal(t, world.Pos(2, 2), g.Player.Position)
	assert.Equal(t, entities.DoorOpened, g.Registry.Door(world.Pos(1, 2)).State, "door opened before the finish")
	assert.Equal(t, 0, g.CurrentPuzzle.PickupCount)
	assert.Equal(t, world.Empty, g.Grid.TypeAt(world.Pos(1, 1)))
	assert.Nil(t, g.Registry.Pickup(world.Pos(1, 1)))
	assert.Equal(t, []audio.Cue{audio.CueTurn, audio.CueDoors, audio.CueTurn}, rec.Cues())
}

func TestScenario_BlockStopsRun(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())

	outcome := runToEnd(t, g)

	assert.Equal(t, OutcomeInvalidTransition, outcome)
	assert.Equal(t, state.ModeStopped, g.Mode)
	assert.Equal(t, world.Pos(0, 1), g.Player.Position, "player stays in front of the block")
	assert.False(t, g.Player.Walking)
}

func TestTick_IdleOutsideRunning(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())
	outcome, err := Tick(g, 1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIdle, outcome)
	assert.Equal(t, world.Pos(0, 0), g.Player.Position)
}

func TestTick_StepTakesSpeedTime(t *testing.T) {
	g, _ := newTestGame(t, tinyMap, tinyLayout())
	g.Player.Speed = 2
	require.True(t, CommitRun(g))

	outcome, err := Tick(g, 0.1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWalking, outcome)
	assert.Equal(t, world.Pos(0, 1), g.Player.Position)
	assert.True(t, g.Player.Walking, "a half-second step is still under way after 0.1s")

	_, err = Tick(g, 0.5)
	require.NoError(t, err)
	assert.False(t, g.Player.Walking)
	assert.Equal(t, world.Pos(0, 1), g.Player.Position, "rules only run once the step has finished")
}

func TestMoveForward_StartsAStep(t *testing.T) {
	g, _ := newDefaultGame(t)
	before := g.Revision

	MoveForward(g)

	assert.Equal(t, world.Pos(3, 2), g.Player.Position)
	assert.True(t, g.Player.Walking)
	assert.Greater(t, g.Revision, before)
}
