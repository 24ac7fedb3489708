package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/state"
)

func doorState(t *testing.T, g *state.Game, pos world.Position) entities.DoorState {
	t.Helper()
	d := g.Door(pos)
	require.NotNil(t, d, "no door at %v", pos)
	return d.State
}

func TestChangeDoorState_SealedIsAbsorbing(t *testing.T) {
	g, _ := newDefaultGame(t)
	pos := world.Pos(3, 5)

	require.True(t, ChangeDoorState(g, pos, entities.DoorSealed, false))
	assert.False(t, ChangeDoorState(g, pos, entities.DoorOpened, true))
	assert.False(t, ChangeDoorState(g, pos, entities.DoorClosed, true))
	assert.Equal(t, entities.DoorSealed, doorState(t, g, pos))
}

func TestChangeDoorState_NoDoor(t *testing.T) {
	g, _ := newDefaultGame(t)
	assert.False(t, ChangeDoorState(g, world.Pos(3, 2), entities.DoorOpened, true))
}

func TestSealOnExit(t *testing.T) {
	t.Run("no entry door seals only the exit", func(t *testing.T) {
		g, _ := newDefaultGame(t)
		SealOnExit(g, world.Pos(3, 1), world.Pos(3, 5))
		assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(3, 5)))
	})

	t.Run("straight through seals only the exit", func(t *testing.T) {
		g, _ := newDefaultGame(t)
		require.NoError(t, SetCurrentPuzzle(g, 1, 0, -3))

		SealOnExit(g, world.Pos(3, 5), world.Pos(2, 10))

		assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(2, 10)))
		assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(3, 5)))
	})

	t.Run("turning between door axes seals the other doors", func(t *testing.T) {
		g, _ := newDefaultGame(t)
		require.NoError(t, SetCurrentPuzzle(g, 1, 1, 1))

		// enter from the left wall, leave through the bottom wall
		SealOnExit(g, world.Pos(7, 25), world.Pos(10, 28))

		assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(5, 28)))
		assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(7, 30)))
		assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(7, 25)))
		assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(10, 28)))
	})

	t.Run("leaving the super entry room seals the other doors", func(t *testing.T) {
		g, _ := newDefaultGame(t)
		require.NoError(t, SetCurrentPuzzle(g, 1, 0, 0))

		SealOnExit(g, world.Pos(1, 20), world.Pos(2, 25))

		assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(5, 23)))
		assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(2, 25)))
	})
}

func TestResetDoorsOnEntry(t *testing.T) {
	g, _ := newDefaultGame(t)
	require.NoError(t, SetCurrentPuzzle(g, 1, 1, 0))
	ChangeDoorState(g, world.Pos(5, 23), entities.DoorOpened, true)
	ChangeDoorState(g, world.Pos(7, 25), entities.DoorSealed, true)

	resetDoorsOnEntry(g)
	assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(5, 23)))
	assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(7, 25)))

	g.CurrentPuzzle.PickupCount = 0
	resetDoorsOnEntry(g)
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(5, 23)))
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(10, 23)))
	assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(7, 25)))
}

func TestApplyPickup_UnlocksDoorsAtZero(t *testing.T) {
	g, rec := newDefaultGame(t)
	require.NoError(t, SetCurrentPuzzle(g, 1, 0, -2))
	require.Equal(t, 2, g.CurrentPuzzle.PickupCount)

	assert.Equal(t, EffectPickupCollected, ApplyPickup(g, world.Pos(2, 12)))
	assert.Equal(t, 1, g.CurrentPuzzle.PickupCount)
	assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(4, 15)))

	assert.Equal(t, EffectDoorsUnlocked, ApplyPickup(g, world.Pos(3, 13)))
	assert.Equal(t, 0, g.CurrentPuzzle.PickupCount)
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(2, 10)))
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(4, 15)))

	assert.Equal(t, []audio.Cue{audio.CuePickup, audio.CueDoors}, rec.Cues())
	assert.Equal(t, world.Empty, g.Grid.TypeAt(world.Pos(3, 13)))
	assert.Nil(t, g.Registry.Pickup(world.Pos(3, 13)))
}

func TestApplyPickup_OnlyPickupCells(t *testing.T) {
	g, _ := newDefaultGame(t)
	assert.Equal(t, EffectNone, ApplyPickup(g, world.Pos(3, 2)))
	assert.Equal(t, 1, g.CurrentPuzzle.PickupCount)
}

func TestApplyPickup_CountNeverNegative(t *testing.T) {
	g, _ := newDefaultGame(t)
	g.CurrentPuzzle.PickupCount = 0

	assert.Equal(t, EffectPickupCollected, ApplyPickup(g, world.Pos(3, 3)))
	assert.Equal(t, 0, g.CurrentPuzzle.PickupCount)
	assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(3, 5)), "doors only open on the transition to zero")
}

func TestApplyPickup_SuperPickup(t *testing.T) {
	g, _ := newDefaultGame(t)
	require.NoError(t, SetCurrentPuzzle(g, 1, 0, 1))
	require.Equal(t, 5, g.Puzzles.Super().PickupCount)

	assert.Equal(t, EffectDoorsUnlocked, ApplyPickup(g, world.Pos(1, 28)))
	assert.Equal(t, 4, g.Puzzles.Super().PickupCount)
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(5, 28)))

	// an ordinary pickup leaves the super-puzzle alone
	require.NoError(t, SetCurrentPuzzle(g, 1, 0, 0))
	ApplyPickup(g, world.Pos(3, 23))
	assert.Equal(t, 4, g.Puzzles.Super().PickupCount)
}

func TestChangeCurrentDoorsStates(t *testing.T) {
	g, _ := newDefaultGame(t)
	require.NoError(t, SetCurrentPuzzle(g, 1, 0, -3))
	require.True(t, ChangeDoorState(g, world.Pos(3, 5), entities.DoorSealed, false))

	assert.Equal(t, 1, ChangeCurrentDoorsStates(g, entities.DoorOpened, true))
	assert.Equal(t, entities.DoorSealed, doorState(t, g, world.Pos(3, 5)))
	assert.Equal(t, entities.DoorOpened, doorState(t, g, world.Pos(2, 10)))

	assert.Equal(t, 2, ChangeCurrentDoorsStates(g, entities.DoorClosed, false))
	assert.Equal(t, entities.DoorClosed, doorState(t, g, world.Pos(3, 5)))

	g.CurrentPuzzle = nil
	assert.Zero(t, ChangeCurrentDoorsStates(g, entities.DoorOpened, false))
}

// strayDoorMap has a door below the initial corridor, where no room lies
// beyond it
const strayDoorMap = `8 3
S . .
. . .
. . .
. . .
. . .
. . .
. . .
. D .
`

func TestCrossDoor_UnknownRoomLeavesDoorsAlone(t *testing.T) {
	g, _ := newTestGame(t, strayDoorMap, tinyLayout())
	door := world.Pos(7, 1)
	g.Player.Teleport(door, world.Down)
	g.Player.PrevPosition = world.Pos(6, 1)
	g.Mode = state.ModeRunning

	outcome, err := crossDoor(g)

	var lookup *puzzle.PuzzleLookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, OutcomeInvalidTransition, outcome)
	assert.Equal(t, state.ModeStopped, g.Mode)
	assert.Equal(t, entities.DoorClosed, doorState(t, g, door))
}
