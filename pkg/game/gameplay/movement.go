package gameplay

import (
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/state"
)

// ActOnCurrentCell runs the effect of the cell the player is resting on.
// It returns false when the run cannot simply continue: the Finish was
// reached, or an opened door was walked onto and the room transition must run.
func ActOnCurrentCell(g *state.Game, pos world.Position, dir world.Direction) bool {
	cell := g.Grid.CellAt(pos)
	if cell == nil {
		return true
	}

	switch {
	case cell.Type == world.Finish:
		return false

	case cell.Type == world.Door:
		door := g.Registry.Door(pos)
		if door != nil && door.IsOpen() && pos != g.Player.PrevPosition {
			return false
		}

	case cell.Type == world.Pickup:
		ApplyPickup(g, pos)

	case cell.Type.IsTurn():
		g.Player.Direction = Deflect(cell.Type, dir)
		g.Play(audio.CueTurn)
		g.Touch()
	}

	return true
}

// CanEnter checks whether the player may step from pos onto the next cell heading dir
func CanEnter(g *state.Game, pos world.Position, dir world.Direction) bool {
	next := g.Grid.CellAt(pos.Add(dir))
	if next == nil {
		return false
	}

	switch t := next.Type; {
	case t == world.Block:
		return false
	case t == world.Start:
		return g.Puzzles.IsFirstInitial(g.CurrentPuzzle)
	case t == world.Finish:
		return g.Puzzles.Super().PickupCount == 0
	case t == world.Door:
		door := g.Registry.Door(next.Position)
		return door != nil && door.IsOpen()
	case t.IsTurn():
		return Admits(t, dir)
	}

	return true
}

// MoveForward starts the player's step onto the next cell
func MoveForward(g *state.Game) {
	g.Player.GoForward()
	g.Touch()
}
