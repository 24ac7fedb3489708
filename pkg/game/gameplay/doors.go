package gameplay

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/state"
)

// ChangeDoorState sets the door at pos. With ignoreIfSealed a sealed door is
// left alone. Returns true if a door was changed.
func ChangeDoorState(g *state.Game, pos world.Position, s entities.DoorState, ignoreIfSealed bool) bool {
	door := g.Registry.Door(pos)
	if door == nil {
		return false
	}
	before := door.State
	if !door.SetState(s, ignoreIfSealed) {
		return false
	}
	if before != s {
		g.Log.WithFields(logrus.Fields{"door": pos.String(), "from": before.String(), "to": s.String()}).Debug("door state changed")
		g.Touch()
	}
	return true
}

// ChangeCurrentDoorsStates applies a state to every configured door of the current puzzle
func ChangeCurrentDoorsStates(g *state.Game, s entities.DoorState, ignoreIfSealed bool) int {
	if g.CurrentPuzzle == nil {
		return 0
	}
	n := 0
	for _, pos := range g.CurrentPuzzle.Doors() {
		if ChangeDoorState(g, pos, s, ignoreIfSealed) {
			n++
		}
	}
	return n
}

// SealOnExit seals doors of the current puzzle as the player leaves it through
// the door at to, having entered at from.
// Without an entry door only the exit is sealed. A turn between door axes, or
// leaving the super-puzzle entry room, seals every other door of the room.
// Otherwise only the exit is sealed.
func SealOnExit(g *state.Game, from, to world.Position) {
	fromDoor := g.Registry.Door(from)
	if fromDoor == nil {
		ChangeDoorState(g, to, entities.DoorSealed, false)
		return
	}

	toDoor := g.Registry.Door(to)
	if g.CurrentPuzzle != nil &&
		(toDoor == nil || fromDoor.Type != toDoor.Type || g.Puzzles.IsSuperEntry(g.CurrentPuzzle)) {
		keep := mapset.New[world.Position]()
		keep.Put(from)
		keep.Put(to)
		for _, pos := range g.CurrentPuzzle.Doors() {
			if !keep.Has(pos) {
				ChangeDoorState(g, pos, entities.DoorSealed, false)
			}
		}
		return
	}

	ChangeDoorState(g, to, entities.DoorSealed, false)
}

// resetDoorsOnEntry closes the non-sealed doors of the room just entered, or
// opens them if its pickups are already collected
func resetDoorsOnEntry(g *state.Game) {
	s := entities.DoorClosed
	if g.CurrentPuzzle != nil && g.CurrentPuzzle.PickupCount == 0 {
		s = entities.DoorOpened
	}
	ChangeCurrentDoorsStates(g, s, true)
}
