package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/state"
)

// PickupEffect is the signal produced by collecting a pickup
type PickupEffect int

const (
	EffectNone PickupEffect = iota
	EffectPickupCollected
	EffectDoorsUnlocked
)

func (e PickupEffect) String() string {
	switch e {
	case EffectPickupCollected:
		return "PickupCollected"
	case EffectDoorsUnlocked:
		return "DoorsUnlocked"
	default:
		return "None"
	}
}

// ApplyPickup collects the pickup at pos for the current puzzle, and for the
// super-puzzle when pos is one of its pickups. The room's doors open when its
// count reaches zero.
func ApplyPickup(g *state.Game, pos world.Position) PickupEffect {
	if !g.Grid.CellAt(pos).Is(world.Pickup) {
		return EffectNone
	}

	g.Grid.SetType(pos, world.Empty)
	g.Registry.RemovePickup(pos)
	g.Touch()

	if g.Puzzles.IsSuperPickup(pos) {
		if sp := g.Puzzles.Super(); sp.PickupCount > 0 {
			sp.PickupCount--
		}
	}

	p := g.CurrentPuzzle
	if p != nil && p.PickupCount > 0 {
		p.PickupCount--
		if p.PickupCount == 0 {
			opened := ChangeCurrentDoorsStates(g, entities.DoorOpened, true)
			g.Log.WithFields(logrus.Fields{"puzzle": p.String(), "doors": opened}).Info("puzzle complete")
			g.Play(audio.CueDoors)
			logMessage(g, "%s DOOR{%d}", gotext.Get(msgDoorsUnlocked), opened)
			return EffectDoorsUnlocked
		}
	}

	remaining := 0
	if p != nil {
		remaining = p.PickupCount
	}
	g.Play(audio.CuePickup)
	logMessage(g, "%s ITEM{%d}", gotext.Get(msgPickup), remaining)
	return EffectPickupCollected
}
