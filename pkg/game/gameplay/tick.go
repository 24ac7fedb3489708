package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/state"
)

// Outcome is what a simulation tick did
type Outcome int

const (
	// OutcomeIdle means the map is not running
	OutcomeIdle Outcome = iota
	// OutcomeWalking means a step is in progress or was just started
	OutcomeWalking
	// OutcomeInvalidTransition means the next cell rejected the player and the run stopped
	OutcomeInvalidTransition
	// OutcomeEnteredPuzzle means the player crossed a door into another room
	OutcomeEnteredPuzzle
	// OutcomeWon means the player reached the Finish
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "Idle"
	case OutcomeWalking:
		return "Walking"
	case OutcomeInvalidTransition:
		return "InvalidTransition"
	case OutcomeEnteredPuzzle:
		return "EnteredPuzzle"
	case OutcomeWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Tick advances a running map by dt seconds. Cell rules are evaluated only
// while the player is at rest on a cell.
func Tick(g *state.Game, dt float32) (Outcome, error) {
	if g.Mode != state.ModeRunning {
		return OutcomeIdle, nil
	}

	if !g.Player.Walking {
		outcome, err := step(g)
		if err != nil {
			return outcome, err
		}
		if outcome != OutcomeWalking {
			g.Log.WithFields(logrus.Fields{"outcome": outcome.String(), "pos": g.Player.Position.String()}).Debug("run step")
			return outcome, nil
		}
	}

	g.Player.Advance(dt)
	g.Touch()
	return OutcomeWalking, nil
}

// RunUntilSettled ticks until the map leaves Running or maxTicks is reached
// and returns the last outcome
func RunUntilSettled(g *state.Game, dt float32, maxTicks int) (Outcome, error) {
	last := OutcomeIdle
	for i := 0; i < maxTicks && g.Mode == state.ModeRunning; i++ {
		outcome, err := Tick(g, dt)
		if err != nil {
			return outcome, err
		}
		last = outcome
	}
	return last, nil
}

func step(g *state.Game) (Outcome, error) {
	p := g.Player

	if !ActOnCurrentCell(g, p.Position, p.Direction) {
		p.Stop()
		cell := g.Grid.CellAt(p.Position)
		switch {
		case cell.Is(world.Door):
			return crossDoor(g)
		case cell.Is(world.Finish):
			PreviewSuperPuzzle(g)
			g.Mode = state.ModeWon
			logMessage(g, "%s", gotext.Get(msgWon))
			g.Log.Info("finish reached")
			return OutcomeWon, nil
		default:
			g.Mode = state.ModeStopped
			return OutcomeInvalidTransition, nil
		}
	}

	if !CanEnter(g, p.Position, p.Direction) {
		p.Stop()
		g.Mode = state.ModeStopped
		g.Touch()
		logMessage(g, "%s", gotext.Get(msgRunBlocked))
		return OutcomeInvalidTransition, nil
	}

	MoveForward(g)
	return OutcomeWalking, nil
}

// crossDoor completes a walk onto an opened door: find the room on the other
// side, seal the room being left, move in and hand control back to the editor.
// Nothing is sealed when no room lies beyond the door.
func crossDoor(g *state.Game) (Outcome, error) {
	p := g.Player
	next, err := g.Puzzles.PuzzleFor(p.Position, p.Direction)
	if err != nil {
		g.Mode = state.ModeStopped
		return OutcomeInvalidTransition, fmt.Errorf("crossing door at %v: %w", p.Position, err)
	}
	SealOnExit(g, p.PrevPosition, p.Position)

	if err := SetCurrentPuzzle(g, next.Level, next.Position.Row, next.Position.Col); err != nil {
		g.Mode = state.ModeStopped
		return OutcomeInvalidTransition, err
	}
	resetDoorsOnEntry(g)

	g.Log.WithFields(logrus.Fields{"puzzle": next.String(), "door": p.Position.String()}).Info("entered puzzle")

	if g.Puzzles.IsSuperEntry(next) {
		g.Checkpoints.Reset()
		HideInitialPuzzles(g)
		SaveState(g)
		PreviewSuperPuzzle(g)
		logMessage(g, "%s", gotext.Get(msgSuperReached))
		return OutcomeEnteredPuzzle, nil
	}

	g.Mode = state.ModeEditing
	logMessage(g, "%s ROOM{%d %d}", gotext.Get(msgEnteredPuzzle), next.Position.Row, next.Position.Col)
	return OutcomeEnteredPuzzle, nil
}
