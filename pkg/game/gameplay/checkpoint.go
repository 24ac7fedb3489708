package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/checkpoint"
	"puzzlerooms/pkg/game/state"
)

// Capture copies the mutable world into a snapshot
func Capture(g *state.Game) *checkpoint.Snapshot {
	snap := &checkpoint.Snapshot{
		PlayerPosition:      g.Player.Position,
		PlayerDirection:     g.Player.Direction,
		Cells:               make([][]checkpoint.CellState, g.Grid.Rows()),
		InitialPickupCounts: g.Puzzles.InitialCounts(),
		PickupCounts:        g.Puzzles.Counts(),
		InitialHidden:       g.InitialHidden,
	}
	if g.CurrentPuzzle != nil {
		snap.PuzzleLevel = g.CurrentPuzzle.Level
		snap.PuzzlePosition = g.CurrentPuzzle.Position
	}

	for r := range snap.Cells {
		snap.Cells[r] = make([]checkpoint.CellState, g.Grid.Cols())
	}
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		cs := checkpoint.CellState{Type: cell.Type}
		if door := g.Registry.Door(cell.Position); door != nil && cell.Type == world.Door {
			cs.DoorState = door.State
			cs.DoorType = door.Type
		}
		snap.Cells[row][col] = cs
	})

	return snap
}

// SaveState pushes a checkpoint of the current world
func SaveState(g *state.Game) {
	g.Checkpoints.Push(Capture(g))
	g.Log.WithField("depth", g.Checkpoints.Len()).Debug("checkpoint saved")
}

// RestoreState rewinds to the latest checkpoint and returns to editing.
// The oldest checkpoint is never discarded, so restoring always succeeds once
// the game has been built.
func RestoreState(g *state.Game) bool {
	snap := g.Checkpoints.Latest()
	if snap == nil {
		return false
	}
	Apply(g, snap)
	g.Mode = state.ModeEditing
	g.MarkerVisible = true
	logMessage(g, "%s", gotext.Get(msgRestored))
	g.Log.WithFields(logrus.Fields{
		"depth":  g.Checkpoints.Len(),
		"puzzle": g.CurrentPuzzle.String(),
	}).Info("checkpoint restored")
	return true
}

// Apply writes a snapshot back into the world: cells, companions, player,
// current puzzle and pickup counts
func Apply(g *state.Game, snap *checkpoint.Snapshot) {
	g.Player.Teleport(snap.PlayerPosition, snap.PlayerDirection)

	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		cs, ok := snap.CellAt(cell.Position)
		if !ok {
			return
		}
		g.Grid.SetType(cell.Position, cs.Type)
		g.Registry.Sync(cell)
		if cs.Type == world.Door {
			door := g.Registry.Door(cell.Position)
			door.State = cs.DoorState
			door.Type = cs.DoorType
		}
	})
	showAllPickups(g)

	if err := SetCurrentPuzzle(g, snap.PuzzleLevel, snap.PuzzlePosition.Row, snap.PuzzlePosition.Col); err != nil {
		g.Log.WithError(err).Warn("checkpoint names an unknown puzzle")
	}
	g.Puzzles.SetCounts(snap.PickupCounts, snap.InitialPickupCounts)
	g.InitialHidden = snap.InitialHidden
	g.Touch()
}
