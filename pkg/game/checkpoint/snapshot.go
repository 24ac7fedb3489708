// Package checkpoint stores full copies of the mutable world for undo and reset.
package checkpoint

import (
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/entities"
)

// CellState is the saved state of one cell
type CellState struct {
	Type      world.CellType
	DoorState entities.DoorState
	DoorType  entities.DoorType
}

// Snapshot is a deep copy of everything restore needs.
// Companion objects are not stored; they are rebuilt from the cell states.
type Snapshot struct {
	PlayerPosition  world.Position
	PlayerDirection world.Direction

	PuzzleLevel    int
	PuzzlePosition world.Position

	Cells [][]CellState

	InitialPickupCounts []int
	PickupCounts        [][][]int

	InitialHidden bool
}

// Clone returns an independent copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	out := *s

	out.Cells = make([][]CellState, len(s.Cells))
	for r := range s.Cells {
		out.Cells[r] = append([]CellState(nil), s.Cells[r]...)
	}

	out.InitialPickupCounts = append([]int(nil), s.InitialPickupCounts...)

	out.PickupCounts = make([][][]int, len(s.PickupCounts))
	for l := range s.PickupCounts {
		out.PickupCounts[l] = make([][]int, len(s.PickupCounts[l]))
		for r := range s.PickupCounts[l] {
			out.PickupCounts[l][r] = append([]int(nil), s.PickupCounts[l][r]...)
		}
	}

	return &out
}

// CellAt returns the saved state at pos and whether pos was inside the saved grid
func (s *Snapshot) CellAt(pos world.Position) (CellState, bool) {
	if pos.Row < 0 || pos.Row >= len(s.Cells) || pos.Col < 0 || pos.Col >= len(s.Cells[pos.Row]) {
		return CellState{}, false
	}
	return s.Cells[pos.Row][pos.Col], true
}
