// Package puzzle indexes the rooms ("puzzles") of every zoom level and
// resolves grid coordinates to the room that owns them.
package puzzle

import (
	"fmt"

	"puzzlerooms/pkg/engine/world"
)

// Puzzle is one room at one zoom level
type Puzzle struct {
	Level    int
	Position world.Position
	World    world.Vec3

	PickupCount int

	UpDoor    *world.Position
	DownDoor  *world.Position
	LeftDoor  *world.Position
	RightDoor *world.Position
}

// Doors returns the configured door positions in Up, Down, Left, Right order
func (p *Puzzle) Doors() []world.Position {
	out := make([]world.Position, 0, 4)
	for _, d := range []*world.Position{p.UpDoor, p.DownDoor, p.LeftDoor, p.RightDoor} {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// HasDoor reports whether pos is one of this puzzle's doors
func (p *Puzzle) HasDoor(pos world.Position) bool {
	for _, d := range p.Doors() {
		if d == pos {
			return true
		}
	}
	return false
}

// IsInitial reports whether this is one of the tutorial rooms
func (p *Puzzle) IsInitial() bool {
	return p.Position.Col < 0
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("L%d(%d,%d)", p.Level, p.Position.Row, p.Position.Col)
}

// PuzzleLookupError reports a grid coordinate or address that resolves to no puzzle
type PuzzleLookupError struct {
	Level     int
	Position  world.Position
	Direction world.Direction
	Reason    string
}

func (e *PuzzleLookupError) Error() string {
	return fmt.Sprintf("no puzzle at level %d for %v heading %v: %s", e.Level, e.Position, e.Direction, e.Reason)
}
