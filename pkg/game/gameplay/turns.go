package gameplay

import (
	"puzzlerooms/pkg/engine/world"
)

type rotation int

const (
	rotateLeft rotation = iota
	rotateRight
)

// turnRule is one admissible entry into a turn cell and how it deflects the player
type turnRule struct {
	from   world.Direction
	rotate rotation
}

// turnRules lists, per turn shape, the two headings it can be entered with.
// Entering with any other heading is blocked by CanEnter.
var turnRules = map[world.CellType][2]turnRule{
	world.Turn00: {{world.Right, rotateLeft}, {world.Down, rotateRight}},
	world.Turn01: {{world.Left, rotateRight}, {world.Down, rotateLeft}},
	world.Turn10: {{world.Right, rotateRight}, {world.Up, rotateLeft}},
	world.Turn11: {{world.Left, rotateLeft}, {world.Up, rotateRight}},
}

// Admits reports whether a turn cell may be entered heading dir
func Admits(t world.CellType, dir world.Direction) bool {
	rules, ok := turnRules[t]
	if !ok {
		return false
	}
	return rules[0].from == dir || rules[1].from == dir
}

// Deflect returns the heading after passing through a turn cell entered
// heading dir. Headings the turn does not admit pass through unchanged.
func Deflect(t world.CellType, dir world.Direction) world.Direction {
	for _, r := range turnRules[t] {
		if r.from != dir {
			continue
		}
		if r.rotate == rotateLeft {
			return dir.TurnLeft()
		}
		return dir.TurnRight()
	}
	return dir
}

// nextTurnShape is the editing cycle Empty -> Turn00 -> Turn01 -> Turn11 -> Turn10 -> Turn00
func nextTurnShape(t world.CellType) world.CellType {
	switch t {
	case world.Turn00:
		return world.Turn01
	case world.Turn01:
		return world.Turn11
	case world.Turn11:
		return world.Turn10
	default:
		return world.Turn00
	}
}
