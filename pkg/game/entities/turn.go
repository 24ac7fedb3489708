package entities

import "puzzlerooms/pkg/engine/world"

// Turn is the marker placed on a quarter-turn mirror cell
type Turn struct {
	Position world.Position
	Shape    world.CellType
}

// NewTurn creates a turn marker. Shape must be one of the four turn cell types.
func NewTurn(pos world.Position, shape world.CellType) *Turn {
	return &Turn{Position: pos, Shape: shape}
}

// Glyph returns a box-drawing glyph showing which two sides the mirror joins
func (t *Turn) Glyph() string {
	switch t.Shape {
	case world.Turn00:
		return "┘"
	case world.Turn01:
		return "└"
	case world.Turn10:
		return "┐"
	case world.Turn11:
		return "┌"
	default:
		return "?"
	}
}
