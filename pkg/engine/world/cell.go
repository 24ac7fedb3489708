// Package world provides the tile grid: cell types, positions, directions and
// the text map format.
package world

// CellType is the closed set of tile kinds a cell can hold.
// The numeric order is part of the model: the four turn shapes are contiguous.
type CellType int

const (
	Empty CellType = iota
	Start
	Finish
	Block
	Pickup
	Turn00
	Turn01
	Turn10
	Turn11
	Door
)

// AllCellTypes returns every cell type in numeric order
func AllCellTypes() []CellType {
	return []CellType{Empty, Start, Finish, Block, Pickup, Turn00, Turn01, Turn10, Turn11, Door}
}

// IsTurn reports whether the type is one of the four quarter-turn shapes
func (t CellType) IsTurn() bool {
	return t >= Turn00 && t <= Turn11
}

// String returns the string representation of a cell type
func (t CellType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	case Block:
		return "Block"
	case Pickup:
		return "Pickup"
	case Turn00:
		return "Turn00"
	case Turn01:
		return "Turn01"
	case Turn10:
		return "Turn10"
	case Turn11:
		return "Turn11"
	case Door:
		return "Door"
	default:
		return "Unknown"
	}
}

// Cell represents a single tile in the grid.
// Position and World never change after load; Type does.
type Cell struct {
	Type     CellType
	Position Position
	World    Vec3
}

// NewCell creates a new cell at the given position of a grid with the given row count
func NewCell(rows int, pos Position, t CellType) *Cell {
	return &Cell{
		Type:     t,
		Position: pos,
		World:    WorldPosition(rows, pos),
	}
}

// Is reports whether the cell is non-nil and of the given type
func (c *Cell) Is(t CellType) bool {
	return c != nil && c.Type == t
}
