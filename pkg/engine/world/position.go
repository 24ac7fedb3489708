package world

import "fmt"

// Position is a 0-based (row, col) grid address
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the neighbouring position one step in the given direction
func (p Position) Add(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Sub returns the position one step against the given direction
func (p Position) Sub(dir Direction) Position {
	return p.Add(dir.Opposite())
}

// IsZero reports whether the position is (0, 0)
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Vec3 is a world-space coordinate. Y grows upward.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// WorldPosition maps a grid position to the centre of its world-space tile
// for a grid with the given number of rows.
func WorldPosition(rows int, p Position) Vec3 {
	return Vec3{
		X: float64(p.Col) + 0.5,
		Y: float64(rows) - 0.5 - float64(p.Row),
	}
}

// PositionAt maps a world-space point back to the grid position containing it.
// The result may lie outside the grid.
func PositionAt(rows int, x, y float64) Position {
	return Position{
		Row: rows - 1 - floor(y),
		Col: floor(x),
	}
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
