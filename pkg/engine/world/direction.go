package world

// Direction represents one of the four unit headings on the grid
type Direction int

// Direction constants, clockwise from Up
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four headings
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// TurnLeft rotates a quarter turn counter-clockwise: (r, c) -> (-c, r)
func (d Direction) TurnLeft() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 3) % 4
}

// TurnRight rotates a quarter turn clockwise: (r, c) -> (c, -r)
func (d Direction) TurnRight() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % 4
}

// Delta returns the row and column offsets for this direction.
// Rows grow downward, so Up is a negative row offset.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection converts a direction name back to a Direction
func ParseDirection(s string) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}
