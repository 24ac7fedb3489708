// Package entities contains the companion objects that sit on top of grid cells:
// doors, turn markers, pickups and the player token.
package entities

import "puzzlerooms/pkg/engine/world"

// DoorState is the open/closed/sealed state of a door
type DoorState int

const (
	DoorOpened DoorState = iota
	DoorClosed
	DoorSealed
)

func (s DoorState) String() string {
	switch s {
	case DoorOpened:
		return "Opened"
	case DoorClosed:
		return "Closed"
	case DoorSealed:
		return "Sealed"
	default:
		return "Unknown"
	}
}

// DoorType is the axis a door is crossed along
type DoorType int

const (
	DoorHorizontal DoorType = iota
	DoorVertical
)

func (t DoorType) String() string {
	if t == DoorVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// DoorTypeForRow derives a door's type from the row it sits on.
// Doors on the horizontal walls between rooms (every fifth row) are crossed vertically.
func DoorTypeForRow(row int) DoorType {
	if row%5 == 0 {
		return DoorVertical
	}
	return DoorHorizontal
}

// Door is the companion of a Door cell
type Door struct {
	Position world.Position
	State    DoorState
	Type     DoorType
}

// NewDoor creates a new closed door at the given position
func NewDoor(pos world.Position) *Door {
	return &Door{
		Position: pos,
		State:    DoorClosed,
		Type:     DoorTypeForRow(pos.Row),
	}
}

// IsSealed returns true once the door can no longer change state by normal play
func (d *Door) IsSealed() bool {
	return d.State == DoorSealed
}

// IsOpen returns true if the door may be walked through
func (d *Door) IsOpen() bool {
	return d.State == DoorOpened
}

// SetState changes the door state. With ignoreIfSealed a sealed door is left
// untouched. Returns true if the state was applied.
func (d *Door) SetState(state DoorState, ignoreIfSealed bool) bool {
	if ignoreIfSealed && d.IsSealed() {
		return false
	}
	d.State = state
	return true
}
