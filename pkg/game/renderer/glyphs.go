package renderer

import (
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/state"
)

// Icons used by the text frontends
const (
	PlayerIcon       = "@"
	IconWall         = "▒"
	IconFloor        = "·"
	IconVoid         = " "
	IconStart        = "S"
	IconExitLocked   = "▲" // Finish while super-puzzle pickups remain
	IconExitUnlocked = "△" // Finish once every super-puzzle pickup is collected
	IconPickup       = "◆"
	IconDoorClosed   = "▣"
	IconDoorOpened   = "□"
	IconDoorSealed   = "■"
)

// CellGlyph returns the icon and text style for a cell, without the player
func CellGlyph(g *state.Game, cell *world.Cell) (string, TextStyle) {
	if cell == nil {
		return IconVoid, StyleNormal
	}

	switch {
	case cell.Type == world.Block:
		return IconWall, StyleSubtle
	case cell.Type == world.Start:
		return IconStart, StyleCell
	case cell.Type == world.Finish:
		if g.Puzzles.Super().PickupCount > 0 {
			return IconExitLocked, StyleDenied
		}
		return IconExitUnlocked, StyleExitOpen
	case cell.Type == world.Pickup:
		if p := g.Registry.Pickup(cell.Position); p != nil && !p.Visible {
			return IconFloor, StyleCell
		}
		return IconPickup, StyleItem
	case cell.Type.IsTurn():
		if t := g.Registry.Turn(cell.Position); t != nil {
			return t.Glyph(), StyleTurn
		}
		return (&entities.Turn{Shape: cell.Type}).Glyph(), StyleTurn
	case cell.Type == world.Door:
		return doorGlyph(g.Registry.Door(cell.Position))
	default:
		return IconFloor, StyleCell
	}
}

func doorGlyph(d *entities.Door) (string, TextStyle) {
	if d == nil {
		return IconDoorClosed, StyleDoor
	}
	switch d.State {
	case entities.DoorOpened:
		return IconDoorOpened, StyleExitOpen
	case entities.DoorSealed:
		return IconDoorSealed, StyleDenied
	default:
		return IconDoorClosed, StyleDoor
	}
}
