// Package world keeps the companion objects (doors, turn markers, pickups)
// attached to grid cells, keyed by grid position.
package world

import (
	"sort"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/entities"
)

// GameCellData holds the companion objects for one cell
type GameCellData struct {
	Door   *entities.Door   // Door companion (Door cells only)
	Turn   *entities.Turn   // Turn marker (Turn cells only)
	Pickup *entities.Pickup // Pickup marker (Pickup cells only)
}

// IsEmpty returns true if the cell carries no companions
func (d *GameCellData) IsEmpty() bool {
	return d.Door == nil && d.Turn == nil && d.Pickup == nil
}

// Registry maps grid positions to their companions
type Registry struct {
	cells map[world.Position]*GameCellData
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{cells: make(map[world.Position]*GameCellData)}
}

// Get returns the companion data at pos, or nil if there is none
func (r *Registry) Get(pos world.Position) *GameCellData {
	return r.cells[pos]
}

func (r *Registry) data(pos world.Position) *GameCellData {
	d, ok := r.cells[pos]
	if !ok {
		d = &GameCellData{}
		r.cells[pos] = d
	}
	return d
}

func (r *Registry) prune(pos world.Position) {
	if d, ok := r.cells[pos]; ok && d.IsEmpty() {
		delete(r.cells, pos)
	}
}

// Door returns the door at pos, or nil
func (r *Registry) Door(pos world.Position) *entities.Door {
	if d := r.cells[pos]; d != nil {
		return d.Door
	}
	return nil
}

// CreateDoorIfNotExists returns the door at pos, creating a closed one if needed
func (r *Registry) CreateDoorIfNotExists(pos world.Position) *entities.Door {
	d := r.data(pos)
	if d.Door == nil {
		d.Door = entities.NewDoor(pos)
	}
	return d.Door
}

// RemoveDoor destroys the door at pos
func (r *Registry) RemoveDoor(pos world.Position) {
	if d := r.cells[pos]; d != nil {
		d.Door = nil
		r.prune(pos)
	}
}

// Turn returns the turn marker at pos, or nil
func (r *Registry) Turn(pos world.Position) *entities.Turn {
	if d := r.cells[pos]; d != nil {
		return d.Turn
	}
	return nil
}

// SetTurn creates or reshapes the turn marker at pos
func (r *Registry) SetTurn(pos world.Position, shape world.CellType) *entities.Turn {
	d := r.data(pos)
	if d.Turn == nil {
		d.Turn = entities.NewTurn(pos, shape)
	} else {
		d.Turn.Shape = shape
	}
	return d.Turn
}

// RemoveTurn destroys the turn marker at pos
func (r *Registry) RemoveTurn(pos world.Position) {
	if d := r.cells[pos]; d != nil {
		d.Turn = nil
		r.prune(pos)
	}
}

// Pickup returns the pickup marker at pos, or nil
func (r *Registry) Pickup(pos world.Position) *entities.Pickup {
	if d := r.cells[pos]; d != nil {
		return d.Pickup
	}
	return nil
}

// CreatePickupIfNotExists returns the pickup at pos, creating a visible one if needed
func (r *Registry) CreatePickupIfNotExists(pos world.Position) *entities.Pickup {
	d := r.data(pos)
	if d.Pickup == nil {
		d.Pickup = entities.NewPickup(pos)
	}
	return d.Pickup
}

// RemovePickup destroys the pickup marker at pos
func (r *Registry) RemovePickup(pos world.Position) {
	if d := r.cells[pos]; d != nil {
		d.Pickup = nil
		r.prune(pos)
	}
}

// Clear removes every companion at pos
func (r *Registry) Clear(pos world.Position) {
	delete(r.cells, pos)
}

// Len returns how many positions carry companions
func (r *Registry) Len() int {
	return len(r.cells)
}

// Positions returns the occupied positions in row-major order
func (r *Registry) Positions() []world.Position {
	out := make([]world.Position, 0, len(r.cells))
	for pos := range r.cells {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// EachPickup calls fn for every pickup marker
func (r *Registry) EachPickup(fn func(p *entities.Pickup)) {
	for _, d := range r.cells {
		if d.Pickup != nil {
			fn(d.Pickup)
		}
	}
}

// Sync makes the companions at one cell agree with its type: doors for Door
// cells, markers for Turn and Pickup cells, nothing otherwise.
// Existing companions are kept so their state survives.
func (r *Registry) Sync(cell *world.Cell) {
	pos := cell.Position
	switch {
	case cell.Type == world.Door:
		r.CreateDoorIfNotExists(pos)
		r.RemoveTurn(pos)
		r.RemovePickup(pos)
	case cell.Type.IsTurn():
		r.SetTurn(pos, cell.Type)
		r.RemoveDoor(pos)
		r.RemovePickup(pos)
	case cell.Type == world.Pickup:
		r.CreatePickupIfNotExists(pos)
		r.RemoveDoor(pos)
		r.RemoveTurn(pos)
	default:
		r.Clear(pos)
	}
}

// Populate syncs the companions of every cell in the grid
func Populate(r *Registry, grid *world.Grid) {
	grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		r.Sync(cell)
	})
}
