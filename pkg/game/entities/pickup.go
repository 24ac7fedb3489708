package entities

import "puzzlerooms/pkg/engine/world"

// Pickup is the collectible sitting on a Pickup cell
type Pickup struct {
	Position world.Position

	Visible bool
	// PreviewInSuperPuzzle marks a pickup highlighted while the super-puzzle is previewed
	PreviewInSuperPuzzle bool
}

// NewPickup creates a visible pickup
func NewPickup(pos world.Position) *Pickup {
	return &Pickup{Position: pos, Visible: true}
}

// ResetVisibility shows the pickup normally again
func (p *Pickup) ResetVisibility() {
	p.Visible = true
	p.PreviewInSuperPuzzle = false
}
