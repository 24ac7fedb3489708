package entities

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"puzzlerooms/pkg/engine/world"
)

// DefaultSpeed is the walking speed in cells per second
const DefaultSpeed = 4

// Player is the token that walks the grid.
// Position is updated as soon as a step starts; the step tween only tracks
// how far along the walk to that cell is.
type Player struct {
	Position     world.Position
	PrevPosition world.Position
	Direction    world.Direction
	Walking      bool
	Speed        float32

	step     *gween.Tween
	progress float32
}

// NewPlayer creates a stopped player at pos facing dir
func NewPlayer(pos world.Position, dir world.Direction) *Player {
	return &Player{
		Position:     pos,
		PrevPosition: pos,
		Direction:    dir,
		Speed:        DefaultSpeed,
		progress:     1,
	}
}

// GoForward moves the player one cell along its direction and starts the walk
func (p *Player) GoForward() {
	speed := p.Speed
	if speed <= 0 {
		speed = DefaultSpeed
	}
	p.Position = p.Position.Add(p.Direction)
	p.Walking = true
	p.progress = 0
	p.step = gween.New(0, 1, 1/speed, ease.Linear)
}

// Advance feeds elapsed seconds into the current step and returns its progress in [0,1].
// The player stops walking when the step completes.
func (p *Player) Advance(dt float32) float32 {
	if !p.Walking || p.step == nil {
		return p.progress
	}
	cur, finished := p.step.Update(dt)
	p.progress = cur
	if finished {
		p.Stop()
	}
	return p.progress
}

// Progress returns how far through the current step the player is
func (p *Player) Progress() float32 {
	return p.progress
}

// Stop ends any walk in progress
func (p *Player) Stop() {
	p.Walking = false
	p.step = nil
	p.progress = 1
}

// TurnLeft rotates the player's heading counter-clockwise
func (p *Player) TurnLeft() {
	p.Direction = p.Direction.TurnLeft()
}

// TurnRight rotates the player's heading clockwise
func (p *Player) TurnRight() {
	p.Direction = p.Direction.TurnRight()
}

// Teleport places the player at pos facing dir and stops it
func (p *Player) Teleport(pos world.Position, dir world.Direction) {
	p.Position = pos
	p.Direction = dir
	p.Stop()
}

// VisualPosition returns the interpolated grid coordinates of the token for renderers
func (p *Player) VisualPosition() (row, col float64) {
	if !p.Walking {
		return float64(p.Position.Row), float64(p.Position.Col)
	}
	dr, dc := p.Direction.Delta()
	back := float64(1 - p.progress)
	return float64(p.Position.Row) - float64(dr)*back, float64(p.Position.Col) - float64(dc)*back
}
