// Package camera eases a 2D orthographic camera toward the puzzle the game
// is framing and converts between world and screen coordinates.
package camera

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"puzzlerooms/pkg/game/puzzle"
)

// DefaultDuration is how long a camera move takes, in seconds
const DefaultDuration = 0.6

// Camera is an orthographic camera. Zoom is the half-height of the view in
// world units, so a larger zoom shows more of the map.
type Camera struct {
	X, Y, Zoom float64
	Duration   float32

	target puzzle.CameraTarget
	x, y   *gween.Tween
	zoom   *gween.Tween
}

// New creates a camera resting on t
func New(t puzzle.CameraTarget) *Camera {
	return &Camera{X: t.X, Y: t.Y, Zoom: t.Zoom, Duration: DefaultDuration, target: t}
}

// Target returns where the camera is heading
func (c *Camera) Target() puzzle.CameraTarget {
	return c.target
}

// Follow starts easing toward t. A target equal to the current one is ignored.
func (c *Camera) Follow(t puzzle.CameraTarget) {
	if t == c.target {
		return
	}
	c.target = t
	d := c.Duration
	if d <= 0 {
		c.X, c.Y, c.Zoom = t.X, t.Y, t.Zoom
		c.x, c.y, c.zoom = nil, nil, nil
		return
	}
	c.x = gween.New(float32(c.X), float32(t.X), d, ease.InOutQuad)
	c.y = gween.New(float32(c.Y), float32(t.Y), d, ease.InOutQuad)
	c.zoom = gween.New(float32(c.Zoom), float32(t.Zoom), d, ease.InOutQuad)
}

// Moving reports whether a move is under way
func (c *Camera) Moving() bool {
	return c.x != nil
}

// Update advances the move by dt seconds and reports whether it is still moving
func (c *Camera) Update(dt float32) bool {
	if c.x == nil {
		return false
	}
	x, done := c.x.Update(dt)
	y, _ := c.y.Update(dt)
	z, _ := c.zoom.Update(dt)
	c.X, c.Y, c.Zoom = float64(x), float64(y), float64(z)
	if done {
		c.X, c.Y, c.Zoom = c.target.X, c.target.Y, c.target.Zoom
		c.x, c.y, c.zoom = nil, nil, nil
		return false
	}
	return true
}

// Scale returns screen pixels per world unit for a screen h pixels tall
func (c *Camera) Scale(h int) float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return float64(h) / (2 * c.Zoom)
}

// WorldToScreen converts a world coordinate to screen pixels. World Y grows
// upward; screen Y grows downward.
func (c *Camera) WorldToScreen(x, y float64, w, h int) (sx, sy float64) {
	s := c.Scale(h)
	return float64(w)/2 + (x-c.X)*s, float64(h)/2 - (y-c.Y)*s
}

// ScreenToWorld is the inverse of WorldToScreen
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) (x, y float64) {
	s := c.Scale(h)
	return c.X + (sx-float64(w)/2)/s, c.Y - (sy-float64(h)/2)/s
}
