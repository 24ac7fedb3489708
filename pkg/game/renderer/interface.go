package renderer

import (
	"puzzlerooms/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleDoor
	StyleTurn
	StyleSubtle
	StylePlayer
	StyleExitOpen
)

// Renderer defines the interface for game rendering backends
// Implementations include the terminal UI and the Ebiten window.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderFrame renders a complete game frame
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active frontend. It is nil in headless runs.
var Current Renderer

// SetRenderer sets the active frontend
func SetRenderer(r Renderer) {
	Current = r
}

// FormatText formats a message with markup. Without a renderer the markup is
// expanded to plain text.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return PlainText(msg, args...)
}
