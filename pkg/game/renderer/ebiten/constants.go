// Package ebiten draws the game in a window with Ebiten.
package ebiten

import (
	"image/color"

	"puzzlerooms/pkg/game/renderer"
)

// Color palette for the game - brighter colors for visibility
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg          = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor           = color.RGBA{100, 100, 120, 255} // Medium gray
	colorDoorClosed      = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorTurn            = color.RGBA{100, 220, 255, 255}
	colorExitLocked      = color.RGBA{255, 100, 100, 255} // Bright red
	colorExitUnlocked    = color.RGBA{100, 255, 100, 255} // Bright green
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 640
	panelPadding        = 10
	lineHeight          = 18
	uiFontSize          = 14
	// Below this many pixels per cell glyphs are not drawn
	minGlyphScale = 10
	// Player square as a share of a cell
	playerInset = 0.2
)

// styleColors maps the shared text styles to glyph colours
var styleColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:   colorText,
	renderer.StyleCell:     colorFloor,
	renderer.StyleItem:     colorItem,
	renderer.StyleDenied:   colorExitLocked,
	renderer.StyleDoor:     colorDoorClosed,
	renderer.StyleTurn:     colorTurn,
	renderer.StyleSubtle:   colorWall,
	renderer.StylePlayer:   colorPlayer,
	renderer.StyleExitOpen: colorExitUnlocked,
}
