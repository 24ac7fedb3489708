package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/camera"
	"puzzlerooms/pkg/game/gameplay"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

// EbitenRenderer runs the game in a window. It implements both
// renderer.Renderer and ebiten.Game; the game is only touched from Update.
type EbitenRenderer struct {
	game   *state.Game
	camera *camera.Camera

	windowWidth  int
	windowHeight int

	fontSource *text.GoTextFaceSource
	uiFace     *text.GoTextFace
	tileFace   *text.GoTextFace
	// tileFaceSize is the size tileFace was made for
	tileFaceSize float64

	// cursor is the cell editing actions apply to
	cursor world.Position

	lastMouseX, lastMouseY int

	err error
}

// New creates a window renderer for g
func New(g *state.Game) *EbitenRenderer {
	return &EbitenRenderer{
		game:         g,
		camera:       camera.New(g.Camera),
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		cursor:       g.Player.Position,
	}
}

// Init sets up the window and fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		e.game.Log.WithError(err).Warn("font unavailable, falling back to debug text")
		return
	}
	e.fontSource = src
	e.uiFace = &text.GoTextFace{Source: src, Size: uiFontSize}
}

// StyleText returns text unchanged; colours are applied when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText expands markup to plain text
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.PlainText(msg, args...)
}

// GetViewportSize returns how many cells fit the window at the current zoom
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	scale := e.camera.Scale(e.windowHeight)
	if scale <= 0 {
		return 0, 0
	}
	return int(float64(e.windowHeight) / scale), int(float64(e.windowWidth) / scale)
}

// RenderFrame switches the window to draw g. Frames are drawn by Draw.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// Run opens the window and blocks until it is closed or the player quits
func (e *EbitenRenderer) Run() error {
	e.Init()
	if err := ebiten.RunGame(e); err != nil {
		return err
	}
	return e.err
}

// Update handles input, advances the simulation and moves the camera (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.handleInput()
	if e.game.QuitRequested {
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if _, err := gameplay.Tick(e.game, dt); err != nil {
		e.game.Log.WithError(err).Error("tick failed")
		e.err = err
		return ebiten.Termination
	}

	e.camera.Follow(e.game.Camera)
	e.camera.Update(dt)
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	}
	return e.windowWidth, e.windowHeight
}
