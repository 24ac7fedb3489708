package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/camera"
	"puzzlerooms/pkg/game/gameplay"
)

// keyCodes maps Ebiten keys to input binding codes (raw layer)
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyT:          "t",
	ebiten.KeyBackspace:  "backspace",
	ebiten.KeyX:          "x",
	ebiten.KeyR:          "r",
	ebiten.KeyP:          "p",
	ebiten.KeyE:          "e",
	ebiten.KeyF9:         "f9",
	ebiten.KeyM:          "m",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// mouseCodes maps mouse buttons to input binding codes
var mouseCodes = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:  "mouse_left",
	ebiten.MouseButtonRight: "mouse_right",
}

// handleInput turns this frame's key and button presses into intents
func (e *EbitenRenderer) handleInput() {
	mx, my := ebiten.CursorPosition()
	if mx != e.lastMouseX || my != e.lastMouseY {
		e.lastMouseX, e.lastMouseY = mx, my
		if pos, ok := e.cellAtScreen(mx, my); ok {
			e.cursor = pos
		}
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			e.apply(intentFor(engineinput.DeviceKeyboard, code))
		}
	}
	for button, code := range mouseCodes {
		if inpututil.IsMouseButtonJustPressed(button) {
			if pos, ok := e.cellAtScreen(mx, my); ok {
				e.cursor = pos
			}
			e.apply(intentFor(engineinput.DeviceMouse, code))
		}
	}
}

func intentFor(device engineinput.Device, code string) engineinput.Intent {
	raw := engineinput.RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
}

// apply moves the cursor or hands the intent to the game, editing actions at the cursor
func (e *EbitenRenderer) apply(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
	case engineinput.ActionCursorUp:
		e.moveCursor(world.Up)
	case engineinput.ActionCursorDown:
		e.moveCursor(world.Down)
	case engineinput.ActionCursorLeft:
		e.moveCursor(world.Left)
	case engineinput.ActionCursorRight:
		e.moveCursor(world.Right)
	case engineinput.ActionToggleCell, engineinput.ActionClearCell:
		gameplay.ProcessIntent(e.game, intent.At(e.cursor.Row, e.cursor.Col))
	default:
		gameplay.ProcessIntent(e.game, intent)
	}
}

func (e *EbitenRenderer) moveCursor(dir world.Direction) {
	next := e.cursor.Add(dir)
	if e.game.Grid.Contains(next) {
		e.cursor = next
	}
}

// cellAtScreen returns the grid cell under a screen point
func (e *EbitenRenderer) cellAtScreen(sx, sy int) (world.Position, bool) {
	pos := screenToCell(e.camera, e.game.Grid.Rows(), float64(sx), float64(sy), e.windowWidth, e.windowHeight)
	return pos, e.game.Grid.Contains(pos)
}

func screenToCell(cam *camera.Camera, rows int, sx, sy float64, w, h int) world.Position {
	x, y := cam.ScreenToWorld(sx, sy, w, h)
	return world.PositionAt(rows, x, y)
}

// cellRect returns the screen rectangle of a grid cell
func cellRect(cam *camera.Camera, rows int, pos world.Position, w, h int) (x, y, size float64) {
	// top-left corner of the tile in world space
	x, y = cam.WorldToScreen(float64(pos.Col), float64(rows-pos.Row), w, h)
	return x, y, cam.Scale(h)
}
