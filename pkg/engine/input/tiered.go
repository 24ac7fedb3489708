package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
	DeviceNetwork
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Edit cursor (terminal frontend)
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Editing
	ActionToggleCell // Cycle the turn at Intent.Row/Col
	ActionClearCell  // Remove the turn at Intent.Row/Col

	// Run control
	ActionCommitRun     // Save a checkpoint and start walking
	ActionRestore       // Go back to the latest checkpoint
	ActionPreview       // Toggle the super-puzzle preview
	ActionMoveToEditing // Leave Preview/Stopped/Running and return to editing

	// Meta / UI
	ActionDebugMapDump
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Row and Col address a cell for the editing actions.
type Intent struct {
	Action Action `json:"action"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// At returns a copy of the intent targeting the given cell
func (i Intent) At(row, col int) Intent {
	i.Row = row
	i.Col = col
	return i
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "space", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// The frontends (Ebiten's just-pressed keys, bubbletea key messages) already
// deliver one event per press, so this stays a thin wrapper.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, Vim)
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	// Editing
	"mouse_left":  ActionToggleCell,
	"enter":       ActionToggleCell,
	"t":           ActionToggleCell,
	"toggle":      ActionToggleCell,
	"mouse_right": ActionClearCell,
	"backspace":   ActionClearCell,
	"x":           ActionClearCell,
	"clear":       ActionClearCell,

	// Run control
	"space":   ActionCommitRun,
	"run":     ActionCommitRun,
	"commit":  ActionCommitRun,
	"r":       ActionRestore,
	"restore": ActionRestore,
	"p":       ActionPreview,
	"preview": ActionPreview,
	"e":       ActionMoveToEditing,
	"edit":    ActionMoveToEditing,

	// Meta
	"f9":     ActionDebugMapDump,
	"m":      ActionDebugMapDump,
	"dump":   ActionDebugMapDump,
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionToggleCell:
		return "Toggle Turn"
	case ActionClearCell:
		return "Clear Turn"
	case ActionCommitRun:
		return "Run"
	case ActionRestore:
		return "Restore"
	case ActionPreview:
		return "Preview"
	case ActionMoveToEditing:
		return "Edit"
	case ActionDebugMapDump:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys stay reserved for the cursor.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "arrow_up" || c == "arrow_down" || c == "arrow_left" || c == "arrow_right" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" &&
		code != "arrow_up" && code != "arrow_down" &&
		code != "arrow_left" && code != "arrow_right" {
		bindings[code] = action
	}
}
