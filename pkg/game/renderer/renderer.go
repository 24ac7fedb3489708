// Package renderer holds what every frontend shares: the message markup, cell
// glyphs and the read-only snapshot of the game that frontends draw from.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Palette is the set of colours markup functions expand to
type Palette struct {
	Cell        color.Style
	Item        color.Style
	Action      color.Style
	ActionShort color.Style
	Denied      color.Style
	Door        color.Style
	Turn        color.Style
	Subtle      color.Style
	Player      color.Style
	ExitOpen    color.Style
}

// DefaultPalette returns the terminal colours
func DefaultPalette() Palette {
	return Palette{
		Cell:        color.Style{color.FgGray},
		Item:        color.Style{color.FgMagenta},
		Action:      color.Style{color.FgMagenta},
		ActionShort: color.Style{color.FgMagenta, color.OpBold},
		Denied:      color.Style{color.FgRed, color.OpBold},
		Door:        color.Style{color.FgYellow, color.OpBold},
		Turn:        color.Style{color.FgCyan, color.OpBold},
		Subtle:      color.Style{color.FgGray, color.OpBold},
		Player:      color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		ExitOpen:    color.Style{color.FgGreen},
	}
}

// Style returns the colour for a text style
func (p Palette) Style(style TextStyle) color.Style {
	switch style {
	case StyleCell:
		return p.Cell
	case StyleItem:
		return p.Item
	case StyleAction:
		return p.Action
	case StyleActionShort:
		return p.ActionShort
	case StyleDenied:
		return p.Denied
	case StyleDoor:
		return p.Door
	case StyleTurn:
		return p.Turn
	case StyleSubtle:
		return p.Subtle
	case StylePlayer:
		return p.Player
	case StyleExitOpen:
		return p.ExitOpen
	default:
		return color.Style{}
	}
}

var markupPattern = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:./\-]+)}`)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// FormatMarkup formats a message and expands its markup with the palette:
// GT{KEY} translates, ITEM{..} and DOOR{..} highlight values, ROOM{r c} names
// a puzzle and ACTION{..} highlights a key binding.
func FormatMarkup(p Palette, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = p.Item.Sprint(operand)
		case "DOOR":
			val = p.Door.Sprint(operand)
		case "ROOM":
			val = p.Cell.Sprint("(" + strings.Join(strings.Fields(operand), ", ") + ")")
		case "ACTION":
			val = p.ActionShort.Sprint(operand[0:1]) + p.Action.Sprint(operand[1:])
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PlainText formats a message and expands its markup without colours
func PlainText(msg string, args ...any) string {
	return color.ClearCode(FormatMarkup(DefaultPalette(), msg, args...))
}
