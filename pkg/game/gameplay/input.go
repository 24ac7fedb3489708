package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/devtools"
	"puzzlerooms/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It reports whether the intent changed anything.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		g.QuitRequested = true
		return true

	case engineinput.ActionDebugMapDump:
		path, err := devtools.DumpMapToFile(g, "")
		if err != nil {
			logMessage(g, "%s %v", gotext.Get(msgMapDumpFailed), err)
			return false
		}
		logMessage(g, "%s ITEM{%s}", gotext.Get(msgMapDumped), path)
		return true

	case engineinput.ActionRestore:
		return RestoreState(g)

	case engineinput.ActionMoveToEditing:
		switch g.Mode {
		case state.ModePreview:
			ExitPreview(g)
			return true
		case state.ModeRunning, state.ModeStopped:
			return RestoreState(g)
		}
		return false

	case engineinput.ActionPreview:
		return TogglePreview(g)

	case engineinput.ActionCommitRun:
		return CommitRun(g)

	case engineinput.ActionToggleCell:
		return ToggleCellAt(g, world.Pos(intent.Row, intent.Col))

	case engineinput.ActionClearCell:
		return ClearCellAt(g, world.Pos(intent.Row, intent.Col))
	}

	return false
}
