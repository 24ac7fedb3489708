// Package gameplay advances the simulation: editing turns, running the player
// through the two-phase cell checks, door and pickup mutation, and checkpoints.
package gameplay

import (
	"fmt"

	"puzzlerooms/pkg/game/state"
)

// Message catalogue keys, resolved through gotext
const (
	msgWelcome        = "WELCOME"
	msgPickup         = "PICKUP_COLLECTED"
	msgDoorsUnlocked  = "DOORS_UNLOCKED"
	msgEnteredPuzzle  = "PUZZLE_ENTERED"
	msgSuperReached   = "SUPER_PUZZLE_REACHED"
	msgRunBlocked     = "RUN_BLOCKED"
	msgRunStarted     = "RUN_STARTED"
	msgRestored       = "RESTORED"
	msgWon            = "GAME_WON"
	msgPreview        = "PREVIEW_SUPER_PUZZLE"
	msgPreviewBlocked = "PREVIEW_UNAVAILABLE"
	msgNotEditable    = "CELL_NOT_EDITABLE"
	msgMapDumped      = "MAP_DUMPED"
	msgMapDumpFailed  = "MAP_DUMP_FAILED"
)

// logMessage adds a message carrying renderer markup to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
