package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/state"
)

// ToggleCellAt cycles the turn at pos: Empty -> Turn00 -> Turn01 -> Turn11 -> Turn10 -> Turn00.
// Only Empty and Turn cells inside the current deepest-level puzzle can be
// edited, and only while editing. Returns true if the cell changed.
func ToggleCellAt(g *state.Game, pos world.Position) bool {
	cell := g.Grid.CellAt(pos)
	if !canEdit(g, pos) || cell == nil || (cell.Type != world.Empty && !cell.Type.IsTurn()) {
		logMessage(g, "%s", gotext.Get(msgNotEditable))
		return false
	}

	PlaceTurn(g, pos, nextTurnShape(cell.Type))
	g.Play(audio.CueUI)
	return true
}

// ClearCellAt removes the turn at pos. Returns true if a turn was removed.
func ClearCellAt(g *state.Game, pos world.Position) bool {
	cell := g.Grid.CellAt(pos)
	if !canEdit(g, pos) || cell == nil || !cell.Type.IsTurn() {
		return false
	}

	g.Grid.SetType(pos, world.Empty)
	g.Registry.RemoveTurn(pos)
	g.Touch()
	g.Play(audio.CueUI)
	return true
}

// PlaceTurn sets a turn cell and its marker without any mode checks
func PlaceTurn(g *state.Game, pos world.Position, shape world.CellType) {
	if !shape.IsTurn() || !g.Grid.SetType(pos, shape) {
		return
	}
	g.Registry.SetTurn(pos, shape)
	g.Touch()
}

func canEdit(g *state.Game, pos world.Position) bool {
	return g.IsEditable() && g.Puzzles.Inside(g.CurrentPuzzle, pos)
}

// CommitRun saves a checkpoint and sets the player walking from where it stands
func CommitRun(g *state.Game) bool {
	if g.Mode != state.ModeEditing {
		return false
	}
	g.Player.PrevPosition = g.Player.Position
	SaveState(g)
	g.Mode = state.ModeRunning
	g.Touch()
	logMessage(g, "%s", gotext.Get(msgRunStarted))
	return true
}

// TogglePreview enters the super-puzzle preview from editing, or leaves it.
// The preview is not available from the initial rooms.
func TogglePreview(g *state.Game) bool {
	switch g.Mode {
	case state.ModePreview:
		ExitPreview(g)
		return true
	case state.ModeEditing:
		if g.CurrentPuzzle == nil || g.CurrentPuzzle.IsInitial() {
			logMessage(g, "%s", gotext.Get(msgPreviewBlocked))
			return false
		}
		PreviewSuperPuzzle(g)
		logMessage(g, "%s", gotext.Get(msgPreview))
		return true
	}
	return false
}
