// Package state holds the single mutable world the simulation advances.
package state

import (
	"io"

	"github.com/sirupsen/logrus"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/checkpoint"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/puzzle"
	gameworld "puzzlerooms/pkg/game/world"
)

// Mode is the phase of play the map is in
type Mode int

const (
	ModeEditing Mode = iota
	ModeRunning
	ModeStopped
	ModePreview
	ModeWon
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "Editing"
	case ModeRunning:
		return "Running"
	case ModeStopped:
		return "Stopped"
	case ModePreview:
		return "Preview"
	case ModeWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Game represents the whole simulation state
type Game struct {
	Grid     *world.Grid
	Puzzles  *puzzle.Index
	Registry *gameworld.Registry
	Player   *entities.Player

	CurrentPuzzle *puzzle.Puzzle
	Mode          Mode

	Checkpoints *checkpoint.Stack

	// Camera is where frontends should frame the view
	Camera puzzle.CameraTarget
	// MarkerVisible is false while the super-puzzle preview hides the edit cursor
	MarkerVisible bool
	// InitialHidden is set once the initial corridor has been cleared away
	InitialHidden bool

	Messages []string
	// messageCount counts every message ever added, including trimmed ones
	messageCount int

	// QuitRequested is set by the quit intent; frontends exit when they see it
	QuitRequested bool

	Audio audio.Player
	Log   logrus.FieldLogger

	// Revision increases on every observable change so frontends can skip redraws
	Revision uint64
}

// NewGame creates a game around an already loaded grid and puzzle index
func NewGame(grid *world.Grid, puzzles *puzzle.Index) *Game {
	return &Game{
		Grid:          grid,
		Puzzles:       puzzles,
		Registry:      gameworld.NewRegistry(),
		Checkpoints:   checkpoint.NewStack(),
		Messages:      make([]string, 0),
		MarkerVisible: true,
		Audio:         audio.Silent{},
		Log:           discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	g.messageCount++

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
	g.Touch()
}

// MessageCount returns how many messages have been added since the game was created
func (g *Game) MessageCount() int {
	return g.messageCount
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Touch marks the state as changed
func (g *Game) Touch() {
	g.Revision++
}

// Play emits an audio cue
func (g *Game) Play(cue audio.Cue) {
	if g.Audio != nil {
		g.Audio.Play(cue)
	}
}

// Door returns the door companion at pos, or nil
func (g *Game) Door(pos world.Position) *entities.Door {
	return g.Registry.Door(pos)
}

// IsEditable reports whether turns may currently be placed
func (g *Game) IsEditable() bool {
	return g.Mode == ModeEditing && g.CurrentPuzzle != nil &&
		g.CurrentPuzzle.Level == g.Puzzles.DeepestLevel()
}
