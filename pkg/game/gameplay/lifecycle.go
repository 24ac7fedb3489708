package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/audio"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/state"
	gameworld "puzzlerooms/pkg/game/world"
)

// Options are the collaborators and tunables a game is built with
type Options struct {
	Audio audio.Player
	Log   logrus.FieldLogger
	// Speed is the player's walking speed in cells per second
	Speed float32
}

// BuildGame creates a ready-to-edit game from a loaded grid: companions are
// created for every door and pickup, the player stands on the Start facing
// Right in the first initial room, and the first checkpoint is saved.
func BuildGame(grid *world.Grid, layout puzzle.Layout, opts Options) (*state.Game, error) {
	start := grid.StartCell()
	if start == nil {
		return nil, errors.New("map has no start cell")
	}

	idx, err := puzzle.NewIndex(grid, layout)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(grid, idx)
	if opts.Audio != nil {
		g.Audio = opts.Audio
	}
	if opts.Log != nil {
		g.Log = opts.Log
	}

	gameworld.Populate(g.Registry, grid)

	g.Player = entities.NewPlayer(start.Position, world.Right)
	if opts.Speed > 0 {
		g.Player.Speed = opts.Speed
	}

	first := idx.FirstInitial()
	if first == nil {
		first, err = idx.PuzzleFor(start.Position, world.Right)
		if err != nil {
			return nil, err
		}
	}
	if err := SetCurrentPuzzle(g, first.Level, first.Position.Row, first.Position.Col); err != nil {
		return nil, err
	}

	SaveState(g)
	g.Mode = state.ModeEditing

	g.ClearMessages()
	logMessage(g, "%s", gotext.Get(msgWelcome))
	g.Log.WithFields(logrus.Fields{
		"rows":    grid.Rows(),
		"cols":    grid.Cols(),
		"levels":  layout.LevelCount,
		"start":   start.Position.String(),
		"puzzle":  first.String(),
		"pickups": grid.CountType(world.Pickup),
		"doors":   grid.CountType(world.Door),
	}).Info("game built")

	return g, nil
}

// SetCurrentPuzzle makes the addressed puzzle current and points the camera at it
func SetCurrentPuzzle(g *state.Game, level, r, c int) error {
	p, err := g.Puzzles.Get(level, r, c)
	if err != nil {
		return err
	}
	g.CurrentPuzzle = p
	g.Camera = g.Puzzles.CameraFor(p)
	g.Touch()
	return nil
}

// HideInitialPuzzles clears the initial corridor once the super-puzzle is reached
func HideInitialPuzzles(g *state.Game) {
	band := g.Puzzles.Layout().Band()
	for r := 0; r <= puzzle.Span && r < g.Grid.Rows(); r++ {
		for c := 0; c < band && c < g.Grid.Cols(); c++ {
			pos := world.Pos(r, c)
			g.Grid.SetType(pos, world.Empty)
			g.Registry.Clear(pos)
		}
	}
	g.InitialHidden = true
	g.Touch()
}

// PreviewSuperPuzzle frames the whole super-puzzle and shows only the pickups
// that count toward it
func PreviewSuperPuzzle(g *state.Game) {
	g.Registry.EachPickup(func(p *entities.Pickup) {
		p.Visible = false
		p.PreviewInSuperPuzzle = false
	})
	for _, pos := range g.Puzzles.SuperPickups() {
		if p := g.Registry.Pickup(pos); p != nil {
			p.Visible = true
			p.PreviewInSuperPuzzle = true
		}
	}

	g.MarkerVisible = false
	g.Camera = g.Puzzles.CameraFor(g.Puzzles.Super())
	g.Mode = state.ModePreview
	g.Touch()
}

// ExitPreview returns from the super-puzzle preview to editing the current puzzle
func ExitPreview(g *state.Game) {
	showAllPickups(g)
	g.MarkerVisible = true
	if g.CurrentPuzzle != nil {
		g.Camera = g.Puzzles.CameraFor(g.CurrentPuzzle)
	}
	g.Mode = state.ModeEditing
	g.Touch()
}

func showAllPickups(g *state.Game) {
	g.Registry.EachPickup(func(p *entities.Pickup) {
		p.ResetVisibility()
	})
}
