package renderer

import (
	"strings"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/state"
)

// DoorView is a door as frontends see it
type DoorView struct {
	Position world.Position `json:"position"`
	State    string         `json:"state"`
	Type     string         `json:"type"`
}

// TurnView is a placed turn
type TurnView struct {
	Position world.Position `json:"position"`
	Shape    string         `json:"shape"`
	Glyph    string         `json:"glyph"`
}

// PickupView is a pickup still on the map
type PickupView struct {
	Position             world.Position `json:"position"`
	Visible              bool           `json:"visible"`
	PreviewInSuperPuzzle bool           `json:"previewInSuperPuzzle"`
}

// PlayerView is the player token with its interpolated drawing position
type PlayerView struct {
	Position  world.Position `json:"position"`
	Direction string         `json:"direction"`
	Walking   bool           `json:"walking"`
	Row       float64        `json:"row"`
	Col       float64        `json:"col"`
}

// PuzzleView names the current puzzle
type PuzzleView struct {
	Level       int            `json:"level"`
	Position    world.Position `json:"position"`
	PickupCount int            `json:"pickupCount"`
	Initial     bool           `json:"initial"`
}

// Snapshot is a read-only copy of everything a frontend draws. Taking one never
// changes the game.
type Snapshot struct {
	Revision uint64 `json:"revision"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	// Tiles holds one string of glyphs per grid row, player not drawn
	Tiles []string `json:"tiles"`

	Doors   []DoorView   `json:"doors"`
	Turns   []TurnView   `json:"turns"`
	Pickups []PickupView `json:"pickups"`

	Player           PlayerView          `json:"player"`
	Mode             string              `json:"mode"`
	Camera           puzzle.CameraTarget `json:"camera"`
	Puzzle           *PuzzleView         `json:"puzzle,omitempty"`
	SuperPickupsLeft int                 `json:"superPickupsLeft"`
	MarkerVisible    bool                `json:"markerVisible"`
	Messages         []string            `json:"messages"`
	Checkpoints      int                 `json:"checkpoints"`
}

// BuildSnapshot projects the game into a Snapshot. Messages are returned as
// plain text.
func BuildSnapshot(g *state.Game) Snapshot {
	snap := Snapshot{
		Revision:         g.Revision,
		Rows:             g.Grid.Rows(),
		Cols:             g.Grid.Cols(),
		Tiles:            make([]string, 0, g.Grid.Rows()),
		Doors:            []DoorView{},
		Turns:            []TurnView{},
		Pickups:          []PickupView{},
		Mode:             g.Mode.String(),
		Camera:           g.Camera,
		SuperPickupsLeft: g.Puzzles.Super().PickupCount,
		MarkerVisible:    g.MarkerVisible,
		Messages:         make([]string, 0, len(g.Messages)),
		Checkpoints:      g.Checkpoints.Len(),
	}

	for row := 0; row < g.Grid.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Grid.Cols(); col++ {
			icon, _ := CellGlyph(g, g.Grid.GetCell(row, col))
			sb.WriteString(icon)
		}
		snap.Tiles = append(snap.Tiles, sb.String())
	}

	for _, pos := range g.Registry.Positions() {
		data := g.Registry.Get(pos)
		if data == nil {
			continue
		}
		if data.Door != nil {
			snap.Doors = append(snap.Doors, DoorView{Position: pos, State: data.Door.State.String(), Type: data.Door.Type.String()})
		}
		if data.Turn != nil {
			snap.Turns = append(snap.Turns, TurnView{Position: pos, Shape: data.Turn.Shape.String(), Glyph: data.Turn.Glyph()})
		}
		if data.Pickup != nil {
			snap.Pickups = append(snap.Pickups, PickupView{
				Position:             pos,
				Visible:              data.Pickup.Visible,
				PreviewInSuperPuzzle: data.Pickup.PreviewInSuperPuzzle,
			})
		}
	}

	if p := g.Player; p != nil {
		row, col := p.VisualPosition()
		snap.Player = PlayerView{
			Position:  p.Position,
			Direction: p.Direction.String(),
			Walking:   p.Walking,
			Row:       row,
			Col:       col,
		}
	}

	if p := g.CurrentPuzzle; p != nil {
		snap.Puzzle = &PuzzleView{
			Level:       p.Level,
			Position:    p.Position,
			PickupCount: p.PickupCount,
			Initial:     p.IsInitial(),
		}
	}

	for _, msg := range g.Messages {
		snap.Messages = append(snap.Messages, PlainText("%s", msg))
	}

	return snap
}
