package puzzle

import "puzzlerooms/pkg/engine/world"

// Span is the stride between room walls in cells. A room is Span+1 cells
// across including both walls, with a Span-1 square interior.
const Span = 5

// InitialPuzzle describes one of the tutorial rooms laid out left of the
// super-puzzle. Their adjacency is authored rather than scanned.
type InitialPuzzle struct {
	PickupCount int
	Up          *world.Position
	Down        *world.Position
	Left        *world.Position
	Right       *world.Position
}

// Layout is the fixed geometry the puzzle index is built from
type Layout struct {
	// LevelCount is the number of nested zoom levels. Level 0 is the super-puzzle.
	LevelCount int
	// InitialPuzzles are the tutorial rooms, left to right, at columns -n..-1.
	InitialPuzzles []InitialPuzzle
	// SuperPickups are the pickups that also count toward the super-puzzle.
	SuperPickups []world.Position
	// CameraZoom is the orthographic half-height used to frame each level.
	CameraZoom []float64
}

func posPtr(row, col int) *world.Position {
	p := world.Pos(row, col)
	return &p
}

// DefaultLayout returns the layout of the bundled map
func DefaultLayout() Layout {
	return Layout{
		LevelCount: 2,
		InitialPuzzles: []InitialPuzzle{
			{PickupCount: 1, Right: posPtr(3, 5)},
			{PickupCount: 1, Left: posPtr(3, 5), Right: posPtr(2, 10)},
			{PickupCount: 2, Left: posPtr(2, 10), Right: posPtr(4, 15)},
			{PickupCount: 2, Left: posPtr(4, 15), Right: posPtr(1, 20)},
		},
		SuperPickups: []world.Position{
			world.Pos(1, 28),
			world.Pos(3, 32),
			world.Pos(12, 22),
			world.Pos(17, 28),
			world.Pos(14, 32),
		},
		CameraZoom: []float64{10.5, 2.5},
	}
}

// Band returns how many grid columns the initial puzzles occupy
func (l Layout) Band() int {
	return Span * len(l.InitialPuzzles)
}

// ZoomForLevel returns the camera zoom for a level, clamped to the configured entries
func (l Layout) ZoomForLevel(level int) float64 {
	if len(l.CameraZoom) == 0 {
		return 1
	}
	if level < 0 {
		level = 0
	}
	if level >= len(l.CameraZoom) {
		level = len(l.CameraZoom) - 1
	}
	return l.CameraZoom[level]
}
