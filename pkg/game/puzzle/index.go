package puzzle

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"puzzlerooms/pkg/engine/world"
)

// Index holds every puzzle of every level plus the initial rooms
type Index struct {
	layout Layout
	rows   int

	levels  [][][]*Puzzle
	initial []*Puzzle

	superPickups mapset.Set[world.Position]
}

// NewIndex builds the puzzle index for a loaded grid.
// Deepest-level puzzles take their doors and pickup counts from the grid.
func NewIndex(grid *world.Grid, layout Layout) (*Index, error) {
	if layout.LevelCount < 1 {
		return nil, fmt.Errorf("layout needs at least one level, got %d", layout.LevelCount)
	}

	idx := &Index{
		layout:       layout,
		rows:         grid.Rows(),
		levels:       make([][][]*Puzzle, layout.LevelCount),
		superPickups: mapset.New[world.Position](),
	}
	for _, p := range layout.SuperPickups {
		idx.superPickups.Put(p)
	}

	deepest := layout.LevelCount - 1
	for level := 0; level < layout.LevelCount; level++ {
		count := CountOfLevel(level)
		size := idx.SizeOfLevel(level)
		idx.levels[level] = make([][]*Puzzle, count)

		for r := 0; r < count; r++ {
			idx.levels[level][r] = make([]*Puzzle, count)
			for c := 0; c < count; c++ {
				p := &Puzzle{
					Level:    level,
					Position: world.Pos(r, c),
					World:    idx.gridWorld(size, r, c),
				}
				if level == deepest {
					idx.scan(grid, p)
				} else {
					p.PickupCount = len(layout.SuperPickups)
				}
				idx.levels[level][r][c] = p
			}
		}
	}

	n := len(layout.InitialPuzzles)
	for i, room := range layout.InitialPuzzles {
		idx.initial = append(idx.initial, &Puzzle{
			Level:       deepest,
			Position:    world.Pos(0, i-n),
			World:       world.Vec3{X: float64(Span*i) + 3, Y: float64(idx.rows) - 3},
			PickupCount: room.PickupCount,
			UpDoor:      copyPos(room.Up),
			DownDoor:    copyPos(room.Down),
			LeftDoor:    copyPos(room.Left),
			RightDoor:   copyPos(room.Right),
		})
	}

	return idx, nil
}

func copyPos(p *world.Position) *world.Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// scan counts the pickups and finds the doors inside a deepest-level puzzle's
// walled block. Cells outside the grid are skipped.
func (idx *Index) scan(grid *world.Grid, p *Puzzle) {
	first := idx.FirstCellOf(p)
	for pr := 0; pr <= Span; pr++ {
		for pc := 0; pc <= Span; pc++ {
			pos := world.Pos(first.Row-1+pr, first.Col-1+pc)
			cell := grid.CellAt(pos)
			if cell == nil {
				continue
			}
			switch cell.Type {
			case world.Pickup:
				p.PickupCount++
			case world.Door:
				door := pos
				switch {
				case pr == 0:
					p.UpDoor = &door
				case pr == Span:
					p.DownDoor = &door
				case pc == 0:
					p.LeftDoor = &door
				case pc == Span:
					p.RightDoor = &door
				}
			}
		}
	}
}

// CountOfLevel returns how many puzzles there are per side at a level (4^level)
func CountOfLevel(level int) int {
	return 1 << (2 * level)
}

// SizeOfLevel returns the side length in cells of a puzzle at the given level,
// walls included
func (idx *Index) SizeOfLevel(level int) int {
	return Span*(1<<(2*(idx.layout.LevelCount-level)))/4 + 1
}

func (idx *Index) gridWorld(size, r, c int) world.Vec3 {
	step := float64(size - 1)
	left := float64(idx.layout.Band()) + 0.5
	top := float64(idx.rows) - 0.5
	return world.Vec3{
		X: left + step*float64(c) + step*0.5,
		Y: top - step*float64(r) - step*0.5,
	}
}

// Layout returns the layout the index was built from
func (idx *Index) Layout() Layout {
	return idx.layout
}

// LevelCount returns the number of zoom levels
func (idx *Index) LevelCount() int {
	return idx.layout.LevelCount
}

// DeepestLevel returns the level whose puzzles own doors and pickups
func (idx *Index) DeepestLevel() int {
	return idx.layout.LevelCount - 1
}

// Super returns the single level-0 puzzle
func (idx *Index) Super() *Puzzle {
	return idx.levels[0][0][0]
}

// Initial returns the tutorial rooms in left-to-right order
func (idx *Index) Initial() []*Puzzle {
	return idx.initial
}

// FirstInitial returns the room the game starts in, or nil without initial rooms
func (idx *Index) FirstInitial() *Puzzle {
	if len(idx.initial) == 0 {
		return nil
	}
	return idx.initial[0]
}

// IsFirstInitial reports whether p is the room the game starts in
func (idx *Index) IsFirstInitial(p *Puzzle) bool {
	return p != nil && p == idx.FirstInitial()
}

// IsSuperEntry reports whether p is the top-left deepest-level puzzle, the
// entry into the super-puzzle proper
func (idx *Index) IsSuperEntry(p *Puzzle) bool {
	return p != nil && p.Level == idx.DeepestLevel() && p.Position.IsZero()
}

// IsSuperPickup reports whether a pickup at pos also counts for the super-puzzle
func (idx *Index) IsSuperPickup(pos world.Position) bool {
	return idx.superPickups.Has(pos)
}

// SuperPickups returns the configured super-puzzle pickup positions
func (idx *Index) SuperPickups() []world.Position {
	return idx.layout.SuperPickups
}

// Get resolves a puzzle by level and address. Negative columns at the deepest
// level address the initial rooms.
func (idx *Index) Get(level, r, c int) (*Puzzle, error) {
	pos := world.Pos(r, c)
	if level < 0 || level >= idx.layout.LevelCount {
		return nil, &PuzzleLookupError{Level: level, Position: pos, Reason: "level out of range"}
	}
	if c < 0 {
		i := len(idx.initial) + c
		if level != idx.DeepestLevel() || r != 0 || i < 0 {
			return nil, &PuzzleLookupError{Level: level, Position: pos, Reason: "no such initial puzzle"}
		}
		return idx.initial[i], nil
	}
	count := CountOfLevel(level)
	if r < 0 || r >= count || c >= count {
		return nil, &PuzzleLookupError{Level: level, Position: pos, Reason: "address out of range"}
	}
	return idx.levels[level][r][c], nil
}

// PuzzleFor resolves the deepest-level puzzle that owns a grid position when
// entered heading dir. A position on a shared wall belongs to the room on the
// far side when moving Up or Left onto it.
func (idx *Index) PuzzleFor(pos world.Position, dir world.Direction) (*Puzzle, error) {
	deepest := idx.DeepestLevel()
	fail := func(reason string) error {
		return &PuzzleLookupError{Level: deepest, Position: pos, Direction: dir, Reason: reason}
	}

	if pos.Row < 0 || pos.Col < 0 {
		return nil, fail("negative coordinate")
	}

	band := idx.layout.Band()
	if pos.Col < band {
		if pos.Row > Span {
			return nil, fail("below the initial corridor")
		}
		i := pos.Col / Span
		if pos.Col%Span == 0 && dir == world.Left && i != 0 {
			i--
		}
		return idx.initial[i], nil
	}

	col := pos.Col - band

	pr := pos.Row / Span
	if pos.Row%Span == 0 && dir == world.Up && pr != 0 {
		pr--
	}
	pc := col / Span
	if col%Span == 0 && dir == world.Left && pc != 0 {
		pc--
	}

	count := CountOfLevel(deepest)
	if pr >= count || pc >= count {
		return nil, fail("outside the super-puzzle")
	}
	return idx.levels[deepest][pr][pc], nil
}

// FirstCellOf returns the top-left interior cell of a deepest-level puzzle
func (idx *Index) FirstCellOf(p *Puzzle) world.Position {
	n := len(idx.layout.InitialPuzzles)
	return world.Pos(Span*p.Position.Row+1, Span*(p.Position.Col+n)+1)
}

// Inside reports whether pos lies in the editable interior of a deepest-level puzzle
func (idx *Index) Inside(p *Puzzle, pos world.Position) bool {
	if p == nil || p.Level != idx.DeepestLevel() {
		return false
	}
	first := idx.FirstCellOf(p)
	return pos.Row >= first.Row && pos.Row < first.Row+Span-1 &&
		pos.Col >= first.Col && pos.Col < first.Col+Span-1
}

// Each calls fn for every puzzle, level by level, then the initial rooms
func (idx *Index) Each(fn func(p *Puzzle)) {
	for _, level := range idx.levels {
		for _, row := range level {
			for _, p := range row {
				fn(p)
			}
		}
	}
	for _, p := range idx.initial {
		fn(p)
	}
}

// Counts returns the pickup counts of every level as [level][row][col]
func (idx *Index) Counts() [][][]int {
	out := make([][][]int, len(idx.levels))
	for l, level := range idx.levels {
		out[l] = make([][]int, len(level))
		for r, row := range level {
			out[l][r] = make([]int, len(row))
			for c, p := range row {
				out[l][r][c] = p.PickupCount
			}
		}
	}
	return out
}

// InitialCounts returns the pickup counts of the initial rooms
func (idx *Index) InitialCounts() []int {
	out := make([]int, len(idx.initial))
	for i, p := range idx.initial {
		out[i] = p.PickupCount
	}
	return out
}

// SetCounts restores pickup counts captured by Counts and InitialCounts.
// Mismatched shapes are applied as far as they overlap.
func (idx *Index) SetCounts(levels [][][]int, initial []int) {
	for l := 0; l < len(levels) && l < len(idx.levels); l++ {
		for r := 0; r < len(levels[l]) && r < len(idx.levels[l]); r++ {
			for c := 0; c < len(levels[l][r]) && c < len(idx.levels[l][r]); c++ {
				idx.levels[l][r][c].PickupCount = levels[l][r][c]
			}
		}
	}
	for i := 0; i < len(initial) && i < len(idx.initial); i++ {
		idx.initial[i].PickupCount = initial[i]
	}
}

// CameraTarget is where and how far out a camera should frame a puzzle
type CameraTarget struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Zoom  float64 `json:"zoom"`
	Level int     `json:"level"`
}

// CameraFor frames a puzzle at its level's zoom
func (idx *Index) CameraFor(p *Puzzle) CameraTarget {
	return CameraTarget{
		X:     p.World.X,
		Y:     p.World.Y,
		Zoom:  idx.layout.ZoomForLevel(p.Level),
		Level: p.Level,
	}
}
