// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"puzzlerooms/pkg/engine/world"
	"puzzlerooms/pkg/game/entities"
	"puzzlerooms/pkg/game/puzzle"
	"puzzlerooms/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// CellSymbol returns the single-character symbol for a cell without the player overlay.
// Doors show their state: O opened, C closed, X sealed.
func CellSymbol(g *state.Game, cell *world.Cell) rune {
	if cell == nil {
		return '#'
	}
	switch cell.Type {
	case world.Start:
		return 'S'
	case world.Finish:
		return 'Q'
	case world.Block:
		return '#'
	case world.Pickup:
		return '*'
	case world.Turn00:
		return '1'
	case world.Turn01:
		return '2'
	case world.Turn10:
		return '3'
	case world.Turn11:
		return '4'
	case world.Door:
		door := g.Registry.Door(cell.Position)
		if door == nil {
			return 'D'
		}
		switch door.State {
		case entities.DoorOpened:
			return 'O'
		case entities.DoorSealed:
			return 'X'
		default:
			return 'C'
		}
	default:
		return '.'
	}
}

// WriteMapGrid writes the grid with the player drawn as '@'
func WriteMapGrid(w io.Writer, g *state.Game) {
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			if g.Player != nil && g.Player.Position == world.Pos(row, col) {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", CellSymbol(g, g.Grid.GetCell(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump: metadata, legend, map, doors and puzzles.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (cells, doors, puzzles) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "mode: %s\n", g.Mode)
	if g.Player != nil {
		fmt.Fprintf(w, "player_cell: %s\n", g.Player.Position)
		fmt.Fprintf(w, "player_direction: %s\n", g.Player.Direction)
	}
	if g.CurrentPuzzle != nil {
		fmt.Fprintf(w, "current_puzzle: %s\n", g.CurrentPuzzle)
	}
	fmt.Fprintf(w, "super_pickups_remaining: %d\n", g.Puzzles.Super().PickupCount)
	fmt.Fprintf(w, "checkpoints: %d\n", g.Checkpoints.Len())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty  # = block  S = start  Q = finish  * = pickup  O/C/X = door opened/closed/sealed  1-4 = turn 00/01/10/11  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	WriteMapGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Doors ---")
	for _, pos := range g.Registry.Positions() {
		if door := g.Registry.Door(pos); door != nil {
			fmt.Fprintf(w, "door: %s state=%s type=%s\n", pos, door.State, door.Type)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Puzzles ---")
	g.Puzzles.Each(func(p *puzzle.Puzzle) {
		fmt.Fprintf(w, "puzzle: %s pickups=%d doors=%v\n", p, p.PickupCount, p.Doors())
	})

	return nil
}

// DumpMapToFile writes DumpMap output to map.txt in dir (the working
// directory when dir is empty) and returns the absolute path
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
