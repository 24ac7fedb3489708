package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Map tokens. Anything not listed loads as Empty.
const (
	TokenEmpty  = "."
	TokenStart  = "S"
	TokenFinish = "Q"
	TokenBlock  = "B"
	TokenPickup = "P"
	TokenDoor   = "D"
)

// maxCells caps the declared size of a map
const maxCells = 1 << 20

// MapFormatError reports a malformed map source
type MapFormatError struct {
	Reason string
}

func (e *MapFormatError) Error() string {
	return "map format: " + e.Reason
}

func mapFormatErrorf(format string, a ...any) error {
	return &MapFormatError{Reason: fmt.Sprintf(format, a...)}
}

// TypeForToken maps a map token to its cell type
func TypeForToken(tok string) CellType {
	switch tok {
	case TokenStart:
		return Start
	case TokenFinish:
		return Finish
	case TokenBlock:
		return Block
	case TokenPickup:
		return Pickup
	case TokenDoor:
		return Door
	default:
		return Empty
	}
}

// TokenForType maps a cell type to its map token. Turns are editor state and encode as Empty.
func TokenForType(t CellType) string {
	switch t {
	case Start:
		return TokenStart
	case Finish:
		return TokenFinish
	case Block:
		return TokenBlock
	case Pickup:
		return TokenPickup
	case Door:
		return TokenDoor
	default:
		return TokenEmpty
	}
}

// LoadMap parses a whitespace-separated map: rows, cols, then rows*cols
// cell tokens in row-major order. Exactly one Start is required.
func LoadMap(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	header := make([]int, 0, 2)
	for len(header) < 2 && sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, mapFormatErrorf("dimension %q is not an integer", sc.Text())
		}
		if n <= 0 {
			return nil, mapFormatErrorf("dimension %d must be positive", n)
		}
		header = append(header, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	if len(header) < 2 {
		return nil, mapFormatErrorf("missing dimensions")
	}

	rows, cols := header[0], header[1]
	if rows > maxCells/cols {
		return nil, mapFormatErrorf("%dx%d map exceeds %d cells", rows, cols, maxCells)
	}

	types := make([]CellType, 0, min(rows*cols, 4096))
	starts := 0
	for len(types) < rows*cols {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading map: %w", err)
			}
			return nil, mapFormatErrorf("declared %dx%d cells but found %d", rows, cols, len(types))
		}
		t := TypeForToken(sc.Text())
		if t == Start {
			starts++
		}
		types = append(types, t)
	}

	extra := 0
	for sc.Scan() {
		extra++
	}
	if extra > 0 {
		return nil, mapFormatErrorf("declared %dx%d cells but found %d extra tokens", rows, cols, extra)
	}

	if starts != 1 {
		return nil, mapFormatErrorf("expected exactly one start cell, found %d", starts)
	}

	grid := NewGrid(rows, cols)
	for i, t := range types {
		grid.SetType(Pos(i/cols, i%cols), t)
	}
	return grid, nil
}

// LoadMapString parses a map from a string
func LoadMapString(s string) (*Grid, error) {
	return LoadMap(strings.NewReader(s))
}

// LoadMapFile parses a map from a file on disk
func LoadMapFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := LoadMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// EncodeMap serializes the grid back into the map format, one row per line
func EncodeMap(g *Grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.Rows(), g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(TokenForType(g.GetCell(row, col).Type))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
