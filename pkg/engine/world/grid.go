package world

// Grid is the fixed-size tile map. It is built once and never resized.
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int

	startCell *Cell
}

// NewGrid creates a new grid of Empty cells with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.startCell = nil
	g.cells = make([][]*Cell, rows)

	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(rows, Pos(row, col), Empty)
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(p Position) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// CellAt returns the cell at p, or nil if out of bounds
func (g *Grid) CellAt(p Position) *Cell {
	return g.GetCell(p.Row, p.Col)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	return g.CellAt(c.Position.Add(dir))
}

// TypeAt returns the type of the cell at p. Positions outside the grid read as Block.
func (g *Grid) TypeAt(p Position) CellType {
	c := g.CellAt(p)
	if c == nil {
		return Block
	}
	return c.Type
}

// SetType changes the type of the cell at p. Returns false if out of bounds.
// Start cells are tracked so StartCell stays current.
func (g *Grid) SetType(p Position, t CellType) bool {
	c := g.CellAt(p)
	if c == nil {
		return false
	}
	if c == g.startCell && t != Start {
		g.startCell = nil
	}
	c.Type = t
	if t == Start {
		g.startCell = c
	}
	return true
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CountType returns how many cells currently hold the given type
func (g *Grid) CountType(t CellType) int {
	n := 0
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.Type == t {
			n++
		}
	})
	return n
}

// Types returns a row-major copy of every cell type
func (g *Grid) Types() [][]CellType {
	out := make([][]CellType, g.rows)
	for row := range out {
		out[row] = make([]CellType, g.cols)
		for col := range out[row] {
			out[row][col] = g.cells[row][col].Type
		}
	}
	return out
}
