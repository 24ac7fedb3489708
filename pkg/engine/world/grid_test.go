package world

import "testing"

func TestGrid_GetCellBounds(t *testing.T) {
	g := NewGrid(2, 3)
	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, 3, false},
		{2, 0, false},
	}
	for _, tt := range tests {
		got := g.GetCell(tt.row, tt.col)
		if (got != nil) != tt.ok {
			t.Errorf("GetCell(%d,%d) = %v, want present=%v", tt.row, tt.col, got, tt.ok)
		}
	}
}

func TestGrid_TypeAtOutsideIsBlock(t *testing.T) {
	g := NewGrid(1, 1)
	if got := g.TypeAt(Pos(0, 1)); got != Block {
		t.Errorf("TypeAt(outside) = %v, want Block", got)
	}
	if got := g.TypeAt(Pos(0, 0)); got != Empty {
		t.Errorf("TypeAt(0,0) = %v, want Empty", got)
	}
}

func TestGrid_SetTypeTracksStart(t *testing.T) {
	g := NewGrid(2, 2)
	if !g.SetType(Pos(1, 1), Start) {
		t.Fatal("SetType(1,1, Start) = false, want true")
	}
	if g.StartCell() == nil || g.StartCell().Position != Pos(1, 1) {
		t.Fatalf("StartCell() = %v, want 1,1", g.StartCell())
	}
	g.SetType(Pos(1, 1), Empty)
	if g.StartCell() != nil {
		t.Errorf("StartCell() after clearing = %v, want nil", g.StartCell())
	}
	if g.SetType(Pos(5, 5), Block) {
		t.Error("SetType(outside) = true, want false")
	}
}

func TestGrid_GetCellRelative(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)
	for _, d := range AllDirections() {
		dr, dc := d.Delta()
		got := g.GetCellRelative(center, d)
		if got == nil || got.Position != Pos(1+dr, 1+dc) {
			t.Errorf("GetCellRelative(center, %v) = %v, want %d,%d", d, got, 1+dr, 1+dc)
		}
	}
	if got := g.GetCellRelative(g.GetCell(0, 0), Up); got != nil {
		t.Errorf("GetCellRelative(corner, Up) = %v, want nil", got)
	}
}

func TestCellType_IsTurn(t *testing.T) {
	for _, ct := range AllCellTypes() {
		want := ct == Turn00 || ct == Turn01 || ct == Turn10 || ct == Turn11
		if got := ct.IsTurn(); got != want {
			t.Errorf("%v.IsTurn() = %v, want %v", ct, got, want)
		}
	}
}
