package world

import "testing"

func TestDirection_Turns(t *testing.T) {
	tests := []struct {
		dir         Direction
		left, right Direction
	}{
		{Up, Left, Right},
		{Right, Up, Down},
		{Down, Right, Left},
		{Left, Down, Up},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.TurnLeft(); got != tt.left {
				t.Errorf("%v.TurnLeft() = %v, want %v", tt.dir, got, tt.left)
			}
			if got := tt.dir.TurnRight(); got != tt.right {
				t.Errorf("%v.TurnRight() = %v, want %v", tt.dir, got, tt.right)
			}
		})
	}
}

// TurnLeft must match the vector rule (r, c) -> (-c, r) and TurnRight (r, c) -> (c, -r).
func TestDirection_TurnsMatchVectorRotation(t *testing.T) {
	for _, d := range AllDirections() {
		r, c := d.Delta()

		lr, lc := d.TurnLeft().Delta()
		if lr != -c || lc != r {
			t.Errorf("%v.TurnLeft().Delta() = (%d,%d), want (%d,%d)", d, lr, lc, -c, r)
		}

		rr, rc := d.TurnRight().Delta()
		if rr != c || rc != -r {
			t.Errorf("%v.TurnRight().Delta() = (%d,%d), want (%d,%d)", d, rr, rc, c, -r)
		}
	}
}

func TestDirection_OppositeAndValidity(t *testing.T) {
	for _, d := range AllDirections() {
		if !d.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", d)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v.TurnLeft().TurnRight() = %v, want %v", d, got, d)
		}
	}
	bogus := Direction(9)
	if bogus.IsValid() {
		t.Error("Direction(9).IsValid() = true, want false")
	}
	if r, c := bogus.Delta(); r != 0 || c != 0 {
		t.Errorf("Direction(9).Delta() = (%d,%d), want (0,0)", r, c)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, true", d.String(), got, ok, d)
		}
	}
	if _, ok := ParseDirection("Sideways"); ok {
		t.Error("ParseDirection(\"Sideways\") ok = true, want false")
	}
}

func TestPosition_WorldRoundTrip(t *testing.T) {
	const rows = 21
	tests := []struct {
		pos  Position
		x, y float64
	}{
		{Pos(0, 0), 0.5, 20.5},
		{Pos(0, 20), 20.5, 20.5},
		{Pos(20, 40), 40.5, 0.5},
		{Pos(3, 5), 5.5, 17.5},
	}
	for _, tt := range tests {
		got := WorldPosition(rows, tt.pos)
		if got.X != tt.x || got.Y != tt.y || got.Z != 0 {
			t.Errorf("WorldPosition(%d, %v) = %+v, want (%v,%v,0)", rows, tt.pos, got, tt.x, tt.y)
		}
		if back := PositionAt(rows, got.X, got.Y); back != tt.pos {
			t.Errorf("PositionAt(%d, %v, %v) = %v, want %v", rows, got.X, got.Y, back, tt.pos)
		}
	}
	if got := PositionAt(rows, -0.25, 21.5); got != Pos(-1, -1) {
		t.Errorf("PositionAt outside grid = %v, want -1,-1", got)
	}
}
