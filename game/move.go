package game

import "fmt"

// PlacementKey is the set of absolute cells a placement occupies, one bit per
// cell indexed row*Size+col. Equal keys mean geometrically identical placements.
type PlacementKey uint64

// Move places one shape. Cells holds the absolute board cells it covers.
type Move struct {
	Shape    Shape
	Row      int
	Col      int
	Rotation int
	Flipped  bool
	Cells    [5]Cell
}

func newMove(s Shape, row, col, rotation int, flipped bool, o Orientation) Move {
	m := Move{Shape: s, Row: row, Col: col, Rotation: rotation, Flipped: flipped}
	for i, c := range o {
		m.Cells[i] = Cell{Row: c.Row + int8(row), Col: c.Col + int8(col)}
	}
	return m
}

func (m Move) Key() PlacementKey {
	var key PlacementKey
	for _, c := range m.Cells {
		key |= 1 << (int(c.Row)*Size + int(c.Col))
	}
	return key
}

// SameCells reports whether two moves cover the same cells.
func (m Move) SameCells(other Move) bool {
	return m.Key() == other.Key()
}

func (m Move) String() string {
	return fmt.Sprintf("%s@(%d,%d) r%d f%t", m.Shape, m.Row, m.Col, m.Rotation, m.Flipped)
}
