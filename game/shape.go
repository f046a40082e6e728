package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Shape identifies one of the 12 free pentominoes.
type Shape uint8

const (
	F Shape = iota
	I
	L
	N
	P
	T
	U
	V
	W
	X
	Y
	Z
)

const NumShapes = 12

// Cell is a (row, col) pair. It is used both for offsets relative to an
// anchor and for absolute board coordinates.
type Cell struct {
	Row int8
	Col int8
}

// Canonical layouts, one per shape, in (row, col) offsets.
var catalog = [NumShapes][5]Cell{
	F: {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	I: {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
	L: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},
	N: {{0, 1}, {1, 1}, {2, 0}, {2, 1}, {3, 0}},
	P: {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
	T: {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
	U: {{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
	V: {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	W: {{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}},
	X: {{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
	Y: {{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}},
	Z: {{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
}

// Flexibility ranks shapes by how easily they fit into leftover space,
// 1 being the hardest to place and NumShapes the easiest.
var flexibility = [NumShapes]int{
	X: 1,
	I: 2,
	Z: 3,
	W: 4,
	U: 5,
	T: 6,
	V: 7,
	F: 8,
	N: 9,
	Y: 10,
	L: 11,
	P: 12,
}

var shapeNames = [NumShapes]string{
	F: "F", I: "I", L: "L", N: "N", P: "P", T: "T",
	U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
}

func (s Shape) Valid() bool {
	return s < NumShapes
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// Flexibility returns the shape's flexibility rank, or 0 for an unknown shape.
func (s Shape) Flexibility() int {
	if !s.Valid() {
		return 0
	}
	return flexibility[s]
}

// Cells returns the canonical layout of the shape.
func (s Shape) Cells() ([5]Cell, error) {
	if !s.Valid() {
		return [5]Cell{}, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}
	return catalog[s], nil
}

// ParseShape maps a single letter name ("F", "i", ...) to its shape.
func ParseShape(name string) (Shape, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ShapeSet is a set of shapes stored as a bitmask. The zero value is empty.
type ShapeSet uint16

const AllShapes ShapeSet = 1<<NumShapes - 1

// NewShapeSet builds a set from shapes, rejecting identifiers outside the catalog.
func NewShapeSet(shapes ...Shape) (ShapeSet, error) {
	var set ShapeSet
	for _, s := range shapes {
		if !s.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
		}
		set = set.Add(s)
	}
	return set, nil
}

// AvailableFrom returns the shapes of the catalog not present in used.
// Every shape may appear in used at most once.
func AvailableFrom(used []Shape) (ShapeSet, error) {
	var usedSet ShapeSet
	for _, s := range used {
		if !s.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
		}
		if usedSet.Has(s) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateShape, s)
		}
		usedSet = usedSet.Add(s)
	}
	return AllShapes &^ usedSet, nil
}

func (ss ShapeSet) Has(s Shape) bool {
	return s.Valid() && ss&(1<<s) != 0
}

func (ss ShapeSet) Add(s Shape) ShapeSet {
	return ss | 1<<s
}

func (ss ShapeSet) Remove(s Shape) ShapeSet {
	return ss &^ (1 << s)
}

func (ss ShapeSet) Len() int {
	return bits.OnesCount16(uint16(ss))
}

func (ss ShapeSet) Empty() bool {
	return ss&AllShapes == 0
}

// Shapes lists the members in catalog order.
func (ss ShapeSet) Shapes() []Shape {
	shapes := make([]Shape, 0, ss.Len())
	for s := Shape(0); s < NumShapes; s++ {
		if ss.Has(s) {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

func (ss ShapeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range ss.Shapes() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
