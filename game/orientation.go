package game

import (
	"fmt"
	"sort"
	"sync"
)

const (
	NumRotations    = 4
	NumOrientations = 2 * NumRotations
)

// Orientation is a materialized layout of a shape after rotation and
// reflection, normalized so its smallest row and column are both 0 and its
// cells are sorted row-major.
type Orientation [5]Cell

// Key is the placement key of the orientation anchored at (0, 0).
func (o Orientation) Key() PlacementKey {
	var key PlacementKey
	for _, c := range o {
		key |= 1 << (int(c.Row)*Size + int(c.Col))
	}
	return key
}

// OrientationCache memoizes the orientations of every shape by
// (rotation, flip). Entries derive deterministically from the immutable
// catalog, so a cache never needs invalidation and may be shared by
// concurrent callers.
type OrientationCache struct {
	once     [NumShapes]sync.Once
	forms    [NumShapes][NumOrientations]Orientation
	distinct [NumShapes][]Orientation
}

func NewOrientationCache() *OrientationCache {
	return &OrientationCache{}
}

// Orientation returns the shape reflected (if flipped) then rotated
// rotation quarter turns.
func (oc *OrientationCache) Orientation(s Shape, rotation int, flipped bool) (Orientation, error) {
	if !s.Valid() {
		return Orientation{}, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}
	if rotation < 0 || rotation >= NumRotations {
		return Orientation{}, fmt.Errorf("rotation %d out of range [0,%d)", rotation, NumRotations)
	}
	oc.populate(s)
	return oc.forms[s][formIndex(rotation, flipped)], nil
}

// Distinct returns the distinct orientations of a shape, between 1 and 8,
// in (flip, rotation) order of first appearance.
func (oc *OrientationCache) Distinct(s Shape) ([]Orientation, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}
	oc.populate(s)
	return oc.distinct[s], nil
}

// Orientations returns the distinct orientations of a shape using the
// process-wide cache.
func Orientations(s Shape) ([]Orientation, error) {
	return defaultOrientations.Distinct(s)
}

var defaultOrientations = NewOrientationCache()

func (oc *OrientationCache) populate(s Shape) {
	oc.once[s].Do(func() {
		seen := make(map[PlacementKey]bool, NumOrientations)
		for _, flipped := range []bool{false, true} {
			for rotation := 0; rotation < NumRotations; rotation++ {
				o := transform(catalog[s], rotation, flipped)
				oc.forms[s][formIndex(rotation, flipped)] = o
				if key := o.Key(); !seen[key] {
					seen[key] = true
					oc.distinct[s] = append(oc.distinct[s], o)
				}
			}
		}
	})
}

// form returns a cached orientation of a shape already known to be valid.
func (oc *OrientationCache) form(s Shape, rotation int, flipped bool) Orientation {
	oc.populate(s)
	return oc.forms[s][formIndex(rotation, flipped)]
}

func formIndex(rotation int, flipped bool) int {
	if flipped {
		return NumRotations + rotation
	}
	return rotation
}

// transform reflects (x,y)->(-x,y) when flipped, then applies
// (x,y)->(-y,x) rotation times, with x the column and y the row.
func transform(cells [5]Cell, rotation int, flipped bool) Orientation {
	var o Orientation
	for i, c := range cells {
		x, y := int(c.Col), int(c.Row)
		if flipped {
			x = -x
		}
		for r := 0; r < rotation; r++ {
			x, y = -y, x
		}
		o[i] = Cell{Row: int8(y), Col: int8(x)}
	}
	return normalize(o)
}

func normalize(o Orientation) Orientation {
	minRow, minCol := o[0].Row, o[0].Col
	for _, c := range o[1:] {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
	}
	for i := range o {
		o[i].Row -= minRow
		o[i].Col -= minCol
	}
	sort.Slice(o[:], func(i, j int) bool {
		if o[i].Row != o[j].Row {
			return o[i].Row < o[j].Row
		}
		return o[i].Col < o[j].Col
	})
	return o
}
