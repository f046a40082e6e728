package game

// EnumerateMoves lists every legal placement of the available shapes in
// shape, flip, rotation, row, col order. With dedupe, placements covering
// the same cells as an earlier one are skipped.
func (r *Rules) EnumerateMoves(b Board, avail ShapeSet, dedupe bool) []Move {
	var moves []Move
	r.walkPlacements(&b, avail, dedupe, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// walkPlacements calls visit for each legal placement until visit returns
// false. It reports whether the walk ran to completion.
//
// Orientations are normalized to a (0,0) corner, so a placement's cells fix
// both its anchor and its orientation. Two placements of a shape therefore
// coincide exactly when their orientations do, and skipping repeated
// orientation keys filters repeated placement keys.
func (r *Rules) walkPlacements(b *Board, avail ShapeSet, dedupe bool, visit func(Move) bool) bool {
	for s := Shape(0); s < NumShapes; s++ {
		if !avail.Has(s) {
			continue
		}
		var seen [NumOrientations]PlacementKey
		numSeen := 0
		for _, flipped := range []bool{false, true} {
			for rotation := 0; rotation < NumRotations; rotation++ {
				o := r.orientations.form(s, rotation, flipped)
				if dedupe {
					key := o.Key()
					if containsKey(seen[:numSeen], key) {
						continue
					}
					seen[numSeen] = key
					numSeen++
				}
				for row := 0; row < Size; row++ {
					for col := 0; col < Size; col++ {
						if !b.CanPlace(row, col, o) {
							continue
						}
						if !visit(newMove(s, row, col, rotation, flipped, o)) {
							return false
						}
					}
				}
			}
		}
	}
	return true
}

func containsKey(keys []PlacementKey, key PlacementKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// shapeFits reports whether s has at least one legal placement on b.
func (r *Rules) shapeFits(b *Board, s Shape) bool {
	orientations, err := r.orientations.Distinct(s)
	if err != nil {
		return false
	}
	for _, o := range orientations {
		if anchorFor(b, o) {
			return true
		}
	}
	return false
}

func anchorFor(b *Board, o Orientation) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.CanPlace(row, col, o) {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether m places an available shape exactly as the
// enumerator would: its cells must match its orientation and anchor, and
// all of them must be empty.
func (r *Rules) IsLegal(b Board, avail ShapeSet, m Move) bool {
	if !avail.Has(m.Shape) || m.Rotation < 0 || m.Rotation >= NumRotations {
		return false
	}
	o := r.orientations.form(m.Shape, m.Rotation, m.Flipped)
	if !b.CanPlace(m.Row, m.Col, o) {
		return false
	}
	return newMove(m.Shape, m.Row, m.Col, m.Rotation, m.Flipped, o).Cells == m.Cells
}
