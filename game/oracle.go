package game

// HasAnyMove reports whether any available shape can be placed. A mover for
// whom this is false has lost.
func (r *Rules) HasAnyMove(b Board, avail ShapeSet) bool {
	for s := Shape(0); s < NumShapes; s++ {
		if avail.Has(s) && r.shapeFits(&b, s) {
			return true
		}
	}
	return false
}

// PlaceableShapeCount counts the available shapes with a legal placement.
func (r *Rules) PlaceableShapeCount(b Board, avail ShapeSet) int {
	return r.PlaceableShapes(b, avail).Len()
}

// PlaceableShapes returns the available shapes with a legal placement.
func (r *Rules) PlaceableShapes(b Board, avail ShapeSet) ShapeSet {
	var placeable ShapeSet
	for s := Shape(0); s < NumShapes; s++ {
		if avail.Has(s) && r.shapeFits(&b, s) {
			placeable = placeable.Add(s)
		}
	}
	return placeable
}

// LegalMoveCount counts distinct legal placements.
func (r *Rules) LegalMoveCount(b Board, avail ShapeSet) int {
	count := 0
	r.walkPlacements(&b, avail, true, func(Move) bool {
		count++
		return true
	})
	return count
}
