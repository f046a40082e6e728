package game

// Score sentinels. Any score at or beyond WinScore is a proven result.
const (
	WinScore  = 100_000.0
	LossScore = -WinScore
)

// Evaluation weights.
const (
	MoveWeight    = 1.0  // per distinct legal placement
	ShapeWeight   = 12.0 // per placeable shape
	BlockWeight   = 4.0  // per flexibility rank of each unplaceable shape
	DeadWeight    = 0.75 // per dead cell, outside the opening
	ReserveWeight = 1.5  // per flexibility rank of each placeable shape, in the endgame
)

// Features are the raw terms of the evaluation, all seen by the side to move.
type Features struct {
	Terminal  bool
	Moves     int
	Placeable int
	Blocked   int // summed flexibility ranks of available shapes with no placement
	Dead      int
	Reserve   int // summed flexibility ranks of available shapes that still fit
	Phase     Phase
}

// Features computes the evaluation terms for the side to move.
func (r *Rules) Features(b Board, avail ShapeSet) Features {
	placeable := r.PlaceableShapes(b, avail)
	f := Features{Phase: PhaseOf(avail)}
	if placeable.Empty() {
		f.Terminal = true
		return f
	}
	f.Moves = r.LegalMoveCount(b, placeable)
	f.Placeable = placeable.Len()
	for _, s := range avail.Shapes() {
		if placeable.Has(s) {
			f.Reserve += s.Flexibility()
		} else {
			f.Blocked += s.Flexibility()
		}
	}
	if f.Phase != Opening {
		f.Dead = r.DeadCellCount(b, avail)
	}
	return f
}

// Score combines the features into a value for the side to move.
//
// The shape pool is shared, so an available shape with no placement is one
// the opponent's last move blocked: it counts against the mover, weighted by
// how flexible that shape normally is.
func (f Features) Score() float64 {
	if f.Terminal {
		return LossScore
	}
	score := MoveWeight*float64(f.Moves) + ShapeWeight*float64(f.Placeable)
	score -= BlockWeight * float64(f.Blocked)
	if f.Phase != Opening {
		score -= DeadWeight * float64(f.Dead)
	}
	if f.Phase == Endgame {
		score += ReserveWeight * float64(f.Reserve)
	}
	return score
}

// Evaluate scores the position for the side to move, negated when
// perspectiveIsMover is false so that the maximizing side always reads higher
// as better.
func (r *Rules) Evaluate(b Board, avail ShapeSet, perspectiveIsMover bool) float64 {
	score := r.Features(b, avail).Score()
	if !perspectiveIsMover {
		return -score
	}
	return score
}

// EvaluatePosition is the default evaluation function.
func EvaluatePosition(s State, perspectiveIsMover bool) float64 {
	return s.Evaluate(perspectiveIsMover)
}

// EvaluateMobility only counts the mover's placements and placeable shapes.
func EvaluateMobility(s State, perspectiveIsMover bool) float64 {
	rules := s.Rules()
	placeable := rules.PlaceableShapes(s.Board, s.Available)
	score := LossScore
	if !placeable.Empty() {
		score = MoveWeight*float64(rules.LegalMoveCount(s.Board, placeable)) + ShapeWeight*float64(placeable.Len())
	}
	if !perspectiveIsMover {
		return -score
	}
	return score
}
