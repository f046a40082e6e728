package searcher

import (
	"math"
	"sort"

	"github.com/blockblockers/Deadblock-sub004/game"
)

const (
	boardCenter  = (game.Size - 1) / 2.0
	maxCellScore = game.Size - 1 // Manhattan distance from the center to a corner
)

type scoredMove struct {
	move  game.Move
	score float64
}

// orderMoves sorts moves best first by their heuristic score and keeps at
// most limit of them. A non-positive limit keeps all moves.
func orderMoves(state game.State, moves []game.Move, limit int) []game.Move {
	scores := ScoreMoves(state, moves)
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scores[i]}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	ordered := make([]game.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// ScoreMoves returns MoveHeuristic for each move. Blocking is only checked
// when there are at most BlockCheckLimit moves.
func ScoreMoves(state game.State, moves []game.Move) []float64 {
	checkBlocks := len(moves) <= BlockCheckLimit
	placeable := game.ShapeSet(0)
	if checkBlocks {
		placeable = state.Rules().PlaceableShapes(state.Board, state.Available)
	}
	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = moveHeuristic(state, m, placeable, checkBlocks)
	}
	return scores
}

// MoveHeuristic is a cheap static score for a candidate move: prefer placing
// rigid shapes, prefer central cells outside the endgame, and reward moves
// that leave other shapes without a placement.
func MoveHeuristic(state game.State, m game.Move) float64 {
	placeable := state.Rules().PlaceableShapes(state.Board, state.Available)
	return moveHeuristic(state, m, placeable, true)
}

func moveHeuristic(state game.State, m game.Move, placeable game.ShapeSet, checkBlocks bool) float64 {
	score := FlexOrderWeight * float64(game.NumShapes-m.Shape.Flexibility())
	if state.Phase() != game.Endgame {
		score += CenterOrderWeight * Centrality(m)
	}
	if checkBlocks {
		rest := placeable.Remove(m.Shape)
		after := state.Rules().PlaceableShapes(state.Board.Apply(m, state.Mover), rest)
		if after.Empty() {
			return score + WinOrderBonus
		}
		for _, s := range (rest &^ after).Shapes() {
			score += BlockOrderWeight * float64(s.Flexibility())
		}
	}
	return score
}

// Centrality sums how close each cell of the move is to the board center.
func Centrality(m game.Move) float64 {
	total := 0.0
	for _, c := range m.Cells {
		dist := math.Abs(float64(c.Row)-boardCenter) + math.Abs(float64(c.Col)-boardCenter)
		total += maxCellScore - dist
	}
	return total
}
