package agent

import (
	"sort"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"golang.org/x/exp/rand"
)

// Weights of the one-ply lookahead applied on top of searcher.MoveHeuristic.
const (
	OpponentMoveWeight  = 1.0
	OpponentShapeWeight = 8.0
)

// heuristicAgent scores every legal move by the ordering heuristic and the
// opponent's mobility after it, then samples among the best few.
type heuristicAgent struct {
	cfg Config
	rng *rand.Rand
}

func newHeuristicAgent(cfg Config, rng *rand.Rand) *heuristicAgent {
	return &heuristicAgent{cfg: cfg, rng: rng}
}

func (a *heuristicAgent) FindMove(state game.State) (*game.Move, searcher.SearchMetrics) {
	moves := state.LegalMoves()
	if m, ok := trivialMove(moves); ok {
		return m, searcher.SearchMetrics{}
	}
	if m, ok := openingMove(state, moves, a.cfg.OpeningPlies, a.rng); ok {
		return m, searcher.SearchMetrics{}
	}
	return a.pick(state, moves), searcher.SearchMetrics{}
}

type candidate struct {
	move  *game.Move
	score float64
}

// pick returns an immediate win when one exists, otherwise a weighted
// sample of the TopFew best scored moves favoring the better ones.
func (a *heuristicAgent) pick(state game.State, moves []game.Move) *game.Move {
	candidates := a.score(state, moves)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if candidates[0].score >= game.WinScore {
		return candidates[0].move
	}

	top := candidates[:min(a.cfg.TopFew, len(candidates))]
	weights := make([]float64, len(top))
	total := 0.0
	for i := range top {
		weights[i] = float64(len(top) - i)
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return top[sample(weights, a.rng)].move
}

func (a *heuristicAgent) score(state game.State, moves []game.Move) []candidate {
	rules := state.Rules()
	heuristics := searcher.ScoreMoves(state, moves)
	candidates := make([]candidate, len(moves))
	for i := range moves {
		next := state.Play(moves[i])
		placeable := rules.PlaceableShapes(next.Board, next.Available)
		score := game.WinScore
		if !placeable.Empty() {
			score = heuristics[i] -
				OpponentMoveWeight*float64(rules.LegalMoveCount(next.Board, placeable)) -
				OpponentShapeWeight*float64(placeable.Len())
			if a.cfg.Jitter > 0 {
				score += a.cfg.Jitter * a.rng.Float64()
			}
		}
		candidates[i] = candidate{move: &moves[i], score: score}
	}
	return candidates
}

// sample draws an index from a probability distribution.
func sample(probs []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
