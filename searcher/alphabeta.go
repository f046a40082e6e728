package searcher

import (
	"sort"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta runs iterative-deepening minimax with alpha-beta pruning under
// a wall-clock budget. It holds configuration only; every search call is
// independent.
type AlphaBeta struct {
	duration  time.Duration
	maxDepth  int
	branching []int
	evaluate  game.Evaluate
	metrics   MetricsCollector
}

func WithDuration(duration time.Duration) Option {
	return func(ab *AlphaBeta) {
		if duration > 0 {
			ab.duration = duration
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.maxDepth = depth
		}
	}
}

// WithBranching sets the per-ply move caps, root first.
func WithBranching(caps ...int) Option {
	return func(ab *AlphaBeta) {
		if len(caps) > 0 {
			ab.branching = caps
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = NewMetricsCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		branching: DefaultBranching,
		evaluate:  game.EvaluatePosition,
		metrics:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	if ab.duration <= 0 && ab.maxDepth <= 0 {
		panic("Must specify search duration or depth")
	}
	return ab
}

func (ab *AlphaBeta) Duration() time.Duration {
	return ab.duration
}

// branchCap returns the number of moves searched at a ply.
func (ab *AlphaBeta) branchCap(ply int) int {
	if len(ab.branching) == 0 {
		return 0
	}
	if ply >= len(ab.branching) {
		return ab.branching[len(ab.branching)-1]
	}
	return ab.branching[ply]
}

// Search picks a move for the side to move. When the budget expires it
// returns the best move of the deepest depth that searched at least one
// root move to completion.
func (ab *AlphaBeta) Search(state game.State) SearchResult {
	ab.metrics.Start()
	var deadline time.Time
	if ab.duration > 0 {
		deadline = time.Now().Add(ab.duration)
	}
	sc := newSearchContext(deadline)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Score: game.LossScore, Metrics: ab.metrics.Complete()}
	}
	if len(moves) == 1 {
		return SearchResult{Move: &moves[0], Forced: true, Metrics: ab.metrics.Complete()}
	}

	candidates := orderMoves(state, moves, ab.branchCap(0))
	result := SearchResult{Move: &candidates[0]}

	// The game cannot last more plies than there are shapes left.
	maxDepth := state.Available.Len()
	if ab.maxDepth > 0 {
		maxDepth = min(ab.maxDepth, maxDepth)
	}
	for depth := StartDepth; depth <= max(maxDepth, StartDepth); depth++ {
		scores := make([]float64, len(candidates))
		bestIndex, bestScore := -1, negInf
		alpha := negInf
		searched := 0

		for i, m := range candidates {
			score := ab.alphaBeta(sc, state.Play(m), depth-1, 1, alpha, posInf, false)
			if sc.Expired() {
				break
			}
			scores[i] = score
			searched++
			if score > bestScore {
				bestIndex, bestScore = i, score
			}
			alpha = max(alpha, score)
			if sc.check() {
				break
			}
		}

		completed := searched == len(candidates)
		if searched > 0 {
			result.Move = &candidates[bestIndex]
			result.Score = bestScore
			result.Depth = depth
			if completed {
				result.CompletedDepth = depth
			}
			ab.metrics.ReachDepth(depth, completed)
		}

		log.Debug().
			Int("depth", depth).
			Int("searched", searched).
			Int("candidates", len(candidates)).
			Float64("score", bestScore).
			Bool("completed", completed).
			Msg("search depth finished")

		if sc.Expired() || bestScore >= WinThreshold {
			break
		}
		candidates = reorder(candidates, scores)
		result.Move = &candidates[0]
	}

	if sc.Expired() {
		result.TimedOut = true
		ab.metrics.TimeOut()
	}
	result.Metrics = ab.metrics.Complete()
	return result
}

// reorder sorts candidates by the scores of the previous depth, best first.
func reorder(candidates []game.Move, scores []float64) []game.Move {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	ordered := make([]game.Move, len(candidates))
	for i, j := range idx {
		ordered[i] = candidates[j]
	}
	return ordered
}

// alphaBeta scores state for the maximizing side. A mover without a legal
// move loses, and proven results are offset by the remaining depth so that
// faster wins and slower losses score higher. Leaves rely on the evaluator
// to score a stuck mover. Scores strictly inside the window are exact and
// go to the transposition table.
func (ab *AlphaBeta) alphaBeta(sc *SearchContext, state game.State, depth, ply int, alpha, beta float64, maximizing bool) float64 {
	ab.metrics.AddNode()
	if sc.tick() {
		return 0
	}

	if depth <= 0 {
		return ab.evaluate(state, maximizing)
	}
	if score, ok := sc.tt.lookup(state, depth); ok {
		ab.metrics.AddHit()
		return score
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(depth, maximizing)
	}
	moves = orderMoves(state, moves, ab.branchCap(ply))

	alphaOrig, betaOrig := alpha, beta
	var best float64
	if maximizing {
		best = negInf
		for _, m := range moves {
			score := ab.alphaBeta(sc, state.Play(m), depth-1, ply+1, alpha, beta, false)
			if sc.Expired() {
				return best
			}
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				ab.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = posInf
		for _, m := range moves {
			score := ab.alphaBeta(sc, state.Play(m), depth-1, ply+1, alpha, beta, true)
			if sc.Expired() {
				return best
			}
			best = min(best, score)
			beta = min(beta, score)
			if beta <= alpha {
				ab.metrics.AddCutoff()
				break
			}
		}
	}

	if alphaOrig < best && best < betaOrig {
		sc.tt.store(state, depth, best)
	}
	return best
}

func terminalScore(depth int, maximizing bool) float64 {
	if maximizing {
		return game.LossScore - float64(depth)
	}
	return game.WinScore + float64(depth)
}
