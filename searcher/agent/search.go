package agent

import (
	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// searchAgent runs the alpha-beta searcher and degrades to the heuristic
// tier when the budget runs out before depth StartDepth completes.
type searchAgent struct {
	cfg      Config
	rng      *rand.Rand
	ab       *searcher.AlphaBeta
	fallback *heuristicAgent
}

func newSearchAgent(cfg Config, rng *rand.Rand) *searchAgent {
	if cfg.Duration <= 0 && cfg.MaxDepth <= 0 {
		cfg.Duration = searcher.DefaultDuration
	}
	options := []searcher.Option{
		searcher.WithDuration(cfg.Duration),
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithEvaluationFn(cfg.Evaluate),
	}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return &searchAgent{
		cfg:      cfg,
		rng:      rng,
		ab:       searcher.NewAlphaBeta(options...),
		fallback: newHeuristicAgent(cfg, rng),
	}
}

func (a *searchAgent) FindMove(state game.State) (*game.Move, searcher.SearchMetrics) {
	moves := state.LegalMoves()
	if m, ok := trivialMove(moves); ok {
		return m, searcher.SearchMetrics{}
	}
	if m, ok := openingMove(state, moves, a.cfg.OpeningPlies, a.rng); ok {
		return m, searcher.SearchMetrics{}
	}

	result := a.ab.Search(state)
	if result.Move == nil || (!result.Forced && result.CompletedDepth < searcher.StartDepth) {
		log.Warn().
			Int("depth", result.Depth).
			Int("completedDepth", result.CompletedDepth).
			Dur("budget", a.ab.Duration()).
			Msg("search incomplete, falling back to heuristic selection")
		return a.fallback.pick(state, moves), result.Metrics
	}
	return result.Move, result.Metrics
}
