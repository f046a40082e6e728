package agent

import (
	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"golang.org/x/exp/rand"
)

// randomAgent plays a uniformly random legal move.
type randomAgent struct {
	rng *rand.Rand
}

func (a *randomAgent) FindMove(state game.State) (*game.Move, searcher.SearchMetrics) {
	moves := state.LegalMoves()
	if m, ok := trivialMove(moves); ok {
		return m, searcher.SearchMetrics{}
	}
	return &moves[a.rng.Intn(len(moves))], searcher.SearchMetrics{}
}
