package agent

import (
	"sort"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"golang.org/x/exp/rand"
)

const (
	// OpeningMaxFlexibility keeps the opening to the harder half of the shapes.
	OpeningMaxFlexibility = game.NumShapes / 2
	// OpeningPoolSize is the number of most central placements sampled from.
	// Placements tied with the last kept one are kept too.
	OpeningPoolSize = 12
)

// openingMove picks one of the most central placements of a low-flexibility
// shape while fewer than plies shapes have been consumed.
func openingMove(state game.State, moves []game.Move, plies int, rng *rand.Rand) (*game.Move, bool) {
	if state.Used() >= plies {
		return nil, false
	}
	pool := openingPool(moves)
	if len(pool) == 0 {
		return nil, false
	}
	return pool[rng.Intn(len(pool))], true
}

func openingPool(moves []game.Move) []*game.Move {
	pool := make([]*game.Move, 0, len(moves))
	for i := range moves {
		if moves[i].Shape.Flexibility() <= OpeningMaxFlexibility {
			pool = append(pool, &moves[i])
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return searcher.Centrality(*pool[i]) > searcher.Centrality(*pool[j])
	})
	if len(pool) > OpeningPoolSize {
		cut := OpeningPoolSize
		floor := searcher.Centrality(*pool[cut-1])
		for cut < len(pool) && searcher.Centrality(*pool[cut]) == floor {
			cut++
		}
		pool = pool[:cut]
	}
	return pool
}
