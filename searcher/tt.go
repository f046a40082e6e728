package searcher

import "github.com/blockblockers/Deadblock-sub004/game"

// MaxTranspositions bounds the table; a full table starts over.
const MaxTranspositions = 1 << 20

type ttKey struct {
	hash  game.StateHash
	depth int
}

// ttEntry keeps the position it was computed for so hash collisions miss.
type ttEntry struct {
	occupancy game.PlacementKey
	avail     game.ShapeSet
	score     float64
}

// transpositions caches exact scores of interior nodes for one search.
// Scores depend on the remaining depth, so it is part of the key.
type transpositions struct {
	entries map[ttKey]ttEntry
}

func newTranspositions() *transpositions {
	return &transpositions{entries: make(map[ttKey]ttEntry, 1<<12)}
}

func (tt *transpositions) lookup(state game.State, depth int) (float64, bool) {
	e, ok := tt.entries[ttKey{hash: state.Hash(), depth: depth}]
	if !ok || e.occupancy != state.Board.Occupancy() || e.avail != state.Available {
		return 0, false
	}
	return e.score, true
}

func (tt *transpositions) store(state game.State, depth int, score float64) {
	if len(tt.entries) >= MaxTranspositions {
		tt.entries = make(map[ttKey]ttEntry, 1<<12)
	}
	tt.entries[ttKey{hash: state.Hash(), depth: depth}] = ttEntry{
		occupancy: state.Board.Occupancy(),
		avail:     state.Available,
		score:     score,
	}
}

func (tt *transpositions) len() int {
	return len(tt.entries)
}
