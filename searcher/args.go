package searcher

import "time"

// Hyperparameters for alpha-beta search

const (
	DefaultDuration = 2 * time.Second
	DefaultMaxDepth = 12
	StartDepth      = 2 // first iterative-deepening depth

	// DeadlineCheckInterval is how many recursive calls pass between
	// clock samples.
	DeadlineCheckInterval = 256
)

// DefaultBranching caps the moves searched at each ply from the root. Plies
// past the end of the slice use its last entry.
var DefaultBranching = []int{40, 20, 14, 10, 8}

// Move ordering weights
const (
	FlexOrderWeight   = 3.0 // per flexibility rank below the most flexible shape
	CenterOrderWeight = 0.5 // per unit of centrality, outside the endgame
	BlockOrderWeight  = 6.0 // per flexibility rank of each shape the move blocks
	WinOrderBonus     = 1e6 // move leaves the opponent without a placement
	BlockCheckLimit   = 48  // blocking is only pre-checked on lists this short
)
