package searcher

import (
	"math"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
)

// WinThreshold is the score at or above which a line is a proven win.
const WinThreshold = game.WinScore

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// SearchContext carries the deadline and call counter through one search.
type SearchContext struct {
	deadline time.Time
	calls    int
	expired  bool
	tt       *transpositions
}

func newSearchContext(deadline time.Time) *SearchContext {
	return &SearchContext{deadline: deadline, tt: newTranspositions()}
}

// tick counts a recursive call and samples the clock every
// DeadlineCheckInterval calls. It reports whether the deadline has passed.
func (sc *SearchContext) tick() bool {
	if sc.expired {
		return true
	}
	sc.calls++
	if sc.calls%DeadlineCheckInterval == 0 && !sc.deadline.IsZero() && time.Now().After(sc.deadline) {
		sc.expired = true
	}
	return sc.expired
}

// check samples the clock regardless of the cadence.
func (sc *SearchContext) check() bool {
	if !sc.expired && !sc.deadline.IsZero() && time.Now().After(sc.deadline) {
		sc.expired = true
	}
	return sc.expired
}

func (sc *SearchContext) Expired() bool {
	return sc.expired
}

func (sc *SearchContext) Calls() int {
	return sc.calls
}

// SearchResult is the outcome of one iterative-deepening search.
type SearchResult struct {
	Move           *game.Move // nil when the mover has no legal move
	Score          float64
	Depth          int  // deepest depth with at least one root move fully searched
	CompletedDepth int  // deepest depth with every root move searched
	Forced         bool // a single legal move was returned without searching
	TimedOut       bool
	Metrics        SearchMetrics
}
