package engine

import (
	"github.com/blockblockers/Deadblock-sub004/experiments/metrics"
	"github.com/blockblockers/Deadblock-sub004/game"
)

// MaxMoves bounds a game: every move consumes a shape from the shared pool.
const MaxMoves = game.NumShapes

type Engine interface {
	// Run plays until the mover has no legal move and returns the winner
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)
