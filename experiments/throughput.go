package experiments

import (
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type ThroughputSample struct {
	Used           int // shapes consumed before the searched position
	Nodes          int64
	CompletedDepth int
	Duration       time.Duration
}

func (s ThroughputSample) NodesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Duration.Seconds()
}

// RunThroughputExperiment searches positions reached by random play after
// each number of consumed shapes in plies and samples the search speed.
func RunThroughputExperiment(plies []int, budget time.Duration, seed uint64) []ThroughputSample {
	rng := rand.New(rand.NewSource(seed))
	ab := searcher.NewAlphaBeta(searcher.WithDuration(budget), searcher.WithMetrics())

	log.Info().Msg("starting throughput experiment...")

	var samples []ThroughputSample
	for _, used := range plies {
		state, ok := randomPosition(rng, used)
		if !ok {
			log.Warn().Int("used", used).Msg("random play ended early, skipping")
			continue
		}
		result := ab.Search(state)
		sample := ThroughputSample{
			Used:           used,
			Nodes:          result.Metrics.Nodes,
			CompletedDepth: result.CompletedDepth,
			Duration:       result.Metrics.Duration,
		}
		samples = append(samples, sample)
		log.Info().Msgf("searched %d nodes to depth %d after %d shapes (%.0f nodes/s)",
			sample.Nodes, sample.CompletedDepth, used, sample.NodesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return samples
}

// randomPosition plays used random moves from the empty board. It fails when
// the game ends before that or the resulting mover is already stuck.
func randomPosition(rng *rand.Rand, used int) (game.State, bool) {
	state := game.NewState(game.Standard, game.Board{}, game.AllShapes)
	for i := 0; i < used; i++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return state, false
		}
		state = state.Play(moves[rng.Intn(len(moves))])
	}
	return state, state.HasAnyMove()
}
