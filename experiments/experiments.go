package experiments

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/blockblockers/Deadblock-sub004/engine"
	"github.com/blockblockers/Deadblock-sub004/experiments/metrics"
	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher/agent"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 200 * time.Millisecond
)

// Evaluators names the evaluation functions an AgentConfig can select.
var Evaluators = map[string]game.Evaluate{
	"position": game.EvaluatePosition,
	"mobility": game.EvaluateMobility,
}

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int    // per match up
	Seed     uint64 // zero seeds every agent randomly
	Parallel int    // games running at once, defaults to GOMAXPROCS
}

// TierExperiment pairs every tier against the next stronger one.
func TierExperiment(games int, budget time.Duration) Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Tier: agent.Random},
		{ID: 2, Tier: agent.Heuristic},
		{ID: 3, Tier: agent.Search, Duration: budget, Evaluate: "position"},
	}
	return Experiment{
		Name:    "tiers",
		Configs: configs,
		MatchUps: [][2]metrics.AgentConfig{
			{configs[0], configs[1]},
			{configs[1], configs[2]},
			{configs[0], configs[2]},
		},
		Games: games,
	}
}

// EvaluatorExperiment pairs the full evaluation against mobility only.
func EvaluatorExperiment(games int, budget time.Duration) Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Tier: agent.Search, Duration: budget, Evaluate: "position"},
		{ID: 2, Tier: agent.Search, Duration: budget, Evaluate: "mobility"},
	}
	return Experiment{
		Name:     "evaluators",
		Configs:  configs,
		MatchUps: [][2]metrics.AgentConfig{{configs[0], configs[1]}},
		Games:    games,
	}
}

// NewAgent builds the agent described by config.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	cfg := agent.DefaultConfig(config.Tier)
	cfg.Seed = seed
	cfg.Metrics = true
	if config.Duration > 0 {
		cfg.Duration = config.Duration
	}
	cfg.MaxDepth = config.MaxDepth
	if config.Evaluate != "" {
		evaluate, ok := Evaluators[config.Evaluate]
		if !ok {
			return nil, fmt.Errorf("unknown evaluator %q", config.Evaluate)
		}
		cfg.Evaluate = evaluate
	}
	return agent.New(cfg)
}

// Run plays Games games per match up, swapping seats every game so each
// config starts half of them. Games run concurrently; every agent is
// private to its game.
func (x Experiment) Run(ctx context.Context) (*metrics.Collector, error) {
	collector := metrics.NewCollector()
	g, ctx := errgroup.WithContext(ctx)
	parallel := x.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(parallel)

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		for i := 0; i < x.Games; i++ {
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				seed := uint64(0)
				if x.Seed != 0 {
					seed = x.Seed + uint64(2*(mi*x.Games+i))
				}
				winner, err := x.runGame(collector, first, second, seed)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: agent %d",
					mi+1, len(x.MatchUps), i+1, x.Games, winner)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Msgf("completed %s experiment", x.Name)
	return collector, nil
}

// runGame plays one game and returns the AgentConfig.ID of the winner.
func (x Experiment) runGame(collector *metrics.Collector, config1, config2 metrics.AgentConfig, seed uint64) (int, error) {
	agent1, err := NewAgent(config1, seed)
	if err != nil {
		return 0, err
	}
	var seed2 uint64
	if seed != 0 {
		seed2 = seed + 1
	}
	agent2, err := NewAgent(config2, seed2)
	if err != nil {
		return 0, err
	}

	_, gameMetric, moveMetrics := engine.NewGame([]agent.Agent{agent1, agent2}).Run()
	id := collector.Add(config1.ID, config2.ID, gameMetric, moveMetrics)
	log.Debug().Int("record", id).Str("game", gameMetric.ID.String()).Msg("stored game")

	return metrics.GameRecord{Agent1: config1.ID, Agent2: config2.ID, GameMetric: gameMetric}.WinnerAgent(), nil
}

// Write stores the experiment's configs and records under root and
// returns the directory holding them.
func Write(root string, x Experiment, collector *metrics.Collector) (string, error) {
	writer, err := metrics.NewWriter(root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(x.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(collector.GameRecords())
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(collector.MoveRecords())
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
