package cmd

import (
	"fmt"
	"time"

	"github.com/blockblockers/Deadblock-sub004/engine"
	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher/agent"
	"github.com/spf13/cobra"
)

var (
	player1Tier string
	player2Tier string
	budget      time.Duration
	seed        uint64
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play one self-play game between two tiers",
		Long: `Play one game between two agents and print every move.

Examples:
  deadblock play
  deadblock play --p1 random --p2 search --budget 1s
  deadblock play --seed 7 --log-level debug`,
		RunE: runPlay,
	}

	playCmd.Flags().StringVar(&player1Tier, "p1", "heuristic", "Tier of player 1 (random, heuristic, search)")
	playCmd.Flags().StringVar(&player2Tier, "p2", "search", "Tier of player 2 (random, heuristic, search)")
	playCmd.Flags().DurationVar(&budget, "budget", 2*time.Second, "Search budget per move")
	playCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed, 0 for a random one")

	rootCmd.AddCommand(playCmd)
}

func newTierAgent(name string, seed uint64) (agent.Agent, error) {
	tier, err := agent.ParseTier(name)
	if err != nil {
		return nil, err
	}
	cfg := agent.DefaultConfig(tier)
	cfg.Duration = budget
	cfg.Seed = seed
	cfg.Metrics = true
	return agent.New(cfg)
}

func runPlay(cmd *cobra.Command, args []string) error {
	var seed2 uint64
	if seed != 0 {
		seed2 = seed + 1
	}
	agent1, err := newTierAgent(player1Tier, seed)
	if err != nil {
		return err
	}
	agent2, err := newTierAgent(player2Tier, seed2)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	e := engine.NewGame([]agent.Agent{agent1, agent2})
	e.OnMove = func(step int, player game.Player, move game.Move, state game.State) {
		fmt.Fprintf(out, "%2d. player %d plays %s\n%s\n\n", step, player, move, state.Board)
	}
	winner, gm, _ := e.Run()

	fmt.Fprintf(out, "player %d wins after %d moves (%s)\n", winner, gm.TotalMoves, gm.Duration.Round(time.Millisecond))
	return nil
}
