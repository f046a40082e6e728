package cmd

import (
	"fmt"
	"time"

	"github.com/blockblockers/Deadblock-sub004/experiments"
	"github.com/spf13/cobra"
)

var (
	numGames    int
	parallel    int
	outputDir   string
	experiment  string
	searchDepth int
	expBudget   time.Duration
	expSeed     uint64
)

func init() {
	experimentCmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run tier or evaluator matchups and store CSV records",
		Long: `Run many self-play games concurrently and write agent configs, game
records and move records as CSV.

Examples:
  deadblock experiment --name tiers -n 20
  deadblock experiment --name evaluators --budget 500ms --parallel 4
  deadblock experiment --name throughput --budget 1s`,
		RunE: runExperiment,
	}

	experimentCmd.Flags().StringVar(&experiment, "name", "tiers", "Experiment to run (tiers, evaluators, throughput)")
	experimentCmd.Flags().IntVarP(&numGames, "number", "n", experiments.NumGames, "Games per matchup")
	experimentCmd.Flags().IntVar(&parallel, "parallel", 0, "Games running at once, 0 for GOMAXPROCS")
	experimentCmd.Flags().DurationVar(&expBudget, "budget", experiments.TimeBudget, "Search budget per move")
	experimentCmd.Flags().IntVar(&searchDepth, "max-depth", 0, "Depth cap of search agents, 0 for none")
	experimentCmd.Flags().Uint64Var(&expSeed, "seed", 0, "Random seed, 0 for a random one")
	experimentCmd.Flags().StringVarP(&outputDir, "output", "o", "experiments", "Directory receiving the CSV files")

	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var x experiments.Experiment
	switch experiment {
	case "tiers":
		x = experiments.TierExperiment(numGames, expBudget)
	case "evaluators":
		x = experiments.EvaluatorExperiment(numGames, expBudget)
	case "throughput":
		samples := experiments.RunThroughputExperiment([]int{2, 4, 6, 8}, expBudget, max(expSeed, 1))
		for _, s := range samples {
			fmt.Fprintf(out, "used=%d nodes=%d depth=%d nodes/s=%.0f\n", s.Used, s.Nodes, s.CompletedDepth, s.NodesPerSecond())
		}
		return nil
	default:
		return fmt.Errorf("unknown experiment %q", experiment)
	}
	x.Seed = expSeed
	x.Parallel = parallel
	for i := range x.Configs {
		x.Configs[i].MaxDepth = searchDepth
	}
	for i := range x.MatchUps {
		for j := range x.MatchUps[i] {
			x.MatchUps[i][j].MaxDepth = searchDepth
		}
	}

	start := time.Now()
	collector, err := x.Run(cmd.Context())
	if err != nil {
		return err
	}
	dir, err := experiments.Write(outputDir, x, collector)
	if err != nil {
		return err
	}

	wins := collector.Wins()
	for _, c := range x.Configs {
		fmt.Fprintf(out, "agent %d (%s): %d wins\n", c.ID, c.Tier, wins[c.ID])
	}
	fmt.Fprintf(out, "%d games in %s, records in %s\n", len(collector.GameRecords()), time.Since(start).Round(time.Millisecond), dir)
	return nil
}
