package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher/agent"
	"github.com/spf13/cobra"
)

var (
	selectTier   string
	usedShapes   string
	selectBudget time.Duration
	selectSeed   uint64
)

func init() {
	selectCmd := &cobra.Command{
		Use:   "select ROW...",
		Short: "Pick a move for one position",
		Long: `Pick a move for the side to move. The board is given as 8 rows of 8
characters: '.' for an empty cell and a digit for the owning player.

Examples:
  deadblock select --used F,I ........ ........ ..11111. ........ ........ ....2... ...222.. ....2...
  deadblock select --tier random --used '' ........ ........ ........ ........ ........ ........ ........ ........`,
		Args: cobra.ExactArgs(game.Size),
		RunE: runSelect,
	}

	selectCmd.Flags().StringVar(&selectTier, "tier", "search", "Tier (random, heuristic, search)")
	selectCmd.Flags().StringVar(&usedShapes, "used", "", "Comma separated shapes already placed, e.g. F,I")
	selectCmd.Flags().DurationVar(&selectBudget, "budget", 2*time.Second, "Search budget")
	selectCmd.Flags().Uint64Var(&selectSeed, "seed", 0, "Random seed, 0 for a random one")

	rootCmd.AddCommand(selectCmd)
}

// parseBoard reads rows of '.' and digit characters.
func parseBoard(rows []string) (game.Board, error) {
	grid := make([][]game.Player, len(rows))
	for r, row := range rows {
		grid[r] = make([]game.Player, 0, len(row))
		for c, ch := range row {
			switch {
			case ch == '.':
				grid[r] = append(grid[r], game.Empty)
			case ch >= '0' && ch <= '9':
				grid[r] = append(grid[r], game.Player(ch-'0'))
			default:
				return game.Board{}, fmt.Errorf("%w: %q at (%d,%d)", game.ErrInvalidCell, ch, r, c)
			}
		}
	}
	return game.NewBoard(grid)
}

func parseShapes(list string) ([]game.Shape, error) {
	var shapes []game.Shape
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := game.ParseShape(name)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	board, err := parseBoard(args)
	if err != nil {
		return err
	}
	used, err := parseShapes(usedShapes)
	if err != nil {
		return err
	}
	tier, err := agent.ParseTier(selectTier)
	if err != nil {
		return err
	}

	cfg := agent.DefaultConfig(tier)
	cfg.Duration = selectBudget
	cfg.Seed = selectSeed
	move, err := agent.SelectMoveWith(board, used, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if move == nil {
		fmt.Fprintln(out, "no legal move: the mover loses")
		return nil
	}
	fmt.Fprintln(out, move)
	fmt.Fprintln(out, board.Apply(*move, game.MoverFor(len(used))))
	return nil
}
