package agent

import (
	"testing"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/stretchr/testify/require"
)

func boardWithHoles(holes ...game.Cell) game.Board {
	var b game.Board
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			b[r][c] = game.Player1 + game.Player((r+c)%2)
		}
	}
	for _, h := range holes {
		b[h.Row][h.Col] = game.Empty
	}
	return b
}

func strip(row, fromCol, toCol int) []game.Cell {
	var cells []game.Cell
	for c := fromCol; c <= toCol; c++ {
		cells = append(cells, game.Cell{Row: int8(row), Col: int8(c)})
	}
	return cells
}

// allBut lists every shape of the catalog except keep.
func allBut(keep ...game.Shape) []game.Shape {
	kept, _ := game.NewShapeSet(keep...)
	return (game.AllShapes &^ kept).Shapes()
}

// trapState has three legal moves and only I along row 3 leaves the
// opponent without a placement.
func trapState(t *testing.T) game.State {
	t.Helper()
	holes := append([]game.Cell{{Row: 2, Col: 0}}, strip(3, 0, 4)...)
	holes = append(holes, strip(6, 0, 4)...)
	avail, err := game.NewShapeSet(game.I, game.L)
	require.NoError(t, err)
	return game.NewState(nil, boardWithHoles(holes...), avail)
}

// midgameState plays the first legal move for each side on an empty board.
func midgameState() game.State {
	state := game.NewState(nil, game.Board{}, game.AllShapes)
	state = state.Play(state.LegalMoves()[0])
	return state.Play(state.LegalMoves()[0])
}

func requireLegal(t *testing.T, state game.State, m *game.Move) {
	t.Helper()
	require.NotNil(t, m)
	for _, legal := range state.LegalMoves() {
		if legal.Shape == m.Shape && legal.SameCells(*m) {
			return
		}
	}
	require.Failf(t, "illegal move", "%s is not legal in\n%s", m, state.Board)
}

func seeded(tier Tier, seed uint64) Config {
	cfg := DefaultConfig(tier)
	cfg.Seed = seed
	return cfg
}

var tiers = []Tier{Random, Heuristic, Search}
