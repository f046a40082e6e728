package searcher

import (
	"testing"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/stretchr/testify/require"
)

// boardWithHoles returns a fully owned board with the given cells emptied.
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

// trapState leaves I and L with three legal moves. Only I along row 3
// also destroys the single L placement, leaving the opponent stuck.
func trapState(t *testing.T) game.State {
	t.Helper()
	holes := append([]game.Cell{{Row: 2, Col: 0}}, strip(3, 0, 4)...)
	holes = append(holes, strip(6, 0, 4)...)
	avail, err := game.NewShapeSet(game.I, game.L)
	require.NoError(t, err)
	return game.NewState(game.NewStandardRules(), boardWithHoles(holes...), avail)
}
