package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// fullBoard returns a board with every cell owned, then clears the given cells.
func fullBoard(empty ...Cell) Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b[r][c] = Player1 + Player((r+c)%2)
		}
	}
	for _, cell := range empty {
		b[cell.Row][cell.Col] = Empty
	}
	return b
}

func rowStrip(row, fromCol, toCol int) []Cell {
	var cells []Cell
	for c := fromCol; c <= toCol; c++ {
		cells = append(cells, Cell{Row: int8(row), Col: int8(c)})
	}
	return cells
}

func mustShapeSet(t *testing.T, shapes ...Shape) ShapeSet {
	t.Helper()
	set, err := NewShapeSet(shapes...)
	require.NoError(t, err)
	return set
}

// randomStates plays random legal moves from the empty board and returns
// every position reached, terminal or not.
func randomStates(rng *rand.Rand, rules *Rules, games int) []State {
	var states []State
	for g := 0; g < games; g++ {
		state := NewState(rules, Board{}, AllShapes)
		states = append(states, state)
		for {
			moves := state.LegalMoves()
			if len(moves) == 0 {
				break
			}
			state = state.Play(moves[rng.Intn(len(moves))])
			states = append(states, state)
		}
	}
	return states
}
