package searcher

import (
	"testing"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/stretchr/testify/require"
)

func TestTranspositions(t *testing.T) {
	state := trapState(t)

	t.Run("returning stored scores by depth", func(t *testing.T) {
		tt := newTranspositions()
		_, ok := tt.lookup(state, 2)
		require.False(t, ok)

		tt.store(state, 2, 42)
		score, ok := tt.lookup(state, 2)
		require.True(t, ok)
		require.Equal(t, 42.0, score)

		_, ok = tt.lookup(state, 3)
		require.False(t, ok, "Scores at another depth are unrelated")
	})

	t.Run("missing on a colliding hash", func(t *testing.T) {
		tt := newTranspositions()
		tt.entries[ttKey{hash: state.Hash(), depth: 1}] = ttEntry{
			occupancy: state.Board.Occupancy() &^ 1,
			avail:     state.Available,
			score:     7,
		}
		_, ok := tt.lookup(state, 1)
		require.False(t, ok)
	})

	t.Run("starting over when full", func(t *testing.T) {
		tt := newTranspositions()
		for i := 0; i < MaxTranspositions; i++ {
			tt.entries[ttKey{hash: game.StateHash(i), depth: 1}] = ttEntry{}
		}
		tt.store(state, 1, 1)
		require.Equal(t, 1, tt.len())
	})
}

// minimax is an exhaustive search without pruning, caps or caching.
func minimax(state game.State, depth int, maximizing bool) float64 {
	if depth <= 0 {
		return game.EvaluatePosition(state, maximizing)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(depth, maximizing)
	}
	best := posInf
	if maximizing {
		best = negInf
	}
	for _, m := range moves {
		score := minimax(state.Play(m), depth-1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// exactHoles leaves three isolated holes shaped exactly like I, X and L,
// so each shape has a single placement and any two of them commute.
func exactHoles(t *testing.T) game.State {
	t.Helper()
	holes := strip(0, 0, 4)
	holes = append(holes, game.Cell{Row: 2, Col: 2}, game.Cell{Row: 3, Col: 1}, game.Cell{Row: 3, Col: 2},
		game.Cell{Row: 3, Col: 3}, game.Cell{Row: 4, Col: 2})
	holes = append(holes, game.Cell{Row: 2, Col: 6}, game.Cell{Row: 3, Col: 6}, game.Cell{Row: 4, Col: 6},
		game.Cell{Row: 5, Col: 6}, game.Cell{Row: 5, Col: 7})
	avail, err := game.NewShapeSet(game.I, game.X, game.L)
	require.NoError(t, err)
	return game.NewState(nil, boardWithHoles(holes...), avail)
}

func TestSearchMatchesMinimax(t *testing.T) {
	avail, err := game.NewShapeSet(game.I, game.L, game.P)
	require.NoError(t, err)
	holes := append(strip(0, 0, 7), strip(1, 0, 7)...)
	positions := []game.State{
		trapState(t),
		exactHoles(t),
		game.NewState(nil, boardWithHoles(holes...), avail),
	}

	for _, state := range positions {
		result := NewAlphaBeta(WithMaxDepth(3), WithBranching(1000)).Search(state)
		require.NotNil(t, result.Move)
		require.Positive(t, result.CompletedDepth)

		expected := negInf
		for _, m := range state.LegalMoves() {
			expected = max(expected, minimax(state.Play(m), result.CompletedDepth-1, false))
		}
		require.Equal(t, expected, result.Score, "Pruning and caching should not change the score\n%s", state.Board)
	}
}

func TestSearchReusesTranspositions(t *testing.T) {
	state := exactHoles(t)
	byShape := make(map[game.Shape]game.Move)
	for _, m := range state.LegalMoves() {
		byShape[m.Shape] = m
	}
	require.Len(t, byShape, 3)
	first := state.Play(byShape[game.X]).Play(byShape[game.I])
	second := state.Play(byShape[game.I]).Play(byShape[game.X])
	require.Equal(t, first.Hash(), second.Hash())

	ab := NewAlphaBeta(WithMetrics(), WithMaxDepth(1))
	ab.metrics.Start()
	sc := newSearchContext(time.Time{})

	score := ab.alphaBeta(sc, first, 1, 2, negInf, posInf, true)
	require.Equal(t, game.WinScore, score, "The side to move places L and leaves nothing")
	require.Equal(t, 1, sc.tt.len())

	require.Equal(t, score, ab.alphaBeta(sc, second, 1, 2, negInf, posInf, true))
	require.Equal(t, int64(1), ab.metrics.Complete().Hits)
}

func TestLeafEvaluation(t *testing.T) {
	stuck := game.NewState(nil, boardWithHoles(), game.AllShapes)
	ab := NewAlphaBeta(WithMaxDepth(1))

	require.Equal(t, game.LossScore, ab.alphaBeta(newSearchContext(time.Time{}), stuck, 0, 1, negInf, posInf, true))
	require.Equal(t, game.WinScore, ab.alphaBeta(newSearchContext(time.Time{}), stuck, 0, 1, negInf, posInf, false))
}
