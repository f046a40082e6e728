package searcher

import (
	"testing"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/stretchr/testify/require"
)

func TestNewAlphaBeta(t *testing.T) {
	t.Run("panicking without a budget or depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewAlphaBeta()
		}, "Should panic when neither duration nor depth is set")
	})

	t.Run("ignoring non-positive options", func(t *testing.T) {
		ab := NewAlphaBeta(WithMaxDepth(3), WithDuration(-time.Second), WithBranching())
		require.Zero(t, ab.Duration())
		require.Equal(t, DefaultBranching, ab.branching)
	})

	t.Run("capping branching per ply", func(t *testing.T) {
		ab := NewAlphaBeta(WithMaxDepth(3), WithBranching(10, 5))
		require.Equal(t, 10, ab.branchCap(0))
		require.Equal(t, 5, ab.branchCap(1))
		require.Equal(t, 5, ab.branchCap(7), "Deeper plies should reuse the last cap")
	})
}

func TestSearch(t *testing.T) {
	t.Run("finding the only winning move", func(t *testing.T) {
		state := trapState(t)
		require.Len(t, state.LegalMoves(), 3)

		result := NewAlphaBeta(WithMaxDepth(4), WithMetrics()).Search(state)

		require.NotNil(t, result.Move)
		require.Equal(t, game.I, result.Move.Shape)
		require.Equal(t, 3, result.Move.Row)
		require.Equal(t, 0, result.Move.Col)
		require.GreaterOrEqual(t, result.Score, WinThreshold, "A proven win should score past the threshold")
		require.Positive(t, result.Metrics.Nodes)
	})

	t.Run("scoring faster wins higher", func(t *testing.T) {
		require.Greater(t, terminalScore(3, false), terminalScore(1, false))
		require.Greater(t, terminalScore(1, true), terminalScore(3, true))
	})

	t.Run("returning a forced move without searching", func(t *testing.T) {
		avail, err := game.NewShapeSet(game.I, game.X)
		require.NoError(t, err)
		state := game.NewState(nil, boardWithHoles(strip(5, 2, 6)...), avail)

		result := NewAlphaBeta(WithMaxDepth(4)).Search(state)

		require.True(t, result.Forced)
		require.NotNil(t, result.Move)
		require.Equal(t, game.I, result.Move.Shape)
		require.Equal(t, 5, result.Move.Row)
		require.Equal(t, 2, result.Move.Col)
	})

	t.Run("returning no move when stuck", func(t *testing.T) {
		state := game.NewState(nil, boardWithHoles(), game.AllShapes)

		result := NewAlphaBeta(WithMaxDepth(4)).Search(state)

		require.Nil(t, result.Move)
		require.Equal(t, game.LossScore, result.Score)
	})

	t.Run("leaving the input state untouched", func(t *testing.T) {
		state := trapState(t)
		before := state.Board

		NewAlphaBeta(WithMaxDepth(4)).Search(state)

		require.Equal(t, before, state.Board, "Search should only play on copies")
	})

	t.Run("completing fixed depths without a budget", func(t *testing.T) {
		avail, err := game.NewShapeSet(game.I, game.L, game.P)
		require.NoError(t, err)
		holes := append(strip(0, 0, 7), strip(1, 0, 7)...)
		state := game.NewState(nil, boardWithHoles(holes...), avail)

		result := NewAlphaBeta(WithMaxDepth(2)).Search(state)

		require.NotNil(t, result.Move)
		require.Equal(t, 2, result.CompletedDepth)
		require.False(t, result.TimedOut)
	})

	t.Run("being reproducible at a fixed depth", func(t *testing.T) {
		avail, err := game.NewShapeSet(game.I, game.L, game.P, game.T)
		require.NoError(t, err)
		holes := append(strip(0, 0, 7), strip(1, 0, 7)...)
		state := game.NewState(nil, boardWithHoles(holes...), avail)

		first := NewAlphaBeta(WithMaxDepth(3)).Search(state)
		second := NewAlphaBeta(WithMaxDepth(3)).Search(state)

		require.Equal(t, *first.Move, *second.Move)
		require.Equal(t, first.Score, second.Score)
	})

	t.Run("respecting the time budget", func(t *testing.T) {
		state := game.NewState(nil, game.Board{}, game.AllShapes)
		budget := 200 * time.Millisecond

		start := time.Now()
		result := NewAlphaBeta(WithDuration(budget), WithMetrics()).Search(state)
		elapsed := time.Since(start)

		require.NotNil(t, result.Move, "Should return the best move found so far")
		require.Less(t, elapsed, budget+2*time.Second, "Should unwind shortly after the deadline")
	})
}

func TestSearchContext(t *testing.T) {
	t.Run("sampling the clock on a fixed cadence", func(t *testing.T) {
		sc := newSearchContext(time.Now().Add(-time.Second))
		for i := 1; i < DeadlineCheckInterval; i++ {
			require.False(t, sc.tick(), "Should not sample before the interval")
		}
		require.True(t, sc.tick(), "Should notice the passed deadline on the sampling call")
		require.True(t, sc.Expired())
	})

	t.Run("checking the clock on demand", func(t *testing.T) {
		sc := newSearchContext(time.Now().Add(-time.Second))
		require.True(t, sc.check())
		require.True(t, sc.tick())
		require.False(t, newSearchContext(time.Now().Add(time.Hour)).check())
	})

	t.Run("never expiring without a deadline", func(t *testing.T) {
		sc := newSearchContext(time.Time{})
		for i := 0; i < 3*DeadlineCheckInterval; i++ {
			require.False(t, sc.tick())
		}
		require.Equal(t, 3*DeadlineCheckInterval, sc.Calls())
	})
}
