package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/stretchr/testify/require"
)

func emptyRows() []string {
	rows := make([]string, game.Size)
	for i := range rows {
		rows[i] = strings.Repeat(".", game.Size)
	}
	return rows
}

func TestParseBoard(t *testing.T) {
	t.Run("reading owners", func(t *testing.T) {
		rows := emptyRows()
		rows[2] = "..11111."
		b, err := parseBoard(rows)
		require.NoError(t, err)
		require.Equal(t, 5, b.OccupiedCount())
		require.Equal(t, game.Player1, b[2][2])
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		_, err := parseBoard(emptyRows()[:7])
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)

		rows := emptyRows()
		rows[0] = "......."
		_, err = parseBoard(rows)
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)

		rows[0] = "...x...."
		_, err = parseBoard(rows)
		require.ErrorIs(t, err, game.ErrInvalidCell)
	})
}

func TestParseShapes(t *testing.T) {
	shapes, err := parseShapes("F, i,,Z")
	require.NoError(t, err)
	require.Equal(t, []game.Shape{game.F, game.I, game.Z}, shapes)

	shapes, err = parseShapes("")
	require.NoError(t, err)
	require.Empty(t, shapes)

	_, err = parseShapes("F,Q")
	require.ErrorIs(t, err, game.ErrUnknownShape)
}

func TestSelectRejectsRepeatedShapes(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"select", "--log-level", "error", "--tier", "random", "--used", "I,I"}, emptyRows()...))
	err := rootCmd.Execute()
	require.ErrorIs(t, err, game.ErrDuplicateShape)
}

func TestSelectCommand(t *testing.T) {
	rows := make([]string, game.Size)
	for i := range rows {
		rows[i] = "12121212"
	}
	rows[0] = "....." + "121"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"select", "--log-level", "error", "--tier", "heuristic",
		"--used", "F,L,N,P,T,U,V,W,X,Y,Z"}, rows...))
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "I@(0,0)")
}
