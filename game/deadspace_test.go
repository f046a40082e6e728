package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeadCellCount(t *testing.T) {
	rules := NewStandardRules()

	t.Run("marking an enclosed single cell dead", func(t *testing.T) {
		b := fullBoard(Cell{Row: 3, Col: 3})
		for _, avail := range []ShapeSet{AllShapes, mustShapeSet(t, I), mustShapeSet(t, P, X), 0} {
			require.Equal(t, 1, rules.DeadCellCount(b, avail), "A lone empty cell is dead whatever remains")
		}
	})

	t.Run("marking small regions dead", func(t *testing.T) {
		cells := append(rowStrip(0, 0, 3), rowStrip(7, 6, 7)...)
		b := fullBoard(cells...)
		require.Equal(t, 6, rules.DeadCellCount(b, AllShapes), "Regions under 5 cells cannot host a pentomino")
	})

	t.Run("marking a large region dead when no remaining shape fits", func(t *testing.T) {
		cells := append(rowStrip(2, 2, 4), rowStrip(3, 2, 4)...)
		b := fullBoard(cells...)
		require.Equal(t, 6, rules.DeadCellCount(b, mustShapeSet(t, I, X)), "A 2x3 region hosts neither I nor X")
		require.Zero(t, rules.DeadCellCount(b, mustShapeSet(t, P)), "P fits a 2x3 region")
		require.Zero(t, rules.DeadCellCount(b, mustShapeSet(t, U, I)), "U fits a 2x3 region")
	})

	t.Run("keeping a region live when a shape fits anywhere inside", func(t *testing.T) {
		b := fullBoard(rowStrip(5, 0, 6)...)
		require.Zero(t, rules.DeadCellCount(b, mustShapeSet(t, I)), "Cells outside the fitting I are not modeled separately")
		require.Equal(t, 7, rules.DeadCellCount(b, mustShapeSet(t, L)))
	})

	t.Run("finding no dead space on an empty board", func(t *testing.T) {
		require.Zero(t, rules.DeadCellCount(Board{}, AllShapes))
	})

	t.Run("splitting regions by 4-connectivity", func(t *testing.T) {
		b := fullBoard(Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})
		regions := Regions(b)
		require.Len(t, regions, 2, "Diagonal neighbours are separate regions")
		require.Equal(t, 1, regions[0].Size)
		require.Equal(t, 1, regions[1].Size)
		require.Len(t, Regions(Board{}), 1)
		require.Equal(t, NumCells, Regions(Board{})[0].Size)
	})
}
