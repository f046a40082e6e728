package game

import "math/bits"

// Region is a 4-connected component of empty cells.
type Region struct {
	Cells PlacementKey
	Size  int
}

// Regions flood-fills the empty cells of b into 4-connected components,
// ordered by their first cell in row-major order.
func Regions(b Board) []Region {
	var visited PlacementKey
	var regions []Region
	stack := make([]int, 0, NumCells)
	for start := 0; start < NumCells; start++ {
		bit := PlacementKey(1) << start
		if visited&bit != 0 || b[start/Size][start%Size] != Empty {
			continue
		}
		var cells PlacementKey
		visited |= bit
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cells |= 1 << idx
			row, col := idx/Size, idx%Size
			for _, d := range neighbors {
				r, c := row+d.Row, col+d.Col
				if !inBounds(r, c) || b[r][c] != Empty {
					continue
				}
				next := PlacementKey(1) << (r*Size + c)
				if visited&next == 0 {
					visited |= next
					stack = append(stack, r*Size+c)
				}
			}
		}
		regions = append(regions, Region{Cells: cells, Size: bits.OnesCount64(uint64(cells))})
	}
	return regions
}

var neighbors = [4]struct{ Row, Col int }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// DeadCellCount sums the cells of every empty region that no available
// shape can occupy. A region is either wholly live or wholly dead: one fitting
// placement anywhere inside keeps all of its cells live, so this is a
// penalty signal for evaluation and never a legality rule.
func (r *Rules) DeadCellCount(b Board, avail ShapeSet) int {
	dead := 0
	for _, region := range Regions(b) {
		if region.Size < 5 || avail.Empty() || !r.regionHosts(region, avail) {
			dead += region.Size
		}
	}
	return dead
}

// regionHosts reports whether some available shape fits entirely inside
// the region's own cells.
func (r *Rules) regionHosts(region Region, avail ShapeSet) bool {
	var masked Board
	for idx := 0; idx < NumCells; idx++ {
		if region.Cells&(1<<idx) == 0 {
			masked[idx/Size][idx%Size] = blocked
		}
	}
	return r.HasAnyMove(masked, avail)
}
