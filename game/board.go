package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Size is the side length of the square board.
const Size = 8

const NumCells = Size * Size

// Player owns board cells. The zero value marks an empty cell.
type Player int8

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2

	// blocked marks cells masked out during region analysis
	blocked Player = -1
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Board is an 8x8 grid of owners. It is a value type: assigning or passing a
// Board copies it, so speculative play never touches the caller's grid.
type Board [Size][Size]Player

// NewBoard validates a caller-supplied grid.
func NewBoard(grid [][]Player) (Board, error) {
	var b Board
	if len(grid) != Size {
		return b, fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoardDimensions, len(grid), Size)
	}
	for r, row := range grid {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidBoardDimensions, r, len(row), Size)
		}
		for c, p := range row {
			if p < 0 {
				return b, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidCell, r, c, p)
			}
			b[r][c] = p
		}
	}
	return b, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// CanPlace reports whether every cell of o anchored at (row, col) lies on
// the board and is empty.
func (b *Board) CanPlace(row, col int, o Orientation) bool {
	for _, c := range o {
		r, cc := row+int(c.Row), col+int(c.Col)
		if !inBounds(r, cc) || b[r][cc] != Empty {
			return false
		}
	}
	return true
}

// Apply returns a copy of the board with the move's cells owned by p.
// It panics if the move overlaps an occupied cell or leaves the board.
func (b Board) Apply(m Move, p Player) Board {
	for _, c := range m.Cells {
		r, cc := int(c.Row), int(c.Col)
		if !inBounds(r, cc) || b[r][cc] != Empty {
			panic(fmt.Sprintf("illegal placement of %s at (%d,%d): cell (%d,%d) unavailable", m.Shape, m.Row, m.Col, r, cc))
		}
		b[r][cc] = p
	}
	return b
}

// Occupancy returns the occupied cells as a bitmask indexed row*Size+col.
func (b *Board) Occupancy() PlacementKey {
	var key PlacementKey
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				key |= 1 << (r*Size + c)
			}
		}
	}
	return key
}

func (b *Board) OccupiedCount() int {
	return bits.OnesCount64(uint64(b.Occupancy()))
}

func (b *Board) EmptyCount() int {
	return NumCells - b.OccupiedCount()
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch p := b[r][c]; {
			case p == Empty:
				sb.WriteByte('.')
			case p < 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte(byte('0' + p%10))
			}
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
