package game

import "errors"

var (
	// ErrUnknownShape reports a shape identifier outside the catalog.
	ErrUnknownShape = errors.New("unknown shape identifier")
	// ErrInvalidBoardDimensions reports a grid that is not Size x Size.
	ErrInvalidBoardDimensions = errors.New("invalid board dimensions")
	// ErrDuplicateShape reports a shape listed as used more than once.
	ErrDuplicateShape = errors.New("shape used more than once")
	// ErrInvalidCell reports a negative owner in a caller-supplied grid.
	ErrInvalidCell = errors.New("invalid cell value")
)

// Evaluate scores a state for the side to move, or for its opponent when
// perspectiveIsMover is false. Higher is better for the chosen perspective.
// A mover without a legal placement must score LossScore (WinScore for the
// opponent's perspective): searchers use it as the terminal test at leaves.
type Evaluate func(s State, perspectiveIsMover bool) float64
