package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// Phase buckets a game by how many shapes have been consumed.
type Phase int

const (
	Opening Phase = iota
	Midgame
	Endgame
)

const (
	OpeningMaxUsed = 2 // shapes consumed while still in the opening
	EndgameMinUsed = 7 // shapes consumed once the endgame starts
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Midgame:
		return "midgame"
	default:
		return "endgame"
	}
}

// PhaseOf derives the game phase from the shapes still available.
func PhaseOf(avail ShapeSet) Phase {
	used := NumShapes - avail.Len()
	switch {
	case used <= OpeningMaxUsed:
		return Opening
	case used >= EndgameMinUsed:
		return Endgame
	default:
		return Midgame
	}
}

// MoverFor returns the side to move once the given number of shapes has
// been consumed. Player1 moves first.
func MoverFor(used int) Player {
	if used%2 == 0 {
		return Player1
	}
	return Player2
}

// State is an immutable position: operations on a State always return a new
// copy.
type State struct {
	Board     Board
	Available ShapeSet
	Mover     Player
	rules     *Rules
}

// NewState builds a position with the mover inferred from the shapes used.
func NewState(rules *Rules, b Board, avail ShapeSet) State {
	if rules == nil {
		rules = Standard
	}
	avail &= AllShapes
	return State{
		Board:     b,
		Available: avail,
		Mover:     MoverFor(NumShapes - avail.Len()),
		rules:     rules,
	}
}

func (s State) Rules() *Rules {
	if s.rules == nil {
		return Standard
	}
	return s.rules
}

func (s State) Player() Player {
	return s.Mover
}

func (s State) Phase() Phase {
	return PhaseOf(s.Available)
}

func (s State) Used() int {
	return NumShapes - s.Available.Len()
}

// LegalMoves lists the mover's distinct legal placements.
func (s State) LegalMoves() []Move {
	return s.Rules().EnumerateMoves(s.Board, s.Available, true)
}

func (s State) HasAnyMove() bool {
	return s.Rules().HasAnyMove(s.Board, s.Available)
}

// Play returns the state after the mover places m. It panics if m uses an
// unavailable shape or an illegal cell.
func (s State) Play(m Move) State {
	if !s.Available.Has(m.Shape) {
		panic("shape " + m.Shape.String() + " is not available")
	}
	return State{
		Board:     s.Board.Apply(m, s.Mover),
		Available: s.Available.Remove(m.Shape),
		Mover:     s.Mover.Opponent(),
		rules:     s.rules,
	}
}

// Winner returns the opponent of a mover with no legal move, or Empty while
// the game goes on.
func (s State) Winner() Player {
	if s.HasAnyMove() {
		return Empty
	}
	return s.Mover.Opponent()
}

// Hash identifies a position for transposition lookups. Owners never
// affect legality or evaluation, so positions that differ only in who owns
// the occupied cells hash equally.
func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.Mover))
	binary.Write(hasher, binary.LittleEndian, uint16(s.Available))
	binary.Write(hasher, binary.LittleEndian, uint64(s.Board.Occupancy()))

	return StateHash(hasher.Sum64())
}

func (s State) Evaluate(perspectiveIsMover bool) float64 {
	return s.Rules().Evaluate(s.Board, s.Available, perspectiveIsMover)
}
