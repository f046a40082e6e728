package agent

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// ErrUnknownTier reports a skill tier outside Random, Heuristic and Search.
var ErrUnknownTier = errors.New("unknown skill tier")

type Agent interface {
	// FindMove returns the chosen move and the search metrics (if collected),
	// or a nil move when the mover has no legal placement.
	FindMove(state game.State) (*game.Move, searcher.SearchMetrics)
}

// Tier selects how much effort an agent spends on a move.
type Tier int

const (
	Random Tier = iota
	Heuristic
	Search
)

var tierNames = map[string]Tier{
	"random":    Random,
	"easy":      Random,
	"heuristic": Heuristic,
	"medium":    Heuristic,
	"search":    Search,
	"hard":      Search,
}

func ParseTier(name string) (Tier, error) {
	if t, ok := tierNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

func (t Tier) Valid() bool {
	return t >= Random && t <= Search
}

func (t Tier) String() string {
	switch t {
	case Random:
		return "random"
	case Heuristic:
		return "heuristic"
	case Search:
		return "search"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

const (
	DefaultOpeningPlies = 2
	DefaultTopFew       = 3
	DefaultJitter       = 2.0
)

type Config struct {
	Tier Tier
	// Duration is the wall-clock budget of the search tier
	Duration time.Duration
	// MaxDepth optionally caps the search tier's depth
	MaxDepth int
	// Seed drives every random choice. Zero draws a fresh seed.
	Seed uint64
	// OpeningPlies is the number of shapes consumed below which the
	// opening policy replaces evaluation
	OpeningPlies int
	// TopFew is how many of the best heuristic moves the middle tier
	// samples from
	TopFew int
	// Jitter is the upper bound of the noise added to heuristic scores
	Jitter   float64
	Evaluate game.Evaluate
	Metrics  bool
}

func DefaultConfig(tier Tier) Config {
	return Config{
		Tier:         tier,
		Duration:     searcher.DefaultDuration,
		OpeningPlies: DefaultOpeningPlies,
		TopFew:       DefaultTopFew,
		Jitter:       DefaultJitter,
		Evaluate:     game.EvaluatePosition,
	}
}

// New builds the agent of the configured tier. An agent owns its random
// source and is not safe for concurrent use.
func New(cfg Config) (Agent, error) {
	if !cfg.Tier.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(cfg.Tier))
	}
	if cfg.Seed == 0 {
		cfg.Seed = frand.Uint64n(math.MaxUint64) + 1
	}
	if cfg.TopFew <= 0 {
		cfg.TopFew = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	switch cfg.Tier {
	case Random:
		return &randomAgent{rng: rng}, nil
	case Heuristic:
		return newHeuristicAgent(cfg, rng), nil
	default:
		return newSearchAgent(cfg, rng), nil
	}
}

// SelectMove picks a move for the side to move on board, given the shapes
// already consumed by both players. A nil move means the mover has no legal
// placement and loses.
func SelectMove(board game.Board, used []game.Shape, tier Tier) (*game.Move, error) {
	return SelectMoveWith(board, used, DefaultConfig(tier))
}

func SelectMoveWith(board game.Board, used []game.Shape, cfg Config) (*game.Move, error) {
	avail, err := game.AvailableFrom(used)
	if err != nil {
		return nil, fmt.Errorf("select move: %w", err)
	}
	a, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("select move: %w", err)
	}
	move, _ := a.FindMove(game.NewState(game.Standard, board, avail))
	return move, nil
}

// trivialMove settles positions that need no decision: it reports true with
// a nil move when none is legal, or with the single legal move.
func trivialMove(moves []game.Move) (*game.Move, bool) {
	switch len(moves) {
	case 0:
		return nil, true
	case 1:
		return &moves[0], true
	default:
		return nil, false
	}
}
