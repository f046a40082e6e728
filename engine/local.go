package engine

import (
	"time"

	"github.com/blockblockers/Deadblock-sub004/experiments/metrics"
	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher/agent"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MoveHook observes every move the engine applies.
type MoveHook func(step int, player game.Player, move game.Move, state game.State)

type LocalEngine struct {
	State  game.State
	Agents []agent.Agent // Agents[0] plays Player1
	OnMove MoveHook
}

func NewLocalEngine(agents []agent.Agent, state game.State) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &LocalEngine{
		State:  state,
		Agents: agents,
	}
}

// NewGame starts two agents on an empty board with every shape available.
func NewGame(agents []agent.Agent) *LocalEngine {
	return NewLocalEngine(agents, game.NewState(game.Standard, game.Board{}, game.AllShapes))
}

// Run executes the game loop until the mover has no legal move.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{ID: uuid.New(), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", gameMetric.ID.String()).Msgf("player %d is starting", e.State.Mover)

	winner := game.Empty
	for step := 1; step <= MaxMoves+1 && winner == game.Empty; step++ {
		mover := e.State.Mover
		move, searchMetrics := e.Agents[mover-1].FindMove(e.State)
		mm := metrics.MoveMetric{Step: step, Player: mover, SearchMetrics: searchMetrics}

		switch {
		case move == nil && e.State.HasAnyMove():
			log.Error().Int("step", step).Msgf("player %d returned no move with legal moves left, forfeiting", mover)
			winner = mover.Opponent()
		case move == nil:
			winner = mover.Opponent()
		case !e.State.Rules().IsLegal(e.State.Board, e.State.Available, *move):
			log.Error().Int("step", step).Str("move", move.String()).Msgf("player %d returned an illegal move, forfeiting", mover)
			winner = mover.Opponent()
		default:
			mm.Move = move.String()
			e.State = e.State.Play(*move)
			log.Debug().
				Int("step", step).
				Int("player", int(mover)).
				Str("move", mm.Move).
				Int("completedDepth", searchMetrics.CompletedDepth).
				Msg("move played")
			if e.OnMove != nil {
				e.OnMove(step, mover, *move, e.State)
			}
			gameMetric.TotalMoves++
		}
		moveMetrics = append(moveMetrics, mm)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.EmptyCells = e.State.Board.EmptyCount()

	log.Info().
		Str("game", gameMetric.ID.String()).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msgf("player %d won", winner)

	return winner, gameMetric, moveMetrics
}
