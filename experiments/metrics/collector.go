package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/blockblockers/Deadblock-sub004/game"
	"github.com/blockblockers/Deadblock-sub004/searcher"
	"github.com/blockblockers/Deadblock-sub004/searcher/agent"
	"github.com/google/uuid"
)

type AgentConfig struct {
	ID       int
	Tier     agent.Tier
	Duration time.Duration
	MaxDepth int
	Evaluate string // evaluator name, see experiments.Evaluators
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string // empty when the mover had no legal move
	searcher.SearchMetrics
}

type GameMetric struct {
	ID         uuid.UUID
	Winner     game.Player
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	EmptyCells int // left on the final board
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Player1
	Agent2 int // AgentConfig.ID playing Player2
	GameMetric
}

// WinnerAgent returns the AgentConfig.ID of the winning side.
func (r GameRecord) WinnerAgent() int {
	if r.Winner == game.Player1 {
		return r.Agent1
	}
	return r.Agent2
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector gathers records from games running on several goroutines.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add stores one finished game and returns its record ID.
func (c *Collector) Add(agent1, agent2 int, gm GameMetric, mms []MoveMetric) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := len(c.games) + 1
	c.games = append(c.games, GameRecord{ID: id, Agent1: agent1, Agent2: agent2, GameMetric: gm})
	for _, mm := range mms {
		c.moves = append(c.moves, MoveRecord{Game: id, MoveMetric: mm})
	}
	return id
}

func (c *Collector) GameRecords() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]GameRecord(nil), c.games...)
}

// MoveRecords returns the moves ordered by game then step.
func (c *Collector) MoveRecords() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := append([]MoveRecord(nil), c.moves...)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Game != records[j].Game {
			return records[i].Game < records[j].Game
		}
		return records[i].Step < records[j].Step
	})
	return records
}

// Wins counts won games per AgentConfig.ID.
func (c *Collector) Wins() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	wins := make(map[int]int)
	for _, g := range c.games {
		wins[g.WinnerAgent()]++
	}
	return wins
}
