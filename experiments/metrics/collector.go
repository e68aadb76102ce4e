package metrics

import (
	"time"

	"github.com/google/uuid"
)

// AgentConfig describes a computer player taking part in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // "random" or "odds"
	MaxRolls int    // random agents: rolls per turn before stopping
	Sampled  bool   // odds agents: Monte Carlo instead of exact odds
}

type TurnMetric struct {
	Step     int
	Player   int // 0 or 1
	Rolls    int
	Scored   bool
	Busted   bool
	Sum      int
	Progress int
}

type GameMetric struct {
	GameID         uuid.UUID
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	TotalRolls     int
	Busts          int
}

type Collector interface {
	Start(gameID uuid.UUID, startingPlayer int)
	AddTurn(turn TurnMetric)
	Complete(winner string) (GameMetric, []TurnMetric)
}

// collector belongs to one game at a time. It is not safe for concurrent use.
type collector struct {
	gameID         uuid.UUID
	startingPlayer int
	startTime      time.Time
	turns          []TurnMetric
	rolls          int
	busts          int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID uuid.UUID, startingPlayer int) {
	m.gameID = gameID
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.turns = nil
	m.rolls = 0
	m.busts = 0
}

func (m *collector) AddTurn(turn TurnMetric) {
	m.turns = append(m.turns, turn)
	m.rolls += turn.Rolls
	if turn.Busted {
		m.busts++
	}
}

func (m *collector) Complete(winner string) (GameMetric, []TurnMetric) {
	end := time.Now()
	return GameMetric{
		GameID:         m.gameID,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalTurns:     len(m.turns),
		TotalRolls:     m.rolls,
		Busts:          m.busts,
	}, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID uuid.UUID, startingPlayer int) {}
func (m *dummyCollector) AddTurn(turn TurnMetric) {}
func (m *dummyCollector) Complete(winner string) (GameMetric, []TurnMetric) {
	return GameMetric{Winner: winner}, nil
}
