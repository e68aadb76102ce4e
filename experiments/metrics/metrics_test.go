package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	id := uuid.New()
	c.Start(id, 1)
	c.AddTurn(TurnMetric{Step: 1, Player: 1, Rolls: 3, Scored: true, Sum: 7, Progress: 3})
	c.AddTurn(TurnMetric{Step: 2, Player: 0, Rolls: 2, Busted: true})

	game, turns := c.Complete("Ana")

	require.Equal(t, id, game.GameID)
	require.Equal(t, 1, game.StartingPlayer)
	require.Equal(t, "Ana", game.Winner)
	require.Equal(t, 2, game.TotalTurns)
	require.Equal(t, 5, game.TotalRolls)
	require.Equal(t, 1, game.Busts)
	require.Len(t, turns, 2)
	require.False(t, game.EndTime.Before(game.StartTime))
}

func TestCollectorRestart(t *testing.T) {
	c := NewCollector()
	c.Start(uuid.New(), 0)
	c.AddTurn(TurnMetric{Step: 1, Rolls: 4, Busted: true})
	c.Complete("Ana")

	c.Start(uuid.New(), 1)
	c.AddTurn(TurnMetric{Step: 1, Player: 1, Rolls: 2, Scored: true, Sum: 6, Progress: 2})
	game, turns := c.Complete("Ben")

	require.Equal(t, 2, game.TotalRolls, "Counts from the previous game should be dropped")
	require.Zero(t, game.Busts)
	require.Len(t, turns, 1)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(uuid.New(), 0)
	c.AddTurn(TurnMetric{Rolls: 3})

	game, turns := c.Complete("Ben")

	require.Equal(t, "Ben", game.Winner, "Winner is still reported without metrics")
	require.Zero(t, game.TotalTurns)
	require.Nil(t, turns)
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "policy")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "random", MaxRolls: 2}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 1, GameMetric: GameMetric{GameID: uuid.New(), Winner: "Ana"}}}))
	require.NoError(t, w.WriteTurnRecords([]TurnRecord{{Game: 1, TurnMetric: TurnMetric{Step: 1, Rolls: 2, Scored: true, Sum: 7, Progress: 2}}}))

	for name, columns := range map[string]int{"agent_configs.csv": 4, "game_records.csv": 12, "turn_records.csv": 8} {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		rows, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, rows, 2, "%s should hold a header and one row", name)
		require.Len(t, rows[0], columns, "%s header", name)
	}
}
