package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"cantstop/experiments/metrics"
	"cantstop/game"

	"github.com/stretchr/testify/require"
)

func TestRunPolicyExperiment(t *testing.T) {
	out := t.TempDir()

	dir, err := RunPolicyExperiment(context.Background(), Settings{Games: 2, OutDir: out, Seed: 7})

	require.NoError(t, err)
	require.Equal(t, out, filepath.Dir(filepath.Dir(dir)), "Results go to <out>/<name>/<timestamp>")

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, len(policyConfigs)+1)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, len(policyConfigs)*2+1)
	for _, row := range games[1:] {
		require.Contains(t, []string{"Player1", "Player2"}, row[5], "Every game has a winner")
	}

	turns := readCSV(t, filepath.Join(dir, "turn_records.csv"))
	require.Greater(t, len(turns), len(games), "Games take at least one turn")
}

func TestRunGame(t *testing.T) {
	ctx := context.Background()
	random := metrics.AgentConfig{ID: 1, Kind: "random", MaxRolls: 2}
	odds := metrics.AgentConfig{ID: 2, Kind: "odds"}

	t.Run("replaying a seeded game", func(t *testing.T) {
		winner1, game1, turns1, err := runGame(ctx, random, odds, 0, 99)
		require.NoError(t, err)
		winner2, game2, turns2, err := runGame(ctx, random, odds, 0, 99)
		require.NoError(t, err)

		require.Equal(t, winner1, winner2)
		require.Equal(t, game1.TotalRolls, game2.TotalRolls)
		require.Equal(t, turns1, turns2)
	})

	t.Run("replaying a seeded game with sampled odds", func(t *testing.T) {
		sampled := metrics.AgentConfig{ID: 5, Kind: "odds", Sampled: true}
		winner1, _, turns1, err := runGame(ctx, sampled, random, 0, 42)
		require.NoError(t, err)
		winner2, _, turns2, err := runGame(ctx, sampled, random, 0, 42)
		require.NoError(t, err)

		require.Equal(t, winner1, winner2)
		require.Equal(t, turns1, turns2)
	})

	t.Run("starting with the given player", func(t *testing.T) {
		_, gameMetric, turns, err := runGame(ctx, random, random, 1, 5)
		require.NoError(t, err)

		require.Equal(t, 1, gameMetric.StartingPlayer)
		require.Equal(t, 1, turns[0].Player)
	})

	t.Run("rejecting unknown agents", func(t *testing.T) {
		_, _, _, err := runGame(ctx, random, metrics.AgentConfig{Kind: "psychic"}, 0, 1)
		require.ErrorContains(t, err, "unknown agent kind")
	})
}

func TestNewAgent(t *testing.T) {
	src, err := game.NewRandomSource(3)
	require.NoError(t, err)
	table := game.StandardWinTable()

	sampled, err := newAgent(metrics.AgentConfig{Kind: "odds", Sampled: true}, src, table, 3)
	require.NoError(t, err)

	// Both odds agents should agree on an easy pick: 7 needs fewer expected rolls than 2.
	d := game.Decision{ValidSums: []int{2, 7}}
	sum, err := sampled.ChooseSum(d)
	require.NoError(t, err)
	require.Equal(t, 7, sum)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
