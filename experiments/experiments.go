package experiments

import (
	"context"
	"fmt"
	"sync"

	"cantstop/board"
	"cantstop/engine"
	"cantstop/experiments/metrics"
	"cantstop/game"
	"cantstop/player"
	"cantstop/searcher"

	"github.com/rs/zerolog/log"
)

const (
	SamplerGoroutines = 4
	SamplerEpisodes   = 20_000
)

type Settings struct {
	Games  int    // per match up
	OutDir string // root directory for the result files
	Seed   uint64 // 0 draws a fresh seed for every game
}

var policyConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "random", MaxRolls: 1},
	{ID: 2, Kind: "random", MaxRolls: 3},
	{ID: 3, Kind: "random", MaxRolls: 6},
	{ID: 4, Kind: "odds"},
	{ID: 5, Kind: "odds", Sampled: true},
}

var exactOdds = sync.OnceValue(searcher.ExactOdds)

// RunPolicyExperiment pairs every agent against the exact odds agent and returns the
// directory holding the results.
func RunPolicyExperiment(ctx context.Context, settings Settings) (string, error) {
	baseline := policyConfigs[3]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range policyConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, "policy", policyConfigs, matchUps, settings)
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, settings Settings) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			count++
			seed := settings.Seed
			if seed != 0 {
				seed += uint64(count)
			}

			// Alternate who starts so neither agent gets the first turn advantage
			winner, gameMetric, turnMetrics, err := runGame(ctx, config1, config2, i%2, seed)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d turns in %s", len(gameRecords), len(turnRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents on a fresh memory board
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, starting int, seed uint64) (string, metrics.GameMetric, []metrics.TurnMetric, error) {
	src, err := game.NewRandomSource(seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	table := game.StandardWinTable()

	agent1, err := newAgent(config1, src, table, seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agent2, err := newAgent(config2, src, table, seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e, err := engine.NewLocalEngine(
		[]string{"Player1", "Player2"},
		[]game.DecisionProvider{agent1, agent2},
		board.NewMemory(),
		game.NewRoller(src),
		engine.WithWinTable(table),
		engine.WithMetrics(metrics.NewCollector()),
		engine.WithStartingPlayer(starting),
	)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	return e.Run(ctx)
}

func newAgent(config metrics.AgentConfig, src game.RandomSource, table game.WinTable, seed uint64) (game.DecisionProvider, error) {
	switch config.Kind {
	case "random":
		return player.NewRandom(src, config.MaxRolls, table), nil
	case "odds":
		if config.Sampled {
			sampler := searcher.NewSampler(
				searcher.WithGoroutines(SamplerGoroutines),
				searcher.WithEpisodes(SamplerEpisodes),
				searcher.WithSeed(seed),
			)
			return player.NewOdds(sampler, table), nil
		}
		return player.NewOdds(exactOdds(), table), nil
	default:
		return nil, fmt.Errorf("unknown agent kind: %q", config.Kind)
	}
}
