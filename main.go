package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"cantstop/board"
	"cantstop/communication"
	"cantstop/communication/client"
	"cantstop/config"
	"cantstop/engine"
	"cantstop/experiments"
	"cantstop/game"
	"cantstop/gamemaster"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "cantstop.yaml", "Path to the YAML configuration")
	mode := flag.String("mode", "play", "play, simulate or watch")
	watchURL := flag.String("watch-url", "http://localhost:8080", "Spectator server to watch")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, cfg)
	case "simulate":
		err = simulate(ctx, cfg)
	case "watch":
		err = watch(ctx, *watchURL)
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}

	if err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		if errors.Is(err, game.ErrRandomSource) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func play(ctx context.Context, cfg config.Config) error {
	gm := gamemaster.NewGameMaster(cfg, os.Stdin, os.Stdout)
	_, err := gm.Play(ctx)
	return err
}

func simulate(ctx context.Context, cfg config.Config) error {
	dir, err := experiments.RunPolicyExperiment(ctx, experiments.Settings{
		Games:  cfg.Experiment.Games,
		OutDir: cfg.Experiment.OutDir,
		Seed:   cfg.Seed,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", dir)
	return nil
}

func watch(ctx context.Context, url string) error {
	c := client.NewClient(url)
	return c.Watch(ctx, time.Second, func(cells []communication.Cell, turn engine.TurnResult) {
		switch {
		case turn.Outcome.Busted:
			fmt.Printf("Turn %d: %s busted after %d rolls\n", turn.Step, turn.Player, turn.Outcome.Rolls)
		case turn.Outcome.Scored:
			fmt.Printf("Turn %d: %s reached %s\n", turn.Step, turn.Player, turn.Outcome.Target)
		default:
			fmt.Printf("Turn %d: %s did not score\n", turn.Step, turn.Player)
		}
		if err := board.Render(os.Stdout, communication.Grid(cells)); err != nil {
			log.Warn().Err(err).Msg("could not draw the board")
		}
		if turn.Won {
			fmt.Printf("%s won the game!\n", turn.Player)
		}
	})
}
