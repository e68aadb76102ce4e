// Package gamemaster sets up and runs a console game between two people.
package gamemaster

import (
	"context"
	"io"

	"cantstop/communication/server"
	"cantstop/config"
	"cantstop/engine"
	"cantstop/game"
	"cantstop/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(gm *GameMaster)

// WithRoller replaces the seeded dice from the configuration.
func WithRoller(roller *game.Roller) Option {
	return func(gm *GameMaster) {
		gm.roller = roller
	}
}

func WithGameID(id uuid.UUID) Option {
	return func(gm *GameMaster) {
		gm.gameID = id
	}
}

// GameMaster manages the game flow around the engine: boards, names, narration and the
// spectator feed.
type GameMaster struct {
	cfg     config.Config
	console *player.Console
	roller  *game.Roller
	gameID  uuid.UUID
}

func NewGameMaster(cfg config.Config, in io.Reader, out io.Writer, options ...Option) *GameMaster {
	gm := &GameMaster{
		cfg:     cfg,
		console: player.NewConsole(in, out),
		gameID:  uuid.New(),
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// Play runs one game to the end and returns the winner's name.
func (gm *GameMaster) Play(ctx context.Context) (string, error) {
	if gm.roller == nil {
		src, err := game.NewRandomSource(gm.cfg.Seed)
		if err != nil {
			return "", err
		}
		gm.roller = game.NewRoller(src)
	}

	boards, err := OpenBoards(ctx, gm.cfg.Board, gm.gameID)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := boards.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to close boards")
		}
	}()

	gm.console.Introduce()
	names, err := player.ReadPlayerNames(gm.console)
	if err != nil {
		return "", err
	}
	gm.console.ShowBoard(boards.Memory.Grid)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	options := []engine.Option{
		engine.WithGameID(gm.gameID),
		engine.WithTurnObserver(gm.console.OnTurnEvent),
		engine.WithTurnHook(gm.console.OnTurnResult),
	}
	if addr := gm.cfg.Spectator.Addr; addr != "" {
		spectators := server.NewServer(boards.Memory)
		options = append(options, engine.WithTurnHook(spectators.Publish))
		go func() {
			if err := spectators.Start(ctx, addr); err != nil {
				log.Error().Err(err).Msg("spectator server stopped")
			}
		}()
	}

	e, err := engine.NewLocalEngine(
		names[:],
		[]game.DecisionProvider{gm.console, gm.console},
		boards.Board,
		gm.roller,
		options...,
	)
	if err != nil {
		return "", err
	}

	winner, _, _, err := e.Run(ctx)
	return winner, err
}
