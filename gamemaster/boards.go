package gamemaster

import (
	"context"
	"errors"
	"fmt"

	"cantstop/board"
	"cantstop/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Boards is the board stack of one game: the memory board the console and spectators
// read, plus the configured store when it is not memory.
type Boards struct {
	Memory  *board.Memory
	Board   board.Board
	closers []func(context.Context) error
}

func OpenBoards(ctx context.Context, cfg config.Board, gameID uuid.UUID) (*Boards, error) {
	b := &Boards{Memory: board.NewMemory()}

	switch cfg.Driver {
	case "", "memory":
		b.Board = b.Memory
	case "sqlite":
		store, err := board.NewSQLite(ctx, cfg.DSN, gameID)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite board: %w", err)
		}
		b.Board = board.Multi{b.Memory, store}
		b.closers = append(b.closers, func(context.Context) error { return store.Close() })
	case "postgres":
		store, err := board.NewPostgres(ctx, cfg.DSN, gameID)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres board: %w", err)
		}
		b.Board = board.Multi{b.Memory, store}
		b.closers = append(b.closers, store.Close)
	default:
		return nil, fmt.Errorf("unknown board driver: %s", cfg.Driver)
	}

	log.Debug().Str("driver", cfg.Driver).Str("game", gameID.String()).Msg("opened board")
	return b, nil
}

func (b *Boards) Close(ctx context.Context) error {
	var errs []error
	for _, closer := range b.closers {
		errs = append(errs, closer(ctx))
	}
	return errors.Join(errs...)
}
