package engine

import (
	"context"
	"errors"
	"fmt"

	"cantstop/board"
	"cantstop/experiments/metrics"
	"cantstop/game"
	"cantstop/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrGameOver is returned when a turn is requested after someone has won.
var ErrGameOver = errors.New("game is over - no turns allowed")

// BoardWrite tells what happened to the board after a turn.
type BoardWrite int

const (
	BoardSkipped BoardWrite = iota // turn did not score
	BoardUpdated
	BoardFailed
)

func (b BoardWrite) String() string {
	switch b {
	case BoardSkipped:
		return "skipped"
	case BoardUpdated:
		return "updated"
	case BoardFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (b BoardWrite) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BoardWrite) UnmarshalText(text []byte) error {
	for _, w := range []BoardWrite{BoardSkipped, BoardUpdated, BoardFailed} {
		if w.String() == string(text) {
			*b = w
			return nil
		}
	}
	return fmt.Errorf("unknown board write: %q", text)
}

// TurnResult is one finished turn as seen from the game.
type TurnResult struct {
	Step    int              `json:"step"`
	Player  string           `json:"player"`
	Outcome game.TurnOutcome `json:"outcome"`
	Board   BoardWrite       `json:"board"`
	Won     bool             `json:"won"`
}

type Option func(e *LocalEngine)

func WithWinTable(table game.WinTable) Option {
	return func(e *LocalEngine) {
		e.table = table
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithTurnHook calls fn after every turn, once the board and win check are done.
func WithTurnHook(fn func(TurnResult)) Option {
	return func(e *LocalEngine) {
		if fn != nil {
			e.hooks = append(e.hooks, fn)
		}
	}
}

// WithTurnObserver forwards the events of every turn to fn.
func WithTurnObserver(fn func(game.TurnEvent)) Option {
	return func(e *LocalEngine) {
		if fn != nil {
			e.turnOptions = append(e.turnOptions, game.WithObserver(fn))
		}
	}
}

func WithStartingPlayer(index int) Option {
	return func(e *LocalEngine) {
		if index == 0 || index == 1 {
			e.current = index
		}
	}
}

func WithGameID(id uuid.UUID) Option {
	return func(e *LocalEngine) {
		e.gameID = id
	}
}

// LocalEngine runs a two-player game in process. Turns are strictly sequential.
type LocalEngine struct {
	gameID      uuid.UUID
	players     [2]string
	deciders    [2]game.DecisionProvider
	targets     [2]game.Target
	board       board.Board
	roller      *game.Roller
	table       game.WinTable
	metrics     metrics.Collector
	hooks       []func(TurnResult)
	turnOptions []game.TurnOption

	current  int
	starting int
	step     int
	winner   string
}

func NewLocalEngine(players []string, deciders []game.DecisionProvider, b board.Board, roller *game.Roller, options ...Option) (*LocalEngine, error) {
	if len(players) != 2 || len(deciders) != 2 {
		return nil, fmt.Errorf("need exactly two players and two deciders, got %d and %d", len(players), len(deciders))
	}
	if players[0] == players[1] {
		return nil, fmt.Errorf("player names must differ, both are %q", players[0])
	}
	if b == nil || roller == nil {
		return nil, errors.New("board and roller are required")
	}

	e := &LocalEngine{
		gameID:  uuid.New(),
		board:   b,
		roller:  roller,
		table:   game.StandardWinTable(),
		metrics: metrics.NewDummyCollector(),
	}
	copy(e.players[:], players)
	copy(e.deciders[:], deciders)
	for _, option := range options {
		option(e)
	}
	e.starting = e.current
	return e, nil
}

func (e *LocalEngine) GameID() uuid.UUID {
	return e.gameID
}

// Target returns the persisted target of player index i.
func (e *LocalEngine) Target(i int) game.Target {
	return e.targets[i]
}

func (e *LocalEngine) Winner() string {
	return e.winner
}

// Run clears the board and plays turns until there is a winner. ctx is only checked
// between turns.
func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.TurnMetric, error) {
	e.metrics.Start(e.gameID, e.starting)
	log.Info().Str("game", e.gameID.String()).Msgf("%s is starting", e.players[e.current])

	if err := e.board.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("could not clear the board, playing on")
	}

	for e.winner == "" {
		if err := ctx.Err(); err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
		if _, err := e.PlayTurn(ctx); err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
	}

	gameMetric, turnMetrics := e.metrics.Complete(e.winner)
	log.Info().Str("game", e.gameID.String()).Int("turns", e.step).Msgf("%s won", e.winner)
	return e.winner, gameMetric, turnMetrics, nil
}

// PlayTurn plays one full turn for the player whose turn it is.
func (e *LocalEngine) PlayTurn(ctx context.Context) (TurnResult, error) {
	if e.winner != "" {
		return TurnResult{}, ErrGameOver
	}

	i := e.current
	player := e.players[i]
	turn := game.NewTurn(player, e.targets[i], e.roller, e.deciders[i], e.turnOptions...)
	outcome, err := turn.Play()
	if err != nil {
		return TurnResult{}, fmt.Errorf("turn of %s: %w", player, err)
	}

	e.step++
	e.targets[i] = outcome.Target
	result := TurnResult{
		Step:    e.step,
		Player:  player,
		Outcome: outcome,
		Board:   e.record(ctx, player, outcome),
	}

	if e.table.Wins(outcome.Target) {
		e.winner = player
		result.Won = true
	} else {
		e.current = 1 - i
	}

	log.Debug().
		Str("player", player).
		Int("rolls", outcome.Rolls).
		Bool("scored", outcome.Scored).
		Bool("busted", outcome.Busted).
		Stringer("target", outcome.Target).
		Stringer("board", result.Board).
		Msg("turn finished")

	e.metrics.AddTurn(metrics.TurnMetric{
		Step:     e.step,
		Player:   i,
		Rolls:    outcome.Rolls,
		Scored:   outcome.Scored,
		Busted:   outcome.Busted,
		Sum:      outcome.Target.Sum,
		Progress: outcome.Target.Progress,
	})
	for _, hook := range e.hooks {
		hook(result)
	}
	return result, nil
}

// record writes a scoring turn to the board. Failures are logged and the game goes on.
func (e *LocalEngine) record(ctx context.Context, player string, outcome game.TurnOutcome) BoardWrite {
	if !outcome.Scored || !outcome.Target.Locked() {
		return BoardSkipped
	}

	var err error
	for attempt := 1; attempt <= meta.BoardAttempts; attempt++ {
		err = e.board.RecordScore(ctx, player, outcome.Target.Sum, outcome.Target.Progress)
		if err == nil {
			return BoardUpdated
		}
		log.Warn().Err(err).Int("attempt", attempt).Str("player", player).Msg("board write failed")
	}
	log.Error().Err(err).Str("player", player).Msg("giving up on board write")
	return BoardFailed
}
