package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cantstop/board"
	"cantstop/communication"
	"cantstop/communication/server"
	"cantstop/engine"
	"cantstop/game"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	ctx := context.Background()
	memory := board.NewMemory()
	s := server.NewServer(memory)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	c := NewClient(ts.URL + "/")

	t.Run("fetching an empty game", func(t *testing.T) {
		cells, err := c.Board(ctx)
		require.NoError(t, err)
		require.Empty(t, cells)

		turns, err := c.Turns(ctx)
		require.NoError(t, err)
		require.Empty(t, turns)
	})

	t.Run("watching until someone wins", func(t *testing.T) {
		require.NoError(t, memory.RecordScore(ctx, "Ana", 12, 3))
		s.Publish(engine.TurnResult{Step: 1, Player: "Ben", Outcome: game.TurnOutcome{Busted: true, Rolls: 2}})
		s.Publish(engine.TurnResult{
			Step:    2,
			Player:  "Ana",
			Outcome: game.TurnOutcome{Target: game.Target{Sum: 12, Progress: 3}, Scored: true, Rolls: 4},
			Board:   engine.BoardUpdated,
			Won:     true,
		})

		var steps []int
		var last []communication.Cell
		err := c.Watch(ctx, 10*time.Millisecond, func(cells []communication.Cell, turn engine.TurnResult) {
			steps = append(steps, turn.Step)
			last = cells
		})

		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, steps)
		require.Equal(t, []string{"Ana"}, communication.Grid(last)[board.CellFor(12, 3)])
	})

	t.Run("stopping when cancelled", func(t *testing.T) {
		empty := httptest.NewServer(server.NewServer(board.NewMemory()).Handler())
		defer empty.Close()

		ctx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()

		err := NewClient(empty.URL).Watch(ctx, 5*time.Millisecond, func([]communication.Cell, engine.TurnResult) {
			t.Fatal("No turns were published")
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClientStatusError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := NewClient(ts.URL).Board(context.Background())
	require.ErrorContains(t, err, "status 404")
}
