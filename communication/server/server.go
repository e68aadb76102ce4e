package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cantstop/board"
	"cantstop/communication"
	"cantstop/engine"
	"cantstop/meta"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Server exposes a memory board and the most recent turns of a game.
type Server struct {
	board *board.Memory
	mutex sync.RWMutex
	turns []engine.TurnResult
}

func NewServer(b *board.Memory) *Server {
	return &Server{board: b}
}

// Publish records a finished turn. It is meant to be used as an engine turn hook.
func (s *Server) Publish(result engine.TurnResult) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.turns = append(s.turns, result)
	if len(s.turns) > meta.RecentTurns {
		s.turns = s.turns[len(s.turns)-meta.RecentTurns:]
	}
}

func (s *Server) Board() []communication.Cell {
	return communication.Cells(s.board.Grid())
}

func (s *Server) Turns() []engine.TurnResult {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	turns := make([]engine.TurnResult, len(s.turns))
	copy(turns, s.turns)
	return turns
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/board", s.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/turns", s.handleTurns).Methods(http.MethodGet)
	r.HandleFunc("/turns/{step:[0-9]+}", s.handleTurn).Methods(http.MethodGet)
	return r
}

// Start serves on addr until ctx is done.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("spectator server shutdown")
		}
	}()

	log.Info().Msgf("spectator server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Board())
}

func (s *Server) handleTurns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Turns())
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(mux.Vars(r)["step"])
	if err != nil {
		http.Error(w, "bad step", http.StatusBadRequest)
		return
	}
	for _, turn := range s.Turns() {
		if turn.Step == step {
			writeJSON(w, http.StatusOK, turn)
			return
		}
	}
	http.Error(w, "turn not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}
