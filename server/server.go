package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"othello/agent"
	"othello/config"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct {
	cfg *config.Config
}

// NewRouter returns the agent server routes:
// POST /findmove, GET /healthz and the GET /watch websocket.
func NewRouter(cfg *config.Config) http.Handler {
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Post("/findmove", s.handleFindMove)
	r.Get("/healthz", s.handleHealth)
	r.Get("/watch", s.handleWatch)
	return r
}

// Serve listens on the configured port until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Msgf("agent server listening on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down agent server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload agent.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}

	board, err := game.ParseBoard(payload.Board, payload.Player)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	depth := s.cfg.SearchDepth
	if payload.Depth != nil {
		depth = *payload.Depth
	}
	if err := s.checkDepth(depth); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := payload.Evaluation
	if name == "" {
		name = s.cfg.Evaluation
	}
	evaluate, ok := game.Evaluations[name]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown evaluation %q", name))
		return
	}

	ab := searcher.NewAlphaBeta(depth, searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
	move, metric, ok := ab.FindNextMove(board)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no legal moves")
		return
	}

	writeJSON(w, http.StatusOK, agent.FindMoveResponse{
		Row:        move.Row,
		Col:        move.Col,
		Utility:    metric.Utility,
		Depth:      metric.Depth,
		Nodes:      metric.Nodes,
		Cutoffs:    metric.Cutoffs,
		DurationMs: float64(metric.Duration) / float64(time.Millisecond),
	})
}

var errDepth = errors.New("depth out of range")

func (s *Server) checkDepth(depth int) error {
	if depth < 0 || depth > s.cfg.Server.MaxDepth {
		return fmt.Errorf("%w: %d not in [0, %d]", errDepth, depth, s.cfg.Server.MaxDepth)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, agent.ErrorResponse{Error: message})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
