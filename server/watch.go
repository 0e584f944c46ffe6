package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type watchResult struct {
	Winner     int `json:"winner"` // 0 on a draw
	WhiteDiscs int `json:"white_discs"`
	BlackDiscs int `json:"black_discs"`
	Moves      int `json:"moves"`
	Passes     int `json:"passes"`
}

type watchMessage struct {
	Type    string         `json:"type"` // "move", "result", "error" or "ping"
	Session string         `json:"session"`
	Update  *engine.Update `json:"update,omitempty"`
	Result  *watchResult   `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleWatch plays a game between two search agents and streams every turn
// to the client, closing the connection after the result.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	whiteDepth, err := s.depthParam(r, "white")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	blackDepth, err := s.depthParam(r, "black")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	white, err := agent.New(metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: whiteDepth, Evaluation: s.cfg.Evaluation})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	black, err := agent.New(metrics.AgentConfig{ID: 2, Kind: "alphabeta", Depth: blackDepth, Evaluation: s.cfg.Evaluation})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := log.With().Str("session", session).Logger()
	logger.Info().Msgf("watching White depth %d against Black depth %d", whiteDepth, blackDepth)

	send := make(chan []byte, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := writeWithHeartbeat(conn, session, send); err != nil {
			logger.Warn().Err(err).Msg("watch stream closed")
		}
	}()

	// Drain client frames so close and disconnects are noticed
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	publish := func(msg watchMessage) {
		msg.Session = session
		data, err := json.Marshal(msg)
		if err != nil {
			logger.Error().Err(err).Msg("failed to encode watch message")
			return
		}
		select {
		case send <- data:
		case <-gone:
		case <-writerDone:
		}
	}

	e := engine.NewLocal(white, black, engine.WithObserver(func(u engine.Update) {
		publish(watchMessage{Type: "move", Update: &u})
	}))
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		publish(watchMessage{Type: "error", Error: err.Error()})
	} else {
		publish(watchMessage{Type: "result", Result: &watchResult{
			Winner:     winner,
			WhiteDiscs: gameMetric.WhiteDiscs,
			BlackDiscs: gameMetric.BlackDiscs,
			Moves:      gameMetric.TotalMoves,
			Passes:     gameMetric.Passes,
		}})
	}

	close(send)
	<-writerDone
	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
	_ = conn.WriteControl(websocket.CloseMessage, closing, time.Now().Add(time.Second))
	logger.Info().Msg("watch finished")
}

// depthParam reads a search depth from the query, defaulting to the configured depth.
func (s *Server) depthParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return s.cfg.SearchDepth, nil
	}
	depth, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if err := s.checkDepth(depth); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return depth, nil
}
