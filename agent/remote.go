package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"othello/experiments/metrics"
	"othello/game"
	"strings"
	"time"
)

type remoteAgent struct {
	url        string
	depth      int
	evaluation string
	client     *http.Client
}

// NewRemoteAgent returns an agent asking the agent server at url for its moves.
func NewRemoteAgent(url string, depth int, evaluation string) Agent {
	return &remoteAgent{
		url:        strings.TrimSuffix(url, "/"),
		depth:      depth,
		evaluation: evaluation,
		client:     &http.Client{Timeout: time.Minute},
	}
}

// FindMove encodes the board in JSON and posts it to /findmove on the agent side.
func (a *remoteAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	board, ok := state.(*game.Board)
	if !ok {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("remote agent: unsupported state type %T", state)
	}

	depth := a.depth
	payload := FindMoveRequest{
		Board:      board.Rows(),
		Player:     board.Player(),
		Depth:      &depth,
		Evaluation: a.evaluation,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent %s: %w", a.url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		return game.NoMove, metrics.SearchMetric{}, ErrNoMove
	default:
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("agent %s returned status %d: %s", a.url, resp.StatusCode, bytes.TrimSpace(out))
	}

	var found FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}

	metric := metrics.SearchMetric{
		Depth:    found.Depth,
		Pruning:  true,
		Duration: time.Duration(found.DurationMs * float64(time.Millisecond)),
		Nodes:    found.Nodes,
		Cutoffs:  found.Cutoffs,
		Utility:  found.Utility,
	}
	return game.Move{Row: found.Row, Col: found.Col}, metric, nil
}
