package agent

import (
	"errors"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// ErrNoMove is returned when the side to move has to pass.
var ErrNoMove = errors.New("no legal move")

type Agent interface {
	// FindMove returns the move to play and the metrics of the search behind it (if collected)
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

// New builds the agent described by config.
func New(config metrics.AgentConfig) (Agent, error) {
	switch config.Kind {
	case "alphabeta", "":
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Evaluation != "" {
			evaluate, ok := game.Evaluations[config.Evaluation]
			if !ok {
				return nil, fmt.Errorf("agent %d: unknown evaluation %q", config.ID, config.Evaluation)
			}
			options = append(options, searcher.WithEvaluationFn(evaluate))
		}
		if config.NoPruning {
			options = append(options, searcher.WithoutPruning())
		}
		if config.Depth < 0 {
			return nil, fmt.Errorf("agent %d: negative depth %d", config.ID, config.Depth)
		}
		return NewEvaluationAgent(searcher.NewAlphaBeta(config.Depth, options...)), nil
	case "random":
		return NewRandomAgent(config.Seed), nil
	case "remote":
		if config.URL == "" {
			return nil, fmt.Errorf("agent %d: remote agent needs a url", config.ID)
		}
		return NewRemoteAgent(config.URL, config.Depth, config.Evaluation), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
