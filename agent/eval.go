package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	searcher searcher.Searcher
}

// NewEvaluationAgent returns an agent that plays the searcher's best move.
func NewEvaluationAgent(s searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, metric, ok := a.searcher.FindNextMove(state)
	if !ok {
		return game.NoMove, metric, ErrNoMove
	}
	return move, metric, nil
}
