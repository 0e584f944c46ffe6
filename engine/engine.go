package engine

import (
	"errors"
	"othello/experiments/metrics"
)

// MaxTurns bounds a game: 60 placements plus passes.
const MaxTurns = 128

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till neither side can move or MaxTurns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
