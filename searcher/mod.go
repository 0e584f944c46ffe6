package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
)

// Utility bounds standing in for +/- infinity.
const (
	Infinity    = math.MaxInt
	NegInfinity = math.MinInt
)

type Searcher interface {
	FindNextMove(state game.State) (game.Move, metrics.SearchMetric, bool)
}

// worst returns the utility every real outcome improves on for player.
func worst(player int) int {
	if player == game.White {
		return NegInfinity
	}
	return Infinity
}

// improves reports whether utility is strictly better than best for player.
// Strict comparison keeps the first of equal candidates.
func improves(player int, utility int, best int) bool {
	if player == game.White {
		return utility > best
	}
	return utility < best
}
