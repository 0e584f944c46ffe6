package agent

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent picking uniformly among legal moves.
// Equal seeds replay the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
