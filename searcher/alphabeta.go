package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta picks moves by a fixed-depth minimax search with alpha-beta pruning.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

// WithoutPruning searches the full tree. Results are unchanged, only slower.
func WithoutPruning() Option {
	return func(a *AlphaBeta) {
		a.pruning = false
	}
}

// NewAlphaBeta returns a searcher that looks depth plies past each candidate move.
func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	a := &AlphaBeta{ // Default values
		depth:    depth,
		evaluate: game.EvaluatePositional,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

// FindNextMove returns the best move for the side to move, the search metrics
// (counters stay zero unless WithMetrics is set) and false when the side to move has no
// legal move. White takes the highest utility and Black the lowest; among
// equal candidates the first one enumerated wins.
func (a *AlphaBeta) FindNextMove(state game.State) (game.Move, metrics.SearchMetric, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, false
	}

	s := search{evaluate: a.evaluate, pruning: a.pruning, metrics: a.metrics}
	a.metrics.Start(a.depth, a.pruning)

	player := state.Player()
	bestMove := game.NoMove
	bestUtility := worst(player)
	for _, move := range moves {
		child := state.Copy()
		child.Play(move)

		utility := s.minimax(child, a.depth, game.Opponent(player), NegInfinity, Infinity)
		if bestMove == game.NoMove || improves(player, utility, bestUtility) {
			bestUtility = utility
			bestMove = move
		}
	}

	metric := a.metrics.Complete()
	metric.Depth = a.depth
	metric.Pruning = a.pruning
	metric.Utility = bestUtility

	log.Debug().
		Str("player", game.PlayerName(player)).
		Int("row", bestMove.Row).
		Int("col", bestMove.Col).
		Int("utility", bestUtility).
		Int("nodes", metric.Nodes).
		Msg("move chosen")

	return bestMove, metric, true
}
