package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

type search struct {
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
}

// Minimax returns the alpha-beta value of state searched depth plies deep,
// with player (game.White maximizing, game.Black minimizing) to move and
// positions scored by game.EvaluatePositional. state is never mutated.
func Minimax(state game.State, depth int, player int, alpha int, beta int) int {
	s := search{
		evaluate: game.EvaluatePositional,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	return s.minimax(state, depth, player, alpha, beta)
}

// Exhaustive is Minimax without pruning: every node of the tree is visited.
func Exhaustive(state game.State, depth int, player int) int {
	s := search{
		evaluate: game.EvaluatePositional,
		pruning:  false,
		metrics:  metrics.NewDummyCollector(),
	}
	return s.minimax(state, depth, player, NegInfinity, Infinity)
}

func (s search) minimax(state game.State, depth int, player int, alpha int, beta int) int {
	s.metrics.AddNode()

	if depth == 0 || state.GameOver() {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return s.pass(state, depth, player, alpha, beta)
	}

	if player == game.White {
		bestAlpha := NegInfinity
		for _, move := range moves {
			child := state.Copy()
			child.Play(move)

			utility := s.minimax(child, depth-1, game.Black, alpha, beta)
			bestAlpha = max(bestAlpha, utility)
			alpha = max(alpha, utility)

			if s.pruning && alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return bestAlpha
	}

	bestBeta := Infinity
	for _, move := range moves {
		child := state.Copy()
		child.Play(move)

		utility := s.minimax(child, depth-1, game.White, alpha, beta)
		bestBeta = min(bestBeta, utility)
		beta = min(beta, utility)

		if s.pruning && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestBeta
}

// pass hands the turn to the opponent without spending a ply. A position
// where neither side can move is scored as it stands.
func (s search) pass(state game.State, depth int, player int, alpha int, beta int) int {
	passed := state.Copy()
	passed.Pass()
	if len(passed.LegalMoves()) == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}

	s.metrics.AddPass()
	return s.minimax(passed, depth, game.Opponent(player), alpha, beta)
}
