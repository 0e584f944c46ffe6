package engine

import (
	"errors"
	"fmt"
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Update describes one turn. Passed turns carry game.NoMove.
type Update struct {
	Step   int                  `json:"step"`
	Player int                  `json:"player"`
	Move   game.Move            `json:"move"`
	Passed bool                 `json:"passed"`
	Board  []string             `json:"board"`
	Search metrics.SearchMetric `json:"-"`
}

type Option func(e *LocalEngine)

// WithObserver registers a callback receiving every turn as it is played.
func WithObserver(observe func(Update)) Option {
	return func(e *LocalEngine) {
		if observe != nil {
			e.observers = append(e.observers, observe)
		}
	}
}

// WithState starts the game from state instead of the standard opening.
func WithState(state *game.Board) Option {
	return func(e *LocalEngine) {
		if state != nil {
			e.State = state.Copy().(*game.Board)
		}
	}
}

type LocalEngine struct {
	State     *game.Board
	Agents    map[int]agent.Agent
	observers []func(Update)
}

func NewLocal(white, black agent.Agent, options ...Option) *LocalEngine {
	if white == nil || black == nil {
		panic("both sides need an agent")
	}
	e := &LocalEngine{
		State: game.NewBoard(),
		Agents: map[int]agent.Agent{
			game.White: white,
			game.Black: black,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until neither side can move.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", game.PlayerName(e.State.Player()))

	for turn := 1; !e.State.GameOver(); turn++ {
		if turn > MaxTurns {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("game exceeded %d turns", MaxTurns)
		}

		player := e.State.Player()
		move, search, err := e.Agents[player].FindMove(e.State.Copy())
		if errors.Is(err, agent.ErrNoMove) {
			if len(e.State.LegalMoves()) > 0 {
				return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w: %s passed with moves available", ErrIllegalMove, game.PlayerName(player))
			}
			e.State.Pass()
			gameMetric.Passes++
			e.notify(Update{Step: turn, Player: player, Move: game.NoMove, Passed: true, Board: e.State.Rows()})
			continue
		}
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", game.PlayerName(player), err)
		}
		if !slices.Contains(e.State.LegalMoves(), move) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w: %s played %+v", ErrIllegalMove, game.PlayerName(player), move)
		}

		e.State.Play(move)
		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: search,
		})
		e.notify(Update{Step: turn, Player: player, Move: move, Board: e.State.Rows(), Search: search})
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.WhiteDiscs = e.State.Count(game.White)
	gameMetric.BlackDiscs = e.State.Count(game.Black)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves: White %d, Black %d, winner %s",
		gameMetric.TotalMoves, gameMetric.WhiteDiscs, gameMetric.BlackDiscs, game.PlayerName(winner))

	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) notify(u Update) {
	for _, observe := range e.observers {
		observe(u)
	}
}
