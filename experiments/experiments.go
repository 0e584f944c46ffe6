package experiments

import (
	"fmt"
	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
)

// BaselineID is the agent ID of the random baseline in the presets.
const BaselineID = 0

// DepthPreset pairs every search depth up to maxDepth against the random
// baseline and against the next depth.
func DepthPreset(games int, maxDepth int) config.ExperimentConfig {
	agents := []metrics.AgentConfig{{ID: BaselineID, Kind: "random", Seed: 1}}
	matchUps := [][]int{}
	for depth := 1; depth <= maxDepth; depth++ {
		agents = append(agents, metrics.AgentConfig{ID: depth, Kind: "alphabeta", Depth: depth})
		matchUps = append(matchUps, []int{depth, BaselineID})
		if depth > 1 {
			matchUps = append(matchUps, []int{depth - 1, depth})
		}
	}
	return config.ExperimentConfig{
		Name:     "depth",
		Games:    games,
		Agents:   agents,
		MatchUps: matchUps,
	}
}

// Run plays every match up of cfg, alternating colors between games, and
// stores agent configs, game and move records and a summary under cfg.OutputDir.
func Run(cfg config.ExperimentConfig) (metrics.Summary, error) {
	summary := metrics.Summary{
		Name:    cfg.Name,
		Games:   cfg.Games,
		Started: time.Now().UTC(),
		Agents:  cfg.Agents,
	}

	configs := make(map[int]metrics.AgentConfig, len(cfg.Agents))
	for _, c := range cfg.Agents {
		configs[c.ID] = c
	}

	// Store experiment metadata
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment %s...", cfg.Name, writer.RunID())

	for mi, pair := range cfg.MatchUps {
		config1, ok1 := configs[pair[0]]
		config2, ok2 := configs[pair[1]]
		if !ok1 || !ok2 {
			return summary, fmt.Errorf("match up %v names an unknown agent", pair)
		}
		result := metrics.MatchUpResult{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			// Agent 1 plays White in even games
			white, black := config1, config2
			if i%2 == 1 {
				white, black = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(white, black, uint64(i))
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case winner == game.Empty:
				result.Draws++
			case (winner == game.White) == (white.ID == config1.ID):
				result.Wins1++
			default:
				result.Wins2++
			}

			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, game.PlayerName(winner))
		}

		summary.MatchUps = append(summary.MatchUps, result)
		log.Info().Msgf("completed matchup: agent %d won %d, agent %d won %d, %d draws",
			result.Agent1, result.Wins1, result.Agent2, result.Wins2, result.Draws)
	}

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summary.Finished = time.Now().UTC()
	summary.RunID = writer.RunID()
	if err := writer.WriteSummary(summary); err != nil {
		return summary, err
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())

	return summary, nil
}

// runGame plays a single game from the standard opening and returns the winner.
// Random agents are reseeded per game so repeated games differ.
func runGame(white, black metrics.AgentConfig, round uint64) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	white.Seed += round
	black.Seed += round
	whiteAgent, err := agent.New(white)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	blackAgent, err := agent.New(black)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocal(whiteAgent, blackAgent)
	return e.Run()
}
