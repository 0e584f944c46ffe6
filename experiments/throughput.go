package experiments

import (
	"othello/config"
	"othello/experiments/metrics"
)

// PruningPreset plays each depth up to maxDepth with pruning against the same
// depth without it. Both sides make identical decisions, so the move records
// compare node counts of the two searches over the same positions.
func PruningPreset(games int, maxDepth int) config.ExperimentConfig {
	agents := []metrics.AgentConfig{}
	matchUps := [][]int{}
	for depth := 1; depth <= maxDepth; depth++ {
		pruned := 2 * depth
		full := 2*depth + 1
		agents = append(agents,
			metrics.AgentConfig{ID: pruned, Kind: "alphabeta", Depth: depth},
			metrics.AgentConfig{ID: full, Kind: "alphabeta", Depth: depth, NoPruning: true},
		)
		matchUps = append(matchUps, []int{pruned, full})
	}
	return config.ExperimentConfig{
		Name:     "pruning",
		Games:    games,
		Agents:   agents,
		MatchUps: matchUps,
	}
}

// Throughput returns the searched nodes per second of every move record.
func Throughput(records []metrics.MoveRecord) []float64 {
	rates := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Duration <= 0 {
			continue
		}
		rates = append(rates, float64(r.Nodes)/r.Duration.Seconds())
	}
	return rates
}
