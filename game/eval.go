package game

// PositionalWeights favors corners and penalizes the cells next to them.
var PositionalWeights = [Size][Size]int{
	{120, -20, 20, 5, 5, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -40},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -40},
	{120, -20, 20, 5, 5, 20, -20, 120},
}

// EvaluatePositional sums the positional weight of every occupied cell,
// counted positively for White discs and negatively for Black discs.
func EvaluatePositional(s State) int {
	utility := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			utility += PositionalWeights[row][col] * s.Contents(row, col)
		}
	}
	return utility
}

// EvaluateDiscs is the plain disc difference from White's perspective.
func EvaluateDiscs(s State) int {
	utility := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			utility += s.Contents(row, col)
		}
	}
	return utility
}

// Evaluations maps the names accepted in configuration to evaluators.
var Evaluations = map[string]Evaluate{
	"positional": EvaluatePositional,
	"discs":      EvaluateDiscs,
}
