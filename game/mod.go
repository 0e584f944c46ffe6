package game

// Side tags double as cell contents: a disc of the maximizer is +1, a disc of
// the minimizer is -1.
const (
	White = 1  // Maximizer
	Black = -1 // Minimizer
	Empty = 0
)

const Size = 8

// Move places a disc at (Row, Col). Two moves are equal iff their coordinates match.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is off the board and never a legal move.
var NoMove = Move{Row: -1, Col: -1}

// State is the board contract consumed by the searcher.
// Play and Pass mutate the receiver in place, Copy must share no storage with it.
type State interface {
	Player() int
	LegalMoves() []Move
	Play(Move)
	Pass()
	GameOver() bool
	Contents(row, col int) int
	Copy() State
}

// Evaluates a position to an integer utility, positive when favorable to White
// (the maximizer) and negative when favorable to Black (the minimizer).
type Evaluate func(State) int

// Opponent returns the other side.
func Opponent(player int) int {
	return -player
}
