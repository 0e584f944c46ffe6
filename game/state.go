package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedBoard = errors.New("malformed board")

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 Othello position together with the side to move.
// It is a value type: assigning a Board copies the whole grid.
type Board struct {
	Cells         [Size][Size]int8
	CurrentPlayer int
}

// NewBoard returns the standard starting position with Black to move.
func NewBoard() *Board {
	b := &Board{CurrentPlayer: Black}
	mid := Size / 2
	b.Cells[mid-1][mid-1], b.Cells[mid][mid] = White, White
	b.Cells[mid-1][mid], b.Cells[mid][mid-1] = Black, Black
	return b
}

// ParseBoard reads one string per row, 'X' for White, 'O' for Black and '.' for empty.
func ParseBoard(rows []string, player int) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, Size, len(rows))
	}
	if player != White && player != Black {
		return nil, fmt.Errorf("%w: unknown player %d", ErrMalformedBoard, player)
	}

	b := &Board{CurrentPlayer: player}
	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(line))
		}
		for col, c := range line {
			switch c {
			case 'X', 'x':
				b.Cells[row][col] = White
			case 'O', 'o':
				b.Cells[row][col] = Black
			case '.':
				b.Cells[row][col] = Empty
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedBoard, c, row, col)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions known to be well formed.
func MustParseBoard(rows []string, player int) *Board {
	b, err := ParseBoard(rows, player)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Player() int {
	return b.CurrentPlayer
}

func (b *Board) Contents(row, col int) int {
	return int(b.Cells[row][col])
}

func (b *Board) Copy() State {
	c := *b
	return &c
}

// LegalMoves enumerates the side to move's moves in row-major order.
func (b *Board) LegalMoves() []Move {
	return b.movesFor(b.CurrentPlayer)
}

func (b *Board) movesFor(player int) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.isLegal(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b *Board) hasMoves(player int) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.isLegal(row, col, player) {
				return true
			}
		}
	}
	return false
}

func (b *Board) isLegal(row, col, player int) bool {
	if b.Cells[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.flipsInDirection(row, col, d[0], d[1], player) > 0 {
			return true
		}
	}
	return false
}

// flipsInDirection counts the opponent discs bracketed by a disc placed at (row, col).
func (b *Board) flipsInDirection(row, col, dr, dc, player int) int {
	own := int8(player)
	n := 0
	r, c := row+dr, col+dc
	for inBounds(r, c) && b.Cells[r][c] == -own {
		n++
		r, c = r+dr, c+dc
	}
	if n == 0 || !inBounds(r, c) || b.Cells[r][c] != own {
		return 0
	}
	return n
}

// Play places a disc for the side to move, flips every bracketed line and
// hands the turn over. The move must be legal.
func (b *Board) Play(move Move) {
	player := b.CurrentPlayer
	own := int8(player)
	for _, d := range directions {
		n := b.flipsInDirection(move.Row, move.Col, d[0], d[1], player)
		r, c := move.Row, move.Col
		for i := 0; i < n; i++ {
			r, c = r+d[0], c+d[1]
			b.Cells[r][c] = own
		}
	}
	b.Cells[move.Row][move.Col] = own
	b.CurrentPlayer = Opponent(player)
}

func (b *Board) Pass() {
	b.CurrentPlayer = Opponent(b.CurrentPlayer)
}

// GameOver reports whether neither side has a legal move.
func (b *Board) GameOver() bool {
	return !b.hasMoves(White) && !b.hasMoves(Black)
}

// Count returns the number of discs owned by player.
func (b *Board) Count(player int) int {
	n := 0
	for row := range b.Cells {
		for _, cell := range b.Cells[row] {
			if int(cell) == player {
				n++
			}
		}
	}
	return n
}

// Winner returns the side with more discs, or Empty for a draw.
func (b *Board) Winner() int {
	white, black := b.Count(White), b.Count(Black)
	switch {
	case white > black:
		return White
	case black > white:
		return Black
	default:
		return Empty
	}
}

// Rows renders the grid in the format accepted by ParseBoard.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for row := range b.Cells {
		var sb strings.Builder
		for _, cell := range b.Cells[row] {
			sb.WriteByte(cellSymbol(int(cell)))
		}
		rows[row] = sb.String()
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

func cellSymbol(cell int) byte {
	switch cell {
	case White:
		return 'X'
	case Black:
		return 'O'
	default:
		return '.'
	}
}

// PlayerName returns a display name for a side tag.
func PlayerName(player int) string {
	switch player {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
