package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Black, b.Player(), "Black should move first")
	require.Equal(t, 2, b.Count(White))
	require.Equal(t, 2, b.Count(Black))
	require.Equal(t, White, b.Contents(3, 3))
	require.Equal(t, Black, b.Contents(3, 4))
	require.Equal(t, Black, b.Contents(4, 3))
	require.Equal(t, White, b.Contents(4, 4))
	require.False(t, b.GameOver())
}

func TestLegalMoves(t *testing.T) {
	t.Run("opening moves for Black in row-major order", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, b.LegalMoves())
	})

	t.Run("opening moves for White in row-major order", func(t *testing.T) {
		b := NewBoard()
		b.Pass()

		require.Equal(t, []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, b.LegalMoves())
	})

	t.Run("never returns occupied cells", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < 20 && !b.GameOver(); i++ {
			moves := b.LegalMoves()
			if len(moves) == 0 {
				b.Pass()
				continue
			}
			for _, m := range moves {
				require.Equal(t, Empty, b.Contents(m.Row, m.Col), "Move %+v targets an occupied cell", m)
			}
			b.Play(moves[len(moves)-1])
		}
	})

	t.Run("side without moves", func(t *testing.T) {
		b := MustParseBoard([]string{
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, White)

		require.Empty(t, b.LegalMoves(), "White cannot bracket anything")
		b.Pass()
		require.Equal(t, []Move{{0, 2}}, b.LegalMoves(), "Black can still bracket the White disc")
	})
}

func TestPlay(t *testing.T) {
	t.Run("flips bracketed discs and hands the turn over", func(t *testing.T) {
		b := NewBoard()
		b.Play(Move{Row: 2, Col: 3})

		require.Equal(t, Black, b.Contents(2, 3), "Placed disc should belong to the mover")
		require.Equal(t, Black, b.Contents(3, 3), "Bracketed disc should be flipped")
		require.Equal(t, 4, b.Count(Black))
		require.Equal(t, 1, b.Count(White))
		require.Equal(t, White, b.Player())
	})

	t.Run("flips several directions at once", func(t *testing.T) {
		b := MustParseBoard([]string{
			"X.X.....",
			"OOO.....",
			".OX.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, White)
		b.Play(Move{Row: 2, Col: 0})

		require.Equal(t, []string{
			"X.X.....",
			"XXO.....",
			"XXX.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, b.Rows())
	})
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	c.Play(Move{Row: 2, Col: 3})

	require.Equal(t, Empty, b.Contents(2, 3), "Mutating the copy must not affect the original")
	require.Equal(t, White, b.Contents(3, 3))
	require.Equal(t, Black, b.Player())
	require.Equal(t, Black, c.Contents(2, 3))
}

func TestGameOver(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		rows := make([]string, Size)
		for i := range rows {
			rows[i] = "XXXXOOOO"
		}
		b := MustParseBoard(rows, White)

		require.True(t, b.GameOver())
		require.Equal(t, Empty, b.Winner(), "Equal disc counts should be a draw")
	})

	t.Run("one side wiped out", func(t *testing.T) {
		b := MustParseBoard([]string{
			"........",
			"........",
			"...XX...",
			"...XX...",
			"........",
			"........",
			"........",
			"........",
		}, Black)

		require.True(t, b.GameOver())
		require.Equal(t, White, b.Winner())
	})

	t.Run("only one side blocked", func(t *testing.T) {
		b := MustParseBoard([]string{
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, White)

		require.False(t, b.GameOver(), "Black can still move")
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through Rows", func(t *testing.T) {
		b := NewBoard()
		parsed, err := ParseBoard(b.Rows(), b.Player())

		require.NoError(t, err)
		require.Equal(t, b, parsed)
	})

	t.Run("rejects wrong row count", func(t *testing.T) {
		_, err := ParseBoard([]string{"........"}, White)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("rejects unknown cell", func(t *testing.T) {
		rows := NewBoard().Rows()
		rows[0] = "...?...."
		_, err := ParseBoard(rows, White)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("rejects unknown player", func(t *testing.T) {
		_, err := ParseBoard(NewBoard().Rows(), 0)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}
