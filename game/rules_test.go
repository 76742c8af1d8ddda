package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestInitialLegalMoves(t *testing.T) {
	pos := NewPosition()

	moves := pos.LegalMoves()

	expected := []Move{
		PlaceAt(CellAt(2, 3)), // d3
		PlaceAt(CellAt(3, 2)), // c4
		PlaceAt(CellAt(4, 5)), // f5
		PlaceAt(CellAt(5, 4)), // e6
	}
	require.Equal(t, expected, moves, "black should open with exactly 4 moves, in ascending cell order")
}

func TestApplyInitialMoves(t *testing.T) {
	pos := NewPosition()

	for _, m := range pos.LegalMoves() {
		next, err := pos.Apply(m)

		require.NoError(t, err)
		require.Equal(t, 4, next.DiscCount(Black), "opening move %s should leave 4 black discs", m)
		require.Equal(t, 1, next.DiscCount(White), "opening move %s should leave 1 white disc", m)
		require.Equal(t, White, next.SideToMove())
		require.Equal(t, Black, pos.SideToMove(), "applying a move should not mutate the original position")
	}
}

func TestApplyCaptureStopsAtOwnDisc(t *testing.T) {
	pos, err := ParsePosition("XXXOXOO.", Black)
	require.NoError(t, err)

	next, err := pos.Apply(PlaceAt(CellAt(0, 7)))
	require.NoError(t, err)

	expected, err := ParsePosition("XXXOXXXX", White)
	require.NoError(t, err)
	require.Equal(t, expected, next, "the white disc behind black's own disc must not flip")
}

func TestApplyIllegalMoves(t *testing.T) {
	pos := NewPosition()

	t.Run("pass while placements exist", func(t *testing.T) {
		_, err := pos.Apply(Pass)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("occupied cell", func(t *testing.T) {
		_, err := pos.Apply(PlaceAt(CellAt(3, 3)))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("no captures", func(t *testing.T) {
		_, err := pos.Apply(PlaceAt(CellAt(0, 0)))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("cell out of range", func(t *testing.T) {
		_, err := pos.Apply(Move(64))
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestForcedPass(t *testing.T) {
	// Black cannot capture anywhere, white can take c1
	pos, err := ParsePosition("OX......", Black)
	require.NoError(t, err)

	require.Equal(t, []Move{Pass}, pos.LegalMoves())
	require.False(t, pos.IsTerminal(), "white still has a move, so the game is not over")

	next, err := pos.Apply(Pass)
	require.NoError(t, err)
	require.Equal(t, White, next.SideToMove())
	require.Equal(t, pos.Occupied(Black), next.Occupied(Black), "pass must not move any disc")
	require.Contains(t, next.LegalMoves(), PlaceAt(CellAt(0, 2)))
}

func TestDoublePassIsTerminal(t *testing.T) {
	// Neither side can ever capture: empty cells remain but the game is over
	pos, err := ParsePosition("X.O.....", Black)
	require.NoError(t, err)

	require.True(t, pos.IsTerminal())
	require.Equal(t, []Move{Pass}, pos.LegalMoves())

	passed, err := pos.Apply(Pass)
	require.NoError(t, err)
	require.Equal(t, []Move{Pass}, passed.LegalMoves(), "terminal positions stay terminal for both sides")
}

func TestFullBoardWinner(t *testing.T) {
	t.Run("majority wins", func(t *testing.T) {
		diagram := `
			XXXXXXXX
			XXXXXXXX
			XXXXXXXX
			XXXXXXXX
			OOOOOOOO
			OOOOOOOO
			OOOOOOOO
			OOOOOOOX
		`
		pos, err := ParsePosition(diagram, Black)
		require.NoError(t, err)

		require.True(t, pos.IsTerminal())
		require.Equal(t, BlackWins, pos.Winner())
	})

	t.Run("equal counts draw", func(t *testing.T) {
		diagram := `
			XXXXXXXX
			XXXXXXXX
			XXXXXXXX
			XXXXXXXX
			OOOOOOOO
			OOOOOOOO
			OOOOOOOO
			OOOOOOOO
		`
		pos, err := ParsePosition(diagram, Black)
		require.NoError(t, err)

		require.True(t, pos.IsTerminal())
		require.Equal(t, Draw, pos.Winner())
	})
}

// TestRandomPlayoutInvariants drives seeded random games to completion and
// checks the board invariants at every ply.
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		pos := NewPosition()
		discs := pos.DiscCount(Black) + pos.DiscCount(White)

		for !pos.IsTerminal() {
			legal := pos.LegalMoves()
			require.NotEmpty(t, legal)
			for _, m := range legal {
				if !m.IsPass() {
					require.True(t, pos.IsEmpty(m.Cell()),
						"legal move %s targets an occupied cell", m)
				}
			}

			next, err := pos.Apply(legal[rng.Intn(len(legal))])
			require.NoError(t, err)

			require.Zero(t, next.Occupied(Black)&next.Occupied(White),
				"no cell may be owned by both sides")
			nextDiscs := next.DiscCount(Black) + next.DiscCount(White)
			require.GreaterOrEqual(t, nextDiscs, discs, "discs are never removed from the board")

			pos, discs = next, nextDiscs
		}
	}
}
