package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestRandomChoosesLegalMove(t *testing.T) {
	agent := NewRandom(7)
	pos := game.NewPosition()
	legal := pos.LegalMoves()

	for i := 0; i < 20; i++ {
		require.Contains(t, legal, agent.ChooseMove(pos, legal))
	}
}

func TestRandomIsReproducible(t *testing.T) {
	pos := game.NewPosition()
	legal := pos.LegalMoves()

	first := NewRandom(11)
	second := NewRandom(11)
	for i := 0; i < 20; i++ {
		require.Equal(t, first.ChooseMove(pos, legal), second.ChooseMove(pos, legal),
			"agents with the same seed should agree on every pick")
	}
}
