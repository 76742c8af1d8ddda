package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestImmediatePicksLargestCapture(t *testing.T) {
	diagram := `
		XO......
		XOO.....
	`
	pos, err := game.ParsePosition(diagram, game.Black)
	require.NoError(t, err)
	agent := NewImmediate()

	move := agent.ChooseMove(pos, pos.LegalMoves())

	require.Equal(t, game.PlaceAt(game.CellAt(1, 3)), move,
		"d2 flips two discs, more than any other placement")
}

func TestImmediateBreaksTiesByEnumerationOrder(t *testing.T) {
	pos := game.NewPosition()
	agent := NewImmediate()

	// All four opening moves capture exactly one disc
	move := agent.ChooseMove(pos, pos.LegalMoves())

	require.Equal(t, game.PlaceAt(game.CellAt(2, 3)), move, "ties go to the first enumerated move, d3")
}

func TestImmediateHonoursEvaluation(t *testing.T) {
	// Corner-heavy weights make the corner capture beat the bigger capture
	diagram := `
		.OX.....
		........
		........
		O.......
		O.......
		X.......
	`
	pos, err := game.ParsePosition(diagram, game.Black)
	require.NoError(t, err)

	plain := NewImmediate()
	cornerLover := NewImmediate(WithEvaluate(game.NewWeightedEvaluate(game.Weights{Corner: 50})))

	legal := pos.LegalMoves()
	require.Equal(t, []game.Move{game.PlaceAt(game.CellAt(0, 0)), game.PlaceAt(game.CellAt(2, 0))}, legal,
		"black can take the a1 corner for one disc or a3 for two")

	require.Equal(t, game.PlaceAt(game.CellAt(2, 0)), plain.ChooseMove(pos, legal))
	require.Equal(t, game.PlaceAt(game.CellAt(0, 0)), cornerLover.ChooseMove(pos, legal))
}

func TestImmediateCollectsLeafEvals(t *testing.T) {
	collector := NewCollector()
	agent := NewImmediate(WithCollector(collector))
	pos := game.NewPosition()
	legal := pos.LegalMoves()

	agent.ChooseMove(pos, legal)

	metric := collector.Complete()
	require.Equal(t, int64(len(legal)), metric.LeafEvals)
}
