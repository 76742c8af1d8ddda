package game

// Score is a search evaluation from the perspective of a given side; higher
// is better. Scores are zero-sum: negating a score yields the opponent's view
// of the same position.
type Score int32

const (
	// Win dominates any material or positional score, so a proven win is
	// always preferred over a good-looking unresolved position.
	Win  Score = 1 << 20
	Loss Score = -Win
)

// Evaluate scores pos for player. Implementations must be zero-sum:
// Evaluate(pos, c) == -Evaluate(pos, c.Opponent()).
type Evaluate func(pos Position, player Colour) Score

// DiscDifference scores a position by material alone: the player's disc count
// minus the opponent's.
func DiscDifference(pos Position, player Colour) Score {
	diff := Score(pos.DiscCount(Black) - pos.DiscCount(White))
	if player == White {
		diff = -diff
	}
	return diff
}

// TerminalScore scores a finished game for player: the win or loss sentinel
// plus the final disc differential as a margin, so bigger wins rank higher
// and any win outranks any heuristic score.
func TerminalScore(pos Position, player Colour) Score {
	diff := DiscDifference(pos, player)
	switch {
	case diff > 0:
		return Win + diff
	case diff < 0:
		return Loss + diff
	default:
		return 0
	}
}

const (
	cornerMask Bitboard = 0x8100000000000081
	edgeMask   Bitboard = 0xFF818181818181FF &^ cornerMask
)

// Weights tunes the positional evaluation. All weights default to zero, which
// reduces NewWeightedEvaluate to DiscDifference.
type Weights struct {
	Corner   int `yaml:"corner_weight"`
	Edge     int `yaml:"edge_weight"`
	Mobility int `yaml:"mobility_weight"`
}

// NewWeightedEvaluate builds an Evaluate that adds weighted corner, edge and
// mobility terms on top of the raw disc differential. The terms are
// symmetric, so the result stays zero-sum.
func NewWeightedEvaluate(w Weights) Evaluate {
	return func(pos Position, player Colour) Score {
		mine := pos.Occupied(player)
		theirs := pos.Occupied(player.Opponent())

		score := Score(mine.Count() - theirs.Count())
		score += Score(w.Corner * ((mine & cornerMask).Count() - (theirs & cornerMask).Count()))
		score += Score(w.Edge * ((mine & edgeMask).Count() - (theirs & edgeMask).Count()))
		if w.Mobility != 0 {
			myMoves := pos.placements(player).Count()
			theirMoves := pos.placements(player.Opponent()).Count()
			score += Score(w.Mobility * (myMoves - theirMoves))
		}
		return score
	}
}
