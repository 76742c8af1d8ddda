package searcher

import "othello/game"

// Immediate plays the move whose resulting position scores best under the
// static evaluation, looking exactly one ply ahead. Ties go to the
// first-encountered move, so results are deterministic.
type Immediate struct {
	config
}

func NewImmediate(options ...Option) *Immediate {
	return &Immediate{config: newConfig(options...)}
}

func (s *Immediate) ChooseMove(pos game.Position, legal []game.Move) game.Move {
	s.metrics.Start()

	mover := pos.SideToMove()
	best := legal[0]
	bestScore := -infinity
	for _, m := range legal {
		s.metrics.AddLeafEval()
		score := s.evaluate(mustApply(pos, m), mover)
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}
