package searcher

import "othello/game"

// AlphaBeta is Minimax with alpha-beta pruning: each call carries the window
// [alpha, beta] of scores the callers above still care about, and a node
// stops expanding children once its value provably falls outside it. Pruning
// only skips work; for every position and depth the chosen move and score are
// identical to Minimax under the same evaluation and enumeration order.
type AlphaBeta struct {
	config
	depth int
}

// NewAlphaBeta returns a pruned fixed-depth searcher. depth counts plies and
// must be positive.
func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	return &AlphaBeta{config: newConfig(options...), depth: depth}
}

func (s *AlphaBeta) ChooseMove(pos game.Position, legal []game.Move) game.Move {
	move, _ := s.search(pos, legal)
	return move
}

// Search returns the chosen move together with its search value for the side
// to move in pos.
func (s *AlphaBeta) Search(pos game.Position) (game.Move, game.Score) {
	return s.search(pos, pos.LegalMoves())
}

func (s *AlphaBeta) search(pos game.Position, legal []game.Move) (game.Move, game.Score) {
	s.metrics.Start()

	best := legal[0]
	bestScore := -infinity
	alpha, beta := -infinity, infinity
	for _, m := range legal {
		score := -s.negamax(mustApply(pos, m), s.depth-1, -beta, -alpha)
		if score > bestScore {
			best, bestScore = m, score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore
}

// negamax values pos for its side to move, fail-soft: the result may exceed
// the [alpha, beta] window, in which case it is a bound rather than an exact
// value. The root window is full-width, so root values are always exact.
func (s *AlphaBeta) negamax(pos game.Position, depth int, alpha, beta game.Score) game.Score {
	s.metrics.AddNode()

	if pos.IsTerminal() {
		s.metrics.AddLeafEval()
		return game.TerminalScore(pos, pos.SideToMove())
	}
	if depth == 0 {
		s.metrics.AddLeafEval()
		return s.evaluate(pos, pos.SideToMove())
	}

	best := -infinity
	for _, m := range pos.LegalMoves() {
		score := -s.negamax(mustApply(pos, m), depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			// The side above already has a better line than anything this
			// node can offer.
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
