package searcher

import "othello/game"

// Minimax searches the full game tree to a fixed depth, assuming both sides
// play the best move the static evaluation can see. Values are computed in
// negamax form: a position's value for the side to move is the maximum over
// children of the negated child value.
type Minimax struct {
	config
	depth int
}

// NewMinimax returns a full-width fixed-depth searcher. depth counts plies
// and must be positive; a forced pass consumes a ply like any other move.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	return &Minimax{config: newConfig(options...), depth: depth}
}

func (s *Minimax) ChooseMove(pos game.Position, legal []game.Move) game.Move {
	move, _ := s.search(pos, legal)
	return move
}

// Search returns the chosen move together with its search value for the side
// to move in pos.
func (s *Minimax) Search(pos game.Position) (game.Move, game.Score) {
	return s.search(pos, pos.LegalMoves())
}

func (s *Minimax) search(pos game.Position, legal []game.Move) (game.Move, game.Score) {
	s.metrics.Start()

	best := legal[0]
	bestScore := -infinity
	for _, m := range legal {
		score := -s.negamax(mustApply(pos, m), s.depth-1)
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, bestScore
}

// negamax values pos for its side to move.
func (s *Minimax) negamax(pos game.Position, depth int) game.Score {
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
		score := -s.negamax(mustApply(pos, m), depth-1)
		if score > best {
			best = score
		}
	}
	return best
}
