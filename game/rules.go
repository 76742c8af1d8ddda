package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove flags a move that is not in LegalMoves for the position it
// was applied to: a pass while placements exist, a placement on an occupied
// cell, or a placement that captures nothing.
var ErrIllegalMove = errors.New("illegal move")

// placements returns the cells where the given side could place a disc and
// capture at least one opponent disc. For every direction, flood the side's
// discs through contiguous opponent discs and step once more: any empty cell
// reached ends a capturing ray.
func (p Position) placements(c Colour) Bitboard {
	mine := p.Occupied(c)
	theirs := p.Occupied(c.Opponent())
	var targets Bitboard
	for _, d := range directions {
		targets |= occludedFill(mine, theirs, d).Shift(d)
	}
	return targets &^ (mine | theirs)
}

// LegalMoves enumerates every legal move for the side to move, in ascending
// cell order. When no placement captures, the single legal move is Pass.
func (p Position) LegalMoves() []Move {
	targets := p.placements(p.turn)
	if targets == 0 {
		return []Move{Pass}
	}
	moves := make([]Move, 0, targets.Count())
	for targets != 0 {
		moves = append(moves, PlaceAt(targets.PopLSB()))
	}
	return moves
}

// Apply plays m for the side to move and returns the resulting position. The
// original position is unchanged. It fails with ErrIllegalMove when m is not
// legal in p.
func (p Position) Apply(m Move) (Position, error) {
	if m.IsPass() {
		if p.placements(p.turn) != 0 {
			return Position{}, fmt.Errorf("%w: pass while placing moves exist", ErrIllegalMove)
		}
		p.turn = p.turn.Opponent()
		return p, nil
	}
	if m < 0 || m > 63 {
		return Position{}, fmt.Errorf("%w: cell %d out of range", ErrIllegalMove, int(m))
	}
	cell := m.Cell()
	if !p.IsEmpty(cell) {
		return Position{}, fmt.Errorf("%w: %s is occupied", ErrIllegalMove, cell)
	}

	mine := p.Occupied(p.turn)
	theirs := p.Occupied(p.turn.Opponent())
	placed := cell.Bitboard()

	// A disc is captured when it sits on a ray of contiguous opponent discs
	// reachable both from an existing friendly disc and from the new disc:
	// the intersection of the two opposing floods per direction.
	var flips Bitboard
	for _, d := range directions {
		span := fill(mine, theirs, d)
		counterSpan := fill(placed, theirs, d.Reverse())
		flips |= span & counterSpan
	}
	if flips == 0 {
		return Position{}, fmt.Errorf("%w: %s captures no discs", ErrIllegalMove, cell)
	}

	mine |= placed | flips
	theirs &^= flips

	next := Position{turn: p.turn.Opponent()}
	if p.turn == Black {
		next.black, next.white = mine, theirs
	} else {
		next.white, next.black = mine, theirs
	}
	return next, nil
}

// IsTerminal reports whether the game is over: neither side has a placing
// move. This covers both the full board and the double-pass ending with empty
// cells remaining.
func (p Position) IsTerminal() bool {
	return p.placements(Black) == 0 && p.placements(White) == 0
}

// Winner compares disc counts. Only meaningful once IsTerminal is true.
func (p Position) Winner() Outcome {
	black, white := p.DiscCount(Black), p.DiscCount(White)
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Draw
	}
}
