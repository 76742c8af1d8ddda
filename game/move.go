package game

import (
	"fmt"
	"strings"
)

// Move is a disc placement at a cell, or Pass when the side to move has no
// placing move. Moves are transient values produced by LegalMoves and consumed
// by Apply.
type Move int8

// Pass is the forced move when no placement captures anything.
const Pass Move = -1

// PlaceAt returns the placement move for cell c.
func PlaceAt(c Cell) Move {
	return Move(c)
}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m == Pass
}

// Cell returns the placement target. Only meaningful for non-pass moves.
func (m Move) Cell() Cell {
	return Cell(m)
}

// String renders the move in algebraic notation, e.g. "d3" or "pass".
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return m.Cell().String()
}

// ParseMove reads a move in the notation produced by String.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return Pass, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Pass, fmt.Errorf("cannot parse move %q", s)
	}
	return PlaceAt(CellAt(int(s[1]-'1'), int(s[0]-'a'))), nil
}
