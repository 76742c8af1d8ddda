package game

import (
	"errors"
	"fmt"
	"strings"
)

// Colour identifies a side.
type Colour uint8

const (
	Black Colour = iota
	White
)

// Opponent returns the other side.
func (c Colour) Opponent() Colour {
	if c == Black {
		return White
	}
	return Black
}

func (c Colour) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Outcome is the result of a finished game.
type Outcome int8

const (
	Draw Outcome = iota
	BlackWins
	WhiteWins
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	default:
		return "draw"
	}
}

// ErrInvalidPosition flags a construction-time invariant violation, such as a
// cell owned by both sides.
var ErrInvalidPosition = errors.New("invalid position")

// Position is a snapshot of the board plus the side to move. It is a value
// type: applying a move returns a new Position and never mutates the old one,
// so positions can be shared freely across concurrent searches.
type Position struct {
	black Bitboard
	white Bitboard
	turn  Colour
}

// NewPosition returns the standard starting position: black on d5 and e4,
// white on d4 and e5, black to move.
func NewPosition() Position {
	return Position{
		black: NewBitboard(CellAt(3, 4), CellAt(4, 3)),
		white: NewBitboard(CellAt(3, 3), CellAt(4, 4)),
		turn:  Black,
	}
}

// NewCustomPosition builds a position from explicit occupancy sets. It fails
// with ErrInvalidPosition when the sets overlap.
func NewCustomPosition(black, white Bitboard, turn Colour) (Position, error) {
	if overlap := black & white; overlap != 0 {
		return Position{}, fmt.Errorf("%w: %d cells owned by both sides", ErrInvalidPosition, overlap.Count())
	}
	return Position{black: black, white: white, turn: turn}, nil
}

// Occupied returns the occupancy set of the given side.
func (p Position) Occupied(c Colour) Bitboard {
	if c == Black {
		return p.black
	}
	return p.white
}

// IsEmpty reports whether neither side occupies c.
func (p Position) IsEmpty(c Cell) bool {
	return !(p.black | p.white).Test(c)
}

// DiscCount returns the number of discs the given side has on the board.
func (p Position) DiscCount(c Colour) int {
	return p.Occupied(c).Count()
}

// SideToMove returns the side whose turn it is.
func (p Position) SideToMove() Colour {
	return p.turn
}

// ParsePosition builds a position from an ASCII diagram: one line per row
// from the top, 'X' for black, 'O' for white, '.' for empty. Leading and
// trailing whitespace on each line is ignored, and trailing rows may be
// omitted. Diagrams wider or taller than the board fail with
// ErrInvalidPosition.
func ParsePosition(diagram string, turn Colour) (Position, error) {
	var black, white Bitboard
	for i, line := range strings.Split(strings.Trim(diagram, "\n"), "\n") {
		if i >= 8 {
			return Position{}, fmt.Errorf("%w: more than 8 rows", ErrInvalidPosition)
		}
		for j, r := range strings.TrimSpace(line) {
			if j >= 8 {
				return Position{}, fmt.Errorf("%w: more than 8 columns on row %d", ErrInvalidPosition, i+1)
			}
			switch r {
			case 'X':
				black |= CellAt(i, j).Bitboard()
			case 'O':
				white |= CellAt(i, j).Bitboard()
			case '.':
			default:
				return Position{}, fmt.Errorf("%w: unexpected rune %q", ErrInvalidPosition, r)
			}
		}
	}
	return NewCustomPosition(black, white, turn)
}

// String renders the mirror image of a ParsePosition diagram.
func (p Position) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := CellAt(row, col)
			switch {
			case p.black.Test(c):
				sb.WriteByte('X')
			case p.white.Test(c):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		if row != 7 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
