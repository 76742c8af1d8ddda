package game

import (
	"fmt"
	"math/bits"
)

// Cell indexes a board square, 0..63, row-major from the top-left corner.
type Cell int8

// CellAt returns the cell at the given row and column, both 0..7.
func CellAt(row, col int) Cell {
	return Cell(row*8 + col)
}

func (c Cell) Row() int { return int(c) / 8 }

func (c Cell) Col() int { return int(c) % 8 }

// Bitboard returns the single-cell occupancy set for c.
func (c Cell) Bitboard() Bitboard {
	return Bitboard(1) << uint(c)
}

// String renders the cell in algebraic notation, e.g. "d3".
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.Col(), c.Row()+1)
}

// Bitboard is a set of board cells, one bit per cell (bit n = cell n).
type Bitboard uint64

const (
	// File masks clear the bits that would wrap to the far file after an
	// east or west shift component.
	notFileA Bitboard = 0xFEFEFEFEFEFEFEFE
	notFileH Bitboard = 0x7F7F7F7F7F7F7F7F
)

// NewBitboard builds an occupancy set from the given cells.
func NewBitboard(cells ...Cell) Bitboard {
	var b Bitboard
	for _, c := range cells {
		b |= c.Bitboard()
	}
	return b
}

// Count returns the number of occupied cells.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Test reports whether cell c is in the set.
func (b Bitboard) Test(c Cell) bool {
	return b&c.Bitboard() != 0
}

// Shift moves every cell one step along d. Cells that would wrap across the
// board edge are dropped.
func (b Bitboard) Shift(d Direction) Bitboard {
	var shifted Bitboard
	if d < 0 {
		shifted = b >> uint(-d)
	} else {
		shifted = b << uint(d)
	}
	switch d {
	case West, NorthWest, SouthWest:
		return shifted & notFileH
	case East, NorthEast, SouthEast:
		return shifted & notFileA
	}
	return shifted
}

// PopLSB removes and returns the lowest occupied cell. The receiver must be
// non-empty.
func (b *Bitboard) PopLSB() Cell {
	c := Cell(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return c
}

// Cells lists the occupied cells in ascending order.
func (b Bitboard) Cells() []Cell {
	cells := make([]Cell, 0, b.Count())
	for b != 0 {
		cells = append(cells, b.PopLSB())
	}
	return cells
}

// fill floods gen along d through the propagator set pro, including the
// generator cells themselves. A regular dumb7fill, adapted from
// https://www.chessprogramming.org/Dumb7Fill.
func fill(gen, pro Bitboard, d Direction) Bitboard {
	flood := gen
	for i := 0; i < 6; i++ {
		gen = gen.Shift(d) & pro
		flood |= gen
	}
	return flood
}

// occludedFill floods like fill but excludes the generator cells.
func occludedFill(gen, pro Bitboard, d Direction) Bitboard {
	var flood Bitboard
	for i := 0; i < 6; i++ {
		gen = gen.Shift(d) & pro
		flood |= gen
	}
	return flood
}
