package game

// Direction is one of the 8 ray directions, encoded as the bit-shift distance
// over the 8x8 board (cell = row*8 + col, row 0 at the top).
type Direction int8

const (
	North     Direction = -8
	South     Direction = 8
	West      Direction = -1
	East      Direction = 1
	NorthWest Direction = -9
	NorthEast Direction = -7
	SouthWest Direction = 7
	SouthEast Direction = 9
)

var directions = [8]Direction{North, South, West, East, NorthWest, NorthEast, SouthWest, SouthEast}

// Reverse returns the opposite ray direction.
func (d Direction) Reverse() Direction {
	return -d
}
