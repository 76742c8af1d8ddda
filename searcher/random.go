package searcher

import (
	"golang.org/x/exp/rand"

	"othello/game"
)

// Random picks uniformly among the legal moves. It is the baseline opponent
// and the fallback strategy in tests.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random strategy seeded with seed, so games are
// reproducible.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(_ game.Position, legal []game.Move) game.Move {
	return legal[r.rng.Intn(len(legal))]
}
