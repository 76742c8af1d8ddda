package searcher

import (
	"fmt"

	"othello/game"
)

// Agent picks one move from a non-empty set of legal moves for the side to
// move. The returned move must be an element of legal; the driver only calls
// an agent when a decision is required, so violating either end of the
// contract is a programming error, not a recoverable condition.
type Agent interface {
	ChooseMove(pos game.Position, legal []game.Move) game.Move
}

// infinity bounds the search window strictly outside any reachable score,
// including the terminal sentinels with their margins.
const infinity = 2 * game.Win

// config carries the knobs shared by the evaluating strategies.
type config struct {
	evaluate game.Evaluate
	metrics  Collector
}

// Option tunes an evaluating strategy at construction time.
type Option func(*config)

// WithEvaluate replaces the default disc-differential evaluation.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithCollector installs a metrics collector for search instrumentation.
func WithCollector(metrics Collector) Option {
	return func(c *config) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

func newConfig(options ...Option) config {
	c := config{ // Default values
		evaluate: game.DiscDifference,
		metrics:  NewNoopCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// mustApply plays a move the rules engine itself enumerated, so failure means
// a corrupted search, not bad caller input.
func mustApply(pos game.Position, m game.Move) game.Position {
	next, err := pos.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("applying enumerated move %s failed: %v", m, err))
	}
	return next
}
