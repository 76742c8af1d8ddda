package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"othello/game"
	"othello/searcher"
)

// AgentConfig selects and tunes the strategy for one side.
type AgentConfig struct {
	Strategy string       `yaml:"strategy"` // random, immediate, minimax or alphabeta
	Depth    int          `yaml:"depth"`    // plies, minimax/alphabeta only
	Seed     uint64       `yaml:"seed"`     // random only
	Weights  game.Weights `yaml:"weights,omitempty"`
}

// MatchConfig configures a full local match.
type MatchConfig struct {
	Black AgentConfig `yaml:"black"`
	White AgentConfig `yaml:"white"`
}

// LoadMatchConfig reads a YAML match configuration from path.
func LoadMatchConfig(path string) (MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg MatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewAgent builds the configured agent.
func (c AgentConfig) NewAgent(options ...searcher.Option) (searcher.Agent, error) {
	if c.Weights != (game.Weights{}) {
		options = append(options, searcher.WithEvaluate(game.NewWeightedEvaluate(c.Weights)))
	}
	switch c.Strategy {
	case "random":
		return searcher.NewRandom(c.Seed), nil
	case "immediate":
		return searcher.NewImmediate(options...), nil
	case "minimax":
		if c.Depth <= 0 {
			return nil, fmt.Errorf("minimax needs a positive depth, got %d", c.Depth)
		}
		return searcher.NewMinimax(c.Depth, options...), nil
	case "alphabeta":
		if c.Depth <= 0 {
			return nil, fmt.Errorf("alphabeta needs a positive depth, got %d", c.Depth)
		}
		return searcher.NewAlphaBeta(c.Depth, options...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", c.Strategy)
	}
}
