package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

const NumGames = 20 // Per match-up

// contender pairs an experiment record with the config used to build it.
type contender struct {
	record metrics.AgentRecord
	config engine.AgentConfig
}

// RunDepthScaling pits alpha-beta agents of increasing depth against a
// seeded random baseline, to measure how extra plies convert into wins and
// search cost.
func RunDepthScaling() {
	baseline := contender{
		record: metrics.AgentRecord{ID: 0, Strategy: "random"},
		config: engine.AgentConfig{Strategy: "random", Seed: 1},
	}
	contenders := []contender{baseline}
	matchUps := [][2]contender{}
	for depth := 1; depth <= 5; depth++ {
		c := contender{
			record: metrics.AgentRecord{ID: depth, Strategy: "alphabeta", Depth: depth},
			config: engine.AgentConfig{Strategy: "alphabeta", Depth: depth},
		}
		contenders = append(contenders, c)
		matchUps = append(matchUps, [2]contender{c, baseline})
	}

	runExperiment("depth_scaling", contenders, matchUps, NumGames)
}

// RunPruningComparison plays minimax against alpha-beta at the same depths.
// Both pick identical moves, so each pairing replays one deterministic game;
// the move records expose the node counts pruning saves.
func RunPruningComparison() {
	contenders := []contender{}
	matchUps := [][2]contender{}
	for depth := 2; depth <= 4; depth++ {
		minimax := contender{
			record: metrics.AgentRecord{ID: depth * 10, Strategy: "minimax", Depth: depth},
			config: engine.AgentConfig{Strategy: "minimax", Depth: depth},
		}
		alphabeta := contender{
			record: metrics.AgentRecord{ID: depth*10 + 1, Strategy: "alphabeta", Depth: depth},
			config: engine.AgentConfig{Strategy: "alphabeta", Depth: depth},
		}
		contenders = append(contenders, minimax, alphabeta)
		matchUps = append(matchUps, [2]contender{minimax, alphabeta})
	}

	// Two games per pairing, one per colour assignment: with deterministic
	// agents on both sides more repetitions replay the same game.
	runExperiment("pruning_comparison", contenders, matchUps, 2)
}

func runExperiment(name string, contenders []contender, matchUps [][2]contender, numGames int) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}

	records := []metrics.AgentRecord{}
	for _, c := range contenders {
		records = append(records, c.record)
	}
	if err := writer.WriteAgentRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent records")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().Msgf("match-up: %s(d%d) vs %s(d%d)",
			matchUp[0].record.Strategy, matchUp[0].record.Depth,
			matchUp[1].record.Strategy, matchUp[1].record.Depth)
		for i := 0; i < numGames; i++ {
			// Alternate the starting side between games
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			gameID++
			gameRecord, moves := playGame(gameID, black, white)
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Msgf("finished experiment %s: %d games", name, len(gameRecords))
}

// instance is a playable agent with its own metrics collector.
type instance struct {
	agent   searcher.Agent
	metrics searcher.Collector
}

func newInstance(c contender, gameNo int) instance {
	collector := searcher.NewCollector()
	cfg := c.config
	if cfg.Strategy == "random" {
		// Vary the seed per game while keeping the run reproducible
		cfg.Seed += uint64(gameNo)
	}
	agent, err := cfg.NewAgent(searcher.WithCollector(collector))
	if err != nil {
		log.Panic().Err(err).Msgf("bad agent config %+v", cfg)
	}
	return instance{agent: agent, metrics: collector}
}

func playGame(id int, black, white contender) (metrics.GameRecord, []metrics.MoveRecord) {
	instances := map[game.Colour]instance{
		game.Black: newInstance(black, id),
		game.White: newInstance(white, id),
	}

	var moves []metrics.MoveRecord
	pos := game.NewPosition()
	start := time.Now()
	ply := 0
	for !pos.IsTerminal() {
		mover := pos.SideToMove()
		inst := instances[mover]
		legal := pos.LegalMoves()

		moveStart := time.Now()
		move := inst.agent.ChooseMove(pos, legal)
		metric := inst.metrics.Complete()

		next, err := pos.Apply(move)
		if err != nil {
			log.Panic().Msgf("%s agent chose %s: %v", mover, move, err)
		}
		pos = next
		ply++
		moves = append(moves, metrics.MoveRecord{
			Game:      id,
			Ply:       ply,
			Player:    mover.String(),
			Move:      move.String(),
			Nodes:     metric.Nodes,
			LeafEvals: metric.LeafEvals,
			Cutoffs:   metric.Cutoffs,
			Duration:  time.Since(moveStart),
		})
	}

	record := metrics.GameRecord{
		ID:         id,
		Black:      black.record.ID,
		White:      white.record.ID,
		Winner:     pos.Winner().String(),
		Plies:      ply,
		BlackDiscs: pos.DiscCount(game.Black),
		WhiteDiscs: pos.DiscCount(game.White),
		Duration:   time.Since(start),
	}
	return record, moves
}
