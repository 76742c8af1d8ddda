package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/experiments"
)

func main() {
	configPath := flag.String("config", "", "YAML match configuration (see engine.MatchConfig)")
	experiment := flag.String("experiment", "", "run an experiment instead of a match: depth-scaling or pruning")
	debug := flag.Bool("debug", false, "log every ply")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	switch *experiment {
	case "depth-scaling":
		experiments.RunDepthScaling()
		return
	case "pruning":
		experiments.RunPruningComparison()
		return
	case "":
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	cfg := engine.MatchConfig{
		Black: engine.AgentConfig{Strategy: "alphabeta", Depth: 5},
		White: engine.AgentConfig{Strategy: "immediate"},
	}
	if *configPath != "" {
		var err error
		cfg, err = engine.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load match config")
		}
	}

	black, err := cfg.Black.NewAgent()
	if err != nil {
		log.Fatal().Err(err).Msg("bad black agent config")
	}
	white, err := cfg.White.NewAgent()
	if err != nil {
		log.Fatal().Err(err).Msg("bad white agent config")
	}

	e := engine.NewLocalEngine(black, white)
	outcome := e.Run()
	fmt.Printf("%s\n\nresult: %s\n", e.Position, outcome)
}
