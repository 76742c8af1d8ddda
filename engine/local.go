package engine

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Update records one applied move, for spectators and history.
type Update struct {
	Move     game.Move
	Position game.Position
}

// Engine drives a local synchronous game: it holds the position, asks the
// active agent for a move, applies it, and repeats until terminal.
type Engine struct {
	Position game.Position
	agents   map[game.Colour]searcher.Agent
	history  []Update
}

func NewLocalEngine(black, white searcher.Agent) *Engine {
	if black == nil || white == nil {
		panic("both sides need an agent")
	}
	return &Engine{
		Position: game.NewPosition(),
		agents: map[game.Colour]searcher.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game to completion and returns the outcome.
func (e *Engine) Run() game.Outcome {
	log.Info().Msgf("%s is starting", e.Position.SideToMove())

	for !e.Position.IsTerminal() {
		mover := e.Position.SideToMove()
		legal := e.Position.LegalMoves()
		move := e.agents[mover].ChooseMove(e.Position, legal)
		if err := e.Play(move); err != nil {
			log.Panic().Msgf("%s agent chose %s: %v", mover, move, err)
		}
		log.Debug().Msgf("ply %d: %s plays %s", len(e.history), mover, move)
	}

	outcome := e.Position.Winner()
	log.Info().Msgf("game over after %d plies: %s (%d-%d)",
		len(e.history), outcome,
		e.Position.DiscCount(game.Black), e.Position.DiscCount(game.White))
	return outcome
}

// Play applies one externally chosen move, for drivers that own the loop
// (CLIs, UIs, tests). The rules engine validates the move in full.
func (e *Engine) Play(move game.Move) error {
	next, err := e.Position.Apply(move)
	if err != nil {
		return err
	}
	e.history = append(e.history, Update{Move: move, Position: next})
	e.Position = next
	return nil
}

// History returns the applied moves in order.
func (e *Engine) History() []Update {
	return e.history
}
