package engine

import (
	"errors"
	"testing"

	"othello/game"
	"othello/searcher"
)

func TestRunPlaysToCompletion(t *testing.T) {
	e := NewLocalEngine(searcher.NewRandom(1), searcher.NewRandom(2))

	outcome := e.Run()

	if !e.Position.IsTerminal() {
		t.Fatal("expected a terminal position after Run")
	}
	if outcome != e.Position.Winner() {
		t.Errorf("expected outcome %v to match final position winner %v", outcome, e.Position.Winner())
	}
	if len(e.History()) == 0 {
		t.Error("expected a non-empty move history")
	}
	last := e.History()[len(e.History())-1]
	if last.Position != e.Position {
		t.Error("expected the last update to hold the final position")
	}
}

func TestRunWithSearchAgents(t *testing.T) {
	e := NewLocalEngine(
		searcher.NewAlphaBeta(2),
		searcher.NewImmediate(),
	)

	e.Run()

	if !e.Position.IsTerminal() {
		t.Fatal("expected a terminal position after Run")
	}
	// Both agents are deterministic, so the replay must be identical
	replay := NewLocalEngine(searcher.NewAlphaBeta(2), searcher.NewImmediate())
	replay.Run()
	if replay.Position != e.Position {
		t.Error("expected deterministic agents to reproduce the same game")
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	e := NewLocalEngine(searcher.NewRandom(1), searcher.NewRandom(2))

	err := e.Play(game.PlaceAt(game.CellAt(3, 3))) // occupied by white

	if !errors.Is(err, game.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if len(e.History()) != 0 {
		t.Error("a rejected move must not be recorded")
	}
}

func TestPlayAppliesLegalMove(t *testing.T) {
	e := NewLocalEngine(searcher.NewRandom(1), searcher.NewRandom(2))
	move := e.Position.LegalMoves()[0]

	if err := e.Play(move); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Position.SideToMove() != game.White {
		t.Error("expected the turn to flip to white")
	}
	if len(e.History()) != 1 || e.History()[0].Move != move {
		t.Errorf("expected history to record %v, got %+v", move, e.History())
	}
}
