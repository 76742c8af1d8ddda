package metrics

import "time"

// AgentRecord identifies one configured agent in an experiment.
type AgentRecord struct {
	ID       int
	Strategy string
	Depth    int
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID         int
	Black      int // AgentRecord.ID
	White      int // AgentRecord.ID
	Winner     string
	Plies      int
	BlackDiscs int
	WhiteDiscs int
	Duration   time.Duration
}

// MoveRecord captures the search work behind one move.
type MoveRecord struct {
	Game      int // GameRecord.ID
	Ply       int
	Player    string
	Move      string
	Nodes     int64
	LeafEvals int64
	Cutoffs   int64
	Duration  time.Duration
}
