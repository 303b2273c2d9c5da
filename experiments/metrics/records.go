package metrics

import "time"

// AgentSpec describes one configured agent in a series. Seed offsets
// the per-game seeds so two specs of the same kind still act
// independently.
type AgentSpec struct {
	ID   int
	Kind string // agent constructor, "random"
	Seed uint64
}

// GameMetric is what one finished game measured.
type GameMetric struct {
	FirstMover string // slot token of the agent the shuffle put first
	Winner     string // slot token of the winner, or "draw"
	Moves      int    // accepted actions in the record
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// GameRecord ties a game's metric to the specs that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentSpec.ID in slot 1
	Agent2 int // AgentSpec.ID in slot 2
	GameMetric
}

// MoveRecord is one accepted action of one game, for per-move analysis
// across a series.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int // 1-based position in the record
	Token  string
	Kind   string
	Column int
}
