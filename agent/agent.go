package agent

import "connect4/game"

// Agent is a participant in a game. The engine calls SelectAction once
// per turn with a fresh snapshot and NotifyOutcome once when the game
// ends. Calls are synchronous: the engine waits for SelectAction with
// no timeout.
type Agent interface {
	// Token returns the identifier this agent plays as. It must stay
	// stable for the lifetime of the agent.
	Token() game.Token
	// SelectAction picks the next action for the given position.
	SelectAction(view game.StateView) game.Action
	// NotifyOutcome hands over the finalized outcome.
	NotifyOutcome(outcome *game.Outcome)
}
