package game

import (
	"fmt"
	"strings"
)

// Status is the terminal check of a position.
type Status int

const (
	Unfinished Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case Unfinished:
		return "UNFINISHED"
	case Won:
		return "WON"
	case Drawn:
		return "DRAWN"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is one agent's share of a finished game.
type Result int

const (
	Pending Result = iota
	Win
	Lose
	Draw
)

func (r Result) String() string {
	switch r {
	case Pending:
		return "PENDING"
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Draw:
		return "DRAW"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Turn is one accepted action and the token that took it.
type Turn struct {
	Token  Token
	Action Action
}

// Outcome accumulates the record of a game and, once it ends, the result
// per token. The orchestrator is its only writer. Finalization happens
// exactly once; the mutators panic when used after it.
type Outcome struct {
	tokens    []Token
	results   map[Token]Result
	record    []Turn
	finalized bool
}

// NewOutcome starts an empty record with every token pending.
func NewOutcome(tokens []Token) *Outcome {
	o := &Outcome{
		tokens:  make([]Token, len(tokens)),
		results: make(map[Token]Result, len(tokens)),
	}
	copy(o.tokens, tokens)
	for _, t := range tokens {
		o.results[t] = Pending
	}
	return o
}

// Append records an accepted action.
func (o *Outcome) Append(token Token, act Action) {
	if o.finalized {
		panic("outcome: append after finalization")
	}
	o.record = append(o.record, Turn{Token: token, Action: act})
}

// FinalizeWin marks winner with Win and every other token with Lose.
func (o *Outcome) FinalizeWin(winner Token) {
	o.finalize(func(t Token) Result {
		if t == winner {
			return Win
		}
		return Lose
	})
}

// FinalizeDraw marks every token with Draw.
func (o *Outcome) FinalizeDraw() {
	o.finalize(func(Token) Result { return Draw })
}

// FinalizeForfeit marks offender with Lose and every other token with
// Win.
func (o *Outcome) FinalizeForfeit(offender Token) {
	o.finalize(func(t Token) Result {
		if t == offender {
			return Lose
		}
		return Win
	})
}

func (o *Outcome) finalize(result func(Token) Result) {
	if o.finalized {
		panic("outcome: finalized twice")
	}
	for _, t := range o.tokens {
		o.results[t] = result(t)
	}
	o.finalized = true
}

// Finalized reports whether results have been assigned.
func (o *Outcome) Finalized() bool { return o.finalized }

// ResultOf returns the result recorded for token, Pending while the
// game is still running or when the token is unknown.
func (o *Outcome) ResultOf(token Token) Result {
	return o.results[token]
}

// Results copies the per-token results.
func (o *Outcome) Results() map[Token]Result {
	out := make(map[Token]Result, len(o.results))
	for t, r := range o.results {
		out[t] = r
	}
	return out
}

// Record copies the sequence of accepted actions in play order.
func (o *Outcome) Record() []Turn {
	out := make([]Turn, len(o.record))
	copy(out, o.record)
	return out
}

// String renders the per-agent results followed by the action record,
// tokens in registration order.
func (o *Outcome) String() string {
	var b strings.Builder
	b.WriteString("Agent outcomes")
	for _, t := range o.tokens {
		fmt.Fprintf(&b, "\n%s: %s", t, o.results[t])
	}
	b.WriteString("\n\nAction record")
	for _, turn := range o.record {
		fmt.Fprintf(&b, "\n%s: %s", turn.Token, turn.Action)
	}
	return b.String()
}
