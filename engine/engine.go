package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connect4/agent"
	"connect4/game"
)

// DefaultRetries is how many extra attempts an agent gets after a
// state-rejected action before it forfeits the game.
const DefaultRetries = 3

// ProtocolError reports an agent breaking the game contract: submitting
// an action kind the rules do not permit, or a column off the board.
// Protocol violations are fatal, the game stops without an outcome.
type ProtocolError struct {
	Token  game.Token
	Action game.Action
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("agent %q broke protocol with %v: %s", e.Token, e.Action, e.Reason)
}

type phase int

const (
	notStarted phase = iota
	inProgress
	finished
)

// Option adjusts a Game at construction time.
type Option func(g *Game)

// Game mediates one match: it owns the authoritative state, asks each
// agent in turn for an action and referees the result.
type Game struct {
	agents  []agent.Agent
	rows    int
	cols    int
	rules   game.Rules
	rng     *rand.Rand
	retries int
	phase   phase
}

// WithBoardSize overrides the standard 6x7 board.
func WithBoardSize(rows, cols int) Option {
	return func(g *Game) {
		g.rows = rows
		g.cols = cols
	}
}

// WithSeed fixes the turn-order shuffle for reproducible games.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the generator directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithRetries overrides the retry budget an agent gets before a
// rejected action forfeits the game.
func WithRetries(retries int) Option {
	return func(g *Game) {
		g.retries = retries
	}
}

// WithRules plays under a different rule set.
func WithRules(rules game.Rules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// WithPopOut is shorthand for WithRules(game.NewPopOutRules()).
func WithPopOut() Option {
	return WithRules(game.NewPopOutRules())
}

// New validates the lineup and returns a game ready to play. It fails
// on fewer than two agents, nil agents, empty or duplicate tokens,
// non-positive board dimensions and a negative retry budget.
func New(agents []agent.Agent, options ...Option) (*Game, error) {
	g := &Game{
		agents:  agents,
		rows:    game.DefaultRows,
		cols:    game.DefaultColumns,
		rules:   game.NewStandardRules(),
		retries: DefaultRetries,
	}
	for _, option := range options {
		option(g)
	}

	if len(g.agents) < 2 {
		return nil, fmt.Errorf("need at least two agents, got %d", len(g.agents))
	}
	seen := make(map[game.Token]bool, len(g.agents))
	for i, a := range g.agents {
		if a == nil {
			return nil, fmt.Errorf("agent %d is nil", i)
		}
		token := a.Token()
		if token == game.Empty {
			return nil, fmt.Errorf("agent %d has an empty token", i)
		}
		if seen[token] {
			return nil, fmt.Errorf("token %q is used by two agents", token)
		}
		seen[token] = true
	}
	if g.rows < 1 || g.cols < 1 {
		return nil, fmt.Errorf("board size %dx%d is not strictly positive", g.rows, g.cols)
	}
	if g.retries < 0 {
		return nil, fmt.Errorf("retry budget %d is negative", g.retries)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return g, nil
}

// Play runs the match to completion and returns the finalized outcome.
// Turn order is shuffled once at the start and fixed from then on.
// A game can be played once.
func (g *Game) Play() (*game.Outcome, error) {
	if g.phase != notStarted {
		return nil, fmt.Errorf("game can only be played once")
	}
	g.phase = inProgress

	tokens := make([]game.Token, len(g.agents))
	for i, a := range g.agents {
		tokens[i] = a.Token()
	}
	state, err := game.NewState(tokens, g.rows, g.cols)
	if err != nil {
		g.phase = finished
		return nil, err
	}

	order := make([]agent.Agent, len(g.agents))
	copy(order, g.agents)
	g.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	outcome := game.NewOutcome(tokens)
	log.Info().Msgf("%dx%d game starting, %s plays first", g.rows, g.cols, order[0].Token())

	for turn := 0; ; turn++ {
		current := order[turn%len(order)]
		token := current.Token()

		accepted := false
		for attempt := 0; attempt <= g.retries; attempt++ {
			act := current.SelectAction(state.View())
			if reason := g.violation(act); reason != "" {
				g.phase = finished
				return nil, &ProtocolError{Token: token, Action: act, Reason: reason}
			}
			err := state.Apply(act, token)
			if err == nil {
				outcome.Append(token, act)
				log.Debug().Msgf("%s plays %v", token, act)
				accepted = true
				break
			}
			var actionErr *game.ActionError
			if !errors.As(err, &actionErr) {
				g.phase = finished
				return nil, fmt.Errorf("applying action for %q: %w", token, err)
			}
			log.Warn().Msgf("%s attempt %d rejected: %s", token, attempt+1, actionErr.Reason)
		}
		if !accepted {
			outcome.FinalizeForfeit(token)
			log.Info().Msgf("%s forfeits after exhausting %d retries", token, g.retries)
			break
		}

		status, winner := state.CheckOutcome()
		if status == game.Won {
			outcome.FinalizeWin(winner)
			log.Info().Msgf("%s wins after %d actions", winner, len(outcome.Record()))
			break
		}
		if status == game.Drawn {
			outcome.FinalizeDraw()
			log.Info().Msgf("draw after %d actions", len(outcome.Record()))
			break
		}
	}
	g.phase = finished

	for _, a := range g.agents {
		a.NotifyOutcome(outcome)
	}
	return outcome, nil
}

// violation checks the structural contract on a submitted action and
// returns the empty string when it holds.
func (g *Game) violation(act game.Action) string {
	if !g.rules.Permits(act.Kind) {
		return fmt.Sprintf("action kind %v is not permitted, permitted kinds are %v", act.Kind, g.rules.Kinds())
	}
	if act.Column < 1 || act.Column > g.cols {
		return fmt.Sprintf("column %d lies outside the board, columns are indexed from 1 to %d", act.Column, g.cols)
	}
	return ""
}
