package agent

import (
	"golang.org/x/exp/rand"

	"connect4/game"
)

// Random places into a uniformly random open column. It is the baseline
// opponent and the workhorse of selfplay runs.
type Random struct {
	token game.Token
	rng   *rand.Rand
}

// NewRandom returns a random agent with its own generator, so runs are
// reproducible from the seed.
func NewRandom(token game.Token, seed uint64) *Random {
	return &Random{token: token, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Token() game.Token { return r.token }

func (r *Random) SelectAction(view game.StateView) game.Action {
	open := view.OpenColumns()
	return game.Action{Kind: game.Place, Column: open[r.rng.Intn(len(open))]}
}

func (r *Random) NotifyOutcome(*game.Outcome) {}
