package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"connect4/agent"
	"connect4/engine"
	"connect4/game"
)

// Tokens assigned to the two seats of a terminal game.
const (
	tokenP1 game.Token = "X"
	tokenP2 game.Token = "O"
)

// playCommand runs a single game on the terminal between any mix of
// human and random players.
type playCommand struct {
	env envConfig

	p1      string
	p2      string
	rows    int
	columns int
	seed    uint64
	retries int
	popout  bool
}

func (*playCommand) Name() string     { return "play" }
func (*playCommand) Synopsis() string { return "Play a game from the command line" }
func (*playCommand) Usage() string {
	return `play [flags]

Play a single game between any mix of human and random players.
Humans are prompted for a column number each turn.
`
}

func (c *playCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "first player: human, random or random:SEED")
	flags.StringVar(&c.p2, "p2", "random", "second player: human, random or random:SEED")
	flags.IntVar(&c.rows, "rows", c.env.Rows, "board rows")
	flags.IntVar(&c.columns, "cols", c.env.Columns, "board columns")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed, 0 draws one from the clock")
	flags.IntVar(&c.retries, "retries", engine.DefaultRetries, "rejected actions a player may retry before forfeiting")
	flags.BoolVar(&c.popout, "popout", false, "allow removing a column's top token")
}

func (c *playCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}

	// Both players share one reader so a two-human game does not split
	// stdin between competing buffers.
	in := bufio.NewReader(os.Stdin)
	first, err := buildPlayer(in, tokenP1, c.p1, c.seed)
	if err != nil {
		log.Error().Err(err).Msg("cannot build player 1")
		return subcommands.ExitUsageError
	}
	second, err := buildPlayer(in, tokenP2, c.p2, c.seed+1)
	if err != nil {
		log.Error().Err(err).Msg("cannot build player 2")
		return subcommands.ExitUsageError
	}

	options := []engine.Option{
		engine.WithBoardSize(c.rows, c.columns),
		engine.WithSeed(c.seed),
		engine.WithRetries(c.retries),
	}
	if c.popout {
		options = append(options, engine.WithPopOut())
	}

	g, err := engine.New([]agent.Agent{first, second}, options...)
	if err != nil {
		log.Error().Err(err).Msg("cannot set up game")
		return subcommands.ExitUsageError
	}

	outcome, err := g.Play()
	if err != nil {
		log.Error().Err(err).Msg("game aborted")
		return subcommands.ExitFailure
	}

	showFinalBoard(outcome, c.rows, c.columns)
	fmt.Println(outcome)
	return subcommands.ExitSuccess
}

// showFinalBoard replays the accepted record onto a fresh position so
// the closing move is visible; agents only see the board before their
// own turns.
func showFinalBoard(outcome *game.Outcome, rows, cols int) {
	s, err := game.NewState([]game.Token{tokenP1, tokenP2}, rows, cols)
	if err != nil {
		return
	}
	for _, turn := range outcome.Record() {
		if err := s.Apply(turn.Action, turn.Token); err != nil {
			return
		}
	}
	agent.RenderBoard(os.Stdout, s.View())
}

// buildPlayer maps a -p1/-p2 value to an agent. random:SEED pins the
// random player's generator, plain random derives one from fallback.
func buildPlayer(in *bufio.Reader, token game.Token, spec string, fallback uint64) (agent.Agent, error) {
	switch {
	case spec == "human":
		return agent.NewCLI(token, in, os.Stdout), nil
	case spec == "random":
		return agent.NewRandom(token, fallback), nil
	case strings.HasPrefix(spec, "random:"):
		seed, err := strconv.ParseUint(spec[len("random:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse seed in %q: %w", spec, err)
		}
		return agent.NewRandom(token, seed), nil
	default:
		return nil, fmt.Errorf("unknown player %q, want human, random or random:SEED", spec)
	}
}
