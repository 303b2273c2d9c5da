package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"connect4/experiments"
	"connect4/experiments/metrics"
)

// selfplayCommand plays a random-vs-random series and writes the
// records as CSV.
type selfplayCommand struct {
	env envConfig

	name    string
	games   int
	seed    uint64
	threads int
	rows    int
	columns int
	out     string
}

func (*selfplayCommand) Name() string { return "selfplay" }
func (*selfplayCommand) Synopsis() string {
	return "Play a random-vs-random series and record the results"
}
func (*selfplayCommand) Usage() string {
	return `selfplay [flags]

Play a series of games between two random players and write agent,
game and move records as CSV files.
`
}

func (c *selfplayCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.name, "name", "selfplay", "series name, used in the default output directory")
	flags.IntVar(&c.games, "games", 100, "number of games to play")
	flags.Uint64Var(&c.seed, "seed", 0, "series seed, 0 draws one from the clock")
	flags.IntVar(&c.threads, "threads", 0, "concurrent games, 0 means one per CPU")
	flags.IntVar(&c.rows, "rows", c.env.Rows, "board rows")
	flags.IntVar(&c.columns, "cols", c.env.Columns, "board columns")
	flags.StringVar(&c.out, "out", "", "output directory, empty picks a timestamped one")
}

func (c *selfplayCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}

	specs := []metrics.AgentSpec{
		{ID: 1, Kind: experiments.KindRandom},
		{ID: 2, Kind: experiments.KindRandom},
	}
	series := experiments.Series{
		Name:        c.name,
		Games:       c.games,
		Rows:        c.rows,
		Columns:     c.columns,
		Seed:        c.seed,
		Parallelism: c.threads,
	}

	results, err := experiments.Run(series, [][2]metrics.AgentSpec{{specs[0], specs[1]}})
	if err != nil {
		log.Error().Err(err).Msg("series failed")
		return subcommands.ExitFailure
	}

	dir := c.out
	if dir == "" {
		dir = metrics.DefaultDir(c.name)
	}
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("cannot create output directory")
		return subcommands.ExitFailure
	}
	if err := writer.WriteAgentSpecs(specs); err != nil {
		log.Error().Err(err).Msg("cannot write agent specs")
		return subcommands.ExitFailure
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		log.Error().Err(err).Msg("cannot write game records")
		return subcommands.ExitFailure
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		log.Error().Err(err).Msg("cannot write move records")
		return subcommands.ExitFailure
	}

	var wins1, wins2, draws int
	for _, record := range results.Games {
		switch record.Winner {
		case string(experiments.Slot1):
			wins1++
		case string(experiments.Slot2):
			wins2++
		default:
			draws++
		}
	}
	log.Info().Msgf("series complete: %d games, agent1 %d wins, agent2 %d wins, %d draws (seed %d), records in %s",
		len(results.Games), wins1, wins2, draws, c.seed, writer.Dir())
	return subcommands.ExitSuccess
}
