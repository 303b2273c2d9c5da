package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// envConfig holds the defaults flags fall back to, so a shell profile
// can pin a house board size or log level once.
type envConfig struct {
	Rows     int    `env:"CONNECT4_ROWS"      envDefault:"6"`
	Columns  int    `env:"CONNECT4_COLS"      envDefault:"7"`
	LogLevel string `env:"CONNECT4_LOG_LEVEL" envDefault:"info"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("cannot parse log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&playCommand{env: cfg}, "")
	subcommands.Register(&selfplayCommand{env: cfg}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
