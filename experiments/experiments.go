package experiments

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
)

// KindRandom is the only built-in agent kind.
const KindRandom = "random"

// Slot tokens keep a spec's identity out of the board: the same spec
// can play both sides of a matchup, and records refer to slots.
const (
	Slot1 game.Token = "agent1"
	Slot2 game.Token = "agent2"

	// Draw marks a game nobody won in a record's winner column.
	Draw = "draw"
)

// Series describes a selfplay experiment: every matchup plays Games
// games on a Rows x Columns board. For a fixed Seed the games replay
// identically regardless of Parallelism; only the wall-clock timing
// columns of the game records vary between runs.
type Series struct {
	Name        string
	Games       int // per matchup
	Rows        int
	Columns     int
	Seed        uint64
	Parallelism int // <1 means one worker per CPU
}

// Results of a series. Game ids are assigned in matchup order, so the
// slices line up run to run.
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays every matchup of the series and collects the records.
func Run(series Series, matchups [][2]metrics.AgentSpec) (*Results, error) {
	if series.Games < 1 {
		return nil, fmt.Errorf("need at least one game per matchup, got %d", series.Games)
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("need at least one matchup")
	}
	if series.Rows == 0 && series.Columns == 0 {
		series.Rows, series.Columns = game.DefaultRows, game.DefaultColumns
	}
	if series.Parallelism < 1 {
		series.Parallelism = runtime.NumCPU()
	}

	total := len(matchups) * series.Games
	log.Info().Msgf("starting %s series: %d matchups, %d games each", series.Name, len(matchups), series.Games)

	gameRecords := make([]metrics.GameRecord, total)
	moveRecords := make([][]metrics.MoveRecord, total)

	var group errgroup.Group
	group.SetLimit(series.Parallelism)
	for mi, matchup := range matchups {
		matchup := matchup
		for gi := 0; gi < series.Games; gi++ {
			id := mi*series.Games + gi + 1
			group.Go(func() error {
				record, moves, err := playGame(series, id, matchup)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				gameRecords[id-1] = record
				moveRecords[id-1] = moves
				log.Debug().Msgf("game %d completed, winner %s", id, record.Winner)
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	results := &Results{Games: gameRecords}
	for _, moves := range moveRecords {
		results.Moves = append(results.Moves, moves...)
	}
	log.Info().Msgf("completed %s series: %d games", series.Name, total)
	return results, nil
}

func playGame(series Series, id int, matchup [2]metrics.AgentSpec) (metrics.GameRecord, []metrics.MoveRecord, error) {
	gameSeed := series.Seed + uint64(id)
	first, err := buildAgent(matchup[0], Slot1, gameSeed*2)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	second, err := buildAgent(matchup[1], Slot2, gameSeed*2+1)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	g, err := engine.New([]agent.Agent{first, second},
		engine.WithBoardSize(series.Rows, series.Columns),
		engine.WithSeed(gameSeed))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	start := time.Now().UTC()
	outcome, err := g.Play()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now().UTC()

	record := outcome.Record()
	moves := make([]metrics.MoveRecord, len(record))
	for i, turn := range record {
		moves[i] = metrics.MoveRecord{
			Game:   id,
			Step:   i + 1,
			Token:  string(turn.Token),
			Kind:   turn.Action.Kind.String(),
			Column: turn.Action.Column,
		}
	}

	firstMover := ""
	if len(record) > 0 {
		firstMover = string(record[0].Token)
	}
	return metrics.GameRecord{
		ID:     id,
		Agent1: matchup[0].ID,
		Agent2: matchup[1].ID,
		GameMetric: metrics.GameMetric{
			FirstMover: firstMover,
			Winner:     winnerOf(outcome),
			Moves:      len(record),
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
		},
	}, moves, nil
}

func buildAgent(spec metrics.AgentSpec, token game.Token, seed uint64) (agent.Agent, error) {
	switch spec.Kind {
	case KindRandom:
		return agent.NewRandom(token, seed+spec.Seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", spec.Kind)
	}
}

func winnerOf(outcome *game.Outcome) string {
	for token, result := range outcome.Results() {
		if result == game.Win {
			return string(token)
		}
	}
	return Draw
}
