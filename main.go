package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cannon/engine"
	"cannon/game"
	"cannon/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type config struct {
	light     string
	dark      string
	timeLimit time.Duration
	depth     int
	settings  map[string]any // search settings read from -config
	seed      uint64
}

func main() {
	light := flag.String("light", "alphabeta", "Light controller: alphabeta or random")
	dark := flag.String("dark", "random", "Dark controller: alphabeta or random")
	timeLimit := flag.Duration("time", searcher.DefaultTimeLimit, "Search time per move")
	depth := flag.Int("depth", searcher.DefaultDepth, "Depth of the first search pass")
	configFile := flag.String("config", "", "YAML file with search settings")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Random seed (0 = now)")
	out := flag.String("out", "", "Directory for CSV game and move records")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config{
		light:     *light,
		dark:      *dark,
		timeLimit: *timeLimit,
		depth:     *depth,
		seed:      *seed,
	}
	if *configFile != "" {
		settings, err := loadSettings(*configFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *configFile).Msg("cannot read search settings")
		}
		cfg.settings = settings
	}

	var gameRecords []engine.GameRecord
	var moveRecords []engine.MoveRecord
	wins := map[string]int{}
	for i := 0; i < *games; i++ {
		metric, moves, err := runGame(cfg, i)
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game aborted")
		}
		gameRecords = append(gameRecords, engine.GameRecord{Light: cfg.light, Dark: cfg.dark, GameMetric: metric})
		for _, m := range moves {
			moveRecords = append(moveRecords, engine.MoveRecord{Game: metric.ID, MoveMetric: m})
		}

		winner := metric.Winner
		if winner == "" {
			winner = "none"
		}
		wins[winner]++
		log.Info().Msgf("Game %d over! Winner: %s", i+1, winner)
	}
	log.Info().
		Int("light", wins[game.Light.String()]).
		Int("dark", wins[game.Dark.String()]).
		Int("none", wins["none"]).
		Msg("finished")

	if *out != "" {
		if err := writeRecords(*out, gameRecords, moveRecords); err != nil {
			log.Fatal().Err(err).Msg("cannot write records")
		}
	}
}

func writeRecords(root string, games []engine.GameRecord, moves []engine.MoveRecord) error {
	w, err := engine.NewWriter(root)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(games); err != nil {
		return err
	}
	if err := w.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Str("dir", w.Dir()).Msg("records written")
	return nil
}

// runGame plays a single game and returns its metrics
func runGame(cfg config, index int) (engine.GameMetric, []engine.MoveMetric, error) {
	var seed uint64
	if cfg.seed != 0 {
		seed = cfg.seed + uint64(index)*2
	}
	light, err := createController(cfg, cfg.light, seed)
	if err != nil {
		return engine.GameMetric{}, nil, err
	}
	dark, err := createController(cfg, cfg.dark, seed+1)
	if err != nil {
		return engine.GameMetric{}, nil, err
	}

	var options []engine.Option
	if seed != 0 {
		options = append(options, engine.WithGame(game.NewGame(game.WithSeed(seed))))
	}
	return engine.LocalEngine(light, dark, options...).Run()
}

func createController(cfg config, kind string, seed uint64) (engine.Factory, error) {
	switch kind {
	case "random":
		return engine.Random(seed), nil
	case "alphabeta":
		options := []searcher.Option{searcher.WithMetrics()}
		if seed != 0 {
			options = append(options, searcher.WithSeed(seed))
		}
		if cfg.settings != nil {
			// the file replaces -time and -depth
			return engine.AlphaBetaFromMap(cfg.settings, options...)
		}
		options = append(options, searcher.WithTimeLimit(cfg.timeLimit), searcher.WithDepth(cfg.depth))
		return engine.AlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("unknown controller %q", kind)
	}
}

func loadSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	settings := map[string]any{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}
