// Command arena plays the configured lineup of scripted players against each other and prints their win rates.
//
//	arena [flags]                          run a cross evaluation
//	arena [flags] teams list|show|save|delete ...
//	arena [flags] results list|show <id>
//	arena -config <path> -write-config    write the default config
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/nathanieltooley/pokearena/arena"
	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/nathanieltooley/pokearena/internal/config"
	"github.com/nathanieltooley/pokearena/internal/logging"
	"github.com/nathanieltooley/pokearena/internal/tui"
	"github.com/nathanieltooley/pokearena/store"
	"github.com/nathanieltooley/pokearena/teams"
	"github.com/rs/zerolog/log"
)

type flags struct {
	configPath  string
	challenges  int
	seed        uint64
	db          string
	useTUI      bool
	logLevel    string
	writeConfig bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", config.DefaultConfigLocation(), "config file (.yaml, .yml, .toml or .json)")
	flag.IntVar(&f.challenges, "n", 0, "battles per pair of players (overrides the config)")
	flag.Uint64Var(&f.seed, "seed", 0, "base seed; 0 uses the config's seed, or a random one if that is 0 too")
	flag.StringVar(&f.db, "db", "", "sqlite file to save results to (overrides the config)")
	flag.BoolVar(&f.useTUI, "tui", false, "show a progress view while battles run")
	flag.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error (overrides the config)")
	flag.BoolVar(&f.writeConfig, "write-config", false, "write the default config to the -config path and exit")
	flag.Parse()

	return f
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func run() error {
	f := parseFlags()

	if f.writeConfig {
		if err := config.Save(f.configPath, config.Default()); err != nil {
			return err
		}

		fmt.Printf("wrote default config to %s\n", f.configPath)
		return nil
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	if f.challenges > 0 {
		cfg.Challenges = f.challenges
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.db != "" {
		cfg.Database = f.db
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	useTUI := f.useTUI && tui.IsTerminal(os.Stdout)

	if err := logging.Init(cfg.Log, os.Stderr); err != nil {
		return err
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	teamStore := teams.NewStore(cfg.TeamSaveLocation)

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "teams":
			return teamsCommand(teamStore, args[1:])
		case "results":
			return resultsCommand(ctx, cfg, args[1:])
		default:
			return fmt.Errorf("unknown command %q", args[0])
		}
	}

	return evaluate(ctx, cfg, teamStore, useTUI)
}

func evaluate(ctx context.Context, cfg config.Config, teamStore *teams.Store, useTUI bool) error {
	if err := golurk.LoadDefaultData(); err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	entrants, err := arena.NewEntrants(cfg.Entrants, teamStore)
	if err != nil {
		return err
	}

	pairs := len(entrants) * (len(entrants) - 1) / 2
	total := pairs * cfg.Challenges

	log.Info().
		Int("entrants", len(entrants)).
		Int("challenges", cfg.Challenges).
		Int("battles", total).
		Uint64("seed", cfg.Seed).
		Msg("starting cross evaluation")

	startedAt := time.Now()
	crossEvaluate := func(ctx context.Context, progress func(arena.BattleRecord)) (*arena.Results, error) {
		return arena.CrossEvaluate(ctx, entrants, cfg.Challenges, arena.Options{
			Seed:     cfg.Seed,
			MaxTurns: cfg.MaxTurns,
			Progress: progress,
		})
	}

	var results *arena.Results
	if useTUI {
		// the progress view owns the terminal, so logs only go to the file while it runs
		logging.StopLogging()
		results, err = tui.Run(ctx, os.Stdout, os.Stdin, total, crossEvaluate)
		logging.ContinueLogging()
	} else {
		finished := 0
		results, err = crossEvaluate(ctx, func(record arena.BattleRecord) {
			finished++
			log.Debug().
				Str("p1", record.P1).
				Str("p2", record.P2).
				Str("winner", record.Winner).
				Int("turns", record.Turns).
				Msgf("battle %d/%d", finished, total)
		})
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("evaluation cancelled")
		}
		return err
	}

	log.Info().Dur("took", time.Since(startedAt)).Msg("cross evaluation finished")

	fmt.Println(results.Render())

	if cfg.Database == "" {
		return nil
	}

	resultStore, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer resultStore.Close()

	id, err := resultStore.RecordResults(ctx, store.Evaluation{StartedAt: startedAt, Seed: cfg.Seed}, results)
	if err != nil {
		return err
	}

	log.Info().Int64("evaluation_id", id).Str("database", cfg.Database).Msg("saved results")

	return nil
}
