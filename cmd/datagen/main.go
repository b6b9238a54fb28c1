// Command datagen refreshes the engine's data files from pokeapi.
//
//	datagen [-data dir] [-api url] moves|abilities|items
//
// moves and abilities are fetched for every pokemon in the existing movesMap.json.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/nathanieltooley/pokearena/internal/config"
	"github.com/nathanieltooley/pokearena/internal/logging"
	"github.com/nathanieltooley/pokearena/internal/pokeapi"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	dataDir := flag.String("data", "golurk/data", "directory holding the engine's data files")
	apiURL := flag.String("api", pokeapi.DEFAULT_BASE_URL, "pokeapi base url")
	concurrency := flag.Int("concurrency", 4, "requests kept in flight")
	itemAttribute := flag.Int("item-attribute", pokeapi.HOLDABLE_ACTIVE_ATTRIBUTE, "pokeapi item attribute items are taken from")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	flag.Parse()

	if err := logging.Init(config.LogConfig{Level: *logLevel}, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "datagen:", err)
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		log.Fatal().Msg("usage: datagen [flags] moves|abilities|items")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := pokeapi.NewClient(*apiURL)
	client.Concurrency = *concurrency

	var err error
	switch flag.Arg(0) {
	case "moves":
		err = moveMain(ctx, client, *dataDir)
	case "abilities":
		err = abilityMain(ctx, client, *dataDir)
	case "items":
		err = itemMain(ctx, client, *dataDir, *itemAttribute)
	default:
		err = fmt.Errorf("unknown data set %q", flag.Arg(0))
	}

	if err != nil {
		stop()
		log.Fatal().Err(err).Msg("datagen failed")
	}
}

func readMoveMap(dataDir string) (map[string][]string, error) {
	contents, err := os.ReadFile(filepath.Join(dataDir, "movesMap.json"))
	if err != nil {
		return nil, err
	}

	moveMap := make(map[string][]string)
	if err := json.Unmarshal(contents, &moveMap); err != nil {
		return nil, fmt.Errorf("movesMap.json: %w", err)
	}

	if len(moveMap) == 0 {
		return nil, errors.New("movesMap.json lists no pokemon")
	}

	return moveMap, nil
}

func writeJSON(path string, value any) error {
	contents, err := json.MarshalIndent(value, "", " ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append(contents, '\n'), 0644); err != nil {
		return err
	}

	log.Info().Str("file", path).Msg("wrote data file")
	return nil
}

func moveMain(ctx context.Context, client *pokeapi.Client, dataDir string) error {
	moveMap, err := readMoveMap(dataDir)
	if err != nil {
		return err
	}

	names := lo.Uniq(lo.Flatten(lo.Values(moveMap)))
	log.Info().Int("moves", len(names)).Msg("fetching moves")

	moves, err := client.Moves(ctx, names)
	if err != nil {
		return err
	}

	return writeJSON(filepath.Join(dataDir, "moves.json"), moves)
}

func abilityMain(ctx context.Context, client *pokeapi.Client, dataDir string) error {
	moveMap, err := readMoveMap(dataDir)
	if err != nil {
		return err
	}

	pokemon := lo.Keys(moveMap)
	slices.Sort(pokemon)
	log.Info().Int("pokemon", len(pokemon)).Msg("fetching abilities")

	abilityMap, err := client.AbilityMap(ctx, pokemon)
	if err != nil {
		return err
	}

	return writeJSON(filepath.Join(dataDir, "abilities.json"), abilityMap)
}

func itemMain(ctx context.Context, client *pokeapi.Client, dataDir string, attribute int) error {
	items, err := client.Items(ctx, attribute)
	if err != nil {
		return err
	}

	return writeJSON(filepath.Join(dataDir, "items.json"), items)
}
