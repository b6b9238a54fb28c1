package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathanieltooley/pokearena/internal/config"
	"github.com/nathanieltooley/pokearena/store"
)

const resultsUsage = "usage: arena results list | show <id>"

func resultsCommand(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New(resultsUsage)
	}

	if cfg.Database == "" {
		return fmt.Errorf("no database configured, set one with -db or %s", config.ENV_DB)
	}

	resultStore, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer resultStore.Close()

	switch args[0] {
	case "list":
		evaluations, err := resultStore.ListEvaluations(ctx)
		if err != nil {
			return err
		}

		for _, evaluation := range evaluations {
			fmt.Printf("%d\t%s\tseed %d\t%d challenges\t%s\n",
				evaluation.ID,
				evaluation.StartedAt.Local().Format(time.DateTime),
				evaluation.Seed,
				evaluation.NChallenges,
				strings.Join(evaluation.Players, ", "))
		}

		return nil
	case "show":
		if len(args) != 2 {
			return errors.New(resultsUsage)
		}

		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("evaluation id %q: %w", args[1], err)
		}

		results, err := resultStore.LoadResults(ctx, id)
		if err != nil {
			return err
		}

		fmt.Println(results.Render())
		return nil
	}

	return errors.New(resultsUsage)
}
