package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/nathanieltooley/pokearena/teambuilder"
	"github.com/nathanieltooley/pokearena/teams"
)

const teamsUsage = "usage: arena teams list | show <ref> | save <name> <paste file> | save-random <name> | delete <name>"

func teamsCommand(store *teams.Store, args []string) error {
	if len(args) == 0 {
		return errors.New(teamsUsage)
	}

	switch args[0] {
	case "list":
		saved, err := store.List()
		if err != nil {
			return err
		}

		for _, name := range teams.Names() {
			fmt.Printf("builtin:%s\n", name)
		}
		for _, name := range saved {
			fmt.Println(name)
		}

		return nil
	case "show":
		if len(args) != 2 {
			return errors.New(teamsUsage)
		}

		paste, err := teams.Resolve(args[1], store)
		if err != nil {
			return err
		}

		sets, err := teambuilder.ParseShowdownTeam(paste)
		if err != nil {
			return err
		}

		fmt.Print(teambuilder.FormatShowdownTeam(sets))
		return nil
	case "save":
		if len(args) != 3 {
			return errors.New(teamsUsage)
		}

		contents, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}

		// only teams the engine can build are worth saving
		if err := golurk.LoadDefaultData(); err != nil {
			return fmt.Errorf("loading game data: %w", err)
		}
		constant, err := teambuilder.NewConstant(string(contents))
		if err != nil {
			return fmt.Errorf("team %s: %w", args[1], err)
		}

		return store.Save(args[1], teambuilder.FormatShowdownTeam(constant.Sets()))
	case "save-random":
		if len(args) != 2 {
			return errors.New(teamsUsage)
		}

		if err := golurk.LoadDefaultData(); err != nil {
			return fmt.Errorf("loading game data: %w", err)
		}

		paste, err := teambuilder.RandomPaste(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		if err != nil {
			return err
		}

		if err := store.Save(args[1], paste); err != nil {
			return err
		}

		fmt.Print(paste)
		return nil
	case "delete":
		if len(args) != 2 {
			return errors.New(teamsUsage)
		}

		return store.Delete(args[1])
	}

	return errors.New(teamsUsage)
}
