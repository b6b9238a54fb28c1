// Package teams holds the rosters the arena plays with: the built-in constant teams and teams saved by name.
package teams

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

//go:embed builtin/*.txt
var builtinTeams embed.FS

var ErrNoSuchTeam = errors.New("no such team exists")

// The roster the main agent plays with
const COOPER = "cooper"

// Builtin returns the paste of a built-in team: cooper, team1, team2 or team3.
func Builtin(name string) (string, error) {
	contents, err := builtinTeams.ReadFile(path.Join("builtin", name+".txt"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: builtin %s", ErrNoSuchTeam, name)
		}
		return "", err
	}

	return string(contents), nil
}

// Names lists the built-in teams in sorted order.
func Names() []string {
	entries, err := builtinTeams.ReadDir("builtin")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	slices.Sort(names)

	return names
}

// Resolve turns a team reference into a paste. References are "builtin:<name>", "file:<path>"
// or the name of a team in the store. A bare built-in name also works when the store has no team by that name.
func Resolve(ref string, store *Store) (string, error) {
	kind, value, found := strings.Cut(ref, ":")
	if found {
		switch kind {
		case "builtin":
			return Builtin(value)
		case "file":
			contents, err := os.ReadFile(value)
			if err != nil {
				return "", fmt.Errorf("reading team file: %w", err)
			}
			return string(contents), nil
		}
	}

	if store != nil {
		paste, err := store.Load(ref)
		if err == nil {
			return paste, nil
		}

		if !errors.Is(err, ErrNoSuchTeam) {
			return "", err
		}
	}

	return Builtin(ref)
}
