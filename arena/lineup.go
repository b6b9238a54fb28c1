package arena

import (
	"fmt"

	"github.com/nathanieltooley/pokearena/agent"
	"github.com/nathanieltooley/pokearena/teambuilder"
	"github.com/nathanieltooley/pokearena/teams"
)

const (
	DEFAULT_CHALLENGES     = 100
	DEFAULT_MAX_CONCURRENT = 10
	// Only recorded; battles always use the engine's own rules
	DEFAULT_FORMAT = "gen8nationaldexag"
)

// EntrantConfig describes an entrant in plain values, the way it is written in a config file.
type EntrantConfig struct {
	Kind     string  `yaml:"kind" toml:"kind" json:"kind"`
	Username string  `yaml:"username,omitempty" toml:"username,omitempty" json:"username,omitempty"`
	// Left out means the agent's default, so an explicit 0 is kept
	Baseline *float64 `yaml:"baseline,omitempty" toml:"baseline,omitempty" json:"baseline,omitempty"`
	// A team reference understood by teams.Resolve, or "random" for a fresh random team every battle
	Team                 string `yaml:"team" toml:"team" json:"team"`
	MaxConcurrentBattles int    `yaml:"max_concurrent_battles,omitempty" toml:"max_concurrent_battles,omitempty" json:"max_concurrent_battles,omitempty"`
}

const RANDOM_TEAM = "random"

// DefaultLineup is cooper on its own roster, then a random player and a hit-hard-or-switch player on each of
// the three opponent teams.
func DefaultLineup() []EntrantConfig {
	lineup := []EntrantConfig{
		{Kind: agent.KIND_COOPER, Team: "builtin:" + teams.COOPER, MaxConcurrentBattles: DEFAULT_MAX_CONCURRENT},
	}

	for _, team := range []string{"team1", "team2", "team3"} {
		lineup = append(lineup,
			EntrantConfig{Kind: agent.KIND_RANDOM, Team: "builtin:" + team, MaxConcurrentBattles: DEFAULT_MAX_CONCURRENT},
			EntrantConfig{Kind: agent.KIND_HIT_HARD_OR_SWITCH, Team: "builtin:" + team, MaxConcurrentBattles: DEFAULT_MAX_CONCURRENT},
		)
	}

	return lineup
}

// NewEntrant builds the player and team of an entrant. store may be nil when no saved teams are available.
func NewEntrant(config EntrantConfig, store *teams.Store) (Entrant, error) {
	player, err := agent.New(config.Kind, agent.Options{
		Username: config.Username,
		Baseline: config.Baseline,
	})
	if err != nil {
		return Entrant{}, err
	}

	var builder teambuilder.Teambuilder
	if config.Team == RANDOM_TEAM {
		builder = teambuilder.Random{}
	} else {
		paste, err := teams.Resolve(config.Team, store)
		if err != nil {
			return Entrant{}, fmt.Errorf("team for %s: %w", player.Name(), err)
		}

		constant, err := teambuilder.NewConstant(paste)
		if err != nil {
			return Entrant{}, fmt.Errorf("team %q for %s: %w", config.Team, player.Name(), err)
		}

		builder = constant
	}

	return Entrant{
		Player:               player,
		Team:                 builder,
		MaxConcurrentBattles: config.MaxConcurrentBattles,
	}, nil
}

// NewEntrants builds every entrant of a lineup, stopping at the first one that fails.
func NewEntrants(configs []EntrantConfig, store *teams.Store) ([]Entrant, error) {
	entrants := make([]Entrant, 0, len(configs))

	for i, config := range configs {
		entrant, err := NewEntrant(config, store)
		if err != nil {
			return nil, fmt.Errorf("entrant %d: %w", i+1, err)
		}

		entrants = append(entrants, entrant)
	}

	return entrants, nil
}
