package teambuilder

import (
	"fmt"
	"math/rand/v2"

	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/samber/lo"
)

// Teambuilder hands out a fresh team for every battle.
type Teambuilder interface {
	YieldTeam(rng *rand.Rand) ([]golurk.Pokemon, error)
}

// Constant always yields the same team. The paste is parsed once; every battle gets its own copy.
type Constant struct {
	sets []Set
}

// NewConstant parses the paste and checks every set resolves against the loaded data.
func NewConstant(paste string) (*Constant, error) {
	sets, err := ParseShowdownTeam(paste)
	if err != nil {
		return nil, err
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("team has no pokemon")
	}

	if len(sets) > golurk.TEAM_SIZE {
		return nil, fmt.Errorf("team has %d pokemon, at most %d are allowed", len(sets), golurk.TEAM_SIZE)
	}

	constant := &Constant{sets: sets}
	if _, err := constant.YieldTeam(nil); err != nil {
		return nil, err
	}

	return constant, nil
}

func (c *Constant) Sets() []Set {
	return c.sets
}

func (c *Constant) YieldTeam(rng *rand.Rand) ([]golurk.Pokemon, error) {
	team := make([]golurk.Pokemon, 0, len(c.sets))

	for _, set := range c.sets {
		pokemon, err := set.Build(rng)
		if err != nil {
			return nil, err
		}

		team = append(team, pokemon)
	}

	return team, nil
}

// Random yields a new random team every battle.
type Random struct{}

func (Random) YieldTeam(rng *rand.Rand) ([]golurk.Pokemon, error) {
	if rng == nil {
		return nil, fmt.Errorf("random teams need an rng")
	}

	return golurk.RandomTeam(rng), nil
}

// RandomPaste rolls one random team and writes it out as a paste, so it can be saved and played again as a constant team.
func RandomPaste(rng *rand.Rand) (string, error) {
	team, err := Random{}.YieldTeam(rng)
	if err != nil {
		return "", err
	}

	return FormatShowdownTeam(lo.Map(team, func(pokemon golurk.Pokemon, _ int) Set {
		return FromPokemon(pokemon)
	})), nil
}
