package golurk

import (
	"math/rand/v2"
)

const TEAM_SIZE = 6

// RandomTeam builds a full team of random level 100 pokemon with random natures, spreads, abilities, items and moves.
// Species may repeat.
func RandomTeam(rng *rand.Rand) []Pokemon {
	team := make([]Pokemon, 0, TEAM_SIZE)

	for range TEAM_SIZE {
		base := GlobalData.GetRandomPokemon(rng)

		poke := NewPokeBuilder(base, rng).
			SetLevel(MAX_LEVEL).
			SetRandomIvs().
			SetRandomEvs().
			SetRandomNature().
			SetRandomMoves(GlobalData.GetFullMovesForPokemon(base.Name)).
			SetRandomAbility(GlobalData.GetPokemonAbilities(base.Name)).
			SetRandomItem(GlobalData.Items).
			Build()

		team = append(team, poke)
	}

	return team
}
