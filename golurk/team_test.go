package golurk

import (
	"math/rand/v2"
	"testing"
)

func TestRandomTeam(t *testing.T) {
	team := RandomTeam(rand.New(rand.NewPCG(3, 4)))

	if len(team) != TEAM_SIZE {
		t.Fatalf("expected a team of %d, got %d", TEAM_SIZE, len(team))
	}

	for _, pokemon := range team {
		if pokemon.Level != MAX_LEVEL {
			t.Fatalf("%s should be level %d, got %d", pokemon.Name(), MAX_LEVEL, pokemon.Level)
		}

		if pokemon.GetCurrentEvTotal() > MAX_TOTAL_EV {
			t.Fatalf("%s has too many evs: %d", pokemon.Name(), pokemon.GetCurrentEvTotal())
		}

		if pokemon.Moves[0].IsNil() {
			t.Fatalf("%s has no moves", pokemon.Name())
		}
	}
}

func TestRandomTeamIsReproducible(t *testing.T) {
	first := RandomTeam(rand.New(rand.NewPCG(3, 4)))
	second := RandomTeam(rand.New(rand.NewPCG(3, 4)))

	for i := range first {
		if first[i].Name() != second[i].Name() || first[i].Item != second[i].Item {
			t.Fatalf("teams from the same seed differ at slot %d: %s vs %s", i, first[i].Name(), second[i].Name())
		}

		for j := range first[i].Moves {
			if first[i].Moves[j].Name != second[i].Moves[j].Name {
				t.Fatalf("%s's moves differ: %s vs %s", first[i].Name(), first[i].Moves[j].Name, second[i].Moves[j].Name)
			}
		}
	}
}
