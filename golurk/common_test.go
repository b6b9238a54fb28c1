package golurk

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	if err := LoadDefaultData(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

var testingRng = rand.New(rand.NewPCG(7, 11))

func getDummyPokemon() Pokemon {
	return NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testingRng).SetPerfectIvs().SetLevel(100).Build()
}

func getPokemon(name string) Pokemon {
	return NewPokeBuilder(GlobalData.GetPokemonByName(name), testingRng).SetPerfectIvs().SetLevel(100).Build()
}

func getDummyPokemonWithAbility(ability string) Pokemon {
	pkm := getDummyPokemon()
	pkm.Ability.Name = ability

	return pkm
}

func withMoves(pkm Pokemon, moveNames ...string) Pokemon {
	moves := make([]Move, 0, len(moveNames))
	for _, name := range moveNames {
		move := GlobalData.GetMove(name)
		if move == nil {
			panic("test move missing from data: " + name)
		}
		moves = append(moves, *move)
	}

	var slots [4]Move
	copy(slots[:], moves)
	pkm.Moves = slots

	return pkm
}

func getSimpleState(playerPkm Pokemon, enemyPkm Pokemon) GameState {
	return NewState([]Pokemon{playerPkm}, []Pokemon{enemyPkm}, StateSeed(1, 2))
}

// playTurn processes and applies a single turn, returning its result and messages.
func playTurn(gameState *GameState, actions ...Action) (TurnResult, []string) {
	result := ProcessTurn(gameState, actions)
	messages := ApplyEventsToState(gameState, result)

	return result, messages
}

func messageIndex(messages []string, message string) int {
	return slices.IndexFunc(messages, func(m string) bool {
		return strings.Contains(m, message)
	})
}

type lowSource struct{}

func (lowSource) Uint64() uint64 {
	return 0
}

type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

func checkDamageRange(t *testing.T, damage uint, low uint, high uint) {
	t.Helper()

	if damage < low || damage > high {
		t.Fatalf("outside damage range: should be between %d - %d, got %d", low, high, damage)
	}
}
