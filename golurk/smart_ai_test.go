package golurk

import (
	"testing"
)

func TestAiSwitchesOnFaint(t *testing.T) {
	gameState := NewState([]Pokemon{getDummyPokemon(), getDummyPokemon()}, []Pokemon{getDummyPokemon()}, StateSeed(1, 2))
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 0

	action := BestAiAction(&gameState, HOST)

	switchAction, ok := action.(SwitchAction)
	if !ok {
		t.Fatalf("expected the ai to switch, got %T", action)
	}

	if switchAction.SwitchIndex != 1 {
		t.Fatalf("expected switch to index 1, got %d", switchAction.SwitchIndex)
	}
}

func TestAiSkipsWithNothingLeft(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 0

	if _, ok := BestAiAction(&gameState, HOST).(SkipAction); !ok {
		t.Fatal("expected the ai to skip when it has nothing to switch to")
	}
}

func TestAiPicksStrongestMove(t *testing.T) {
	pikachu := withMoves(getPokemon("pikachu"), "tackle", "thunderbolt")

	gameState := getSimpleState(pikachu, getPokemon("squirtle"))

	action, ok := BestAiAction(&gameState, HOST).(AttackAction)
	if !ok {
		t.Fatal("expected the ai to attack")
	}

	if action.AttackerMove != 1 {
		t.Fatalf("expected thunderbolt (1), got %d", action.AttackerMove)
	}
}

func TestAiSlowsFasterOpponent(t *testing.T) {
	bulbasaur := withMoves(getDummyPokemon(), "tackle", "thunder-wave", "scary-face")

	gameState := getSimpleState(bulbasaur, getPokemon("charmander"))

	action, ok := BestAiAction(&gameState, HOST).(AttackAction)
	if !ok {
		t.Fatal("expected the ai to attack")
	}

	// scary-face always lands, thunder-wave only 90% of the time
	if action.AttackerMove != 2 {
		t.Fatalf("expected scary-face (2), got %d", action.AttackerMove)
	}
}

func TestAiDoesNotParalyzeImmuneTargets(t *testing.T) {
	bulbasaur := withMoves(getDummyPokemon(), "tackle", "thunder-wave")

	gameState := getSimpleState(bulbasaur, getPokemon("pikachu"))

	action := BestAiAction(&gameState, HOST).(AttackAction)
	if action.AttackerMove != 0 {
		t.Fatalf("thunder-wave can't paralyze an electric type, expected tackle (0) got %d", action.AttackerMove)
	}
}

func TestAiStrugglesWithoutPP(t *testing.T) {
	bulbasaur := withMoves(getDummyPokemon(), "tackle", "vine-whip")

	gameState := getSimpleState(bulbasaur, getDummyPokemon())
	active := gameState.HostPlayer.GetActivePokemon()
	for i := range active.InGameMoveInfo {
		active.InGameMoveInfo[i].PP = 0
	}

	action := BestAiAction(&gameState, HOST).(AttackAction)
	if action.AttackerMove != -1 {
		t.Fatalf("expected struggle (-1), got %d", action.AttackerMove)
	}

	if !IsLegal(&gameState, action) {
		t.Fatal("struggle should be legal when no move has PP")
	}
}

func TestAiDoesNotAdvanceRng(t *testing.T) {
	bulbasaur := withMoves(getDummyPokemon(), "tackle", "vine-whip")

	gameState := getSimpleState(bulbasaur, getPokemon("squirtle"))
	before := gameState.RngSource

	BestAiAction(&gameState, HOST)

	if before != gameState.RngSource {
		t.Fatal("choosing an action should not consume the battle's rng")
	}
}
