package golurk

import (
	"math"
	"slices"
	"testing"
)

func TestSandstormChip(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	gameState.Weather = WEATHER_SANDSTORM

	playTurn(&gameState)

	pokemon := *gameState.HostPlayer.GetActivePokemon()
	damage := float64(pokemon.MaxHp) * (1.0 / 16.0)
	expectedHp := pokemon.MaxHp - uint(math.Ceil(damage))

	if pokemon.Hp.Value != expectedHp {
		t.Fatalf("pokemon hp did not match expected value. pokemon hp: %d/%d | expected: %d/%d", pokemon.Hp.Value, pokemon.MaxHp, expectedHp, pokemon.MaxHp)
	}
}

func TestSandstormTypeImmunity(t *testing.T) {
	gameState := getSimpleState(getPokemon("geodude"), getDummyPokemon())
	gameState.Weather = WEATHER_SANDSTORM

	playTurn(&gameState)

	pokemon := gameState.HostPlayer.GetActivePokemon()
	if pokemon.Hp.Value != pokemon.MaxHp {
		t.Fatalf("rock type took sandstorm chip: %d/%d", pokemon.Hp.Value, pokemon.MaxHp)
	}
}

func TestBattleTypes(t *testing.T) {
	enemyPokemon := withMoves(getDummyPokemon(), "earthquake")

	gameState := getSimpleState(getDummyPokemon(), enemyPokemon)
	gameState.HostPlayer.GetActivePokemon().BattleType = &TYPE_FLYING

	playTurn(&gameState, NewAttackAction(PEER, 0))

	pokemon := *gameState.HostPlayer.GetActivePokemon()
	if pokemon.Hp.Value != pokemon.MaxHp {
		t.Fatalf("pokemon with battle type flying took damage from ground attack")
	}
}

func TestForceSwitch(t *testing.T) {
	playerPokemonTeam := []Pokemon{getDummyPokemon(), getDummyPokemon(), getDummyPokemon()}
	enemyPokemon := withMoves(getDummyPokemon(), "roar")

	gameState := NewState(playerPokemonTeam, []Pokemon{enemyPokemon}, StateSeed(3, 4))

	playTurn(&gameState, NewAttackAction(PEER, 0))

	if gameState.HostPlayer.ActivePokeIndex == 0 {
		t.Fatalf("Pokemon not switched out")
	}
}

func TestFaintForcesSwitch(t *testing.T) {
	enemyPokemon := withMoves(getDummyPokemon(), "tackle")
	gameState := NewState([]Pokemon{getDummyPokemon(), getDummyPokemon()}, []Pokemon{enemyPokemon}, StateSeed(1, 2))
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 1

	result, _ := playTurn(&gameState, NewAttackAction(PEER, 0))

	if result.Kind != RESULT_FORCESWITCH {
		t.Fatalf("expected a force switch, got result kind %d", result.Kind)
	}

	if !slices.Equal(result.ForceSwitch, []int{HOST}) {
		t.Fatalf("expected only the host to switch, got %v", result.ForceSwitch)
	}

	if !gameState.HostPlayer.ActiveKOed {
		t.Fatal("host should be marked as waiting on a switch")
	}

	if IsLegal(&gameState, NewAttackAction(HOST, 0)) {
		t.Fatal("attacking should be illegal while a switch is forced")
	}

	turn := gameState.Turn
	result, _ = playTurn(&gameState, NewSwitchAction(&gameState, HOST, 1))

	if result.Kind != RESULT_RESOLVED {
		t.Fatalf("switching in a replacement should resolve, got %d", result.Kind)
	}

	if gameState.HostPlayer.ActivePokeIndex != 1 || gameState.HostPlayer.ActiveKOed {
		t.Fatalf("replacement did not come in: index %d, koed %t", gameState.HostPlayer.ActivePokeIndex, gameState.HostPlayer.ActiveKOed)
	}

	if gameState.Turn != turn+1 {
		t.Fatalf("turn should advance after the forced switch: %d -> %d", turn, gameState.Turn)
	}
}

func TestGameOver(t *testing.T) {
	enemyPokemon := withMoves(getDummyPokemon(), "tackle")
	gameState := getSimpleState(getDummyPokemon(), enemyPokemon)
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 1

	result, _ := playTurn(&gameState, NewAttackAction(PEER, 0))

	if result.Kind != RESULT_GAMEOVER || result.Loser != HOST {
		t.Fatalf("expected the host to lose, got kind %d loser %d", result.Kind, result.Loser)
	}
}

func TestDoubleKnockOutIsATie(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "explosion")
	gameState := getSimpleState(pokemon, getDummyPokemon())
	gameState.ClientPlayer.GetActivePokemon().Hp.Value = 1

	result, _ := playTurn(&gameState, NewAttackAction(HOST, 0))

	if result.Kind != RESULT_GAMEOVER || result.Loser != 0 {
		t.Fatalf("expected a tie, got kind %d loser %d", result.Kind, result.Loser)
	}
}

func TestPriorityBeatsSpeed(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "quick-attack")
	enemyPokemon := withMoves(getPokemon("pikachu"), "tackle")

	gameState := getSimpleState(pokemon, enemyPokemon)
	_, messages := playTurn(&gameState, NewAttackAction(PEER, 0), NewAttackAction(HOST, 0))

	quick := messageIndex(messages, "Bulbasaur used quick-attack")
	tackle := messageIndex(messages, "Pikachu used tackle")

	if quick == -1 || tackle == -1 || quick > tackle {
		t.Fatalf("quick-attack should go before the faster pokemon's tackle: %v", messages)
	}
}

func TestFasterPokemonMovesFirst(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "tackle")
	enemyPokemon := withMoves(getPokemon("pikachu"), "tackle")

	gameState := getSimpleState(pokemon, enemyPokemon)
	_, messages := playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	slow := messageIndex(messages, "Bulbasaur used tackle")
	fast := messageIndex(messages, "Pikachu used tackle")

	if slow == -1 || fast == -1 || fast > slow {
		t.Fatalf("pikachu should move before bulbasaur: %v", messages)
	}
}

func TestSwitchesGoFirst(t *testing.T) {
	enemyPokemon := withMoves(getPokemon("pikachu"), "quick-attack")
	gameState := NewState([]Pokemon{getDummyPokemon(), getPokemon("squirtle")}, []Pokemon{enemyPokemon}, StateSeed(1, 2))
	gameState.Turn = 1

	_, messages := playTurn(&gameState, NewAttackAction(PEER, 0), NewSwitchAction(&gameState, HOST, 1))

	switched := messageIndex(messages, "switched to Squirtle")
	attacked := messageIndex(messages, "Pikachu used quick-attack")

	if switched == -1 || attacked == -1 || switched > attacked {
		t.Fatalf("switch should happen before any move: %v", messages)
	}

	if squirtle := gameState.HostPlayer.GetActivePokemon(); squirtle.Hp.Value == squirtle.MaxHp {
		t.Fatal("the pokemon that switched in should take the hit")
	}
}

func TestPPIsDeducted(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "tackle")
	gameState := getSimpleState(pokemon, getDummyPokemon())

	playTurn(&gameState, NewAttackAction(HOST, 0))

	pp := gameState.HostPlayer.GetActivePokemon().InGameMoveInfo[0].PP
	if pp != 34 {
		t.Fatalf("expected 34 pp left, got %d", pp)
	}

	gameState.ClientPlayer.GetActivePokemon().Ability.Name = "pressure"
	playTurn(&gameState, NewAttackAction(HOST, 0))

	pp = gameState.HostPlayer.GetActivePokemon().InGameMoveInfo[0].PP
	if pp != 32 {
		t.Fatalf("pressure should cost an extra pp: expected 32, got %d", pp)
	}
}

func TestStruggle(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "tackle")
	gameState := getSimpleState(pokemon, getDummyPokemon())

	active := gameState.HostPlayer.GetActivePokemon()
	active.InGameMoveInfo[0].PP = 0

	if !gameState.HostPlayer.MustStruggle() {
		t.Fatal("pokemon with no pp should have to struggle")
	}

	if !IsLegal(&gameState, NewAttackAction(HOST, -1)) || IsLegal(&gameState, NewAttackAction(HOST, 0)) {
		t.Fatal("only struggle should be legal")
	}

	playTurn(&gameState, NewAttackAction(HOST, -1))

	// a quarter of max hp, rounded
	if active.Hp.Value != 173 {
		t.Fatalf("struggle recoil should leave 173 hp, got %d", active.Hp.Value)
	}
}

func TestChoiceLock(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "tackle", "vine-whip")
	pokemon.Item = ITEM_CHOICE_BAND

	gameState := getSimpleState(pokemon, getDummyPokemon())
	playTurn(&gameState, NewAttackAction(HOST, 1))

	if moves := gameState.HostPlayer.AvailableMoves(); !slices.Equal(moves, []int{1}) {
		t.Fatalf("choice band should lock into vine-whip, available: %v", moves)
	}

	if IsLegal(&gameState, NewAttackAction(HOST, 0)) {
		t.Fatal("other moves should be illegal while choice locked")
	}
}

func TestProtect(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "protect")
	enemyPokemon := withMoves(getPokemon("pikachu"), "tackle")

	gameState := getSimpleState(pokemon, enemyPokemon)
	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	protected := gameState.HostPlayer.GetActivePokemon()
	if protected.Hp.Value != protected.MaxHp {
		t.Fatalf("protected pokemon took damage: %d/%d", protected.Hp.Value, protected.MaxHp)
	}

	if protected.ProtectCount != 1 {
		t.Fatalf("protect count should be 1, got %d", protected.ProtectCount)
	}
}

func TestSubstitute(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "substitute")
	enemyPokemon := withMoves(getPokemon("squirtle"), "tackle")

	gameState := getSimpleState(pokemon, enemyPokemon)
	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	subbed := gameState.HostPlayer.GetActivePokemon()
	if subbed.Hp.Value != subbed.MaxHp-subbed.MaxHp/4 {
		t.Fatalf("only the substitute's cost should come off hp: %d/%d", subbed.Hp.Value, subbed.MaxHp)
	}

	if subbed.SubstituteHp == 0 || subbed.SubstituteHp >= subbed.MaxHp/4 {
		t.Fatalf("substitute should have taken the tackle, sub hp: %d", subbed.SubstituteHp)
	}
}

func TestStealthRock(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "stealth-rock")
	gameState := NewState([]Pokemon{pokemon}, []Pokemon{getDummyPokemon(), getPokemon("charizard")}, StateSeed(1, 2))

	playTurn(&gameState, NewAttackAction(HOST, 0))

	if !gameState.ClientPlayer.Hazards.StealthRock {
		t.Fatal("stealth rock was not set")
	}

	playTurn(&gameState, NewSwitchAction(&gameState, PEER, 1))

	charizard := gameState.ClientPlayer.GetActivePokemon()
	if expected := charizard.MaxHp - charizard.MaxHp/2; charizard.Hp.Value != expected {
		t.Fatalf("charizard should lose half its hp to stealth rock: %d, expected %d", charizard.Hp.Value, expected)
	}
}

func TestHeavyDutyBoots(t *testing.T) {
	charizard := getPokemon("charizard")
	charizard.Item = ITEM_HEAVY_DUTY_BOOTS

	gameState := NewState([]Pokemon{getDummyPokemon()}, []Pokemon{getDummyPokemon(), charizard}, StateSeed(1, 2))
	gameState.ClientPlayer.Hazards.StealthRock = true

	playTurn(&gameState, NewSwitchAction(&gameState, PEER, 1))

	active := gameState.ClientPlayer.GetActivePokemon()
	if active.Hp.Value != active.MaxHp {
		t.Fatalf("boots holder took hazard damage: %d/%d", active.Hp.Value, active.MaxHp)
	}
}

func TestRapidSpinClearsHazards(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "rapid-spin")
	gameState := getSimpleState(pokemon, getDummyPokemon())
	gameState.HostPlayer.Hazards.StealthRock = true

	playTurn(&gameState, NewAttackAction(HOST, 0))

	if gameState.HostPlayer.Hazards.Any() {
		t.Fatal("rapid spin did not clear hazards")
	}
}

func TestDefogClearsBothSides(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "defog")
	gameState := getSimpleState(pokemon, getDummyPokemon())
	gameState.HostPlayer.Hazards.StealthRock = true
	gameState.ClientPlayer.Hazards.StickyWeb = true

	playTurn(&gameState, NewAttackAction(HOST, 0))

	if gameState.HostPlayer.Hazards.Any() || gameState.ClientPlayer.Hazards.Any() {
		t.Fatal("defog did not clear hazards")
	}
}

func TestWish(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "wish")
	gameState := getSimpleState(pokemon, getDummyPokemon())

	active := gameState.HostPlayer.GetActivePokemon()
	active.Hp.Value = 100

	playTurn(&gameState, NewAttackAction(HOST, 0))
	if active.Hp.Value != 100 {
		t.Fatalf("wish healed too early: %d", active.Hp.Value)
	}

	playTurn(&gameState)
	if expected := 100 + active.MaxHp/2; active.Hp.Value != expected {
		t.Fatalf("wish should heal half of max hp: %d, expected %d", active.Hp.Value, expected)
	}
}

func TestSuckerPunch(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "sucker-punch")

	gameState := getSimpleState(pokemon, withMoves(getPokemon("pikachu"), "growl", "tackle"))
	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	target := gameState.ClientPlayer.GetActivePokemon()
	if target.Hp.Value != target.MaxHp {
		t.Fatal("sucker-punch should fail against a status move")
	}

	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 1))

	if target.Hp.Value == target.MaxHp {
		t.Fatal("sucker-punch should hit a pokemon about to attack")
	}
}

func TestFakeOutOnlyWorksFirstTurn(t *testing.T) {
	pokemon := withMoves(getPokemon("pikachu"), "fake-out")
	enemyPokemon := withMoves(getDummyPokemon(), "tackle")

	gameState := getSimpleState(pokemon, enemyPokemon)
	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	host := gameState.HostPlayer.GetActivePokemon()
	if host.Hp.Value != host.MaxHp {
		t.Fatal("fake-out should make the target flinch")
	}

	enemyHp := gameState.ClientPlayer.GetActivePokemon().Hp.Value
	playTurn(&gameState, NewAttackAction(HOST, 0), NewAttackAction(PEER, 0))

	if gameState.ClientPlayer.GetActivePokemon().Hp.Value != enemyHp {
		t.Fatal("fake-out should fail after the first turn out")
	}

	if host.Hp.Value == host.MaxHp {
		t.Fatal("enemy should get to attack on the second turn")
	}
}

func TestBurnChip(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	active := gameState.HostPlayer.GetActivePokemon()
	active.Status = STATUS_BURN

	playTurn(&gameState)

	if expected := active.MaxHp - active.MaxHp/16; active.Hp.Value != expected {
		t.Fatalf("burn should take 1/16 of max hp: %d, expected %d", active.Hp.Value, expected)
	}
}

func TestToxicEscalates(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	active := gameState.HostPlayer.GetActivePokemon()
	active.Status = STATUS_TOXIC
	active.ToxicCount = 1

	playTurn(&gameState)
	playTurn(&gameState)

	tick := active.MaxHp / 16
	if expected := active.MaxHp - tick - 2*tick; active.Hp.Value != expected {
		t.Fatalf("toxic should do 1/16 then 2/16: %d, expected %d", active.Hp.Value, expected)
	}
}

func TestSleepingPokemonCannotMove(t *testing.T) {
	enemyPokemon := withMoves(getDummyPokemon(), "tackle")
	gameState := getSimpleState(getDummyPokemon(), enemyPokemon)

	sleeper := gameState.ClientPlayer.GetActivePokemon()
	sleeper.Status = STATUS_SLEEP
	sleeper.SleepCount = 2

	playTurn(&gameState, NewAttackAction(PEER, 0))

	host := gameState.HostPlayer.GetActivePokemon()
	if host.Hp.Value != host.MaxHp {
		t.Fatal("sleeping pokemon attacked")
	}

	if sleeper.SleepCount != 1 {
		t.Fatalf("sleep counter should tick down, got %d", sleeper.SleepCount)
	}
}

func TestWeatherExpires(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	ApplyEventsToState(&gameState, TurnResult{Kind: RESULT_RESOLVED, Events: []StateEvent{WeatherEvent{NewWeather: WEATHER_RAIN}}})

	for range WEATHER_DURATION - 1 {
		playTurn(&gameState)
	}

	if gameState.Weather != WEATHER_RAIN {
		t.Fatalf("rain ended early, weather %d", gameState.Weather)
	}

	playTurn(&gameState)

	if gameState.Weather != WEATHER_NONE {
		t.Fatalf("rain should have ended, weather %d", gameState.Weather)
	}
}

func TestApplyEventsRecordsMessages(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())

	messages := ApplyEventsToState(&gameState, TurnResult{Events: []StateEvent{NewMessageEvent("one"), NewFmtMessageEvent("%s", "two")}})

	if !slices.Equal(messages, []string{"one", "two"}) || !slices.Equal(gameState.MessageHistory, messages) {
		t.Fatalf("messages not recorded in order: %v / %v", messages, gameState.MessageHistory)
	}
}

func TestClonedStateReplaysRolls(t *testing.T) {
	gameState := getSimpleState(getDummyPokemon(), getDummyPokemon())
	clone := gameState.Clone()

	if gameState.CreateRng().Uint64() != clone.CreateRng().Uint64() {
		t.Fatal("clone should roll the same numbers as the original")
	}

	clone.HostPlayer.GetActivePokemon().Hp.Value = 1
	if gameState.HostPlayer.GetActivePokemon().Hp.Value == 1 {
		t.Fatal("clone shares its team with the original")
	}
}
