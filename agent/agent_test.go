package agent

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/samber/lo"
)

func TestMain(m *testing.M) {
	if err := golurk.LoadDefaultData(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

func getPokemon(name string, moveNames ...string) golurk.Pokemon {
	pokemon := golurk.NewPokeBuilder(golurk.GlobalData.GetPokemonByName(name), testRng()).
		SetPerfectIvs().
		SetLevel(golurk.MAX_LEVEL).
		Build()

	var moves [4]golurk.Move
	for i, moveName := range moveNames {
		move := golurk.GlobalData.GetMove(moveName)
		if move == nil {
			panic("test move missing from data: " + moveName)
		}
		moves[i] = *move
	}
	pokemon.Moves = moves

	return pokemon
}

func newTestBattle(host []golurk.Pokemon, peer []golurk.Pokemon) (*Battle, *golurk.GameState) {
	gameState := golurk.NewState(host, peer, golurk.StateSeed(1, 2))
	return NewBattle(&gameState, golurk.HOST, testRng()), &gameState
}

func expectAttack(t *testing.T, action golurk.Action, moveIndex int) {
	t.Helper()

	attack, ok := action.(golurk.AttackAction)
	if !ok {
		t.Fatalf("expected an attack, got %T", action)
	}

	if attack.AttackerMove != moveIndex {
		t.Fatalf("expected move %d, got %d", moveIndex, attack.AttackerMove)
	}
}

func TestMoveScore(t *testing.T) {
	squirtle := getPokemon("squirtle")
	charmander := getPokemon("charmander")
	bulbasaur := getPokemon("bulbasaur")

	cases := []struct {
		move     string
		opponent golurk.Pokemon
		score    float64
	}{
		{"thunderbolt", squirtle, 180},
		{"tackle", squirtle, 40},
		// 80% accurate
		{"hydro-pump", charmander, 176},
		// never misses
		{"swift", charmander, 60},
		{"water-gun", bulbasaur, 20},
		{"earthquake", getPokemon("charizard"), 0},
		{"growl", squirtle, 0},
	}

	for _, c := range cases {
		score := MoveScore(*golurk.GlobalData.GetMove(c.move), c.opponent)
		if score != c.score {
			t.Fatalf("%s against %s: expected score %f, got %f", c.move, c.opponent.Name(), c.score, score)
		}
	}
}

func TestBattleView(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "thunderbolt")
	battle, gameState := newTestBattle([]golurk.Pokemon{pikachu, getPokemon("bulbasaur", "tackle")}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	if len(battle.AvailableMoves) != 2 || battle.AvailableMoves[1].Move.Name != "thunderbolt" {
		t.Fatalf("unexpected available moves: %+v", battle.AvailableMoves)
	}

	if len(battle.AvailableSwitches) != 1 || battle.AvailableSwitches[0] != 1 {
		t.Fatalf("unexpected available switches: %v", battle.AvailableSwitches)
	}

	if battle.ForceSwitch {
		t.Fatal("battle should not start with a force switch")
	}

	if battle.OpponentActive.Name() != "Squirtle" {
		t.Fatalf("expected squirtle as the opponent, got %s", battle.OpponentActive.Name())
	}

	battle.State().HostPlayer.GetActivePokemon().Hp.Value = 0
	if !gameState.HostPlayer.GetActivePokemon().Alive() {
		t.Fatal("changing the battle view changed the real game")
	}
}

func TestRandomOrderIsLegal(t *testing.T) {
	host := []golurk.Pokemon{
		getPokemon("pikachu", "tackle", "thunderbolt", "thunder-wave"),
		getPokemon("bulbasaur", "tackle"),
		getPokemon("charmander", "ember"),
	}
	battle, gameState := newTestBattle(host, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	for range 50 {
		action := battle.RandomOrder()
		if !golurk.IsLegal(gameState, action) {
			t.Fatalf("random order was illegal: %+v", action)
		}
	}
}

func TestRandomOrderStruggles(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	battle.AvailableMoves = nil

	expectAttack(t, battle.RandomOrder(), -1)
}

func TestRandomOrderOnForceSwitch(t *testing.T) {
	host := []golurk.Pokemon{getPokemon("pikachu", "tackle"), getPokemon("bulbasaur", "tackle")}
	gameState := golurk.NewState(host, []golurk.Pokemon{getPokemon("squirtle", "tackle")}, golurk.StateSeed(1, 2))
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 0

	battle := NewBattle(&gameState, golurk.HOST, testRng())
	if !battle.ForceSwitch {
		t.Fatal("expected a force switch")
	}

	switchAction, ok := battle.RandomOrder().(golurk.SwitchAction)
	if !ok || switchAction.SwitchIndex != 1 {
		t.Fatalf("expected a switch to 1, got %+v", battle.RandomOrder())
	}
}

func TestHitHardAttacks(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "thunderbolt")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu, getPokemon("bulbasaur", "tackle")}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	player := &HitHardOrSwitchPlayer{}
	expectAttack(t, player.ChooseMove(battle), 1)
}

func TestHitHardSwitchesWhenWeak(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle")
	host := []golurk.Pokemon{pikachu, getPokemon("bulbasaur", "tackle"), getPokemon("charmander", "ember")}
	battle, _ := newTestBattle(host, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	player := &HitHardOrSwitchPlayer{}

	for range 20 {
		switchAction, ok := player.ChooseMove(battle).(golurk.SwitchAction)
		if !ok {
			t.Fatal("expected a switch when no move clears the baseline")
		}

		if switchAction.SwitchIndex != 1 && switchAction.SwitchIndex != 2 {
			t.Fatalf("switched to an unavailable member: %d", switchAction.SwitchIndex)
		}
	}
}

func TestHitHardFallsBackToRandom(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	// tackle is the only legal order
	expectAttack(t, (&HitHardOrSwitchPlayer{}).ChooseMove(battle), 0)
}

func TestHitHardBaselineIsInclusive(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "thunderbolt")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu, getPokemon("bulbasaur", "tackle")}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	expectAttack(t, (&HitHardOrSwitchPlayer{Baseline: lo.ToPtr(180.0)}).ChooseMove(battle), 1)

	if _, ok := (&HitHardOrSwitchPlayer{Baseline: lo.ToPtr(181.0)}).ChooseMove(battle).(golurk.SwitchAction); !ok {
		t.Fatal("expected a switch with the baseline above the best score")
	}
}

func TestHitHardZeroBaselineAlwaysAttacks(t *testing.T) {
	pikachu := getPokemon("pikachu", "growl")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu, getPokemon("bulbasaur", "tackle")}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	player, err := New(KIND_HIT_HARD_OR_SWITCH, Options{Baseline: lo.ToPtr(0.0)})
	if err != nil {
		t.Fatal(err)
	}

	// growl scores 0, which still clears a baseline of 0
	expectAttack(t, player.ChooseMove(battle), 0)

	if _, ok := (&HitHardOrSwitchPlayer{}).ChooseMove(battle).(golurk.SwitchAction); !ok {
		t.Fatal("expected the default baseline to switch away from growl")
	}
}

func TestHitHardTieKeepsEarlierMove(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "water-gun")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu}, []golurk.Pokemon{getPokemon("pikachu", "tackle")})

	best, score, ok := BestMove(battle)
	if !ok || best.Index != 0 || score != 40 {
		t.Fatalf("expected tackle (0) scoring 40, got %d scoring %f", best.Index, score)
	}

	expectAttack(t, (&HitHardOrSwitchPlayer{Baseline: lo.ToPtr(40.0)}).ChooseMove(battle), 0)
}

func TestHitHardForceSwitch(t *testing.T) {
	host := []golurk.Pokemon{getPokemon("pikachu", "thunderbolt"), getPokemon("bulbasaur", "tackle")}
	gameState := golurk.NewState(host, []golurk.Pokemon{getPokemon("squirtle", "tackle")}, golurk.StateSeed(1, 2))
	gameState.HostPlayer.GetActivePokemon().Hp.Value = 0

	battle := NewBattle(&gameState, golurk.HOST, testRng())

	switchAction, ok := NewCooper().ChooseMove(battle).(golurk.SwitchAction)
	if !ok || switchAction.SwitchIndex != 1 {
		t.Fatal("expected cooper to switch in its only other member")
	}
}

func TestCooper(t *testing.T) {
	cooper := NewCooper()
	if cooper.Name() != "cooper" {
		t.Fatalf("expected cooper, got %s", cooper.Name())
	}

	// hydro-pump scores 88 against pikachu, above the baseline even after accuracy
	squirtle := getPokemon("squirtle", "tackle", "hydro-pump")
	battle, _ := newTestBattle([]golurk.Pokemon{squirtle, getPokemon("bulbasaur", "tackle")}, []golurk.Pokemon{getPokemon("pikachu", "tackle")})

	expectAttack(t, cooper.ChooseMove(battle), 1)
}

func TestMaxBasePower(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "hydro-pump", "thunderbolt")
	battle, _ := newTestBattle([]golurk.Pokemon{pikachu}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	expectAttack(t, (&MaxBasePowerPlayer{}).ChooseMove(battle), 1)
}

func TestSmartPlayerMatchesEngine(t *testing.T) {
	pikachu := getPokemon("pikachu", "tackle", "thunderbolt")
	battle, gameState := newTestBattle([]golurk.Pokemon{pikachu}, []golurk.Pokemon{getPokemon("squirtle", "tackle")})

	expected := golurk.BestAiAction(gameState, golurk.HOST).(golurk.AttackAction)
	expectAttack(t, (&SmartPlayer{}).ChooseMove(battle), expected.AttackerMove)
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		player, err := New(kind, Options{Username: "test " + kind})
		if err != nil {
			t.Fatalf("failed to make %s: %s", kind, err)
		}

		if player.Name() != "test "+kind {
			t.Fatalf("expected username to be passed through, got %s", player.Name())
		}
	}

	player, err := New(KIND_HIT_HARD_OR_SWITCH, Options{Baseline: lo.ToPtr(100.0)})
	if err != nil {
		t.Fatal(err)
	}

	if player.(*HitHardOrSwitchPlayer).baseline() != 100 {
		t.Fatal("baseline option was dropped")
	}

	if _, err := New("minimax", Options{}); !errors.Is(err, ErrUnknownAgent) {
		t.Fatalf("expected ErrUnknownAgent, got %v", err)
	}
}

func TestDefaultNames(t *testing.T) {
	if (&RandomPlayer{}).Name() != "RandomPlayer" {
		t.Fatal("random player default name")
	}

	if (&HitHardOrSwitchPlayer{}).baseline() != DEFAULT_BASELINE {
		t.Fatal("hit hard player default baseline")
	}
}
