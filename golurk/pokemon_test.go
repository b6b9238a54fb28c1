package golurk

import (
	"errors"
	"testing"
)

func TestStatCalculation(t *testing.T) {
	pokemon := getDummyPokemon()

	if pokemon.MaxHp != 231 {
		t.Fatalf("wrong max hp: expected 231, got %d", pokemon.MaxHp)
	}

	if pokemon.Attack.RawValue != 134 || pokemon.Def.RawValue != 134 {
		t.Fatalf("wrong attack or defense: expected 134, got %d and %d", pokemon.Attack.RawValue, pokemon.Def.RawValue)
	}
}

func TestNatureModifiers(t *testing.T) {
	pokemon := NewPokeBuilder(GlobalData.GetPokemonByPokedex(1), testingRng).
		SetPerfectIvs().
		SetLevel(100).
		SetNature(NATURE_ADAMANT).
		Build()

	if pokemon.Attack.RawValue != 147 {
		t.Fatalf("adamant should boost attack to 147, got %d", pokemon.Attack.RawValue)
	}

	if pokemon.SpAttack.RawValue != 149 {
		t.Fatalf("adamant should lower special attack to 149, got %d", pokemon.SpAttack.RawValue)
	}
}

func TestStatStages(t *testing.T) {
	pokemon := getDummyPokemon()

	pokemon.Attack.ChangeStat(2)
	if pokemon.Attack.CalcValue() != 268 {
		t.Fatalf("+2 attack should double the stat, got %d", pokemon.Attack.CalcValue())
	}

	pokemon.Attack.ChangeStat(10)
	if pokemon.Attack.Stage != MAX_STAGE {
		t.Fatalf("stages should be clamped to %d, got %d", MAX_STAGE, pokemon.Attack.Stage)
	}

	pokemon.Attack.ChangeStat(-20)
	if pokemon.Attack.Stage != MIN_STAGE {
		t.Fatalf("stages should be clamped to %d, got %d", MIN_STAGE, pokemon.Attack.Stage)
	}
}

func TestUsableMoves(t *testing.T) {
	pokemon := withMoves(getDummyPokemon(), "tackle", "vine-whip", "growl")
	pokemon.Init()

	usable := pokemon.UsableMoves()
	if len(usable) != 3 {
		t.Fatalf("expected 3 usable moves, got %v", usable)
	}

	pokemon.InGameMoveInfo[1].PP = 0
	usable = pokemon.UsableMoves()
	if len(usable) != 2 || usable[0] != 0 || usable[1] != 2 {
		t.Fatalf("move without PP should not be usable, got %v", usable)
	}

	pokemon.Item = ITEM_CHOICE_BAND
	pokemon.ChoiceLockedMove = 2
	usable = pokemon.UsableMoves()
	if len(usable) != 1 || usable[0] != 2 {
		t.Fatalf("choice locked pokemon should only use its locked move, got %v", usable)
	}

	// losing the item drops the lock
	pokemon.Item = ""
	if len(pokemon.UsableMoves()) != 2 {
		t.Fatalf("lock should not apply without a choice item, got %v", pokemon.UsableMoves())
	}
}

func TestCreateEVSpread(t *testing.T) {
	if _, err := CreateEVSpread(252, 252, 4, 0, 0, 0); err != nil {
		t.Fatalf("legal spread rejected: %s", err)
	}

	if _, err := CreateEVSpread(253, 0, 0, 0, 0, 0); err == nil {
		t.Fatal("expected an error for a stat over 252")
	}

	if _, err := CreateEVSpread(252, 252, 252, 0, 0, 0); err == nil {
		t.Fatal("expected an error for a total over 510")
	}

	if _, err := CreateIVSpread(31, 31, 31, 31, 31, 32); err == nil {
		t.Fatal("expected an error for an iv over 31")
	}
}

func TestStatIndex(t *testing.T) {
	index, err := StatIndex(STAT_SPEED)
	if err != nil || index != 5 {
		t.Fatalf("expected speed at index 5, got %d (%v)", index, err)
	}

	if _, err := StatIndex("luck"); !errors.Is(err, ErrNoStat) {
		t.Fatalf("expected ErrNoStat, got %v", err)
	}
}

func TestHighestStat(t *testing.T) {
	pikachu := getPokemon("pikachu")
	if stat := pikachu.HighestStat(); stat != STAT_SPEED {
		t.Fatalf("pikachu's highest stat should be speed, got %s", stat)
	}
}

func TestDamageAndHeal(t *testing.T) {
	pokemon := getDummyPokemon()

	pokemon.Damage(1000)
	if pokemon.Alive() || pokemon.Hp.Value != 0 {
		t.Fatalf("overkill damage should leave 0 hp, got %d", pokemon.Hp.Value)
	}

	pokemon.Heal(1000)
	if pokemon.Hp.Value != pokemon.MaxHp {
		t.Fatalf("healing should be capped at max hp, got %d", pokemon.Hp.Value)
	}
}

func TestTypes(t *testing.T) {
	pokemon := getDummyPokemon()

	if !pokemon.HasType(&TYPE_GRASS) || !pokemon.HasType(&TYPE_POISON) {
		t.Fatal("bulbasaur should be grass/poison")
	}

	pokemon.BattleType = &TYPE_WATER
	if pokemon.HasType(&TYPE_GRASS) || !pokemon.HasType(&TYPE_WATER) {
		t.Fatal("battle type should replace the pokemon's types")
	}
}

func TestTypeMultiplier(t *testing.T) {
	cases := []struct {
		attack   string
		defense  []*PokemonType
		expected float64
	}{
		{TYPENAME_FIRE, []*PokemonType{&TYPE_GRASS}, 2},
		{TYPENAME_WATER, []*PokemonType{&TYPE_GRASS, &TYPE_POISON}, 0.5},
		{TYPENAME_ELECTRIC, []*PokemonType{&TYPE_GROUND}, 0},
		{TYPENAME_ICE, []*PokemonType{&TYPE_GROUND, &TYPE_FLYING}, 4},
		{TYPENAME_NORMAL, []*PokemonType{&TYPE_GHOST}, 0},
		{TYPENAME_FIRE, []*PokemonType{&TYPE_GRASS, nil}, 2},
	}

	for _, c := range cases {
		if got := TypeMultiplier(c.attack, c.defense...); got != c.expected {
			t.Fatalf("%s against %v: expected %f, got %f", c.attack, c.defense, c.expected, got)
		}
	}
}
