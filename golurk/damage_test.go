package golurk

import (
	"math/rand/v2"
	"testing"
)

const iterCount = 1000

func TestDamage(t *testing.T) {
	for range iterCount {
		pokemon := getDummyPokemon()
		enemyPokemon := getDummyPokemon()

		damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, testingRng)

		checkDamageRange(t, damage, 29, 35)
	}
}

func TestDamageLow(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getDummyPokemon()

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, rand.New(lowSource{}))

	if damage != 29 {
		t.Fatalf("low damage incorrect: expected 29, got %d", damage)
	}
}

func TestDamageHigh(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getDummyPokemon()

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, rand.New(highSource{}))

	if damage != 35 {
		t.Fatalf("high damage incorrect: expected 35, got %d", damage)
	}
}

func TestCritDamage(t *testing.T) {
	for range iterCount {
		pokemon := getDummyPokemon()
		enemyPokemon := getDummyPokemon()

		damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), true, WEATHER_NONE, testingRng)

		checkDamageRange(t, damage, 44, 52)
	}
}

func TestCritIgnoresDefenseBoosts(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getDummyPokemon()
	enemyPokemon.Def.Stage = 6

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), true, WEATHER_NONE, rand.New(highSource{}))

	if damage != 52 {
		t.Fatalf("crit should ignore the defender's boosts: expected 52, got %d", damage)
	}
}

func TestHugePower(t *testing.T) {
	pokemon := getDummyPokemonWithAbility("huge-power")
	enemyPokemon := getDummyPokemon()

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, testingRng)

	checkDamageRange(t, damage, 58, 69)
}

func TestBurnHalvesPhysicalDamage(t *testing.T) {
	pokemon := getDummyPokemon()
	pokemon.Status = STATUS_BURN
	enemyPokemon := getDummyPokemon()

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, rand.New(lowSource{}))
	if damage != 14 {
		t.Fatalf("burned attacker should do half damage: expected 14, got %d", damage)
	}

	pokemon.Ability.Name = "guts"
	damage = Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, rand.New(lowSource{}))
	if damage <= 29 {
		t.Fatalf("guts should ignore burn and boost attack: got %d", damage)
	}
}

func TestTypeImmunity(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getPokemon("gengar")

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("tackle"), false, WEATHER_NONE, testingRng)

	if damage != 0 {
		t.Fatalf("ghost type took damage from a normal move: %d", damage)
	}
}

func TestLevitateDamage(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getDummyPokemonWithAbility("levitate")

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("earthquake"), false, WEATHER_NONE, testingRng)

	if damage != 0 {
		t.Fatalf("pokemon with levitate took ground damage: %d", damage)
	}
}

func TestStatusMovesDoNoDamage(t *testing.T) {
	pokemon := getDummyPokemon()
	enemyPokemon := getDummyPokemon()

	damage := Damage(pokemon, enemyPokemon, *GlobalData.GetMove("growl"), false, WEATHER_NONE, testingRng)

	if damage != 0 {
		t.Fatalf("status move did damage: %d", damage)
	}
}

func TestRainBoostsWater(t *testing.T) {
	pokemon := getPokemon("squirtle")
	enemyPokemon := getPokemon("charmander")
	waterGun := *GlobalData.GetMove("water-gun")

	clear := Damage(pokemon, enemyPokemon, waterGun, false, WEATHER_NONE, rand.New(highSource{}))
	rain := Damage(pokemon, enemyPokemon, waterGun, false, WEATHER_RAIN, rand.New(highSource{}))
	sun := Damage(pokemon, enemyPokemon, waterGun, false, WEATHER_SUN, rand.New(highSource{}))

	if rain <= clear || sun >= clear {
		t.Fatalf("weather did not change water damage: clear %d, rain %d, sun %d", clear, rain, sun)
	}
}

func TestItemDamageModifiers(t *testing.T) {
	tackle := *GlobalData.GetMove("tackle")
	enemyPokemon := getDummyPokemon()

	base := Damage(getDummyPokemon(), enemyPokemon, tackle, false, WEATHER_NONE, rand.New(highSource{}))

	for _, item := range []string{ITEM_CHOICE_BAND, ITEM_LIFE_ORB} {
		pokemon := getDummyPokemon()
		pokemon.Item = item

		boosted := Damage(pokemon, enemyPokemon, tackle, false, WEATHER_NONE, rand.New(highSource{}))
		if boosted <= base {
			t.Fatalf("%s did not boost damage: %d <= %d", item, boosted, base)
		}
	}

	vestHolder := getDummyPokemon()
	vestHolder.Item = ITEM_ASSAULT_VEST
	swift := *GlobalData.GetMove("swift")

	unvested := Damage(getDummyPokemon(), getDummyPokemon(), swift, false, WEATHER_NONE, rand.New(highSource{}))
	vested := Damage(getDummyPokemon(), vestHolder, swift, false, WEATHER_NONE, rand.New(highSource{}))
	if vested >= unvested {
		t.Fatalf("assault vest did not reduce special damage: %d >= %d", vested, unvested)
	}
}

func TestEffectivePower(t *testing.T) {
	tackle := *GlobalData.GetMove("tackle")

	technician := getDummyPokemonWithAbility("technician")
	if power := EffectivePower(technician, getDummyPokemon(), tackle); power != 60 {
		t.Fatalf("technician tackle should have 60 power, got %d", power)
	}

	knockOff := *GlobalData.GetMove("knock-off")
	holder := getDummyPokemon()
	holder.Item = ITEM_LEFTOVERS
	if power := EffectivePower(getDummyPokemon(), holder, knockOff); power != 97 {
		t.Fatalf("knock-off against an item holder should have 97 power, got %d", power)
	}

	acrobatics := *GlobalData.GetMove("acrobatics")
	if power := EffectivePower(getDummyPokemon(), getDummyPokemon(), acrobatics); power != 110 {
		t.Fatalf("itemless acrobatics should have 110 power, got %d", power)
	}
}

func TestPixilate(t *testing.T) {
	pokemon := getPokemon("sylveon")
	pokemon.Ability.Name = "pixilate"

	hyperVoice := *GlobalData.GetMove("hyper-voice")
	if moveType := EffectiveMoveType(pokemon, hyperVoice); moveType != TYPENAME_FAIRY {
		t.Fatalf("pixilate should turn hyper-voice fairy, got %s", moveType)
	}

	damage := Damage(pokemon, getPokemon("gengar"), hyperVoice, false, WEATHER_NONE, testingRng)
	if damage == 0 {
		t.Fatal("pixilated hyper-voice should hit ghost types")
	}
}

func TestPokeRound(t *testing.T) {
	cases := map[float64]float64{
		14.5: 14,
		14.6: 15,
		14.4: 14,
		3:    3,
	}

	for input, expected := range cases {
		if got := pokeRound(input); got != expected {
			t.Fatalf("pokeRound(%f) = %f, expected %f", input, got, expected)
		}
	}
}
