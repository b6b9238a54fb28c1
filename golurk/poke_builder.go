package golurk

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("pokemon_builder")
}

type PokemonBuilder struct {
	poke Pokemon
	rng  *rand.Rand
}

func NewPokeBuilder(base *BasePokemon, rng *rand.Rand) *PokemonBuilder {
	poke := Pokemon{
		Base:             base,
		Level:            1,
		Nature:           NATURE_HARDY,
		ChoiceLockedMove: -1,
	}

	return &PokemonBuilder{poke, rng}
}

func (pb *PokemonBuilder) SetEvs(evs [6]uint) *PokemonBuilder {
	pb.poke.Hp.Ev = evs[0]
	pb.poke.Attack.Ev = evs[1]
	pb.poke.Def.Ev = evs[2]
	pb.poke.SpAttack.Ev = evs[3]
	pb.poke.SpDef.Ev = evs[4]
	pb.poke.RawSpeed.Ev = evs[5]

	builderLogger().V(2).Info("setting evs", "evs", evs)

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs [6]uint) *PokemonBuilder {
	pb.poke.Hp.Iv = ivs[0]
	pb.poke.Attack.Iv = ivs[1]
	pb.poke.Def.Iv = ivs[2]
	pb.poke.SpAttack.Iv = ivs[3]
	pb.poke.SpDef.Iv = ivs[4]
	pb.poke.RawSpeed.Iv = ivs[5]

	builderLogger().V(2).Info("setting ivs", "ivs", ivs)

	return pb
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	return pb.SetIvs([6]uint{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV})
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	var ivs [6]uint

	for i := range ivs {
		ivs[i] = pb.rng.UintN(MAX_IV + 1)
	}

	return pb.SetIvs(ivs)
}

// SetRandomEvs hands out EVs in random chunks until the 510 pool is spent,
// never pushing a single stat over 252.
func (pb *PokemonBuilder) SetRandomEvs() *PokemonBuilder {
	var evs [6]uint
	pool := uint(MAX_TOTAL_EV)

	for pool > 0 {
		open := lo.Filter([]int{0, 1, 2, 3, 4, 5}, func(i int, _ int) bool {
			return evs[i] < MAX_EV
		})
		if len(open) == 0 {
			break
		}

		stat := open[pb.rng.IntN(len(open))]
		room := min(uint(MAX_EV)-evs[stat], pool)
		gain := pb.rng.UintN(room) + 1

		evs[stat] += gain
		pool -= gain
	}

	pb.SetEvs(evs)
	builderLogger().V(2).Info("random evs", "total", pb.poke.GetCurrentEvTotal())

	return pb
}

func (pb *PokemonBuilder) SetLevel(level uint) *PokemonBuilder {
	pb.poke.Level = level
	return pb
}

// SetRandomLevel picks a level in [low, high)
func (pb *PokemonBuilder) SetRandomLevel(low int, high int) *PokemonBuilder {
	n := uint(high - low)
	pb.poke.Level = pb.rng.UintN(n) + uint(low)

	return pb
}

func (pb *PokemonBuilder) SetNature(nature Nature) *PokemonBuilder {
	pb.poke.Nature = nature
	return pb
}

func (pb *PokemonBuilder) SetRandomNature() *PokemonBuilder {
	pb.poke.Nature = NATURES[pb.rng.IntN(len(NATURES))]
	return pb
}

func (pb *PokemonBuilder) SetNickname(nickname string) *PokemonBuilder {
	pb.poke.Nickname = nickname
	return pb
}

func (pb *PokemonBuilder) SetGender(gender string) *PokemonBuilder {
	pb.poke.Gender = gender
	return pb
}

func (pb *PokemonBuilder) SetItem(item string) *PokemonBuilder {
	pb.poke.Item = item
	return pb
}

func (pb *PokemonBuilder) SetAbility(ability Ability) *PokemonBuilder {
	pb.poke.Ability = ability
	return pb
}

// SetMoves fills move slots in order; anything past the fourth move is dropped.
func (pb *PokemonBuilder) SetMoves(moves []Move) *PokemonBuilder {
	var slots [4]Move
	copy(slots[:], moves)
	pb.poke.Moves = slots

	return pb
}

func (pb *PokemonBuilder) SetRandomMoves(possibleMoves []Move) *PokemonBuilder {
	if len(possibleMoves) == 0 {
		builderLogger().V(1).Info("pokemon was given no available moves to randomize with", "pokemon_name", pb.poke.Base.Name)
		return pb
	}

	shuffled := append([]Move(nil), possibleMoves...)
	pb.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pb.SetMoves(shuffled[:min(4, len(shuffled))])

	builderLogger().V(2).Info("random moves", "moves", lo.Map(pb.poke.Moves[:], func(move Move, _ int) string {
		return move.Name
	}))

	return pb
}

func (pb *PokemonBuilder) SetRandomAbility(possibleAbilities []Ability) *PokemonBuilder {
	if len(possibleAbilities) == 0 {
		builderLogger().V(1).Info("pokemon was given no available abilities to randomize with", "pokemon_name", pb.poke.Base.Name)
		return pb
	}

	hiddenAbility, found := lo.Find(possibleAbilities, func(a Ability) bool {
		return a.IsHidden
	})
	normalAbilities := lo.Filter(possibleAbilities, func(a Ability, _ int) bool {
		return !a.IsHidden
	})

	// 1% chance to get a hidden ability randomly
	if found && (len(normalAbilities) == 0 || pb.rng.Float64() < 0.01) {
		pb.poke.Ability = hiddenAbility
	} else {
		pb.poke.Ability = normalAbilities[pb.rng.IntN(len(normalAbilities))]
	}

	return pb
}

func (pb *PokemonBuilder) SetRandomItem(possibleItems []string) *PokemonBuilder {
	if len(possibleItems) == 0 {
		return pb
	}

	pb.poke.Item = possibleItems[pb.rng.IntN(len(possibleItems))]
	return pb
}

func (pb *PokemonBuilder) Build() Pokemon {
	pb.poke.ReCalcStats()
	pb.poke.Hp.Value = pb.poke.MaxHp

	builderLogger().V(1).Info("built pokemon", "pokemon_name", pb.poke.Name(), "level", pb.poke.Level)

	return pb.poke
}
