package teambuilder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownAbility = errors.New("unknown ability")
	ErrUnknownItem    = errors.New("unknown item")
	ErrUnknownNature  = errors.New("unknown nature")
)

// Set is one team member as written in a Showdown paste. Names are kept the way they were written;
// Build turns them into engine ids.
type Set struct {
	Nickname string
	Species  string
	Gender   string
	Item     string
	Ability  string
	Level    uint
	// hp, atk, def, spa, spd, spe
	Evs    [6]uint
	Ivs    [6]uint
	Nature string
	Moves  []string
}

// NewSet returns a set with the paste format's defaults: level 100 and perfect IVs.
func NewSet(species string) Set {
	return Set{
		Species: species,
		Level:   golurk.MAX_LEVEL,
		Ivs:     [6]uint{golurk.MAX_IV, golurk.MAX_IV, golurk.MAX_IV, golurk.MAX_IV, golurk.MAX_IV, golurk.MAX_IV},
		Nature:  golurk.NATURE_HARDY.Name,
	}
}

// ToID turns a display name into the lowercase, hyphenated id the data files use.
// "King's Rock" becomes "kings-rock", "U-turn" becomes "u-turn".
func ToID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.NewReplacer("'", "", "’", "", ".", "", ":", "", " ", "-").Replace(id)

	return id
}

// DisplayName is the inverse of ToID for names that were never anything but words and hyphens.
func DisplayName(id string) string {
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

func lookupNature(name string) (golurk.Nature, bool) {
	return lo.Find(golurk.NATURES[:], func(n golurk.Nature) bool {
		return strings.EqualFold(n.Name, name)
	})
}

// Build resolves the set against the engine's data and returns a ready to battle pokemon.
func (s Set) Build(rng *rand.Rand) (golurk.Pokemon, error) {
	base := golurk.GlobalData.GetPokemonByName(s.Species)
	if base == nil {
		return golurk.Pokemon{}, fmt.Errorf("%w: %s", ErrUnknownSpecies, s.Species)
	}

	if len(s.Moves) == 0 {
		return golurk.Pokemon{}, fmt.Errorf("%s has no moves", s.Species)
	}

	moves := make([]golurk.Move, 0, len(s.Moves))
	for _, moveName := range s.Moves {
		move := golurk.GlobalData.GetMove(ToID(moveName))
		if move == nil {
			return golurk.Pokemon{}, fmt.Errorf("%s: %w: %s", s.Species, ErrUnknownMove, moveName)
		}

		moves = append(moves, *move)
	}

	evs, err := golurk.CreateEVSpread(s.Evs[0], s.Evs[1], s.Evs[2], s.Evs[3], s.Evs[4], s.Evs[5])
	if err != nil {
		return golurk.Pokemon{}, fmt.Errorf("%s: %w", s.Species, err)
	}

	ivs, err := golurk.CreateIVSpread(s.Ivs[0], s.Ivs[1], s.Ivs[2], s.Ivs[3], s.Ivs[4], s.Ivs[5])
	if err != nil {
		return golurk.Pokemon{}, fmt.Errorf("%s: %w", s.Species, err)
	}

	builder := golurk.NewPokeBuilder(base, rng).
		SetLevel(max(1, min(s.Level, golurk.MAX_LEVEL))).
		SetEvs(evs).
		SetIvs(ivs).
		SetMoves(moves).
		SetNickname(s.Nickname).
		SetGender(s.Gender)

	if s.Nature != "" {
		nature, ok := lookupNature(s.Nature)
		if !ok {
			return golurk.Pokemon{}, fmt.Errorf("%s: %w: %s", s.Species, ErrUnknownNature, s.Nature)
		}

		builder.SetNature(nature)
	}

	if s.Ability != "" {
		ability := ToID(s.Ability)
		if !golurk.GlobalData.HasAbility(ability) {
			return golurk.Pokemon{}, fmt.Errorf("%s: %w: %s", s.Species, ErrUnknownAbility, s.Ability)
		}

		builder.SetAbility(golurk.Ability{Name: ability})
	} else if abilities := golurk.GlobalData.GetPokemonAbilities(base.Name); len(abilities) > 0 {
		builder.SetAbility(abilities[0])
	}

	if s.Item != "" {
		item := ToID(s.Item)
		if !golurk.GlobalData.HasItem(item) {
			return golurk.Pokemon{}, fmt.Errorf("%s: %w: %s", s.Species, ErrUnknownItem, s.Item)
		}

		builder.SetItem(item)
	}

	return builder.Build(), nil
}

// FromPokemon describes an engine pokemon as a set, used to save generated teams in paste form.
func FromPokemon(pokemon golurk.Pokemon) Set {
	set := Set{
		Species: pokemon.Base.Name,
		Gender:  pokemon.Gender,
		Level:   pokemon.Level,
		Evs:     [6]uint{pokemon.Hp.Ev, pokemon.Attack.Ev, pokemon.Def.Ev, pokemon.SpAttack.Ev, pokemon.SpDef.Ev, pokemon.RawSpeed.Ev},
		Ivs:     [6]uint{pokemon.Hp.Iv, pokemon.Attack.Iv, pokemon.Def.Iv, pokemon.SpAttack.Iv, pokemon.SpDef.Iv, pokemon.RawSpeed.Iv},
		Nature:  pokemon.Nature.Name,
	}

	if pokemon.Nickname != "" && pokemon.Nickname != pokemon.Base.Name {
		set.Nickname = pokemon.Nickname
	}

	if pokemon.Ability.Name != "" {
		set.Ability = DisplayName(pokemon.Ability.Name)
	}

	if pokemon.Item != "" {
		set.Item = DisplayName(pokemon.Item)
	}

	for _, move := range pokemon.Moves {
		if !move.IsNil() {
			set.Moves = append(set.Moves, DisplayName(move.Name))
		}
	}

	return set
}
