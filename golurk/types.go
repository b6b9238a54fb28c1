package golurk

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
	TYPENAME_DARK     = "Dark"
	TYPENAME_STEEL    = "Steel"
	TYPENAME_FAIRY    = "Fairy"
	TYPENAME_TYPELESS = "typeless"
)

// PokemonType is one row of the type chart: how effective an attack of this type is against each defending type.
// Defending types missing from Effectiveness take neutral damage.
type PokemonType struct {
	Name          string
	Effectiveness map[string]float64
}

// AttackEffectiveness gives the multiplier of an attack of this type against a single defending type.
func (t PokemonType) AttackEffectiveness(defenseType PokemonType) float64 {
	effectiveness, ok := t.Effectiveness[defenseType.Name]
	if !ok {
		return 1
	}

	return effectiveness
}

// TypeMultiplier is the product of an attack type's effectiveness against every given defending type.
// Nil defending types (the empty second slot of a mono-type) are skipped.
func TypeMultiplier(attackType string, defenseTypes ...*PokemonType) float64 {
	attack := GetAttackTypeMapping(attackType)
	multiplier := 1.0

	for _, defType := range defenseTypes {
		if defType == nil {
			continue
		}

		multiplier *= attack.AttackEffectiveness(*defType)
	}

	return multiplier
}

var TYPE_MAP = map[string]*PokemonType{
	TYPENAME_NORMAL:   &TYPE_NORMAL,
	TYPENAME_FIRE:     &TYPE_FIRE,
	TYPENAME_WATER:    &TYPE_WATER,
	TYPENAME_ELECTRIC: &TYPE_ELECTRIC,
	TYPENAME_GRASS:    &TYPE_GRASS,
	TYPENAME_ICE:      &TYPE_ICE,
	TYPENAME_FIGHTING: &TYPE_FIGHTING,
	TYPENAME_POISON:   &TYPE_POISON,
	TYPENAME_GROUND:   &TYPE_GROUND,
	TYPENAME_FLYING:   &TYPE_FLYING,
	TYPENAME_PSYCHIC:  &TYPE_PSYCHIC,
	TYPENAME_BUG:      &TYPE_BUG,
	TYPENAME_ROCK:     &TYPE_ROCK,
	TYPENAME_GHOST:    &TYPE_GHOST,
	TYPENAME_DRAGON:   &TYPE_DRAGON,
	TYPENAME_DARK:     &TYPE_DARK,
	TYPENAME_STEEL:    &TYPE_STEEL,
	TYPENAME_FAIRY:    &TYPE_FAIRY,
}

var TYPE_NORMAL = PokemonType{TYPENAME_NORMAL, map[string]float64{
	TYPENAME_ROCK: .5, TYPENAME_STEEL: .5,
	TYPENAME_GHOST: 0,
}}

var TYPE_FIRE = PokemonType{TYPENAME_FIRE, map[string]float64{
	TYPENAME_GRASS: 2, TYPENAME_ICE: 2, TYPENAME_BUG: 2, TYPENAME_STEEL: 2,
	TYPENAME_FIRE: .5, TYPENAME_WATER: .5, TYPENAME_ROCK: .5, TYPENAME_DRAGON: .5,
}}

var TYPE_WATER = PokemonType{TYPENAME_WATER, map[string]float64{
	TYPENAME_FIRE: 2, TYPENAME_GROUND: 2, TYPENAME_ROCK: 2,
	TYPENAME_WATER: .5, TYPENAME_GRASS: .5, TYPENAME_DRAGON: .5,
}}

var TYPE_ELECTRIC = PokemonType{TYPENAME_ELECTRIC, map[string]float64{
	TYPENAME_WATER: 2, TYPENAME_FLYING: 2,
	TYPENAME_ELECTRIC: .5, TYPENAME_GRASS: .5, TYPENAME_DRAGON: .5,
	TYPENAME_GROUND: 0,
}}

var TYPE_GRASS = PokemonType{TYPENAME_GRASS, map[string]float64{
	TYPENAME_WATER: 2, TYPENAME_GROUND: 2, TYPENAME_ROCK: 2,
	TYPENAME_FIRE: .5, TYPENAME_GRASS: .5, TYPENAME_POISON: .5, TYPENAME_FLYING: .5,
	TYPENAME_BUG: .5, TYPENAME_DRAGON: .5, TYPENAME_STEEL: .5,
}}

var TYPE_ICE = PokemonType{TYPENAME_ICE, map[string]float64{
	TYPENAME_GRASS: 2, TYPENAME_GROUND: 2, TYPENAME_FLYING: 2, TYPENAME_DRAGON: 2,
	TYPENAME_FIRE: .5, TYPENAME_WATER: .5, TYPENAME_ICE: .5, TYPENAME_STEEL: .5,
}}

var TYPE_FIGHTING = PokemonType{TYPENAME_FIGHTING, map[string]float64{
	TYPENAME_NORMAL: 2, TYPENAME_ICE: 2, TYPENAME_ROCK: 2, TYPENAME_DARK: 2, TYPENAME_STEEL: 2,
	TYPENAME_POISON: .5, TYPENAME_FLYING: .5, TYPENAME_PSYCHIC: .5, TYPENAME_BUG: .5, TYPENAME_FAIRY: .5,
	TYPENAME_GHOST: 0,
}}

var TYPE_POISON = PokemonType{TYPENAME_POISON, map[string]float64{
	TYPENAME_GRASS: 2, TYPENAME_FAIRY: 2,
	TYPENAME_POISON: .5, TYPENAME_GROUND: .5, TYPENAME_ROCK: .5, TYPENAME_GHOST: .5,
	TYPENAME_STEEL: 0,
}}

var TYPE_GROUND = PokemonType{TYPENAME_GROUND, map[string]float64{
	TYPENAME_FIRE: 2, TYPENAME_ELECTRIC: 2, TYPENAME_POISON: 2, TYPENAME_ROCK: 2, TYPENAME_STEEL: 2,
	TYPENAME_GRASS: .5, TYPENAME_BUG: .5,
	TYPENAME_FLYING: 0,
}}

var TYPE_FLYING = PokemonType{TYPENAME_FLYING, map[string]float64{
	TYPENAME_GRASS: 2, TYPENAME_FIGHTING: 2, TYPENAME_BUG: 2,
	TYPENAME_ELECTRIC: .5, TYPENAME_ROCK: .5, TYPENAME_STEEL: .5,
}}

var TYPE_PSYCHIC = PokemonType{TYPENAME_PSYCHIC, map[string]float64{
	TYPENAME_FIGHTING: 2, TYPENAME_POISON: 2,
	TYPENAME_PSYCHIC: .5, TYPENAME_STEEL: .5,
	TYPENAME_DARK: 0,
}}

var TYPE_BUG = PokemonType{TYPENAME_BUG, map[string]float64{
	TYPENAME_GRASS: 2, TYPENAME_PSYCHIC: 2, TYPENAME_DARK: 2,
	TYPENAME_FIRE: .5, TYPENAME_FIGHTING: .5, TYPENAME_POISON: .5, TYPENAME_FLYING: .5,
	TYPENAME_GHOST: .5, TYPENAME_STEEL: .5, TYPENAME_FAIRY: .5,
}}

var TYPE_ROCK = PokemonType{TYPENAME_ROCK, map[string]float64{
	TYPENAME_FIRE: 2, TYPENAME_ICE: 2, TYPENAME_FLYING: 2, TYPENAME_BUG: 2,
	TYPENAME_FIGHTING: .5, TYPENAME_GROUND: .5, TYPENAME_STEEL: .5,
}}

var TYPE_GHOST = PokemonType{TYPENAME_GHOST, map[string]float64{
	TYPENAME_PSYCHIC: 2, TYPENAME_GHOST: 2,
	TYPENAME_DARK: .5,
	TYPENAME_NORMAL: 0,
}}

var TYPE_DRAGON = PokemonType{TYPENAME_DRAGON, map[string]float64{
	TYPENAME_DRAGON: 2,
	TYPENAME_STEEL: .5,
	TYPENAME_FAIRY: 0,
}}

var TYPE_DARK = PokemonType{TYPENAME_DARK, map[string]float64{
	TYPENAME_PSYCHIC: 2, TYPENAME_GHOST: 2,
	TYPENAME_FIGHTING: .5, TYPENAME_DARK: .5, TYPENAME_FAIRY: .5,
}}

var TYPE_STEEL = PokemonType{TYPENAME_STEEL, map[string]float64{
	TYPENAME_ICE: 2, TYPENAME_ROCK: 2, TYPENAME_FAIRY: 2,
	TYPENAME_FIRE: .5, TYPENAME_WATER: .5, TYPENAME_ELECTRIC: .5, TYPENAME_STEEL: .5,
}}

var TYPE_FAIRY = PokemonType{TYPENAME_FAIRY, map[string]float64{
	TYPENAME_FIGHTING: 2, TYPENAME_DRAGON: 2, TYPENAME_DARK: 2,
	TYPENAME_FIRE: .5, TYPENAME_POISON: .5, TYPENAME_STEEL: .5,
}}

// TYPE_TYPELESS is neutral against everything (struggle, confusion self-hits)
var TYPE_TYPELESS = PokemonType{TYPENAME_TYPELESS, map[string]float64{}}

// GetAttackTypeMapping resolves a move's type name, falling back to typeless for unknown names
func GetAttackTypeMapping(t string) *PokemonType {
	mappedType := TYPE_MAP[t]
	if mappedType == nil {
		return &TYPE_TYPELESS
	}

	return mappedType
}
