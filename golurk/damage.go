package golurk

import (
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// EffectiveMoveType is the type a move actually has when the given pokemon uses it.
func EffectiveMoveType(attacker Pokemon, move Move) string {
	if attacker.Ability.Name == "pixilate" && move.Type == TYPENAME_NORMAL {
		return TYPENAME_FAIRY
	}

	return move.Type
}

// EffectivePower is the move's power after abilities, items and move specific boosts.
func EffectivePower(attacker Pokemon, defendent Pokemon, move Move) int {
	power := float64(move.Power)

	switch move.Name {
	case "knock-off":
		if defendent.Item != "" {
			power *= 1.5
		}
	case "acrobatics":
		if attacker.Item == "" {
			power *= 2
		}
	}

	switch attacker.Ability.Name {
	case "technician":
		if power <= 60 {
			power *= 1.5
		}
	case "iron-fist":
		if move.IsPunch() {
			power *= 1.2
		}
	case "pixilate":
		if move.Type == TYPENAME_NORMAL {
			power *= 1.2
		}
	case "punk-rock":
		if move.IsSound() {
			power *= 1.3
		}
	}

	return int(power)
}

// Damage calculates the damage an attacking pokemon should do to a defending pokemon
func Damage(attacker Pokemon, defendent Pokemon, move Move, crit bool, weather int, rng *rand.Rand) uint {
	attackerLevel := attacker.Level
	var baseA, baseD uint
	var a, d uint
	var aBoost, dBoost int

	// Attack affecting abilities
	switch attacker.Ability.Name {
	case "huge-power", "pure-power":
		attacker.Attack.RawValue *= 2
	case "hustle":
		boostedAtt := math.Round(float64(attacker.Attack.RawValue) * 1.5)
		attacker.Attack.RawValue = uint(boostedAtt)
	}

	if defendent.Ability.Name == "marvel-scale" && defendent.Status != STATUS_NONE {
		boostedDef := math.Round(float64(defendent.Def.RawValue) * 1.5)
		defendent.Def.RawValue = uint(boostedDef)
	}

	if defendent.Item == ITEM_ASSAULT_VEST {
		boostedSpDef := math.Floor(float64(defendent.SpDef.RawValue) * 1.5)
		defendent.SpDef.RawValue = uint(boostedSpDef)
	}

	// Determine damage type
	switch move.DamageClass {
	case DAMAGETYPE_PHYSICAL:
		if attacker.Item == ITEM_CHOICE_BAND {
			attacker.Attack.RawValue = uint(math.Floor(float64(attacker.Attack.RawValue) * 1.5))
		}

		baseA = attacker.Attack.RawValue
		a = uint(attacker.Attack.CalcValue())
		aBoost = attacker.Attack.Stage

		baseD = defendent.Def.RawValue
		d = uint(defendent.Def.CalcValue())
		dBoost = defendent.Def.Stage
	case DAMAGETYPE_SPECIAL:
		if attacker.Item == ITEM_CHOICE_SPECS {
			attacker.SpAttack.RawValue = uint(math.Floor(float64(attacker.SpAttack.RawValue) * 1.5))
		}

		baseA = attacker.SpAttack.RawValue
		a = uint(attacker.SpAttack.CalcValue())
		aBoost = attacker.SpAttack.Stage

		baseD = defendent.SpDef.RawValue
		d = uint(defendent.SpDef.CalcValue())
		dBoost = defendent.SpDef.Stage
	default:
		return 0
	}

	moveType := EffectiveMoveType(attacker, move)

	flashFireBoost := 1.0
	if attacker.FlashFire {
		flashFireBoost = 1.5
	}

	// Boost attack or special attack while flash-fire boosted and using fire attack
	if moveType == TYPENAME_FIRE {
		a = uint(float64(a) * flashFireBoost)
	}

	power := EffectivePower(attacker, defendent, move)

	if power == 0 || d == 0 {
		return 0
	}

	attackType := GetAttackTypeMapping(moveType)

	effectiveness := defendent.DefenseEffectiveness(attackType)

	if effectiveness == 0 {
		return 0
	}

	if defendent.Ability.Name == "levitate" && moveType == TYPENAME_GROUND {
		return 0
	}

	var critBoost float64 = 1
	if crit {
		critBoost = 1.5
		// crits ignore the attacker's drops and the defender's boosts
		a = max(a, baseA)
		d = min(d, baseD)
	}

	lowHealthBonus := 1.0
	if float32(attacker.Hp.Value) <= float32(attacker.MaxHp)*0.33 {
		if (attacker.Ability.Name == "overgrow" && moveType == TYPENAME_GRASS) ||
			(attacker.Ability.Name == "blaze" && moveType == TYPENAME_FIRE) ||
			(attacker.Ability.Name == "torrent" && moveType == TYPENAME_WATER) ||
			(attacker.Ability.Name == "swarm" && moveType == TYPENAME_BUG) {
			lowHealthBonus = 1.5
		}
	}

	a = uint(float64(a) * lowHealthBonus)

	if defendent.Ability.Name == "thick-fat" {
		if moveType == TYPENAME_ICE || moveType == TYPENAME_FIRE {
			a = uint(float64(a) * 0.5)
		}
	}

	var burn float64 = 1
	if attacker.Status == STATUS_BURN && move.DamageClass == DAMAGETYPE_PHYSICAL {
		burn = 0.5
		damageLogger().V(2).Info("Attacker is burned and is using a physical move", "attacker_name", attacker.Name())
	}

	if attacker.Ability.Name == "guts" {
		// remove burn debuff
		burn = 1
		if attacker.Status != STATUS_NONE {
			a = uint(float64(a) * 1.5)
		}
	}

	// Calculate the part of the damage function in brackets
	damageInner := math.Floor(math.Floor(math.Floor((float64(2*attackerLevel)/5+2)*float64(power))*(float64(a)/float64(d)))/50 + 2)
	randomSpread := float64(rng.UintN(16)+85) / 100.0
	var stab float64 = 1

	if moveType != TYPENAME_TYPELESS && attacker.HasType(attackType) {
		stab = 1.5
	}

	weatherBonus := 1.0
	if (weather == WEATHER_RAIN && moveType == TYPENAME_WATER) || (weather == WEATHER_SUN && moveType == TYPENAME_FIRE) {
		weatherBonus = 1.5
	}
	if (weather == WEATHER_RAIN && moveType == TYPENAME_FIRE) || (weather == WEATHER_SUN && moveType == TYPENAME_WATER) {
		weatherBonus = 0.5
	}

	itemBonus := 1.0
	if attacker.Item == ITEM_LIFE_ORB {
		itemBonus = 1.3
	}

	soundResist := 1.0
	if defendent.Ability.Name == "punk-rock" && move.IsSound() {
		soundResist = 0.5
	}

	damage := damageInner
	damage = pokeRound(damage * weatherBonus)
	damage = math.Floor(damage * critBoost)
	damage = math.Floor(damage * randomSpread)
	damage = pokeRound(damage * stab)
	damage = math.Floor(damage * effectiveness)
	damage = pokeRound(damage * burn)
	damage = pokeRound(damage * itemBonus)
	damage = pokeRound(damage * soundResist)

	finalDamage := uint(max(1, damage))

	damageLogger().V(1).Info("final damage",
		"power", power,
		"attackerLevel", attackerLevel,
		"attackValue", a,
		"attackChange", aBoost,
		"defValue", d,
		"defenseChange", dBoost,
		"attackType", moveType,
		"lowHealthBonus", lowHealthBonus,
		"damageInner", damageInner,
		"randomSpread", randomSpread,
		"STAB", stab,
		"Net Type Effectiveness", effectiveness,
		"crit", critBoost,
		"weatherBonus", weatherBonus,
		"flashFire", flashFireBoost,
		"itemBonus", itemBonus,
		"damage", finalDamage)

	return finalDamage
}

func pokeRound(x float64) float64 {
	intPart := math.Trunc(x)
	distance := math.Abs(x - intPart)

	if distance > 0.5 {
		// Would use something like Copysign but this will only deal with positive numbers
		return intPart + 1
	} else {
		return intPart
	}
}
