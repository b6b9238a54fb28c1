package golurk

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var attackEventLogger = func() logr.Logger {
	return internalLogger.WithName("attack_event")
}

// attackHandlerContext is the read-only view a move handler gets of the attack it is resolving.
// Handlers describe changes by returning events, never by writing to gameState.
type attackHandlerContext struct {
	gameState *GameState
	rng       *rand.Rand
	attacker  int
	defender  int
	move      Move
	// the defender's substitute takes the hit instead of the defender
	hitSubstitute bool
}

func newAttackHandlerContext(gameState *GameState, rng *rand.Rand, attacker int, defender int, move Move) attackHandlerContext {
	return attackHandlerContext{gameState: gameState, rng: rng, attacker: attacker, defender: defender, move: move}
}

func (ctx attackHandlerContext) attackPokemon() Pokemon {
	return *ctx.gameState.GetPlayer(ctx.attacker).GetActivePokemon()
}

func (ctx attackHandlerContext) defPokemon() Pokemon {
	return *ctx.gameState.GetPlayer(ctx.defender).GetActivePokemon()
}

var targetsAffectedByEvasion = [...]string{"specific-move", "selected-pokemon-me-first", "random-opponent", "all-other-pokemon", "selected-pokemon", "all-opponents", "entire-field", "all-pokemon", "fainting-pokemon"}

// hitCount rolls how many times a multi-hit move strikes: 2 and 3 hits at 35% each, 4 and 5 at 15%.
func hitCount(attacker Pokemon, move Move, rng *rand.Rand) int {
	minHits, maxHits := move.HitRange()
	if minHits == maxHits {
		return minHits
	}

	if attacker.Ability.Name == "skill-link" {
		return maxHits
	}

	if minHits == 2 && maxHits == 5 {
		roll := rng.IntN(100)
		switch {
		case roll < 35:
			return 2
		case roll < 70:
			return 3
		case roll < 85:
			return 4
		default:
			return 5
		}
	}

	return rng.IntN(maxHits-minHits+1) + minHits
}

// strikePowers lists the power of every hit the move will make.
func strikePowers(ctx attackHandlerContext) []int {
	attackPokemon := ctx.attackPokemon()

	switch ctx.move.Name {
	case "triple-axel":
		return []int{20, 40, 60}
	case "beat-up":
		party := ctx.gameState.GetPlayer(ctx.attacker).Team
		powers := make([]int, 0, len(party))
		for _, member := range party {
			if member.Alive() && member.Status == STATUS_NONE {
				powers = append(powers, int(member.Base.Attack)/10+5)
			}
		}
		return powers
	}

	hits := hitCount(attackPokemon, ctx.move, ctx.rng)
	powers := make([]int, hits)
	for i := range powers {
		powers[i] = ctx.move.Power
	}

	return powers
}

func damageMoveHandler(ctx attackHandlerContext) []StateEvent {
	events := make([]StateEvent, 0)

	attackPokemon := ctx.attackPokemon()
	defPokemon := ctx.defPokemon()

	effectiveness := defPokemon.DefenseEffectiveness(GetAttackTypeMapping(EffectiveMoveType(attackPokemon, ctx.move)))

	if defPokemon.Ability.Name == "wonder-guard" && effectiveness < 2 && ctx.move.Type != TYPENAME_TYPELESS {
		return append(events,
			SimpleAbilityActivationEvent(ctx.gameState, ctx.defender),
			NewFmtMessageEvent("%s does not take any damage!", defPokemon.Name()),
		)
	}

	remainingHp := defPokemon.Hp.Value
	if ctx.hitSubstitute {
		remainingHp = defPokemon.SubstituteHp
	}

	var totalDamage uint
	hits := 0
	crit := false

	for _, power := range strikePowers(ctx) {
		if remainingHp == 0 {
			break
		}

		strike := ctx.move
		strike.Power = power

		hitCrit := false
		critChance := attackPokemon.CritChance(ctx.move.Meta.CritRateBonus)
		if ctx.rng.Float32() < critChance {
			if defPokemon.Ability.Name == "battle-armor" || defPokemon.Ability.Name == "shell-armor" {
				events = append(events, SimpleAbilityActivationEvent(ctx.gameState, ctx.defender))
			} else {
				hitCrit = true
				attackEventLogger().V(1).Info("Attack Crit!", "chance", critChance)
			}
		}

		damage := Damage(attackPokemon, defPokemon, strike, hitCrit, ctx.gameState.Weather, ctx.rng)
		if damage == 0 {
			break
		}

		if ctx.hitSubstitute {
			damage = min(damage, remainingHp)
			events = append(events, SubstituteDamageEvent{PlayerIndex: ctx.defender, Damage: damage})
		} else {
			if damage >= remainingHp && remainingHp == defPokemon.MaxHp {
				switch {
				case defPokemon.Ability.Name == "sturdy":
					damage = remainingHp - 1
					events = append(events,
						SimpleAbilityActivationEvent(ctx.gameState, ctx.defender),
						NewFmtMessageEvent("%s held on!", defPokemon.Name()),
					)
				case defPokemon.Item == ITEM_FOCUS_SASH:
					damage = remainingHp - 1
					events = append(events, ItemEvent{PlayerIndex: ctx.defender, ItemName: ITEM_FOCUS_SASH})
				}
			}

			damage = min(damage, remainingHp)
			events = append(events, DamageEvent{PlayerIndex: ctx.defender, Damage: damage, Crit: hitCrit})
		}

		attackEventLogger().V(1).Info("Attack Event!", "attacker", attackPokemon.Name(), "defender", defPokemon.Name(), "damage", damage, "hit", hits+1)

		remainingHp -= damage
		totalDamage += damage
		crit = crit || hitCrit
		hits++
	}

	if hits > 1 {
		events = append(events, NewFmtMessageEvent("It hit %d times!", hits))
	}

	if totalDamage == 0 {
		if effectiveness == 0 || ctx.move.Power == 0 || hits == 0 {
			events = append(events, NewMessageEvent("It had no effect"))
		}
		return events
	}

	if ctx.move.Meta.Drain > 0 {
		drainPercent := float64(ctx.move.Meta.Drain) / 100
		drainedHealth := uint(float64(totalDamage) * drainPercent)

		events = append(events, HealEvent{Heal: max(1, drainedHealth), PlayerIndex: ctx.attacker})

		attackEventLogger().V(1).Info("Drain", "percent", drainPercent, "drained_health", drainedHealth)
	}

	if ctx.move.Meta.Drain < 0 {
		events = append(events, recoilEvents(ctx, attackPokemon, totalDamage)...)
	}

	effectivenessText := ""

	switch {
	case effectiveness >= 2:
		effectivenessText = "It was super effective!"
	case effectiveness > 0 && effectiveness <= 0.5:
		effectivenessText = "It was not very effective"
	}

	if effectivenessText != "" {
		events = append(events, NewMessageEvent(effectivenessText))
	}

	if ctx.hitSubstitute {
		return events
	}

	knockedOut := remainingHp == 0

	if knockedOut {
		switch attackPokemon.Ability.Name {
		case "moxie":
			events = append(events, SimpleAbilityActivationEvent(ctx.gameState, ctx.attacker))
		case "beast-boost":
			events = append(events, AbilityActivationEvent{
				AbilityName:  "beast-boost",
				ActivatorInt: ctx.attacker,
				Stat:         attackPokemon.HighestStat(),
			})
		}
	} else {
		switch defPokemon.Ability.Name {
		case "sand-spit":
			if ctx.gameState.Weather != WEATHER_SANDSTORM {
				events = append(events, SimpleAbilityActivationEvent(ctx.gameState, ctx.defender))
			}
		case "pickpocket":
			if ctx.move.DamageClass == DAMAGETYPE_PHYSICAL && defPokemon.Item == "" && attackPokemon.Item != "" {
				events = append(events,
					SimpleAbilityActivationEvent(ctx.gameState, ctx.defender),
					ItemChangeEvent{PlayerIndex: ctx.defender, Item: attackPokemon.Item},
					ItemChangeEvent{PlayerIndex: ctx.attacker, Item: ""},
				)
			}
		case "color-change":
			moveType := GetAttackTypeMapping(ctx.move.Type)
			if ctx.move.Name != "struggle" && !defPokemon.HasType(moveType) {
				events = append(events, TypeChangeEvent{ChangerInt: ctx.defender, PokemonType: *moveType})
			}
		}
	}

	if ctx.move.Name == "knock-off" && defPokemon.Item != "" {
		events = append(events,
			NewFmtMessageEvent("%s knocked off %s's %s!", attackPokemon.Name(), defPokemon.Name(), defPokemon.Item),
			ItemChangeEvent{PlayerIndex: ctx.defender, Item: ""},
		)
	}

	if attackPokemon.Item == ITEM_LIFE_ORB && attackPokemon.Ability.Name != "magic-guard" {
		events = append(events, ItemEvent{PlayerIndex: ctx.attacker, ItemName: ITEM_LIFE_ORB})
	}

	if attackPokemon.Item == ITEM_THROAT_SPRAY && ctx.move.IsSound() {
		events = append(events, ItemEvent{PlayerIndex: ctx.attacker, ItemName: ITEM_THROAT_SPRAY})
	}

	return events
}

// recoilEvents returns the self damage the attacker takes after dealing damage.
// Struggle costs a quarter of max HP, everything else a share of the damage dealt.
func recoilEvents(ctx attackHandlerContext, attackPokemon Pokemon, damageDealt uint) []StateEvent {
	isStruggle := ctx.move.Name == "struggle"
	if !isStruggle && (attackPokemon.Ability.Name == "rock-head" || attackPokemon.Ability.Name == "magic-guard") {
		return nil
	}

	recoilPercent := math.Abs(float64(ctx.move.Meta.Drain)) / 100
	selfDamage := uint(math.Max(1, math.Round(float64(damageDealt)*recoilPercent)))
	if isStruggle {
		selfDamage = uint(math.Max(1, math.Round(float64(attackPokemon.MaxHp)*recoilPercent)))
	}

	attackEventLogger().V(1).Info("Recoil", "recoil_percent", recoilPercent, "self_damage", selfDamage)

	return []StateEvent{
		NewFmtMessageEvent("%s was damaged by the recoil!", attackPokemon.Name()),
		DamageEvent{Damage: selfDamage, PlayerIndex: ctx.attacker, SupressMessage: true},
	}
}

func ohkoHandler(ctx attackHandlerContext) []StateEvent {
	attackPokemon := ctx.attackPokemon()
	defPokemon := ctx.defPokemon()
	if defPokemon.Level > attackPokemon.Level {
		return []StateEvent{NewMessageEvent("It failed! The opponent's level is too high!")}
	}

	if defPokemon.DefenseEffectiveness(GetAttackTypeMapping(ctx.move.Type)) == 0 {
		return []StateEvent{NewMessageEvent("It had no effect")}
	}

	if defPokemon.Ability.Name == "sturdy" {
		return []StateEvent{
			SimpleAbilityActivationEvent(ctx.gameState, ctx.defender),
			NewFmtMessageEvent("%s held on!", defPokemon.Name()),
		}
	}

	return []StateEvent{
		DamageEvent{PlayerIndex: ctx.defender, Damage: defPokemon.Hp.Value},
		NewMessageEvent("It's a one-hit KO!"),
	}
}

// statusImmune reports whether a pokemon's types keep it from ever getting the ailment.
func statusImmune(pokemon Pokemon, ailment int) bool {
	switch ailment {
	case STATUS_PARA:
		return pokemon.HasType(&TYPE_ELECTRIC)
	case STATUS_BURN:
		return pokemon.HasType(&TYPE_FIRE)
	case STATUS_POISON, STATUS_TOXIC:
		return pokemon.HasType(&TYPE_POISON) || pokemon.HasType(&TYPE_STEEL)
	case STATUS_FROZEN:
		return pokemon.HasType(&TYPE_ICE)
	}

	return false
}

// ailmentHandler rolls the move's ailment. Status moves report why they failed, damaging moves stay quiet.
func ailmentHandler(ctx attackHandlerContext) []StateEvent {
	defPokemon := ctx.defPokemon()
	attackPokemon := ctx.attackPokemon()
	isStatusMove := !ctx.move.IsDamaging()

	failed := func(msg string) []StateEvent {
		if isStatusMove {
			return []StateEvent{NewMessageEvent(msg)}
		}
		return nil
	}

	if ctx.hitSubstitute || !defPokemon.Alive() {
		return failed("But it failed!")
	}

	ailmentChance := ctx.move.Meta.AilmentChance
	// 0 here means the ailment always lands (poison-powder, toxic and the like)
	if ailmentChance == 0 {
		ailmentChance = 100
	} else if attackPokemon.Ability.Name == "serene-grace" {
		ailmentChance *= 2
	}

	ailment, ok := STATUS_NAME_MAP[ctx.move.Meta.Ailment.Name]
	if ok {
		if defPokemon.Status != STATUS_NONE {
			return failed("But it failed!")
		}

		// Manual override of toxic so that it applies toxic and not poison
		if ctx.move.Name == "toxic" {
			ailment = STATUS_TOXIC
		}

		if statusImmune(defPokemon, ailment) {
			return failed("It had no effect")
		}

		if ctx.move.Name == "thunder-wave" && defPokemon.DefenseEffectiveness(GetAttackTypeMapping(ctx.move.Type)) == 0 {
			return failed("It had no effect")
		}

		ailmentCheck := ctx.rng.IntN(100)
		if ailmentCheck < ailmentChance {
			attackEventLogger().V(1).Info("Ailment check succeeded!", "chance", ailmentChance, "ailment_check", ailmentCheck)
			return []StateEvent{AilmentEvent{PlayerIndex: ctx.defender, Ailment: ailment}}
		}

		attackEventLogger().V(1).Info("Ailment check failed.", "ailment_chance", ailmentChance, "ailment_check", ailmentCheck)
		return nil
	}

	effect, ok := EFFECT_NAME_MAP[ctx.move.Meta.Ailment.Name]
	if ok && effect == EFFECT_CONFUSION {
		if defPokemon.ConfusionCount > 0 {
			return failed("But it failed!")
		}

		effectCheck := ctx.rng.IntN(100)
		if effectCheck < ailmentChance {
			attackEventLogger().V(1).Info("Confusion check passed.", "effect_chance", ailmentChance, "effect_check", effectCheck)
			return []StateEvent{ApplyConfusionEvent{PlayerIndex: ctx.defender}}
		}
	}

	return nil
}

// statChangeHandler sends each of the move's stat changes to the pokemon it should land on.
func statChangeHandler(ctx attackHandlerContext, target int) []StateEvent {
	chance := ctx.move.Meta.StatChance
	if chance != 0 && ctx.attackPokemon().Ability.Name == "serene-grace" {
		chance *= 2
	}

	return lo.Map(ctx.move.StatChanges, func(statChange StatChange, _ int) StateEvent {
		return NewStatChangeEvent(target, statChange.StatName, statChange.Change, chance)
	})
}

// netGoodStatsHandler always benefits the user: moves aimed at the user apply every change to it,
// otherwise raises go to the user and drops to the opponent.
func netGoodStatsHandler(ctx attackHandlerContext) []StateEvent {
	events := make([]StateEvent, 0, len(ctx.move.StatChanges))

	for _, statChange := range ctx.move.StatChanges {
		affected := ctx.attacker
		if statChange.Change < 0 && !ctx.move.TargetsUserSide() {
			affected = ctx.defender

			if ctx.hitSubstitute {
				events = append(events, NewMessageEvent("But it failed!"))
				continue
			}
		}

		events = append(events, NewStatChangeEvent(affected, statChange.StatName, statChange.Change, ctx.move.Meta.StatChance))
	}

	return events
}

// creates a heal event for attacker
func healHandler(ctx attackHandlerContext) StateEvent {
	attackPokemon := ctx.attackPokemon()
	if attackPokemon.Hp.Value == attackPokemon.MaxHp {
		return NewFmtMessageEvent("%s's HP is full!", attackPokemon.Name())
	}

	healPercent := float64(ctx.move.Meta.Healing) / 100
	return HealPercEvent{PlayerIndex: ctx.attacker, HealPerc: healPercent}
}

func forceSwitchHandler(ctx attackHandlerContext) []StateEvent {
	defPokemon := ctx.defPokemon()
	defPlayer := ctx.gameState.GetPlayer(ctx.defender)
	if defPokemon.Ability.Name == "suction-cups" {
		return []StateEvent{
			SimpleAbilityActivationEvent(ctx.gameState, ctx.defender),
			NewFmtMessageEvent("%s cannot be forced out!", defPokemon.Name()),
		}
	}

	switches := defPlayer.AvailableSwitches()
	if len(switches) == 0 {
		return []StateEvent{NewFmtMessageEvent("%s has no Pokemon left to switch in!", defPlayer.Name)}
	}

	return []StateEvent{
		NewFmtMessageEvent("%s was dragged out!", defPokemon.Name()),
		SwitchEvent{PlayerIndex: ctx.defender, SwitchIndex: switches[ctx.rng.IntN(len(switches))]},
	}
}

func protectHandler(ctx attackHandlerContext) []StateEvent {
	return []StateEvent{ProtectEvent{PlayerIndex: ctx.attacker}}
}

func substituteHandler(ctx attackHandlerContext) []StateEvent {
	attackPokemon := ctx.attackPokemon()
	cost := attackPokemon.MaxHp / 4

	if attackPokemon.SubstituteHp > 0 {
		return []StateEvent{NewFmtMessageEvent("%s already has a substitute!", attackPokemon.Name())}
	}

	if attackPokemon.Hp.Value <= cost {
		return []StateEvent{NewMessageEvent("But it does not have enough HP left to make a substitute!")}
	}

	return []StateEvent{SubstituteEvent{PlayerIndex: ctx.attacker, Hp: cost}}
}

func wishHandler(ctx attackHandlerContext) []StateEvent {
	player := ctx.gameState.GetPlayer(ctx.attacker)
	if player.WishTurns > 0 {
		return []StateEvent{NewMessageEvent("But it failed!")}
	}

	return []StateEvent{WishEvent{PlayerIndex: ctx.attacker, Heal: ctx.attackPokemon().MaxHp / 2}}
}

func hazardHandler(ctx attackHandlerContext) []StateEvent {
	defPlayer := ctx.gameState.GetPlayer(ctx.defender)

	switch ctx.move.Name {
	case "stealth-rock":
		if defPlayer.Hazards.StealthRock {
			return []StateEvent{NewMessageEvent("But it failed!")}
		}
	case "sticky-web":
		if defPlayer.Hazards.StickyWeb {
			return []StateEvent{NewMessageEvent("But it failed!")}
		}
	}

	return []StateEvent{HazardEvent{PlayerIndex: ctx.defender, Hazard: ctx.move.Name}}
}

func defogHandler(ctx attackHandlerContext) []StateEvent {
	events := []StateEvent{NewStatChangeEvent(ctx.defender, STAT_EVASION, -1, 100)}
	if ctx.hitSubstitute {
		events = events[:0]
	}

	return append(events, ClearHazardsEvent{PlayerIndex: HOST}, ClearHazardsEvent{PlayerIndex: PEER})
}

func trickHandler(ctx attackHandlerContext) []StateEvent {
	attackPokemon := ctx.attackPokemon()
	defPokemon := ctx.defPokemon()

	if ctx.hitSubstitute || (attackPokemon.Item == "" && defPokemon.Item == "") || defPokemon.Ability.Name == "sticky-hold" {
		return []StateEvent{NewMessageEvent("But it failed!")}
	}

	return []StateEvent{
		NewFmtMessageEvent("%s switched items with its target!", attackPokemon.Name()),
		ItemChangeEvent{PlayerIndex: ctx.attacker, Item: defPokemon.Item},
		ItemChangeEvent{PlayerIndex: ctx.defender, Item: attackPokemon.Item},
	}
}

// moves whose effect can't be described by their pokeapi category alone
var uniqueMoveHandlers = map[string]func(attackHandlerContext) []StateEvent{
	"protect":      protectHandler,
	"detect":       protectHandler,
	"substitute":   substituteHandler,
	"wish":         wishHandler,
	"stealth-rock": hazardHandler,
	"sticky-web":   hazardHandler,
	"defog":        defogHandler,
	"trick":        trickHandler,
	"beat-up":      damageMoveHandler,
}

// moveHandlerEvents dispatches on the move's category.
func moveHandlerEvents(ctx attackHandlerContext) []StateEvent {
	events := make([]StateEvent, 0)

	if handler, ok := uniqueMoveHandlers[ctx.move.Name]; ok {
		return handler(ctx)
	}

	switch ctx.move.Meta.Category.Name {
	case "damage", "damage+heal":
		events = append(events, damageMoveHandler(ctx)...)
	case "ailment", "swagger":
		events = append(events, ailmentHandler(ctx)...)
	case "damage+ailment":
		events = append(events, damageMoveHandler(ctx)...)
		if moveLands(ctx) {
			events = append(events, ailmentHandler(ctx)...)
		}
	case "net-good-stats":
		events = append(events, netGoodStatsHandler(ctx)...)
	// Damages and then CHANGES the targets stats
	case "damage+lower":
		events = append(events, damageMoveHandler(ctx)...)
		if !ctx.hitSubstitute && moveLands(ctx) {
			events = append(events, statChangeHandler(ctx, ctx.defender)...)
		}
	// Damages and then CHANGES the user's stats.
	// Moves like close-combat and overheat lower the user's stats but are in this category.
	case "damage+raise":
		events = append(events, damageMoveHandler(ctx)...)
		events = append(events, statChangeHandler(ctx, ctx.attacker)...)
	case "heal":
		events = append(events, healHandler(ctx))
	case "ohko":
		events = append(events, ohkoHandler(ctx)...)
	case "force-switch":
		events = append(events, forceSwitchHandler(ctx)...)
	default:
		attackEventLogger().V(1).Info("Move has no handler!!!", "move_name", ctx.move.Name, "move_category", ctx.move.Meta.Category.Name)
	}

	if ctx.move.Name == "rapid-spin" {
		events = append(events, ClearHazardsEvent{PlayerIndex: ctx.attacker})
	}

	return events
}

// moveLands is false when the defender is immune to the move's damage, which also stops its secondary effects.
func moveLands(ctx attackHandlerContext) bool {
	attackPokemon := ctx.attackPokemon()
	defPokemon := ctx.defPokemon()
	moveType := EffectiveMoveType(attackPokemon, ctx.move)

	if defPokemon.DefenseEffectiveness(GetAttackTypeMapping(moveType)) == 0 {
		return false
	}

	if defPokemon.Ability.Name == "levitate" && moveType == TYPENAME_GROUND {
		return false
	}

	return !(defPokemon.Ability.Name == "wonder-guard" && defPokemon.DefenseEffectiveness(GetAttackTypeMapping(moveType)) < 2)
}

// absorbingAbility returns the defender's ability when it soaks up moves of this type.
func absorbingAbility(defPokemon Pokemon, moveType string) (string, bool) {
	absorbs := map[string]string{
		"volt-absorb":   TYPENAME_ELECTRIC,
		"water-absorb":  TYPENAME_WATER,
		"sap-sipper":    TYPENAME_GRASS,
		"flash-fire":    TYPENAME_FIRE,
		"lightning-rod": TYPENAME_ELECTRIC,
		"storm-drain":   TYPENAME_WATER,
	}

	absorbed, ok := absorbs[defPokemon.Ability.Name]
	if ok && absorbed == moveType {
		return defPokemon.Ability.Name, true
	}

	return "", false
}

// moveAccuracy is the percent chance the move lands, or -1 when it can't miss.
func moveAccuracy(gameState *GameState, attackPokemon Pokemon, defPokemon Pokemon, move Move) int {
	if move.Accuracy == 0 {
		return -1
	}

	accuracy := float32(move.Accuracy)

	if move.Meta.Category.Name == "ohko" {
		return move.Accuracy + int(attackPokemon.Level) - int(defPokemon.Level)
	}

	var effectiveEvasion float32 = 1.0
	if slices.Contains(targetsAffectedByEvasion[:], move.Target.Name) {
		effectiveEvasion = defPokemon.Evasion()
	}

	accuracy *= attackPokemon.Accuracy() * effectiveEvasion

	switch attackPokemon.Ability.Name {
	case "compound-eyes":
		accuracy *= 1.3
	case "hustle":
		if move.DamageClass == DAMAGETYPE_PHYSICAL {
			accuracy *= 0.8
		}
	}

	if gameState.Weather == WEATHER_SANDSTORM && defPokemon.Ability.Name == "sand-veil" {
		accuracy *= 0.8
	}

	if move.Name == "thunder" && gameState.Weather == WEATHER_RAIN {
		return -1
	}

	return int(accuracy)
}

// crashEvents is the damage high-jump-kick style moves do to their user when they fail to connect.
func crashEvents(attackerID int, attackPokemon Pokemon, move Move) []StateEvent {
	if move.Name != "high-jump-kick" && move.Name != "jump-kick" {
		return nil
	}

	if attackPokemon.Ability.Name == "magic-guard" {
		return nil
	}

	return []StateEvent{
		NewFmtMessageEvent("%s kept going and crashed!", attackPokemon.Name()),
		DamageEvent{PlayerIndex: attackerID, Damage: attackPokemon.MaxHp / 2, SupressMessage: true},
	}
}

// selfCostEvents are the HP costs a move takes from its user whether or not it hits.
func selfCostEvents(attackerID int, attackPokemon Pokemon, move Move) []StateEvent {
	switch {
	case slices.Contains(EXPLOSIVE_MOVES, move.Name):
		return []StateEvent{DamageEvent{PlayerIndex: attackerID, Damage: attackPokemon.MaxHp, SupressMessage: true}}
	case move.Name == "mind-blown" || move.Name == "steel-beam":
		if attackPokemon.Ability.Name == "magic-guard" {
			return nil
		}

		cost := uint(math.Ceil(float64(attackPokemon.MaxHp) / 2))
		return []StateEvent{
			NewFmtMessageEvent("%s cut its own HP to power up its move!", attackPokemon.Name()),
			DamageEvent{PlayerIndex: attackerID, Damage: cost, SupressMessage: true},
		}
	}

	return nil
}
