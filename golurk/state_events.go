package golurk

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// StateEvent represents a "single" change in GameState.
// Single here meaning a high-level of single but should multiple "things" happening in a single event
// should be strongly related.
//
// StateEvents are separate from stateActions in that Events are the low level changes of state and Actions
// represent higher level changes a user can make that are made of Events
type StateEvent interface {
	// Update will update GameState in some way. Follow-up events caused by this update are returned
	// and should be handled DIRECTLY after this state event. The second value is a list of messages to be displayed for the event.
	Update(*GameState) ([]StateEvent, []string)
}

type SwitchEvent struct {
	SwitchIndex int
	PlayerIndex int
}

func (event SwitchEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player, opposingPlayer := getPlayerPair(gameState, event.PlayerIndex)

	if event.SwitchIndex < 0 || event.SwitchIndex >= len(player.Team) || !player.Team[event.SwitchIndex].Alive() {
		internalLogger.WithName("switch_event").V(1).Info("ignoring switch to a missing or fainted pokemon", "player_name", player.Name, "switch_index", event.SwitchIndex)
		return nil, nil
	}

	currentPokemon := player.GetActivePokemon()
	newActivePkm := player.GetPokemon(event.SwitchIndex)
	messages := make([]string, 0)

	if currentPokemon.Alive() && currentPokemon.Ability.Name == "natural-cure" && currentPokemon.Status != STATUS_NONE {
		currentPokemon.Status = STATUS_NONE
		messages = append(messages, fmt.Sprintf("%s's status was cured as it switched out!", currentPokemon.Name()))
	}

	currentPokemon.ResetBattleState()

	internalLogger.WithName("switch_event").V(1).Info("switched in", "player_name", player.Name, "pokemon_name", newActivePkm.Name())

	player.ActivePokeIndex = event.SwitchIndex

	if gameState.Turn == 0 {
		messages = append(messages, fmt.Sprintf("%s sent in %s!", player.Name, newActivePkm.Name()))
	} else {
		messages = append(messages, fmt.Sprintf("%s switched to %s!", player.Name, newActivePkm.Name()))
	}

	followUpEvents := make([]StateEvent, 0)

	// --- On Switch-In Updates ---
	// Reset toxic count
	if newActivePkm.Status == STATUS_TOXIC {
		newActivePkm.ToxicCount = 1
		internalLogger.WithName("switch_event").V(1).Info("pokemon switched in and reset their toxic count", "pokemon_name", newActivePkm.Name())
	}

	newActivePkm.SwitchedInThisTurn = true
	newActivePkm.CanAttackThisTurn = false
	newActivePkm.TurnsOut = 0

	followUpEvents = append(followUpEvents, entryHazardEvents(gameState, event.PlayerIndex)...)

	// --- Activate Abilities
	switch newActivePkm.Ability.Name {
	case "drizzle":
		if gameState.DisabledWeather == WEATHER_NONE {
			followUpEvents = append(followUpEvents, WeatherEvent{NewWeather: WEATHER_RAIN})
		}
	case "sand-stream":
		if gameState.DisabledWeather == WEATHER_NONE {
			followUpEvents = append(followUpEvents, WeatherEvent{NewWeather: WEATHER_SANDSTORM})
		}
	case "drought":
		if gameState.DisabledWeather == WEATHER_NONE {
			followUpEvents = append(followUpEvents, WeatherEvent{NewWeather: WEATHER_SUN})
		}
	case "cloud-nine", "air-lock":
		if gameState.Weather != WEATHER_NONE {
			gameState.DisabledWeather = gameState.Weather
			gameState.Weather = WEATHER_NONE

			messages = append(messages, "The effects of weather disappeared")
		}
	case "intimidate":
		opPokemon := opposingPlayer.GetActivePokemon()
		if !opPokemon.Alive() {
			break
		}

		followUpEvents = append(followUpEvents, SimpleAbilityActivationEvent(gameState, event.PlayerIndex))

		switch opPokemon.Ability.Name {
		case "oblivious", "own-tempo", "inner-focus":
			followUpEvents = append(followUpEvents,
				SimpleAbilityActivationEvent(gameState, InvertPlayerIndex(event.PlayerIndex)),
				NewFmtMessageEvent("%s was not intimidated!", opPokemon.Name()),
			)
		default:
			followUpEvents = append(followUpEvents, NewStatChangeEvent(InvertPlayerIndex(event.PlayerIndex), STAT_ATTACK, -1, 100))
		}
	case "trace":
		opposingPokemon := opposingPlayer.GetActivePokemon()
		if opposingPokemon.Ability.Name != "" && opposingPokemon.Ability.Name != "trace" {
			newActivePkm.Ability = opposingPokemon.Ability

			// manual message event used here because AbilityActivationEvent would use the new ability
			followUpEvents = append(followUpEvents, NewFmtMessageEvent("%s gained %s's ability: %s", newActivePkm.Name(), opposingPokemon.Name(), opposingPokemon.Ability.Name))
		}
	case "forecast":
		followUpEvents = append(followUpEvents, SimpleAbilityActivationEvent(gameState, event.PlayerIndex))
	}

	return followUpEvents, messages
}

type AttackEvent struct {
	AttackerID int
	MoveID     int
	// whether the defender still has a damaging move coming this turn (sucker-punch)
	TargetAttacking bool
}

func (event AttackEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	attacker, defender := getPlayerPair(gameState, event.AttackerID)
	defenderInt := InvertPlayerIndex(event.AttackerID)

	attackPokemon := attacker.GetActivePokemon()
	defPokemon := defender.GetActivePokemon()

	if !attackPokemon.Alive() {
		attackEventLogger().V(1).Info("attack was cancelled because they died", "pokemon_name", attackPokemon.Name())
		return nil, nil
	}

	if !attackPokemon.CanAttackThisTurn {
		attackEventLogger().V(1).Info("attack was cancelled because the pokemon can't move this turn", "pokemon_name", attackPokemon.Name())
		return nil, nil
	}

	rng := gameState.CreateRng()

	move := struggleMove
	if event.MoveID >= 0 && event.MoveID < len(attackPokemon.Moves) && !attackPokemon.Moves[event.MoveID].IsNil() {
		move = attackPokemon.Moves[event.MoveID]

		ppCost := 1
		if defPokemon.Alive() && defPokemon.Ability.Name == "pressure" {
			ppCost = 2
		}

		moveInfo := &attackPokemon.InGameMoveInfo[event.MoveID]
		moveInfo.PP = max(0, moveInfo.PP-ppCost)

		if IsChoiceItem(attackPokemon.Item) && attackPokemon.ChoiceLockedMove == -1 {
			attackPokemon.ChoiceLockedMove = event.MoveID
		}
	}

	if move.Name != "protect" && move.Name != "detect" {
		attackPokemon.ProtectCount = 0
	}

	messages := []string{fmt.Sprintf("%s used %s", attackPokemon.Name(), move.Name)}
	events := make([]StateEvent, 0)
	selfCost := selfCostEvents(event.AttackerID, *attackPokemon, move)

	failed := func(msg string) ([]StateEvent, []string) {
		return append(events, selfCost...), append(messages, msg)
	}

	if move.Name == "fake-out" && attackPokemon.TurnsOut > 0 {
		return failed("But it failed!")
	}

	if move.Name == "sucker-punch" && !event.TargetAttacking {
		return failed("But it failed!")
	}

	hitsOpponent := !move.TargetsUserSide() && move.Target.Name != TARGET_OPPONENTS_FIELD && move.Target.Name != TARGET_ENTIRE_FIELD
	hitSubstitute := false

	if hitsOpponent {
		if !defPokemon.Alive() {
			return failed("But there was no target...")
		}

		if defPokemon.Protected {
			events = append(events, crashEvents(event.AttackerID, *attackPokemon, move)...)
			return failed(fmt.Sprintf("%s protected itself!", defPokemon.Name()))
		}

		if defPokemon.Ability.Name == "soundproof" && move.IsSound() {
			events = append(events, SimpleAbilityActivationEvent(gameState, defenderInt))
			return failed(fmt.Sprintf("%s is not affected by sound based moves!", defPokemon.Name()))
		}

		accuracy := moveAccuracy(gameState, *attackPokemon, *defPokemon, move)
		if accuracy >= 0 {
			accuracyCheck := rng.IntN(100)
			if accuracyCheck >= accuracy {
				attackEventLogger().V(1).Info("accuracy check failed", "accuracy_check", accuracyCheck, "accuracy_chance", accuracy, "pokemon_name", attackPokemon.Name())

				events = append(events, crashEvents(event.AttackerID, *attackPokemon, move)...)
				return failed(fmt.Sprintf("%s missed their attack!", attackPokemon.Name()))
			}

			attackEventLogger().V(1).Info("accuracy check passed", "accuracy_check", accuracyCheck, "accuracy_chance", accuracy)
		}

		if ability, ok := absorbingAbility(*defPokemon, EffectiveMoveType(*attackPokemon, move)); ok && move.Name != "struggle" {
			events = append(events, AbilityActivationEvent{AbilityName: ability, ActivatorInt: defenderInt})
			return append(events, selfCost...), messages
		}

		if defPokemon.SubstituteHp > 0 && !move.IsSound() && move.Meta.Category.Name != "force-switch" {
			hitSubstitute = true

			if !move.IsDamaging() && move.Meta.Category.Name != "net-good-stats" && move.Name != "defog" {
				return failed("But it failed!")
			}
		}
	}

	handlerContext := newAttackHandlerContext(gameState, rng, event.AttackerID, defenderInt, move)
	handlerContext.hitSubstitute = hitSubstitute

	events = append(events, moveHandlerEvents(handlerContext)...)

	if hitsOpponent && move.IsDamaging() && !hitSubstitute {
		flinchChance := move.Meta.FlinchChance
		if attackPokemon.Ability.Name == "serene-grace" {
			flinchChance *= 2
		}

		if flinchChance == 0 && attackPokemon.Item == ITEM_KINGS_ROCK {
			flinchChance = 10
		}

		if flinchChance > 0 {
			if defPokemon.Ability.Name == "inner-focus" {
				attackEventLogger().V(1).Info("inner-focus blocked flinch", "pokemon_name", defPokemon.Name())
			} else if rng.IntN(100) < flinchChance {
				events = append(events, FlinchEvent{PlayerIndex: defenderInt})
			}
		}
	}

	return append(events, selfCost...), messages
}

// BeforeMoveEvent runs the checks a pokemon must pass to use its move. They are decided when the
// event is applied, so statuses picked up earlier in the same turn count.
type BeforeMoveEvent struct {
	PlayerIndex         int
	FollowUpAttackEvent StateEvent
}

func (event BeforeMoveEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	if !pokemon.Alive() {
		internalLogger.V(1).Info("attack was skipped because of dead", "pokemon_name", pokemon.Name())
		return nil, nil
	}

	if !pokemon.CanAttackThisTurn {
		internalLogger.V(1).Info("attack was skipped because it was marked as unable to attack for the turn", "pokemon_name", pokemon.Name())
		return nil, nil
	}

	// Checks run outermost first: sleep and freeze, then confusion, then paralysis
	next := event.FollowUpAttackEvent

	if pokemon.Status == STATUS_PARA {
		next = ParaEvent{PlayerIndex: event.PlayerIndex, FollowUpAttackEvent: next}
	}

	if pokemon.ConfusionCount > 0 {
		next = ConfusionEvent{PlayerIndex: event.PlayerIndex, FollowUpAttackEvent: next}
	}

	switch pokemon.Status {
	case STATUS_SLEEP:
		next = SleepEvent{PlayerIndex: event.PlayerIndex, FollowUpAttackEvent: next}
	case STATUS_FROZEN:
		next = FrozenEvent{PlayerIndex: event.PlayerIndex, FollowUpAttackEvent: next}
	}

	return []StateEvent{next}, nil
}

// weather set by abilities and moves lasts this many turns
const WEATHER_DURATION = 5

type WeatherEvent struct {
	NewWeather int
}

var weatherMessageMap = map[int]string{
	WEATHER_NONE:      "The weather has returned to normal",
	WEATHER_RAIN:      "It started to rain!",
	WEATHER_SUN:       "The sunlight turned harsh!",
	WEATHER_SANDSTORM: "A sandstorm kicked up!",
}

func (event WeatherEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	gameState.Weather = event.NewWeather
	gameState.WeatherTurns = 0
	if event.NewWeather != WEATHER_NONE {
		gameState.WeatherTurns = WEATHER_DURATION
	}

	events := make([]StateEvent, 0)
	hostPoke := gameState.HostPlayer.GetActivePokemon()
	clientPoke := gameState.ClientPlayer.GetActivePokemon()

	if hostPoke.Ability.Name == "forecast" {
		events = append(events, SimpleAbilityActivationEvent(gameState, HOST))
	}

	if clientPoke.Ability.Name == "forecast" {
		events = append(events, SimpleAbilityActivationEvent(gameState, PEER))
	}

	return events, []string{weatherMessageMap[event.NewWeather]}
}

type StatChangeEvent struct {
	Chance      int
	StatName    string
	Change      int
	PlayerIndex int
}

func NewStatChangeEvent(playerIndex int, statName string, change int, chance int) StatChangeEvent {
	return StatChangeEvent{PlayerIndex: playerIndex, StatName: statName, Change: change, Chance: chance}
}

// stage returns the current stage of the named stat and a function that changes it.
func statStage(pokemon *Pokemon, statName string) (int, func(int), bool) {
	switch statName {
	case STAT_ATTACK:
		return pokemon.Attack.Stage, pokemon.Attack.ChangeStat, true
	case STAT_DEFENSE:
		return pokemon.Def.Stage, pokemon.Def.ChangeStat, true
	case STAT_SPATTACK:
		return pokemon.SpAttack.Stage, pokemon.SpAttack.ChangeStat, true
	case STAT_SPDEF:
		return pokemon.SpDef.Stage, pokemon.SpDef.ChangeStat, true
	case STAT_SPEED:
		return pokemon.RawSpeed.Stage, pokemon.RawSpeed.ChangeStat, true
	case STAT_ACCURACY:
		return pokemon.AccuracyStage, pokemon.ChangeAccuracy, true
	case STAT_EVASION:
		return pokemon.EvasionStage, pokemon.ChangeEvasion, true
	}

	return 0, nil, false
}

func (event StatChangeEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() || event.Change == 0 {
		return nil, nil
	}

	rng := gameState.CreateRng()

	statCheck := rng.IntN(100)
	if event.Chance == 0 {
		event.Chance = 100
	}

	if statCheck >= event.Chance {
		internalLogger.WithName("stat_change_event").V(1).Info("stat change check failed", "stat_check", statCheck, "stat_chance", event.Chance, "pokemon_name", pokemon.Name())
		return nil, nil
	}

	internalLogger.WithName("stat_change_event").V(1).Info("stat change check passed", "stat_check", statCheck, "stat_chance", event.Chance, "pokemon_name", pokemon.Name())

	if event.Change < 0 {
		blocked := false
		switch pokemon.Ability.Name {
		case "white-smoke", "clear-body", "full-metal-body":
			blocked = true
		case "hyper-cutter":
			blocked = event.StatName == STAT_ATTACK
		case "keen-eye", "illuminate":
			blocked = event.StatName == STAT_ACCURACY
		}

		if blocked {
			return []StateEvent{
				SimpleAbilityActivationEvent(gameState, event.PlayerIndex),
			}, []string{fmt.Sprintf("%s's %s cannot be lowered!", pokemon.Name(), event.StatName)}
		}
	}

	stage, change, ok := statStage(pokemon, event.StatName)
	if !ok {
		internalLogger.WithName("stat_change_event").V(1).Info("unknown stat", "stat_name", event.StatName)
		return nil, nil
	}

	if (event.Change > 0 && stage == MAX_STAGE) || (event.Change < 0 && stage == MIN_STAGE) {
		direction := "higher"
		if event.Change < 0 {
			direction = "lower"
		}

		return nil, []string{fmt.Sprintf("%s's %s won't go any %s!", pokemon.Name(), event.StatName, direction)}
	}

	change(event.Change)

	absChange := int(math.Abs(float64(event.Change)))
	if event.Change > 0 {
		return nil, []string{fmt.Sprintf("%s's %s increased by %d stages!", pokemon.Name(), event.StatName, absChange)}
	}

	return nil, []string{fmt.Sprintf("%s's %s decreased by %d stages!", pokemon.Name(), event.StatName, absChange)}
}

type AilmentEvent struct {
	PlayerIndex int
	Ailment     int
}

var ailmentApplicationMessages = map[int]string{
	STATUS_NONE:   "%s has been cured of it's afflictions!",
	STATUS_SLEEP:  "%s has fallen asleep!",
	STATUS_PARA:   "%s has been paralyzed!",
	STATUS_FROZEN: "%s has been frozen!",
	STATUS_BURN:   "%s has been burned!",
	STATUS_POISON: "%s has been poisoned!",
	STATUS_TOXIC:  "%s has been badly poisoned!",
}

func (event AilmentEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() || pokemon.Status != STATUS_NONE || statusImmune(*pokemon, event.Ailment) {
		return nil, nil
	}

	rng := gameState.CreateRng()

	blockedBy := map[int][]string{
		STATUS_PARA:   {"limber"},
		STATUS_SLEEP:  {"insomnia", "vital-spirit"},
		STATUS_BURN:   {"water-veil"},
		STATUS_POISON: {"immunity"},
		STATUS_TOXIC:  {"immunity"},
		STATUS_FROZEN: {"magma-armor"},
	}

	if slices.Contains(blockedBy[event.Ailment], pokemon.Ability.Name) {
		return []StateEvent{
			SimpleAbilityActivationEvent(gameState, event.PlayerIndex),
			NewFmtMessageEvent("%s is protected by its ability!", pokemon.Name()),
		}, nil
	}

	switch event.Ailment {
	// Set how many turns the pokemon is asleep for
	case STATUS_SLEEP:
		randTime := rng.IntN(3) + 1

		if pokemon.Ability.Name == "early-bird" {
			randTime = int(math.Floor(float64(randTime) / 2.0))
		}

		pokemon.SleepCount = randTime
		internalLogger.WithName("ailment_event").V(1).Info("Pokemon fell asleep", "pokemon_name", pokemon.Name(), "sleep_turns", pokemon.SleepCount)
	case STATUS_FROZEN:
		if gameState.Weather == WEATHER_SUN {
			return nil, nil
		}
	case STATUS_TOXIC:
		pokemon.ToxicCount = 1
	}

	events := make([]StateEvent, 0)

	pokemon.Status = event.Ailment

	if pokemon.Item == ITEM_LUM_BERRY {
		events = append(events, ItemEvent{PlayerIndex: event.PlayerIndex, ItemName: ITEM_LUM_BERRY})
	}

	if pokemon.Ability.Name == "synchronize" {
		events = append(events, SimpleAbilityActivationEvent(gameState, event.PlayerIndex))

		switch pokemon.Status {
		case STATUS_BURN, STATUS_POISON, STATUS_PARA:
			events = append(events, AilmentEvent{PlayerIndex: InvertPlayerIndex(event.PlayerIndex), Ailment: pokemon.Status})
		case STATUS_TOXIC:
			events = append(events, AilmentEvent{PlayerIndex: InvertPlayerIndex(event.PlayerIndex), Ailment: STATUS_POISON})
		}
	}

	return events, []string{fmt.Sprintf(ailmentApplicationMessages[event.Ailment], pokemon.Name())}
}

// AbilityActivationEvent occurs when an ability is activated. This can be just the message that an ability has activated
// or the effects from the ability can also occur here. The idea behind this event is to put as many
// state changing ability actions here. Basically, an change that can happen outside of its context of activation
// should happen here.
//
// For example, wonder-guard's ability does not activate here. That happens in the damage handler
// because it needs to be able to stop damage. Putting the invuln here would make no
// logistical sense.
type AbilityActivationEvent struct {
	CustomMessage string
	AbilityName   string
	ActivatorInt  int
	// stat raised by abilities like beast-boost that pick one
	Stat string
}

// SimpleAbilityActivationEvent returns an AbilityActivationEvent with no custom message.
func SimpleAbilityActivationEvent(gameState *GameState, activatorInt int) AbilityActivationEvent {
	pkm := gameState.GetPlayer(activatorInt).GetActivePokemon()
	return AbilityActivationEvent{AbilityName: pkm.Ability.Name, ActivatorInt: activatorInt}
}

func (event AbilityActivationEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	if event.ActivatorInt == 0 && event.CustomMessage != "" {
		return nil, []string{event.CustomMessage}
	}

	activatorPkm := gameState.GetPlayer(event.ActivatorInt).GetActivePokemon()

	events := make([]StateEvent, 0)
	messages := make([]string, 0)

	if event.CustomMessage == "" {
		messages = append(messages, fmt.Sprintf("%s activated their ability: %s", activatorPkm.Name(), event.AbilityName))
	} else {
		messages = append(messages, event.CustomMessage)
	}

	// NOTE: This assumes that all abilities have met their conditions to be activated.
	switch event.AbilityName {
	case "flash-fire":
		activatorPkm.FlashFire = true

		messages = []string{fmt.Sprintf("%s boosted it's fire-type attacks!", activatorPkm.Name())}
	case "lightning-rod", "storm-drain":
		events = append(events, NewStatChangeEvent(event.ActivatorInt, STAT_SPATTACK, 1, 100))
	case "sap-sipper", "moxie":
		events = append(events, NewStatChangeEvent(event.ActivatorInt, STAT_ATTACK, 1, 100))
	case "beast-boost":
		stat := event.Stat
		if stat == "" {
			stat = activatorPkm.HighestStat()
		}
		events = append(events, NewStatChangeEvent(event.ActivatorInt, stat, 1, 100))
	case "volt-absorb", "water-absorb":
		if activatorPkm.Hp.Value < activatorPkm.MaxHp {
			events = append(events, HealPercEvent{HealPerc: .25, PlayerIndex: event.ActivatorInt})
		}
	case "speed-boost":
		events = append(events, NewStatChangeEvent(event.ActivatorInt, STAT_SPEED, 1, 100))
	case "sand-spit":
		events = append(events, WeatherEvent{NewWeather: WEATHER_SANDSTORM})
	case "rain-dish":
		events = append(events, HealPercEvent{HealPerc: 1.0 / 16.0, PlayerIndex: event.ActivatorInt})

		messages = []string{fmt.Sprintf("%s was healed by the rain!", activatorPkm.Name())}
	case "shed-skin":
		activatorPkm.Status = STATUS_NONE

		messages = []string{fmt.Sprintf("%s shed it's skin!", activatorPkm.Name())}
	case "forecast":
		switch gameState.Weather {
		case WEATHER_RAIN:
			activatorPkm.BattleType = &TYPE_WATER
		case WEATHER_SUN:
			activatorPkm.BattleType = &TYPE_FIRE
		default:
			activatorPkm.BattleType = &TYPE_NORMAL
		}

		messages = append(messages, fmt.Sprintf("%s changed type to %s", activatorPkm.Name(), activatorPkm.BattleType.Name))
	}

	return events, messages
}

type DamageEvent struct {
	Damage         uint
	PlayerIndex    int
	SupressMessage bool
	Crit           bool
}

func (event DamageEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() {
		return nil, nil
	}

	pokemon.Damage(event.Damage)

	messages := make([]string, 0, 3)
	if !event.SupressMessage {
		damagePercent := 100 * pokemon.PercentOfMax(event.Damage)
		messages = append(messages, fmt.Sprintf("%s took %d%% damage!", pokemon.Name(), int(damagePercent)))

		if event.Crit {
			messages = append(messages, "It critically hit!")
		}
	}

	if !pokemon.Alive() {
		return nil, append(messages, fmt.Sprintf("%s fainted!", pokemon.Name()))
	}

	if pokemon.Item == ITEM_SITRUS_BERRY && pokemon.PercentOfMax(pokemon.Hp.Value) <= SITRUS_BERRY_THRESHOLD {
		return []StateEvent{ItemEvent{PlayerIndex: event.PlayerIndex, ItemName: ITEM_SITRUS_BERRY}}, messages
	}

	return nil, messages
}

type HealEvent struct {
	Heal        uint
	PlayerIndex int
}

func (event HealEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() {
		return nil, nil
	}

	pokemon.Heal(event.Heal)

	healPerc := 100 * pokemon.PercentOfMax(event.Heal)
	messages := []string{
		fmt.Sprintf("%s healed %d%% of their health!", pokemon.Name(), int(healPerc)),
	}

	return nil, messages
}

type HealPercEvent struct {
	PlayerIndex int
	HealPerc    float64
}

func (event HealPercEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() {
		return nil, nil
	}

	pokemon.HealPerc(event.HealPerc)

	heal := 100 * event.HealPerc

	return nil, []string{
		fmt.Sprintf("%s healed by %d%%!", pokemon.Name(), int(heal)),
	}
}

// residualDamage is true when end of turn chip damage applies to the pokemon
func residualDamage(pokemon *Pokemon) bool {
	return pokemon.Alive() && pokemon.Ability.Name != "magic-guard"
}

type BurnEvent struct {
	PlayerIndex int
}

func (event BurnEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	if residualDamage(pokemon) {
		damage := max(1, pokemon.MaxHp/16)
		return []StateEvent{DamageEvent{Damage: damage, PlayerIndex: event.PlayerIndex}}, []string{
			fmt.Sprintf("%s is burned!", pokemon.Name()),
		}
	}

	return nil, nil
}

type PoisonEvent struct {
	PlayerIndex int
}

func (event PoisonEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !residualDamage(pokemon) {
		return nil, nil
	}

	damage := max(1, pokemon.MaxHp/8)
	return []StateEvent{DamageEvent{Damage: damage, PlayerIndex: event.PlayerIndex}}, []string{
		fmt.Sprintf("%s is poisoned!", pokemon.Name()),
	}
}

type ToxicEvent struct {
	PlayerIndex int
}

func (event ToxicEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !residualDamage(pokemon) {
		return nil, nil
	}

	damage := max(1, (pokemon.MaxHp/16)*uint(pokemon.ToxicCount))
	pokemon.ToxicCount = min(15, pokemon.ToxicCount+1)

	internalLogger.WithName("toxic_event").V(1).Info("toxic updated", "damage", damage, "toxic_count", pokemon.ToxicCount, "pokemon_name", pokemon.Name())

	return []StateEvent{DamageEvent{Damage: damage, PlayerIndex: event.PlayerIndex}}, []string{
		fmt.Sprintf("%s is badly poisoned!", pokemon.Name()),
	}
}

type FrozenEvent struct {
	PlayerIndex         int
	FollowUpAttackEvent StateEvent
}

func (event FrozenEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	rng := gameState.CreateRng()

	thawChance := .20
	thawCheck := rng.Float64()

	message := ""

	// pokemon stays frozen
	if thawCheck > thawChance {
		internalLogger.WithName("frozen_event").V(1).Info("Thaw check failed", "thaw_check", thawCheck, "thaw_chance", thawChance, "pokemon_name", pokemon.Name())
		message = fmt.Sprintf("%s is frozen and cannot move", pokemon.Name())

		pokemon.CanAttackThisTurn = false
	} else {
		internalLogger.WithName("frozen_event").V(1).Info("thaw check passed!", "thaw_check", thawCheck, "thaw_chance", thawChance, "pokemon_name", pokemon.Name())
		message = fmt.Sprintf("%s thawed out!", pokemon.Name())

		// No need for a new event really
		pokemon.Status = STATUS_NONE
	}

	if pokemon.CanAttackThisTurn {
		return []StateEvent{event.FollowUpAttackEvent}, []string{message}
	}

	return nil, []string{message}
}

type ParaEvent struct {
	PlayerIndex         int
	FollowUpAttackEvent StateEvent
}

func (event ParaEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	rng := gameState.CreateRng()

	paraChance := 0.25
	paraCheck := rng.Float64()

	if paraCheck >= paraChance {
		// don't get para'd
		internalLogger.WithName("para_event").V(1).Info("Para Check passed", "para_check", paraCheck, "para_chance", paraChance, "pokemon_name", pokemon.Name())
		return []StateEvent{event.FollowUpAttackEvent}, nil
	}

	// do get para'd
	internalLogger.WithName("para_event").V(1).Info("Para Check failed", "para_check", paraCheck, "para_chance", paraChance, "pokemon_name", pokemon.Name())
	pokemon.CanAttackThisTurn = false

	return nil, []string{fmt.Sprintf("%s is paralyzed and cannot move.", pokemon.Name())}
}

type FlinchEvent struct {
	PlayerIndex int
}

func (event FlinchEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() || !pokemon.CanAttackThisTurn {
		return nil, nil
	}

	pokemon.CanAttackThisTurn = false

	return nil, []string{fmt.Sprintf("%s flinched and cannot move!", pokemon.Name())}
}

type SleepEvent struct {
	PlayerIndex         int
	FollowUpAttackEvent StateEvent
}

func (event SleepEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	// Sleep is over
	if pokemon.SleepCount <= 0 {
		pokemon.Status = STATUS_NONE
		return []StateEvent{event.FollowUpAttackEvent}, []string{fmt.Sprintf("%s woke up!", pokemon.Name())}
	}

	pokemon.CanAttackThisTurn = false
	pokemon.SleepCount--

	return nil, []string{fmt.Sprintf("%s is asleep", pokemon.Name())}
}

type ApplyConfusionEvent struct {
	PlayerIndex int
}

func (event ApplyConfusionEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() || pokemon.ConfusionCount > 0 {
		return nil, nil
	}

	if pokemon.Ability.Name == "own-tempo" {
		return []StateEvent{SimpleAbilityActivationEvent(gameState, event.PlayerIndex)}, []string{fmt.Sprintf("%s cannot be confused!", pokemon.Name())}
	}

	rng := gameState.CreateRng()

	pokemon.ConfusionCount = rng.IntN(3) + 2

	internalLogger.WithName("apply_confusion_event").V(1).Info("confusion applied", "confusion_count", pokemon.ConfusionCount, "pokemon_name", pokemon.Name())

	var events []StateEvent
	if pokemon.Item == ITEM_LUM_BERRY {
		events = append(events, ItemEvent{PlayerIndex: event.PlayerIndex, ItemName: ITEM_LUM_BERRY})
	}

	return events, []string{fmt.Sprintf("%s is now confused!", pokemon.Name())}
}

var confusionMove = Move{
	Name:        "confusion-self-hit",
	Power:       40,
	Accuracy:    0,
	Meta:        MoveMeta{Category: MetaResource{Name: "damage"}},
	DamageClass: DAMAGETYPE_PHYSICAL,
	Type:        TYPENAME_TYPELESS,
}

type ConfusionEvent struct {
	PlayerIndex         int
	FollowUpAttackEvent StateEvent
}

func (event ConfusionEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	pokemon.ConfusionCount--
	internalLogger.WithName("confusion_event").V(1).Info("confusion updated", "confusion_count", pokemon.ConfusionCount, "pokemon_name", pokemon.Name())

	if pokemon.ConfusionCount <= 0 {
		pokemon.ConfusionCount = 0
		return []StateEvent{event.FollowUpAttackEvent}, []string{fmt.Sprintf("%s snapped out of its confusion!", pokemon.Name())}
	}

	rng := gameState.CreateRng()

	messages := []string{fmt.Sprintf("%s is confused", pokemon.Name())}

	confChance := .33
	confCheck := rng.Float64()

	// Exit early
	if confCheck > confChance {
		return []StateEvent{event.FollowUpAttackEvent}, messages
	}

	pokemon.CanAttackThisTurn = false
	dmg := Damage(*pokemon, *pokemon, confusionMove, false, WEATHER_NONE, rng)

	messages = append(messages, fmt.Sprintf("%s hit itself in confusion.", pokemon.Name()))

	internalLogger.WithName("confusion_event").V(1).Info("pokemon hit itself in confusion", "pokemon_name", pokemon.Name())

	return []StateEvent{DamageEvent{Damage: dmg, PlayerIndex: event.PlayerIndex}}, messages
}

type SandstormDamageEvent struct {
	PlayerIndex int
}

var (
	sandNonDamageTypes     = []*PokemonType{&TYPE_ROCK, &TYPE_STEEL, &TYPE_GROUND}
	sandNonDamageAbilities = []string{"sand-force", "sand-rush", "sand-veil", "sand-spit", "magic-guard", "overcoat"}
)

func (event SandstormDamageEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if !pokemon.Alive() {
		return nil, nil
	}

	for _, immuneType := range sandNonDamageTypes {
		if pokemon.HasType(immuneType) {
			return nil, nil
		}
	}

	if slices.Contains(sandNonDamageAbilities, pokemon.Ability.Name) {
		return nil, nil
	}

	if pokemon.Item == ITEM_SAFETY_GOGGLES {
		return nil, nil
	}

	dmg := float64(pokemon.MaxHp) * (1.0 / 16.0)
	messages := []string{
		fmt.Sprintf("%s was buffeted by the sandstorm!", pokemon.Name()),
	}
	dmgInt := uint(math.Ceil(dmg))
	return []StateEvent{
		DamageEvent{Damage: dmgInt, PlayerIndex: event.PlayerIndex, SupressMessage: true},
	}, messages
}

type TurnStartEvent struct{}

func (event TurnStartEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	// Reset turn flags
	for _, player := range []*Player{&gameState.HostPlayer, &gameState.ClientPlayer} {
		pokemon := player.GetActivePokemon()
		pokemon.CanAttackThisTurn = true
		pokemon.SwitchedInThisTurn = false
		pokemon.Protected = false
	}

	return nil, nil
}

// EndOfTurnEvent expands into the residual effects of the turn, looked up once the turn's moves have resolved.
type EndOfTurnEvent struct{}

func (event EndOfTurnEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	return endOfTurnEvents(gameState), nil
}

type EndOfTurnAbilityCheck struct {
	PlayerID int
}

func (event EndOfTurnAbilityCheck) Update(gameState *GameState) ([]StateEvent, []string) {
	playerPokemon := gameState.GetPlayer(event.PlayerID).GetActivePokemon()
	if !playerPokemon.Alive() {
		return nil, nil
	}

	events := make([]StateEvent, 0)
	rng := gameState.CreateRng()

	switch playerPokemon.Ability.Name {
	case "speed-boost":
		if !playerPokemon.SwitchedInThisTurn {
			events = append(events,
				SimpleAbilityActivationEvent(gameState, event.PlayerID),
			)
		}
	case "rain-dish":
		if gameState.Weather == WEATHER_RAIN && playerPokemon.Hp.Value < playerPokemon.MaxHp {
			events = append(events,
				SimpleAbilityActivationEvent(gameState, event.PlayerID),
			)
		}
	case "shed-skin":
		check := rng.Float32()
		if check <= .33 && playerPokemon.Status != STATUS_NONE {
			events = append(events,
				SimpleAbilityActivationEvent(gameState, event.PlayerID),
			)
		}
	}

	return events, nil
}

type TypeChangeEvent struct {
	ChangerInt  int
	PokemonType PokemonType
}

func (event TypeChangeEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.ChangerInt).GetActivePokemon()
	pokemon.BattleType = &event.PokemonType

	return nil, []string{fmt.Sprintf("%s changed its type to %s!", pokemon.Name(), event.PokemonType.Name)}
}

type FinalUpdatesEvent struct{}

func (event FinalUpdatesEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	messages := make([]string, 0)

	for _, player := range []*Player{&gameState.HostPlayer, &gameState.ClientPlayer} {
		if pokemon := player.GetActivePokemon(); pokemon.Alive() {
			pokemon.TurnsOut++
		}
	}

	if gameState.WeatherTurns > 0 {
		gameState.WeatherTurns--
		if gameState.WeatherTurns == 0 {
			gameState.Weather = WEATHER_NONE
			messages = append(messages, weatherMessageMap[WEATHER_NONE])
		}
	}

	if gameState.DisabledWeather != WEATHER_NONE && !gameState.AbilityInPlay("cloud-nine") && !gameState.AbilityInPlay("air-lock") {
		gameState.Weather = gameState.DisabledWeather
		gameState.DisabledWeather = WEATHER_NONE
		messages = append(messages, "The effects of weather have reappeared")
	}

	return nil, messages
}

// MessageEvent is an event that only shows a message. No state updates occur.
type MessageEvent struct {
	Message string
}

func NewMessageEvent(message string) MessageEvent {
	return MessageEvent{Message: message}
}

func (event MessageEvent) Update(_ *GameState) ([]StateEvent, []string) {
	return nil, []string{event.Message}
}

// FmtMessageEvent is an event that only shows a message fmt.Sprintf'ed with the given arguments. All rules with fmt.Sprintf apply here
type FmtMessageEvent struct {
	Message string
	Args    []any
}

func NewFmtMessageEvent(message string, a ...any) FmtMessageEvent {
	return FmtMessageEvent{Message: message, Args: a}
}

func (event FmtMessageEvent) Update(_ *GameState) ([]StateEvent, []string) {
	return nil, []string{fmt.Sprintf(event.Message, event.Args...)}
}

type EventIter struct {
	events []StateEvent
}

func NewEventIter() EventIter {
	return EventIter{make([]StateEvent, 0)}
}

// Next updates state given the top event, adds any follow up events to the front of the queue,
// and returns the messages from that state to be shown to the user. The boolean value is true if
// there are any more events in the queue.
func (iter *EventIter) Next(state *GameState) ([]string, bool) {
	if len(iter.events) == 0 {
		return nil, false
	}

	headEvent := iter.events[0]
	internalLogger.WithName("event_iter").V(2).Info("Updating state", "event_name", reflect.TypeOf(headEvent))
	followUpEvents, messages := headEvent.Update(state)

	// pop queue
	iter.events = iter.events[1:len(iter.events)]

	if len(followUpEvents) != 0 {
		// create new queue with follow_up_events prepended to the front
		newQueue := make([]StateEvent, 0, len(iter.events)+len(followUpEvents))
		newQueue = append(newQueue, followUpEvents...)
		newQueue = append(newQueue, iter.events...)

		iter.events = newQueue
	}

	return messages, true
}

func (iter *EventIter) AddEvents(events []StateEvent) {
	iter.events = append(iter.events, events...)
}

func (iter EventIter) Len() int {
	return len(iter.events)
}
