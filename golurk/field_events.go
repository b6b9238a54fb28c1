package golurk

import (
	"fmt"
	"math"
)

// ItemEvent is the held item counterpart of AbilityActivationEvent: the item's conditions have been met
// and its effect happens here. Single use items are consumed.
type ItemEvent struct {
	PlayerIndex int
	ItemName    string
}

func (event ItemEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	if pokemon.Item != event.ItemName || !pokemon.Alive() {
		return nil, nil
	}

	events := make([]StateEvent, 0)
	messages := make([]string, 0)
	consumed := true

	switch event.ItemName {
	case ITEM_FOCUS_SASH:
		messages = append(messages, fmt.Sprintf("%s hung on using its Focus Sash!", pokemon.Name()))
	case ITEM_SITRUS_BERRY:
		messages = append(messages, fmt.Sprintf("%s ate its Sitrus Berry!", pokemon.Name()))
		events = append(events, HealPercEvent{PlayerIndex: event.PlayerIndex, HealPerc: SITRUS_BERRY_HEAL})
	case ITEM_LUM_BERRY:
		pokemon.Status = STATUS_NONE
		pokemon.ConfusionCount = 0
		pokemon.ToxicCount = 0
		pokemon.SleepCount = 0
		messages = append(messages, fmt.Sprintf("%s ate its Lum Berry and was cured!", pokemon.Name()))
	case ITEM_THROAT_SPRAY:
		events = append(events, NewStatChangeEvent(event.PlayerIndex, STAT_SPATTACK, 1, 100))
		messages = append(messages, fmt.Sprintf("%s used its Throat Spray!", pokemon.Name()))
	case ITEM_LIFE_ORB:
		consumed = false
		recoil := uint(math.Max(1, math.Floor(float64(pokemon.MaxHp)*LIFE_ORB_RECOIL)))
		events = append(events, DamageEvent{PlayerIndex: event.PlayerIndex, Damage: recoil, SupressMessage: true})
		messages = append(messages, fmt.Sprintf("%s lost some of its HP!", pokemon.Name()))
	case ITEM_LEFTOVERS:
		consumed = false
		if pokemon.Hp.Value == pokemon.MaxHp {
			return nil, nil
		}

		pokemon.Heal(uint(math.Max(1, math.Floor(float64(pokemon.MaxHp)*LEFTOVERS_HEAL))))
		messages = append(messages, fmt.Sprintf("%s restored a little HP using its Leftovers!", pokemon.Name()))
	default:
		internalLogger.WithName("item_event").V(1).Info("item has no effect", "item_name", event.ItemName)
		return nil, nil
	}

	if consumed {
		pokemon.Item = ""
	}

	return events, messages
}

// ItemChangeEvent replaces the active pokemon's held item (trick, knock-off, pickpocket).
type ItemChangeEvent struct {
	PlayerIndex int
	Item        string
}

func (event ItemChangeEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	pokemon.Item = event.Item
	pokemon.ChoiceLockedMove = -1

	if event.Item == "" {
		return nil, nil
	}

	return nil, []string{fmt.Sprintf("%s obtained %s!", pokemon.Name(), event.Item)}
}

type SubstituteEvent struct {
	PlayerIndex int
	Hp          uint
}

func (event SubstituteEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()
	pokemon.Damage(event.Hp)
	pokemon.SubstituteHp = event.Hp

	return nil, []string{fmt.Sprintf("%s put in a substitute!", pokemon.Name())}
}

type SubstituteDamageEvent struct {
	PlayerIndex int
	Damage      uint
}

func (event SubstituteDamageEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	messages := []string{"The substitute took damage for " + pokemon.Name() + "!"}

	if event.Damage >= pokemon.SubstituteHp {
		pokemon.SubstituteHp = 0
		return nil, append(messages, fmt.Sprintf("%s's substitute faded!", pokemon.Name()))
	}

	pokemon.SubstituteHp -= event.Damage
	return nil, messages
}

type ProtectEvent struct {
	PlayerIndex int
}

func (event ProtectEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	pokemon := gameState.GetPlayer(event.PlayerIndex).GetActivePokemon()

	// every consecutive protect is a third as likely to work
	chance := 1 / math.Pow(3, float64(pokemon.ProtectCount))
	check := gameState.CreateRng().Float64()

	if check >= chance {
		pokemon.ProtectCount = 0
		internalLogger.WithName("protect_event").V(1).Info("protect failed", "chance", chance, "check", check, "pokemon_name", pokemon.Name())
		return nil, []string{"But it failed!"}
	}

	pokemon.Protected = true
	pokemon.ProtectCount++

	return nil, []string{fmt.Sprintf("%s protected itself!", pokemon.Name())}
}

// WishEvent queues a heal for whoever is in the player's slot at the end of next turn.
type WishEvent struct {
	PlayerIndex int
	Heal        uint
}

func (event WishEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player := gameState.GetPlayer(event.PlayerIndex)
	player.WishTurns = 2
	player.WishHeal = event.Heal

	return nil, []string{fmt.Sprintf("%s made a wish!", player.GetActivePokemon().Name())}
}

type WishTickEvent struct {
	PlayerIndex int
}

func (event WishTickEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player := gameState.GetPlayer(event.PlayerIndex)
	if player.WishTurns == 0 {
		return nil, nil
	}

	player.WishTurns--
	if player.WishTurns > 0 {
		return nil, nil
	}

	heal := player.WishHeal
	player.WishHeal = 0

	pokemon := player.GetActivePokemon()
	if !pokemon.Alive() || pokemon.Hp.Value == pokemon.MaxHp {
		return nil, nil
	}

	return []StateEvent{HealEvent{PlayerIndex: event.PlayerIndex, Heal: heal}}, []string{"The wish came true!"}
}

// HazardEvent lays an entry hazard on the given player's side.
type HazardEvent struct {
	PlayerIndex int
	Hazard      string
}

func (event HazardEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player := gameState.GetPlayer(event.PlayerIndex)

	switch event.Hazard {
	case "stealth-rock":
		player.Hazards.StealthRock = true
		return nil, []string{fmt.Sprintf("Pointed stones float in the air around %s's team!", player.Name)}
	case "sticky-web":
		player.Hazards.StickyWeb = true
		return nil, []string{fmt.Sprintf("A sticky web spreads out on the ground around %s's team!", player.Name)}
	}

	return nil, nil
}

type ClearHazardsEvent struct {
	PlayerIndex int
}

func (event ClearHazardsEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player := gameState.GetPlayer(event.PlayerIndex)
	if !player.Hazards.Any() {
		return nil, nil
	}

	player.Hazards = Hazards{}
	return nil, []string{fmt.Sprintf("The hazards around %s's team disappeared!", player.Name)}
}

// entryHazardEvents are the effects of the hazards on a player's side hitting their newly switched in pokemon.
func entryHazardEvents(gameState *GameState, playerIndex int) []StateEvent {
	player := gameState.GetPlayer(playerIndex)
	pokemon := player.GetActivePokemon()

	if !player.Hazards.Any() || pokemon.Item == ITEM_HEAVY_DUTY_BOOTS || pokemon.Ability.Name == "magic-guard" {
		return nil
	}

	events := make([]StateEvent, 0, 3)

	if player.Hazards.StealthRock {
		type1, type2 := pokemon.Types()
		effectiveness := TypeMultiplier(TYPENAME_ROCK, type1, type2)
		damage := uint(float64(pokemon.MaxHp) * effectiveness / 8)

		events = append(events,
			NewFmtMessageEvent("Pointed stones dug into %s!", pokemon.Name()),
			DamageEvent{PlayerIndex: playerIndex, Damage: max(1, damage), SupressMessage: true},
		)
	}

	grounded := !pokemon.HasType(&TYPE_FLYING) && pokemon.Ability.Name != "levitate"
	if player.Hazards.StickyWeb && grounded {
		events = append(events,
			NewFmtMessageEvent("%s was caught in a sticky web!", pokemon.Name()),
			NewStatChangeEvent(playerIndex, STAT_SPEED, -1, 100),
		)
	}

	return events
}
