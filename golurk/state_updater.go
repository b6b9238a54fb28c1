package golurk

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
	RESULT_FORCESWITCH
)

// TurnResult represents the result of a turn or part of a turn (in the case of a force switch)
// Unlike events, TurnResult is a single struct with a tag, Kind, that determines the result.
type TurnResult struct {
	Kind   int
	Events []StateEvent
	// Only used for RESULT_GAMEOVER: the player who lost, 0 when both sides ran out at once
	Loser int
	// Only used for RESULT_FORCESWITCH: every player whose active pokemon fainted and must be replaced
	ForceSwitch []int
}

// ProcessTurn turns the players' actions into the events of a turn. The state itself is only touched
// for bookkeeping (turn counter, fainted flags); the events still have to be applied with ApplyEventsToState.
//
// After a RESULT_FORCESWITCH the next call must only carry switches for the players in ForceSwitch.
func ProcessTurn(gameState *GameState, actions []Action) TurnResult {
	host := &gameState.HostPlayer
	client := &gameState.ClientPlayer

	switches := make([]SwitchAction, 0)
	otherActions := make([]Action, 0)

	events := make([]StateEvent, 0)

	backFromForceSwitch := host.ActiveKOed || client.ActiveKOed

	// Sort different actions
	for _, a := range actions {
		switch a := a.(type) {
		case SwitchAction:
			switches = append(switches, a)
		default:
			otherActions = append(otherActions, a)
		}
	}

	for _, action := range actions {
		internalLogger.V(1).Info("Player Action", "player_id", action.GetCtx().PlayerID, "action_name", reflect.TypeOf(action).Name())
	}

	if backFromForceSwitch {
		internalLogger.V(1).Info("coming back from force switch")

		events = append(events, switchEvents(*gameState, switches)...)

		host.ActiveKOed = false
		client.ActiveKOed = false

		// hazards can knock out the replacement before the turn even starts
		if result, done := checkFainted(gameState, events); done {
			return result
		}

		gameState.Turn++

		return TurnResult{
			Kind:   RESULT_RESOLVED,
			Events: events,
		}
	}

	internalLogger.V(1).Info(fmt.Sprintf("======== TURN %d =========", gameState.Turn))

	events = append(events, TurnStartEvent{})
	events = append(events, switchEvents(*gameState, switches)...)
	events = append(events, actionEvents(*gameState, otherActions)...)
	events = append(events, EndOfTurnEvent{})

	if result, done := checkFainted(gameState, events); done {
		return result
	}

	gameState.Turn++

	return TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	}
}

// checkFainted plays events out on a clone of the state to see whether the game ended or a pokemon fainted.
func checkFainted(gameState *GameState, events []StateEvent) (TurnResult, bool) {
	// we don't want to modify the original state just yet but we need play through what events have already happened
	clonedState := gameState.Clone()
	ApplyEventsToState(&clonedState, TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	})

	if loser := clonedState.GameOver(); loser != -1 {
		internalLogger.V(1).Info("game over", "loser", loser)
		return TurnResult{
			Kind:   RESULT_GAMEOVER,
			Loser:  loser,
			Events: events,
		}, true
	}

	forceSwitch := make([]int, 0, 2)

	if !clonedState.HostPlayer.GetActivePokemon().Alive() {
		gameState.HostPlayer.ActiveKOed = true
		forceSwitch = append(forceSwitch, HOST)
		internalLogger.V(1).Info("host's pokemon has been killed. returning force switch")
	}

	if !clonedState.ClientPlayer.GetActivePokemon().Alive() {
		gameState.ClientPlayer.ActiveKOed = true
		forceSwitch = append(forceSwitch, PEER)
		internalLogger.V(1).Info("client's pokemon has been killed. returning force switch")
	}

	if len(forceSwitch) > 0 {
		return TurnResult{
			Kind:        RESULT_FORCESWITCH,
			ForceSwitch: forceSwitch,
			Events:      events,
		}, true
	}

	return TurnResult{}, false
}

// ApplyEventsToState runs every event of the result against gameState and returns the messages they produced.
// The messages are also appended to the state's MessageHistory.
func ApplyEventsToState(gameState *GameState, result TurnResult) []string {
	eventIter := NewEventIter()
	eventIter.AddEvents(result.Events)

	messages := make([]string, 0)

	for {
		eventMessages, next := eventIter.Next(gameState)
		if !next {
			break
		}

		messages = append(messages, eventMessages...)
	}

	gameState.MessageHistory = append(gameState.MessageHistory, messages...)

	return messages
}

func switchEvents(gameState GameState, switches []SwitchAction) []StateEvent {
	events := make([]StateEvent, 0)

	// Sort switching order by speed
	slices.SortStableFunc(switches, func(a, b SwitchAction) int {
		return cmp.Compare(b.Poke.Speed(gameState.Weather), a.Poke.Speed(gameState.Weather))
	})

	// Process switches first
	lo.ForEach(switches, func(a SwitchAction, i int) {
		events = append(events, a.UpdateState(gameState)...)
	})

	return events
}

// actionPriority returns the priority bracket and speed an action is ordered by.
func actionPriority(gameState *GameState, action Action) (int, int) {
	activePokemon := gameState.GetPlayer(action.GetCtx().PlayerID).GetActivePokemon()
	speed := activePokemon.Speed(gameState.Weather)

	switch a := action.(type) {
	case AttackAction:
		return a.Move(gameState).Priority, speed
	case SkipAction:
		return -100, speed
	default:
		internalLogger.Error(fmt.Errorf("unaccounted for action while trying to sort action"), "", "action_name", reflect.TypeOf(action).Name())
		return 0, speed
	}
}

func actionEvents(gameState GameState, actions []Action) []StateEvent {
	events := make([]StateEvent, 0)

	// Speed ties are broken with a coin flip from a copy of the state's rng so the order is reproducible
	tieBreaker := gameState.CreateNewRng()
	if len(actions) > 1 && tieBreaker.IntN(2) == 1 {
		slices.Reverse(actions)
	}

	// Highest priority then highest speed go first
	slices.SortStableFunc(actions, func(a, b Action) int {
		aPriority, aSpeed := actionPriority(&gameState, a)
		bPriority, bSpeed := actionPriority(&gameState, b)

		internalLogger.V(2).Info("sort debug",
			"aPlayer", a.GetCtx().PlayerID,
			"bPlayer", b.GetCtx().PlayerID,
			"aSpeed", aSpeed,
			"bSpeed", bSpeed,
			"aPriority", aPriority,
			"bPriority", bPriority,
		)

		if priorComp := cmp.Compare(bPriority, aPriority); priorComp != 0 {
			return priorComp
		}

		return cmp.Compare(bSpeed, aSpeed)
	})

	for i, a := range actions {
		switch action := a.(type) {
		case AttackAction:
			// whether the opponent still has a damaging move to use after this one
			action.TargetAttacking = slices.ContainsFunc(actions[i+1:], func(later Action) bool {
				laterAttack, ok := later.(AttackAction)
				return ok && laterAttack.Ctx.PlayerID != action.Ctx.PlayerID && laterAttack.Move(&gameState).IsDamaging()
			})

			internalLogger.V(2).Info("attack state update",
				"attackIndex", i,
				"player_id", action.Ctx.PlayerID,
				"move_index", action.AttackerMove,
			)

			events = append(events, BeforeMoveEvent{
				PlayerIndex:         action.Ctx.PlayerID,
				FollowUpAttackEvent: action.UpdateState(gameState)[0],
			})
		default:
			events = append(events, a.UpdateState(gameState)...)
		}
	}

	return events
}

// endOfTurnEvents are the residual effects for each side, host first.
func endOfTurnEvents(gameState *GameState) []StateEvent {
	events := make([]StateEvent, 0)

	for _, playerIndex := range []int{HOST, PEER} {
		events = append(events, WishTickEvent{PlayerIndex: playerIndex})

		pokemon := gameState.GetPlayer(playerIndex).GetActivePokemon()
		if !pokemon.Alive() {
			continue
		}

		if gameState.Weather == WEATHER_SANDSTORM {
			events = append(events, SandstormDamageEvent{PlayerIndex: playerIndex})
		}

		if pokemon.Item == ITEM_LEFTOVERS {
			events = append(events, ItemEvent{PlayerIndex: playerIndex, ItemName: ITEM_LEFTOVERS})
		}

		switch pokemon.Status {
		case STATUS_BURN:
			events = append(events, BurnEvent{PlayerIndex: playerIndex})
		case STATUS_POISON:
			events = append(events, PoisonEvent{PlayerIndex: playerIndex})
		case STATUS_TOXIC:
			events = append(events, ToxicEvent{PlayerIndex: playerIndex})
		}
	}

	events = append(events, FinalUpdatesEvent{})

	events = append(events, EndOfTurnAbilityCheck{PlayerID: HOST})
	events = append(events, EndOfTurnAbilityCheck{PlayerID: PEER})

	return events
}
