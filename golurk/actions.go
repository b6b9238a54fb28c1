package golurk

type Action interface {
	UpdateState(GameState) []StateEvent

	GetCtx() ActionCtx
}

type ActionCtx struct {
	PlayerID int
}

func NewActionCtx(playerID int) ActionCtx {
	return ActionCtx{PlayerID: playerID}
}

type SwitchAction struct {
	Ctx ActionCtx

	SwitchIndex int
	Poke        Pokemon
}

func NewSwitchAction(state *GameState, playerID int, switchIndex int) SwitchAction {
	action := SwitchAction{
		Ctx:         NewActionCtx(playerID),
		SwitchIndex: switchIndex,
	}

	team := state.GetPlayer(playerID).Team
	if switchIndex >= 0 && switchIndex < len(team) {
		action.Poke = team[switchIndex]
	}

	return action
}

func (a SwitchAction) UpdateState(state GameState) []StateEvent {
	return []StateEvent{SwitchEvent{PlayerIndex: a.Ctx.PlayerID, SwitchIndex: a.SwitchIndex}}
}

func (a SwitchAction) GetCtx() ActionCtx {
	return a.Ctx
}

type AttackAction struct {
	Ctx ActionCtx

	// index into the active pokemon's moves, -1 for struggle
	AttackerMove int
	// set while ordering the turn: whether the opponent still has a damaging move to use after this one
	TargetAttacking bool
}

func NewAttackAction(attacker int, attackMove int) AttackAction {
	return AttackAction{
		Ctx:          NewActionCtx(attacker),
		AttackerMove: attackMove,
	}
}

func (a AttackAction) UpdateState(state GameState) []StateEvent {
	return []StateEvent{AttackEvent{AttackerID: a.Ctx.PlayerID, MoveID: a.AttackerMove, TargetAttacking: a.TargetAttacking}}
}

func (a AttackAction) GetCtx() ActionCtx {
	return a.Ctx
}

// Move is the move this action will use against the given state, struggle included.
func (a AttackAction) Move(state *GameState) Move {
	pokemon := state.GetPlayer(a.Ctx.PlayerID).GetActivePokemon()
	if a.AttackerMove < 0 || a.AttackerMove >= len(pokemon.Moves) {
		return struggleMove
	}

	return pokemon.Moves[a.AttackerMove]
}

type SkipAction struct {
	Ctx ActionCtx
}

func NewSkipAction(playerId int) SkipAction {
	return SkipAction{
		Ctx: NewActionCtx(playerId),
	}
}

func (a SkipAction) UpdateState(state GameState) []StateEvent {
	return []StateEvent{
		NewMessageEvent("skip turn"),
	}
}

func (a SkipAction) GetCtx() ActionCtx {
	return a.Ctx
}

// IsLegal reports whether the player could submit this action right now.
// A player waiting on a forced switch may only switch.
func IsLegal(state *GameState, action Action) bool {
	playerID := action.GetCtx().PlayerID
	if playerID != HOST && playerID != PEER {
		return false
	}

	player := state.GetPlayer(playerID)
	mustSwitch := !player.GetActivePokemon().Alive()

	switch a := action.(type) {
	case SwitchAction:
		for _, i := range player.AvailableSwitches() {
			if i == a.SwitchIndex {
				return true
			}
		}

		return false
	case AttackAction:
		if mustSwitch {
			return false
		}

		if a.AttackerMove == -1 {
			return player.MustStruggle()
		}

		for _, i := range player.AvailableMoves() {
			if i == a.AttackerMove {
				return true
			}
		}

		return false
	case SkipAction:
		return !mustSwitch
	}

	return false
}
