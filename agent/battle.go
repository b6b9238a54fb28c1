// Package agent holds the scripted players that pick an order for their side every turn.
package agent

import (
	"math/rand/v2"

	"github.com/nathanieltooley/pokearena/golurk"
)

// AvailableMove is a move the active pokemon can select, with its slot on the pokemon.
type AvailableMove struct {
	Index int
	Move  golurk.Move
}

// Battle is one side's view of the game at the moment it has to choose an order.
// It is built from a copy of the game state, so agents can't change the real battle.
type Battle struct {
	PlayerID int
	Turn     int
	Weather  int

	Active         golurk.Pokemon
	OpponentActive golurk.Pokemon

	AvailableMoves    []AvailableMove
	AvailableSwitches []int
	// the active pokemon fainted and only switches are allowed
	ForceSwitch bool

	Rng *rand.Rand

	state *golurk.GameState
}

func NewBattle(gameState *golurk.GameState, playerID int, rng *rand.Rand) *Battle {
	stateCopy := gameState.Clone()

	player := stateCopy.GetPlayer(playerID)
	opponent := stateCopy.GetPlayer(golurk.InvertPlayerIndex(playerID))
	active := player.GetActivePokemon()

	battle := &Battle{
		PlayerID:          playerID,
		Turn:              stateCopy.Turn,
		Weather:           stateCopy.Weather,
		Active:            *active,
		OpponentActive:    *opponent.GetActivePokemon(),
		AvailableSwitches: player.AvailableSwitches(),
		ForceSwitch:       !active.Alive(),
		Rng:               rng,
		state:             &stateCopy,
	}

	for _, i := range player.AvailableMoves() {
		battle.AvailableMoves = append(battle.AvailableMoves, AvailableMove{Index: i, Move: active.Moves[i]})
	}

	return battle
}

// State is the copy of the game the view was built from.
func (b *Battle) State() *golurk.GameState {
	return b.state
}

// MoveOrder uses the move in the given slot of the active pokemon.
func (b *Battle) MoveOrder(moveIndex int) golurk.Action {
	return golurk.NewAttackAction(b.PlayerID, moveIndex)
}

// SwitchOrder switches to the given team member.
func (b *Battle) SwitchOrder(teamIndex int) golurk.Action {
	return golurk.NewSwitchAction(b.state, b.PlayerID, teamIndex)
}

// StruggleOrder is the only order left when the active pokemon has no usable moves and there is nobody to switch to.
func (b *Battle) StruggleOrder() golurk.Action {
	return golurk.NewAttackAction(b.PlayerID, -1)
}

// RandomOrder picks uniformly between every legal move and switch.
func (b *Battle) RandomOrder() golurk.Action {
	orders := make([]golurk.Action, 0, len(b.AvailableMoves)+len(b.AvailableSwitches))

	if !b.ForceSwitch {
		for _, move := range b.AvailableMoves {
			orders = append(orders, b.MoveOrder(move.Index))
		}
	}

	for _, i := range b.AvailableSwitches {
		orders = append(orders, b.SwitchOrder(i))
	}

	if len(orders) == 0 {
		if b.ForceSwitch {
			return golurk.NewSkipAction(b.PlayerID)
		}

		return b.StruggleOrder()
	}

	return orders[b.Rng.IntN(len(orders))]
}
