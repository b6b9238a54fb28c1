package agent

import (
	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/rs/zerolog/log"
)

const DEFAULT_BASELINE = 75

// MoveScore is how hard a move is expected to hit the opponent's active pokemon:
// base power times type effectiveness times the chance to hit. Moves that can't miss count as always hitting.
func MoveScore(move golurk.Move, opponent golurk.Pokemon) float64 {
	type1, type2 := opponent.Types()
	multiplier := golurk.TypeMultiplier(move.Type, type1, type2)

	accuracy := 1.0
	if move.Accuracy > 0 {
		accuracy = float64(move.Accuracy) / 100
	}

	return float64(move.Power) * multiplier * accuracy
}

// BestMove is the highest scoring available move. Ties keep the earlier move; ok is false when there are no moves.
func BestMove(battle *Battle) (best AvailableMove, score float64, ok bool) {
	for _, move := range battle.AvailableMoves {
		moveScore := MoveScore(move.Move, battle.OpponentActive)
		if !ok || moveScore > score {
			best, score, ok = move, moveScore, true
		}
	}

	return best, score, ok
}

// hitHardOrSwitch attacks with the best move if it clears the baseline, otherwise switches to a random
// team member, otherwise plays a random order.
func hitHardOrSwitch(name string, battle *Battle, baseline float64) golurk.Action {
	best, score, ok := BestMove(battle)
	if ok && score >= baseline {
		log.Debug().
			Str("player", name).
			Str("move", best.Move.Name).
			Float64("score", score).
			Msg("hitting hard")

		return battle.MoveOrder(best.Index)
	}

	if len(battle.AvailableSwitches) > 0 {
		switchIndex := battle.AvailableSwitches[battle.Rng.IntN(len(battle.AvailableSwitches))]

		log.Debug().
			Str("player", name).
			Float64("best_score", score).
			Int("switch_index", switchIndex).
			Msg("no move hits hard enough, switching")

		return battle.SwitchOrder(switchIndex)
	}

	return battle.RandomOrder()
}

// HitHardOrSwitchPlayer attacks when it has a move scoring at least Baseline and switches out otherwise.
// A nil Baseline plays with DEFAULT_BASELINE.
type HitHardOrSwitchPlayer struct {
	Username string
	Baseline *float64
}

func (p *HitHardOrSwitchPlayer) Name() string {
	return usernameOr(p.Username, "HitHardOrSwitchPlayer")
}

func (p *HitHardOrSwitchPlayer) baseline() float64 {
	if p.Baseline == nil {
		return DEFAULT_BASELINE
	}

	return *p.Baseline
}

func (p *HitHardOrSwitchPlayer) ChooseMove(battle *Battle) golurk.Action {
	return hitHardOrSwitch(p.Name(), battle, p.baseline())
}

// Cooper is the main agent. It plays the same way as HitHardOrSwitchPlayer with the baseline fixed at 75.
type Cooper struct {
	username string
}

func NewCooper() *Cooper {
	return &Cooper{username: "cooper"}
}

func (c *Cooper) Name() string {
	return c.username
}

func (c *Cooper) ChooseMove(battle *Battle) golurk.Action {
	return hitHardOrSwitch(c.username, battle, DEFAULT_BASELINE)
}
