// Package arena plays scripted players against each other and tabulates how often each one wins.
package arena

import (
	"context"
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pokearena/agent"
	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/nathanieltooley/pokearena/teambuilder"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DEFAULT_MAX_TURNS = 500

// Entrant is a player together with the team it brings to every battle.
type Entrant struct {
	Player agent.Player
	Team   teambuilder.Teambuilder
	// How many of this entrant's battles may run at once. Anything below 1 counts as 1.
	MaxConcurrentBattles int
}

// BattleRecord is the outcome of one battle. P1 is always the challenger and plays as the host.
type BattleRecord struct {
	ID uuid.UUID
	P1 string
	P2 string
	// empty on a draw
	Winner   string
	Turns    int
	Seed     uint64
	Messages []string
}

func (r BattleRecord) Draw() bool {
	return r.Winner == ""
}

type side struct {
	entrant Entrant
	rng     *rand.Rand
}

// RunBattle plays a full battle between p1 (host) and p2 (peer). Everything random in the battle is drawn
// from seed, so the same seed and players always play the same battle.
//
// The battle ends when one side runs out of pokemon, after maxTurns turns (a draw), or when ctx is cancelled.
func RunBattle(ctx context.Context, p1 Entrant, p2 Entrant, seed uint64, maxTurns int) (BattleRecord, error) {
	if maxTurns <= 0 {
		maxTurns = DEFAULT_MAX_TURNS
	}

	record := BattleRecord{
		ID:   uuid.New(),
		P1:   p1.Player.Name(),
		P2:   p2.Player.Name(),
		Seed: seed,
	}

	logger := log.With().
		Str("battle_id", record.ID.String()).
		Str("p1", record.P1).
		Str("p2", record.P2).
		Logger()

	setupRng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	hostTeam, err := p1.Team.YieldTeam(setupRng)
	if err != nil {
		return record, fmt.Errorf("building %s's team: %w", record.P1, err)
	}

	peerTeam, err := p2.Team.YieldTeam(setupRng)
	if err != nil {
		return record, fmt.Errorf("building %s's team: %w", record.P2, err)
	}

	gameState := golurk.NewState(hostTeam, peerTeam, golurk.StateSeed(setupRng.Uint64(), setupRng.Uint64()))
	gameState.HostPlayer.Name = record.P1
	gameState.ClientPlayer.Name = record.P2

	sides := map[int]side{
		golurk.HOST: {entrant: p1, rng: rand.New(rand.NewPCG(setupRng.Uint64(), setupRng.Uint64()))},
		golurk.PEER: {entrant: p2, rng: rand.New(rand.NewPCG(setupRng.Uint64(), setupRng.Uint64()))},
	}

	// Both leads are sent in before the first real turn
	result := golurk.ProcessTurn(&gameState, []golurk.Action{
		golurk.NewSwitchAction(&gameState, golurk.HOST, gameState.HostPlayer.ActivePokeIndex),
		golurk.NewSwitchAction(&gameState, golurk.PEER, gameState.ClientPlayer.ActivePokeIndex),
	})
	record.Messages = append(record.Messages, golurk.ApplyEventsToState(&gameState, result)...)

	for {
		if err := ctx.Err(); err != nil {
			record.Turns = gameState.Turn
			return record, err
		}

		var choosing []int

		switch result.Kind {
		case golurk.RESULT_GAMEOVER:
			record.Turns = gameState.Turn

			switch result.Loser {
			case golurk.HOST:
				record.Winner = record.P2
			case golurk.PEER:
				record.Winner = record.P1
			}

			logger.Debug().Str("winner", record.Winner).Int("turns", record.Turns).Msg("battle over")
			return record, nil
		case golurk.RESULT_FORCESWITCH:
			choosing = result.ForceSwitch
		default:
			if gameState.Turn > maxTurns {
				record.Turns = gameState.Turn
				logger.Info().Int("max_turns", maxTurns).Msg("battle hit the turn limit, calling it a draw")
				return record, nil
			}

			choosing = []int{golurk.HOST, golurk.PEER}
		}

		actions := make([]golurk.Action, 0, len(choosing))
		for _, playerID := range choosing {
			actions = append(actions, chooseOrder(&gameState, playerID, sides[playerID], logger))
		}

		result = golurk.ProcessTurn(&gameState, actions)
		record.Messages = append(record.Messages, golurk.ApplyEventsToState(&gameState, result)...)
	}
}

// chooseOrder asks a side's player for an order, replacing it with a random legal one if the engine would refuse it.
func chooseOrder(gameState *golurk.GameState, playerID int, s side, logger zerolog.Logger) golurk.Action {
	battle := agent.NewBattle(gameState, playerID, s.rng)
	action := s.entrant.Player.ChooseMove(battle)

	if action == nil || action.GetCtx().PlayerID != playerID || !golurk.IsLegal(gameState, action) {
		logger.Warn().
			Str("player", s.entrant.Player.Name()).
			Int("turn", gameState.Turn).
			Str("action", actionName(action)).
			Msg("player chose an illegal order, picking a random one instead")

		action = battle.RandomOrder()
	}

	return action
}

func actionName(action golurk.Action) string {
	if action == nil {
		return "nil"
	}

	return reflect.TypeOf(action).Name()
}
