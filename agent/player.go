package agent

import (
	"errors"
	"fmt"
	"slices"

	"github.com/nathanieltooley/pokearena/golurk"
)

var ErrUnknownAgent = errors.New("unknown agent kind")

// Player chooses an order for its side each time the battle needs one.
// ChooseMove never fails: an order the battle can't accept is replaced by the arena.
type Player interface {
	Name() string
	ChooseMove(battle *Battle) golurk.Action
}

const (
	KIND_RANDOM             = "random"
	KIND_HIT_HARD_OR_SWITCH = "hit_hard_or_switch"
	KIND_COOPER             = "cooper"
	KIND_SMART              = "smart"
	KIND_MAX_BASE_POWER     = "max_base_power"
)

// Options configure a player made by New. Zero values fall back to the kind's defaults.
type Options struct {
	Username string
	// Only used by hit_hard_or_switch; nil means DEFAULT_BASELINE
	Baseline *float64
}

var kinds = map[string]func(Options) Player{
	KIND_RANDOM: func(opts Options) Player {
		return &RandomPlayer{Username: opts.Username}
	},
	KIND_HIT_HARD_OR_SWITCH: func(opts Options) Player {
		return &HitHardOrSwitchPlayer{Username: opts.Username, Baseline: opts.Baseline}
	},
	KIND_COOPER: func(opts Options) Player {
		cooper := NewCooper()
		if opts.Username != "" {
			cooper.username = opts.Username
		}
		return cooper
	},
	KIND_SMART: func(opts Options) Player {
		return &SmartPlayer{Username: opts.Username}
	},
	KIND_MAX_BASE_POWER: func(opts Options) Player {
		return &MaxBasePowerPlayer{Username: opts.Username}
	},
}

// New makes a player of the given kind.
func New(kind string, opts Options) (Player, error) {
	newPlayer, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known kinds: %v)", ErrUnknownAgent, kind, Kinds())
	}

	return newPlayer(opts), nil
}

// Kinds lists every kind New knows.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func usernameOr(username string, fallback string) string {
	if username == "" {
		return fallback
	}

	return username
}

// RandomPlayer picks uniformly between every legal order.
type RandomPlayer struct {
	Username string
}

func (p *RandomPlayer) Name() string {
	return usernameOr(p.Username, "RandomPlayer")
}

func (p *RandomPlayer) ChooseMove(battle *Battle) golurk.Action {
	return battle.RandomOrder()
}

// SmartPlayer plays the engine's own AI.
type SmartPlayer struct {
	Username string
}

func (p *SmartPlayer) Name() string {
	return usernameOr(p.Username, "SmartPlayer")
}

func (p *SmartPlayer) ChooseMove(battle *Battle) golurk.Action {
	return golurk.BestAiAction(battle.State(), battle.PlayerID)
}

// MaxBasePowerPlayer always uses its highest base power move, falling back to a random order.
type MaxBasePowerPlayer struct {
	Username string
}

func (p *MaxBasePowerPlayer) Name() string {
	return usernameOr(p.Username, "MaxBasePowerPlayer")
}

func (p *MaxBasePowerPlayer) ChooseMove(battle *Battle) golurk.Action {
	if len(battle.AvailableMoves) == 0 {
		return battle.RandomOrder()
	}

	best := battle.AvailableMoves[0]
	for _, move := range battle.AvailableMoves[1:] {
		if move.Move.Power > best.Move.Power {
			best = move
		}
	}

	return battle.MoveOrder(best.Index)
}
