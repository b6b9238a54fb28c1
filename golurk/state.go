package golurk

import (
	"math/rand/v2"
	"slices"
)

// plus 1 so the zero value is never a valid player
const (
	HOST = iota + 1
	PEER
)

// Renamed HOST and PEER constants
const (
	PLAYER = iota + 1
	AI
)

type GameState struct {
	HostPlayer   Player
	ClientPlayer Player
	Turn         int
	Weather      int
	// turns left before the weather clears, 0 for weather that never ends on its own
	WeatherTurns int
	// Weather suppressed by cloud-nine or air-lock, restored once they leave the field
	DisabledWeather int
	// An RngSource is stored here directly instead of inside an instance of rand.Rand.
	// Copying the state copies the source, so a clone replays the exact same rolls.
	RngSource rand.PCG

	MessageHistory []string
}

// Hazards are entry hazards laid on a player's side of the field.
type Hazards struct {
	StealthRock bool
	StickyWeb   bool
}

func (h Hazards) Any() bool {
	return h.StealthRock || h.StickyWeb
}

type Player struct {
	Name            string
	Team            []Pokemon
	ActivePokeIndex int

	// Whether the player's active pokemon was ko'ed this turn.
	// This is separate from ActivePokemon.Alive() since it has to survive the replacement switching in.
	ActiveKOed bool

	Hazards Hazards

	// WishTurns counts down to the turn a pending wish heals whoever is active
	WishTurns int
	WishHeal  uint
}

func (p Player) Lost() bool {
	for _, pokemon := range p.Team {
		if pokemon.Alive() {
			return false
		}
	}

	return true
}

func (g *GameState) GetPlayer(index int) *Player {
	if index == HOST {
		return &g.HostPlayer
	}

	return &g.ClientPlayer
}

// GameOver returns the player who lost, 0 when both lost at once (a tie), or -1 if the game should continue.
func (g *GameState) GameOver() int {
	hostLoss := g.HostPlayer.Lost()
	peerLoss := g.ClientPlayer.Lost()

	switch {
	case hostLoss && peerLoss:
		return 0
	case hostLoss:
		return HOST
	case peerLoss:
		return PEER
	}

	return -1
}

// Clone creates a copy of this state, handling new slice creation and allocation
func (g GameState) Clone() GameState {
	newState := g
	newState.HostPlayer.Team = slices.Clone(g.HostPlayer.Team)
	newState.ClientPlayer.Team = slices.Clone(g.ClientPlayer.Team)
	newState.MessageHistory = slices.Clone(g.MessageHistory)

	return newState
}

func (g *GameState) CreateRng() *rand.Rand {
	return rand.New(&g.RngSource)
}

// CreateNewRng creates a new COPY of RngSource such that RNG calls to the copy
// do not affect the original
func (g *GameState) CreateNewRng() *rand.Rand {
	source := g.RngSource
	return rand.New(&source)
}

// AbilityInPlay reports whether either active pokemon has the ability.
func (g *GameState) AbilityInPlay(ability string) bool {
	return g.HostPlayer.GetActivePokemon().Ability.Name == ability || g.ClientPlayer.GetActivePokemon().Ability.Name == ability
}

func (p Player) GetActivePokemon() *Pokemon {
	return p.GetPokemon(p.ActivePokeIndex)
}

// GetPokemon gets a player's pokemon at some index
func (p Player) GetPokemon(index int) *Pokemon {
	return &p.Team[index]
}

func (p Player) GetAllAlivePokemon() []*Pokemon {
	alivePokemon := make([]*Pokemon, 0)

	for i, pokemon := range p.Team {
		if pokemon.Alive() {
			// pointer into the team slice, the loop var is a copy
			alivePokemon = append(alivePokemon, &p.Team[i])
		}
	}

	return alivePokemon
}

// AvailableMoves lists the move indices the active pokemon may select. Empty while
// the active pokemon is fainted, and also when its only option is to struggle.
func (p Player) AvailableMoves() []int {
	active := p.GetActivePokemon()
	if !active.Alive() {
		return nil
	}

	return active.UsableMoves()
}

// MustStruggle is true when the active pokemon is alive but has no selectable moves.
func (p Player) MustStruggle() bool {
	active := p.GetActivePokemon()
	return active.Alive() && len(active.UsableMoves()) == 0
}

// AvailableSwitches lists the team indices that can be switched in.
func (p Player) AvailableSwitches() []int {
	switches := make([]int, 0, len(p.Team))

	for i, pokemon := range p.Team {
		if i != p.ActivePokeIndex && pokemon.Alive() {
			switches = append(switches, i)
		}
	}

	return switches
}

func NewState(localTeam []Pokemon, opposingTeam []Pokemon, seed rand.PCG) GameState {
	// Make sure pokemon are inited correctly
	for i := range localTeam {
		localTeam[i].Init()
	}

	for i := range opposingTeam {
		opposingTeam[i].Init()
	}

	localPlayer := Player{
		Name: "Local",
		Team: localTeam,
	}
	opposingPlayer := Player{
		Name: "Opponent",
		Team: opposingTeam,
	}

	return GameState{
		HostPlayer:   localPlayer,
		ClientPlayer: opposingPlayer,
		Turn:         0,
		RngSource:    seed,
	}
}

func InvertPlayerIndex(initial int) int {
	if initial == HOST {
		return PEER
	}

	return HOST
}

// getPlayerPair returns both the player with the given index as the first value and the opposing player as the second value
func getPlayerPair(gameState *GameState, activePlayerIndex int) (*Player, *Player) {
	player := gameState.GetPlayer(activePlayerIndex)
	opposingPlayer := gameState.GetPlayer(InvertPlayerIndex(activePlayerIndex))

	return player, opposingPlayer
}
