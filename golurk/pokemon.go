package golurk

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// BasePokemon is the pokedex entry of a species: its types and base stats.
type BasePokemon struct {
	PokedexNumber uint
	Name          string
	Type1         *PokemonType
	Type2         *PokemonType
	Hp            uint
	Attack        uint
	Def           uint
	SpAttack      uint
	SpDef         uint
	Speed         uint
}

// Stat is one of a Pokemon's non-HP stats with its current stage modifier.
type Stat struct {
	RawValue uint
	Ev       uint
	Iv       uint
	Stage    int `json:"-"`
}

// HpStat has no stage since HP can't be boosted.
type HpStat struct {
	Value uint
	Ev    uint
	Iv    uint
}

// CalcValue is the stat after its stage multiplier.
func (s Stat) CalcValue() int {
	return int(float32(s.RawValue) * StageMultipliers[s.Stage])
}

// ChangeStat moves the stage by change, clamped to [-6, 6].
func (s *Stat) ChangeStat(change int) {
	s.Stage = clampStage(s.Stage + change)
}

type Nature struct {
	Name          string
	StatModifiers [5]float32
}

type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// Pokemon is a team member. Fields tagged `json:"-"` only live for the length of a battle.
type Pokemon struct {
	Base     *BasePokemon
	Nickname string
	Gender   string
	Level    uint
	Hp       HpStat
	MaxHp    uint
	Attack   Stat
	Def      Stat
	SpAttack Stat
	SpDef    Stat
	RawSpeed Stat
	Moves    [4]Move
	Nature   Nature
	Ability  Ability
	Item     string

	BattleType         *PokemonType  `json:"-"`
	Status             int           `json:"-"`
	ConfusionCount     int           `json:"-"`
	ToxicCount         int           `json:"-"`
	SleepCount         int           `json:"-"`
	CanAttackThisTurn  bool          `json:"-"`
	SwitchedInThisTurn bool          `json:"-"`
	CritStage          int           `json:"-"`
	AccuracyStage      int           `json:"-"`
	EvasionStage       int           `json:"-"`
	InGameMoveInfo     [4]BattleMove `json:"-"`
	// index of the move a choice item locked this pokemon into, -1 for none
	ChoiceLockedMove int  `json:"-"`
	SubstituteHp     uint `json:"-"`
	Protected        bool `json:"-"`
	// consecutive successful protects, each one after the first is less likely to work
	ProtectCount int `json:"-"`
	// full turns spent on the field since the last switch in
	TurnsOut  int  `json:"-"`
	FlashFire bool `json:"-"`
}

// Init readies a pokemon for battle: full health, full PP and no battle-only state.
func (p *Pokemon) Init() {
	p.ReCalcStats()
	p.Hp.Value = p.MaxHp

	for i, move := range p.Moves {
		p.InGameMoveInfo[i] = BattleMove{Info: move, PP: move.PP}
	}

	p.ResetBattleState()
	p.Status = STATUS_NONE
}

// ResetBattleState clears everything that goes away when a pokemon leaves the field.
func (p *Pokemon) ResetBattleState() {
	p.Attack.Stage = 0
	p.Def.Stage = 0
	p.SpAttack.Stage = 0
	p.SpDef.Stage = 0
	p.RawSpeed.Stage = 0
	p.CritStage = 0
	p.AccuracyStage = 0
	p.EvasionStage = 0

	p.BattleType = nil
	p.ConfusionCount = 0
	p.ChoiceLockedMove = -1
	p.SubstituteHp = 0
	p.Protected = false
	p.ProtectCount = 0
	p.TurnsOut = 0
	p.FlashFire = false
	p.CanAttackThisTurn = true
}

func (p Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	if p.Base == nil {
		return ""
	}

	return p.Base.Name
}

func (p Pokemon) IsNil() bool {
	return p.Base == nil
}

func (p Pokemon) Alive() bool {
	return p.Hp.Value > 0
}

// Types returns the pokemon's current types, the second being nil for mono-types.
func (p Pokemon) Types() (*PokemonType, *PokemonType) {
	if p.BattleType != nil {
		return p.BattleType, nil
	}

	return p.Base.Type1, p.Base.Type2
}

func (p Pokemon) HasType(pokemonType *PokemonType) bool {
	type1, type2 := p.Types()

	if type1 != nil && type1.Name == pokemonType.Name {
		return true
	}

	return type2 != nil && type2.Name == pokemonType.Name
}

// DefenseEffectiveness is the multiplier an attack of attackType does to this pokemon.
func (p Pokemon) DefenseEffectiveness(attackType *PokemonType) float64 {
	type1, type2 := p.Types()
	return TypeMultiplier(attackType.Name, type1, type2)
}

func (p *Pokemon) ReCalcStats() {
	hpNumerator := (2*p.Base.Hp + p.Hp.Iv + (p.Hp.Ev / 4)) * p.Level
	p.MaxHp = (hpNumerator / 100) + p.Level + 10

	p.Attack.RawValue = calcStat(p.Base.Attack, p.Level, p.Attack.Iv, p.Attack.Ev, p.Nature.StatModifiers[0])
	p.Def.RawValue = calcStat(p.Base.Def, p.Level, p.Def.Iv, p.Def.Ev, p.Nature.StatModifiers[1])
	p.SpAttack.RawValue = calcStat(p.Base.SpAttack, p.Level, p.SpAttack.Iv, p.SpAttack.Ev, p.Nature.StatModifiers[2])
	p.SpDef.RawValue = calcStat(p.Base.SpDef, p.Level, p.SpDef.Iv, p.SpDef.Ev, p.Nature.StatModifiers[3])
	p.RawSpeed.RawValue = calcStat(p.Base.Speed, p.Level, p.RawSpeed.Iv, p.RawSpeed.Ev, p.Nature.StatModifiers[4])
}

func (p Pokemon) GetCurrentEvTotal() int {
	return int(p.Hp.Ev) + int(p.Attack.Ev) + int(p.Def.Ev) + int(p.SpAttack.Ev) + int(p.SpDef.Ev) + int(p.RawSpeed.Ev)
}

func (p *Pokemon) Damage(dmg uint) {
	if dmg >= p.Hp.Value {
		p.Hp.Value = 0
		return
	}

	p.Hp.Value -= dmg
}

func (p *Pokemon) Heal(heal uint) {
	p.Hp.Value = min(p.MaxHp, p.Hp.Value+heal)
}

func (p *Pokemon) HealPerc(heal float64) {
	healAmount := math.Ceil(float64(p.MaxHp) * heal)
	p.Heal(uint(healAmount))
}

// PercentOfMax is the fraction of max HP the given amount is.
func (p Pokemon) PercentOfMax(amount uint) float64 {
	if p.MaxHp == 0 {
		return 0
	}

	return float64(amount) / float64(p.MaxHp)
}

func (p Pokemon) Speed(weather int) int {
	calcedSpeed := p.RawSpeed.CalcValue()

	if p.Status == STATUS_PARA {
		calcedSpeed = calcedSpeed / 2
	}

	switch {
	case p.Ability.Name == "swift-swim" && weather == WEATHER_RAIN,
		p.Ability.Name == "chlorophyll" && weather == WEATHER_SUN,
		p.Ability.Name == "sand-rush" && weather == WEATHER_SANDSTORM:
		calcedSpeed = calcedSpeed * 2
	}

	if p.Item == ITEM_CHOICE_SCARF {
		calcedSpeed = int(float64(calcedSpeed) * 1.5)
	}

	return calcedSpeed
}

// CritChance is the chance for this pokemon to crit with a move that has the given crit rate bonus.
func (p Pokemon) CritChance(bonus int) float32 {
	stage := max(0, p.CritStage+bonus)
	if stage >= len(critStageChances) {
		return 1
	}

	return critStageChances[stage]
}

func (p *Pokemon) ChangeEvasion(change int) {
	p.EvasionStage = clampStage(p.EvasionStage + change)
}

func (p Pokemon) Evasion() float32 {
	return evasivenessStageMult[p.EvasionStage]
}

func (p *Pokemon) ChangeAccuracy(change int) {
	p.AccuracyStage = clampStage(p.AccuracyStage + change)
}

func (p Pokemon) Accuracy() float32 {
	return accuracyStageMult[p.AccuracyStage]
}

// UsableMoves returns the indices of moves this pokemon can select right now.
// An empty result means the pokemon can only struggle.
func (p Pokemon) UsableMoves() []int {
	usable := make([]int, 0, len(p.Moves))

	lock := p.ChoiceLockedMove
	if !IsChoiceItem(p.Item) {
		lock = -1
	}

	for i, move := range p.Moves {
		if move.IsNil() || p.InGameMoveInfo[i].PP <= 0 {
			continue
		}

		if lock >= 0 && lock != i {
			continue
		}

		usable = append(usable, i)
	}

	return usable
}

// HighestStat is the name of the largest non-HP stat, ties going to the earlier stat.
func (p Pokemon) HighestStat() string {
	values := [5]uint{p.Attack.RawValue, p.Def.RawValue, p.SpAttack.RawValue, p.SpDef.RawValue, p.RawSpeed.RawValue}

	best := 0
	for i, value := range values {
		if value > values[best] {
			best = i
		}
	}

	return statOrder[best+1]
}

func CreateEVSpread(hp uint, attack uint, def uint, spAttack uint, spDef uint, speed uint) ([6]uint, error) {
	evs := [6]uint{hp, attack, def, spAttack, spDef, speed}

	var total uint
	for i, ev := range evs {
		if ev > MAX_EV {
			return evs, fmt.Errorf("%s EVs (%d) are greater than %d", statOrder[i], ev, MAX_EV)
		}
		total += ev
	}

	if total > MAX_TOTAL_EV {
		return evs, fmt.Errorf("stat total (%d) is greater than the max allowed: %d", total, MAX_TOTAL_EV)
	}

	return evs, nil
}

func CreateIVSpread(hp uint, attack uint, def uint, spAttack uint, spDef uint, speed uint) ([6]uint, error) {
	ivs := [6]uint{hp, attack, def, spAttack, spDef, speed}

	for i, iv := range ivs {
		if iv > MAX_IV {
			return ivs, fmt.Errorf("%s IVs (%d) are greater than %d", statOrder[i], iv, MAX_IV)
		}
	}

	return ivs, nil
}

var ErrNoStat = errors.New("no such stat")

var statOrder = [6]string{"hp", STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED}

// StatIndex maps a stat name to its position in EV and IV spreads.
func StatIndex(name string) (int, error) {
	index := slices.Index(statOrder[:], name)
	if index < 0 {
		return index, fmt.Errorf("%w: %s", ErrNoStat, name)
	}

	return index, nil
}

func calcStat(baseValue uint, level uint, iv uint, ev uint, natureMod float32) uint {
	statValue := (2*baseValue+iv+(ev/4))*level/100 + 5

	// integer math so .9 natures don't round down an extra point
	switch {
	case natureMod > 1:
		statValue = statValue * 110 / 100
	case natureMod < 1:
		statValue = statValue * 90 / 100
	}

	return statValue
}

func clampStage(stage int) int {
	return max(MIN_STAGE, min(MAX_STAGE, stage))
}
