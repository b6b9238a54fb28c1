package golurk

import "slices"

type Target struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// MetaResource is a followed pokeapi resource, trimmed to what the engine needs.
type MetaResource struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type StatChange struct {
	Change   int    `json:"change"`
	StatName string `json:"stat_name"`
}

// For values that are pointers, they are nullable
type MoveMeta struct {
	Ailment       MetaResource `json:"ailment"`
	AilmentChance int          `json:"ailment_chance"`
	FlinchChance  int          `json:"flinch_chance"`
	StatChance    int          `json:"stat_chance"`
	Category      MetaResource `json:"category"`

	// Null means always hits once
	MinHits *int `json:"min_hits"`
	// Null means always hits once
	MaxHits *int `json:"max_hits"`

	// Positive drains are healing, negative drains are recoil
	Drain         int `json:"drain"`
	Healing       int `json:"healing"`
	CritRateBonus int `json:"crit_rate"`
}

type Move struct {
	// 0 means the move never misses
	Accuracy    int          `json:"accuracy"`
	DamageClass string       `json:"damage_class"`
	Meta        MoveMeta     `json:"meta"`
	Name        string       `json:"name"`
	Power       int          `json:"power"`
	PP          int          `json:"pp"`
	Priority    int          `json:"priority"`
	StatChanges []StatChange `json:"stat_changes"`
	Target      Target       `json:"target"`
	Type        string       `json:"type"`
}

func (m Move) IsNil() bool {
	return m.Name == ""
}

// IsDamaging reports whether the move deals direct damage.
func (m Move) IsDamaging() bool {
	return m.DamageClass != DAMAGETYPE_STATUS && m.DamageClass != ""
}

// TargetsUserSide is true for moves that never touch the opposing pokemon and so go through protect and substitutes.
func (m Move) TargetsUserSide() bool {
	return m.Target.Name == TARGET_USER || m.Target.Name == TARGET_USERS_FIELD
}

func (m Move) IsSound() bool {
	return slices.Contains(SOUND_MOVES, m.Name)
}

func (m Move) IsPunch() bool {
	return slices.Contains(PUNCH_MOVES, m.Name)
}

// HitRange is the min and max number of times the move strikes.
func (m Move) HitRange() (int, int) {
	minHits, maxHits := 1, 1
	if m.Meta.MinHits != nil {
		minHits = *m.Meta.MinHits
	}
	if m.Meta.MaxHits != nil {
		maxHits = *m.Meta.MaxHits
	}

	return minHits, max(minHits, maxHits)
}

type BattleMove struct {
	Info Move
	PP   int
}

var STATUS_NAME_MAP = map[string]int{
	"paralysis": STATUS_PARA,
	"sleep":     STATUS_SLEEP,
	"freeze":    STATUS_FROZEN,
	"burn":      STATUS_BURN,
	"poison":    STATUS_POISON,
}

var EFFECT_NAME_MAP = map[string]int{
	"confusion": EFFECT_CONFUSION,
}

var struggleMove = Move{
	Accuracy:    0,
	DamageClass: DAMAGETYPE_PHYSICAL,
	Meta: MoveMeta{
		Category: MetaResource{Name: "damage"},
		Drain:    -25,
	},
	Power:  50,
	Target: Target{Name: "selected-pokemon"},
	Type:   TYPENAME_TYPELESS,
	Name:   "struggle",
}

// StruggleMove is used when a pokemon has nothing else it can select.
func StruggleMove() Move {
	return struggleMove
}
