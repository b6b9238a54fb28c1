package golurk

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510
	MAX_LEVEL    = 100
	MAX_STAGE    = 6
	MIN_STAGE    = -6
)

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

const (
	STATUS_NONE = iota
	STATUS_BURN
	STATUS_PARA
	STATUS_SLEEP
	STATUS_FROZEN
	STATUS_POISON
	STATUS_TOXIC
)

const (
	WEATHER_NONE = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
)

const (
	EFFECT_CONFUSION = iota
)

const (
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
	STAT_ACCURACY = "accuracy"
	STAT_EVASION  = "evasion"
)

// Move targets that decide who a status move or stat change lands on
const (
	TARGET_USER            = "user"
	TARGET_USERS_FIELD     = "users-field"
	TARGET_OPPONENTS_FIELD = "opponents-field"
	TARGET_ENTIRE_FIELD    = "entire-field"
)

var SOUND_MOVES = []string{
	"growl",
	"roar",
	"sing",
	"supersonic",
	"screech",
	"snore",
	"perish-song",
	"heal-bell",
	"uproar",
	"hyper-voice",
	"metal-sound",
	"grass-whistle",
	"howl",
	"bug-buzz",
	"chatter",
	"round",
	"echoed-voice",
	"relic-song",
	"snarl",
	"noble-roar",
	"disarming-voice",
	"parting-shot",
	"boomburst",
	"confide",
	"sparkling-aria",
	"clanging-scales",
	"clangorous-soul",
	"overdrive",
	"eerie-spell",
	"torch-song",
	"alluring-voice",
	"psychic-noise",
}

var PUNCH_MOVES = []string{
	"bullet-punch",
	"comet-punch",
	"dizzy-punch",
	"double-iron-bash",
	"drain-punch",
	"dynamic-punch",
	"fire-punch",
	"focus-punch",
	"hammer-arm",
	"ice-hammer",
	"ice-punch",
	"mach-punch",
	"mega-punch",
	"meteor-mash",
	"power-up-punch",
	"shadow-punch",
	"sky-uppercut",
	"thunder-punch",
}

var EXPLOSIVE_MOVES = []string{
	"self-destruct",
	"explosion",
	"misty-explosion",
}

var StageMultipliers = map[int]float32{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

// indexed by crit stage, anything past the end always crits
var critStageChances = [...]float32{
	1.0 / 24.0,
	1.0 / 8.0,
	1.0 / 2.0,
}

var evasivenessStageMult = map[int]float32{
	-6: 9.0 / 3.0,
	-5: 8.0 / 3.0,
	-4: 7.0 / 3.0,
	-3: 6.0 / 3.0,
	-2: 5.0 / 3.0,
	-1: 4.0 / 3.0,
	0:  1,
	1:  3.0 / 4.0,
	2:  3.0 / 5.0,
	3:  3.0 / 6.0,
	4:  3.0 / 7.0,
	5:  3.0 / 8.0,
	6:  3.0 / 9.0,
}

var accuracyStageMult = map[int]float32{
	6:  9.0 / 3.0,
	5:  8.0 / 3.0,
	4:  7.0 / 3.0,
	3:  6.0 / 3.0,
	2:  5.0 / 3.0,
	1:  4.0 / 3.0,
	0:  1,
	-1: 3.0 / 4.0,
	-2: 3.0 / 5.0,
	-3: 3.0 / 6.0,
	-4: 3.0 / 7.0,
	-5: 3.0 / 8.0,
	-6: 3.0 / 9.0,
}

// Nature modifiers are ordered attack, defense, special attack, special defense, speed

var NATURE_HARDY = Nature{"Hardy", [5]float32{1, 1, 1, 1, 1}}
var NATURE_DOCILE = Nature{"Docile", [5]float32{1, 1, 1, 1, 1}}
var NATURE_BASHFUL = Nature{"Bashful", [5]float32{1, 1, 1, 1, 1}}
var NATURE_QUIRKY = Nature{"Quirky", [5]float32{1, 1, 1, 1, 1}}
var NATURE_SERIOUS = Nature{"Serious", [5]float32{1, 1, 1, 1, 1}}

var NATURE_BOLD = Nature{"Bold", [5]float32{.9, 1.1, 1, 1, 1}}
var NATURE_MODEST = Nature{"Modest", [5]float32{.9, 1, 1.1, 1, 1}}
var NATURE_CALM = Nature{"Calm", [5]float32{.9, 1, 1, 1.1, 1}}
var NATURE_TIMID = Nature{"Timid", [5]float32{.9, 1, 1, 1, 1.1}}

var NATURE_LONELY = Nature{"Lonely", [5]float32{1.1, .9, 1, 1, 1}}
var NATURE_MILD = Nature{"Mild", [5]float32{1, .9, 1.1, 1, 1}}
var NATURE_GENTLE = Nature{"Gentle", [5]float32{1, .9, 1, 1.1, 1}}
var NATURE_HASTY = Nature{"Hasty", [5]float32{1, .9, 1, 1, 1.1}}

var NATURE_ADAMANT = Nature{"Adamant", [5]float32{1.1, 1, .9, 1, 1}}
var NATURE_IMPISH = Nature{"Impish", [5]float32{1, 1.1, .9, 1, 1}}
var NATURE_CAREFUL = Nature{"Careful", [5]float32{1, 1, .9, 1.1, 1}}
var NATURE_JOLLY = Nature{"Jolly", [5]float32{1, 1, .9, 1, 1.1}}

var NATURE_NAUGHTY = Nature{"Naughty", [5]float32{1.1, 1, 1, .9, 1}}
var NATURE_LAX = Nature{"Lax", [5]float32{1, 1.1, 1, .9, 1}}
var NATURE_RASH = Nature{"Rash", [5]float32{1, 1, 1.1, .9, 1}}
var NATURE_NAIVE = Nature{"Naive", [5]float32{1, 1, 1, .9, 1.1}}

var NATURE_BRAVE = Nature{"Brave", [5]float32{1.1, 1, 1, 1, .9}}
var NATURE_RELAXED = Nature{"Relaxed", [5]float32{1, 1.1, 1, 1, .9}}
var NATURE_QUIET = Nature{"Quiet", [5]float32{1, 1, 1.1, 1, .9}}
var NATURE_SASSY = Nature{"Sassy", [5]float32{1, 1, 1, 1.1, .9}}

var NATURES = [...]Nature{
	NATURE_HARDY,
	NATURE_DOCILE,
	NATURE_BASHFUL,
	NATURE_QUIRKY,
	NATURE_SERIOUS,
	NATURE_BOLD,
	NATURE_MODEST,
	NATURE_CALM,
	NATURE_TIMID,
	NATURE_LONELY,
	NATURE_MILD,
	NATURE_GENTLE,
	NATURE_HASTY,
	NATURE_ADAMANT,
	NATURE_IMPISH,
	NATURE_CAREFUL,
	NATURE_JOLLY,
	NATURE_NAUGHTY,
	NATURE_LAX,
	NATURE_RASH,
	NATURE_NAIVE,
	NATURE_BRAVE,
	NATURE_RELAXED,
	NATURE_QUIET,
	NATURE_SASSY,
}
