package golurk

import "strings"

const (
	ITEM_CHOICE_BAND       = "choice-band"
	ITEM_CHOICE_SPECS      = "choice-specs"
	ITEM_CHOICE_SCARF      = "choice-scarf"
	ITEM_LIFE_ORB          = "life-orb"
	ITEM_LEFTOVERS         = "leftovers"
	ITEM_FOCUS_SASH        = "focus-sash"
	ITEM_ASSAULT_VEST      = "assault-vest"
	ITEM_SITRUS_BERRY      = "sitrus-berry"
	ITEM_LUM_BERRY         = "lum-berry"
	ITEM_HEAVY_DUTY_BOOTS  = "heavy-duty-boots"
	ITEM_KINGS_ROCK        = "kings-rock"
	ITEM_EJECT_BUTTON      = "eject-button"
	ITEM_THROAT_SPRAY      = "throat-spray"
	ITEM_SAFETY_GOGGLES    = "safety-goggles"
	LIFE_ORB_RECOIL        = 0.1
	LEFTOVERS_HEAL         = 1.0 / 16.0
	SITRUS_BERRY_HEAL      = 0.25
	SITRUS_BERRY_THRESHOLD = 0.5
)

func IsChoiceItem(item string) bool {
	return strings.HasPrefix(item, "choice-")
}

// IsBerry reports whether the item is consumed when it activates.
func IsBerry(item string) bool {
	return strings.HasSuffix(item, "-berry")
}
