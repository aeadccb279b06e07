package actor

// Ench is a status enchantment kind
type Ench uint8

const (
	EnchSlow Ench = iota
	EnchHaste
	EnchConfusion
	EnchInvisible
	EnchPetrifying
	EnchPetrified
	EnchParalysis
	EnchSleep
	EnchBerserk
	EnchFear
	EnchCharm
	EnchMight
	EnchAgility
	EnchWeak
	EnchPoison
	EnchStickyFlame
	EnchCorona
	EnchSentinelMark
	EnchDimensionAnchor
	EnchLowerMR
	EnchPoisonVuln
	EnchSapMagic
	EnchAntimagic
	EnchDance
	EnchInnerFlame
	EnchInfestation
	EnchVileClutch
	EnchResistance
	EnchHeld
	EnchFrozen
	EnchBarbs
	EnchSick
	EnchRegeneration
	EnchCorrosion
	EnchRot
	EnchCount
)

var enchNames = [EnchCount]string{
	EnchSlow:            "slow",
	EnchHaste:           "haste",
	EnchConfusion:       "confusion",
	EnchInvisible:       "invisible",
	EnchPetrifying:      "petrifying",
	EnchPetrified:       "petrified",
	EnchParalysis:       "paralysis",
	EnchSleep:           "sleep",
	EnchBerserk:         "berserk",
	EnchFear:            "fear",
	EnchCharm:           "charm",
	EnchMight:           "might",
	EnchAgility:         "agility",
	EnchWeak:            "weak",
	EnchPoison:          "poison",
	EnchStickyFlame:     "sticky flame",
	EnchCorona:          "corona",
	EnchSentinelMark:    "sentinel mark",
	EnchDimensionAnchor: "dimension anchor",
	EnchLowerMR:         "lowered mr",
	EnchPoisonVuln:      "poison vulnerability",
	EnchSapMagic:        "sap magic",
	EnchAntimagic:       "antimagic",
	EnchDance:           "dancing",
	EnchInnerFlame:      "inner flame",
	EnchInfestation:     "infestation",
	EnchVileClutch:      "vile clutch",
	EnchResistance:      "resistance",
	EnchHeld:            "held",
	EnchFrozen:          "frozen",
	EnchBarbs:           "barbs",
	EnchSick:            "sick",
	EnchRegeneration:    "regeneration",
	EnchCorrosion:       "corrosion",
	EnchRot:             "rot",
}

// String returns the enchantment name
func (e Ench) String() string {
	if e >= EnchCount {
		return "unknown"
	}
	return enchNames[e]
}

// Beneficial reports whether the enchantment helps its bearer
func (e Ench) Beneficial() bool {
	switch e {
	case EnchHaste, EnchInvisible, EnchMight, EnchAgility, EnchResistance, EnchRegeneration, EnchBerserk:
		return true
	}
	return false
}

// Enchantment is an applied status with strength, owner and remaining duration in aut
type Enchantment struct {
	Kind     Ench
	Degree   int
	Agent    MID
	Duration int
}
