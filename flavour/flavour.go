// Package flavour enumerates the damage and status kinds a bolt can deliver
package flavour

import "fmt"

// Flavour is the damage/status kind carried by a bolt
type Flavour uint8

// Damage flavours
const (
	None Flavour = iota
	Missile
	MMissile
	Fire
	Cold
	Magic
	Electricity
	Poison
	Negative
	Acid
	Miasma
	Spore
	PoisonArrow
	Holy
	Frag
	SilverFrag
	Lava
	Ice
	Devastation
	StickyFlame
	Steam
	Water
	Damnation
	Silver
	Light
	Visual
	Digging
	Air
	Disintegration
	Crystal
	Mephitic

	// Enchantments
	Slow
	Haste
	Healing
	Paralysis
	Confusion
	Invisibility
	Teleport
	Polymorph
	Malmutate
	Charm
	Banish
	Sleep
	Hibernation
	Berserk
	DispelUndead
	Petrify
	SentinelMark
	DimensionAnchor
	Vulnerability
	Virulence
	SapMagic
	DrainMagic
	TukimasDance
	Pain
	Agony
	Porkalator
	Innerflame
	EntropicBurst
	ChaoticInfusion
	SnakesToSticks
	Degeneration
	Resistance
	Unravelling
	Infestation
	VileClutch
	Might
	Agility
	Ensnare
	Blink
	Fear
	Corona

	// Rewriters resolve to a concrete flavour per cell
	Chaos
	Random
	Paradoxical
	CrystalShards
	Eldritch
	Chaotic

	Count
)

const (
	firstEnchantment = Slow
	lastEnchantment  = Corona
	firstRewriter    = Chaos
)

var names = [Count]string{
	None:            "none",
	Missile:         "missile",
	MMissile:        "magic missile",
	Fire:            "fire",
	Cold:            "cold",
	Magic:           "magic",
	Electricity:     "electricity",
	Poison:          "poison",
	Negative:        "negative energy",
	Acid:            "acid",
	Miasma:          "miasma",
	Spore:           "spore",
	PoisonArrow:     "poison arrow",
	Holy:            "holy",
	Frag:            "fragmentation",
	SilverFrag:      "silver fragmentation",
	Lava:            "lava",
	Ice:             "ice",
	Devastation:     "devastation",
	StickyFlame:     "sticky flame",
	Steam:           "steam",
	Water:           "water",
	Damnation:       "damnation",
	Silver:          "silver",
	Light:           "light",
	Visual:          "visual",
	Digging:         "digging",
	Air:             "air",
	Disintegration:  "disintegration",
	Crystal:         "crystal",
	Mephitic:        "mephitic",
	Slow:            "slow",
	Haste:           "haste",
	Healing:         "healing",
	Paralysis:       "paralysis",
	Confusion:       "confusion",
	Invisibility:    "invisibility",
	Teleport:        "teleport",
	Polymorph:       "polymorph",
	Malmutate:       "malmutate",
	Charm:           "charm",
	Banish:          "banish",
	Sleep:           "sleep",
	Hibernation:     "hibernation",
	Berserk:         "berserk",
	DispelUndead:    "dispel undead",
	Petrify:         "petrify",
	SentinelMark:    "sentinel mark",
	DimensionAnchor: "dimension anchor",
	Vulnerability:   "vulnerability",
	Virulence:       "virulence",
	SapMagic:        "sap magic",
	DrainMagic:      "drain magic",
	TukimasDance:    "tukima's dance",
	Pain:            "pain",
	Agony:           "agony",
	Porkalator:      "porkalator",
	Innerflame:      "innerflame",
	EntropicBurst:   "entropic burst",
	ChaoticInfusion: "chaotic infusion",
	SnakesToSticks:  "snakes to sticks",
	Degeneration:    "degeneration",
	Resistance:      "resistance",
	Unravelling:     "unravelling",
	Infestation:     "infestation",
	VileClutch:      "vile clutch",
	Might:           "might",
	Agility:         "agility",
	Ensnare:         "ensnare",
	Blink:           "blink",
	Fear:            "fear",
	Corona:          "corona",
	Chaos:           "chaos",
	Random:          "random",
	Paradoxical:     "paradoxical",
	CrystalShards:   "crystal shards",
	Eldritch:        "eldritch",
	Chaotic:         "chaotic",
}

var byName map[string]Flavour

func init() {
	byName = make(map[string]Flavour, Count)
	for f := None; f < Count; f++ {
		byName[names[f]] = f
	}
}

// String returns the display name
func (f Flavour) String() string {
	if f >= Count {
		return fmt.Sprintf("flavour(%d)", uint8(f))
	}
	return names[f]
}

// Parse resolves a display name to a flavour
func Parse(name string) (Flavour, error) {
	f, ok := byName[name]
	if !ok {
		return None, fmt.Errorf("unknown flavour %q", name)
	}
	return f, nil
}

// IsEnchantment reports whether the flavour resolves by saving throw rather than dice
func (f Flavour) IsEnchantment() bool {
	return f >= firstEnchantment && f <= lastEnchantment
}

// IsRewriter reports whether the flavour draws a concrete flavour per cell
func (f Flavour) IsRewriter() bool {
	return f >= firstRewriter && f < Count
}

// IsDamage reports whether the flavour deals dice damage directly
func (f Flavour) IsDamage() bool {
	return f > None && f < firstEnchantment && f != Visual && f != Digging
}

// Beneficial reports whether landing the flavour on an ally helps rather than harms
func (f Flavour) Beneficial() bool {
	switch f {
	case Haste, Healing, Invisibility, Might, Agility, Resistance, Berserk:
		return true
	}
	return false
}

// HasSavingThrow reports whether a target rolls magic resistance against the flavour
func (f Flavour) HasSavingThrow() bool {
	if !f.IsEnchantment() || f.Beneficial() {
		return false
	}
	switch f {
	case Blink, Ensnare, Unravelling, Infestation, VileClutch, Innerflame:
		return false
	}
	return true
}

// Unreflectable reports whether no shield can turn the flavour aside
func (f Flavour) Unreflectable() bool {
	switch f {
	case Visual, Digging, Light:
		return true
	}
	return false
}

// Elemental reports whether a facet of the same element boosts the flavour
func (f Flavour) Elemental() bool {
	switch f {
	case Fire, Cold, Electricity, Poison, Negative, Acid, Air:
		return true
	}
	return false
}
