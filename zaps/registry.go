// Package zaps is the static table of bolt templates and the formulas that scale them with power
package zaps

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
)

// ErrUnknownZap is returned when a name or id has no descriptor
var ErrUnknownZap = errors.New("unknown zap")

// ID identifies a zap
type ID uint16

const (
	None ID = iota
	MagicDart
	Flame
	Frost
	StoneArrow
	IronShot
	CrystalSpear
	ThrowIcicle
	BoltOfFire
	BoltOfCold
	Lightning
	BoltOfDraining
	VenomBolt
	PoisonArrow
	StickyFlame
	CorrosiveBolt
	SpitLava
	HolyBolt
	BoltOfDevastation
	Disintegrate
	SilverBolt
	DamnationBolt
	ChaosBolt
	ForceLance
	Harpoon
	PrimalWave
	Blinkbolt
	ExplosiveBolt
	ExplosiveBlast
	Fireball
	FireStorm
	OrbOfElectricity
	MephiticCloud
	Glaciate
	FreezingCloud
	PoisonousCloud
	PoisonBreath
	Dig
	Slow
	Haste
	Heal
	Paralyse
	Confuse
	Invisibility
	TeleportOther
	Polymorph
	Malmutate
	Enslavement
	Banishment
	Sleep
	Hibernation
	Rage
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
	SnakesToSticks
	Degeneration
	Resistance
	Unravelling
	Infestation
	VileClutch
	Might
	Agility
	Ensnare
	Corona
	Fear
	AcidWave
	Sunlight
	BarbedSpikes
	ThrowPie
	MiasmaBreath
	SporeBurst
	idCount
)

// Descriptor is the immutable template a bolt is filled from
type Descriptor struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name"`
	Flavour       flavour.Flavour `json:"flavour"`
	Glyph         rune            `json:"glyph"`
	Colour        tcell.Color     `json:"colour"`
	Enchantment   bool            `json:"enchantment"`
	AlwaysObvious bool            `json:"always_obvious,omitempty"`
	Pierce        bool            `json:"pierce,omitempty"`
	Explosion     bool            `json:"explosion,omitempty"`
	ExSize        int             `json:"ex_size,omitempty"`
	AimedAtSpot   bool            `json:"aimed_at_spot,omitempty"`
	// AffectsNothing zaps only carry a payload to their endpoint
	AffectsNothing bool `json:"affects_nothing,omitempty"`
	HitLoudness    int  `json:"hit_loudness,omitempty"`
	PowerCap       int  `json:"power_cap"`
	// Detonation names a zap exploded at the endpoint as a child bolt
	Detonation ID `json:"detonation,omitempty"`

	PlayerDamage  DamageCalc `json:"player_damage,omitempty"`
	PlayerToHit   ToHitCalc  `json:"player_tohit,omitempty"`
	MonsterDamage DamageCalc `json:"monster_damage,omitempty"`
	MonsterToHit  ToHitCalc  `json:"monster_tohit,omitempty"`

	Effects Effects `json:"effects"`
}

// Stats are the power-dependent numbers a descriptor yields
type Stats struct {
	Hit       int
	Damage    rng.Dice
	EnchPower int
}

// Evaluate applies the player or monster formulas to power
// Player power is capped first; enchantment zaps route power through the to-hit formula
func (d *Descriptor) Evaluate(power int, isMonster bool) Stats {
	if !isMonster && d.PowerCap > 0 {
		power = min(power, d.PowerCap)
	}
	power = max(power, 0)
	toHit, dmg := d.PlayerToHit, d.PlayerDamage
	if isMonster {
		toHit, dmg = d.MonsterToHit, d.MonsterDamage
	}
	var s Stats
	if toHit != nil {
		s.Hit = toHit.ToHit(power)
	} else {
		s.Hit = AutoHit
	}
	if dmg != nil {
		s.Damage = dmg.Damage(power)
	}
	if d.Enchantment {
		s.EnchPower = s.Hit
		s.Hit = AutoHit
		s.Damage = rng.Dice{}
	} else {
		s.EnchPower = power
	}
	return s
}

// Lookup returns the descriptor for id, or nil
func Lookup(id ID) *Descriptor {
	if id == None || id >= idCount {
		return nil
	}
	d, ok := registry[id]
	if !ok {
		return nil
	}
	return d
}

// ByName finds a descriptor by its display name
func ByName(name string) (*Descriptor, error) {
	for _, d := range registry {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownZap, name)
}

// PowerCap returns the player power cap of id, 0 for unknown zaps
func PowerCap(id ID) int {
	if d := Lookup(id); d != nil {
		return d.PowerCap
	}
	return 0
}

// EnchantPower caps player power and passes it through the to-hit formula
func EnchantPower(id ID, power int, isMonster bool) int {
	d := Lookup(id)
	if d == nil {
		panic(fmt.Sprintf("zaps: %v: id %d", ErrUnknownZap, id))
	}
	if !isMonster && d.PowerCap > 0 {
		power = min(power, d.PowerCap)
	}
	calc := d.PlayerToHit
	if isMonster {
		calc = d.MonsterToHit
	}
	if calc == nil {
		return power
	}
	return calc.ToHit(power)
}

// All returns every descriptor in id order
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *Descriptor) int { return int(a.ID) - int(b.ID) })
	return out
}

func init() {
	for id, d := range registry {
		d.ID = id
		if d.Enchantment != d.Flavour.IsEnchantment() {
			panic(fmt.Sprintf("zaps: %s enchantment flag disagrees with flavour %s", d.Name, d.Flavour))
		}
	}
}
