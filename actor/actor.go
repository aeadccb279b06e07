// Package actor defines the player/monster contract the beam engine queries and mutates
package actor

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/flavour"
)

// MID is a stable actor identifier
type MID uint32

const (
	// MIDNobody marks an unowned bolt or no reflector
	MIDNobody MID = 0
	// MIDPlayer is always the player
	MIDPlayer MID = 1
	// MIDYouFaultless takes kill credit for player bolts reflected back at the player
	MIDYouFaultless MID = 2
	// MIDFirstMonster is the first id handed to monsters
	MIDFirstMonster MID = 1000
)

// Attitude toward the player
type Attitude int8

const (
	Hostile Attitude = iota
	Neutral
	Friendly
)

// String returns the attitude name
func (a Attitude) String() string {
	switch a {
	case Friendly:
		return "friendly"
	case Neutral:
		return "neutral"
	}
	return "hostile"
}

// Actor is the narrow view of a player or monster used by bolts
type Actor interface {
	MID() MID
	Name() string
	Species() *Species
	IsPlayer() bool

	Pos() gruid.Point
	SetPos(p gruid.Point)
	Alive() bool

	Attitude() Attitude
	SetAttitude(a Attitude)
	Friendly() bool
	Observable() bool

	Shield() int
	Reflection() bool
	Omnireflect() bool
	MissileDeflection() int
	Evasion() int
	AC() int
	HP() int
	MaxHP() int
	MR() int
	XL() int
	Res(r Resist) int
	Holiness() Holiness
	HasFlag(f Flag) bool

	Hurt(src MID, dmg int, f flavour.Flavour) (killed bool)
	Heal(n int) bool
	DrainExp(src MID) bool
	Polymorph(sp *Species)
	Malmutate() bool

	AddEnch(e Enchantment) bool
	HasEnch(k Ench) bool
	DelEnch(k Ench) bool
	EnchOf(k Ench) (Enchantment, bool)

	ExposeToElement(f flavour.Flavour, degree int)

	Facet(f flavour.Flavour) bool
	ChaosMagic() bool

	State() State
}

// Opposed reports whether a and b are on different sides
func Opposed(a, b Actor) bool {
	return Allied(a) != Allied(b)
}

// Allied reports whether the actor fights for the player
func Allied(a Actor) bool {
	return a.IsPlayer() || a.Attitude() == Friendly
}
