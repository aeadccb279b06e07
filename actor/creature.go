package actor

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/flavour"
)

// Creature is the concrete Actor used for both the player and monsters
type Creature struct {
	mid      MID
	species  *Species
	name     string
	player   bool
	pos      gruid.Point
	hp       int
	maxHP    int
	xl       int
	attitude Attitude

	ac, ev, sh, mr int
	res            [ResCount]int

	reflect     bool
	omnireflect bool
	deflection  int
	invisible   bool

	enchs map[Ench]Enchantment

	facets     map[flavour.Flavour]bool
	chaosMagic bool

	// Exposure records element contact for side effects outside the engine
	Exposure map[flavour.Flavour]int
}

// NewPlayer creates the player at p
func NewPlayer(p gruid.Point) *Creature {
	c := newCreature(MIDPlayer, Lookup("human"), p)
	c.player = true
	c.name = "you"
	c.xl = 10
	c.attitude = Friendly
	return c
}

// NewMonster creates a monster of the given species
func NewMonster(mid MID, sp *Species, p gruid.Point, att Attitude) *Creature {
	c := newCreature(mid, sp, p)
	c.attitude = att
	c.xl = sp.HD
	return c
}

func newCreature(mid MID, sp *Species, p gruid.Point) *Creature {
	c := &Creature{
		mid:      mid,
		pos:      p,
		enchs:    make(map[Ench]Enchantment),
		facets:   make(map[flavour.Flavour]bool),
		Exposure: make(map[flavour.Flavour]int),
	}
	c.become(sp)
	c.hp = c.maxHP
	return c
}

func (c *Creature) become(sp *Species) {
	c.species = sp
	c.name = "the " + sp.Name
	c.maxHP = sp.HP
	c.ac, c.ev, c.sh, c.mr = sp.AC, sp.EV, sp.SH, sp.MR
	c.res = sp.Res
}

// MID returns the actor id
func (c *Creature) MID() MID { return c.mid }

// Name returns the display name
func (c *Creature) Name() string { return c.name }

// Species returns the current species template
func (c *Creature) Species() *Species { return c.species }

// IsPlayer reports whether this creature is the player
func (c *Creature) IsPlayer() bool { return c.player }

func (c *Creature) Pos() gruid.Point { return c.pos }

func (c *Creature) SetPos(p gruid.Point) { c.pos = p }

func (c *Creature) Alive() bool { return c.hp > 0 }

func (c *Creature) Attitude() Attitude { return c.attitude }

func (c *Creature) SetAttitude(a Attitude) {
	if !c.player {
		c.attitude = a
	}
}

func (c *Creature) Friendly() bool { return c.player || c.attitude == Friendly }

// Observable reports whether the player can perceive the creature
func (c *Creature) Observable() bool {
	return c.player || !c.HasEnch(EnchInvisible) && !c.invisible
}

func (c *Creature) Shield() int { return c.sh }

func (c *Creature) Reflection() bool { return c.reflect }

func (c *Creature) Omnireflect() bool { return c.omnireflect }

func (c *Creature) MissileDeflection() int { return c.deflection }

func (c *Creature) Evasion() int {
	ev := c.ev
	if c.HasEnch(EnchAgility) {
		ev += 5
	}
	if c.HasEnch(EnchParalysis) || c.HasEnch(EnchPetrified) || c.HasEnch(EnchSleep) || c.HasEnch(EnchHeld) {
		return 0
	}
	return ev
}

// AC returns armour after petrification and corrosion
func (c *Creature) AC() int {
	ac := c.ac
	if e, ok := c.enchs[EnchCorrosion]; ok {
		ac = max(0, ac-4*e.Degree)
	}
	if c.HasEnch(EnchPetrified) {
		ac += 20
	}
	return ac
}

func (c *Creature) HP() int { return c.hp }

// MaxHP returns the hp ceiling less any rot
func (c *Creature) MaxHP() int {
	if e, ok := c.enchs[EnchRot]; ok {
		return max(1, c.maxHP-e.Degree)
	}
	return c.maxHP
}

// MR returns magic resistance after temporary reductions
func (c *Creature) MR() int {
	mr := c.mr
	if e, ok := c.enchs[EnchLowerMR]; ok {
		mr -= mr * e.Degree / 4
	}
	return max(0, mr)
}

func (c *Creature) XL() int { return c.xl }

func (c *Creature) Res(r Resist) int {
	v := c.res[r]
	if r != ResHoly && c.HasEnch(EnchResistance) && v < 3 {
		switch r {
		case ResFire, ResCold, ResElec, ResPoison, ResAcid:
			v++
		}
	}
	if r == ResPoison && c.HasEnch(EnchPoisonVuln) {
		v--
	}
	return v
}

func (c *Creature) Holiness() Holiness { return c.species.Holiness }

func (c *Creature) HasFlag(f Flag) bool { return c.species.Has(f) }

// Hurt removes hp and reports death
func (c *Creature) Hurt(src MID, dmg int, f flavour.Flavour) bool {
	if dmg <= 0 || !c.Alive() {
		return false
	}
	c.hp -= dmg
	return c.hp <= 0
}

// Heal restores hp up to the maximum and reports whether anything changed
func (c *Creature) Heal(n int) bool {
	if n <= 0 || c.hp >= c.MaxHP() || !c.Alive() {
		return false
	}
	c.hp = min(c.MaxHP(), c.hp+n)
	return true
}

// DrainExp lowers experience level; undead and nonliving are immune
func (c *Creature) DrainExp(src MID) bool {
	if c.Res(ResNegative) >= 3 || c.xl <= 1 {
		return false
	}
	c.xl--
	c.maxHP = max(1, c.maxHP-c.maxHP/10)
	c.hp = min(c.hp, c.maxHP)
	return true
}

// Polymorph rebuilds the creature from another species, keeping its hp fraction
func (c *Creature) Polymorph(sp *Species) {
	if sp == nil || c.player {
		return
	}
	frac := c.hp * 100 / max(1, c.maxHP)
	c.become(sp)
	c.xl = sp.HD
	c.hp = max(1, c.maxHP*frac/100)
}

// Malmutate weakens the creature permanently
func (c *Creature) Malmutate() bool {
	if c.species.Holiness&(Undead|Nonliving|PlantLife) != 0 {
		return false
	}
	c.maxHP = max(1, c.maxHP-c.maxHP/8)
	c.hp = min(c.hp, c.maxHP)
	c.ev = max(0, c.ev-1)
	return true
}

// AddEnch applies or strengthens an enchantment
func (c *Creature) AddEnch(e Enchantment) bool {
	defer c.clampHP()
	if old, ok := c.enchs[e.Kind]; ok {
		old.Degree = max(old.Degree, e.Degree)
		old.Duration = max(old.Duration, e.Duration)
		c.enchs[e.Kind] = old
		return false
	}
	if e.Kind == EnchCharm {
		c.attitude = Friendly
	}
	c.enchs[e.Kind] = e
	return true
}

func (c *Creature) clampHP() {
	c.hp = min(c.hp, c.MaxHP())
}

func (c *Creature) HasEnch(k Ench) bool {
	_, ok := c.enchs[k]
	return ok
}

// DelEnch removes an enchantment and reports whether it was present
func (c *Creature) DelEnch(k Ench) bool {
	if _, ok := c.enchs[k]; !ok {
		return false
	}
	delete(c.enchs, k)
	return true
}

func (c *Creature) EnchOf(k Ench) (Enchantment, bool) {
	e, ok := c.enchs[k]
	return e, ok
}

// ExposeToElement records contact and resolves elemental interactions
func (c *Creature) ExposeToElement(f flavour.Flavour, degree int) {
	c.Exposure[f] += degree
	switch f {
	case flavour.Fire, flavour.Lava, flavour.StickyFlame:
		c.DelEnch(EnchFrozen)
	case flavour.Cold, flavour.Ice, flavour.Water:
		c.DelEnch(EnchStickyFlame)
	}
}

// SetReflection configures shield reflection; omni reflects even unblockable bolts
func (c *Creature) SetReflection(sh int, reflect, omni bool) {
	c.sh = sh
	c.reflect = reflect
	c.omnireflect = omni
}

// Facet reports whether the creature channels extra power into an element
func (c *Creature) Facet(f flavour.Flavour) bool { return c.facets[f] }

// SetFacet grants an elemental facet
func (c *Creature) SetFacet(f flavour.Flavour, on bool) {
	if on {
		c.facets[f] = true
		return
	}
	delete(c.facets, f)
}

// ChaosMagic reports whether the creature's spells are twisted into chaos
func (c *Creature) ChaosMagic() bool { return c.chaosMagic }

// SetChaosMagic toggles chaos overriding
func (c *Creature) SetChaosMagic(v bool) { c.chaosMagic = v }

// SetInvisible toggles innate invisibility
func (c *Creature) SetInvisible(v bool) { c.invisible = v }

// SetResist overrides a resistance level
func (c *Creature) SetResist(r Resist, v int) { c.res[r] = v }

// SetHP sets current hp, clamped to the maximum
func (c *Creature) SetHP(hp int) { c.hp = min(hp, c.MaxHP()) }

// SetMR overrides base magic resistance
func (c *Creature) SetMR(mr int) { c.mr = mr }

// SetAC overrides base armour class
func (c *Creature) SetAC(ac int) { c.ac = ac }

// SetEvasion overrides base evasion
func (c *Creature) SetEvasion(ev int) { c.ev = ev }

// State is a comparable summary of a creature
type State struct {
	MID      MID
	Species  string
	Pos      gruid.Point
	HP       int
	MaxHP    int
	XL       int
	Attitude Attitude
	Enchs    string
}

// State summarises the creature for digests and reports
func (c *Creature) State() State {
	names := make([]string, 0, len(c.enchs))
	for k, e := range c.enchs {
		names = append(names, fmt.Sprintf("%s:%d/%d", k, e.Degree, e.Duration))
	}
	sort.Strings(names)
	return State{
		MID:      c.mid,
		Species:  c.species.Name,
		Pos:      c.pos,
		HP:       c.hp,
		MaxHP:    c.MaxHP(),
		XL:       c.xl,
		Attitude: c.attitude,
		Enchs:    strings.Join(names, ","),
	}
}

var _ Actor = (*Creature)(nil)
