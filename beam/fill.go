package beam

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// Zappy fills a bolt from the zap registry at the given power
// Geometry, source and attitude are left to the caller
func (e *Engine) Zappy(id zaps.ID, power int, isMonster bool, b *Bolt) {
	d := zaps.Lookup(id)
	assertf(d != nil, "unknown zap id %d", id)
	b.init()

	s := d.Evaluate(power, isMonster)
	b.OriginZap = id
	b.Name = d.Name
	b.Flavour = d.Flavour
	b.RealFlavour = d.Flavour
	b.Glyph = d.Glyph
	b.Colour = d.Colour
	b.Pierce = d.Pierce
	b.IsExplosion = d.Explosion
	if d.Explosion {
		b.ExSize = d.ExSize
	}
	b.AimedAtSpot = b.AimedAtSpot || d.AimedAtSpot
	b.AffectsNothing = d.AffectsNothing
	b.Loudness = d.HitLoudness
	b.Effects = d.Effects
	b.ObviousEffect = d.AlwaysObvious
	b.Hit = s.Hit
	b.Damage = s.Damage
	b.EnchPower = s.EnchPower
	b.ACRule = d.Flavour.DefaultACRule()

	assertf(d.Enchantment == b.IsEnchantment(), "%s enchantment flag disagrees with bolt flavour %s", d.Name, b.Flavour)

	if caster := e.caster(b, isMonster); caster != nil {
		e.applyCasterModifiers(b, caster)
	}

	if d.Detonation != zaps.None {
		child := NewBolt()
		child.SourceID = b.SourceID
		child.SourceName = b.SourceName
		child.Attitude = b.Attitude
		e.Zappy(d.Detonation, power, isMonster, child)
		b.SpecialExplosion = child
	}
	b.transition("fill")
}

func (e *Engine) caster(b *Bolt, isMonster bool) actor.Actor {
	if !isMonster {
		return e.World.Player()
	}
	if b.SourceID == actor.MIDNobody {
		return nil
	}
	return e.World.ActorByMID(b.SourceID)
}

// applyCasterModifiers folds the caster's elemental facets and chaos magic into the bolt
func (e *Engine) applyCasterModifiers(b *Bolt, caster actor.Actor) {
	if b.IsEnchantment() {
		return
	}
	if b.Flavour.Elemental() && caster.Facet(b.Flavour) {
		b.Damage.Size += b.Damage.Size / 3
	}
	if caster.ChaosMagic() && b.Flavour.IsDamage() {
		b.Flavour = flavour.Chaos
		b.RealFlavour = flavour.Chaos
		b.Colour = tcell.ColorFuchsia
	}
}
