package beam

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// affectCell resolves the bolt against one cell: walls, then its occupant, then the ground
func (e *Engine) affectCell(b *Bolt, p gruid.Point) {
	if _, ok := e.World.CloudAt(p); ok && b.Hit != zaps.AutoHit {
		b.Hit = max(0, b.Hit-e.cfgBeam().CloudToHitPenalty)
	}
	e.resolveFlavour(b)

	if e.World.CellIsSolid(p) {
		e.affectWall(b, p)
		if b.Cancelled {
			return
		}
	}

	if a := e.occupant(b, p); a != nil && e.targetable(b, a) {
		// Explosion bolts only look for something to detonate on while travelling
		if b.IsExplosion && !b.InExplosionPhase {
			if p != b.Source {
				b.stop = true
			}
			return
		}
		e.affectActor(b, a)
		if b.Cancelled {
			return
		}
	}

	if !e.World.CellIsSolid(p) {
		e.affectGround(b, p)
	}
}

// occupant is the actor the bolt meets at p
// A monster's tracer cannot pin down an invisible player and finds them anywhere within two cells
func (e *Engine) occupant(b *Bolt, p gruid.Point) actor.Actor {
	if a := e.World.ActorAt(p); a != nil {
		return a
	}
	pl := e.World.Player()
	if pl == nil || !e.fuzzesPlayer(b, pl) || paths.DistanceChebyshev(pl.Pos(), p) > 2 {
		return nil
	}
	return pl
}

func (e *Engine) fuzzesPlayer(b *Bolt, pl actor.Actor) bool {
	if !b.IsTracer || b.SourceID == actor.MIDPlayer || !pl.HasEnch(actor.EnchInvisible) {
		return false
	}
	src := e.World.ActorByMID(b.SourceID)
	return src == nil || !src.HasFlag(actor.FlagSeeInvisible)
}

// targetable reports whether the bolt strikes a rather than passing it by
func (e *Engine) targetable(b *Bolt, a actor.Actor) bool {
	if !e.canAffectActor(b, a) {
		return false
	}
	return a.IsPlayer() || !e.ignoresMonster(b, a)
}

func (e *Engine) canAffectActor(b *Bolt, a actor.Actor) bool {
	if b.Effects.Origin == zaps.OriginBlinkbolt && a.MID() == b.SourceID {
		return false
	}
	return b.hitCount[a.MID()] < e.cfgBeam().HitCap
}

// ignoresMonster lists monsters a bolt passes through untouched
func (e *Engine) ignoresMonster(b *Bolt, m actor.Actor) bool {
	switch {
	case m.HasFlag(actor.FlagTunneller) && b.Flavour == flavour.Digging:
		return true
	case m.HasFlag(actor.FlagProjectile):
		// Battlespheres only get out of their own side's way
		return m.Species().Name != "battlesphere" || m.Friendly()
	case m.HasFlag(actor.FlagBush) && m.Pos() != b.Target && !b.Pierce && !b.IsExplosion && !b.IsEnchantment():
		return true
	case m.HasFlag(actor.FlagFireVortex) && b.Effects.Origin == zaps.OriginFireStorm:
		return true
	case m.HasFlag(actor.FlagIceBlock) && b.Effects.Origin == zaps.OriginGlaciate:
		return true
	case m.HasFlag(actor.FlagWaterElemental) && b.Flavour == flavour.Water:
		return true
	case m.HasFlag(actor.FlagShootThrough):
		return e.alliedWithSource(b, m)
	}
	return false
}

// alliedWithSource reports whether a fights on the same side as whoever fired b
func (e *Engine) alliedWithSource(b *Bolt, a actor.Actor) bool {
	if src := e.World.ActorByMID(b.SourceID); src != nil {
		return actor.Allied(src) == actor.Allied(a)
	}
	return (b.Attitude == actor.Friendly) == actor.Allied(a)
}

// affectActor applies the bolt to an actor it reached
func (e *Engine) affectActor(b *Bolt, a actor.Actor) {
	if e.tryReflect(b, a) {
		e.reflect(b, a)
		return
	}
	b.hitCount[a.MID()]++
	if b.IsTracer {
		e.traceActor(b, a)
		return
	}
	landed := true
	if b.IsEnchantment() {
		e.enchantActor(b, a)
	} else {
		landed = e.damageActor(b, a)
	}
	if landed && !b.Pierce && !b.InExplosionPhase {
		b.stop = true
	}
}
