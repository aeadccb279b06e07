package beam

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
)

// burns reports whether the bolt is hot enough to set trees and doors alight
func burns(b *Bolt) bool {
	switch b.Flavour {
	case flavour.Fire, flavour.Electricity, flavour.Lava:
		return b.Damage.Max() > 30
	}
	return false
}

// fiery bolts let explosions spread through trees
func fiery(b *Bolt) bool {
	switch b.Flavour {
	case flavour.Fire, flavour.Lava, flavour.StickyFlame, flavour.Damnation:
		return true
	}
	return false
}

// digStopper lists features a digging bolt cannot pass
func digStopper(f rl.Cell) bool {
	return world.IsPermanent(f) || world.IsEndless(f) || world.IsClosedDoor(f) ||
		world.IsTree(f) || world.IsMetal(f) && f != world.Grate
}

// canAffectWall reports whether the bolt's flavour can change feature f at all
func canAffectWall(b *Bolt, f rl.Cell) bool {
	switch {
	case b.Flavour == flavour.Digging:
		return world.IsDiggable(f) && !digStopper(f)
	case burns(b):
		return world.IsTree(f) || world.IsClosedDoor(f) && world.IsWooden(f)
	case b.Flavour == flavour.Acid:
		return f == world.Grate
	}
	return false
}

// affectsWall is canAffectWall with the bolt's remaining digging power taken into account
func (e *Engine) affectsWall(b *Bolt, p gruid.Point) bool {
	f := e.World.FeatAt(p)
	if !canAffectWall(b, f) {
		return false
	}
	if b.Flavour == flavour.Digging {
		return b.tunnel > 0
	}
	return true
}

// bouncy reports whether the bolt reflects off feature f
func bouncy(b *Bolt, f rl.Cell) bool {
	if b.IsEnchantment() || b.IsExplosion {
		return false
	}
	switch b.RealFlavour {
	case flavour.Chaos:
		return world.IsSolid(f)
	case flavour.CrystalShards:
		return world.IsSolid(f) && !world.IsTree(f)
	}
	switch b.Flavour {
	case flavour.Electricity:
		return world.IsWall(f) && !world.IsMetal(f) && !world.IsTree(f)
	case flavour.Fire, flavour.Cold:
		return f == world.CrystalWall
	}
	return false
}

func (e *Engine) affectWall(b *Bolt, p gruid.Point) {
	f := e.World.FeatAt(p)
	switch {
	case b.Flavour == flavour.Digging:
		e.digWall(b, p, f)
	case burns(b):
		e.burnWall(b, p, f)
	case b.Flavour == flavour.Acid && f == world.Grate:
		if b.IsTracer {
			return
		}
		if e.World.DestroyWall(p) {
			e.Stats.Inc(status.WallDestroyed, 1)
			if e.World.PlayerSees(p) {
				e.say(b, ui.ChanPlain, "The iron grate dissolves into a puddle of rust.")
			}
		}
	}
}

func (e *Engine) digWall(b *Bolt, p gruid.Point, f rl.Cell) {
	if !e.affectsWall(b, p) {
		return
	}
	cost := e.cfgBeam().TunnelOtherCost
	if world.IsStoneLike(f) {
		cost = e.cfgBeam().TunnelStoneCost
	}
	if b.IsTracer {
		if f == world.OrcishIdol && b.SourceID == actor.MIDPlayer && !b.DontStopPlayer {
			if !e.UI.YesNo("Really deface the orcish idol?", false) {
				b.Cancelled = true
				return
			}
		}
		b.tunnel -= cost
		return
	}
	b.tunnel -= cost
	if !e.World.DestroyWall(p) {
		return
	}
	e.Stats.Inc(status.WallDestroyed, 1)
	e.Log.Debug("wall destroyed",
		zap.String("firing", b.firing),
		zap.String("feature", world.FeatureName(f)),
		zap.Int("x", p.X), zap.Int("y", p.Y),
		zap.Int("tunnel", b.tunnel))

	if f == world.OrcishIdol && b.SourceID == actor.MIDPlayer {
		e.World.DidConduct(world.ConductDestroyIdol, 1)
	}
	if !e.World.PlayerSees(p) {
		e.makeNoise(b, p, 6)
		switch f {
		case world.OrcishIdol:
			e.sayOnce(b, ui.ChanPlain, "You hear a hideous screaming!")
		case world.Grate:
			e.sayOnce(b, ui.ChanPlain, "You hear the screech of tortured metal.")
		default:
			e.sayOnce(b, ui.ChanPlain, "You hear a grinding noise.")
		}
		return
	}
	switch {
	case e.World.Pandemonium && world.IsWall(f):
		e.sayOnce(b, ui.ChanPlain, "The wall twists and unravels into nothing.")
	case f == world.Grate:
		e.sayOnce(b, ui.ChanPlain, "The grate screeches as it bends and collapses.")
	case f == world.OrcishIdol:
		e.sayOnce(b, ui.ChanPlain, "The idol screams as its substance crumbles away!")
	case f == world.SlimeWall:
		e.sayOnce(b, ui.ChanPlain, "The slime-covered rock melts away.")
	case f == world.CrystalWall:
		e.sayOnce(b, ui.ChanPlain, "A crystal wall shatters!")
	default:
		e.sayOnce(b, ui.ChanPlain, "The rock glows and vanishes.")
	}
}

func (e *Engine) burnWall(b *Bolt, p gruid.Point, f rl.Cell) {
	if !canAffectWall(b, f) {
		return
	}
	if b.IsTracer {
		if world.IsTree(f) && b.SourceID == actor.MIDPlayer && !b.DontStopTrees {
			if e.UI.YesNo("Really burn this tree?", false) {
				b.DontStopTrees = true
			} else {
				b.Cancelled = true
			}
		}
		return
	}
	if !e.World.DestroyWall(p) {
		return
	}
	e.Stats.Inc(status.WallDestroyed, 1)
	kind := world.CloudForestFire
	if e.World.Wet(p) {
		kind = world.CloudFire
	}
	e.World.PlaceCloud(kind, p, 10+e.RNG.Random2(5), b.agent())
	if world.IsTree(f) && b.SourceID == actor.MIDPlayer {
		e.World.DidConduct(world.ConductKillPlant, 1)
	}
	if e.World.PlayerSees(p) {
		if world.IsTree(f) {
			e.say(b, ui.ChanPlain, "The tree burns like a torch!")
		} else {
			e.say(b, ui.ChanPlain, "The door bursts into flame!")
		}
	} else {
		e.sayOnce(b, ui.ChanPlain, "You hear a crackling sound.")
	}
}
