package beam

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/ray"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// blockable bolts can be caught on an ordinary shield
func blockable(b *Bolt) bool {
	return !b.IsEnchantment() && b.Hit != zaps.AutoHit
}

// tryReflect rolls whether a turns the bolt back at its source
func (e *Engine) tryReflect(b *Bolt, a actor.Actor) bool {
	if b.IsTracer || b.IsExplosion || b.InExplosionPhase || b.AimedAtFeet || b.Flavour.Unreflectable() {
		return false
	}
	sh := a.Shield()
	if a.Omnireflect() {
		return e.RNG.Random2(sh+e.cfgBeam().OmnireflectBonus) < sh
	}
	if !a.Reflection() || !blockable(b) {
		return false
	}
	return e.RNG.Random2(b.Hit*130/100) < sh
}

// reflect sends the bolt from the reflector back toward the previous leg's source
func (e *Engine) reflect(b *Bolt, a actor.Actor) {
	from := b.Source
	b.Reflections++
	b.Reflector = a.MID()
	b.SetSource(a.Pos())
	b.Target = from
	b.AimedAtSpot = false

	r, ok := ray.Find(b.Source, b.Target, e.World.CellIsSolid)
	if !ok {
		e.Log.Warn("no clear ray after reflection, using fallback", zap.String("firing", b.firing))
	}
	b.ray = r

	switch {
	case a.IsPlayer():
		e.say(b, ui.ChanPlain, "Your shield reflects the %s!", b.Name)
	case e.seesActor(a):
		e.say(b, ui.ChanPlain, "%s reflects the %s!", capitalise(a.Name()), b.Name)
	default:
		e.say(b, ui.ChanPlain, "The %s bounces off of thin air!", b.Name)
	}
	e.Stats.Inc(status.BeamReflections, 1)
	e.Log.Debug("reflection",
		zap.String("firing", b.firing),
		zap.Uint32("reflector", uint32(a.MID())),
		zap.Int("reflections", b.Reflections))
}
