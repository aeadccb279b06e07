package beam

import (
	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// endpoint is where the bolt came to rest: the ray's cell, the last open cell it crossed, or its source
// A bolt with no range never leaves its caster and has no endpoint
func (e *Engine) endpoint(b *Bolt) (gruid.Point, bool) {
	if b.Range == 0 && !b.AimedAtFeet {
		return gruid.Point{}, false
	}
	if p := b.ray.Pos(); e.World.InBounds(p) && !e.World.CellIsSolid(p) {
		return p, true
	}
	for i := len(b.PathTaken) - 1; i >= 0; i-- {
		if p := b.PathTaken[i]; !e.World.CellIsSolid(p) {
			return p, true
		}
	}
	if e.World.InBounds(b.Source) && !e.World.CellIsSolid(b.Source) {
		return b.Source, true
	}
	return gruid.Point{}, false
}

// affectEndpoint runs the detonations, drops and clouds that happen where the bolt stopped
func (e *Engine) affectEndpoint(b *Bolt) {
	p, ok := e.endpoint(b)
	if !ok {
		return
	}
	if b.SpecialExplosion != nil {
		e.detonate(b, p)
		if b.Cancelled {
			return
		}
	}
	if b.IsExplosion && !b.InExplosionPhase {
		e.explode(b, p, true, false)
		if b.Cancelled {
			return
		}
	}
	if b.IsTracer {
		return
	}

	if b.DropItem && b.Item != nil {
		e.dropItem(b, p)
	}
	if c := b.Effects.BigCloud; c.Active() {
		for _, q := range e.spread(p, max(1, c.Size)) {
			e.World.PlaceCloud(c.Kind, q, c.Duration, b.agent())
		}
		if e.World.PlayerSees(p) {
			e.say(b, ui.ChanPlain, "A cloud of %s billows out.", c.Kind)
		}
	}

	switch b.Effects.Origin {
	case zaps.OriginPrimalWave:
		e.primalWave(b, p)
	case zaps.OriginAcidWave:
		e.slimeWalls(b, p)
	case zaps.OriginSunlight:
		e.sunlight(b, p)
	case zaps.OriginEnsnare:
		if e.World.ActorAt(p) == nil {
			e.World.PlaceSpecificTrap(p, world.TrapWeb, b.EnchPower)
		}
	case zaps.OriginBlinkbolt:
		if caster := e.World.ActorByMID(b.SourceID); caster != nil && caster.Alive() {
			if e.World.BlinkToward(caster, p) {
				e.sayActor(b, caster, ui.ChanPlain, "%s reforms in a flash of light.", "You reform in a flash of light.")
			}
		}
	}
}

// detonate explodes the bolt's child at p, or a copy of it when tracing
func (e *Engine) detonate(b *Bolt, p gruid.Point) {
	child := b.SpecialExplosion
	if b.IsTracer {
		child = child.clone()
		child.IsTracer = true
		child.FoeInfo = TracerInfo{DontStop: b.FoeInfo.DontStop}
		child.FriendInfo = TracerInfo{DontStop: b.FriendInfo.DontStop}
		child.DontStopPlayer = b.DontStopPlayer
		child.DontStopTrees = b.DontStopTrees
	}
	child.SetSource(p)
	child.Target = p
	child.SourceID = b.SourceID
	child.SourceName = b.SourceName
	child.Attitude = b.Attitude
	child.Animate = b.Animate

	e.Explode(child, true, false)

	if b.IsTracer {
		b.FoeInfo.Add(child.FoeInfo)
		b.FriendInfo.Add(child.FriendInfo)
		b.DontStopPlayer = b.DontStopPlayer || child.DontStopPlayer
		b.DontStopTrees = b.DontStopTrees || child.DontStopTrees
	}
	b.Cancelled = b.Cancelled || child.Cancelled
}

// dropItem lands the carried item, turning a stray net into a trap
func (e *Engine) dropItem(b *Bolt, p gruid.Point) {
	it := *b.Item
	if it.Summoned {
		if e.World.PlayerSees(p) {
			e.say(b, ui.ChanPlain, "The %s disappears!", it.Name)
		}
		return
	}
	if it.Net && e.World.ActorAt(p) == nil && e.World.PlaceSpecificTrap(p, world.TrapNet, it.Quantity) {
		return
	}
	e.World.DropItem(p, it)
}

// primalWave floods the open cells around p with shallow water for a while
func (e *Engine) primalWave(b *Bolt, p gruid.Point) {
	changed := 0
	for _, q := range append(geom.Ring(p, 0, e.World.Bounds()), geom.Ring(p, 1, e.World.Bounds())...) {
		f := e.World.FeatAt(q)
		if world.IsSolid(f) || world.IsWatery(f) {
			continue
		}
		if e.World.TempChangeTerrain(q, world.ShallowWater, 10+e.RNG.Random2(10), b.Name) {
			changed++
		}
	}
	e.Log.Debug("primal wave", zap.String("firing", b.firing), zap.Int("cells", changed))
}

// slimeWalls coats the diggable walls around p in slime for a while
func (e *Engine) slimeWalls(b *Bolt, p gruid.Point) {
	changed := 0
	for _, q := range geom.Ring(p, 1, e.World.Bounds()) {
		f := e.World.FeatAt(q)
		if !world.IsWall(f) || !world.IsDiggable(f) || f == world.SlimeWall {
			continue
		}
		if e.World.TempChangeTerrain(q, world.SlimeWall, 20+e.RNG.Random2(20), b.Name) {
			changed++
		}
	}
	if changed > 0 && e.World.PlayerSees(p) {
		e.say(b, ui.ChanPlain, "The acid leaves the walls slick with slime.")
	}
	e.Log.Debug("acid wave", zap.String("firing", b.firing), zap.Int("cells", changed))
}

// sunlight lights a candle of radius one at p; invisible actors inside it can be seen
func (e *Engine) sunlight(b *Bolt, p gruid.Point) {
	lit := e.World.PlaceHalo(p, 1, e.cfgBeam().BaselineDelay*(5+e.RNG.Random2(5)))
	if lit > 0 && e.World.PlayerSees(p) {
		e.say(b, ui.ChanPlain, "A ray of sunlight shines down.")
	}
}
