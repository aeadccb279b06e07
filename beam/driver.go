package beam

import (
	"codeberg.org/anaseto/gruid"
	"github.com/oklog/ulid/v2"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/ray"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// Fire runs the bolt from Source toward Target
// A bolt with IsTracer set makes a side-effect free scoring pass and can be fired for real afterwards
func (e *Engine) Fire(b *Bolt) {
	b.init()
	if b.IsTracer {
		b.transition("trace")
	} else {
		b.transition("fire")
	}
	var snap tracerSnapshot
	if b.IsTracer {
		snap = b.snapshot(e.RNG)
	}
	e.begin(b)
	e.drive(b)
	if b.IsTracer {
		b.restore(snap, e.RNG)
	}
	e.finish(b)
}

// begin validates the bolt and resets per-firing state
func (e *Engine) begin(b *Bolt) {
	assertf(b.Range >= 0, "%s: negative range %d", b.Name, b.Range)
	assertf(e.World.InBounds(b.Source), "%s: source %v out of bounds", b.Name, b.Source)

	b.firing = ulid.Make().String()
	if b.RealFlavour == flavour.None {
		b.RealFlavour = b.Flavour
	}
	if b.FoeRatio == 0 {
		b.FoeRatio = DefaultFoeRatio
	}
	if b.SourceName == "" {
		if src := e.World.ActorByMID(b.SourceID); src != nil {
			b.SourceName = src.Name()
		}
	}
	b.steps = 0
	b.stop = false
	b.Cancelled = false
	b.Seen, b.Heard = false, false
	b.PathTaken = b.PathTaken[:0]
	b.hits = nil
	b.explosion = nil
	clear(b.hitCount)
	b.messages = mapset.New[string]()
	if b.Flavour == flavour.Digging {
		b.tunnel = b.Damage.Size * e.RNG.RandomRange(6, 15) / 10
	}

	if b.IsTracer {
		e.Stats.Inc(status.BeamTracers, 1)
	} else {
		e.Stats.Inc(status.BeamFired, 1)
		e.Stats.Strings.Get(status.LastZap).Store(b.Name)
		e.Stats.Strings.Get(status.LastFiring).Store(b.firing)
		if b.SourceID == actor.MIDPlayer && b.fromChaos() {
			e.World.DidConduct(world.ConductUseChaos, 1)
		}
	}
	e.Log.Debug("firing",
		zap.String("firing", b.firing),
		zap.String("bolt", b.Name),
		zap.Stringer("flavour", b.RealFlavour),
		zap.Int("sx", b.Source.X), zap.Int("sy", b.Source.Y),
		zap.Int("tx", b.Target.X), zap.Int("ty", b.Target.Y),
		zap.Int("range", b.Range),
		zap.Bool("tracer", b.IsTracer))
}

func (e *Engine) finish(b *Bolt) {
	if b.Cancelled {
		e.Stats.Inc(status.BeamCancelled, 1)
	}
	e.Log.Debug("fired",
		zap.String("firing", b.firing),
		zap.Int("path", len(b.PathTaken)),
		zap.Int("hits", len(b.hits)),
		zap.Int("bounces", b.Bounces),
		zap.Int("reflections", b.Reflections),
		zap.Bool("cancelled", b.Cancelled),
		zap.Int("foes", b.FoeInfo.Count),
		zap.Int("friends", b.FriendInfo.Count))
}

// chooseRay aims the bolt's ray from Source at Target
func (e *Engine) chooseRay(b *Bolt) {
	if b.Source == b.Target {
		b.AimedAtFeet = true
		b.Range = 0
	}
	r, ok := ray.Find(b.Source, b.Target, e.World.CellIsSolid)
	if !ok {
		e.Log.Warn("no clear ray, using fallback",
			zap.String("firing", b.firing),
			zap.Int("sx", b.Source.X), zap.Int("sy", b.Source.Y),
			zap.Int("tx", b.Target.X), zap.Int("ty", b.Target.Y))
	}
	b.ray = r
}

func (e *Engine) advance(b *Bolt) {
	b.ray.Advance()
	b.steps++
}

func (e *Engine) regress(b *Bolt) {
	b.ray.Regress()
}

// drive steps the ray one cell at a time, resolving each cell, then applies endpoint effects
func (e *Engine) drive(b *Bolt) {
	e.chooseRay(b)
	if !b.AimedAtFeet {
		e.advance(b)
	}
	for {
		p := b.ray.Pos()
		if !e.World.InBounds(p) || b.RangeUsed() > b.Range {
			e.regress(b)
			break
		}

		f := e.World.FeatAt(p)
		affectsWall := world.IsSolid(f) && e.affectsWall(b, p)
		if world.IsSolid(f) && !affectsWall {
			if !bouncy(b, f) {
				if b.IsExplosion || b.DropItem || b.Effects.Origin == zaps.OriginPrimalWave {
					e.regress(b)
				}
				break
			}
			// Strike the cell in front of the wall a second time
			e.bounce(b)
			p = b.ray.Pos()
		}

		b.pos = p
		b.PathTaken = append(b.PathTaken, p)
		if !b.IsTracer {
			e.Stats.Inc(status.BeamCells, 1)
		}
		e.draw(b, p)
		if !b.AffectsNothing {
			e.affectCell(b, p)
		}
		if b.Cancelled {
			return
		}
		e.noticeSeen(b, p)

		if e.World.CellIsSolid(p) && !(b.IsTracer && affectsWall) {
			break
		}
		if b.stop || p == b.Target && b.stopAtTarget() {
			break
		}
		e.advance(b)
	}
	if e.animating(b) {
		e.UI.Update()
	}
	e.affectEndpoint(b)
}

// bounce steps back out of the wall and mirrors the ray off it
func (e *Engine) bounce(b *Bolt) {
	e.regress(b)
	at := b.ray.Pos()
	var mask ray.ReflectMask
	for _, off := range geom.Compass {
		mask.Set(off, e.World.CellIsSolid(at.Add(off)))
	}
	b.ray.Bounce(mask)
	b.Bounces++
	b.BouncePos = at
	b.ExtraRangeUsed += e.cfgBeam().BounceRangeCost
	if !b.IsTracer {
		e.Stats.Inc(status.BeamBounces, 1)
	}
	e.Log.Debug("bounce",
		zap.String("firing", b.firing),
		zap.Int("x", at.X), zap.Int("y", at.Y),
		zap.Int("bounces", b.Bounces),
		zap.Int("range_used", b.RangeUsed()))
}

func (e *Engine) animating(b *Bolt) bool {
	return b.Animate && !b.IsTracer && e.Config.Animation.Animate
}

func (e *Engine) draw(b *Bolt, p gruid.Point) {
	if !e.animating(b) || !e.World.PlayerSees(p) {
		return
	}
	e.UI.DrawBolt(p, b.Glyph, b.Colour)
	e.UI.Delay(e.Config.Animation.DelayMS)
}

// noticeSeen announces a bolt entering view from a source the player cannot see
func (e *Engine) noticeSeen(b *Bolt, p gruid.Point) {
	if b.Seen || !e.World.PlayerSees(p) {
		return
	}
	b.Seen = true
	if b.Flavour == flavour.Visual || e.World.PlayerSees(b.Source) {
		return
	}
	e.say(b, ui.ChanWarning, "The %s appears from out of your range of vision.", b.Name)
}
