package beam

import (
	"math"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

const (
	// explosionMapCentre indexes the centre of the cost map; the map covers the largest radius
	explosionMapCentre = 9
	explosionMapSize   = 2*explosionMapCentre + 1

	explosionGlyph = '#'
)

// explosionMap holds the cheapest flood cost to each cell around the centre
type explosionMap [explosionMapSize][explosionMapSize]int

func (m *explosionMap) at(delta gruid.Point) *int {
	return &m[delta.Y+explosionMapCentre][delta.X+explosionMapCentre]
}

// Explode detonates the bolt at its Target without travelling
// It reports whether the player saw any of it
func (e *Engine) Explode(b *Bolt, showMore, hole bool) bool {
	b.init()
	if b.IsTracer {
		b.transition("trace")
	} else {
		b.transition("fire")
	}
	if !b.HasSource || !e.World.InBounds(b.Source) {
		b.Source = b.Target
	}
	var snap tracerSnapshot
	if b.IsTracer {
		snap = b.snapshot(e.RNG)
	}
	e.begin(b)
	seen := e.explode(b, b.Target, showMore, hole)
	if b.IsTracer {
		b.restore(snap, e.RNG)
	}
	e.finish(b)
	return seen
}

// refineForExplosion switches a bolt into its explosion phase and returns the flood radius
func (e *Engine) refineForExplosion(b *Bolt) int {
	radius := min(max(b.ExSize, 0), e.cfgBeam().MaxExplosionRadius)
	b.IsExplosion = true
	b.ExSize = max(radius, 1)
	b.InExplosionPhase = true
	clear(b.hitCount)
	return radius
}

func (e *Engine) explode(b *Bolt, centre gruid.Point, showMore, hole bool) bool {
	assertf(!b.InExplosionPhase, "%s: explosion nested in explosion", b.Name)
	radius := e.refineForExplosion(b)
	b.pos = centre

	if e.World.IsSanctuary(centre) && b.Flavour != flavour.Visual {
		if e.World.PlayerSees(centre) {
			e.say(b, ui.ChanGod, "The %s is contained by the sanctuary.", b.Name)
		}
		return true
	}

	b.Loudness = 10 + 5*b.ExSize
	if b.Effects.Origin == zaps.OriginInfestation {
		b.Loudness = 5
	}

	costs := e.determineAffected(b, centre, radius)
	rings := make([][]gruid.Point, radius+1)
	for _, p := range costs {
		r := paths.DistanceChebyshev(p, centre)
		rings[r] = append(rings[r], p)
	}

	seen := false
	for r, ring := range rings {
		if hole && r == 0 {
			continue
		}
		slices.SortFunc(ring, func(p, q gruid.Point) int {
			if p.Y != q.Y {
				return p.Y - q.Y
			}
			return p.X - q.X
		})
		drawn := false
		for _, p := range ring {
			if !e.World.PlayerSees(p) {
				continue
			}
			seen = true
			if e.animating(b) {
				e.UI.DrawBolt(p, explosionGlyph, b.Colour)
				drawn = true
			}
		}
		if drawn {
			e.UI.Delay(e.Config.Animation.DelayMS)
		}
		for _, p := range ring {
			b.pos = p
			b.explosion = append(b.explosion, p)
			e.affectCell(b, p)
			if b.Cancelled {
				return seen
			}
		}
	}
	if e.animating(b) {
		e.UI.Update()
	}
	if seen && showMore && !b.IsTracer && b.SourceID != actor.MIDPlayer {
		e.say(b, ui.ChanPlain, "You see an explosion.")
	}
	if b.IsTracer {
		return seen
	}

	e.makeNoise(b, centre, b.Loudness)
	e.explosionClouds(b, centre, b.explosion)
	e.Stats.Inc(status.ExplosionCount, 1)
	e.Stats.Inc(status.ExplosionCells, int64(len(b.explosion)))
	e.Log.Debug("explosion",
		zap.String("firing", b.firing),
		zap.Int("x", centre.X), zap.Int("y", centre.Y),
		zap.Int("radius", radius),
		zap.Int("cells", len(b.explosion)))
	return seen
}

// determineAffected floods outward from the centre and returns every cell within reach
func (e *Engine) determineAffected(b *Bolt, centre gruid.Point, radius int) []gruid.Point {
	var m explosionMap
	for y := range m {
		for x := range m[y] {
			m[y][x] = math.MaxInt
		}
	}
	casterPos := centre
	if src := e.World.ActorByMID(b.SourceID); src != nil && b.SourceID != actor.MIDNobody {
		casterPos = src.Pos()
	} else if pl := e.World.Player(); pl != nil {
		casterPos = pl.Pos()
	}
	e.flood(b, &m, centre, casterPos, gruid.Point{}, 0, radius)

	var out []gruid.Point
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			delta := gruid.Point{X: x, Y: y}
			if *m.at(delta) != math.MaxInt {
				out = append(out, centre.Add(delta))
			}
		}
	}
	return out
}

// flood is the recursive step of determineAffected
// Walls and statues stop the flood; trees only stop it for bolts that cannot burn
func (e *Engine) flood(b *Bolt, m *explosionMap, centre, casterPos, delta gruid.Point, count, radius int) {
	loc := centre.Add(delta)
	if count > 10*radius || !e.World.InBounds(loc) || paths.DistanceChebyshev(delta, gruid.Point{}) > radius {
		return
	}
	f := e.World.FeatAt(loc)
	origin := delta == gruid.Point{}
	atWall := false
	if world.IsWall(f) || world.IsTree(f) && !fiery(b) || world.IsClosedDoor(f) {
		if !(origin && canAffectWall(b, f)) {
			return
		}
		atWall = !canAffectWall(b, f)
	}
	if world.IsSolid(f) && !world.IsWall(f) && !canAffectWall(b, f) {
		return
	}
	if !origin && e.World.IsSanctuary(loc) {
		return
	}
	if *m.at(delta) <= count {
		return
	}
	*m.at(delta) = count

	for _, step := range geom.Compass {
		next := delta.Add(step)
		if paths.DistanceChebyshev(next, gruid.Point{}) > explosionMapCentre {
			continue
		}
		if *m.at(next) <= count {
			continue
		}
		if atWall && !e.World.CellSeeCell(casterPos, loc.Add(step), world.LOSNoTrans) {
			continue
		}
		cost := 5
		switch {
		case paths.DistanceChebyshev(delta, gruid.Point{}) == 1 && paths.DistanceChebyshev(next, gruid.Point{}) == 1:
			cost = 0
		case delta.X*step.X < 0 || delta.Y*step.Y < 0:
			cost = 17
		}
		e.flood(b, m, centre, casterPos, next, count+cost, radius)
	}
}

// explosionClouds leaves the explosion's clouds and fire-storm vortices behind
func (e *Engine) explosionClouds(b *Bolt, centre gruid.Point, cells []gruid.Point) {
	c := b.Effects.ExplosionCloud
	agent := b.agent()
	for _, p := range cells {
		if e.World.CellIsSolid(p) {
			continue
		}
		switch {
		case b.Effects.Origin == zaps.OriginMephitic:
			if p == centre || e.RNG.XChanceInY(125+b.EnchPower, 225) {
				e.World.PlaceCloud(world.CloudMephitic, p, max(c.Duration, 1)+e.RNG.Random2(3), agent)
			}
		case c.Active():
			if c.Chance == 0 || e.RNG.Random2(100) < c.Chance {
				e.World.PlaceCloud(c.Kind, p, c.Duration, agent)
			}
		}
		if b.Effects.Origin == zaps.OriginFireStorm && e.World.Free(p) && e.RNG.OneChanceIn(4) {
			e.summonVortex(b, p)
		}
	}
}

func (e *Engine) summonVortex(b *Bolt, p gruid.Point) {
	name := "fire vortex"
	if b.fromChaos() {
		name = "chaos vortex"
	} else if src := e.World.ActorByMID(b.SourceID); src != nil && src.ChaosMagic() {
		name = "chaos vortex"
	}
	att := b.Attitude
	if b.SourceID == actor.MIDPlayer {
		att = actor.Friendly
	}
	if m := e.World.SpawnMonster(actor.Lookup(name), p, att); m != nil && e.World.PlayerSees(p) {
		e.say(b, ui.ChanPlain, "A %s forms in the flames!", name)
	}
}
