package beam

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
)

// affectGround applies trail clouds, spore growth and item destruction to an open cell
func (e *Engine) affectGround(b *Bolt, p gruid.Point) {
	if b.IsTracer {
		return
	}
	if c := b.Effects.TrailCloud; c.Active() {
		e.World.PlaceCloud(c.Kind, p, c.Duration, b.agent())
	}
	if b.Flavour == flavour.Spore && b.InExplosionPhase {
		e.growFungus(b, p)
	}
	switch b.Flavour {
	case flavour.Fire, flavour.Lava, flavour.StickyFlame:
		burnt := e.World.DestroyItems(p, func(it world.Item) bool { return it.Flammable })
		if burnt > 0 && e.World.PlayerSees(p) {
			e.sayOnce(b, ui.ChanPlain, "You see something burn.")
		}
	}
}

// openCells walks the non-solid cells of the level for breadth-first spreads
type openCells struct {
	w   *world.World
	nbs paths.Neighbors
}

func (o *openCells) Neighbors(p gruid.Point) []gruid.Point {
	return o.nbs.All(p, func(q gruid.Point) bool {
		return o.w.InBounds(q) && !o.w.CellIsSolid(q)
	})
}

// spread returns up to n open cells nearest to p by walking distance, p first
func (e *Engine) spread(p gruid.Point, n int) []gruid.Point {
	if n <= 0 || !e.World.InBounds(p) || e.World.CellIsSolid(p) {
		return nil
	}
	pr := paths.NewPathRange(e.World.Bounds())
	nodes := pr.BreadthFirstMap(&openCells{w: e.World}, []gruid.Point{p}, n)
	out := make([]gruid.Point, 0, n)
	for _, node := range nodes {
		if len(out) == n {
			break
		}
		out = append(out, node.P)
	}
	return out
}

// growFungus sometimes sprouts a fungus on an empty floor cell touched by a spore explosion
func (e *Engine) growFungus(b *Bolt, p gruid.Point) {
	f := e.World.FeatAt(p)
	if world.IsWatery(f) || e.World.ActorAt(p) != nil || e.World.IsSanctuary(p) {
		return
	}
	if e.RNG.Random2(100) >= e.cfgBeam().FungusChance {
		return
	}
	m := e.World.SpawnMonster(actor.Lookup("fungus"), p, b.Attitude)
	if m == nil {
		return
	}
	e.Log.Debug("fungus grows", zap.String("firing", b.firing), zap.Stringer("at", p))
	if e.World.PlayerSees(p) {
		e.sayOnce(b, ui.ChanPlain, "A fungus suddenly grows.")
	}
}
