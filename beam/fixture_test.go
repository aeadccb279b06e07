package beam

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

func pt(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

// fixture is an open walled room with the player in it
type fixture struct {
	w      *world.World
	ui     *ui.Headless
	e      *Engine
	player *actor.Creature
}

func newFixture(t *testing.T, width, height int, playerAt gruid.Point, seed uint64) *fixture {
	t.Helper()
	w := world.New(width, height)
	p := actor.NewPlayer(playerAt)
	w.SetPlayer(p)
	h := ui.NewHeadless()
	return &fixture{w: w, ui: h, e: NewEngine(w, h, rng.New(seed)), player: p}
}

func (f *fixture) spawn(t *testing.T, species string, p gruid.Point, att actor.Attitude) *actor.Creature {
	t.Helper()
	m := f.w.SpawnMonster(actor.Lookup(species), p, att)
	if m == nil {
		t.Fatalf("Failed to spawn %s at %v", species, p)
	}
	return m
}

func (f *fixture) texts() []string {
	return f.ui.Texts()
}

// damageBolt builds an unowned dice bolt travelling from src toward tgt
func damageBolt(name string, fl flavour.Flavour, src, tgt gruid.Point, rangeCells int, dice rng.Dice) *Bolt {
	b := NewBolt()
	b.Name = name
	b.Flavour = fl
	b.SetSource(src)
	b.Target = tgt
	b.Range = rangeCells
	b.Damage = dice
	b.Hit = zaps.AutoHit
	b.ACRule = fl.DefaultACRule()
	b.Attitude = actor.Hostile
	return b
}
