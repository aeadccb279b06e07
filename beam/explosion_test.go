package beam

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

func TestFireballBurnsTreesAndReachesPlayer(t *testing.T) {
	f := newFixture(t, 20, 20, pt(12, 10), 17)
	f.w.SetFeat(pt(11, 10), world.Tree)
	f.w.SetFeat(pt(10, 11), world.Tree)

	b := NewBolt()
	f.e.Zappy(zaps.Fireball, 30, false, b)
	b.ExSize = 2
	b.SetSource(f.player.Pos())
	b.SourceID = actor.MIDPlayer
	b.Attitude = actor.Friendly
	b.Target = pt(10, 10)
	f.e.Explode(b, false, false)

	report := b.Report()
	if len(report.Explosion) != 25 {
		t.Errorf("Expected 25 affected cells, got %d", len(report.Explosion))
	}
	for _, p := range report.Explosion {
		if paths.DistanceChebyshev(p, b.Target) > 2 {
			t.Errorf("Expected cells within radius 2, got %v", p)
		}
	}
	for _, p := range []struct{ x, y int }{{11, 10}, {10, 11}} {
		c := pt(p.x, p.y)
		if f.w.FeatAt(c) != world.Floor {
			t.Errorf("Expected tree at %v burnt away", c)
		}
		if cl, ok := f.w.CloudAt(c); !ok || cl.Kind != world.CloudForestFire {
			t.Errorf("Expected forest fire at %v, got %v %v", c, cl, ok)
		}
	}
	if len(b.Hits(actor.MIDPlayer)) != 1 {
		t.Errorf("Expected the player caught once at radius 2, got %d", len(b.Hits(actor.MIDPlayer)))
	}
	if report.Zap != "fireball" {
		t.Errorf("Expected zap name fireball, got %q", report.Zap)
	}
	if f.e.Stats.Count(status.ExplosionCount) != 1 || f.e.Stats.Count(status.WallDestroyed) != 2 {
		t.Errorf("Expected 1 explosion and 2 burnt trees, got %d and %d",
			f.e.Stats.Count(status.ExplosionCount), f.e.Stats.Count(status.WallDestroyed))
	}
}

func explosionBolt(size int) *Bolt {
	b := NewBolt()
	b.Name = "blast"
	b.Flavour = flavour.Fire
	b.IsExplosion = true
	b.ExSize = size
	b.Damage = rng.Dice{Num: 1, Size: 4}
	b.Attitude = actor.Hostile
	b.Target = pt(15, 15)
	return b
}

func TestZeroRadiusExplosionHitsOnlyCentre(t *testing.T) {
	f := newFixture(t, 30, 30, pt(2, 2), 1)
	b := explosionBolt(0)
	f.e.Explode(b, false, false)

	if b.ExSize != 1 {
		t.Errorf("Expected radius refined to 1, got %d", b.ExSize)
	}
	if got := b.Report().Explosion; len(got) != 1 || got[0] != b.Target {
		t.Errorf("Expected only the centre, got %v", got)
	}
}

func TestOversizedExplosionIsClamped(t *testing.T) {
	f := newFixture(t, 30, 30, pt(2, 2), 1)
	b := explosionBolt(12)
	f.e.Explode(b, false, false)

	if b.ExSize != 9 {
		t.Errorf("Expected radius clamped to 9, got %d", b.ExSize)
	}
	cells := b.Report().Explosion
	if len(cells) != 19*19 {
		t.Errorf("Expected %d cells, got %d", 19*19, len(cells))
	}
	for _, p := range cells {
		if paths.DistanceChebyshev(p, b.Target) > 9 {
			t.Fatalf("Expected every cell within 9, got %v", p)
		}
	}
}

func TestExplosionHoleSparesCentre(t *testing.T) {
	f := newFixture(t, 30, 30, pt(2, 2), 1)
	orc := f.spawn(t, "orc", pt(15, 15), actor.Hostile)
	b := explosionBolt(1)
	f.e.Explode(b, false, true)

	if len(b.Hits(orc.MID())) != 0 {
		t.Error("Expected the centre left alone")
	}
	if got := len(b.Report().Explosion); got != 8 {
		t.Errorf("Expected the 8 surrounding cells, got %d", got)
	}
}

func TestWallsStopExplosionFlood(t *testing.T) {
	f := newFixture(t, 30, 30, pt(15, 12), 1)
	for x := 10; x <= 20; x++ {
		f.w.SetFeat(pt(x, 14), world.StoneWall)
	}
	behind := f.spawn(t, "orc", pt(15, 13), actor.Hostile)
	b := explosionBolt(2)
	f.e.Explode(b, false, false)

	for _, p := range b.Report().Explosion {
		if p.Y <= 14 {
			t.Errorf("Expected flood held below the wall, got %v", p)
		}
	}
	if len(b.Hits(behind.MID())) != 0 {
		t.Error("Expected orc behind the wall untouched")
	}
}

func TestSanctuaryContainsExplosion(t *testing.T) {
	f := newFixture(t, 30, 30, pt(13, 15), 1)
	f.w.SetSanctuary(pt(15, 15), 2)
	orc := f.spawn(t, "orc", pt(16, 15), actor.Hostile)
	b := explosionBolt(2)
	f.e.Explode(b, false, false)

	if len(b.Report().Explosion) != 0 || orc.HP() != orc.MaxHP() {
		t.Error("Expected sanctuary to contain the blast")
	}
	if len(f.ui.Messages) != 1 || f.ui.Messages[0].Text != "The blast is contained by the sanctuary." {
		t.Errorf("Expected containment message, got %v", f.texts())
	}
}

func TestExplosionTracerScoresWithoutDamage(t *testing.T) {
	f := newFixture(t, 30, 30, pt(2, 2), 1)
	caster := f.spawn(t, "orc wizard", pt(10, 15), actor.Hostile)
	victim := f.spawn(t, "goblin", pt(16, 15), actor.Friendly)

	b := explosionBolt(1)
	if !f.e.FireTracer(caster, b, true, false) {
		t.Error("Expected the caster to take a shot that only catches a foe")
	}
	if b.FoeInfo.Count != 1 {
		t.Errorf("Expected one foe scored, got %+v", b.FoeInfo)
	}
	if victim.HP() != victim.MaxHP() {
		t.Error("Expected tracer explosion to deal no damage")
	}
	if b.InExplosionPhase {
		t.Error("Expected explosion phase cleared after the tracer")
	}
}

func TestFireballTravelsThenExplodes(t *testing.T) {
	f := newFixture(t, 30, 30, pt(5, 15), 2)
	orc := f.spawn(t, "orc", pt(12, 15), actor.Hostile)

	b := NewBolt()
	b.Target = pt(20, 15)
	b.Range = 20
	if got := f.e.Zapping(zaps.Fireball, 30, b, false, "", false); got != SpretSuccess {
		t.Fatalf("Expected %s, got %s", SpretSuccess, got)
	}
	last := b.PathTaken[len(b.PathTaken)-1]
	if last != orc.Pos() {
		t.Errorf("Expected the fireball to stop on the orc, got %v", last)
	}
	if len(b.Hits(orc.MID())) != 1 {
		t.Errorf("Expected one explosion hit on the orc, got %d", len(b.Hits(orc.MID())))
	}
	if len(b.Report().Explosion) != 9 {
		t.Errorf("Expected a radius 1 blast, got %d cells", len(b.Report().Explosion))
	}
}

func TestExplodeKeepsSourceAtOrigin(t *testing.T) {
	tests := []struct {
		name   string
		source *gruid.Point
		want   gruid.Point
	}{
		{"unset source centres on target", nil, pt(15, 15)},
		{"corner source kept", &gruid.Point{}, pt(0, 0)},
	}
	for _, tt := range tests {
		f := newFixture(t, 30, 30, pt(2, 2), 1)
		b := explosionBolt(1)
		if tt.source != nil {
			b.SetSource(*tt.source)
		}
		f.e.Explode(b, false, false)

		if b.Source != tt.want {
			t.Errorf("%s: expected source %v, got %v", tt.name, tt.want, b.Source)
		}
	}
}
