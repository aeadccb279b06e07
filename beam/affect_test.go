package beam

import (
	"slices"
	"testing"

	"codeberg.org/anaseto/gruid/paths"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

func TestIgnoresMonster(t *testing.T) {
	tests := []struct {
		name    string
		species string
		att     actor.Attitude
		setup   func(b *Bolt)
		want    bool
	}{
		{"tunneller ignores digging", "rock worm", actor.Hostile, func(b *Bolt) { b.Flavour = flavour.Digging }, true},
		{"tunneller hit by fire", "rock worm", actor.Hostile, nil, false},
		{"orb passed through", "orb of destruction", actor.Hostile, nil, true},
		{"hostile battlesphere hit", "battlesphere", actor.Hostile, nil, false},
		{"friendly battlesphere passed", "battlesphere", actor.Friendly, nil, true},
		{"bush off target passed", "bush", actor.Hostile, func(b *Bolt) { b.Target = pt(12, 5) }, true},
		{"briar off target passed", "briar patch", actor.Hostile, func(b *Bolt) { b.Target = pt(12, 5) }, true},
		{"bush on target hit", "bush", actor.Hostile, nil, false},
		{"bush hit by piercing bolt", "bush", actor.Hostile, func(b *Bolt) { b.Target = pt(12, 5); b.Pierce = true }, false},
		{"fire vortex in its storm", "fire vortex", actor.Hostile, func(b *Bolt) { b.Effects.Origin = zaps.OriginFireStorm }, true},
		{"fire vortex in a fireball", "fire vortex", actor.Hostile, nil, false},
		{"ice block in glaciation", "block of ice", actor.Hostile, func(b *Bolt) { b.Effects.Origin = zaps.OriginGlaciate }, true},
		{"water elemental in water", "water elemental", actor.Hostile, func(b *Bolt) { b.Flavour = flavour.Water }, true},
		{"allied guardian shot through", "demonic guardian", actor.Friendly, nil, true},
		{"hostile guardian hit", "demonic guardian", actor.Hostile, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, 12, pt(2, 5), 1)
			m := f.spawn(t, tt.species, pt(8, 5), tt.att)
			b := damageBolt("bolt of fire", flavour.Fire, pt(2, 5), pt(8, 5), 8, rng.Dice{Num: 1, Size: 3})
			b.SourceID = actor.MIDPlayer
			b.Attitude = actor.Friendly
			if tt.setup != nil {
				tt.setup(b)
			}
			if got := f.e.ignoresMonster(b, m); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShieldReflection(t *testing.T) {
	tests := []struct {
		name    string
		hit     int
		flav    flavour.Flavour
		reflect bool
	}{
		{"blockable missile", 10, flavour.MMissile, true},
		{"auto-hit bolt", zaps.AutoHit, flavour.MMissile, false},
		{"enchantment", 10, flavour.Slow, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, 12, pt(2, 5), 13)
			knight := f.spawn(t, "deep elf knight", pt(6, 5), actor.Hostile)
			knight.SetReflection(1<<20, true, false)
			b := damageBolt("magic dart", tt.flav, pt(2, 5), pt(6, 5), 8, rng.Dice{Num: 1, Size: 3})
			b.SourceID = actor.MIDPlayer
			b.Hit = tt.hit

			if got := f.e.tryReflect(b, knight); got != tt.reflect {
				t.Errorf("Expected reflect %v, got %v", tt.reflect, got)
			}
		})
	}
}

func TestShieldReflectionSendsBoltBack(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 13)
	knight := f.spawn(t, "deep elf knight", pt(6, 5), actor.Hostile)
	knight.SetReflection(1<<20, true, false)
	b := damageBolt("magic dart", flavour.MMissile, pt(2, 5), pt(6, 5), 8, rng.Dice{Num: 1, Size: 3})
	b.SourceID = actor.MIDPlayer
	b.Hit = 10
	f.e.Fire(b)

	if b.Reflections != 1 || b.Reflector != knight.MID() {
		t.Fatalf("Expected one reflection by the knight, got %d by %d", b.Reflections, b.Reflector)
	}
	if knight.HP() != knight.MaxHP() {
		t.Errorf("Expected the knight unharmed, got hp %d", knight.HP())
	}
	if b.Target != pt(2, 5) {
		t.Errorf("Expected the bolt re-aimed at (2,5), got %v", b.Target)
	}
	if !slices.Contains(f.texts(), "The deep elf knight reflects the magic dart!") {
		t.Errorf("Expected reflection message, got %v", f.texts())
	}
}

func TestAgentCredit(t *testing.T) {
	tests := []struct {
		name        string
		source      actor.MID
		reflector   actor.MID
		reflections int
		want        actor.MID
	}{
		{"unreflected", 7, actor.MIDNobody, 0, 7},
		{"player bolt reflected", actor.MIDPlayer, 7, 1, actor.MIDYouFaultless},
		{"player reflects a monster bolt", 7, actor.MIDPlayer, 1, actor.MIDYouFaultless},
		{"monster reflects a monster bolt", 7, 9, 1, 9},
	}
	for _, tt := range tests {
		b := NewBolt()
		b.SourceID = tt.source
		b.Reflector = tt.reflector
		b.Reflections = tt.reflections
		if got := b.agent(); got != tt.want {
			t.Errorf("%s: expected agent %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestPlayerReflectedBoltIsFaultless(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 13)
	f.player.SetReflection(1<<20, true, true)
	orc := f.spawn(t, "orc", pt(8, 5), actor.Hostile)
	b := damageBolt("blast of poison", flavour.Poison, orc.Pos(), f.player.Pos(), 8, rng.Dice{Num: 1, Size: 2})
	b.SourceID = orc.MID()
	b.Hit = 10
	b.Effects.TrailCloud = zaps.CloudSpec{Kind: world.CloudPoison, Duration: 5}
	f.e.Fire(b)

	if b.Reflector != actor.MIDPlayer {
		t.Fatalf("Expected the player to reflect, got reflector %d", b.Reflector)
	}
	c, ok := f.w.CloudAt(pt(4, 5))
	if !ok || c.Agent != actor.MIDYouFaultless {
		t.Errorf("Expected faultless cloud on the return leg, got %+v", c)
	}
}

func TestExplosionCloudsAndVortices(t *testing.T) {
	t.Run("mephitic", func(t *testing.T) {
		f := newFixture(t, 20, 12, pt(2, 5), 8)
		f.e.Zapping(zaps.MephiticCloud, 50, shortBolt(), false, "", false)

		c, ok := f.w.CloudAt(pt(8, 5))
		if !ok || c.Kind != world.CloudMephitic || c.Agent != actor.MIDPlayer {
			t.Fatalf("Expected player's noxious fumes at the centre, got %+v", c)
		}
		for y := 0; y < 12; y++ {
			for x := 0; x < 20; x++ {
				c, ok := f.w.CloudAt(pt(x, y))
				if !ok {
					continue
				}
				if paths.DistanceChebyshev(pt(x, y), pt(8, 5)) > 1 {
					t.Errorf("Expected fumes within the blast, got one at (%d,%d)", x, y)
				}
				if c.Duration < 6 || c.Duration > 8 {
					t.Errorf("Expected duration in 6..8, got %d", c.Duration)
				}
			}
		}
	})

	for _, chaos := range []bool{false, true} {
		f := newFixture(t, 20, 12, pt(2, 5), 8)
		f.player.SetChaosMagic(chaos)
		f.e.Zapping(zaps.FireStorm, 100, shortBolt(), false, "", false)

		want := "fire vortex"
		if chaos {
			want = "chaos vortex"
		}
		vortices := 0
		for _, m := range f.w.Monsters() {
			vortices++
			if m.Species().Name != want {
				t.Errorf("Expected %s, got %s", want, m.Species().Name)
			}
			if m.Attitude() != actor.Friendly {
				t.Errorf("Expected a friendly vortex, got %v", m.Attitude())
			}
			if paths.DistanceChebyshev(m.Pos(), pt(8, 5)) > 2 {
				t.Errorf("Expected vortex within the storm, got %v", m.Pos())
			}
		}
		if vortices == 0 {
			t.Errorf("Expected a %s to form in the storm", want)
		}
		for _, p := range []struct{ x, y int }{{8, 5}, {6, 3}, {10, 7}} {
			if c, ok := f.w.CloudAt(pt(p.x, p.y)); !ok || c.Kind != world.CloudFire {
				t.Errorf("Expected flame at (%d,%d), got %+v", p.x, p.y, c)
			}
		}
	}
}

func TestKnockbackAndPull(t *testing.T) {
	tests := []struct {
		name  string
		start int
		wall  int
		setup func(b *Bolt)
		want  int
	}{
		{"knockback two cells", 6, 0, func(b *Bolt) { b.Effects.Knockback = 2 }, 8},
		{"knockback into a wall", 6, 7, func(b *Bolt) { b.Effects.Knockback = 2 }, 6},
		{"pull to the caster", 9, 0, func(b *Bolt) { b.Effects.Pull = true }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, 12, pt(2, 5), 2)
			if tt.wall > 0 {
				f.w.SetFeat(pt(tt.wall, 5), world.StoneWall)
			}
			troll := f.spawn(t, "troll", pt(tt.start, 5), actor.Hostile)
			b := damageBolt("lance of force", flavour.MMissile, pt(2, 5), troll.Pos(), 8, rng.Dice{Num: 1, Size: 2})
			b.SourceID = actor.MIDPlayer
			tt.setup(b)
			f.e.Fire(b)

			if troll.Pos() != pt(tt.want, 5) {
				t.Errorf("Expected troll at (%d,5), got %v", tt.want, troll.Pos())
			}
		})
	}
}

func TestCloudToHitPenalty(t *testing.T) {
	tests := []struct {
		name string
		hit  int
		want int
	}{
		{"rolled to-hit", 30, 26},
		{"auto-hit", zaps.AutoHit, zaps.AutoHit},
	}
	for _, tt := range tests {
		f := newFixture(t, 20, 12, pt(2, 5), 2)
		f.w.PlaceCloud(world.CloudCold, pt(4, 5), 10, actor.MIDNobody)
		f.w.PlaceCloud(world.CloudCold, pt(5, 5), 10, actor.MIDNobody)
		b := damageBolt("magic dart", flavour.MMissile, pt(2, 5), pt(8, 5), 6, rng.Dice{Num: 1, Size: 3})
		b.Hit = tt.hit
		f.e.Fire(b)

		if b.Hit != tt.want {
			t.Errorf("%s: expected to-hit %d, got %d", tt.name, tt.want, b.Hit)
		}
	}
}

func TestChaosSuppressesNoEffectMessages(t *testing.T) {
	tests := []struct {
		name string
		flav flavour.Flavour
		text string
	}{
		{"unaffected", flavour.SnakesToSticks, "The orc is unaffected."},
		{"nothing happens", flavour.Healing, "Nothing appears to happen."},
	}
	for _, tt := range tests {
		for _, chaos := range []bool{false, true} {
			f := newFixture(t, 20, 12, pt(2, 5), 2)
			orc := f.spawn(t, "orc", pt(6, 5), actor.Hostile)
			b := NewBolt()
			b.Name = "bolt"
			b.Flavour = tt.flav
			b.EnchPower = 50
			b.RealFlavour = tt.flav
			if chaos {
				b.RealFlavour = flavour.Chaos
			}
			f.e.enchantActor(b, orc)

			if got := slices.Contains(f.texts(), tt.text); got == chaos {
				t.Errorf("%s chaos=%v: expected message %v, got %v", tt.name, chaos, !chaos, f.texts())
			}
		}
	}
}

func TestInvisiblePlayerFoundNearTracer(t *testing.T) {
	tests := []struct {
		name      string
		caster    string
		invisible bool
		want      int
	}{
		{"visible player off the line", "orc wizard", false, 0},
		{"invisible player near the line", "orc wizard", true, 1},
		{"caster sees invisible", "angel", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, 12, pt(2, 5), 4)
			if tt.invisible {
				f.player.AddEnch(actor.Enchantment{Kind: actor.EnchInvisible, Degree: 1, Duration: 100})
			}
			caster := f.spawn(t, tt.caster, pt(10, 5), actor.Hostile)
			b := damageBolt("bolt of lightning", flavour.Electricity, caster.Pos(), pt(4, 3), 6, rng.Dice{Num: 3, Size: 10})
			b.Pierce = true
			f.e.FireTracer(caster, b, false, false)

			if b.FoeInfo.Count != tt.want {
				t.Errorf("Expected %d foes, got %d", tt.want, b.FoeInfo.Count)
			}
			if f.player.HP() != f.player.MaxHP() {
				t.Errorf("Expected the tracer to leave the player unharmed, got hp %d", f.player.HP())
			}
		})
	}
}

func TestHeardButNotSeen(t *testing.T) {
	tests := []struct {
		name  string
		wall  bool
		seen  bool
		heard bool
	}{
		{"behind a wall", true, false, true},
		{"in the open", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20, 12, pt(2, 5), 4)
			if tt.wall {
				for y := 1; y < 11; y++ {
					f.w.SetFeat(pt(6, y), world.RockWall)
				}
			}
			orc := f.spawn(t, "orc", pt(9, 5), actor.Hostile)
			b := damageBolt("magic dart", flavour.MMissile, pt(11, 5), orc.Pos(), 2, rng.Dice{Num: 1, Size: 3})
			b.Loudness = 12
			f.e.Fire(b)

			r := b.Report()
			if r.Seen != tt.seen || r.Heard != tt.heard {
				t.Errorf("Expected seen %v heard %v, got seen %v heard %v", tt.seen, tt.heard, r.Seen, r.Heard)
			}
		})
	}
}
