package beam

import (
	"slices"
	"strings"
	"testing"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
)

func TestAcidBoltCorrodesTarget(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 5)
	ogre := f.spawn(t, "ogre", pt(8, 5), actor.Hostile)
	b := damageBolt("bolt of acid", flavour.Acid, pt(2, 5), pt(8, 5), 8, rng.Dice{Num: 4, Size: 4})
	f.e.Fire(b)

	e, ok := ogre.EnchOf(actor.EnchCorrosion)
	if !ok || e.Degree != 1 {
		t.Fatalf("Expected corrosion degree 1, got %+v", e)
	}
	if ogre.AC() != 0 {
		t.Errorf("Expected corroded AC 0, got %d", ogre.AC())
	}
	if !slices.Contains(f.texts(), "The ogre is corroded!") {
		t.Errorf("Expected corrosion message, got %v", f.texts())
	}
}

func TestCorrodeActor(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 5)
	troll := f.spawn(t, "troll", pt(8, 5), actor.Hostile)
	oklob := f.spawn(t, "oklob plant", pt(8, 7), actor.Hostile)

	for range 5 {
		f.e.CorrodeActor(troll, actor.MIDPlayer)
	}
	if e, _ := troll.EnchOf(actor.EnchCorrosion); e.Degree != 3 {
		t.Errorf("Expected corrosion capped at 3, got %d", e.Degree)
	}
	if f.e.CorrodeActor(oklob, actor.MIDPlayer) {
		t.Error("Expected acid resistance to prevent corrosion")
	}
	if oklob.HasEnch(actor.EnchCorrosion) {
		t.Error("Expected no corrosion on the oklob plant")
	}
}

func TestRotShrinksMaxHP(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 5)
	troll := f.spawn(t, "troll", pt(8, 5), actor.Hostile)
	skel := f.spawn(t, "skeleton", pt(8, 7), actor.Hostile)

	b := damageBolt("foul vapour", flavour.Miasma, pt(2, 5), pt(8, 5), 8, rng.Dice{Num: 1, Size: 2})
	b.Effects.Rot = 3
	f.e.Fire(b)

	if troll.MaxHP() != 87 {
		t.Errorf("Expected max hp 87, got %d", troll.MaxHP())
	}
	if troll.HP() > troll.MaxHP() {
		t.Errorf("Expected hp clamped to %d, got %d", troll.MaxHP(), troll.HP())
	}
	if f.e.RotActor(skel, actor.MIDPlayer, 3) {
		t.Error("Expected undead to resist rot")
	}
	if skel.MaxHP() != 25 {
		t.Errorf("Expected skeleton max hp 25, got %d", skel.MaxHP())
	}
}

func TestBarbsLodgeInMobileTargets(t *testing.T) {
	tests := []struct {
		species string
		want    bool
	}{
		{"ogre", true},
		{"bush", false},
	}
	for _, tt := range tests {
		f := newFixture(t, 20, 12, pt(2, 5), 5)
		m := f.spawn(t, tt.species, pt(8, 5), actor.Hostile)
		b := damageBolt("volley of spikes", flavour.Missile, pt(2, 5), pt(8, 5), 8, rng.Dice{Num: 3, Size: 3})
		b.Effects.Barbs = true
		f.e.Fire(b)

		if got := m.HasEnch(actor.EnchBarbs); got != tt.want {
			t.Errorf("%s: expected barbs %v, got %v", tt.species, tt.want, got)
		}
	}
}

func TestPieSplattersTarget(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 5)
	ogre := f.spawn(t, "ogre", pt(8, 5), actor.Hostile)
	b := damageBolt("klown pie", flavour.Missile, pt(2, 5), pt(8, 5), 8, rng.Dice{Num: 1, Size: 2})
	b.Effects.Pie = true
	f.e.Fire(b)

	enchs := 0
	for _, k := range []actor.Ench{actor.EnchConfusion, actor.EnchCorona, actor.EnchSlow, actor.EnchWeak} {
		if ogre.HasEnch(k) {
			enchs++
		}
	}
	if enchs != 1 {
		t.Errorf("Expected exactly one pie effect, got %d", enchs)
	}
	splat := slices.ContainsFunc(f.texts(), func(s string) bool {
		return strings.HasPrefix(s, "The ogre is splattered with ")
	})
	if !splat {
		t.Errorf("Expected pie message, got %v", f.texts())
	}
}
