package actor

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/flavour"
)

func TestHurtKillsAtZero(t *testing.T) {
	orc := NewMonster(MIDFirstMonster, Lookup("orc"), gruid.Point{X: 1, Y: 1}, Hostile)
	if orc.Hurt(MIDPlayer, 5, flavour.Fire) {
		t.Fatal("Expected orc to survive 5 damage")
	}
	if orc.HP() != 15 {
		t.Errorf("Expected 15 hp, got %d", orc.HP())
	}
	if !orc.Hurt(MIDPlayer, 15, flavour.Fire) {
		t.Error("Expected orc to die")
	}
	if orc.Alive() {
		t.Error("Expected orc dead")
	}
	if orc.Hurt(MIDPlayer, 3, flavour.Fire) {
		t.Error("Expected no second death report")
	}
}

func TestAddEnchMergesExisting(t *testing.T) {
	orc := NewMonster(MIDFirstMonster, Lookup("orc"), gruid.Point{}, Hostile)
	if !orc.AddEnch(Enchantment{Kind: EnchSlow, Degree: 1, Duration: 50}) {
		t.Error("Expected first slow to be new")
	}
	if orc.AddEnch(Enchantment{Kind: EnchSlow, Degree: 1, Duration: 80}) {
		t.Error("Expected second slow to merge")
	}
	e, ok := orc.EnchOf(EnchSlow)
	if !ok || e.Duration != 80 {
		t.Errorf("Expected merged duration 80, got %+v", e)
	}
	if !orc.DelEnch(EnchSlow) || orc.HasEnch(EnchSlow) {
		t.Error("Expected slow removed")
	}
}

func TestCharmTurnsFriendly(t *testing.T) {
	orc := NewMonster(MIDFirstMonster, Lookup("orc"), gruid.Point{}, Hostile)
	orc.AddEnch(Enchantment{Kind: EnchCharm, Degree: 1, Duration: 100})
	if !orc.Friendly() {
		t.Error("Expected charmed orc to be friendly")
	}
}

func TestPolymorphKeepsHPFraction(t *testing.T) {
	orc := NewMonster(MIDFirstMonster, Lookup("orc"), gruid.Point{}, Hostile)
	orc.SetHP(10)
	orc.Polymorph(Lookup("ogre"))
	if orc.Species().Name != "ogre" {
		t.Fatalf("Expected ogre, got %s", orc.Species().Name)
	}
	if orc.HP() != 30 {
		t.Errorf("Expected half of 60 hp, got %d", orc.HP())
	}
	if orc.Name() != "the ogre" {
		t.Errorf("Expected renamed creature, got %s", orc.Name())
	}
}

func TestDrainExpImmunity(t *testing.T) {
	sk := NewMonster(MIDFirstMonster, Lookup("skeleton"), gruid.Point{}, Hostile)
	if sk.DrainExp(MIDPlayer) {
		t.Error("Expected undead to resist draining")
	}
	tr := NewMonster(MIDFirstMonster+1, Lookup("troll"), gruid.Point{}, Hostile)
	if !tr.DrainExp(MIDPlayer) || tr.XL() != 6 {
		t.Errorf("Expected troll drained to 6, got %d", tr.XL())
	}
}

func TestResistanceEnchantmentRaisesResists(t *testing.T) {
	p := NewPlayer(gruid.Point{})
	p.AddEnch(Enchantment{Kind: EnchResistance, Degree: 1, Duration: 100})
	if p.Res(ResFire) != 1 {
		t.Errorf("Expected rF+ under resistance, got %d", p.Res(ResFire))
	}
	if p.Res(ResHoly) != 0 {
		t.Errorf("Expected holy untouched, got %d", p.Res(ResHoly))
	}
}

func TestOpposed(t *testing.T) {
	p := NewPlayer(gruid.Point{})
	ally := NewMonster(MIDFirstMonster, Lookup("orc"), gruid.Point{}, Friendly)
	foe := NewMonster(MIDFirstMonster+1, Lookup("orc"), gruid.Point{}, Hostile)
	if Opposed(p, ally) {
		t.Error("Expected player and ally on the same side")
	}
	if !Opposed(p, foe) || !Opposed(ally, foe) {
		t.Error("Expected hostile orc opposed to player side")
	}
}
