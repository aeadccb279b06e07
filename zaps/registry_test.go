package zaps

import (
	"errors"
	"testing"

	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
)

func TestLookup(t *testing.T) {
	d := Lookup(BoltOfFire)
	if d == nil {
		t.Fatal("Expected bolt of fire descriptor")
	}
	if d.ID != BoltOfFire {
		t.Errorf("Expected id %d, got %d", BoltOfFire, d.ID)
	}
	if d.Flavour != flavour.Fire || !d.Pierce {
		t.Errorf("Expected piercing fire, got %s pierce=%v", d.Flavour, d.Pierce)
	}
	if Lookup(None) != nil || Lookup(idCount) != nil {
		t.Error("Expected nil for out-of-range ids")
	}
}

func TestByName(t *testing.T) {
	d, err := ByName("fireball")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if !d.Explosion || d.ExSize != 1 {
		t.Errorf("Expected radius-1 explosion, got explosion=%v size=%d", d.Explosion, d.ExSize)
	}
	if _, err := ByName("bolt of cheese"); !errors.Is(err, ErrUnknownZap) {
		t.Errorf("Expected ErrUnknownZap, got %v", err)
	}
}

func TestEveryIDRegistered(t *testing.T) {
	all := All()
	if len(all) != int(idCount)-1 {
		t.Errorf("Expected %d descriptors, got %d", int(idCount)-1, len(all))
	}
	for i, d := range all {
		if int(d.ID) != i+1 {
			t.Errorf("Expected id %d at index %d, got %d", i+1, i, d.ID)
		}
		if d.Name == "" {
			t.Errorf("Zap %d has no name", d.ID)
		}
		if d.Enchantment != d.Flavour.IsEnchantment() {
			t.Errorf("%s: enchantment flag mismatch", d.Name)
		}
	}
}

func TestEvaluateCapsPlayerPower(t *testing.T) {
	d := Lookup(MagicDart)
	capped := d.Evaluate(1000, false)
	atCap := d.Evaluate(d.PowerCap, false)
	if capped.Damage != atCap.Damage {
		t.Errorf("Expected capped damage %v, got %v", atCap.Damage, capped.Damage)
	}
	if capped.Hit != AutoHit {
		t.Errorf("Expected auto hit, got %d", capped.Hit)
	}

	monster := d.Evaluate(1000, true)
	if monster.Damage == capped.Damage {
		t.Error("Expected monster formula to ignore the player cap")
	}
}

func TestEvaluateEnchantment(t *testing.T) {
	s := Lookup(TeleportOther).Evaluate(60, false)
	if s.EnchPower != 90 {
		t.Errorf("Expected enchantment power 90, got %d", s.EnchPower)
	}
	if s.Hit != AutoHit || !s.Damage.IsZero() {
		t.Errorf("Expected auto hit and no dice, got hit=%d dice=%v", s.Hit, s.Damage)
	}
}

func TestEvaluateLinearFormulas(t *testing.T) {
	s := Lookup(BoltOfFire).Evaluate(30, false)
	if s.Damage != (rng.Dice{Num: 6, Size: 38}) {
		t.Errorf("Expected 6d38, got %v", s.Damage)
	}
	if s.Hit != 11 {
		t.Errorf("Expected to-hit 11, got %d", s.Hit)
	}
	if s.EnchPower != 30 {
		t.Errorf("Expected power carried as enchantment power, got %d", s.EnchPower)
	}
}

func TestEnchantPower(t *testing.T) {
	if got := EnchantPower(Banishment, 500, false); got != 150 {
		t.Errorf("Expected capped 100*3/2=150, got %d", got)
	}
	if got := EnchantPower(Banishment, 500, true); got != 750 {
		t.Errorf("Expected uncapped monster power 750, got %d", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown zap")
		}
	}()
	EnchantPower(None, 10, false)
}

func TestPowerCap(t *testing.T) {
	if PowerCap(Hibernation) != 50 {
		t.Errorf("Expected 50, got %d", PowerCap(Hibernation))
	}
	if PowerCap(idCount+5) != 0 {
		t.Error("Expected 0 for unknown id")
	}
}

func TestChainedEffects(t *testing.T) {
	if !Lookup(FreezingCloud).Effects.BigCloud.Active() {
		t.Error("Expected freezing cloud to carry a big cloud")
	}
	if !Lookup(PoisonBreath).Effects.TrailCloud.Active() {
		t.Error("Expected poison breath to leave a trail")
	}
	if Lookup(FireStorm).Effects.Origin != OriginFireStorm {
		t.Error("Expected fire storm origin")
	}
	if Lookup(Ensnare).Effects.Origin != OriginEnsnare {
		t.Error("Expected ensnare origin")
	}
	if Lookup(ExplosiveBolt).Detonation != ExplosiveBlast {
		t.Error("Expected explosive bolt to detonate")
	}
}
