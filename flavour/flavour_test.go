package flavour

import "testing"

func TestParseRoundTripsNames(t *testing.T) {
	for f := None; f < Count; f++ {
		got, err := Parse(f.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", f.String(), err)
		}
		if got != f {
			t.Errorf("Expected %v, got %v", f, got)
		}
	}
	if _, err := Parse("plaid"); err == nil {
		t.Error("Expected error for unknown name")
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		f           Flavour
		enchantment bool
		rewriter    bool
		damage      bool
	}{
		{Fire, false, false, true},
		{Electricity, false, false, true},
		{Digging, false, false, false},
		{Visual, false, false, false},
		{Slow, true, false, false},
		{Corona, true, false, false},
		{Fear, true, false, false},
		{Chaos, false, true, false},
		{Chaotic, false, true, false},
	}
	for _, tt := range tests {
		if got := tt.f.IsEnchantment(); got != tt.enchantment {
			t.Errorf("%v IsEnchantment: expected %v, got %v", tt.f, tt.enchantment, got)
		}
		if got := tt.f.IsRewriter(); got != tt.rewriter {
			t.Errorf("%v IsRewriter: expected %v, got %v", tt.f, tt.rewriter, got)
		}
		if got := tt.f.IsDamage(); got != tt.damage {
			t.Errorf("%v IsDamage: expected %v, got %v", tt.f, tt.damage, got)
		}
	}
}

func TestDefaultACRule(t *testing.T) {
	tests := map[Flavour]ACRule{
		Damnation:   ACNone,
		Ensnare:     ACNone,
		Electricity: ACHalf,
		Frag:        ACTriple,
		SilverFrag:  ACTriple,
		Fire:        ACNormal,
	}
	for f, want := range tests {
		if got := f.DefaultACRule(); got != want {
			t.Errorf("%v: expected %v, got %v", f, want, got)
		}
	}
}

func TestSavingThrow(t *testing.T) {
	if !Slow.HasSavingThrow() {
		t.Error("Expected slow to allow a saving throw")
	}
	if Haste.HasSavingThrow() {
		t.Error("Expected haste to land without a saving throw")
	}
	if Fire.HasSavingThrow() {
		t.Error("Expected damage flavours to skip the saving throw")
	}
}
