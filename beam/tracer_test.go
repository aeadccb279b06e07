package beam

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/ui/mocks"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

func TestTracerCancelledOnFriendlyFire(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mocks.NewMockPrompter(ctrl)

	f := newFixture(t, 20, 12, pt(2, 5), 9)
	f.e.UI = ui.Compose(f.ui, f.ui, prompter)
	ally := f.spawn(t, "orc", pt(4, 5), actor.Friendly)
	foe := f.spawn(t, "orc", pt(7, 5), actor.Hostile)

	prompter.EXPECT().
		YesNo("Your bolt of fire is likely to hit the orc. Continue anyway?", false).
		Return(false).
		Times(1)

	b := NewBolt()
	b.Target = foe.Pos()
	b.Range = 8
	got := f.e.Zapping(zaps.BoltOfFire, 30, b, true, "", false)

	if got != SpretAbort {
		t.Fatalf("Expected %s, got %s", SpretAbort, got)
	}
	if !b.Cancelled {
		t.Error("Expected bolt marked cancelled")
	}
	if b.State() != StateTraced {
		t.Errorf("Expected bolt left in %s, got %s", StateTraced, b.State())
	}
	if ally.HP() != ally.MaxHP() || foe.HP() != foe.MaxHP() {
		t.Error("Expected no damage from a cancelled zap")
	}
	if f.e.Stats.Count(status.BeamFired) != 0 {
		t.Errorf("Expected no real firing, got %d", f.e.Stats.Count(status.BeamFired))
	}
	if f.e.Stats.Count(status.BeamCancelled) != 1 {
		t.Errorf("Expected 1 cancellation, got %d", f.e.Stats.Count(status.BeamCancelled))
	}
}

func TestTracerConfirmedThenFired(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 9)
	f.ui.Answer = func(string) bool { return true }
	f.spawn(t, "orc", pt(4, 5), actor.Friendly)
	foe := f.spawn(t, "orc", pt(7, 5), actor.Hostile)

	b := NewBolt()
	b.Target = foe.Pos()
	b.Range = 8
	got := f.e.Zapping(zaps.BoltOfFire, 30, b, true, "You cast the bolt.", false)

	if got != SpretSuccess {
		t.Fatalf("Expected %s, got %s", SpretSuccess, got)
	}
	if len(f.ui.Prompts) != 1 {
		t.Errorf("Expected one prompt, got %v", f.ui.Prompts)
	}
	if !b.FriendInfo.DontStop {
		t.Error("Expected confirmation to suppress further prompts")
	}
	if b.State() != StateFired {
		t.Errorf("Expected %s, got %s", StateFired, b.State())
	}
	if f.e.Stats.Count(status.BeamFired) != 1 || f.e.Stats.Count(status.BeamTracers) != 1 {
		t.Errorf("Expected one tracer and one firing, got %d and %d",
			f.e.Stats.Count(status.BeamTracers), f.e.Stats.Count(status.BeamFired))
	}
	if len(f.ui.Messages) == 0 || f.ui.Messages[0].Text != "You cast the bolt." {
		t.Errorf("Expected cast message first, got %v", f.texts())
	}
}

func TestZappingFailSkipsFiring(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 9)
	foe := f.spawn(t, "orc", pt(7, 5), actor.Hostile)

	b := NewBolt()
	b.Target = foe.Pos()
	b.Range = 8
	if got := f.e.Zapping(zaps.MagicDart, 10, b, false, "", true); got != SpretFail {
		t.Errorf("Expected %s, got %s", SpretFail, got)
	}
	if foe.HP() != foe.MaxHP() {
		t.Error("Expected miscast to leave the target untouched")
	}
	if f.e.Stats.Count(status.BeamFired) != 0 {
		t.Error("Expected no firing after a miscast")
	}
}

func TestPlayerTracerWarnsAboutSelfHit(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 9)

	b := NewBolt()
	b.Target = f.player.Pos()
	if f.e.PlayerTracer(zaps.BoltOfFire, 30, b, 8) {
		t.Error("Expected default answer to cancel a self-targeted bolt")
	}
	if len(f.ui.Prompts) != 1 || f.ui.Prompts[0] != "That bolt of fire is likely to hit you. Continue anyway?" {
		t.Errorf("Expected self-hit prompt, got %v", f.ui.Prompts)
	}
}

func lightningFrom(caster actor.Actor, target actor.Actor, rangeCells int) *Bolt {
	b := damageBolt("bolt of lightning", flavour.Electricity, caster.Pos(), target.Pos(), rangeCells, rng.Dice{Num: 3, Size: 10})
	b.Pierce = true
	b.SourceID = caster.MID()
	b.SourceName = caster.Name()
	b.Attitude = caster.Attitude()
	return b
}

func TestFireTracerFoeRatio(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 5), 4)
	wizard := f.spawn(t, "orc wizard", pt(10, 5), actor.Hostile)

	b := lightningFrom(wizard, f.player, 8)
	if !f.e.FireTracer(wizard, b, false, false) {
		t.Error("Expected a clear shot at the player to be taken")
	}
	if b.FoeInfo.Count != 1 || b.FoeInfo.Power != f.player.XL() {
		t.Errorf("Expected player scored as foe, got %+v", b.FoeInfo)
	}

	// An ogre and a troll of the caster's side outweigh the player
	f.spawn(t, "ogre", pt(8, 5), actor.Hostile)
	f.spawn(t, "troll", pt(6, 5), actor.Hostile)
	b = lightningFrom(wizard, f.player, 8)
	if f.e.FireTracer(wizard, b, false, false) {
		t.Error("Expected the caster to hold fire through its allies")
	}
	if b.FriendInfo.Count != 2 || b.FriendInfo.Power != 12 {
		t.Errorf("Expected two allies of power 12, got %+v", b.FriendInfo)
	}
	if len(f.ui.Prompts) != 0 {
		t.Errorf("Expected monster tracers never to prompt, got %v", f.ui.Prompts)
	}
	if share := f.e.Stats.Floats.Get(status.TracerFriendShare).Get(); share <= 0.5 {
		t.Errorf("Expected friend share above half, got %f", share)
	}
}

func TestFireTracerWithoutFoesHoldsFire(t *testing.T) {
	f := newFixture(t, 20, 12, pt(2, 2), 4)
	wizard := f.spawn(t, "orc wizard", pt(10, 5), actor.Hostile)
	orc := f.spawn(t, "orc", pt(6, 5), actor.Hostile)

	if f.e.FireTracer(wizard, lightningFrom(wizard, orc, 8), false, false) {
		t.Error("Expected no firing when the tracer meets no foes")
	}
}

// purityScene is a level where an orc wizard lines up lightning through a mixed crowd
func purityScene(t *testing.T) (*fixture, *actor.Creature, *Bolt) {
	f := newFixture(t, 20, 12, pt(2, 5), 21)
	f.w.SetFeat(pt(9, 4), world.Tree)
	wizard := f.spawn(t, "orc wizard", pt(14, 5), actor.Hostile)
	f.spawn(t, "orc", pt(8, 5), actor.Hostile)
	f.spawn(t, "goblin", pt(5, 5), actor.Friendly)
	return f, wizard, lightningFrom(wizard, f.player, 12)
}

func TestTracerLeavesWorldUntouched(t *testing.T) {
	f, wizard, b := purityScene(t)
	before := f.w.Digest()
	f.e.FireTracer(wizard, b, false, false)
	if after := f.w.Digest(); after != before {
		t.Errorf("Expected tracer to leave the level unchanged\nbefore:\n%s\nafter:\n%s", before, after)
	}
	if len(f.ui.Messages) != 0 {
		t.Errorf("Expected tracer to stay silent, got %v", f.texts())
	}
}

func TestTracerDoesNotPerturbRealFiring(t *testing.T) {
	traced, wizard, tb := purityScene(t)
	traced.e.FireTracer(wizard, tb, false, false)
	traced.e.Fire(tb)

	direct, _, db := purityScene(t)
	direct.e.Fire(db)

	if traced.w.Digest() != direct.w.Digest() {
		t.Error("Expected identical levels with and without a preceding tracer")
	}
	if len(tb.Report().Hits) != len(db.Report().Hits) {
		t.Errorf("Expected %d hits, got %d", len(db.Report().Hits), len(tb.Report().Hits))
	}
}

func TestDigTracerDoesNotPerturbRealFiring(t *testing.T) {
	scene := func() (*fixture, *Bolt) {
		f := newFixture(t, 20, 12, pt(2, 5), 33)
		for x := 4; x <= 7; x++ {
			f.w.SetFeat(pt(x, 5), world.RockWall)
		}
		b := digBolt(f, 10)
		return f, b
	}
	traced, tb := scene()
	tb.IsTracer = true
	traced.e.Fire(tb)
	tb.IsTracer = false
	traced.e.Fire(tb)

	direct, db := scene()
	direct.e.Fire(db)

	if traced.w.Digest() != direct.w.Digest() {
		t.Error("Expected dig tracer to leave tunnel power rolls alone")
	}
}
