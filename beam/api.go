package beam

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// Spret is the outcome of a player spell or evocation
type Spret uint8

const (
	SpretSuccess Spret = iota
	SpretAbort
	SpretFail
)

func (s Spret) String() string {
	switch s {
	case SpretSuccess:
		return "success"
	case SpretAbort:
		return "abort"
	case SpretFail:
		return "fail"
	}
	return "unknown"
}

// Zapping fills b from zap id at power and fires it for the player
// With needsTracer the player first sees what the bolt would hit and may call it off
// A failed cast costs the turn without firing
func (e *Engine) Zapping(id zaps.ID, power int, b *Bolt, needsTracer bool, msg string, fail bool) Spret {
	assertf(zaps.Lookup(id) != nil, "unknown zap id %d", id)

	player := e.World.Player()
	assertf(player != nil, "zapping without a player")
	if b.SourceID == actor.MIDNobody {
		b.SourceID = actor.MIDPlayer
		b.SetSource(player.Pos())
	}
	b.Attitude = actor.Friendly

	if needsTracer {
		if !e.PlayerTracer(id, power, b, b.Range) {
			return SpretAbort
		}
	}
	if fail {
		e.Log.Debug("zap miscast", zap.Int("zap", int(id)))
		return SpretFail
	}
	if !needsTracer {
		e.Zappy(id, power, false, b)
	}
	if msg != "" {
		e.sayText(b, ui.ChanPlain, msg)
	}
	e.Fire(b)
	return SpretSuccess
}

// massEnchantFlavours maps the enchantments MassEnchantment can broadcast
var massEnchantFlavours = map[actor.Ench]flavour.Flavour{
	actor.EnchFear:      flavour.Fear,
	actor.EnchCharm:     flavour.Charm,
	actor.EnchConfusion: flavour.Confusion,
}

// MassEnchantment applies kind to every monster the player sees without a bolt
func (e *Engine) MassEnchantment(kind actor.Ench, pow int, fail bool) Spret {
	f, ok := massEnchantFlavours[kind]
	assertf(ok, "mass enchantment of %s", kind)
	if fail {
		return SpretFail
	}
	pow = min(e.cfgBeam().MassEnchantCap, pow*3/2)

	b := NewBolt()
	b.Name = f.String()
	b.Flavour = f
	b.RealFlavour = f
	b.EnchPower = pow
	b.SourceID = actor.MIDPlayer
	b.Attitude = actor.Friendly
	if player := e.World.Player(); player != nil {
		b.SetSource(player.Pos())
		b.SourceName = player.Name()
	}

	affected := 0
	for _, m := range e.World.Monsters() {
		if !m.Alive() || !e.World.SeeCellNoTrans(m.Pos()) {
			continue
		}
		if m.HasFlag(actor.FlagFirewood) || m.HasEnch(kind) || !enchantApplies(f, m) {
			continue
		}
		if e.checkResMagic(m, pow) {
			e.sayActor(b, m, ui.ChanPlain, "%s resists.", "")
			e.Stats.Inc(status.EnchantResisted, 1)
			continue
		}
		if e.applyEnchantment(b, m).effect != "" {
			e.Stats.Inc(status.EnchantApplied, 1)
			affected++
		}
	}
	e.Log.Debug("mass enchantment",
		zap.Stringer("ench", kind),
		zap.Int("power", pow),
		zap.Int("affected", affected))
	return SpretSuccess
}

// EnchantActorWithFlavour lands flavour f on target without a saving throw or reflection
// source may be nil for environmental effects
func (e *Engine) EnchantActorWithFlavour(target, source actor.Actor, f flavour.Flavour, pow int) bool {
	b := NewBolt()
	b.Name = f.String()
	b.Flavour = f
	b.RealFlavour = f
	b.EnchPower = pow
	b.SetSource(target.Pos())
	b.Target = target.Pos()
	b.SourceID = actor.MIDNobody
	if source != nil {
		b.SetSource(source.Pos())
		b.SourceID = source.MID()
		b.SourceName = source.Name()
		b.Attitude = source.Attitude()
	}
	b.transition("fire")

	if !enchantApplies(f, target) {
		return false
	}
	res := e.applyEnchantment(b, target)
	if res.effect != "" {
		e.Stats.Inc(status.EnchantApplied, 1)
	}
	return res.effect != ""
}
