package beam

import (
	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/ui"
)

// Status helpers shared with melee and trap code. They print through the
// engine's UI directly since they are not tied to a bolt.

func (e *Engine) announce(a actor.Actor, ch ui.Channel, monsterFormat, playerText string) {
	e.sayActor(nil, a, ch, monsterFormat, playerText)
}

// PoisonMonster adds levels of poison; force ignores poison resistance
// Reports whether the poison took hold
func (e *Engine) PoisonMonster(a actor.Actor, agent actor.MID, levels int, force bool) bool {
	if !a.Alive() || levels <= 0 {
		return false
	}
	if !force && a.Res(actor.ResPoison) > 0 {
		return false
	}
	old, had := a.EnchOf(actor.EnchPoison)
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchPoison,
		Degree:   old.Degree + levels,
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (5 + levels*2),
	})
	if had {
		e.announce(a, ui.ChanPlain, "%s looks even sicker.", "You feel even sicker.")
	} else {
		e.announce(a, ui.ChanPlain, "%s is poisoned.", "You are poisoned.")
	}
	return true
}

// CurareActor poisons the target and, unless it resists poison, slows it
func (e *Engine) CurareActor(agent actor.MID, target actor.Actor, levels int, source string) bool {
	if !target.Alive() || target.Res(actor.ResPoison) > 0 {
		return false
	}
	e.PoisonMonster(target, agent, levels, false)
	if target.HasEnch(actor.EnchSlow) {
		return true
	}
	target.AddEnch(actor.Enchantment{
		Kind:     actor.EnchSlow,
		Degree:   1,
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (2 + e.RNG.Random2(3+levels)),
	})
	e.announce(target, ui.ChanPlain, "%s seems to slow down.", "The "+source+" slows your movements.")
	return true
}

// MiasmaMonster sickens the living; undead, nonliving and rot resistant actors are unaffected
func (e *Engine) MiasmaMonster(a actor.Actor, agent actor.MID) bool {
	if !a.Alive() || a.Holiness()&(actor.Undead|actor.Nonliving) != 0 || a.Res(actor.ResRot) > 0 {
		return false
	}
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchSick,
		Degree:   1,
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (3 + e.RNG.Random2(6)),
	})
	if e.RNG.OneChanceIn(3) && !a.HasEnch(actor.EnchSlow) {
		a.AddEnch(actor.Enchantment{Kind: actor.EnchSlow, Degree: 1, Agent: agent, Duration: e.cfgBeam().BaselineDelay * 3})
	}
	e.announce(a, ui.ChanPlain, "%s looks sick.", "You feel ill.")
	return true
}

// NapalmMonster covers the target in sticky flame
func (e *Engine) NapalmMonster(a actor.Actor, agent actor.MID, levels int) bool {
	if !a.Alive() || levels <= 0 || a.Res(actor.ResFire) >= 3 {
		return false
	}
	old, _ := a.EnchOf(actor.EnchStickyFlame)
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchStickyFlame,
		Degree:   min(old.Degree+levels, 15),
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (old.Degree + levels),
	})
	e.announce(a, ui.ChanMonsterDamage, "%s is covered in liquid flames!", "You are covered in liquid flames!")
	return true
}

// SilverDamagesVictim returns the extra damage silver deals to the unholy and chaotic, with its message
func (e *Engine) SilverDamagesVictim(a actor.Actor, damage int) (int, string) {
	unholy := a.Holiness()&(actor.Undead|actor.Demonic) != 0 || a.HasFlag(actor.FlagChaotic)
	if !unholy || damage <= 0 {
		return 0, ""
	}
	extra := damage * 3 / 4
	if a.IsPlayer() {
		return extra, "The silver sears you!"
	}
	if !e.seesActor(a) {
		return extra, ""
	}
	return extra, "The silver sears " + a.Name() + "!"
}

// CorrodeActor eats away at the target's armour; acid resistance prevents it
func (e *Engine) CorrodeActor(a actor.Actor, agent actor.MID) bool {
	if !a.Alive() || a.Res(actor.ResAcid) > 0 {
		return false
	}
	old, _ := a.EnchOf(actor.EnchCorrosion)
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchCorrosion,
		Degree:   min(old.Degree+1, 3),
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (10 + e.RNG.Random2(10)),
	})
	e.announce(a, ui.ChanPlain, "%s is corroded!", "The acid corrodes your armour!")
	return true
}

// SplashAcid corrodes the target and sometimes the actors beside it
func (e *Engine) SplashAcid(a actor.Actor, agent actor.MID) int {
	n := 0
	if e.CorrodeActor(a, agent) {
		n++
	}
	for _, off := range geom.Compass {
		other := e.World.ActorAt(a.Pos().Add(off))
		if other == nil || other.MID() == agent || !e.RNG.OneChanceIn(3) {
			continue
		}
		if e.CorrodeActor(other, agent) {
			n++
		}
	}
	return n
}

// RotActor shrinks the living target's maximum hit points by levels
func (e *Engine) RotActor(a actor.Actor, agent actor.MID, levels int) bool {
	if !a.Alive() || levels <= 0 || a.Res(actor.ResRot) > 0 || a.Holiness()&(actor.Undead|actor.Nonliving|actor.PlantLife) != 0 {
		return false
	}
	old, _ := a.EnchOf(actor.EnchRot)
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchRot,
		Degree:   old.Degree + levels,
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (20 + e.RNG.Random2(10)),
	})
	e.announce(a, ui.ChanMonsterDamage, "%s looks less resilient!", "You feel your flesh rotting away!")
	return true
}

// ImpaleWithBarbs lodges barbed spikes that hold the target in place
func (e *Engine) ImpaleWithBarbs(a actor.Actor, agent actor.MID) bool {
	if !a.Alive() || a.HasFlag(actor.FlagStationary) {
		return false
	}
	old, _ := a.EnchOf(actor.EnchBarbs)
	a.AddEnch(actor.Enchantment{
		Kind:     actor.EnchBarbs,
		Degree:   min(old.Degree+1, 4),
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (3 + e.RNG.Random2(3)),
	})
	e.announce(a, ui.ChanPlain, "%s is skewered by barbed spikes.", "Barbed spikes become lodged in your body.")
	return true
}

type pie struct {
	name string
	ench actor.Ench
}

var pies = []rng.Weighted[pie]{
	{Value: pie{"plum", actor.EnchConfusion}, Weight: 3},
	{Value: pie{"starberry", actor.EnchCorona}, Weight: 2},
	{Value: pie{"lumpy gravy", actor.EnchSlow}, Weight: 2},
	{Value: pie{"blackcurrant", actor.EnchWeak}, Weight: 1},
}

// PieEffect splatters the target with a random pie and returns its filling
// An actor already under the pie's effect only gets messy
func (e *Engine) PieEffect(a actor.Actor, agent actor.MID) string {
	if !a.Alive() {
		return ""
	}
	p := rng.ChooseWeighted(e.RNG, pies)
	if a.IsPlayer() {
		e.say(nil, ui.ChanPlain, "You are splattered with %s pie!", p.name)
	} else if e.seesActor(a) {
		e.say(nil, ui.ChanPlain, "%s is splattered with %s pie!", capitalise(a.Name()), p.name)
	}
	if a.HasEnch(p.ench) {
		return p.name
	}
	a.AddEnch(actor.Enchantment{
		Kind:     p.ench,
		Degree:   1,
		Agent:    agent,
		Duration: e.cfgBeam().BaselineDelay * (3 + e.RNG.Random2(4)),
	})
	return p.name
}
