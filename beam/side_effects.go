package beam

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/ui"
)

// applySideEffects runs the flavour and chained effects of a landed hit on a surviving actor
// It returns a short name of the most notable effect for the firing report
func (e *Engine) applySideEffects(b *Bolt, a actor.Actor, dmg int) string {
	agent := b.agent()
	effect := ""
	note := func(s string) {
		if effect == "" {
			effect = s
		}
	}

	switch b.Flavour {
	case flavour.StickyFlame:
		if e.NapalmMonster(a, agent, 1+e.RNG.Random2Avg(7, 2)) {
			note("napalm")
		}
	case flavour.Negative:
		if dmg > 0 && a.DrainExp(agent) {
			e.sayActor(b, a, ui.ChanMonsterDamage, "%s is drained.", "You feel drained.")
			note("drained")
		}
	case flavour.Poison:
		if e.PoisonMonster(a, agent, 1+e.RNG.Random2(dmg/2+1), false) {
			note("poisoned")
		}
	case flavour.PoisonArrow:
		if e.PoisonMonster(a, agent, 2+e.RNG.Random2(dmg+1), true) {
			note("poisoned")
		}
	case flavour.Miasma:
		if e.MiasmaMonster(a, agent) {
			note("sick")
		}
	case flavour.Acid:
		if dmg > 0 && e.SplashAcid(a, agent) > 0 {
			note("corroded")
		}
	case flavour.Spore, flavour.Mephitic:
		if a.Res(actor.ResPoison) <= 0 && !a.HasEnch(actor.EnchConfusion) {
			a.AddEnch(actor.Enchantment{
				Kind:     actor.EnchConfusion,
				Degree:   1,
				Agent:    agent,
				Duration: e.cfgBeam().BaselineDelay * (2 + e.RNG.Random2(3)),
			})
			e.sayActor(b, a, ui.ChanPlain, "%s appears confused.", "You feel confused.")
			note("confused")
		}
	}

	switch b.Flavour {
	case flavour.Fire, flavour.Cold, flavour.Lava, flavour.Ice, flavour.StickyFlame, flavour.Water:
		a.ExposeToElement(b.Flavour, 2)
	}

	if b.Effects.Freezes && a.Alive() && !a.HasEnch(actor.EnchFrozen) {
		a.AddEnch(actor.Enchantment{Kind: actor.EnchFrozen, Degree: 1, Agent: agent, Duration: e.cfgBeam().BaselineDelay})
		e.sayActor(b, a, ui.ChanPlain, "%s is flash-frozen.", "You are encased in ice.")
		note("frozen")
	}

	if b.Effects.Rot > 0 && e.RotActor(a, agent, b.Effects.Rot) {
		note("rotted")
	}
	if b.Effects.Barbs && dmg > 0 && e.ImpaleWithBarbs(a, agent) {
		note("impaled")
	}
	if b.Effects.Pie && e.PieEffect(a, agent) != "" {
		note("pie")
	}

	if b.Item != nil && b.Item.Curare {
		if e.CurareActor(agent, a, 2, b.Item.Name) {
			note("curare")
		}
	}

	if b.Effects.Knockback > 0 && a.Alive() {
		if e.knockback(b, a, b.Effects.Knockback) {
			note("knockback")
		}
	}
	if b.Effects.Pull && a.Alive() {
		if e.pull(b, a) {
			note("pulled")
		}
	}
	return effect
}

// direction returns the unit step from one cell toward another
func direction(from, to gruid.Point) gruid.Point {
	d := to.Sub(from)
	return gruid.Point{X: geom.Sign(d.X), Y: geom.Sign(d.Y)}
}

// knockback pushes a away from the bolt's current leg source
func (e *Engine) knockback(b *Bolt, a actor.Actor, dist int) bool {
	dir := direction(b.Source, a.Pos())
	if dir == (gruid.Point{}) {
		return false
	}
	if e.World.Push(a, dir, dist) == 0 {
		return false
	}
	e.sayActor(b, a, ui.ChanPlain, "%s is knocked back.", "You are knocked back.")
	return true
}

// pull drags a toward the source until it stands adjacent or is blocked
func (e *Engine) pull(b *Bolt, a actor.Actor) bool {
	moved := false
	for !geom.Adjacent(a.Pos(), b.Source) && a.Pos() != b.Source {
		if !e.World.Move(a, a.Pos().Add(direction(a.Pos(), b.Source))) {
			break
		}
		moved = true
	}
	if moved {
		e.sayActor(b, a, ui.ChanPlain, "%s is pulled toward its attacker.", "You are pulled forward.")
	}
	return moved
}
