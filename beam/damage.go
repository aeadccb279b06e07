package beam

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// resistOutcome classifies how a target's resistances changed the damage
type resistOutcome uint8

const (
	resistNone resistOutcome = iota
	resistPartial
	resistFull
	resistVulnerable
)

// dodges rolls the target's evasion against the bolt's to-hit
func (e *Engine) dodges(b *Bolt, a actor.Actor) bool {
	if b.InExplosionPhase || b.Hit == zaps.AutoHit {
		return false
	}
	hit := b.Hit
	if d := a.MissileDeflection(); d > 0 && (b.Flavour == flavour.Missile || b.Flavour == flavour.MMissile) {
		hit /= 1 + d
	}
	return e.RNG.Random2(hit) < e.RNG.Random2Avg(a.Evasion(), 2)
}

// rollDamage averages three rolls of the bolt's dice
func (e *Engine) rollDamage(b *Bolt) int {
	sum := 0
	for range 3 {
		sum += b.Damage.Roll(e.RNG)
	}
	return sum / 3
}

func (e *Engine) applyAC(b *Bolt, a actor.Actor, dmg int) int {
	ac := a.AC()
	if ac <= 0 || dmg <= 0 {
		return dmg
	}
	var reduction int
	switch b.ACRule {
	case flavour.ACNone:
		return dmg
	case flavour.ACHalf:
		reduction = e.RNG.Random2(ac/2 + 1)
	case flavour.ACTriple:
		reduction = e.RNG.Random2(3*ac + 1)
	default:
		reduction = e.RNG.Random2(ac + 1)
	}
	return max(0, dmg-reduction)
}

// resistScale applies one resistance level to dmg
func resistScale(dmg, r int) (int, resistOutcome) {
	switch {
	case r >= 3:
		return 0, resistFull
	case r == 2:
		return dmg / 3, resistPartial
	case r == 1:
		return dmg / 2, resistPartial
	case r < 0:
		return dmg * 3 / 2, resistVulnerable
	}
	return dmg, resistNone
}

// halfResist applies a resistance to only half of dmg, for partly elemental flavours
func halfResist(dmg, r int) (int, resistOutcome) {
	elemental := dmg / 2
	scaled, out := resistScale(elemental, r)
	if out == resistFull {
		out = resistPartial
	}
	return dmg - elemental + scaled, out
}

// resistAdjust scales damage by the target's resistance to the bolt's flavour
func resistAdjust(b *Bolt, a actor.Actor, dmg int) (int, resistOutcome) {
	switch b.Flavour {
	case flavour.Fire, flavour.StickyFlame:
		return resistScale(dmg, a.Res(actor.ResFire))
	case flavour.Cold:
		return resistScale(dmg, a.Res(actor.ResCold))
	case flavour.Electricity:
		return resistScale(dmg, a.Res(actor.ResElec))
	case flavour.Acid:
		return resistScale(dmg, a.Res(actor.ResAcid))
	case flavour.Steam:
		return resistScale(dmg, a.Res(actor.ResSteam))
	case flavour.Lava:
		return halfResist(dmg, a.Res(actor.ResFire))
	case flavour.Ice:
		return halfResist(dmg, a.Res(actor.ResCold))
	case flavour.Poison:
		if a.Res(actor.ResPoison) > 0 {
			return 0, resistFull
		}
	case flavour.PoisonArrow:
		if a.Res(actor.ResPoison) > 0 {
			return dmg / 2, resistPartial
		}
	case flavour.Negative:
		r := min(a.Res(actor.ResNegative), 3)
		if r >= 3 {
			return 0, resistFull
		}
		if r > 0 {
			return dmg * (3 - r) / 3, resistPartial
		}
	case flavour.Holy:
		r := a.Res(actor.ResHoly)
		if r > 0 {
			return 0, resistFull
		}
		if r < 0 {
			return dmg * 3 / 2, resistVulnerable
		}
	case flavour.Damnation:
		if a.Res(actor.ResDamnation) > 0 {
			return 0, resistFull
		}
	case flavour.Miasma:
		if a.Holiness()&(actor.Undead|actor.Nonliving) != 0 || a.Res(actor.ResRot) > 0 {
			return 0, resistFull
		}
	}
	return dmg, resistNone
}

// damageActor rolls and applies a dice bolt to a; it reports false when the bolt missed
func (e *Engine) damageActor(b *Bolt, a actor.Actor) bool {
	if e.dodges(b, a) {
		if e.seesActor(a) {
			e.say(b, ui.ChanPlain, "The %s misses %s.", b.Name, e.objectName(a))
		}
		return false
	}

	pre := e.rollDamage(b)
	dmg := e.applyAC(b, a, pre)
	dmg, outcome := resistAdjust(b, a, dmg)
	var silverMsg string
	if b.Flavour == flavour.Silver || b.Flavour == flavour.SilverFrag {
		var extra int
		extra, silverMsg = e.SilverDamagesVictim(a, dmg)
		dmg += extra
	}

	if !b.Damage.IsZero() {
		e.hitMessage(b, a, pre, dmg, outcome)
		if silverMsg != "" {
			e.sayText(b, ui.ChanPlain, silverMsg)
		}
	}

	killed := false
	if dmg > 0 {
		killed = a.Hurt(b.agent(), dmg, b.Flavour)
		e.Stats.Inc(status.BeamDamage, int64(dmg))
	}
	e.Log.Debug("hit",
		zap.String("firing", b.firing),
		zap.String("target", a.Name()),
		zap.Stringer("flavour", b.Flavour),
		zap.Int("pre", pre),
		zap.Int("damage", dmg),
		zap.Bool("killed", killed))

	if b.SourceID == actor.MIDPlayer && !a.IsPlayer() && a.Attitude() == actor.Friendly {
		e.World.DidConduct(world.ConductAttackAlly, 1)
	}

	effect := ""
	if killed {
		e.announceDeath(b, a)
	} else if a.Alive() {
		effect = e.applySideEffects(b, a, dmg)
	}
	b.record(a, dmg, killed, effect)
	e.makeNoise(b, a.Pos(), b.Loudness)
	return true
}

func (e *Engine) hitMessage(b *Bolt, a actor.Actor, pre, dmg int, outcome resistOutcome) {
	if !e.seesActor(a) {
		return
	}
	if dmg == 0 && pre > 0 {
		e.say(b, ui.ChanPlain, "The %s hits %s but does no damage.", b.Name, e.objectName(a))
	} else {
		e.say(b, ui.ChanPlain, "The %s hits %s.", b.Name, e.objectName(a))
	}
	switch outcome {
	case resistFull:
		e.sayActor(b, a, ui.ChanPlain, "%s completely resists.", "You completely resist.")
	case resistPartial:
		e.sayActor(b, a, ui.ChanPlain, "%s resists.", "You resist.")
	case resistVulnerable:
		switch b.Flavour {
		case flavour.Fire, flavour.Lava, flavour.StickyFlame:
			e.sayActor(b, a, ui.ChanMonsterDamage, "%s is burned terribly!", "You are burned terribly!")
		case flavour.Cold, flavour.Ice:
			e.sayActor(b, a, ui.ChanMonsterDamage, "%s is frozen!", "You are frozen!")
		case flavour.Holy:
			e.sayActor(b, a, ui.ChanMonsterDamage, "%s writhes in agony!", "You writhe in agony!")
		default:
			e.sayActor(b, a, ui.ChanMonsterDamage, "%s is hit hard!", "You are hit hard!")
		}
	}
}

// announceDeath reports a kill and takes dead monsters off the level
func (e *Engine) announceDeath(b *Bolt, a actor.Actor) {
	if a.IsPlayer() {
		e.say(b, ui.ChanYouDamage, "You die...")
		return
	}
	if a.Holiness()&(actor.Undead|actor.Nonliving|actor.PlantLife) != 0 {
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s is destroyed!", "")
	} else {
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s is killed!", "")
	}
	e.World.Remove(a)
}
