package beam

import (
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
)

// enchantApplies reports whether flavour f can affect a at all
func enchantApplies(f flavour.Flavour, a actor.Actor) bool {
	h := a.Holiness()
	switch f {
	case flavour.Polymorph:
		return !a.IsPlayer() && !a.HasFlag(actor.FlagNoPoly)
	case flavour.Malmutate:
		return h&actor.Natural != 0
	case flavour.DispelUndead:
		return h&actor.Undead != 0
	case flavour.Pain, flavour.Agony:
		return h&(actor.Undead|actor.Nonliving|actor.PlantLife) == 0
	case flavour.Porkalator:
		return !a.IsPlayer() && h&actor.Natural != 0 && !a.HasFlag(actor.FlagPorcine)
	case flavour.SnakesToSticks:
		return a.HasFlag(actor.FlagSnake)
	case flavour.Petrify:
		return a.Res(actor.ResPetrify) == 0
	case flavour.Teleport, flavour.Blink:
		return !a.HasFlag(actor.FlagStationary)
	case flavour.Charm:
		return !a.IsPlayer() && h&actor.Holy == 0 && !a.Friendly()
	case flavour.Banish:
		return !a.IsPlayer()
	case flavour.Fear:
		return !a.Friendly()
	case flavour.Degeneration:
		return !a.IsPlayer() && !a.HasFlag(actor.FlagNoPoly)
	case flavour.Hibernation:
		return a.Res(actor.ResCold) <= 0 && !a.HasEnch(actor.EnchSleep)
	}
	return true
}

// checkResMagic reports whether a resists an enchantment of power pow
func (e *Engine) checkResMagic(a actor.Actor, pow int) bool {
	mr := a.MR()
	if mr >= 1000 {
		return true
	}
	return e.RNG.Random2(100)+e.RNG.Random2(101) < 100+mr-pow
}

// enchDuration converts enchantment power into a duration in aut
func (e *Engine) enchDuration(pow int) int {
	cfg := e.cfgBeam()
	return max(rng.StepdownValue(pow*cfg.BaselineDelay, cfg.EnchDurationStep, cfg.EnchDurationStep, 0), cfg.BaselineDelay)
}

// enchantActor rolls the saving throw and applies the bolt's enchantment
func (e *Engine) enchantActor(b *Bolt, a actor.Actor) {
	f := b.Flavour
	if !enchantApplies(f, a) {
		if !b.fromChaos() {
			e.sayActor(b, a, ui.ChanPlain, "%s is unaffected.", "You are unaffected.")
		}
		b.record(a, 0, false, "unaffected")
		return
	}
	if f.HasSavingThrow() && !b.fromChaos() && e.checkResMagic(a, b.EnchPower) {
		e.sayActor(b, a, ui.ChanPlain, "%s resists.", "You resist.")
		e.Stats.Inc(status.EnchantResisted, 1)
		b.record(a, 0, false, "resisted")
		return
	}

	if !f.Beneficial() && b.SourceID == actor.MIDPlayer && !a.IsPlayer() && a.Attitude() == actor.Friendly {
		e.World.DidConduct(world.ConductAttackAlly, 1)
	}

	res := e.applyEnchantment(b, a)
	if res.effect == "" {
		if !b.fromChaos() {
			e.sayOnce(b, ui.ChanPlain, "Nothing appears to happen.")
		}
	} else {
		e.Stats.Inc(status.EnchantApplied, 1)
		b.ObviousEffect = true
	}
	b.record(a, res.damage, res.killed, res.effect)
	e.Log.Debug("enchant",
		zap.String("firing", b.firing),
		zap.String("target", a.Name()),
		zap.Stringer("flavour", f),
		zap.Int("power", b.EnchPower),
		zap.String("effect", res.effect))
}

// enchantResult describes what an enchantment did
type enchantResult struct {
	effect string
	damage int
	killed bool
}

func (e *Engine) addEnch(b *Bolt, a actor.Actor, k actor.Ench) bool {
	return a.AddEnch(actor.Enchantment{
		Kind:     k,
		Degree:   1,
		Agent:    b.agent(),
		Duration: e.enchDuration(b.EnchPower),
	})
}

// ench applies k and reports the monster or player message
func (e *Engine) ench(b *Bolt, a actor.Actor, k actor.Ench, monsterFormat, playerText string) enchantResult {
	e.addEnch(b, a, k)
	e.sayActor(b, a, ui.ChanPlain, monsterFormat, playerText)
	return enchantResult{effect: k.String()}
}

// hurtBy deals enchantment damage, handling death
func (e *Engine) hurtBy(b *Bolt, a actor.Actor, dmg int, effect string) enchantResult {
	dmg = max(0, dmg)
	killed := a.Hurt(b.agent(), dmg, b.Flavour)
	if killed {
		e.announceDeath(b, a)
	}
	return enchantResult{effect: effect, damage: dmg, killed: killed}
}

// polymorphInto rebuilds a as the named species
func (e *Engine) polymorphInto(b *Bolt, a actor.Actor, name, format string) enchantResult {
	seen := e.seesActor(a)
	old := capitalise(a.Name())
	a.Polymorph(actor.Lookup(name))
	if seen {
		e.say(b, ui.ChanPlain, format, old, a.Name())
	}
	return enchantResult{effect: "polymorph"}
}

// randomSpecies draws a polymorph target other than a's current species
func (e *Engine) randomSpecies(a actor.Actor) string {
	names := make([]string, 0, len(actor.Bestiary))
	for name, sp := range actor.Bestiary {
		if sp == a.Species() || sp.Has(actor.FlagNoPoly) || sp.Has(actor.FlagStationary) || sp.Has(actor.FlagProjectile) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names[e.RNG.Random2(len(names))]
}

// applyEnchantment mutates a's status for the bolt's flavour
// An empty effect means nothing visible happened
func (e *Engine) applyEnchantment(b *Bolt, a actor.Actor) enchantResult {
	pow := b.EnchPower
	switch b.Flavour {
	case flavour.Slow:
		if a.DelEnch(actor.EnchHaste) {
			e.sayActor(b, a, ui.ChanPlain, "%s is no longer moving quickly.", "You are no longer moving quickly.")
			return enchantResult{effect: "unhasted"}
		}
		return e.ench(b, a, actor.EnchSlow, "%s seems to slow down.", "You feel yourself slow down.")
	case flavour.Haste:
		if a.DelEnch(actor.EnchSlow) {
			e.sayActor(b, a, ui.ChanPlain, "%s is no longer moving slowly.", "You are no longer moving slowly.")
			return enchantResult{effect: "unslowed"}
		}
		return e.ench(b, a, actor.EnchHaste, "%s seems to speed up.", "You feel yourself speed up.")
	case flavour.Healing:
		if !a.Heal(e.RNG.RollDice(3, max(1, pow/3))) {
			return enchantResult{}
		}
		e.sayActor(b, a, ui.ChanPlain, "%s is healed.", "You feel better.")
		return enchantResult{effect: "healed"}
	case flavour.Paralysis:
		return e.ench(b, a, actor.EnchParalysis, "%s suddenly stops moving!", "You suddenly lose the ability to move!")
	case flavour.Confusion:
		return e.ench(b, a, actor.EnchConfusion, "%s appears confused.", "You feel confused.")
	case flavour.Invisibility:
		if a.HasEnch(actor.EnchInvisible) {
			return enchantResult{}
		}
		seen := e.seesActor(a)
		e.addEnch(b, a, actor.EnchInvisible)
		if a.IsPlayer() {
			e.say(b, ui.ChanPlain, "You fade into invisibility!")
		} else if seen {
			e.say(b, ui.ChanPlain, "%s flickers and vanishes!", capitalise(a.Name()))
		}
		return enchantResult{effect: "invisible"}
	case flavour.Teleport:
		seen := e.seesActor(a)
		name := capitalise(a.Name())
		if !e.World.Teleport(a, e.RNG) {
			return enchantResult{}
		}
		if a.IsPlayer() {
			e.say(b, ui.ChanPlain, "Your surroundings suddenly seem different.")
		} else if seen {
			e.say(b, ui.ChanPlain, "%s disappears!", name)
		}
		return enchantResult{effect: "teleported"}
	case flavour.Blink:
		seen := e.seesActor(a)
		name := capitalise(a.Name())
		if !e.World.Blink(a, e.RNG, world.LOSRadius) {
			return enchantResult{}
		}
		if a.IsPlayer() {
			e.say(b, ui.ChanPlain, "You blink.")
		} else if seen {
			e.say(b, ui.ChanPlain, "%s blinks!", name)
		}
		return enchantResult{effect: "blinked"}
	case flavour.Polymorph:
		return e.polymorphInto(b, a, e.randomSpecies(a), "%s changes into %s!")
	case flavour.Porkalator:
		return e.polymorphInto(b, a, "hog", "%s turns into %s!")
	case flavour.SnakesToSticks:
		return e.polymorphInto(b, a, "stick", "%s withers into %s!")
	case flavour.Degeneration:
		return e.polymorphInto(b, a, "degenerate", "%s degenerates into %s!")
	case flavour.Malmutate:
		if !a.Malmutate() {
			return enchantResult{}
		}
		e.sayActor(b, a, ui.ChanPlain, "%s twists and deforms.", "Your body twists and deforms.")
		return enchantResult{effect: "malmutated"}
	case flavour.Charm:
		return e.ench(b, a, actor.EnchCharm, "%s is charmed.", "")
	case flavour.Banish:
		seen := e.seesActor(a)
		name := capitalise(a.Name())
		if !e.World.Banish(a) {
			return enchantResult{}
		}
		if seen {
			e.say(b, ui.ChanPlain, "%s is banished!", name)
		}
		return enchantResult{effect: "banished"}
	case flavour.Sleep:
		return e.ench(b, a, actor.EnchSleep, "%s falls asleep!", "You fall asleep.")
	case flavour.Hibernation:
		return e.ench(b, a, actor.EnchSleep, "%s falls into a deep sleep!", "You fall into a deep sleep.")
	case flavour.Berserk:
		return e.ench(b, a, actor.EnchBerserk, "%s goes berserk!", "You go berserk!")
	case flavour.DispelUndead:
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s convulses!", "You convulse!")
		return e.hurtBy(b, a, e.RNG.RollDice(3, 6+pow/5), "dispelled")
	case flavour.Pain:
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s convulses in agony!", "Pain shoots through your body!")
		return e.hurtBy(b, a, e.RNG.RollDice(2, max(1, pow/5)), "pain")
	case flavour.Agony:
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s convulses!", "Your body is wracked with pain!")
		return e.hurtBy(b, a, a.HP()/2, "agony")
	case flavour.EntropicBurst:
		e.sayActor(b, a, ui.ChanMonsterDamage, "%s is caught in an entropic burst!", "You are caught in an entropic burst!")
		return e.hurtBy(b, a, e.RNG.RollDice(2, max(1, pow/4)), "entropic burst")
	case flavour.Petrify:
		return e.ench(b, a, actor.EnchPetrifying, "%s is moving more slowly.", "You are slowing down.")
	case flavour.SentinelMark:
		return e.ench(b, a, actor.EnchSentinelMark, "%s is marked.", "A sentinel's mark forms upon you.")
	case flavour.DimensionAnchor:
		return e.ench(b, a, actor.EnchDimensionAnchor, "%s is firmly anchored in space.", "You are firmly anchored in space.")
	case flavour.Vulnerability:
		return e.ench(b, a, actor.EnchLowerMR, "%s's magical defenses are stripped away.", "Your magical defenses are stripped away.")
	case flavour.Virulence:
		return e.ench(b, a, actor.EnchPoisonVuln, "%s grows more vulnerable to poison.", "You feel more vulnerable to poison.")
	case flavour.SapMagic:
		return e.ench(b, a, actor.EnchSapMagic, "%s seems less certain of its magic.", "You feel your control of magic slipping.")
	case flavour.DrainMagic:
		return e.ench(b, a, actor.EnchAntimagic, "%s is drained of magic.", "You feel your magic drain away.")
	case flavour.TukimasDance:
		return e.ench(b, a, actor.EnchDance, "%s begins to dance!", "You begin to dance!")
	case flavour.Innerflame:
		return e.ench(b, a, actor.EnchInnerFlame, "%s is filled with an inner flame.", "You are filled with an inner flame.")
	case flavour.ChaoticInfusion:
		boons := []actor.Ench{actor.EnchHaste, actor.EnchMight, actor.EnchAgility, actor.EnchResistance}
		return e.ench(b, a, boons[e.RNG.Random2(len(boons))], "%s is infused with chaos!", "You are infused with chaos!")
	case flavour.Resistance:
		return e.ench(b, a, actor.EnchResistance, "%s is protected from the elements.", "You feel resistant.")
	case flavour.Unravelling:
		n := 0
		for k := actor.Ench(0); k < actor.EnchCount; k++ {
			if k.Beneficial() && a.DelEnch(k) {
				n++
			}
		}
		if n == 0 {
			return enchantResult{}
		}
		e.sayActor(b, a, ui.ChanPlain, "%s's magical effects unravel!", "Your magical effects unravel!")
		return enchantResult{effect: "unravelled"}
	case flavour.Infestation:
		return e.ench(b, a, actor.EnchInfestation, "%s is infested!", "You are infested!")
	case flavour.VileClutch:
		return e.ench(b, a, actor.EnchVileClutch, "%s is grabbed by zombie hands!", "You are grabbed by zombie hands!")
	case flavour.Might:
		return e.ench(b, a, actor.EnchMight, "%s seems to grow stronger.", "You feel stronger.")
	case flavour.Agility:
		return e.ench(b, a, actor.EnchAgility, "%s suddenly seems more agile.", "You feel agile.")
	case flavour.Ensnare:
		return e.ench(b, a, actor.EnchHeld, "%s is stuck in a web!", "You are stuck in a web!")
	case flavour.Fear:
		return e.ench(b, a, actor.EnchFear, "%s looks frightened!", "You feel scared.")
	case flavour.Corona:
		return e.ench(b, a, actor.EnchCorona, "%s is outlined in light.", "You are outlined in light.")
	}
	return enchantResult{}
}
