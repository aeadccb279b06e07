package beam

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// traceActor scores an actor the tracer reached and asks the player before hurting allies or themselves
func (e *Engine) traceActor(b *Bolt, a actor.Actor) {
	allied := a.Friendly() == (b.Attitude == actor.Friendly)
	helps := b.Flavour.Beneficial()

	info := &b.FoeInfo
	if allied {
		info = &b.FriendInfo
	}
	info.Count++
	info.Power += a.XL()
	if helps {
		info.Helped++
	} else {
		info.Hurt++
	}

	if b.SourceID == actor.MIDPlayer && !helps {
		switch {
		case a.IsPlayer() && !b.DontStopPlayer:
			if e.UI.YesNo("That "+b.Name+" is likely to hit you. Continue anyway?", false) {
				b.DontStopPlayer = true
			} else {
				b.Cancelled = true
			}
		case !a.IsPlayer() && allied && !b.FriendInfo.DontStop:
			if e.UI.YesNo("Your "+b.Name+" is likely to hit "+e.objectName(a)+". Continue anyway?", false) {
				b.FriendInfo.DontStop = true
			} else {
				b.Cancelled = true
			}
		}
	}

	if !b.Pierce && !b.InExplosionPhase {
		b.stop = true
	}
}

// PlayerTracer fills the bolt from the zap and dry-runs it from the player's cell
// It returns false when the player called the shot off
func (e *Engine) PlayerTracer(id zaps.ID, power int, b *Bolt, rng int) bool {
	e.Zappy(id, power, false, b)
	player := e.World.Player()
	assertf(player != nil, "player tracer without a player")

	b.IsTracer = true
	b.SourceID = actor.MIDPlayer
	b.SetSource(player.Pos())
	b.Attitude = actor.Friendly
	b.Range = rng
	b.FoeInfo = TracerInfo{}
	b.FriendInfo = TracerInfo{}
	b.DontStopPlayer = false
	b.DontStopTrees = false

	e.Fire(b)
	b.IsTracer = false

	if b.Cancelled {
		e.Log.Debug("tracer cancelled", zap.String("firing", b.firing), zap.String("bolt", b.Name))
		return false
	}
	return true
}

// FireTracer dry-runs a bolt from actor a and reports whether a should fire it
// explodeOnly skips travel and scores an explosion at the target
func (e *Engine) FireTracer(a actor.Actor, b *Bolt, explodeOnly, hole bool) bool {
	b.IsTracer = true
	b.SetSource(a.Pos())
	b.SourceID = a.MID()
	b.SourceName = a.Name()
	b.Attitude = a.Attitude()
	if a.IsPlayer() {
		b.Attitude = actor.Friendly
	}
	b.FoeInfo = TracerInfo{}
	b.FriendInfo = TracerInfo{}
	if !a.IsPlayer() {
		b.DontStopPlayer = true
		b.FriendInfo.DontStop = true
	}

	if explodeOnly {
		e.Explode(b, false, hole)
	} else {
		e.Fire(b)
	}
	b.IsTracer = false

	fire := e.shouldFire(b)
	if total := b.FoeInfo.Power + b.FriendInfo.Power; total > 0 {
		e.Stats.Floats.Get(status.TracerFriendShare).Set(float64(b.FriendInfo.Power) / float64(total))
	}
	e.Log.Debug("tracer verdict",
		zap.String("firing", b.firing),
		zap.String("caster", a.Name()),
		zap.Int("foes", b.FoeInfo.Count),
		zap.Int("foe_power", b.FoeInfo.Power),
		zap.Int("friends", b.FriendInfo.Count),
		zap.Int("friend_power", b.FriendInfo.Power),
		zap.Bool("fire", fire))
	return fire
}

// shouldFire applies the foe ratio: enough of the power struck must be hostile to the caster
func (e *Engine) shouldFire(b *Bolt) bool {
	if b.Cancelled || b.FoeInfo.Count == 0 {
		return false
	}
	ratio := b.FoeRatio
	if ratio == 0 {
		ratio = DefaultFoeRatio
	}
	total := b.FoeInfo.Power + b.FriendInfo.Power
	return b.FoeInfo.Power >= (ratio*total+99)/100
}
