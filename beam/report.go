package beam

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// Hit is one landed strike on an actor
type Hit struct {
	MID     actor.MID `json:"mid"`
	Name    string    `json:"name"`
	Flavour string    `json:"flavour"`
	Damage  int       `json:"damage"`
	Killed  bool      `json:"killed,omitempty"`
	// Effect names the status change an enchantment or side effect caused
	Effect string `json:"effect,omitempty"`
}

// Report summarises the latest firing of a bolt
type Report struct {
	Firing      string        `json:"firing"`
	Zap         string        `json:"zap,omitempty"`
	Flavour     string        `json:"flavour"`
	Tracer      bool          `json:"tracer,omitempty"`
	Path        []gruid.Point `json:"path"`
	Hits        []Hit         `json:"hits"`
	Bounces     int           `json:"bounces"`
	Reflections int           `json:"reflections"`
	Cancelled   bool          `json:"cancelled,omitempty"`
	FoeInfo     TracerInfo    `json:"foe_info"`
	FriendInfo  TracerInfo    `json:"friend_info"`
	Explosion   []gruid.Point `json:"explosion,omitempty"`
	Seen        bool          `json:"seen,omitempty"`
	Heard       bool          `json:"heard,omitempty"`
}

// Report builds a summary of what the latest firing did
func (b *Bolt) Report() Report {
	r := Report{
		Firing:      b.firing,
		Flavour:     b.RealFlavour.String(),
		Tracer:      b.IsTracer,
		Path:        append([]gruid.Point(nil), b.PathTaken...),
		Hits:        append([]Hit(nil), b.hits...),
		Bounces:     b.Bounces,
		Reflections: b.Reflections,
		Cancelled:   b.Cancelled,
		FoeInfo:     b.FoeInfo,
		FriendInfo:  b.FriendInfo,
		Explosion:   append([]gruid.Point(nil), b.explosion...),
		Seen:        b.Seen,
		Heard:       b.Heard,
	}
	if d := zaps.Lookup(b.OriginZap); d != nil {
		r.Zap = d.Name
	}
	if b.SpecialExplosion != nil {
		r.Hits = append(r.Hits, b.SpecialExplosion.hits...)
		r.Explosion = append(r.Explosion, b.SpecialExplosion.explosion...)
	}
	return r
}

// Hits returns the strikes landed on mid during the latest firing
func (b *Bolt) Hits(mid actor.MID) []Hit {
	var out []Hit
	for _, h := range b.hits {
		if h.MID == mid {
			out = append(out, h)
		}
	}
	return out
}

func (b *Bolt) record(a actor.Actor, dmg int, killed bool, effect string) {
	b.hits = append(b.hits, Hit{
		MID:     a.MID(),
		Name:    a.Name(),
		Flavour: b.Flavour.String(),
		Damage:  dmg,
		Killed:  killed,
		Effect:  effect,
	})
}
