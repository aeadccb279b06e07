package beam

import (
	"context"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"github.com/looplab/fsm"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/ray"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

// Lifecycle states of a bolt
const (
	StateBuilt  = "built"
	StateFilled = "filled"
	StateTraced = "traced"
	StateFired  = "fired"
)

// DefaultFoeRatio is the percentage of tracer power that must be hostile for a monster to fire
const DefaultFoeRatio = 80

// TracerInfo accumulates what a tracer would strike
type TracerInfo struct {
	Count  int  `json:"count"`
	Power  int  `json:"power"`
	Hurt   int  `json:"hurt"`
	Helped int  `json:"helped"`
	// DontStop suppresses further prompts for this group
	DontStop bool `json:"dont_stop"`
}

// Add merges o into t
func (t *TracerInfo) Add(o TracerInfo) {
	t.Count += o.Count
	t.Power += o.Power
	t.Hurt += o.Hurt
	t.Helped += o.Helped
	t.DontStop = t.DontStop || o.DontStop
}

// Bolt is the mutable record carried through one firing
type Bolt struct {
	// Geometry
	Source         gruid.Point
	HasSource      bool
	Target         gruid.Point
	Range          int
	ExtraRangeUsed int
	Bounces        int
	BouncePos      gruid.Point
	Reflections    int
	Reflector      actor.MID
	PathTaken      []gruid.Point

	// Identity
	Flavour     flavour.Flavour
	RealFlavour flavour.Flavour
	Name        string
	HitVerb     string
	Glyph       rune
	Colour      tcell.Color
	Item        *world.Item
	SourceID    actor.MID
	SourceName  string
	OriginZap   zaps.ID
	AuxSource   string

	// Damage
	Damage    rng.Dice
	Hit       int
	EnchPower int
	ACRule    flavour.ACRule

	// Policy
	Pierce           bool
	IsTracer         bool
	IsTargeting      bool
	IsExplosion      bool
	InExplosionPhase bool
	AimedAtFeet      bool
	AimedAtSpot      bool
	AffectsNothing   bool
	Animate          bool
	DropItem         bool
	ExSize           int
	Loudness         int
	Attitude         actor.Attitude
	FoeRatio         int
	Effects          zaps.Effects

	// Tracer scoring
	FoeInfo        TracerInfo
	FriendInfo     TracerInfo
	DontStopPlayer bool
	DontStopTrees  bool
	Cancelled      bool

	// Side state
	// Seen is set once the bolt crosses a cell the player sees
	Seen          bool
	// Heard is set when the bolt makes a noise the player hears but cannot see
	Heard         bool
	ObviousEffect bool

	// SpecialExplosion is exploded at the endpoint and owned by this bolt
	SpecialExplosion *Bolt

	ray       ray.Ray
	pos       gruid.Point
	steps     int
	tunnel    int
	stop      bool
	hitCount  map[actor.MID]int
	messages  mapset.Set[string]
	hits      []Hit
	explosion []gruid.Point
	firing    string
	life      *fsm.FSM
	ready     bool
}

// NewBolt returns an empty bolt in the built state
func NewBolt() *Bolt {
	b := &Bolt{Hit: zaps.AutoHit, Animate: true}
	b.init()
	return b
}

func (b *Bolt) init() {
	if b.ready {
		return
	}
	b.hitCount = make(map[actor.MID]int)
	b.messages = mapset.New[string]()
	b.life = fsm.NewFSM(
		StateBuilt,
		fsm.Events{
			{Name: "fill", Src: []string{StateBuilt}, Dst: StateFilled},
			{Name: "trace", Src: []string{StateBuilt, StateFilled}, Dst: StateTraced},
			{Name: "fire", Src: []string{StateBuilt, StateFilled, StateTraced}, Dst: StateFired},
		},
		fsm.Callbacks{},
	)
	b.ready = true
}

// State returns the lifecycle state
func (b *Bolt) State() string {
	b.init()
	return b.life.Current()
}

// transition moves the lifecycle forward; a fired bolt cannot be used again
func (b *Bolt) transition(event string) {
	b.init()
	if b.life.Current() == StateFired {
		panic(fmt.Sprintf("beam: %s bolt already fired", b.Name))
	}
	if !b.life.Can(event) {
		return
	}
	if err := b.life.Event(context.Background(), event); err != nil {
		panic(fmt.Sprintf("beam: lifecycle %s: %v", event, err))
	}
}

// SetSource places the start of the bolt's current leg
// Explode centres a bolt that never had a source on its Target
func (b *Bolt) SetSource(p gruid.Point) {
	b.Source = p
	b.HasSource = true
}

// IsEnchantment reports whether the bolt's own flavour is an enchantment
func (b *Bolt) IsEnchantment() bool {
	return b.Flavour.IsEnchantment()
}

// RangeUsed is the distance travelled plus range spent on bounces
func (b *Bolt) RangeUsed() int {
	return b.steps + b.ExtraRangeUsed
}

// Firing returns the id of the latest firing
func (b *Bolt) Firing() string {
	return b.firing
}

// HitCount returns how many times the bolt struck mid this firing
func (b *Bolt) HitCount(mid actor.MID) int {
	return b.hitCount[mid]
}

// Pos returns the cell currently being resolved
func (b *Bolt) Pos() gruid.Point {
	return b.pos
}

// agent is the actor credited for damage
// A reflected bolt is credited to its reflector, and never to the player
func (b *Bolt) agent() actor.MID {
	if b.Reflections == 0 {
		return b.SourceID
	}
	if b.Reflector == actor.MIDPlayer || b.SourceID == actor.MIDPlayer {
		return actor.MIDYouFaultless
	}
	return b.Reflector
}

func (b *Bolt) fromChaos() bool {
	return b.RealFlavour == flavour.Chaos
}

func (b *Bolt) stopAtTarget() bool {
	return b.IsExplosion || b.Effects.BigCloud.Active() || b.AimedAtSpot && b.Flavour != flavour.Digging
}

// clone deep-copies the bolt for a tracer pass
func (b *Bolt) clone() *Bolt {
	c := *b
	c.ready = false
	c.life = nil
	c.init()
	c.ray = b.ray.Clone()
	c.PathTaken = append([]gruid.Point(nil), b.PathTaken...)
	c.hits = nil
	c.explosion = nil
	if b.Item != nil {
		it := *b.Item
		c.Item = &it
	}
	if b.SpecialExplosion != nil {
		c.SpecialExplosion = b.SpecialExplosion.clone()
	}
	return &c
}

// tracerSnapshot is the geometry a tracer pass restores afterwards
type tracerSnapshot struct {
	target      gruid.Point
	source      gruid.Point
	hasSource   bool
	aimedAtSpot bool
	extraRange  int
	hit         int
	ray         ray.Ray
	colour      tcell.Color
	flavour     flavour.Flavour
	realFlavour flavour.Flavour
	bounces     int
	bouncePos   gruid.Point
	reflections int
	reflector   actor.MID
	explosion   bool
	exSize      int
	loudness    int
	rng         rng.State
}

func (b *Bolt) snapshot(g *rng.RNG) tracerSnapshot {
	return tracerSnapshot{
		target:      b.Target,
		source:      b.Source,
		hasSource:   b.HasSource,
		aimedAtSpot: b.AimedAtSpot,
		extraRange:  b.ExtraRangeUsed,
		hit:         b.Hit,
		ray:         b.ray.Clone(),
		colour:      b.Colour,
		flavour:     b.Flavour,
		realFlavour: b.RealFlavour,
		bounces:     b.Bounces,
		bouncePos:   b.BouncePos,
		reflections: b.Reflections,
		reflector:   b.Reflector,
		explosion:   b.IsExplosion,
		exSize:      b.ExSize,
		loudness:    b.Loudness,
		rng:         g.Snapshot(),
	}
}

func (b *Bolt) restore(s tracerSnapshot, g *rng.RNG) {
	b.Target = s.target
	b.Source = s.source
	b.HasSource = s.hasSource
	b.AimedAtSpot = s.aimedAtSpot
	b.ExtraRangeUsed = s.extraRange
	b.Hit = s.hit
	b.ray = s.ray
	b.Colour = s.colour
	b.Flavour = s.flavour
	b.RealFlavour = s.realFlavour
	b.Bounces = s.bounces
	b.BouncePos = s.bouncePos
	b.Reflections = s.reflections
	b.Reflector = s.reflector
	b.IsExplosion = s.explosion
	b.ExSize = s.exSize
	b.Loudness = s.loudness
	b.InExplosionPhase = false
	g.Restore(s.rng)
}
