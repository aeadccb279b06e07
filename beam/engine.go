// Package beam propagates bolts across the dungeon: ray driving, effect dispatch, tracers and explosions
package beam

import (
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/config"
	"github.com/lixenwraith/beamcrawl/noise"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
)

// Engine holds the collaborators every firing reads and mutates
type Engine struct {
	World  *world.World
	UI     ui.Interface
	RNG    *rng.RNG
	Log    *zap.Logger
	Noise  noise.Sink
	Stats  *status.Registry
	Config *config.Config

	tables *config.FlavourTables
}

// Option configures an Engine
type Option func(*Engine)

// WithConfig replaces the embedded default configuration
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) { e.Config = cfg }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.Log = l }
}

// WithNoise sets the sink that hears bolts and explosions
func WithNoise(s noise.Sink) Option {
	return func(e *Engine) { e.Noise = s }
}

// WithStats sets the metrics registry
func WithStats(r *status.Registry) Option {
	return func(e *Engine) { e.Stats = r }
}

// NewEngine wires an engine; unset collaborators get no-op defaults
func NewEngine(w *world.World, u ui.Interface, g *rng.RNG, opts ...Option) *Engine {
	e := &Engine{World: w, UI: u, RNG: g}
	for _, opt := range opts {
		opt(e)
	}
	if e.Config == nil {
		e.Config = config.Default()
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Noise == nil {
		e.Noise = noise.Nop{}
	}
	if e.Stats == nil {
		e.Stats = status.NewRegistry()
	}
	tables, err := e.Config.FlavourTables()
	if err != nil {
		panic(fmt.Sprintf("beam: invalid flavour tables: %v", err))
	}
	e.tables = tables
	return e
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("beam: " + fmt.Sprintf(format, args...))
	}
}

// say prints a message unless the bolt is a tracer
func (e *Engine) say(b *Bolt, ch ui.Channel, format string, args ...any) {
	if b != nil && b.IsTracer {
		return
	}
	e.UI.Message(ch, gotext.Get(format, args...))
}

// sayText prints a message that is already formatted
func (e *Engine) sayText(b *Bolt, ch ui.Channel, text string) {
	if b != nil && b.IsTracer {
		return
	}
	e.UI.Message(ch, gotext.Get(text))
}

// sayOnce prints a message at most once per firing
func (e *Engine) sayOnce(b *Bolt, ch ui.Channel, format string, args ...any) {
	if b.IsTracer {
		return
	}
	text := gotext.Get(format, args...)
	if b.messages.Has(text) {
		return
	}
	b.messages.Put(text)
	e.UI.Message(ch, text)
}

// sayActor prints the monster form or the player form of a message
// monsterFormat receives the capitalised actor name
func (e *Engine) sayActor(b *Bolt, a actor.Actor, ch ui.Channel, monsterFormat, playerText string) {
	if a.IsPlayer() {
		if playerText != "" {
			e.sayText(b, ch, playerText)
		}
		return
	}
	if !e.seesActor(a) {
		return
	}
	e.say(b, ch, monsterFormat, capitalise(a.Name()))
}

func (e *Engine) seesActor(a actor.Actor) bool {
	if a.IsPlayer() {
		return true
	}
	return (a.Observable() || e.World.Haloed(a.Pos())) && e.World.PlayerSees(a.Pos())
}

// objectName names an actor as the object of a sentence
func (e *Engine) objectName(a actor.Actor) string {
	if a.IsPlayer() {
		return "you"
	}
	if !e.seesActor(a) {
		return "something"
	}
	return a.Name()
}

func (e *Engine) cfgBeam() config.BeamConfig {
	return e.Config.Beam
}

// makeNoise sounds at p and marks the bolt heard when the noise reaches a player who cannot see p
func (e *Engine) makeNoise(b *Bolt, p gruid.Point, loudness int) {
	if loudness <= 0 {
		return
	}
	e.Noise.Noise(p, loudness)
	if pl := e.World.Player(); pl != nil && !e.World.PlayerSees(p) && noise.Volume(loudness, paths.DistanceChebyshev(pl.Pos(), p)) > 0 {
		b.Heard = true
	}
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func possessive(name string) string {
	if name == "you" {
		return "your"
	}
	if strings.HasSuffix(name, "s") {
		return name + "'"
	}
	return name + "'s"
}
