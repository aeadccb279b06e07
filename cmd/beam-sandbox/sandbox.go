package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/beam"
	"github.com/lixenwraith/beamcrawl/config"
	"github.com/lixenwraith/beamcrawl/dungeon"
	"github.com/lixenwraith/beamcrawl/noise"
	"github.com/lixenwraith/beamcrawl/rng"
	"github.com/lixenwraith/beamcrawl/status"
	"github.com/lixenwraith/beamcrawl/ui"
	"github.com/lixenwraith/beamcrawl/world"
	"github.com/lixenwraith/beamcrawl/zaps"
)

const (
	powerStep = 10
	maxPower  = 200
)

// roster is spawned on every level in this order
var roster = []string{
	"orc", "orc", "goblin", "orc wizard", "ogre", "skeleton",
	"imp", "deep elf knight", "toadstool", "troll", "bush", "hog",
}

// casters maps species that fight back to the zap they use
var casters = map[string]zaps.ID{
	"orc wizard":      zaps.MagicDart,
	"imp":             zaps.Flame,
	"deep elf knight": zaps.BoltOfCold,
}

type options struct {
	Width, Height int
	Monsters      int
	Seed          uint64
	Power         int
}

type sandbox struct {
	screen tcell.Screen
	term   *ui.Terminal
	cfg    *config.Config
	log    *zap.Logger
	stats  *status.Registry
	sink   noise.Sink
	opts   options

	level  dungeon.Result
	world  *world.World
	engine *beam.Engine
	player *actor.Creature
	rng    *rng.RNG

	zaps       []*zaps.Descriptor
	zapIdx     int
	power      int
	cursor     gruid.Point
	generation int
	last       *beam.Report
}

func newSandbox(screen tcell.Screen, cfg *config.Config, log *zap.Logger, sink noise.Sink, opts options) *sandbox {
	s := &sandbox{
		screen: screen,
		cfg:    cfg,
		log:    log,
		stats:  status.NewRegistry(),
		sink:   sink,
		opts:   opts,
		zaps:   zaps.All(),
		power:  opts.Power,
	}
	s.term = ui.NewTerminal(screen, opts.Height)
	s.term.Redraw = s.drawMap
	s.regenerate()
	return s
}

// regenerate builds a fresh level; each call advances the seed
func (s *sandbox) regenerate() {
	seed := s.opts.Seed + uint64(s.generation)
	s.generation++

	s.level = dungeon.Generate(dungeon.Config{
		Width:    s.opts.Width,
		Height:   s.opts.Height,
		Braiding: 0.4,
		Rooms:    4,
		Scenery:  0.08,
		Seed:     seed,
	})
	s.world = world.FromGrid(s.level.Grid)
	s.player = actor.NewPlayer(s.level.Start)
	s.world.SetPlayer(s.player)
	s.rng = rng.New(seed)
	s.engine = beam.NewEngine(s.world, s.term, s.rng,
		beam.WithConfig(s.cfg),
		beam.WithLogger(s.log),
		beam.WithNoise(s.sink),
		beam.WithStats(s.stats),
	)

	if len(s.level.Path) > 2 {
		s.world.SpawnMonster(actor.Lookup("orc"), s.level.Path[2], actor.Friendly)
	}
	for i := 0; i < s.opts.Monsters; i++ {
		name := roster[i%len(roster)]
		if p, ok := s.freeCell(); ok {
			s.world.SpawnMonster(actor.Lookup(name), p, actor.Hostile)
		}
	}
	s.cursor = s.level.Start
	if len(s.level.Path) > 1 {
		s.cursor = s.level.Path[len(s.level.Path)/2]
	}
	s.log.Info("level generated",
		zap.Uint64("seed", seed),
		zap.Int("monsters", len(s.world.Monsters())),
		zap.Int("path", len(s.level.Path)))
}

func (s *sandbox) freeCell() (gruid.Point, bool) {
	size := s.level.Grid.Size()
	for range 200 {
		p := gruid.Point{X: 1 + s.rng.Random2(size.X-2), Y: 1 + s.rng.Random2(size.Y-2)}
		if p != s.level.Start && s.world.Free(p) && !s.world.CellIsSolid(p) {
			return p, true
		}
	}
	return gruid.Point{}, false
}

func (s *sandbox) selected() *zaps.Descriptor {
	return s.zaps[s.zapIdx]
}

// handle applies one input event and reports whether the sandbox should quit
func (s *sandbox) handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			s.screen.Sync()
		}
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.moveCursor(0, -1)
	case tcell.KeyDown:
		s.moveCursor(0, 1)
	case tcell.KeyLeft:
		s.moveCursor(-1, 0)
	case tcell.KeyRight:
		s.moveCursor(1, 0)
	case tcell.KeyTab:
		s.cycleZap(1)
	case tcell.KeyBacktab:
		s.cycleZap(-1)
	case tcell.KeyEnter:
		s.fire()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'h':
			s.moveCursor(-1, 0)
		case 'j':
			s.moveCursor(0, 1)
		case 'k':
			s.moveCursor(0, -1)
		case 'l':
			s.moveCursor(1, 0)
		case ']':
			s.cycleZap(1)
		case '[':
			s.cycleZap(-1)
		case '+', '=':
			s.power = min(maxPower, s.power+powerStep)
		case '-':
			s.power = max(0, s.power-powerStep)
		case 'f':
			s.fire()
		case 'F':
			s.massFear()
		case 'r':
			s.regenerate()
			s.term.Message(ui.ChanPlain, "A new level forms around you.")
		}
	}
	s.draw()
	return false
}

func (s *sandbox) moveCursor(dx, dy int) {
	p := s.cursor.Add(gruid.Point{X: dx, Y: dy})
	if s.world.InBounds(p) {
		s.cursor = p
	}
}

func (s *sandbox) cycleZap(step int) {
	n := len(s.zaps)
	s.zapIdx = ((s.zapIdx+step)%n + n) % n
}

// fire zaps the selected descriptor at the cursor with a tracer prompt, then lets monsters answer
func (s *sandbox) fire() {
	d := s.selected()
	b := beam.NewBolt()
	b.Target = s.cursor
	b.Range = world.LOSRadius
	ret := s.engine.Zapping(d.ID, s.power, b, true, "", false)
	s.log.Debug("player zap", zap.String("zap", d.Name), zap.Stringer("result", ret))
	if ret != beam.SpretSuccess {
		return
	}
	rep := b.Report()
	s.last = &rep
	s.monstersAct()
}

func (s *sandbox) massFear() {
	if s.engine.MassEnchantment(actor.EnchFear, s.power, false) == beam.SpretSuccess {
		s.monstersAct()
	}
}

// monstersAct lets hostile casters that see the player fire when their tracer approves
func (s *sandbox) monstersAct() {
	for _, m := range s.world.Monsters() {
		if !m.Alive() || m.Attitude() != actor.Hostile || !s.player.Alive() {
			continue
		}
		id, ok := casters[m.Species().Name]
		if !ok || !s.world.PlayerSees(m.Pos()) {
			continue
		}
		b := beam.NewBolt()
		b.SourceID = m.MID()
		b.Target = s.player.Pos()
		b.Range = world.LOSRadius
		s.engine.Zappy(id, m.XL()*powerStep, true, b)
		if !s.engine.FireTracer(m, b, false, false) {
			continue
		}
		s.engine.Fire(b)
	}
	if !s.player.Alive() {
		s.term.Message(ui.ChanYouDamage, "You die... the level reforms.")
		s.regenerate()
	}
}

func (s *sandbox) draw() {
	s.drawMap()
	s.drawStatus()
	s.screen.Show()
}

func (s *sandbox) drawMap() {
	it := s.level.Grid.Iterator()
	for it.Next() {
		p := it.P()
		r, style := s.cellLook(p)
		s.term.Put(p, r, style)
	}
}

func (s *sandbox) cellLook(p gruid.Point) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if p == s.cursor {
		style = style.Reverse(true)
	}
	if a := s.world.ActorAt(p); a != nil {
		fg := tcell.ColorRed
		if a.Friendly() {
			fg = tcell.ColorGreen
		}
		if a.IsPlayer() {
			fg = tcell.ColorWhite
		}
		return a.Species().Glyph, style.Foreground(fg)
	}
	if c, ok := s.world.CloudAt(p); ok {
		return '§', style.Foreground(cloudColour(c.Kind))
	}
	if items := s.world.ItemsAt(p); len(items) > 0 {
		return '(', style.Foreground(tcell.ColorAqua)
	}
	if t, ok := s.world.TrapAt(p); ok && t.Kind != world.TrapNone {
		return '^', style.Foreground(tcell.ColorFuchsia)
	}
	f := s.world.FeatAt(p)
	fg := tcell.ColorGray
	switch {
	case world.IsTree(f):
		fg = tcell.ColorGreen
	case world.IsWatery(f):
		fg = tcell.ColorBlue
	case world.IsMetal(f):
		fg = tcell.ColorSilver
	case world.IsDoor(f):
		fg = tcell.ColorOlive
	}
	return world.FeatureGlyph(f), style.Foreground(fg)
}

func cloudColour(k world.CloudKind) tcell.Color {
	switch k {
	case world.CloudFire, world.CloudForestFire, world.CloudHoly:
		return tcell.ColorOrangeRed
	case world.CloudCold, world.CloudRain, world.CloudSteam:
		return tcell.ColorLightBlue
	case world.CloudPoison, world.CloudMephitic, world.CloudMiasma, world.CloudAcid:
		return tcell.ColorGreenYellow
	case world.CloudChaos:
		return tcell.ColorFuchsia
	default:
		return tcell.ColorGray
	}
}

func (s *sandbox) drawStatus() {
	row := s.opts.Height + ui.MessageLines + 1
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	line := fmt.Sprintf("%s (%s) power %d hp %d/%d  [f]ire [tab] zap [+/-] power [F]ear [r]egen [q]uit",
		s.selected().Name, s.selected().Flavour, s.power, s.player.HP(), s.player.MaxHP())
	for i, r := range line {
		s.screen.SetContent(i, row, r, nil, tcell.StyleDefault.Bold(true))
	}
}
