package ui

import (
	"time"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

const (
	// MessageLines is the number of log lines kept below the map
	MessageLines = 3
)

var channelStyles = map[Channel]tcell.Style{
	ChanPlain:         tcell.StyleDefault,
	ChanWarning:       tcell.StyleDefault.Foreground(tcell.ColorYellow),
	ChanGod:           tcell.StyleDefault.Foreground(tcell.ColorPurple),
	ChanMonsterDamage: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	ChanYouDamage:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	ChanIntrinsic:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// Terminal renders bolts and messages onto a tcell screen
type Terminal struct {
	screen tcell.Screen
	// Origin is the screen position of map cell (0,0)
	Origin gruid.Point
	// MapHeight is the number of rows reserved for the map
	MapHeight int
	// Redraw repaints the map between bolt frames; nil leaves glyphs in place
	Redraw func()

	log   []Message
	sleep func(time.Duration)
}

// NewTerminal wraps an initialised screen
func NewTerminal(screen tcell.Screen, mapHeight int) *Terminal {
	return &Terminal{
		screen:    screen,
		MapHeight: mapHeight,
		sleep:     time.Sleep,
	}
}

// Put draws a rune at a map cell
func (t *Terminal) Put(p gruid.Point, r rune, style tcell.Style) {
	q := p.Add(t.Origin)
	t.screen.SetContent(q.X, q.Y, r, nil, style)
}

func (t *Terminal) DrawBolt(p gruid.Point, glyph rune, colour tcell.Color) {
	t.Put(p, glyph, tcell.StyleDefault.Foreground(colour).Bold(true))
}

func (t *Terminal) Delay(ms int) {
	t.screen.Show()
	if ms > 0 {
		t.sleep(time.Duration(ms) * time.Millisecond)
	}
}

func (t *Terminal) Update() {
	if t.Redraw != nil {
		t.Redraw()
	}
	t.drawLog()
	t.screen.Show()
}

func (t *Terminal) Message(ch Channel, text string) {
	t.log = append(t.log, Message{Channel: ch, Text: text})
	if len(t.log) > MessageLines {
		t.log = t.log[len(t.log)-MessageLines:]
	}
	t.drawLog()
	t.screen.Show()
}

// Log returns the visible message lines
func (t *Terminal) Log() []Message {
	return t.log
}

// YesNo shows the prompt on the last log row and waits for y, n, Escape or Enter
func (t *Terminal) YesNo(prompt string, def bool) bool {
	hint := " (y/N)"
	if def {
		hint = " (Y/n)"
	}
	row := t.Origin.Y + t.MapHeight + MessageLines
	t.clearRow(row)
	t.text(t.Origin.X, row, prompt+hint, channelStyles[ChanWarning])
	t.screen.Show()

	defer func() {
		t.clearRow(row)
		t.screen.Show()
	}()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return def
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape:
			return false
		case tcell.KeyEnter:
			return def
		case tcell.KeyRune:
			switch key.Rune() {
			case 'y', 'Y':
				return true
			case 'n', 'N':
				return false
			}
		}
	}
}

func (t *Terminal) drawLog() {
	base := t.Origin.Y + t.MapHeight
	for i := range MessageLines {
		t.clearRow(base + i)
	}
	for i, m := range t.log {
		t.text(t.Origin.X, base+i, m.Text, channelStyles[m.Channel])
	}
}

func (t *Terminal) clearRow(y int) {
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
