// Package ui is the drawing, messaging and prompting surface the beam engine talks to
package ui

//go:generate mockgen -destination=./mocks/prompter_mock.go -package=mocks . Prompter

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

// Channel classifies a message for styling
type Channel uint8

const (
	ChanPlain Channel = iota
	ChanWarning
	ChanGod
	ChanMonsterDamage
	ChanYouDamage
	ChanIntrinsic
)

// Drawer animates bolts
type Drawer interface {
	// DrawBolt shows glyph at a map cell until the next Update
	DrawBolt(p gruid.Point, glyph rune, colour tcell.Color)
	// Delay flushes pending draws and pauses
	Delay(ms int)
	// Update redraws the map without bolt glyphs
	Update()
}

// Messenger prints game messages
type Messenger interface {
	Message(ch Channel, text string)
}

// Prompter asks the player a yes/no question and blocks for the answer
type Prompter interface {
	YesNo(prompt string, def bool) bool
}

// Interface bundles every UI contract
type Interface interface {
	Drawer
	Messenger
	Prompter
}

// Compose builds an Interface from separate parts
func Compose(d Drawer, m Messenger, p Prompter) Interface {
	return composite{Drawer: d, Messenger: m, Prompter: p}
}

type composite struct {
	Drawer
	Messenger
	Prompter
}
