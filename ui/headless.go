package ui

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

// Draw is one recorded bolt glyph
type Draw struct {
	P      gruid.Point
	Glyph  rune
	Colour tcell.Color
}

// Message is one recorded line
type Message struct {
	Channel Channel
	Text    string
}

// Headless records everything the engine shows and answers prompts from a callback
type Headless struct {
	Draws    []Draw
	Delays   int
	Updates  int
	Messages []Message
	Prompts  []string
	// Answer decides prompts; nil answers with the prompt's default
	Answer func(prompt string) bool
}

// NewHeadless creates a recorder that accepts every prompt's default
func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) DrawBolt(p gruid.Point, glyph rune, colour tcell.Color) {
	h.Draws = append(h.Draws, Draw{P: p, Glyph: glyph, Colour: colour})
}

func (h *Headless) Delay(ms int) { h.Delays++ }

func (h *Headless) Update() { h.Updates++ }

func (h *Headless) Message(ch Channel, text string) {
	h.Messages = append(h.Messages, Message{Channel: ch, Text: text})
}

func (h *Headless) YesNo(prompt string, def bool) bool {
	h.Prompts = append(h.Prompts, prompt)
	if h.Answer == nil {
		return def
	}
	return h.Answer(prompt)
}

// Texts returns the recorded message texts
func (h *Headless) Texts() []string {
	out := make([]string, len(h.Messages))
	for i, m := range h.Messages {
		out[i] = m.Text
	}
	return out
}

// Reset clears all recordings
func (h *Headless) Reset() {
	h.Draws, h.Messages, h.Prompts = nil, nil, nil
	h.Delays, h.Updates = 0, 0
}
