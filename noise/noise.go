// Package noise carries the sound events produced by bolts and explosions
package noise

import (
	"codeberg.org/anaseto/gruid"
)

// Sink receives a noise at a map cell
type Sink interface {
	Noise(at gruid.Point, loudness int)
}

// Event is one recorded noise
type Event struct {
	At       gruid.Point
	Loudness int
}

// Recorder keeps every noise in order
type Recorder struct {
	Events []Event
}

func (r *Recorder) Noise(at gruid.Point, loudness int) {
	r.Events = append(r.Events, Event{At: at, Loudness: loudness})
}

// Loudest returns the highest recorded loudness, or 0
func (r *Recorder) Loudest() int {
	loudest := 0
	for _, e := range r.Events {
		loudest = max(loudest, e.Loudness)
	}
	return loudest
}

// Nop discards noise
type Nop struct{}

func (Nop) Noise(gruid.Point, int) {}

// Tee fans a noise out to several sinks
type Tee []Sink

func (t Tee) Noise(at gruid.Point, loudness int) {
	for _, s := range t {
		s.Noise(at, loudness)
	}
}
