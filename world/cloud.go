package world

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
)

// CloudKind is the kind of a per-cell timed cloud
type CloudKind uint8

const (
	CloudNone CloudKind = iota
	CloudFire
	CloudForestFire
	CloudCold
	CloudMephitic
	CloudPoison
	CloudMiasma
	CloudSteam
	CloudChaos
	CloudHoly
	CloudBlackSmoke
	CloudRain
	CloudAcid
	CloudSpectral
	cloudCount
)

var cloudNames = [cloudCount]string{
	CloudNone:       "none",
	CloudFire:       "flame",
	CloudForestFire: "forest fire",
	CloudCold:       "freezing vapour",
	CloudMephitic:   "noxious fumes",
	CloudPoison:     "poison gas",
	CloudMiasma:     "foul pestilence",
	CloudSteam:      "steam",
	CloudChaos:      "seething chaos",
	CloudHoly:       "blessed fire",
	CloudBlackSmoke: "black smoke",
	CloudRain:       "rain",
	CloudAcid:       "acidic fog",
	CloudSpectral:   "spectral mist",
}

// String returns the cloud name
func (k CloudKind) String() string {
	if k >= cloudCount {
		return "unknown"
	}
	return cloudNames[k]
}

// Opaque reports whether the cloud blocks sight
func (k CloudKind) Opaque() bool {
	return k == CloudBlackSmoke
}

// Cloud is a placed cloud
type Cloud struct {
	Kind     CloudKind
	Duration int
	Agent    actor.MID
}

// CloudAt returns the cloud at p
func (w *World) CloudAt(p gruid.Point) (Cloud, bool) {
	c, ok := w.clouds[p]
	return c, ok
}

// PlaceCloud puts a cloud at p; solid cells and zero durations are ignored
// An existing cloud of the same kind is refreshed to the longer duration
func (w *World) PlaceCloud(kind CloudKind, p gruid.Point, duration int, agent actor.MID) bool {
	if kind == CloudNone || duration <= 0 || !w.InBounds(p) || IsSolid(w.FeatAt(p)) {
		return false
	}
	if old, ok := w.clouds[p]; ok && old.Kind == kind {
		duration = max(duration, old.Duration)
	}
	w.clouds[p] = Cloud{Kind: kind, Duration: duration, Agent: agent}
	return true
}

// DeleteCloud removes the cloud at p
func (w *World) DeleteCloud(p gruid.Point) {
	delete(w.clouds, p)
}

// Wet reports whether fire at p is damped by rain or adjacent water
func (w *World) Wet(p gruid.Point) bool {
	if c, ok := w.clouds[p]; ok && c.Kind == CloudRain {
		return true
	}
	for _, q := range w.neighbours(p) {
		if IsWatery(w.FeatAt(q)) && !IsEndless(w.FeatAt(q)) {
			return true
		}
	}
	return false
}
