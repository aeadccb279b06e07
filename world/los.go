package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// LOSRadius is the sight range in cells
const LOSRadius = 8

// LOSMode selects what blocks sight
type LOSMode uint8

const (
	// LOSDefault is blocked by opaque features and opaque clouds
	LOSDefault LOSMode = iota
	// LOSNoTrans is additionally blocked by transparent solids like grates and crystal
	LOSNoTrans
)

type losKey struct {
	src     gruid.Point
	mode    LOSMode
	version int
	clouds  int
}

// losCache memoises one vision map per source and mode until terrain changes
type losCache struct {
	fov     *rl.FOV
	entries map[losKey]map[gruid.Point]bool
}

func newLOSCache(rg gruid.Range) *losCache {
	return &losCache{
		fov:     rl.NewFOV(rg),
		entries: make(map[losKey]map[gruid.Point]bool),
	}
}

func (w *World) passable(mode LOSMode) func(gruid.Point) bool {
	if mode == LOSNoTrans {
		return func(p gruid.Point) bool {
			return !IsSolid(w.FeatAt(p))
		}
	}
	return func(p gruid.Point) bool {
		if IsOpaque(w.FeatAt(p)) {
			return false
		}
		c, ok := w.clouds[p]
		return !ok || !c.Kind.Opaque()
	}
}

func (w *World) visionMap(src gruid.Point, mode LOSMode) map[gruid.Point]bool {
	key := losKey{src: src, mode: mode, version: w.version, clouds: w.opaqueClouds()}
	if m, ok := w.los.entries[key]; ok {
		return m
	}
	if len(w.los.entries) > 256 {
		clear(w.los.entries)
	}
	pts := w.los.fov.SSCVisionMap(src, LOSRadius, w.passable(mode), false)
	m := make(map[gruid.Point]bool, len(pts)+1)
	for _, p := range pts {
		m[p] = true
	}
	m[src] = true
	w.los.entries[key] = m
	return m
}

func (w *World) opaqueClouds() int {
	n := 0
	for _, c := range w.clouds {
		if c.Kind.Opaque() {
			n++
		}
	}
	return n
}

// CellSeeCell reports whether b is visible from a under the given mode
func (w *World) CellSeeCell(a, b gruid.Point, mode LOSMode) bool {
	if !w.InBounds(a) || !w.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}
	if paths.DistanceChebyshev(a, b) > LOSRadius {
		return false
	}
	return w.visionMap(a, mode)[b]
}

// PlayerSees reports whether the player has ordinary sight of p
func (w *World) PlayerSees(p gruid.Point) bool {
	if w.player == nil {
		return false
	}
	return w.CellSeeCell(w.player.Pos(), p, LOSDefault)
}

// SeeCellNoTrans reports whether the player sees p without looking through transparent solids
func (w *World) SeeCellNoTrans(p gruid.Point) bool {
	if w.player == nil {
		return false
	}
	return w.CellSeeCell(w.player.Pos(), p, LOSNoTrans)
}
