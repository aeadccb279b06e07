package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/lixenwraith/beamcrawl/actor"
	"github.com/lixenwraith/beamcrawl/geom"
	"github.com/lixenwraith/beamcrawl/rng"
)

// Teleport moves an actor to a random free cell anywhere on the level
func (w *World) Teleport(a actor.Actor, g *rng.RNG) bool {
	var free []gruid.Point
	rg := w.Bounds()
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			p := gruid.Point{X: x, Y: y}
			if w.Free(p) && paths.DistanceChebyshev(p, a.Pos()) > 1 {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	return w.Move(a, free[g.Random2(len(free))])
}

// Blink moves an actor to a random free cell it can see within maxDist
func (w *World) Blink(a actor.Actor, g *rng.RNG, maxDist int) bool {
	var free []gruid.Point
	from := a.Pos()
	for y := from.Y - maxDist; y <= from.Y+maxDist; y++ {
		for x := from.X - maxDist; x <= from.X+maxDist; x++ {
			p := gruid.Point{X: x, Y: y}
			if p == from || !w.Free(p) {
				continue
			}
			if w.CellSeeCell(from, p, LOSNoTrans) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	return w.Move(a, free[g.Random2(len(free))])
}

// BlinkToward moves an actor onto dest, or the first free cell beside it, if visible
func (w *World) BlinkToward(a actor.Actor, dest gruid.Point) bool {
	if w.Free(dest) && w.CellSeeCell(a.Pos(), dest, LOSNoTrans) {
		return w.Move(a, dest)
	}
	for _, off := range geom.Compass {
		p := dest.Add(off)
		if w.Free(p) && w.CellSeeCell(a.Pos(), p, LOSNoTrans) {
			return w.Move(a, p)
		}
	}
	return false
}

// Banish sends a monster off the level; the player cannot be banished here
func (w *World) Banish(a actor.Actor) bool {
	if a.IsPlayer() {
		return false
	}
	w.Banished = append(w.Banished, a.MID())
	w.Remove(a)
	return true
}

// Push moves an actor up to dist cells along dir, stopping before obstacles, and returns the cells travelled
func (w *World) Push(a actor.Actor, dir gruid.Point, dist int) int {
	moved := 0
	for range dist {
		next := a.Pos().Add(dir)
		if !w.Move(a, next) {
			break
		}
		moved++
	}
	return moved
}
