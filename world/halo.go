package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// PlaceHalo lights every cell within radius of c for duration aut and returns how many were lit
// A longer-lasting light already on a cell is kept
func (w *World) PlaceHalo(c gruid.Point, radius, duration int) int {
	if duration <= 0 || !w.InBounds(c) {
		return 0
	}
	n := 0
	for y := c.Y - radius; y <= c.Y+radius; y++ {
		for x := c.X - radius; x <= c.X+radius; x++ {
			p := gruid.Point{X: x, Y: y}
			if !w.InBounds(p) || paths.DistanceChebyshev(p, c) > radius {
				continue
			}
			w.halos[p] = max(w.halos[p], duration)
			n++
		}
	}
	return n
}

// Haloed reports whether p is lit; invisible actors in a lit cell can be seen
func (w *World) Haloed(p gruid.Point) bool {
	return w.halos[p] > 0
}
