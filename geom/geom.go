// Package geom holds integer grid helpers over gruid points
package geom

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Compass lists the eight neighbour offsets clockwise from north
var Compass = [8]gruid.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Adjacent reports whether two distinct cells touch, diagonals included
func Adjacent(a, b gruid.Point) bool {
	return a != b && paths.DistanceChebyshev(a, b) == 1
}

// Sign returns -1, 0 or 1
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Clamp moves p to the nearest cell inside rg
func Clamp(p gruid.Point, rg gruid.Range) gruid.Point {
	if rg.Empty() {
		return p
	}
	p.X = min(max(p.X, rg.Min.X), rg.Max.X-1)
	p.Y = min(max(p.Y, rg.Min.Y), rg.Max.Y-1)
	return p
}

// Ring returns the cells at exactly Chebyshev radius r around c that lie in rg
func Ring(c gruid.Point, r int, rg gruid.Range) []gruid.Point {
	if r == 0 {
		if c.In(rg) {
			return []gruid.Point{c}
		}
		return nil
	}
	pts := make([]gruid.Point, 0, 8*r)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			p := c.Add(gruid.Point{X: x, Y: y})
			if paths.DistanceChebyshev(p, c) != r {
				continue
			}
			if p.In(rg) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
