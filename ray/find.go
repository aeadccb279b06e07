package ray

import "codeberg.org/anaseto/gruid"

// ReflectMask records which of the eight neighbours of a cell are solid
type ReflectMask [3][3]bool

// Set marks the neighbour at offset off
func (m *ReflectMask) Set(off gruid.Point, solid bool) {
	if off.X < -1 || off.X > 1 || off.Y < -1 || off.Y > 1 {
		return
	}
	m[off.Y+1][off.X+1] = solid
}

// At reports whether the neighbour at offset off is solid
func (m ReflectMask) At(off gruid.Point) bool {
	if off.X < -1 || off.X > 1 || off.Y < -1 || off.Y > 1 {
		return false
	}
	return m[off.Y+1][off.X+1]
}

// Find searches accumulator offsets for a ray from src to tgt whose
// intermediate cells are all clear of opaque; the centred offset is tried first
func Find(src, tgt gruid.Point, opaque func(gruid.Point) bool) (Ray, bool) {
	base := New(src, tgt, 0)
	if base.major == 0 {
		return base, true
	}
	centre := base.major / 2
	for i := 0; i < base.major; i++ {
		// centre, centre+1, centre-1, centre+2, ...
		delta := (i + 1) / 2
		if i%2 == 0 {
			delta = -delta
		}
		r := New(src, tgt, centre+delta)
		if unobstructed(r, tgt, opaque) {
			return r, true
		}
	}
	return Fallback(src, tgt), false
}

// Fallback returns the centred ray regardless of obstructions
func Fallback(src, tgt gruid.Point) Ray {
	base := New(src, tgt, 0)
	return New(src, tgt, base.major/2)
}

func unobstructed(r Ray, tgt gruid.Point, opaque func(gruid.Point) bool) bool {
	for range r.major - 1 {
		r.Advance()
		if r.pos == tgt {
			return true
		}
		if opaque(r.pos) {
			return false
		}
	}
	return true
}
