// Package ray implements integer rays that travel past their target, regress and bounce
package ray

import "codeberg.org/anaseto/gruid"

// Ray is a Bresenham-style traverser along a fixed slope
// The slope is held as major/minor magnitudes with per-axis signs; the
// accumulator decides when the minor axis steps
type Ray struct {
	pos    gruid.Point
	stepX  int
	stepY  int
	major  int
	minor  int
	xMajor bool
	acc    int

	history []frame
}

type frame struct {
	pos gruid.Point
	acc int
}

// New builds a ray from src aimed through tgt with the given accumulator offset
// offset is taken modulo the major extent; any value reaches tgt exactly
func New(src, tgt gruid.Point, offset int) Ray {
	d := tgt.Sub(src)
	r := Ray{pos: src, stepX: 1, stepY: 1}
	dx, dy := d.X, d.Y
	if dx < 0 {
		r.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		r.stepY = -1
		dy = -dy
	}
	if dx == 0 {
		r.stepX = 0
	}
	if dy == 0 {
		r.stepY = 0
	}
	r.xMajor = dx >= dy
	if r.xMajor {
		r.major, r.minor = dx, dy
	} else {
		r.major, r.minor = dy, dx
	}
	if r.major > 0 {
		r.acc = ((offset % r.major) + r.major) % r.major
	}
	return r
}

// Pos returns the current cell
func (r *Ray) Pos() gruid.Point {
	return r.pos
}

// Degenerate reports whether the ray has no direction
func (r *Ray) Degenerate() bool {
	return r.major == 0
}

// Depth returns the number of un-regressed advances
func (r *Ray) Depth() int {
	return len(r.history)
}

// NextStep returns the offset the next Advance would move by
func (r *Ray) NextStep() gruid.Point {
	step, _ := r.peek()
	return step
}

func (r *Ray) peek() (gruid.Point, int) {
	if r.major == 0 {
		return gruid.Point{}, r.acc
	}
	acc := r.acc + r.minor
	minorStep := false
	if acc >= r.major {
		acc -= r.major
		minorStep = true
	}
	var step gruid.Point
	if r.xMajor {
		step.X = r.stepX
		if minorStep {
			step.Y = r.stepY
		}
	} else {
		step.Y = r.stepY
		if minorStep {
			step.X = r.stepX
		}
	}
	return step, acc
}

// Advance moves one cell along the ray
func (r *Ray) Advance() {
	r.history = append(r.history, frame{pos: r.pos, acc: r.acc})
	step, acc := r.peek()
	r.pos = r.pos.Add(step)
	r.acc = acc
}

// Regress undoes the last Advance; a ray at its origin stays put
func (r *Ray) Regress() {
	n := len(r.history)
	if n == 0 {
		return
	}
	f := r.history[n-1]
	r.history = r.history[:n-1]
	r.pos, r.acc = f.pos, f.acc
}

// Bounce mirrors the ray's direction using the solidity of the current cell's neighbours
// The step that would have entered the wall decides which axes flip
func (r *Ray) Bounce(mask ReflectMask) {
	step := r.NextStep()
	switch {
	case step.X != 0 && step.Y != 0:
		hBlocked := mask.At(gruid.Point{X: step.X})
		vBlocked := mask.At(gruid.Point{Y: step.Y})
		switch {
		case hBlocked && !vBlocked:
			r.stepX = -r.stepX
		case vBlocked && !hBlocked:
			r.stepY = -r.stepY
		default:
			r.stepX, r.stepY = -r.stepX, -r.stepY
		}
	case step.X != 0:
		r.stepX = -r.stepX
	case step.Y != 0:
		r.stepY = -r.stepY
	}
	// History restarts at the bounce cell
	r.history = r.history[:0]
}

// Clone returns a ray that shares no history with r
func (r Ray) Clone() Ray {
	r.history = append([]frame(nil), r.history...)
	return r
}
