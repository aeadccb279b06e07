package world

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/beamcrawl/actor"
)

// Occupancy is a dense one-actor-per-cell grid of MIDs
type Occupancy struct {
	Width  int
	Height int
	Cells  []actor.MID // 1D array: index = y*Width + x
}

// NewOccupancy creates an empty grid with the specified dimensions
func NewOccupancy(width, height int) *Occupancy {
	return &Occupancy{
		Width:  width,
		Height: height,
		Cells:  make([]actor.MID, width*height),
	}
}

func (o *Occupancy) index(p gruid.Point) (int, bool) {
	if p.X < 0 || p.X >= o.Width || p.Y < 0 || p.Y >= o.Height {
		return 0, false
	}
	return p.Y*o.Width + p.X, true
}

// Add places mid at p
// Returns false if out of bounds or the cell is taken
func (o *Occupancy) Add(mid actor.MID, p gruid.Point) bool {
	idx, ok := o.index(p)
	if !ok || o.Cells[idx] != actor.MIDNobody {
		return false
	}
	o.Cells[idx] = mid
	return true
}

// Remove clears p if it holds mid
func (o *Occupancy) Remove(mid actor.MID, p gruid.Point) {
	idx, ok := o.index(p)
	if !ok || o.Cells[idx] != mid {
		return
	}
	o.Cells[idx] = actor.MIDNobody
}

// At returns the occupant of p, MIDNobody if empty or out of bounds
func (o *Occupancy) At(p gruid.Point) actor.MID {
	idx, ok := o.index(p)
	if !ok {
		return actor.MIDNobody
	}
	return o.Cells[idx]
}

// HasAny reports whether p is occupied
func (o *Occupancy) HasAny(p gruid.Point) bool {
	return o.At(p) != actor.MIDNobody
}

// Clear empties every cell
func (o *Occupancy) Clear() {
	for i := range o.Cells {
		o.Cells[i] = actor.MIDNobody
	}
}
