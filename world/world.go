package world

import (
	"fmt"
	"sort"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/lixenwraith/beamcrawl/actor"
)

// World is the mutable dungeon level
type World struct {
	terrain rl.Grid
	version int

	clouds map[gruid.Point]Cloud
	items  map[gruid.Point][]Item
	traps  map[gruid.Point]Trap
	temp   map[gruid.Point]TempTerrain
	sanct  map[gruid.Point]bool
	halos  map[gruid.Point]int

	occ     *Occupancy
	player  actor.Actor
	actors  map[actor.MID]actor.Actor
	nextMID actor.MID

	conducts []Conduct
	// Pandemonium switches wall destruction wording
	Pandemonium bool
	// Banished lists monsters sent away this level
	Banished []actor.MID

	los *losCache
	nbs paths.Neighbors
}

// New creates a level of the given size filled with floor and ringed by permanent rock
func New(width, height int) *World {
	g := rl.NewGrid(width, height)
	g.Fill(Floor)
	w := newWorld(g)
	rg := g.Bounds()
	for x := rg.Min.X; x < rg.Max.X; x++ {
		w.terrain.Set(gruid.Point{X: x, Y: rg.Min.Y}, PermaRock)
		w.terrain.Set(gruid.Point{X: x, Y: rg.Max.Y - 1}, PermaRock)
	}
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		w.terrain.Set(gruid.Point{X: rg.Min.X, Y: y}, PermaRock)
		w.terrain.Set(gruid.Point{X: rg.Max.X - 1, Y: y}, PermaRock)
	}
	return w
}

// FromGrid wraps an existing terrain grid
func FromGrid(g rl.Grid) *World {
	return newWorld(g)
}

func newWorld(g rl.Grid) *World {
	size := g.Size()
	w := &World{
		terrain: g,
		clouds:  make(map[gruid.Point]Cloud),
		items:   make(map[gruid.Point][]Item),
		traps:   make(map[gruid.Point]Trap),
		temp:    make(map[gruid.Point]TempTerrain),
		sanct:   make(map[gruid.Point]bool),
		halos:   make(map[gruid.Point]int),
		occ:     NewOccupancy(size.X, size.Y),
		actors:  make(map[actor.MID]actor.Actor),
		nextMID: actor.MIDFirstMonster,
	}
	w.los = newLOSCache(g.Bounds())
	return w
}

// Bounds returns the map extents
func (w *World) Bounds() gruid.Range {
	return w.terrain.Bounds()
}

// InBounds reports whether p is on the map
func (w *World) InBounds(p gruid.Point) bool {
	return w.terrain.Contains(p)
}

// FeatAt returns the feature at p; off-map cells read as permanent rock
func (w *World) FeatAt(p gruid.Point) rl.Cell {
	if !w.InBounds(p) {
		return PermaRock
	}
	return w.terrain.At(p)
}

// SetFeat replaces the feature at p
func (w *World) SetFeat(p gruid.Point, f rl.Cell) {
	w.setFeat(p, f)
}

func (w *World) setFeat(p gruid.Point, f rl.Cell) {
	if !w.InBounds(p) || w.terrain.At(p) == f {
		return
	}
	w.terrain.Set(p, f)
	w.version++
}

// CellIsSolid reports whether the feature at p blocks bolts
func (w *World) CellIsSolid(p gruid.Point) bool {
	return IsSolid(w.FeatAt(p))
}

// DestroyWall turns a solid feature into floor
func (w *World) DestroyWall(p gruid.Point) bool {
	f := w.FeatAt(p)
	if !IsSolid(f) || IsPermanent(f) || !w.InBounds(p) {
		return false
	}
	delete(w.temp, p)
	w.setFeat(p, Floor)
	return true
}

// SetSanctuary marks every cell within Chebyshev radius r of c
func (w *World) SetSanctuary(c gruid.Point, r int) {
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			p := gruid.Point{X: x, Y: y}
			if w.InBounds(p) {
				w.sanct[p] = true
			}
		}
	}
}

// IsSanctuary reports whether p is protected from hostile effects
func (w *World) IsSanctuary(p gruid.Point) bool {
	return w.sanct[p]
}

// SetPlayer installs the player
func (w *World) SetPlayer(p actor.Actor) {
	if w.player != nil {
		w.occ.Remove(w.player.MID(), w.player.Pos())
	}
	w.player = p
	w.actors[p.MID()] = p
	if !w.occ.Add(p.MID(), p.Pos()) {
		panic(fmt.Sprintf("world: player cell %v unavailable", p.Pos()))
	}
}

// Player returns the player
func (w *World) Player() actor.Actor {
	return w.player
}

// SpawnMonster creates a monster at p and returns it, or nil if the cell is taken
func (w *World) SpawnMonster(sp *actor.Species, p gruid.Point, att actor.Attitude) *actor.Creature {
	if !w.InBounds(p) || w.occ.HasAny(p) || IsSolid(w.FeatAt(p)) {
		return nil
	}
	m := actor.NewMonster(w.nextMID, sp, p, att)
	w.nextMID++
	w.actors[m.MID()] = m
	w.occ.Add(m.MID(), p)
	return m
}

// ActorAt returns the actor occupying p
func (w *World) ActorAt(p gruid.Point) actor.Actor {
	mid := w.occ.At(p)
	if mid == actor.MIDNobody {
		return nil
	}
	return w.actors[mid]
}

// MonsterAt returns the monster occupying p
func (w *World) MonsterAt(p gruid.Point) actor.Actor {
	a := w.ActorAt(p)
	if a == nil || a.IsPlayer() {
		return nil
	}
	return a
}

// ActorByMID returns a living actor by id
func (w *World) ActorByMID(mid actor.MID) actor.Actor {
	return w.actors[mid]
}

// Monsters returns the living monsters in id order
func (w *World) Monsters() []actor.Actor {
	out := make([]actor.Actor, 0, len(w.actors))
	for _, a := range w.actors {
		if !a.IsPlayer() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MID() < out[j].MID() })
	return out
}

// Move relocates an actor to a free, non-solid cell
func (w *World) Move(a actor.Actor, to gruid.Point) bool {
	if !w.InBounds(to) || IsSolid(w.FeatAt(to)) {
		return false
	}
	if to == a.Pos() {
		return true
	}
	if w.occ.HasAny(to) {
		return false
	}
	w.occ.Remove(a.MID(), a.Pos())
	a.SetPos(to)
	w.occ.Add(a.MID(), to)
	return true
}

// Remove takes a dead or departed monster off the level
func (w *World) Remove(a actor.Actor) {
	if a.IsPlayer() {
		return
	}
	w.occ.Remove(a.MID(), a.Pos())
	delete(w.actors, a.MID())
}

// Free reports whether p can take a new occupant
func (w *World) Free(p gruid.Point) bool {
	return w.InBounds(p) && !IsSolid(w.FeatAt(p)) && !w.occ.HasAny(p)
}

func (w *World) neighbours(p gruid.Point) []gruid.Point {
	return w.nbs.All(p, w.InBounds)
}
