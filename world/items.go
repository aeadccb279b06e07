package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Item is a floor item or projectile carried by a bolt
type Item struct {
	Name     string
	Quantity int
	// Summoned items vanish instead of landing
	Summoned bool
	// Net items become a net trap when they land without a victim
	Net bool
	// Curare marks a poisoned dart
	Curare bool
	// Flammable items burn in fire explosions
	Flammable bool
}

// TrapKind enumerates traps a bolt can create
type TrapKind uint8

const (
	TrapNone TrapKind = iota
	TrapWeb
	TrapNet
)

// String returns the trap name
func (k TrapKind) String() string {
	switch k {
	case TrapWeb:
		return "web"
	case TrapNet:
		return "net"
	}
	return "none"
}

// Trap is a placed trap
type Trap struct {
	Kind  TrapKind
	Power int
}

// TempTerrain remembers a timed terrain change and what it replaced
type TempTerrain struct {
	Original rl.Cell
	Feat     rl.Cell
	Duration int
	Reason   string
}

// ItemsAt returns the stack at p
func (w *World) ItemsAt(p gruid.Point) []Item {
	return w.items[p]
}

// DropItem lands an item at p and reports whether it stayed in the world
func (w *World) DropItem(p gruid.Point, it Item) bool {
	if it.Summoned || !w.InBounds(p) {
		return false
	}
	if it.Quantity <= 0 {
		it.Quantity = 1
	}
	w.items[p] = append(w.items[p], it)
	return true
}

// DestroyItems removes the items at p selected by destroy and returns how many went
func (w *World) DestroyItems(p gruid.Point, destroy func(Item) bool) int {
	stack := w.items[p]
	kept := stack[:0:0]
	n := 0
	for _, it := range stack {
		if destroy(it) {
			n++
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) == 0 {
		delete(w.items, p)
	} else {
		w.items[p] = kept
	}
	return n
}

// TrapAt returns the trap at p
func (w *World) TrapAt(p gruid.Point) (Trap, bool) {
	t, ok := w.traps[p]
	return t, ok
}

// PlaceSpecificTrap creates a trap at p unless the cell is solid or already trapped
func (w *World) PlaceSpecificTrap(p gruid.Point, kind TrapKind, power int) bool {
	if kind == TrapNone || !w.InBounds(p) || IsSolid(w.FeatAt(p)) {
		return false
	}
	if _, ok := w.traps[p]; ok {
		return false
	}
	w.traps[p] = Trap{Kind: kind, Power: power}
	return true
}

// TempChangeTerrain swaps the feature at p for a duration, remembering the original
func (w *World) TempChangeTerrain(p gruid.Point, feat rl.Cell, duration int, reason string) bool {
	if !w.InBounds(p) || duration <= 0 {
		return false
	}
	orig := w.FeatAt(p)
	if IsPermanent(orig) || orig == feat {
		return false
	}
	if old, ok := w.temp[p]; ok {
		orig = old.Original
	}
	w.temp[p] = TempTerrain{Original: orig, Feat: feat, Duration: duration, Reason: reason}
	w.setFeat(p, feat)
	return true
}

// TempTerrainAt returns the timed change at p
func (w *World) TempTerrainAt(p gruid.Point) (TempTerrain, bool) {
	t, ok := w.temp[p]
	return t, ok
}
