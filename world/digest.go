package world

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Digest renders every piece of mutable level state into a canonical string
// Two worlds with equal digests are indistinguishable to the beam engine
func (w *World) Digest() string {
	var sb strings.Builder
	rg := w.Bounds()
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			sb.WriteRune(FeatureGlyph(w.FeatAt(gruid.Point{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}

	for _, p := range sortedKeys(w.clouds) {
		c := w.clouds[p]
		fmt.Fprintf(&sb, "cloud %v %s %d %d\n", p, c.Kind, c.Duration, c.Agent)
	}
	for _, p := range sortedKeys(w.items) {
		for _, it := range w.items[p] {
			fmt.Fprintf(&sb, "item %v %+v\n", p, it)
		}
	}
	for _, p := range sortedKeys(w.traps) {
		fmt.Fprintf(&sb, "trap %v %+v\n", p, w.traps[p])
	}
	for _, p := range sortedKeys(w.temp) {
		fmt.Fprintf(&sb, "temp %v %+v\n", p, w.temp[p])
	}
	for _, p := range sortedKeys(w.halos) {
		fmt.Fprintf(&sb, "halo %v %d\n", p, w.halos[p])
	}
	if w.player != nil {
		fmt.Fprintf(&sb, "player %+v\n", w.player.State())
	}
	for _, m := range w.Monsters() {
		fmt.Fprintf(&sb, "monster %+v\n", m.State())
	}
	for _, c := range w.conducts {
		fmt.Fprintf(&sb, "conduct %s %d\n", c.Kind, c.Level)
	}
	fmt.Fprintf(&sb, "banished %v\n", w.Banished)
	return sb.String()
}

func sortedKeys[V any](m map[gruid.Point]V) []gruid.Point {
	keys := make([]gruid.Point, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}
