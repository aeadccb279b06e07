// Package rng provides the seedable dice and weighted-choice helpers used by the beam engine
package rng

import (
	"math"
	"math/rand/v2"
)

// RNG wraps a PCG source so its state can be snapshotted and restored
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// State is an opaque snapshot of the generator
type State struct {
	pcg rand.PCG
}

// New creates a generator from a seed
func New(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &RNG{src: src, r: rand.New(src)}
}

// Snapshot captures the generator state
func (g *RNG) Snapshot() State {
	return State{pcg: *g.src}
}

// Restore rewinds the generator to a snapshot
func (g *RNG) Restore(s State) {
	*g.src = s.pcg
}

// Random2 returns a value in [0, n), or 0 when n <= 0
func (g *RNG) Random2(n int) int {
	if n <= 1 {
		return 0
	}
	return g.r.IntN(n)
}

// RandomRange returns a value in [lo, hi] inclusive
func (g *RNG) RandomRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.Random2(hi-lo+1)
}

// OneChanceIn returns true with probability 1/n
func (g *RNG) OneChanceIn(n int) bool {
	if n <= 1 {
		return true
	}
	return g.Random2(n) == 0
}

// Coinflip returns true half the time
func (g *RNG) Coinflip() bool {
	return g.Random2(2) == 0
}

// XChanceInY returns true with probability x/y
func (g *RNG) XChanceInY(x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return g.Random2(y) < x
}

// RollDice sums num rolls of a 1..size die
func (g *RNG) RollDice(num, size int) int {
	if num <= 0 || size <= 0 {
		return 0
	}
	total := 0
	for range num {
		total += 1 + g.Random2(size)
	}
	return total
}

// Random2Avg averages rolls draws of Random2(max), rounding down
func (g *RNG) Random2Avg(max, rolls int) int {
	if rolls <= 0 {
		return 0
	}
	sum := g.Random2(max)
	for range rolls - 1 {
		sum += g.Random2(max + 1)
	}
	return sum / rolls
}

// DivRandRound divides num by den, rounding up with probability equal to the remainder fraction
func (g *RNG) DivRandRound(num, den int) int {
	if den <= 0 {
		return 0
	}
	q, rem := num/den, num%den
	if rem > 0 && g.Random2(den) < rem {
		q++
	}
	return q
}

// Weighted pairs a choice with its relative weight
type Weighted[T any] struct {
	Value  T
	Weight int
}

// ChooseWeighted draws one value proportionally to its weight
// Panics on an empty or zero-weight table
func ChooseWeighted[T any](g *RNG, table []Weighted[T]) T {
	total := 0
	for _, w := range table {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total == 0 {
		panic("rng: weighted choice over empty table")
	}
	roll := g.Random2(total)
	for _, w := range table {
		if w.Weight <= 0 {
			continue
		}
		if roll < w.Weight {
			return w.Value
		}
		roll -= w.Weight
	}
	return table[len(table)-1].Value
}

// Stepdown compresses value logarithmically above step
func Stepdown(value, step float64) float64 {
	return step * math.Log2(1+value/step)
}

// StepdownValue keeps base below firstStep unchanged and compresses the excess
// A positive ceiling caps the result
func StepdownValue(base, stepping, firstStep, ceiling int) int {
	if ceiling < 0 {
		ceiling = 0
	}
	if ceiling > 0 && ceiling < firstStep {
		return min(base, ceiling)
	}
	if base < firstStep {
		return base
	}
	diff := firstStep - stepping
	val := diff + int(Stepdown(float64(base-diff), float64(stepping)))
	if ceiling > 0 {
		return min(val, ceiling)
	}
	return val
}
