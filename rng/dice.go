package rng

import "fmt"

// Dice is a num-d-size roll
type Dice struct {
	Num  int `json:"num"`
	Size int `json:"size"`
}

// Max returns the highest possible roll
func (d Dice) Max() int {
	if d.Num <= 0 || d.Size <= 0 {
		return 0
	}
	return d.Num * d.Size
}

// Roll rolls the dice once
func (d Dice) Roll(g *RNG) int {
	return g.RollDice(d.Num, d.Size)
}

// IsZero reports whether the dice can never deal damage
func (d Dice) IsZero() bool {
	return d.Max() == 0
}

// String formats as NdS
func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Num, d.Size)
}
