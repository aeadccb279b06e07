package zaps

import "github.com/lixenwraith/beamcrawl/rng"

// AutoHit is the to-hit sentinel for bolts that cannot miss
const AutoHit = 1500

// ToHitCalc turns spell power into a to-hit value, or into enchantment power for enchantment zaps
type ToHitCalc interface {
	ToHit(power int) int
}

// DamageCalc turns spell power into damage dice
type DamageCalc interface {
	Damage(power int) rng.Dice
}

// LinearToHit is Adder + power*Num/Den
type LinearToHit struct {
	Adder int `json:"adder"`
	Num   int `json:"num"`
	Den   int `json:"den"`
}

func (c LinearToHit) ToHit(power int) int {
	den := c.Den
	if den == 0 {
		den = 1
	}
	return c.Adder + power*c.Num/den
}

// FixedToHit ignores power
type FixedToHit int

func (c FixedToHit) ToHit(int) int { return int(c) }

// LinearDice rolls Num dice of size Adder + power*Mul/Div
type LinearDice struct {
	Num   int `json:"num"`
	Adder int `json:"adder"`
	Mul   int `json:"mul"`
	Div   int `json:"div"`
}

func (c LinearDice) Damage(power int) rng.Dice {
	div := c.Div
	if div == 0 {
		div = 1
	}
	return rng.Dice{Num: c.Num, Size: c.Adder + power*c.Mul/div}
}

// FixedDice ignores power
type FixedDice rng.Dice

func (c FixedDice) Damage(int) rng.Dice { return rng.Dice(c) }
