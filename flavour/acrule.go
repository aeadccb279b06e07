package flavour

// ACRule selects how armour class reduces a flavour's damage
type ACRule uint8

const (
	ACNone ACRule = iota
	ACHalf
	ACNormal
	ACTriple
)

// String returns the rule name
func (r ACRule) String() string {
	switch r {
	case ACNone:
		return "none"
	case ACHalf:
		return "half"
	case ACTriple:
		return "triple"
	default:
		return "normal"
	}
}

// DefaultACRule returns the armour rule a flavour carries unless a zap overrides it
func (f Flavour) DefaultACRule() ACRule {
	switch f {
	case Damnation, Ensnare:
		return ACNone
	case Electricity:
		return ACHalf
	case Frag, SilverFrag:
		return ACTriple
	}
	return ACNormal
}
