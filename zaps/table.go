package zaps

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/world"
)

// enchant builds an enchantment zap whose power is Adder + power*Num/Den
func enchant(name string, f flavour.Flavour, colour tcell.Color, powerCap int, tohit LinearToHit) *Descriptor {
	return &Descriptor{
		Name:         name,
		Flavour:      f,
		Glyph:        '*',
		Colour:       colour,
		Enchantment:  true,
		PowerCap:     powerCap,
		PlayerToHit:  tohit,
		MonsterToHit: tohit,
	}
}

var registry = map[ID]*Descriptor{
	// --- Damage bolts ---
	MagicDart: {
		Name: "magic dart", Flavour: flavour.MMissile, Glyph: '*', Colour: tcell.ColorFuchsia,
		AlwaysObvious: true, PowerCap: 25,
		PlayerDamage: LinearDice{Num: 1, Adder: 3, Mul: 1, Div: 5}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 3, Adder: 4, Mul: 1, Div: 100}, MonsterToHit: FixedToHit(AutoHit),
	},
	Flame: {
		Name: "puff of flame", Flavour: flavour.Fire, Glyph: '*', Colour: tcell.ColorRed,
		PowerCap: 50, HitLoudness: 2,
		PlayerDamage: LinearDice{Num: 2, Adder: 4, Mul: 1, Div: 10}, PlayerToHit: LinearToHit{Adder: 8, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 3, Adder: 5, Mul: 1, Div: 40}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 40},
	},
	Frost: {
		Name: "puff of frost", Flavour: flavour.Cold, Glyph: '*', Colour: tcell.ColorWhite,
		PowerCap: 50, HitLoudness: 2,
		PlayerDamage: LinearDice{Num: 2, Adder: 4, Mul: 1, Div: 10}, PlayerToHit: LinearToHit{Adder: 8, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 3, Adder: 5, Mul: 1, Div: 40}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 40},
	},
	StoneArrow: {
		Name: "stone arrow", Flavour: flavour.MMissile, Glyph: ')', Colour: tcell.ColorGray,
		PowerCap: 50, HitLoudness: 3,
		PlayerDamage: LinearDice{Num: 3, Adder: 5, Mul: 1, Div: 8}, PlayerToHit: LinearToHit{Adder: 8, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 3, Adder: 5, Mul: 1, Div: 10}, MonsterToHit: LinearToHit{Adder: 14, Num: 1, Den: 35},
	},
	IronShot: {
		Name: "iron shot", Flavour: flavour.MMissile, Glyph: ')', Colour: tcell.ColorSteelBlue,
		PowerCap: 200, HitLoudness: 6,
		PlayerDamage: LinearDice{Num: 9, Adder: 15, Mul: 3, Div: 4}, PlayerToHit: LinearToHit{Adder: 7, Num: 1, Den: 15},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 9}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
	},
	CrystalSpear: {
		Name: "crystal spear", Flavour: flavour.Crystal, Glyph: ')', Colour: tcell.ColorAqua,
		PowerCap: 200, HitLoudness: 8,
		PlayerDamage: LinearDice{Num: 10, Adder: 23, Mul: 1, Div: 1}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 15},
		MonsterDamage: LinearDice{Num: 3, Adder: 16, Mul: 1, Div: 10}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
	},
	ThrowIcicle: {
		Name: "shard of ice", Flavour: flavour.Ice, Glyph: ')', Colour: tcell.ColorWhite,
		PowerCap: 100, HitLoudness: 4,
		PlayerDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 9, Num: 1, Den: 12},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 11}, MonsterToHit: LinearToHit{Adder: 17, Num: 1, Den: 25},
	},
	BoltOfFire: {
		Name: "bolt of fire", Flavour: flavour.Fire, Glyph: '#', Colour: tcell.ColorRed,
		Pierce: true, PowerCap: 200, HitLoudness: 6,
		PlayerDamage: LinearDice{Num: 6, Adder: 18, Mul: 2, Div: 3}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 25},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 11}, MonsterToHit: LinearToHit{Adder: 17, Num: 1, Den: 25},
	},
	BoltOfCold: {
		Name: "bolt of cold", Flavour: flavour.Cold, Glyph: '#', Colour: tcell.ColorWhite,
		Pierce: true, PowerCap: 200, HitLoudness: 6,
		PlayerDamage: LinearDice{Num: 6, Adder: 18, Mul: 2, Div: 3}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 25},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 11}, MonsterToHit: LinearToHit{Adder: 17, Num: 1, Den: 25},
	},
	Lightning: {
		Name: "bolt of lightning", Flavour: flavour.Electricity, Glyph: '#', Colour: tcell.ColorLightCyan,
		Pierce: true, PowerCap: 200, HitLoudness: 25,
		PlayerDamage: LinearDice{Num: 1, Adder: 11, Mul: 3, Div: 5}, PlayerToHit: LinearToHit{Adder: 7, Num: 1, Den: 40},
		MonsterDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 17}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 40},
	},
	BoltOfDraining: {
		Name: "bolt of negative energy", Flavour: flavour.Negative, Glyph: '#', Colour: tcell.ColorDarkGray,
		Pierce: true, PowerCap: 200,
		PlayerDamage: LinearDice{Num: 3, Adder: 9, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 8, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 9, Mul: 1, Div: 13}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 35},
	},
	VenomBolt: {
		Name: "bolt of poison", Flavour: flavour.Poison, Glyph: '#', Colour: tcell.ColorLightGreen,
		Pierce: true, PowerCap: 200, HitLoudness: 5,
		PlayerDamage: LinearDice{Num: 4, Adder: 15, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 8, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 13}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 35},
	},
	PoisonArrow: {
		Name: "poison arrow", Flavour: flavour.PoisonArrow, Glyph: ')', Colour: tcell.ColorLightGreen,
		PowerCap: 200, HitLoudness: 5,
		PlayerDamage: LinearDice{Num: 4, Adder: 5, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 5, Num: 1, Den: 12},
		MonsterDamage: LinearDice{Num: 3, Adder: 7, Mul: 1, Div: 12}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
	},
	StickyFlame: {
		Name: "sticky flame", Flavour: flavour.StickyFlame, Glyph: '*', Colour: tcell.ColorRed,
		PowerCap: 100, HitLoudness: 2,
		PlayerDamage: LinearDice{Num: 2, Adder: 3, Mul: 1, Div: 12}, PlayerToHit: LinearToHit{Adder: 11, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 3, Adder: 3, Mul: 1, Div: 50}, MonsterToHit: LinearToHit{Adder: 18, Num: 1, Den: 25},
	},
	CorrosiveBolt: {
		Name: "bolt of acid", Flavour: flavour.Acid, Glyph: '#', Colour: tcell.ColorYellow,
		PowerCap: 100, HitLoudness: 4,
		PlayerDamage: LinearDice{Num: 3, Adder: 9, Mul: 1, Div: 3}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 9, Mul: 1, Div: 13}, MonsterToHit: LinearToHit{Adder: 17, Num: 1, Den: 25},
	},
	SpitLava: {
		Name: "glob of lava", Flavour: flavour.Lava, Glyph: '*', Colour: tcell.ColorOrangeRed,
		PowerCap: 200, HitLoudness: 5,
		PlayerDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 20, Num: 0, Den: 1},
		MonsterDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 12}, MonsterToHit: LinearToHit{Adder: 20, Num: 0, Den: 1},
	},
	HolyBolt: {
		Name: "bolt of light", Flavour: flavour.Holy, Glyph: '#', Colour: tcell.ColorLightYellow,
		Pierce: true, PowerCap: 200,
		PlayerDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 4}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 12}, MonsterToHit: LinearToHit{Adder: 18, Num: 1, Den: 25},
	},
	BoltOfDevastation: {
		Name: "bolt of devastation", Flavour: flavour.Devastation, Glyph: '#', Colour: tcell.ColorPurple,
		Pierce: true, PowerCap: 200, HitLoudness: 15,
		PlayerDamage: LinearDice{Num: 3, Adder: 20, Mul: 1, Div: 3}, PlayerToHit: LinearToHit{Adder: 12, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 20, Mul: 1, Div: 10}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 20},
	},
	Disintegrate: {
		Name: "disintegration bolt", Flavour: flavour.Disintegration, Glyph: '#', Colour: tcell.ColorWhite,
		Pierce: true, PowerCap: 200, HitLoudness: 10,
		PlayerDamage: LinearDice{Num: 3, Adder: 15, Mul: 3, Div: 4}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 3, Adder: 15, Mul: 1, Div: 5}, MonsterToHit: FixedToHit(AutoHit),
	},
	SilverBolt: {
		Name: "silver bolt", Flavour: flavour.Silver, Glyph: '#', Colour: tcell.ColorSilver,
		PowerCap: 200, HitLoudness: 4,
		PlayerDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 3}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 8, Mul: 1, Div: 12}, MonsterToHit: LinearToHit{Adder: 18, Num: 1, Den: 25},
	},
	DamnationBolt: {
		Name: "damnation", Flavour: flavour.Damnation, Glyph: '*', Colour: tcell.ColorDarkRed,
		Explosion: true, ExSize: 1, PowerCap: 200, HitLoudness: 12,
		PlayerDamage: LinearDice{Num: 3, Adder: 15, Mul: 1, Div: 4}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 3, Adder: 20, Mul: 1, Div: 10}, MonsterToHit: FixedToHit(AutoHit),
	},
	ChaosBolt: {
		Name: "chaos bolt", Flavour: flavour.Chaos, Glyph: '#', Colour: tcell.ColorFuchsia,
		Pierce: true, PowerCap: 200, HitLoudness: 8,
		PlayerDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 3}, PlayerToHit: LinearToHit{Adder: 12, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 10}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
	},
	ForceLance: {
		Name: "lance of force", Flavour: flavour.MMissile, Glyph: '#', Colour: tcell.ColorSteelBlue,
		PowerCap: 100, HitLoudness: 5,
		PlayerDamage: LinearDice{Num: 2, Adder: 6, Mul: 1, Div: 6}, PlayerToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
		MonsterDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 15}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
		Effects: Effects{Knockback: 2},
	},
	Harpoon: {
		Name: "harpoon shot", Flavour: flavour.Missile, Glyph: ')', Colour: tcell.ColorBrown,
		PowerCap: 100, HitLoudness: 3,
		PlayerDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 5}, PlayerToHit: LinearToHit{Adder: 12, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 15}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
		Effects: Effects{Pull: true},
	},
	PrimalWave: {
		Name: "great wave of water", Flavour: flavour.Water, Glyph: '~', Colour: tcell.ColorBlue,
		PowerCap: 200, HitLoudness: 6,
		PlayerDamage: LinearDice{Num: 4, Adder: 14, Mul: 1, Div: 5}, PlayerToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		MonsterDamage: LinearDice{Num: 4, Adder: 14, Mul: 1, Div: 15}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		Effects: Effects{Knockback: 1, Origin: OriginPrimalWave},
	},
	Blinkbolt: {
		Name: "blinkbolt", Flavour: flavour.Electricity, Glyph: '#', Colour: tcell.ColorLightCyan,
		PowerCap: 200, HitLoudness: 10,
		PlayerDamage: LinearDice{Num: 2, Adder: 10, Mul: 1, Div: 6}, PlayerToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		MonsterDamage: LinearDice{Num: 2, Adder: 10, Mul: 1, Div: 17}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		Effects: Effects{Origin: OriginBlinkbolt},
	},
	ExplosiveBolt: {
		Name: "explosive bolt", Flavour: flavour.Missile, Glyph: ')', Colour: tcell.ColorRed,
		PowerCap: 100, HitLoudness: 4, Detonation: ExplosiveBlast,
		PlayerDamage: LinearDice{Num: 2, Adder: 6, Mul: 1, Div: 10}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 2, Adder: 6, Mul: 1, Div: 20}, MonsterToHit: LinearToHit{Adder: 18, Num: 1, Den: 25},
	},
	ExplosiveBlast: {
		Name: "explosion", Flavour: flavour.Fire, Glyph: '#', Colour: tcell.ColorRed,
		Explosion: true, ExSize: 1, PowerCap: 100,
		PlayerDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 6}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 12}, MonsterToHit: FixedToHit(AutoHit),
	},

	BarbedSpikes: {
		Name: "volley of spikes", Flavour: flavour.Missile, Glyph: ')', Colour: tcell.ColorBrown,
		PowerCap: 100, HitLoudness: 2,
		PlayerDamage: LinearDice{Num: 2, Adder: 5, Mul: 1, Div: 10}, PlayerToHit: LinearToHit{Adder: 12, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 2, Adder: 5, Mul: 1, Div: 20}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
		Effects: Effects{Barbs: true},
	},
	ThrowPie: {
		Name: "klown pie", Flavour: flavour.Missile, Glyph: ')', Colour: tcell.ColorPink,
		PowerCap: 100, HitLoudness: 1,
		PlayerDamage: LinearDice{Num: 1, Adder: 3, Mul: 1, Div: 20}, PlayerToHit: LinearToHit{Adder: 15, Num: 1, Den: 10},
		MonsterDamage: LinearDice{Num: 1, Adder: 3, Mul: 1, Div: 30}, MonsterToHit: LinearToHit{Adder: 20, Num: 1, Den: 25},
		Effects: Effects{Pie: true},
	},
	MiasmaBreath: {
		Name: "foul vapour", Flavour: flavour.Miasma, Glyph: '#', Colour: tcell.ColorDarkGray,
		Pierce: true, PowerCap: 100,
		PlayerDamage: LinearDice{Num: 2, Adder: 3, Mul: 1, Div: 10}, PlayerToHit: LinearToHit{Adder: 10, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 2, Adder: 3, Mul: 1, Div: 25}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		Effects: Effects{Rot: 3, TrailCloud: CloudSpec{Kind: world.CloudMiasma, Duration: 3}},
	},

	// --- Explosions ---
	Fireball: {
		Name: "fireball", Flavour: flavour.Fire, Glyph: '*', Colour: tcell.ColorRed,
		Explosion: true, ExSize: 1, PowerCap: 200,
		PlayerDamage: LinearDice{Num: 3, Adder: 10, Mul: 1, Div: 2}, PlayerToHit: LinearToHit{Adder: 40, Num: 0, Den: 1},
		MonsterDamage: LinearDice{Num: 3, Adder: 7, Mul: 1, Div: 10}, MonsterToHit: LinearToHit{Adder: 40, Num: 0, Den: 1},
	},
	FireStorm: {
		Name: "great blast of fire", Flavour: flavour.Fire, Glyph: '#', Colour: tcell.ColorOrangeRed,
		Explosion: true, ExSize: 2, AimedAtSpot: true, PowerCap: 200,
		PlayerDamage: LinearDice{Num: 8, Adder: 5, Mul: 1, Div: 5}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 8, Adder: 5, Mul: 1, Div: 15}, MonsterToHit: FixedToHit(AutoHit),
		Effects: Effects{Origin: OriginFireStorm, ExplosionCloud: CloudSpec{Kind: world.CloudFire, Duration: 8}},
	},
	OrbOfElectricity: {
		Name: "orb of electricity", Flavour: flavour.Electricity, Glyph: '*', Colour: tcell.ColorLightCyan,
		Explosion: true, ExSize: 1, PowerCap: 200, HitLoudness: 15,
		PlayerDamage: LinearDice{Num: 1, Adder: 15, Mul: 4, Div: 5}, PlayerToHit: LinearToHit{Adder: 40, Num: 0, Den: 1},
		MonsterDamage: LinearDice{Num: 3, Adder: 7, Mul: 1, Div: 9}, MonsterToHit: LinearToHit{Adder: 40, Num: 0, Den: 1},
	},
	MephiticCloud: {
		Name: "stinking cloud", Flavour: flavour.Mephitic, Glyph: '*', Colour: tcell.ColorGreen,
		Explosion: true, ExSize: 1, AimedAtSpot: true, PowerCap: 100,
		PlayerToHit: FixedToHit(AutoHit), MonsterToHit: FixedToHit(AutoHit),
		Effects: Effects{Origin: OriginMephitic, ExplosionCloud: CloudSpec{Kind: world.CloudMephitic, Duration: 6}},
	},
	SporeBurst: {
		Name: "burst of spores", Flavour: flavour.Spore, Glyph: '*', Colour: tcell.ColorOlive,
		Explosion: true, ExSize: 1, PowerCap: 100,
		PlayerDamage: LinearDice{Num: 2, Adder: 3, Mul: 1, Div: 10}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 2, Adder: 3, Mul: 1, Div: 20}, MonsterToHit: FixedToHit(AutoHit),
	},
	Glaciate: {
		Name: "great icy blast", Flavour: flavour.Ice, Glyph: '*', Colour: tcell.ColorWhite,
		Explosion: true, ExSize: 2, PowerCap: 200, HitLoudness: 10,
		PlayerDamage: LinearDice{Num: 7, Adder: 12, Mul: 1, Div: 3}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 7, Adder: 12, Mul: 1, Div: 10}, MonsterToHit: FixedToHit(AutoHit),
		Effects: Effects{Freezes: true, Origin: OriginGlaciate},
	},

	// --- Cloud carriers ---
	FreezingCloud: {
		Name: "freezing cloud", Flavour: flavour.Cold, Glyph: '*', Colour: tcell.ColorWhite,
		AimedAtSpot: true, AffectsNothing: true, PowerCap: 100,
		Effects: Effects{BigCloud: CloudSpec{Kind: world.CloudCold, Duration: 10, Size: 9}},
	},
	PoisonousCloud: {
		Name: "poisonous cloud", Flavour: flavour.Poison, Glyph: '*', Colour: tcell.ColorLightGreen,
		AimedAtSpot: true, AffectsNothing: true, PowerCap: 100,
		Effects: Effects{BigCloud: CloudSpec{Kind: world.CloudPoison, Duration: 10, Size: 9}},
	},
	PoisonBreath: {
		Name: "blast of poison", Flavour: flavour.Poison, Glyph: '#', Colour: tcell.ColorLightGreen,
		Pierce: true, PowerCap: 200,
		PlayerDamage: LinearDice{Num: 3, Adder: 2, Mul: 1, Div: 8}, PlayerToHit: LinearToHit{Adder: 7, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 2, Mul: 1, Div: 24}, MonsterToHit: LinearToHit{Adder: 14, Num: 1, Den: 25},
		Effects: Effects{TrailCloud: CloudSpec{Kind: world.CloudPoison, Duration: 4}},
	},

	// --- Terrain ---
	AcidWave: {
		Name: "wave of acid", Flavour: flavour.Acid, Glyph: '~', Colour: tcell.ColorYellow,
		AimedAtSpot: true, PowerCap: 100, HitLoudness: 4,
		PlayerDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 6}, PlayerToHit: LinearToHit{Adder: 12, Num: 1, Den: 20},
		MonsterDamage: LinearDice{Num: 3, Adder: 6, Mul: 1, Div: 15}, MonsterToHit: LinearToHit{Adder: 16, Num: 1, Den: 25},
		Effects: Effects{Origin: OriginAcidWave},
	},
	Sunlight: {
		Name: "sunlight", Flavour: flavour.Light, Glyph: '*', Colour: tcell.ColorLightYellow,
		AimedAtSpot: true, AffectsNothing: true, PowerCap: 100,
		Effects: Effects{Origin: OriginSunlight},
	},
	Dig: {
		Name: "digging", Flavour: flavour.Digging, Glyph: '#', Colour: tcell.ColorBrown,
		Pierce: true, PowerCap: 100,
		PlayerDamage: LinearDice{Num: 0, Adder: 4, Mul: 1, Div: 6}, PlayerToHit: FixedToHit(AutoHit),
		MonsterDamage: LinearDice{Num: 0, Adder: 4, Mul: 1, Div: 6}, MonsterToHit: FixedToHit(AutoHit),
	},

	// --- Enchantments ---
	Slow:            enchant("slow", flavour.Slow, tcell.ColorGreen, 100, LinearToHit{Num: 1, Den: 1}),
	Haste:           enchant("haste", flavour.Haste, tcell.ColorBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Heal:            enchant("healing", flavour.Healing, tcell.ColorGreen, 100, LinearToHit{Adder: 5, Num: 1, Den: 1}),
	Paralyse:        enchant("paralyse", flavour.Paralysis, tcell.ColorLightCyan, 100, LinearToHit{Num: 1, Den: 1}),
	Confuse:         enchant("confusion", flavour.Confusion, tcell.ColorPurple, 100, LinearToHit{Num: 1, Den: 1}),
	Invisibility:    enchant("invisibility", flavour.Invisibility, tcell.ColorGray, 100, LinearToHit{Num: 1, Den: 1}),
	TeleportOther:   enchant("teleport other", flavour.Teleport, tcell.ColorLightCyan, 100, LinearToHit{Num: 3, Den: 2}),
	Polymorph:       enchant("polymorph", flavour.Polymorph, tcell.ColorFuchsia, 200, LinearToHit{Num: 1, Den: 1}),
	Malmutate:       enchant("malmutation", flavour.Malmutate, tcell.ColorFuchsia, 100, LinearToHit{Num: 1, Den: 1}),
	Enslavement:     enchant("enslavement", flavour.Charm, tcell.ColorFuchsia, 100, LinearToHit{Num: 1, Den: 1}),
	Banishment:      enchant("banishment", flavour.Banish, tcell.ColorDarkRed, 100, LinearToHit{Num: 3, Den: 2}),
	Sleep:           enchant("sleep", flavour.Sleep, tcell.ColorPurple, 100, LinearToHit{Num: 1, Den: 1}),
	Hibernation:     enchant("hibernation", flavour.Hibernation, tcell.ColorLightCyan, 50, LinearToHit{Adder: 10, Num: 1, Den: 1}),
	Rage:            enchant("berserker rage", flavour.Berserk, tcell.ColorRed, 100, LinearToHit{Num: 1, Den: 1}),
	DispelUndead:    enchant("dispel undead", flavour.DispelUndead, tcell.ColorWhite, 100, LinearToHit{Num: 1, Den: 1}),
	Petrify:         enchant("petrify", flavour.Petrify, tcell.ColorGray, 100, LinearToHit{Num: 1, Den: 1}),
	SentinelMark:    enchant("sentinel's mark", flavour.SentinelMark, tcell.ColorYellow, 100, LinearToHit{Num: 1, Den: 1}),
	DimensionAnchor: enchant("dimension anchor", flavour.DimensionAnchor, tcell.ColorBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Vulnerability:   enchant("vulnerability", flavour.Vulnerability, tcell.ColorPurple, 100, LinearToHit{Num: 1, Den: 1}),
	Virulence:       enchant("virulence", flavour.Virulence, tcell.ColorLightGreen, 100, LinearToHit{Num: 1, Den: 1}),
	SapMagic:        enchant("sap magic", flavour.SapMagic, tcell.ColorPurple, 100, LinearToHit{Num: 1, Den: 1}),
	DrainMagic:      enchant("drain magic", flavour.DrainMagic, tcell.ColorPurple, 100, LinearToHit{Num: 1, Den: 1}),
	TukimasDance:    enchant("tukima's dance", flavour.TukimasDance, tcell.ColorLightBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Pain:            enchant("pain", flavour.Pain, tcell.ColorDarkGray, 100, LinearToHit{Num: 1, Den: 1}),
	Agony:           enchant("agony", flavour.Agony, tcell.ColorDarkGray, 100, LinearToHit{Num: 1, Den: 1}),
	Porkalator:      enchant("porkalator", flavour.Porkalator, tcell.ColorPink, 100, LinearToHit{Num: 1, Den: 1}),
	Innerflame:      enchant("inner flame", flavour.Innerflame, tcell.ColorRed, 100, LinearToHit{Num: 1, Den: 1}),
	SnakesToSticks:  enchant("snakes to sticks", flavour.SnakesToSticks, tcell.ColorBrown, 100, LinearToHit{Num: 1, Den: 1}),
	Degeneration:    enchant("cigotuvi's degeneration", flavour.Degeneration, tcell.ColorGreen, 100, LinearToHit{Num: 1, Den: 1}),
	Resistance:      enchant("resistance", flavour.Resistance, tcell.ColorLightBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Unravelling:     enchant("unravelling", flavour.Unravelling, tcell.ColorFuchsia, 100, LinearToHit{Num: 1, Den: 1}),
	Infestation:     enchant("infestation", flavour.Infestation, tcell.ColorGreen, 100, LinearToHit{Num: 1, Den: 1}),
	VileClutch:      enchant("vile clutch", flavour.VileClutch, tcell.ColorDarkGray, 100, LinearToHit{Num: 1, Den: 1}),
	Might:           enchant("might", flavour.Might, tcell.ColorRed, 100, LinearToHit{Num: 1, Den: 1}),
	Agility:         enchant("agility", flavour.Agility, tcell.ColorBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Ensnare:         enchant("ensnare", flavour.Ensnare, tcell.ColorWhite, 100, LinearToHit{Num: 1, Den: 1}),
	Corona:          enchant("corona", flavour.Corona, tcell.ColorLightBlue, 100, LinearToHit{Num: 1, Den: 1}),
	Fear:            enchant("fear", flavour.Fear, tcell.ColorYellow, 100, LinearToHit{Num: 1, Den: 1}),
}

func init() {
	registry[Infestation].Effects.Origin = OriginInfestation
	registry[Ensnare].Effects.Origin = OriginEnsnare
}
