package actor

// Resist indexes an actor's resistance levels
type Resist uint8

const (
	ResFire Resist = iota
	ResCold
	ResElec
	ResPoison
	ResNegative
	ResRot
	ResAcid
	ResDamnation
	ResPetrify
	ResSteam
	ResHoly // negative means vulnerable to holy damage
	ResCount
)

// Holiness classes
type Holiness uint8

const (
	Natural Holiness = 1 << iota
	Undead
	Demonic
	Holy
	Nonliving
	PlantLife
)

// Flag marks species behaviour the beam engine branches on
type Flag uint32

const (
	FlagFirewood Flag = 1 << iota
	FlagProjectile
	FlagBush
	FlagFireVortex
	FlagIceBlock
	FlagWaterElemental
	FlagShootThrough
	FlagPlant
	FlagSnake
	FlagStationary
	FlagNoPoly
	FlagTunneller
	FlagChaotic
	FlagNoExp
	FlagPorcine
	FlagSeeInvisible
)

// Species is the static template a creature is built from
type Species struct {
	Name     string
	Glyph    rune
	HD       int
	HP       int
	AC       int
	EV       int
	SH       int
	MR       int
	Res      [ResCount]int
	Holiness Holiness
	Flags    Flag
}

// Has reports whether the species carries flag f
func (s *Species) Has(f Flag) bool {
	return s.Flags&f != 0
}

func res(pairs ...int) [ResCount]int {
	var r [ResCount]int
	for i := 0; i+1 < len(pairs); i += 2 {
		r[pairs[i]] = pairs[i+1]
	}
	return r
}

// Bestiary lists the species the sandbox and tests spawn from
var Bestiary = map[string]*Species{
	"human":              {Name: "human", Glyph: '@', HD: 10, HP: 60, AC: 4, EV: 10, MR: 40, Holiness: Natural},
	"orc":                {Name: "orc", Glyph: 'o', HD: 1, HP: 20, AC: 0, EV: 10, MR: 0, Holiness: Natural},
	"orc wizard":         {Name: "orc wizard", Glyph: 'o', HD: 3, HP: 24, AC: 1, EV: 12, MR: 20, Holiness: Natural},
	"goblin":             {Name: "goblin", Glyph: 'g', HD: 1, HP: 8, AC: 0, EV: 10, MR: 0, Holiness: Natural},
	"ogre":               {Name: "ogre", Glyph: 'O', HD: 5, HP: 60, AC: 1, EV: 6, MR: 20, Holiness: Natural},
	"troll":              {Name: "troll", Glyph: 'T', HD: 7, HP: 90, AC: 3, EV: 10, MR: 40, Holiness: Natural},
	"deep elf knight":    {Name: "deep elf knight", Glyph: 'e', HD: 8, HP: 50, AC: 4, EV: 15, SH: 10, MR: 60, Holiness: Natural},
	"skeleton":           {Name: "skeleton", Glyph: 'z', HD: 3, HP: 25, AC: 2, EV: 5, MR: 10, Res: res(int(ResPoison), 3, int(ResNegative), 3, int(ResCold), 1, int(ResHoly), -1), Holiness: Undead, Flags: FlagNoExp},
	"ghoul":              {Name: "ghoul", Glyph: 'z', HD: 7, HP: 60, AC: 4, EV: 10, MR: 50, Res: res(int(ResPoison), 3, int(ResNegative), 3, int(ResCold), 2, int(ResRot), 3, int(ResHoly), -1), Holiness: Undead},
	"imp":                {Name: "imp", Glyph: '5', HD: 3, HP: 18, AC: 3, EV: 14, MR: 30, Res: res(int(ResFire), 1, int(ResPoison), 3, int(ResHoly), -1), Holiness: Demonic},
	"angel":              {Name: "angel", Glyph: 'A', HD: 12, HP: 120, AC: 12, EV: 10, MR: 120, Res: res(int(ResNegative), 3, int(ResPoison), 3, int(ResHoly), 3), Holiness: Holy, Flags: FlagSeeInvisible},
	"fire elemental":     {Name: "fire elemental", Glyph: 'E', HD: 6, HP: 40, AC: 4, EV: 12, MR: 100, Res: res(int(ResFire), 3, int(ResPoison), 3, int(ResCold), -1), Holiness: Nonliving},
	"ice beast":          {Name: "ice beast", Glyph: 'Y', HD: 5, HP: 40, AC: 5, EV: 10, MR: 20, Res: res(int(ResCold), 3, int(ResFire), -1), Holiness: Natural},
	"water elemental":    {Name: "water elemental", Glyph: 'E', HD: 6, HP: 40, AC: 0, EV: 7, MR: 100, Res: res(int(ResPoison), 3, int(ResFire), 2), Holiness: Nonliving, Flags: FlagWaterElemental},
	"fire vortex":        {Name: "fire vortex", Glyph: 'v', HD: 3, HP: 15, AC: 0, EV: 30, MR: 100, Res: res(int(ResFire), 3, int(ResCold), -1, int(ResPoison), 3, int(ResElec), 1), Holiness: Nonliving, Flags: FlagFireVortex | FlagNoExp},
	"chaos vortex":       {Name: "chaos vortex", Glyph: 'v', HD: 3, HP: 15, AC: 0, EV: 30, MR: 100, Res: res(int(ResPoison), 3), Holiness: Nonliving, Flags: FlagChaotic | FlagNoExp},
	"block of ice":       {Name: "block of ice", Glyph: '8', HD: 1, HP: 30, AC: 15, EV: 0, MR: 1000, Res: res(int(ResCold), 3, int(ResPoison), 3, int(ResElec), 3), Holiness: Nonliving, Flags: FlagIceBlock | FlagStationary | FlagNoExp},
	"orb of destruction": {Name: "orb of destruction", Glyph: '*', HD: 1, HP: 1000, AC: 0, EV: 0, MR: 1000, Holiness: Nonliving, Flags: FlagProjectile | FlagNoExp},
	"battlesphere":       {Name: "battlesphere", Glyph: '*', HD: 5, HP: 30, AC: 4, EV: 20, MR: 1000, Holiness: Nonliving, Flags: FlagProjectile | FlagNoExp},
	"bush":               {Name: "bush", Glyph: '%', HD: 5, HP: 40, AC: 10, EV: 0, MR: 1000, Res: res(int(ResPoison), 3), Holiness: PlantLife, Flags: FlagFirewood | FlagBush | FlagPlant | FlagStationary | FlagNoExp},
	"briar patch":        {Name: "briar patch", Glyph: '%', HD: 5, HP: 40, AC: 10, EV: 0, MR: 1000, Res: res(int(ResPoison), 3), Holiness: PlantLife, Flags: FlagFirewood | FlagBush | FlagPlant | FlagStationary | FlagNoExp},
	"toadstool":          {Name: "toadstool", Glyph: ',', HD: 1, HP: 5, AC: 1, EV: 0, MR: 1000, Res: res(int(ResPoison), 3), Holiness: PlantLife, Flags: FlagFirewood | FlagPlant | FlagStationary | FlagNoExp},
	"fungus":             {Name: "fungus", Glyph: 'f', HD: 2, HP: 10, AC: 1, EV: 0, MR: 1000, Res: res(int(ResPoison), 3), Holiness: PlantLife, Flags: FlagPlant | FlagStationary | FlagNoExp},
	"oklob plant":        {Name: "oklob plant", Glyph: 'P', HD: 10, HP: 60, AC: 10, EV: 0, MR: 80, Res: res(int(ResPoison), 3, int(ResAcid), 3), Holiness: PlantLife, Flags: FlagPlant | FlagStationary},
	"adder":              {Name: "adder", Glyph: 'S', HD: 2, HP: 12, AC: 1, EV: 15, MR: 10, Res: res(int(ResPoison), 1), Holiness: Natural, Flags: FlagSnake},
	"ball python":        {Name: "ball python", Glyph: 'S', HD: 3, HP: 18, AC: 0, EV: 12, MR: 10, Holiness: Natural, Flags: FlagSnake},
	"demonic guardian":   {Name: "demonic guardian", Glyph: '3', HD: 8, HP: 60, AC: 6, EV: 10, MR: 60, Res: res(int(ResFire), 1, int(ResPoison), 3, int(ResHoly), -1), Holiness: Demonic, Flags: FlagShootThrough},
	"ancestor":           {Name: "ancestor", Glyph: '@', HD: 8, HP: 60, AC: 5, EV: 10, MR: 60, Res: res(int(ResNegative), 3, int(ResPoison), 3), Holiness: Nonliving, Flags: FlagShootThrough | FlagNoPoly},
	"rock worm":          {Name: "rock worm", Glyph: 'w', HD: 5, HP: 30, AC: 3, EV: 4, MR: 20, Holiness: Natural, Flags: FlagTunneller},
	"shapeshifter":       {Name: "shapeshifter", Glyph: '?', HD: 5, HP: 25, AC: 0, EV: 10, MR: 40, Holiness: Natural, Flags: FlagChaotic},
	"hog":                {Name: "hog", Glyph: 'h', HD: 4, HP: 25, AC: 2, EV: 9, MR: 0, Holiness: Natural, Flags: FlagPorcine},
	"stick":              {Name: "stick", Glyph: '(', HD: 1, HP: 1, AC: 0, EV: 0, MR: 1000, Holiness: Nonliving, Flags: FlagNoExp | FlagStationary},
	"degenerate":         {Name: "degenerate", Glyph: 'D', HD: 1, HP: 8, AC: 0, EV: 5, MR: 0, Holiness: Natural, Flags: FlagNoPoly},
}

// Lookup returns the named species, panicking on a typo
func Lookup(name string) *Species {
	sp, ok := Bestiary[name]
	if !ok {
		panic("actor: unknown species " + name)
	}
	return sp
}
