package zaps

import "github.com/lixenwraith/beamcrawl/world"

// Origin tags zaps whose endpoint or explosion has a special rule
type Origin uint8

const (
	OriginNone Origin = iota
	OriginFireStorm
	OriginMephitic
	OriginPrimalWave
	OriginEnsnare
	OriginBlinkbolt
	OriginGlaciate
	OriginInfestation
	OriginAcidWave
	OriginSunlight
)

var originNames = [...]string{
	OriginNone:        "none",
	OriginFireStorm:   "fire storm",
	OriginMephitic:    "mephitic cloud",
	OriginPrimalWave:  "primal wave",
	OriginEnsnare:     "ensnare",
	OriginBlinkbolt:   "blinkbolt",
	OriginGlaciate:    "glaciate",
	OriginInfestation: "infestation",
	OriginAcidWave:    "acid wave",
	OriginSunlight:    "sunlight",
}

// String returns the origin name
func (o Origin) String() string {
	if int(o) >= len(originNames) {
		return "unknown"
	}
	return originNames[o]
}

// CloudSpec describes a cloud a bolt leaves behind
type CloudSpec struct {
	Kind     world.CloudKind `json:"kind"`
	Duration int             `json:"duration"`
	// Chance is the per-cell percentage for explosion clouds; 0 means always
	Chance int `json:"chance,omitempty"`
	// Size is the number of cells a big cloud spreads over
	Size int `json:"size,omitempty"`
}

// Active reports whether the cloud settings place anything
func (c CloudSpec) Active() bool {
	return c.Kind != world.CloudNone
}

// Effects are the chained effects a zap carries besides its flavour
type Effects struct {
	// TrailCloud is left on every cell the bolt crosses
	TrailCloud CloudSpec `json:"trail_cloud"`
	// BigCloud is placed around the endpoint
	BigCloud CloudSpec `json:"big_cloud"`
	// ExplosionCloud is rolled on every cell an explosion affects
	ExplosionCloud CloudSpec `json:"explosion_cloud"`
	// Knockback pushes struck actors this many cells away from the source
	Knockback int  `json:"knockback,omitempty"`
	Pull      bool `json:"pull,omitempty"`
	// Freezes holds struck actors in place
	Freezes bool `json:"freezes,omitempty"`
	// Rot eats this much maximum hp from struck living actors
	Rot int `json:"rot,omitempty"`
	// Barbs lodge in struck actors
	Barbs bool `json:"barbs,omitempty"`
	// Pie splatters struck actors with a random pie
	Pie    bool   `json:"pie,omitempty"`
	Origin Origin `json:"origin"`
}
