// Package config loads engine tunables from TOML
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
)

const (
	// DefaultConfigDir is the directory searched before the embedded defaults
	DefaultConfigDir = "config"
	// DefaultConfigFile is the file name inside DefaultConfigDir
	DefaultConfigFile = "beam.toml"
	// DefaultConfigPath joins the two
	DefaultConfigPath = DefaultConfigDir + "/" + DefaultConfigFile

	// HardMaxExplosionRadius is the largest radius any explosion may reach
	HardMaxExplosionRadius = 9
)

//go:embed default.toml
var embeddedDefault string

// Config is the full engine configuration
type Config struct {
	Animation    AnimationConfig        `toml:"animation"`
	Beam         BeamConfig             `toml:"beam"`
	Chaos        WeightTable            `toml:"chaos"`
	ChaosEnchant WeightTable            `toml:"chaos_enchant"`
	Rewriters    map[string]WeightTable `toml:"rewriters"`
	Log          LogConfig              `toml:"log"`
}

// AnimationConfig controls bolt drawing
type AnimationConfig struct {
	Animate bool `toml:"animate"`
	DelayMS int  `toml:"delay_ms"`
}

// BeamConfig holds the numeric rules of bolt travel and effects
type BeamConfig struct {
	HitCap             int `toml:"hit_cap"`
	BounceRangeCost    int `toml:"bounce_range_cost"`
	MaxExplosionRadius int `toml:"max_explosion_radius"`
	CloudToHitPenalty  int `toml:"cloud_to_hit_penalty"`
	TunnelStoneCost    int `toml:"tunnel_stone_cost"`
	TunnelOtherCost    int `toml:"tunnel_other_cost"`
	BaselineDelay      int `toml:"baseline_delay"`
	EnchDurationStep   int `toml:"ench_duration_step"`
	MassEnchantCap     int `toml:"mass_enchant_cap"`
	OmnireflectBonus   int `toml:"omnireflect_bonus"`
	// FungusChance is the percent chance a spore explosion grows a fungus on an empty cell
	FungusChance int `toml:"fungus_chance"`
}

// LogConfig selects the logger level
type LogConfig struct {
	Level string `toml:"level"`
}

// WeightTable maps flavour names to relative weights
type WeightTable map[string]int

// Default returns the embedded configuration
// Panics if the embedded file is malformed, which only a broken build can cause
func Default() *Config {
	cfg, err := Parse([]byte(embeddedDefault))
	if err != nil {
		panic(fmt.Sprintf("embedded config invalid: %v", err))
	}
	return cfg
}

// Parse decodes and validates TOML data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadAuto loads config with priority: customPath > DefaultConfigPath > embedded
func LoadAuto(customPath string) (*Config, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		return Load(customPath)
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		return Load(DefaultConfigPath)
	}

	// Priority 3: Embedded fallback
	return Default(), nil
}

// Validate checks ranges and table contents
func (c *Config) Validate() error {
	b := c.Beam
	if b.HitCap < 1 {
		return fmt.Errorf("beam.hit_cap must be at least 1, got %d", b.HitCap)
	}
	if b.MaxExplosionRadius < 1 || b.MaxExplosionRadius > HardMaxExplosionRadius {
		return fmt.Errorf("beam.max_explosion_radius must be in 1..%d, got %d", HardMaxExplosionRadius, b.MaxExplosionRadius)
	}
	if b.BounceRangeCost < 0 || b.CloudToHitPenalty < 0 {
		return fmt.Errorf("beam costs must be non-negative")
	}
	if b.TunnelStoneCost <= 0 || b.TunnelOtherCost <= 0 {
		return fmt.Errorf("beam tunnel costs must be positive")
	}
	if b.FungusChance < 0 || b.FungusChance > 100 {
		return fmt.Errorf("beam.fungus_chance must be in 0..100, got %d", b.FungusChance)
	}
	if b.BaselineDelay <= 0 || b.EnchDurationStep <= 0 || b.MassEnchantCap <= 0 {
		return fmt.Errorf("beam duration parameters must be positive")
	}
	if c.Animation.DelayMS < 0 {
		return fmt.Errorf("animation.delay_ms must be non-negative, got %d", c.Animation.DelayMS)
	}
	if _, err := c.FlavourTables(); err != nil {
		return err
	}
	return nil
}

// FlavourTables are the compiled sub-flavour weight tables
type FlavourTables struct {
	Chaos        []rng.Weighted[flavour.Flavour]
	ChaosEnchant []rng.Weighted[flavour.Flavour]
	Rewriters    map[flavour.Flavour][]rng.Weighted[flavour.Flavour]
}

var rewriterKeys = map[string]flavour.Flavour{
	"random":      flavour.Random,
	"paradoxical": flavour.Paradoxical,
	"crystal":     flavour.CrystalShards,
	"eldritch":    flavour.Eldritch,
	"chaotic":     flavour.Chaotic,
}

// FlavourTables compiles the name-keyed tables into ordered weighted choices
func (c *Config) FlavourTables() (*FlavourTables, error) {
	chaos, err := c.Chaos.compile("chaos")
	if err != nil {
		return nil, err
	}
	enchant, err := c.ChaosEnchant.compile("chaos_enchant")
	if err != nil {
		return nil, err
	}
	ft := &FlavourTables{
		Chaos:        chaos,
		ChaosEnchant: enchant,
		Rewriters:    make(map[flavour.Flavour][]rng.Weighted[flavour.Flavour], len(rewriterKeys)),
	}
	for name, f := range rewriterKeys {
		table, ok := c.Rewriters[name]
		if !ok {
			return nil, fmt.Errorf("missing rewriters.%s table", name)
		}
		compiled, err := table.compile("rewriters." + name)
		if err != nil {
			return nil, err
		}
		ft.Rewriters[f] = compiled
	}
	for name := range c.Rewriters {
		if _, ok := rewriterKeys[name]; !ok {
			return nil, fmt.Errorf("unknown rewriter table %q", name)
		}
	}
	return ft, nil
}

func (t WeightTable) compile(section string) ([]rng.Weighted[flavour.Flavour], error) {
	out := make([]rng.Weighted[flavour.Flavour], 0, len(t))
	total := 0
	for name, w := range t {
		f, err := flavour.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", section, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("%s: negative weight for %s", section, name)
		}
		total += w
		out = append(out, rng.Weighted[flavour.Flavour]{Value: f, Weight: w})
	}
	if total == 0 {
		return nil, fmt.Errorf("%s: table has no positive weights", section)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
