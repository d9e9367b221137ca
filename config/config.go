package config

import "github.com/lixenwraith/orb-arena/parameter"

// Config is the on-disk TOML configuration. Zero values are replaced
// by Normalize, so a partial file only overrides what it names.
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Zone    ZoneConfig    `toml:"zone"`
	Bodies  BodiesConfig  `toml:"bodies"`
	Spawner SpawnerConfig `toml:"spawner"`
	Audio   AudioConfig   `toml:"audio"`
	Engine  EngineConfig  `toml:"engine"`
}

// ArenaConfig sizes the simulation area in px.
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// ZoneConfig places the capacity zone. With Explicit false the zone
// tracks the arena dimensions and the rectangle fields are ignored.
type ZoneConfig struct {
	Explicit bool    `toml:"explicit"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Capacity int     `toml:"capacity"`
}

// BodiesConfig controls the initial population.
type BodiesConfig struct {
	Initial int `toml:"initial"`
}

// SpawnerConfig drives the periodic background spawner.
type SpawnerConfig struct {
	Enabled       bool `toml:"enabled"`
	MinCount      int  `toml:"min_count"`
	MaxCount      int  `toml:"max_count"`
	MinIntervalMs int  `toml:"min_interval_ms"`
	MaxIntervalMs int  `toml:"max_interval_ms"`
	MinRadius     int  `toml:"min_radius"`
	MaxRadius     int  `toml:"max_radius"`
}

// AudioConfig controls effect playback.
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// EngineConfig selects the stepping strategy.
type EngineConfig struct {
	Parallel bool `toml:"parallel"`
	Workers  int  `toml:"workers"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.DefaultArenaWidth,
			Height: parameter.DefaultArenaHeight,
		},
		Zone: ZoneConfig{
			Capacity: parameter.ZoneDefaultCapacity,
		},
		Bodies: BodiesConfig{
			Initial: 10,
		},
		Spawner: SpawnerConfig{
			MinCount:      1,
			MaxCount:      3,
			MinIntervalMs: 2000,
			MaxIntervalMs: 5000,
			MinRadius:     parameter.BodyMinRadius,
			MaxRadius:     parameter.BodyMaxRadius,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.DefaultMasterVolume,
		},
		Engine: EngineConfig{},
	}
}

// Normalize clamps every field into its valid range in place and
// returns the config for chaining. Load always normalizes, so the
// rest of the program never sees out-of-range values.
func (c *Config) Normalize() *Config {
	if c.Arena.Width < parameter.MinArenaWidth {
		c.Arena.Width = parameter.MinArenaWidth
	}
	if c.Arena.Height < parameter.MinArenaHeight {
		c.Arena.Height = parameter.MinArenaHeight
	}

	if c.Zone.Capacity < parameter.ZoneMinCapacity {
		c.Zone.Capacity = parameter.ZoneMinCapacity
	}
	if c.Zone.Explicit {
		if c.Zone.Width < parameter.ZoneMinSize {
			c.Zone.Width = parameter.ZoneMinSize
		}
		if c.Zone.Height < parameter.ZoneMinSize {
			c.Zone.Height = parameter.ZoneMinSize
		}
	}

	if c.Bodies.Initial < 0 {
		c.Bodies.Initial = 0
	}

	if c.Spawner.MinCount < 1 {
		c.Spawner.MinCount = 1
	}
	if c.Spawner.MaxCount < c.Spawner.MinCount {
		c.Spawner.MaxCount = c.Spawner.MinCount
	}
	if c.Spawner.MinIntervalMs < 100 {
		c.Spawner.MinIntervalMs = 100
	}
	if c.Spawner.MaxIntervalMs < c.Spawner.MinIntervalMs {
		c.Spawner.MaxIntervalMs = c.Spawner.MinIntervalMs
	}
	if c.Spawner.MinRadius < 1 {
		c.Spawner.MinRadius = 1
	}
	if c.Spawner.MaxRadius < c.Spawner.MinRadius {
		c.Spawner.MaxRadius = c.Spawner.MinRadius
	}

	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}

	if c.Engine.Workers < 0 {
		c.Engine.Workers = 0
	}

	return c
}
