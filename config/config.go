// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/tiltsnake/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Snake     SnakeConfig     `yaml:"snake"`
	Trail     TrailConfig     `yaml:"trail"`
	Food      SpawnConfig     `yaml:"food"`
	Hazards   SpawnConfig     `yaml:"hazards"`
	Rules     RulesConfig     `yaml:"rules"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	Resizable bool `yaml:"resizable"`
}

// WorldConfig holds arena dimensions.
// The viewport extends the shorter axis so the arena is never smaller than Size.
type WorldConfig struct {
	Size float64 `yaml:"size"`
}

// SnakeConfig holds movement tuning.
type SnakeConfig struct {
	Drag            float64 `yaml:"drag"`             // Linear drag per second
	RadiusFactor    float64 `yaml:"radius_factor"`    // Body radius / short arena side
	Acceleration    float64 `yaml:"acceleration"`     // Velocity gained per second of input
	KeyNudge        float64 `yaml:"key_nudge"`        // Direct position shift per second per held key
	TiltSensitivity float64 `yaml:"tilt_sensitivity"` // Analog axis multiplier
	MaxSpeed        float64 `yaml:"max_speed"`
}

// TrailConfig holds body sampling thresholds.
type TrailConfig struct {
	SampleDist    float64 `yaml:"sample_dist"`
	SampleTime    float64 `yaml:"sample_time"` // Seconds between growth ticks
	EpsilonFactor float64 `yaml:"epsilon_factor"`
}

// SpawnConfig holds a spawner's population policy.
type SpawnConfig struct {
	SpawnRate       float64 `yaml:"spawn_rate"`        // Spawn chance per second on an empty field
	SoftTarget      float64 `yaml:"soft_target"`       // Population where spawning stops
	DespawnRate     float64 `yaml:"despawn_rate"`      // Despawn chance per second
	DespawnPerPoint float64 `yaml:"despawn_per_point"` // Extra despawn chance per second per point
	Radius          float64 `yaml:"radius"`
}

// RulesConfig holds game rule switches.
type RulesConfig struct {
	HazardPolicy string `yaml:"hazard_policy"` // "reset" or "duplicate_head"
	ShrinkOnEat  bool   `yaml:"shrink_on_eat"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of sim time per summary window
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in beep's log2 units, 0 = unchanged
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	HazardPolicy systems.HazardPolicy
	FrameDelta   float64 // 1/TargetFPS, used as the fixed step in headless runs
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the config and fills in derived values.
func (c *Config) computeDerived() error {
	policy, err := systems.ParseHazardPolicy(c.Rules.HazardPolicy)
	if err != nil {
		return fmt.Errorf("rules.hazard_policy: %w", err)
	}
	c.Derived.HazardPolicy = policy

	if c.World.Size <= 0 {
		return fmt.Errorf("world.size must be positive, got %v", c.World.Size)
	}
	if c.Trail.SampleDist <= 0 {
		return fmt.Errorf("trail.sample_dist must be positive, got %v", c.Trail.SampleDist)
	}

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameDelta = 1.0 / float64(fps)
	return nil
}

// Controller converts the config into the core controller settings.
func (c *Config) Controller() systems.ControllerConfig {
	return systems.ControllerConfig{
		Motion: systems.MotionConfig{
			Drag:            c.Snake.Drag,
			RadiusFactor:    c.Snake.RadiusFactor,
			Acceleration:    c.Snake.Acceleration,
			KeyNudge:        c.Snake.KeyNudge,
			TiltSensitivity: c.Snake.TiltSensitivity,
			MaxSpeed:        c.Snake.MaxSpeed,
		},
		Trail: systems.TrailConfig{
			SampleDist:    c.Trail.SampleDist,
			SampleTime:    c.Trail.SampleTime,
			EpsilonFactor: c.Trail.EpsilonFactor,
		},
		Food:        c.Food.policy(),
		Hazards:     c.Hazards.policy(),
		Hazard:      c.Derived.HazardPolicy,
		ShrinkOnEat: c.Rules.ShrinkOnEat,
	}
}

func (s SpawnConfig) policy() systems.SpawnPolicy {
	return systems.SpawnPolicy{
		SpawnRate:       s.SpawnRate,
		SoftTarget:      s.SoftTarget,
		DespawnRate:     s.DespawnRate,
		DespawnPerPoint: s.DespawnPerPoint,
		Radius:          s.Radius,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
