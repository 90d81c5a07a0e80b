// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemies   []EnemyConfig   `yaml:"enemies"`
	Mirrors   MirrorConfig    `yaml:"mirrors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds play-field dimensions in world units. The field is
// centered on the origin; PixelZoom maps world units to screen pixels.
type FieldConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	PixelZoom int `yaml:"pixel_zoom"`
}

// PhysicsConfig holds the fixed-tick parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// PlayerConfig holds the player ship parameters.
type PlayerConfig struct {
	BoxHalf      float64 `yaml:"box_half"`
	Damping      float64 `yaml:"damping"`
	MaxSpeed     float64 `yaml:"max_speed"`
	StartYOffset float64 `yaml:"start_y_offset"`
	FireCooldown float64 `yaml:"fire_cooldown"` // 0 = a bullet pair every tick fire is held
}

// BulletConfig holds bullet parameters.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	BoxHalf  float64 `yaml:"box_half"`
	MaxSpeed float64 `yaml:"max_speed"`
	Lifetime float64 `yaml:"lifetime"`
}

// EnemyConfig defines one enemy spawner: its timer interval and the
// movement profile stamped onto every enemy it creates.
type EnemyConfig struct {
	Name      string  `yaml:"name"`
	Interval  float64 `yaml:"interval"`
	VelocityY float64 `yaml:"velocity_y"`
	AccelY    float64 `yaml:"accel_y"`
	MaxSpeed  float64 `yaml:"max_speed"`
	BoxHalf   float64 `yaml:"box_half"`
	Lifetime  float64 `yaml:"lifetime"`
}

// MirrorConfig holds the shared parameters of the two mirror spawners.
type MirrorConfig struct {
	Interval  float64 `yaml:"interval"`
	EdgeInset float64 `yaml:"edge_inset"`
	HalfW     float64 `yaml:"half_w"`
	HalfH     float64 `yaml:"half_h"`
	RiseSpeed float64 `yaml:"rise_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Lifetime  float64 `yaml:"lifetime"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
	PerfWindow  int     `yaml:"perf_window"`
}

// DerivedConfig holds float32 mirrors of hot-path values.
type DerivedConfig struct {
	DT32        float32
	FieldW32    float32
	FieldH32    float32
	FieldHalfW  float32
	FieldHalfH  float32
	TicksPerSec float32
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.FieldW32 = float32(c.Field.Width)
	c.Derived.FieldH32 = float32(c.Field.Height)
	c.Derived.FieldHalfW = float32(c.Field.Width) / 2
	c.Derived.FieldHalfH = float32(c.Field.Height) / 2
	if c.Physics.DT > 0 {
		c.Derived.TicksPerSec = float32(1.0 / c.Physics.DT)
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
