package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/milk9111/raycaster/ecs/component"
	"github.com/milk9111/raycaster/ecs/render"
	"gopkg.in/yaml.v3"
)

// LocalFile is looked up in the working directory when no path is given.
const LocalFile = "raycaster.yaml"

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	TickRate  int             `yaml:"tick_rate"`
	LogLevel  string          `yaml:"log_level"`
	Level     string          `yaml:"level"`
	Animation AnimationConfig `yaml:"animation"`
	Player    PlayerConfig    `yaml:"player"`
	Minimap   MinimapConfig   `yaml:"minimap"`

	// Source is the file the config was read from; empty for the embedded
	// default.
	Source string `yaml:"-"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type AnimationConfig struct {
	Dir        string   `yaml:"dir"`
	Prefix     string   `yaml:"prefix"`
	Extensions []string `yaml:"extensions"`
	BaseIndex  int      `yaml:"base_index"`
	MaxFrames  int      `yaml:"max_frames"`
	FPS        float64  `yaml:"fps"`
	FrameDelay int      `yaml:"frame_delay"`
	Strategy   string   `yaml:"strategy"`
	Scale      float64  `yaml:"scale"`
	Anchor     string   `yaml:"anchor"`
}

type PlayerConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	TurnSpeed        float64 `yaml:"turn_speed"`
	Radius           float64 `yaml:"radius"`
	FOV              float64 `yaml:"fov"` // degrees
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

type MinimapConfig struct {
	Enabled bool `yaml:"enabled"`
	Tile    int  `yaml:"tile"`
	Margin  int  `yaml:"margin"`
}

// Default returns the embedded configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return &cfg
}

// Load resolves the config: an explicit path must exist; otherwise LocalFile
// is used when present, else the embedded default. Files only need the keys
// they override.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(LocalFile); err == nil {
		return LoadFile(LocalFile)
	}
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path over the embedded default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes data over the embedded default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	case c.Animation.Dir == "":
		return fmt.Errorf("%w: animation.dir is empty", ErrInvalid)
	case c.Animation.FrameDelay < 0:
		return fmt.Errorf("%w: animation.frame_delay %d", ErrInvalid, c.Animation.FrameDelay)
	case c.Animation.FrameDelay == 0 && c.Animation.FPS <= 0:
		return fmt.Errorf("%w: animation.fps must be positive when frame_delay is 0", ErrInvalid)
	case c.Animation.Scale <= 0:
		return fmt.Errorf("%w: animation.scale %v", ErrInvalid, c.Animation.Scale)
	case c.Animation.BaseIndex < 0 || c.Animation.MaxFrames < 0:
		return fmt.Errorf("%w: animation.base_index and max_frames must not be negative", ErrInvalid)
	}
	if _, err := render.ParseStrategy(c.Animation.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := render.ParseAnchor(c.Animation.Anchor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// FrameDelay is the tick delay per animation frame.
func (c *Config) FrameDelay() int {
	if c.Animation.FrameDelay > 0 {
		return c.Animation.FrameDelay
	}
	return component.FrameDelayFor(float64(c.TickRate), c.Animation.FPS)
}

// LoadOptions maps the animation section onto the frame library options.
func (c *Config) LoadOptions() render.LoadOptions {
	return render.LoadOptions{
		Dir:        c.Animation.Dir,
		Prefix:     c.Animation.Prefix,
		Extensions: c.Animation.Extensions,
		BaseIndex:  c.Animation.BaseIndex,
		MaxFrames:  c.Animation.MaxFrames,
	}
}

// CompositorOptions returns the validated strategy and options. Validate must
// have passed.
func (c *Config) CompositorOptions() (render.Strategy, render.Options) {
	s, _ := render.ParseStrategy(c.Animation.Strategy)
	a, _ := render.ParseAnchor(c.Animation.Anchor)
	return s, render.Options{Anchor: a, Scale: c.Animation.Scale}
}

// FOVRadians converts the configured field of view.
func (c *Config) FOVRadians() float64 {
	fov := c.Player.FOV
	if fov <= 0 || fov >= 180 {
		fov = 66
	}
	return fov * math.Pi / 180
}
