package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
)

const (
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
	DefaultWindowTitle  = "Falling Sand"
	DefaultFPS          = 60
	DefaultRegionX      = 40
	DefaultRegionY      = 40
	DefaultRegionSize   = 1000
	DefaultDt           = 1.0 / 60.0
	DefaultDuration     = 10.0
	DefaultEmitRate     = 60.0
)

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Region   RegionConfig  `yaml:"region"`
	Emitter  EmitterConfig `yaml:"emitter"`
	FPS      int           `yaml:"fps"`
	Dt       float64       `yaml:"dt"`
	Duration float64       `yaml:"duration"`
}

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

type RegionConfig struct {
	X      int32 `yaml:"x"`
	Y      int32 `yaml:"y"`
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// EmitterConfig describes the particle source used by headless runs.
type EmitterConfig struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Rate float64 `yaml:"rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Region: RegionConfig{
			X:      DefaultRegionX,
			Y:      DefaultRegionY,
			Width:  DefaultRegionSize,
			Height: DefaultRegionSize,
		},
		Emitter: EmitterConfig{
			Kind: "sand",
			X:    DefaultRegionX + DefaultRegionSize/2,
			Y:    DefaultRegionY + 10,
			Rate: DefaultEmitRate,
		},
		FPS:      DefaultFPS,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Region.Width < 0 || c.Region.Height < 0 {
		return fmt.Errorf("region size must be non-negative, got %dx%d", c.Region.Width, c.Region.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if _, err := particle.ParseKind(c.Emitter.Kind); err != nil {
		return err
	}
	return nil
}

// Rect returns the play area as a geometry rect.
func (c *Config) Rect() geom.Rect {
	return geom.Rect{
		X:      c.Region.X,
		Y:      c.Region.Y,
		Width:  c.Region.Width,
		Height: c.Region.Height,
	}
}

// EmitterKind resolves the configured emitter kind.
func (c *Config) EmitterKind() (particle.Kind, error) {
	return particle.ParseKind(c.Emitter.Kind)
}
