package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIntervalMS   = 20
	DefaultPlotWidth    = 64
	DefaultPlotHeight   = 8
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

type Config struct {
	IntervalMS int          `yaml:"interval_ms"`
	Plot       PlotConfig   `yaml:"plot"`
	Window     WindowConfig `yaml:"window"`
}

// PlotConfig sizes the terminal charts, in character cells.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig sizes the native window, in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		IntervalMS: DefaultIntervalMS,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
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

// Interval returns the frame interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// GIFDelay returns the per-frame GIF delay in hundredths of a second,
// never below the format's minimum of 1.
func (c *Config) GIFDelay() int {
	d := c.IntervalMS / 10
	if d < 1 {
		d = 1
	}
	return d
}
