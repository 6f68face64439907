package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/enemy-drift/component"
	"github.com/lixenwraith/enemy-drift/parameter"
)

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendHeadless = "headless"
)

var (
	ErrInvalidCanvas   = errors.New("canvas width and height must be positive")
	ErrInvalidCount    = errors.New("entity counts must be non-negative")
	ErrInvalidInterval = errors.New("frame_interval must be positive")
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrInvalidTicks    = errors.New("headless_ticks must be positive")
)

type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	World   WorldConfig   `toml:"world"`
	Loop    LoopConfig    `toml:"loop"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
}

type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type WorldConfig struct {
	Seed         uint64       `toml:"seed"` // 0 = seed from clock
	DebugOutline bool         `toml:"debug_outline"`
	Counts       CountsConfig `toml:"counts"`
}

type CountsConfig struct {
	Shake     int `toml:"shake"`
	LeftSine  int `toml:"left_sine"`
	Lissajous int `toml:"lissajous"`
	Wander    int `toml:"wander"`
}

type LoopConfig struct {
	FrameInterval time.Duration `toml:"frame_interval"`
	Backend       string        `toml:"backend"`
	HeadlessTicks int           `toml:"headless_ticks"`
	StatsEvery    uint64        `toml:"stats_every"` // Frames between debug stat lines, 0 disables
}

type AssetsConfig struct {
	Dir     string `toml:"dir"`
	Catalog string `toml:"catalog"` // Optional YAML catalog overriding the built-in one
}

type LoggingConfig struct {
	Level     string `toml:"level"`  // debug, info, warn, error, off
	Format    string `toml:"format"` // "json" or "console"
	Dir       string `toml:"dir"`
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// ByKind returns counts keyed by motion kind
func (c CountsConfig) ByKind() map[component.MotionKind]int {
	return map[component.MotionKind]int{
		component.MotionShake:     c.Shake,
		component.MotionLeftSine:  c.LeftSine,
		component.MotionLissajous: c.Lissajous,
		component.MotionWander:    c.Wander,
	}
}

// Load reads a TOML file over defaults; a missing file yields defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  parameter.CanvasWidth,
			Height: parameter.CanvasHeight,
		},
		World: WorldConfig{
			Counts: CountsConfig{
				Shake:     parameter.EnemyCountDefault,
				LeftSine:  parameter.EnemyCountDefault,
				Lissajous: parameter.EnemyCountDefault,
				Wander:    parameter.EnemyCountDefault,
			},
		},
		Loop: LoopConfig{
			FrameInterval: parameter.FrameUpdateInterval,
			Backend:       BackendTerminal,
			HeadlessTicks: parameter.HeadlessTicks,
			StatsEvery:    600,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "console",
			Dir:       "logs",
			File:      "enemy-drift.log",
			MaxSizeMB: 10,
		},
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return ErrInvalidCanvas
	}
	for kind, n := range c.World.Counts.ByKind() {
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidCount, kind, n)
		}
	}
	if c.Loop.FrameInterval <= 0 {
		return ErrInvalidInterval
	}
	switch c.Loop.Backend {
	case BackendTerminal, BackendWindow:
	case BackendHeadless:
		if c.Loop.HeadlessTicks <= 0 {
			return ErrInvalidTicks
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Loop.Backend)
	}
	return nil
}
