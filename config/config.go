package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/parameter"
)

type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Simulation SimulationConfig `toml:"simulation"`
	Assets     AssetsConfig     `toml:"assets"`
	Render     RenderConfig     `toml:"render"`
	Audio      AudioConfig      `toml:"audio"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // "stderr", "stdout" or a file path
}

type SimulationConfig struct {
	TickRate      time.Duration `toml:"tick_rate"`
	MaxSpawnTicks int           `toml:"max_spawn_ticks"` // 0 disables the catch-up guard
	FadeMode      string        `toml:"fade_mode"`       // "clamped" or "compat"
	FadeEpsilon   float64       `toml:"fade_epsilon"`
	Seed          uint64        `toml:"seed"` // 0 = time seeded
	StrictPresets bool          `toml:"strict_presets"`
}

type AssetsConfig struct {
	TextureManifest string `toml:"texture_manifest"`
	SceneRoot       string `toml:"scene_root"`
	Scene           string `toml:"scene"`
}

type RenderConfig struct {
	UnitsPerCell float64 `toml:"units_per_cell"`
	CullMargin   float64 `toml:"cull_margin"`
}

type AudioConfig struct {
	Enabled  bool          `toml:"enabled"`
	Cooldown time.Duration `toml:"cooldown"`
}

// Load reads a TOML file over Default and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Simulation: SimulationConfig{
			TickRate:      parameter.TickRate,
			MaxSpawnTicks: parameter.MaxSpawnTicks,
			FadeMode:      emitter.FadeClamped.String(),
			FadeEpsilon:   parameter.FadeEpsilon,
		},
		Assets: AssetsConfig{
			TextureManifest: "assets/textures.yaml",
			SceneRoot:       "assets/scenes",
			Scene:           "campfire",
		},
		Render: RenderConfig{
			UnitsPerCell: parameter.UnitsPerCell,
			CullMargin:   parameter.CullMargin,
		},
		Audio: AudioConfig{
			Enabled:  false,
			Cooldown: parameter.CueCooldown,
		},
	}
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %v", c.Simulation.TickRate))
	}
	if c.Simulation.MaxSpawnTicks < 0 {
		errs = append(errs, fmt.Errorf("simulation.max_spawn_ticks must be >= 0, got %d", c.Simulation.MaxSpawnTicks))
	}
	if _, err := emitter.ParseFadeMode(c.Simulation.FadeMode); err != nil {
		errs = append(errs, fmt.Errorf("simulation.fade_mode: %w", err))
	}
	if c.Simulation.FadeEpsilon < 0 {
		errs = append(errs, fmt.Errorf("simulation.fade_epsilon must be >= 0, got %g", c.Simulation.FadeEpsilon))
	}
	if c.Render.UnitsPerCell <= 0 {
		errs = append(errs, fmt.Errorf("render.units_per_cell must be positive, got %g", c.Render.UnitsPerCell))
	}
	if c.Render.CullMargin < 0 {
		errs = append(errs, fmt.Errorf("render.cull_margin must be >= 0, got %g", c.Render.CullMargin))
	}
	if c.Audio.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("audio.cooldown must be >= 0, got %v", c.Audio.Cooldown))
	}
	return errors.Join(errs...)
}

// Policy converts the simulation section to an emitter policy
// Call after Validate; an invalid fade mode falls back to clamped
func (c *Config) Policy() emitter.Policy {
	p := emitter.DefaultPolicy()
	p.MaxSpawnTicks = c.Simulation.MaxSpawnTicks
	p.FadeEpsilon = c.Simulation.FadeEpsilon
	if mode, err := emitter.ParseFadeMode(c.Simulation.FadeMode); err == nil {
		p.Fade = mode
	}
	return p
}
