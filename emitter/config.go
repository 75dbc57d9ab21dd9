package emitter

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/particle-emitter/parameter"
)

// Preset names
const (
	PresetFog  = "fog"
	PresetFire = "fire"
)

// Range is a uniform draw interval; Min may exceed Max
type Range struct {
	Min float64
	Max float64
}

// Config is the emission parameter bundle of an emitter
type Config struct {
	ParticleLimit     int
	ParticlesPerSpawn int
	SpawnFrequency    float64 // seconds between spawn ticks

	InitAlpha Range
	FadeStart Range
	Direction Range // degrees
	Magnitude Range
	Lifetime  Range
}

// Validate rejects configurations that would stall the spawn loop or corrupt the counter
func (c Config) Validate() error {
	if !(c.SpawnFrequency > 0) || math.IsInf(c.SpawnFrequency, 0) {
		return fmt.Errorf("%w: spawn frequency %v must be positive and finite", ErrInvalidConfig, c.SpawnFrequency)
	}
	if c.ParticleLimit < 0 {
		return fmt.Errorf("%w: particle limit %d is negative", ErrInvalidConfig, c.ParticleLimit)
	}
	if c.ParticlesPerSpawn < 0 {
		return fmt.Errorf("%w: particles per spawn %d is negative", ErrInvalidConfig, c.ParticlesPerSpawn)
	}
	return nil
}

// sharedRanges are identical for both presets
func sharedRanges(c Config) Config {
	c.InitAlpha = Range{parameter.ParticleInitAlphaMin, parameter.ParticleInitAlphaMax}
	c.FadeStart = Range{parameter.ParticleFadeStartMin, parameter.ParticleFadeStartMax}
	c.Direction = Range{parameter.ParticleDirectionMin, parameter.ParticleDirectionMax}
	c.Magnitude = Range{parameter.ParticleMagnitudeMin, parameter.ParticleMagnitudeMax}
	c.Lifetime = Range{parameter.ParticleLifetimeMin, parameter.ParticleLifetimeMax}
	return c
}

// FogPreset returns the fog bundle
func FogPreset() Config {
	return sharedRanges(Config{
		ParticleLimit:     parameter.FogParticleLimit,
		ParticlesPerSpawn: parameter.FogParticlesPerSpawn,
		SpawnFrequency:    parameter.FogSpawnFrequency,
	})
}

// FirePreset returns the fire bundle
func FirePreset() Config {
	return sharedRanges(Config{
		ParticleLimit:     parameter.FireParticleLimit,
		ParticlesPerSpawn: parameter.FireParticlesPerSpawn,
		SpawnFrequency:    parameter.FireSpawnFrequency,
	})
}

// LookupPreset returns the bundle for name, case-insensitive
func LookupPreset(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetFog:
		return FogPreset(), nil
	case PresetFire:
		return FirePreset(), nil
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ResolvePreset looks up name; when strict is false an unknown name falls back to fog
// The error is still returned in the lenient case so callers can log it
func ResolvePreset(name string, strict bool) (Config, error) {
	cfg, err := LookupPreset(name)
	if err == nil {
		return cfg, nil
	}
	if strict {
		return Config{}, err
	}
	return FogPreset(), err
}

// PresetNames lists known presets in display order
func PresetNames() []string {
	return []string{PresetFog, PresetFire}
}
