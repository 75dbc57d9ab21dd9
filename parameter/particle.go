package parameter

import (
	"time"
)

// Fog preset
const (
	// FogParticleLimit caps live fog particles per emitter
	FogParticleLimit = 100
	// FogParticlesPerSpawn is the fog batch size
	FogParticlesPerSpawn = 10
	// FogSpawnFrequency is seconds between fog batches
	FogSpawnFrequency = 1.0
)

// Fire preset
const (
	// FireParticleLimit caps live fire particles per emitter
	FireParticleLimit = 100
	// FireParticlesPerSpawn is the fire batch size
	FireParticlesPerSpawn = 25
	// FireSpawnFrequency is seconds between fire batches
	FireSpawnFrequency = 0.05
)

// Ranges shared by both presets
const (
	ParticleInitAlphaMin = 0.5
	ParticleInitAlphaMax = 0.5

	ParticleFadeStartMin = 0.0
	ParticleFadeStartMax = 0.0

	// ParticleDirectionMin/Max in degrees
	ParticleDirectionMin = 0.0
	ParticleDirectionMax = 360.0

	// ParticleMagnitudeMin/Max are intentionally swapped, the draw still lands between them
	ParticleMagnitudeMin = 200.0
	ParticleMagnitudeMax = 50.0

	// ParticleLifetimeMin/Max in seconds
	ParticleLifetimeMin = 0.5
	ParticleLifetimeMax = 1.0
)

// Simulation policy
const (
	// MaxSpawnTicks bounds spawn periods processed in one Update; 0 disables the guard
	MaxSpawnTicks = 16

	// FadeEpsilon is the smallest remaining lifetime (seconds) divided by during fade
	FadeEpsilon = 1e-3
)

// Engine loop
const (
	// TickRate is the sandbox fixed simulation step
	TickRate = 16 * time.Millisecond

	// MaxFrameDelta clamps the measured frame delta fed to systems
	MaxFrameDelta = 250 * time.Millisecond

	// MaxTransformDepth bounds parent chain resolution
	MaxTransformDepth = 32
)

// Audio cues
const (
	// CueCooldown is the minimum spacing between two cues of the same preset
	CueCooldown = 400 * time.Millisecond

	// CueFireDuration/CueFogDuration are cue lengths
	CueFireDuration = 120 * time.Millisecond
	CueFogDuration  = 600 * time.Millisecond
)

// Render
const (
	// UnitsPerCell is world units covered by one terminal cell horizontally
	UnitsPerCell = 10.0

	// CellAspect is terminal cell height/width; vertical world units per cell = UnitsPerCell*CellAspect
	CellAspect = 2.0

	// CullMargin is world units outside the visible area before particles are culled
	CullMargin = 50.0
)
