package emitter

import (
	"github.com/lixenwraith/particle-emitter/vmath"
)

// ParticleID identifies one spawned particle within its emitter
// Slot overwrites issue a fresh ID, so a stale handle never matches the new occupant
type ParticleID uint64

// Particle is one pool slot
type Particle struct {
	ID       ParticleID
	Position vmath.Vec3F
	Velocity vmath.Vec3F

	// Rendered size in pixels, texture size * scale at spawn
	Width  int
	Height int

	Lifetime  float64 // total seconds to live
	Age       float64 // seconds since spawn
	Alpha     float64
	FadeStart float64 // age after which alpha decays

	Alive   bool
	Texture TextureHandle
}

func (p *Particle) drawable() Drawable {
	return Drawable{
		Position: p.Position,
		Width:    p.Width,
		Height:   p.Height,
		Alpha:    p.Alpha,
		Texture:  p.Texture,
	}
}

// Stats are cumulative counters of one emitter
type Stats struct {
	Spawned         uint64
	Retired         uint64
	Removed         uint64
	Batches         uint64
	SkippedBatches  uint64 // limit reached when the timer fired
	DroppedTicks    uint64 // periods discarded by the catch-up guard
	SpawnFailures   uint64
	DegenerateFades uint64
}
