package emitter

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/particle-emitter/vmath"
)

// Emitter owns a particle pool and drives its per-frame lifecycle
// Not safe for concurrent use; one simulation thread owns each instance
type Emitter struct {
	cfg    Config
	policy Policy
	env    Env

	dimensions  vmath.Vec2F // spawn area extents, offsets drawn within ±dimensions/2
	textureName string
	scale       float64

	particles      []Particle
	alive          int // mirrors count of Alive slots
	timeSinceSpawn float64
	nextID         ParticleID

	stats Stats
}

// Option configures an Emitter at construction
type Option func(*Emitter)

// WithPolicy replaces the default simulation policy
func WithPolicy(p Policy) Option {
	return func(e *Emitter) { e.policy = p }
}

// New creates an emitter from a named preset
func New(preset string, dimensions vmath.Vec2F, textureName string, scale float64, env Env, opts ...Option) (*Emitter, error) {
	cfg, err := LookupPreset(preset)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, dimensions, textureName, scale, env, opts...)
}

// NewWithConfig creates an emitter from an explicit parameter bundle
func NewWithConfig(cfg Config, dimensions vmath.Vec2F, textureName string, scale float64, env Env, opts ...Option) (*Emitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Emitter{
		cfg:         cfg,
		policy:      DefaultPolicy(),
		env:         env,
		dimensions:  dimensions,
		textureName: textureName,
		scale:       scale,
		particles:   make([]Particle, 0, cfg.ParticleLimit),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.env.Random == nil {
		e.env.Random = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return e, nil
}

// Update advances the emitter by dt seconds
// A spawn failure aborts spawning for this call only; simulation still runs and the error is returned
func (e *Emitter) Update(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		// Negative, NaN and infinite deltas are treated as a zero-length frame
		dt = 0
	}

	bornAfter := e.nextID
	err := e.spawnPhase(dt)
	if e.policy.AgeOnSpawnFrame {
		bornAfter = e.nextID
	}
	e.simulate(dt, bornAfter)
	return err
}

// spawnPhase runs the fixed-step spawn timer
func (e *Emitter) spawnPhase(dt float64) error {
	e.timeSinceSpawn += dt

	freq := e.cfg.SpawnFrequency
	var spawnErr error
	ticks := 0

	for e.timeSinceSpawn >= freq {
		if e.policy.MaxSpawnTicks > 0 && ticks >= e.policy.MaxSpawnTicks {
			dropped := math.Floor(e.timeSinceSpawn / freq)
			e.timeSinceSpawn = math.Mod(e.timeSinceSpawn, freq)
			e.stats.DroppedTicks += uint64(dropped)
			break
		}
		e.timeSinceSpawn -= freq
		ticks++

		// Timer keeps draining after a failure so no backlog bursts once the fault clears
		if spawnErr != nil {
			continue
		}

		capacity := e.cfg.ParticleLimit - e.alive
		if capacity <= 0 {
			e.stats.SkippedBatches++
			continue
		}

		n := e.cfg.ParticlesPerSpawn
		if n > capacity {
			n = capacity
		}
		made := 0
		for ; made < n; made++ {
			if err := e.spawnOne(); err != nil {
				spawnErr = err
				e.stats.SpawnFailures++
				break
			}
			e.alive++
			e.stats.Spawned++
		}
		// A batch that produced nothing is a failure, not a batch
		if made > 0 {
			e.stats.Batches++
		}
	}

	return spawnErr
}

// simulate ages, fades, moves, draws and retires every live particle
// Particles with ID above bornAfter were spawned this frame and are only drawn
func (e *Emitter) simulate(dt float64, bornAfter ParticleID) {
	renderer := e.env.Renderer

	for i := range e.particles {
		p := &e.particles[i]
		if !p.Alive {
			continue
		}

		if p.ID > bornAfter {
			if renderer != nil {
				renderer.Submit(p.drawable())
			}
			continue
		}

		p.Age += dt
		if p.Age > p.FadeStart {
			if e.policy.fade(p, dt) {
				e.stats.DegenerateFades++
			}
		}
		p.Position = vmath.V3FAdd(p.Position, vmath.V3FScale(p.Velocity, dt))

		// Drawn once on the frame it crosses lifetime; renderer clips invalid alpha
		if renderer != nil {
			renderer.Submit(p.drawable())
		}

		if p.Age > p.Lifetime {
			p.Alive = false
			e.alive--
			e.stats.Retired++
		}
	}
}

// spawnOne creates a single particle in the first dead slot, or appends one
func (e *Emitter) spawnOne() error {
	meta, err := e.textureMetadata()
	if err != nil {
		return err
	}

	var origin vmath.Vec3F
	if e.env.Anchor != nil {
		origin, err = e.env.Anchor.WorldPosition()
		if err != nil {
			return fmt.Errorf("emitter anchor: %w", err)
		}
	}

	rng := e.env.Random
	angle := vmath.DegToRad(rng.Uniform(e.cfg.Direction.Min, e.cfg.Direction.Max))
	mag := rng.Uniform(e.cfg.Magnitude.Min, e.cfg.Magnitude.Max)

	half := vmath.V2FHalf(e.dimensions)
	offX := rng.Uniform(-half.X, half.X)
	offY := rng.Uniform(-half.Y, half.Y)

	lifetime := rng.Uniform(e.cfg.Lifetime.Min, e.cfg.Lifetime.Max)
	fadeStart := rng.Uniform(e.cfg.FadeStart.Min, e.cfg.FadeStart.Max)
	alpha := rng.Uniform(e.cfg.InitAlpha.Min, e.cfg.InitAlpha.Max)

	e.nextID++
	p := Particle{
		ID:        e.nextID,
		Position:  vmath.Vec3F{X: origin.X + offX, Y: origin.Y + offY},
		Velocity:  vmath.Polar(angle, mag),
		Width:     int(float64(meta.Width) * e.scale),
		Height:    int(float64(meta.Height) * e.scale),
		Lifetime:  lifetime,
		FadeStart: fadeStart,
		Alpha:     alpha,
		Alive:     true,
		Texture:   meta.Handle,
	}

	for i := range e.particles {
		if !e.particles[i].Alive {
			e.particles[i] = p
			return nil
		}
	}
	e.particles = append(e.particles, p)
	return nil
}

func (e *Emitter) textureMetadata() (TextureMetadata, error) {
	if e.env.Textures == nil {
		return TextureMetadata{}, fmt.Errorf("%w: %q (no texture lookup)", ErrTextureNotFound, e.textureName)
	}
	meta, err := e.env.Textures.Metadata(e.textureName)
	if err != nil {
		return TextureMetadata{}, fmt.Errorf("emitter texture %q: %w", e.textureName, err)
	}
	return meta, nil
}

// RemoveMatching removes every particle whose identity is among ids and compacts the pool
// Returns the number of slots removed
func (e *Emitter) RemoveMatching(ids ...ParticleID) int {
	if len(ids) == 0 || len(e.particles) == 0 {
		return 0
	}

	toRemove := make(map[ParticleID]struct{}, len(ids))
	for _, id := range ids {
		toRemove[id] = struct{}{}
	}

	writeIdx := 0
	removed := 0
	for _, p := range e.particles {
		if _, drop := toRemove[p.ID]; drop {
			if p.Alive {
				e.alive--
			}
			removed++
			continue
		}
		e.particles[writeIdx] = p
		writeIdx++
	}
	// Zero the tail so the backing array holds no stale particles
	for i := writeIdx; i < len(e.particles); i++ {
		e.particles[i] = Particle{}
	}
	e.particles = e.particles[:writeIdx]
	e.stats.Removed += uint64(removed)
	return removed
}

// CopyTo overwrites dst simulation state with e; dst keeps its own collaborators
func (e *Emitter) CopyTo(dst *Emitter) {
	if dst == nil || dst == e {
		return
	}
	dst.cfg = e.cfg
	dst.policy = e.policy
	dst.dimensions = e.dimensions
	dst.textureName = e.textureName
	dst.scale = e.scale
	dst.alive = e.alive
	dst.timeSinceSpawn = e.timeSinceSpawn
	dst.nextID = e.nextID
	dst.stats = e.stats
	dst.particles = append(make([]Particle, 0, cap(e.particles)), e.particles...)
}

// Clone returns an independent emitter with identical state sharing e's collaborators
func (e *Emitter) Clone() *Emitter {
	c := &Emitter{env: e.env}
	e.CopyTo(c)
	return c
}

// SetAnchor rebinds the owner position source, used when a clone moves to another entity
func (e *Emitter) SetAnchor(a Anchor) {
	e.env.Anchor = a
}

// SetRenderer rebinds the draw target
func (e *Emitter) SetRenderer(r Renderer) {
	e.env.Renderer = r
}

func (e *Emitter) Config() Config          { return e.cfg }
func (e *Emitter) Policy() Policy          { return e.policy }
func (e *Emitter) TextureName() string     { return e.textureName }
func (e *Emitter) Scale() float64          { return e.scale }
func (e *Emitter) Dimensions() vmath.Vec2F { return e.dimensions }
func (e *Emitter) AliveCount() int         { return e.alive }
func (e *Emitter) PoolSize() int           { return len(e.particles) }
func (e *Emitter) TimeSinceSpawn() float64 { return e.timeSinceSpawn }
func (e *Emitter) Stats() Stats            { return e.stats }

// Particles returns a copy of the pool in slot order
func (e *Emitter) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

// Particle returns the slot holding id
func (e *Emitter) Particle(id ParticleID) (Particle, bool) {
	for _, p := range e.particles {
		if p.ID == id {
			return p, true
		}
	}
	return Particle{}, false
}

// Snapshot is the complete simulation state of an emitter, comparable by value
type Snapshot struct {
	Config         Config
	Policy         Policy
	Dimensions     vmath.Vec2F
	TextureName    string
	Scale          float64
	Alive          int
	TimeSinceSpawn float64
	NextID         ParticleID
	Stats          Stats
	Particles      []Particle
}

// Snapshot captures the full state with an independent pool copy
func (e *Emitter) Snapshot() Snapshot {
	return Snapshot{
		Config:         e.cfg,
		Policy:         e.policy,
		Dimensions:     e.dimensions,
		TextureName:    e.textureName,
		Scale:          e.scale,
		Alive:          e.alive,
		TimeSinceSpawn: e.timeSinceSpawn,
		NextID:         e.nextID,
		Stats:          e.stats,
		Particles:      e.Particles(),
	}
}
