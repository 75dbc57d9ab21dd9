package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-emitter/core"
	"github.com/lixenwraith/particle-emitter/engine"
	"github.com/lixenwraith/particle-emitter/parameter"
	"github.com/lixenwraith/particle-emitter/status"
)

// CuePlayer is notified when an emitter produced at least one batch this tick
type CuePlayer interface {
	PlayBatch(preset string)
}

// EmitterSystem advances every emitter in the world once per tick
// Spawn failures are logged and aggregated; they never stop the loop
type EmitterSystem struct {
	world  *engine.World
	logger *zap.Logger
	cues   CuePlayer

	lastErr error

	// Telemetry
	statCount           *atomic.Int64
	statAlive           *atomic.Int64
	statSpawned         *atomic.Int64
	statRetired         *atomic.Int64
	statSpawnFailed     *atomic.Int64
	statDroppedTicks    *atomic.Int64
	statDegenerateFades *atomic.Int64
	statFrameMs         *status.AtomicFloat
}

// SystemOption configures optional EmitterSystem collaborators
type SystemOption func(*EmitterSystem)

func WithLogger(l *zap.Logger) SystemOption {
	return func(s *EmitterSystem) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithCuePlayer(c CuePlayer) SystemOption {
	return func(s *EmitterSystem) { s.cues = c }
}

func NewEmitterSystem(world *engine.World, reg *status.Registry, opts ...SystemOption) *EmitterSystem {
	s := &EmitterSystem{
		world:  world,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.statCount = reg.Ints.Get("emitter.count")
	s.statAlive = reg.Ints.Get("emitter.alive")
	s.statSpawned = reg.Ints.Get("emitter.spawned")
	s.statRetired = reg.Ints.Get("emitter.retired")
	s.statSpawnFailed = reg.Ints.Get("emitter.spawn_failed")
	s.statDroppedTicks = reg.Ints.Get("emitter.dropped_ticks")
	s.statDegenerateFades = reg.Ints.Get("emitter.degenerate_fades")
	s.statFrameMs = reg.Floats.Get("emitter.frame_ms")

	return s
}

func (s *EmitterSystem) Name() string { return "emitter" }

func (s *EmitterSystem) Priority() int {
	return parameter.PriorityEmitter
}

// Update advances each emitter by dt
func (s *EmitterSystem) Update(dt time.Duration) {
	start := time.Now()
	seconds := dt.Seconds()

	var errs error
	var count, alive int64

	for _, e := range s.world.Emitters.All() {
		comp, ok := s.world.Emitters.Get(e)
		if !ok || comp.Emitter == nil {
			continue
		}
		count++

		// Deltas are taken around this tick only; copied or cloned history is never counted
		prev := comp.Emitter.Stats()
		if err := comp.Emitter.Update(seconds); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entity %d: %w", e, err))
			s.logFailure(e, comp.Preset, err)
		}

		stats := comp.Emitter.Stats()
		s.statSpawned.Add(int64(stats.Spawned - prev.Spawned))
		s.statRetired.Add(int64(stats.Retired - prev.Retired))
		s.statSpawnFailed.Add(int64(stats.SpawnFailures - prev.SpawnFailures))
		s.statDroppedTicks.Add(int64(stats.DroppedTicks - prev.DroppedTicks))
		s.statDegenerateFades.Add(int64(stats.DegenerateFades - prev.DegenerateFades))

		if s.cues != nil && stats.Batches > prev.Batches {
			s.cues.PlayBatch(comp.Preset)
		}

		alive += int64(comp.Emitter.AliveCount())
	}

	s.lastErr = errs
	s.statCount.Store(count)
	s.statAlive.Store(alive)
	s.statFrameMs.Set(float64(time.Since(start).Microseconds()) / 1000.0)
}

// LastError returns the combined spawn failures of the most recent tick, nil when clean
func (s *EmitterSystem) LastError() error {
	return s.lastErr
}

func (s *EmitterSystem) logFailure(e core.Entity, preset string, err error) {
	fields := []zap.Field{
		zap.Uint64("entity", uint64(e)),
		zap.String("preset", preset),
		zap.Error(err),
	}
	if n, ok := s.world.Names.Get(e); ok {
		fields = append(fields, zap.String("scene", n.Scene), zap.String("name", n.Name))
	}
	s.logger.Warn("emitter spawn failed", fields...)
}
