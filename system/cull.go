package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/engine"
	"github.com/lixenwraith/particle-emitter/parameter"
	"github.com/lixenwraith/particle-emitter/status"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// CullSystem removes live particles that drifted outside the visible area plus a margin
// Runs after EmitterSystem so the current frame's motion is accounted for
type CullSystem struct {
	world  *engine.World
	bounds vmath.Rect
	margin float64
	active bool

	statCulled *atomic.Int64
}

func NewCullSystem(world *engine.World, reg *status.Registry, margin float64) *CullSystem {
	return &CullSystem{
		world:      world,
		margin:     margin,
		statCulled: reg.Ints.Get("emitter.culled"),
	}
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// SetBounds sets the visible world rectangle; culling is inactive until first set
func (s *CullSystem) SetBounds(r vmath.Rect) {
	s.bounds = r
	s.active = true
}

func (s *CullSystem) Update(time.Duration) {
	if !s.active {
		return
	}
	keep := s.bounds.Expand(s.margin)

	var ids []emitter.ParticleID
	for _, e := range s.world.Emitters.All() {
		comp, ok := s.world.Emitters.Get(e)
		if !ok || comp.Emitter == nil {
			continue
		}

		ids = ids[:0]
		for _, p := range comp.Emitter.Particles() {
			if p.Alive && !keep.Contains(p.Position) {
				ids = append(ids, p.ID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		s.statCulled.Add(int64(comp.Emitter.RemoveMatching(ids...)))
	}
}
