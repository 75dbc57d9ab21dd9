package engine

import (
	"fmt"

	"github.com/lixenwraith/particle-emitter/component"
	"github.com/lixenwraith/particle-emitter/core"
	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/parameter"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// WorldPosition sums translations up the parent chain
func (w *World) WorldPosition(e core.Entity) (vmath.Vec3F, error) {
	var pos vmath.Vec3F
	cur := e
	for depth := 0; depth < parameter.MaxTransformDepth; depth++ {
		t, ok := w.Transforms.Get(cur)
		if !ok {
			return vmath.Vec3F{}, fmt.Errorf("entity %d: %w", cur, ErrNoTransform)
		}
		pos = vmath.V3FAdd(pos, t.Translation)
		if t.Parent == 0 {
			return pos, nil
		}
		cur = t.Parent
	}
	return vmath.Vec3F{}, fmt.Errorf("entity %d: %w", e, ErrTransformCycle)
}

// FindByName returns the entity named name within scene
func (w *World) FindByName(scene, name string) (core.Entity, bool) {
	for _, e := range w.Names.All() {
		n, ok := w.Names.Get(e)
		if ok && n.Scene == scene && n.Name == name {
			return e, true
		}
	}
	return 0, false
}

// CloneEmitter copies src's emitter state onto dst
// An existing dst emitter keeps its collaborators; otherwise a clone anchored to dst is attached
func (w *World) CloneEmitter(src, dst core.Entity) error {
	srcComp, ok := w.Emitters.Get(src)
	if !ok || srcComp.Emitter == nil {
		return fmt.Errorf("clone source %d: %w", src, ErrNoEmitter)
	}

	if dstComp, ok := w.Emitters.Get(dst); ok && dstComp.Emitter != nil {
		srcComp.Emitter.CopyTo(dstComp.Emitter)
		dstComp.Preset = srcComp.Preset
		w.Emitters.Set(dst, dstComp)
		return nil
	}

	clone := srcComp.Emitter.Clone()
	clone.SetAnchor(EntityAnchor{World: w, Entity: dst})
	w.Emitters.Set(dst, component.EmitterComponent{Emitter: clone, Preset: srcComp.Preset})
	return nil
}

// EntityAnchor resolves an emitter's position from its owning entity's transform
type EntityAnchor struct {
	World  *World
	Entity core.Entity
}

var _ emitter.Anchor = EntityAnchor{}

func (a EntityAnchor) WorldPosition() (vmath.Vec3F, error) {
	return a.World.WorldPosition(a.Entity)
}
