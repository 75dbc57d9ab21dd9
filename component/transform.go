package component

import (
	"github.com/lixenwraith/particle-emitter/core"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// TransformComponent places an entity in world units, relative to Parent when set
type TransformComponent struct {
	Translation vmath.Vec3F
	Parent      core.Entity // 0 = root
}
