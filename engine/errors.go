package engine

import "errors"

var (
	ErrNoTransform    = errors.New("entity has no transform")
	ErrTransformCycle = errors.New("transform hierarchy too deep or cyclic")
	ErrNoEmitter      = errors.New("entity has no emitter")
)
