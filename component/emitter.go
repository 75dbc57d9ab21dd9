package component

import "github.com/lixenwraith/particle-emitter/emitter"

// EmitterComponent attaches a particle emitter to an entity
// Store holds the pointer, the emitter pool is mutated in place by EmitterSystem
type EmitterComponent struct {
	Emitter *emitter.Emitter
	Preset  string
}
