package emitter

import "errors"

var (
	// ErrTextureNotFound is returned when the emitter texture is unknown to the lookup
	ErrTextureNotFound = errors.New("texture not found")

	// ErrUnknownPreset is returned for preset names other than fog and fire
	ErrUnknownPreset = errors.New("unknown emitter preset")

	// ErrInvalidConfig is returned for configurations that would stall or corrupt Update
	ErrInvalidConfig = errors.New("invalid emitter config")
)
