package emitter

import (
	"github.com/lixenwraith/particle-emitter/vmath"
)

// TextureHandle is an opaque render reference issued by the texture registry
type TextureHandle uint32

// TextureMetadata describes a texture as seen by the emitter
type TextureMetadata struct {
	Width  int
	Height int
	Handle TextureHandle
}

// TextureLookup resolves texture names; unknown names must wrap ErrTextureNotFound
type TextureLookup interface {
	Metadata(name string) (TextureMetadata, error)
}

// Anchor reports the world position of the emitter's owner
// Queried once per spawned particle
type Anchor interface {
	WorldPosition() (vmath.Vec3F, error)
}

// Drawable is the per-particle state handed to the renderer each frame
type Drawable struct {
	Position vmath.Vec3F
	Width    int
	Height   int
	Alpha    float64
	Texture  TextureHandle
}

// Renderer accepts drawables; fire-and-forget, must not block
type Renderer interface {
	Submit(d Drawable)
}

// RandomSource yields min + (max-min)*u for u in [0, 1)
type RandomSource interface {
	Uniform(min, max float64) float64
}

// Env bundles the collaborators of one emitter instance
// Copying state between emitters never copies Env
type Env struct {
	Textures TextureLookup
	Anchor   Anchor
	Renderer Renderer
	Random   RandomSource
}

// AnchorFunc adapts a function to Anchor
type AnchorFunc func() (vmath.Vec3F, error)

func (f AnchorFunc) WorldPosition() (vmath.Vec3F, error) { return f() }

// StaticAnchor pins an emitter to a fixed world point
type StaticAnchor vmath.Vec3F

func (a StaticAnchor) WorldPosition() (vmath.Vec3F, error) { return vmath.Vec3F(a), nil }
