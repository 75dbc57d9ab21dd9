package emitter

import (
	"fmt"

	"github.com/lixenwraith/particle-emitter/vmath"
)

// fakeTextures is an in-memory TextureLookup
type fakeTextures map[string]TextureMetadata

func (f fakeTextures) Metadata(name string) (TextureMetadata, error) {
	meta, ok := f[name]
	if !ok {
		return TextureMetadata{}, fmt.Errorf("%w: %q", ErrTextureNotFound, name)
	}
	return meta, nil
}

// recorder collects every submitted drawable
type recorder struct {
	frames [][]Drawable
	cur    []Drawable
}

func (r *recorder) Submit(d Drawable) { r.cur = append(r.cur, d) }

// endFrame closes the current frame and returns its drawables
func (r *recorder) endFrame() []Drawable {
	f := r.cur
	r.frames = append(r.frames, f)
	r.cur = nil
	return f
}

// scriptedRandom returns values in order, cycling, ignoring the bounds
type scriptedRandom struct {
	values []float64
	idx    int
	calls  int
}

func (s *scriptedRandom) Uniform(min, max float64) float64 {
	s.calls++
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

// midRandom always returns the midpoint, bounds-respecting and deterministic
type midRandom struct{}

func (midRandom) Uniform(min, max float64) float64 { return (min + max) / 2 }

var testTextures = fakeTextures{
	"smoke": {Width: 32, Height: 16, Handle: 7},
	"ember": {Width: 8, Height: 8, Handle: 3},
}

func testEnv() Env {
	return Env{
		Textures: testTextures,
		Anchor:   StaticAnchor(vmath.Vec3F{}),
		Random:   vmath.NewFastRand(12345),
	}
}

// fixedConfig builds a config whose ranges all collapse to the given values
func fixedConfig(limit, perSpawn int, freq, lifetime, fadeStart, alpha float64) Config {
	return Config{
		ParticleLimit:     limit,
		ParticlesPerSpawn: perSpawn,
		SpawnFrequency:    freq,
		InitAlpha:         Range{alpha, alpha},
		FadeStart:         Range{fadeStart, fadeStart},
		Direction:         Range{0, 360},
		Magnitude:         Range{200, 50},
		Lifetime:          Range{lifetime, lifetime},
	}
}

func countAlive(ps []Particle) int {
	n := 0
	for _, p := range ps {
		if p.Alive {
			n++
		}
	}
	return n
}
