package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/particle-emitter/vmath"
)

// CrackleGenerator produces fire crackle: decaying noise with sparse pops
type CrackleGenerator struct {
	sr    beep.SampleRate
	pos   int
	rng   *vmath.FastRand
	pop   float64 // current pop amplitude, decays per sample
	decay float64
}

func NewCrackleGenerator(sr beep.SampleRate, seed uint64) *CrackleGenerator {
	return &CrackleGenerator{
		sr:    sr,
		rng:   vmath.NewFastRand(seed),
		decay: math.Exp(-1.0 / (float64(sr) * 0.004)), // 4ms pop tail
	}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast exponential decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)

		// Roughly 60 pops per second
		if g.rng.Float64() < 60.0/float64(g.sr) {
			g.pop = 0.6 + 0.4*g.rng.Float64()
		}
		g.pop *= g.decay

		noise := g.rng.Uniform(-1, 1)
		sample := envelope * (0.12 + 0.7*g.pop) * noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}

// HushGenerator produces a soft low-passed noise swell for fog
type HushGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *vmath.FastRand
	lp      float64 // one-pole low-pass state
	alpha   float64
}

func NewHushGenerator(sr beep.SampleRate, duration time.Duration, seed uint64) *HushGenerator {
	// One-pole coefficient for ~400Hz cutoff
	rc := 1.0 / (2 * math.Pi * 400)
	dt := 1.0 / float64(sr)
	return &HushGenerator{
		sr:      sr,
		samples: max(sr.N(duration), 1),
		rng:     vmath.NewFastRand(seed),
		alpha:   dt / (rc + dt),
	}
}

func (g *HushGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// Half-sine swell over the cue length, silent past it
		cyclePos := float64(g.pos) / float64(g.samples)
		envelope := 0.0
		if cyclePos < 1 {
			envelope = math.Sin(cyclePos * math.Pi)
		}

		g.lp += g.alpha * (g.rng.Uniform(-1, 1) - g.lp)
		sample := 0.35 * envelope * g.lp

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HushGenerator) Err() error {
	return nil
}
