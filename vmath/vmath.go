package vmath

import (
	"math"
)

// --- Angles ---

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// Polar returns the planar vector of magnitude mag at angle rad (z = 0)
func Polar(rad, mag float64) Vec3F {
	return Vec3F{X: math.Cos(rad) * mag, Y: math.Sin(rad) * mag}
}

// --- Scalar helpers ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each owner keeps its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// Uniform returns min + (max-min)*u for u in [0, 1)
// Swapped bounds (min > max) still yield a value between the two
func (r *FastRand) Uniform(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}
