package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for particle positions and velocities
type Vec3F struct {
	X, Y, Z float64
}

// Vec2F is a float64 2D vector used for planar extents
type Vec2F struct {
	X, Y float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FFromSlice builds a vector from up to three components, missing ones are zero
func V3FFromSlice(s []float64) Vec3F {
	var v Vec3F
	if len(s) > 0 {
		v.X = s[0]
	}
	if len(s) > 1 {
		v.Y = s[1]
	}
	if len(s) > 2 {
		v.Z = s[2]
	}
	return v
}

// V2FHalf returns the half extents of a size
func V2FHalf(v Vec2F) Vec2F {
	return Vec2F{v.X / 2, v.Y / 2}
}

// Rect is an axis-aligned planar rectangle, Min inclusive and Max exclusive
type Rect struct {
	Min, Max Vec2F
}

// Contains reports whether the XY projection of p lies inside r
func (r Rect) Contains(p Vec3F) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Expand grows r by margin on every side
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Min: Vec2F{r.Min.X - margin, r.Min.Y - margin},
		Max: Vec2F{r.Max.X + margin, r.Max.Y + margin},
	}
}
