package vmath

import (
	"math"
	"testing"
)

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.state != 1 {
		t.Errorf("Expected zero seed to be replaced with 1, got %d", r.state)
	}
	if r.Next() == 0 {
		t.Error("Expected non-zero output from xorshift")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for identical seeds at step %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Expected Float64 in [0,1), got %f", f)
		}
	}
}

func TestFastRandUniform(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"Ordered", 0.5, 1.0},
		{"Swapped", 200, 50},
		{"Degenerate", 0.5, 0.5},
		{"Negative", -5, 5},
	}

	r := NewFastRand(99)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := math.Min(tt.min, tt.max), math.Max(tt.min, tt.max)
			for i := 0; i < 1000; i++ {
				v := r.Uniform(tt.min, tt.max)
				if v < lo || v > hi {
					t.Fatalf("Expected value between %f and %f, got %f", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Expected pi, got %f", got)
	}
	if got := DegToRad(-90); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("Expected -pi/2, got %f", got)
	}
}

func TestPolar(t *testing.T) {
	v := Polar(DegToRad(90), 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-2) > 1e-9 || v.Z != 0 {
		t.Errorf("Expected (0,2,0), got %+v", v)
	}
}

func TestVec3FOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}
	if got := V3FAdd(a, b); got != (Vec3F{5, 7, 9}) {
		t.Errorf("Expected (5,7,9), got %+v", got)
	}
	if got := V3FScale(a, 2); got != (Vec3F{2, 4, 6}) {
		t.Errorf("Expected (2,4,6), got %+v", got)
	}
	if got := V3FMag(Vec3F{3, 4, 0}); got != 5 {
		t.Errorf("Expected magnitude 5, got %f", got)
	}
}

func TestV3FFromSlice(t *testing.T) {
	if got := V3FFromSlice([]float64{1, 2}); got != (Vec3F{1, 2, 0}) {
		t.Errorf("Expected (1,2,0), got %+v", got)
	}
	if got := V3FFromSlice(nil); got != (Vec3F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{Min: Vec2F{0, 0}, Max: Vec2F{10, 10}}
	if !r.Contains(Vec3F{X: 5, Y: 5}) {
		t.Error("Expected center to be contained")
	}
	if r.Contains(Vec3F{X: 10, Y: 5}) {
		t.Error("Expected max edge to be exclusive")
	}
	if !r.Expand(1).Contains(Vec3F{X: -0.5, Y: 10.5}) {
		t.Error("Expected expanded rect to contain point within margin")
	}
}

func TestClampLerp(t *testing.T) {
	if Clamp(2, 0, 1) != 1 || Clamp(-1, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned unexpected values")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Errorf("Expected 2.5, got %f", Lerp(0, 10, 0.25))
	}
}
