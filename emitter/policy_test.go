package emitter

import (
	"math"
	"testing"
)

func TestFadeClamped(t *testing.T) {
	tests := []struct {
		name       string
		age        float64
		dt         float64
		wantAlpha  float64
		degenerate bool
	}{
		{"Regular window", 0.5, 0.1, 0.5 - 0.5/0.5*0.1, false},
		{"Overshoot floors at zero", 0.9, 0.5, 0, false},
		{"Degenerate window", 0.9995, 0.01, 0, true},
		{"Past lifetime", 1.2, 0.01, 0, true},
	}

	p := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := Particle{Lifetime: 1.0, Age: tt.age, Alpha: 0.5}
			degenerate := p.fade(&pt, tt.dt)
			if degenerate != tt.degenerate {
				t.Errorf("Expected degenerate=%v, got %v", tt.degenerate, degenerate)
			}
			if math.Abs(pt.Alpha-tt.wantAlpha) > 1e-12 {
				t.Errorf("Expected alpha %f, got %f", tt.wantAlpha, pt.Alpha)
			}
			if pt.Alpha < 0 {
				t.Errorf("Expected non-negative alpha in clamped mode, got %f", pt.Alpha)
			}
		})
	}
}

func TestFadeCompat(t *testing.T) {
	p := DefaultPolicy()
	p.Fade = FadeCompat

	pt := Particle{Lifetime: 1.0, Age: 0.9, Alpha: 0.5}
	p.fade(&pt, 0.5)
	want := 0.5 - 0.5/(1.0-0.9)*0.5
	if math.Abs(pt.Alpha-want) > 1e-9 {
		t.Errorf("Expected unguarded alpha %f, got %f", want, pt.Alpha)
	}
	if pt.Alpha >= 0 {
		t.Errorf("Expected compat formula to overshoot below zero, got %f", pt.Alpha)
	}
}

func TestFadeStrictlyDecreasing(t *testing.T) {
	p := DefaultPolicy()
	pt := Particle{Lifetime: 1.0, Age: 0.1, Alpha: 0.5}
	prev := pt.Alpha
	for i := 0; i < 8; i++ {
		pt.Age += 0.1
		p.fade(&pt, 0.1)
		if !(pt.Alpha < prev) {
			t.Fatalf("Expected alpha to decrease at step %d: prev %f, got %f", i, prev, pt.Alpha)
		}
		prev = pt.Alpha
	}
}

func TestParseFadeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FadeMode
		wantErr bool
	}{
		{"", FadeClamped, false},
		{"clamped", FadeClamped, false},
		{"COMPAT", FadeCompat, false},
		{"exponential", FadeClamped, true},
	}
	for _, tt := range tests {
		got, err := ParseFadeMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFadeMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFadeMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if FadeCompat.String() != "compat" || FadeClamped.String() != "clamped" {
		t.Error("Unexpected FadeMode names")
	}
}
