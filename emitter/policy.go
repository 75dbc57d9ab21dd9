package emitter

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/particle-emitter/parameter"
)

// FadeMode selects the alpha decay formula applied after fade start
type FadeMode uint8

const (
	// FadeClamped: r = lifetime-age; r < eps sets alpha to 0, else alpha -= alpha/r*dt floored at 0
	FadeClamped FadeMode = iota
	// FadeCompat: alpha -= alpha/(lifetime-age)*dt with no guard, alpha may go negative or non-finite
	FadeCompat
)

func (m FadeMode) String() string {
	switch m {
	case FadeClamped:
		return "clamped"
	case FadeCompat:
		return "compat"
	}
	return fmt.Sprintf("FadeMode(%d)", uint8(m))
}

// ParseFadeMode maps config text to a FadeMode, empty selects FadeClamped
func ParseFadeMode(s string) (FadeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamped":
		return FadeClamped, nil
	case "compat":
		return FadeCompat, nil
	}
	return FadeClamped, fmt.Errorf("unknown fade mode %q", s)
}

// Policy holds simulation guards that are not part of a preset
type Policy struct {
	// MaxSpawnTicks bounds spawn periods per Update; 0 disables the guard
	MaxSpawnTicks int
	Fade          FadeMode
	// FadeEpsilon is the smallest remaining lifetime divided by in FadeClamped
	FadeEpsilon float64
	// AgeOnSpawnFrame ages particles by the dt of the Update that spawned them
	// Off by default: newborns are drawn at their spawn point and start aging next frame
	AgeOnSpawnFrame bool
}

// DefaultPolicy returns the engine defaults
func DefaultPolicy() Policy {
	return Policy{
		MaxSpawnTicks: parameter.MaxSpawnTicks,
		Fade:          FadeClamped,
		FadeEpsilon:   parameter.FadeEpsilon,
	}
}

// fade applies one step of alpha decay, reports whether the degenerate window clamp fired
func (p Policy) fade(pt *Particle, dt float64) bool {
	if p.Fade == FadeCompat {
		pt.Alpha -= pt.Alpha / (pt.Lifetime - pt.Age) * dt
		return false
	}

	remaining := pt.Lifetime - pt.Age
	if remaining < p.FadeEpsilon {
		pt.Alpha = 0
		return true
	}
	pt.Alpha -= pt.Alpha / remaining * dt
	if pt.Alpha < 0 {
		pt.Alpha = 0
	}
	return false
}
