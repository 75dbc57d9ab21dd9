package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/parameter"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// CuePlayer plays a short sound when an emitter releases a batch
// Every method is a no-op until Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	cooldown    time.Duration
	lastPlayed  map[string]time.Time
	seed        uint64

	now  func() time.Time
	sink func(beep.Streamer)
}

func NewCuePlayer(cooldown time.Duration) *CuePlayer {
	cp := &CuePlayer{
		mixer:      &beep.Mixer{},
		cooldown:   cooldown,
		lastPlayed: make(map[string]time.Time),
		seed:       uint64(time.Now().UnixNano()),
		now:        time.Now,
	}
	cp.sink = cp.mixer.Add
	return cp
}

// Initialize opens the speaker, repeated calls are no-ops
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup drops queued cues; the speaker stays open since beep cannot close it
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	speaker.Lock()
	cp.mixer.Clear()
	speaker.Unlock()
	cp.initialized = false
}

// PlayBatch queues the cue for preset unless one played within the cooldown
func (cp *CuePlayer) PlayBatch(preset string) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}

	now := cp.now()
	if last, ok := cp.lastPlayed[preset]; ok && now.Sub(last) < cp.cooldown {
		return
	}

	s := cp.cue(preset)
	if s == nil {
		return
	}
	cp.lastPlayed[preset] = now

	speaker.Lock()
	cp.sink(s)
	speaker.Unlock()
}

// cue builds the bounded streamer for a preset, nil for presets without a sound
func (cp *CuePlayer) cue(preset string) beep.Streamer {
	cp.seed++
	switch preset {
	case emitter.PresetFire:
		return beep.Take(sampleRate.N(parameter.CueFireDuration), NewCrackleGenerator(sampleRate, cp.seed))
	case emitter.PresetFog:
		return beep.Take(sampleRate.N(parameter.CueFogDuration), NewHushGenerator(sampleRate, parameter.CueFogDuration, cp.seed))
	}
	return nil
}
