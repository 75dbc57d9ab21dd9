package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("emitter.alive")
	b := r.Ints.Get("emitter.alive")
	if a != b {
		t.Error("Expected identical pointer for repeated Get")
	}
	a.Store(12)
	if b.Load() != 12 {
		t.Errorf("Expected 12, got %d", b.Load())
	}
	if !r.Ints.Has("emitter.alive") || r.Ints.Has("emitter.missing") {
		t.Error("Unexpected Has result")
	}
}

func TestMetricMapConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("emitter.spawned").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("emitter.spawned").Load(); got != 32 {
		t.Errorf("Expected 32, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected a single registered metric, got %d", r.Ints.Count())
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Get())
	}
	f.Set(1.5)
	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("Expected 1.75, got %f", got)
	}
}

func TestRangeSortedAndSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b").Store(2)
	r.Ints.Get("a").Store(1)
	r.Floats.Get("frame_ms").Set(4.5)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Expected sorted keys [a b], got %v", keys)
	}

	ints, floats := r.Snapshot()
	if ints["a"] != 1 || ints["b"] != 2 {
		t.Errorf("Unexpected int snapshot %v", ints)
	}
	if floats["frame_ms"] != 4.5 {
		t.Errorf("Unexpected float snapshot %v", floats)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}
