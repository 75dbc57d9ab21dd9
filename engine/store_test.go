package engine

import (
	"testing"

	"github.com/lixenwraith/particle-emitter/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11)

	if s.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", s.Count())
	}
	if v, ok := s.Get(1); !ok || v != 11 {
		t.Errorf("Expected updated value 11, got %d (%v)", v, ok)
	}

	s.Remove(1)
	s.Remove(99)
	if s.Has(1) {
		t.Error("Expected entity 1 removed")
	}
	if all := s.All(); len(all) != 1 || all[0] != 2 {
		t.Errorf("Expected [2], got %v", all)
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[string]()
	for e := core.Entity(1); e <= 6; e++ {
		s.Set(e, "x")
	}
	s.RemoveBatch([]core.Entity{2, 4, 6, 42})

	all := s.All()
	want := []core.Entity{1, 3, 5}
	if len(all) != len(want) {
		t.Fatalf("Expected %v, got %v", want, all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, all)
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)
	s.Clear()
	if s.Count() != 0 || s.Has(1) {
		t.Error("Expected empty store after Clear")
	}
}
