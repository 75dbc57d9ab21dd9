package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/particle-emitter/component"
	"github.com/lixenwraith/particle-emitter/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component stores, public for direct system access
	Transforms *Store[component.TransformComponent]
	Emitters   *Store[component.EmitterComponent]
	Names      *Store[component.NameComponent]

	// Lifecycle registry, every store above
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Transforms:   NewStore[component.TransformComponent](),
		Emitters:     NewStore[component.EmitterComponent](),
		Names:        NewStore[component.NameComponent](),
		systems:      make([]System, 0),
	}
	w.allStores = []AnyStore{w.Transforms, w.Emitters, w.Names}
	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Children keep their Parent id and resolve as missing on the next WorldPosition
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// DestroyEntities removes every component of entities with one compaction pass per store
func (w *World) DestroyEntities(entities []core.Entity) {
	for _, s := range w.allStores {
		s.RemoveBatch(entities)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.Clear()
	}
}

// EntityCount returns the number of entities holding at least one component
func (w *World) EntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, e := range w.Transforms.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Emitters.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Names.All() {
		seen[e] = struct{}{}
	}
	return len(seen)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N; stable so equal priorities keep registration order
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
// Input handlers use it to mutate components between ticks
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked(dt time.Duration) {
	for _, system := range w.Systems() {
		system.Update(dt)
	}
}
