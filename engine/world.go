package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/skyport/core"
)

// World contains all entities, their components and the singleton resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resource   *Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with default resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resource:     newResource(),
		Components:   newComponentStore(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// A destroyed target or pilot reference is cleared
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
	if cur, ok := w.Resource.Target.Get(); ok && cur == e {
		w.Resource.Target.Clear()
	}
	if w.Resource.Pilot.Entity == e {
		w.Resource.Pilot.Entity = 0
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clear()
	w.Resource.Target.Clear()
	w.Resource.Pilot.Entity = 0
}

// AddSystem adds a system to the world and keeps systems ordered by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// InitSystems resets session state of every registered system
func (w *World) InitSystems() {
	for _, system := range w.Systems() {
		system.Init()
	}
}
