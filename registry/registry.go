package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/skyport/engine"
)

// SystemFactory creates a per-tick System from a World
type SystemFactory func(world *engine.World) engine.System

// HandlerFactory creates an event-only handler from a World
type HandlerFactory func(world *engine.World) engine.EventHandler

var (
	systemsMu  sync.RWMutex
	systems    = make(map[string]SystemFactory)
	handlersMu sync.RWMutex
	handlers   = make(map[string]HandlerFactory)
)

// RegisterSystem adds a system factory by name, replacing any previous one
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names, sorted
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	return sortedKeys(systems)
}

// RegisterHandler adds an event handler factory by name
func RegisterHandler(name string, factory HandlerFactory) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers[name] = factory
}

// GetHandler retrieves a handler factory by name
func GetHandler(name string) (HandlerFactory, bool) {
	handlersMu.RLock()
	defer handlersMu.RUnlock()
	f, ok := handlers[name]
	return f, ok
}

// HandlerNames returns all registered handler names, sorted
func HandlerNames() []string {
	handlersMu.RLock()
	defer handlersMu.RUnlock()
	return sortedKeys(handlers)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
