package status

import "sync"

// table hands out one stable pointer per name
// Lookups after the first are read-locked, the pointer itself is read and written lock-free
type table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]*T)}
}

func (t *table[T]) get(name string) *T {
	t.mu.RLock()
	ptr, ok := t.items[name]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	t.items[name] = ptr
	return ptr
}

// each visits entries whose name passes keep
func (t *table[T]) each(keep func(string) bool, fn func(name string, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for name, ptr := range t.items {
		if keep(name) {
			fn(name, ptr)
		}
	}
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
