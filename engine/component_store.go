package engine

import (
	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	// Craft
	Craft      *Store[component.CraftComponent]
	Fuel       *Store[component.FuelComponent]
	Multiplier *Store[component.MultiplierComponent]

	// Stations
	Dock   *Store[component.DockComponent]
	Beacon *Store[component.BeaconComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Craft:      NewStore[component.CraftComponent](),
		Fuel:       NewStore[component.FuelComponent](),
		Multiplier: NewStore[component.MultiplierComponent](),
		Dock:       NewStore[component.DockComponent](),
		Beacon:     NewStore[component.BeaconComponent](),
	}
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	cs.Craft.Remove(e)
	cs.Fuel.Remove(e)
	cs.Multiplier.Remove(e)
	cs.Dock.Remove(e)
	cs.Beacon.Remove(e)
}

func (cs *ComponentStore) clear() {
	cs.Craft.Clear()
	cs.Fuel.Clear()
	cs.Multiplier.Clear()
	cs.Dock.Clear()
	cs.Beacon.Clear()
}
