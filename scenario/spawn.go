package scenario

import (
	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/physics"
)

// Spawned maps scenario names to the created entities
type Spawned struct {
	Names map[string]core.Entity
	Craft []core.Entity
	Docks []core.Entity
}

// Spawn creates the scenario's entities in world and bodies in space
// The physics bridge, pilot and target resources are set as a side effect
func (s *Scenario) Spawn(world *engine.World, space *physics.Space) (*Spawned, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := &Spawned{Names: make(map[string]core.Entity)}
	tuning := world.Resource.Tuning
	world.Resource.Physics.Service = space

	name := func(n string, e core.Entity) {
		if n != "" {
			out.Names[n] = e
		}
	}

	for _, c := range s.Craft {
		e := world.CreateEntity()
		space.AddBody(e, physics.BodyDesc{
			Position:       c.Position,
			Yaw:            c.Yaw,
			Radius:         parameter.CraftRadius,
			LinearDamping:  tuning.LinearDampingBaseline,
			AngularDamping: parameter.AngularDamping,
			YawOnly:        true,
		})

		fuel := component.NewFuel(tuning.FuelCapacity)
		if c.Fuel != nil {
			fuel.Current = 0
			fuel.Gain(*c.Fuel)
		}
		craft := component.CraftComponent{}
		if c.Autopilot {
			craft.Mode = component.ModeAutopilot
		}

		world.Components.Craft.Set(e, craft)
		world.Components.Fuel.Set(e, fuel)
		world.Components.Multiplier.Set(e, component.DefaultMultiplier())

		if c.Pilot {
			world.Resource.Pilot.Entity = e
		}
		out.Craft = append(out.Craft, e)
		name(c.Name, e)
	}

	for _, d := range s.AllDocks() {
		e := world.CreateEntity()
		space.AddBody(e, physics.BodyDesc{
			Position: d.Position,
			Radius:   parameter.DockRadius,
			Static:   true,
		})
		world.Components.Dock.Set(e, component.DockComponent{})
		out.Docks = append(out.Docks, e)
		name(d.Name, e)
	}

	for _, b := range s.Beacons {
		e := world.CreateEntity()
		space.AddBody(e, physics.BodyDesc{
			Position: b.Position,
			Radius:   parameter.DockRadius,
			Static:   true,
		})
		world.Components.Beacon.Set(e, component.BeaconComponent{Name: b.Name})
		name(b.Name, e)
	}

	if s.Target != "" {
		world.Resource.Target.Set(out.Names[s.Target])
	}
	return out, nil
}
