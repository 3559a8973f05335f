package manifest

import (
	"fmt"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/registry"
	"github.com/lixenwraith/skyport/system"
)

// RegisterSystems registers all system and handler factories with the registry
func RegisterSystems() {
	registry.RegisterSystem("input", system.NewInputSystem)
	registry.RegisterSystem("autopilot", system.NewAutopilotSystem)
	registry.RegisterSystem("movement", system.NewMovementSystem)
	registry.RegisterSystem("physics", system.NewPhysicsSystem)
	registry.RegisterSystem("fuel", system.NewFuelSystem)
	registry.RegisterSystem("docking", system.NewDockingSystem)
	registry.RegisterSystem("indicator", system.NewIndicatorSystem)

	registry.RegisterHandler("service", system.NewServiceSystem)
	registry.RegisterHandler("targeting", system.NewTargetingSystem)
	registry.RegisterHandler("audio", system.NewAudioSystem)
	registry.RegisterHandler("notice", system.NewNoticeSystem)
}

// ActiveSystems is the authoritative pipeline; execution order follows Priority
var ActiveSystems = []string{
	"input",
	"autopilot",
	"movement",
	"physics",
	"fuel",
	"docking",
	"indicator",
}

// ActiveHandlers are event-only participants
var ActiveHandlers = []string{
	"service",
	"targeting",
	"audio",
	"notice",
}

// Assemble builds every active system into world and routes events through sched
// Systems that also handle events are registered with the router
func Assemble(world *engine.World, sched *engine.Scheduler) error {
	for _, name := range ActiveSystems {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return fmt.Errorf("system %q not registered", name)
		}
		sys := factory(world)
		world.AddSystem(sys)
		if h, ok := sys.(engine.EventHandler); ok {
			sched.RegisterEventHandler(h)
		}
	}

	for _, name := range ActiveHandlers {
		factory, ok := registry.GetHandler(name)
		if !ok {
			return fmt.Errorf("handler %q not registered", name)
		}
		sched.RegisterEventHandler(factory(world))
	}
	return nil
}
