package system

import (
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
)

// PhysicsSystem advances the rigid-body collaborator by the tick step
type PhysicsSystem struct {
	world *engine.World

	enabled bool
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.enabled = true
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemEnable,
	}
}

func (s *PhysicsSystem) HandleEvent(ev event.GameEvent) {
	applyEnable(ev, s.Name(), &s.enabled)
}

func (s *PhysicsSystem) Update() {
	if !s.enabled {
		return
	}
	if phys := s.world.Resource.Physics.Service; phys != nil {
		phys.Step(s.world.Resource.Time.Seconds())
	}
}
