package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
)

// FuelSystem watches fuel levels and applies dock supply
// Low fuel moves a Normal craft to NeedsService; a full tank ends service
type FuelSystem struct {
	world *engine.World

	enabled bool
}

// NewFuelSystem creates a new fuel system
func NewFuelSystem(world *engine.World) engine.System {
	s := &FuelSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FuelSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *FuelSystem) Name() string {
	return "fuel"
}

// Priority returns the system's priority
func (s *FuelSystem) Priority() int {
	return parameter.PriorityFuel
}

// EventTypes returns the event types FuelSystem handles
func (s *FuelSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSupplyFuel,
		event.EventSystemEnable,
	}
}

// HandleEvent applies fuel supply
func (s *FuelSystem) HandleEvent(ev event.GameEvent) {
	if applyEnable(ev, s.Name(), &s.enabled) {
		return
	}
	if ev.Type != event.EventSupplyFuel {
		return
	}
	payload, ok := ev.Payload.(*event.SupplyFuelPayload)
	if !ok {
		return
	}

	craft := payload.Craft
	fuel, ok := s.world.Components.Fuel.Get(craft)
	if !ok {
		return
	}
	full := fuel.Gain(payload.Amount)
	s.world.Components.Fuel.Set(craft, fuel)
	s.world.Resource.Telemetry.FuelSupplied(payload.Amount)

	if !full {
		return
	}

	cc, ok := s.world.Components.Craft.Get(craft)
	if !ok || !cc.EndService() {
		return
	}
	s.world.Components.Craft.Set(craft, cc)

	res := s.world.Resource
	res.Service.Release(craft)
	res.Event.Queue.Emit(event.EventServiceComplete, &event.ServicePayload{Craft: craft}, res.Time.Tick)
	res.Log.Info("service complete", zap.Uint64("craft", uint64(craft)), zap.Float64("fuel", fuel.Current))
}

// Update flags craft whose fuel dropped below the threshold
// Only the piloted craft retargets to the nearest dock
func (s *FuelSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resource
	for _, craft := range s.world.Components.Fuel.Sorted() {
		fuel, _ := s.world.Components.Fuel.Get(craft)
		if !fuel.Below(res.Tuning.FuelLowThreshold) {
			continue
		}
		cc, ok := s.world.Components.Craft.Get(craft)
		if !ok || !cc.RequestService() {
			continue
		}
		s.world.Components.Craft.Set(craft, cc)

		res.Log.Info("craft needs service",
			zap.Uint64("craft", uint64(craft)),
			zap.Float64("fuel", fuel.Current),
		)

		if craft == res.Pilot.Entity {
			res.Event.Queue.Emit(event.EventTargetNearestDockRequest, &event.TargetNearestDockPayload{Craft: craft}, res.Time.Tick)
		}
	}
}
