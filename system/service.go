package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
)

// ServiceSystem admits a craft to service when its dock accepts it
// A Service event for a craft that is no longer waiting releases the dock link
type ServiceSystem struct {
	world *engine.World
}

// NewServiceSystem creates a new service handler
func NewServiceSystem(world *engine.World) engine.EventHandler {
	return &ServiceSystem{
		world: world,
	}
}

// EventTypes returns the event types ServiceSystem handles
func (s *ServiceSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventService,
	}
}

// HandleEvent moves NeedsService to UnderService and brakes the craft
func (s *ServiceSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.ServicePayload)
	if !ok {
		return
	}

	res := s.world.Resource
	craft := payload.Craft
	cc, ok := s.world.Components.Craft.Get(craft)
	if !ok || !cc.BeginService() {
		res.Service.Release(craft)
		res.Log.Debug("stale service link released", zap.Uint64("craft", uint64(craft)))
		return
	}
	s.world.Components.Craft.Set(craft, cc)

	res.Control.Queue.Push(event.ControlCommand{
		Craft:     craft,
		Axis:      event.AxisBrake,
		Magnitude: res.Tuning.DockServiceBrake,
	})
	res.Log.Info("service started",
		zap.Uint64("craft", uint64(craft)),
		zap.Uint64("dock", uint64(payload.Dock)),
	)
}
