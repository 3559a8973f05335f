package system

import (
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
)

// AudioSystem forwards the piloted craft's thruster pulses to the audio sink
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates a new audio handler
func NewAudioSystem(world *engine.World) engine.EventHandler {
	return &AudioSystem{
		world: world,
	}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventThrusterPulse,
	}
}

// HandleEvent plays a pulse for the piloted craft only
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	sink := s.world.Resource.Audio.Sink
	if sink == nil {
		return
	}
	payload, ok := ev.Payload.(*event.ThrusterPulsePayload)
	if !ok || payload.Craft != s.world.Resource.Pilot.Entity {
		return
	}
	sink.Pulse(payload.Axis, payload.Sign)
}
