package system

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
)

// NoticeSystem turns target and service notifications into pilot-facing notices and counts
type NoticeSystem struct {
	world *engine.World

	statTargets  *atomic.Int64
	statServices *atomic.Int64
}

// NewNoticeSystem creates a new notice handler
func NewNoticeSystem(world *engine.World) engine.EventHandler {
	reg := world.Resource.Status
	return &NoticeSystem{
		world:        world,
		statTargets:  reg.Counter("target.changes"),
		statServices: reg.Counter("service.completed"),
	}
}

// EventTypes returns the event types NoticeSystem handles
func (s *NoticeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetChanged,
		event.EventServiceComplete,
	}
}

// HandleEvent records the notification, only the piloted craft's service raises a notice
func (s *NoticeSystem) HandleEvent(ev event.GameEvent) {
	res := s.world.Resource

	switch ev.Type {
	case event.EventTargetChanged:
		payload, ok := ev.Payload.(*event.TargetChangedPayload)
		if !ok {
			return
		}
		s.statTargets.Add(1)
		res.Telemetry.TargetChanged()
		res.Indicator.Notify(targetNotice(s.world, payload), ev.Tick)

	case event.EventServiceComplete:
		payload, ok := ev.Payload.(*event.ServicePayload)
		if !ok {
			return
		}
		s.statServices.Add(1)
		res.Telemetry.ServiceCompleted()
		if payload.Craft == res.Pilot.Entity {
			res.Indicator.Notify("Refuelled: tank full, dock released", ev.Tick)
		}
		res.Log.Debug("service notice",
			zap.Uint64("craft", uint64(payload.Craft)),
			zap.Int64("tick", ev.Tick),
		)
	}
}

func targetNotice(world *engine.World, p *event.TargetChangedPayload) string {
	kind := "beacon"
	if _, ok := world.Components.Dock.Get(p.Current); ok {
		kind = "dock"
	} else if _, ok := world.Components.Craft.Get(p.Current); ok {
		kind = "craft"
	}
	if p.Previous == 0 {
		return fmt.Sprintf("Target: %s #%d", kind, p.Current)
	}
	return fmt.Sprintf("Target: %s #%d (was #%d)", kind, p.Current, p.Previous)
}
