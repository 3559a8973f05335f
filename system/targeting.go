package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/vmath"
)

// TargetingSystem owns acquisition of the single world target
// Manual picks come from a ray cast; automatic picks choose the nearest dock
type TargetingSystem struct {
	world *engine.World
}

// NewTargetingSystem creates a new targeting handler
func NewTargetingSystem(world *engine.World) engine.EventHandler {
	return &TargetingSystem{
		world: world,
	}
}

// EventTypes returns the event types TargetingSystem handles
func (s *TargetingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetPickRequest,
		event.EventTargetNearestDockRequest,
	}
}

// HandleEvent resolves pick requests, misses leave the target unchanged
func (s *TargetingSystem) HandleEvent(ev event.GameEvent) {
	phys := s.world.Resource.Physics.Service
	if phys == nil {
		return
	}

	switch ev.Type {
	case event.EventTargetPickRequest:
		payload, ok := ev.Payload.(*event.TargetPickPayload)
		if !ok {
			return
		}
		hit, ok := phys.CastRay(payload.Origin, payload.Direction, payload.MaxDist, payload.Exclude)
		if !ok {
			return
		}
		s.acquire(hit.Entity, "pick")

	case event.EventTargetNearestDockRequest:
		payload, ok := ev.Payload.(*event.TargetNearestDockPayload)
		if !ok {
			return
		}
		if dock, ok := s.nearestDock(payload.Craft); ok {
			s.acquire(dock, "nearest-dock")
		}
	}
}

// nearestDock returns the dock with minimum squared distance to craft
// Docks are visited in id order so the lowest id wins a tie
func (s *TargetingSystem) nearestDock(craft core.Entity) (core.Entity, bool) {
	phys := s.world.Resource.Physics.Service
	tr, ok := phys.Transform(craft)
	if !ok {
		return 0, false
	}

	var best core.Entity
	bestDist := math.Inf(1)
	for _, dock := range s.world.Components.Dock.Sorted() {
		dtr, ok := phys.Transform(dock)
		if !ok {
			continue
		}
		if d := vmath.DistanceSq(tr.Translation, dtr.Translation); d < bestDist {
			best, bestDist = dock, d
		}
	}
	return best, best != 0
}

func (s *TargetingSystem) acquire(e core.Entity, reason string) {
	res := s.world.Resource
	prev := res.Target.Set(e)
	if prev == e {
		return
	}
	res.Event.Queue.Emit(event.EventTargetChanged, &event.TargetChangedPayload{Previous: prev, Current: e}, res.Time.Tick)
	res.Log.Info("target changed",
		zap.Uint64("previous", uint64(prev)),
		zap.Uint64("current", uint64(e)),
		zap.String("reason", reason),
	)
}
